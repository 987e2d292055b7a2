package dump

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// WriteTree prints every root and its descendants in the frontend's
// human-readable layout, one node per line, indented one space per level.
func (g *Graph) WriteTree(w io.Writer) error {
	bw := bufio.NewWriter(w)
	for _, id := range g.roots {
		g.writeNode(bw, id, 0)
	}
	return bw.Flush()
}

// Tree returns the WriteTree output as a string.
func (g *Graph) Tree() string {
	var b strings.Builder
	_ = g.WriteTree(&b)
	return b.String()
}

func (g *Graph) writeNode(w *bufio.Writer, id TypeID, depth int) {
	t := g.Node(id)
	w.WriteString(strings.Repeat(" ", depth))
	fmt.Fprintf(w, "%s type %q of size %d, align %d, member %q", t.Kind, t.TypeName, t.Size, t.Alignment, t.MemberName)
	if t.IsConstValue {
		fmt.Fprintf(w, ", value %d", t.ConstValue)
	}
	w.WriteByte('\n')
	for _, c := range t.Children {
		g.writeNode(w, c, depth+1)
	}
}
