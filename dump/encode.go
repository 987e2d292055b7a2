package dump

import "github.com/wippyai/typedump/dump/internal/binary"

// Encode serializes g in the frontend's wire format. It writes exactly
// what the graph holds and performs no validation, so it can also
// produce dumps that Decode rejects.
func Encode(g *Graph) []byte {
	w := binary.NewWriter()

	w.WriteU32LE(MagicTypes)
	w.WriteU32LE(uint32(len(g.roots)))
	for _, id := range g.roots {
		encodeType(w, g, id)
	}

	w.WriteU32LE(MagicDefines)
	w.WriteU32LE(uint32(len(g.defines)))
	for _, d := range g.defines {
		w.WriteCString(d.Name)
		w.WriteCString(d.Value)
	}

	return w.Bytes()
}

func encodeType(w *binary.Writer, g *Graph, id TypeID) {
	t := g.Node(id)
	w.WriteCString(t.MemberName)
	w.WriteCString(t.TypeName)
	w.WriteI32LE(int32(t.Kind))
	w.WriteI32LE(t.Size)
	w.WriteI32LE(t.Alignment)
	if t.IsConstValue {
		w.WriteI32LE(1)
	} else {
		w.WriteI32LE(0)
	}
	w.WriteI64LE(t.ConstValue)
	w.WriteU32LE(uint32(len(t.Children)))
	for _, c := range t.Children {
		encodeType(w, g, c)
	}
}
