package dump

import (
	"github.com/wippyai/typedump/errors"
)

// ResolvePrimitive follows the alias chain starting at id. While some
// top-level entry's MemberName equals the current node's TypeName, the
// walk moves to that entry (first match in root order). The node where
// the chain stops is returned: a primitive, a complex type, or an
// unresolvable forward reference.
//
// Chains are matched by name over the root list, so they can loop.
// Reaching the same root twice fails with a resolution error.
func (g *Graph) ResolvePrimitive(id TypeID) (TypeID, error) {
	cur := g.Node(id)
	if cur == nil {
		return id, errors.New(errors.PhaseResolve, errors.KindResolution).
			Value(id).
			Detail("node %d out of range", id).
			Build()
	}

	visited := make(map[TypeID]struct{})
	chain := []string{cur.TypeName}
	for {
		next, ok := g.FindByMemberName(cur.TypeName)
		if !ok {
			return id, nil
		}
		if _, seen := visited[next]; seen {
			return id, errors.Resolution(g.Node(next).MemberName, chain)
		}
		visited[next] = struct{}{}
		id = next
		cur = g.Node(next)
		chain = append(chain, cur.TypeName)
	}
}

// FindByMemberName returns the first root declared under name.
func (g *Graph) FindByMemberName(name string) (TypeID, bool) {
	for _, id := range g.roots {
		if g.nodes[id].MemberName == name {
			return id, true
		}
	}
	return 0, false
}

// FindByTypeName returns the first root whose TypeName is name.
func (g *Graph) FindByTypeName(name string) (TypeID, bool) {
	for _, id := range g.roots {
		if g.nodes[id].TypeName == name {
			return id, true
		}
	}
	return 0, false
}

// CheckAliases resolves every node the emitter will resolve (simple
// nodes outside enums and array elements) and returns the first
// resolution error.
func (g *Graph) CheckAliases() error {
	for i := range g.nodes {
		if !g.resolvable(&g.nodes[i]) {
			continue
		}
		if _, err := g.ResolvePrimitive(TypeID(i)); err != nil {
			return err
		}
	}
	return nil
}

func (g *Graph) resolvable(n *Type) bool {
	if n.IsRoot() {
		return n.Kind == KindSimple
	}
	switch g.nodes[n.Parent].Kind {
	case KindArray:
		return true
	case KindEnum, KindUnion:
		return false
	default:
		return n.Kind == KindSimple
	}
}
