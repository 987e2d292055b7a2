package dump

// Graph owns every node of a decoded dump. Nodes live in one slice and
// are addressed by TypeID; roots and child lists hold ids only.
type Graph struct {
	nodes   []Type
	roots   []TypeID
	defines []Define
}

// NewGraph creates an empty graph.
func NewGraph() *Graph {
	return &Graph{}
}

func (g *Graph) alloc(t Type, parent TypeID) TypeID {
	id := TypeID(len(g.nodes))
	t.Parent = parent
	t.Children = nil
	g.nodes = append(g.nodes, t)
	return id
}

// AddRoot appends a top-level node. Any Children set on t are ignored.
func (g *Graph) AddRoot(t Type) TypeID {
	id := g.alloc(t, NoParent)
	g.roots = append(g.roots, id)
	return id
}

// AddChild appends a node to parent's child list.
func (g *Graph) AddChild(parent TypeID, t Type) TypeID {
	id := g.alloc(t, parent)
	g.nodes[parent].Children = append(g.nodes[parent].Children, id)
	return id
}

// AddDefine appends a macro constant.
func (g *Graph) AddDefine(name, value string) {
	g.defines = append(g.defines, Define{Name: name, Value: value})
}

// Node returns the node for id, or nil if id is out of range.
func (g *Graph) Node(id TypeID) *Type {
	if int(id) >= len(g.nodes) {
		return nil
	}
	return &g.nodes[id]
}

// Roots returns the top-level ids in stream order.
func (g *Graph) Roots() []TypeID {
	return g.roots
}

// Defines returns the macro constants in stream order.
func (g *Graph) Defines() []Define {
	return g.defines
}

// Len returns the total number of nodes.
func (g *Graph) Len() int {
	return len(g.nodes)
}

// Path returns the member names from the root down to id.
func (g *Graph) Path(id TypeID) []string {
	var path []string
	for n := g.Node(id); n != nil; {
		path = append(path, n.MemberName)
		if n.IsRoot() {
			break
		}
		n = g.Node(n.Parent)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
