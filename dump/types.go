package dump

import "fmt"

// Wire magics framing the two sections of a dump.
const (
	MagicTypes   uint32 = 0x23C0FFEE
	MagicDefines uint32 = 0x12021984
)

// Kind identifies how a node's children are interpreted.
type Kind int32

const (
	KindSimple Kind = iota // no children, meaning fixed by type name
	KindStruct             // children are fields
	KindUnion              // children are members
	KindEnum               // children are enumerators
	KindArray              // exactly one child, the element type
)

// Valid reports whether k is one of the five known kinds.
func (k Kind) Valid() bool {
	return k >= KindSimple && k <= KindArray
}

func (k Kind) String() string {
	switch k {
	case KindSimple:
		return "SIMPLE"
	case KindStruct:
		return "STRUCT"
	case KindUnion:
		return "UNION"
	case KindEnum:
		return "ENUM"
	case KindArray:
		return "ARRAY"
	default:
		return fmt.Sprintf("UNKNOWN(%d)", int32(k))
	}
}

// TypeID is the arena index of a node.
type TypeID uint32

// NoParent marks a top-level node.
const NoParent = ^TypeID(0)

// Type is one node of the type tree.
type Type struct {
	MemberName   string
	TypeName     string
	Children     []TypeID
	ConstValue   int64
	Kind         Kind
	Size         int32 // element count for arrays
	Alignment    int32
	Parent       TypeID
	IsConstValue bool
}

// IsRoot reports whether the node is a top-level entry.
func (t *Type) IsRoot() bool {
	return t.Parent == NoParent
}

// Define is an integer-valued macro constant. Value is the literal
// text as tokenized by the frontend.
type Define struct {
	Name  string
	Value string
}
