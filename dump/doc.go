// Package dump decodes the binary type dump written by the libclang
// frontend into an arena-backed type graph.
//
// # Wire Format
//
// All integers are little-endian, strings are NUL-terminated, and there
// is no padding:
//
//	u32 magic_types   = 0x23C0FFEE
//	u32 type_count
//	type_count × TypePacket
//	u32 magic_defines = 0x12021984
//	u32 define_count
//	define_count × { cstring name; cstring value }
//
//	TypePacket:
//	  cstring member_name
//	  cstring type_name
//	  i32     kind            // 0=Simple 1=Struct 2=Union 3=Enum 4=Array
//	  i32     size            // element count for arrays
//	  i32     alignment
//	  i32     is_const_value
//	  i64     const_value
//	  u32     num_children
//	  num_children × TypePacket
//
// The type section is a depth-first pre-order serialization of a forest;
// child counts are the only structure markers.
//
// # Graph
//
// Decoded nodes are owned by a Graph and addressed by TypeID. Top-level
// entries are kept in stream order and double as the alias table:
// ResolvePrimitive follows a node's TypeName through the MemberName of
// top-level entries until it reaches something that is not an alias.
//
//	g, err := dump.DecodeFile("type_db.bin")
//	if err != nil {
//	    return err
//	}
//	if err := g.CheckAliases(); err != nil {
//	    return err
//	}
//	for _, id := range g.Roots() {
//	    fmt.Println(g.Node(id).MemberName)
//	}
package dump
