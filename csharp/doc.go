// Package csharp generates C# interop declarations from a decoded type
// dump.
//
// Structs become sequential structs (with an explicit StructLayout
// attribute when packed to one byte), enums keep their member values,
// fixed arrays are marshalled ByValArray, and primitives are mapped
// through a fixed table. Unions and aliases with no C# equivalent are
// replaced by FIXME comments and reported through Diagnostics.
//
//	e := csharp.New(g, csharp.DefaultOptions())
//	lines, err := e.Emit()
//	if err != nil {
//	    return err
//	}
//	for _, d := range e.Diagnostics() {
//	    log.Println(d)
//	}
package csharp
