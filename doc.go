// Package typedump converts the binary type dump produced by the libclang
// frontend into C# interop declarations.
//
// # Architecture Overview
//
// The library is organized into several packages with distinct responsibilities:
//
//	typedump/            Root package: load, generate and flush in one call
//	├── dump/            Wire format decoding, type graph and alias resolution
//	├── csharp/          Type graph to C# declarations
//	├── errors/          Structured error types
//	└── cmd/typedump/    Command line tool
//
// # Quick Start
//
// Translate a dump straight to standard output:
//
//	sink := typedump.NewWriterSink(os.Stdout)
//	if err := typedump.Translate("type_db.bin", sink, csharp.DefaultOptions()); err != nil {
//	    log.Fatal(err)
//	}
//
// Or run the stages separately to inspect the graph or the diagnostics:
//
//	g, err := typedump.Load("type_db.bin")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	lines, diags, err := typedump.Generate(g, csharp.DefaultOptions())
//
// # Error Handling
//
// Errors carry a phase and a kind (see package errors). Loading fails
// before any output is produced; constructs without a C# equivalent do
// not fail but become FIXME comments and diagnostics.
package typedump
