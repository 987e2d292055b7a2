// Command typedump prints C# interop declarations for a type dump
// written by the libclang frontend.
//
// Usage:
//
//	typedump <input file as created by frontend>.bin
//
// Settings are read from typedump.toml in the working directory and
// TYPEDUMP_* environment variables (log_level, log_format, color, indent).
package main

import (
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/wippyai/typedump"
	"github.com/wippyai/typedump/csharp"
	"github.com/wippyai/typedump/dump"
	"github.com/wippyai/typedump/errors"
)

const usage = "Usage: typedump <input file as created by frontend>.bin"

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	cfg, err := loadConfig(".")
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	st := newStyles(stderr, cfg.Color)

	log, err := newLogger(stderr, cfg)
	if err != nil {
		fmt.Fprintf(stderr, "Failed to create logger: %v\n", err)
		return 1
	}
	defer log.Sync()
	dump.SetLogger(log.Named("dump"))
	csharp.SetLogger(log.Named("csharp"))

	if len(args) != 1 {
		fmt.Fprintln(stderr, st.usageStyle.Render(usage))
		return 1
	}

	g, err := typedump.Load(args[0])
	if err != nil {
		if errors.IsKind(err, errors.KindNotFound) {
			fmt.Fprintln(stderr, st.errorStyle.Render("File not found"))
		} else {
			fmt.Fprintln(stderr, st.errorStyle.Render("Failed to load packet dump: "+err.Error()))
		}
		log.Debug("load failed", zap.Error(err))
		return 1
	}
	if log.Core().Enabled(zapcore.DebugLevel) {
		log.Debug("type tree", zap.String("tree", g.Tree()))
	}

	lines, diags, err := typedump.Generate(g, csharp.Options{IndentWidth: cfg.Indent})
	if err != nil {
		fmt.Fprintln(stderr, st.errorStyle.Render("Failed to generate declarations: "+err.Error()))
		return 1
	}

	if err := typedump.Flush(typedump.NewWriterSink(stdout), lines); err != nil {
		fmt.Fprintln(stderr, st.errorStyle.Render("Failed to write output: "+err.Error()))
		return 1
	}
	log.Info("generated declarations",
		zap.String("input", args[0]),
		zap.Int("lines", len(lines)),
		zap.Int("diagnostics", len(diags)))
	return 0
}
