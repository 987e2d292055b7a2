package typedump

import (
	"bufio"
	"io"

	"github.com/wippyai/typedump/csharp"
	"github.com/wippyai/typedump/dump"
	"github.com/wippyai/typedump/errors"
)

// Sink receives generated output one line at a time.
type Sink interface {
	WriteLine(line string) error
}

// WriterSink buffers lines for an io.Writer. Call Flush when done.
type WriterSink struct {
	w *bufio.Writer
}

// NewWriterSink creates a sink writing to w.
func NewWriterSink(w io.Writer) *WriterSink {
	return &WriterSink{w: bufio.NewWriter(w)}
}

// WriteLine appends line and a newline.
func (s *WriterSink) WriteLine(line string) error {
	if _, err := s.w.WriteString(line); err != nil {
		return err
	}
	return s.w.WriteByte('\n')
}

// Flush writes any buffered output.
func (s *WriterSink) Flush() error {
	return s.w.Flush()
}

// Load decodes the dump at path and checks that every alias chain
// terminates.
func Load(path string) (*dump.Graph, error) {
	g, err := dump.DecodeFile(path)
	if err != nil {
		return nil, err
	}
	if err := g.CheckAliases(); err != nil {
		return nil, err
	}
	return g, nil
}

// Generate emits C# for g and returns the lines with the diagnostics
// collected along the way.
func Generate(g *dump.Graph, opts csharp.Options) ([]string, []csharp.Diag, error) {
	e := csharp.New(g, opts)
	lines, err := e.Emit()
	if err != nil {
		return nil, nil, err
	}
	return lines, e.Diagnostics(), nil
}

// Flush writes lines to sink in order, flushing it afterwards when it
// supports that.
func Flush(sink Sink, lines []string) error {
	for _, l := range lines {
		if err := sink.WriteLine(l); err != nil {
			return errors.Wrap(errors.PhaseEmit, errors.KindIO, err, "write output")
		}
	}
	if f, ok := sink.(interface{ Flush() error }); ok {
		if err := f.Flush(); err != nil {
			return errors.Wrap(errors.PhaseEmit, errors.KindIO, err, "flush output")
		}
	}
	return nil
}

// Translate loads path, generates C# and writes it to sink. Nothing is
// written unless loading and generation both succeed.
func Translate(path string, sink Sink, opts csharp.Options) error {
	g, err := Load(path)
	if err != nil {
		return err
	}
	lines, _, err := Generate(g, opts)
	if err != nil {
		return err
	}
	return Flush(sink, lines)
}
