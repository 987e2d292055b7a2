package csharp

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/wippyai/typedump/dump"
	"github.com/wippyai/typedump/errors"
)

// Options controls the generated text layout.
type Options struct {
	// IndentWidth is the number of spaces per nesting level.
	// Zero or negative selects the default of 2.
	IndentWidth int
}

// DefaultOptions returns the options used by the command line tool.
func DefaultOptions() Options {
	return Options{IndentWidth: 2}
}

// DiagKind classifies a construct that could not be expressed in C#.
type DiagKind string

const (
	DiagUnsupportedUnion  DiagKind = "unsupported_union"
	DiagUnsupportedAlias  DiagKind = "unsupported_alias"
	DiagNullablePrimitive DiagKind = "nullable_primitive"
)

// Diag records one FIXME comment written into the output.
type Diag struct {
	Kind   DiagKind
	Name   string // member name of the affected node
	Detail string
}

func (d Diag) String() string {
	return fmt.Sprintf("%s %s: %s", d.Kind, d.Name, d.Detail)
}

// Emitter turns a type graph into C# declarations.
type Emitter struct {
	g     *dump.Graph
	diags []Diag
	opts  Options
}

// New creates an emitter over g.
func New(g *dump.Graph, opts Options) *Emitter {
	if opts.IndentWidth <= 0 {
		opts.IndentWidth = DefaultOptions().IndentWidth
	}
	return &Emitter{g: g, opts: opts}
}

// Diagnostics returns the gaps reported by the last Emit, plus those of
// any EmitType calls since.
func (e *Emitter) Diagnostics() []Diag {
	return e.diags
}

// Emit generates the whole file: one constant per define, a blank line
// if there were any, then every top-level type in stream order.
// Calling Emit again on the same graph yields the same lines.
func (e *Emitter) Emit() ([]string, error) {
	e.diags = nil
	b := e.buffer()

	for _, d := range e.g.Defines() {
		b.line(0, "public const uint "+d.Name+" = "+d.Value+";")
	}
	if len(e.g.Defines()) > 0 {
		b.blank()
	}

	for _, id := range e.g.Roots() {
		if err := e.emit(b, id, 0); err != nil {
			return nil, err
		}
	}

	Logger().Debug("emitted declarations",
		zap.Int("lines", len(b.lines)),
		zap.Int("diagnostics", len(e.diags)))
	return b.lines, nil
}

// EmitType generates the lines for a single node at the given nesting
// depth.
func (e *Emitter) EmitType(id dump.TypeID, depth int) ([]string, error) {
	if depth < 0 {
		depth = 0
	}
	b := e.buffer()
	if err := e.emit(b, id, depth); err != nil {
		return nil, err
	}
	return b.lines, nil
}

func (e *Emitter) buffer() *buffer {
	return &buffer{width: e.opts.IndentWidth}
}

func (e *Emitter) emit(b *buffer, id dump.TypeID, depth int) error {
	t := e.g.Node(id)
	if t == nil {
		return errors.New(errors.PhaseEmit, errors.KindFormat).
			Value(id).
			Detail("node %d out of range", id).
			Build()
	}

	switch t.Kind {
	case dump.KindStruct:
		return e.emitStruct(b, t, depth)
	case dump.KindArray:
		return e.emitArray(b, id, t, depth)
	case dump.KindSimple:
		return e.emitSimple(b, id, t, depth)
	case dump.KindEnum:
		e.emitEnum(b, t, depth)
		return nil
	case dump.KindUnion:
		b.line(depth, "/* !!! FIXME: Union type is not supported in C# ! Skipping union "+t.MemberName+". */")
		e.report(DiagUnsupportedUnion, t.MemberName, "union skipped")
		return nil
	default:
		return errors.New(errors.PhaseEmit, errors.KindFormat).
			Path(e.g.Path(id)...).
			TypeName(t.TypeName).
			Value(int32(t.Kind)).
			Detail("unknown kind %s", t.Kind).
			Build()
	}
}

func (e *Emitter) emitStruct(b *buffer, t *dump.Type, depth int) error {
	if t.Alignment == 1 {
		b.line(depth, "[StructLayout(LayoutKind.Sequential)]")
	}
	b.line(depth, "public struct "+t.MemberName)
	b.line(depth, "{")
	for _, c := range t.Children {
		if err := e.emit(b, c, depth+1); err != nil {
			return err
		}
	}
	b.line(depth, "}")
	b.blank()
	return nil
}

func (e *Emitter) emitArray(b *buffer, id dump.TypeID, t *dump.Type, depth int) error {
	if len(t.Children) != 1 {
		return errors.New(errors.PhaseEmit, errors.KindFormat).
			Path(e.g.Path(id)...).
			TypeName(t.TypeName).
			Value(len(t.Children)).
			Detail("array must have exactly one element type, got %d children", len(t.Children)).
			Build()
	}
	elemID := t.Children[0]
	elem := e.g.Node(elemID)

	resolved, err := e.g.ResolvePrimitive(elemID)
	if err != nil {
		return err
	}
	native := e.g.Node(resolved).TypeName

	b.line(depth, fmt.Sprintf("[MarshalAs(UnmanagedType.ByValArray, SizeConst = %d)]", t.Size))
	if mapped, ok := MapBaseType(native); ok {
		b.line(depth, "public "+mapped+"[] "+t.MemberName+";"+e.nullable(t.MemberName, native))
		return nil
	}
	b.line(depth, "public "+elem.TypeName+"[] "+t.MemberName+";")
	return nil
}

func (e *Emitter) emitSimple(b *buffer, id dump.TypeID, t *dump.Type, depth int) error {
	if IsBaseType(t.TypeName) {
		// A top-level primitive declares nothing.
		if depth == 0 {
			return nil
		}
		e.field(b, depth, t.MemberName, t.TypeName)
		return nil
	}

	resolved, err := e.g.ResolvePrimitive(id)
	if err != nil {
		return err
	}
	native := e.g.Node(resolved).TypeName
	if IsBaseType(native) {
		e.field(b, depth, t.MemberName, native)
		return nil
	}

	if _, ok := e.g.FindByTypeName(t.TypeName); ok {
		b.line(depth, "/* !!! FIXME: Type "+t.MemberName+" seems to be a simple typedef (alias of "+t.TypeName+") for which there is no equivalent in C#. */")
		e.report(DiagUnsupportedAlias, t.MemberName, "alias of "+t.TypeName)
		return nil
	}
	b.line(depth, "public "+t.TypeName+" "+t.MemberName+";")
	return nil
}

func (e *Emitter) emitEnum(b *buffer, t *dump.Type, depth int) {
	b.line(depth, "public enum "+t.MemberName)
	b.line(depth, "{")
	for _, c := range t.Children {
		m := e.g.Node(c)
		b.line(depth+1, fmt.Sprintf("%s = %d,", m.MemberName, m.ConstValue))
	}
	b.line(depth, "}")
	b.blank()
}

// field writes a member declaration for a primitive native type.
func (e *Emitter) field(b *buffer, depth int, name, native string) {
	mapped, _ := MapBaseType(native)
	b.line(depth, "public "+mapped+" "+name+";"+e.nullable(name, native))
}

// nullable returns the trailing comment for primitives without an exact
// C# type, or "".
func (e *Emitter) nullable(name, native string) string {
	if !IsUnsupportedBaseType(native) {
		return ""
	}
	e.report(DiagNullablePrimitive, name, native)
	return " // FIXME: no exact C# equivalent for " + native
}

func (e *Emitter) report(kind DiagKind, name, detail string) {
	e.diags = append(e.diags, Diag{Kind: kind, Name: name, Detail: detail})
	Logger().Warn("construct has no C# equivalent",
		zap.String("kind", string(kind)),
		zap.String("name", name),
		zap.String("detail", detail))
}

type buffer struct {
	lines []string
	width int
}

func (b *buffer) line(depth int, s string) {
	b.lines = append(b.lines, strings.Repeat(" ", depth*b.width)+s)
}

func (b *buffer) blank() {
	b.lines = append(b.lines, "")
}
