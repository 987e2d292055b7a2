package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
)

// Phase indicates where in processing the error occurred
type Phase string

const (
	PhaseCLI     Phase = "cli"     // argument handling
	PhaseLoad    Phase = "load"    // opening the dump
	PhaseDecode  Phase = "decode"  // wire format to type graph
	PhaseResolve Phase = "resolve" // alias chasing
	PhaseEmit    Phase = "emit"    // type graph to C# text
)

// Kind categorizes the error
type Kind string

const (
	KindUsage      Kind = "usage"
	KindNotFound   Kind = "not_found"
	KindFormat     Kind = "format"
	KindIO         Kind = "io"
	KindResolution Kind = "resolution"
)

// Error is the structured error type used throughout typedump
type Error struct {
	Value    any
	Cause    error
	Phase    Phase
	Kind     Kind
	TypeName string
	Detail   string
	Path     []string
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if len(e.Path) > 0 {
		b.WriteString(" at ")
		b.WriteString(strings.Join(e.Path, "."))
	}

	if e.TypeName != "" {
		b.WriteString(": type ")
		b.WriteString(e.TypeName)
	}

	if e.Detail != "" {
		if e.TypeName != "" {
			b.WriteString(" - ")
		} else {
			b.WriteString(": ")
		}
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Phase == t.Phase && e.Kind == t.Kind
	}
	return false
}

// KindOf returns the Kind of the first *Error in err's chain, or "" if none.
func KindOf(err error) Kind {
	var e *Error
	if stderrors.As(err, &e) {
		return e.Kind
	}
	return ""
}

// IsKind reports whether err carries an *Error of the given kind,
// regardless of phase.
func IsKind(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(phase Phase, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Phase: phase,
			Kind:  kind,
		},
	}
}

// Path sets the node path
func (b *Builder) Path(path ...string) *Builder {
	b.err.Path = path
	return b
}

// TypeName sets the native type name involved
func (b *Builder) TypeName(t string) *Builder {
	b.err.TypeName = t
	return b
}

// Value sets the offending value
func (b *Builder) Value(v any) *Builder {
	b.err.Value = v
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// Convenience constructors for the taxonomy

// Usage creates a wrong-invocation error
func Usage(detail string) *Error {
	return &Error{
		Phase:  PhaseCLI,
		Kind:   KindUsage,
		Detail: detail,
	}
}

// NotFound creates a missing input error
func NotFound(phase Phase, what, name string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindNotFound,
		Detail: fmt.Sprintf("%s %q not found", what, name),
	}
}

// Format creates a malformed stream error
func Format(phase Phase, path []string, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindFormat,
		Path:   path,
		Detail: detail,
	}
}

// InvalidKind creates a format error for a kind tag outside the closed set
func InvalidKind(path []string, value int32) *Error {
	return &Error{
		Phase:  PhaseDecode,
		Kind:   KindFormat,
		Path:   path,
		Detail: fmt.Sprintf("invalid kind tag %d", value),
		Value:  value,
	}
}

// IO creates a truncated or unreadable stream error
func IO(phase Phase, detail string, cause error) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindIO,
		Detail: detail,
		Cause:  cause,
	}
}

// Resolution creates an alias cycle error
func Resolution(typeName string, chain []string) *Error {
	return &Error{
		Phase:    PhaseResolve,
		Kind:     KindResolution,
		TypeName: typeName,
		Detail:   "alias cycle " + strings.Join(chain, " -> "),
		Value:    chain,
	}
}

// Wrap wraps an existing error with additional context
func Wrap(phase Phase, kind Kind, cause error, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   kind,
		Detail: detail,
		Cause:  cause,
	}
}
