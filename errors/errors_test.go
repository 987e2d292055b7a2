package errors

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"
)

func TestError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		contains []string
	}{
		{
			name: "full error",
			err: &Error{
				Phase:    PhaseDecode,
				Kind:     KindFormat,
				Path:     []string{"Point", "coords"},
				TypeName: "Int",
				Detail:   "array must have exactly one element type",
			},
			contains: []string{"[decode]", "format", "Point.coords", "type Int", "exactly one"},
		},
		{
			name: "minimal error",
			err: &Error{
				Phase: PhaseLoad,
				Kind:  KindNotFound,
			},
			contains: []string{"[load]", "not_found"},
		},
		{
			name: "error with cause",
			err: &Error{
				Phase:  PhaseDecode,
				Kind:   KindIO,
				Detail: "read type packet",
				Cause:  io.ErrUnexpectedEOF,
			},
			contains: []string{"[decode]", "io", "read type packet", "caused by", "unexpected EOF"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, s := range tt.contains {
				if !strings.Contains(msg, s) {
					t.Errorf("error message %q does not contain %q", msg, s)
				}
			}
		})
	}
}

func TestError_Unwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := &Error{
		Phase: PhaseDecode,
		Kind:  KindIO,
		Cause: cause,
	}

	if !errors.Is(err.Unwrap(), cause) {
		t.Error("Unwrap did not return cause")
	}

	if !errors.Is(err, cause) {
		t.Error("errors.Is did not reach cause")
	}
}

func TestError_Is(t *testing.T) {
	err := &Error{
		Phase: PhaseDecode,
		Kind:  KindFormat,
		Path:  []string{"foo"},
	}

	if !err.Is(&Error{Phase: PhaseDecode, Kind: KindFormat}) {
		t.Error("Is should match same phase and kind")
	}

	if err.Is(&Error{Phase: PhaseEmit, Kind: KindFormat}) {
		t.Error("Is should not match different phase")
	}

	if err.Is(&Error{Phase: PhaseDecode, Kind: KindIO}) {
		t.Error("Is should not match different kind")
	}

	target := &Error{Phase: PhaseDecode, Kind: KindFormat}
	if !errors.Is(err, target) {
		t.Error("errors.Is should match")
	}
}

func TestKindOf(t *testing.T) {
	inner := Format(PhaseDecode, nil, "not a valid packet dump")
	wrapped := fmt.Errorf("load dump.bin: %w", inner)

	if got := KindOf(wrapped); got != KindFormat {
		t.Errorf("KindOf = %q, want %q", got, KindFormat)
	}
	if !IsKind(wrapped, KindFormat) {
		t.Error("IsKind should see through fmt wrapping")
	}
	if IsKind(wrapped, KindIO) {
		t.Error("IsKind matched the wrong kind")
	}
	if got := KindOf(errors.New("plain")); got != "" {
		t.Errorf("KindOf(plain) = %q, want empty", got)
	}
	if IsKind(nil, KindFormat) {
		t.Error("IsKind(nil) should be false")
	}
}

func TestBuilder(t *testing.T) {
	cause := errors.New("root")
	err := New(PhaseDecode, KindFormat).
		Path("Shape", "kind").
		TypeName("Int").
		Value(int32(9)).
		Cause(cause).
		Detail("expected %s, got %d", "0..4", 9).
		Build()

	if err.Phase != PhaseDecode {
		t.Errorf("Phase = %v, want %v", err.Phase, PhaseDecode)
	}
	if err.Kind != KindFormat {
		t.Errorf("Kind = %v, want %v", err.Kind, KindFormat)
	}
	if len(err.Path) != 2 || err.Path[0] != "Shape" || err.Path[1] != "kind" {
		t.Errorf("Path = %v, want [Shape kind]", err.Path)
	}
	if err.TypeName != "Int" {
		t.Errorf("TypeName = %v, want 'Int'", err.TypeName)
	}
	if err.Value != int32(9) {
		t.Errorf("Value = %v, want 9", err.Value)
	}
	if !errors.Is(err.Cause, cause) {
		t.Errorf("Cause = %v, want %v", err.Cause, cause)
	}
	if err.Detail != "expected 0..4, got 9" {
		t.Errorf("Detail = %v, want 'expected 0..4, got 9'", err.Detail)
	}
}

func TestConvenienceConstructors(t *testing.T) {
	t.Run("Usage", func(t *testing.T) {
		err := Usage("expected one argument")
		if err.Kind != KindUsage || err.Phase != PhaseCLI {
			t.Errorf("got %v/%v", err.Phase, err.Kind)
		}
	})

	t.Run("NotFound", func(t *testing.T) {
		err := NotFound(PhaseLoad, "file", "types.bin")
		if err.Kind != KindNotFound {
			t.Errorf("Kind = %v, want %v", err.Kind, KindNotFound)
		}
		if !strings.Contains(err.Detail, `"types.bin"`) {
			t.Errorf("Detail = %v, should quote the name", err.Detail)
		}
	})

	t.Run("InvalidKind", func(t *testing.T) {
		err := InvalidKind([]string{"Shape"}, 7)
		if err.Kind != KindFormat {
			t.Errorf("Kind = %v, want %v", err.Kind, KindFormat)
		}
		if err.Value != int32(7) {
			t.Errorf("Value = %v, want 7", err.Value)
		}
	})

	t.Run("IO", func(t *testing.T) {
		err := IO(PhaseDecode, "read magic", io.ErrUnexpectedEOF)
		if err.Kind != KindIO {
			t.Errorf("Kind = %v, want %v", err.Kind, KindIO)
		}
		if !errors.Is(err, io.ErrUnexpectedEOF) {
			t.Error("IO should wrap its cause")
		}
	})

	t.Run("Resolution", func(t *testing.T) {
		err := Resolution("A", []string{"A", "B", "A"})
		if err.Kind != KindResolution || err.Phase != PhaseResolve {
			t.Errorf("got %v/%v", err.Phase, err.Kind)
		}
		if !strings.Contains(err.Error(), "A -> B -> A") {
			t.Errorf("message %q should show the chain", err.Error())
		}
	})

	t.Run("Wrap", func(t *testing.T) {
		cause := errors.New("disk")
		err := Wrap(PhaseLoad, KindIO, cause, "open dump")
		if !errors.Is(err, cause) {
			t.Error("Wrap should keep cause")
		}
	})
}
