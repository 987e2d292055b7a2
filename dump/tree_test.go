package dump

import (
	"strings"
	"testing"
)

func TestTree(t *testing.T) {
	got := pointGraph().Tree()
	want := strings.Join([]string{
		`STRUCT type "struct Point" of size 8, align 4, member "Point"`,
		` SIMPLE type "Int" of size 4, align 4, member "x"`,
		` SIMPLE type "Int" of size 4, align 4, member "y"`,
		`ENUM type "enum Color" of size 4, align 4, member "Color"`,
		` SIMPLE type "Int" of size 0, align 0, member "RED", value 0`,
		` SIMPLE type "Int" of size 0, align 0, member "GREEN", value 1`,
		`STRUCT type "struct Name" of size 16, align 1, member "Name"`,
		` ARRAY type "text" of size 16, align 1, member "text"`,
		`  SIMPLE type "UChar" of size 1, align 1, member "char"`,
	}, "\n") + "\n"

	if got != want {
		t.Errorf("Tree mismatch\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestTreeEmpty(t *testing.T) {
	if got := NewGraph().Tree(); got != "" {
		t.Errorf("Tree of empty graph = %q", got)
	}
}
