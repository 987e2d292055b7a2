package csharp

// baseTypes and mappedBaseTypes are index-aligned: baseTypes[i] maps to
// mappedBaseTypes[i].
var baseTypes = []string{
	"Pointer",
	"Char32",
	"UInt",
	"Long",
	"Int",
	"Char16",
	"WChar",
	"UShort",
	"Short",
	"SChar",
	"Char_S",
	"UChar",
	"LongLong",
	"ULongLong",
	"Bool",
	"UInt128",
	"Float",
	"Double",
	"LongDouble",
}

var mappedBaseTypes = []string{
	"IntPtr",
	"uint",
	"uint",
	"int",
	"int",
	"ushort",
	"ushort",
	"ushort",
	"short",
	"short",
	"short",
	"byte",
	"long",
	"ulong",
	"bool",
	"UInt128?",
	"float",
	"double",
	"LongDouble?",
}

var baseTypeIndex = func() map[string]int {
	m := make(map[string]int, len(baseTypes))
	for i, name := range baseTypes {
		m[name] = i
	}
	return m
}()

// IsBaseType reports whether name is one of the frontend's primitive
// type names.
func IsBaseType(name string) bool {
	_, ok := baseTypeIndex[name]
	return ok
}

// MapBaseType returns the C# spelling of a primitive type name.
func MapBaseType(name string) (string, bool) {
	i, ok := baseTypeIndex[name]
	if !ok {
		return "", false
	}
	return mappedBaseTypes[i], true
}

// IsUnsupportedBaseType reports whether name is a primitive with no exact
// C# counterpart. Such types map to a nullable placeholder.
func IsUnsupportedBaseType(name string) bool {
	mapped, ok := MapBaseType(name)
	return ok && mapped[len(mapped)-1] == '?'
}

// BaseTypes returns a copy of the primitive type names in table order.
func BaseTypes() []string {
	return append([]string(nil), baseTypes...)
}

// MappedBaseTypes returns a copy of the C# names in table order.
func MappedBaseTypes() []string {
	return append([]string(nil), mappedBaseTypes...)
}
