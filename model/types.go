package model

import (
	"fmt"
	"strings"
)

// Kind is the semantic category of a value as seen by compiled code.
type Kind int

const (
	Void Kind = iota
	Boolean
	Byte
	Short
	Char
	Int
	Long
	Float
	Double
	Object // reference to a class, see ValueType.Class
	Array  // see ValueType.Elem
)

var primitiveNames = map[Kind]string{
	Void:    "void",
	Boolean: "boolean",
	Byte:    "byte",
	Short:   "short",
	Char:    "char",
	Int:     "int",
	Long:    "long",
	Float:   "float",
	Double:  "double",
}

var primitiveCodes = map[Kind]byte{
	Void:    'V',
	Boolean: 'Z',
	Byte:    'B',
	Short:   'S',
	Char:    'C',
	Int:     'I',
	Long:    'J',
	Float:   'F',
	Double:  'D',
}

// ValueType describes a parameter or result type.
type ValueType struct {
	Kind Kind
	// Class is the qualified class name for Object values.
	Class string
	// Elem is the element type for Array values.
	Elem *ValueType
}

// Well-known types.
var (
	VoidType    = ValueType{Kind: Void}
	BooleanType = ValueType{Kind: Boolean}
	ByteType    = ValueType{Kind: Byte}
	ShortType   = ValueType{Kind: Short}
	CharType    = ValueType{Kind: Char}
	IntType     = ValueType{Kind: Int}
	LongType    = ValueType{Kind: Long}
	FloatType   = ValueType{Kind: Float}
	DoubleType  = ValueType{Kind: Double}
	StringType  = ObjectType(StringClass)
)

// StringClass is the qualified name of the string class.
const StringClass = "java.lang.String"

// ObjectType returns the reference type for the named class.
func ObjectType(class string) ValueType {
	return ValueType{Kind: Object, Class: class}
}

// ArrayOf returns an array type with the given element type.
func ArrayOf(elem ValueType) ValueType {
	return ValueType{Kind: Array, Elem: &elem}
}

// IsVoid reports whether t is the void type.
func (t ValueType) IsVoid() bool { return t.Kind == Void }

// IsObject reports whether t is a reference to the named class.
func (t ValueType) IsObject(class string) bool {
	return t.Kind == Object && t.Class == class
}

// String returns the source-level spelling ("int", "java.lang.String", "int[]").
func (t ValueType) String() string {
	switch t.Kind {
	case Object:
		return t.Class
	case Array:
		if t.Elem == nil {
			return "<invalid>[]"
		}
		return t.Elem.String() + "[]"
	default:
		if name, ok := primitiveNames[t.Kind]; ok {
			return name
		}
		return "<invalid>"
	}
}

// Descriptor returns the compact descriptor encoding ("I", "Ljava/lang/String;", "[I").
func (t ValueType) Descriptor() string {
	switch t.Kind {
	case Object:
		return "L" + strings.ReplaceAll(t.Class, ".", "/") + ";"
	case Array:
		if t.Elem == nil {
			return "["
		}
		return "[" + t.Elem.Descriptor()
	default:
		return string(primitiveCodes[t.Kind])
	}
}

// ParseType parses the source-level spelling produced by String.
func ParseType(s string) (ValueType, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return ValueType{}, fmt.Errorf("empty type")
	}
	if strings.HasSuffix(s, "[]") {
		elem, err := ParseType(strings.TrimSuffix(s, "[]"))
		if err != nil {
			return ValueType{}, err
		}
		if elem.IsVoid() {
			return ValueType{}, fmt.Errorf("invalid type %q: void array", s)
		}
		return ArrayOf(elem), nil
	}
	for k, name := range primitiveNames {
		if name == s {
			return ValueType{Kind: k}, nil
		}
	}
	if strings.ContainsAny(s, " []()") || strings.HasPrefix(s, ".") || strings.HasSuffix(s, ".") {
		return ValueType{}, fmt.Errorf("invalid type %q", s)
	}
	return ObjectType(s), nil
}
