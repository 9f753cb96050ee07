// Package model holds read-only descriptors of already-compiled classes.
//
// The generator never inspects method bodies. It only needs a class's name,
// its methods, their signatures and a stable reference to each compiled body,
// which is what this package exposes through ClassSource.
package model

import "strings"

// Special method names.
const (
	ConstructorName = "<init>"
	InitializerName = "<clinit>"
)

// Annotations maps an annotation name to its element values.
// An annotation without elements maps to an empty (or nil) map.
type Annotations map[string]map[string]string

// Has reports whether the annotation is present.
func (a Annotations) Has(name string) bool {
	_, ok := a[name]
	return ok
}

// Value returns an element value of an annotation, or "" when absent.
func (a Annotations) Value(name, elem string) string {
	return a[name][elem]
}

// MethodDesc identifies a method within its class: name plus signature.
type MethodDesc struct {
	Name   string
	Params []ValueType
	Result ValueType
}

// String returns the descriptor form, e.g. "add(II)I".
func (d MethodDesc) String() string {
	var sb strings.Builder
	sb.WriteString(d.Name)
	sb.WriteByte('(')
	for _, p := range d.Params {
		sb.WriteString(p.Descriptor())
	}
	sb.WriteByte(')')
	sb.WriteString(d.Result.Descriptor())
	return sb.String()
}

// MethodRef is a stable, globally unique reference to a compiled method body.
type MethodRef struct {
	Class string
	Desc  MethodDesc
}

// String returns "Class.desc".
func (r MethodRef) String() string {
	return r.Class + "." + r.Desc.String()
}

// Method describes one compiled method.
type Method struct {
	Owner       string
	Name        string
	Static      bool
	Public      bool
	Params      []ValueType
	Result      ValueType
	Annotations Annotations
}

// IsConstructor reports whether m is an instance constructor.
func (m *Method) IsConstructor() bool { return m.Name == ConstructorName }

// ParameterCount returns the number of declared parameters.
func (m *Method) ParameterCount() int { return len(m.Params) }

// ParameterType returns the type of the i-th parameter.
func (m *Method) ParameterType(i int) ValueType { return m.Params[i] }

// Descriptor returns the method's descriptor within its owner.
func (m *Method) Descriptor() MethodDesc {
	return MethodDesc{Name: m.Name, Params: m.Params, Result: m.Result}
}

// Reference returns the reference used to emit calls to the compiled body.
func (m *Method) Reference() MethodRef {
	return MethodRef{Class: m.Owner, Desc: m.Descriptor()}
}

// Class describes one compiled class.
type Class struct {
	Name        string
	Parent      string
	Methods     []*Method
	Annotations Annotations
}

// PackageName returns the part of the qualified name before the last dot.
func (c *Class) PackageName() string {
	if i := strings.LastIndexByte(c.Name, '.'); i >= 0 {
		return c.Name[:i]
	}
	return ""
}

// SimpleName returns the unqualified class name. Nested classes
// ("Outer$Inner") yield the innermost name.
func (c *Class) SimpleName() string {
	name := c.Name[strings.LastIndexByte(c.Name, '.')+1:]
	return name[strings.LastIndexByte(name, '$')+1:]
}

// ClassSource enumerates and resolves compiled classes.
type ClassSource interface {
	// ClassNames returns all class names known to the compilation unit.
	ClassNames() []string
	// Get resolves a class descriptor. It returns false when the class has
	// no descriptor, e.g. after dead-code elimination removed it.
	Get(name string) (*Class, bool)
}
