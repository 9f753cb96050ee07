package jsinterop

import (
	"github.com/rubiojr/jsexport/model"
	"go.uber.org/zap"
)

// Metadata answers export questions about compiled classes and methods.
type Metadata interface {
	IsExported(cls *model.Class) bool
	PackagePath(cls *model.Class) string
	ClassName(cls *model.Class) string
	IsAutoMember(m *model.Method) bool
	MemberName(m *model.Method) string
}

// ExportedMember is a constructor or method exposed to JS.
type ExportedMember struct {
	// JSName is the property name; empty for constructors.
	JSName string
	Static bool
	Method *model.Method
}

// IsConstructor reports whether the member is the class's constructor.
func (m ExportedMember) IsConstructor() bool { return m.Method.IsConstructor() }

// ParameterCount returns the number of declared parameters.
func (m ExportedMember) ParameterCount() int { return m.Method.ParameterCount() }

// ExportedClass describes one class selected for exposure.
type ExportedClass struct {
	// Name is the qualified internal name used to reference compiled code.
	Name string
	// Package is the dotted JS package path, possibly empty.
	Package string
	// JSName is the class name under Package. Never empty.
	JSName string
	// Constructor is nil when the class declares none.
	Constructor *ExportedMember
	// Members are the auto-exported methods in declaration order.
	Members []ExportedMember
}

// FQN returns the dotted JS name the wrapper is assigned to.
func (c ExportedClass) FQN() string {
	if c.Package == "" {
		return c.JSName
	}
	return c.Package + "." + c.JSName
}

// Collect returns the exported classes of src in enumeration order.
// Names without a descriptor are skipped and returned separately.
func Collect(src model.ClassSource, meta Metadata) (classes []ExportedClass, skipped []string) {
	for _, name := range src.ClassNames() {
		cls, ok := src.Get(name)
		if !ok {
			// TODO: check whether export metadata is computed before dead-code
			// elimination; names reaching this point may indicate a pass ordering bug.
			Logger().Debug("exported class has no descriptor, skipping", zap.String("class", name))
			skipped = append(skipped, name)
			continue
		}
		if !meta.IsExported(cls) {
			continue
		}
		classes = append(classes, describe(cls, meta))
	}
	return classes, skipped
}

func describe(cls *model.Class, meta Metadata) ExportedClass {
	ec := ExportedClass{
		Name:    cls.Name,
		Package: meta.PackagePath(cls),
		JSName:  meta.ClassName(cls),
	}
	for _, m := range cls.Methods {
		if m.IsConstructor() {
			if ec.Constructor == nil {
				ec.Constructor = &ExportedMember{Method: m}
			}
			continue
		}
		if !meta.IsAutoMember(m) {
			continue
		}
		ec.Members = append(ec.Members, ExportedMember{
			JSName: meta.MemberName(m),
			Static: m.Static,
			Method: m,
		})
	}
	return ec
}
