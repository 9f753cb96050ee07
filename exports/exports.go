// Package exports decides which compiled classes and members are exposed to
// JS callers and under which names, based on the annotations the compiler
// front end recorded on each class and method.
//
// The rules follow the JsInterop conventions:
//
//   - A class is exported when it carries JsType, unless JsType.isNative is
//     "true" (native types describe existing JS objects and get no wrapper).
//   - Its JS package is JsType.namespace, where "<global>" means the
//     top level. Without a namespace the class's own package is used.
//   - Its JS name is JsType.name, or the simple class name.
//   - Constructors and static initializers are never auto members. JsIgnore
//     excludes a method, JsMethod includes it; otherwise public methods of
//     JsType classes are included.
//   - A member's JS name is JsMethod.name, or the method name.
package exports

import "github.com/rubiojr/jsexport/model"

// Annotation and element names.
const (
	JsType   = "JsType"
	JsMethod = "JsMethod"
	JsIgnore = "JsIgnore"

	ElemName      = "name"
	ElemNamespace = "namespace"
	ElemIsNative  = "isNative"

	// GlobalNamespace places an exported class at the top level.
	GlobalNamespace = "<global>"
)

// Annotations implements the generator's metadata capability. Class lookups
// for member decisions go through Source; a nil Source treats every member's
// owner as a JsType class.
type Annotations struct {
	Source model.ClassSource
}

// New returns metadata resolving member owners through src.
func New(src model.ClassSource) *Annotations {
	return &Annotations{Source: src}
}

// IsExported reports whether cls gets a JS-facing wrapper.
func (a *Annotations) IsExported(cls *model.Class) bool {
	if cls == nil || !cls.Annotations.Has(JsType) {
		return false
	}
	return cls.Annotations.Value(JsType, ElemIsNative) != "true"
}

// PackagePath returns the dotted JS package of cls, possibly empty.
func (a *Annotations) PackagePath(cls *model.Class) string {
	ns, ok := cls.Annotations[JsType][ElemNamespace]
	if !ok {
		return cls.PackageName()
	}
	if ns == GlobalNamespace {
		return ""
	}
	return ns
}

// ClassName returns the JS name of cls.
func (a *Annotations) ClassName(cls *model.Class) string {
	if name := cls.Annotations.Value(JsType, ElemName); name != "" {
		return name
	}
	return cls.SimpleName()
}

// IsAutoMember reports whether m is exported without further declaration.
func (a *Annotations) IsAutoMember(m *model.Method) bool {
	if m.IsConstructor() || m.Name == model.InitializerName {
		return false
	}
	if m.Annotations.Has(JsIgnore) {
		return false
	}
	if m.Annotations.Has(JsMethod) {
		return true
	}
	return m.Public && a.ownerIsJsType(m)
}

// MemberName returns the JS property name of m.
func (a *Annotations) MemberName(m *model.Method) string {
	if name := m.Annotations.Value(JsMethod, ElemName); name != "" {
		return name
	}
	return m.Name
}

func (a *Annotations) ownerIsJsType(m *model.Method) bool {
	if a.Source == nil {
		return true
	}
	owner, ok := a.Source.Get(m.Owner)
	return ok && owner.Annotations.Has(JsType)
}
