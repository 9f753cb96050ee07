package jsinterop

import (
	"github.com/rubiojr/jsexport/model"
	"github.com/rubiojr/jsexport/writer"
)

// fakeMeta exports classes annotated "export", taking the package from
// its "pkg" element and the name from "name" (or the simple name).
// Public methods are auto members.
type fakeMeta struct{}

func (fakeMeta) IsExported(cls *model.Class) bool { return cls.Annotations.Has("export") }
func (fakeMeta) PackagePath(cls *model.Class) string {
	return cls.Annotations.Value("export", "pkg")
}

func (fakeMeta) ClassName(cls *model.Class) string {
	if n := cls.Annotations.Value("export", "name"); n != "" {
		return n
	}
	return cls.SimpleName()
}
func (fakeMeta) IsAutoMember(m *model.Method) bool { return m.Public && !m.IsConstructor() }
func (fakeMeta) MemberName(m *model.Method) string { return m.Name }

// fakeConverter wraps methods listed in wrap and records every conversion
// as a comment so tests can count them.
type fakeConverter struct {
	w        *writer.Writer
	wrap     map[string]bool
	toNative []string
	toJS     []string
}

func newFakeConverter(w *writer.Writer, wrap ...string) *fakeConverter {
	f := &fakeConverter{w: w, wrap: map[string]bool{}}
	for _, name := range wrap {
		f.wrap[name] = true
	}
	return f
}

func (f *fakeConverter) ShouldWrap(m *model.Method) bool { return f.wrap[m.Name] }

func (f *fakeConverter) ConvertToNative(binding string, t model.ValueType) {
	f.toNative = append(f.toNative, binding)
	f.w.Append("/*native " + binding + " " + t.String() + "*/").SoftNewLine()
}

func (f *fakeConverter) ConvertToJS(binding string, t model.ValueType) {
	f.toJS = append(f.toJS, binding)
	f.w.Append("/*js " + binding + " " + t.String() + "*/").SoftNewLine()
}

func exported(name, pkg string, methods ...*model.Method) *model.Class {
	return &model.Class{
		Name:        name,
		Annotations: model.Annotations{"export": {"pkg": pkg}},
		Methods:     methods,
	}
}

func ctor(params ...model.ValueType) *model.Method {
	return &model.Method{Name: model.ConstructorName, Public: true, Params: params}
}

func method(name string, static bool, result model.ValueType, params ...model.ValueType) *model.Method {
	return &model.Method{Name: name, Static: static, Public: true, Params: params, Result: result}
}
