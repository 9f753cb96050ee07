package exports

import (
	"testing"

	"github.com/rubiojr/jsexport/model"
	"github.com/stretchr/testify/assert"
)

func TestIsExported(t *testing.T) {
	a := New(nil)
	tests := []struct {
		name string
		ann  model.Annotations
		want bool
	}{
		{"plain", nil, false},
		{"jstype", model.Annotations{JsType: nil}, true},
		{"native", model.Annotations{JsType: {ElemIsNative: "true"}}, false},
		{"not native", model.Annotations{JsType: {ElemIsNative: "false"}}, true},
		{"other annotation", model.Annotations{"Deprecated": nil}, false},
	}
	for _, tt := range tests {
		cls := &model.Class{Name: "org.example.Foo", Annotations: tt.ann}
		assert.Equal(t, tt.want, a.IsExported(cls), tt.name)
	}
	assert.False(t, a.IsExported(nil))
}

func TestPackagePathAndClassName(t *testing.T) {
	a := New(nil)
	tests := []struct {
		cls     string
		ann     map[string]string
		wantPkg string
		wantCls string
	}{
		{"org.example.Foo", nil, "org.example", "Foo"},
		{"org.example.Foo", map[string]string{ElemNamespace: "pkg.a"}, "pkg.a", "Foo"},
		{"org.example.Foo", map[string]string{ElemNamespace: GlobalNamespace}, "", "Foo"},
		{"org.example.Foo", map[string]string{ElemNamespace: "", ElemName: "Bar"}, "", "Bar"},
		{"org.example.Outer$Inner", nil, "org.example", "Inner"},
		{"Top", nil, "", "Top"},
	}
	for _, tt := range tests {
		cls := &model.Class{Name: tt.cls, Annotations: model.Annotations{JsType: tt.ann}}
		assert.Equal(t, tt.wantPkg, a.PackagePath(cls), tt.cls)
		assert.Equal(t, tt.wantCls, a.ClassName(cls), tt.cls)
	}
}

func TestIsAutoMember(t *testing.T) {
	jsCls := &model.Class{Name: "a.Js", Annotations: model.Annotations{JsType: nil}}
	plainCls := &model.Class{Name: "a.Plain"}
	a := New(model.NewProgram(jsCls, plainCls))

	tests := []struct {
		name string
		m    *model.Method
		want bool
	}{
		{"public on jstype", &model.Method{Owner: "a.Js", Name: "f", Public: true}, true},
		{"private on jstype", &model.Method{Owner: "a.Js", Name: "f"}, false},
		{"ignored", &model.Method{Owner: "a.Js", Name: "f", Public: true, Annotations: model.Annotations{JsIgnore: nil}}, false},
		{"jsmethod on private", &model.Method{Owner: "a.Js", Name: "f", Annotations: model.Annotations{JsMethod: nil}}, true},
		{"jsmethod on plain class", &model.Method{Owner: "a.Plain", Name: "f", Annotations: model.Annotations{JsMethod: nil}}, true},
		{"public on plain class", &model.Method{Owner: "a.Plain", Name: "f", Public: true}, false},
		{"unknown owner", &model.Method{Owner: "a.Gone", Name: "f", Public: true}, false},
		{"constructor", &model.Method{Owner: "a.Js", Name: model.ConstructorName, Public: true, Annotations: model.Annotations{JsMethod: nil}}, false},
		{"initializer", &model.Method{Owner: "a.Js", Name: model.InitializerName, Static: true, Public: true}, false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, a.IsAutoMember(tt.m), tt.name)
	}
}

func TestIsAutoMemberWithoutSource(t *testing.T) {
	a := New(nil)
	assert.True(t, a.IsAutoMember(&model.Method{Owner: "x.Y", Name: "f", Public: true}))
}

func TestMemberName(t *testing.T) {
	a := New(nil)
	assert.Equal(t, "compute", a.MemberName(&model.Method{Name: "compute"}))
	renamed := &model.Method{Name: "compute", Annotations: model.Annotations{JsMethod: {ElemName: "calc"}}}
	assert.Equal(t, "calc", a.MemberName(renamed))
	unnamed := &model.Method{Name: "compute", Annotations: model.Annotations{JsMethod: nil}}
	assert.Equal(t, "compute", a.MemberName(unnamed))
}
