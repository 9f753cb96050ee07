// Package conversion emits the statements that move values between the JS
// calling convention and the representation used by compiled code.
//
// Numbers of kind byte, short, int, float and double, plain object
// references and void share one representation and pass through untouched.
// Everything else is converted by a runtime helper call, or, for boxed
// primitives, by the box class's own compiled valueOf body and xxxValue
// slot with a null guard.
package conversion

import (
	"github.com/rubiojr/jsexport/config"
	"github.com/rubiojr/jsexport/model"
	"github.com/rubiojr/jsexport/writer"
)

type boxType struct {
	prim  model.ValueType
	unbox string
}

var boxes = map[string]boxType{
	"java.lang.Boolean":   {model.BooleanType, "booleanValue"},
	"java.lang.Byte":      {model.ByteType, "byteValue"},
	"java.lang.Short":     {model.ShortType, "shortValue"},
	"java.lang.Character": {model.CharType, "charValue"},
	"java.lang.Integer":   {model.IntType, "intValue"},
	"java.lang.Long":      {model.LongType, "longValue"},
	"java.lang.Float":     {model.FloatType, "floatValue"},
	"java.lang.Double":    {model.DoubleType, "doubleValue"},
}

// IsBoxed reports whether t is a boxed primitive.
func IsBoxed(t model.ValueType) bool {
	if t.Kind != model.Object {
		return false
	}
	_, ok := boxes[t.Class]
	return ok
}

// NeedsConversion reports whether values of type t differ between the
// two representations.
func NeedsConversion(t model.ValueType) bool {
	switch t.Kind {
	case model.Boolean, model.Char, model.Long, model.Array:
		return true
	case model.Object:
		return t.Class == model.StringClass || IsBoxed(t)
	default:
		return false
	}
}

// Engine emits conversions into a writer.
type Engine struct {
	w  *writer.Writer
	rt config.Runtime
}

// New returns an Engine emitting into w with the given runtime helpers.
func New(w *writer.Writer, rt config.Runtime) *Engine {
	return &Engine{w: w, rt: rt}
}

// ShouldWrap reports whether any parameter or the result of m needs conversion.
func (e *Engine) ShouldWrap(m *model.Method) bool {
	for _, p := range m.Params {
		if NeedsConversion(p) {
			return true
		}
	}
	return NeedsConversion(m.Result)
}

// ConvertToNative converts binding from its JS form in place.
func (e *Engine) ConvertToNative(binding string, t model.ValueType) {
	if box, ok := boxes[t.Class]; ok && t.Kind == model.Object {
		e.nullGuard(binding)
		e.w.AppendMethodBody(valueOf(t.Class, box.prim)).Append("(")
		e.call(e.toNativeHelper(box.prim), binding)
		e.w.Append(");").SoftNewLine()
		return
	}
	if helper := e.toNativeHelper(t); helper != "" {
		e.assign(binding, helper)
	}
}

// ConvertToJS converts binding to its JS form in place.
func (e *Engine) ConvertToJS(binding string, t model.ValueType) {
	if box, ok := boxes[t.Class]; ok && t.Kind == model.Object {
		e.nullGuard(binding)
		unboxed := func() {
			e.w.Append(binding).Append(".").
				AppendMethod(model.MethodDesc{Name: box.unbox, Result: box.prim}).Append("()")
		}
		if helper := e.toJSHelper(box.prim); helper != "" {
			e.w.Append(helper).Append("(")
			unboxed()
			e.w.Append(")")
		} else {
			unboxed()
		}
		e.w.Append(";").SoftNewLine()
		return
	}
	if helper := e.toJSHelper(t); helper != "" {
		e.assign(binding, helper)
	}
}

func (e *Engine) toNativeHelper(t model.ValueType) string {
	switch t.Kind {
	case model.Boolean:
		return e.rt.BooleanToNative
	case model.Char:
		return e.rt.CharToNative
	case model.Long:
		return e.rt.LongToNative
	case model.Array:
		return e.rt.ArrayToNative
	case model.Object:
		if t.Class == model.StringClass {
			return e.rt.StringToNative
		}
	}
	return ""
}

func (e *Engine) toJSHelper(t model.ValueType) string {
	switch t.Kind {
	case model.Boolean:
		return e.rt.BooleanToJS
	case model.Char:
		return e.rt.CharToJS
	case model.Long:
		return e.rt.LongToJS
	case model.Array:
		return e.rt.ArrayToJS
	case model.Object:
		if t.Class == model.StringClass {
			return e.rt.StringToJS
		}
	}
	return ""
}

// assign emits "binding = helper(binding);".
func (e *Engine) assign(binding, helper string) {
	e.w.Append(binding).WS().Append("=").WS()
	e.call(helper, binding)
	e.w.Append(";").SoftNewLine()
}

// nullGuard emits "binding = binding === null ? null : ".
func (e *Engine) nullGuard(binding string) {
	e.w.Append(binding).WS().Append("=").WS().Append(binding).WS().Append("===").WS().
		Append("null").WS().Append("?").WS().Append("null").WS().Append(":").WS()
}

func (e *Engine) call(helper, arg string) {
	if helper == "" {
		e.w.Append(arg)
		return
	}
	e.w.Append(helper).Append("(").Append(arg).Append(")")
}

func valueOf(class string, prim model.ValueType) model.MethodRef {
	return model.MethodRef{
		Class: class,
		Desc: model.MethodDesc{
			Name:   "valueOf",
			Params: []model.ValueType{prim},
			Result: model.ObjectType(class),
		},
	}
}
