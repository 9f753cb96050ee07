package jsinterop

import (
	"strconv"

	"github.com/rubiojr/jsexport/model"
	"github.com/rubiojr/jsexport/writer"
)

// Converter marshals values between the JS calling convention and the
// compiled code's representation. Both conversions emit a statement that
// reassigns binding in place.
type Converter interface {
	// ShouldWrap reports whether calls to m need a converting shim.
	ShouldWrap(m *model.Method) bool
	ConvertToNative(binding string, t model.ValueType)
	ConvertToJS(binding string, t model.ValueType)
}

// Strategy is how an exported method is attached.
type Strategy int

const (
	// DirectAlias attaches the compiled function itself.
	DirectAlias Strategy = iota
	// ConvertingWrapper attaches a shim converting arguments and result.
	ConvertingWrapper
)

func (s Strategy) String() string {
	switch s {
	case DirectAlias:
		return "alias"
	case ConvertingWrapper:
		return "wrapper"
	default:
		return "unknown"
	}
}

// StrategyFor resolves the attach strategy of m.
func StrategyFor(m ExportedMember, conv Converter) Strategy {
	if conv.ShouldWrap(m.Method) {
		return ConvertingWrapper
	}
	return DirectAlias
}

const resultBinding = "result"

// Emitter renders the namespace scaffold and class wrappers into a writer.
type Emitter struct {
	w      *writer.Writer
	conv   Converter
	report Report
}

// NewEmitter returns an Emitter writing to w. conv must emit into the same w.
func NewEmitter(w *writer.Writer, conv Converter) *Emitter {
	return &Emitter{w: w, conv: conv}
}

// Report returns the counts accumulated so far.
func (e *Emitter) Report() Report { return e.report }

// RenderNamespaces emits an idempotent initializer for every package node.
func (e *Emitter) RenderNamespaces(root *NamespaceNode) {
	root.Walk(func(path string, node *NamespaceNode, depth int) {
		if depth == 0 {
			e.w.Append("var ").Append(path)
		} else {
			e.w.Append(path)
		}
		e.w.WS().Append("=").WS().Append(path).WS().Append("||").WS().Append("{};").SoftNewLine()
		e.report.Namespaces++
	})
}

// RenderClass emits the constructor binding of cls followed by its members.
func (e *Emitter) RenderClass(cls ExportedClass) {
	w := e.w
	fqn := cls.FQN()
	w.Append(fqn).WS().Append("=").WS()
	if cls.Constructor != nil {
		e.renderConstructor(*cls.Constructor)
		w.Append(";").SoftNewLine()
		w.Append(fqn).Append(".prototype").WS().Append("=").WS().
			AppendClass(cls.Name).Append(".prototype;").NewLine()
		e.report.Constructors++
	} else {
		w.AppendClass(cls.Name).Append(";").NewLine()
	}
	e.report.Classes++

	for _, m := range cls.Members {
		if m.Static {
			w.Append(fqn).Append(".")
		} else {
			w.AppendClass(cls.Name).Append(".prototype.")
		}
		w.Append(m.JSName).WS().Append("=").WS()
		switch StrategyFor(m, e.conv) {
		case ConvertingWrapper:
			e.renderWrapper(m)
			e.report.Wrappers++
		default:
			e.renderAlias(m)
			e.report.Aliases++
		}
		w.Append(";").NewLine()
	}
}

func (e *Emitter) renderConstructor(ctor ExportedMember) {
	w := e.w
	m := ctor.Method
	e.renderSignature(m.ParameterCount())
	for i := range m.ParameterCount() {
		e.conv.ConvertToNative(param(i), m.ParameterType(i))
	}
	w.AppendClass(m.Owner).Append(".call(this);").SoftNewLine()
	w.AppendMethodBody(m.Reference()).Append("(this")
	for i := range m.ParameterCount() {
		w.Append(",").WS().Append(param(i))
	}
	w.Append(");").SoftNewLine()
	w.Outdent().Append("}")
}

func (e *Emitter) renderAlias(m ExportedMember) {
	if m.Static {
		e.w.AppendMethodBody(m.Method.Reference())
		return
	}
	e.w.AppendClass(m.Method.Owner).Append(".prototype.").AppendMethod(m.Method.Descriptor())
}

func (e *Emitter) renderWrapper(m ExportedMember) {
	w := e.w
	method := m.Method
	e.renderSignature(method.ParameterCount())

	var args []string
	if !m.Static {
		args = append(args, "this")
	}
	for i := range method.ParameterCount() {
		e.conv.ConvertToNative(param(i), method.ParameterType(i))
		args = append(args, param(i))
	}

	w.Append("var " + resultBinding).WS().Append("=").WS().AppendMethodBody(method.Reference()).Append("(")
	for i, a := range args {
		if i > 0 {
			w.Append(",").WS()
		}
		w.Append(a)
	}
	w.Append(");").SoftNewLine()
	e.conv.ConvertToJS(resultBinding, method.Result)
	w.Append("return " + resultBinding + ";").SoftNewLine()
	w.Outdent().Append("}")
}

// renderSignature opens "function(p0, p1) {" and indents the body.
func (e *Emitter) renderSignature(n int) {
	w := e.w
	w.Append("function(")
	for i := range n {
		if i > 0 {
			w.Append(",").WS()
		}
		w.Append(param(i))
	}
	w.Append(")").WS().Append("{").Indent().SoftNewLine()
}

func param(i int) string {
	return "p" + strconv.Itoa(i)
}
