package jsinterop

import (
	"testing"

	"github.com/rubiojr/jsexport/model"
	"github.com/rubiojr/jsexport/writer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func annotatedProgram() *model.Program {
	p := model.NewProgram(
		&model.Class{
			Name:        "org.example.Greeter",
			Annotations: model.Annotations{"JsType": {"namespace": "demo"}},
			Methods: []*model.Method{
				{Name: model.ConstructorName, Public: true, Params: []model.ValueType{model.StringType}},
				{Name: "greet", Public: true, Result: model.StringType},
				{Name: "secret", Result: model.IntType},
			},
		},
		&model.Class{Name: "org.example.Internal", Methods: []*model.Method{{Name: "run", Public: true}}},
		&model.Class{Name: "org.example.Removed", Annotations: model.Annotations{"JsType": nil}},
	)
	p.Strip("org.example.Removed")
	return p
}

func TestPostProcessorDefaults(t *testing.T) {
	w := writer.New(nil, writer.Options{})
	pp := &PostProcessor{}
	pp.Begin(annotatedProgram(), w)
	report, err := pp.Complete()
	require.NoError(t, err)

	want := `var demo = demo || {};

demo.Greeter = function(p0) {
    p0 = $rt_str(p0);
    oe_Greeter.call(this);
    oe_Greeter__init_(this, p0);
};
demo.Greeter.prototype = oe_Greeter.prototype;
oe_Greeter.prototype.greet = function() {
    var result = oe_Greeter_greet(this);
    result = $rt_ustr(result);
    return result;
};

`
	assert.Equal(t, want, w.String())
	assert.Equal(t, 1, report.Classes)
	assert.Equal(t, []string{"org.example.Removed"}, report.Skipped)
}

func TestPostProcessorCustomCollaborators(t *testing.T) {
	w := writer.New(nil, writer.Options{})
	var conv *fakeConverter
	pp := &PostProcessor{
		Meta: fakeMeta{},
		NewConverter: func(w *writer.Writer) Converter {
			conv = newFakeConverter(w, "parse")
			return conv
		},
	}
	pp.Begin(roundTripProgram(), w)
	report, err := pp.Complete()
	require.NoError(t, err)
	require.NotNil(t, conv)
	assert.Equal(t, 2, report.Classes)
	assert.Equal(t, []string{"p0", "p0", "p1"}, conv.toNative)
	assert.Equal(t, []string{"result"}, conv.toJS)
}

func TestCompleteBeforeBegin(t *testing.T) {
	_, err := (&PostProcessor{}).Complete()
	assert.Error(t, err)
}

func TestSkippedClassesAreLogged(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	prev := Logger()
	SetLogger(zap.New(core))
	defer SetLogger(prev)

	w := writer.New(nil, writer.Options{})
	pp := &PostProcessor{}
	pp.Begin(annotatedProgram(), w)
	_, err := pp.Complete()
	require.NoError(t, err)

	skipped := logs.FilterMessage("exported class has no descriptor, skipping").All()
	require.Len(t, skipped, 1)
	assert.Equal(t, "org.example.Removed", skipped[0].ContextMap()["class"])
	assert.Equal(t, 1, logs.FilterMessage("generated JS bridge").Len())
}
