// Package jsinterop generates the JS-facing bridge for exported classes:
// a namespace scaffold for their dotted package paths and, per class, a
// constructor binding plus member bindings that either alias compiled
// functions directly or wrap them with value conversion.
//
// Generation is one sequential pass run after every class and method body
// it references has been compiled and named:
//
//	collect → build namespace tree → render scaffold → render classes
package jsinterop

import (
	"fmt"

	"github.com/rubiojr/jsexport/config"
	"github.com/rubiojr/jsexport/conversion"
	"github.com/rubiojr/jsexport/exports"
	"github.com/rubiojr/jsexport/model"
	"github.com/rubiojr/jsexport/writer"
	"go.uber.org/zap"
)

// Report summarizes one generation pass.
type Report struct {
	Classes      int
	Constructors int
	Namespaces   int
	Wrappers     int
	Aliases      int
	// Skipped lists class names that had no descriptor.
	Skipped []string
}

// PostProcessor hooks generation into a compilation driver. Begin is called
// when rendering starts and Complete once all compiled code is final.
// A PostProcessor is not safe for concurrent use.
type PostProcessor struct {
	// Meta decides what is exported. Nil uses annotation metadata
	// over the class source passed to Begin.
	Meta Metadata
	// NewConverter builds the conversion engine over the pass's writer.
	// Nil uses the standard runtime helpers.
	NewConverter func(w *writer.Writer) Converter

	src  model.ClassSource
	w    *writer.Writer
	conv Converter
}

// Begin captures the state of the pass.
func (p *PostProcessor) Begin(src model.ClassSource, w *writer.Writer) {
	p.src = src
	p.w = w
	if p.NewConverter != nil {
		p.conv = p.NewConverter(w)
	} else {
		p.conv = conversion.New(w, config.DefaultRuntime())
	}
}

// Complete renders the bridge into the writer given to Begin.
func (p *PostProcessor) Complete() (Report, error) {
	if p.w == nil || p.src == nil {
		return Report{}, fmt.Errorf("jsinterop: Complete called before Begin")
	}
	meta := p.Meta
	if meta == nil {
		meta = exports.New(p.src)
	}
	report := Generate(p.src, meta, p.w, p.conv)
	Logger().Info("generated JS bridge",
		zap.Int("classes", report.Classes),
		zap.Int("namespaces", report.Namespaces),
		zap.Int("wrappers", report.Wrappers),
		zap.Int("aliases", report.Aliases),
		zap.Int("skipped", len(report.Skipped)))
	return report, nil
}

// Generate runs one full pass over src, appending to w: the scaffold,
// a blank line, the class wrappers and a trailing blank line.
func Generate(src model.ClassSource, meta Metadata, w *writer.Writer, conv Converter) Report {
	classes, skipped := Collect(src, meta)
	root := BuildNamespaces(classes)

	e := NewEmitter(w, conv)
	e.RenderNamespaces(root)
	w.NewLine()
	for _, cls := range classes {
		e.RenderClass(cls)
	}
	w.NewLine()

	report := e.Report()
	report.Skipped = skipped
	return report
}
