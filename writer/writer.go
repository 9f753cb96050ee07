// Package writer implements the textual emission primitives used by the
// generator: appending text, referencing compiled classes and method bodies
// by their JS identifiers, indentation and line breaks.
package writer

import (
	"io"
	"strings"

	"github.com/rubiojr/jsexport/model"
)

// DefaultIndent is used when Options.Indent is empty.
const DefaultIndent = "    "

// Options controls output layout.
type Options struct {
	// Minified drops soft whitespace, soft line breaks and indentation.
	Minified bool
	// Indent is the per-level indentation string.
	Indent string
}

// Writer accumulates generated script text. Methods return the receiver
// so calls can be chained. The zero value is not usable; call New.
type Writer struct {
	sb        strings.Builder
	naming    *Naming
	opts      Options
	indent    int
	lineStart bool
}

// New returns a Writer resolving identifiers through naming.
// A nil naming gets a fresh Naming.
func New(naming *Naming, opts Options) *Writer {
	if naming == nil {
		naming = NewNaming()
	}
	if opts.Indent == "" {
		opts.Indent = DefaultIndent
	}
	return &Writer{naming: naming, opts: opts, lineStart: true}
}

// Naming returns the identifier policy in use.
func (w *Writer) Naming() *Naming { return w.naming }

// Minified reports whether soft layout is suppressed.
func (w *Writer) Minified() bool { return w.opts.Minified }

// Append writes literal text.
func (w *Writer) Append(s string) *Writer {
	if s == "" {
		return w
	}
	if w.lineStart {
		w.writeIndent()
		w.lineStart = false
	}
	w.sb.WriteString(s)
	return w
}

// AppendClass writes the identifier of a compiled class's constructor.
func (w *Writer) AppendClass(name string) *Writer {
	return w.Append(w.naming.ClassName(name))
}

// AppendMethodBody writes the identifier of a compiled method body function.
func (w *Writer) AppendMethodBody(ref model.MethodRef) *Writer {
	return w.Append(w.naming.MethodBodyName(ref))
}

// AppendMethod writes the property name of a virtual method slot.
func (w *Writer) AppendMethod(desc model.MethodDesc) *Writer {
	return w.Append(w.naming.MethodName(desc))
}

// WS writes a single space unless minified.
func (w *Writer) WS() *Writer {
	if w.opts.Minified {
		return w
	}
	return w.Append(" ")
}

// SoftNewLine ends the line unless minified.
func (w *Writer) SoftNewLine() *Writer {
	if w.opts.Minified {
		return w
	}
	return w.NewLine()
}

// NewLine always ends the line.
func (w *Writer) NewLine() *Writer {
	w.sb.WriteByte('\n')
	w.lineStart = true
	return w
}

// Indent increases the indentation level for subsequent lines.
func (w *Writer) Indent() *Writer {
	w.indent++
	return w
}

// Outdent decreases the indentation level for subsequent lines.
func (w *Writer) Outdent() *Writer {
	if w.indent > 0 {
		w.indent--
	}
	return w
}

func (w *Writer) writeIndent() {
	if w.opts.Minified {
		return
	}
	for range w.indent {
		w.sb.WriteString(w.opts.Indent)
	}
}

// Len returns the number of bytes written so far.
func (w *Writer) Len() int { return w.sb.Len() }

// String returns the accumulated text.
func (w *Writer) String() string { return w.sb.String() }

// WriteTo implements io.WriterTo.
func (w *Writer) WriteTo(out io.Writer) (int64, error) {
	n, err := io.WriteString(out, w.sb.String())
	return int64(n), err
}
