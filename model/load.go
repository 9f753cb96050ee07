package model

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fxamacker/cbor/v2"
	"gopkg.in/yaml.v3"
)

// Format is the encoding of a model file.
type Format int

const (
	FormatYAML Format = iota // also accepts JSON
	FormatCBOR
)

// FormatForPath picks the format from a file extension.
func FormatForPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".cbor":
		return FormatCBOR
	default:
		return FormatYAML
	}
}

// File is the on-disk shape of a compiled program snapshot.
type File struct {
	Classes []FileClass `yaml:"classes" cbor:"classes"`
}

// FileClass is one class entry. A stripped class keeps its position in the
// enumeration but has no descriptor.
type FileClass struct {
	Name        string       `yaml:"name" cbor:"name"`
	Parent      string       `yaml:"parent,omitempty" cbor:"parent,omitempty"`
	Stripped    bool         `yaml:"stripped,omitempty" cbor:"stripped,omitempty"`
	Annotations Annotations  `yaml:"annotations,omitempty" cbor:"annotations,omitempty"`
	Methods     []FileMethod `yaml:"methods,omitempty" cbor:"methods,omitempty"`
}

// FileMethod is one method entry. Types use the ValueType.String spelling;
// an empty result means void. Methods are public unless stated otherwise.
type FileMethod struct {
	Name        string      `yaml:"name" cbor:"name"`
	Static      bool        `yaml:"static,omitempty" cbor:"static,omitempty"`
	Public      *bool       `yaml:"public,omitempty" cbor:"public,omitempty"`
	Params      []string    `yaml:"params,omitempty" cbor:"params,omitempty"`
	Result      string      `yaml:"result,omitempty" cbor:"result,omitempty"`
	Annotations Annotations `yaml:"annotations,omitempty" cbor:"annotations,omitempty"`
}

// LoadFile reads a program snapshot, choosing the decoder by extension.
func LoadFile(path string) (*Program, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	p, err := Load(data, FormatForPath(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return p, nil
}

// Load decodes a program snapshot.
func Load(data []byte, format Format) (*Program, error) {
	var f File
	var err error
	switch format {
	case FormatCBOR:
		err = cbor.Unmarshal(data, &f)
	default:
		err = yaml.Unmarshal(data, &f)
	}
	if err != nil {
		return nil, fmt.Errorf("decoding model: %w", err)
	}
	return f.Program()
}

// Program converts the file representation into a Program.
func (f *File) Program() (*Program, error) {
	p := NewProgram()
	for _, fc := range f.Classes {
		if fc.Name == "" {
			return nil, fmt.Errorf("class without a name")
		}
		if fc.Stripped {
			p.Declare(fc.Name)
			continue
		}
		cls := &Class{Name: fc.Name, Parent: fc.Parent, Annotations: fc.Annotations}
		for _, fm := range fc.Methods {
			m, err := fm.method(fc.Name)
			if err != nil {
				return nil, fmt.Errorf("class %s: %w", fc.Name, err)
			}
			cls.Methods = append(cls.Methods, m)
		}
		p.Add(cls)
	}
	return p, nil
}

func (fm FileMethod) method(owner string) (*Method, error) {
	if fm.Name == "" {
		return nil, fmt.Errorf("method without a name")
	}
	m := &Method{
		Owner:       owner,
		Name:        fm.Name,
		Static:      fm.Static,
		Public:      fm.Public == nil || *fm.Public,
		Annotations: fm.Annotations,
	}
	for i, ps := range fm.Params {
		t, err := ParseType(ps)
		if err != nil {
			return nil, fmt.Errorf("method %s: param %d: %w", fm.Name, i, err)
		}
		if t.IsVoid() {
			return nil, fmt.Errorf("method %s: param %d: void parameter", fm.Name, i)
		}
		m.Params = append(m.Params, t)
	}
	if fm.Result != "" {
		t, err := ParseType(fm.Result)
		if err != nil {
			return nil, fmt.Errorf("method %s: result: %w", fm.Name, err)
		}
		m.Result = t
	}
	if m.IsConstructor() && !m.Result.IsVoid() {
		return nil, fmt.Errorf("method %s: constructor with a result", fm.Name)
	}
	return m, nil
}
