// Package config handles jsexport.toml generator configuration.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// FileName is the configuration file looked up in the working directory.
const FileName = "jsexport.toml"

// Config represents a jsexport.toml file.
type Config struct {
	Output  Output  `toml:"output"`
	Runtime Runtime `toml:"runtime"`

	// Path is the file the configuration was read from (empty for defaults).
	Path string `toml:"-"`
}

// Output configures the generated script layout.
type Output struct {
	Path   string `toml:"path"`
	Minify bool   `toml:"minify"`
	Indent string `toml:"indent"`
}

// Runtime names the runtime helper functions conversions call into.
// Each helper takes a single value and returns the converted value.
type Runtime struct {
	StringToNative  string `toml:"string-to-native"`
	StringToJS      string `toml:"string-to-js"`
	BooleanToNative string `toml:"boolean-to-native"`
	BooleanToJS     string `toml:"boolean-to-js"`
	CharToNative    string `toml:"char-to-native"`
	CharToJS        string `toml:"char-to-js"`
	LongToNative    string `toml:"long-to-native"`
	LongToJS        string `toml:"long-to-js"`
	ArrayToNative   string `toml:"array-to-native"`
	ArrayToJS       string `toml:"array-to-js"`
}

// DefaultRuntime returns the helper names of the standard runtime.
func DefaultRuntime() Runtime {
	return Runtime{
		StringToNative:  "$rt_str",
		StringToJS:      "$rt_ustr",
		BooleanToNative: "$rt_jsToBoolean",
		BooleanToJS:     "$rt_booleanToJs",
		CharToNative:    "$rt_jsToChar",
		CharToJS:        "$rt_charToJs",
		LongToNative:    "Long_fromNumber",
		LongToJS:        "Long_toNumber",
		ArrayToNative:   "$rt_jsToArray",
		ArrayToJS:       "$rt_arrayToJs",
	}
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{Runtime: DefaultRuntime()}
}

// Load parses a configuration file. Unset runtime helpers keep their defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read %s: %w", path, err)
	}
	c := Default()
	if err := toml.Unmarshal(data, c); err != nil {
		return nil, fmt.Errorf("parse error in %s: %w", path, err)
	}
	c.Runtime.fillDefaults()
	c.Path = path
	return c, nil
}

// FindAndLoad loads FileName from dir, falling back to Default when the
// file does not exist.
func FindAndLoad(dir string) (*Config, error) {
	path := filepath.Join(dir, FileName)
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}
		return nil, fmt.Errorf("cannot access %s: %w", path, err)
	}
	return Load(path)
}

func (r *Runtime) fillDefaults() {
	d := DefaultRuntime()
	fill := func(v *string, def string) {
		if *v == "" {
			*v = def
		}
	}
	fill(&r.StringToNative, d.StringToNative)
	fill(&r.StringToJS, d.StringToJS)
	fill(&r.BooleanToNative, d.BooleanToNative)
	fill(&r.BooleanToJS, d.BooleanToJS)
	fill(&r.CharToNative, d.CharToNative)
	fill(&r.CharToJS, d.CharToJS)
	fill(&r.LongToNative, d.LongToNative)
	fill(&r.LongToJS, d.LongToJS)
	fill(&r.ArrayToNative, d.ArrayToNative)
	fill(&r.ArrayToJS, d.ArrayToJS)
}
