// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package schemafile loads option schemas from TOML, YAML, or JSON files.
//
// All three formats share one layout, a table of options keyed by long name:
//
//	[options.verbose]
//	type = "boolean"
//	short = "v"
//
//	[options.include]
//	type = "string"
//	short = "I"
//	multiple = true
package schemafile

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/yeetrun/parseargs/pkg/parseargs"
	"gopkg.in/yaml.v3"
)

// Names lists the file names Find looks for, in order of preference.
var Names = []string{".parseargs.toml", ".parseargs.yaml", ".parseargs.yml", ".parseargs.json"}

type file struct {
	Options parseargs.Schema `toml:"options" yaml:"options" json:"options"`
}

// Load reads and validates the schema at path. The format is chosen by the
// file extension. Decoding problems, unknown keys, and schema validation
// failures all match parseargs.ErrInvalidConfig.
func Load(path string) (parseargs.Schema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	schema, err := Decode(filepath.Ext(path), data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return schema, nil
}

// Decode parses data in the format named by ext (".toml", ".yaml", ".yml" or
// ".json") and validates the result.
func Decode(ext string, data []byte) (parseargs.Schema, error) {
	var f file
	switch strings.ToLower(ext) {
	case ".toml":
		md, err := toml.Decode(string(data), &f)
		if err != nil {
			return nil, invalid(err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			keys := make([]string, len(undecoded))
			for i, k := range undecoded {
				keys[i] = k.String()
			}
			sort.Strings(keys)
			return nil, invalid(fmt.Errorf("unknown keys: %s", strings.Join(keys, ", ")))
		}
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
			return nil, invalid(err)
		}
	case ".json":
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&f); err != nil {
			return nil, invalid(err)
		}
	default:
		return nil, fmt.Errorf("unsupported schema format %q", ext)
	}
	if f.Options == nil {
		f.Options = parseargs.Schema{}
	}
	if err := f.Options.Validate(); err != nil {
		return nil, err
	}
	return f.Options, nil
}

func invalid(err error) error {
	return fmt.Errorf("%w: %w", parseargs.ErrInvalidConfig, err)
}

// Find walks up from startDir looking for one of Names and returns the first
// match. It returns os.ErrNotExist when no directory up to the root has one.
func Find(startDir string) (string, error) {
	dir := filepath.Clean(startDir)
	for {
		for _, name := range Names {
			path := filepath.Join(dir, name)
			if _, err := os.Stat(path); err == nil {
				return path, nil
			} else if !os.IsNotExist(err) {
				return "", err
			}
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", os.ErrNotExist
}

// Write encodes schema as TOML at path.
func Write(path string, schema parseargs.Schema) error {
	if err := schema.Validate(); err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := toml.NewEncoder(f).Encode(file{Options: schema}); err != nil {
		return err
	}
	return f.Close()
}
