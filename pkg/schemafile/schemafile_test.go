// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package schemafile

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/yeetrun/parseargs/pkg/parseargs"
)

var wantSchema = parseargs.Schema{
	"verbose": {Type: parseargs.Boolean, Short: "v", Multiple: true},
	"output":  {Type: parseargs.String, Short: "o"},
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile(%s) error = %v", path, err)
	}
	return path
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
	}{
		{
			name: "toml",
			file: "schema.toml",
			content: `
[options.verbose]
type = "boolean"
short = "v"
multiple = true

[options.output]
type = "string"
short = "o"
`,
		},
		{
			name: "yaml",
			file: "schema.yaml",
			content: `
options:
  verbose:
    type: boolean
    short: v
    multiple: true
  output:
    type: string
    short: o
`,
		},
		{
			name: "json",
			file: "schema.json",
			content: `{"options": {
  "verbose": {"type": "boolean", "short": "v", "multiple": true},
  "output": {"type": "string", "short": "o"}
}}`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, t.TempDir(), tt.file, tt.content)
			got, err := Load(path)
			if err != nil {
				t.Fatalf("Load() error = %v", err)
			}
			if diff := cmp.Diff(wantSchema, got); diff != "" {
				t.Errorf("Load() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestLoadEmpty(t *testing.T) {
	for _, name := range []string{"empty.toml", "empty.yaml"} {
		path := writeFile(t, t.TempDir(), name, "")
		got, err := Load(path)
		if err != nil {
			t.Fatalf("Load(%s) error = %v", name, err)
		}
		if len(got) != 0 {
			t.Errorf("Load(%s) = %v, want empty schema", name, got)
		}
	}
}

func TestLoadInvalid(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
	}{
		{
			name:    "non-boolean multiple toml",
			file:    "s.toml",
			content: "[options.tag]\ntype = \"string\"\nmultiple = \"yes\"\n",
		},
		{
			name:    "non-boolean multiple yaml",
			file:    "s.yaml",
			content: "options:\n  tag:\n    type: string\n    multiple: often\n",
		},
		{
			name:    "unknown key toml",
			file:    "s.toml",
			content: "[options.tag]\ntype = \"string\"\ndefault = \"x\"\n",
		},
		{
			name:    "unknown key yaml",
			file:    "s.yaml",
			content: "options:\n  tag:\n    type: string\n    required: true\n",
		},
		{
			name:    "unknown key json",
			file:    "s.json",
			content: `{"options": {"tag": {"type": "string", "alias": "t"}}}`,
		},
		{
			name:    "bad type",
			file:    "s.toml",
			content: "[options.count]\ntype = \"integer\"\n",
		},
		{
			name:    "long short",
			file:    "s.yaml",
			content: "options:\n  file:\n    type: string\n    short: fi\n",
		},
		{
			name:    "duplicate short",
			file:    "s.json",
			content: `{"options": {"a": {"type": "boolean", "short": "x"}, "b": {"type": "boolean", "short": "x"}}}`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, t.TempDir(), tt.file, tt.content)
			if _, err := Load(path); !errors.Is(err, parseargs.ErrInvalidConfig) {
				t.Errorf("Load() error = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

func TestLoadUnsupportedFormat(t *testing.T) {
	path := writeFile(t, t.TempDir(), "schema.ini", "verbose=boolean")
	_, err := Load(path)
	if err == nil {
		t.Fatal("Load(.ini) error = nil")
	}
	if errors.Is(err, parseargs.ErrInvalidConfig) {
		t.Errorf("Load(.ini) error = %v, should not be a config error", err)
	}
}

func TestLoadMissing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Load() error = %v, want os.ErrNotExist", err)
	}
}

func TestFind(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "a", "b", "c")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatal(err)
	}

	if _, err := Find(nested); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("Find() without file error = %v, want os.ErrNotExist", err)
	}

	want := writeFile(t, filepath.Join(root, "a"), ".parseargs.yaml", "options: {}\n")
	got, err := Find(nested)
	if err != nil {
		t.Fatalf("Find() error = %v", err)
	}
	if got != want {
		t.Errorf("Find() = %q, want %q", got, want)
	}

	// TOML wins over YAML in the same directory.
	want = writeFile(t, filepath.Join(root, "a"), ".parseargs.toml", "")
	if got, _ := Find(nested); got != want {
		t.Errorf("Find() = %q, want %q", got, want)
	}
}

func TestWriteRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "schema.toml")
	if err := Write(path, wantSchema); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if diff := cmp.Diff(wantSchema, got); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}

	bad := parseargs.Schema{"x": {Type: "float"}}
	if err := Write(path, bad); !errors.Is(err, parseargs.ErrInvalidConfig) {
		t.Errorf("Write(invalid) error = %v, want ErrInvalidConfig", err)
	}
}
