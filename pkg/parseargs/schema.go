// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package parseargs

import (
	"fmt"
	"slices"
	"unicode/utf8"
)

// Type is the kind of value an option takes.
type Type string

const (
	// Boolean options never consume a value.
	Boolean Type = "boolean"
	// String options require a value, inline (--file=x, -fx) or as the next argument.
	String Type = "string"
)

// Option configures one long option.
type Option struct {
	Type     Type   `toml:"type" yaml:"type" json:"type"`
	Short    string `toml:"short,omitempty" yaml:"short,omitempty" json:"short,omitempty"`
	Multiple bool   `toml:"multiple,omitempty" yaml:"multiple,omitempty" json:"multiple,omitempty"`
}

// Schema maps canonical long option names to their configuration.
type Schema map[string]Option

// Validate reports the first configuration problem in s, checking options in
// name order so the result is stable.
func (s Schema) Validate() error {
	_, err := compile(s)
	return err
}

// index is a validated schema with its short alias table.
type index struct {
	schema Schema
	shorts map[string]string // short alias -> long name
}

func compile(s Schema) (*index, error) {
	ix := &index{
		schema: s,
		shorts: make(map[string]string, len(s)),
	}
	names := make([]string, 0, len(s))
	for name := range s {
		names = append(names, name)
	}
	slices.Sort(names)

	for _, name := range names {
		opt := s[name]
		if name == "" {
			return nil, &ConfigError{Msg: "option name must not be empty"}
		}
		switch opt.Type {
		case Boolean, String:
		default:
			return nil, &ConfigError{Option: name, Field: "type", Msg: fmt.Sprintf("must be %q or %q, got %q", String, Boolean, opt.Type)}
		}
		if opt.Short == "" {
			continue
		}
		if utf8.RuneCountInString(opt.Short) != 1 {
			return nil, &ConfigError{Option: name, Field: "short", Msg: fmt.Sprintf("must be a single character, got %q", opt.Short)}
		}
		if opt.Short == "-" {
			return nil, &ConfigError{Option: name, Field: "short", Msg: `"-" cannot be used as a short option`}
		}
		if other, ok := ix.shorts[opt.Short]; ok {
			return nil, &ConfigError{Option: name, Field: "short", Msg: fmt.Sprintf("%q is already used by %q", opt.Short, other)}
		}
		ix.shorts[opt.Short] = name
	}
	return ix, nil
}

// longFor resolves a short alias. Unknown aliases resolve to themselves, which
// is how lenient mode stores them.
func (ix *index) longFor(short string) (string, bool) {
	if long, ok := ix.shorts[short]; ok {
		return long, true
	}
	return short, false
}

func (ix *index) lookup(long string) (Option, bool) {
	opt, ok := ix.schema[long]
	return opt, ok
}

// typeOf returns the declared type of long, or Boolean for undeclared names.
func (ix *index) typeOf(long string) Type {
	if opt, ok := ix.schema[long]; ok {
		return opt.Type
	}
	return Boolean
}

// hasShort reports whether short is a declared alias.
func (ix *index) hasShort(short string) bool {
	_, ok := ix.shorts[short]
	return ok
}
