// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package parseargs

import (
	"bytes"
	"encoding/json"

	orderedmap "github.com/wk8/go-ordered-map"
)

// Value is one stored occurrence of an option: a bare flag (true) or a string.
type Value struct {
	s     string
	isStr bool
}

// FlagValue returns the value stored for an option used without a value.
func FlagValue() Value {
	return Value{}
}

// StringValue returns the value stored for an option given s.
func StringValue(s string) Value {
	return Value{s: s, isStr: true}
}

// IsFlag reports whether v is a bare flag occurrence.
func (v Value) IsFlag() bool {
	return !v.isStr
}

// Str returns the string value, if any.
func (v Value) Str() (string, bool) {
	return v.s, v.isStr
}

// Interface returns true for a bare flag and the string otherwise.
func (v Value) Interface() any {
	if v.isStr {
		return v.s
	}
	return true
}

// String formats v for display.
func (v Value) String() string {
	if v.isStr {
		return v.s
	}
	return "true"
}

func (v Value) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.Interface())
}

// TokenKind classifies an entry of Result.Tokens.
type TokenKind int

const (
	TokenOption TokenKind = iota
	TokenPositional
	TokenTerminator
)

func (k TokenKind) String() string {
	switch k {
	case TokenOption:
		return "option"
	case TokenPositional:
		return "positional"
	case TokenTerminator:
		return "option-terminator"
	}
	return "unknown"
}

func (k TokenKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Token is one recognized element of the input, recorded when Config.Tokens is set.
type Token struct {
	Kind  TokenKind `json:"kind"`
	Index int       `json:"index"` // Position in Config.Args
	// Name is the canonical long name for options and empty otherwise.
	Name string `json:"name,omitempty"`
	// RawName is the option as written ("-f", "--file"); for positionals it is
	// the argument itself.
	RawName  string `json:"rawName"`
	Value    string `json:"value,omitempty"`
	HasValue bool   `json:"hasValue,omitempty"`
	// Inline is set when the value was part of the same argument (--file=x, -fx).
	Inline bool `json:"inline,omitempty"`
}

// Result is the outcome of a successful Parse.
type Result struct {
	// values maps long name -> Value, or []Value for options with Multiple set,
	// in first-encounter order.
	values *orderedmap.OrderedMap

	// Positionals holds the non-option arguments in order.
	Positionals []string

	// Tokens is populated only when Config.Tokens is set.
	Tokens []Token
}

func newResult() *Result {
	return &Result{
		values:      orderedmap.New(),
		Positionals: []string{},
	}
}

func (r *Result) set(name string, v Value) {
	r.values.Set(name, v)
}

func (r *Result) add(name string, v Value) {
	existing, ok := r.values.Get(name)
	if !ok {
		r.values.Set(name, []Value{v})
		return
	}
	r.values.Set(name, append(existing.([]Value), v))
}

// Lookup returns every stored value for name. Single-valued options yield a
// one-element slice.
func (r *Result) Lookup(name string) ([]Value, bool) {
	v, ok := r.values.Get(name)
	if !ok {
		return nil, false
	}
	switch v := v.(type) {
	case Value:
		return []Value{v}, true
	case []Value:
		return v, true
	}
	return nil, false
}

// Has reports whether name was given.
func (r *Result) Has(name string) bool {
	_, ok := r.values.Get(name)
	return ok
}

// Bool reports whether name was given as a bare flag. For options with
// Multiple set the last occurrence decides.
func (r *Result) Bool(name string) bool {
	vals, ok := r.Lookup(name)
	return ok && vals[len(vals)-1].IsFlag()
}

// Text returns the string value of name, using the last occurrence for
// options with Multiple set.
func (r *Result) Text(name string) (string, bool) {
	vals, ok := r.Lookup(name)
	if !ok {
		return "", false
	}
	return vals[len(vals)-1].Str()
}

// Texts returns the string values of name in order, skipping bare flags.
func (r *Result) Texts(name string) []string {
	vals, _ := r.Lookup(name)
	var out []string
	for _, v := range vals {
		if s, ok := v.Str(); ok {
			out = append(out, s)
		}
	}
	return out
}

// Names returns the stored long names in first-encounter order.
func (r *Result) Names() []string {
	names := make([]string, 0, r.values.Len())
	for pair := r.values.Oldest(); pair != nil; pair = pair.Next() {
		names = append(names, pair.Key.(string))
	}
	return names
}

// Len returns the number of stored option names.
func (r *Result) Len() int {
	return r.values.Len()
}

// Multiple reports whether name is stored as a sequence.
func (r *Result) Multiple(name string) bool {
	v, _ := r.values.Get(name)
	_, ok := v.([]Value)
	return ok
}

// Map returns the values as plain Go data: true, a string, or for options with
// Multiple set a []any of those.
func (r *Result) Map() map[string]any {
	out := make(map[string]any, r.values.Len())
	for pair := r.values.Oldest(); pair != nil; pair = pair.Next() {
		out[pair.Key.(string)] = plain(pair.Value)
	}
	return out
}

func plain(v any) any {
	switch v := v.(type) {
	case Value:
		return v.Interface()
	case []Value:
		out := make([]any, len(v))
		for i, x := range v {
			out[i] = x.Interface()
		}
		return out
	}
	return nil
}

// MarshalJSON encodes the result as {"values": {...}, "positionals": [...]},
// keeping values in encounter order. Tokens are included when present.
func (r *Result) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(`{"values":{`)
	first := true
	for pair := r.values.Oldest(); pair != nil; pair = pair.Next() {
		if !first {
			buf.WriteByte(',')
		}
		first = false
		k, err := json.Marshal(pair.Key)
		if err != nil {
			return nil, err
		}
		v, err := json.Marshal(pair.Value)
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
	}
	buf.WriteString(`},"positionals":`)
	positionals := r.Positionals
	if positionals == nil {
		positionals = []string{}
	}
	p, err := json.Marshal(positionals)
	if err != nil {
		return nil, err
	}
	buf.Write(p)
	if len(r.Tokens) > 0 {
		t, err := json.Marshal(r.Tokens)
		if err != nil {
			return nil, err
		}
		buf.WriteString(`,"tokens":`)
		buf.Write(t)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
