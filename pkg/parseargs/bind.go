// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package parseargs

// reservedNames are accepted on the command line but never stored, so input
// cannot write these keys into consumers that copy values into objects keyed
// by option name.
var reservedNames = map[string]bool{
	"__proto__": true,
}

// occurrence is one use of an option, resolved to its long name.
type occurrence struct {
	long     string
	raw      string // as written: "-f" or "--file"
	index    int
	value    string
	hasValue bool
	inline   bool
}

// bind validates o against the schema and stores it.
func (p *parser) bind(o occurrence) error {
	opt, known := p.ix.lookup(o.long)
	if !known {
		if p.strict {
			return &UnknownOptionError{Option: o.long, RawName: o.raw}
		}
		opt = Option{Type: Boolean}
	}
	if p.strict {
		if opt.Type == String && !o.hasValue {
			return &MissingArgumentError{Option: o.long, Short: opt.Short}
		}
		if opt.Type == Boolean && o.hasValue {
			return &UnexpectedArgumentError{Option: o.long, Short: opt.Short, Value: o.value}
		}
	}

	p.record(Token{
		Kind:     TokenOption,
		Index:    o.index,
		Name:     o.long,
		RawName:  o.raw,
		Value:    o.value,
		HasValue: o.hasValue,
		Inline:   o.inline,
	})

	if reservedNames[o.long] {
		return nil
	}
	v := FlagValue()
	if o.hasValue {
		v = StringValue(o.value)
	}
	if opt.Multiple {
		p.res.add(o.long, v)
	} else {
		p.res.set(o.long, v)
	}
	return nil
}
