// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package parseargs

import "os"

// Config controls a single Parse call.
type Config struct {
	// Args is the argument list without the program name.
	Args []string
	// Options declares the known options. Nil means none.
	Options Schema
	// Lenient accepts unknown options as boolean flags and tolerates options
	// with the wrong number of values instead of returning an error.
	Lenient bool
	// Tokens records every recognized token in Result.Tokens.
	Tokens bool
}

// ProcessArgs returns a copy of the arguments the process was started with,
// without the program name.
func ProcessArgs() []string {
	if len(os.Args) < 2 {
		return []string{}
	}
	return append([]string(nil), os.Args[1:]...)
}

// parser is the state of one Parse call.
type parser struct {
	ix     *index
	strict bool
	tokens bool
	res    *Result
}

// Parse scans cfg.Args left to right against cfg.Options.
//
// The schema is validated before any argument is looked at. On error no
// result is returned.
func Parse(cfg Config) (*Result, error) {
	ix, err := compile(cfg.Options)
	if err != nil {
		return nil, err
	}
	p := &parser{
		ix:     ix,
		strict: !cfg.Lenient,
		tokens: cfg.Tokens,
		res:    newResult(),
	}
	if err := p.scan(newCursor(cfg.Args)); err != nil {
		return nil, err
	}
	return p.res, nil
}

func (p *parser) scan(c *cursor) error {
	for c.Len() > 0 {
		a := c.next()

		k := classify(a.text, p.ix)
		if a.fromGroup {
			k = classifyExpanded(a.text)
		}
		switch k {
		case kindTerminator:
			p.record(Token{Kind: TokenTerminator, Index: a.index, RawName: a.text})
			for _, rest := range c.drain() {
				p.positional(rest)
			}
			return nil

		case kindShortGroup:
			expanded, err := p.expandGroup(a.text[1:])
			if err != nil {
				return err
			}
			c.splice(a.index, expanded)

		case kindLoneShort:
			short, _ := splitShort(a.text)
			long, _ := p.ix.longFor(short)
			o := occurrence{long: long, raw: "-" + short, index: a.index}
			o.value, o.hasValue = p.optionValue(c, long)
			if err := p.bind(o); err != nil {
				return err
			}

		case kindShortWithValue:
			short, value := splitShort(a.text)
			long, _ := p.ix.longFor(short)
			o := occurrence{long: long, raw: "-" + short, index: a.index, value: value, hasValue: true, inline: true}
			if err := p.bind(o); err != nil {
				return err
			}

		case kindLoneLong:
			long, _, _ := splitLong(a.text)
			o := occurrence{long: long, raw: "--" + long, index: a.index}
			o.value, o.hasValue = p.optionValue(c, long)
			if err := p.bind(o); err != nil {
				return err
			}

		case kindLongWithValue:
			long, value, _ := splitLong(a.text)
			o := occurrence{long: long, raw: "--" + long, index: a.index, value: value, hasValue: true, inline: true}
			if err := p.bind(o); err != nil {
				return err
			}

		default:
			p.positional(a)
		}
	}
	return nil
}

// optionValue consumes the next argument as the value of a string option,
// as long as that argument is not itself an option or the terminator.
func (p *parser) optionValue(c *cursor, long string) (string, bool) {
	if p.ix.typeOf(long) != String {
		return "", false
	}
	next, ok := c.peek()
	if !ok || next.fromGroup || classify(next.text, p.ix) != kindPositional {
		return "", false
	}
	c.next()
	return next.text, true
}

func (p *parser) positional(a pending) {
	p.res.Positionals = append(p.res.Positionals, a.text)
	p.record(Token{Kind: TokenPositional, Index: a.index, RawName: a.text, Value: a.text, HasValue: true})
}

func (p *parser) record(t Token) {
	if p.tokens {
		p.res.Tokens = append(p.res.Tokens, t)
	}
}
