// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/yeetrun/parseargs/pkg/parseargs"
	"github.com/yeetrun/parseargs/pkg/tui"
	"gopkg.in/yaml.v3"
)

const (
	formatText = "text"
	formatJSON = "json"
	formatYAML = "yaml"
)

func validFormat(f string) bool {
	switch f {
	case formatText, formatJSON, formatYAML:
		return true
	}
	return false
}

func render(w io.Writer, format string, res *parseargs.Result, c tui.Colorizer) error {
	switch format {
	case formatJSON:
		return renderJSON(w, res)
	case formatYAML:
		return renderYAML(w, res)
	case formatText:
		return renderText(w, res, c)
	}
	return fmt.Errorf("unknown format %q", format)
}

func renderJSON(w io.Writer, res *parseargs.Result) error {
	b, err := json.MarshalIndent(res, "", "  ")
	if err != nil {
		return err
	}
	b = append(b, '\n')
	_, err = w.Write(b)
	return err
}

// renderText prints one row per option occurrence, then the positionals and
// the token stream. Sections are separated by a blank line and empty sections
// are omitted.
func renderText(w io.Writer, res *parseargs.Result, c tui.Colorizer) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	sections := 0
	section := func() {
		if sections > 0 {
			fmt.Fprintln(tw)
		}
		sections++
	}

	if res.Len() > 0 {
		section()
		fmt.Fprintf(tw, "%s\t%s\n", c.Dim("OPTION"), c.Dim("VALUE"))
		for _, name := range res.Names() {
			vals, _ := res.Lookup(name)
			for _, v := range vals {
				fmt.Fprintf(tw, "%s\t%s\n", c.Key("--"+name), c.Value(v.String()))
			}
		}
	}

	if len(res.Positionals) > 0 {
		section()
		fmt.Fprintf(tw, "%s\t%s\n", c.Dim("#"), c.Dim("POSITIONAL"))
		for i, p := range res.Positionals {
			fmt.Fprintf(tw, "%d\t%s\n", i, c.Value(p))
		}
	}

	if len(res.Tokens) > 0 {
		section()
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", c.Dim("INDEX"), c.Dim("KIND"), c.Dim("RAW"), c.Dim("VALUE"))
		for _, t := range res.Tokens {
			value := "-"
			if t.HasValue {
				value = t.Value
				if t.Inline {
					value += " (inline)"
				}
			}
			fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", t.Index, t.Kind, c.Key(t.RawName), value)
		}
	}

	if sections == 0 {
		fmt.Fprintln(tw, c.Dim("no options or positional arguments"))
	}
	return tw.Flush()
}

type tokenView struct {
	Kind     string `yaml:"kind"`
	Index    int    `yaml:"index"`
	Name     string `yaml:"name,omitempty"`
	RawName  string `yaml:"rawName"`
	Value    string `yaml:"value,omitempty"`
	HasValue bool   `yaml:"hasValue,omitempty"`
	Inline   bool   `yaml:"inline,omitempty"`
}

// renderYAML builds the document as a node tree so option order survives.
func renderYAML(w io.Writer, res *parseargs.Result) error {
	values := &yaml.Node{Kind: yaml.MappingNode}
	for _, name := range res.Names() {
		vals, _ := res.Lookup(name)
		var node *yaml.Node
		if res.Multiple(name) {
			node = &yaml.Node{Kind: yaml.SequenceNode}
			for _, v := range vals {
				node.Content = append(node.Content, valueNode(v))
			}
		} else {
			node = valueNode(vals[0])
		}
		values.Content = append(values.Content, strNode(name), node)
	}

	positionals := &yaml.Node{Kind: yaml.SequenceNode}
	for _, p := range res.Positionals {
		positionals.Content = append(positionals.Content, strNode(p))
	}

	root := &yaml.Node{Kind: yaml.MappingNode}
	root.Content = append(root.Content,
		strNode("values"), values,
		strNode("positionals"), positionals,
	)

	if len(res.Tokens) > 0 {
		views := make([]tokenView, len(res.Tokens))
		for i, t := range res.Tokens {
			views[i] = tokenView{
				Kind:     t.Kind.String(),
				Index:    t.Index,
				Name:     t.Name,
				RawName:  t.RawName,
				Value:    t.Value,
				HasValue: t.HasValue,
				Inline:   t.Inline,
			}
		}
		var tokens yaml.Node
		if err := tokens.Encode(views); err != nil {
			return err
		}
		root.Content = append(root.Content, strNode("tokens"), &tokens)
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(root); err != nil {
		return err
	}
	return enc.Close()
}

func strNode(s string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: s}
}

func valueNode(v parseargs.Value) *yaml.Node {
	if v.IsFlag() {
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!bool", Value: strconv.FormatBool(true)}
	}
	return strNode(v.String())
}
