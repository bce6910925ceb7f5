// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tui

import (
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"
)

type Colorizer struct {
	Enabled bool

	key, value, dim, err *color.Color
}

// NewColorizer returns a Colorizer that colors output only when enabled is
// true and the environment allows it (NO_COLOR unset, TERM not dumb).
func NewColorizer(enabled bool) Colorizer {
	if enabled {
		if os.Getenv("NO_COLOR") != "" {
			enabled = false
		}
		if t := os.Getenv("TERM"); t == "" || t == "dumb" {
			enabled = false
		}
	}
	c := Colorizer{
		Enabled: enabled,
		key:     color.New(color.FgCyan, color.Bold),
		value:   color.New(color.FgGreen),
		dim:     color.New(color.FgHiBlack),
		err:     color.New(color.FgRed, color.Bold),
	}
	for _, col := range []*color.Color{c.key, c.value, c.dim, c.err} {
		if enabled {
			col.EnableColor()
		} else {
			col.DisableColor()
		}
	}
	return c
}

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

func (c Colorizer) Key(text string) string {
	return c.wrap(c.key, text)
}

func (c Colorizer) Value(text string) string {
	return c.wrap(c.value, text)
}

func (c Colorizer) Dim(text string) string {
	return c.wrap(c.dim, text)
}

func (c Colorizer) Error(text string) string {
	return c.wrap(c.err, text)
}

func (c Colorizer) wrap(col *color.Color, text string) string {
	if !c.Enabled || col == nil {
		return text
	}
	return col.Sprint(text)
}
