// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tui

import (
	"strings"
	"testing"
)

func TestColorizerDisabled(t *testing.T) {
	c := NewColorizer(false)
	if c.Enabled {
		t.Fatal("Enabled = true, want false")
	}
	if got := c.Key("name"); got != "name" {
		t.Errorf("Key() = %q, want plain text", got)
	}
	if got := (Colorizer{}).Error("boom"); got != "boom" {
		t.Errorf("zero Colorizer Error() = %q, want plain text", got)
	}
}

func TestColorizerEnabled(t *testing.T) {
	t.Setenv("NO_COLOR", "")
	t.Setenv("TERM", "xterm-256color")
	c := NewColorizer(true)
	if !c.Enabled {
		t.Fatal("Enabled = false, want true")
	}
	got := c.Value("x")
	if !strings.HasPrefix(got, "\x1b[") || !strings.Contains(got, "x") {
		t.Errorf("Value() = %q, want ANSI-wrapped text", got)
	}
}

func TestColorizerEnvironment(t *testing.T) {
	tests := []struct {
		name    string
		noColor string
		term    string
	}{
		{name: "NO_COLOR set", noColor: "1", term: "xterm"},
		{name: "dumb terminal", term: "dumb"},
		{name: "no TERM", term: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("NO_COLOR", tt.noColor)
			t.Setenv("TERM", tt.term)
			if c := NewColorizer(true); c.Enabled {
				t.Error("Enabled = true, want false")
			}
		})
	}
}
