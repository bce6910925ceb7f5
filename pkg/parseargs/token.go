// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package parseargs

import (
	"strings"
	"unicode/utf8"
)

// kind is the syntactic shape of a single argument.
type kind int

const (
	kindPositional     kind = iota
	kindTerminator          // --
	kindLoneShort           // -f
	kindShortGroup          // -rf
	kindShortWithValue      // -fVALUE
	kindLoneLong            // --file
	kindLongWithValue       // --file=VALUE
)

func (k kind) String() string {
	switch k {
	case kindPositional:
		return "positional"
	case kindTerminator:
		return "terminator"
	case kindLoneShort:
		return "lone-short"
	case kindShortGroup:
		return "short-group"
	case kindShortWithValue:
		return "short-with-value"
	case kindLoneLong:
		return "lone-long"
	case kindLongWithValue:
		return "long-with-value"
	}
	return "unknown"
}

// classify determines the shape of arg. It only consults the schema to tell
// -fVALUE from a group (by the type of the first alias) and to let a declared
// digit alias win over negative-number detection.
func classify(arg string, ix *index) kind {
	if arg == "--" {
		return kindTerminator
	}
	if strings.HasPrefix(arg, "--") {
		if i := strings.IndexByte(arg, '='); i > 2 {
			return kindLongWithValue
		}
		return kindLoneLong
	}
	if len(arg) < 2 || arg[0] != '-' {
		return kindPositional
	}

	cluster := arg[1:]
	short, size := firstShort(cluster)
	if isNegativeNumber(arg) && !ix.hasShort(short) {
		return kindPositional
	}
	if size == len(cluster) {
		return kindLoneShort
	}
	long, _ := ix.longFor(short)
	if ix.typeOf(long) == String {
		return kindShortWithValue
	}
	return kindShortGroup
}

// classifyExpanded classifies an argument produced by expandGroup. Those are
// always "-x" or "-xVALUE", even when x is a digit or a dash.
func classifyExpanded(arg string) kind {
	if _, rest := splitShort(arg); rest != "" {
		return kindShortWithValue
	}
	return kindLoneShort
}

// splitLong splits a long option token into its name and inline value.
func splitLong(arg string) (name, value string, hasValue bool) {
	if i := strings.IndexByte(arg, '='); i > 2 {
		return arg[2:i], arg[i+1:], true
	}
	return strings.TrimPrefix(arg, "--"), "", false
}

// splitShort splits -fVALUE (or a lone -f) into the alias and remainder.
func splitShort(arg string) (short, rest string) {
	short, size := firstShort(arg[1:])
	return short, arg[1+size:]
}

// firstShort returns the leading character of s and its length in bytes. A
// byte that is not valid UTF-8 is returned as is, so the option keeps the
// name the user typed.
func firstShort(s string) (string, int) {
	_, size := utf8.DecodeRuneInString(s)
	return s[:size], size
}

// isNegativeNumber reports whether arg is a dash followed by digits, with at
// most one decimal point between digits: "-5", "-3.14".
func isNegativeNumber(arg string) bool {
	if len(arg) < 2 || arg[0] != '-' {
		return false
	}
	intPart, frac, hasDot := strings.Cut(arg[1:], ".")
	if !allDigits(intPart) {
		return false
	}
	return !hasDot || allDigits(frac)
}

func allDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
