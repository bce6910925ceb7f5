// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package parseargs

import (
	"errors"
	"fmt"
)

// Sentinel errors. Every error returned by Parse unwraps to one of these.
var (
	// ErrInvalidConfig is returned for a malformed schema, regardless of strictness.
	ErrInvalidConfig = errors.New("invalid option configuration")

	// ErrUnknownOption is returned in strict mode for an option missing from the schema.
	ErrUnknownOption = errors.New("unknown option")

	// ErrMissingArgument is returned in strict mode when a string option has no value.
	ErrMissingArgument = errors.New("option argument missing")

	// ErrUnexpectedArgument is returned in strict mode when a boolean option is given a value.
	ErrUnexpectedArgument = errors.New("unexpected option argument")
)

// ConfigError describes a malformed schema entry.
type ConfigError struct {
	Option string // Long option name, empty if the name itself is invalid
	Field  string // "type", "short", "multiple" or empty
	Msg    string
}

func (e *ConfigError) Error() string {
	switch {
	case e.Option == "":
		return fmt.Sprintf("invalid option configuration: %s", e.Msg)
	case e.Field == "":
		return fmt.Sprintf("invalid option configuration for %q: %s", e.Option, e.Msg)
	}
	return fmt.Sprintf("invalid option configuration for %q: %s %s", e.Option, e.Field, e.Msg)
}

func (e *ConfigError) Unwrap() error {
	return ErrInvalidConfig
}

// UnknownOptionError is returned when a flag-shaped argument has no schema entry.
type UnknownOptionError struct {
	Option  string // Long name, or the short alias when it could not be resolved
	RawName string // The option as written, e.g. "-x" or "--extra"
}

func (e *UnknownOptionError) Error() string {
	return fmt.Sprintf("unknown option '%s'; to pass it as a positional argument, place it after '--'", e.RawName)
}

func (e *UnknownOptionError) Unwrap() error {
	return ErrUnknownOption
}

// MissingArgumentError is returned when a string option is used without a value.
type MissingArgumentError struct {
	Option string
	Short  string
	// InGroup is set when the option appeared before the end of a short option group.
	InGroup bool
}

func (e *MissingArgumentError) Error() string {
	if e.InGroup {
		return fmt.Sprintf("option '%s <value>' argument missing; it must be last in a short option group", optionUsage(e.Option, e.Short))
	}
	return fmt.Sprintf("option '%s <value>' argument missing", optionUsage(e.Option, e.Short))
}

func (e *MissingArgumentError) Unwrap() error {
	return ErrMissingArgument
}

// UnexpectedArgumentError is returned when a boolean option is given an inline value.
type UnexpectedArgumentError struct {
	Option string
	Short  string
	Value  string
}

func (e *UnexpectedArgumentError) Error() string {
	return fmt.Sprintf("option '%s' does not take an argument", optionUsage(e.Option, e.Short))
}

func (e *UnexpectedArgumentError) Unwrap() error {
	return ErrUnexpectedArgument
}

// DecodeError is returned by Result.Decode when a stored value cannot be
// assigned to a struct field.
type DecodeError struct {
	Option string // The option name (e.g., "timeout")
	Field  string // The struct field name (e.g., "Timeout")
	Value  string // The offending value, or "true" for a bare flag
	Err    error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("option --%s: %v", e.Option, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

func optionUsage(long, short string) string {
	if short == "" {
		return "--" + long
	}
	return "-" + short + ", --" + long
}
