// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package parseargs tokenizes a command line against a declarative option
// schema and binds the recognized options to a result.
//
// It follows POSIX/GNU conventions:
//   - Long options: --verbose, --file=out.txt, --file out.txt
//   - Short options: -v, -f out.txt, -fout.txt
//   - Short option groups: -rf expands to -r -f
//   - "--" ends option parsing; everything after it is positional
//   - "-" and negative numbers such as -5 or -3.14 are positional
//
// # Basic Usage
//
//	schema := parseargs.Schema{
//	    "recursive": {Type: parseargs.Boolean, Short: "r"},
//	    "file":      {Type: parseargs.String, Short: "f"},
//	    "tag":       {Type: parseargs.String, Multiple: true},
//	}
//
//	res, err := parseargs.Parse(parseargs.Config{
//	    Args:    parseargs.ProcessArgs(),
//	    Options: schema,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	file, _ := res.Text("file")
//	fmt.Println(res.Bool("recursive"), file, res.Texts("tag"), res.Positionals)
//
// # Strict and Lenient Parsing
//
// Parsing is strict by default: unknown options, string options without a
// value, and boolean options given a value are reported as errors. With
// Config.Lenient set, unknown options become implicit boolean flags, a string
// option without a value is stored as true, and a boolean option given a value
// stores the value.
//
// Every error unwraps to one of ErrInvalidConfig, ErrUnknownOption,
// ErrMissingArgument, or ErrUnexpectedArgument:
//
//	if errors.Is(err, parseargs.ErrUnknownOption) {
//	    ...
//	}
//
// # Struct Binding
//
// SchemaOf derives a schema from struct tags, and Result.Decode fills the same
// struct from a result:
//
//	type Flags struct {
//	    Verbose bool          `flag:"verbose" short:"v"`
//	    Timeout time.Duration `flag:"timeout"`
//	    Tags    []string      `flag:"tag" short:"t"`
//	}
//
//	schema, err := parseargs.SchemaOf(Flags{})
//	...
//	var flags Flags
//	err = res.Decode(&flags)
package parseargs
