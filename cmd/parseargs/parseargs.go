// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command parseargs parses an argument list against an option schema and
// prints the recognized options and positional arguments.
//
//	parseargs [--schema FILE] [--lenient] [--tokens] [--format text|json|yaml]
//	          [--line "ARGS"] [--no-color] -- ARGS...
//	parseargs [--schema FILE] --write-schema OUT.toml
//
// Without --schema, the schema is read from PARSEARGS_SCHEMA or from the
// nearest .parseargs.toml (or .yaml, .json) in the working directory or its
// parents. With no schema at all every option is unknown. --write-schema
// converts the loaded schema to TOML instead of parsing anything.
package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/google/shlex"
	"github.com/shayne/yargs"
	"github.com/yeetrun/parseargs/pkg/parseargs"
	"github.com/yeetrun/parseargs/pkg/schemafile"
	"github.com/yeetrun/parseargs/pkg/tui"
)

const (
	schemaEnv = "PARSEARGS_SCHEMA"
	formatEnv = "PARSEARGS_FORMAT"
)

type globalFlagsParsed struct {
	Schema  string `flag:"schema" help:"Option schema file (.toml, .yaml, .json) (PARSEARGS_SCHEMA)"`
	Lenient bool   `flag:"lenient" help:"Treat unknown options as flags and tolerate missing or unexpected values"`
	Tokens  bool   `flag:"tokens" help:"Include the token stream in the output"`
	Format  string `flag:"format" help:"Output format: text, json or yaml (PARSEARGS_FORMAT)"`
	Line    string `flag:"line" help:"Shell-quoted argument string to parse instead of ARGS"`
	NoColor bool   `flag:"no-color" help:"Disable colored output"`

	WriteSchema string `flag:"write-schema" help:"Write the loaded schema as TOML to this file and exit"`
}

func parseGlobalFlags(args []string) (globalFlagsParsed, []string, error) {
	result, err := yargs.ParseKnownFlags[globalFlagsParsed](args, yargs.KnownFlagsOptions{})
	if err != nil {
		return globalFlagsParsed{}, nil, err
	}
	remaining := result.RemainingArgs
	if len(remaining) > 0 && remaining[0] == "--" {
		remaining = remaining[1:]
	}
	return result.Flags, remaining, nil
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("parseargs: ")

	if err := run(os.Args[1:], os.Stdout); err != nil {
		printCLIError(os.Stderr, err)
		os.Exit(1)
	}
}

func run(args []string, stdout io.Writer) error {
	flags, remaining, err := parseGlobalFlags(args)
	if err != nil {
		return err
	}

	format, err := resolveFormat(flags.Format)
	if err != nil {
		return err
	}

	schema, err := loadSchema(flags.Schema)
	if err != nil {
		return err
	}

	if flags.WriteSchema != "" {
		if len(remaining) > 0 || flags.Line != "" {
			return fmt.Errorf("--write-schema does not parse arguments, got %q", remaining)
		}
		if err := schemafile.Write(flags.WriteSchema, schema); err != nil {
			return err
		}
		_, err := fmt.Fprintf(stdout, "wrote %s\n", flags.WriteSchema)
		return err
	}

	input := remaining
	if flags.Line != "" {
		if len(remaining) > 0 {
			return fmt.Errorf("--line cannot be combined with trailing arguments %q", remaining)
		}
		if input, err = shlex.Split(flags.Line); err != nil {
			return fmt.Errorf("failed to split --line: %w", err)
		}
	}

	res, err := parseargs.Parse(parseargs.Config{
		Args:    input,
		Options: schema,
		Lenient: flags.Lenient,
		Tokens:  flags.Tokens,
	})
	if err != nil {
		return err
	}

	colorOut := false
	if f, ok := stdout.(*os.File); ok {
		colorOut = !flags.NoColor && tui.IsTerminal(f)
	}
	return render(stdout, format, res, tui.NewColorizer(colorOut))
}

// resolveFormat picks the output format from the flag, then the environment.
// An unusable environment value is ignored, an unusable flag is an error.
func resolveFormat(flagValue string) (string, error) {
	if flagValue != "" {
		if !validFormat(flagValue) {
			return "", fmt.Errorf("unknown format %q (want text, json or yaml)", flagValue)
		}
		return flagValue, nil
	}
	if env := os.Getenv(formatEnv); env != "" {
		if validFormat(env) {
			return env, nil
		}
		log.Printf("ignoring %s=%q: unknown format", formatEnv, env)
	}
	return formatText, nil
}

func loadSchema(path string) (parseargs.Schema, error) {
	if path == "" {
		path = os.Getenv(schemaEnv)
	}
	if path == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, err
		}
		found, err := schemafile.Find(cwd)
		if errors.Is(err, os.ErrNotExist) {
			return parseargs.Schema{}, nil
		}
		if err != nil {
			return nil, err
		}
		path = found
	}
	return schemafile.Load(path)
}

func printCLIError(w io.Writer, err error) {
	if err == nil {
		return
	}
	colored := false
	if f, ok := w.(*os.File); ok {
		colored = tui.IsTerminal(f)
	}
	c := tui.NewColorizer(colored)
	fmt.Fprintf(w, "%s %v\n", c.Error("error:"), err)
}
