package main

import (
	"fmt"

	"github.com/alecthomas/kong"
	utf "github.com/suiteutf/utf.go/runtime"
	"github.com/suiteutf/utf.go/utfscan/core"
)

// CLI defines the utfscan command-line interface.
//
// We deliberately keep it minimal:
//   - paths: the files to scan (stdin when omitted)
//   - encoding: the tag to validate against
//   - jobs: how many files to scan concurrently
//   - lines: locate the first offending line of invalid files
//
// The exit status is non-zero when any file fails validation, so the tool
// can gate CI pipelines on encoding cleanliness.
type CLI struct {
	Paths    []string `arg:"" optional:"" type:"existingfile" help:"Files to scan (stdin when omitted)"`
	Encoding string   `short:"e" default:"UTF8st" help:"Encoding tag (UTF8, JUTF8st, UTF16le, CP1252st, ...)"`
	Jobs     int      `short:"j" default:"4" help:"Maximum files scanned concurrently"`
	Lines    bool     `short:"l" help:"Locate the first offending line of invalid files"`
	Verbose  bool     `short:"v" help:"Report warning diagnostics for clean files too"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("utfscan"),
		kong.Description("Validate text files against a byte-level Unicode encoding and report codec diagnostics."),
	)

	if err := run(&cli); err != nil {
		ctx.FatalIfErrorf(err)
	}
}

func run(cli *CLI) error {
	sub, ok := utf.ParseSubType(cli.Encoding)
	if !ok {
		return fmt.Errorf("unknown encoding tag %q (see the SubType list)", cli.Encoding)
	}

	reports, err := core.Run(core.Options{
		Paths: cli.Paths,
		Sub:   sub,
		Jobs:  cli.Jobs,
		Lines: cli.Lines,
	})
	if err != nil {
		return err
	}

	failed := 0
	for _, rep := range reports {
		switch {
		case rep.Err != nil:
			failed++
			fmt.Printf("%s: %v\n", rep.Path, rep.Err)
		case rep.Diags.Error():
			failed++
			if cli.Lines && rep.Line > 0 {
				fmt.Printf("%s: INVALID %s (line %d)\n", rep.Path, rep.Diags, rep.Line)
			} else {
				fmt.Printf("%s: INVALID %s\n", rep.Path, rep.Diags)
			}
		case cli.Verbose && rep.Diags.Any():
			fmt.Printf("%s: ok, %d code-points, warnings %s\n", rep.Path, rep.Points, rep.Diags.WarningsOnly())
		default:
			fmt.Printf("%s: ok, %d code-points\n", rep.Path, rep.Points)
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d inputs failed %s validation", failed, len(reports), sub)
	}
	return nil
}
