// Package core implements the scanning engine behind the utfscan command.
package core

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/sync/errgroup"

	utf "github.com/suiteutf/utf.go/runtime"
)

// Options configures a scan.
type Options struct {
	// Paths are the files to scan; empty means stdin.
	Paths []string
	// Sub is the encoding tag to validate against.
	Sub utf.SubType
	// Jobs bounds how many files are scanned concurrently.
	Jobs int
	// Lines enables locating the first offending line of invalid input.
	Lines bool
}

// Report is the per-input scan result.
type Report struct {
	Path   string
	Err    error    // I/O failure; the codec fields are meaningless when set
	Diags  utf.Diag // accumulated diagnostics from validation
	Points uint64   // code-points counted by the skipper
	Line   int      // 1-based line of the first hard error (0 when unused)
}

// Run scans every input concurrently and returns the reports in input
// order.
func Run(opts Options) ([]Report, error) {
	h := utf.GetHandler(opts.Sub)

	if len(opts.Paths) == 0 {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		rep := scanBuffer(h, data, opts.Lines)
		rep.Path = "<stdin>"
		return []Report{rep}, nil
	}

	jobs := opts.Jobs
	if jobs < 1 {
		jobs = 1
	}
	reports := make([]Report, len(opts.Paths))
	var g errgroup.Group
	g.SetLimit(jobs)
	for i, path := range opts.Paths {
		g.Go(func() error {
			reports[i] = scanFile(h, path, opts.Lines)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return reports, nil
}

func scanFile(h *utf.Handler, path string, lines bool) Report {
	data, err := os.ReadFile(path)
	if err != nil {
		return Report{Path: path, Err: err}
	}
	rep := scanBuffer(h, data, lines)
	rep.Path = path
	return rep
}

func scanBuffer(h *utf.Handler, data []byte, lines bool) Report {
	var rep Report

	text := utf.Text{Buffer: data}
	rep.Diags = h.Validate(&text)

	// count code-points with the skipper; it shares the decoder's
	// boundaries, including over malformed input
	scan := utf.Text{Buffer: data}
	for {
		n := h.Step(&scan, 4096)
		rep.Points += uint64(n)
		if n == 0 {
			break
		}
	}

	if lines && rep.Diags.Error() && !rep.Diags.BufferError() {
		rep.Line = offendingLine(h, data)
	}
	return rep
}

// offendingLine walks the buffer line by line and reports the 1-based
// number of the first line whose read fails.
func offendingLine(h *utf.Handler, data []byte) int {
	text := utf.Text{Buffer: data}
	line := 0
	for text.Offset < text.Length() {
		line++
		prev := text.Offset
		if _, errs := h.ReadLine(&text); errs.Error() {
			return line
		}
		if text.Offset == prev {
			break
		}
	}
	return line
}
