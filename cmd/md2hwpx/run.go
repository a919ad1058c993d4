package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	md2hwpx "github.com/alnah/go-md2hwpx"
)

// run executes the command and returns the process exit code. stdout and
// stderr are injected for tests.
func run(flags *cliFlags, args []string, stdout, stderr io.Writer) int {
	if flags.version {
		fmt.Fprintf(stdout, "md2hwpx %s\n", Version)
		return exitSuccess
	}

	if flags.listStyles {
		fmt.Fprintln(stdout, "Available style presets:")
		for _, preset := range md2hwpx.Presets() {
			fmt.Fprintf(stdout, "  - %s\n", preset)
		}
		return exitSuccess
	}

	if len(args) != 1 {
		fmt.Fprintln(stderr, usageText())
		return exitUsage
	}
	inputPath := args[0]

	if ext := filepath.Ext(inputPath); ext != ".md" && ext != ".markdown" {
		fmt.Fprintf(stderr, "input must be a .md or .markdown file, got %q\n", ext)
		return exitUsage
	}

	conv, err := md2hwpx.NewConverter(
		md2hwpx.WithPreset(flags.style),
		md2hwpx.WithBaseIndent(flags.baseIndent),
	)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitUsage
	}

	source, err := os.ReadFile(inputPath) // #nosec G304 -- user-provided path
	if err != nil {
		fmt.Fprintf(stderr, "reading %s: %v\n", inputPath, err)
		return exitIO
	}

	outputPath := flags.output
	if outputPath == "" {
		outputPath = strings.TrimSuffix(inputPath, filepath.Ext(inputPath)) + ".hwpx"
	}

	if flags.verbose {
		fmt.Fprintf(stderr, "Input:  %s\n", inputPath)
		fmt.Fprintf(stderr, "Output: %s\n", outputPath)
		fmt.Fprintf(stderr, "Style:  %s\n", conv.Preset())
	}

	res, err := conv.Convert(md2hwpx.Input{
		Source: source,
		Title:  flags.title,
		Author: flags.author,
	})
	if err != nil {
		fmt.Fprintln(stderr, err)
		if errors.Is(err, md2hwpx.ErrEncoding) {
			return exitParse
		}
		return exitUsage
	}

	if flags.verbose {
		for _, w := range res.Warnings {
			fmt.Fprintf(stderr, "warning: %s: %s\n", w.Kind, w.Message)
		}
	}

	if err := os.WriteFile(outputPath, res.HWPX, 0o644); err != nil {
		fmt.Fprintf(stderr, "writing %s: %v\n", outputPath, err)
		return exitIO
	}

	if flags.verbose {
		fmt.Fprintf(stderr, "Done. %d bytes written.\n", len(res.HWPX))
	} else {
		fmt.Fprintf(stdout, "Converted: %s\n", outputPath)
	}
	return exitSuccess
}
