package main

import (
	"fmt"
	"strings"

	flag "github.com/spf13/pflag"

	md2hwpx "github.com/alnah/go-md2hwpx"
)

// cliFlags holds all flags for the convert command.
type cliFlags struct {
	output     string
	style      string
	title      string
	author     string
	baseIndent int
	listStyles bool
	verbose    bool
	version    bool
}

func usageText() string {
	return strings.TrimSpace(fmt.Sprintf(`
usage: md2hwpx <input.md> [flags]

Convert a Markdown file to HWPX.

Flags:
  -o, --output string     output path (default: <input>.hwpx)
  -s, --style string      style preset: %s (default "default")
      --title string      document title (overrides front matter)
      --author string     document author (overrides front matter)
      --base-indent int   HWP units per list nesting level (default %d)
      --list-styles       list available style presets and exit
  -v, --verbose           print progress and warnings
      --version           print version and exit
`, strings.Join(md2hwpx.Presets(), ", "), md2hwpx.DefaultBaseIndent))
}

// parseFlags parses argv (without the program name) and returns the flags
// plus positional arguments.
func parseFlags(argv []string) (*cliFlags, []string, error) {
	flags := &cliFlags{}

	fs := flag.NewFlagSet("md2hwpx", flag.ContinueOnError)
	fs.Usage = func() {}
	fs.StringVarP(&flags.output, "output", "o", "", "output path")
	fs.StringVarP(&flags.style, "style", "s", md2hwpx.DefaultPreset, "style preset")
	fs.StringVar(&flags.title, "title", "", "document title")
	fs.StringVar(&flags.author, "author", "", "document author")
	fs.IntVar(&flags.baseIndent, "base-indent", md2hwpx.DefaultBaseIndent, "indent per nesting level")
	fs.BoolVar(&flags.listStyles, "list-styles", false, "list style presets")
	fs.BoolVarP(&flags.verbose, "verbose", "v", false, "verbose output")
	fs.BoolVar(&flags.version, "version", false, "print version")

	if err := fs.Parse(argv); err != nil {
		return nil, nil, fmt.Errorf("%w\n\n%s", err, usageText())
	}
	return flags, fs.Args(), nil
}
