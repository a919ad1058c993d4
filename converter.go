package md2hwpx

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/alnah/go-md2hwpx/internal/hwpx"
	"github.com/alnah/go-md2hwpx/internal/markdown"
	"github.com/alnah/go-md2hwpx/internal/owpml"
	"github.com/alnah/go-md2hwpx/internal/styles"
)

// converterConfig holds options applied by NewConverter.
type converterConfig struct {
	preset     string
	baseIndent int
	resolver   ImageResolver
}

// Option customizes a Converter.
type Option func(*converterConfig)

// WithPreset selects a style preset: default, academic, business, minimal.
func WithPreset(name string) Option {
	return func(c *converterConfig) { c.preset = name }
}

// WithBaseIndent sets the HWP units of indent per list or quote nesting
// level. Values below 1 are rejected by NewConverter.
func WithBaseIndent(units int) Option {
	return func(c *converterConfig) { c.baseIndent = units }
}

// WithImageResolver supplies a payload fetcher for image references. When
// absent, images render as placeholders with binaryItemIDRef 0.
func WithImageResolver(r ImageResolver) Option {
	return func(c *converterConfig) { c.resolver = r }
}

// Converter turns Markdown bytes into HWPX archives. A Converter is
// immutable after creation and safe for concurrent use; all per-document
// state lives inside Convert.
type Converter struct {
	cfg    converterConfig
	cat    *styles.Catalog
	parser *markdown.Parser
}

// NewConverter creates a Converter. The preset is resolved eagerly so
// configuration mistakes surface here, not mid-conversion.
func NewConverter(opts ...Option) (*Converter, error) {
	cfg := converterConfig{
		preset:     DefaultPreset,
		baseIndent: DefaultBaseIndent,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.baseIndent < 1 {
		return nil, fmt.Errorf("%w: base indent must be positive, got %d", ErrConfig, cfg.baseIndent)
	}
	cat, err := styles.Resolve(cfg.preset)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfig, err)
	}

	return &Converter{
		cfg:    cfg,
		cat:    cat,
		parser: markdown.NewParser(),
	}, nil
}

// Preset returns the name of the resolved style preset.
func (c *Converter) Preset() string { return c.cat.Preset() }

// Presets returns the available preset names.
func Presets() []string { return styles.Presets() }

// Convert runs the full pipeline for one document. Conversion is a pure
// CPU-bound transformation: no I/O, no logging, deterministic output for
// identical input. Internal panics surface as ErrInternal.
func (c *Converter) Convert(input Input) (result *ConvertResult, err error) {
	defer func() {
		if r := recover(); r != nil {
			result = nil
			err = fmt.Errorf("%w: %v", ErrInternal, r)
		}
	}()

	if !utf8.Valid(input.Source) {
		return nil, ErrEncoding
	}

	source := markdown.Normalize(input.Source)
	body, meta := markdown.ExtractFrontMatter(source)

	title := input.Title
	if title == "" {
		title = meta.Title
	}
	author := input.Author
	if author == "" {
		author = meta.Author
	}

	doc := c.parser.Parse(body)

	renderer := owpml.NewRenderer(c.cat, c.cfg.baseIndent, owpml.ImageResolver(c.cfg.resolver))
	rendered := renderer.Render(doc)

	archive, err := hwpx.Package(hwpx.Document{
		Header:  owpml.BuildHeader(c.cat, rendered.BinData),
		Section: rendered.Section,
		Title:   title,
		Author:  author,
		BinData: rendered.BinData,
		Preview: previewText(rendered.Preview),
	})
	if err != nil {
		return nil, fmt.Errorf("%w: packaging: %v", ErrInternal, err)
	}

	warnings := make([]Warning, 0, len(rendered.Warnings))
	for _, w := range rendered.Warnings {
		warnings = append(warnings, Warning{Kind: w.Kind, Line: w.Line, Message: w.Message})
	}

	return &ConvertResult{HWPX: archive, Warnings: warnings}, nil
}

// previewText joins the first preview lines for Preview/PrvText.txt.
func previewText(lines []string) string {
	const maxLines = 50
	if len(lines) > maxLines {
		lines = lines[:maxLines]
	}
	return strings.Join(lines, "\n")
}
