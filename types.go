package md2hwpx

// DefaultPreset is the style preset used when none is configured.
const DefaultPreset = "default"

// DefaultBaseIndent is the indent per list or quote nesting level, in HWP
// units (1pt = 100).
const DefaultBaseIndent = 1000

// ImageResolver fetches the payload for an image reference. Returning nil
// bytes (with nil error) leaves the placeholder unresolved; errors are
// reported as warnings, never as conversion failures.
type ImageResolver func(src string) ([]byte, error)

// Input carries one document through Convert.
type Input struct {
	// Source is the Markdown text as UTF-8 bytes. A leading BOM is
	// stripped and line endings are normalized.
	Source []byte

	// Title and Author fill the package metadata. Empty fields fall back
	// to YAML front matter in the source, when present.
	Title  string
	Author string
}

// Warning kinds attached to ConvertResult.Warnings.
const (
	WarnTableShape = "table-shape"
	WarnImage      = "image"
	WarnFootnote   = "footnote"
)

// Warning is one recovered diagnostic. Line is 0 when the position is
// unknown. The core never logs; this is the only diagnostics channel.
type Warning struct {
	Kind    string
	Line    int
	Message string
}

// ConvertResult is the outcome of one conversion.
type ConvertResult struct {
	// HWPX is the complete archive.
	HWPX []byte

	// Warnings lists everything that was recovered rather than failed.
	Warnings []Warning
}
