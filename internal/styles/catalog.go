// Package styles provides the fixed palette of character, paragraph, and
// table styles used by the renderer. A Catalog is resolved once per
// conversion from a preset name and is immutable afterwards; every role
// maps to a stable integer ID assigned in role-declaration order, matching
// the IDs emitted into Contents/header.xml.
package styles

import (
	"errors"
	"fmt"
)

// ErrUnknownPreset is returned by Resolve for preset names outside the
// built-in set.
var ErrUnknownPreset = errors.New("unknown style preset")

// CharRole names a character-property slot. The zero-based constant value
// is the charPr ID written to header.xml.
type CharRole int

const (
	CharDefault CharRole = iota
	CharBold
	CharItalic
	CharBoldItalic
	CharStrike
	CharInlineCode
	CharLink
	CharFootnoteRef

	numCharRoles
)

// ParaRole names a paragraph-property slot. The zero-based constant value
// is both the paraPr ID and the style ID written to header.xml.
type ParaRole int

const (
	ParaBody ParaRole = iota
	ParaH1
	ParaH2
	ParaH3
	ParaH4
	ParaH5
	ParaH6
	ParaCodeBlock
	ParaBlockQuote
	ParaListItem
	ParaTableCell
	ParaFootnoteDef
	ParaHR

	numParaRoles
)

// Border-fill IDs. ID 1 is the invisible default referenced by charPr and
// page borders; 2 draws table cell grids; 3 draws the horizontal-rule top
// border.
const (
	BorderFillDefault = 1
	BorderFillTable   = 2
	BorderFillHR      = 3
)

// Numbering IDs for list-item paragraphs.
const (
	NumberingOrdered       = 1
	NumberingBullet        = 2
	NumberingTaskChecked   = 3
	NumberingTaskUnchecked = 4
)

// FontSpec describes one character property: font faces per script,
// size in points, and decorations.
type FontSpec struct {
	Hangul     string
	Latin      string
	SizePt     float64
	Bold       bool
	Italic     bool
	Underline  bool
	Strike     bool
	Color      string
	Background string
}

// SizeHWP returns the font height in HWP units (1pt = 100).
func (f FontSpec) SizeHWP() int { return int(f.SizePt * 100) }

// ParaSpec describes one paragraph property. Align is one of left, center,
// right, both.
type ParaSpec struct {
	Align              string
	IndentPt           float64
	LeftMarginPt       float64
	RightMarginPt      float64
	LineSpacingPercent int
	SpaceBeforePt      float64
	SpaceAfterPt       float64
}

// HWP-unit accessors (1pt = 100 units).

func (p ParaSpec) IndentHWP() int      { return int(p.IndentPt * 100) }
func (p ParaSpec) LeftMarginHWP() int  { return int(p.LeftMarginPt * 100) }
func (p ParaSpec) RightMarginHWP() int { return int(p.RightMarginPt * 100) }
func (p ParaSpec) SpaceBeforeHWP() int { return int(p.SpaceBeforePt * 100) }
func (p ParaSpec) SpaceAfterHWP() int  { return int(p.SpaceAfterPt * 100) }

// Catalog is an immutable role→property table for one preset.
type Catalog struct {
	preset  string
	chars   [numCharRoles]FontSpec
	paras   [numParaRoles]ParaSpec
	fonts   []string
	fontIdx map[string]int
}

// Presets returns the built-in preset names in resolution order.
func Presets() []string {
	return []string{"default", "academic", "business", "minimal"}
}

// Resolve builds the Catalog for a preset name.
func Resolve(preset string) (*Catalog, error) {
	builder, ok := presetBuilders[preset]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownPreset, preset)
	}
	c := builder()
	c.preset = preset
	c.indexFonts()
	return c, nil
}

// Preset returns the name this catalog was resolved from.
func (c *Catalog) Preset() string { return c.preset }

// Char returns the FontSpec for a character role.
func (c *Catalog) Char(r CharRole) FontSpec { return c.chars[r] }

// Para returns the ParaSpec for a paragraph role.
func (c *Catalog) Para(r ParaRole) ParaSpec { return c.paras[r] }

// CharID returns the charPr ID for a role.
func (c *Catalog) CharID(r CharRole) int { return int(r) }

// ParaID returns the paraPr ID (and style ID) for a role.
func (c *Catalog) ParaID(r ParaRole) int { return int(r) }

// CharRoles iterates all character roles in declaration order.
func (c *Catalog) CharRoles() []CharRole {
	roles := make([]CharRole, numCharRoles)
	for i := range roles {
		roles[i] = CharRole(i)
	}
	return roles
}

// ParaRoles iterates all paragraph roles in declaration order.
func (c *Catalog) ParaRoles() []ParaRole {
	roles := make([]ParaRole, numParaRoles)
	for i := range roles {
		roles[i] = ParaRole(i)
	}
	return roles
}

// Fonts returns every font face used by the catalog, in first-use order
// over the character roles.
func (c *Catalog) Fonts() []string { return c.fonts }

// FontIndex returns the header.xml font ID for a face name, or 0 when the
// face is unknown.
func (c *Catalog) FontIndex(name string) int { return c.fontIdx[name] }

// HeadingRole maps a heading level (clamped to 1..6) to its paragraph role.
func HeadingRole(level int) ParaRole {
	if level < 1 {
		level = 1
	}
	if level > 6 {
		level = 6
	}
	return ParaBody + ParaRole(level)
}

// StyleName returns the display name for a paragraph style.
func StyleName(r ParaRole) string {
	switch r {
	case ParaBody:
		return "Body"
	case ParaH1, ParaH2, ParaH3, ParaH4, ParaH5, ParaH6:
		return fmt.Sprintf("Heading %d", int(r-ParaBody))
	case ParaCodeBlock:
		return "Code Block"
	case ParaBlockQuote:
		return "Block Quote"
	case ParaListItem:
		return "List Item"
	case ParaTableCell:
		return "Table Cell"
	case ParaFootnoteDef:
		return "Footnote"
	case ParaHR:
		return "Horizontal Rule"
	}
	return "Body"
}

func (c *Catalog) indexFonts() {
	c.fontIdx = make(map[string]int)
	for _, r := range c.CharRoles() {
		for _, face := range []string{c.chars[r].Hangul, c.chars[r].Latin} {
			if _, ok := c.fontIdx[face]; !ok {
				c.fontIdx[face] = len(c.fonts)
				c.fonts = append(c.fonts, face)
			}
		}
	}
}
