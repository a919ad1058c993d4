// Package ast defines the document tree produced by the Markdown parser
// and consumed by the OWPML renderer. Nodes are created once and never
// mutated after parsing.
package ast

import "strings"

// Document is an ordered sequence of top-level blocks.
type Document struct {
	Blocks []Block
}

// Block is a block-level node: heading, paragraph, list, code block,
// blockquote, table, thematic break, or footnote definition.
type Block interface {
	block()
}

// Inline is an inline-level node inside a block that carries inline content.
type Inline interface {
	inline()
}

// Heading is an ATX or setext heading, level 1..6.
type Heading struct {
	Level   int
	Content []Inline
}

// Paragraph is a run of inline content.
type Paragraph struct {
	Content []Inline
}

// List is a bullet or ordered list. Start is the first ordinal of an
// ordered list and is 1 for bullet lists.
type List struct {
	Ordered bool
	Start   int
	Items   []*ListItem
}

// TaskState marks GFM task list items.
type TaskState int

const (
	TaskNone TaskState = iota
	TaskUnchecked
	TaskChecked
)

// ListItem holds the blocks of one list entry. Task is non-TaskNone only
// for bullet list items whose source began with a checkbox marker.
type ListItem struct {
	Task     TaskState
	Children []Block
}

// CodeBlock is a fenced or indented code block. Info is the info-string
// after the opening fence, empty for indented blocks. Text is the literal
// content, newline-delimited.
type CodeBlock struct {
	Info string
	Text string
}

// BlockQuote nests arbitrarily.
type BlockQuote struct {
	Children []Block
}

// Alignment is a table column alignment resolved from the delimiter row.
type Alignment int

const (
	AlignDefault Alignment = iota
	AlignLeft
	AlignCenter
	AlignRight
)

// TableCell holds the inline content of one cell.
type TableCell struct {
	Content []Inline
}

// TableRow is an ordered sequence of cells.
type TableRow struct {
	Cells []TableCell
}

// Table is a GFM table. The header row length equals len(Alignments);
// body rows may be ragged and are normalized by the renderer.
type Table struct {
	Alignments []Alignment
	Header     TableRow
	Rows       []TableRow
}

// ThematicBreak renders as a horizontal rule paragraph.
type ThematicBreak struct{}

// FootnoteDefinition binds a label to its body blocks. Labels are unique
// within a document.
type FootnoteDefinition struct {
	Label    string
	Children []Block
}

func (*Heading) block()            {}
func (*Paragraph) block()          {}
func (*List) block()               {}
func (*CodeBlock) block()          {}
func (*BlockQuote) block()         {}
func (*Table) block()              {}
func (*ThematicBreak) block()      {}
func (*FootnoteDefinition) block() {}

// Text is a literal string run.
type Text struct {
	Value string
}

// EmphasisKind distinguishes single, double, and triple emphasis markers.
type EmphasisKind int

const (
	Italic EmphasisKind = iota
	Bold
	BoldItalic
)

// Emphasis wraps inline children in italic, bold, or bold-italic.
type Emphasis struct {
	Kind     EmphasisKind
	Children []Inline
}

// Strikethrough wraps inline children in ~~...~~.
type Strikethrough struct {
	Children []Inline
}

// InlineCode is a backtick span; Value is the literal text.
type InlineCode struct {
	Value string
}

// Link is an inline or automatic link.
type Link struct {
	Href     string
	Title    string
	Children []Inline
}

// Image is an image reference. The payload is not inlined; Src is resolved
// by the caller-supplied resolver, if any.
type Image struct {
	Src   string
	Title string
	Alt   string
}

// FootnoteReference points at a FootnoteDefinition by label.
type FootnoteReference struct {
	Label string
}

// HardBreak is a forced line break (trailing double space or backslash).
type HardBreak struct{}

// SoftBreak is a plain newline inside a paragraph.
type SoftBreak struct{}

func (*Text) inline()              {}
func (*Emphasis) inline()          {}
func (*Strikethrough) inline()     {}
func (*InlineCode) inline()        {}
func (*Link) inline()              {}
func (*Image) inline()             {}
func (*FootnoteReference) inline() {}
func (*HardBreak) inline()         {}
func (*SoftBreak) inline()         {}

// PlainText flattens inline content to its literal text. Breaks become
// spaces; images contribute their alt text.
func PlainText(inlines []Inline) string {
	var b strings.Builder
	for _, in := range inlines {
		switch n := in.(type) {
		case *Text:
			b.WriteString(n.Value)
		case *Emphasis:
			b.WriteString(PlainText(n.Children))
		case *Strikethrough:
			b.WriteString(PlainText(n.Children))
		case *InlineCode:
			b.WriteString(n.Value)
		case *Link:
			b.WriteString(PlainText(n.Children))
		case *Image:
			b.WriteString(n.Alt)
		case *FootnoteReference:
			b.WriteString("[^" + n.Label + "]")
		case *HardBreak, *SoftBreak:
			b.WriteByte(' ')
		}
	}
	return b.String()
}

// BlockText flattens a block subtree to plain text, joining nested blocks
// with spaces. Tables and thematic breaks contribute nothing.
func BlockText(blocks []Block) string {
	var parts []string
	for _, bl := range blocks {
		switch n := bl.(type) {
		case *Heading:
			parts = append(parts, PlainText(n.Content))
		case *Paragraph:
			parts = append(parts, PlainText(n.Content))
		case *List:
			for _, item := range n.Items {
				parts = append(parts, BlockText(item.Children))
			}
		case *CodeBlock:
			parts = append(parts, n.Text)
		case *BlockQuote:
			parts = append(parts, BlockText(n.Children))
		case *FootnoteDefinition:
			parts = append(parts, BlockText(n.Children))
		}
	}
	return strings.Join(parts, " ")
}
