// Package markdown parses CommonMark/GFM source into the document tree the
// renderer consumes. Parsing itself is delegated to goldmark with the GFM
// and footnote extensions; this package adapts goldmark's AST into the
// stable tree defined by internal/ast and performs input normalization.
package markdown

import (
	"bytes"
	"strings"

	gast "github.com/yuin/goldmark/ast"
	east "github.com/yuin/goldmark/extension/ast"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/text"

	"github.com/alnah/go-md2hwpx/internal/ast"
)

// Parser converts Markdown bytes into an ast.Document. A Parser is safe to
// reuse across conversions; it holds no per-document state.
type Parser struct {
	md goldmark.Markdown
}

// NewParser creates a Parser with the GFM extension set (tables,
// strikethrough, autolinks, task lists) plus footnotes.
func NewParser() *Parser {
	return &Parser{
		md: goldmark.New(
			goldmark.WithExtensions(
				extension.GFM,
				extension.Footnote,
			),
		),
	}
}

// Parse builds the document tree for normalized source bytes. Parsing is
// total: malformed constructs degrade to paragraphs or literal text, never
// to an error.
func (p *Parser) Parse(source []byte) *ast.Document {
	root := p.md.Parser().Parse(text.NewReader(source))
	a := &adapter{source: source, footnoteLabels: make(map[int]string)}
	a.indexFootnotes(root)
	return &ast.Document{Blocks: a.blocks(root)}
}

// adapter walks one goldmark tree. Footnote links carry only a numeric
// index, so definition labels are indexed up front.
type adapter struct {
	source         []byte
	footnoteLabels map[int]string
}

func (a *adapter) indexFootnotes(root gast.Node) {
	for c := root.FirstChild(); c != nil; c = c.NextSibling() {
		list, ok := c.(*east.FootnoteList)
		if !ok {
			continue
		}
		for f := list.FirstChild(); f != nil; f = f.NextSibling() {
			if fn, ok := f.(*east.Footnote); ok {
				a.footnoteLabels[fn.Index] = string(fn.Ref)
			}
		}
	}
}

func (a *adapter) blocks(parent gast.Node) []ast.Block {
	var out []ast.Block
	for c := parent.FirstChild(); c != nil; c = c.NextSibling() {
		out = append(out, a.block(c)...)
	}
	return out
}

func (a *adapter) block(n gast.Node) []ast.Block {
	switch n := n.(type) {
	case *gast.Heading:
		return []ast.Block{&ast.Heading{Level: n.Level, Content: a.inlines(n)}}
	case *gast.Paragraph:
		return []ast.Block{&ast.Paragraph{Content: a.inlines(n)}}
	case *gast.TextBlock:
		return []ast.Block{&ast.Paragraph{Content: a.inlines(n)}}
	case *gast.Blockquote:
		return []ast.Block{&ast.BlockQuote{Children: a.blocks(n)}}
	case *gast.FencedCodeBlock:
		var info string
		if n.Info != nil {
			info = string(n.Info.Segment.Value(a.source))
		}
		return []ast.Block{&ast.CodeBlock{Info: info, Text: a.rawLines(n)}}
	case *gast.CodeBlock:
		return []ast.Block{&ast.CodeBlock{Text: a.rawLines(n)}}
	case *gast.ThematicBreak:
		return []ast.Block{&ast.ThematicBreak{}}
	case *gast.List:
		return []ast.Block{a.list(n)}
	case *east.Table:
		return []ast.Block{a.table(n)}
	case *east.FootnoteList:
		var defs []ast.Block
		for f := n.FirstChild(); f != nil; f = f.NextSibling() {
			if fn, ok := f.(*east.Footnote); ok {
				defs = append(defs, &ast.FootnoteDefinition{
					Label:    string(fn.Ref),
					Children: a.blocks(fn),
				})
			}
		}
		return defs
	case *gast.HTMLBlock:
		// Raw HTML is outside the supported grammar; keep its text visible.
		if txt := strings.TrimRight(a.rawLines(n), "\n"); txt != "" {
			return []ast.Block{&ast.Paragraph{Content: []ast.Inline{&ast.Text{Value: txt}}}}
		}
		return nil
	}
	return nil
}

func (a *adapter) list(n *gast.List) *ast.List {
	list := &ast.List{Ordered: n.IsOrdered(), Start: 1}
	if list.Ordered && n.Start > 0 {
		list.Start = n.Start
	}
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		li, ok := c.(*gast.ListItem)
		if !ok {
			continue
		}
		list.Items = append(list.Items, a.listItem(li, list.Ordered))
	}
	return list
}

func (a *adapter) listItem(li *gast.ListItem, ordered bool) *ast.ListItem {
	item := &ast.ListItem{Task: ast.TaskNone}

	// The checkbox node is the first inline of the item's first text block.
	// Task markers are valid only on bullet list items; on ordered items
	// the marker stays literal text.
	var checkbox *east.TaskCheckBox
	if first := li.FirstChild(); first != nil {
		if cb, ok := first.FirstChild().(*east.TaskCheckBox); ok {
			checkbox = cb
		}
	}
	if checkbox != nil && !ordered {
		if checkbox.IsChecked {
			item.Task = ast.TaskChecked
		} else {
			item.Task = ast.TaskUnchecked
		}
	}

	item.Children = a.blocks(li)

	if checkbox != nil && ordered {
		marker := "[ ]"
		if checkbox.IsChecked {
			marker = "[x]"
		}
		if len(item.Children) > 0 {
			if p, ok := item.Children[0].(*ast.Paragraph); ok {
				p.Content = append([]ast.Inline{&ast.Text{Value: marker}}, p.Content...)
			}
		}
	}
	return item
}

func (a *adapter) table(n *east.Table) *ast.Table {
	tbl := &ast.Table{}
	for _, al := range n.Alignments {
		tbl.Alignments = append(tbl.Alignments, alignment(al))
	}
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		switch row := c.(type) {
		case *east.TableHeader:
			tbl.Header = a.tableRow(row)
		case *east.TableRow:
			tbl.Rows = append(tbl.Rows, a.tableRow(row))
		}
	}
	return tbl
}

func (a *adapter) tableRow(row gast.Node) ast.TableRow {
	var r ast.TableRow
	for c := row.FirstChild(); c != nil; c = c.NextSibling() {
		if cell, ok := c.(*east.TableCell); ok {
			r.Cells = append(r.Cells, ast.TableCell{Content: a.inlines(cell)})
		}
	}
	return r
}

func alignment(al east.Alignment) ast.Alignment {
	switch al {
	case east.AlignLeft:
		return ast.AlignLeft
	case east.AlignCenter:
		return ast.AlignCenter
	case east.AlignRight:
		return ast.AlignRight
	}
	return ast.AlignDefault
}

func (a *adapter) inlines(parent gast.Node) []ast.Inline {
	var out []ast.Inline
	for c := parent.FirstChild(); c != nil; c = c.NextSibling() {
		out = append(out, a.inline(c)...)
	}
	return out
}

func (a *adapter) inline(n gast.Node) []ast.Inline {
	switch n := n.(type) {
	case *gast.Text:
		var out []ast.Inline
		if v := string(n.Segment.Value(a.source)); v != "" {
			out = append(out, &ast.Text{Value: v})
		}
		if n.HardLineBreak() {
			out = append(out, &ast.HardBreak{})
		} else if n.SoftLineBreak() {
			out = append(out, &ast.SoftBreak{})
		}
		return out
	case *gast.String:
		return []ast.Inline{&ast.Text{Value: string(n.Value)}}
	case *gast.CodeSpan:
		return []ast.Inline{&ast.InlineCode{Value: a.text(n)}}
	case *gast.Emphasis:
		return []ast.Inline{a.emphasis(n)}
	case *east.Strikethrough:
		return []ast.Inline{&ast.Strikethrough{Children: a.inlines(n)}}
	case *gast.Link:
		return []ast.Inline{&ast.Link{
			Href:     string(n.Destination),
			Title:    string(n.Title),
			Children: a.inlines(n),
		}}
	case *gast.AutoLink:
		label := string(n.Label(a.source))
		href := string(n.URL(a.source))
		if n.AutoLinkType == gast.AutoLinkEmail && !strings.HasPrefix(href, "mailto:") {
			href = "mailto:" + href
		}
		return []ast.Inline{&ast.Link{
			Href:     href,
			Children: []ast.Inline{&ast.Text{Value: label}},
		}}
	case *gast.Image:
		return []ast.Inline{&ast.Image{
			Src:   string(n.Destination),
			Title: string(n.Title),
			Alt:   a.text(n),
		}}
	case *east.FootnoteLink:
		return []ast.Inline{&ast.FootnoteReference{Label: a.footnoteLabels[n.Index]}}
	case *east.FootnoteBacklink, *east.TaskCheckBox:
		return nil
	case *gast.RawHTML:
		return []ast.Inline{&ast.Text{Value: a.segments(n.Segments)}}
	}
	// Unknown inline containers contribute their children.
	if n.HasChildren() {
		return a.inlines(n)
	}
	return nil
}

// emphasis collapses directly nested single/double emphasis into the
// bold-italic kind so triple markers round out to one node.
func (a *adapter) emphasis(n *gast.Emphasis) ast.Inline {
	kind := ast.Italic
	if n.Level >= 2 {
		kind = ast.Bold
	}
	if inner, ok := soleChild(n).(*gast.Emphasis); ok {
		innerKind := ast.Italic
		if inner.Level >= 2 {
			innerKind = ast.Bold
		}
		if innerKind != kind {
			return &ast.Emphasis{Kind: ast.BoldItalic, Children: a.inlines(inner)}
		}
	}
	return &ast.Emphasis{Kind: kind, Children: a.inlines(n)}
}

func soleChild(n gast.Node) gast.Node {
	if n.ChildCount() == 1 {
		return n.FirstChild()
	}
	return nil
}

func (a *adapter) rawLines(n gast.Node) string {
	var b bytes.Buffer
	lines := n.Lines()
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		b.Write(seg.Value(a.source))
	}
	return b.String()
}

func (a *adapter) segments(segs *text.Segments) string {
	var b bytes.Buffer
	for i := 0; i < segs.Len(); i++ {
		seg := segs.At(i)
		b.Write(seg.Value(a.source))
	}
	return b.String()
}

// text flattens a subtree to its literal text, for code spans and alt text.
func (a *adapter) text(n gast.Node) string {
	var b strings.Builder
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		switch c := c.(type) {
		case *gast.Text:
			b.Write(c.Segment.Value(a.source))
		case *gast.String:
			b.Write(c.Value)
		default:
			b.WriteString(a.text(c))
		}
	}
	return b.String()
}
