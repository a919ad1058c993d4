package owpml

import (
	"fmt"
	"strings"

	"github.com/alecthomas/chroma/v2/lexers"

	"github.com/alnah/go-md2hwpx/internal/ast"
	"github.com/alnah/go-md2hwpx/internal/styles"
)

// DefaultBaseIndent is the indent step per nesting level, in HWP units.
const DefaultBaseIndent = 1000

// ImageResolver fetches image payloads for Image nodes. Returning nil bytes
// (or an error) leaves the placeholder reference at 0.
type ImageResolver func(src string) ([]byte, error)

// Warning kinds reported by the renderer.
const (
	WarnTableShape = "table-shape"
	WarnImage      = "image"
	WarnFootnote   = "footnote"
)

// Warning records a recovered oddity. Line is 0 when the source position is
// not known at this stage.
type Warning struct {
	Kind    string
	Line    int
	Message string
}

// BinItem is one binary payload destined for BinData/ in the archive.
type BinItem struct {
	ID   int
	Name string
	Data []byte
}

// Result carries everything one rendering pass produces.
type Result struct {
	Section  *Element
	BinData  []BinItem
	Preview  []string
	Warnings []Warning
}

// Renderer walks a document tree and emits the section0.xml element tree.
// A Renderer is single-use: ID counters and the footnote table belong to
// one conversion.
type Renderer struct {
	cat        *styles.Catalog
	baseIndent int
	resolver   ImageResolver

	paraID     int
	footnoteID int
	cellID     int
	fieldID    int

	quoteDepth  int
	indentLevel int
	inFootnote  bool

	defs       map[string]*ast.FootnoteDefinition
	defOrder   []string
	defIDs     map[string]int
	referenced map[string]bool

	binData  []BinItem
	preview  []string
	warnings []Warning
}

// NewRenderer creates a Renderer for one conversion. baseIndent ≤ 0 falls
// back to DefaultBaseIndent; resolver may be nil.
func NewRenderer(cat *styles.Catalog, baseIndent int, resolver ImageResolver) *Renderer {
	if baseIndent <= 0 {
		baseIndent = DefaultBaseIndent
	}
	return &Renderer{
		cat:        cat,
		baseIndent: baseIndent,
		resolver:   resolver,
		defs:       make(map[string]*ast.FootnoteDefinition),
		defIDs:     make(map[string]int),
		referenced: make(map[string]bool),
	}
}

// Render emits the complete section document for doc. Rendering is total:
// every well-formed tree renders, and structurally odd nodes degrade to
// empty paragraphs.
func (r *Renderer) Render(doc *ast.Document) *Result {
	r.collectFootnotes(doc.Blocks)

	var body []*Element
	for _, b := range doc.Blocks {
		body = append(body, r.renderBlock(b)...)
	}
	body = append(body, r.orphanFootnotes()...)

	if len(body) == 0 {
		body = []*Element{r.paragraph(styles.ParaBody)}
	}

	return &Result{
		Section:  buildSection(body),
		BinData:  r.binData,
		Preview:  r.preview,
		Warnings: r.warnings,
	}
}

// collectFootnotes fills the label→definition symbol table. Definitions
// are looked up by label, never by tree position.
func (r *Renderer) collectFootnotes(blocks []ast.Block) {
	for _, b := range blocks {
		def, ok := b.(*ast.FootnoteDefinition)
		if !ok {
			continue
		}
		if _, dup := r.defs[def.Label]; dup {
			r.warnf(WarnFootnote, "duplicate footnote definition %q", def.Label)
			continue
		}
		r.defs[def.Label] = def
		r.defOrder = append(r.defOrder, def.Label)
	}
}

// orphanFootnotes renders definitions no reference reached as trailing
// body text, so no content silently disappears.
func (r *Renderer) orphanFootnotes() []*Element {
	var out []*Element
	for _, label := range r.defOrder {
		if r.referenced[label] {
			continue
		}
		r.warnf(WarnFootnote, "footnote definition %q is never referenced", label)
		def := r.defs[label]
		prefix := &ast.Text{Value: "[^" + label + "] "}

		r.inFootnote = true
		blocks := def.Children
		if para, ok := firstParagraph(blocks); ok {
			p := r.paragraph(styles.ParaFootnoteDef)
			r.renderInlines(p, append([]ast.Inline{prefix}, para.Content...), caps{})
			out = append(out, p)
			blocks = blocks[1:]
		} else {
			p := r.paragraph(styles.ParaFootnoteDef)
			r.renderInlines(p, []ast.Inline{prefix}, caps{})
			out = append(out, p)
		}
		for _, child := range blocks {
			out = append(out, r.renderBlock(child)...)
		}
		r.inFootnote = false
	}
	return out
}

func firstParagraph(blocks []ast.Block) (*ast.Paragraph, bool) {
	if len(blocks) == 0 {
		return nil, false
	}
	p, ok := blocks[0].(*ast.Paragraph)
	return p, ok
}

func (r *Renderer) renderBlock(b ast.Block) []*Element {
	switch b := b.(type) {
	case *ast.Heading:
		p := r.paragraph(styles.HeadingRole(b.Level))
		r.renderInlines(p, b.Content, caps{bold: true})
		r.previewLine(ast.PlainText(b.Content))
		return []*Element{p}

	case *ast.Paragraph:
		p := r.paragraph(r.paragraphRole())
		r.renderInlines(p, b.Content, caps{})
		r.previewLine(ast.PlainText(b.Content))
		return []*Element{p}

	case *ast.List:
		return r.renderList(b, 0)

	case *ast.CodeBlock:
		return r.renderCodeBlock(b)

	case *ast.BlockQuote:
		r.quoteDepth++
		r.indentLevel++
		var out []*Element
		for _, child := range b.Children {
			out = append(out, r.renderBlock(child)...)
		}
		r.indentLevel--
		r.quoteDepth--
		return out

	case *ast.Table:
		return []*Element{r.renderTable(b)}

	case *ast.ThematicBreak:
		p := r.paragraph(styles.ParaHR)
		p.SetInt("borderFillIDRef", styles.BorderFillHR)
		p.AddNew("hp:run").SetInt("charPrIDRef", r.cat.CharID(styles.CharDefault)).AddNew("hp:t")
		r.previewLine("---")
		return []*Element{p}

	case *ast.FootnoteDefinition:
		// Rendered at reference sites or as trailing orphans.
		return nil
	}
	return nil
}

// paragraphRole picks the role for a plain paragraph in the current
// context: footnote bodies and quoted text carry their own roles.
func (r *Renderer) paragraphRole() styles.ParaRole {
	switch {
	case r.inFootnote:
		return styles.ParaFootnoteDef
	case r.quoteDepth > 0:
		return styles.ParaBlockQuote
	}
	return styles.ParaBody
}

// paragraph allocates the next paragraph ID and builds an hp:p shell.
func (r *Renderer) paragraph(role styles.ParaRole) *Element {
	p := New("hp:p")
	p.SetInt("id", r.paraID)
	r.paraID++
	p.SetInt("paraPrIDRef", r.cat.ParaID(role))
	p.SetInt("styleIDRef", r.cat.ParaID(role))
	p.Set("pageBreak", "0")
	p.Set("columnBreak", "0")
	p.Set("merged", "0")
	if r.indentLevel > 0 {
		p.SetInt("indent", r.indentLevel*r.baseIndent)
	}
	return p
}

func (r *Renderer) renderCodeBlock(b *ast.CodeBlock) []*Element {
	lines := strings.Split(b.Text, "\n")
	if len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}

	var out []*Element
	for i, line := range lines {
		p := r.paragraph(styles.ParaCodeBlock)
		if i == 0 {
			if lang := canonicalLang(b.Info); lang != "" {
				p.Set("codeLang", lang)
			}
		}
		run := p.AddNew("hp:run").SetInt("charPrIDRef", r.cat.CharID(styles.CharInlineCode))
		run.AddNew("hp:t").Text = line
		out = append(out, p)
	}
	// An empty code paragraph closes the block.
	out = append(out, r.paragraph(styles.ParaCodeBlock))

	preview := b.Text
	if len(preview) > 200 {
		preview = preview[:200]
	}
	r.previewLine("[Code: " + strings.ReplaceAll(preview, "\n", " ") + "]")
	return out
}

func (r *Renderer) renderList(l *ast.List, depth int) []*Element {
	outer := r.indentLevel
	var out []*Element

	for i, item := range l.Items {
		numbering := styles.NumberingBullet
		switch {
		case item.Task == ast.TaskChecked:
			numbering = styles.NumberingTaskChecked
		case item.Task == ast.TaskUnchecked:
			numbering = styles.NumberingTaskUnchecked
		case l.Ordered:
			numbering = styles.NumberingOrdered
		}

		r.indentLevel = outer + depth
		p := r.paragraph(styles.ParaListItem)
		p.SetInt("numberingIDRef", numbering)
		p.SetInt("indent", r.baseIndent*(outer+depth))
		if i == 0 && l.Ordered && l.Start != 1 {
			p.SetInt("numberingStart", l.Start)
		}

		rest := item.Children
		if len(rest) > 0 {
			if para, ok := rest[0].(*ast.Paragraph); ok {
				r.renderInlines(p, para.Content, caps{})
				r.previewLine(strings.Repeat("  ", depth) + ast.PlainText(para.Content))
				rest = rest[1:]
			}
		}
		out = append(out, p)

		for _, child := range rest {
			if nested, ok := child.(*ast.List); ok {
				r.indentLevel = outer
				out = append(out, r.renderList(nested, depth+1)...)
				continue
			}
			r.indentLevel = outer + depth + 1
			out = append(out, r.renderBlock(child)...)
		}
	}

	r.indentLevel = outer
	return out
}

// canonicalLang normalizes a fenced-code info-string to the lexer's
// canonical name ("py" becomes "Python"). Unknown tags pass through.
func canonicalLang(info string) string {
	fields := strings.Fields(info)
	if len(fields) == 0 {
		return ""
	}
	if lx := lexers.Get(fields[0]); lx != nil {
		return lx.Config().Name
	}
	return fields[0]
}

func (r *Renderer) previewLine(s string) {
	if strings.TrimSpace(s) == "" {
		return
	}
	r.preview = append(r.preview, s)
}

func (r *Renderer) warnf(kind, format string, args ...any) {
	r.warnings = append(r.warnings, Warning{Kind: kind, Message: fmt.Sprintf(format, args...)})
}
