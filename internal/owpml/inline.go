package owpml

import (
	"fmt"
	"path"
	"strings"

	"github.com/alnah/go-md2hwpx/internal/ast"
	"github.com/alnah/go-md2hwpx/internal/styles"
)

// caps is the capability set carried through inline rendering. Nested
// emphasis composes by union; the set resolves to a single character role,
// so composition never allocates new style IDs.
type caps struct {
	bold   bool
	italic bool
	strike bool
	code   bool
	link   bool
	fnref  bool
}

// role resolves the union to a character role. Span-like capabilities
// (code, footnote reference, link) win over decorations.
func (c caps) role() styles.CharRole {
	switch {
	case c.code:
		return styles.CharInlineCode
	case c.fnref:
		return styles.CharFootnoteRef
	case c.link:
		return styles.CharLink
	case c.bold && c.italic:
		return styles.CharBoldItalic
	case c.bold:
		return styles.CharBold
	case c.italic:
		return styles.CharItalic
	case c.strike:
		return styles.CharStrike
	}
	return styles.CharDefault
}

// run opens a new hp:run on p with the character property for c.
// Consecutive text runs are intentionally not merged.
func (r *Renderer) run(p *Element, c caps) *Element {
	return p.AddNew("hp:run").SetInt("charPrIDRef", r.cat.CharID(c.role()))
}

func (r *Renderer) renderInlines(p *Element, inlines []ast.Inline, c caps) {
	for _, in := range inlines {
		r.renderInline(p, in, c)
	}
}

func (r *Renderer) renderInline(p *Element, in ast.Inline, c caps) {
	switch in := in.(type) {
	case *ast.Text:
		r.run(p, c).AddNew("hp:t").Text = in.Value

	case *ast.Emphasis:
		child := c
		switch in.Kind {
		case ast.Bold:
			child.bold = true
		case ast.Italic:
			child.italic = true
		case ast.BoldItalic:
			child.bold = true
			child.italic = true
		}
		r.renderInlines(p, in.Children, child)

	case *ast.Strikethrough:
		child := c
		child.strike = true
		r.renderInlines(p, in.Children, child)

	case *ast.InlineCode:
		child := c
		child.code = true
		r.run(p, child).AddNew("hp:t").Text = in.Value

	case *ast.Link:
		r.renderLink(p, in, c)

	case *ast.Image:
		r.renderImage(p, in, c)

	case *ast.FootnoteReference:
		r.renderFootnoteRef(p, in, c)

	case *ast.HardBreak:
		r.run(p, c).AddNew("hp:lineBreak")

	case *ast.SoftBreak:
		r.run(p, c).AddNew("hp:t").Text = " "
	}
}

// renderLink emits a HYPERLINK field pair around the rendered children.
func (r *Renderer) renderLink(p *Element, link *ast.Link, c caps) {
	id := r.fieldID
	r.fieldID++

	child := c
	child.link = true

	begin := New("hp:fieldBegin")
	begin.SetInt("id", id)
	begin.Set("type", "HYPERLINK")
	begin.Set("name", "")
	begin.Set("editable", "0")
	begin.Set("dirty", "0")
	if link.Title != "" {
		begin.Set("tooltip", link.Title)
	}
	params := begin.AddNew("hp:parameters").SetInt("cnt", 1)
	cmd := params.AddNew("hp:stringParam").Set("name", "Command")
	cmd.Text = link.Href + ";1;0;0;"
	r.run(p, child).AddNew("hp:ctrl").Add(begin)

	if len(link.Children) > 0 {
		r.renderInlines(p, link.Children, child)
	} else {
		r.run(p, child).AddNew("hp:t").Text = link.Href
	}

	end := New("hp:fieldEnd")
	end.SetInt("beginIDRef", id)
	end.SetInt("fieldid", id)
	r.run(p, child).AddNew("hp:ctrl").Add(end)
}

// renderImage emits the inline picture placeholder. Payloads only embed
// when a resolver is present and yields bytes; the alt text rides along as
// a plain-text fallback.
func (r *Renderer) renderImage(p *Element, img *ast.Image, c caps) {
	binRef := 0
	if r.resolver != nil && img.Src != "" {
		data, err := r.resolver(img.Src)
		switch {
		case err != nil:
			r.warnf(WarnImage, "resolving image %q: %v", img.Src, err)
		case len(data) > 0:
			binRef = len(r.binData) + 1
			ext := strings.ToLower(path.Ext(img.Src))
			if ext == "" {
				ext = ".bin"
			}
			r.binData = append(r.binData, BinItem{
				ID:   binRef,
				Name: fmt.Sprintf("BinData/image%d%s", binRef, ext),
				Data: data,
			})
		}
	}

	run := r.run(p, c)
	pic := run.AddNew("hp:pic")
	pic.SetInt("binaryItemIDRef", binRef)
	if img.Title != "" {
		pic.Set("tooltip", img.Title)
	}
	alt := img.Alt
	if alt == "" {
		alt = img.Src
	}
	run.AddNew("hp:t").Text = alt
	r.previewLine("[Image: " + alt + "]")
}

// renderFootnoteRef resolves the label through the symbol table. The first
// reference carries the hp:footNote body; later references point back at
// the allocated ID. Unresolved labels stay literal.
func (r *Renderer) renderFootnoteRef(p *Element, ref *ast.FootnoteReference, c caps) {
	def, ok := r.defs[ref.Label]
	if !ok {
		r.warnf(WarnFootnote, "unresolved footnote reference %q", ref.Label)
		r.run(p, c).AddNew("hp:t").Text = "[^" + ref.Label + "]"
		return
	}

	child := c
	child.fnref = true
	run := r.run(p, child)

	if id, seen := r.defIDs[ref.Label]; seen {
		run.AddNew("hp:noteRef").SetInt("noteIDRef", id)
		return
	}

	id := r.footnoteID
	r.footnoteID++
	r.defIDs[ref.Label] = id
	r.referenced[ref.Label] = true

	fn := run.AddNew("hp:footNote").SetInt("id", id)
	sub := fn.AddNew("hp:subList")
	sub.Set("textDirection", "HORIZONTAL")
	sub.Set("lineWrap", "BREAK")
	sub.Set("vertAlign", "TOP")

	wasInFootnote := r.inFootnote
	r.inFootnote = true
	for _, block := range def.Children {
		sub.Add(r.renderBlock(block)...)
	}
	if len(def.Children) == 0 {
		sub.Add(r.paragraph(styles.ParaFootnoteDef))
	}
	r.inFootnote = wasInFootnote
}
