package owpml

import (
	"github.com/alnah/go-md2hwpx/internal/styles"
)

var fontLangs = []string{"HANGUL", "LATIN", "HANJA", "JAPANESE", "OTHER", "SYMBOL", "USER"}

// BuildHeader emits Contents/header.xml for a resolved catalog: fonts,
// border fills, character and paragraph properties, styles, and numberings,
// one entry per role with the catalog's stable IDs. binData entries are
// listed when image payloads were packaged.
func BuildHeader(cat *styles.Catalog, binData []BinItem) *Element {
	head := DocumentRoot("hh:head")
	head.Set("version", "1.5")
	head.Set("secCnt", "1")

	begin := head.AddNew("hh:beginNum")
	begin.Set("page", "1")
	begin.Set("footnote", "1")
	begin.Set("endnote", "1")
	begin.Set("pic", "1")
	begin.Set("tbl", "1")
	begin.Set("equation", "1")

	ref := head.AddNew("hh:refList")
	ref.Add(buildFontfaces(cat))
	if len(binData) > 0 {
		ref.Add(buildBinDataList(binData))
	}
	ref.Add(buildBorderFills())
	ref.Add(buildCharProperties(cat))
	ref.Add(buildTabProperties())
	ref.Add(buildNumberings())
	ref.Add(buildParaProperties(cat))
	ref.Add(buildStyles(cat))

	compat := head.AddNew("hh:compatibleDocument")
	compat.Set("targetProgram", "HWP201X")
	compat.AddNew("hh:layoutCompatibility")

	opt := head.AddNew("hh:docOption")
	link := opt.AddNew("hh:linkinfo")
	link.Set("path", "")
	link.Set("pageInherit", "0")
	link.Set("footnoteInherit", "0")

	return head
}

func buildFontfaces(cat *styles.Catalog) *Element {
	fonts := cat.Fonts()
	faces := New("hh:fontfaces").SetInt("itemCnt", len(fontLangs))
	for _, lang := range fontLangs {
		face := faces.AddNew("hh:fontface")
		face.Set("lang", lang)
		face.SetInt("fontCnt", len(fonts))
		for i, name := range fonts {
			font := face.AddNew("hh:font")
			font.SetInt("id", i)
			font.Set("face", name)
			font.Set("type", "TTF")
			font.Set("isEmbedded", "0")
			ti := font.AddNew("hh:typeInfo")
			ti.Set("familyType", "FCAT_GOTHIC")
			ti.Set("weight", "6")
			ti.Set("proportion", "4")
			ti.Set("contrast", "0")
			ti.Set("strokeVariation", "1")
			ti.Set("armStyle", "1")
			ti.Set("letterform", "1")
			ti.Set("midline", "1")
			ti.Set("xHeight", "1")
		}
	}
	return faces
}

func buildBinDataList(binData []BinItem) *Element {
	list := New("hh:binDataList").SetInt("itemCnt", len(binData))
	for _, item := range binData {
		bd := list.AddNew("hh:binData")
		bd.SetInt("id", item.ID)
		bd.Set("type", "Embedding")
		bd.SetInt("binaryItemIDRef", item.ID)
		bd.Set("href", item.Name)
	}
	return list
}

// buildBorderFills declares the three fills the renderer references:
// the invisible default, the table grid, and the horizontal-rule top line.
func buildBorderFills() *Element {
	fills := New("hh:borderFills").SetInt("itemCnt", 3)

	none := borderFill(styles.BorderFillDefault)
	for _, side := range []string{"left", "right", "top", "bottom"} {
		none.Add(borderSide(side, "NONE", "0.1 mm"))
	}
	fills.Add(none)

	table := borderFill(styles.BorderFillTable)
	for _, side := range []string{"left", "right", "top", "bottom"} {
		table.Add(borderSide(side, "SOLID", "0.12 mm"))
	}
	fills.Add(table)

	hr := borderFill(styles.BorderFillHR)
	hr.Add(borderSide("left", "NONE", "0.1 mm"))
	hr.Add(borderSide("right", "NONE", "0.1 mm"))
	hr.Add(borderSide("top", "SOLID", "0.12 mm"))
	hr.Add(borderSide("bottom", "NONE", "0.1 mm"))
	fills.Add(hr)

	return fills
}

func borderFill(id int) *Element {
	bf := New("hh:borderFill")
	bf.SetInt("id", id)
	bf.Set("threeD", "0")
	bf.Set("shadow", "0")
	bf.Set("centerLine", "NONE")
	bf.Set("breakCellSeparateLine", "0")
	slash := bf.AddNew("hh:slash")
	slash.Set("type", "NONE")
	slash.Set("Crooked", "0")
	slash.Set("isCounter", "0")
	back := bf.AddNew("hh:backSlash")
	back.Set("type", "NONE")
	back.Set("Crooked", "0")
	back.Set("isCounter", "0")
	return bf
}

func borderSide(side, kind, width string) *Element {
	name := map[string]string{
		"left":   "hh:leftBorder",
		"right":  "hh:rightBorder",
		"top":    "hh:topBorder",
		"bottom": "hh:bottomBorder",
	}[side]
	b := New(name)
	b.Set("type", kind)
	b.Set("width", width)
	b.Set("color", "#000000")
	return b
}

func buildCharProperties(cat *styles.Catalog) *Element {
	roles := cat.CharRoles()
	props := New("hh:charProperties").SetInt("itemCnt", len(roles))
	for _, role := range roles {
		font := cat.Char(role)

		pr := props.AddNew("hh:charPr")
		pr.SetInt("id", cat.CharID(role))
		pr.SetInt("height", font.SizeHWP())
		pr.Set("textColor", font.Color)
		shade := "none"
		if font.Background != "" {
			shade = font.Background
		}
		pr.Set("shadeColor", shade)
		pr.Set("useFontSpace", "0")
		pr.Set("useKerning", "0")
		pr.Set("symMark", "NONE")
		pr.SetInt("borderFillIDRef", styles.BorderFillDefault)

		hi := cat.FontIndex(font.Hangul)
		li := cat.FontIndex(font.Latin)
		fr := pr.AddNew("hh:fontRef")
		fr.SetInt("hangul", hi)
		fr.SetInt("latin", li)
		fr.SetInt("hanja", hi)
		fr.SetInt("japanese", hi)
		fr.SetInt("other", li)
		fr.SetInt("symbol", li)
		fr.SetInt("user", li)

		if font.Bold {
			pr.AddNew("hh:bold")
		}
		if font.Italic {
			pr.AddNew("hh:italic")
		}
		for _, name := range []string{"hh:ratio", "hh:relSz"} {
			e := pr.AddNew(name)
			for _, lang := range []string{"hangul", "latin", "hanja", "japanese", "other", "symbol", "user"} {
				e.Set(lang, "100")
			}
		}
		sp := pr.AddNew("hh:spacing")
		for _, lang := range []string{"hangul", "latin", "hanja", "japanese", "other", "symbol", "user"} {
			sp.Set(lang, "0")
		}

		ul := pr.AddNew("hh:underline")
		if font.Underline {
			ul.Set("type", "BOTTOM")
		} else {
			ul.Set("type", "NONE")
		}
		ul.Set("shape", "SOLID")
		ul.Set("color", "#000000")

		st := pr.AddNew("hh:strikeout")
		if font.Strike {
			st.Set("shape", "SINGLE")
		} else {
			st.Set("shape", "NONE")
		}
		st.Set("color", "#000000")

		pr.AddNew("hh:outline").Set("type", "NONE")
		sh := pr.AddNew("hh:shadow")
		sh.Set("type", "NONE")
		sh.Set("color", "#C0C0C0")
		sh.Set("offsetX", "10")
		sh.Set("offsetY", "10")
	}
	return props
}

func buildTabProperties() *Element {
	tabs := New("hh:tabProperties").SetInt("itemCnt", 1)
	pr := tabs.AddNew("hh:tabPr")
	pr.Set("id", "0")
	pr.Set("autoTabLeft", "0")
	pr.Set("autoTabRight", "0")
	return tabs
}

// buildNumberings declares one numbering per list flavor: ordinal digits,
// bullets, and the two task-state glyphs.
func buildNumberings() *Element {
	nums := New("hh:numberings").SetInt("itemCnt", 4)
	nums.Add(numbering(styles.NumberingOrdered, "DIGIT", "^1."))
	nums.Add(numbering(styles.NumberingBullet, "SYMBOL", "•"))
	nums.Add(numbering(styles.NumberingTaskChecked, "SYMBOL", "☑"))
	nums.Add(numbering(styles.NumberingTaskUnchecked, "SYMBOL", "☐"))
	return nums
}

func numbering(id int, format, head string) *Element {
	n := New("hh:numbering")
	n.SetInt("id", id)
	n.Set("start", "0")
	ph := n.AddNew("hh:paraHead")
	ph.Set("start", "1")
	ph.Set("level", "1")
	ph.Set("align", "LEFT")
	ph.Set("useInstWidth", "1")
	ph.Set("autoIndent", "1")
	ph.Set("widthAdjust", "0")
	ph.Set("textOffsetType", "PERCENT")
	ph.Set("textOffset", "50")
	ph.Set("numFormat", format)
	ph.Set("charPrIDRef", "4294967295")
	ph.Set("checkable", "0")
	ph.Text = head
	return n
}

func buildParaProperties(cat *styles.Catalog) *Element {
	roles := cat.ParaRoles()
	props := New("hh:paraProperties").SetInt("itemCnt", len(roles))
	for _, role := range roles {
		para := cat.Para(role)

		pr := props.AddNew("hh:paraPr")
		pr.SetInt("id", cat.ParaID(role))
		pr.Set("tabPrIDRef", "0")
		pr.Set("condense", "0")
		pr.Set("fontLineHeight", "0")
		pr.Set("snapToGrid", "1")
		pr.Set("suppressLineNumbers", "0")
		pr.Set("checked", "0")
		pr.Set("textDir", "LTR")

		al := pr.AddNew("hh:align")
		al.Set("horizontal", alignKeyword(para.Align))
		al.Set("vertical", "BASELINE")

		hd := pr.AddNew("hh:heading")
		hd.Set("type", "NONE")
		hd.Set("idRef", "0")
		hd.Set("level", "0")

		br := pr.AddNew("hh:breakSetting")
		br.Set("breakLatinWord", "KEEP_WORD")
		br.Set("breakNonLatinWord", "BREAK_WORD")
		br.Set("widowOrphan", "0")
		br.Set("keepWithNext", "0")
		br.Set("keepLines", "0")
		br.Set("pageBreakBefore", "0")
		br.Set("lineWrap", "BREAK")

		sp := pr.AddNew("hh:autoSpacing")
		sp.Set("eAsianEng", "0")
		sp.Set("eAsianNum", "0")

		margin := pr.AddNew("hh:margin")
		margin.Add(hwpValue("hc:intent", para.IndentHWP()))
		margin.Add(hwpValue("hc:left", para.LeftMarginHWP()))
		margin.Add(hwpValue("hc:right", para.RightMarginHWP()))
		margin.Add(hwpValue("hc:prev", para.SpaceBeforeHWP()))
		margin.Add(hwpValue("hc:next", para.SpaceAfterHWP()))

		ls := pr.AddNew("hh:lineSpacing")
		ls.Set("type", "PERCENT")
		ls.SetInt("value", para.LineSpacingPercent)
		ls.Set("unit", "HWPUNIT")

		border := pr.AddNew("hh:border")
		border.SetInt("borderFillIDRef", styles.BorderFillDefault)
		border.Set("offsetLeft", "0")
		border.Set("offsetRight", "0")
		border.Set("offsetTop", "0")
		border.Set("offsetBottom", "0")
		border.Set("connect", "0")
		border.Set("ignoreMargin", "0")
	}
	return props
}

func hwpValue(name string, v int) *Element {
	e := New(name)
	e.SetInt("value", v)
	e.Set("unit", "HWPUNIT")
	return e
}

func alignKeyword(align string) string {
	switch align {
	case "left":
		return "LEFT"
	case "center":
		return "CENTER"
	case "right":
		return "RIGHT"
	case "both", "justify":
		return "JUSTIFY"
	}
	return "JUSTIFY"
}

func buildStyles(cat *styles.Catalog) *Element {
	roles := cat.ParaRoles()
	st := New("hh:styles").SetInt("itemCnt", len(roles))
	for _, role := range roles {
		s := st.AddNew("hh:style")
		s.SetInt("id", cat.ParaID(role))
		s.Set("type", "PARA")
		s.Set("name", styles.StyleName(role))
		s.Set("engName", styles.StyleName(role))
		s.SetInt("paraPrIDRef", cat.ParaID(role))
		s.SetInt("charPrIDRef", cat.CharID(defaultCharFor(role)))
		s.SetInt("nextStyleIDRef", cat.ParaID(styles.ParaBody))
		s.Set("langID", "1042")
		s.Set("lockForm", "0")
	}
	return st
}

// defaultCharFor pairs a paragraph style with its natural character
// property, so text typed into a style without explicit runs looks right.
func defaultCharFor(role styles.ParaRole) styles.CharRole {
	switch role {
	case styles.ParaCodeBlock:
		return styles.CharInlineCode
	case styles.ParaH1, styles.ParaH2, styles.ParaH3, styles.ParaH4, styles.ParaH5, styles.ParaH6:
		return styles.CharBold
	}
	return styles.CharDefault
}
