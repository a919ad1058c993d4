package styles

// A preset fixes the font families, base sizes, and spacing the catalog
// roles are built from. The four built-in presets mirror the palette the
// tool has always shipped: default (gothic body, serif latin), academic
// (serif, wide spacing), business (sans, compact), minimal (clean, tight).

type presetDef struct {
	hangul, latin         string
	codeHangul, codeLatin string

	bodySizePt     float64
	bodyAlign      string
	lineSpacing    int
	bodySpaceAfter float64

	codeSizePt      float64
	codeSpacing     int
	codeSpaceAround float64

	quoteMarginPt float64
	quoteSpacePt  float64

	listMarginPt float64
	listIndentPt float64

	cellSpacePt float64

	footnoteSpacing      int
	footnoteSpaceAfterPt float64

	headingSpaceBefore [6]float64
	headingSpaceAfter  [6]float64
}

var presetBuilders = map[string]func() *Catalog{
	"default": func() *Catalog {
		return buildCatalog(presetDef{
			hangul:     "맑은 고딕",
			latin:      "Times New Roman",
			codeHangul: "D2Coding", codeLatin: "Consolas",
			bodySizePt: 10.0, bodyAlign: "both", lineSpacing: 160, bodySpaceAfter: 6.0,
			codeSizePt: 9.0, codeSpacing: 150, codeSpaceAround: 4.0,
			quoteMarginPt: 20.0, quoteSpacePt: 4.0,
			listMarginPt: 20.0, listIndentPt: -10.0,
			cellSpacePt:     2.0,
			footnoteSpacing: 140, footnoteSpaceAfterPt: 2.0,
			headingSpaceBefore: [6]float64{16, 14, 12, 10, 8, 6},
			headingSpaceAfter:  [6]float64{10, 8, 6, 6, 4, 4},
		})
	},
	"academic": func() *Catalog {
		return buildCatalog(presetDef{
			hangul:     "바탕",
			latin:      "Times New Roman",
			codeHangul: "D2Coding", codeLatin: "Courier New",
			bodySizePt: 11.0, bodyAlign: "both", lineSpacing: 200, bodySpaceAfter: 8.0,
			codeSizePt: 9.5, codeSpacing: 160, codeSpaceAround: 6.0,
			quoteMarginPt: 24.0, quoteSpacePt: 6.0,
			listMarginPt: 24.0, listIndentPt: -12.0,
			cellSpacePt:     3.0,
			footnoteSpacing: 150, footnoteSpaceAfterPt: 3.0,
			headingSpaceBefore: [6]float64{20, 16, 14, 12, 10, 8},
			headingSpaceAfter:  [6]float64{12, 10, 8, 8, 6, 6},
		})
	},
	"business": func() *Catalog {
		return buildCatalog(presetDef{
			hangul:     "맑은 고딕",
			latin:      "Arial",
			codeHangul: "D2Coding", codeLatin: "Consolas",
			bodySizePt: 10.0, bodyAlign: "left", lineSpacing: 150, bodySpaceAfter: 4.0,
			codeSizePt: 9.0, codeSpacing: 140, codeSpaceAround: 4.0,
			quoteMarginPt: 16.0, quoteSpacePt: 4.0,
			listMarginPt: 18.0, listIndentPt: -9.0,
			cellSpacePt:     2.0,
			footnoteSpacing: 130, footnoteSpaceAfterPt: 2.0,
			headingSpaceBefore: [6]float64{14, 12, 10, 8, 6, 6},
			headingSpaceAfter:  [6]float64{8, 6, 4, 4, 4, 4},
		})
	},
	"minimal": func() *Catalog {
		return buildCatalog(presetDef{
			hangul:     "나눔고딕",
			latin:      "Helvetica Neue",
			codeHangul: "D2Coding", codeLatin: "Menlo",
			bodySizePt: 10.0, bodyAlign: "left", lineSpacing: 145, bodySpaceAfter: 3.0,
			codeSizePt: 9.0, codeSpacing: 140, codeSpaceAround: 3.0,
			quoteMarginPt: 14.0, quoteSpacePt: 3.0,
			listMarginPt: 16.0, listIndentPt: -8.0,
			cellSpacePt:     1.0,
			footnoteSpacing: 130, footnoteSpaceAfterPt: 2.0,
			headingSpaceBefore: [6]float64{12, 10, 8, 6, 4, 4},
			headingSpaceAfter:  [6]float64{6, 5, 4, 3, 3, 3},
		})
	},
}

func buildCatalog(def presetDef) *Catalog {
	body := FontSpec{
		Hangul: def.hangul,
		Latin:  def.latin,
		SizePt: def.bodySizePt,
		Color:  "#000000",
	}
	code := FontSpec{
		Hangul:     def.codeHangul,
		Latin:      def.codeLatin,
		SizePt:     def.codeSizePt,
		Color:      "#333333",
		Background: "#f0f0f0",
	}

	c := &Catalog{}

	c.chars[CharDefault] = body
	c.chars[CharBold] = derive(body, func(f *FontSpec) { f.Bold = true })
	c.chars[CharItalic] = derive(body, func(f *FontSpec) { f.Italic = true })
	c.chars[CharBoldItalic] = derive(body, func(f *FontSpec) { f.Bold = true; f.Italic = true })
	c.chars[CharStrike] = derive(body, func(f *FontSpec) { f.Strike = true })
	c.chars[CharInlineCode] = code
	c.chars[CharLink] = derive(body, func(f *FontSpec) { f.Underline = true; f.Color = "#0563C1" })
	c.chars[CharFootnoteRef] = derive(body, func(f *FontSpec) { f.SizePt = 7.0; f.Color = "#0000FF" })

	bodyPara := ParaSpec{
		Align:              def.bodyAlign,
		LineSpacingPercent: def.lineSpacing,
		SpaceAfterPt:       def.bodySpaceAfter,
	}
	c.paras[ParaBody] = bodyPara
	for level := 1; level <= 6; level++ {
		p := bodyPara
		p.Align = "left"
		p.SpaceBeforePt = def.headingSpaceBefore[level-1]
		p.SpaceAfterPt = def.headingSpaceAfter[level-1]
		c.paras[HeadingRole(level)] = p
	}
	c.paras[ParaCodeBlock] = ParaSpec{
		Align:              "left",
		LineSpacingPercent: def.codeSpacing,
		SpaceBeforePt:      def.codeSpaceAround,
		SpaceAfterPt:       def.codeSpaceAround,
	}
	c.paras[ParaBlockQuote] = ParaSpec{
		Align:              def.bodyAlign,
		LeftMarginPt:       def.quoteMarginPt,
		LineSpacingPercent: def.lineSpacing,
		SpaceBeforePt:      def.quoteSpacePt,
		SpaceAfterPt:       def.quoteSpacePt,
	}
	c.paras[ParaListItem] = ParaSpec{
		Align:              def.bodyAlign,
		LeftMarginPt:       def.listMarginPt,
		IndentPt:           def.listIndentPt,
		LineSpacingPercent: def.lineSpacing,
		SpaceAfterPt:       def.bodySpaceAfter,
	}
	c.paras[ParaTableCell] = ParaSpec{
		Align:              "left",
		LineSpacingPercent: def.lineSpacing,
		SpaceBeforePt:      def.cellSpacePt,
		SpaceAfterPt:       def.cellSpacePt,
	}
	c.paras[ParaFootnoteDef] = ParaSpec{
		Align:              def.bodyAlign,
		LineSpacingPercent: def.footnoteSpacing,
		SpaceAfterPt:       def.footnoteSpaceAfterPt,
	}
	c.paras[ParaHR] = ParaSpec{
		Align:              "center",
		LineSpacingPercent: def.lineSpacing,
		SpaceBeforePt:      8.0,
		SpaceAfterPt:       8.0,
	}

	return c
}

func derive(f FontSpec, mutate func(*FontSpec)) FontSpec {
	mutate(&f)
	return f
}
