package owpml

// Page geometry: A4 in HWP units (1/7200 inch).
const (
	a4Width      = 59528
	a4Height     = 84186
	marginLeft   = 8504
	marginRight  = 8504
	marginTop    = 5668
	marginBottom = 4252
	marginHeader = 4252
	marginFooter = 4252
)

// Namespace declarations shared by the root elements of header.xml,
// section0.xml, and content.hpf.
var documentNamespaces = []Attr{
	{"xmlns:ha", "http://www.hancom.co.kr/hwpml/2011/app"},
	{"xmlns:hp", "http://www.hancom.co.kr/hwpml/2011/paragraph"},
	{"xmlns:hp10", "http://www.hancom.co.kr/hwpml/2016/paragraph"},
	{"xmlns:hs", "http://www.hancom.co.kr/hwpml/2011/section"},
	{"xmlns:hc", "http://www.hancom.co.kr/hwpml/2011/core"},
	{"xmlns:hh", "http://www.hancom.co.kr/hwpml/2011/head"},
	{"xmlns:hhs", "http://www.hancom.co.kr/hwpml/2011/history"},
	{"xmlns:hm", "http://www.hancom.co.kr/hwpml/2011/master-page"},
	{"xmlns:hpf", "http://www.hancom.co.kr/schema/2011/hpf"},
	{"xmlns:dc", "http://purl.org/dc/elements/1.1/"},
	{"xmlns:op", "http://www.idpf.org/2007/opf/"},
	{"xmlns:ooxmlchart", "http://www.hancom.co.kr/hwpml/2016/ooxmlchart"},
	{"xmlns:hwpunitchar", "http://www.hancom.co.kr/hwpml/2016/HwpUnitChar"},
	{"xmlns:epub", "http://www.idpf.org/2007/ops"},
	{"xmlns:config", "urn:oasis:names:tc:opendocument:xmlns:config:1.0"},
}

// DocumentRoot creates a root element carrying the full OWPML namespace set.
func DocumentRoot(name string) *Element {
	root := New(name)
	for _, ns := range documentNamespaces {
		root.Set(ns.Name, ns.Value)
	}
	return root
}

// buildSection wraps rendered body paragraphs in the hs:sec root. The
// section properties ride in the first paragraph's leading run, as Hancom
// writers lay them out, so paragraph IDs keep the 0..N-1 sequence.
func buildSection(body []*Element) *Element {
	sec := DocumentRoot("hs:sec")
	if len(body) > 0 {
		body[0].Prepend(secPrRun())
	}
	sec.Add(body...)
	return sec
}

func secPrRun() *Element {
	run := New("hp:run").Set("charPrIDRef", "0")

	secPr := run.AddNew("hp:secPr")
	secPr.Set("id", "")
	secPr.Set("textDirection", "HORIZONTAL")
	secPr.Set("spaceColumns", "1134")
	secPr.Set("tabStop", "8000")
	secPr.Set("tabStopVal", "4000")
	secPr.Set("tabStopUnit", "HWPUNIT")
	secPr.Set("outlineShapeIDRef", "1")
	secPr.Set("memoShapeIDRef", "0")
	secPr.Set("textVerticalWidthHead", "0")
	secPr.Set("masterPageCnt", "0")

	grid := secPr.AddNew("hp:grid")
	grid.Set("lineGrid", "0")
	grid.Set("charGrid", "0")
	grid.Set("wonggojiFormat", "0")

	start := secPr.AddNew("hp:startNum")
	start.Set("pageStartsOn", "BOTH")
	start.Set("page", "0")
	start.Set("pic", "0")
	start.Set("tbl", "0")
	start.Set("equation", "0")

	vis := secPr.AddNew("hp:visibility")
	vis.Set("hideFirstHeader", "0")
	vis.Set("hideFirstFooter", "0")
	vis.Set("hideFirstMasterPage", "0")
	vis.Set("border", "SHOW_ALL")
	vis.Set("fill", "SHOW_ALL")
	vis.Set("hideFirstPageNum", "0")
	vis.Set("hideFirstEmptyLine", "0")
	vis.Set("showLineNumber", "0")

	line := secPr.AddNew("hp:lineNumberShape")
	line.Set("restartType", "0")
	line.Set("countBy", "0")
	line.Set("distance", "0")
	line.Set("startNumber", "0")

	pagePr := secPr.AddNew("hp:pagePr")
	pagePr.Set("landscape", "WIDELY")
	pagePr.SetInt("width", a4Width)
	pagePr.SetInt("height", a4Height)
	pagePr.Set("gutterType", "LEFT_ONLY")
	pm := pagePr.AddNew("hp:margin")
	pm.SetInt("header", marginHeader)
	pm.SetInt("footer", marginFooter)
	pm.Set("gutter", "0")
	pm.SetInt("left", marginLeft)
	pm.SetInt("right", marginRight)
	pm.SetInt("top", marginTop)
	pm.SetInt("bottom", marginBottom)

	fn := secPr.AddNew("hp:footNotePr")
	fnFmt := fn.AddNew("hp:autoNumFormat")
	fnFmt.Set("type", "DIGIT")
	fnFmt.Set("userChar", "")
	fnFmt.Set("prefixChar", "")
	fnFmt.Set("suffixChar", ")")
	fnFmt.Set("supscript", "0")
	fnLine := fn.AddNew("hp:noteLine")
	fnLine.Set("length", "-1")
	fnLine.Set("type", "SOLID")
	fnLine.Set("width", "0.12 mm")
	fnLine.Set("color", "#000000")
	fnSp := fn.AddNew("hp:noteSpacing")
	fnSp.Set("betweenNotes", "283")
	fnSp.Set("belowLine", "567")
	fnSp.Set("aboveLine", "850")
	fnNum := fn.AddNew("hp:numbering")
	fnNum.Set("type", "CONTINUOUS")
	fnNum.Set("newNum", "1")
	fnPl := fn.AddNew("hp:placement")
	fnPl.Set("place", "EACH_COLUMN")
	fnPl.Set("beneathText", "0")

	en := secPr.AddNew("hp:endNotePr")
	enFmt := en.AddNew("hp:autoNumFormat")
	enFmt.Set("type", "DIGIT")
	enFmt.Set("userChar", "")
	enFmt.Set("prefixChar", "")
	enFmt.Set("suffixChar", ")")
	enFmt.Set("supscript", "0")
	enLine := en.AddNew("hp:noteLine")
	enLine.Set("length", "14692344")
	enLine.Set("type", "SOLID")
	enLine.Set("width", "0.12 mm")
	enLine.Set("color", "#000000")
	enSp := en.AddNew("hp:noteSpacing")
	enSp.Set("betweenNotes", "0")
	enSp.Set("belowLine", "567")
	enSp.Set("aboveLine", "850")
	enNum := en.AddNew("hp:numbering")
	enNum.Set("type", "CONTINUOUS")
	enNum.Set("newNum", "1")
	enPl := en.AddNew("hp:placement")
	enPl.Set("place", "END_OF_DOCUMENT")
	enPl.Set("beneathText", "0")

	for _, t := range []string{"BOTH", "EVEN", "ODD"} {
		pb := secPr.AddNew("hp:pageBorderFill")
		pb.Set("type", t)
		pb.Set("borderFillIDRef", "1")
		pb.Set("textBorder", "PAPER")
		pb.Set("headerInside", "0")
		pb.Set("footerInside", "0")
		pb.Set("fillArea", "PAPER")
		off := pb.AddNew("hp:offset")
		off.Set("left", "1417")
		off.Set("right", "1417")
		off.Set("top", "1417")
		off.Set("bottom", "1417")
	}

	colPr := run.AddNew("hp:ctrl").AddNew("hp:colPr")
	colPr.Set("id", "")
	colPr.Set("type", "NEWSPAPER")
	colPr.Set("layout", "LEFT")
	colPr.Set("colCount", "1")
	colPr.Set("sameSz", "1")
	colPr.Set("sameGap", "0")

	return run
}
