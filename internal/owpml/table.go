package owpml

import (
	"fmt"

	"github.com/alnah/go-md2hwpx/internal/ast"
	"github.com/alnah/go-md2hwpx/internal/styles"
)

// Table geometry in HWP units.
const (
	// DefaultTableWidth is the writable width a table spreads across.
	DefaultTableWidth = 40000

	defaultRowHeight = 2886
	cellMarginLR     = 510
	cellMarginTB     = 141
	outMargin        = 283
)

// renderTable converts one Table node into an hp:tbl wrapped in a body
// paragraph (OWPML requires tables inside hp:p). Every emitted row has
// exactly len(Alignments) cells; ragged body rows are padded or truncated
// with a warning.
func (r *Renderer) renderTable(t *ast.Table) *Element {
	cols := len(t.Alignments)
	if cols == 0 {
		cols = 1
	}

	rows := make([]ast.TableRow, 0, len(t.Rows)+1)
	rows = append(rows, t.Header)
	rows = append(rows, t.Rows...)

	colWidth := DefaultTableWidth / cols
	lastWidth := DefaultTableWidth - colWidth*(cols-1)

	wrap := r.paragraph(r.paragraphRole())

	tbl := New("hp:tbl")
	tbl.SetInt("id", 1000+wrap.intAttr("id"))
	tbl.Set("zOrder", "0")
	tbl.Set("numberingType", "TABLE")
	tbl.Set("textWrap", "TOP_AND_BOTTOM")
	tbl.Set("textFlow", "BOTH_SIDES")
	tbl.Set("lock", "0")
	tbl.Set("dropcapstyle", "None")
	tbl.Set("pageBreak", "CELL")
	tbl.Set("repeatHeader", "1")
	tbl.SetInt("rowCnt", len(rows))
	tbl.SetInt("colCnt", cols)
	tbl.Set("cellSpacing", "0")
	tbl.SetInt("borderFillIDRef", styles.BorderFillTable)
	tbl.Set("noAdjust", "0")

	sz := tbl.AddNew("hp:sz")
	sz.SetInt("width", DefaultTableWidth)
	sz.Set("widthRelTo", "ABSOLUTE")
	sz.SetInt("height", defaultRowHeight*len(rows))
	sz.Set("heightRelTo", "ABSOLUTE")
	sz.Set("protect", "0")

	pos := tbl.AddNew("hp:pos")
	pos.Set("treatAsChar", "0")
	pos.Set("affectLSpacing", "0")
	pos.Set("flowWithText", "1")
	pos.Set("allowOverlap", "0")
	pos.Set("holdAnchorAndSO", "0")
	pos.Set("vertRelTo", "PARA")
	pos.Set("horzRelTo", "COLUMN")
	pos.Set("vertAlign", "TOP")
	pos.Set("horzAlign", "LEFT")
	pos.Set("vertOffset", "0")
	pos.Set("horzOffset", "0")

	om := tbl.AddNew("hp:outMargin")
	om.SetInt("left", outMargin)
	om.SetInt("right", outMargin)
	om.SetInt("top", outMargin)
	om.SetInt("bottom", outMargin)

	im := tbl.AddNew("hp:inMargin")
	im.SetInt("left", cellMarginLR)
	im.SetInt("right", cellMarginLR)
	im.SetInt("top", cellMarginTB)
	im.SetInt("bottom", cellMarginTB)

	for rowIdx, row := range rows {
		header := rowIdx == 0
		cells := r.normalizeRow(row, cols, rowIdx)
		tr := tbl.AddNew("hp:tr")
		for colIdx, cell := range cells {
			width := colWidth
			if colIdx == cols-1 {
				width = lastWidth
			}
			align := ast.AlignDefault
			if colIdx < len(t.Alignments) {
				align = t.Alignments[colIdx]
			}
			tr.Add(r.renderCell(cell, align, header, rowIdx, colIdx, width))
		}
	}

	run := wrap.AddNew("hp:run").SetInt("charPrIDRef", r.cat.CharID(styles.CharDefault))
	run.Add(tbl)
	run.AddNew("hp:t").Text = " "

	r.previewLine("[Table]")
	return wrap
}

// normalizeRow pads or truncates a row to the declared column count.
func (r *Renderer) normalizeRow(row ast.TableRow, cols, rowIdx int) []ast.TableCell {
	cells := row.Cells
	switch {
	case len(cells) < cols:
		if len(cells) > 0 {
			r.warnf(WarnTableShape, "table row %d padded from %d to %d cells", rowIdx, len(cells), cols)
		}
		padded := make([]ast.TableCell, cols)
		copy(padded, cells)
		return padded
	case len(cells) > cols:
		r.warnf(WarnTableShape, "table row %d truncated from %d to %d cells", rowIdx, len(cells), cols)
		return cells[:cols]
	}
	return cells
}

func (r *Renderer) renderCell(cell ast.TableCell, align ast.Alignment, header bool, rowIdx, colIdx, width int) *Element {
	tc := New("hp:tc")
	tc.SetInt("id", r.cellID)
	r.cellID++
	tc.Set("name", "")
	tc.Set("header", boolAttr(header))
	tc.Set("hasMargin", "0")
	tc.Set("protect", "0")
	tc.Set("editable", "0")
	tc.Set("dirty", "0")
	tc.SetInt("borderFillIDRef", styles.BorderFillTable)

	sub := tc.AddNew("hp:subList")
	sub.Set("textDirection", "HORIZONTAL")
	sub.Set("lineWrap", "BREAK")
	sub.Set("vertAlign", "CENTER")

	p := r.paragraph(styles.ParaTableCell)
	if ov := alignOverlay(align); ov != "" {
		// Column alignment is a per-paragraph overlay; no style IDs are
		// allocated for it.
		p.Set("align", ov)
	}
	cellCaps := caps{bold: header}
	if len(cell.Content) > 0 {
		r.renderInlines(p, cell.Content, cellCaps)
	} else {
		r.run(p, cellCaps).AddNew("hp:t").Text = " "
	}
	sub.Add(p)

	addr := tc.AddNew("hp:cellAddr")
	addr.SetInt("colAddr", colIdx)
	addr.SetInt("rowAddr", rowIdx)

	span := tc.AddNew("hp:cellSpan")
	span.Set("colSpan", "1")
	span.Set("rowSpan", "1")

	szc := tc.AddNew("hp:cellSz")
	szc.SetInt("width", width)
	szc.SetInt("height", defaultRowHeight)

	margin := tc.AddNew("hp:cellMargin")
	margin.SetInt("left", cellMarginLR)
	margin.SetInt("right", cellMarginLR)
	margin.SetInt("top", cellMarginTB)
	margin.SetInt("bottom", cellMarginTB)

	return tc
}

func alignOverlay(a ast.Alignment) string {
	switch a {
	case ast.AlignLeft:
		return "LEFT"
	case ast.AlignCenter:
		return "CENTER"
	case ast.AlignRight:
		return "RIGHT"
	}
	return ""
}

func boolAttr(b bool) string {
	if b {
		return "1"
	}
	return "0"
}

// intAttr reads back an integer attribute set earlier on the same element.
func (e *Element) intAttr(name string) int {
	var v int
	fmt.Sscanf(e.Attr(name), "%d", &v)
	return v
}
