package markdown

import (
	"strings"
	"testing"

	"github.com/alnah/go-md2hwpx/internal/ast"
)

func parse(t *testing.T, src string) *ast.Document {
	t.Helper()
	return NewParser().Parse(Normalize([]byte(src)))
}

func TestParse_Headings(t *testing.T) {
	t.Parallel()

	doc := parse(t, "# A\n## B\n### C\n#### D\n##### E\n###### F\n")
	if len(doc.Blocks) != 6 {
		t.Fatalf("got %d blocks, want 6", len(doc.Blocks))
	}
	for i, b := range doc.Blocks {
		h, ok := b.(*ast.Heading)
		if !ok {
			t.Fatalf("block %d is %T, want *ast.Heading", i, b)
		}
		if h.Level != i+1 {
			t.Errorf("block %d level = %d, want %d", i, h.Level, i+1)
		}
		want := string(rune('A' + i))
		if got := ast.PlainText(h.Content); got != want {
			t.Errorf("block %d text = %q, want %q", i, got, want)
		}
	}
}

func TestParse_SetextHeadings(t *testing.T) {
	t.Parallel()

	doc := parse(t, "First\n=====\n\nSecond\n------\n")
	if len(doc.Blocks) != 2 {
		t.Fatalf("got %d blocks, want 2", len(doc.Blocks))
	}
	h1, ok := doc.Blocks[0].(*ast.Heading)
	if !ok || h1.Level != 1 {
		t.Errorf("first block = %#v, want h1", doc.Blocks[0])
	}
	h2, ok := doc.Blocks[1].(*ast.Heading)
	if !ok || h2.Level != 2 {
		t.Errorf("second block = %#v, want h2", doc.Blocks[1])
	}
}

func TestParse_SevenHashesIsParagraph(t *testing.T) {
	t.Parallel()

	doc := parse(t, "####### not a heading\n")
	if len(doc.Blocks) != 1 {
		t.Fatalf("got %d blocks, want 1", len(doc.Blocks))
	}
	if _, ok := doc.Blocks[0].(*ast.Paragraph); !ok {
		t.Fatalf("block is %T, want *ast.Paragraph", doc.Blocks[0])
	}
}

func TestParse_Emphasis(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  ast.EmphasisKind
	}{
		{"single star italic", "*x*", ast.Italic},
		{"underscore italic", "_x_", ast.Italic},
		{"double star bold", "**x**", ast.Bold},
		{"triple star bold italic", "***x***", ast.BoldItalic},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			doc := parse(t, tt.input)
			p, ok := doc.Blocks[0].(*ast.Paragraph)
			if !ok {
				t.Fatalf("block is %T, want paragraph", doc.Blocks[0])
			}
			em, ok := p.Content[0].(*ast.Emphasis)
			if !ok {
				t.Fatalf("inline is %T, want emphasis", p.Content[0])
			}
			if em.Kind != tt.want {
				t.Errorf("kind = %d, want %d", em.Kind, tt.want)
			}
			if got := ast.PlainText(em.Children); got != "x" {
				t.Errorf("text = %q, want x", got)
			}
		})
	}
}

func TestParse_UnmatchedDelimiterIsLiteral(t *testing.T) {
	t.Parallel()

	doc := parse(t, "a * b\n")
	p := doc.Blocks[0].(*ast.Paragraph)
	if got := ast.PlainText(p.Content); got != "a * b" {
		t.Errorf("text = %q, want literal", got)
	}
}

func TestParse_StrikethroughAndCode(t *testing.T) {
	t.Parallel()

	doc := parse(t, "~~gone~~ and `code`\n")
	p := doc.Blocks[0].(*ast.Paragraph)

	st, ok := p.Content[0].(*ast.Strikethrough)
	if !ok {
		t.Fatalf("inline 0 is %T, want strikethrough", p.Content[0])
	}
	if got := ast.PlainText(st.Children); got != "gone" {
		t.Errorf("strikethrough text = %q", got)
	}

	var code *ast.InlineCode
	for _, in := range p.Content {
		if c, ok := in.(*ast.InlineCode); ok {
			code = c
		}
	}
	if code == nil || code.Value != "code" {
		t.Errorf("inline code = %#v, want value \"code\"", code)
	}
}

func TestParse_Links(t *testing.T) {
	t.Parallel()

	doc := parse(t, `[text](https://example.com "tip")`)
	p := doc.Blocks[0].(*ast.Paragraph)
	link, ok := p.Content[0].(*ast.Link)
	if !ok {
		t.Fatalf("inline is %T, want link", p.Content[0])
	}
	if link.Href != "https://example.com" {
		t.Errorf("href = %q", link.Href)
	}
	if link.Title != "tip" {
		t.Errorf("title = %q", link.Title)
	}
	if got := ast.PlainText(link.Children); got != "text" {
		t.Errorf("text = %q", got)
	}
}

func TestParse_Autolink(t *testing.T) {
	t.Parallel()

	doc := parse(t, "<https://example.com>\n")
	p := doc.Blocks[0].(*ast.Paragraph)
	link, ok := p.Content[0].(*ast.Link)
	if !ok {
		t.Fatalf("inline is %T, want link", p.Content[0])
	}
	if link.Href != "https://example.com" {
		t.Errorf("href = %q", link.Href)
	}
}

func TestParse_Image(t *testing.T) {
	t.Parallel()

	doc := parse(t, `![alt text](pic.png "caption")`)
	p := doc.Blocks[0].(*ast.Paragraph)
	img, ok := p.Content[0].(*ast.Image)
	if !ok {
		t.Fatalf("inline is %T, want image", p.Content[0])
	}
	if img.Src != "pic.png" || img.Title != "caption" || img.Alt != "alt text" {
		t.Errorf("image = %+v", img)
	}
}

func TestParse_Breaks(t *testing.T) {
	t.Parallel()

	doc := parse(t, "hard  \nbreak and\nsoft\n")
	p := doc.Blocks[0].(*ast.Paragraph)

	var hard, soft int
	for _, in := range p.Content {
		switch in.(type) {
		case *ast.HardBreak:
			hard++
		case *ast.SoftBreak:
			soft++
		}
	}
	if hard != 1 {
		t.Errorf("hard breaks = %d, want 1", hard)
	}
	if soft != 1 {
		t.Errorf("soft breaks = %d, want 1", soft)
	}
}

func TestParse_FencedCode(t *testing.T) {
	t.Parallel()

	doc := parse(t, "```python\nprint(1)\n```\n")
	cb, ok := doc.Blocks[0].(*ast.CodeBlock)
	if !ok {
		t.Fatalf("block is %T, want code block", doc.Blocks[0])
	}
	if cb.Info != "python" {
		t.Errorf("info = %q, want python", cb.Info)
	}
	if cb.Text != "print(1)\n" {
		t.Errorf("text = %q, want \"print(1)\\n\"", cb.Text)
	}
}

func TestParse_UnterminatedFenceRunsToEOF(t *testing.T) {
	t.Parallel()

	doc := parse(t, "```\na\nb\n")
	cb, ok := doc.Blocks[0].(*ast.CodeBlock)
	if !ok {
		t.Fatalf("block is %T, want code block", doc.Blocks[0])
	}
	if cb.Text != "a\nb\n" {
		t.Errorf("text = %q", cb.Text)
	}
}

func TestParse_IndentedCode(t *testing.T) {
	t.Parallel()

	doc := parse(t, "    indented\n")
	cb, ok := doc.Blocks[0].(*ast.CodeBlock)
	if !ok {
		t.Fatalf("block is %T, want code block", doc.Blocks[0])
	}
	if cb.Info != "" {
		t.Errorf("info = %q, want empty", cb.Info)
	}
	if !strings.Contains(cb.Text, "indented") {
		t.Errorf("text = %q", cb.Text)
	}
}

func TestParse_Blockquote(t *testing.T) {
	t.Parallel()

	doc := parse(t, "> outer\n>> inner\n")
	bq, ok := doc.Blocks[0].(*ast.BlockQuote)
	if !ok {
		t.Fatalf("block is %T, want blockquote", doc.Blocks[0])
	}
	var nested bool
	for _, child := range bq.Children {
		if _, ok := child.(*ast.BlockQuote); ok {
			nested = true
		}
	}
	if !nested {
		t.Error("no nested blockquote found")
	}
}

func TestParse_ThematicBreak(t *testing.T) {
	t.Parallel()

	doc := parse(t, "a\n\n---\n\nb\n")
	var found bool
	for _, b := range doc.Blocks {
		if _, ok := b.(*ast.ThematicBreak); ok {
			found = true
		}
	}
	if !found {
		t.Error("no thematic break found")
	}
}

func TestParse_Lists(t *testing.T) {
	t.Parallel()

	t.Run("bullet", func(t *testing.T) {
		t.Parallel()
		doc := parse(t, "- one\n- two\n")
		l, ok := doc.Blocks[0].(*ast.List)
		if !ok {
			t.Fatalf("block is %T, want list", doc.Blocks[0])
		}
		if l.Ordered {
			t.Error("bullet list marked ordered")
		}
		if len(l.Items) != 2 {
			t.Errorf("items = %d, want 2", len(l.Items))
		}
	})

	t.Run("ordered with start", func(t *testing.T) {
		t.Parallel()
		doc := parse(t, "3. three\n4. four\n")
		l, ok := doc.Blocks[0].(*ast.List)
		if !ok {
			t.Fatalf("block is %T, want list", doc.Blocks[0])
		}
		if !l.Ordered {
			t.Error("ordered list not marked ordered")
		}
		if l.Start != 3 {
			t.Errorf("start = %d, want 3", l.Start)
		}
	})

	t.Run("nested", func(t *testing.T) {
		t.Parallel()
		doc := parse(t, "- a\n  - b\n")
		l := doc.Blocks[0].(*ast.List)
		if len(l.Items) != 1 {
			t.Fatalf("items = %d, want 1", len(l.Items))
		}
		var nested bool
		for _, child := range l.Items[0].Children {
			if _, ok := child.(*ast.List); ok {
				nested = true
			}
		}
		if !nested {
			t.Error("no nested list inside first item")
		}
	})
}

func TestParse_TaskList(t *testing.T) {
	t.Parallel()

	doc := parse(t, "- [x] done\n- [ ] todo\n- plain\n")
	l, ok := doc.Blocks[0].(*ast.List)
	if !ok {
		t.Fatalf("block is %T, want list", doc.Blocks[0])
	}
	if len(l.Items) != 3 {
		t.Fatalf("items = %d, want 3", len(l.Items))
	}
	want := []ast.TaskState{ast.TaskChecked, ast.TaskUnchecked, ast.TaskNone}
	for i, item := range l.Items {
		if item.Task != want[i] {
			t.Errorf("item %d task = %d, want %d", i, item.Task, want[i])
		}
	}
}

func TestParse_TaskMarkerNotOnOrderedItems(t *testing.T) {
	t.Parallel()

	doc := parse(t, "1. [x] looks like a task\n")
	l, ok := doc.Blocks[0].(*ast.List)
	if !ok {
		t.Fatalf("block is %T, want list", doc.Blocks[0])
	}
	if l.Items[0].Task != ast.TaskNone {
		t.Errorf("ordered item task = %d, want TaskNone", l.Items[0].Task)
	}
}

func TestParse_Table(t *testing.T) {
	t.Parallel()

	doc := parse(t, "| a | b |\n|:--|--:|\n| 1 | 2 |\n")
	tbl, ok := doc.Blocks[0].(*ast.Table)
	if !ok {
		t.Fatalf("block is %T, want table", doc.Blocks[0])
	}
	wantAligns := []ast.Alignment{ast.AlignLeft, ast.AlignRight}
	if len(tbl.Alignments) != len(wantAligns) {
		t.Fatalf("alignments = %d, want %d", len(tbl.Alignments), len(wantAligns))
	}
	for i, a := range tbl.Alignments {
		if a != wantAligns[i] {
			t.Errorf("alignment %d = %d, want %d", i, a, wantAligns[i])
		}
	}
	if len(tbl.Header.Cells) != 2 {
		t.Errorf("header cells = %d, want 2", len(tbl.Header.Cells))
	}
	if len(tbl.Rows) != 1 || len(tbl.Rows[0].Cells) != 2 {
		t.Errorf("body rows = %+v, want one row of two cells", tbl.Rows)
	}
	if got := ast.PlainText(tbl.Rows[0].Cells[0].Content); got != "1" {
		t.Errorf("cell text = %q, want 1", got)
	}
}

func TestParse_MalformedTableFallsBackToParagraphs(t *testing.T) {
	t.Parallel()

	doc := parse(t, "| a | b |\n| not an alignment row |\n")
	for _, b := range doc.Blocks {
		if _, ok := b.(*ast.Table); ok {
			t.Fatal("malformed table parsed as table")
		}
	}
}

func TestParse_Footnotes(t *testing.T) {
	t.Parallel()

	doc := parse(t, "see[^a].\n\n[^a]: note\n")

	var ref *ast.FootnoteReference
	p, ok := doc.Blocks[0].(*ast.Paragraph)
	if !ok {
		t.Fatalf("block 0 is %T, want paragraph", doc.Blocks[0])
	}
	for _, in := range p.Content {
		if r, ok := in.(*ast.FootnoteReference); ok {
			ref = r
		}
	}
	if ref == nil || ref.Label != "a" {
		t.Fatalf("footnote reference = %#v, want label a", ref)
	}

	var def *ast.FootnoteDefinition
	for _, b := range doc.Blocks {
		if d, ok := b.(*ast.FootnoteDefinition); ok {
			def = d
		}
	}
	if def == nil || def.Label != "a" {
		t.Fatalf("footnote definition = %#v, want label a", def)
	}
	if got := ast.BlockText(def.Children); !strings.Contains(got, "note") {
		t.Errorf("definition text = %q, want to contain note", got)
	}
}

func TestParse_UnresolvedFootnoteStaysLiteral(t *testing.T) {
	t.Parallel()

	doc := parse(t, "see[^missing].\n")
	p := doc.Blocks[0].(*ast.Paragraph)
	for _, in := range p.Content {
		if _, ok := in.(*ast.FootnoteReference); ok {
			t.Fatal("reference without definition should not produce a node")
		}
	}
	if got := ast.PlainText(p.Content); !strings.Contains(got, "[^missing]") {
		t.Errorf("text = %q, want literal [^missing]", got)
	}
}

func TestParse_Deterministic(t *testing.T) {
	t.Parallel()

	src := "# T\n\npara **bold** `code`\n\n- a\n- b\n\n| x |\n|---|\n| 1 |\n"
	a := parse(t, src)
	b := parse(t, src)
	if len(a.Blocks) != len(b.Blocks) {
		t.Fatalf("block counts differ: %d vs %d", len(a.Blocks), len(b.Blocks))
	}
}
