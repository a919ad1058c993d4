package ast

import "testing"

func TestPlainText(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		inlines []Inline
		want    string
	}{
		{
			name: "mixed",
			inlines: []Inline{
				&Text{Value: "a "},
				&Emphasis{Kind: Bold, Children: []Inline{&Text{Value: "b"}}},
				&InlineCode{Value: " c"},
			},
			want: "a b c",
		},
		{
			name: "breaks become spaces",
			inlines: []Inline{
				&Text{Value: "a"},
				&SoftBreak{},
				&Text{Value: "b"},
				&HardBreak{},
				&Text{Value: "c"},
			},
			want: "a b c",
		},
		{
			name: "image contributes alt",
			inlines: []Inline{
				&Image{Src: "x.png", Alt: "alt"},
			},
			want: "alt",
		},
		{
			name: "footnote reference stays literal",
			inlines: []Inline{
				&FootnoteReference{Label: "a"},
			},
			want: "[^a]",
		},
		{
			name: "nested link",
			inlines: []Inline{
				&Link{Href: "u", Children: []Inline{&Text{Value: "text"}}},
			},
			want: "text",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := PlainText(tt.inlines); got != tt.want {
				t.Errorf("PlainText() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestBlockText(t *testing.T) {
	t.Parallel()

	blocks := []Block{
		&Heading{Level: 1, Content: []Inline{&Text{Value: "title"}}},
		&Paragraph{Content: []Inline{&Text{Value: "body"}}},
		&BlockQuote{Children: []Block{
			&Paragraph{Content: []Inline{&Text{Value: "quoted"}}},
		}},
	}
	if got := BlockText(blocks); got != "title body quoted" {
		t.Errorf("BlockText() = %q", got)
	}
}
