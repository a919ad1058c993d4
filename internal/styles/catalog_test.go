package styles

import (
	"errors"
	"testing"
)

func TestResolve_AllPresets(t *testing.T) {
	t.Parallel()

	for _, preset := range Presets() {
		cat, err := Resolve(preset)
		if err != nil {
			t.Fatalf("Resolve(%q) failed: %v", preset, err)
		}
		if cat.Preset() != preset {
			t.Errorf("Preset() = %q, want %q", cat.Preset(), preset)
		}
		if len(cat.Fonts()) == 0 {
			t.Errorf("preset %q has no fonts", preset)
		}
	}
}

func TestResolve_UnknownPreset(t *testing.T) {
	t.Parallel()

	_, err := Resolve("fancy")
	if !errors.Is(err, ErrUnknownPreset) {
		t.Fatalf("Resolve(\"fancy\") = %v, want ErrUnknownPreset", err)
	}
}

func TestCatalog_StableIDs(t *testing.T) {
	t.Parallel()

	cat, err := Resolve("default")
	if err != nil {
		t.Fatal(err)
	}

	charIDs := []struct {
		role CharRole
		want int
	}{
		{CharDefault, 0},
		{CharBold, 1},
		{CharItalic, 2},
		{CharBoldItalic, 3},
		{CharStrike, 4},
		{CharInlineCode, 5},
		{CharLink, 6},
		{CharFootnoteRef, 7},
	}
	for _, tt := range charIDs {
		if got := cat.CharID(tt.role); got != tt.want {
			t.Errorf("CharID(%d) = %d, want %d", tt.role, got, tt.want)
		}
	}

	paraIDs := []struct {
		role ParaRole
		want int
	}{
		{ParaBody, 0},
		{ParaH1, 1},
		{ParaH6, 6},
		{ParaCodeBlock, 7},
		{ParaBlockQuote, 8},
		{ParaListItem, 9},
		{ParaTableCell, 10},
		{ParaFootnoteDef, 11},
		{ParaHR, 12},
	}
	for _, tt := range paraIDs {
		if got := cat.ParaID(tt.role); got != tt.want {
			t.Errorf("ParaID(%d) = %d, want %d", tt.role, got, tt.want)
		}
	}
}

func TestCatalog_CharRoles(t *testing.T) {
	t.Parallel()

	cat, err := Resolve("default")
	if err != nil {
		t.Fatal(err)
	}

	if !cat.Char(CharBold).Bold {
		t.Error("bold role is not bold")
	}
	if !cat.Char(CharBoldItalic).Bold || !cat.Char(CharBoldItalic).Italic {
		t.Error("bold_italic role missing a decoration")
	}
	if !cat.Char(CharStrike).Strike {
		t.Error("strike role is not struck")
	}
	if !cat.Char(CharLink).Underline {
		t.Error("link role is not underlined")
	}
	if cat.Char(CharInlineCode).Hangul != "D2Coding" {
		t.Errorf("inline code hangul font = %q, want D2Coding", cat.Char(CharInlineCode).Hangul)
	}
}

func TestCatalog_FontIndex(t *testing.T) {
	t.Parallel()

	cat, err := Resolve("default")
	if err != nil {
		t.Fatal(err)
	}

	// The body hangul face is registered first.
	if got := cat.FontIndex(cat.Char(CharDefault).Hangul); got != 0 {
		t.Errorf("FontIndex(body hangul) = %d, want 0", got)
	}
	for _, face := range cat.Fonts() {
		idx := cat.FontIndex(face)
		if cat.Fonts()[idx] != face {
			t.Errorf("FontIndex(%q) = %d, points at %q", face, idx, cat.Fonts()[idx])
		}
	}
}

func TestHeadingRole_Clamps(t *testing.T) {
	t.Parallel()

	tests := []struct {
		level int
		want  ParaRole
	}{
		{0, ParaH1},
		{1, ParaH1},
		{3, ParaH3},
		{6, ParaH6},
		{9, ParaH6},
	}
	for _, tt := range tests {
		if got := HeadingRole(tt.level); got != tt.want {
			t.Errorf("HeadingRole(%d) = %d, want %d", tt.level, got, tt.want)
		}
	}
}

func TestFontSpec_SizeHWP(t *testing.T) {
	t.Parallel()

	f := FontSpec{SizePt: 10.0}
	if got := f.SizeHWP(); got != 1000 {
		t.Errorf("SizeHWP() = %d, want 1000", got)
	}
}

func TestPresets_DifferInFonts(t *testing.T) {
	t.Parallel()

	def, _ := Resolve("default")
	aca, _ := Resolve("academic")
	if def.Char(CharDefault).Hangul == aca.Char(CharDefault).Hangul {
		t.Error("default and academic share a hangul body font")
	}
	if def.Para(ParaBody).LineSpacingPercent == aca.Para(ParaBody).LineSpacingPercent {
		t.Error("default and academic share body line spacing")
	}
}
