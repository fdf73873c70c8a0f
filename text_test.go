package retrogfx

import (
	"errors"
	"testing"

	"github.com/32bitkid/retrogfx/resource"
)

func TestDrawText(t *testing.T) {
	g, d := newGraphics(t, 10, 7)
	g.DrawText(1, 0, "AB", 8)

	expectRows(t, g, []string{
		"0080088000",
		"0808080800",
		"0888088000",
		"0808080800",
		"0808088000",
		"0000000000",
		"0000000000",
	})
	if len(*d) != 0 {
		t.Fatalf("unexpected diagnostics: %v", *d)
	}
}

func TestDrawTextLayout(t *testing.T) {
	type textCase struct {
		text     string
		expected []string
	}

	for i, tc := range []textCase{
		{" i", []string{"00000100", "00000000", "00000100", "00000100", "00000100", "00000000"}},
		{"\x01i\xff", []string{"01000000", "00000000", "01000000", "01000000", "01000000", "00000000"}},
		{"i\n i", []string{
			"01000000", "00000000", "01000000", "01000000", "01000000", "00000000",
			"00000100", "00000000", "00000100", "00000100", "00000100", "00000000",
		}},
	} {
		g, _ := newGraphics(t, 8, 12)
		g.DrawText(0, 0, tc.text, 1)
		for y, row := range tc.expected {
			if actual := dump(g)[y]; actual != row {
				t.Errorf("%d: row %d expected(%s) != actual(%s)", i, y, row, actual)
			}
		}
	}
}

func TestDrawTextIsAStencil(t *testing.T) {
	g, d := newGraphics(t, 4, 6)
	g.ClearScreen(9)
	g.SetPalette(3, 13)
	g.SetPalette(FontColor, 2)
	g.DrawText(0, 0, "!", 3)

	expectRows(t, g, []string{
		"9d99",
		"9d99",
		"9d99",
		"9999",
		"9d99",
		"9999",
	})

	g.DrawText(0, 0, "!", 42)
	if len(*d) != 1 || !errors.Is((*d)[0], ErrInvalidColor) {
		t.Fatalf("expected one invalid color diagnostic, got %v", *d)
	}
	if c := g.ScreenData()[1]; c != 0 {
		t.Fatalf("expected(0) != actual(%d)", c)
	}
}

func TestSystemImageHoldsFontAtlas(t *testing.T) {
	g, _ := newGraphics(t, 1, 1)
	font, err := resource.NewFont(resource.DefaultFont)
	if err != nil {
		t.Fatal(err)
	}

	sys := g.systemImage()
	for code := MinFontCode; code <= MaxFontCode; code++ {
		glyph, ok := font.Glyph(byte(code))
		if !ok {
			t.Fatalf("missing glyph %d", code)
		}
		i := code - MinFontCode
		u := FontImageX + (i%FontRowCount)*FontWidth
		v := FontImageY + (i/FontRowCount)*FontHeight
		for y := 0; y < FontHeight; y++ {
			for x := 0; x < FontWidth; x++ {
				expected := 0
				if glyph.Set(x, y) {
					expected = FontColor
				}
				if actual, _ := sys.Get(u+x, v+y); actual != expected {
					t.Fatalf("glyph %q (%d,%d): expected(%d) != actual(%d)", rune(code), x, y, expected, actual)
				}
			}
		}
	}
}

func TestDrawMouseCursor(t *testing.T) {
	g, d := newGraphics(t, 9, 9)
	g.ClearScreen(9)
	g.DrawMouseCursor(1, 1)

	expectRows(t, g, []string{
		"999999999",
		"919999999",
		"911999999",
		"917199999",
		"917719999",
		"917771999",
		"917711999",
		"919119999",
		"999999999",
	})
	if len(*d) != 0 {
		t.Fatalf("unexpected diagnostics: %v", *d)
	}
}
