package retrogfx

import (
	"errors"
	"testing"

	"github.com/32bitkid/retrogfx/resource"
)

func setData(t *testing.T, img *resource.Image, x, y int, rows []string) {
	t.Helper()
	if err := img.SetData(x, y, rows); err != nil {
		t.Fatal(err)
	}
}

func TestDrawImage(t *testing.T) {
	g, d := newGraphics(t, 6, 4)
	setData(t, g.ImageBank(1), 10, 20, []string{
		"123",
		"456",
	})

	g.DrawImage(1, 1, 1, 10, 20, 3, 2, NoColorKey)

	expectRows(t, g, []string{
		"000000",
		"012300",
		"045600",
		"000000",
	})
	if len(*d) != 0 {
		t.Fatalf("unexpected diagnostics: %v", *d)
	}
}

func TestDrawImageUsesPalette(t *testing.T) {
	g, _ := newGraphics(t, 3, 1)
	setData(t, g.ImageBank(0), 0, 0, []string{"121"})
	g.SetPalette(1, 14)

	g.DrawImage(0, 0, 0, 0, 0, 3, 1, NoColorKey)
	expectRows(t, g, []string{"e2e"})
}

func TestDrawImageMirroring(t *testing.T) {
	src := []string{
		"1234",
		"5678",
		"9abc",
	}
	type mirrorCase struct {
		w, h     int
		expected []string
	}

	for i, tc := range []mirrorCase{
		{4, 3, []string{"1234", "5678", "9abc"}},
		{-4, 3, []string{"4321", "8765", "cba9"}},
		{4, -3, []string{"9abc", "5678", "1234"}},
		{-4, -3, []string{"cba9", "8765", "4321"}},
	} {
		g, _ := newGraphics(t, 4, 3)
		setData(t, g.ImageBank(2), 0, 0, src)
		g.DrawImage(0, 0, 2, 0, 0, tc.w, tc.h, NoColorKey)
		for y, row := range dump(g) {
			if row != tc.expected[y] {
				t.Errorf("%d: row %d expected(%s) != actual(%s)", i, y, tc.expected[y], row)
			}
		}
	}
}

func TestDrawImageMirrorLaw(t *testing.T) {
	for w := 1; w <= 7; w++ {
		plain, _ := newGraphics(t, 8, 2)
		mirrored, _ := newGraphics(t, 8, 2)
		for _, g := range []*Graphics{plain, mirrored} {
			setData(t, g.ImageBank(0), 3, 5, []string{"0123456789", "fedcba9876"})
		}
		plain.DrawImage(1, 0, 0, 3, 5, w, 2, 5)
		mirrored.DrawImage(1, 0, 0, 3, 5, -w, 2, 5)

		for y := 0; y < 2; y++ {
			for c := 0; c < w; c++ {
				a := plain.ScreenData()[y*8+1+c]
				b := mirrored.ScreenData()[y*8+1+(w-1-c)]
				if a != b {
					t.Errorf("w=%d: column %d expected(%d) != actual(%d)", w, c, a, b)
				}
			}
		}
	}
}

func TestDrawImageColorKey(t *testing.T) {
	g, _ := newGraphics(t, 4, 2)
	setData(t, g.ImageBank(0), 0, 0, []string{
		"1301",
		"3333",
	})
	g.ClearScreen(9)
	g.SetPalette(3, 12)

	g.DrawImage(0, 0, 0, 0, 0, 4, 2, 3)
	expectRows(t, g, []string{
		"1901",
		"9999",
	})

	// the key is compared with the source value, not the remapped one
	g.ClearScreen(9)
	g.DrawImage(0, 0, 0, 0, 0, 4, 2, 12)
	expectRows(t, g, []string{
		"1c01",
		"cccc",
	})
}

func TestDrawImageInvalidColorKey(t *testing.T) {
	g, d := newGraphics(t, 2, 1)
	setData(t, g.ImageBank(0), 0, 0, []string{"05"})
	g.ClearScreen(9)

	g.DrawImage(0, 0, 0, 0, 0, 2, 1, ColorCount)
	if len(*d) != 1 || !errors.Is((*d)[0], ErrInvalidColor) {
		t.Fatalf("expected one invalid color diagnostic, got %v", *d)
	}
	expectRows(t, g, []string{"05"})
}

func TestDrawImageOutsideSource(t *testing.T) {
	g, _ := newGraphics(t, 6, 1)
	img := g.ImageBank(0)
	img.Set(ImageBankWidth-2, 0, 4)
	img.Set(ImageBankWidth-1, 0, 5)
	g.ClearScreen(9)

	g.DrawImage(0, 0, 0, ImageBankWidth-2, 0, 4, 1, NoColorKey)
	expectRows(t, g, []string{"459999"})

	g.ClearScreen(9)
	g.DrawImage(0, 0, 0, -2, 0, 4, 1, NoColorKey)
	expectRows(t, g, []string{"990099"})
}

func TestDrawImageDegradesOnBadIndex(t *testing.T) {
	g, d := newGraphics(t, 2, 1)
	setData(t, g.ImageBank(0), 0, 0, []string{"78"})

	g.DrawImage(0, 0, -5, 0, 0, 2, 1, NoColorKey)
	if len(*d) != 1 || !errors.Is((*d)[0], ErrInvalidIndex) {
		t.Fatalf("expected one invalid index diagnostic, got %v", *d)
	}
	expectRows(t, g, []string{"78"})
}

func TestDrawImageFromSystemBank(t *testing.T) {
	g, d := newGraphics(t, 8, 8)

	g.DrawImage(0, 0, ImageBankForSystem, MouseCursorImageX, MouseCursorImageY, 8, 8, NoColorKey)
	if len(*d) != 1 || !errors.Is((*d)[0], ErrSystemBank) {
		t.Fatalf("expected one system bank diagnostic, got %v", *d)
	}
	if c := g.ScreenData()[0]; c != MouseCursorEdge {
		t.Fatalf("expected(%d) != actual(%d)", MouseCursorEdge, c)
	}
}

func tilemapFixture(t *testing.T, g *Graphics) {
	t.Helper()
	img := g.ImageBank(1)
	// tile (0,0): solid 1 with a 2 in its top-left corner
	for y := 0; y < TileHeight; y++ {
		for x := 0; x < TileWidth; x++ {
			img.Set(x, y, 1)
		}
	}
	img.Set(0, 0, 2)
	// tile (1,0): solid 3 with a 4 in its bottom-right corner
	for y := 0; y < TileHeight; y++ {
		for x := 0; x < TileWidth; x++ {
			img.Set(TileWidth+x, y, 3)
		}
	}
	img.Set(2*TileWidth-1, TileHeight-1, 4)

	tm := g.TilemapBank(2)
	tm.ImageIndex = 1
	if err := tm.SetData(5, 7, []string{"0100 0000"}); err != nil {
		t.Fatal(err)
	}
}

func TestDrawTilemap(t *testing.T) {
	g, d := newGraphics(t, 16, 8)
	tilemapFixture(t, g)

	g.DrawTilemap(0, 0, 2, 5, 7, 2, 1, NoColorKey)
	expectRows(t, g, []string{
		"3333333321111111",
		"3333333311111111",
		"3333333311111111",
		"3333333311111111",
		"3333333311111111",
		"3333333311111111",
		"3333333311111111",
		"3333333411111111",
	})
	if len(*d) != 0 {
		t.Fatalf("unexpected diagnostics: %v", *d)
	}
}

func TestDrawTilemapMirrored(t *testing.T) {
	g, _ := newGraphics(t, 16, 8)
	tilemapFixture(t, g)

	g.DrawTilemap(0, 0, 2, 5, 7, -2, -1, NoColorKey)
	expectRows(t, g, []string{
		"1111111143333333",
		"1111111133333333",
		"1111111133333333",
		"1111111133333333",
		"1111111133333333",
		"1111111133333333",
		"1111111133333333",
		"1111111233333333",
	})
}

func TestDrawTilemapColorKeyAndOffset(t *testing.T) {
	g, _ := newGraphics(t, 12, 10)
	tilemapFixture(t, g)
	g.ClearScreen(0)

	g.DrawTilemap(2, 1, 2, 6, 7, 1, 1, 1)
	expectRows(t, g, []string{
		"000000000000",
		"002000000000",
		"000000000000",
	})
	for i, c := range g.ScreenData() {
		if c != 0 && i != 1*12+2 {
			t.Fatalf("unexpected pixel at %d", i)
		}
	}
}

func TestDrawTilemapOutsideMap(t *testing.T) {
	g, d := newGraphics(t, 16, 8)
	tilemapFixture(t, g)
	g.ClearScreen(9)

	g.DrawTilemap(0, 0, 2, TilemapBankWidth-1, 0, 2, 1, NoColorKey)
	for y := 0; y < 8; y++ {
		for x := 0; x < 16; x++ {
			c := g.ScreenData()[y*16+x]
			if x >= TileWidth && c != 9 {
				t.Fatalf("(%d,%d) drawn outside the tilemap", x, y)
			}
		}
	}

	g.DrawTilemap(0, 0, TilemapBankCount, 0, 0, 1, 1, NoColorKey)
	if len(*d) != 1 || !errors.Is((*d)[0], ErrInvalidIndex) {
		t.Fatalf("expected one invalid index diagnostic, got %v", *d)
	}
}
