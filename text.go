package retrogfx

import (
	"fmt"

	"github.com/32bitkid/retrogfx/resource"
)

// DrawText draws each byte of text as a glyph of the built-in font, in a
// single color. '\n' moves to the next text row back at x. Bytes without
// a glyph are skipped and take no space.
func (g *Graphics) DrawText(x, y int, text string, color int) {
	c := g.DrawColor(color)
	font := g.systemImage()
	left := x

	for i := 0; i < len(text); i++ {
		ch := text[i]
		if ch == '\n' {
			x = left
			y += FontHeight
			continue
		}
		if ch < MinFontCode || ch > MaxFontCode {
			continue
		}

		code := int(ch) - MinFontCode
		u := FontImageX + (code%FontRowCount)*FontWidth
		v := FontImageY + (code/FontRowCount)*FontHeight
		g.blit(x, y, FontWidth, FontHeight, func(px, py int) (int, bool) {
			p, ok := font.Get(u+px, v+py)
			return c, ok && p != 0
		})
		x += FontWidth
	}
}

// DrawMouseCursor draws the built-in mouse cursor with its top-left
// corner at (x, y).
func (g *Graphics) DrawMouseCursor(x, y int) {
	g.drawImage(
		g.systemImage(), x, y,
		MouseCursorImageX, MouseCursorImageY,
		resource.CursorWidth, resource.CursorHeight, 0,
	)
}

func (g *Graphics) setupMouseCursor() error {
	cursor, err := resource.NewCursor(resource.DefaultCursor)
	if err != nil {
		return err
	}
	cursor.DrawTo(g.systemImage(), MouseCursorImageX, MouseCursorImageY, MouseCursorColor, MouseCursorEdge)
	return nil
}

func (g *Graphics) setupFont() error {
	font, err := resource.NewFont(resource.DefaultFont)
	if err != nil {
		return err
	}
	if font.FirstCode != MinFontCode || len(font.Glyphs) != MaxFontCode-MinFontCode+1 {
		return fmt.Errorf("font covers %d glyphs from %d", len(font.Glyphs), font.FirstCode)
	}
	if font.Width != FontWidth || font.Height != FontHeight {
		return fmt.Errorf("font cell is %dx%d", font.Width, font.Height)
	}
	font.DrawTo(g.systemImage(), FontImageX, FontImageY, FontRowCount, FontColor)
	return nil
}
