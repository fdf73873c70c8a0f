package resource

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"strings"

	"github.com/32bitkid/bitreader"
)

// Font is a fixed-cell 1-bit glyph table covering a contiguous run of
// character codes.
type Font struct {
	FirstCode uint8
	Width     uint8
	Height    uint8
	Glyphs    []Glyph
}

// Glyph rows are bit masks with the leftmost pixel in bit Width-1.
type Glyph struct {
	Width  uint8
	Height uint8
	bitmap []uint8
}

func (g Glyph) Set(x, y int) bool {
	if x < 0 || y < 0 || x >= int(g.Width) || y >= int(g.Height) {
		return false
	}
	return (g.bitmap[y]>>uint(int(g.Width)-1-x))&1 == 1
}

func (g Glyph) String() string {
	var sb strings.Builder
	for y := 0; y < int(g.Height); y++ {
		for x := 0; x < int(g.Width); x++ {
			if g.Set(x, y) {
				sb.WriteString("█")
			} else {
				sb.WriteString(" ")
			}
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

// NewFont decodes a glyph table: a header of first code, glyph count,
// cell width and cell height (one byte each), followed by every glyph's
// pixels packed one bit each.
func NewFont(b []byte) (*Font, error) {
	r := bytes.NewReader(b)

	var h struct {
		FirstCode uint8
		Count     uint8
		Width     uint8
		Height    uint8
	}
	if err := binary.Read(r, binary.LittleEndian, &h); err != nil {
		return nil, err
	}
	if h.Width == 0 || h.Width > 8 || h.Height == 0 {
		return nil, fmt.Errorf("unsupported glyph cell %dx%d", h.Width, h.Height)
	}
	if int(h.FirstCode)+int(h.Count) > 256 {
		return nil, fmt.Errorf("glyph codes overflow: first %d, count %d", h.FirstCode, h.Count)
	}

	font := Font{
		FirstCode: h.FirstCode,
		Width:     h.Width,
		Height:    h.Height,
		Glyphs:    make([]Glyph, int(h.Count)),
	}

	bits := bitreader.NewReader(r)
	for i := range font.Glyphs {
		bitmap := make([]uint8, h.Height)
		for y := range bitmap {
			row, err := bits.Read8(uint(h.Width))
			if err != nil {
				return nil, fmt.Errorf("glyph %d row %d: %v", i, y, err)
			}
			bitmap[y] = row
		}
		font.Glyphs[i] = Glyph{
			Width:  h.Width,
			Height: h.Height,
			bitmap: bitmap,
		}
	}

	return &font, nil
}

// Glyph returns the glyph for code, if the font covers it.
func (f *Font) Glyph(code byte) (Glyph, bool) {
	i := int(code) - int(f.FirstCode)
	if i < 0 || i >= len(f.Glyphs) {
		return Glyph{}, false
	}
	return f.Glyphs[i], true
}

// DrawTo lays the glyphs out as an atlas in img, rowCount glyphs per row,
// starting at (x, y). Set pixels get color, clear pixels get 0.
func (f *Font) DrawTo(img *Image, x, y, rowCount, color int) {
	if rowCount <= 0 {
		rowCount = len(f.Glyphs)
	}
	w, h := int(f.Width), int(f.Height)
	for i, g := range f.Glyphs {
		gx := x + (i%rowCount)*w
		gy := y + (i/rowCount)*h
		for py := 0; py < h; py++ {
			for px := 0; px < w; px++ {
				c := 0
				if g.Set(px, py) {
					c = color
				}
				img.Set(gx+px, gy+py, c)
			}
		}
	}
}
