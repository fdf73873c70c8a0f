package resource

import (
	"bytes"
	"encoding/binary"
)

const (
	CursorWidth  = 8
	CursorHeight = 8
)

// DefaultCursor is the built-in arrow in NewCursor's encoding.
var DefaultCursor = []byte{
	0x00, 0x00,
	0x7f, 0x3f, 0x1f, 0x0f, 0x07, 0x07, 0x4f, 0xff,
	0x00, 0x00, 0x40, 0x60, 0x70, 0x60, 0x00, 0x00,
}

func NewCursor(b []byte) (cursor Cursor, err error) {
	reader := bytes.NewReader(b)
	err = binary.Read(reader, binary.LittleEndian, &cursor)
	return
}

type HotSpot struct {
	X int8
	Y int8
}

// Cursor is an 8x8 two-color glyph. Each row is a bit mask with the
// leftmost pixel in the high bit; a set Transparency bit wins over Color.
type Cursor struct {
	HotSpot
	Transparency [CursorHeight]uint8
	Color        [CursorHeight]uint8
}

func (c Cursor) bits(x, y int) (transparent, fg bool) {
	shift := uint(CursorWidth - 1 - x)
	transparent = (c.Transparency[y]>>shift)&1 == 1
	fg = (c.Color[y]>>shift)&1 == 1
	return
}

// DrawTo paints the cursor into img with its top-left corner at (x, y).
// Transparent pixels are left untouched.
func (c Cursor) DrawTo(img *Image, x, y int, fg, outline int) {
	for cy := 0; cy < CursorHeight; cy++ {
		for cx := 0; cx < CursorWidth; cx++ {
			tr, clr := c.bits(cx, cy)
			switch {
			case tr:
			case clr:
				img.Set(x+cx, y+cy, fg)
			default:
				img.Set(x+cx, y+cy, outline)
			}
		}
	}
}

func (c Cursor) String() string {
	str := ""
	for i := 0; i < CursorWidth*CursorHeight; i++ {
		x, y := i%CursorWidth, i/CursorWidth

		tr, clr := c.bits(x, y)
		switch {
		case tr:
			str += " "
		case clr:
			str += "█"
		default:
			str += "░"
		}

		if x == CursorWidth-1 {
			str += "\n"
		}
	}
	return str
}
