package resource

import (
	"image"
	"image/color"
	_ "image/png"
	"io"

	"github.com/32bitkid/retrogfx/screen"
)

// Load copies src into img with its top-left corner at (x, y), replacing
// every source pixel with the index of the nearest entry of pal.
// Paletted sources that already use pal are copied index for index.
func (img *Image) Load(x, y int, src image.Image, pal color.Palette) {
	b := src.Bounds()
	cache := make(map[[4]uint32]int)
	paletted, samePalette := src.(*image.Paletted)
	if samePalette {
		samePalette = len(paletted.Palette) <= len(pal)
		for i := 0; samePalette && i < len(paletted.Palette); i++ {
			samePalette = sameColor(paletted.Palette[i], pal[i])
		}
	}

	for sy := b.Min.Y; sy < b.Max.Y; sy++ {
		for sx := b.Min.X; sx < b.Max.X; sx++ {
			dx, dy := x+sx-b.Min.X, y+sy-b.Min.Y
			if !img.In(dx, dy) {
				continue
			}
			if samePalette {
				img.Set(dx, dy, int(paletted.ColorIndexAt(sx, sy)))
				continue
			}
			c := src.At(sx, sy)
			r, g, bl, a := c.RGBA()
			key := [4]uint32{r, g, bl, a}
			idx, ok := cache[key]
			if !ok {
				idx = screen.NearestIndex(pal, c)
				cache[key] = idx
			}
			img.Set(dx, dy, idx)
		}
	}
}

// LoadImage converts src into a new Image of the same size.
func LoadImage(src image.Image, pal color.Palette) *Image {
	b := src.Bounds()
	img := NewImage(b.Dx(), b.Dy())
	img.Load(0, 0, src, pal)
	return img
}

// DecodeImage reads an encoded picture (PNG, or any registered format)
// and converts it with LoadImage.
func DecodeImage(r io.Reader, pal color.Palette) (*Image, error) {
	src, _, err := image.Decode(r)
	if err != nil {
		return nil, err
	}
	return LoadImage(src, pal), nil
}

func sameColor(a, b color.Color) bool {
	r1, g1, b1, a1 := a.RGBA()
	r2, g2, b2, a2 := b.RGBA()
	return r1 == r2 && g1 == g2 && b1 == b2 && a1 == a2
}
