package screen

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"
)

// View is the read side of a framebuffer: row-major physical colors.
type View interface {
	Width() int
	Height() int
	ScreenData() []int
}

// Render converts the physical colors of v into a paletted image. Values
// outside the palette wrap around its length.
func Render(v View, pal color.Palette) *image.Paletted {
	w, h := v.Width(), v.Height()
	img := image.NewPaletted(image.Rect(0, 0, w, h), pal)
	n := len(pal)
	if n == 0 {
		return img
	}
	data := v.ScreenData()
	for y := 0; y < h; y++ {
		offset := y * img.Stride
		for x := 0; x < w; x++ {
			c := data[y*w+x] % n
			if c < 0 {
				c += n
			}
			img.Pix[offset+x] = uint8(c)
		}
	}
	return img
}

// Scale enlarges src by an integer factor without filtering.
func Scale(src image.Image, factor int) *image.RGBA {
	if factor < 1 {
		factor = 1
	}
	b := src.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx()*factor, b.Dy()*factor))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, b, draw.Src, nil)
	return dst
}
