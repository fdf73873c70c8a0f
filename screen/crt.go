package screen

import (
	"image"
	"image/color"
)

var (
	red   = color.RGBA{R: 0xFF, G: 0x99, B: 0x99, A: 0xff}
	green = color.RGBA{G: 0xFF, R: 0x99, B: 0x99, A: 0xff}
	blue  = color.RGBA{B: 0xFF, R: 0x99, G: 0x99, A: 0xff}
)

func rgbMul(a, b color.Color) color.Color {
	r1, g1, b1, _ := a.RGBA()
	r2, g2, b2, _ := b.RGBA()
	return color.RGBA{
		R: uint8((r1 * r2 / 0xffff) >> 8),
		G: uint8((g1 * g2 / 0xffff) >> 8),
		B: uint8((b1 * b2 / 0xffff) >> 8),
		A: 0xFF,
	}
}

// RenderToCRT enlarges src by scale (at least 3) imitating a shadow mask
// monitor: neighbouring pixels bleed horizontally, the bottom row of every
// cell is a dark scan-line, and columns alternate red, green and blue.
func RenderToCRT(src image.Image, scale int) image.Image {
	if scale < 3 {
		scale = 3
	}
	srcRect := src.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, srcRect.Dx()*scale, srcRect.Dy()*scale))
	mid := scale / 2
	for sy, dy := srcRect.Min.Y, 0; sy < srcRect.Max.Y; sy, dy = sy+1, dy+scale {
		for sx, dx := srcRect.Min.X, 0; sx < srcRect.Max.X; sx, dx = sx+1, dx+scale {
			lc := src.At(clampInt(srcRect.Min.X, srcRect.Max.X-1, sx-1), sy)
			c := src.At(sx, sy)
			rc := src.At(clampInt(srcRect.Min.X, srcRect.Max.X-1, sx+1), sy)
			for iy := 0; iy < scale; iy++ {
				for ix := 0; ix < scale; ix++ {
					co := c

					// Bleed
					switch {
					case ix < mid:
						co = rgbMix(lc, c, 0.5+0.5*float64(ix+1)/float64(mid+1))
					case ix > mid:
						co = rgbMix(c, rc, 0.5*float64(ix-mid)/float64(scale-mid))
					}

					// Scan-line
					if iy == scale-1 {
						co = darken(co, 0.4)
					}

					// Shadow mask
					switch (ix + iy%2) % 3 {
					case 0:
						co = rgbMul(co, red)
					case 1:
						co = rgbMul(co, green)
					default:
						co = rgbMul(co, blue)
					}

					dst.Set(dx+ix, dy+iy, co)
				}
			}
		}
	}
	return dst
}
