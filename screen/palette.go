package screen

import (
	"image/color"
	"math"

	clr "github.com/lucasb-eyer/go-colorful"
)

// DefaultPalettes are 16-entry display palettes. A physical framebuffer
// value selects an entry; the rasterizer never looks at these.
var DefaultPalettes = struct {
	Pyxel color.Palette
	EGA   color.Palette
	DB32  color.Palette
	Depth color.Palette
}{
	Pyxel: color.Palette{
		rgb24Color(0x000000),
		rgb24Color(0x1d2b53),
		rgb24Color(0x7e2553),
		rgb24Color(0x008751),
		rgb24Color(0xab5236),
		rgb24Color(0x5f574f),
		rgb24Color(0xc2c3c7),
		rgb24Color(0xfff1e8),

		rgb24Color(0xff004d),
		rgb24Color(0xffa300),
		rgb24Color(0xffec27),
		rgb24Color(0x00e436),
		rgb24Color(0x29adff),
		rgb24Color(0x83769c),
		rgb24Color(0xff77a8),
		rgb24Color(0xffccaa),
	},
	EGA: color.Palette{
		rgb24Color(0x000000),
		rgb24Color(0x0000aa),
		rgb24Color(0x00aa00),
		rgb24Color(0x00aaaa),
		rgb24Color(0xaa0000),
		rgb24Color(0xaa00aa),
		rgb24Color(0xaa5500),
		rgb24Color(0xaaaaaa),

		rgb24Color(0x555555),
		rgb24Color(0x5555ff),
		rgb24Color(0x55ff55),
		rgb24Color(0x55ffff),
		rgb24Color(0xff5555),
		rgb24Color(0xff55ff),
		rgb24Color(0xffff55),
		rgb24Color(0xffffff),
	},
	DB32: color.Palette{
		rgb24Color(0x000000),
		rgb24Color(0x3f3f74),
		rgb24Color(0x4b692f),
		rgb24Color(0x306082),
		rgb24Color(0xac3232),
		rgb24Color(0x45283c),
		rgb24Color(0x8f563b),
		rgb24Color(0x847e87),

		rgb24Color(0x323c39),
		rgb24Color(0x639bff),
		rgb24Color(0x6abe30),
		rgb24Color(0x5fcde4),
		rgb24Color(0xd95763),
		rgb24Color(0xd77bba),
		rgb24Color(0xfbf236),
		rgb24Color(0xffffff),
	},
	Depth: grayRamp(16),
}

// PaletteByName resolves the names accepted on the command line.
func PaletteByName(name string) (color.Palette, bool) {
	switch name {
	case "pyxel", "":
		return DefaultPalettes.Pyxel, true
	case "ega":
		return DefaultPalettes.EGA, true
	case "db32":
		return DefaultPalettes.DB32, true
	case "depth":
		return DefaultPalettes.Depth, true
	}
	return nil, false
}

// ParseHexPalette builds a palette from "#rrggbb" strings.
func ParseHexPalette(hexes ...string) (color.Palette, error) {
	pal := make(color.Palette, 0, len(hexes))
	for _, h := range hexes {
		c, err := clr.Hex(h)
		if err != nil {
			return nil, err
		}
		pal = append(pal, c.Clamped())
	}
	return pal, nil
}

// NearestIndex returns the palette entry perceptually closest to c.
func NearestIndex(pal color.Palette, c color.Color) int {
	target, _ := clr.MakeColor(c)
	best, bestDist := 0, math.Inf(1)
	for i, p := range pal {
		pc, _ := clr.MakeColor(p)
		if d := target.DistanceLab(pc); d < bestDist {
			best, bestDist = i, d
		}
	}
	return best
}

func grayRamp(n int) color.Palette {
	pal := make(color.Palette, n)
	for i := range pal {
		pal[i] = color.Gray{Y: uint8(i * 0xff / (n - 1))}
	}
	return pal
}
