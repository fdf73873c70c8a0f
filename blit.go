package retrogfx

import "github.com/32bitkid/retrogfx/resource"

// DrawImage copies the width x height block at (u, v) of image bank slot
// imageIndex to (x, y). A negative width or height mirrors the copy along
// that axis. Source pixels equal to colorKey are not drawn; pass
// NoColorKey to draw every pixel. Source pixels outside the image are
// not drawn either.
func (g *Graphics) DrawImage(x, y, imageIndex, u, v, width, height, colorKey int) {
	img := g.ImageBank(imageIndex)
	g.drawImage(img, x, y, u, v, width, height, g.colorKey(colorKey))
}

func (g *Graphics) drawImage(img *resource.Image, x, y, u, v, width, height, colorKey int) {
	g.blit(x, y, width, height, func(px, py int) (int, bool) {
		c, ok := img.Get(u+px, v+py)
		if !ok || c == colorKey {
			return 0, false
		}
		return g.DrawColor(c), true
	})
}

// DrawTilemap draws the width x height tile block at tile (u, v) of
// tilemap bank slot tilemapIndex to (x, y). Tiles are read from the image
// slot the tilemap is bound to. Mirroring and colorKey behave as in
// DrawImage, over the whole block in pixels.
func (g *Graphics) DrawTilemap(x, y, tilemapIndex, u, v, width, height, colorKey int) {
	tm := g.TilemapBank(tilemapIndex)
	img := g.ImageBank(tm.ImageIndex)
	colorKey = g.colorKey(colorKey)

	g.blit(x, y, width*TileWidth, height*TileHeight, func(px, py int) (int, bool) {
		tile, ok := tm.Get(u+px/TileWidth, v+py/TileHeight)
		if !ok {
			return 0, false
		}
		c, ok := img.Get(
			int(tile.X)*TileWidth+px%TileWidth,
			int(tile.Y)*TileHeight+py%TileHeight,
		)
		if !ok || c == colorKey {
			return 0, false
		}
		return g.DrawColor(c), true
	})
}

// colorKey validates a blit's color key. Anything other than NoColorKey
// or a logical color is reported and disables the key.
func (g *Graphics) colorKey(key int) int {
	if key != NoColorKey && (key < 0 || key >= ColorCount) {
		g.reportf("color key", key, ErrInvalidColor)
		return NoColorKey
	}
	return key
}

// blit visits every destination pixel of the |w| x |h| footprint at
// (x, y) that lies inside the clip area. sample receives the source
// offset of that pixel, already mirrored for negative w or h, and returns
// the physical color to write, or false to leave the pixel alone.
func (g *Graphics) blit(x, y, w, h int, sample func(px, py int) (int, bool)) {
	flipX, flipY := w < 0, h < 0
	w, h = absInt(w), absInt(h)

	area := RectFromSize(x, y, w, h).Intersect(g.clipArea)
	for dy := area.Y1; dy <= area.Y2; dy++ {
		py := dy - y
		if flipY {
			py = h - 1 - py
		}
		for dx := area.X1; dx <= area.X2; dx++ {
			px := dx - x
			if flipX {
				px = w - 1 - px
			}
			if c, ok := sample(px, py); ok {
				g.setPixel(dx, dy, c)
			}
		}
	}
}
