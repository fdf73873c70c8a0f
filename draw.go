package retrogfx

// ClearScreen fills the whole framebuffer with color, ignoring the clip
// area.
func (g *Graphics) ClearScreen(color int) {
	c := g.DrawColor(color)
	for i, max := 0, len(g.screenData); i < max; i++ {
		g.screenData[i] = c
	}
}

func (g *Graphics) DrawPoint(x, y, color int) {
	g.setPixel(x, y, g.DrawColor(color))
}

// DrawLine draws the 8-connected line between two inclusive endpoints.
func (g *Graphics) DrawLine(x1, y1, x2, y2, color int) {
	c := g.DrawColor(color)
	left, top, right, bottom := x1, y1, x2, y2

	switch {
	case left == right:
		swapIf(&top, &bottom, top > bottom)
		g.vline(left, top, bottom, c)
	case top == bottom:
		swapIf(&left, &right, left > right)
		g.hline(left, right, top, c)
	default:
		// bresenham
		dx, dy := right-left, bottom-top
		stepX, stepY := sign(dx), sign(dy)

		dx, dy = absInt(dx)<<1, absInt(dy)<<1

		g.setPixel(left, top, c)

		if dx > dy {
			fraction := dy - (dx >> 1)
			for left != right {
				if fraction >= 0 {
					top += stepY
					fraction -= dx
				}
				left += stepX
				fraction += dy
				g.setPixel(left, top, c)
			}
		} else {
			fraction := dx - (dy >> 1)
			for top != bottom {
				if fraction >= 0 {
					left += stepX
					fraction -= dy
				}
				top += stepY
				fraction += dx
				g.setPixel(left, top, c)
			}
		}
	}
}

// DrawRectangle fills the inclusive rectangle spanned by two corners.
func (g *Graphics) DrawRectangle(x1, y1, x2, y2, color int) {
	c := g.DrawColor(color)
	area := Rect(x1, y1, x2, y2).Intersect(g.clipArea)
	for y := area.Y1; y <= area.Y2; y++ {
		g.hline(area.X1, area.X2, y, c)
	}
}

// DrawRectangleBorder draws the one pixel outline of the inclusive
// rectangle spanned by two corners.
func (g *Graphics) DrawRectangleBorder(x1, y1, x2, y2, color int) {
	c := g.DrawColor(color)
	r := Rect(x1, y1, x2, y2)

	g.hline(r.X1, r.X2, r.Y1, c)
	if r.Y2 != r.Y1 {
		g.hline(r.X1, r.X2, r.Y2, c)
	}
	if r.Y2-r.Y1 > 1 {
		g.vline(r.X1, r.Y1+1, r.Y2-1, c)
		if r.X2 != r.X1 {
			g.vline(r.X2, r.Y1+1, r.Y2-1, c)
		}
	}
}

// hline and vline take ordered, inclusive ends and only visit the part
// of the span inside the clip area.
func (g *Graphics) hline(left, right, y, c int) {
	clip := g.clipArea
	if y < clip.Y1 || y > clip.Y2 {
		return
	}
	for x := maxInt(left, clip.X1); x <= minInt(right, clip.X2); x++ {
		g.setPixel(x, y, c)
	}
}

func (g *Graphics) vline(x, top, bottom, c int) {
	clip := g.clipArea
	if x < clip.X1 || x > clip.X2 {
		return
	}
	for y := maxInt(top, clip.Y1); y <= minInt(bottom, clip.Y2); y++ {
		g.setPixel(x, y, c)
	}
}

func sign(v int) int {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	}
	return 0
}
