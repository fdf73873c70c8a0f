package retrogfx

// DrawCircle fills the disk of the given radius centred on (x, y). A
// radius of 0 draws a single pixel; a negative radius draws nothing.
func (g *Graphics) DrawCircle(x, y, radius, color int) {
	c := g.DrawColor(color)
	midpointCircle(radius, func(dx, dy int) {
		g.hline(x-dx, x+dx, y+dy, c)
		g.hline(x-dx, x+dx, y-dy, c)
		g.hline(x-dy, x+dy, y+dx, c)
		g.hline(x-dy, x+dy, y-dx, c)
	})
}

// DrawCircleBorder draws the outline of the circle of the given radius
// centred on (x, y), with the same radius rules as DrawCircle.
func (g *Graphics) DrawCircleBorder(x, y, radius, color int) {
	c := g.DrawColor(color)
	midpointCircle(radius, func(dx, dy int) {
		g.setPixel(x+dx, y+dy, c)
		g.setPixel(x-dx, y+dy, c)
		g.setPixel(x+dx, y-dy, c)
		g.setPixel(x-dx, y-dy, c)
		g.setPixel(x+dy, y+dx, c)
		g.setPixel(x-dy, y+dx, c)
		g.setPixel(x+dy, y-dx, c)
		g.setPixel(x-dy, y-dx, c)
	})
}

// midpointCircle calls plot with every (dx, dy) of the first octant,
// dx >= dy >= 0, of a circle of the given radius.
func midpointCircle(radius int, plot func(dx, dy int)) {
	if radius < 0 {
		return
	}
	dx, dy := radius, 0
	decision := 1 - radius
	for dx >= dy {
		plot(dx, dy)
		dy++
		if decision < 0 {
			decision += 2*dy + 1
		} else {
			dx--
			decision += 2*(dy-dx) + 1
		}
	}
}
