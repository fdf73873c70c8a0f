package retrogfx

import "fmt"

// Rectangle is an inclusive, axis-aligned pixel rectangle. It is empty
// when X1 > X2 or Y1 > Y2.
type Rectangle struct {
	X1, Y1, X2, Y2 int
}

// Rect returns the rectangle spanned by two corners in any order.
func Rect(x1, y1, x2, y2 int) Rectangle {
	swapIf(&x1, &x2, x1 > x2)
	swapIf(&y1, &y2, y1 > y2)
	return Rectangle{X1: x1, Y1: y1, X2: x2, Y2: y2}
}

// RectFromSize returns the w x h rectangle whose top-left pixel is (x, y).
func RectFromSize(x, y, w, h int) Rectangle {
	return Rectangle{X1: x, Y1: y, X2: x + w - 1, Y2: y + h - 1}
}

func (r Rectangle) Empty() bool {
	return r.X1 > r.X2 || r.Y1 > r.Y2
}

func (r Rectangle) Width() int {
	if r.Empty() {
		return 0
	}
	return r.X2 - r.X1 + 1
}

func (r Rectangle) Height() int {
	if r.Empty() {
		return 0
	}
	return r.Y2 - r.Y1 + 1
}

func (r Rectangle) Includes(x, y int) bool {
	return x >= r.X1 && x <= r.X2 && y >= r.Y1 && y <= r.Y2
}

func (r Rectangle) Intersect(o Rectangle) Rectangle {
	return Rectangle{
		X1: maxInt(r.X1, o.X1),
		Y1: maxInt(r.Y1, o.Y1),
		X2: minInt(r.X2, o.X2),
		Y2: minInt(r.Y2, o.Y2),
	}
}

func (r Rectangle) String() string {
	return fmt.Sprintf("(%d,%d)-(%d,%d)", r.X1, r.Y1, r.X2, r.Y2)
}

func clampInt(min, max, i int) int {
	switch {
	case i < min:
		return min
	case i > max:
		return max
	default:
		return i
	}
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func swapIf(a, b *int, cond bool) {
	if cond {
		*a, *b = *b, *a
	}
}
