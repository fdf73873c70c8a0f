package resource

import (
	"fmt"
	"image"
	"strconv"
)

// Image is a rectangular buffer of logical color indices. Pixels are
// stored row-major; coordinates outside the buffer are never written and
// read back as absent.
type Image struct {
	width  int
	height int
	data   []int
}

func NewImage(width, height int) *Image {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &Image{
		width:  width,
		height: height,
		data:   make([]int, width*height),
	}
}

func (img *Image) Width() int  { return img.width }
func (img *Image) Height() int { return img.height }

// Bounds returns the half-open pixel extent of the image.
func (img *Image) Bounds() image.Rectangle {
	return image.Rect(0, 0, img.width, img.height)
}

// Data exposes the backing row-major buffer.
func (img *Image) Data() []int { return img.data }

func (img *Image) In(x, y int) bool {
	return x >= 0 && y >= 0 && x < img.width && y < img.height
}

// Get returns the color index at (x, y) and whether the coordinate was
// inside the image.
func (img *Image) Get(x, y int) (int, bool) {
	if !img.In(x, y) {
		return 0, false
	}
	return img.data[y*img.width+x], true
}

func (img *Image) Set(x, y, c int) {
	if img.In(x, y) {
		img.data[y*img.width+x] = c
	}
}

func (img *Image) Clear(c int) {
	for i, max := 0, len(img.data); i < max; i++ {
		img.data[i] = c
	}
}

// SetData writes rows of hexadecimal digits, one digit per pixel, with
// the first digit of the first row landing at (x, y). Digits that fall
// outside the image are dropped.
func (img *Image) SetData(x, y int, rows []string) error {
	for dy, row := range rows {
		for dx, r := range row {
			c, err := strconv.ParseUint(string(r), 16, 8)
			if err != nil {
				return fmt.Errorf("row %d column %d: invalid color digit %q", dy, dx, r)
			}
			img.Set(x+dx, y+dy, int(c))
		}
	}
	return nil
}
