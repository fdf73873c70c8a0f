package resource

import (
	"fmt"
	"strconv"
	"strings"
)

// Tile addresses a block of an image in tile units: the block starts at
// pixel (X*tileWidth, Y*tileHeight) of the bound image.
type Tile struct {
	X uint8
	Y uint8
}

func (t Tile) String() string {
	return fmt.Sprintf("Tile(%d,%d)", t.X, t.Y)
}

// Tilemap is a grid of tile references into the image bank slot named by
// ImageIndex.
type Tilemap struct {
	ImageIndex int

	width  int
	height int
	cells  []Tile
}

func NewTilemap(width, height, imageIndex int) *Tilemap {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &Tilemap{
		ImageIndex: imageIndex,
		width:      width,
		height:     height,
		cells:      make([]Tile, width*height),
	}
}

func (tm *Tilemap) Width() int  { return tm.width }
func (tm *Tilemap) Height() int { return tm.height }

func (tm *Tilemap) In(x, y int) bool {
	return x >= 0 && y >= 0 && x < tm.width && y < tm.height
}

func (tm *Tilemap) Get(x, y int) (Tile, bool) {
	if !tm.In(x, y) {
		return Tile{}, false
	}
	return tm.cells[y*tm.width+x], true
}

func (tm *Tilemap) Set(x, y int, t Tile) {
	if tm.In(x, y) {
		tm.cells[y*tm.width+x] = t
	}
}

func (tm *Tilemap) Clear(t Tile) {
	for i := range tm.cells {
		tm.cells[i] = t
	}
}

// SetData writes rows of whitespace separated cells starting at (x, y).
// Each cell is four hexadecimal digits, XXYY.
func (tm *Tilemap) SetData(x, y int, rows []string) error {
	for dy, row := range rows {
		for dx, cell := range strings.Fields(row) {
			if len(cell) != 4 {
				return fmt.Errorf("row %d cell %d: expected 4 digits, got %q", dy, dx, cell)
			}
			v, err := strconv.ParseUint(cell, 16, 16)
			if err != nil {
				return fmt.Errorf("row %d cell %d: %v", dy, dx, err)
			}
			tm.Set(x+dx, y+dy, Tile{X: uint8(v >> 8), Y: uint8(v)})
		}
	}
	return nil
}
