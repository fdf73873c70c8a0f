// Package retrogfx implements the software rasterizer of a small
// retro-style graphics system.
//
// A Graphics value owns an indexed-color framebuffer, a palette table
// that maps the logical colors passed to drawing calls onto the physical
// values stored in the framebuffer, and a clip rectangle that every pixel
// write is checked against. Images and tilemaps live in fixed banks
// addressed by small integer handles; one image slot is reserved for the
// built-in mouse cursor and font.
//
// Drawing calls never fail. Bad handles and colors are reported to the
// configured Reporter and the call carries on with a safe substitute, so
// one bad call cannot stop the rest of a frame.
package retrogfx

import (
	"fmt"

	"github.com/32bitkid/retrogfx/resource"
)

const (
	ColorCount         = 16
	ImageBankCount     = 4
	ImageBankForSystem = ImageBankCount - 1
	TilemapBankCount   = 8

	ImageBankWidth    = 256
	ImageBankHeight   = 256
	TilemapBankWidth  = 256
	TilemapBankHeight = 256

	TileWidth  = 8
	TileHeight = 8

	FontWidth    = 4
	FontHeight   = 6
	MinFontCode  = 32
	MaxFontCode  = 127
	FontImageX   = 12
	FontImageY   = 0
	FontRowCount = 48
	FontColor    = 7

	MouseCursorImageX = 0
	MouseCursorImageY = 0
	MouseCursorColor  = 7
	MouseCursorEdge   = 1

	// NoColorKey disables color-key transparency in blits.
	NoColorKey = -1
)

type Graphics struct {
	width      int
	height     int
	screenData []int

	imageBank   [ImageBankCount]*resource.Image
	tilemapBank [TilemapBankCount]*resource.Tilemap

	clipArea Rectangle
	palette  [ColorCount]int

	report Reporter
}

type Option func(*Graphics)

// WithReporter routes diagnostics to r instead of the standard logger.
func WithReporter(r Reporter) Option {
	return func(g *Graphics) {
		g.report = r
	}
}

// New allocates a width x height framebuffer and every bank slot, and
// draws the built-in cursor and font into the system image.
func New(width, height int, options ...Option) (*Graphics, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid screen size %dx%d", width, height)
	}

	g := &Graphics{
		width:      width,
		height:     height,
		screenData: make([]int, width*height),
		report:     defaultReporter,
	}
	for _, opt := range options {
		opt(g)
	}
	if g.report == nil {
		g.report = DiscardReporter
	}

	for i := range g.imageBank {
		g.imageBank[i] = resource.NewImage(ImageBankWidth, ImageBankHeight)
	}
	for i := range g.tilemapBank {
		g.tilemapBank[i] = resource.NewTilemap(TilemapBankWidth, TilemapBankHeight, 0)
	}

	g.ResetClipArea()
	g.ResetPalette()

	if err := g.setupMouseCursor(); err != nil {
		return nil, fmt.Errorf("mouse cursor: %v", err)
	}
	if err := g.setupFont(); err != nil {
		return nil, fmt.Errorf("font: %v", err)
	}

	return g, nil
}

func (g *Graphics) Width() int  { return g.width }
func (g *Graphics) Height() int { return g.height }

// ScreenData is the row-major framebuffer, index y*Width()+x. It is owned
// by g and must be treated as read-only.
func (g *Graphics) ScreenData() []int { return g.screenData }

func (g *Graphics) PaletteTable() [ColorCount]int { return g.palette }

func (g *Graphics) ClipArea() Rectangle { return g.clipArea }

// ImageBank returns the image in slot index. An out of range index is
// reported and slot 0 is returned instead. Asking for the system slot is
// reported as well, but the system image is still returned.
func (g *Graphics) ImageBank(index int) *resource.Image {
	return g.imageBank[g.imageIndex(index, false)]
}

func (g *Graphics) systemImage() *resource.Image {
	return g.imageBank[g.imageIndex(ImageBankForSystem, true)]
}

func (g *Graphics) imageIndex(index int, system bool) int {
	if index < 0 || index >= ImageBankCount {
		g.reportf("image bank", index, ErrInvalidIndex)
		index = 0
	}
	if index == ImageBankForSystem && !system {
		g.reportf("image bank", index, ErrSystemBank)
	}
	return index
}

// TilemapBank returns the tilemap in slot index, falling back to slot 0
// (with a report) when index is out of range.
func (g *Graphics) TilemapBank(index int) *resource.Tilemap {
	if index < 0 || index >= TilemapBankCount {
		g.reportf("tilemap bank", index, ErrInvalidIndex)
		index = 0
	}
	return g.tilemapBank[index]
}

func (g *Graphics) ResetClipArea() {
	g.clipArea = Rectangle{X1: 0, Y1: 0, X2: g.width - 1, Y2: g.height - 1}
}

// SetClipArea restricts drawing to the inclusive rectangle spanned by the
// two corners, clamped to the screen.
func (g *Graphics) SetClipArea(x1, y1, x2, y2 int) {
	r := Rect(x1, y1, x2, y2)
	g.clipArea = Rectangle{
		X1: clampInt(0, g.width-1, r.X1),
		Y1: clampInt(0, g.height-1, r.Y1),
		X2: clampInt(0, g.width-1, r.X2),
		Y2: clampInt(0, g.height-1, r.Y2),
	}
}

func (g *Graphics) ResetPalette() {
	for i := range g.palette {
		g.palette[i] = i
	}
}

// SetPalette maps logical color src to the physical value dst. dst is
// stored as given.
func (g *Graphics) SetPalette(src, dst int) {
	if src < 0 || src >= ColorCount {
		g.reportf("set palette", src, ErrInvalidColor)
		return
	}
	g.palette[src] = dst
}

// DrawColor resolves a logical color through the palette table. Invalid
// colors are reported and resolve to 0.
func (g *Graphics) DrawColor(color int) int {
	if color < 0 || color >= ColorCount {
		g.reportf("draw color", color, ErrInvalidColor)
		return 0
	}
	return g.palette[color]
}

// setPixel is the only framebuffer write that honours the clip area.
func (g *Graphics) setPixel(x, y, drawColor int) {
	if g.clipArea.Includes(x, y) {
		g.screenData[g.width*y+x] = drawColor
	}
}
