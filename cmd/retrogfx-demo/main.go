package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"log"
	"os"

	"github.com/32bitkid/retrogfx"
	"github.com/32bitkid/retrogfx/resource"
	"github.com/32bitkid/retrogfx/screen"
)

const (
	screenWidth  = 160
	screenHeight = 120
)

func main() {
	out := flag.String("out", "retrogfx.png", "Output PNG file")
	scale := flag.Int("scale", 4, "Integer upscale factor")
	crt := flag.Bool("crt", false, "Apply the CRT filter instead of a plain upscale")
	paletteName := flag.String("palette", "pyxel", "Display palette: pyxel, ega, db32 or depth")
	sprite := flag.String("sprite", "", "PNG loaded into image bank 0 and drawn in the corner")
	strict := flag.Bool("strict", false, "Fail if the scene produces any diagnostics")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: retrogfx-demo [options]\n\nDraws a test scene with every primitive and writes it as a PNG.\n\nOptions:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	pal, ok := screen.PaletteByName(*paletteName)
	if !ok {
		fmt.Fprintf(os.Stderr, "error: unknown palette %q\n", *paletteName)
		os.Exit(1)
	}

	g, err := retrogfx.New(screenWidth, screenHeight)
	if err != nil {
		log.Fatal(err)
	}

	if *sprite != "" {
		if err := loadSprite(g.ImageBank(0), *sprite, pal); err != nil {
			fmt.Fprintf(os.Stderr, "error loading %s: %v\n", *sprite, err)
			os.Exit(1)
		}
	}

	if *strict {
		err = g.Check(func() { drawScene(g) })
	} else {
		drawScene(g)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	var frame image.Image = screen.Render(g, pal)
	if *crt {
		frame = screen.RenderToCRT(frame, *scale)
	} else if *scale > 1 {
		frame = screen.Scale(frame, *scale)
	}

	if err := writePNG(*out, frame); err != nil {
		fmt.Fprintf(os.Stderr, "error writing %s: %v\n", *out, err)
		os.Exit(1)
	}
}

func loadSprite(img *resource.Image, path string, pal color.Palette) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	src, err := resource.DecodeImage(f, pal)
	if err != nil {
		return err
	}
	for y := 0; y < src.Height(); y++ {
		for x := 0; x < src.Width(); x++ {
			c, _ := src.Get(x, y)
			img.Set(x, y, c)
		}
	}
	return nil
}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// checker fills tile (tx, ty) of img with a two-color checkerboard.
func checker(img *resource.Image, tx, ty, a, b int) {
	for y := 0; y < retrogfx.TileHeight; y++ {
		for x := 0; x < retrogfx.TileWidth; x++ {
			c := a
			if (x/2+y/2)%2 == 1 {
				c = b
			}
			img.Set(tx*retrogfx.TileWidth+x, ty*retrogfx.TileHeight+y, c)
		}
	}
}

func drawScene(g *retrogfx.Graphics) {
	g.ClearScreen(1)

	// ground tiles
	tiles := g.ImageBank(2)
	checker(tiles, 0, 0, 3, 11)
	checker(tiles, 1, 0, 4, 9)
	tm := g.TilemapBank(0)
	tm.ImageIndex = 2
	for y := 0; y < 3; y++ {
		for x := 0; x < screenWidth/retrogfx.TileWidth; x++ {
			tm.Set(x, y, resource.Tile{X: uint8((x + y) % 2)})
		}
	}
	g.DrawTilemap(0, screenHeight-3*retrogfx.TileHeight, 0, 0, 0, screenWidth/retrogfx.TileWidth, 3, retrogfx.NoColorKey)

	// primitives
	g.DrawRectangle(8, 8, 40, 30, 8)
	g.DrawRectangleBorder(6, 6, 42, 32, 7)
	g.DrawCircle(70, 20, 12, 12)
	g.DrawCircleBorder(70, 20, 14, 7)
	for i := 0; i < 8; i++ {
		g.DrawLine(100, 8, 100+i*7, 40, 9+i%6)
	}
	for x := 0; x < 16; x++ {
		g.DrawPoint(120+x*2, 50, x)
	}

	// clipped shapes only show inside the frame
	g.DrawRectangleBorder(10, 44, 60, 74, 6)
	g.SetClipArea(11, 45, 59, 73)
	g.DrawCircle(35, 74, 24, 2)
	g.DrawLine(0, 44, 80, 90, 10)
	g.ResetClipArea()

	// palette swaps remap drawing colors
	img := g.ImageBank(1)
	if err := img.SetData(0, 0, []string{
		"00888800",
		"08888880",
		"88788788",
		"88888888",
		"88888888",
		"88788788",
		"08877880",
		"00888800",
	}); err != nil {
		log.Fatal(err)
	}
	g.DrawImage(90, 55, 1, 0, 0, 8, 8, 0)
	g.SetPalette(8, 14)
	g.DrawImage(102, 55, 1, 0, 0, -8, 8, 0)
	g.SetPalette(8, 11)
	g.DrawImage(114, 55, 1, 0, 0, 8, -8, 0)
	g.ResetPalette()

	g.DrawImage(screenWidth-32, 8, 0, 0, 0, 24, 24, retrogfx.NoColorKey)

	g.DrawText(8, 80, "RETROGFX\nHello, world! 0123456789", 7)
	g.DrawMouseCursor(screenWidth/2, screenHeight/2)
}
