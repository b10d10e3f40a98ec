// Command sheetprint renders a generated spritesheet, or one cell of it, on
// the terminal. UNSUPPORTED debug tool for eyeballing assembly output.
package main

import (
	"flag"
	"image"
	_ "image/gif"
	_ "image/png"
	"os"

	"badc0de.net/pkg/flagutil/v1"

	"github.com/golang/glog"

	"badc0de.net/pkg/go-spritesheet/sheet"
)

var (
	sheetPath = flag.String("sheet", "", "path of the spritesheet PNG to print")
	row       = flag.Int("row", -1, "direction row of the single cell to print (with -col)")
	col       = flag.Int("col", -1, "frame column of the single cell to print (with -row)")
	cellW     = flag.Int("cell_width", sheet.FrameWidth, "cell width used for -row/-col cropping")
	cellH     = flag.Int("cell_height", sheet.FrameHeight, "cell height used for -row/-col cropping")

	colorOut = flag.Bool("color", true, "whether to use color escape sequences at all")
	col256   = flag.Bool("col256", false, "whether to use 256 col instead of 24 bit")
	iterm    = flag.Bool("iterm", false, "whether to print with iterm escape code instead of 24 bit")
	useRas   = flag.Bool("rasterm", false, "whether to print through the rasterm library (kitty, iterm, sixel)")
	blanks   = flag.Bool("blanks", true, "whether to just use colored blanks instead of some bad ascii art")
	downsize = flag.Bool("downsize", true, "whether to thumbnail the image to terminal dimensions first")
)

func load(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	return img, err
}

type subImager interface {
	SubImage(image.Rectangle) image.Image
}

// crop cuts one (row, col) cell out of the sheet.
func crop(img image.Image, row, col int) image.Image {
	cell := image.Rect(col**cellW, row**cellH, (col+1)**cellW, (row+1)**cellH)
	cell = cell.Intersect(img.Bounds())
	if cell.Empty() {
		return img
	}
	if si, ok := img.(subImager); ok {
		return si.SubImage(cell)
	}
	return img
}

func main() {
	flagutil.Parse()
	flag.Set("logtostderr", "true")

	if *sheetPath == "" {
		glog.Exitf("pass -sheet with the path of a generated spritesheet")
	}

	img, err := load(*sheetPath)
	if err != nil {
		glog.Exitf("error loading %s: %v", *sheetPath, err)
	}

	if *row >= 0 && *col >= 0 {
		img = crop(img, *row, *col)
	}

	out(img)
}
