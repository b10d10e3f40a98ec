package sheet

// This file contains the actual compositing: laying discovered frames out
// onto a row-per-direction, column-per-frame canvas and writing it out.

import (
	"image"
	"image/draw"
	"image/png"
	"os"
	"path/filepath"

	_ "image/gif"  // frame files are named *.png, but decode is format-sniffed
	_ "image/jpeg" // like the rest of the image registry

	"github.com/golang/glog"
	"github.com/pkg/errors"
)

// Default cell dimensions. Every frame is authored at this size; the playback
// side slices sheets on the same constants.
const (
	FrameWidth  = 104
	FrameHeight = 104
)

// ErrNoFrames is returned by Assemble when none of the eight direction
// directories contain any frames.
var ErrNoFrames = errors.New("no frames found")

// Options overrides the cell dimensions of a sheet. The zero value (or nil)
// means the 104x104 defaults.
type Options struct {
	FrameWidth  int
	FrameHeight int
}

func (o *Options) cellSize() (int, int) {
	w, h := FrameWidth, FrameHeight
	if o != nil {
		if o.FrameWidth > 0 {
			w = o.FrameWidth
		}
		if o.FrameHeight > 0 {
			h = o.FrameHeight
		}
	}
	return w, h
}

// Assemble composes all frames under animationPath into one spritesheet.
//
// The canvas is (max frame count x cell width) wide and (8 x cell height)
// tall, fully transparent to begin with. Frame i of direction d lands at cell
// (column i, row d). Directions with fewer frames than the widest one leave
// their trailing cells transparent. A frame that fails to decode is logged
// and leaves its cell transparent; it does not fail the sheet.
//
// Returns ErrNoFrames if no direction has any frames at all.
func Assemble(animationPath string, opt *Options) (*image.RGBA, error) {
	cellW, cellH := opt.cellSize()

	var frames [len(Directions)][]string
	maxFrames := 0
	for i, dir := range Directions {
		seq, err := Frames(animationPath, dir)
		if err != nil {
			return nil, err
		}
		frames[i] = seq
		if len(seq) > maxFrames {
			maxFrames = len(seq)
		}
		glog.Infof("  %s: %d frames", dir, len(seq))
	}

	if maxFrames == 0 {
		return nil, errors.Wrap(ErrNoFrames, animationPath)
	}

	canvas := image.NewRGBA(image.Rect(0, 0, maxFrames*cellW, len(Directions)*cellH))
	glog.Infof("  compositing %dx%d sheet (%d frames x %d directions)",
		canvas.Bounds().Dx(), canvas.Bounds().Dy(), maxFrames, len(Directions))

	for row, seq := range frames {
		for col, framePath := range seq {
			img, err := decodeFrame(framePath)
			if err != nil {
				glog.Errorf("  error loading %s: %v", framePath, err)
				continue
			}
			if img.Bounds().Dx() != cellW || img.Bounds().Dy() != cellH {
				glog.Warningf("  frame %s is %dx%d, want %dx%d; clipping to cell",
					framePath, img.Bounds().Dx(), img.Bounds().Dy(), cellW, cellH)
			}
			cell := image.Rect(col*cellW, row*cellH, (col+1)*cellW, (row+1)*cellH)
			draw.Draw(canvas, cell, img, img.Bounds().Min, draw.Src)
		}
	}

	return canvas, nil
}

func decodeFrame(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	return img, err
}

// Create assembles the animation under animationPath and writes the sheet as
// a PNG to outPath, creating missing parent directories first.
func Create(animationPath, outPath string, opt *Options) error {
	img, err := Assemble(animationPath, opt)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(outPath), 0755); err != nil {
		return errors.Wrapf(err, "creating output directory for %s", outPath)
	}

	f, err := os.Create(outPath)
	if err != nil {
		return errors.Wrapf(err, "creating %s", outPath)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return errors.Wrapf(err, "encoding %s", outPath)
	}
	if err := f.Close(); err != nil {
		return errors.Wrapf(err, "writing %s", outPath)
	}

	glog.Infof("  saved: %s", outPath)
	return nil
}
