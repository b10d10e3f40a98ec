package sheet

import (
	"image"
	"image/color"
	"image/draw"
	"image/gif"
	"io"
	"os"
	"path/filepath"

	"github.com/ericpauley/go-quantize/quantize"
	"github.com/golang/glog"
	"github.com/pkg/errors"
)

// DefaultPreviewFPS is the playback rate used for GIF previews when the
// manifest doesn't specify one.
const DefaultPreviewFPS = 10

// EncodePreview writes an animated GIF of one direction's frame sequence to
// w. Frames that fail to decode are skipped, same as in Assemble. Returns
// ErrNoFrames when the direction has no decodable frames.
func EncodePreview(w io.Writer, animationPath string, dir Direction, fps int) error {
	if fps <= 0 {
		fps = DefaultPreviewFPS
	}

	seq, err := Frames(animationPath, dir)
	if err != nil {
		return err
	}

	q := quantize.MedianCutQuantizer{AddTransparent: true}
	anim := &gif.GIF{}
	for _, framePath := range seq {
		img, err := decodeFrame(framePath)
		if err != nil {
			glog.Errorf("  error loading %s: %v", framePath, err)
			continue
		}

		paletted := image.NewPaletted(img.Bounds(), q.Quantize(make(color.Palette, 0, 256), img))
		draw.Draw(paletted, paletted.Bounds(), img, img.Bounds().Min, draw.Src)

		anim.Image = append(anim.Image, paletted)
		anim.Delay = append(anim.Delay, 100/fps)
		anim.Disposal = append(anim.Disposal, gif.DisposalBackground)
	}

	if len(anim.Image) == 0 {
		return errors.Wrapf(ErrNoFrames, "%s/%s", animationPath, dir)
	}

	return gif.EncodeAll(w, anim)
}

// CreatePreview writes the animated GIF preview for one direction of an
// animation to outPath, creating missing parent directories first.
func CreatePreview(animationPath, outPath string, dir Direction, fps int) error {
	if err := os.MkdirAll(filepath.Dir(outPath), 0755); err != nil {
		return errors.Wrapf(err, "creating output directory for %s", outPath)
	}

	f, err := os.Create(outPath)
	if err != nil {
		return errors.Wrapf(err, "creating %s", outPath)
	}
	if err := EncodePreview(f, animationPath, dir, fps); err != nil {
		f.Close()
		os.Remove(outPath)
		return err
	}
	if err := f.Close(); err != nil {
		return errors.Wrapf(err, "writing %s", outPath)
	}

	glog.Infof("  saved: %s", outPath)
	return nil
}
