package sheet

import (
	"bytes"
	"image/gif"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
)

func TestEncodePreview(t *testing.T) {
	anim := t.TempDir()
	south := filepath.Join(anim, "south")
	writeFrame(t, south, "frame_00.png", 104, 104, white)
	writeFrame(t, south, "frame_01.png", 104, 104, red)

	buf := &bytes.Buffer{}
	if err := EncodePreview(buf, anim, South, 0); err != nil {
		t.Fatalf("EncodePreview: %v", err)
	}

	anim2, err := gif.DecodeAll(buf)
	if err != nil {
		t.Fatalf("decoding preview: %v", err)
	}
	if len(anim2.Image) != 2 {
		t.Fatalf("preview has %d frames; want 2", len(anim2.Image))
	}
	for i, img := range anim2.Image {
		if img.Bounds().Dx() != 104 || img.Bounds().Dy() != 104 {
			t.Errorf("frame %d is %dx%d; want 104x104", i, img.Bounds().Dx(), img.Bounds().Dy())
		}
	}
	for i, d := range anim2.Delay {
		if d != 100/DefaultPreviewFPS {
			t.Errorf("frame %d delay = %d; want %d", i, d, 100/DefaultPreviewFPS)
		}
	}
}

func TestEncodePreviewNoFrames(t *testing.T) {
	buf := &bytes.Buffer{}
	if err := EncodePreview(buf, t.TempDir(), South, 10); errors.Cause(err) != ErrNoFrames {
		t.Fatalf("EncodePreview = %v; want ErrNoFrames", err)
	}
}
