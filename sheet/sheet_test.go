package sheet

import (
	"bytes"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
)

func writeFrame(t *testing.T, dir, name string, w, h int, c color.RGBA) {
	t.Helper()
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("mkdir %s: %v", dir, err)
	}
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), &image.Uniform{c}, image.Point{}, draw.Src)

	f, err := os.Create(filepath.Join(dir, name))
	if err != nil {
		t.Fatalf("create %s: %v", name, err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatalf("encode %s: %v", name, err)
	}
}

var (
	white       = color.RGBA{255, 255, 255, 255}
	red         = color.RGBA{255, 0, 0, 255}
	transparent = color.RGBA{}
)

func checkPixel(t *testing.T, img *image.RGBA, x, y int, want color.RGBA) {
	t.Helper()
	if got := img.RGBAAt(x, y); got != want {
		t.Errorf("pixel (%d,%d) = %v; want %v", x, y, got, want)
	}
}

// Mirrors the documented example: two south frames, every other direction
// empty, must yield a 208x832 sheet with only row 0 columns 0-1 painted.
func TestAssembleWalkExample(t *testing.T) {
	anim := t.TempDir()
	south := filepath.Join(anim, "south")
	writeFrame(t, south, "frame_00.png", 104, 104, white)
	writeFrame(t, south, "frame_01.png", 104, 104, white)

	img, err := Assemble(anim, nil)
	if err != nil {
		t.Fatalf("Assemble: %v", err)
	}

	if img.Bounds().Dx() != 208 || img.Bounds().Dy() != 832 {
		t.Fatalf("sheet is %dx%d; want 208x832", img.Bounds().Dx(), img.Bounds().Dy())
	}

	checkPixel(t, img, 0, 0, white)
	checkPixel(t, img, 103, 103, white)
	checkPixel(t, img, 104, 0, white)  // column 1
	checkPixel(t, img, 207, 50, white) // column 1
	for row := 1; row < len(Directions); row++ {
		checkPixel(t, img, 0, row*104, transparent)
		checkPixel(t, img, 207, row*104+103, transparent)
	}
}

func TestAssembleRaggedDirections(t *testing.T) {
	anim := t.TempDir()
	writeFrame(t, filepath.Join(anim, "south"), "frame_00.png", 104, 104, white)
	writeFrame(t, filepath.Join(anim, "south"), "frame_01.png", 104, 104, white)
	writeFrame(t, filepath.Join(anim, "east"), "frame_00.png", 104, 104, red)

	img, err := Assemble(anim, nil)
	if err != nil {
		t.Fatalf("Assemble: %v", err)
	}

	if img.Bounds().Dx() != 208 {
		t.Fatalf("sheet is %d wide; want 208 (widest direction wins)", img.Bounds().Dx())
	}

	eastRow := East.Row()
	checkPixel(t, img, 0, eastRow*104, red)             // east column 0
	checkPixel(t, img, 104, eastRow*104, transparent)   // east has no column 1
	checkPixel(t, img, 207, eastRow*104+103, transparent)
}

func TestAssembleNoFrames(t *testing.T) {
	_, err := Assemble(t.TempDir(), nil)
	if errors.Cause(err) != ErrNoFrames {
		t.Fatalf("Assemble on an empty animation = %v; want ErrNoFrames", err)
	}
}

func TestAssembleSkipsUndecodableFrame(t *testing.T) {
	anim := t.TempDir()
	south := filepath.Join(anim, "south")
	writeFrame(t, south, "frame_00.png", 104, 104, white)
	if err := os.WriteFile(filepath.Join(south, "frame_01.png"), []byte("not a png"), 0644); err != nil {
		t.Fatal(err)
	}

	img, err := Assemble(anim, nil)
	if err != nil {
		t.Fatalf("Assemble: %v", err)
	}

	// The broken frame still counts for layout, its cell just stays blank.
	if img.Bounds().Dx() != 208 {
		t.Fatalf("sheet is %d wide; want 208", img.Bounds().Dx())
	}
	checkPixel(t, img, 0, 0, white)
	checkPixel(t, img, 104, 0, transparent)
}

func TestAssembleClipsOversizedFrame(t *testing.T) {
	anim := t.TempDir()
	writeFrame(t, filepath.Join(anim, "south"), "frame_00.png", 200, 200, red)

	img, err := Assemble(anim, nil)
	if err != nil {
		t.Fatalf("Assemble: %v", err)
	}

	if img.Bounds().Dx() != 104 {
		t.Fatalf("sheet is %d wide; want 104", img.Bounds().Dx())
	}
	checkPixel(t, img, 103, 103, red)
	// Must not bleed into the south-east row below.
	checkPixel(t, img, 0, 104, transparent)
}

func TestAssembleCellSizeOverride(t *testing.T) {
	anim := t.TempDir()
	writeFrame(t, filepath.Join(anim, "south"), "frame_00.png", 32, 32, white)

	img, err := Assemble(anim, &Options{FrameWidth: 32, FrameHeight: 32})
	if err != nil {
		t.Fatalf("Assemble: %v", err)
	}
	if img.Bounds().Dx() != 32 || img.Bounds().Dy() != 8*32 {
		t.Fatalf("sheet is %dx%d; want 32x256", img.Bounds().Dx(), img.Bounds().Dy())
	}
}

func TestCreateWritesThroughMissingParents(t *testing.T) {
	anim := t.TempDir()
	writeFrame(t, filepath.Join(anim, "south"), "frame_00.png", 104, 104, white)

	out := filepath.Join(t.TempDir(), "nested", "dir", "walk.png")
	if err := Create(anim, out, nil); err != nil {
		t.Fatalf("Create: %v", err)
	}

	f, err := os.Open(out)
	if err != nil {
		t.Fatalf("output missing: %v", err)
	}
	defer f.Close()
	cfg, err := png.DecodeConfig(f)
	if err != nil {
		t.Fatalf("output not a PNG: %v", err)
	}
	if cfg.Width != 104 || cfg.Height != 832 {
		t.Errorf("output is %dx%d; want 104x832", cfg.Width, cfg.Height)
	}
}

func TestCreateIdempotent(t *testing.T) {
	anim := t.TempDir()
	writeFrame(t, filepath.Join(anim, "south"), "frame_00.png", 104, 104, white)
	writeFrame(t, filepath.Join(anim, "south"), "frame_01.png", 104, 104, red)

	outDir := t.TempDir()
	first := filepath.Join(outDir, "first.png")
	second := filepath.Join(outDir, "second.png")
	if err := Create(anim, first, nil); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := Create(anim, second, nil); err != nil {
		t.Fatalf("Create: %v", err)
	}

	a, err := os.ReadFile(first)
	if err != nil {
		t.Fatal(err)
	}
	b, err := os.ReadFile(second)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(a, b) {
		t.Errorf("two runs over unchanged inputs produced different bytes")
	}
}

func TestCreateNoFramesWritesNothing(t *testing.T) {
	out := filepath.Join(t.TempDir(), "idle.png")
	if err := Create(t.TempDir(), out, nil); errors.Cause(err) != ErrNoFrames {
		t.Fatalf("Create = %v; want ErrNoFrames", err)
	}
	if _, err := os.Stat(out); !os.IsNotExist(err) {
		t.Errorf("output was written despite the animation having no frames")
	}
}
