// Command mksheets assembles per-direction animation frames into grid
// spritesheets, one PNG per animation.
//
// With no flags it looks for an "animations" directory next to the binary or
// in the working directory, and writes the sheets to a sibling "spritesheets"
// directory. Each animation succeeds or fails on its own; the exit is always
// clean and a succeeded/total summary is printed at the end.
package main

import (
	"flag"
	"fmt"
	"path/filepath"

	"badc0de.net/pkg/flagutil/v1"

	"github.com/common-nighthawk/go-figure"
	"github.com/golang/glog"

	"badc0de.net/pkg/go-spritesheet/manifest"
	"badc0de.net/pkg/go-spritesheet/paths"
	"badc0de.net/pkg/go-spritesheet/sheet"
)

var (
	outputDir   = flag.String("output_dir", "spritesheets", "directory to write the assembled sheets into")
	gifPreviews = flag.Bool("gif_previews", false, "also write an animated GIF of each animation's south row")

	animationsDir string
	manifestPath  string
)

func setupAssetPathFlags() {
	paths.SetupDirPathFlag("animations", "animations_dir", &animationsDir)
	paths.SetupFilePathFlag("animations.yaml", "manifest_path", &manifestPath)
}

func assemble(m *manifest.Manifest) (succeeded int) {
	opt := &sheet.Options{FrameWidth: m.FrameWidth, FrameHeight: m.FrameHeight}

	for _, a := range m.Animations {
		animationPath := filepath.Join(animationsDir, a.Source)
		outPath := filepath.Join(*outputDir, a.Name+".png")

		glog.Infof("creating %s.png from %s", a.Name, a.Source)
		if err := sheet.Create(animationPath, outPath, opt); err != nil {
			glog.Errorf("could not create %s: %v", outPath, err)
			continue
		}
		succeeded++

		if *gifPreviews {
			previewPath := filepath.Join(*outputDir, a.Name+"_preview.gif")
			if err := sheet.CreatePreview(animationPath, previewPath, sheet.South, a.FPS); err != nil {
				glog.Errorf("could not create %s: %v", previewPath, err)
			}
		}
	}
	return succeeded
}

func main() {
	setupAssetPathFlags()
	flagutil.Parse()
	flag.Set("logtostderr", "true")

	figure.NewFigure("mksheets", "", true).Print()

	m, err := manifest.Load(manifestPath)
	if err != nil {
		glog.Errorf("could not load manifest, using built-in animations: %v", err)
		m = manifest.Default()
	}

	if animationsDir == "" {
		glog.Warningf("no animations directory found; pass -animations_dir")
	}

	succeeded := assemble(m)
	fmt.Printf("Done! Created %d/%d sprite sheets in %s.\n", succeeded, len(m.Animations), *outputDir)
}
