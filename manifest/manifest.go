// Package manifest reads the animation manifest: the ordered mapping of
// output sheet names to source frame directories, plus optional cell size
// overrides. When no manifest file is present, the built-in default mapping
// applies.
package manifest

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Animation maps one output sheet name to the directory its frames live in.
type Animation struct {
	// Name is the output name; the sheet is written as <Name>.png.
	Name string `yaml:"name"`
	// Source is the frame directory name under the animations root.
	Source string `yaml:"source"`
	// FPS is the playback rate used for GIF previews. Optional.
	FPS int `yaml:"fps,omitempty"`
}

// Manifest is the full animation manifest. Animations are processed in the
// order they appear.
type Manifest struct {
	FrameWidth  int         `yaml:"frame_width,omitempty"`
	FrameHeight int         `yaml:"frame_height,omitempty"`
	Animations  []Animation `yaml:"animations"`
}

// Default returns the built-in mapping used when no manifest file exists.
func Default() *Manifest {
	return &Manifest{
		Animations: []Animation{
			{Name: "idle", Source: "breathing-idle"},
			{Name: "walk", Source: "walk"},
			{Name: "run", Source: "running-6-frames"},
		},
	}
}

// Read parses a manifest from r.
func Read(r io.Reader) (*Manifest, error) {
	var m Manifest
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&m); err != nil {
		return nil, errors.Wrap(err, "decoding manifest")
	}

	if len(m.Animations) == 0 {
		return nil, errors.New("manifest lists no animations")
	}
	seen := map[string]bool{}
	for i, a := range m.Animations {
		if a.Name == "" {
			return nil, errors.Errorf("animation %d has no name", i)
		}
		if a.Source == "" {
			return nil, errors.Errorf("animation %q has no source directory", a.Name)
		}
		if seen[a.Name] {
			return nil, errors.Errorf("animation %q listed twice", a.Name)
		}
		seen[a.Name] = true
	}
	if m.FrameWidth < 0 || m.FrameHeight < 0 {
		return nil, errors.New("frame dimensions must not be negative")
	}

	return &m, nil
}

// Load reads the manifest at path. An empty path returns the default
// manifest.
func Load(path string) (*Manifest, error) {
	if path == "" {
		return Default(), nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "opening manifest %s", path)
	}
	defer f.Close()

	return Read(f)
}
