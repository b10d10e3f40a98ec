package sheet

// This file contains frame discovery: mapping an animation directory and a
// direction to the ordered list of frame files underneath it.

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/golang/glog"
	"github.com/pkg/errors"
)

const (
	framePrefix = "frame_"
	frameSuffix = ".png"
)

// Frames returns the ordered frame file paths for one direction of an
// animation directory.
//
// Only regular entries named frame_*.png are considered. A missing direction
// directory is not an error: it yields an empty sequence, matching the
// "fewer frames in this row" layout rule.
func Frames(animationPath string, dir Direction) ([]string, error) {
	dirPath := filepath.Join(animationPath, string(dir))

	entries, err := os.ReadDir(dirPath)
	if err != nil {
		if os.IsNotExist(err) {
			glog.Warningf("direction directory not found: %s", dirPath)
			return nil, nil
		}
		return nil, errors.Wrapf(err, "reading direction directory %s", dirPath)
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		if strings.HasPrefix(name, framePrefix) && strings.HasSuffix(name, frameSuffix) {
			names = append(names, name)
		}
	}

	sort.Slice(names, func(i, j int) bool {
		return frameLess(names[i], names[j])
	})

	paths := make([]string, len(names))
	for i, name := range names {
		paths[i] = filepath.Join(dirPath, name)
	}
	return paths, nil
}

// frameLess orders frame filenames with digit runs compared by numeric value,
// so frame_2.png sorts before frame_10.png even without zero padding. For
// zero-padded names this coincides with plain lexicographic order.
func frameLess(a, b string) bool {
	for a != "" && b != "" {
		aDigits := digitRun(a)
		bDigits := digitRun(b)
		if aDigits > 0 && bDigits > 0 {
			an := strings.TrimLeft(a[:aDigits], "0")
			bn := strings.TrimLeft(b[:bDigits], "0")
			if len(an) != len(bn) {
				return len(an) < len(bn)
			}
			if an != bn {
				return an < bn
			}
			a = a[aDigits:]
			b = b[bDigits:]
			continue
		}
		if a[0] != b[0] {
			return a[0] < b[0]
		}
		a = a[1:]
		b = b[1:]
	}
	return len(a) < len(b)
}

func digitRun(s string) int {
	n := 0
	for n < len(s) && s[n] >= '0' && s[n] <= '9' {
		n++
	}
	return n
}
