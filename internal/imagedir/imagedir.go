// Package imagedir scans annotation source directories for image files
// and probes image dimensions.
package imagedir

import (
	"fmt"
	"image"
	"os"
	"path/filepath"
	"sort"
	"strings"

	// Decoders registered for Dimensions: stdlib formats plus the bmp and
	// webp codecs the supported extension list requires.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "github.com/chai2010/webp"
	_ "golang.org/x/image/bmp"
)

// imageExts lists the extensions the scanner accepts.
var imageExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".bmp":  true,
	".gif":  true,
	".webp": true,
}

// IsImageFile reports whether the filename has a recognized image
// extension.
func IsImageFile(name string) bool {
	return imageExts[strings.ToLower(filepath.Ext(name))]
}

// List returns the image filenames (base names, not paths) in dir, in
// natural sort order so that img2.jpg precedes img10.jpg.
func List(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading directory %s: %w", dir, err)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if IsImageFile(entry.Name()) {
			names = append(names, entry.Name())
		}
	}

	sort.Slice(names, func(i, j int) bool {
		return naturalLess(names[i], names[j])
	})
	return names, nil
}

// Dimensions returns the pixel width and height of the image at path
// without decoding the full image.
func Dimensions(path string) (int, int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, 0, fmt.Errorf("opening image %s: %w", path, err)
	}
	defer f.Close()

	cfg, _, err := image.DecodeConfig(f)
	if err != nil {
		return 0, 0, fmt.Errorf("decoding image header %s: %w", path, err)
	}
	return cfg.Width, cfg.Height, nil
}

// naturalLess compares two filenames treating digit runs as numbers.
func naturalLess(a, b string) bool {
	for len(a) > 0 && len(b) > 0 {
		aNum, aRest, aIsNum := chunk(a)
		bNum, bRest, bIsNum := chunk(b)

		if aIsNum && bIsNum {
			an := trimLeadingZeros(aNum)
			bn := trimLeadingZeros(bNum)
			if len(an) != len(bn) {
				return len(an) < len(bn)
			}
			if an != bn {
				return an < bn
			}
			// Equal values with different zero padding: shorter raw
			// string sorts by its literal form for a total order.
			if aNum != bNum {
				return aNum < bNum
			}
		} else {
			ac := strings.ToLower(aNum)
			bc := strings.ToLower(bNum)
			if ac != bc {
				return ac < bc
			}
		}
		a, b = aRest, bRest
	}
	return len(a) < len(b)
}

// chunk splits off the leading run of digits or non-digits.
func chunk(s string) (head, rest string, isNum bool) {
	isNum = s[0] >= '0' && s[0] <= '9'
	for i := 0; i < len(s); i++ {
		digit := s[i] >= '0' && s[i] <= '9'
		if digit != isNum {
			return s[:i], s[i:], isNum
		}
	}
	return s, "", isNum
}

func trimLeadingZeros(s string) string {
	trimmed := strings.TrimLeft(s, "0")
	if trimmed == "" {
		return "0"
	}
	return trimmed
}
