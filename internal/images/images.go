// Package images enumerates image files in a target directory.
package images

import (
	"fmt"
	"math/rand/v2"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// defaultExtensions are the recognized image file suffixes, matched
// case-insensitively against the file name.
var defaultExtensions = []string{
	".jpg", ".jpeg", ".png", ".gif", ".bmp",
	".webp", ".tiff", ".tif", ".svg", ".ico",
}

// Options tunes enumeration. The zero value scans for the default extension
// set with no pattern filter.
type Options struct {
	// ExtraExtensions are appended to the built-in set. Entries may be given
	// with or without the leading dot.
	ExtraExtensions []string
	// Pattern, when non-empty, is a doublestar glob matched against the base
	// name of each candidate (after the extension check).
	Pattern string
}

// List returns the image files directly inside dir, sorted lexically by
// lower-cased name. It does not recurse. A directory with no matches yields
// an empty slice, not an error.
func (o Options) List(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read directory: %w", err)
	}

	exts := o.extensions()
	var out []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		if !hasImageExt(name, exts) {
			continue
		}
		if o.Pattern != "" {
			ok, err := doublestar.Match(o.Pattern, name)
			if err != nil {
				return nil, fmt.Errorf("bad pattern %q: %w", o.Pattern, err)
			}
			if !ok {
				continue
			}
		}
		out = append(out, filepath.Join(dir, name))
	}

	sort.Slice(out, func(i, j int) bool {
		return strings.ToLower(out[i]) < strings.ToLower(out[j])
	})
	return out, nil
}

// List enumerates with default options.
func List(dir string) ([]string, error) {
	return Options{}.List(dir)
}

// RandomOne picks one entry uniformly. ok is false when the list is empty.
func RandomOne(images []string) (path string, ok bool) {
	if len(images) == 0 {
		return "", false
	}
	return images[rand.IntN(len(images))], true
}

func (o Options) extensions() []string {
	if len(o.ExtraExtensions) == 0 {
		return defaultExtensions
	}
	exts := make([]string, 0, len(defaultExtensions)+len(o.ExtraExtensions))
	exts = append(exts, defaultExtensions...)
	for _, e := range o.ExtraExtensions {
		e = strings.ToLower(strings.TrimSpace(e))
		if e == "" {
			continue
		}
		if !strings.HasPrefix(e, ".") {
			e = "." + e
		}
		exts = append(exts, e)
	}
	return exts
}

func hasImageExt(name string, exts []string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	for _, e := range exts {
		if ext == e {
			return true
		}
	}
	return false
}
