package component

import (
	"errors"
	"fmt"
	"image"
	_ "image/png"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
)

// ErrMissingIcon is returned when an icon resource cannot be read.
var ErrMissingIcon = errors.New("missing component icon")

// Library loads and caches component icons from a resource filesystem.
// It is safe for concurrent use; the canvas raster reads icons from the
// render goroutine.
type Library struct {
	fsys fs.FS

	mu    sync.Mutex
	cache map[string]image.Image
}

// NewLibrary creates a library reading icons from fsys.
func NewLibrary(fsys fs.FS) *Library {
	return &Library{
		fsys:  fsys,
		cache: make(map[string]image.Image),
	}
}

// OpenLibrary creates a library rooted at dir.
func OpenLibrary(dir string) *Library {
	return NewLibrary(os.DirFS(dir))
}

// ResourceDir returns the first of the working directory or the executable's
// directory that contains a components/ folder. It falls back to ".".
func ResourceDir() string {
	candidates := []string{"."}
	if exe, err := os.Executable(); err == nil {
		if real, err := filepath.EvalSymlinks(exe); err == nil {
			exe = real
		}
		candidates = append(candidates, filepath.Dir(exe))
	}
	for _, dir := range candidates {
		if info, err := os.Stat(filepath.Join(dir, "components")); err == nil && info.IsDir() {
			return dir
		}
	}
	return "."
}

// Icon returns the bitmap for kind, or its alternate bitmap when alternate
// is set and the kind has one.
func (l *Library) Icon(kind Kind, alternate bool) (image.Image, error) {
	if !kind.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, string(kind))
	}
	path := kind.IconPath()
	if alternate && kind.HasAlternate() {
		path = kind.AltIconPath()
	}
	return l.load(path)
}

// Check loads every bitmap a kind can display, so a missing alternate
// surfaces when the part is placed rather than when it is toggled.
func (l *Library) Check(kind Kind) (image.Image, error) {
	img, err := l.Icon(kind, false)
	if err != nil {
		return nil, err
	}
	if kind.HasAlternate() {
		if _, err := l.Icon(kind, true); err != nil {
			return nil, err
		}
	}
	return img, nil
}

func (l *Library) load(path string) (image.Image, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if img, ok := l.cache[path]; ok {
		return img, nil
	}

	f, err := l.fsys.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrMissingIcon, path, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode icon %s: %w", path, err)
	}

	l.cache[path] = img
	return img, nil
}
