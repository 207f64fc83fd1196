// SPDX-License-Identifier: Unlicense OR MIT

package draw

import (
	"errors"
	"fmt"
	"image"
	"io/fs"

	// Image formats understood by Images.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"gioui.org/retained/geom"
)

// ImageId identifies an image loaded into Images.
type ImageId uint32

// AllocError is returned when an image doesn't fit the cache limits.
type AllocError struct {
	Path string
	Size geom.Size
}

func (e *AllocError) Error() string {
	return fmt.Sprintf("draw: no room for %dx%d image %q", e.Size.W, e.Size.H, e.Path)
}

// ImageError is returned when an image can't be read or decoded.
type ImageError struct {
	Path string
	Err  error
}

func (e *ImageError) Error() string {
	return fmt.Sprintf("draw: image %q: %v", e.Path, e.Err)
}

func (e *ImageError) Unwrap() error {
	return e.Err
}

// ErrUnknownImage is returned by operations on an ImageId that is not
// loaded.
var ErrUnknownImage = errors.New("draw: unknown image")

type imageEntry struct {
	path string
	img  image.Image
	refs int
}

// Images is a cache of decoded images shared by a window's widgets.
// Loading the same path twice returns the same ImageId; each Load
// must be balanced by a Release.
type Images struct {
	fsys fs.FS
	// MaxPixels bounds the total pixel count of cached images.
	// Zero means no bound.
	MaxPixels int

	pixels  int
	next    ImageId
	byPath  map[string]ImageId
	entries map[ImageId]*imageEntry
}

// NewImages returns a cache loading images from fsys. A nil fsys
// allows only images inserted with Add.
func NewImages(fsys fs.FS) *Images {
	return &Images{
		fsys:    fsys,
		byPath:  make(map[string]ImageId),
		entries: make(map[ImageId]*imageEntry),
	}
}

// Load returns the image at path, decoding it on first use.
func (s *Images) Load(path string) (ImageId, error) {
	if id, ok := s.byPath[path]; ok {
		s.entries[id].refs++
		return id, nil
	}
	if s.fsys == nil {
		return 0, &ImageError{Path: path, Err: fs.ErrNotExist}
	}
	f, err := s.fsys.Open(path)
	if err != nil {
		return 0, &ImageError{Path: path, Err: err}
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	if err != nil {
		return 0, &ImageError{Path: path, Err: err}
	}
	return s.insert(path, img)
}

// Add inserts an image that is not backed by a file. The path is used
// for deduplication only.
func (s *Images) Add(path string, img image.Image) (ImageId, error) {
	if id, ok := s.byPath[path]; ok {
		s.entries[id].refs++
		return id, nil
	}
	return s.insert(path, img)
}

func (s *Images) insert(path string, img image.Image) (ImageId, error) {
	b := img.Bounds()
	px := b.Dx() * b.Dy()
	if s.MaxPixels > 0 && s.pixels+px > s.MaxPixels {
		return 0, &AllocError{Path: path, Size: geom.Size{W: b.Dx(), H: b.Dy()}}
	}
	s.next++
	id := s.next
	s.pixels += px
	s.byPath[path] = id
	s.entries[id] = &imageEntry{path: path, img: img, refs: 1}
	return id, nil
}

// Get returns the image for id.
func (s *Images) Get(id ImageId) (image.Image, bool) {
	e, ok := s.entries[id]
	if !ok {
		return nil, false
	}
	return e.img, true
}

// Release drops a reference to id, freeing the image when none
// remain.
func (s *Images) Release(id ImageId) error {
	e, ok := s.entries[id]
	if !ok {
		return ErrUnknownImage
	}
	e.refs--
	if e.refs > 0 {
		return nil
	}
	b := e.img.Bounds()
	s.pixels -= b.Dx() * b.Dy()
	delete(s.entries, id)
	delete(s.byPath, e.path)
	return nil
}

// Paths returns the sorted paths of the cached images.
func (s *Images) Paths() []string {
	paths := maps.Keys(s.byPath)
	slices.Sort(paths)
	return paths
}
