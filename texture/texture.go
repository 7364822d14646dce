// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package texture loads image files as RGBA images ready for upload
// as GPU textures.
package texture

import (
	"bytes"
	"fmt"
	"image"
	"image/draw"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"io/fs"
	"log/slog"

	"cogentcore.org/core/base/fsx"
	"cogentcore.org/solids/gpu"
	"github.com/anthonynsimon/bild/transform"
	"github.com/h2non/filetype"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// headerSize is the number of leading bytes that filetype needs
// to recognize a file.
const headerSize = 262

// Loader loads texture images. It implements [gpu.TextureLoader].
// png, jpeg, gif, tiff, bmp, and webp are supported.
type Loader struct {
	// FS is the filesystem to load from; if nil, paths are relative
	// to the current directory of the operating system.
	FS fs.FS

	// NoFlip turns off the vertical flip of the image. By default the
	// image is flipped so that its first row is at texture coordinate
	// t = 0, which is the bottom in OpenGL.
	NoFlip bool

	// MaxSize, if > 0, is the maximum width and height: larger images
	// are scaled down to fit, keeping the aspect ratio.
	MaxSize int
}

var _ gpu.TextureLoader = (*Loader)(nil)

// NewLoader returns a new Loader for the given filesystem,
// which can be nil to use the operating system.
func NewLoader(fsys fs.FS) *Loader {
	return &Loader{FS: fsys}
}

// Load loads the image file at path, returning an error wrapping
// [gpu.ErrResourceUnavailable] if it cannot be opened or is not
// a supported image.
func (ld *Loader) Load(path string) (*image.RGBA, error) {
	data, err := ld.read(path)
	if err != nil {
		return nil, fmt.Errorf("texture.Loader: %q: %w: %w", path, gpu.ErrResourceUnavailable, err)
	}
	hd := data[:min(len(data), headerSize)]
	if !filetype.IsImage(hd) {
		kind, _ := filetype.Match(hd)
		return nil, fmt.Errorf("texture.Loader: %q is not an image (type %q): %w", path, kind.MIME.Value, gpu.ErrResourceUnavailable)
	}
	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("texture.Loader: %q: %w: %w", path, gpu.ErrResourceUnavailable, err)
	}
	slog.Debug("texture.Loader: loaded", "file", path, "format", format, "size", img.Bounds().Size())
	return ld.prepare(img), nil
}

func (ld *Loader) read(path string) ([]byte, error) {
	fsys, fnm := ld.FS, path
	if fsys == nil {
		var err error
		fsys, fnm, err = fsx.DirFS(path)
		if err != nil {
			return nil, err
		}
	}
	f, err := fsys.Open(fnm)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(f)
}

// prepare scales and flips the image as configured,
// returning it as an RGBA image with origin at 0,0.
func (ld *Loader) prepare(img image.Image) *image.RGBA {
	if ld.MaxSize > 0 {
		sz := img.Bounds().Size()
		if sz.X > ld.MaxSize || sz.Y > ld.MaxSize {
			w, h := fitSize(sz, ld.MaxSize)
			img = transform.Resize(img, w, h, transform.Linear)
		}
	}
	if ld.NoFlip {
		return ToRGBA(img)
	}
	return ToRGBA(transform.FlipV(img))
}

// fitSize returns the size that fits within limit in both dimensions
// keeping the aspect ratio, with each dimension at least 1.
func fitSize(sz image.Point, limit int) (int, int) {
	if sz.X >= sz.Y {
		return limit, max(1, sz.Y*limit/sz.X)
	}
	return max(1, sz.X*limit/sz.Y), limit
}

// ToRGBA returns the image as an [image.RGBA] with its origin at 0,0,
// returning it directly if it already is one.
func ToRGBA(img image.Image) *image.RGBA {
	if rg, ok := img.(*image.RGBA); ok && rg.Rect.Min == (image.Point{}) {
		return rg
	}
	bb := img.Bounds()
	rg := image.NewRGBA(image.Rect(0, 0, bb.Dx(), bb.Dy()))
	draw.Draw(rg, rg.Rect, img, bb.Min, draw.Src)
	return rg
}
