// Copyright (c) 2019, The GoKi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package glgpu

import (
	"fmt"
	"image"

	"cogentcore.org/solids/gpu"
	"github.com/go-gl/gl/v4.1-core/gl"
)

// Texture is an OpenGL 2D texture.
type Texture struct {
	init   bool
	handle uint32
	size   image.Point
}

// Size returns the size of the uploaded image.
func (tx *Texture) Size() image.Point {
	return tx.size
}

func (tx *Texture) upload(img *image.RGBA) error {
	sz := img.Rect.Size()
	if sz.X <= 0 || sz.Y <= 0 {
		return fmt.Errorf("glgpu.Texture: empty image: %w", gpu.ErrResourceUnavailable)
	}
	gl.GenTextures(1, &tx.handle)
	if tx.handle == 0 {
		return fmt.Errorf("glgpu.Texture: glGenTextures failed: %w", gpu.ErrResourceUnavailable)
	}
	tx.init = true
	tx.size = sz
	pix := packedPixels(img)
	gl.BindTexture(gl.TEXTURE_2D, tx.handle)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA, int32(sz.X), int32(sz.Y), 0, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pix))
	gl.BindTexture(gl.TEXTURE_2D, 0)
	return nil
}

func (tx *Texture) Bind() {
	if !tx.init {
		return
	}
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, tx.handle)
}

func (tx *Texture) Unbind() {
	gl.BindTexture(gl.TEXTURE_2D, 0)
}

func (tx *Texture) Release() {
	if !tx.init {
		return
	}
	gl.DeleteTextures(1, &tx.handle)
	tx.handle = 0
	tx.init = false
}
