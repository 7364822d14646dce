// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gpu defines the small set of GPU resource interfaces that
// displayable meshes use: vertex arrays, vertex and index buffers,
// and 2D textures, all created from a [Device].
//
// Implementations are in the glgpu (OpenGL), webgpu (WebGPU) and
// recorder (in-memory, for headless use and tests) subpackages.
// All calls are synchronous and must be made from the goroutine
// that owns the graphics context.
package gpu

import (
	"image"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/math32"
)

// ErrResourceUnavailable is returned (wrapped) when an external resource
// such as a texture file cannot be found, read or decoded, or a GPU
// resource cannot be created.
var ErrResourceUnavailable = errors.New("resource unavailable")

// SizeofFloat32 is the number of bytes in a float32, used to convert
// strides and offsets expressed in floats to bytes.
const SizeofFloat32 = 4

// VertexArray records the vertex buffer and attribute pointer state
// that is declared while it is bound, so that it can be re-established
// for drawing with one Bind call.
type VertexArray interface {
	// Bind makes this the current vertex array.
	Bind()

	// Unbind clears the current vertex array.
	Unbind()

	// Release frees the GPU resources.
	Release()
}

// VertexBuffer holds interleaved float vertex data.
// Strides and offsets are in floats; the backend converts to bytes.
type VertexBuffer interface {
	// SetBuffer uploads the data, with stride floats per vertex.
	SetBuffer(data math32.ArrayF32, stride int)

	// SetAttribPointer declares that the shading-stage input at the given
	// slot reads size floats at offset within each stride floats.
	SetAttribPointer(slot, stride, offset, size int)

	// Release frees the GPU resources.
	Release()
}

// IndexBuffer holds the triangle indexes for a mesh.
type IndexBuffer interface {
	// SetBuffer uploads the indexes.
	SetBuffer(indexes math32.ArrayU32)

	// Draw issues one indexed triangle draw over the whole buffer,
	// using the currently bound vertex array.
	Draw()

	// Release frees the GPU resources.
	Release()
}

// Texture is a 2D texture in device memory.
type Texture interface {
	// Bind makes this the current 2D texture.
	Bind()

	// Unbind clears the current 2D texture.
	Unbind()

	// Release frees the GPU resources.
	Release()
}

// Device creates GPU resources. It requires a current graphics
// context, which is established externally.
type Device interface {
	NewVertexArray() VertexArray
	NewVertexBuffer() VertexBuffer
	NewIndexBuffer() IndexBuffer

	// NewTexture uploads the image as a 2D texture with repeat wrapping
	// and linear filtering. The image is used as is: any flipping for
	// the texture coordinate origin has already been done by the loader.
	NewTexture(img *image.RGBA) (Texture, error)
}

// TextureLoader loads image files for use as textures.
type TextureLoader interface {
	// Load returns the image in the named file, ready for upload with
	// [Device.NewTexture], or an error wrapping [ErrResourceUnavailable].
	Load(path string) (*image.RGBA, error)
}
