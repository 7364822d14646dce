// Copyright (c) 2019, The GoKi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package glgpu

import (
	"cogentcore.org/core/math32"
	"cogentcore.org/solids/gpu"
	"github.com/go-gl/gl/v4.1-core/gl"
)

// VertexArray is an OpenGL vertex array object, which records the
// buffer bindings and attribute pointers set while it is bound.
type VertexArray struct {
	init   bool
	handle uint32
}

// Handle returns the unique handle for this vertex array, only valid after Bind.
func (va *VertexArray) Handle() uint32 {
	return va.handle
}

// Bind binds the vertex array, creating it the first time.
func (va *VertexArray) Bind() {
	if !va.init {
		gl.GenVertexArrays(1, &va.handle)
		va.init = true
	}
	gl.BindVertexArray(va.handle)
}

func (va *VertexArray) Unbind() {
	gl.BindVertexArray(0)
}

// Release deletes the GPU resources associated with this vertex array
// (requires Bind to re-establish a new one).
func (va *VertexArray) Release() {
	if !va.init {
		return
	}
	gl.DeleteVertexArrays(1, &va.handle)
	va.handle = 0
	va.init = false
}

// VertexBuffer is an OpenGL array buffer of interleaved floats.
type VertexBuffer struct {
	init   bool
	handle uint32
	stride int
}

// activate binds buffer as active one, creating it the first time.
func (vb *VertexBuffer) activate() {
	if !vb.init {
		gl.GenBuffers(1, &vb.handle)
		vb.init = true
	}
	gl.BindBuffer(gl.ARRAY_BUFFER, vb.handle)
}

// SetBuffer transfers the data to the GPU, using the re-specification
// strategy per: https://www.khronos.org/opengl/wiki/Buffer_Object_Streaming
// so it is safe if buffer was still being used from prior GL rendering call.
func (vb *VertexBuffer) SetBuffer(data math32.ArrayF32, stride int) {
	vb.activate()
	vb.stride = stride
	if len(data) == 0 {
		gl.BufferData(gl.ARRAY_BUFFER, 0, nil, gl.STATIC_DRAW)
		return
	}
	gl.BufferData(gl.ARRAY_BUFFER, data.NumBytes(), gl.Ptr(data), gl.STATIC_DRAW)
}

// SetAttribPointer points the attribute at slot to size floats at offset
// within each vertex of stride floats, and enables it. The vertex array
// must be bound.
func (vb *VertexBuffer) SetAttribPointer(slot, stride, offset, size int) {
	vb.activate()
	gl.VertexAttribPointerWithOffset(uint32(slot), int32(size), gl.FLOAT, false, int32(stride*gpu.SizeofFloat32), uintptr(offset*gpu.SizeofFloat32))
	gl.EnableVertexAttribArray(uint32(slot))
}

func (vb *VertexBuffer) Release() {
	if !vb.init {
		return
	}
	gl.DeleteBuffers(1, &vb.handle)
	vb.handle = 0
	vb.init = false
}

// IndexBuffer manages a buffer of indexes for index-based rendering
// (i.e., GL_ELEMENT_ARRAY_BUFFER for glDrawElements calls in OpenGL).
// The element buffer binding is recorded by the vertex array bound
// when SetBuffer is called.
type IndexBuffer struct {
	init   bool
	handle uint32
	ln     int
}

// Len returns the number of indexes in buffer.
func (ib *IndexBuffer) Len() int {
	return ib.ln
}

func (ib *IndexBuffer) SetBuffer(indexes math32.ArrayU32) {
	if !ib.init {
		gl.GenBuffers(1, &ib.handle)
		ib.init = true
	}
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, ib.handle)
	ib.ln = len(indexes)
	if ib.ln == 0 {
		gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, 0, nil, gl.STATIC_DRAW)
		return
	}
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, indexes.NumBytes(), gl.Ptr(indexes), gl.STATIC_DRAW)
}

// Draw draws all the indexes as triangles from the bound vertex array.
func (ib *IndexBuffer) Draw() {
	if ib.ln == 0 {
		return
	}
	gl.DrawElements(gl.TRIANGLES, int32(ib.ln), gl.UNSIGNED_INT, gl.PtrOffset(0))
}

func (ib *IndexBuffer) Release() {
	if !ib.init {
		return
	}
	gl.DeleteBuffers(1, &ib.handle)
	ib.handle = 0
	ib.init = false
	ib.ln = 0
}
