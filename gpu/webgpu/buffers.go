// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package webgpu

import (
	"slices"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/math32"
	"cogentcore.org/solids/gpu"
	"github.com/cogentcore/webgpu/wgpu"
)

// VertexArray collects the vertex buffers and index buffer that are
// set while it is bound.
type VertexArray struct {
	dev     *Device
	buffers []*VertexBuffer
	index   *IndexBuffer
}

func (va *VertexArray) Bind() {
	va.dev.array = va
}

func (va *VertexArray) Unbind() {
	if va.dev.array == va {
		va.dev.array = nil
	}
}

// Release drops the buffer references; the buffers are
// released by their own Release.
func (va *VertexArray) Release() {
	va.Unbind()
	va.buffers = nil
	va.index = nil
}

// Layouts returns the vertex buffer layouts, one per vertex buffer in
// slot order, for the render pipeline vertex state.
func (va *VertexArray) Layouts() []wgpu.VertexBufferLayout {
	lays := make([]wgpu.VertexBufferLayout, len(va.buffers))
	for i, vb := range va.buffers {
		lays[i] = vb.Layout()
	}
	return lays
}

func (va *VertexArray) attach(vb *VertexBuffer) {
	if !slices.Contains(va.buffers, vb) {
		va.buffers = append(va.buffers, vb)
	}
}

// VertexBuffer is a WebGPU vertex buffer of interleaved floats.
type VertexBuffer struct {
	dev       *Device
	buffer    *wgpu.Buffer
	allocSize int
	stride    int
	attribs   []wgpu.VertexAttribute
}

// vertexFormat returns the format for an attribute of n floats.
func vertexFormat(n int) wgpu.VertexFormat {
	switch n {
	case 1:
		return wgpu.VertexFormatFloat32
	case 2:
		return wgpu.VertexFormatFloat32x2
	case 3:
		return wgpu.VertexFormatFloat32x3
	default:
		return wgpu.VertexFormatFloat32x4
	}
}

// Layout returns the vertex buffer layout declared by SetAttribPointer.
func (vb *VertexBuffer) Layout() wgpu.VertexBufferLayout {
	return wgpu.VertexBufferLayout{
		ArrayStride: uint64(vb.stride * gpu.SizeofFloat32),
		StepMode:    wgpu.VertexStepModeVertex,
		Attributes:  vb.attribs,
	}
}

func (vb *VertexBuffer) SetBuffer(data math32.ArrayF32, stride int) {
	vb.stride = stride
	if va := vb.dev.array; va != nil {
		va.attach(vb)
	}
	errors.Log(vb.dev.setFromBytes(&vb.buffer, &vb.allocSize, "VertexBuffer", wgpu.BufferUsageVertex|wgpu.BufferUsageCopyDst, wgpu.ToBytes(data)))
}

func (vb *VertexBuffer) SetAttribPointer(slot, stride, offset, size int) {
	vb.stride = stride
	at := wgpu.VertexAttribute{
		Format:         vertexFormat(size),
		Offset:         uint64(offset * gpu.SizeofFloat32),
		ShaderLocation: uint32(slot),
	}
	for i := range vb.attribs {
		if vb.attribs[i].ShaderLocation == at.ShaderLocation {
			vb.attribs[i] = at
			return
		}
	}
	vb.attribs = append(vb.attribs, at)
}

func (vb *VertexBuffer) Release() {
	if vb.buffer != nil {
		vb.buffer.Release()
		vb.buffer = nil
	}
	vb.allocSize = 0
}

// IndexBuffer is a WebGPU index buffer of uint32 indexes.
type IndexBuffer struct {
	dev       *Device
	buffer    *wgpu.Buffer
	allocSize int
	ln        int
}

func (ib *IndexBuffer) SetBuffer(indexes math32.ArrayU32) {
	ib.ln = len(indexes)
	if va := ib.dev.array; va != nil {
		va.index = ib
	}
	errors.Log(ib.dev.setFromBytes(&ib.buffer, &ib.allocSize, "IndexBuffer", wgpu.BufferUsageIndex|wgpu.BufferUsageCopyDst, wgpu.ToBytes(indexes)))
}

// Draw sets the vertex buffers of the bound vertex array and this
// index buffer on the render pass, and draws all the indexes.
func (ib *IndexBuffer) Draw() {
	if ib.ln == 0 || ib.buffer == nil {
		return
	}
	rp, va := ib.dev.drawCheck()
	if rp == nil {
		return
	}
	for i, vb := range va.buffers {
		rp.SetVertexBuffer(uint32(i), vb.buffer, 0, wgpu.WholeSize)
	}
	rp.SetIndexBuffer(ib.buffer, wgpu.IndexFormatUint32, 0, wgpu.WholeSize)
	rp.DrawIndexed(uint32(ib.ln), 1, 0, 0, 0)
}

func (ib *IndexBuffer) Release() {
	if ib.buffer != nil {
		ib.buffer.Release()
		ib.buffer = nil
	}
	ib.allocSize = 0
	ib.ln = 0
}
