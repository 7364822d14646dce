// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package recorder provides in-memory implementations of the gpu and
// phong interfaces that record every call and track the bound state,
// for headless runs and for tests.
package recorder

import (
	"fmt"
	"image"
	"log/slog"
	"slices"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/math32"
	"cogentcore.org/solids/gpu"
	"cogentcore.org/solids/gpu/phong"
)

// DrawCall is the record of one indexed draw, with the program
// state in effect at the time.
type DrawCall struct {
	// VertexArray is the id of the bound vertex array.
	VertexArray int

	// Texture is the id of the bound texture, 0 if none.
	Texture int

	// NumIndex is the number of indexes drawn.
	NumIndex int

	// NumVertex is the number of vertices in the vertex buffers of the array.
	NumVertex int

	Model    math32.Matrix4
	Routing  phong.Routing
	Material *phong.Material
}

// Device is a [gpu.Device] that keeps everything in memory.
// Its Program receives the phong calls, so that each [DrawCall]
// records the model matrix, routing and material used.
type Device struct {
	// Program is the shading program paired with this device.
	Program *Program

	// Calls is the textual record of every call, in order.
	Calls []string

	// Draws has one record per IndexBuffer.Draw call.
	Draws []DrawCall

	// Errors has the misuse detected, such as drawing with
	// nothing bound or using a released resource.
	Errors []error

	// FailTextures makes NewTexture fail, to test the no-texture path.
	FailTextures bool

	nextID  int
	live    map[int]string
	array   *VertexArray
	texture *Texture
}

// New returns a new Device with a new paired Program.
func New() *Device {
	dv := &Device{live: map[int]string{}}
	dv.Program = NewProgram(dv)
	return dv
}

func (dv *Device) record(format string, args ...any) {
	dv.Calls = append(dv.Calls, fmt.Sprintf(format, args...))
}

func (dv *Device) fail(err error) {
	slog.Error(err.Error())
	dv.Errors = append(dv.Errors, err)
}

func (dv *Device) newID(kind string) int {
	dv.nextID++
	dv.live[dv.nextID] = kind
	return dv.nextID
}

// release marks the resource as released, and records an error if
// it already was.
func (dv *Device) release(kind string, id int) bool {
	if _, ok := dv.live[id]; !ok {
		dv.fail(fmt.Errorf("recorder.%s %d: released twice", kind, id))
		return false
	}
	delete(dv.live, id)
	dv.record("%s(%d).Release", kind, id)
	return true
}

// Live returns the number of resources that have not been released.
func (dv *Device) Live() int {
	return len(dv.live)
}

// BoundVertexArray returns the id of the bound vertex array, 0 if none.
func (dv *Device) BoundVertexArray() int {
	if dv.array == nil {
		return 0
	}
	return dv.array.id
}

// BoundTexture returns the id of the bound texture, 0 if none.
func (dv *Device) BoundTexture() int {
	if dv.texture == nil {
		return 0
	}
	return dv.texture.id
}

// Reset clears the recorded calls, draws and errors, keeping the
// resources and bound state.
func (dv *Device) Reset() {
	dv.Calls = nil
	dv.Draws = nil
	dv.Errors = nil
}

func (dv *Device) NewVertexArray() gpu.VertexArray {
	va := &VertexArray{dev: dv, id: dv.newID("VertexArray")}
	dv.record("NewVertexArray %d", va.id)
	return va
}

func (dv *Device) NewVertexBuffer() gpu.VertexBuffer {
	vb := &VertexBuffer{dev: dv, id: dv.newID("VertexBuffer")}
	dv.record("NewVertexBuffer %d", vb.id)
	return vb
}

func (dv *Device) NewIndexBuffer() gpu.IndexBuffer {
	ib := &IndexBuffer{dev: dv, id: dv.newID("IndexBuffer")}
	dv.record("NewIndexBuffer %d", ib.id)
	return ib
}

func (dv *Device) NewTexture(img *image.RGBA) (gpu.Texture, error) {
	if dv.FailTextures || img == nil {
		return nil, fmt.Errorf("recorder.Device NewTexture: %w", gpu.ErrResourceUnavailable)
	}
	tx := &Texture{dev: dv, id: dv.newID("Texture"), Size: img.Rect.Size()}
	dv.record("NewTexture %d %dx%d", tx.id, tx.Size.X, tx.Size.Y)
	return tx, nil
}

// VertexArray is a recorded [gpu.VertexArray]. Buffers whose
// SetBuffer is called while it is bound become part of it.
type VertexArray struct {
	dev      *Device
	id       int
	released bool

	// Buffers are the vertex buffers attached while bound.
	Buffers []*VertexBuffer

	// Index is the index buffer attached while bound.
	Index *IndexBuffer
}

func (va *VertexArray) Bind() {
	if va.released {
		va.dev.fail(fmt.Errorf("recorder.VertexArray %d: Bind after Release", va.id))
		return
	}
	va.dev.array = va
	va.dev.record("VertexArray(%d).Bind", va.id)
}

func (va *VertexArray) Unbind() {
	if va.dev.array == va {
		va.dev.array = nil
	}
	va.dev.record("VertexArray(%d).Unbind", va.id)
}

func (va *VertexArray) Release() {
	if va.dev.release("VertexArray", va.id) {
		va.released = true
		if va.dev.array == va {
			va.dev.array = nil
		}
	}
}

// VertexBuffer is a recorded [gpu.VertexBuffer].
type VertexBuffer struct {
	dev *Device
	id  int

	// Data is a copy of the uploaded floats.
	Data math32.ArrayF32

	// Stride is the number of floats per vertex.
	Stride int

	// Attribs maps the slot to the [offset, size] in floats.
	Attribs map[int][2]int
}

// NumVertex returns the number of vertices in the buffer.
func (vb *VertexBuffer) NumVertex() int {
	if vb.Stride == 0 {
		return 0
	}
	return len(vb.Data) / vb.Stride
}

func (vb *VertexBuffer) SetBuffer(data math32.ArrayF32, stride int) {
	vb.Data = append(vb.Data[:0], data...)
	vb.Stride = stride
	if va := vb.dev.array; va != nil {
		if !slices.Contains(va.Buffers, vb) {
			va.Buffers = append(va.Buffers, vb)
		}
	} else {
		vb.dev.fail(fmt.Errorf("recorder.VertexBuffer %d: SetBuffer with no vertex array bound", vb.id))
	}
	vb.dev.record("VertexBuffer(%d).SetBuffer %d floats stride %d", vb.id, len(data), stride)
}

func (vb *VertexBuffer) SetAttribPointer(slot, stride, offset, size int) {
	if slot < 0 || offset+size > stride {
		vb.dev.fail(fmt.Errorf("recorder.VertexBuffer %d: invalid attribute slot %d offset %d size %d stride %d", vb.id, slot, offset, size, stride))
		return
	}
	if vb.Attribs == nil {
		vb.Attribs = map[int][2]int{}
	}
	vb.Attribs[slot] = [2]int{offset, size}
	vb.dev.record("VertexBuffer(%d).SetAttribPointer slot %d stride %d offset %d size %d", vb.id, slot, stride, offset, size)
}

func (vb *VertexBuffer) Release() {
	vb.dev.release("VertexBuffer", vb.id)
}

// IndexBuffer is a recorded [gpu.IndexBuffer].
type IndexBuffer struct {
	dev *Device
	id  int

	// Indexes is a copy of the uploaded indexes.
	Indexes math32.ArrayU32
}

func (ib *IndexBuffer) SetBuffer(indexes math32.ArrayU32) {
	ib.Indexes = append(ib.Indexes[:0], indexes...)
	if va := ib.dev.array; va != nil {
		va.Index = ib
	}
	ib.dev.record("IndexBuffer(%d).SetBuffer %d indexes", ib.id, len(indexes))
}

func (ib *IndexBuffer) Draw() {
	dv := ib.dev
	va := dv.array
	if va == nil {
		dv.fail(fmt.Errorf("recorder.IndexBuffer %d: Draw with no vertex array bound", ib.id))
		return
	}
	dc := DrawCall{VertexArray: va.id, Texture: dv.BoundTexture(), NumIndex: len(ib.Indexes)}
	for _, vb := range va.Buffers {
		dc.NumVertex += vb.NumVertex()
	}
	for _, ix := range ib.Indexes {
		if int(ix) >= dc.NumVertex {
			dv.fail(fmt.Errorf("recorder.IndexBuffer %d: index %d out of range for %d vertices", ib.id, ix, dc.NumVertex))
			break
		}
	}
	if pr := dv.Program; pr != nil {
		dc.Model = pr.Model
		dc.Routing = pr.Routing
		dc.Material = pr.Material
	}
	dv.Draws = append(dv.Draws, dc)
	dv.record("IndexBuffer(%d).Draw %d indexes", ib.id, dc.NumIndex)
}

func (ib *IndexBuffer) Release() {
	ib.dev.release("IndexBuffer", ib.id)
}

// Texture is a recorded [gpu.Texture].
type Texture struct {
	dev *Device
	id  int

	// Size is the size of the uploaded image.
	Size image.Point
}

func (tx *Texture) Bind() {
	tx.dev.texture = tx
	tx.dev.record("Texture(%d).Bind", tx.id)
}

func (tx *Texture) Unbind() {
	if tx.dev.texture == tx {
		tx.dev.texture = nil
	}
	tx.dev.record("Texture(%d).Unbind", tx.id)
}

func (tx *Texture) Release() {
	if tx.dev.release("Texture", tx.id) && tx.dev.texture == tx {
		tx.dev.texture = nil
	}
}

// Err returns the joined misuse errors, nil if none.
func (dv *Device) Err() error {
	return errors.Join(dv.Errors...)
}
