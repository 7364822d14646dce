// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package webgpu implements the gpu interfaces on WebGPU.
//
// WebGPU has no global binding state, so the [Device] keeps the bound
// vertex array and texture itself. The vertex buffer layouts declared
// with SetAttribPointer are available from [VertexArray.Layouts] for
// building the render pipeline, and the bound texture from
// [Device.BoundTexture] for building its bind group.
// Draw calls are recorded into [Device.Pass], which the caller sets
// for each frame.
package webgpu

import (
	"fmt"
	"image"
	"log/slog"

	"cogentcore.org/solids/gpu"
	"github.com/cogentcore/webgpu/wgpu"
)

var _ gpu.Device = (*Device)(nil)

// Device wraps a WebGPU device and queue.
type Device struct {
	// Device is the WebGPU device.
	Device *wgpu.Device

	// Queue is the queue used for writing buffers and textures.
	Queue *wgpu.Queue

	// Pass is the current render pass, set by the caller for each frame.
	Pass *wgpu.RenderPassEncoder

	array   *VertexArray
	texture *Texture
}

// NewDevice returns a new Device for the given WebGPU device.
func NewDevice(dev *wgpu.Device) *Device {
	return &Device{Device: dev, Queue: dev.GetQueue()}
}

// BoundVertexArray returns the bound vertex array, nil if none.
func (dv *Device) BoundVertexArray() *VertexArray {
	return dv.array
}

// BoundTexture returns the bound texture, nil if none.
func (dv *Device) BoundTexture() *Texture {
	return dv.texture
}

func (dv *Device) NewVertexArray() gpu.VertexArray {
	return &VertexArray{dev: dv}
}

func (dv *Device) NewVertexBuffer() gpu.VertexBuffer {
	return &VertexBuffer{dev: dv}
}

func (dv *Device) NewIndexBuffer() gpu.IndexBuffer {
	return &IndexBuffer{dev: dv}
}

func (dv *Device) NewTexture(img *image.RGBA) (gpu.Texture, error) {
	tx := &Texture{dev: dv}
	if err := tx.setFromImage(img); err != nil {
		return nil, err
	}
	return tx, nil
}

// setFromBytes copies the bytes into the buffer, creating it if it
// does not yet exist or is not the right size.
func (dv *Device) setFromBytes(buf **wgpu.Buffer, size *int, label string, usage wgpu.BufferUsage, from []byte) error {
	nb := len(from)
	if nb == 0 {
		return nil
	}
	if *buf == nil || *size != nb {
		if *buf != nil {
			(*buf).Release()
			*buf = nil
		}
		b, err := dv.Device.CreateBufferInit(&wgpu.BufferInitDescriptor{
			Label:    label,
			Contents: from,
			Usage:    usage,
		})
		if err != nil {
			return fmt.Errorf("webgpu.%s: %w: %w", label, gpu.ErrResourceUnavailable, err)
		}
		*buf = b
		*size = nb
		return nil
	}
	return dv.Queue.WriteBuffer(*buf, 0, from)
}

// drawCheck returns the pass and vertex array to draw with,
// logging an error if either is missing.
func (dv *Device) drawCheck() (*wgpu.RenderPassEncoder, *VertexArray) {
	if dv.Pass == nil {
		slog.Error("webgpu.IndexBuffer: Draw with no render pass set")
		return nil, nil
	}
	if dv.array == nil {
		slog.Error("webgpu.IndexBuffer: Draw with no vertex array bound")
		return nil, nil
	}
	return dv.Pass, dv.array
}
