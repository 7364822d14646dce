// Copyright (c) 2019, The GoKi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package glgpu implements the gpu and phong interfaces on OpenGL 4.1
// core profile, using go-gl. A GL context must be current on the
// calling goroutine, with gl.Init already called; windowing and
// context creation are done externally.
package glgpu

import (
	"image"
	"image/draw"

	"cogentcore.org/solids/gpu"
	"cogentcore.org/solids/gpu/phong"
)

var (
	_ gpu.Device    = (*Device)(nil)
	_ phong.Program = (*Program)(nil)
)

// Device creates OpenGL resources in the current context.
type Device struct{}

// NewDevice returns a new Device for the current GL context.
func NewDevice() *Device {
	return &Device{}
}

func (dv *Device) NewVertexArray() gpu.VertexArray {
	return &VertexArray{}
}

func (dv *Device) NewVertexBuffer() gpu.VertexBuffer {
	return &VertexBuffer{}
}

func (dv *Device) NewIndexBuffer() gpu.IndexBuffer {
	return &IndexBuffer{}
}

// NewTexture uploads the image as a 2D RGBA texture with repeat
// wrapping and linear filtering, leaving no texture bound.
func (dv *Device) NewTexture(img *image.RGBA) (gpu.Texture, error) {
	tx := &Texture{}
	if err := tx.upload(img); err != nil {
		return nil, err
	}
	return tx, nil
}

// packedPixels returns the pixels of the image with no padding
// between rows, as glTexImage2D expects, copying only if needed.
func packedPixels(img *image.RGBA) []uint8 {
	sz := img.Rect.Size()
	if img.Stride == 4*sz.X && img.Rect.Min == (image.Point{}) {
		return img.Pix[:4*sz.X*sz.Y]
	}
	pk := image.NewRGBA(image.Rect(0, 0, sz.X, sz.Y))
	draw.Draw(pk, pk.Rect, img, img.Rect.Min, draw.Src)
	return pk.Pix
}
