// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package webgpu

import (
	"fmt"
	"image"
	"image/draw"

	"cogentcore.org/solids/gpu"
	"github.com/cogentcore/webgpu/wgpu"
)

// Texture is a WebGPU 2D texture with a view and a repeating,
// linear filtering sampler.
type Texture struct {
	dev     *Device
	texture *wgpu.Texture
	view    *wgpu.TextureView
	sampler *wgpu.Sampler
	size    image.Point
}

// View returns the texture view, for the bind group.
func (tx *Texture) View() *wgpu.TextureView {
	return tx.view
}

// Sampler returns the sampler, for the bind group.
func (tx *Texture) Sampler() *wgpu.Sampler {
	return tx.sampler
}

// Size returns the size of the uploaded image.
func (tx *Texture) Size() image.Point {
	return tx.size
}

func (tx *Texture) setFromImage(img *image.RGBA) error {
	sz := img.Rect.Size()
	if sz.X <= 0 || sz.Y <= 0 {
		return fmt.Errorf("webgpu.Texture: empty image: %w", gpu.ErrResourceUnavailable)
	}
	if img.Stride != 4*sz.X || img.Rect.Min != (image.Point{}) {
		pk := image.NewRGBA(image.Rect(0, 0, sz.X, sz.Y))
		draw.Draw(pk, pk.Rect, img, img.Rect.Min, draw.Src)
		img = pk
	}
	size := wgpu.Extent3D{
		Width:              uint32(sz.X),
		Height:             uint32(sz.Y),
		DepthOrArrayLayers: 1,
	}
	t, err := tx.dev.Device.CreateTexture(&wgpu.TextureDescriptor{
		Label:         "Texture",
		Size:          size,
		MipLevelCount: 1,
		SampleCount:   1,
		Dimension:     wgpu.TextureDimension2D,
		Format:        wgpu.TextureFormatRGBA8UnormSrgb,
		Usage:         wgpu.TextureUsageTextureBinding | wgpu.TextureUsageCopyDst,
	})
	if err != nil {
		return fmt.Errorf("webgpu.Texture: %w: %w", gpu.ErrResourceUnavailable, err)
	}
	tx.texture = t
	tx.size = sz
	vw, err := t.CreateView(nil)
	if err != nil {
		tx.Release()
		return fmt.Errorf("webgpu.Texture: %w: %w", gpu.ErrResourceUnavailable, err)
	}
	tx.view = vw
	sm, err := tx.dev.Device.CreateSampler(&wgpu.SamplerDescriptor{
		AddressModeU:  wgpu.AddressModeRepeat,
		AddressModeV:  wgpu.AddressModeRepeat,
		AddressModeW:  wgpu.AddressModeRepeat,
		MagFilter:     wgpu.FilterModeLinear,
		MinFilter:     wgpu.FilterModeLinear,
		MipmapFilter:  wgpu.MipmapFilterModeLinear,
		LodMaxClamp:   32,
		MaxAnisotropy: 1,
	})
	if err != nil {
		tx.Release()
		return fmt.Errorf("webgpu.Texture: %w: %w", gpu.ErrResourceUnavailable, err)
	}
	tx.sampler = sm

	// https://www.w3.org/TR/webgpu/#gpuimagecopytexture
	tx.dev.Queue.WriteTexture(
		&wgpu.ImageCopyTexture{
			Aspect:   wgpu.TextureAspectAll,
			Texture:  t,
			MipLevel: 0,
			Origin:   wgpu.Origin3D{X: 0, Y: 0, Z: 0},
		},
		img.Pix,
		&wgpu.TextureDataLayout{
			Offset:       0,
			BytesPerRow:  4 * uint32(sz.X),
			RowsPerImage: uint32(sz.Y),
		},
		&size,
	)
	return nil
}

func (tx *Texture) Bind() {
	tx.dev.texture = tx
}

func (tx *Texture) Unbind() {
	if tx.dev.texture == tx {
		tx.dev.texture = nil
	}
}

func (tx *Texture) Release() {
	tx.Unbind()
	if tx.sampler != nil {
		tx.sampler.Release()
		tx.sampler = nil
	}
	if tx.view != nil {
		tx.view.Release()
		tx.view = nil
	}
	if tx.texture != nil {
		tx.texture.Release()
		tx.texture = nil
	}
}
