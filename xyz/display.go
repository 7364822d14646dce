// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

import (
	"fmt"
	"log/slog"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/math32"
	"cogentcore.org/solids/gpu"
	"cogentcore.org/solids/gpu/phong"
	"cogentcore.org/solids/shape"
	"cogentcore.org/solids/texture"
)

// ErrAlreadyInitialized is returned by Initialize when called
// a second time without an intervening Release.
var ErrAlreadyInitialized = errors.New("already initialized")

// ErrLayoutChanged is returned by Regenerate when an initialized
// display is given a mesh with a different vertex layout, since its
// attribute pointers are fixed at Initialize.
var ErrLayoutChanged = errors.New("vertex layout changed")

// ErrNotConfigured is returned by Initialize when there is no
// device, program or mesh to initialize with.
var ErrNotConfigured = errors.New("not configured")

// Displayable is something that can be drawn.
type Displayable interface {
	// Initialize uploads the data for drawing. It must be called once,
	// after the graphics context exists and before Draw.
	Initialize() error

	// Draw draws with the current program state, leaving nothing bound.
	Draw()
}

// MeshDisplay is a [Displayable] for a [shape.Mesh], which is
// uploaded into a vertex array with its vertex and index buffers,
// with the attribute pointers set from the mesh [shape.Layout].
// A texture can be loaded from a file for meshes that have texture
// coordinates.
type MeshDisplay struct {
	// Mesh is the mesh to draw.
	Mesh *shape.Mesh

	// Device creates the GPU resources.
	Device gpu.Device

	// Program gives the attribute locations.
	Program phong.Program

	// TextureFile is the optional image file for a texture.
	// If it cannot be loaded, a warning is logged and the mesh
	// is drawn without a texture.
	TextureFile string

	// Loader loads TextureFile; a [texture.Loader] for the
	// operating system filesystem is used if nil.
	Loader gpu.TextureLoader

	initialized bool
	array       gpu.VertexArray
	vertices    gpu.VertexBuffer
	indexes     gpu.IndexBuffer
	texture     gpu.Texture
	buffer      math32.ArrayF32
}

// NewMeshDisplay returns a new MeshDisplay for a mesh generated by
// the generator, or the generator error, wrapping
// [shape.ErrInvalidParameter].
func NewMeshDisplay(dev gpu.Device, prog phong.Program, gen shape.Generator) (*MeshDisplay, error) {
	ms, err := gen.Generate()
	if err != nil {
		return nil, err
	}
	return &MeshDisplay{Mesh: ms, Device: dev, Program: prog}, nil
}

// SetTexture sets the texture file and loader, which can be nil.
func (md *MeshDisplay) SetTexture(file string, ld gpu.TextureLoader) *MeshDisplay {
	md.TextureFile = file
	md.Loader = ld
	return md
}

// IsInitialized returns whether Initialize has succeeded.
func (md *MeshDisplay) IsInitialized() bool {
	return md.initialized
}

// HasTexture returns whether a texture was loaded.
func (md *MeshDisplay) HasTexture() bool {
	return md.texture != nil
}

// Initialize uploads the mesh and loads the texture if any.
// It returns [ErrAlreadyInitialized] if called again before Release.
func (md *MeshDisplay) Initialize() error {
	if md.initialized {
		return fmt.Errorf("xyz.MeshDisplay %s: %w", md.name(), ErrAlreadyInitialized)
	}
	if md.Device == nil || md.Program == nil || md.Mesh == nil {
		return fmt.Errorf("xyz.MeshDisplay %s: Device, Program and Mesh must be set: %w", md.name(), ErrNotConfigured)
	}
	md.array = md.Device.NewVertexArray()
	md.vertices = md.Device.NewVertexBuffer()
	md.indexes = md.Device.NewIndexBuffer()
	md.array.Bind()
	md.upload()
	md.loadTexture()
	md.array.Unbind()
	md.initialized = true
	return nil
}

// upload sets the buffers and attribute pointers from the mesh.
// The vertex array must be bound.
func (md *MeshDisplay) upload() {
	ly := &md.Mesh.Layout
	md.buffer = md.Mesh.Interleave(md.buffer)
	md.vertices.SetBuffer(md.buffer, ly.Stride)
	md.indexes.SetBuffer(md.Mesh.Indices)
	for _, at := range ly.Attribs {
		slot := md.Program.AttribLocation(at.Name)
		if slot < 0 {
			slog.Error("xyz.MeshDisplay: program has no input for vertex attribute", "mesh", md.name(), "attribute", at.Name)
			continue
		}
		md.vertices.SetAttribPointer(slot, ly.Stride, at.Offset, at.Size)
	}
}

func (md *MeshDisplay) loadTexture() {
	if md.TextureFile == "" {
		return
	}
	if !md.Mesh.Layout.HasTexture() {
		slog.Warn("xyz.MeshDisplay: mesh has no texture coordinates, texture not used", "mesh", md.name(), "file", md.TextureFile)
		return
	}
	ld := md.Loader
	if ld == nil {
		ld = texture.NewLoader(nil)
	}
	img, err := ld.Load(md.TextureFile)
	if err != nil {
		slog.Warn("xyz.MeshDisplay: texture not loaded", "mesh", md.name(), "file", md.TextureFile, "error", err)
		return
	}
	tx, err := md.Device.NewTexture(img)
	if err != nil {
		slog.Warn("xyz.MeshDisplay: texture not created", "mesh", md.name(), "file", md.TextureFile, "error", err)
		return
	}
	md.texture = tx
}

// Draw binds the vertex array and texture if any, draws all the
// indexes, and unbinds. Drawing before Initialize logs an error
// and does nothing.
func (md *MeshDisplay) Draw() {
	if !md.initialized {
		slog.Error("xyz.MeshDisplay: Draw called before Initialize", "mesh", md.name())
		return
	}
	if md.texture != nil {
		md.texture.Bind()
	}
	md.array.Bind()
	md.indexes.Draw()
	md.array.Unbind()
	if md.texture != nil {
		md.texture.Unbind()
	}
}

// Regenerate replaces the mesh with one from the generator. If the
// generator returns an error, the current mesh and buffers are kept
// and the error is returned. If initialized, the new mesh is uploaded
// into the existing buffers, and must have the same layout, or
// [ErrLayoutChanged] is returned; Release first to change layout.
func (md *MeshDisplay) Regenerate(gen shape.Generator) error {
	ms, err := gen.Generate()
	if err != nil {
		return fmt.Errorf("xyz.MeshDisplay %s: Regenerate: %w", md.name(), err)
	}
	if md.initialized && !md.Mesh.Layout.Equal(&ms.Layout) {
		return fmt.Errorf("xyz.MeshDisplay %s: Regenerate %s: %w", md.name(), ms.Name, ErrLayoutChanged)
	}
	md.Mesh = ms
	if md.initialized {
		md.array.Bind()
		md.upload()
		md.array.Unbind()
	}
	return nil
}

// Release releases the GPU resources, after which Initialize
// can be called again.
func (md *MeshDisplay) Release() {
	if md.texture != nil {
		md.texture.Release()
		md.texture = nil
	}
	if md.indexes != nil {
		md.indexes.Release()
		md.indexes = nil
	}
	if md.vertices != nil {
		md.vertices.Release()
		md.vertices = nil
	}
	if md.array != nil {
		md.array.Release()
		md.array = nil
	}
	md.initialized = false
}

func (md *MeshDisplay) name() string {
	if md.Mesh == nil {
		return ""
	}
	return md.Mesh.Name
}
