// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shape

import (
	"fmt"

	"cogentcore.org/core/math32"
	"cogentcore.org/solids/colors"
)

// Faces of a [Cube], in generation order.
const (
	FaceBack = iota
	FaceFront
	FaceLeft
	FaceRight
	FaceTop
	FaceBottom

	NumFaces
)

// Cube is a rectangular cuboid centered at the origin, with
// Length along X, Width along Y and Height along Z.
// Each face has its own 6 vertices with a flat normal, so the mesh
// has 36 vertices and the identity index map.
type Cube struct {
	Length float32
	Width  float32
	Height float32

	// Color is the color of all faces, unless FaceColors is set.
	Color math32.Vector4

	// FaceColors optionally sets a color per face, in the order
	// back, front, left, right, top, bottom. It must be empty or
	// have exactly [NumFaces] entries.
	FaceColors []math32.Vector4
}

// NewCube returns a Cube with given size.
func NewCube(length, width, height float32) *Cube {
	cb := &Cube{}
	cb.Defaults()
	cb.Length, cb.Width, cb.Height = length, width, height
	return cb
}

func (cb *Cube) Defaults() {
	cb.Length, cb.Width, cb.Height = 1, 1, 1
	cb.Color = colors.Blue
	cb.FaceColors = nil
}

// SetColor sets the color of all faces.
func (cb *Cube) SetColor(c math32.Vector4) *Cube {
	cb.Color = c
	return cb
}

// CubeClassicFront returns face colors with the front face in
// green-yellow and all others in the given color, which is the
// classic look of the textured cube.
func CubeClassicFront(c math32.Vector4) []math32.Vector4 {
	fc := make([]math32.Vector4, NumFaces)
	for i := range fc {
		fc[i] = c
	}
	fc[FaceFront] = colors.GreenYellow
	return fc
}

func (cb *Cube) Validate() error {
	if err := checkDim("Cube", "Length", cb.Length); err != nil {
		return err
	}
	if err := checkDim("Cube", "Width", cb.Width); err != nil {
		return err
	}
	if err := checkDim("Cube", "Height", cb.Height); err != nil {
		return err
	}
	if err := checkColor("Cube", cb.Color); err != nil {
		return err
	}
	if n := len(cb.FaceColors); n != 0 && n != NumFaces {
		return fmt.Errorf("shape.Cube: %d FaceColors, need 0 or %d: %w", n, NumFaces, ErrInvalidParameter)
	}
	for _, fc := range cb.FaceColors {
		if err := checkColor("Cube", fc); err != nil {
			return err
		}
	}
	return nil
}

// faceColor returns the color for given face.
func (cb *Cube) faceColor(face int) math32.Vector4 {
	if len(cb.FaceColors) == NumFaces {
		return cb.FaceColors[face]
	}
	return cb.Color
}

func (cb *Cube) Generate() (*Mesh, error) {
	if err := cb.Validate(); err != nil {
		return nil, err
	}
	hl, hw, hh := cb.Length/2, cb.Width/2, cb.Height/2
	// corners of each face counter-clockwise seen from outside,
	// starting at texture coordinate (0, 0)
	faces := [NumFaces]struct {
		norm    math32.Vector3
		corners [4]math32.Vector3
	}{
		FaceBack: {math32.Vec3(0, 0, -1), [4]math32.Vector3{
			math32.Vec3(hl, -hw, -hh), math32.Vec3(-hl, -hw, -hh), math32.Vec3(-hl, hw, -hh), math32.Vec3(hl, hw, -hh)}},
		FaceFront: {math32.Vec3(0, 0, 1), [4]math32.Vector3{
			math32.Vec3(-hl, -hw, hh), math32.Vec3(hl, -hw, hh), math32.Vec3(hl, hw, hh), math32.Vec3(-hl, hw, hh)}},
		FaceLeft: {math32.Vec3(-1, 0, 0), [4]math32.Vector3{
			math32.Vec3(-hl, -hw, -hh), math32.Vec3(-hl, -hw, hh), math32.Vec3(-hl, hw, hh), math32.Vec3(-hl, hw, -hh)}},
		FaceRight: {math32.Vec3(1, 0, 0), [4]math32.Vector3{
			math32.Vec3(hl, -hw, hh), math32.Vec3(hl, -hw, -hh), math32.Vec3(hl, hw, -hh), math32.Vec3(hl, hw, hh)}},
		FaceTop: {math32.Vec3(0, 1, 0), [4]math32.Vector3{
			math32.Vec3(-hl, hw, hh), math32.Vec3(hl, hw, hh), math32.Vec3(hl, hw, -hh), math32.Vec3(-hl, hw, -hh)}},
		FaceBottom: {math32.Vec3(0, -1, 0), [4]math32.Vector3{
			math32.Vec3(-hl, -hw, -hh), math32.Vec3(hl, -hw, -hh), math32.Vec3(hl, -hw, hh), math32.Vec3(-hl, -hw, hh)}},
	}
	tex := [4]math32.Vector2{math32.Vec2(0, 0), math32.Vec2(1, 0), math32.Vec2(1, 1), math32.Vec2(0, 1)}
	// two triangles per face
	quad := [6]int{0, 1, 2, 0, 2, 3}

	ms := &Mesh{Name: "cube", Layout: LayoutPNCT}
	ms.Vertices = make([]Vertex, 0, NumFaces*6)
	ms.Indices = math32.NewArrayU32(0, NumFaces*6)
	for fi, f := range faces {
		clr := cb.faceColor(fi)
		for _, ci := range quad {
			ms.Indices.Append(uint32(len(ms.Vertices)))
			ms.Vertices = append(ms.Vertices, Vertex{Pos: f.corners[ci], Norm: f.norm, Color: clr, Tex: tex[ci]})
		}
	}
	return ms, nil
}
