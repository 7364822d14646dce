// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shape

import (
	"cogentcore.org/core/math32"
	"cogentcore.org/solids/colors"
)

// Pyramid is a square based pyramid with the base centered on the
// origin in the y = 0 plane and the apex at y = Height.
// The 4 base corners (normal -Y) are shared by the base and side
// triangles; the apex is stored once per side face, carrying the
// flat normal of that face. It has no texture coordinates.
type Pyramid struct {
	BaseSize float32
	Height   float32

	Color math32.Vector4
}

// NewPyramid returns a Pyramid with given base size and height.
func NewPyramid(base, height float32) *Pyramid {
	py := &Pyramid{}
	py.Defaults()
	py.BaseSize, py.Height = base, height
	return py
}

func (py *Pyramid) Defaults() {
	py.BaseSize = 1
	py.Height = 1.5
	py.Color = colors.SoftBlue
}

// SetColor sets the color.
func (py *Pyramid) SetColor(c math32.Vector4) *Pyramid {
	py.Color = c
	return py
}

func (py *Pyramid) Validate() error {
	if err := checkDim("Pyramid", "BaseSize", py.BaseSize); err != nil {
		return err
	}
	if err := checkDim("Pyramid", "Height", py.Height); err != nil {
		return err
	}
	return checkColor("Pyramid", py.Color)
}

func (py *Pyramid) Generate() (*Mesh, error) {
	if err := py.Validate(); err != nil {
		return nil, err
	}
	hb := py.BaseSize / 2
	base := [4]math32.Vector3{
		math32.Vec3(-hb, 0, -hb),
		math32.Vec3(hb, 0, -hb),
		math32.Vec3(hb, 0, hb),
		math32.Vec3(-hb, 0, hb),
	}
	apex := math32.Vec3(0, py.Height, 0)
	down := math32.Vec3(0, -1, 0)

	ms := &Mesh{Name: "pyramid", Layout: LayoutPNC}
	ms.Vertices = make([]Vertex, 0, 8)
	for _, b := range base {
		ms.Vertices = append(ms.Vertices, Vertex{Pos: b, Norm: down, Color: py.Color})
	}
	ms.Indices = math32.NewArrayU32(0, 18)
	ms.Indices.Append(0, 1, 2, 0, 2, 3)
	// side faces front (-Z), right (+X), back (+Z), left (-X),
	// as base edges traversed so the apex closes them counter-clockwise
	sides := [4][2]uint32{{1, 0}, {2, 1}, {3, 2}, {0, 3}}
	for _, sd := range sides {
		ai := uint32(len(ms.Vertices))
		norm := math32.Normal(base[sd[0]], base[sd[1]], apex)
		ms.Vertices = append(ms.Vertices, Vertex{Pos: apex, Norm: norm, Color: py.Color})
		ms.Indices.Append(sd[0], sd[1], ai)
	}
	return ms, nil
}
