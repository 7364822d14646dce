// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shape

import (
	"cogentcore.org/core/math32"
	"cogentcore.org/solids/colors"
)

// Torus is a torus in the XY plane around the Z axis, centered at the
// origin. OuterRadius is the distance from the origin to the center of
// the tube, and InnerRadius is the radius of the tube.
// Rings subdivide the sweep around Z, and Sides subdivide the tube.
type Torus struct {
	InnerRadius float32
	OuterRadius float32

	Sides int
	Rings int

	Color math32.Vector4
}

// NewTorus returns a Torus with given radii and subdivisions.
func NewTorus(inner, outer float32, sides, rings int) *Torus {
	tr := &Torus{}
	tr.Defaults()
	tr.InnerRadius, tr.OuterRadius = inner, outer
	tr.Sides, tr.Rings = sides, rings
	return tr
}

func (tr *Torus) Defaults() {
	tr.InnerRadius = 0.25
	tr.OuterRadius = 0.5
	tr.Sides = 36
	tr.Rings = 36
	tr.Color = colors.Green
}

// SetColor sets the color.
func (tr *Torus) SetColor(c math32.Vector4) *Torus {
	tr.Color = c
	return tr
}

func (tr *Torus) Validate() error {
	if err := checkDim("Torus", "InnerRadius", tr.InnerRadius); err != nil {
		return err
	}
	if err := checkDim("Torus", "OuterRadius", tr.OuterRadius); err != nil {
		return err
	}
	if err := checkSegments("Torus", "Sides", tr.Sides); err != nil {
		return err
	}
	if err := checkSegments("Torus", "Rings", tr.Rings); err != nil {
		return err
	}
	return checkColor("Torus", tr.Color)
}

func (tr *Torus) Generate() (*Mesh, error) {
	if err := tr.Validate(); err != nil {
		return nil, err
	}
	nv, ni := GridSize(tr.Rings, tr.Sides)
	ms := &Mesh{Name: "torus", Layout: LayoutPNCT}
	ms.Vertices = make([]Vertex, 0, nv)
	ms.Indices = math32.NewArrayU32(0, ni)

	for i := 0; i <= tr.Rings; i++ {
		u := float32(i) / float32(tr.Rings)
		st, ct := math32.Sincos(2 * math32.Pi * u)
		for j := 0; j <= tr.Sides; j++ {
			v := float32(j) / float32(tr.Sides)
			sp, cp := math32.Sincos(2 * math32.Pi * v)
			d := tr.OuterRadius + tr.InnerRadius*cp
			pos := math32.Vec3(d*ct, d*st, tr.InnerRadius*sp)
			norm := math32.Vec3(cp*ct, cp*st, sp)
			ms.Vertices = append(ms.Vertices, Vertex{Pos: pos, Norm: norm, Color: tr.Color, Tex: math32.Vec2(u, v)})
		}
	}
	cols := tr.Sides + 1
	for i := 0; i < tr.Rings; i++ {
		for j := 0; j < tr.Sides; j++ {
			p0 := uint32(i*cols + j)
			p1 := p0 + 1
			p2 := p0 + uint32(cols)
			p3 := p2 + 1
			ms.Indices.Append(p0, p2, p1, p1, p2, p3)
		}
	}
	return ms, nil
}
