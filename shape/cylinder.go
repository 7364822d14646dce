// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shape

import (
	"cogentcore.org/core/math32"
	"cogentcore.org/solids/colors"
)

// Cylinder is a closed cylinder along the Z axis, centered at the origin.
//
// Vertex i in [0, Sides] of the bottom ring (z = -Height/2) is at index i,
// and the matching top ring vertex at index i+Sides+1. The vertex at
// i = Sides repeats i = 0 to close the texture seam; the side quads wrap
// with i+1 mod Sides so no zero-area triangles are made. The bottom and
// top cap centers follow the rings, at 2(Sides+1) and 2(Sides+1)+1.
type Cylinder struct {
	Radius float32
	Height float32

	// Sides is the number of segments around the circumference.
	Sides int

	Color math32.Vector4
}

// NewCylinder returns a Cylinder with given radius, height and sides.
func NewCylinder(radius, height float32, sides int) *Cylinder {
	cy := &Cylinder{}
	cy.Defaults()
	cy.Radius, cy.Height, cy.Sides = radius, height, sides
	return cy
}

func (cy *Cylinder) Defaults() {
	cy.Radius = 0.5
	cy.Height = 1
	cy.Sides = 36
	cy.Color = colors.Blue
}

// SetColor sets the color.
func (cy *Cylinder) SetColor(c math32.Vector4) *Cylinder {
	cy.Color = c
	return cy
}

func (cy *Cylinder) Validate() error {
	if err := checkDim("Cylinder", "Radius", cy.Radius); err != nil {
		return err
	}
	if err := checkDim("Cylinder", "Height", cy.Height); err != nil {
		return err
	}
	if err := checkSegments("Cylinder", "Sides", cy.Sides); err != nil {
		return err
	}
	return checkColor("Cylinder", cy.Color)
}

// CylinderSize returns the number of vertices and indexes
// for a cylinder with given number of sides.
func CylinderSize(sides int) (numVertex, numIndex int) {
	return 2*(sides+1) + 2, 12 * sides
}

func (cy *Cylinder) Generate() (*Mesh, error) {
	if err := cy.Validate(); err != nil {
		return nil, err
	}
	n := cy.Sides
	nv, ni := CylinderSize(n)
	hh := cy.Height / 2
	r := cy.Radius

	ms := &Mesh{Name: "cylinder", Layout: LayoutPNCT}
	ms.Vertices = make([]Vertex, nv)
	ms.Indices = math32.NewArrayU32(0, ni)
	top := n + 1
	for i := 0; i <= n; i++ {
		u := float32(i) / float32(n)
		s, c := math32.Sincos(2 * math32.Pi * u)
		norm := math32.Vec3(c, s, 0)
		ms.Vertices[i] = Vertex{Pos: math32.Vec3(r*c, r*s, -hh), Norm: norm, Color: cy.Color, Tex: math32.Vec2(u, 0)}
		ms.Vertices[top+i] = Vertex{Pos: math32.Vec3(r*c, r*s, hh), Norm: norm, Color: cy.Color, Tex: math32.Vec2(u, 1)}
	}
	bc := 2 * (n + 1)
	tc := bc + 1
	center := math32.Vec2(0.5, 0.5)
	ms.Vertices[bc] = Vertex{Pos: math32.Vec3(0, 0, -hh), Norm: math32.Vec3(0, 0, -1), Color: cy.Color, Tex: center}
	ms.Vertices[tc] = Vertex{Pos: math32.Vec3(0, 0, hh), Norm: math32.Vec3(0, 0, 1), Color: cy.Color, Tex: center}

	for i := 0; i < n; i++ {
		j := (i + 1) % n
		b0, b1 := uint32(i), uint32(j)
		t0, t1 := uint32(top+i), uint32(top+j)
		ms.Indices.Append(b0, b1, t0, b1, t1, t0)
		ms.Indices.Append(uint32(bc), b1, b0)
		ms.Indices.Append(uint32(tc), t0, t1)
	}
	return ms, nil
}
