// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shape

import (
	"cogentcore.org/core/math32"
	"cogentcore.org/solids/colors"
)

// Ellipsoid is an ellipsoid centered at the origin with given radii,
// with the poles on the Y axis. Stacks subdivide latitude from the +Y
// pole (stack 0) to the -Y pole, and Slices subdivide longitude.
type Ellipsoid struct {
	RadiusX float32
	RadiusY float32
	RadiusZ float32

	Stacks int
	Slices int

	Color math32.Vector4
}

// NewEllipsoid returns an Ellipsoid with given radii and subdivisions.
func NewEllipsoid(rx, ry, rz float32, stacks, slices int) *Ellipsoid {
	el := &Ellipsoid{}
	el.Defaults()
	el.RadiusX, el.RadiusY, el.RadiusZ = rx, ry, rz
	el.Stacks, el.Slices = stacks, slices
	return el
}

// NewSphere returns a sphere as an Ellipsoid with equal radii.
func NewSphere(radius float32, stacks, slices int) *Ellipsoid {
	return NewEllipsoid(radius, radius, radius, stacks, slices)
}

func (el *Ellipsoid) Defaults() {
	el.RadiusX, el.RadiusY, el.RadiusZ = 0.6, 0.3, 0.9
	el.Stacks = 18
	el.Slices = 36
	el.Color = colors.SoftBlue
}

// SetColor sets the color.
func (el *Ellipsoid) SetColor(c math32.Vector4) *Ellipsoid {
	el.Color = c
	return el
}

func (el *Ellipsoid) Validate() error {
	if err := checkDim("Ellipsoid", "RadiusX", el.RadiusX); err != nil {
		return err
	}
	if err := checkDim("Ellipsoid", "RadiusY", el.RadiusY); err != nil {
		return err
	}
	if err := checkDim("Ellipsoid", "RadiusZ", el.RadiusZ); err != nil {
		return err
	}
	if err := checkSegments("Ellipsoid", "Stacks", el.Stacks); err != nil {
		return err
	}
	if err := checkSegments("Ellipsoid", "Slices", el.Slices); err != nil {
		return err
	}
	return checkColor("Ellipsoid", el.Color)
}

// GridSize returns the number of vertices and indexes for a grid
// parametrized surface (ellipsoid, torus) with given subdivisions.
func GridSize(rows, cols int) (numVertex, numIndex int) {
	return (rows + 1) * (cols + 1), 6 * rows * cols
}

// Generate returns the ellipsoid mesh. Each normal is the normalized
// gradient of the surface at the vertex, so for unequal radii it is
// not the direction of the position scaled by the inverse radii
// (x/rx, y/ry, z/rz), but it is perpendicular to the surface.
func (el *Ellipsoid) Generate() (*Mesh, error) {
	if err := el.Validate(); err != nil {
		return nil, err
	}
	nv, ni := GridSize(el.Stacks, el.Slices)
	ms := &Mesh{Name: "ellipsoid", Layout: LayoutPNCT}
	ms.Vertices = make([]Vertex, 0, nv)
	ms.Indices = math32.NewArrayU32(0, ni)

	// the normal is the gradient of the implicit surface
	// (x/rx)² + (y/ry)² + (z/rz)² = 1, which is perpendicular to the
	// surface for any radii; the scaled position (x/rx, y/ry, z/rz)
	// only matches it for a sphere
	grad := math32.Vec3(1/(el.RadiusX*el.RadiusX), 1/(el.RadiusY*el.RadiusY), 1/(el.RadiusZ*el.RadiusZ))
	for i := 0; i <= el.Stacks; i++ {
		v := float32(i) / float32(el.Stacks)
		sp, cp := math32.Sincos(math32.Pi * v)
		for j := 0; j <= el.Slices; j++ {
			u := float32(j) / float32(el.Slices)
			st, ct := math32.Sincos(2 * math32.Pi * u)
			pos := math32.Vec3(el.RadiusX*sp*ct, el.RadiusY*cp, el.RadiusZ*sp*st)
			ms.Vertices = append(ms.Vertices, Vertex{Pos: pos, Norm: pos.Mul(grad).Normal(), Color: el.Color, Tex: math32.Vec2(u, v)})
		}
	}
	cols := el.Slices + 1
	for i := 0; i < el.Stacks; i++ {
		for j := 0; j < el.Slices; j++ {
			p0 := uint32(i*cols + j)
			p1 := p0 + 1
			p2 := p0 + uint32(cols)
			p3 := p2 + 1
			ms.Indices.Append(p0, p1, p2, p1, p3, p2)
		}
	}
	return ms, nil
}
