// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shape

import (
	"fmt"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/base/slicesx"
	"cogentcore.org/core/math32"
)

// Vertex is one mesh vertex.
type Vertex struct {
	// Pos is the position in local coordinates.
	Pos math32.Vector3

	// Norm is the unit length surface normal.
	Norm math32.Vector3

	// Color is the RGBA vertex color.
	Color math32.Vector4

	// Tex is the texture coordinate, if the layout has one.
	Tex math32.Vector2
}

// Mesh is an indexed triangle mesh produced by a [Generator].
// Every index is < len(Vertices), and each consecutive index triple
// is a triangle wound counter-clockwise when seen from the side its
// vertex normals point to.
type Mesh struct {
	// Name is the kind of shape that generated the mesh.
	Name string

	Vertices []Vertex

	Indices math32.ArrayU32

	// Layout is how Vertices are interleaved for upload.
	Layout Layout
}

// NumVertex returns the number of vertices.
func (ms *Mesh) NumVertex() int {
	return len(ms.Vertices)
}

// NumIndex returns the number of indexes, which is 3 per triangle.
func (ms *Mesh) NumIndex() int {
	return len(ms.Indices)
}

// Interleave writes the vertices into buf according to the Layout,
// reusing its capacity, and returns it.
func (ms *Mesh) Interleave(buf math32.ArrayF32) math32.ArrayF32 {
	stride := ms.Layout.Stride
	buf = slicesx.SetLength(buf, len(ms.Vertices)*stride)
	for i := range ms.Vertices {
		v := &ms.Vertices[i]
		off := i * stride
		for _, a := range ms.Layout.Attribs {
			switch a.Name {
			case AttribPos:
				v.Pos.ToSlice(buf, off+a.Offset)
			case AttribNormal:
				v.Norm.ToSlice(buf, off+a.Offset)
			case AttribColor:
				v.Color.ToSlice(buf, off+a.Offset)
			case AttribTexture:
				v.Tex.ToSlice(buf, off+a.Offset)
			}
		}
	}
	return buf
}

// BBox returns the bounding box of the vertex positions.
func (ms *Mesh) BBox() math32.Box3 {
	bb := math32.B3Empty()
	for i := range ms.Vertices {
		bb.ExpandByPoint(ms.Vertices[i].Pos)
	}
	return bb
}

// Triangle returns the positions of the triangle with the given index,
// from 0 to NumIndex/3.
func (ms *Mesh) Triangle(tri int) math32.Triangle {
	i := tri * 3
	return math32.NewTriangle(ms.Vertices[ms.Indices[i]].Pos, ms.Vertices[ms.Indices[i+1]].Pos, ms.Vertices[ms.Indices[i+2]].Pos)
}

// Validate checks the structural invariants of the mesh: indexes in
// range, grouped in triples, and unit length normals.
func (ms *Mesh) Validate() error {
	var errs []error
	if len(ms.Indices)%3 != 0 {
		errs = append(errs, fmt.Errorf("shape.Mesh %s: %d indexes is not a multiple of 3", ms.Name, len(ms.Indices)))
	}
	nv := uint32(len(ms.Vertices))
	for i, ix := range ms.Indices {
		if ix >= nv {
			errs = append(errs, fmt.Errorf("shape.Mesh %s: index %d = %d out of range for %d vertices", ms.Name, i, ix, nv))
			break
		}
	}
	for i := range ms.Vertices {
		if l := ms.Vertices[i].Norm.Length(); math32.Abs(l-1) > 1.0e-5 {
			errs = append(errs, fmt.Errorf("shape.Mesh %s: vertex %d normal length %g is not 1", ms.Name, i, l))
			break
		}
	}
	return errors.Join(errs...)
}
