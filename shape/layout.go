// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shape

import "slices"

// Names of the vertex attributes, which are the shading-stage input
// names looked up with Program.AttribLocation.
const (
	AttribPos     = "vertexPos"
	AttribNormal  = "vertexNormal"
	AttribColor   = "vertexColor"
	AttribTexture = "vertexTexture"
)

// Attrib describes one vertex attribute within an interleaved vertex,
// with Offset and Size in floats.
type Attrib struct {
	Name   string
	Offset int
	Size   int
}

// Layout describes how [Vertex] values are interleaved into a flat
// float buffer: Stride is the number of floats per vertex.
type Layout struct {
	Stride  int
	Attribs []Attrib
}

var (
	// LayoutPNCT is position(3), normal(3), color(4), texture coordinate(2).
	LayoutPNCT = Layout{
		Stride: 12,
		Attribs: []Attrib{
			{AttribPos, 0, 3},
			{AttribNormal, 3, 3},
			{AttribColor, 6, 4},
			{AttribTexture, 10, 2},
		},
	}

	// LayoutPNC is position(3), normal(3), color(4), with no texture coordinates.
	LayoutPNC = Layout{
		Stride: 10,
		Attribs: []Attrib{
			{AttribPos, 0, 3},
			{AttribNormal, 3, 3},
			{AttribColor, 6, 4},
		},
	}
)

// Attrib returns the attribute with the given name, and false if the
// layout does not have it.
func (ly *Layout) Attrib(name string) (Attrib, bool) {
	for _, a := range ly.Attribs {
		if a.Name == name {
			return a, true
		}
	}
	return Attrib{}, false
}

// HasTexture returns whether the layout has texture coordinates.
func (ly *Layout) HasTexture() bool {
	_, ok := ly.Attrib(AttribTexture)
	return ok
}

// Equal returns whether the layouts have the same stride and attributes.
func (ly *Layout) Equal(o *Layout) bool {
	return ly.Stride == o.Stride && slices.Equal(ly.Attribs, o.Attribs)
}
