// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package phong defines the Phong shading stage contract used when
// rendering a scene: a linked shader [Program] with lights, a material,
// a model matrix, and a [Routing] tag selecting the shading path.
package phong

//go:generate core generate

import (
	"cogentcore.org/core/math32"
)

// MaxLights is upper limit on number of lights that a Program supports.
const MaxLights = 8

// Program is a linked shader program, configured externally, with
// the uniform inputs needed for Phong rendering.
type Program interface {
	// Use makes this the active program.
	Use()

	// AttribLocation returns the input slot for the named vertex
	// attribute, or -1 if the program has no such input.
	AttribLocation(name string) int

	// SetLight sets the light at index i, which is < [MaxLights],
	// and turns it on.
	SetLight(i int, lt *Light)

	// ClearAllLights turns all lights off.
	ClearAllLights()

	// SetModelMatrix sets the model (local to world) matrix for the
	// next draw.
	SetModelMatrix(mat *math32.Matrix4)

	// SetMaterial sets the material for the next draw.
	SetMaterial(mat *Material)

	// SetRouting sets the shading path for the next draw.
	SetRouting(rt Routing)
}

// Routing selects the shading path used for a draw. Its lowercase
// name is the value of the renderingRouting shader uniform.
type Routing int32 //enums:enum -trim-prefix Routing -transform lower

const (
	// RoutingVertex renders the flat interpolated vertex colors.
	RoutingVertex Routing = iota

	// RoutingLighting renders the material lit by the lights.
	RoutingLighting

	// RoutingTexture renders the bound texture lit by the lights.
	RoutingTexture

	// RoutingNormal renders the normals as colors.
	RoutingNormal
)
