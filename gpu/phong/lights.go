// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package phong

import "cogentcore.org/core/math32"

// Light is a point light with a position in world coordinates.
type Light struct {
	// Name identifies the light in logs and scene lookups.
	Name string

	// Pos is the position in world coordinates.
	Pos math32.Vector3

	// Color is the RGBA color of the light at full intensity.
	Color math32.Vector4
}

// NewLight returns a new light with given name, color and position.
func NewLight(name string, clr math32.Vector4, pos math32.Vector3) *Light {
	return &Light{Name: name, Pos: pos, Color: clr}
}

// SetPos sets the position, returning the light for chaining.
func (lt *Light) SetPos(pos math32.Vector3) *Light {
	lt.Pos = pos
	return lt
}
