// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package phong

import "cogentcore.org/core/math32"

// Material has the Phong reflectance parameters of a surface.
type Material struct {
	// Ambient is the color reflected from ambient light.
	Ambient math32.Vector4

	// Diffuse is the main surface color, reflected in proportion to
	// the angle between the surface normal and the light.
	Diffuse math32.Vector4

	// Specular is the color of the shiny highlight.
	Specular math32.Vector4

	// Shininess is the specular exponent: how focally the surface
	// shines back light, where 1 is very broad and higher values
	// (typically max of 128) give a smaller more focal highlight.
	Shininess float32 `default:"32"`
}

// NewMaterial returns a new material with given ambient, diffuse
// and specular colors and shininess.
func NewMaterial(ambient, diffuse, specular math32.Vector4, shininess float32) *Material {
	return &Material{Ambient: ambient, Diffuse: diffuse, Specular: specular, Shininess: shininess}
}

// Defaults sets a dim gray ambient, white diffuse and half specular
// material with shininess 32.
func (mt *Material) Defaults() {
	mt.Ambient.Set(0.1, 0.1, 0.1, 1)
	mt.Diffuse.Set(1, 1, 1, 1)
	mt.Specular.Set(0.5, 0.5, 0.5, 1)
	mt.Shininess = 32
}

// Gray returns an opaque gray color with all of RGB = v, which is
// how uniform material components are usually given.
func Gray(v float32) math32.Vector4 {
	return math32.Vec4(v, v, v, 1)
}
