// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package shape provides procedural generators for primitive solids:
// cube, cylinder, ellipsoid, pyramid and torus. Each generator is a
// parameter struct whose Generate method returns a new indexed triangle
// [Mesh], with counter-clockwise winding seen from outside the solid
// and unit length vertex normals.
package shape

import (
	"fmt"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/math32"
	"cogentcore.org/solids/colors"
)

// ErrInvalidParameter is returned (wrapped) by Generate and Validate
// for non-positive dimensions, subdivision counts below [MinSegments],
// and malformed colors.
var ErrInvalidParameter = errors.New("invalid parameter")

// MinSegments is the minimum number of sides, rings, stacks or slices.
const MinSegments = 3

// Generator is the interface satisfied by all shape parameter types.
// Generate is deterministic and does not modify the receiver, so it can
// be called any number of times.
type Generator interface {
	// Validate returns an error wrapping [ErrInvalidParameter]
	// if any parameter is out of range.
	Validate() error

	// Generate returns a new mesh for the current parameters,
	// or an error from Validate, in which case no mesh is returned.
	Generate() (*Mesh, error)
}

// Color returns the color for the given 3 (RGB) or 4 (RGBA) components
// in [0, 1], as an error wrapping [ErrInvalidParameter] otherwise.
// It is used to set the Color field of the generators from loose values.
func Color(c ...float32) (math32.Vector4, error) {
	clr, err := colors.FromFloats(c...)
	if err != nil {
		return clr, fmt.Errorf("shape: %w: %w", ErrInvalidParameter, err)
	}
	return clr, nil
}

// checkDim returns an error if the named dimension v is not > 0.
func checkDim(typ, name string, v float32) error {
	if !(v > 0) || math32.IsInf(v, 1) {
		return fmt.Errorf("shape.%s: %s = %g must be > 0: %w", typ, name, v, ErrInvalidParameter)
	}
	return nil
}

// checkSegments returns an error if the named subdivision count
// is below [MinSegments].
func checkSegments(typ, name string, n int) error {
	if n < MinSegments {
		return fmt.Errorf("shape.%s: %s = %d must be >= %d: %w", typ, name, n, MinSegments, ErrInvalidParameter)
	}
	return nil
}

func checkColor(typ string, c math32.Vector4) error {
	if err := colors.Check(c); err != nil {
		return fmt.Errorf("shape.%s: %w: %w", typ, ErrInvalidParameter, err)
	}
	return nil
}
