// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shape

import (
	"fmt"

	"cogentcore.org/core/base/ordmap"
)

// kinds are the generator constructors by kind name, in listing order.
var kinds = newKinds()

func newKinds() *ordmap.Map[string, func() Generator] {
	km := ordmap.New[string, func() Generator]()
	km.Add("cube", func() Generator { return NewCube(1, 1, 1) })
	km.Add("cylinder", func() Generator { return NewCylinder(0.5, 1, 36) })
	km.Add("ellipsoid", func() Generator { return NewEllipsoid(0.6, 0.3, 0.9, 18, 36) })
	km.Add("pyramid", func() Generator { return NewPyramid(1, 1.5) })
	km.Add("torus", func() Generator { return NewTorus(0.25, 0.5, 36, 36) })
	return km
}

// New returns a new generator with default parameters for the given
// kind of shape, which is one of [Kinds].
func New(kind string) (Generator, error) {
	fn, ok := kinds.ValueByKeyTry(kind)
	if !ok {
		return nil, fmt.Errorf("shape.New: unknown kind %q, must be one of %v", kind, Kinds())
	}
	return fn(), nil
}

// Kinds returns the names of the shapes [New] can make.
func Kinds() []string {
	return kinds.Keys()
}
