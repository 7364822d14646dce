// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

import (
	"cogentcore.org/core/math32"
	"cogentcore.org/core/tree"
)

// Animator is implemented by nodes that change over time.
// AnimationUpdate advances one fixed logical step; it does not
// depend on the wall clock.
type Animator interface {
	AnimationUpdate()
}

// UpdateChildren calls AnimationUpdate on each direct child of the
// node that is an [Animator]. Animators with children of their own
// call this at the end of their AnimationUpdate to propagate.
func UpdateChildren(n tree.Node) {
	for _, c := range n.AsTree().Children {
		if an, ok := c.(Animator); ok {
			an.AnimationUpdate()
		}
	}
}

// Spinner is a [Component] that rotates about one of its axes
// by a fixed number of degrees per animation step.
type Spinner struct {
	Component

	// Axis is the axis to rotate about.
	Axis math32.Dims

	// Step is the rotation per animation step, in degrees.
	Step float32

	// Angle is the current rotation angle in degrees, in [0, 360).
	Angle float32 `set:"-"`
}

// AnimationUpdate advances the angle by Step, modulo 360,
// and updates the children.
func (sp *Spinner) AnimationUpdate() {
	sp.Angle = math32.Mod(sp.Angle+sp.Step, 360)
	if sp.Angle < 0 {
		sp.Angle += 360
	}
	sp.Rot.SetDim(sp.Axis, sp.Angle)
	UpdateChildren(sp)
}
