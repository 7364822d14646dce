// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scenes

import (
	"cogentcore.org/core/math32"
	"cogentcore.org/solids/colors"
	"cogentcore.org/solids/config"
	"cogentcore.org/solids/gpu"
	"cogentcore.org/solids/gpu/phong"
	"cogentcore.org/solids/shape"
	"cogentcore.org/solids/xyz"
)

// SceneThree has a teal cylinder, a pink torus that bobs up and down,
// and a yellow ellipsoid, lit by a cyan and a purple light.
type SceneThree struct { //core:no-new
	Scene

	Cylinder  *xyz.Component `set:"-"`
	Torus     *xyz.Component `set:"-"`
	Ellipsoid *xyz.Component `set:"-"`
}

// NewSceneThree returns a new SceneThree in the Constructed state.
// A nil config uses the defaults.
func NewSceneThree(cfg *config.Scene, dev gpu.Device, prog phong.Program, ld gpu.TextureLoader) (*SceneThree, error) {
	st := &SceneThree{}
	if err := st.init(st, "scene-three", cfg, dev, prog, ld); err != nil {
		return nil, err
	}
	var err error
	st.Cylinder, err = st.addObject("cylinder", shape.NewCylinder(1, 1.5, 36), math32.Vec3(-3, 0, 0),
		phong.NewMaterial(phong.Gray(0.1), colors.Teal, math32.Vec4(0.4, 0.7, 0.7, 1), 64))
	if err != nil {
		return nil, err
	}
	st.Torus, err = st.addObject("torus", shape.NewTorus(0.5, 1, 36, 36), math32.Vec3(0, 0, 0),
		phong.NewMaterial(phong.Gray(0.1), colors.Pink, math32.Vec4(0.8, 0.5, 0.6, 1), 64))
	if err != nil {
		return nil, err
	}
	st.Ellipsoid, err = st.addObject("ellipsoid", shape.NewEllipsoid(0.4, 0.6, 0.4, 36, 36), math32.Vec3(3, 0, 0),
		phong.NewMaterial(phong.Gray(0.1), colors.Yellow, math32.Vec4(0.9, 0.8, 0.4, 1), 32))
	if err != nil {
		return nil, err
	}
	if err := st.addLight("light0", colors.Cyan); err != nil {
		return nil, err
	}
	if err := st.addLight("light1", colors.Purple); err != nil {
		return nil, err
	}
	return st, nil
}

// AnimationUpdate moves the torus to the height of a full sine
// cycle over one light orbit, at the angle before this step,
// and then does the [Scene.AnimationUpdate].
func (st *SceneThree) AnimationUpdate() {
	if !st.ready() {
		return
	}
	st.Torus.Pos.Set(0, math32.Sin(math32.DegToRad(st.Angle)), 0)
	st.Scene.AnimationUpdate()
}
