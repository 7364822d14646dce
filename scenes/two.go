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

// SceneTwo has a red cube, a green cylinder and a blue sphere in a row,
// lit by a soft red and a soft blue light. The cube has the
// configured texture, if any.
type SceneTwo struct { //core:no-new
	Scene

	Cube      *xyz.Component `set:"-"`
	Cylinder  *xyz.Component `set:"-"`
	Ellipsoid *xyz.Component `set:"-"`
}

// NewSceneTwo returns a new SceneTwo in the Constructed state.
// A nil config uses the defaults, and a nil loader uses the
// operating system filesystem.
func NewSceneTwo(cfg *config.Scene, dev gpu.Device, prog phong.Program, ld gpu.TextureLoader) (*SceneTwo, error) {
	st := &SceneTwo{}
	if err := st.init(st, "scene-two", cfg, dev, prog, ld); err != nil {
		return nil, err
	}
	var err error
	st.Cube, err = st.addObject("cube", shape.NewCube(1, 1, 1), math32.Vec3(-2, 0, 0),
		phong.NewMaterial(phong.Gray(0.1), math32.Vec4(0.8, 0.2, 0.2, 1), phong.Gray(0.5), 64))
	if err != nil {
		return nil, err
	}
	if tf := st.Config.Texture; tf != "" {
		st.Cube.Display.(*xyz.MeshDisplay).SetTexture(tf, ld)
		st.Cube.SetRouting(phong.RoutingTexture)
	}
	st.Cylinder, err = st.addObject("cylinder", shape.NewCylinder(0.5, 1, 36), math32.Vec3(0, 0, 0),
		phong.NewMaterial(phong.Gray(0.1), math32.Vec4(0.2, 0.8, 0.2, 1), phong.Gray(0.7), 64))
	if err != nil {
		return nil, err
	}
	st.Ellipsoid, err = st.addObject("ellipsoid", shape.NewSphere(0.4, 36, 36), math32.Vec3(2, 0, 0),
		phong.NewMaterial(phong.Gray(0.1), math32.Vec4(0.2, 0.2, 0.8, 1), phong.Gray(0.6), 32))
	if err != nil {
		return nil, err
	}
	if err := st.addLight("light0", colors.SoftRed); err != nil {
		return nil, err
	}
	if err := st.addLight("light1", colors.SoftBlue); err != nil {
		return nil, err
	}
	return st, nil
}
