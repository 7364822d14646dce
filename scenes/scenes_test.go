// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scenes

import (
	"bytes"
	"errors"
	"image"
	"image/png"
	"testing"
	"testing/fstest"

	"cogentcore.org/core/math32"
	"cogentcore.org/solids/colors"
	"cogentcore.org/solids/config"
	"cogentcore.org/solids/gpu/phong"
	"cogentcore.org/solids/gpu/recorder"
	"cogentcore.org/solids/texture"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertPos(t *testing.T, want, got math32.Vector3, msgs ...any) {
	t.Helper()
	assert.InDelta(t, 0, want.DistanceTo(got), 1e-5, "want %v got %v %v", want, got, msgs)
}

func TestLightPos(t *testing.T) {
	tr := config.New().LightTransform()
	assertPos(t, math32.Vec3(3, 2, 0), LightPos(3, 0, tr))
	assertPos(t, math32.Vec3(0, 2, 3), LightPos(3, 90, tr))
	assertPos(t, math32.Vec3(-3, 2, 0), LightPos(3, 180, tr))
	assertPos(t, math32.Vec3(0, 0, -1), LightPos(1, 270, math32.Identity4()))
}

func TestSceneTwo(t *testing.T) {
	dv := recorder.New()
	st, err := NewSceneTwo(nil, dv, dv.Program, nil)
	require.NoError(t, err)
	assert.Equal(t, 3, st.NumChildren())
	assert.Equal(t, 3, st.Objects.NumChildren())
	require.Equal(t, 2, st.Lights.Len())
	require.Len(t, st.Markers, 2)
	assert.Equal(t, "scene-two", st.Name)
	assert.Same(t, st.Cube, st.FindPath("objects/cube"))
	assert.Same(t, st.Markers[1], st.ChildByName("light1"))
	assert.Same(t, st, st.Objects.Parent)

	l0, l1 := st.Light("light0"), st.Light("light1")
	require.NotNil(t, l0)
	require.NotNil(t, l1)
	assert.Nil(t, st.Light("light2"))
	assert.Equal(t, colors.SoftRed, l0.Color)
	assert.Equal(t, colors.SoftBlue, l1.Color)
	assertPos(t, math32.Vec3(3, 2, 0), l0.Pos)
	assertPos(t, math32.Vec3(-3, 2, 0), l1.Pos)
	assert.Equal(t, l0.Pos, st.Markers[0].Pos)
	assert.Equal(t, phong.RoutingVertex, st.Markers[0].Routing)

	// not valid before Initialize
	st.AnimationUpdate()
	assert.Equal(t, float32(0), st.Angle)
	assert.Equal(t, 0, dv.Program.NumLightsOn())

	require.NoError(t, st.Initialize())
	assert.True(t, st.IsInitialized())
	assert.Equal(t, 2, dv.Program.NumLightsOn())
	assert.Equal(t, *l0, dv.Program.Lights[0])
	assert.Equal(t, *l1, dv.Program.Lights[1])
	live := dv.Live()

	require.NoError(t, st.Initialize())
	assert.Equal(t, 2, dv.Program.NumLightsOn())
	assert.Equal(t, live, dv.Live())

	st.Render()
	require.NoError(t, dv.Err())
	require.Len(t, dv.Draws, 5)
	cube := dv.Draws[0]
	assertPos(t, math32.Vec3(-2, 0, 0), cube.Model.Pos())
	assert.Equal(t, phong.RoutingLighting, cube.Routing)
	assert.Equal(t, float32(64), cube.Material.Shininess)
	assert.Equal(t, 0, cube.Texture)
	assert.Equal(t, 36, cube.NumIndex)
	assertPos(t, math32.Vec3(2, 0, 0), dv.Draws[2].Model.Pos())
	marker := dv.Draws[3]
	assert.Equal(t, phong.RoutingVertex, marker.Routing)
	assertPos(t, l0.Pos, marker.Model.Pos())
	assert.Equal(t, 0, dv.BoundVertexArray())

	st.Release()
	assert.Equal(t, 0, dv.Live())
}

func TestAnimationUpdate(t *testing.T) {
	dv := recorder.New()
	st, err := NewSceneTwo(nil, dv, dv.Program, nil)
	require.NoError(t, err)
	require.NoError(t, st.Initialize())

	for range 10 {
		st.AnimationUpdate()
	}
	assert.Equal(t, float32(5), st.Angle)
	tr := st.Config.LightTransform()
	want0 := LightPos(3, 5, tr)
	want1 := LightPos(3, 185, tr)
	assertPos(t, want0, st.Light("light0").Pos)
	assertPos(t, want1, st.Light("light1").Pos)
	assertPos(t, want0, st.Markers[0].Pos)
	assertPos(t, want1, st.Markers[1].Pos)
	assertPos(t, want0, dv.Program.Lights[0].Pos)
	assertPos(t, want1, dv.Program.Lights[1].Pos)

	for range 720 {
		st.AnimationUpdate()
	}
	assert.Equal(t, float32(5), st.Angle)
	assert.Equal(t, 2, dv.Program.NumLightsOn())
	assertPos(t, math32.Vec3(-2, 0, 0), st.Cube.WorldPos())
}

func TestSceneThree(t *testing.T) {
	dv := recorder.New()
	st, err := NewSceneThree(nil, dv, dv.Program, nil)
	require.NoError(t, err)
	assert.Equal(t, colors.Cyan, st.Light("light0").Color)
	assert.Equal(t, colors.Purple, st.Light("light1").Color)
	assert.Equal(t, colors.Teal, st.Cylinder.Material.Diffuse)
	assert.Equal(t, colors.Pink, st.Torus.Material.Diffuse)

	st.AnimationUpdate()
	assert.Equal(t, math32.Vector3{}, st.Torus.Pos, "not initialized")

	require.NoError(t, st.Initialize())
	for range 200 {
		before := st.Angle
		st.AnimationUpdate()
		assert.InDelta(t, math32.Sin(math32.DegToRad(before)), st.Torus.Pos.Y, 1e-6)
		assert.Equal(t, float32(0), st.Torus.Pos.X)
	}
	assert.Equal(t, float32(100), st.Angle)

	st.Render()
	require.NoError(t, dv.Err())
	require.Len(t, dv.Draws, 5)
	assertPos(t, st.Torus.Pos, dv.Draws[1].Model.Pos())
}

func TestNew(t *testing.T) {
	dv := recorder.New()
	cfg := config.New()
	cfg.Scene = config.SceneThree
	sc, err := New(cfg, dv, dv.Program, nil)
	require.NoError(t, err)
	assert.IsType(t, &SceneThree{}, sc)
	assert.Same(t, cfg, sc.AsScene().Config)

	sc, err = New(nil, dv, dv.Program, nil)
	require.NoError(t, err)
	assert.IsType(t, &SceneTwo{}, sc)

	cfg = config.New()
	cfg.Radius = 0
	_, err = New(cfg, dv, dv.Program, nil)
	assert.True(t, errors.Is(err, config.ErrInvalidConfig))

	cfg = config.New()
	cfg.Scene = "four"
	_, err = New(cfg, dv, dv.Program, nil)
	assert.True(t, errors.Is(err, config.ErrInvalidConfig))
}

func TestConfig(t *testing.T) {
	dv := recorder.New()
	cfg := config.New()
	cfg.Radius = 1
	cfg.Height = 0
	cfg.Phases = []float32{90}
	cfg.LightColors = []string{"green"}
	cfg.Spin = 10
	st, err := NewSceneTwo(cfg, dv, dv.Program, nil)
	require.NoError(t, err)
	assertPos(t, math32.Vec3(0, 0, 1), st.Light("light0").Pos)
	assertPos(t, math32.Vec3(1, 0, 0), st.Light("light1").Pos)
	assert.Equal(t, colors.Green, st.Light("light0").Color)
	assert.Equal(t, colors.SoftBlue, st.Light("light1").Color)

	require.NoError(t, st.Initialize())
	for range 9 {
		st.AnimationUpdate()
	}
	assert.Equal(t, float32(90), st.Objects.Angle)
	assertPos(t, math32.Vec3(0, 0, 2), st.Cube.WorldPos())
	assertPos(t, LightPos(1, 4.5, math32.Identity4()), st.Light("light1").Pos)
}

func TestTexture(t *testing.T) {
	var b bytes.Buffer
	require.NoError(t, png.Encode(&b, image.NewRGBA(image.Rect(0, 0, 4, 4))))
	ld := texture.NewLoader(fstest.MapFS{"crate.png": {Data: b.Bytes()}})

	dv := recorder.New()
	cfg := config.New()
	cfg.Texture = "crate.png"
	st, err := NewSceneTwo(cfg, dv, dv.Program, ld)
	require.NoError(t, err)
	assert.Equal(t, phong.RoutingTexture, st.Cube.Routing)
	require.NoError(t, st.Initialize())
	st.Render()
	require.NoError(t, dv.Err())
	assert.NotEqual(t, 0, dv.Draws[0].Texture)
	assert.Equal(t, phong.RoutingTexture, dv.Draws[0].Routing)
	assert.Equal(t, 0, dv.Draws[1].Texture)
	assert.Equal(t, 0, dv.BoundTexture())

	dv = recorder.New()
	cfg.Texture = "missing.png"
	st, err = NewSceneTwo(cfg, dv, dv.Program, ld)
	require.NoError(t, err)
	require.NoError(t, st.Initialize())
	st.Render()
	require.NoError(t, dv.Err())
	require.Len(t, dv.Draws, 5)
	assert.Equal(t, 0, dv.Draws[0].Texture)
	assert.Equal(t, phong.RoutingLighting, dv.Draws[0].Routing, "falls back without a texture")
	assert.Equal(t, phong.RoutingTexture, st.Cube.Routing)
}
