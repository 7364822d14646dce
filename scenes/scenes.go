// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scenes assembles the animated example scenes: a few lit
// solids with two colored lights orbiting above them, each light
// marked by a small cube.
package scenes

//go:generate core generate

import (
	"fmt"
	"log/slog"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/base/ordmap"
	"cogentcore.org/core/math32"
	"cogentcore.org/core/tree"
	"cogentcore.org/solids/colors"
	"cogentcore.org/solids/config"
	"cogentcore.org/solids/gpu"
	"cogentcore.org/solids/gpu/phong"
	"cogentcore.org/solids/shape"
	"cogentcore.org/solids/xyz"
)

// Animated is a scene that can be initialized and animated.
// It is implemented by [SceneTwo] and [SceneThree].
type Animated interface {
	xyz.Node
	xyz.Animator

	// AsScene returns the [Scene] shared by all scenes.
	AsScene() *Scene

	// Initialize pushes the lights to the program and initializes
	// the displayables.
	Initialize() error
}

// Scene has what is common to the animated scenes: the objects,
// which rotate about the vertical axis with the configured spin,
// and the lights that orbit in a horizontal circle, with their
// marker cubes.
type Scene struct { //core:no-new
	xyz.Component

	// Config has the light orbit and other parameters.
	Config *config.Scene `set:"-"`

	// Device creates the GPU resources.
	Device gpu.Device `set:"-"`

	// Program receives the lights and is used for drawing.
	Program phong.Program `set:"-"`

	// Loader loads any textures; the operating system
	// filesystem is used if nil.
	Loader gpu.TextureLoader `set:"-"`

	// Lights are the lights, by name, in program light index order.
	Lights *ordmap.Map[string, *phong.Light] `set:"-"`

	// Objects has the solids of the scene as children.
	Objects *xyz.Spinner `set:"-"`

	// Markers are the cubes that show where the lights are,
	// one per light in the same order.
	Markers []*xyz.Component `set:"-"`

	// Angle is the current orbit angle of the lights in degrees,
	// in [0, 360), before adding the per-light phase.
	Angle float32 `set:"-"`

	initialized bool
}

// init initializes the scene node as the given outer scene type,
// with the given name, and sets it up with the config, device
// and program. The objects spinner is its first child.
func (sc *Scene) init(this Animated, name string, cfg *config.Scene, dev gpu.Device, prog phong.Program, ld gpu.TextureLoader) error {
	if cfg == nil {
		cfg = config.New()
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	tree.InitNode(this)
	sc.SetName(name)
	sc.Config = cfg
	sc.Device = dev
	sc.Program = prog
	sc.Loader = ld
	sc.Lights = ordmap.New[string, *phong.Light]()
	sc.Objects = xyz.NewSpinner(sc).SetAxis(math32.Y).SetStep(cfg.Spin)
	sc.Objects.SetName("objects")
	return nil
}

// AsScene returns the scene.
func (sc *Scene) AsScene() *Scene {
	return sc
}

// IsInitialized returns whether Initialize has been called.
func (sc *Scene) IsInitialized() bool {
	return sc.initialized
}

// LightPos returns the position on a circle of the given radius
// in the XZ plane at the angle in degrees, transformed by the matrix.
func LightPos(radius, angle float32, mat *math32.Matrix4) math32.Vector3 {
	s, c := math32.Sincos(math32.DegToRad(angle))
	p := math32.Vec4(radius*c, 0, radius*s, 1)
	return math32.Vector3FromVector4(p.MulMatrix4(mat))
}

// lightPos returns the current position of light i.
func (sc *Scene) lightPos(i int) math32.Vector3 {
	return LightPos(sc.Config.Radius, sc.Angle+sc.Config.Phase(i), sc.Config.LightTransform())
}

// addObject adds a solid with a mesh from the generator, at the
// given position with the material and lighting routing.
func (sc *Scene) addObject(name string, gen shape.Generator, pos math32.Vector3, mt *phong.Material) (*xyz.Component, error) {
	md, err := xyz.NewMeshDisplay(sc.Device, sc.Program, gen)
	if err != nil {
		return nil, fmt.Errorf("scenes.%s: %s: %w", sc.Name, name, err)
	}
	cp := xyz.NewComponent(sc.Objects)
	cp.SetName(name)
	cp.SetDisplay(md).SetMaterial(mt).SetRouting(phong.RoutingLighting)
	cp.Pos = pos
	return cp, nil
}

// addLight adds a light with the default color unless the config
// has another, and its marker cube at its current position.
func (sc *Scene) addLight(name string, def math32.Vector4) error {
	i := sc.Lights.Len()
	clr, err := sc.Config.LightColor(i, def)
	if err != nil {
		return fmt.Errorf("scenes.%s: light %s: %w", sc.Name, name, err)
	}
	lt := phong.NewLight(name, clr, sc.lightPos(i))
	sz := sc.Config.LightSize
	md, err := xyz.NewMeshDisplay(sc.Device, sc.Program, shape.NewCube(sz, sz, sz).SetColor(clr))
	if err != nil {
		return fmt.Errorf("scenes.%s: light %s: %w", sc.Name, name, err)
	}
	mk := xyz.NewComponent(sc)
	mk.SetName(name)
	mk.SetDisplay(md).SetRouting(phong.RoutingVertex)
	mk.Pos = lt.Pos
	sc.Lights.Add(name, lt)
	sc.Markers = append(sc.Markers, mk)
	return nil
}

// Light returns the light with the given name, or nil.
func (sc *Scene) Light(name string) *phong.Light {
	lt, _ := sc.Lights.ValueByKeyTry(name)
	return lt
}

// setLights clears the program lights and sets all of ours.
func (sc *Scene) setLights() {
	sc.Program.ClearAllLights()
	for i, kv := range sc.Lights.Order {
		sc.Program.SetLight(i, kv.Value)
	}
}

// Initialize clears the program lights, sets all of the scene lights,
// and initializes the displayables the first time it is called.
// Calling it again only sets the lights again.
func (sc *Scene) Initialize() error {
	sc.setLights()
	if sc.initialized {
		return nil
	}
	if err := sc.Component.Initialize(); err != nil {
		return fmt.Errorf("scenes.%s: %w", sc.Name, err)
	}
	sc.initialized = true
	return nil
}

// ready returns whether the scene can be animated, logging an error if not.
func (sc *Scene) ready() bool {
	if sc.initialized {
		return true
	}
	errors.Log(fmt.Errorf("scenes.%s: AnimationUpdate before Initialize", sc.Name))
	return false
}

// AnimationUpdate advances the light angle by the configured step,
// moves the lights and their markers to the new angle, sends the
// lights to the program, and updates the animated children.
func (sc *Scene) AnimationUpdate() {
	if !sc.ready() {
		return
	}
	sc.Angle = math32.Mod(sc.Angle+sc.Config.Step, 360)
	for i, kv := range sc.Lights.Order {
		lt := kv.Value
		lt.SetPos(sc.lightPos(i))
		sc.Markers[i].Pos = lt.Pos
		sc.Program.SetLight(i, lt)
	}
	xyz.UpdateChildren(sc)
}

// Render renders the scene with its program.
func (sc *Scene) Render() {
	xyz.Render(sc, sc.Program)
}

// LogLights logs the current light positions.
func (sc *Scene) LogLights() {
	for _, kv := range sc.Lights.Order {
		slog.Info("scenes: light", "scene", sc.Name, "name", kv.Key, "pos", kv.Value.Pos, "color", colors.Hex(kv.Value.Color))
	}
}

// New returns the scene named in the config, which is
// [config.SceneTwo] or [config.SceneThree].
func New(cfg *config.Scene, dev gpu.Device, prog phong.Program, ld gpu.TextureLoader) (Animated, error) {
	if cfg == nil {
		cfg = config.New()
	}
	var an Animated
	var err error
	switch cfg.Scene {
	case config.SceneTwo:
		an, err = NewSceneTwo(cfg, dev, prog, ld)
	case config.SceneThree:
		an, err = NewSceneThree(cfg, dev, prog, ld)
	default:
		err = fmt.Errorf("scenes: unknown scene %q: %w", cfg.Scene, config.ErrInvalidConfig)
	}
	if err != nil {
		return nil, err
	}
	return an, nil
}
