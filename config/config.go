// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config has the configuration of the animated scenes,
// which can be loaded from TOML, YAML or JSON files.
package config

//go:generate core generate

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/base/iox/jsonx"
	"cogentcore.org/core/base/iox/tomlx"
	"cogentcore.org/core/base/iox/yamlx"
	"cogentcore.org/core/cli"
	"cogentcore.org/core/math32"
	"cogentcore.org/solids/colors"
)

// ErrInvalidConfig is returned (wrapped) by Validate and Open
// for configuration values that are out of range.
var ErrInvalidConfig = errors.New("invalid config")

// NumLights is the number of orbiting lights in each scene.
const NumLights = 2

// Scene names.
const (
	SceneTwo   = "two"
	SceneThree = "three"
)

// Scene is the configuration of an animated scene.
type Scene struct {

	// Scene is which scene to build: two or three.
	Scene string `default:"two" toml:"scene" yaml:"scene" json:"scene"`

	// Radius is the radius of the circle the lights orbit on.
	Radius float32 `default:"3" toml:"radius" yaml:"radius" json:"radius"`

	// Step is the angle in degrees the lights advance per animation step.
	Step float32 `default:"0.5" toml:"step" yaml:"step" json:"step"`

	// Height is the height of the plane the lights orbit in.
	Height float32 `default:"2" toml:"height" yaml:"height" json:"height"`

	// Phases are the angular offsets of the lights in degrees,
	// at most [NumLights]; missing ones are 0.
	Phases []float32 `toml:"phases" yaml:"phases" json:"phases"`

	// LightColors optionally override the scene light colors,
	// as hex strings or palette names; empty entries keep the default.
	LightColors []string `toml:"lightColors" yaml:"lightColors" json:"lightColors"`

	// LightSize is the size of the cubes that mark the lights.
	LightSize float32 `default:"0.1" toml:"lightSize" yaml:"lightSize" json:"lightSize"`

	// Texture is an optional image file for the cube in scene two.
	Texture string `toml:"texture" yaml:"texture" json:"texture"`

	// Spin is the rotation of the objects about the vertical axis
	// in degrees per animation step, 0 for none.
	Spin float32 `default:"0" toml:"spin" yaml:"spin" json:"spin"`
}

// New returns a new Scene config with default values.
func New() *Scene {
	sc := &Scene{}
	sc.Defaults()
	return sc
}

// Defaults sets the default values from the default struct tags,
// with the lights on opposite sides of the orbit.
func (sc *Scene) Defaults() {
	errors.Log(cli.SetFromDefaults(sc))
	sc.Phases = []float32{0, 180}
}

// Validate returns an error wrapping [ErrInvalidConfig] for any
// values that are out of range.
func (sc *Scene) Validate() error {
	var errs []error
	if sc.Scene != SceneTwo && sc.Scene != SceneThree {
		errs = append(errs, fmt.Errorf("config.Scene: scene %q must be %q or %q: %w", sc.Scene, SceneTwo, SceneThree, ErrInvalidConfig))
	}
	if !(sc.Radius > 0) {
		errs = append(errs, fmt.Errorf("config.Scene: radius = %g must be > 0: %w", sc.Radius, ErrInvalidConfig))
	}
	if !(sc.Step > 0) {
		errs = append(errs, fmt.Errorf("config.Scene: step = %g must be > 0: %w", sc.Step, ErrInvalidConfig))
	}
	if !(sc.LightSize > 0) {
		errs = append(errs, fmt.Errorf("config.Scene: lightSize = %g must be > 0: %w", sc.LightSize, ErrInvalidConfig))
	}
	if len(sc.Phases) > NumLights {
		errs = append(errs, fmt.Errorf("config.Scene: %d phases for %d lights: %w", len(sc.Phases), NumLights, ErrInvalidConfig))
	}
	if len(sc.LightColors) > NumLights {
		errs = append(errs, fmt.Errorf("config.Scene: %d light colors for %d lights: %w", len(sc.LightColors), NumLights, ErrInvalidConfig))
	}
	for _, lc := range sc.LightColors {
		if lc == "" {
			continue
		}
		if _, err := colors.Parse(lc); err != nil {
			errs = append(errs, fmt.Errorf("config.Scene: light color: %w: %w", ErrInvalidConfig, err))
		}
	}
	return errors.Join(errs...)
}

// Phase returns the phase of light i in degrees, 0 if not set.
func (sc *Scene) Phase(i int) float32 {
	if i < 0 || i >= len(sc.Phases) {
		return 0
	}
	return sc.Phases[i]
}

// LightColor returns the configured color of light i,
// or def if none is configured.
func (sc *Scene) LightColor(i int, def math32.Vector4) (math32.Vector4, error) {
	if i < 0 || i >= len(sc.LightColors) || sc.LightColors[i] == "" {
		return def, nil
	}
	return colors.Parse(sc.LightColors[i])
}

// LightTransform returns the transform of the plane the lights orbit in.
func (sc *Scene) LightTransform() *math32.Matrix4 {
	m := &math32.Matrix4{}
	m.SetTranslation(0, sc.Height, 0)
	return m
}

// Format is a config file format.
type Format int32 //enums:enum

const (
	// TOML is the TOML format, in .toml files.
	TOML Format = iota

	// YAML is the YAML format, in .yaml or .yml files.
	YAML

	// JSON is the JSON format, in .json files.
	JSON
)

// FormatFromExt returns the format for the extension of the filename.
func FormatFromExt(filename string) (Format, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".toml":
		return TOML, nil
	case ".yaml", ".yml":
		return YAML, nil
	case ".json":
		return JSON, nil
	}
	return TOML, fmt.Errorf("config: file %q extension not recognized: must be .toml, .yaml, .yml or .json", filename)
}

// Open returns the config in the file, with the format from its
// extension, and defaults for anything not in the file.
// The config is validated.
func Open(filename string) (*Scene, error) {
	f, err := FormatFromExt(filename)
	if err != nil {
		return nil, err
	}
	sc := New()
	switch f {
	case TOML:
		err = tomlx.Open(sc, filename)
	case YAML:
		err = yamlx.Open(sc, filename)
	case JSON:
		err = jsonx.Open(sc, filename)
	}
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("config: %q: %w", filename, err)
	}
	return sc, sc.Validate()
}

// Read returns the config read in the given format, with defaults
// for anything not present. An empty input gives the defaults.
// The config is validated.
func Read(r io.Reader, f Format) (*Scene, error) {
	sc := New()
	var err error
	switch f {
	case TOML:
		err = tomlx.Read(sc, r)
	case YAML:
		err = yamlx.Read(sc, r)
	case JSON:
		err = jsonx.Read(sc, r)
	default:
		err = fmt.Errorf("config: unknown format %v", f)
	}
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}
	return sc, sc.Validate()
}

// Write writes the config in the given format.
func (sc *Scene) Write(w io.Writer, f Format) error {
	switch f {
	case TOML:
		return tomlx.Write(sc, w)
	case YAML:
		return yamlx.Write(sc, w)
	case JSON:
		return jsonx.WriteIndent(sc, w)
	}
	return fmt.Errorf("config: unknown format %v", f)
}

// Save saves the config to the file, with the format from its extension.
func (sc *Scene) Save(filename string) error {
	f, err := FormatFromExt(filename)
	if err != nil {
		return err
	}
	switch f {
	case TOML:
		return tomlx.Save(sc, filename)
	case YAML:
		return yamlx.Save(sc, filename)
	default:
		return jsonx.SaveIndent(sc, filename)
	}
}
