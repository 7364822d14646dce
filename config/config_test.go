// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"cogentcore.org/core/math32"
	"cogentcore.org/solids/colors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	sc := New()
	assert.Equal(t, SceneTwo, sc.Scene)
	assert.Equal(t, float32(3), sc.Radius)
	assert.Equal(t, float32(0.5), sc.Step)
	assert.Equal(t, float32(2), sc.Height)
	assert.Equal(t, float32(0.1), sc.LightSize)
	assert.Equal(t, []float32{0, 180}, sc.Phases)
	assert.Equal(t, float32(0), sc.Spin)
	assert.NoError(t, sc.Validate())
	assert.Equal(t, math32.Vec3(0, 2, 0), sc.LightTransform().Pos())
}

const tomlConfig = `
scene = "three"
radius = 4
phases = [0, 90]
lightColors = ["#ff0000", ""]
`

const yamlConfig = `
scene: three
radius: 4
phases: [0, 90]
lightColors: ["#ff0000", ""]
`

const jsonConfig = `{"scene": "three", "radius": 4, "phases": [0, 90], "lightColors": ["#ff0000", ""]}`

func TestReadFormats(t *testing.T) {
	var got []*Scene
	for f, s := range map[Format]string{TOML: tomlConfig, YAML: yamlConfig, JSON: jsonConfig} {
		sc, err := Read(strings.NewReader(s), f)
		require.NoError(t, err, f)
		got = append(got, sc)
	}
	for _, sc := range got {
		assert.Equal(t, got[0], sc)
	}
	sc := got[0]
	assert.Equal(t, SceneThree, sc.Scene)
	assert.Equal(t, float32(4), sc.Radius)
	assert.Equal(t, float32(0.5), sc.Step, "default kept")
	assert.Equal(t, float32(90), sc.Phase(1))
	assert.Equal(t, float32(0), sc.Phase(5))

	c0, err := sc.LightColor(0, colors.Blue)
	require.NoError(t, err)
	assert.Equal(t, colors.Red, c0)
	c1, err := sc.LightColor(1, colors.Blue)
	require.NoError(t, err)
	assert.Equal(t, colors.Blue, c1)
}

func TestValidate(t *testing.T) {
	sc := New()
	sc.Scene = "four"
	sc.Radius = 0
	sc.Step = -1
	sc.Phases = []float32{0, 90, 180}
	sc.LightColors = []string{"#gg0000"}
	err := sc.Validate()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidConfig))
	for _, s := range []string{"scene", "radius", "step", "phases", "light color"} {
		assert.Contains(t, err.Error(), s)
	}

	_, err = Read(strings.NewReader("radius = -2"), TOML)
	assert.True(t, errors.Is(err, ErrInvalidConfig))
	_, err = Read(strings.NewReader("radius = "), TOML)
	assert.Error(t, err)
}

func TestOpenSave(t *testing.T) {
	dir := t.TempDir()
	sc := New()
	sc.Scene = SceneThree
	sc.Texture = "earth.jpg"
	sc.Spin = 1
	sc.LightColors = []string{"#00ff00", ""}
	for _, ext := range []string{".toml", ".yaml", ".json"} {
		fn := filepath.Join(dir, "scene"+ext)
		require.NoError(t, sc.Save(fn))
		got, err := Open(fn)
		require.NoError(t, err, ext)
		assert.Equal(t, sc, got, ext)
	}
	_, err := Open(filepath.Join(dir, "scene.ini"))
	assert.Error(t, err)
	_, err = Open(filepath.Join(dir, "missing.toml"))
	assert.True(t, errors.Is(err, os.ErrNotExist))

	var b bytes.Buffer
	require.NoError(t, sc.Write(&b, TOML))
	assert.Contains(t, b.String(), "scene = ")
	assert.Contains(t, b.String(), "three")
}

func TestReadEmpty(t *testing.T) {
	for _, f := range FormatValues() {
		sc, err := Read(strings.NewReader(""), f)
		require.NoError(t, err, f.String())
		assert.Equal(t, New(), sc, f.String())
	}
	_, err := Read(strings.NewReader(""), FormatN)
	assert.Error(t, err)

	f, err := FormatFromExt("scene.YML")
	require.NoError(t, err)
	assert.Equal(t, "YAML", f.String())
}
