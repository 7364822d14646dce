// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"path/filepath"
	"testing"

	"cogentcore.org/solids/config"
	"cogentcore.org/solids/gpu/recorder"
	"cogentcore.org/solids/scenes"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStats(t *testing.T) {
	var b bytes.Buffer
	out := termenv.NewOutput(&b, termenv.WithProfile(termenv.Ascii))
	require.NoError(t, writeStats(out, []string{"cube", "torus"}))
	s := b.String()
	assert.Contains(t, s, "cube\n")
	assert.Contains(t, s, "vertices:  36\n")
	assert.Contains(t, s, "vertices:  1369\n")
	assert.Contains(t, s, "stride 12: vertexPos[0:3] vertexNormal[3:6] vertexColor[6:10] vertexTexture[10:12]")

	assert.Error(t, writeStats(out, []string{"sphere"}))
}

func TestRun(t *testing.T) {
	assert.NoError(t, Run(&Config{Frames: 10}))
	assert.NoError(t, Run(&Config{Scene: config.SceneThree, Frames: 10}))
	assert.Error(t, Run(&Config{Scene: "four"}))

	fn := filepath.Join(t.TempDir(), "scene.yaml")
	sc := config.New()
	sc.Spin = 2
	require.NoError(t, sc.Save(fn))
	assert.NoError(t, Run(&Config{File: fn, Frames: 3}))
	assert.Error(t, Run(&Config{File: filepath.Join(t.TempDir(), "none.toml")}))
}

func TestWriteLights(t *testing.T) {
	dv := recorder.New()
	st, err := scenes.NewSceneThree(nil, dv, dv.Program, nil)
	require.NoError(t, err)
	var b bytes.Buffer
	out := termenv.NewOutput(&b, termenv.WithProfile(termenv.Ascii))
	writeLights(out, st.AsScene())
	s := b.String()
	assert.Contains(t, s, "light0 #00ffff pos 3 2 0\n")
	assert.Contains(t, s, "light1 ")
	assert.Contains(t, s, "pos -3 2 ")
}
