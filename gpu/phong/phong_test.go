// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package phong

import (
	"testing"

	"cogentcore.org/core/math32"
	"github.com/stretchr/testify/assert"
)

func TestRouting(t *testing.T) {
	for _, rt := range RoutingValues() {
		var p Routing
		assert.NoError(t, p.SetString(rt.String()))
		assert.Equal(t, rt, p)
	}
	assert.Equal(t, "lighting", RoutingLighting.String())
	assert.Equal(t, "texture", RoutingTexture.String())

	var p Routing
	assert.Error(t, p.SetString("wireframe"))
	assert.Equal(t, RoutingVertex, p)
	assert.Equal(t, "7", Routing(7).String())

	b, err := RoutingNormal.MarshalText()
	assert.NoError(t, err)
	assert.Equal(t, "normal", string(b))
	assert.NoError(t, p.UnmarshalText([]byte("texture")))
	assert.Equal(t, RoutingTexture, p)
}

func TestMaterial(t *testing.T) {
	mt := &Material{}
	mt.Defaults()
	assert.Equal(t, float32(32), mt.Shininess)
	assert.Equal(t, math32.Vec4(0.1, 0.1, 0.1, 1), mt.Ambient)

	m2 := NewMaterial(Gray(0.1), math32.Vec4(0.8, 0.2, 0.2, 1), Gray(0.5), 64)
	assert.Equal(t, float32(0.5), m2.Specular.Y)
	assert.Equal(t, float32(1), m2.Specular.W)
}

func TestLight(t *testing.T) {
	lt := NewLight("key", math32.Vec4(1, 1, 1, 1), math32.Vec3(0, 2, 0))
	lt.SetPos(math32.Vec3(3, 2, 0))
	assert.Equal(t, math32.Vec3(3, 2, 0), lt.Pos)
	assert.Equal(t, "key", lt.Name)
}
