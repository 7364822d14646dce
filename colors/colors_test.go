// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import (
	"testing"

	"cogentcore.org/core/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromFloats(t *testing.T) {
	c, err := FromFloats(0.1, 0.2, 0.3)
	require.NoError(t, err)
	assert.Equal(t, math32.Vec4(0.1, 0.2, 0.3, 1), c)

	c, err = FromFloats(0.1, 0.2, 0.3, 0.5)
	require.NoError(t, err)
	assert.Equal(t, float32(0.5), c.W)

	_, err = FromFloats(0.1, 0.2)
	assert.ErrorIs(t, err, ErrInvalidColor)
	_, err = FromFloats(0.1, 0.2, 0.3, 0.4, 0.5)
	assert.ErrorIs(t, err, ErrInvalidColor)
	_, err = FromFloats(0.1, 1.2, 0.3)
	assert.ErrorIs(t, err, ErrInvalidColor)
	_, err = FromFloats(-0.1, 0.2, 0.3)
	assert.ErrorIs(t, err, ErrInvalidColor)

	assert.NoError(t, Check(Teal))
	assert.ErrorIs(t, Check(math32.Vec4(2, 0, 0, 1)), ErrInvalidColor)
}

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		want math32.Vector4
	}{
		{"red", Red},
		{"SoftBlue", SoftBlue},
		{"#ff0000", Red},
		{"#00ff0080", math32.Vec4(0, 1, 0, float32(0x80)/255)},
		{"0, 0.7, 0.7", Teal},
		{"1,0,0.5,1", Pink},
	}
	for _, test := range tests {
		c, err := Parse(test.in)
		require.NoError(t, err, test.in)
		assert.InDelta(t, test.want.X, c.X, 1e-3, test.in)
		assert.InDelta(t, test.want.Y, c.Y, 1e-3, test.in)
		assert.InDelta(t, test.want.Z, c.Z, 1e-3, test.in)
		assert.InDelta(t, test.want.W, c.W, 1e-3, test.in)
	}

	for _, bad := range []string{"", "notacolor", "#zzzzzz", "#ff0000zz", "1,2", "0.5,0.5,1.5"} {
		_, err := Parse(bad)
		assert.ErrorIs(t, err, ErrInvalidColor, bad)
	}
}

func TestHex(t *testing.T) {
	assert.Equal(t, "#ff0000", Hex(Red))
	assert.Equal(t, "#adff2f", Hex(GreenYellow))
	assert.Equal(t, "#ff0000", Hex(math32.Vec4(1.5, 0, 0, 0)), "clamped, alpha ignored")
	for _, s := range []string{"#00ffff", "#800080"} {
		c, err := Parse(s)
		require.NoError(t, err)
		assert.Equal(t, s, Hex(c))
	}
}
