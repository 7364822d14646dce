// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package colors provides the named color palette used by the scenes,
// validation of float color components, and parsing of colors
// from configuration strings.
//
// Colors are represented as [math32.Vector4] with X, Y, Z, W = R, G, B, A,
// each component in the [0, 1] range, which is the layout
// uploaded to the GPU per vertex.
package colors

import (
	"fmt"
	"strconv"
	"strings"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/math32"
	"github.com/lucasb-eyer/go-colorful"
)

// ErrInvalidColor is returned for colors with the wrong number of
// components, components outside of [0, 1], or unparseable strings.
var ErrInvalidColor = errors.New("invalid color")

// FromFloats returns the color for the given 3 (RGB) or 4 (RGBA)
// components, each of which must be in [0, 1]. An RGB color gets
// an alpha of 1.
func FromFloats(c ...float32) (math32.Vector4, error) {
	if len(c) != 3 && len(c) != 4 {
		return math32.Vector4{}, fmt.Errorf("%w: %d components, need 3 or 4", ErrInvalidColor, len(c))
	}
	for i, v := range c {
		if v < 0 || v > 1 || math32.IsNaN(v) {
			return math32.Vector4{}, fmt.Errorf("%w: component %d = %g is outside of [0, 1]", ErrInvalidColor, i, v)
		}
	}
	if len(c) == 3 {
		return math32.Vec4(c[0], c[1], c[2], 1), nil
	}
	return math32.Vec4(c[0], c[1], c[2], c[3]), nil
}

// Check returns an error if any component of the given color
// is outside of [0, 1].
func Check(c math32.Vector4) error {
	_, err := FromFloats(c.X, c.Y, c.Z, c.W)
	return err
}

// RGB returns a fully opaque color from 8-bit r, g, b values.
func RGB(r, g, b uint8) math32.Vector4 {
	return math32.Vec4(float32(r)/255, float32(g)/255, float32(b)/255, 1)
}

// Parse parses the given color string, which can be a palette name
// (see [Names], case insensitive), a hex string with a leading # in
// the #rgb, #rrggbb or #rrggbbaa forms, or a comma separated list of
// 3 or 4 float components in [0, 1].
func Parse(s string) (math32.Vector4, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return math32.Vector4{}, fmt.Errorf("%w: empty string", ErrInvalidColor)
	}
	if c, ok := Names[strings.ToLower(s)]; ok {
		return c, nil
	}
	if strings.HasPrefix(s, "#") {
		return parseHex(s)
	}
	fs := strings.Split(s, ",")
	cs := make([]float32, len(fs))
	for i, f := range fs {
		v, err := strconv.ParseFloat(strings.TrimSpace(f), 32)
		if err != nil {
			return math32.Vector4{}, fmt.Errorf("%w: %q: %w", ErrInvalidColor, s, err)
		}
		cs[i] = float32(v)
	}
	return FromFloats(cs...)
}

func parseHex(s string) (math32.Vector4, error) {
	alpha := float32(1)
	if len(s) == 9 {
		a, err := strconv.ParseUint(s[7:], 16, 8)
		if err != nil {
			return math32.Vector4{}, fmt.Errorf("%w: %q: %w", ErrInvalidColor, s, err)
		}
		alpha = float32(a) / 255
		s = s[:7]
	}
	cf, err := colorful.Hex(s)
	if err != nil {
		return math32.Vector4{}, fmt.Errorf("%w: %w", ErrInvalidColor, err)
	}
	return math32.Vec4(float32(cf.R), float32(cf.G), float32(cf.B), alpha), nil
}

// Hex returns the #rrggbb hex string for the given color, ignoring alpha.
func Hex(c math32.Vector4) string {
	return toColorful(c).Clamped().Hex()
}

func toColorful(c math32.Vector4) colorful.Color {
	return colorful.Color{R: float64(c.X), G: float64(c.Y), B: float64(c.Z)}
}
