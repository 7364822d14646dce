// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import "cogentcore.org/core/math32"

// The standard palette.
var (
	Black       = math32.Vec4(0, 0, 0, 1)
	White       = math32.Vec4(1, 1, 1, 1)
	Red         = math32.Vec4(1, 0, 0, 1)
	Green       = math32.Vec4(0, 1, 0, 1)
	Blue        = math32.Vec4(0, 0, 1, 1)
	Yellow      = math32.Vec4(1, 1, 0, 1)
	Cyan        = math32.Vec4(0, 1, 1, 1)
	Magenta     = math32.Vec4(1, 0, 1, 1)
	Purple      = math32.Vec4(0.5, 0, 0.5, 1)
	Pink        = math32.Vec4(1, 0, 0.5, 1)
	Teal        = math32.Vec4(0, 0.7, 0.7, 1)
	Orange      = math32.Vec4(1, 0.65, 0, 1)
	Gray        = math32.Vec4(0.5, 0.5, 0.5, 1)
	SoftRed     = math32.Vec4(0.9, 0.4, 0.4, 1)
	SoftBlue    = math32.Vec4(0.4, 0.4, 0.9, 1)
	GreenYellow = RGB(173, 255, 47)
)

// Names maps lowercase palette names to colors, for [Parse].
var Names = map[string]math32.Vector4{
	"black":       Black,
	"white":       White,
	"red":         Red,
	"green":       Green,
	"blue":        Blue,
	"yellow":      Yellow,
	"cyan":        Cyan,
	"magenta":     Magenta,
	"purple":      Purple,
	"pink":        Pink,
	"teal":        Teal,
	"orange":      Orange,
	"gray":        Gray,
	"softred":     SoftRed,
	"softblue":    SoftBlue,
	"greenyellow": GreenYellow,
}
