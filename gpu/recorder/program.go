// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package recorder

import (
	"fmt"

	"cogentcore.org/core/math32"
	"cogentcore.org/solids/gpu/phong"
	"cogentcore.org/solids/shape"
)

// Program is a recorded [phong.Program] holding the current uniform
// state. Calls are recorded into the paired [Device].
type Program struct {
	dev *Device

	// Attribs maps the vertex attribute names to their slots.
	// It starts with the standard mesh attributes at slots 0 to 3,
	// and entries can be removed to test missing inputs.
	Attribs map[string]int

	Lights  [phong.MaxLights]phong.Light
	LightOn [phong.MaxLights]bool

	Model    math32.Matrix4
	Material *phong.Material
	Routing  phong.Routing

	// InUse is set by Use.
	InUse bool
}

// NewProgram returns a new Program recording into the given device.
func NewProgram(dv *Device) *Program {
	pr := &Program{dev: dv}
	pr.Attribs = map[string]int{
		shape.AttribPos:     0,
		shape.AttribNormal:  1,
		shape.AttribColor:   2,
		shape.AttribTexture: 3,
	}
	pr.Model.SetIdentity()
	return pr
}

// NumLightsOn returns the number of lights that are on.
func (pr *Program) NumLightsOn() int {
	n := 0
	for _, on := range pr.LightOn {
		if on {
			n++
		}
	}
	return n
}

func (pr *Program) Use() {
	pr.InUse = true
	pr.dev.record("Program.Use")
}

func (pr *Program) AttribLocation(name string) int {
	slot, ok := pr.Attribs[name]
	if !ok {
		return -1
	}
	return slot
}

func (pr *Program) SetLight(i int, lt *phong.Light) {
	if i < 0 || i >= phong.MaxLights {
		pr.dev.fail(fmt.Errorf("recorder.Program SetLight: index %d out of range", i))
		return
	}
	pr.Lights[i] = *lt
	pr.LightOn[i] = true
	pr.dev.record("Program.SetLight %d %s pos %v color %v", i, lt.Name, lt.Pos, lt.Color)
}

func (pr *Program) ClearAllLights() {
	pr.LightOn = [phong.MaxLights]bool{}
	pr.dev.record("Program.ClearAllLights")
}

func (pr *Program) SetModelMatrix(mat *math32.Matrix4) {
	pr.Model = *mat
	pr.dev.record("Program.SetModelMatrix %v", mat.Pos())
}

func (pr *Program) SetMaterial(mat *phong.Material) {
	pr.Material = mat
	pr.dev.record("Program.SetMaterial")
}

func (pr *Program) SetRouting(rt phong.Routing) {
	pr.Routing = rt
	pr.dev.record("Program.SetRouting %s", rt)
}
