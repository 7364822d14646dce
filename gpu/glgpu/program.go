// Copyright (c) 2019, The GoKi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package glgpu

import (
	"fmt"
	"strings"

	"cogentcore.org/core/math32"
	"cogentcore.org/solids/gpu/phong"
	"github.com/go-gl/gl/v4.1-core/gl"
)

// Uniform names set by [Program]. Lights are arrays of structs
// with position and color fields, switched on by lightOn.
const (
	UniformModel            = "model"
	UniformRouting          = "renderingRouting"
	UniformMaterialAmbient  = "material.ambient"
	UniformMaterialDiffuse  = "material.diffuse"
	UniformMaterialSpecular = "material.specular"
	UniformMaterialShine    = "material.highlight"
)

// lightUniform returns the uniform name for a field of light i.
func lightUniform(i int, field string) string {
	return fmt.Sprintf("light[%d].%s", i, field)
}

// lightOnUniform returns the uniform name for the on flag of light i.
func lightOnUniform(i int) string {
	return fmt.Sprintf("lightOn[%d]", i)
}

// cString returns the name as a NUL terminated string for gl.Str.
func cString(s string) string {
	if strings.HasSuffix(s, "\x00") {
		return s
	}
	return s + "\x00"
}

// Program wraps an already linked GL shader program, setting the
// Phong uniforms. Uniform locations are looked up once and cached;
// uniforms the program does not have are ignored, as in GL.
type Program struct {
	handle uint32
	unis   map[string]int32
}

// NewProgram returns a Program for the given linked program handle.
func NewProgram(handle uint32) *Program {
	return &Program{handle: handle, unis: map[string]int32{}}
}

// Handle returns the handle for the program.
func (pr *Program) Handle() uint32 {
	return pr.handle
}

func (pr *Program) uniform(name string) int32 {
	if loc, ok := pr.unis[name]; ok {
		return loc
	}
	loc := gl.GetUniformLocation(pr.handle, gl.Str(cString(name)))
	pr.unis[name] = loc
	return loc
}

func (pr *Program) Use() {
	gl.UseProgram(pr.handle)
}

func (pr *Program) AttribLocation(name string) int {
	return int(gl.GetAttribLocation(pr.handle, gl.Str(cString(name))))
}

func (pr *Program) SetLight(i int, lt *phong.Light) {
	if i < 0 || i >= phong.MaxLights {
		return
	}
	pr.Use()
	gl.Uniform3f(pr.uniform(lightUniform(i, "position")), lt.Pos.X, lt.Pos.Y, lt.Pos.Z)
	gl.Uniform4f(pr.uniform(lightUniform(i, "color")), lt.Color.X, lt.Color.Y, lt.Color.Z, lt.Color.W)
	gl.Uniform1i(pr.uniform(lightOnUniform(i)), 1)
}

func (pr *Program) ClearAllLights() {
	pr.Use()
	for i := range phong.MaxLights {
		gl.Uniform1i(pr.uniform(lightOnUniform(i)), 0)
	}
}

// SetModelMatrix sets the model matrix, which is stored column-major
// as GL expects.
func (pr *Program) SetModelMatrix(mat *math32.Matrix4) {
	pr.Use()
	gl.UniformMatrix4fv(pr.uniform(UniformModel), 1, false, &mat[0])
}

func (pr *Program) SetMaterial(mat *phong.Material) {
	pr.Use()
	setVector4(pr.uniform(UniformMaterialAmbient), mat.Ambient)
	setVector4(pr.uniform(UniformMaterialDiffuse), mat.Diffuse)
	setVector4(pr.uniform(UniformMaterialSpecular), mat.Specular)
	gl.Uniform1f(pr.uniform(UniformMaterialShine), mat.Shininess)
}

func (pr *Program) SetRouting(rt phong.Routing) {
	pr.Use()
	gl.Uniform1i(pr.uniform(UniformRouting), int32(rt))
}

func setVector4(loc int32, v math32.Vector4) {
	gl.Uniform4f(loc, v.X, v.Y, v.Z, v.W)
}
