// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

import (
	"bytes"
	"errors"
	"image"
	"image/png"
	"testing"
	"testing/fstest"

	"cogentcore.org/core/math32"
	"cogentcore.org/core/tree"
	"cogentcore.org/solids/gpu/phong"
	"cogentcore.org/solids/gpu/recorder"
	"cogentcore.org/solids/shape"
	"cogentcore.org/solids/texture"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newNode(name string, parent ...tree.Node) *Component {
	cp := NewComponent(parent...)
	cp.SetName(name)
	return cp
}

func newCube(t *testing.T, dv *recorder.Device) *MeshDisplay {
	md, err := NewMeshDisplay(dv, dv.Program, shape.NewCube(1, 1, 1))
	require.NoError(t, err)
	return md
}

func TestMeshDisplay(t *testing.T) {
	dv := recorder.New()
	md := newCube(t, dv)

	md.Draw()
	assert.Len(t, dv.Draws, 0, "draw before initialize")

	require.NoError(t, md.Initialize())
	assert.Equal(t, 0, dv.BoundVertexArray())
	assert.True(t, errors.Is(md.Initialize(), ErrAlreadyInitialized))

	md.Draw()
	require.NoError(t, dv.Err())
	require.Len(t, dv.Draws, 1)
	assert.Equal(t, 36, dv.Draws[0].NumIndex)
	assert.Equal(t, 36, dv.Draws[0].NumVertex)
	assert.Equal(t, 0, dv.BoundVertexArray())
	assert.Equal(t, 0, dv.BoundTexture())

	va := md.array.(*recorder.VertexArray)
	require.Len(t, va.Buffers, 1)
	vb := va.Buffers[0]
	assert.Equal(t, 12, vb.Stride)
	assert.Equal(t, [2]int{0, 3}, vb.Attribs[0])
	assert.Equal(t, [2]int{3, 3}, vb.Attribs[1])
	assert.Equal(t, [2]int{6, 4}, vb.Attribs[2])
	assert.Equal(t, [2]int{10, 2}, vb.Attribs[3])

	md.Release()
	assert.False(t, md.IsInitialized())
	assert.Equal(t, 0, dv.Live())
	require.NoError(t, md.Initialize())
}

func TestMeshDisplayMissingAttrib(t *testing.T) {
	dv := recorder.New()
	delete(dv.Program.Attribs, shape.AttribTexture)
	md := newCube(t, dv)
	require.NoError(t, md.Initialize())
	vb := md.array.(*recorder.VertexArray).Buffers[0]
	assert.Len(t, vb.Attribs, 3)
}

func TestMeshDisplayNotConfigured(t *testing.T) {
	md := &MeshDisplay{}
	assert.True(t, errors.Is(md.Initialize(), ErrNotConfigured))
}

func pngFS(t *testing.T) fstest.MapFS {
	var b bytes.Buffer
	require.NoError(t, png.Encode(&b, image.NewRGBA(image.Rect(0, 0, 8, 8))))
	return fstest.MapFS{"earth.png": {Data: b.Bytes()}}
}

func TestMeshDisplayTexture(t *testing.T) {
	dv := recorder.New()
	md := newCube(t, dv).SetTexture("earth.png", texture.NewLoader(pngFS(t)))
	require.NoError(t, md.Initialize())
	assert.True(t, md.HasTexture())
	md.Draw()
	require.Len(t, dv.Draws, 1)
	assert.NotEqual(t, 0, dv.Draws[0].Texture)
	assert.Equal(t, 0, dv.BoundTexture())
	assert.Equal(t, 0, dv.BoundVertexArray())
}

func TestMeshDisplayTextureMissing(t *testing.T) {
	dv := recorder.New()
	md := newCube(t, dv).SetTexture("moon.png", texture.NewLoader(pngFS(t)))
	require.NoError(t, md.Initialize())
	assert.False(t, md.HasTexture())
	md.Draw()
	require.Len(t, dv.Draws, 1)
	assert.Equal(t, 0, dv.Draws[0].Texture)

	dv = recorder.New()
	py, err := NewMeshDisplay(dv, dv.Program, shape.NewPyramid(1, 1))
	require.NoError(t, err)
	py.SetTexture("earth.png", texture.NewLoader(pngFS(t)))
	require.NoError(t, py.Initialize())
	assert.False(t, py.HasTexture(), "pyramid has no texture coordinates")

	dv = recorder.New()
	dv.FailTextures = true
	md = newCube(t, dv).SetTexture("earth.png", texture.NewLoader(pngFS(t)))
	require.NoError(t, md.Initialize())
	assert.False(t, md.HasTexture())
}

func TestRegenerate(t *testing.T) {
	dv := recorder.New()
	md, err := NewMeshDisplay(dv, dv.Program, shape.NewCylinder(0.5, 1, 8))
	require.NoError(t, err)
	require.NoError(t, md.Initialize())
	old := md.Mesh

	err = md.Regenerate(shape.NewCylinder(0.5, 1, 2))
	assert.True(t, errors.Is(err, shape.ErrInvalidParameter))
	assert.Same(t, old, md.Mesh)

	require.NoError(t, md.Regenerate(shape.NewCylinder(0.5, 1, 16)))
	assert.Equal(t, 12*16, md.Mesh.NumIndex())
	md.Draw()
	require.NoError(t, dv.Err())
	require.Len(t, dv.Draws, 1)
	assert.Equal(t, 12*16, dv.Draws[0].NumIndex)
	assert.Equal(t, 2*17+2, dv.Draws[0].NumVertex)

	_, err = NewMeshDisplay(dv, dv.Program, shape.NewTorus(0, 1, 8, 8))
	assert.True(t, errors.Is(err, shape.ErrInvalidParameter))
}

func TestRegenerateLayout(t *testing.T) {
	dv := recorder.New()
	md := newCube(t, dv)
	require.NoError(t, md.Regenerate(shape.NewPyramid(1, 1)), "not yet initialized")
	assert.Equal(t, "pyramid", md.Mesh.Name)

	md = newCube(t, dv)
	require.NoError(t, md.Initialize())
	old := md.Mesh
	err := md.Regenerate(shape.NewPyramid(1, 1))
	assert.True(t, errors.Is(err, ErrLayoutChanged))
	assert.Same(t, old, md.Mesh)
	vb := md.array.(*recorder.VertexArray).Buffers[0]
	assert.Len(t, vb.Attribs, 4)

	md.Release()
	require.NoError(t, md.Regenerate(shape.NewPyramid(1, 1)))
	require.NoError(t, md.Initialize())
	vb = md.array.(*recorder.VertexArray).Buffers[0]
	assert.Len(t, vb.Attribs, 3)
	assert.Equal(t, 10, vb.Stride)
}

func TestRender(t *testing.T) {
	dv := recorder.New()
	root := newNode("root")
	parent := newNode("parent", root).SetPos(1, 0, 0)
	mt := phong.NewMaterial(phong.Gray(0.1), math32.Vec4(0.8, 0.2, 0.2, 1), phong.Gray(0.5), 64)
	child := newNode("child", parent).SetPos(0, 2, 0)
	child.SetDisplay(newCube(t, dv)).SetMaterial(mt).SetRouting(phong.RoutingLighting)
	require.NoError(t, root.Initialize())

	Render(root, dv.Program)
	require.NoError(t, dv.Err())
	require.Len(t, dv.Draws, 1)
	dc := dv.Draws[0]
	assert.True(t, vecNear(dc.Model.Pos(), math32.Vec3(1, 2, 0), 1e-6))
	assert.Equal(t, phong.RoutingLighting, dc.Routing)
	assert.Same(t, mt, dc.Material)
	assert.True(t, vecNear(child.WorldPos(), math32.Vec3(1, 2, 0), 1e-6))

	stack := NewMatrixStack()
	root.Render(dv.Program, stack)
	assert.Equal(t, 0, stack.Depth())
}

func TestTextureRouting(t *testing.T) {
	for _, file := range []string{"earth.png", "moon.png"} {
		dv := recorder.New()
		root := newNode("root")
		md := newCube(t, dv).SetTexture(file, texture.NewLoader(pngFS(t)))
		box := newNode("box", root)
		box.SetDisplay(md).SetRouting(phong.RoutingTexture)
		require.NoError(t, root.Initialize())

		Render(root, dv.Program)
		require.NoError(t, dv.Err())
		require.Len(t, dv.Draws, 1)
		if file == "earth.png" {
			assert.Equal(t, phong.RoutingTexture, dv.Draws[0].Routing)
			assert.NotEqual(t, 0, dv.Draws[0].Texture)
		} else {
			assert.Equal(t, phong.RoutingLighting, dv.Draws[0].Routing, "missing texture falls back to lighting")
			assert.Equal(t, 0, dv.Draws[0].Texture)
		}
		assert.Equal(t, phong.RoutingTexture, box.Routing)
	}
}

func TestInitializeErrors(t *testing.T) {
	root := newNode("root")
	newNode("a", root).SetDisplay(&MeshDisplay{})
	newNode("b", root).SetDisplay(&MeshDisplay{})
	err := root.Initialize()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNotConfigured))
	assert.Contains(t, err.Error(), "xyz.Component a")
	assert.Contains(t, err.Error(), "xyz.Component b")
}

func TestAddChild(t *testing.T) {
	a := newNode("a")
	b := newNode("b")
	c := newNode("c")
	a.AddChild(b)
	b.AddChild(c)
	c.AddChild(a)
	assert.Equal(t, 0, c.NumChildren(), "cycle")
	a.AddChild(c)
	assert.Equal(t, 1, a.NumChildren(), "already owned")
	a.AddChild(nil)
	assert.Equal(t, 1, a.NumChildren())
	assert.Same(t, b, c.Parent)
	assert.Equal(t, "b", c.Parent.AsTree().Name)
	assert.Equal(t, c, a.FindPath("b/c"))
	assert.Nil(t, a.FindPath("b/d"))
	assert.Nil(t, a.ChildByName("c"))
	assert.Same(t, c, AsComponent(a.FindPath("b/c")))
}

func TestWalkDown(t *testing.T) {
	root := newNode("root")
	a := newNode("a", root)
	newNode("b", root)
	newNode("a1", a)
	var names []string
	root.WalkDown(func(n tree.Node) bool {
		names = append(names, n.AsTree().Name)
		return tree.Continue
	})
	assert.Equal(t, []string{"root", "a", "a1", "b"}, names)

	names = nil
	root.WalkDown(func(n tree.Node) bool {
		names = append(names, n.AsTree().Name)
		if n.AsTree().Name == "a" {
			return tree.Break
		}
		return tree.Continue
	})
	assert.Equal(t, []string{"root", "a", "b"}, names)
}

func TestLocalMatrix(t *testing.T) {
	cp := newNode("c").SetRotation(0, 90, 0)
	p := math32.Vec3(1, 0, 0).MulMatrix4(cp.LocalMatrix())
	assert.True(t, vecNear(p, math32.Vec3(0, 0, -1), 1e-6))

	cp.SetRotation(0, 0, 0).SetScale(2, 2, 2).SetPos(0, 1, 0)
	p = math32.Vec3(1, 0, 0).MulMatrix4(cp.LocalMatrix())
	assert.True(t, vecNear(p, math32.Vec3(2, 1, 0), 1e-6))
}

func TestMatrixStack(t *testing.T) {
	ms := NewMatrixStack()
	assert.Equal(t, *math32.Identity4(), *ms.Top())
	ms.Pop()
	assert.Equal(t, 0, ms.Depth())
	tr := &math32.Matrix4{}
	tr.SetTranslation(1, 0, 0)
	ms.Push(tr)
	ms.Push(tr)
	assert.Equal(t, math32.Vec3(2, 0, 0), ms.Top().Pos())
	ms.Pop()
	assert.Equal(t, 1, ms.Depth())
	ms.Reset()
	assert.Equal(t, 0, ms.Depth())
}

type counter struct {
	Component
	n int
}

func (c *counter) AnimationUpdate() {
	c.n++
	UpdateChildren(c)
}

func TestAnimation(t *testing.T) {
	root := newNode("root")
	sp := NewSpinner(root).SetAxis(math32.Y).SetStep(100)
	inner := tree.New[counter](sp)
	newNode("static", root)

	for range 4 {
		UpdateChildren(root)
	}
	assert.InDelta(t, 40, sp.Angle, 1e-4)
	assert.InDelta(t, 40, sp.Rot.Y, 1e-4)
	assert.Equal(t, 4, inner.n)
	assert.Equal(t, math32.Vec3(1, 1, 1), inner.Scale)
}

func vecNear(a, b math32.Vector3, tol float32) bool {
	return a.DistanceTo(b) <= tol
}
