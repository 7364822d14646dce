// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package xyz is a small 3D scene graph: a [tree] of [Component] nodes,
// each with its own transform, an optional [Displayable] mesh and
// material, and animation through the [Animator] interface.
// Rendering walks the tree depth-first, composing transforms on a
// [MatrixStack] and drawing each displayable with a phong.Program.
package xyz

//go:generate core generate

import (
	"fmt"
	"log/slog"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/math32"
	"cogentcore.org/core/tree"
	"cogentcore.org/solids/gpu/phong"
)

// Node is the interface for all scene graph nodes, satisfied by
// [Component] and any type that embeds it.
type Node interface {
	tree.Node
	ComponentEmbedder
}

// Component is a node in the scene graph, with a transform relative to
// its parent, and optionally something to display with a material.
// Each Component exclusively owns its Children.
type Component struct { //core:embedder
	tree.NodeBase

	// Pos is the position relative to the parent.
	Pos math32.Vector3 `set:"-"`

	// Scale is the scale relative to the parent.
	Scale math32.Vector3 `set:"-"`

	// Rot is the rotation relative to the parent, as Euler angles
	// in degrees, applied in X, Y, Z order.
	Rot math32.Vector3 `set:"-"`

	// Display is drawn when rendering, if set.
	Display Displayable

	// Material is set on the program when rendering, if set.
	Material *phong.Material

	// Routing selects the shading path when rendering.
	// [phong.RoutingTexture] falls back to [phong.RoutingLighting]
	// when the Display has no texture loaded.
	Routing phong.Routing
}

func (cp *Component) Init() {
	cp.Scale = math32.Vec3(1, 1, 1)
}

// AddChild adds the node as the last child, taking ownership.
// A node that already has a parent, or is this component or one of
// its ancestors, is not added and an error is logged.
func (cp *Component) AddChild(kid tree.Node) {
	if kid == nil {
		errors.Log(fmt.Errorf("xyz.Component %s: AddChild: nil node", cp.Name))
		return
	}
	kb := kid.AsTree()
	if kb.Parent != nil {
		errors.Log(fmt.Errorf("xyz.Component %s: AddChild: %s is already a child of %s", cp.Name, kb.Name, kb.Parent.AsTree().Name))
		return
	}
	if !cp.WalkUp(func(n tree.Node) bool { return n != kid }) {
		errors.Log(fmt.Errorf("xyz.Component %s: AddChild: %s would be its own ancestor", cp.Name, kb.Name))
		return
	}
	cp.NodeBase.AddChild(kid)
}

// SetPos sets the position relative to the parent.
func (cp *Component) SetPos(x, y, z float32) *Component {
	cp.Pos.Set(x, y, z)
	return cp
}

// SetScale sets the scale relative to the parent.
func (cp *Component) SetScale(x, y, z float32) *Component {
	cp.Scale.Set(x, y, z)
	return cp
}

// SetRotation sets the rotation as Euler angles in degrees.
func (cp *Component) SetRotation(x, y, z float32) *Component {
	cp.Rot.Set(x, y, z)
	return cp
}

// LocalMatrix returns the transform relative to the parent:
// translation times rotation times scale.
func (cp *Component) LocalMatrix() *math32.Matrix4 {
	m := &math32.Matrix4{}
	m.SetTranslation(cp.Pos.X, cp.Pos.Y, cp.Pos.Z)
	if cp.Rot != (math32.Vector3{}) {
		rx, ry, rz := &math32.Matrix4{}, &math32.Matrix4{}, &math32.Matrix4{}
		rx.SetRotationX(math32.DegToRad(cp.Rot.X))
		ry.SetRotationY(math32.DegToRad(cp.Rot.Y))
		rz.SetRotationZ(math32.DegToRad(cp.Rot.Z))
		m.SetMul(rx)
		m.SetMul(ry)
		m.SetMul(rz)
	}
	sc := &math32.Matrix4{}
	sc.SetScale(cp.Scale.X, cp.Scale.Y, cp.Scale.Z)
	m.SetMul(sc)
	return m
}

// WorldMatrix returns the transform from this component to the root,
// composing the local matrices of all its ancestors.
func (cp *Component) WorldMatrix() *math32.Matrix4 {
	m := cp.LocalMatrix()
	cp.WalkUpParent(func(n tree.Node) bool {
		pc := AsComponent(n)
		if pc == nil {
			return tree.Break
		}
		m.MulMatrices(pc.LocalMatrix(), m)
		return tree.Continue
	})
	return m
}

// WorldPos returns the position of the origin of this component
// in root coordinates.
func (cp *Component) WorldPos() math32.Vector3 {
	return cp.WorldMatrix().Pos()
}

// Initialize initializes the [Displayable] of this component and all
// below it, in pre-order, returning all the errors joined.
// It must be called once after the graphics context exists.
func (cp *Component) Initialize() error {
	var errs []error
	cp.WalkDown(func(n tree.Node) bool {
		c := AsComponent(n)
		if c == nil || c.Display == nil {
			return tree.Continue
		}
		if err := c.Display.Initialize(); err != nil {
			errs = append(errs, fmt.Errorf("xyz.Component %s: %w", c.Name, err))
			return tree.Continue
		}
		if c.Routing == phong.RoutingTexture && !hasTexture(c.Display) {
			slog.Warn("xyz.Component: no texture loaded, drawing with lighting", "component", c.Name)
		}
		return tree.Continue
	})
	return errors.Join(errs...)
}

// hasTexture returns whether the displayable has a texture loaded.
func hasTexture(d Displayable) bool {
	tx, ok := d.(interface{ HasTexture() bool })
	return ok && tx.HasTexture()
}

// RenderRouting returns the routing used to draw this component:
// Routing, except that [phong.RoutingTexture] without a loaded
// texture renders as [phong.RoutingLighting].
func (cp *Component) RenderRouting() phong.Routing {
	if cp.Routing == phong.RoutingTexture && !hasTexture(cp.Display) {
		return phong.RoutingLighting
	}
	return cp.Routing
}

// Render renders this component and all below it, depth-first:
// it pushes its local matrix onto the stack, sets the composed
// matrix, routing and material on the program, draws its
// [Displayable] if any, renders its children, and pops the stack.
func (cp *Component) Render(prog phong.Program, stack *MatrixStack) {
	stack.Push(cp.LocalMatrix())
	prog.SetModelMatrix(stack.Top())
	prog.SetRouting(cp.RenderRouting())
	if cp.Material != nil {
		prog.SetMaterial(cp.Material)
	}
	if cp.Display != nil {
		cp.Display.Draw()
	}
	for _, c := range cp.Children {
		if kc := AsComponent(c); kc != nil {
			kc.Render(prog, stack)
		}
	}
	stack.Pop()
}

// Release releases the GPU resources of all displayables at and
// below this component that have a Release method.
func (cp *Component) Release() {
	cp.WalkDown(func(n tree.Node) bool {
		c := AsComponent(n)
		if c == nil {
			return tree.Continue
		}
		if rl, ok := c.Display.(interface{ Release() }); ok {
			rl.Release()
		}
		return tree.Continue
	})
}

// Render uses the program and renders the tree from the root,
// starting from an identity matrix stack.
func Render(root Node, prog phong.Program) {
	prog.Use()
	stack := NewMatrixStack()
	root.AsComponent().Render(prog, stack)
	if stack.Depth() != 0 {
		slog.Error("xyz.Render: unbalanced matrix stack", "root", root.AsTree().Name, "depth", stack.Depth())
	}
}
