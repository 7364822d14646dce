// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

import (
	"log/slog"

	"cogentcore.org/core/math32"
)

// MatrixStack is a stack of composed transform matrices, with an
// identity matrix at the base that is never popped.
type MatrixStack struct {
	stack []math32.Matrix4
}

// NewMatrixStack returns a new stack with just the identity matrix.
func NewMatrixStack() *MatrixStack {
	ms := &MatrixStack{}
	ms.Reset()
	return ms
}

// Reset resets the stack to just the identity matrix.
func (ms *MatrixStack) Reset() {
	ms.stack = ms.stack[:0]
	ms.stack = append(ms.stack, *math32.Identity4())
}

// Depth returns the number of matrices pushed above the base.
func (ms *MatrixStack) Depth() int {
	return len(ms.stack) - 1
}

// Top returns the top matrix, which must not be modified.
func (ms *MatrixStack) Top() *math32.Matrix4 {
	if len(ms.stack) == 0 {
		ms.Reset()
	}
	return &ms.stack[len(ms.stack)-1]
}

// Push pushes the top matrix times m.
func (ms *MatrixStack) Push(m *math32.Matrix4) {
	var nm math32.Matrix4
	nm.MulMatrices(ms.Top(), m)
	ms.stack = append(ms.stack, nm)
}

// Pop removes the top matrix. Popping the base is an error,
// which is logged.
func (ms *MatrixStack) Pop() {
	if ms.Depth() <= 0 {
		slog.Error("xyz.MatrixStack: Pop on empty stack")
		return
	}
	ms.stack = ms.stack[:len(ms.stack)-1]
}
