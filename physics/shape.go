// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package physics implements a basic 2D rigid-body physics engine: body
// storage, circle/oriented-rectangle collision detection via SAT and
// closest-point projection, impulse resolution with angular effects, and
// a fixed-capacity World that owns the integrator, boundary handling and
// deterministic RNG.
package physics

// Kind identifies the concrete type backing a Shape.
type Kind int

const (
	// KindCircle is a circle shape, sized by Radius.
	KindCircle Kind = iota
	// KindRect is an axis-aligned-in-local-space oriented rectangle,
	// sized by Width and Height.
	KindRect
)

// Shape is the immutable geometric description of a Body. A body's shape
// never changes after construction; only its pose (Body.Position/Angle)
// moves.
type Shape interface {
	Kind() Kind
}

// Circle is a circular shape of the given Radius, centered on the owning
// body's position.
type Circle struct {
	Radius float32
}

// Kind implements Shape.
func (Circle) Kind() Kind { return KindCircle }

// Rect is an oriented rectangle of the given Width and Height, centered on
// the owning body's position and rotated by the owning body's angle. Angle
// 0 means the local +x (width) axis points along world +x.
type Rect struct {
	Width  float32
	Height float32
}

// Kind implements Shape.
func (Rect) Kind() Kind { return KindRect }

// HalfExtents returns (w/2, h/2) for the rectangle's local axis-aligned
// bounding box.
func (r Rect) HalfExtents() (hx, hy float32) {
	return r.Width / 2, r.Height / 2
}
