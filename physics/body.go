// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package physics

import "github.com/ballbeam-sim/ballbeam/math2d"

// Body is a rigid body: a shape with a pose, linear and angular velocity,
// and the mass/inertia/restitution needed for collision resolution.
//
// A static body (InvMass == 0, which always implies InvInertia == 0) is
// never moved by the integrator or the solver; it may still be moved
// directly by its owner (e.g. the actuator imposing the beam's pose).
type Body struct {
	Position        math2d.Vector
	Velocity        math2d.Vector
	Angle           float32 // radians
	AngularVelocity float32 // rad/s

	Shape Shape

	Mass       float32
	InvMass    float32
	Inertia    float32
	InvInertia float32

	Restitution float32 // clamped to [0,1] at construction

	Color [4]byte // opaque to physics, carried for the debug renderer
	Name  string  // opaque to physics, carried for debug/scene identification
}

// Static reports whether the body is immovable (InvMass == 0). Per the
// invariant held by every constructor in this file, this is equivalent to
// InvInertia == 0.
func (b *Body) Static() bool {
	return b.InvMass == 0
}

// NewCircleBody creates a circle body. If static is true, mass is ignored
// and the body is given zero inverse mass/inertia.
func NewCircleBody(pos math2d.Vector, radius, mass, restitution float32, static bool) *Body {
	b := &Body{
		Position:    pos,
		Shape:       Circle{Radius: radius},
		Restitution: clampRestitution(restitution),
	}
	if static {
		return b
	}
	b.Mass = mass
	b.InvMass = 1 / mass
	b.Inertia = 0.5 * mass * radius * radius
	b.InvInertia = 1 / b.Inertia
	return b
}

// NewRectBody creates an oriented rectangle body. If static is true, mass
// is ignored and the body is given zero inverse mass/inertia.
func NewRectBody(pos math2d.Vector, width, height, mass, restitution float32, static bool) *Body {
	b := &Body{
		Position:    pos,
		Shape:       Rect{Width: width, Height: height},
		Restitution: clampRestitution(restitution),
	}
	if static {
		return b
	}
	b.Mass = mass
	b.InvMass = 1 / mass
	b.Inertia = mass * (width*width + height*height) / 12
	b.InvInertia = 1 / b.Inertia
	return b
}

func clampRestitution(r float32) float32 {
	return math2d.Clamp(r, 0, 1)
}

// AABB returns the current axis-aligned bounding box of the body's shape
// in world space. Collision detection never consults it; it always works
// against the exact shapes.
func (b *Body) AABB() (min, max math2d.Vector) {
	switch s := b.Shape.(type) {
	case Circle:
		r := math2d.New(s.Radius, s.Radius)
		return b.Position.Sub(r), b.Position.Add(r)
	case Rect:
		hx, hy := s.HalfExtents()
		var minX, minY, maxX, maxY float32
		for i, c := range rectCorners(b.Position, b.Angle, hx, hy) {
			if i == 0 || c.X < minX {
				minX = c.X
			}
			if i == 0 || c.Y < minY {
				minY = c.Y
			}
			if i == 0 || c.X > maxX {
				maxX = c.X
			}
			if i == 0 || c.Y > maxY {
				maxY = c.Y
			}
		}
		return math2d.New(minX, minY), math2d.New(maxX, maxY)
	default:
		return b.Position, b.Position
	}
}

// rectCorners returns the four world-space corners of an oriented
// rectangle centered at pos with the given half-extents, in
// counter-clockwise order starting from (-hx,-hy) local.
func rectCorners(pos math2d.Vector, angle, hx, hy float32) [4]math2d.Vector {
	local := [4]math2d.Vector{
		math2d.New(-hx, -hy),
		math2d.New(hx, -hy),
		math2d.New(hx, hy),
		math2d.New(-hx, hy),
	}
	var world [4]math2d.Vector
	for i, c := range local {
		world[i] = pos.Add(c.Rotate(angle))
	}
	return world
}
