// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package math2d implements the 2D vector algebra used by the physics
// package. Unlike math32.Vector2, which is a mutating, pointer-receiver
// type built for a scene graph, Vector here is a plain immutable value:
// physics math reads far better as a = b.Add(c) than as aliasing builder
// chains, and bodies never need two live references to the same vector.
package math2d

import "math"

// degenerateLength is the threshold below which a vector is considered
// too small to normalize or use as a collision normal.
const degenerateLength = 1e-8

// Vector is a 2D vector or point with X and Y components.
type Vector struct {
	X float32
	Y float32
}

// Zero is the zero vector.
var Zero = Vector{}

// New creates a Vector with the given components.
func New(x, y float32) Vector {
	return Vector{X: x, Y: y}
}

// Unit returns a unit vector pointing at the given angle, in radians,
// measured counter-clockwise from the world +x axis.
func Unit(angle float32) Vector {
	s, c := sincos(angle)
	return Vector{X: c, Y: s}
}

// Add returns v + other.
func (v Vector) Add(other Vector) Vector {
	return Vector{v.X + other.X, v.Y + other.Y}
}

// Sub returns v - other.
func (v Vector) Sub(other Vector) Vector {
	return Vector{v.X - other.X, v.Y - other.Y}
}

// Scale returns v scaled by s.
func (v Vector) Scale(s float32) Vector {
	return Vector{v.X * s, v.Y * s}
}

// Negate returns -v.
func (v Vector) Negate() Vector {
	return Vector{-v.X, -v.Y}
}

// Dot returns the dot product of v and other.
func (v Vector) Dot(other Vector) float32 {
	return v.X*other.X + v.Y*other.Y
}

// Cross returns the scalar (2D) cross product v.x*other.y - v.y*other.x,
// the z-component of the equivalent 3D cross product.
func (v Vector) Cross(other Vector) float32 {
	return v.X*other.Y - v.Y*other.X
}

// Perp returns the vector rotated 90 degrees counter-clockwise: (-y, x).
func (v Vector) Perp() Vector {
	return Vector{-v.Y, v.X}
}

// LengthSq returns the squared length of v.
func (v Vector) LengthSq() float32 {
	return v.X*v.X + v.Y*v.Y
}

// Length returns the length of v.
func (v Vector) Length() float32 {
	return float32(math.Sqrt(float64(v.LengthSq())))
}

// Normalize returns a unit vector in the direction of v, or the zero
// vector if v is degenerate (length below 1e-8).
func (v Vector) Normalize() Vector {
	l := v.Length()
	if l < degenerateLength {
		return Zero
	}
	return v.Scale(1 / l)
}

// Rotate returns v rotated counter-clockwise by angle radians.
func (v Vector) Rotate(angle float32) Vector {
	s, c := sincos(angle)
	return Vector{
		X: v.X*c - v.Y*s,
		Y: v.X*s + v.Y*c,
	}
}

// Lerp returns the linear interpolation between v and other at t, where
// t=0 returns v and t=1 returns other.
func (v Vector) Lerp(other Vector, t float32) Vector {
	return Vector{
		X: v.X + t*(other.X-v.X),
		Y: v.Y + t*(other.Y-v.Y),
	}
}

// DistanceTo returns the distance between v and other.
func (v Vector) DistanceTo(other Vector) float32 {
	return v.Sub(other).Length()
}

// Clamp returns v with each component restricted to [min, max].
func (v Vector) Clamp(min, max Vector) Vector {
	return Vector{
		X: clampf(v.X, min.X, max.X),
		Y: clampf(v.Y, min.Y, max.Y),
	}
}

// Clamp restricts x to [min, max].
func Clamp(x, min, max float32) float32 {
	return clampf(x, min, max)
}

func clampf(x, min, max float32) float32 {
	if x < min {
		return min
	}
	if x > max {
		return max
	}
	return x
}

func sincos(angle float32) (sin, cos float32) {
	s, c := math.Sincos(float64(angle))
	return float32(s), float32(c)
}
