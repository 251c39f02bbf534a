// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package physics

import "github.com/ballbeam-sim/ballbeam/math2d"

// Normative capacity and iteration constants (§6).
const (
	// MaxBodies is the fixed capacity of a World's body store.
	MaxBodies = 256
	// MaxCollisions is the initial capacity of a World's per-pass collision
	// scratch storage.
	MaxCollisions = 512
	// SolverIterations is the number of detect+resolve+boundary passes
	// run per World.Step.
	SolverIterations = 6
)

// Bounds is an axis-aligned world boundary.
type Bounds struct {
	Left, Top, Right, Bottom float32
	Enabled                  bool
}

// DebugFlags are pure-display toggles with no effect on physics.
type DebugFlags struct {
	ShowVelocity bool
	ShowContacts bool
}

// World owns a fixed-capacity body store, the integrator, boundary
// handling, the solver loop, and the deterministic RNG. It is the sole
// mutator of every body it contains; nothing outside World may write to a
// body's pose or velocity once added (the exceptions are the actuator
// imposing the beam's pose, see package actuator, and the simulator's reset
// perturbation of the ball, see package sim).
type World struct {
	bodies [MaxBodies]*Body
	count  int

	Gravity math2d.Vector
	Dt      float32
	Bounds  Bounds
	Debug   DebugFlags

	// ActuatorBodyIndex identifies the beam body the actuator drives, or
	// -1 if the scene has no actuator. ActuatorPivot is the fallback
	// placement when body 0 is not a usable fulcrum base (see package
	// actuator).
	ActuatorBodyIndex int
	ActuatorPivot     math2d.Vector

	rngState uint32

	collisionScratch []Collision // reused across Step calls; starts with MaxCollisions capacity
}

// NewWorld creates an empty World with the given gravity and fixed
// timestep. The RNG starts unseeded; call Seed before relying on
// deterministic randomness.
func NewWorld(gravity math2d.Vector, dt float32) *World {
	return &World{
		Gravity:           gravity,
		Dt:                dt,
		ActuatorBodyIndex: -1,
		rngState:          1,
		collisionScratch:  make([]Collision, 0, MaxCollisions),
	}
}

// Count returns the number of bodies currently stored.
func (w *World) Count() int {
	return w.count
}

// AddBody appends b to the world's body store in the next available slot
// and returns its index. If the world is already at MaxBodies capacity, it
// returns (-1, false) and b is not stored.
func (w *World) AddBody(b *Body) (int, bool) {
	if w.count >= MaxBodies {
		return -1, false
	}
	idx := w.count
	w.bodies[idx] = b
	w.count++
	return idx, true
}

// Body returns the body at index i, or (nil, false) if i is out of range.
func (w *World) Body(i int) (*Body, bool) {
	if i < 0 || i >= w.count {
		return nil, false
	}
	return w.bodies[i], true
}

// Reset discards all bodies, leaving gravity, Dt, Bounds and RNG state
// untouched; callers rebuilding a scene re-seed separately.
func (w *World) Reset() {
	for i := 0; i < w.count; i++ {
		w.bodies[i] = nil
	}
	w.count = 0
	w.ActuatorBodyIndex = -1
}

// Step advances the simulation by Dt: integrates all non-static bodies,
// then runs SolverIterations passes of {detect all pairs, resolve each,
// resolve boundaries}, in ascending index/pair order throughout.
func (w *World) Step() {
	w.integrate()
	for iter := 0; iter < SolverIterations; iter++ {
		w.detectAndResolve()
		w.resolveBoundaries()
	}
}

func (w *World) integrate() {
	for i := 0; i < w.count; i++ {
		b := w.bodies[i]
		if b.Static() {
			continue
		}
		b.Velocity = b.Velocity.Add(w.Gravity.Scale(w.Dt))
		b.Position = b.Position.Add(b.Velocity.Scale(w.Dt))
		b.Angle += b.AngularVelocity * w.Dt
	}
}

func (w *World) detectAndResolve() {
	w.collisionScratch = w.collisionScratch[:0]
	for i := 0; i < w.count; i++ {
		for j := i + 1; j < w.count; j++ {
			if col, ok := Detect(i, j, w.bodies[i], w.bodies[j]); ok {
				w.collisionScratch = append(w.collisionScratch, col)
			}
		}
	}
	for _, col := range w.collisionScratch {
		resolveCollision(w.bodies[col.BodyA], w.bodies[col.BodyB], col)
	}
}

func (w *World) resolveBoundaries() {
	if !w.Bounds.Enabled {
		return
	}
	for i := 0; i < w.count; i++ {
		b := w.bodies[i]
		if b.Static() {
			continue
		}
		switch s := b.Shape.(type) {
		case Circle:
			resolveCircleBoundary(b, s, w.Bounds)
		case Rect:
			resolveRectBoundary(b, s, w.Bounds)
		}
	}
}

// Seed applies a splitmix32 avalanche to s and uses the result as the RNG
// state, substituting 1 if the avalanche lands on 0.
func (w *World) Seed(s uint32) {
	z := s + 0x9e3779b9
	z = (z ^ (z >> 16)) * 0x85ebca6b
	z = (z ^ (z >> 13)) * 0xc2b2ae35
	z = z ^ (z >> 16)
	if z == 0 {
		z = 1
	}
	w.rngState = z
}

// Rand returns the next raw xorshift32 value and advances the RNG state.
func (w *World) Rand() uint32 {
	x := w.rngState
	x ^= x << 13
	x ^= x >> 17
	x ^= x << 5
	w.rngState = x
	return x
}

// RandFloat returns the next RNG draw as a float in [0, 1).
func (w *World) RandFloat() float32 {
	return float32(w.Rand()) / 4294967296.0 // 2^32
}
