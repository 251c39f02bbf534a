// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package actuator implements the kinematic first-order beam model: a
// normalized control command is filtered into a target angular velocity,
// integrated into an angle, and imposed directly on the beam's Body pose
// before and after each physics step. The physics solver never integrates
// the beam; the actuator owns its kinematics completely.
package actuator

import (
	"github.com/ballbeam-sim/ballbeam/math2d"
	"github.com/ballbeam-sim/ballbeam/physics"
)

// Normative constants (§6).
const (
	// MaxBeamSpeed is the angular velocity, in rad/s, reached by a
	// full-magnitude action.
	MaxBeamSpeed float32 = 2.0
	// Tau is the first-order filter's time constant, in seconds.
	Tau float32 = 0.1
	// BeamAngleMax is the saturation limit, in radians, on beam angle.
	BeamAngleMax float32 = 0.5
)

// Actuator is the beam's kinematic state: its angle and angular velocity,
// in the same units as the beam Body.
type Actuator struct {
	Angle           float32
	AngularVelocity float32
}

// Reset zeroes the actuator's angle and angular velocity.
func (a *Actuator) Reset() {
	a.Angle = 0
	a.AngularVelocity = 0
}

// Update advances the actuator one timestep: action is clamped to [-1,1],
// filtered exponentially toward action*MaxBeamSpeed with time constant Tau,
// integrated into Angle, and saturated to ±BeamAngleMax (which also zeroes
// AngularVelocity when the saturation clamp is active).
func (a *Actuator) Update(dt, action float32) {
	action = math2d.Clamp(action, -1, 1)
	targetOmega := action * MaxBeamSpeed
	a.AngularVelocity += (dt / Tau) * (targetOmega - a.AngularVelocity)
	a.Angle += a.AngularVelocity * dt

	if a.Angle > BeamAngleMax {
		a.Angle = BeamAngleMax
		a.AngularVelocity = 0
	} else if a.Angle < -BeamAngleMax {
		a.Angle = -BeamAngleMax
		a.AngularVelocity = 0
	}
}

// ImposePose writes the actuator's angle onto the world's beam body
// (World.ActuatorBodyIndex), zeroing its linear and angular velocity and
// its inverse mass and inertia, so the integrator and the solver treat the
// beam as static and never move it. The
// beam is placed atop body 0 as a fulcrum when body 0 exists, is a
// different rectangle than the beam, and is itself a Rect; otherwise the
// beam is placed at World.ActuatorPivot. ImposePose is a no-op if the
// world has no actuator body.
func (a *Actuator) ImposePose(world *physics.World) {
	beam, ok := world.Body(world.ActuatorBodyIndex)
	if !ok {
		return
	}

	pos := world.ActuatorPivot
	if base, ok := world.Body(0); ok && world.ActuatorBodyIndex != 0 {
		if baseRect, isRect := base.Shape.(physics.Rect); isRect {
			beamRect, _ := beam.Shape.(physics.Rect)
			_, baseHalfH := baseRect.HalfExtents()
			_, beamHalfH := beamRect.HalfExtents()
			pos = math2d.New(base.Position.X, base.Position.Y-baseHalfH-beamHalfH)
		}
	}

	beam.Position = pos
	beam.Angle = a.Angle
	beam.Velocity = math2d.Zero
	beam.AngularVelocity = 0
	beam.InvMass = 0
	beam.InvInertia = 0
}
