// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package sim assembles a physics.World and an actuator.Actuator into a
// single resettable, steppable unit driven by a scene file, grounding the
// ball-on-beam control loop on top of the lower physics/actuator packages
// the way app.Application assembles a g3n Scene, Camera and Renderer into
// one thing a caller drives frame by frame.
package sim

import (
	"fmt"

	"github.com/ballbeam-sim/ballbeam/actuator"
	"github.com/ballbeam-sim/ballbeam/math2d"
	"github.com/ballbeam-sim/ballbeam/physics"
	"github.com/ballbeam-sim/ballbeam/scene"
)

// ballBodyIndex is the conventional index of the ball body within a scene,
// per spec: "the ball is conventionally the body at index 1."
const ballBodyIndex = 1

// beamAngleSpread and ballOffsetFraction parameterize the deterministic
// reset perturbation (§4.G step 4).
const (
	beamAngleSpread    = 0.349 // radians, ~20 degrees
	ballOffsetFraction = 0.2
)

// Simulator owns a World and its Actuator, and knows how to (re)populate
// the world from a scene file. It has no notion of episodes, rewards or
// step counting; that belongs to package env.
type Simulator struct {
	World     *physics.World
	ScenePath string
	Seed      uint32
	Dt        float32
	Actuator  actuator.Actuator
}

// New constructs a Simulator bound to the given scene file, seed and fixed
// timestep. The scene file is parsed only to validate it; the World stays
// empty until Reset, which must be called before stepping.
func New(scenePath string, seed uint32, dt float32) (*Simulator, error) {
	if _, err := scene.Load(scenePath); err != nil {
		return nil, fmt.Errorf("sim: %w", err)
	}
	return &Simulator{
		World:     physics.NewWorld(math2d.Zero, dt),
		ScenePath: scenePath,
		Seed:      seed,
		Dt:        dt,
	}, nil
}

// Reset reloads the scene into the existing World (re-creating bodies in
// slots, per spec.md §3 Lifecycles), re-seeds the RNG, zeroes the actuator,
// applies the deterministic ball/beam perturbation, and imposes the beam's
// initial pose.
func (s *Simulator) Reset() error {
	sc, err := scene.Load(s.ScenePath)
	if err != nil {
		return fmt.Errorf("sim: reloading scene: %w", err)
	}

	s.World.Reset()
	s.World.Dt = s.Dt
	if err := sc.Populate(s.World); err != nil {
		return fmt.Errorf("sim: populating world: %w", err)
	}
	s.World.Seed(s.Seed)
	s.Actuator.Reset()

	u1 := s.World.RandFloat()
	u2 := s.World.RandFloat()
	s.Actuator.Angle = (2*u1 - 1) * beamAngleSpread

	if beam, ok := s.World.Body(s.World.ActuatorBodyIndex); ok {
		if ball, ok := s.World.Body(ballBodyIndex); ok {
			halfLength := beamHalfLength(beam)
			ball.Position.X += (2*u2 - 1) * ballOffsetFraction * halfLength
			ball.Velocity = math2d.Zero
			ball.AngularVelocity = 0
		}
	}

	s.Actuator.ImposePose(s.World)
	return nil
}

// Step advances the simulation by one fixed timestep under the given
// normalized action in [-1,1]. The actuator pose is imposed both before
// and after World.Step, bracketing the solver so contact impulses never
// perturb the beam's kinematics.
func (s *Simulator) Step(action float32) {
	s.Actuator.Update(s.Dt, action)
	s.Actuator.ImposePose(s.World)
	s.World.Step()
	s.Actuator.ImposePose(s.World)
}

// Observe returns [angle, angularVelocity, xAlongBeam, vAlongBeam]. If the
// beam or ball body is missing, all four components are zero (§7:
// observation with missing bodies zeroes the buffer).
func (s *Simulator) Observe() [4]float32 {
	var obs [4]float32

	beam, okBeam := s.World.Body(s.World.ActuatorBodyIndex)
	ball, okBall := s.World.Body(ballBodyIndex)
	if !okBeam || !okBall {
		return obs
	}

	obs[0] = s.Actuator.Angle
	obs[1] = s.Actuator.AngularVelocity

	axis := math2d.Unit(s.Actuator.Angle) // axis.X = cos(angle), axis.Y = sin(angle)
	d := ball.Position.Sub(beam.Position)
	obs[2] = d.X*axis.X + d.Y*axis.Y
	obs[3] = ball.Velocity.X*axis.X + ball.Velocity.Y*axis.Y
	return obs
}

// beamHalfLength returns half the beam's width if it is a rectangle, or 0
// for any other shape (a degenerate scene with no usable beam extent).
func beamHalfLength(beam *physics.Body) float32 {
	if r, ok := beam.Shape.(physics.Rect); ok {
		hx, _ := r.HalfExtents()
		return hx
	}
	return 0
}
