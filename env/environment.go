// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package env layers episode bookkeeping, reward shaping and termination
// policy on top of a sim.Simulator, the way a g3n Application layers a
// frame loop and input handling on top of a bare Scene/Renderer pair.
package env

import (
	"fmt"

	"github.com/ballbeam-sim/ballbeam/debug"
	"github.com/ballbeam-sim/ballbeam/physics"
	"github.com/ballbeam-sim/ballbeam/sim"
)

// MaxEpisodeSteps is the time-limit truncation cutoff (§6).
const MaxEpisodeSteps = 2400

// failureMargin is how close to the bottom bound counts as having hit it,
// matching the spec's "bound_bottom - 1" convention.
const failureMargin = 1

// Reward-shaping normalizers (§4.H).
const (
	angleNorm   = 0.5
	omegaNorm   = 2
	posNorm     = 500
	velNorm     = 500
	angleWeight = 1.0
	omegaWeight = 0.5
	posWeight   = 1.5
	velWeight   = 0.5
)

const failureReward = -10

// ballBodyIndex mirrors sim's convention: the ball is body index 1.
const ballBodyIndex = 1

// StepResult is returned by both Reset and Step.
type StepResult struct {
	Observation [4]float32
	Reward      float32
	Terminated  bool
	Truncated   bool
}

// Environment wraps a Simulator with step counting, reward shaping and
// termination policy, and an optional debug Renderer.
type Environment struct {
	Simulator     *sim.Simulator
	RenderEnabled bool
	StepCount     int
}

// New constructs an Environment bound to the given scene, seed and fixed
// timestep. If headless is true, RenderEnabled starts false; Render is
// always safe to call regardless.
func New(scenePath string, seed uint32, dt float32, headless bool) (*Environment, error) {
	s, err := sim.New(scenePath, seed, dt)
	if err != nil {
		return nil, fmt.Errorf("env: %w", err)
	}
	return &Environment{
		Simulator:     s,
		RenderEnabled: !headless,
	}, nil
}

// Reset reloads the scene, zeroes the step counter, and returns the
// initial StepResult with reward 0 and both flags false.
func (e *Environment) Reset() (StepResult, error) {
	if err := e.Simulator.Reset(); err != nil {
		return StepResult{}, fmt.Errorf("env: %w", err)
	}
	e.StepCount = 0
	return StepResult{Observation: e.Simulator.Observe()}, nil
}

// Step advances the simulator by one timestep under action, increments the
// step counter, and applies the termination policy described in §4.H:
// failure first, then the episode time limit, then shaped reward.
func (e *Environment) Step(action float32) StepResult {
	e.Simulator.Step(action)
	e.StepCount++

	obs := e.Simulator.Observe()
	result := StepResult{Observation: obs}

	if e.ballHitFloor() {
		result.Terminated = true
		result.Reward = failureReward
		return result
	}

	if e.StepCount >= MaxEpisodeSteps {
		result.Truncated = true
	}

	a := obs[0] / angleNorm
	b := obs[1] / omegaNorm
	p := obs[2] / posNorm
	v := obs[3] / velNorm
	result.Reward = -(angleWeight*a*a + omegaWeight*b*b + posWeight*p*p + velWeight*v*v)
	return result
}

// ballHitFloor reports whether the ball body has crossed the world's
// bottom boundary, per the failure condition in §4.H.
func (e *Environment) ballHitFloor() bool {
	w := e.Simulator.World
	if !w.Bounds.Enabled {
		return false
	}
	ball, ok := w.Body(ballBodyIndex)
	if !ok {
		return false
	}
	circle, ok := ball.Shape.(physics.Circle)
	if !ok {
		return false
	}
	return ball.Position.Y+circle.Radius >= w.Bounds.Bottom-failureMargin
}

// Render forwards the current body poses to r for one frame. It never
// mutates physics, observation, or RNG state, and is a no-op when
// rendering is disabled.
func (e *Environment) Render(r debug.Renderer) {
	if !e.RenderEnabled || r == nil {
		return
	}
	w := e.Simulator.World
	for i := 0; i < w.Count(); i++ {
		b, ok := w.Body(i)
		if !ok {
			continue
		}
		switch s := b.Shape.(type) {
		case physics.Circle:
			r.DrawCircle(b.Position, s.Radius, b.Angle, b.Color)
		case physics.Rect:
			hx, hy := s.HalfExtents()
			r.DrawRect(b.Position, hx, hy, b.Angle, b.Color)
		}
	}
	r.Flush()
}
