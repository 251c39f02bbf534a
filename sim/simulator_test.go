package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const scenePath = "../scene/testdata/fulcrum.yaml"
const dt = float32(1.0 / 240)

func TestNewRejectsMissingScene(t *testing.T) {
	_, err := New("../scene/testdata/does_not_exist.yaml", 1, dt)
	assert.Error(t, err)
}

func TestResetPopulatesWorldAndImposesPose(t *testing.T) {
	s, err := New(scenePath, 12345, dt)
	assert.NoError(t, err)
	assert.NoError(t, s.Reset())

	assert.Equal(t, 3, s.World.Count())
	beam, ok := s.World.Body(s.World.ActuatorBodyIndex)
	assert.True(t, ok)
	assert.Equal(t, s.Actuator.Angle, beam.Angle)
}

func TestResetIsDeterministic(t *testing.T) {
	s1, _ := New(scenePath, 12345, dt)
	s2, _ := New(scenePath, 12345, dt)
	assert.NoError(t, s1.Reset())
	assert.NoError(t, s2.Reset())
	assert.Equal(t, s1.Observe(), s2.Observe())

	for i := 0; i < 100; i++ {
		s1.Step(0.3)
		s2.Step(0.3)
		assert.Equal(t, s1.Observe(), s2.Observe())
	}
}

// Property 9: observation projection when beam.angle == 0.
func TestObserveProjectionAtZeroAngle(t *testing.T) {
	s, err := New(scenePath, 1, dt)
	assert.NoError(t, err)
	assert.NoError(t, s.Reset())

	s.Actuator.Angle = 0
	s.Actuator.AngularVelocity = 0
	s.Actuator.ImposePose(s.World)

	beam, _ := s.World.Body(s.World.ActuatorBodyIndex)
	ball, _ := s.World.Body(ballBodyIndex)
	ball.Velocity.X = 42

	obs := s.Observe()
	assert.InDelta(t, ball.Position.X-beam.Position.X, obs[2], 1e-4)
	assert.InDelta(t, ball.Velocity.X, obs[3], 1e-4)
}

func TestObserveZeroesWhenBodiesMissing(t *testing.T) {
	s, err := New(scenePath, 1, dt)
	assert.NoError(t, err)
	assert.NoError(t, s.Reset())

	s.World.ActuatorBodyIndex = -1
	obs := s.Observe()
	assert.Equal(t, float32(0), obs[2])
	assert.Equal(t, float32(0), obs[3])
}

func TestStepBracketsWorldStepWithImposePose(t *testing.T) {
	s, err := New(scenePath, 1, dt)
	assert.NoError(t, err)
	assert.NoError(t, s.Reset())

	for i := 0; i < 60; i++ {
		s.Step(1)
	}
	beam, _ := s.World.Body(s.World.ActuatorBodyIndex)
	assert.Greater(t, beam.Angle, float32(0))
	assert.Equal(t, s.Actuator.Angle, beam.Angle)
}
