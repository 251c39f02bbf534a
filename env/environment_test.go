package env

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const scenePath = "../scene/testdata/fulcrum.yaml"
const fallScenePath = "../scene/testdata/fulcrum_falling.yaml"
const dt = float32(1.0 / 240)

// S1: null action, no failure, reward strictly <= 0.
func TestNullActionNoFailureNonPositiveReward(t *testing.T) {
	e, err := New(scenePath, 12345, dt, true)
	assert.NoError(t, err)
	_, err = e.Reset()
	assert.NoError(t, err)

	for i := 0; i < 100; i++ {
		r := e.Step(0)
		assert.False(t, r.Terminated)
		assert.LessOrEqual(t, r.Reward, float32(0))
	}
}

// S2: right push for 60 steps yields a positive beam angle.
func TestRightPushYieldsPositiveAngle(t *testing.T) {
	e, err := New(scenePath, 12345, dt, true)
	assert.NoError(t, err)
	_, err = e.Reset()
	assert.NoError(t, err)

	var last StepResult
	for i := 0; i < 60; i++ {
		last = e.Step(1)
	}
	assert.Greater(t, last.Observation[0], float32(0))
}

// S3: a ball dropped clear of the beam reaches the floor, and that step is
// terminated (not truncated) with the failure reward.
func TestBallFallTerminatesWithFailureReward(t *testing.T) {
	e, err := New(fallScenePath, 12345, dt, true)
	assert.NoError(t, err)
	_, err = e.Reset()
	assert.NoError(t, err)

	var result StepResult
	for i := 0; i < 2000 && !result.Terminated; i++ {
		result = e.Step(0)
	}
	assert.True(t, result.Terminated)
	assert.False(t, result.Truncated)
	assert.Equal(t, float32(-10), result.Reward)
}

// S4: time limit truncation at step 2400, not before.
func TestTimeLimitTruncatesAtStep2400(t *testing.T) {
	e, err := New(scenePath, 12345, dt, true)
	assert.NoError(t, err)
	_, err = e.Reset()
	assert.NoError(t, err)

	var result StepResult
	for i := 0; i < MaxEpisodeSteps; i++ {
		result = e.Step(0)
		if result.Terminated {
			t.Fatalf("unexpected termination at step %d", i+1)
		}
		if i+1 < MaxEpisodeSteps {
			assert.False(t, result.Truncated)
		}
	}
	assert.True(t, result.Truncated)
	assert.False(t, result.Terminated)
}

// S5: determinism round-trip with a pseudo-random action sequence.
func TestDeterminismRoundTrip(t *testing.T) {
	e1, err := New(scenePath, 42, dt, true)
	assert.NoError(t, err)
	e2, err := New(scenePath, 42, dt, true)
	assert.NoError(t, err)
	_, err = e1.Reset()
	assert.NoError(t, err)
	_, err = e2.Reset()
	assert.NoError(t, err)

	actions := make([]float32, 1000)
	var state uint32 = 98765
	for i := range actions {
		state ^= state << 13
		state ^= state >> 17
		state ^= state << 5
		actions[i] = float32(state%3) - 1
	}

	for i, a := range actions {
		r1 := e1.Step(a)
		r2 := e2.Step(a)
		assert.Equal(t, r1, r2, "step %d diverged", i)
		if r1.Terminated {
			break
		}
	}
}

func TestResetReturnsZeroRewardAndFlags(t *testing.T) {
	e, err := New(scenePath, 1, dt, true)
	assert.NoError(t, err)
	result, err := e.Reset()
	assert.NoError(t, err)
	assert.Equal(t, float32(0), result.Reward)
	assert.False(t, result.Terminated)
	assert.False(t, result.Truncated)
}

func TestRenderNoOpWhenDisabled(t *testing.T) {
	e, err := New(scenePath, 1, dt, true)
	assert.NoError(t, err)
	_, err = e.Reset()
	assert.NoError(t, err)
	e.Render(nil) // must not panic even with a nil renderer
}
