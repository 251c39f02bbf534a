package physics

import (
	"testing"

	"github.com/ballbeam-sim/ballbeam/math2d"
	"github.com/stretchr/testify/assert"
)

func TestAddBodyCapacity(t *testing.T) {
	w := NewWorld(math2d.New(0, 900), 1.0/240)
	for i := 0; i < MaxBodies; i++ {
		idx, ok := w.AddBody(NewCircleBody(math2d.New(0, 0), 1, 1, 0.5, true))
		assert.True(t, ok)
		assert.Equal(t, i, idx)
	}
	idx, ok := w.AddBody(NewCircleBody(math2d.New(0, 0), 1, 1, 0.5, true))
	assert.False(t, ok)
	assert.Equal(t, -1, idx)
}

func TestBodyIndexValidity(t *testing.T) {
	w := NewWorld(math2d.Zero, 1.0/240)
	w.AddBody(NewCircleBody(math2d.New(0, 0), 1, 1, 0.5, true))
	_, ok := w.Body(-1)
	assert.False(t, ok)
	_, ok = w.Body(1)
	assert.False(t, ok)
	_, ok = w.Body(0)
	assert.True(t, ok)
}

// Property 2: momentum conservation (free fall).
func TestFreeFallMomentumConservation(t *testing.T) {
	w := NewWorld(math2d.New(0, 900), 1.0/240)
	w.AddBody(NewCircleBody(math2d.New(400, 0), 10, 1, 0.8, false))

	b, _ := w.Body(0)
	before := b.Velocity.Y
	w.Step()
	after := b.Velocity.Y

	assert.InDelta(t, w.Gravity.Y*w.Dt, after-before, 1e-3)
}

// Property 3: static immutability.
func TestStaticBodyImmutableUnderStep(t *testing.T) {
	w := NewWorld(math2d.New(0, 900), 1.0/240)
	idx, _ := w.AddBody(NewRectBody(math2d.New(400, 500), 300, 20, 1, 0.8, true))
	b, _ := w.Body(idx)
	pos, vel, angle := b.Position, b.Velocity, b.Angle

	w.Step()

	assert.Equal(t, pos, b.Position)
	assert.Equal(t, vel, b.Velocity)
	assert.Equal(t, angle, b.Angle)
}

// Property 7: boundary containment for a circle in steady state.
func TestCircleBoundaryContainment(t *testing.T) {
	w := NewWorld(math2d.New(0, 900), 1.0/240)
	w.Bounds = Bounds{Left: 0, Top: 0, Right: 800, Bottom: 600, Enabled: true}
	w.AddBody(NewCircleBody(math2d.New(5, 590), 10, 1, 0.2, false))

	for i := 0; i < 200; i++ {
		w.Step()
	}

	b, _ := w.Body(0)
	assert.GreaterOrEqual(t, b.Position.X-b.Shape.(Circle).Radius, w.Bounds.Left-1e-3)
	assert.LessOrEqual(t, b.Position.X+b.Shape.(Circle).Radius, w.Bounds.Right+1e-3)
	assert.LessOrEqual(t, b.Position.Y+b.Shape.(Circle).Radius, w.Bounds.Bottom+1e-3)
}

func TestRNGDeterministic(t *testing.T) {
	w1 := NewWorld(math2d.Zero, 1.0/240)
	w2 := NewWorld(math2d.Zero, 1.0/240)
	w1.Seed(12345)
	w2.Seed(12345)
	for i := 0; i < 100; i++ {
		assert.Equal(t, w1.Rand(), w2.Rand())
	}
}

func TestSeedZeroSubstitutesOne(t *testing.T) {
	w := NewWorld(math2d.Zero, 1.0/240)
	// Find a seed whose splitmix32 avalanche is exactly zero is impractical
	// to search for directly; instead exercise the substitution path via
	// the documented behavior: Seed must never leave rngState at 0.
	w.Seed(0)
	assert.NotEqual(t, uint32(0), w.Rand()^w.Rand()) // state progressed, not stuck at 0
}

func TestRandFloatRange(t *testing.T) {
	w := NewWorld(math2d.Zero, 1.0/240)
	w.Seed(7)
	for i := 0; i < 1000; i++ {
		f := w.RandFloat()
		assert.GreaterOrEqual(t, f, float32(0))
		assert.Less(t, f, float32(1))
	}
}
