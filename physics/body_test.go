package physics

import (
	"testing"

	"github.com/ballbeam-sim/ballbeam/math2d"
	"github.com/stretchr/testify/assert"
)

func TestNewCircleBodyDynamic(t *testing.T) {
	b := NewCircleBody(math2d.New(1, 2), 10, 2, 0.8, false)
	assert.Equal(t, float32(2), b.Mass)
	assert.InDelta(t, 0.5, b.InvMass, 1e-6)
	assert.InDelta(t, 100, b.Inertia, 1e-3) // 0.5*2*10^2
	assert.False(t, b.Static())
}

func TestNewCircleBodyStatic(t *testing.T) {
	b := NewCircleBody(math2d.New(0, 0), 5, 10, 0.5, true)
	assert.Equal(t, float32(0), b.InvMass)
	assert.Equal(t, float32(0), b.InvInertia)
	assert.True(t, b.Static())
}

func TestNewRectBodyInertia(t *testing.T) {
	b := NewRectBody(math2d.New(0, 0), 10, 20, 3, 0.8, false)
	want := float32(3 * (10*10 + 20*20) / 12.0)
	assert.InDelta(t, want, b.Inertia, 1e-3)
}

func TestRestitutionClamped(t *testing.T) {
	b := NewCircleBody(math2d.New(0, 0), 1, 1, 5, false)
	assert.Equal(t, float32(1), b.Restitution)
	b2 := NewCircleBody(math2d.New(0, 0), 1, 1, -5, false)
	assert.Equal(t, float32(0), b2.Restitution)
}

func TestStaticInvariant(t *testing.T) {
	s := NewRectBody(math2d.New(0, 0), 1, 1, 1, 0.5, true)
	assert.Equal(t, s.InvMass == 0, s.InvInertia == 0)
}

func TestBodyAABBCircle(t *testing.T) {
	b := NewCircleBody(math2d.New(5, 5), 2, 1, 0.5, false)
	min, max := b.AABB()
	assert.Equal(t, math2d.New(3, 3), min)
	assert.Equal(t, math2d.New(7, 7), max)
}
