package physics

import (
	"testing"

	"github.com/ballbeam-sim/ballbeam/math2d"
	"github.com/stretchr/testify/assert"
)

func TestResolveCircleBoundaryBounce(t *testing.T) {
	b := NewCircleBody(math2d.New(5, 300), 10, 1, 0.5, false)
	b.Velocity = math2d.New(-100, 0)
	bounds := Bounds{Left: 0, Top: 0, Right: 800, Bottom: 600, Enabled: true}

	resolveCircleBoundary(b, b.Shape.(Circle), bounds)

	assert.Equal(t, float32(10), b.Position.X)
	assert.InDelta(t, 50, b.Velocity.X, 1e-3) // -(-100)*0.5
}

func TestResolveCircleBoundaryJitterKill(t *testing.T) {
	b := NewCircleBody(math2d.New(5, 300), 10, 1, 0.5, false)
	b.Velocity = math2d.New(-1, 0) // below RestVelEps
	bounds := Bounds{Left: 0, Top: 0, Right: 800, Bottom: 600, Enabled: true}

	resolveCircleBoundary(b, b.Shape.(Circle), bounds)

	assert.Equal(t, float32(0), b.Velocity.X)
}

func TestResolveRectBoundaryWorstCornerOnly(t *testing.T) {
	b := NewRectBody(math2d.New(5, 300), 20, 10, 1, 0.5, false)
	bounds := Bounds{Left: 0, Top: 0, Right: 800, Bottom: 600, Enabled: true}

	resolveRectBoundary(b, b.Shape.(Rect), bounds)

	// The left edge penetrated by 5 (corner at x=-5); body should be
	// translated right by 5.
	assert.InDelta(t, 10, b.Position.X, 1e-3)
}

func TestResolveRectBoundaryNoPenetrationNoOp(t *testing.T) {
	b := NewRectBody(math2d.New(400, 300), 20, 10, 1, 0.5, false)
	pos := b.Position
	bounds := Bounds{Left: 0, Top: 0, Right: 800, Bottom: 600, Enabled: true}

	resolveRectBoundary(b, b.Shape.(Rect), bounds)

	assert.Equal(t, pos, b.Position)
}
