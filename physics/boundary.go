// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package physics

import "github.com/ballbeam-sim/ballbeam/math2d"

// resolveCircleBoundary tests a circle against all four walls and, for any
// wall it penetrates, snaps its edge to the wall and reflects the normal
// velocity component by -restitution (zeroing it instead when the impact
// speed is below RestVelEps, to kill jitter).
func resolveCircleBoundary(b *Body, shape Circle, bounds Bounds) {
	r := shape.Radius

	if b.Position.X-r < bounds.Left {
		b.Position.X = bounds.Left + r
		if b.Velocity.X < 0 {
			b.Velocity.X = bounceComponent(b.Velocity.X, b.Restitution)
		}
	}
	if b.Position.X+r > bounds.Right {
		b.Position.X = bounds.Right - r
		if b.Velocity.X > 0 {
			b.Velocity.X = bounceComponent(b.Velocity.X, b.Restitution)
		}
	}
	if b.Position.Y-r < bounds.Top {
		b.Position.Y = bounds.Top + r
		if b.Velocity.Y < 0 {
			b.Velocity.Y = bounceComponent(b.Velocity.Y, b.Restitution)
		}
	}
	if b.Position.Y+r > bounds.Bottom {
		b.Position.Y = bounds.Bottom - r
		if b.Velocity.Y > 0 {
			b.Velocity.Y = bounceComponent(b.Velocity.Y, b.Restitution)
		}
	}
}

// bounceComponent reflects a single velocity component by -restitution,
// zeroing it instead if the impact speed is below RestVelEps.
func bounceComponent(v, restitution float32) float32 {
	if absf(v) < RestVelEps {
		return 0
	}
	return -v * restitution
}

// wallContact describes the worst (deepest) corner/wall penetration found
// this frame for an oriented rectangle.
type wallContact struct {
	penetration float32
	corner      math2d.Vector
	normal      math2d.Vector // points from the wall into the world
}

// resolveRectBoundary finds the single deepest corner/wall penetration
// for an oriented rectangle and resolves only that one, relying on solver
// iterations to converge any remaining penetration.
func resolveRectBoundary(b *Body, shape Rect, bounds Bounds) {
	hx, hy := shape.HalfExtents()
	corners := rectCorners(b.Position, b.Angle, hx, hy)

	var worst wallContact
	found := false
	consider := func(penetration float32, corner, normal math2d.Vector) {
		if penetration > 0 && (!found || penetration > worst.penetration) {
			worst = wallContact{penetration: penetration, corner: corner, normal: normal}
			found = true
		}
	}

	for _, c := range corners {
		consider(bounds.Left-c.X, c, math2d.New(1, 0))
		consider(c.X-bounds.Right, c, math2d.New(-1, 0))
		consider(bounds.Top-c.Y, c, math2d.New(0, 1))
		consider(c.Y-bounds.Bottom, c, math2d.New(0, -1))
	}
	if !found {
		return
	}

	b.Position = b.Position.Add(worst.normal.Scale(worst.penetration))
	contact := worst.corner.Add(worst.normal.Scale(worst.penetration))
	r := contact.Sub(b.Position)
	vPoint := b.Velocity.Add(r.Perp().Scale(b.AngularVelocity))
	vn := vPoint.Dot(worst.normal)
	if vn >= -RestVelEps {
		return
	}

	rXn := r.Cross(worst.normal)
	denom := b.InvMass + rXn*rXn*b.InvInertia
	if denom < degenerateK {
		return
	}
	j := -(1 + b.Restitution) * vn / denom
	impulse := worst.normal.Scale(j)
	b.Velocity = b.Velocity.Add(impulse.Scale(b.InvMass))
	b.AngularVelocity += r.Cross(impulse) * b.InvInertia
}

func absf(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
