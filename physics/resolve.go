// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package physics

// Normative solver constants (§6).
const (
	// RestVelEps is the relative normal velocity, in pixels/second, below
	// which a contact is treated as resting rather than colliding.
	RestVelEps float32 = 5.0
	// Percent is the fraction of penetration corrected per solver pass
	// (Baumgarte stabilization).
	Percent float32 = 0.2
	// Slop is the penetration tolerance left uncorrected, to suppress
	// jitter from resolving contacts down to exactly zero overlap.
	Slop float32 = 0.001
)

// degenerateK is the threshold below which the impulse denominator is
// treated as zero, falling back to positional correction only.
const degenerateK = 1e-8

// resolveCollision applies impulse-based resolution plus Baumgarte
// positional correction to a and b for the collision c. Both bodies being
// static is the only case that does nothing at all.
func resolveCollision(a, b *Body, c Collision) {
	if a.InvMass+b.InvMass == 0 {
		return
	}

	ra := c.Contact.Sub(a.Position)
	rb := c.Contact.Sub(b.Position)

	va := a.Velocity.Add(ra.Perp().Scale(a.AngularVelocity))
	vb := b.Velocity.Add(rb.Perp().Scale(b.AngularVelocity))
	relVel := vb.Sub(va)
	vn := relVel.Dot(c.Normal)

	if vn > -RestVelEps {
		positionalCorrection(a, b, c)
		return
	}

	raXn := ra.Cross(c.Normal)
	rbXn := rb.Cross(c.Normal)
	k := a.InvMass + b.InvMass + raXn*raXn*a.InvInertia + rbXn*rbXn*b.InvInertia
	if k < degenerateK {
		positionalCorrection(a, b, c)
		return
	}

	e := minf(a.Restitution, b.Restitution)
	j := -(1 + e) * vn / k
	impulse := c.Normal.Scale(j)

	a.Velocity = a.Velocity.Sub(impulse.Scale(a.InvMass))
	b.Velocity = b.Velocity.Add(impulse.Scale(b.InvMass))
	a.AngularVelocity -= ra.Cross(impulse) * a.InvInertia
	b.AngularVelocity += rb.Cross(impulse) * b.InvInertia

	positionalCorrection(a, b, c)
}

// positionalCorrection pushes a and b apart along the collision normal,
// proportionally to their inverse masses, bleeding off penetration beyond
// Slop by Percent per call.
func positionalCorrection(a, b *Body, c Collision) {
	invSum := a.InvMass + b.InvMass
	if invSum == 0 {
		return
	}
	correction := maxf(c.Penetration-Slop, 0) * Percent / invSum
	cv := c.Normal.Scale(correction)
	a.Position = a.Position.Sub(cv.Scale(a.InvMass))
	b.Position = b.Position.Add(cv.Scale(b.InvMass))
}
