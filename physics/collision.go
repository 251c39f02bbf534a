// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package physics

import "github.com/ballbeam-sim/ballbeam/math2d"

// degenerateDist is the threshold below which two circle centers are
// treated as coincident.
const degenerateDist = 1e-8

// Collision is a detected overlap between two bodies, identified by index
// into the owning World's body array.
type Collision struct {
	BodyA, BodyB int
	Normal       math2d.Vector // unit vector, points from A toward B
	Penetration  float32       // >= 0
	Contact      math2d.Vector // world-space point on the contact manifold
}

// Detect dispatches to the circle/circle, circle/rect, or rect/rect test
// for bodies a and b (at indices ia, ib) and reports whether they overlap.
// The returned Collision's normal always points from a toward b, regardless
// of which shape combination was tested.
func Detect(ia, ib int, a, b *Body) (Collision, bool) {
	var col Collision
	var ok bool

	switch sa := a.Shape.(type) {
	case Circle:
		switch sb := b.Shape.(type) {
		case Circle:
			col, ok = detectCircleCircle(a.Position, sa.Radius, b.Position, sb.Radius)
		case Rect:
			col, ok = detectCircleRect(a.Position, sa.Radius, b.Position, b.Angle, sb)
			col.Normal = col.Normal.Negate() // detectCircleRect points rect->circle i.e. b->a
		}
	case Rect:
		switch sb := b.Shape.(type) {
		case Circle:
			col, ok = detectCircleRect(b.Position, sb.Radius, a.Position, a.Angle, sa)
		case Rect:
			col, ok = detectRectRect(a.Position, a.Angle, sa, b.Position, b.Angle, sb)
		}
	}
	if !ok {
		return Collision{}, false
	}
	col.BodyA, col.BodyB = ia, ib
	return col, true
}

// detectCircleCircle tests two circles for overlap.
func detectCircleCircle(posA math2d.Vector, radA float32, posB math2d.Vector, radB float32) (Collision, bool) {
	d := posB.Sub(posA)
	r := radA + radB
	if d.LengthSq() >= r*r {
		return Collision{}, false
	}

	dist := d.Length()
	if dist < degenerateDist {
		return Collision{
			Normal:      math2d.New(1, 0),
			Penetration: r,
			Contact:     posA,
		}, true
	}

	normal := d.Scale(1 / dist)
	penetration := r - dist
	contact := posA.Add(normal.Scale(radA - penetration/2))
	return Collision{Normal: normal, Penetration: penetration, Contact: contact}, true
}

// detectCircleRect tests a circle against an oriented rectangle. The
// returned normal points from the rect toward the circle (rect->circle);
// callers dispatching with swapped shape order are responsible for
// negating it so the contract "normal points A->B" holds.
func detectCircleRect(circlePos math2d.Vector, radius float32, rectPos math2d.Vector, rectAngle float32, rect Rect) (Collision, bool) {
	hx, hy := rect.HalfExtents()

	// Circle center in the rect's local frame.
	local := circlePos.Sub(rectPos).Rotate(-rectAngle)

	closest := math2d.New(
		math2d.Clamp(local.X, -hx, hx),
		math2d.Clamp(local.Y, -hy, hy),
	)
	inside := local.X > -hx && local.X < hx && local.Y > -hy && local.Y < hy

	var localNormal math2d.Vector
	var penetration float32
	var localContact math2d.Vector

	if !inside {
		diff := local.Sub(closest)
		distSq := diff.LengthSq()
		if distSq >= radius*radius {
			return Collision{}, false
		}
		dist := diff.Length()
		if dist < degenerateDist {
			// Center sits exactly on the boundary; fall back to the
			// nearest edge as if it were inside.
			localNormal, penetration, localContact = closestEdge(local, hx, hy, radius)
		} else {
			localNormal = diff.Scale(1 / dist)
			penetration = radius - dist
			localContact = closest
		}
	} else {
		localNormal, penetration, localContact = closestEdge(local, hx, hy, radius)
	}

	normal := localNormal.Rotate(rectAngle)
	contact := rectPos.Add(localContact.Rotate(rectAngle))
	return Collision{Normal: normal, Penetration: penetration, Contact: contact}, true
}

// closestEdge resolves a circle center known to be inside the rectangle's
// local half-extents by picking the nearest of the four edges.
func closestEdge(local math2d.Vector, hx, hy, radius float32) (normal math2d.Vector, penetration float32, contact math2d.Vector) {
	distRight := hx - local.X
	distLeft := local.X + hx
	distTop := hy - local.Y
	distBottom := local.Y + hy

	min := distRight
	normal = math2d.New(1, 0)
	contact = math2d.New(hx, local.Y)

	if distLeft < min {
		min = distLeft
		normal = math2d.New(-1, 0)
		contact = math2d.New(-hx, local.Y)
	}
	if distTop < min {
		min = distTop
		normal = math2d.New(0, 1)
		contact = math2d.New(local.X, hy)
	}
	if distBottom < min {
		min = distBottom
		normal = math2d.New(0, -1)
		contact = math2d.New(local.X, -hy)
	}
	return normal, min + radius, contact
}

// detectRectRect runs the Separating Axis Theorem against two oriented
// rectangles' four candidate axes, and on overlap computes the minimum
// translation normal/penetration plus a one- or two-corner contact point.
func detectRectRect(posA math2d.Vector, angleA float32, rectA Rect, posB math2d.Vector, angleB float32, rectB Rect) (Collision, bool) {
	hxA, hyA := rectA.HalfExtents()
	hxB, hyB := rectB.HalfExtents()
	cornersA := rectCorners(posA, angleA, hxA, hyA)
	cornersB := rectCorners(posB, angleB, hxB, hyB)

	axes := [4]math2d.Vector{
		math2d.Unit(angleA),
		math2d.Unit(angleA).Perp(),
		math2d.Unit(angleB),
		math2d.Unit(angleB).Perp(),
	}

	minOverlap := float32(-1)
	var minAxis math2d.Vector

	for _, axis := range axes {
		minA, maxA := projectCorners(cornersA, axis)
		minB, maxB := projectCorners(cornersB, axis)

		overlap := minf(maxA, maxB) - maxf(minA, minB)
		if overlap <= 0 {
			return Collision{}, false
		}
		if minOverlap < 0 || overlap < minOverlap {
			minOverlap = overlap
			minAxis = axis
		}
	}

	// Orient the normal from A toward B.
	center := posB.Sub(posA)
	if minAxis.Dot(center) < 0 {
		minAxis = minAxis.Negate()
	}

	contact := rectRectContact(cornersA, cornersB, minAxis)
	return Collision{Normal: minAxis, Penetration: minOverlap, Contact: contact}, true
}

// rectRectContact finds the support set of A along +normal and of B along
// -normal (one or two corners each, two when within 1e-4 of the extreme)
// and averages all of them into a single contact point.
func rectRectContact(cornersA, cornersB [4]math2d.Vector, normal math2d.Vector) math2d.Vector {
	const supportEps = 1e-4

	support := func(corners [4]math2d.Vector, dir math2d.Vector) []math2d.Vector {
		best := corners[0].Dot(dir)
		for _, c := range corners[1:] {
			if d := c.Dot(dir); d > best {
				best = d
			}
		}
		var set []math2d.Vector
		for _, c := range corners {
			if best-c.Dot(dir) <= supportEps {
				set = append(set, c)
			}
		}
		return set
	}

	pts := append(support(cornersA, normal), support(cornersB, normal.Negate())...)

	var sum math2d.Vector
	for _, p := range pts {
		sum = sum.Add(p)
	}
	return sum.Scale(1 / float32(len(pts)))
}

func projectCorners(corners [4]math2d.Vector, axis math2d.Vector) (min, max float32) {
	min = corners[0].Dot(axis)
	max = min
	for _, c := range corners[1:] {
		d := c.Dot(axis)
		if d < min {
			min = d
		}
		if d > max {
			max = d
		}
	}
	return min, max
}

func minf(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}

func maxf(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}
