package physics

import "github.com/hollowmoor/driftblade/geom"

// approxPenetration is the fixed depth assigned when a shape pair has no
// exact test and the contact is derived from bounding boxes alone.
const approxPenetration = 0.5

// Collision describes one detected overlap. It is created and consumed
// within a single System update and never persisted.
type Collision struct {
	A, B Object
	// Normal is a unit vector pointing from A toward B.
	Normal geom.Vec2
	// Penetration is the overlap depth along Normal, >= 0.
	Penetration float64
	// Contact is an estimate of the contact point in world space.
	Contact geom.Vec2
}

// Inverted returns the same contact seen from B's side.
func (c Collision) Inverted() Collision {
	return Collision{
		A:           c.B,
		B:           c.A,
		Normal:      geom.Vec2{X: -c.Normal.X, Y: -c.Normal.Y},
		Penetration: c.Penetration,
		Contact:     c.Contact,
	}
}

// detect computes the contact between two overlapping objects. ok is false
// when the shapes do not overlap. Shape pairs without an exact test degrade
// to a bounding-box contact rather than failing.
func detect(a, b Object) (Collision, bool) {
	sa := a.Shape()
	sb := b.Shape()
	if sa == nil || sb == nil {
		return Collision{}, false
	}
	if !sa.Intersects(sb) {
		return Collision{}, false
	}

	switch shapeA := sa.(type) {
	case *geom.AABB:
		switch shapeB := sb.(type) {
		case *geom.AABB:
			return boxBoxContact(a, b, shapeA, shapeB), true
		case *geom.Circle:
			c := circleBoxContact(b, a, shapeB, shapeA)
			return c.Inverted(), true
		}
	case *geom.Circle:
		switch shapeB := sb.(type) {
		case *geom.Circle:
			return circleCircleContact(a, b, shapeA, shapeB), true
		case *geom.AABB:
			return circleBoxContact(a, b, shapeA, shapeB), true
		}
	}

	return approximateContact(a, b), true
}

// boxBoxContact picks the push-out axis from the smaller of the two overlap
// extents, the standard AABB separating-axis heuristic.
func boxBoxContact(a, b Object, boxA, boxB *geom.AABB) Collision {
	ca := boxA.Center()
	cb := boxB.Center()

	overlapX := boxA.Width/2 + boxB.Width/2 - abs(cb.X-ca.X)
	overlapY := boxA.Height/2 + boxB.Height/2 - abs(cb.Y-ca.Y)

	col := Collision{A: a, B: b}
	if overlapX < overlapY {
		col.Penetration = overlapX
		if cb.X >= ca.X {
			col.Normal = geom.Vec2{X: 1}
		} else {
			col.Normal = geom.Vec2{X: -1}
		}
		col.Contact = geom.Vec2{
			X: ca.X + col.Normal.X*boxA.Width/2,
			Y: (ca.Y + cb.Y) / 2,
		}
	} else {
		col.Penetration = overlapY
		if cb.Y >= ca.Y {
			col.Normal = geom.Vec2{Y: 1}
		} else {
			col.Normal = geom.Vec2{Y: -1}
		}
		col.Contact = geom.Vec2{
			X: (ca.X + cb.X) / 2,
			Y: ca.Y + col.Normal.Y*boxA.Height/2,
		}
	}
	return col
}

func circleCircleContact(a, b Object, ca, cb *geom.Circle) Collision {
	delta := cb.Pos.Minus(ca.Pos)
	dist := delta.Length()
	if dist == 0 {
		// coincident centers: no meaningful normal, degrade gracefully
		return approximateContact(a, b)
	}

	normal := delta
	normal.Normalize()
	return Collision{
		A:           a,
		B:           b,
		Normal:      normal,
		Penetration: ca.Radius + cb.Radius - dist,
		Contact:     ca.Pos.Plus(normal.Scaled(ca.Radius)),
	}
}

func circleBoxContact(a, b Object, circle *geom.Circle, box *geom.AABB) Collision {
	closest := geom.Vec2{
		X: clampRange(circle.Pos.X, box.X, box.X+box.Width),
		Y: clampRange(circle.Pos.Y, box.Y, box.Y+box.Height),
	}
	delta := closest.Minus(circle.Pos)
	dist := delta.Length()
	if dist == 0 {
		// circle center inside the box
		return approximateContact(a, b)
	}

	normal := delta
	normal.Normalize()
	return Collision{
		A:           a,
		B:           b,
		Normal:      normal,
		Penetration: circle.Radius - dist,
		Contact:     closest,
	}
}

// approximateContact builds a contact from bounding boxes alone. Used for
// degenerate geometry and unhandled shape pairs so a frame never fails.
func approximateContact(a, b Object) Collision {
	ba := a.Shape().Bounds()
	bb := b.Shape().Bounds()
	ca := ba.Center()
	cb := bb.Center()

	normal := cb.Minus(ca)
	if normal.LengthSquared() == 0 {
		normal = geom.Vec2{Y: -1}
	} else {
		normal.Normalize()
	}

	return Collision{
		A:           a,
		B:           b,
		Normal:      normal,
		Penetration: approxPenetration,
		Contact:     geom.Vec2{X: (ca.X + cb.X) / 2, Y: (ca.Y + cb.Y) / 2},
	}
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

func clampRange(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
