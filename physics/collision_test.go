package physics

import (
	"math"
	"testing"

	"github.com/hollowmoor/driftblade/geom"
)

func dynamicBox(x, y, w, h float64) *Body {
	return NewBody(x, y, 1, geom.NewAABB(0, 0, w, h))
}

func staticBox(x, y, w, h float64) *Body {
	return NewBody(x, y, 0, geom.NewAABB(0, 0, w, h))
}

func TestDetectPicksSmallerOverlapAxis(t *testing.T) {
	cases := []struct {
		name       string
		ax, ay     float64
		bx, by     float64
		wantNormal geom.Vec2
		wantPen    float64
	}{
		// 4 overlap on X, 8 on Y: push out along X toward B
		{"x_axis_right", 0, 0, 6, 2, geom.Vec2{X: 1}, 4},
		{"x_axis_left", 6, 2, 0, 0, geom.Vec2{X: -1}, 4},
		// 8 overlap on X, 4 on Y
		{"y_axis_down", 0, 0, 2, 6, geom.Vec2{Y: 1}, 4},
		{"y_axis_up", 2, 6, 0, 0, geom.Vec2{Y: -1}, 4},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			a := dynamicBox(c.ax, c.ay, 10, 10)
			b := dynamicBox(c.bx, c.by, 10, 10)
			col, ok := detect(a, b)
			if !ok {
				t.Fatalf("expected overlap")
			}
			if col.Normal != c.wantNormal {
				t.Fatalf("expected normal %+v, got %+v", c.wantNormal, col.Normal)
			}
			if math.Abs(col.Penetration-c.wantPen) > 1e-9 {
				t.Fatalf("expected penetration %v, got %v", c.wantPen, col.Penetration)
			}
		})
	}
}

func TestDetectSeparatedPair(t *testing.T) {
	a := dynamicBox(0, 0, 10, 10)
	b := dynamicBox(100, 100, 10, 10)
	if _, ok := detect(a, b); ok {
		t.Fatalf("separated boxes must not collide")
	}
}

func TestDetectCircleContacts(t *testing.T) {
	a := NewBody(0, 0, 1, geom.NewCircle(0, 0, 5))
	b := NewBody(8, 0, 1, geom.NewCircle(0, 0, 5))

	col, ok := detect(a, b)
	if !ok {
		t.Fatalf("expected circle overlap")
	}
	if col.Normal.X != 1 || col.Normal.Y != 0 {
		t.Fatalf("expected normal +X, got %+v", col.Normal)
	}
	if math.Abs(col.Penetration-2) > 1e-9 {
		t.Fatalf("expected penetration 2, got %v", col.Penetration)
	}
}

func TestDetectDegenerateFallsBackToApproximation(t *testing.T) {
	// coincident circle centers give a zero-length normal; detection must
	// degrade to the bounding-box contact instead of failing
	a := NewBody(10, 10, 1, geom.NewCircle(0, 0, 5))
	b := NewBody(10, 10, 1, geom.NewCircle(0, 0, 3))

	col, ok := detect(a, b)
	if !ok {
		t.Fatalf("coincident circles must still produce a contact")
	}
	if col.Normal.LengthSquared() == 0 {
		t.Fatalf("fallback contact must carry a non-zero normal")
	}
	if col.Penetration != approxPenetration {
		t.Fatalf("expected fixed approximate penetration %v, got %v", approxPenetration, col.Penetration)
	}
}

func TestCorrectPositionsSinglePass(t *testing.T) {
	// two equal-mass boxes overlapping by 4 along X
	a := dynamicBox(0, 0, 10, 10)
	b := dynamicBox(6, 0, 10, 10)
	sys := NewSystem(0, 0)

	col, ok := detect(a, b)
	if !ok {
		t.Fatalf("expected overlap")
	}
	p := col.Penetration

	sys.correctPositions(col)

	separation := b.Position().X - a.Position().X - 6
	want := (p - penetrationSlop) * correctionPercent
	if math.Abs(separation-want) > 1e-9 {
		t.Fatalf("expected total correction %v, got %v", want, separation)
	}

	// equal masses split the correction evenly
	movedA := 0 - a.Position().X
	movedB := b.Position().X - 6
	if math.Abs(movedA-movedB) > 1e-9 {
		t.Fatalf("expected symmetric split, got %v vs %v", movedA, movedB)
	}
}

func TestCorrectPositionsSkipsStatics(t *testing.T) {
	floor := staticBox(0, 0, 100, 10)
	box := dynamicBox(0, -6, 10, 10)

	col, ok := detect(floor, box)
	if !ok {
		t.Fatalf("expected overlap")
	}

	sys := NewSystem(0, 0)
	sys.correctPositions(col)

	if floor.Position().X != 0 || floor.Position().Y != 0 {
		t.Fatalf("static body moved to %+v", *floor.Position())
	}

	// the dynamic body absorbed the full correction
	pushed := -6 - box.Position().Y
	want := (col.Penetration - penetrationSlop) * correctionPercent
	if math.Abs(pushed-want) > 1e-9 {
		t.Fatalf("expected dynamic push %v, got %v", want, pushed)
	}
}

func TestApplyImpulseSkipsSeparatingPair(t *testing.T) {
	a := dynamicBox(0, 0, 10, 10)
	b := dynamicBox(6, 0, 10, 10)
	a.Velocity().Set(-10, 0)
	b.Velocity().Set(10, 0)

	col, ok := detect(a, b)
	if !ok {
		t.Fatalf("expected overlap")
	}

	sys := NewSystem(0, 0)
	sys.applyImpulse(col)

	if a.Velocity().X != -10 || b.Velocity().X != 10 {
		t.Fatalf("separating velocities must be untouched, got %v and %v",
			a.Velocity().X, b.Velocity().X)
	}
}

func TestApplyImpulseReversesApproach(t *testing.T) {
	a := dynamicBox(0, 0, 10, 10)
	b := dynamicBox(6, 0, 10, 10)
	a.Velocity().Set(10, 0)
	b.Velocity().Set(-10, 0)

	col, ok := detect(a, b)
	if !ok {
		t.Fatalf("expected overlap")
	}

	sys := NewSystem(0, 0)
	sys.applyImpulse(col)

	// equal masses, approach speed 20, restitution 0.1: each body ends with
	// speed 1 moving apart
	if math.Abs(a.Velocity().X-(-1)) > 1e-9 {
		t.Fatalf("expected a.vx = -1, got %v", a.Velocity().X)
	}
	if math.Abs(b.Velocity().X-1) > 1e-9 {
		t.Fatalf("expected b.vx = 1, got %v", b.Velocity().X)
	}
}
