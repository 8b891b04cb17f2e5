package physics

import (
	"math"
	"testing"

	"github.com/hollowmoor/driftblade/geom"
)

type recorder struct {
	*Body
	contacts []Collision
}

func newRecorder(x, y, mass, w, h float64) *recorder {
	return &recorder{Body: NewBody(x, y, mass, geom.NewAABB(0, 0, w, h))}
}

func (r *recorder) OnCollision(other Object, c Collision) {
	r.contacts = append(r.contacts, c)
}

func TestGravityIntegrationClosedForm(t *testing.T) {
	sys := NewSystem(0, 0)
	sys.SetGravity(geom.NewVec2(0, 1000))

	obj := NewBody(0, 0, 1, geom.NewAABB(0, 0, 1, 1))
	sys.AddObject(obj, "")

	const dtMs = 10.0
	const steps = 50
	dt := dtMs / 1000.0

	for i := 0; i < steps; i++ {
		sys.Update(dtMs)
	}

	wantVY := 1000.0 * dt * steps
	if math.Abs(obj.Velocity().Y-wantVY) > 1e-6 {
		t.Fatalf("expected vy %v, got %v", wantVY, obj.Velocity().Y)
	}

	// semi-implicit Euler: y = g*dt^2 * (1 + 2 + ... + N)
	wantY := 1000.0 * dt * dt * float64(steps) * float64(steps+1) / 2
	if math.Abs(obj.Position().Y-wantY) > 1e-6 {
		t.Fatalf("expected y %v, got %v", wantY, obj.Position().Y)
	}
}

func TestStepClamp(t *testing.T) {
	sys := NewSystem(0, 0)
	sys.SetGravity(geom.NewVec2(0, 1000))

	obj := NewBody(0, 0, 1, geom.NewAABB(0, 0, 1, 1))
	sys.AddObject(obj, "")

	// a 2-second hitch must integrate as a single 0.05s step
	sys.Update(2000)

	if math.Abs(obj.Velocity().Y-1000*maxStep) > 1e-9 {
		t.Fatalf("expected clamped vy %v, got %v", 1000*maxStep, obj.Velocity().Y)
	}
}

func TestStaticImmovability(t *testing.T) {
	sys := NewSystem(1000, 1000)
	sys.SetGravity(geom.NewVec2(0, 1000))

	floor := NewBody(500, 900, 0, geom.NewAABB(0, 0, 1000, 50))
	sys.AddObject(floor, "tiles")

	// a heavy box dropped straight onto the floor
	box := NewBody(500, 860, 10, geom.NewAABB(0, 0, 40, 40))
	box.Velocity().Set(0, 400)
	sys.AddObject(box, "")

	for i := 0; i < 120; i++ {
		sys.Update(16)
	}

	if floor.Position().X != 500 || floor.Position().Y != 900 {
		t.Fatalf("static floor moved to %+v", *floor.Position())
	}
	if floor.Velocity().X != 0 || floor.Velocity().Y != 0 {
		t.Fatalf("static floor gained velocity %+v", *floor.Velocity())
	}

	// the box must have come to rest on top of the floor, not inside it
	bottom := box.Shape().Bounds().Y + box.Shape().Bounds().Height
	floorTop := floor.Shape().Bounds().Y
	if bottom > floorTop+1 {
		t.Fatalf("box sank into floor: bottom %v, floor top %v", bottom, floorTop)
	}
}

func TestCollisionCallbacksAntiparallelNormals(t *testing.T) {
	sys := NewSystem(0, 0)
	sys.SetGravity(geom.Vec2{})

	a := newRecorder(0, 0, 1, 10, 10)
	b := newRecorder(6, 0, 1, 10, 10)
	sys.AddObject(a, "")
	sys.AddObject(b, "")

	sys.Update(16)

	if len(a.contacts) == 0 || len(b.contacts) == 0 {
		t.Fatalf("both bodies must receive OnCollision (a=%d, b=%d)",
			len(a.contacts), len(b.contacts))
	}

	na := a.contacts[0].Normal
	nb := b.contacts[0].Normal
	if na.X != -nb.X || na.Y != -nb.Y {
		t.Fatalf("expected antiparallel normals, got %+v and %+v", na, nb)
	}
}

func TestResolutionSeparatesOverlap(t *testing.T) {
	sys := NewSystem(0, 0)
	sys.SetGravity(geom.Vec2{})

	a := NewBody(0, 0, 1, geom.NewAABB(0, 0, 10, 10))
	b := NewBody(6, 0, 1, geom.NewAABB(0, 0, 10, 10))
	sys.AddObject(a, "")
	sys.AddObject(b, "")

	sys.Update(16)

	// five solver passes at 80% each leave well under the slop behind on a
	// 4px overlap
	gap := b.Position().X - a.Position().X
	if gap < 10-penetrationSlop-0.02 {
		t.Fatalf("expected centers ~10 apart after resolution, got %v", gap)
	}
}

func TestWorldBoundsBounce(t *testing.T) {
	sys := NewSystem(100, 100)
	sys.SetGravity(geom.Vec2{})

	obj := NewBody(95, 50, 1, geom.NewAABB(0, 0, 10, 10))
	obj.Velocity().Set(500, 0)
	sys.AddObject(obj, "")

	sys.Update(16)

	bounds := obj.Shape().Bounds()
	if bounds.X+bounds.Width > 100+1e-9 {
		t.Fatalf("object escaped world bounds: %+v", bounds)
	}
	if obj.Velocity().X != 500*boundsDamping {
		t.Fatalf("expected damped bounce velocity %v, got %v",
			500*boundsDamping, obj.Velocity().X)
	}
}

func TestIgnoredLayerPair(t *testing.T) {
	sys := NewSystem(0, 0)
	sys.SetGravity(geom.Vec2{})
	sys.IgnoreLayerPair("tiles", "tiles")

	a := newRecorder(0, 0, 1, 10, 10)
	b := newRecorder(6, 0, 1, 10, 10)
	sys.AddObject(a, "tiles")
	sys.AddObject(b, "tiles")

	sys.Update(16)

	if len(a.contacts) != 0 || len(b.contacts) != 0 {
		t.Fatalf("ignored layer pair must not collide")
	}
	if a.Position().X != 0 || b.Position().X != 6 {
		t.Fatalf("ignored pair must not be separated")
	}
}

func TestRemoveObject(t *testing.T) {
	sys := NewSystem(0, 0)
	a := NewBody(0, 0, 1, geom.NewAABB(0, 0, 10, 10))
	b := NewBody(6, 0, 1, geom.NewAABB(0, 0, 10, 10))
	sys.AddObject(a, "")
	sys.AddObject(b, "")

	sys.RemoveObject(a)

	objs := sys.Objects()
	if len(objs) != 1 || objs[0] != Object(b) {
		t.Fatalf("expected only b to remain, got %d objects", len(objs))
	}
}
