package physics

import "github.com/hollowmoor/driftblade/geom"

// Object is the contract the System requires of every simulated body. The
// System never owns an object's lifetime; the scene that created the object
// must call System.RemoveObject before discarding it.
type Object interface {
	// Position returns the body's center in world space. The System mutates
	// it in place during integration.
	Position() *geom.Vec2
	// Velocity returns the body's velocity. Mutated in place.
	Velocity() *geom.Vec2
	// Mass returns the body's mass. A mass <= 0 marks the body as static:
	// it is never moved by gravity, integration, correction, or impulses.
	Mass() float64
	// Shape returns the collision shape, kept centered on Position by the
	// System every update.
	Shape() geom.Shape
	// AffectedByGravity reports whether the System applies gravity.
	AffectedByGravity() bool
	// Collidable reports whether the body participates in collision pairs.
	Collidable() bool
	// Friction is the body's friction coefficient in [0,1].
	Friction() float64
	// Restitution is the body's bounciness in [0,1].
	Restitution() float64
	// OnCollision is invoked once per detected contact, for both bodies of
	// the pair, whether or not either one moved.
	OnCollision(other Object, c Collision)
}

// Body is a plain Object implementation meant for embedding by entities.
type Body struct {
	pos   geom.Vec2
	vel   geom.Vec2
	mass  float64
	shape geom.Shape

	gravity     bool
	collidable  bool
	friction    float64
	restitution float64
}

// NewBody creates a body centered at (x, y). A mass <= 0 makes it static.
func NewBody(x, y, mass float64, shape geom.Shape) *Body {
	b := &Body{
		pos:         geom.NewVec2(x, y),
		mass:        mass,
		shape:       shape,
		gravity:     mass > 0,
		collidable:  true,
		friction:    0.5,
		restitution: defaultRestitution,
	}
	if shape != nil {
		shape.SetCenter(b.pos)
	}
	return b
}

func (b *Body) Position() *geom.Vec2 { return &b.pos }
func (b *Body) Velocity() *geom.Vec2 { return &b.vel }
func (b *Body) Mass() float64        { return b.mass }
func (b *Body) Shape() geom.Shape    { return b.shape }

func (b *Body) AffectedByGravity() bool { return b.gravity }
func (b *Body) Collidable() bool        { return b.collidable }
func (b *Body) Friction() float64       { return b.friction }
func (b *Body) Restitution() float64    { return b.restitution }

// OnCollision is a no-op; embedders override it for gameplay reactions.
func (b *Body) OnCollision(other Object, c Collision) {}

func (b *Body) SetAffectedByGravity(v bool) { b.gravity = v }
func (b *Body) SetCollidable(v bool)        { b.collidable = v }

func (b *Body) SetFriction(f float64) {
	b.friction = clamp01(f)
}

func (b *Body) SetRestitution(r float64) {
	b.restitution = clamp01(r)
}

// SetPosition teleports the body and re-centers its shape.
func (b *Body) SetPosition(x, y float64) {
	b.pos.Set(x, y)
	if b.shape != nil {
		b.shape.SetCenter(b.pos)
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
