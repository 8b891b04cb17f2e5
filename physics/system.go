package physics

import "github.com/hollowmoor/driftblade/geom"

const (
	// maxStep caps one update's integration step so frame hitches cannot
	// destabilize the simulation.
	maxStep = 0.05
	// solverIterations bounds the pairwise resolve passes per update.
	// Repeated passes settle chained and stacked contacts within a frame.
	solverIterations = 5
	// correctionPercent is how much of the remaining penetration one pass
	// pushes out.
	correctionPercent = 0.8
	// penetrationSlop is the overlap tolerated without correction.
	penetrationSlop = 0.01
	// defaultRestitution is the bounciness new bodies start with.
	defaultRestitution = 0.1
	// boundsDamping is the velocity factor applied on a world-edge bounce.
	boundsDamping = -0.5
)

type entry struct {
	obj   Object
	layer string
}

// System simulates all registered objects: gravity, integration, world
// bounds, and iterative pairwise collision resolution. It holds plain
// references only; object lifetime stays with the scene.
type System struct {
	objects []entry
	gravity geom.Vec2

	worldWidth  float64
	worldHeight float64

	ignored map[[2]string]bool
}

// NewSystem creates a physics system for a world of the given pixel size.
func NewSystem(worldWidth, worldHeight float64) *System {
	return &System{
		gravity:     geom.NewVec2(0, 1400),
		worldWidth:  worldWidth,
		worldHeight: worldHeight,
		ignored:     make(map[[2]string]bool),
	}
}

// AddObject registers an object under an optional collision-layer label.
func (s *System) AddObject(obj Object, layer string) {
	if s == nil || obj == nil {
		return
	}
	s.objects = append(s.objects, entry{obj: obj, layer: layer})
}

// RemoveObject deregisters an object. Scenes must call this before
// discarding an object they own.
func (s *System) RemoveObject(obj Object) {
	if s == nil || obj == nil {
		return
	}
	for i, e := range s.objects {
		if e.obj == obj {
			s.objects = append(s.objects[:i], s.objects[i+1:]...)
			return
		}
	}
}

// Objects returns the registered objects in registration order.
func (s *System) Objects() []Object {
	if s == nil {
		return nil
	}
	out := make([]Object, 0, len(s.objects))
	for _, e := range s.objects {
		out = append(out, e.obj)
	}
	return out
}

// SetGravity replaces the gravity vector.
func (s *System) SetGravity(g geom.Vec2) {
	if s == nil {
		return
	}
	s.gravity = g
}

// Gravity returns the current gravity vector.
func (s *System) Gravity() geom.Vec2 {
	if s == nil {
		return geom.Vec2{}
	}
	return s.gravity
}

// IgnoreLayerPair disables collision between two layer labels, in both
// orders. Static tiles ignore each other this way.
func (s *System) IgnoreLayerPair(a, b string) {
	if s == nil {
		return
	}
	s.ignored[[2]string{a, b}] = true
	s.ignored[[2]string{b, a}] = true
}

// Update advances the simulation by dtMs milliseconds.
func (s *System) Update(dtMs float64) {
	if s == nil || dtMs <= 0 {
		return
	}
	dt := dtMs / 1000.0
	if dt > maxStep {
		dt = maxStep
	}

	s.applyForces(dt)
	s.updatePositions(dt)
	s.constrainToBounds()
	s.resolveCollisions()
}

func (s *System) applyForces(dt float64) {
	for _, e := range s.objects {
		obj := e.obj
		if obj.Mass() <= 0 || !obj.AffectedByGravity() {
			continue
		}
		vel := obj.Velocity()
		vel.X += s.gravity.X * dt
		vel.Y += s.gravity.Y * dt
	}
}

func (s *System) updatePositions(dt float64) {
	for _, e := range s.objects {
		obj := e.obj
		if obj.Mass() <= 0 {
			continue
		}
		pos := obj.Position()
		vel := obj.Velocity()
		pos.X += vel.X * dt
		pos.Y += vel.Y * dt
		if shape := obj.Shape(); shape != nil {
			shape.SetCenter(*pos)
		}
	}
}

// constrainToBounds clamps escaped objects back inside the world and gives
// them a damped bounce on the violated axis.
func (s *System) constrainToBounds() {
	if s.worldWidth <= 0 || s.worldHeight <= 0 {
		return
	}
	for _, e := range s.objects {
		obj := e.obj
		if obj.Mass() <= 0 {
			continue
		}
		shape := obj.Shape()
		if shape == nil {
			continue
		}

		bounds := shape.Bounds()
		pos := obj.Position()
		vel := obj.Velocity()
		moved := false

		if bounds.X < 0 {
			pos.X += -bounds.X
			vel.X *= boundsDamping
			moved = true
		} else if bounds.X+bounds.Width > s.worldWidth {
			pos.X -= bounds.X + bounds.Width - s.worldWidth
			vel.X *= boundsDamping
			moved = true
		}

		if bounds.Y < 0 {
			pos.Y += -bounds.Y
			vel.Y *= boundsDamping
			moved = true
		} else if bounds.Y+bounds.Height > s.worldHeight {
			pos.Y -= bounds.Y + bounds.Height - s.worldHeight
			vel.Y *= boundsDamping
			moved = true
		}

		if moved {
			shape.SetCenter(*pos)
		}
	}
}

// resolveCollisions runs up to solverIterations full pair scans, stopping
// early once a scan finds no overlap.
func (s *System) resolveCollisions() {
	for iter := 0; iter < solverIterations; iter++ {
		found := 0
		for i := 0; i < len(s.objects); i++ {
			for j := i + 1; j < len(s.objects); j++ {
				a := s.objects[i]
				b := s.objects[j]
				if !a.obj.Collidable() || !b.obj.Collidable() {
					continue
				}
				if a.obj.Mass() <= 0 && b.obj.Mass() <= 0 {
					continue
				}
				if s.ignored[[2]string{a.layer, b.layer}] {
					continue
				}

				col, ok := detect(a.obj, b.obj)
				if !ok {
					continue
				}
				found++
				s.resolve(col)
			}
		}
		if found == 0 {
			return
		}
	}
}

func (s *System) resolve(col Collision) {
	s.correctPositions(col)
	s.applyImpulse(col)

	// Both sides always observe the contact; gameplay reactions (grounding,
	// hazard triggers) hang off these callbacks.
	col.A.OnCollision(col.B, col)
	col.B.OnCollision(col.A, col.Inverted())
}

// correctPositions pushes the pair apart by correctionPercent of the
// penetration beyond slop, split by inverse mass. Statics never move.
func (s *System) correctPositions(col Collision) {
	invA := inverseMass(col.A)
	invB := inverseMass(col.B)
	if invA+invB == 0 {
		return
	}

	depth := col.Penetration - penetrationSlop
	if depth <= 0 {
		return
	}
	magnitude := depth * correctionPercent / (invA + invB)

	if invA > 0 {
		pos := col.A.Position()
		pos.X -= col.Normal.X * magnitude * invA
		pos.Y -= col.Normal.Y * magnitude * invA
		if shape := col.A.Shape(); shape != nil {
			shape.SetCenter(*pos)
		}
	}
	if invB > 0 {
		pos := col.B.Position()
		pos.X += col.Normal.X * magnitude * invB
		pos.Y += col.Normal.Y * magnitude * invB
		if shape := col.B.Shape(); shape != nil {
			shape.SetCenter(*pos)
		}
	}
}

// applyImpulse adjusts velocities along the contact normal. Pairs already
// separating are left alone.
func (s *System) applyImpulse(col Collision) {
	invA := inverseMass(col.A)
	invB := inverseMass(col.B)
	if invA+invB == 0 {
		return
	}

	velA := col.A.Velocity()
	velB := col.B.Velocity()
	relX := velB.X - velA.X
	relY := velB.Y - velA.Y
	alongNormal := relX*col.Normal.X + relY*col.Normal.Y
	if alongNormal > 0 {
		return
	}

	// the less bouncy body wins so sticky bodies can rest on bouncy ones
	e := col.A.Restitution()
	if r := col.B.Restitution(); r < e {
		e = r
	}
	j := -(1 + e) * alongNormal / (invA + invB)

	if invA > 0 {
		velA.X -= col.Normal.X * j * invA
		velA.Y -= col.Normal.Y * j * invA
	}
	if invB > 0 {
		velB.X += col.Normal.X * j * invB
		velB.Y += col.Normal.Y * j * invB
	}
}

func inverseMass(obj Object) float64 {
	m := obj.Mass()
	if m <= 0 {
		return 0
	}
	return 1 / m
}
