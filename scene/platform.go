package scene

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/hollowmoor/driftblade/geom"
	"github.com/hollowmoor/driftblade/level"
	"github.com/hollowmoor/driftblade/physics"
)

// tilesLayer is the physics layer all level geometry lives on. Static tiles
// never collide with each other, so the pair is ignored at setup.
const tilesLayer = "tiles"

// Platform is one merged run of solid level tiles as a static body.
type Platform struct {
	*physics.Body
}

func newPlatform(box geom.AABB) *Platform {
	cx := box.X + box.Width/2
	cy := box.Y + box.Height/2
	b := physics.NewBody(cx, cy, 0, geom.NewAABB(0, 0, box.Width, box.Height))
	b.SetRestitution(0)
	return &Platform{Body: b}
}

// MovingPlatform oscillates between its origin and origin+offset on a
// linear tween sequence. It is static as far as the solver is concerned;
// its position is driven directly.
type MovingPlatform struct {
	*physics.Body

	originX, originY float64
	dx, dy           float64
	seq              *gween.Sequence
}

func newMovingPlatform(m level.Mover) *MovingPlatform {
	cx := m.X + m.Width/2
	cy := m.Y + m.Height/2
	b := physics.NewBody(cx, cy, 0, geom.NewAABB(0, 0, m.Width, m.Height))
	b.SetRestitution(0)

	period := m.Period
	if period <= 0 {
		period = 4
	}
	half := float32(period / 2)
	return &MovingPlatform{
		Body:    b,
		originX: cx,
		originY: cy,
		dx:      m.DX,
		dy:      m.DY,
		seq: gween.NewSequence(
			gween.New(0, 1, half, ease.Linear),
			gween.New(1, 0, half, ease.Linear),
		),
	}
}

// Update advances the tween and repositions the body.
func (p *MovingPlatform) Update(dtMs float64) {
	t, _, seqDone := p.seq.Update(float32(dtMs / 1000))
	if seqDone {
		p.seq.Reset()
	}
	p.SetPosition(p.originX+p.dx*float64(t), p.originY+p.dy*float64(t))
}
