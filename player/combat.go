package player

import "github.com/hollowmoor/driftblade/geom"

// combatComponent tracks the melee combo chain. Attacks issued within the
// combo window of the previous hit advance the stage up to the configured
// maximum; a longer gap resets the chain to stage one. Each stage carries
// its own hitbox, expressed as an offset from the body center when facing
// right.
type combatComponent struct {
	hitboxes map[int]geom.AABB
}

func newCombatComponent() *combatComponent {
	return &combatComponent{
		hitboxes: map[int]geom.AABB{
			1: {X: 14, Y: -14, Width: 38, Height: 28},
			2: {X: 14, Y: -20, Width: 44, Height: 40},
			3: {X: 10, Y: -24, Width: 56, Height: 48},
		},
	}
}

// requestAttack starts or advances the combo. The caller has already
// checked the attack cooldown.
func (c *combatComponent) requestAttack(p *Player) {
	now := p.clk.Now()
	if p.combo >= 1 && p.combo < p.tuning.ComboMax &&
		now-p.lastAttackAt <= p.tuning.ComboWindow {
		p.combo++
	} else {
		p.combo = 1
	}
	p.attacking = true
	p.attackStartedAt = now
	p.lastAttackAt = now
	p.animComp.playAttack(p)
	p.sounds.PlayEffect("attack")
}

func (c *combatComponent) update(p *Player, dtMs float64) {
	now := p.clk.Now()

	if p.attacking {
		done := now-p.attackStartedAt >= p.tuning.AttackWindow
		if spr := p.animComp.current; spr != nil && spr.Done() {
			done = true
		}
		if done {
			p.attacking = false
		}
	}

	// stale chains reset once the window lapses
	if !p.attacking && p.combo > 0 && now-p.lastAttackAt > p.tuning.ComboWindow {
		p.combo = 0
	}
}

// hitbox returns the world-space hitbox for the active stage, mirrored
// across the body center when facing left.
func (c *combatComponent) hitbox(p *Player) (geom.AABB, bool) {
	if !p.attacking || p.combo == 0 {
		return geom.AABB{}, false
	}
	hb, ok := c.hitboxes[p.combo]
	if !ok {
		return geom.AABB{}, false
	}
	pos := p.Position()
	x := pos.X + hb.X
	if !p.facingRight {
		x = pos.X - hb.X - hb.Width
	}
	return geom.AABB{X: x, Y: pos.Y + hb.Y, Width: hb.Width, Height: hb.Height}, true
}
