package player

// stateComponent snapshots the frame and runs the state derivation.
// Everything that changes the discrete state funnels through here so the
// animation component sees exactly one transition per frame.
type stateComponent struct{}

func (c *stateComponent) update(p *Player, dtMs float64) {
	now := p.clk.Now()

	state, ctx := Derive(Snapshot{
		Now:             now,
		OnGround:        p.onGround,
		Sliding:         p.sliding,
		Dashing:         p.dashing,
		Turning:         p.turning,
		Attacking:       p.attacking,
		Hooking:         p.hooking,
		Crouching:       p.crouching,
		GravityDash:     p.buffComp.has(BuffGravityDash),
		Landing:         p.landing,
		LandedAt:        p.landedAt,
		AttackStartedAt: p.attackStartedAt,
		VelX:            p.Velocity().X,
		VelY:            p.Velocity().Y,
		IdleThreshold:   p.tuning.IdleThreshold,
		RunThreshold:    p.tuning.RunThreshold(),
		LandingLock:     p.tuning.LandingLock,
		AttackWindow:    p.tuning.AttackWindow,
		PrevState:       p.state,
		PrevContext:     p.context,
	})

	// the landing flag only matters while the lock holds the state
	if p.landing && state != Landing {
		p.landing = false
	}

	if state != p.state || ctx != p.context {
		p.state = state
		p.context = ctx
		p.stateChangedAt = now
		p.animComp.stateChanged(p)
	}
}
