package player

// physicsComponent consumes the frame's intents: it steers horizontal
// velocity toward targetVX, winds down timed actions, applies ground and
// slide friction, clamps speed, and regenerates mana. Gravity itself is
// applied by the physics world, not here.
type physicsComponent struct{}

func (c *physicsComponent) update(p *Player, dtMs float64) {
	now := p.clk.Now()
	dt := dtMs / 1000

	if p.dashing && now-p.dashStartedAt >= p.tuning.DashDuration {
		p.endDash()
	}
	if p.hooking && now-p.hookStartedAt >= p.tuning.HookDuration {
		p.endHook()
	}
	if p.turning && now-p.turnStartedAt >= turnDuration {
		p.turning = false
	}

	vel := p.Velocity()

	switch {
	case p.sliding:
		// slides decay under their own friction until too slow, too
		// long, or airborne
		decay(&vel.X, p.tuning.SlideFriction*dt)
		if abs(vel.X) < p.tuning.SlideMinSpeed ||
			now-p.slideStartedAt >= p.tuning.SlideMaxDuration ||
			!p.onGround {
			p.endSlide()
		}
	case p.dashing, p.hooking:
		// velocity is owned by the action until it ends
	case p.targetVX == 0 && p.onGround && !p.wasTryingToMove:
		decay(&vel.X, p.tuning.GroundFriction*dt)
	default:
		accel := p.tuning.AccelAir
		if p.onGround {
			switch {
			case p.crouching:
				accel = p.tuning.AccelCrouch
			case abs(p.targetVX) > p.tuning.WalkSpeed:
				accel = p.tuning.AccelRun
			default:
				accel = p.tuning.AccelWalk
			}
		}
		approach(&vel.X, p.targetVX, accel*dt)
	}

	if vel.X > p.tuning.MaxSpeedX {
		vel.X = p.tuning.MaxSpeedX
	} else if vel.X < -p.tuning.MaxSpeedX {
		vel.X = -p.tuning.MaxSpeedX
	}
	if vel.Y > p.tuning.MaxSpeedY {
		vel.Y = p.tuning.MaxSpeedY
	} else if vel.Y < -p.tuning.MaxSpeedY {
		vel.Y = -p.tuning.MaxSpeedY
	}

	p.mana += p.tuning.ManaRegen * dt
	if p.mana > p.tuning.MaxMana {
		p.mana = p.tuning.MaxMana
	}
}

// decay moves v toward zero by at most step without crossing it.
func decay(v *float64, step float64) {
	switch {
	case *v > step:
		*v -= step
	case *v < -step:
		*v += step
	default:
		*v = 0
	}
}

// approach moves v toward target by at most step without overshooting.
func approach(v *float64, target, step float64) {
	switch {
	case *v < target-step:
		*v += step
	case *v > target+step:
		*v -= step
	default:
		*v = target
	}
}
