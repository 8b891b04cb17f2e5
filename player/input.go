package player

import "github.com/hollowmoor/driftblade/input"

// inputComponent polls the provider once per frame and turns raw key state
// into intents on the player: a target horizontal velocity and action
// requests. It never touches position or the discrete state directly.
//
// Raw state is captured even while animation-locked so buffered inputs
// survive the lock; it is only acted on when the player is unlocked.
type inputComponent struct {
	provider input.Provider
}

func newInputComponent(provider input.Provider) *inputComponent {
	return &inputComponent{provider: provider}
}

func (c *inputComponent) update(p *Player, dtMs float64) {
	if c == nil || c.provider == nil {
		p.targetVX = 0
		return
	}

	now := p.clk.Now()
	in := c.provider

	left := in.Pressed(input.Left)
	right := in.Pressed(input.Right)
	up := in.Pressed(input.Up)
	down := in.Pressed(input.Down)
	runHeld := in.Pressed(input.Run)

	moveDir := 0.0
	if left {
		moveDir -= 1
	}
	if right {
		moveDir += 1
	}
	p.moveDir = moveDir
	p.wasTryingToMove = moveDir != 0

	// capture: stamps recorded regardless of locks
	if in.JustPressed(input.Jump) {
		p.lastJumpPressAt = now
	}
	if down && moveDir != 0 {
		if p.downMoveHeldAt == never {
			p.downMoveHeldAt = now
		}
	} else {
		p.downMoveHeldAt = never
	}

	if p.animationLocked() {
		p.targetVX = 0
		return
	}

	vx := p.Velocity().X

	// facing follows movement; reversing at speed kicks off the turn
	// sub-animation
	if moveDir > 0 {
		if !p.facingRight && p.onGround && vx < -p.tuning.WalkSpeed && !p.turning {
			p.turning = true
			p.turnStartedAt = now
		}
		p.facingRight = true
	} else if moveDir < 0 {
		if p.facingRight && p.onGround && vx > p.tuning.WalkSpeed && !p.turning {
			p.turning = true
			p.turnStartedAt = now
		}
		p.facingRight = false
	}

	// movement intent
	speed := p.tuning.WalkSpeed
	if p.crouching {
		speed = p.tuning.CrouchSpeed
	} else if runHeld {
		speed = p.tuning.RunSpeed
	}
	p.targetVX = moveDir * speed * p.buffComp.factor(BuffSpeed)

	// crouch vs slide: DOWN while grounded slides only at running speed
	// with slide off cooldown, otherwise crouches
	if down && p.onGround && !p.sliding && !p.crouching && !p.dashing {
		if abs(vx) > p.tuning.RunThreshold() && c.slideReady(p) {
			p.startSlide()
		} else {
			p.crouching = true
		}
	}
	if !down && p.crouching {
		p.crouching = false
	}

	c.consumeJump(p, now)

	if in.JustPressed(input.Dash) {
		c.dashOrSlide(p, up, down, now)
	}
	if in.JustPressed(input.Blink) {
		c.tryBlink(p, up, down, now)
	}
	if in.JustPressed(input.Warp) {
		c.tryWarp(p, up, down, now)
	}
	if in.JustPressed(input.Hook) {
		c.tryHook(p, up, down, now)
	}
	if in.JustPressed(input.Attack) && p.cooldownReady(p.lastAttackAt, p.tuning.AttackCooldown) {
		p.combatComp.requestAttack(p)
	}
}

// consumeJump fires a buffered jump press the first frame it becomes
// valid: grounded, inside coyote time, or as an air jump when the double
// jump buff allows one.
func (c *inputComponent) consumeJump(p *Player, now float64) {
	if p.dashing || p.hooking {
		return
	}
	if p.lastJumpPressAt == never {
		return
	}
	if now-p.lastJumpPressAt > p.tuning.JumpBuffer {
		return
	}

	if p.onGround {
		p.jump()
		return
	}

	// coyote: a first jump still works briefly after walking off an edge
	if p.jumpCount == 0 && now-p.lastGroundAt <= p.tuning.CoyoteTime {
		p.jump()
		return
	}

	if p.buffComp.has(BuffDoubleJump) && p.jumpCount < p.tuning.MaxJumps {
		p.jump()
	}
}

// dashOrSlide disambiguates the dash key: a fresh DOWN+move hold under the
// tap window means the player wants a slide, not a dash.
func (c *inputComponent) dashOrSlide(p *Player, up, down bool, now float64) {
	if p.dashing || p.sliding || p.hooking {
		return
	}

	if down && p.downMoveHeldAt != never &&
		now-p.downMoveHeldAt < p.tuning.SlideTapWindow &&
		p.onGround && c.slideReady(p) {
		p.startSlide()
		return
	}

	if p.cooldownReady(p.lastDashAt, p.tuning.DashCooldown) {
		p.startDash(p.actionDirection(up, down))
	}
}

func (c *inputComponent) tryBlink(p *Player, up, down bool, now float64) {
	if p.dashing || p.sliding || p.hooking {
		return
	}
	if !p.cooldownReady(p.lastBlinkAt, p.tuning.BlinkCooldown) {
		return
	}
	if !p.spendMana(p.tuning.BlinkManaCost) {
		return
	}
	p.lastBlinkAt = now
	p.teleport(p.actionDirection(up, down), p.tuning.BlinkDistance)
	p.sounds.PlayEffect("blink")
}

func (c *inputComponent) tryWarp(p *Player, up, down bool, now float64) {
	if p.dashing || p.sliding || p.hooking {
		return
	}
	if !p.cooldownReady(p.lastWarpAt, p.tuning.WarpCooldown) {
		return
	}
	if !p.spendMana(p.tuning.WarpManaCost) {
		return
	}
	p.lastWarpAt = now
	p.teleport(p.actionDirection(up, down), p.tuning.WarpDistance)
	p.sounds.PlayEffect("warp")
}

func (c *inputComponent) tryHook(p *Player, up, down bool, now float64) {
	if p.dashing || p.sliding || p.hooking {
		return
	}
	if !p.cooldownReady(p.lastHookAt, p.tuning.HookCooldown) {
		return
	}
	if !p.spendMana(p.tuning.HookManaCost) {
		return
	}
	p.startHook(p.actionDirection(up, down))
}

// slideReady measures the cooldown from the end of the previous slide.
func (c *inputComponent) slideReady(p *Player) bool {
	return p.cooldownReady(p.slideEndedAt, p.tuning.SlideCooldown)
}
