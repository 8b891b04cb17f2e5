// Package player implements the component-based player controller: input
// intents, continuous physics, the discrete state machine, animation
// selection, combat, and buffs, composed in a fixed per-frame order.
package player

import (
	"github.com/hollowmoor/driftblade/audio"
	"github.com/hollowmoor/driftblade/clock"
	"github.com/hollowmoor/driftblade/config"
	"github.com/hollowmoor/driftblade/geom"
	"github.com/hollowmoor/driftblade/input"
	"github.com/hollowmoor/driftblade/physics"
	"github.com/hollowmoor/driftblade/sprite"
)

const (
	// collision box size in world units
	bodyWidth  = 32
	bodyHeight = 64

	// turn sub-animation length
	turnDuration = 150

	// a stamp meaning "has not happened"
	never = -1 << 30
)

// component is one focused unit of the per-frame player pipeline.
type component interface {
	update(p *Player, dtMs float64)
}

// Player is the richest entity: a physics body plus the component set that
// drives it. One Update per simulation tick; all mutation happens on the
// game loop goroutine.
type Player struct {
	*physics.Body

	tuning config.Tuning
	clk    *clock.Clock
	sounds audio.Player

	// flags
	onGround        bool
	wasOnGround     bool
	groundContact   bool
	dashing         bool
	hooking         bool
	sliding         bool
	crouching       bool
	turning         bool
	attacking       bool
	facingRight     bool
	wasTryingToMove bool
	landing         bool

	state   State
	context Context

	// intents written by the input component, consumed downstream
	moveDir  float64
	targetVX float64

	// timers are stamps on the simulation clock
	stateChangedAt  float64
	dashStartedAt   float64
	slideStartedAt  float64
	slideEndedAt    float64
	turnStartedAt   float64
	hookStartedAt   float64
	landedAt        float64
	lastGroundAt    float64
	lastJumpPressAt float64
	attackStartedAt float64
	lastDashAt      float64
	lastBlinkAt     float64
	lastWarpAt      float64
	lastHookAt      float64
	lastAttackAt    float64
	downMoveHeldAt  float64

	jumpCount int
	combo     int

	health float64
	mana   float64

	inputComp  *inputComponent
	physComp   *physicsComponent
	stateComp  *stateComponent
	animComp   *animComponent
	combatComp *combatComponent
	buffComp   *buffComponent

	components []component
}

// New creates the player centered at (x, y). The sprite library may be nil;
// the player then runs without art.
func New(x, y float64, tuning config.Tuning, clk *clock.Clock, provider input.Provider, sounds audio.Player, lib *sprite.Library) *Player {
	if sounds == nil {
		sounds = audio.Nop{}
	}

	p := &Player{
		Body:        physics.NewBody(x, y, 1, geom.NewAABB(0, 0, bodyWidth, bodyHeight)),
		tuning:      tuning,
		clk:         clk,
		sounds:      sounds,
		facingRight: true,
		state:       Idle,
		context:     CtxNormal,
		health:      tuning.MaxHealth,
		mana:        tuning.MaxMana,

		lastGroundAt:    never,
		lastJumpPressAt: never,
		attackStartedAt: never,
		landedAt:        never,
		lastDashAt:      never,
		lastBlinkAt:     never,
		lastWarpAt:      never,
		lastHookAt:      never,
		lastAttackAt:    never,
		slideEndedAt:    never,
		downMoveHeldAt:  never,
	}
	p.SetFriction(0.2)
	p.SetRestitution(0)

	p.inputComp = newInputComponent(provider)
	p.physComp = &physicsComponent{}
	p.stateComp = &stateComponent{}
	p.animComp = newAnimComponent(lib)
	p.combatComp = newCombatComponent()
	p.buffComp = newBuffComponent()

	// fixed pipeline order: buffs tick, then input -> physics -> state ->
	// animation/combat read the settled values
	p.components = []component{
		p.buffComp,
		p.inputComp,
		p.physComp,
		p.stateComp,
		p.animComp,
		p.combatComp,
	}
	return p
}

// BeginPhysics clears per-step contact bookkeeping. The scene calls it
// right before the physics system update each frame.
func (p *Player) BeginPhysics() {
	p.groundContact = false
}

// OnCollision implements the physics contact hook: grounding and hook
// attachment both hang off contact normals.
func (p *Player) OnCollision(other physics.Object, c physics.Collision) {
	// normal points away from us; a downward normal means support below
	if c.Normal.Y > 0.7 {
		p.groundContact = true
	}
	if c.Normal.Y < -0.7 && p.Velocity().Y < 0 {
		// ceiling bump kills the rest of the jump
		p.Velocity().Y = 0
	}
	if p.hooking && abs(c.Normal.X) > 0.7 {
		p.endHook()
	}
}

// Update runs one simulation tick of dtMs milliseconds. The caller must
// have advanced the shared clock and run the physics system first.
func (p *Player) Update(dtMs float64) {
	now := p.clk.Now()

	p.wasOnGround = p.onGround
	p.onGround = p.groundContact
	if p.onGround {
		p.lastGroundAt = now
	}
	if !p.wasOnGround && p.onGround {
		p.touchdown(now)
	}

	for _, c := range p.components {
		c.update(p, dtMs)
	}
}

// touchdown handles the first frame back on the ground: the air state is
// reset and the landing lock starts. It runs before the components so a
// buffered jump consumed this same frame sees fresh state.
func (p *Player) touchdown(now float64) {
	p.landing = true
	p.landedAt = now
	p.jumpCount = 0
	p.SetAffectedByGravity(true)
	if p.hooking {
		p.endHook()
	}
	p.sounds.PlayEffect("land")
}

// --- actions ---

// jump applies the jump impulse. Takeoff pre-empts any timed state.
func (p *Player) jump() {
	force := p.tuning.JumpForce * p.buffComp.factor(BuffJumpHeight)
	p.Velocity().Y = -force
	p.jumpCount++
	p.onGround = false
	p.groundContact = false
	p.landing = false
	p.crouching = false
	if p.sliding {
		p.endSlide()
	}
	p.lastJumpPressAt = never
	p.sounds.PlayEffect("jump")
}

func (p *Player) startDash(dir geom.Vec2) {
	now := p.clk.Now()
	p.dashing = true
	p.crouching = false
	p.landing = false
	p.dashStartedAt = now
	p.lastDashAt = now

	vel := p.Velocity()
	vel.X = dir.X * p.tuning.DashSpeed
	vel.Y = dir.Y * p.tuning.DashSpeed
	if p.buffComp.has(BuffGravityDash) {
		p.SetAffectedByGravity(false)
	}
	p.sounds.PlayEffect("dash")
}

func (p *Player) endDash() {
	p.dashing = false
	p.SetAffectedByGravity(true)
}

func (p *Player) startSlide() {
	now := p.clk.Now()
	p.sliding = true
	p.crouching = false
	p.landing = false
	p.slideStartedAt = now

	dir := 1.0
	if !p.facingRight {
		dir = -1
	}
	p.Velocity().X = dir * p.tuning.SlideBoost
	p.sounds.PlayEffect("slide")
}

func (p *Player) endSlide() {
	p.sliding = false
	p.slideEndedAt = p.clk.Now()
}

func (p *Player) startHook(dir geom.Vec2) {
	now := p.clk.Now()
	p.hooking = true
	p.landing = false
	p.hookStartedAt = now
	p.lastHookAt = now

	vel := p.Velocity()
	vel.X = dir.X * p.tuning.HookSpeed
	vel.Y = dir.Y * p.tuning.HookSpeed
	p.SetAffectedByGravity(false)
	p.sounds.PlayEffect("hook")
}

func (p *Player) endHook() {
	p.hooking = false
	p.SetAffectedByGravity(true)
}

// teleport shifts the player instantly and leaves velocity untouched.
func (p *Player) teleport(dir geom.Vec2, distance float64) {
	pos := p.Position()
	pos.X += dir.X * distance
	pos.Y += dir.Y * distance
	if shape := p.Shape(); shape != nil {
		shape.SetCenter(*pos)
	}
}

// spendMana deducts cost if available and reports whether it was spent.
func (p *Player) spendMana(cost float64) bool {
	if cost <= 0 {
		return true
	}
	if p.mana < cost {
		return false
	}
	p.mana -= cost
	return true
}

// actionDirection derives a dash/teleport/hook direction from facing plus
// any held vertical input. Diagonals are scaled down.
func (p *Player) actionDirection(up, down bool) geom.Vec2 {
	dir := geom.Vec2{X: 1}
	if !p.facingRight {
		dir.X = -1
	}
	if up != down {
		if up {
			dir.Y = -1
		} else {
			dir.Y = 1
		}
		dir.Scale(p.tuning.DiagonalScale)
	}
	return dir
}

// animationLocked reports whether non-movement input is currently ignored
// so an attack animation can play out.
func (p *Player) animationLocked() bool {
	return p.attacking && p.clk.Since(p.attackStartedAt) < p.tuning.AttackWindow
}

func (p *Player) cooldownReady(last, cooldown float64) bool {
	return p.clk.Since(last) >= cooldown
}

// --- accessors for the scene, HUD, and debug console ---

func (p *Player) State() State             { return p.state }
func (p *Player) Context() Context         { return p.context }
func (p *Player) OnGround() bool           { return p.onGround }
func (p *Player) FacingRight() bool        { return p.facingRight }
func (p *Player) JumpCount() int           { return p.jumpCount }
func (p *Player) Combo() int               { return p.combo }
func (p *Player) Health() float64          { return p.health }
func (p *Player) Mana() float64            { return p.mana }
func (p *Player) Sprite() sprite.Sprite    { return p.animComp.current }
func (p *Player) Tuning() config.Tuning    { return p.tuning }

// Hitbox returns the active attack hitbox in world space, mirrored by
// facing, and false when no attack is in flight.
func (p *Player) Hitbox() (geom.AABB, bool) {
	return p.combatComp.hitbox(p)
}

// SetTuning swaps the tuning set, used by config hot reload.
func (p *Player) SetTuning(t config.Tuning) {
	p.tuning = t
}

// AddBuff starts (or restarts) an effect for durationMs.
func (p *Player) AddBuff(kind BuffKind, durationMs float64) {
	p.buffComp.add(kind, durationMs)
}

// HasBuff reports whether the effect is active.
func (p *Player) HasBuff(kind BuffKind) bool {
	return p.buffComp.has(kind)
}
