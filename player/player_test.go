package player

import (
	"testing"

	"github.com/hollowmoor/driftblade/clock"
	"github.com/hollowmoor/driftblade/config"
	"github.com/hollowmoor/driftblade/geom"
	"github.com/hollowmoor/driftblade/input"
	"github.com/hollowmoor/driftblade/physics"
)

const frameMs = 1000.0 / 60

// rig runs a player against a real physics world with a scripted input
// provider. The floor top sits at y=632 so the player body (64 tall,
// centered at y=600) rests exactly on it.
type rig struct {
	clk    *clock.Clock
	world  *physics.System
	in     *input.Script
	player *Player
	floor  *physics.Body
}

func newRig(t *testing.T) *rig {
	t.Helper()

	clk := clock.New()
	in := input.NewScript()
	world := physics.NewSystem(4000, 2000)

	p := New(500, 600, config.Default(), clk, in, nil, nil)
	world.AddObject(p, "player")

	floor := physics.NewBody(2000, 680, 0, geom.NewAABB(0, 0, 4000, 96))
	world.AddObject(floor, "tiles")

	r := &rig{clk: clk, world: world, in: in, player: p, floor: floor}
	r.settle()
	return r
}

func (r *rig) step() {
	r.clk.Advance(frameMs)
	r.player.BeginPhysics()
	r.world.Update(frameMs)
	r.player.Update(frameMs)
	r.in.Step()
}

func (r *rig) stepFor(ms float64) {
	for e := 0.0; e < ms; e += frameMs {
		r.step()
	}
}

// settle drops the player onto the floor and lets the landing lock lapse.
func (r *rig) settle() {
	r.stepFor(1500)
}

func TestPlayerRestsIdle(t *testing.T) {
	r := newRig(t)

	if !r.player.OnGround() {
		t.Fatal("player should be grounded after settling")
	}
	if got := r.player.State(); got != Idle {
		t.Fatalf("state = %v, want %v", got, Idle)
	}
	if got := r.player.Context(); got != CtxNormal {
		t.Fatalf("context = %v, want %v", got, CtxNormal)
	}
}

func TestWalkThenRun(t *testing.T) {
	r := newRig(t)

	r.in.Hold(input.Right)
	r.stepFor(500)

	if got := r.player.State(); got != Walking {
		t.Fatalf("holding right: state = %v, want %v", got, Walking)
	}
	if vx := r.player.Velocity().X; vx != r.player.Tuning().WalkSpeed {
		t.Fatalf("walk speed = %v, want %v", vx, r.player.Tuning().WalkSpeed)
	}
	if !r.player.FacingRight() {
		t.Fatal("should face right")
	}

	r.in.Hold(input.Run)
	r.stepFor(500)

	if got := r.player.State(); got != Running {
		t.Fatalf("holding run: state = %v, want %v", got, Running)
	}
	if got := r.player.Context(); got != CtxRunning {
		t.Fatalf("holding run: context = %v, want %v", got, CtxRunning)
	}
	if vx := r.player.Velocity().X; vx != r.player.Tuning().RunSpeed {
		t.Fatalf("run speed = %v, want %v", vx, r.player.Tuning().RunSpeed)
	}

	// letting go decays to a stop under ground friction
	r.in.Release(input.Right)
	r.in.Release(input.Run)
	r.stepFor(600)
	if got := r.player.State(); got != Idle {
		t.Fatalf("released: state = %v, want %v", got, Idle)
	}
}

func TestJumpArcStates(t *testing.T) {
	r := newRig(t)

	r.in.Tap(input.Jump)
	r.step()

	if r.player.OnGround() {
		t.Fatal("should leave the ground on jump")
	}
	if got := r.player.State(); got != Jumping {
		t.Fatalf("rising: state = %v, want %v", got, Jumping)
	}
	if got := r.player.JumpCount(); got != 1 {
		t.Fatalf("jump count = %d, want 1", got)
	}

	// ride to the apex and past it
	for i := 0; i < 600 && r.player.Velocity().Y <= 0; i++ {
		r.step()
	}
	if got := r.player.State(); got != Falling {
		t.Fatalf("past apex: state = %v, want %v", got, Falling)
	}

	// back on the floor: landing lock first, then idle
	for i := 0; i < 600 && !r.player.OnGround(); i++ {
		r.step()
	}
	if got := r.player.State(); got != Landing {
		t.Fatalf("touchdown: state = %v, want %v", got, Landing)
	}
	if got := r.player.JumpCount(); got != 0 {
		t.Fatalf("jump count after landing = %d, want 0", got)
	}

	r.stepFor(350)
	if got := r.player.State(); got != Idle {
		t.Fatalf("after landing lock: state = %v, want %v", got, Idle)
	}
}

func TestCoyoteJump(t *testing.T) {
	r := newRig(t)

	// the floor vanishes under the player's feet
	r.world.RemoveObject(r.floor)
	r.stepFor(100)
	if r.player.OnGround() {
		t.Fatal("player should be airborne")
	}

	r.in.Tap(input.Jump)
	r.step()
	if got := r.player.JumpCount(); got != 1 {
		t.Fatalf("jump inside coyote time: count = %d, want 1", got)
	}
	if vy := r.player.Velocity().Y; vy >= 0 {
		t.Fatalf("jump inside coyote time: vy = %v, want rising", vy)
	}
}

func TestCoyoteExpired(t *testing.T) {
	r := newRig(t)

	r.world.RemoveObject(r.floor)
	r.stepFor(400)

	r.in.Tap(input.Jump)
	r.step()
	if got := r.player.JumpCount(); got != 0 {
		t.Fatalf("jump after coyote time: count = %d, want 0", got)
	}
}

func TestJumpBufferFiresOnLanding(t *testing.T) {
	r := newRig(t)

	r.in.Tap(input.Jump)
	r.step()

	// fall most of the way back, then press jump early
	for i := 0; i < 600 && !(r.player.Velocity().Y > 0 && r.player.Position().Y > 560); i++ {
		r.step()
	}
	r.in.Tap(input.Jump)
	r.step()
	if r.player.OnGround() {
		t.Fatal("press should land in the buffer while still airborne")
	}
	if got := r.player.JumpCount(); got != 1 {
		t.Fatalf("air press without double jump: count = %d, want 1", got)
	}

	// touchdown consumes the buffered press on the same frame
	jumped := false
	for i := 0; i < 20; i++ {
		r.step()
		if r.player.JumpCount() == 1 && r.player.Velocity().Y < 0 {
			jumped = true
			break
		}
	}
	if !jumped {
		t.Fatal("buffered jump press never fired on landing")
	}
}

func TestDoubleJumpNeedsBuff(t *testing.T) {
	r := newRig(t)

	r.in.Tap(input.Jump)
	r.step()
	r.stepFor(100)

	r.in.Tap(input.Jump)
	r.step()
	if got := r.player.JumpCount(); got != 1 {
		t.Fatalf("air jump without buff: count = %d, want 1", got)
	}

	// let the stale press leave the buffer, then try again with the buff
	r.stepFor(250)
	r.player.AddBuff(BuffDoubleJump, 10000)
	r.in.Tap(input.Jump)
	r.step()
	if got := r.player.JumpCount(); got != 2 {
		t.Fatalf("air jump with buff: count = %d, want 2", got)
	}
}

func TestDashAndCooldown(t *testing.T) {
	r := newRig(t)

	r.in.Tap(input.Dash)
	r.step()

	if got := r.player.State(); got != Dashing {
		t.Fatalf("state = %v, want %v", got, Dashing)
	}
	if got := r.player.Context(); got != CtxDashing {
		t.Fatalf("context = %v, want %v", got, CtxDashing)
	}
	if vx := r.player.Velocity().X; vx != r.player.Tuning().DashSpeed {
		t.Fatalf("dash speed = %v, want %v", vx, r.player.Tuning().DashSpeed)
	}

	r.stepFor(300)
	if r.player.State() == Dashing {
		t.Fatal("dash should end after its duration")
	}

	// still cooling down
	r.in.Tap(input.Dash)
	r.step()
	if r.player.State() == Dashing {
		t.Fatal("dash accepted during cooldown")
	}

	r.stepFor(900)
	r.in.Tap(input.Dash)
	r.step()
	if got := r.player.State(); got != Dashing {
		t.Fatalf("after cooldown: state = %v, want %v", got, Dashing)
	}
}

func TestSlideThenCrouch(t *testing.T) {
	r := newRig(t)

	r.in.Hold(input.Right)
	r.in.Hold(input.Run)
	r.stepFor(500)
	if got := r.player.State(); got != Running {
		t.Fatalf("state = %v, want %v", got, Running)
	}

	r.in.Hold(input.Down)
	r.step()

	if got := r.player.State(); got != Sliding {
		t.Fatalf("down at speed: state = %v, want %v", got, Sliding)
	}
	if vx := r.player.Velocity().X; vx != r.player.Tuning().SlideBoost {
		t.Fatalf("slide boost = %v, want %v", vx, r.player.Tuning().SlideBoost)
	}

	// the slide decays under its own friction, then the held key crouches
	r.stepFor(700)
	if r.player.State() == Sliding {
		t.Fatal("slide should have terminated")
	}
	if got := r.player.Context(); got != CtxCrouching {
		t.Fatalf("down still held: context = %v, want %v", got, CtxCrouching)
	}

	r.in.Release(input.Down)
	r.step()
	if got := r.player.Context(); got == CtxCrouching {
		t.Fatal("crouch should clear on release")
	}
}

func TestAttackCombo(t *testing.T) {
	r := newRig(t)

	r.in.Tap(input.Attack)
	r.step()
	if got := r.player.State(); got != Attacking {
		t.Fatalf("state = %v, want %v", got, Attacking)
	}
	if got := r.player.Combo(); got != 1 {
		t.Fatalf("combo = %d, want 1", got)
	}
	if _, ok := r.player.Hitbox(); !ok {
		t.Fatal("active attack should expose a hitbox")
	}

	// chained inside the combo window, past the attack cooldown
	r.stepFor(360)
	r.in.Tap(input.Attack)
	r.step()
	if got := r.player.Combo(); got != 2 {
		t.Fatalf("combo = %d, want 2", got)
	}

	r.stepFor(360)
	r.in.Tap(input.Attack)
	r.step()
	if got := r.player.Combo(); got != 3 {
		t.Fatalf("combo = %d, want 3", got)
	}

	// a long gap resets the chain
	r.stepFor(700)
	if got := r.player.Combo(); got != 0 {
		t.Fatalf("combo after gap = %d, want 0", got)
	}
	r.in.Tap(input.Attack)
	r.step()
	if got := r.player.Combo(); got != 1 {
		t.Fatalf("restart combo = %d, want 1", got)
	}
}

func TestHitboxMirrorsFacing(t *testing.T) {
	r := newRig(t)

	r.in.Tap(input.Attack)
	r.step()
	right, ok := r.player.Hitbox()
	if !ok {
		t.Fatal("no hitbox while attacking")
	}
	if right.X <= r.player.Position().X {
		t.Fatalf("facing right: hitbox x = %v, want right of %v", right.X, r.player.Position().X)
	}

	// face left and attack again once everything cools down
	r.stepFor(800)
	r.in.Hold(input.Left)
	r.step()
	r.in.Release(input.Left)
	r.in.Tap(input.Attack)
	r.step()
	left, ok := r.player.Hitbox()
	if !ok {
		t.Fatal("no hitbox on second attack")
	}
	if left.X+left.Width >= r.player.Position().X+1 {
		t.Fatalf("facing left: hitbox ends at %v, want left of body center %v",
			left.X+left.Width, r.player.Position().X)
	}
}

func TestBlinkMovesAndSpendsMana(t *testing.T) {
	r := newRig(t)

	startX := r.player.Position().X
	startMana := r.player.Mana()

	r.in.Tap(input.Blink)
	r.step()

	if moved := r.player.Position().X - startX; moved < 120 {
		t.Fatalf("blink moved %v, want at least 120", moved)
	}
	if spent := startMana - r.player.Mana(); spent < 10 {
		t.Fatalf("blink spent %v mana, want about %v", spent, r.player.Tuning().BlinkManaCost)
	}

	// a second blink during cooldown does nothing
	x := r.player.Position().X
	r.in.Tap(input.Blink)
	r.step()
	if r.player.Position().X-x > 50 {
		t.Fatal("blink accepted during cooldown")
	}
}

func TestHookRunsItsDuration(t *testing.T) {
	r := newRig(t)

	r.in.Tap(input.Hook)
	r.step()

	if got := r.player.State(); got != Hooking {
		t.Fatalf("state = %v, want %v", got, Hooking)
	}
	if r.player.AffectedByGravity() {
		t.Fatal("gravity should pause while hooking")
	}

	r.stepFor(400)
	if r.player.State() == Hooking {
		t.Fatal("hook should end after its duration")
	}
	if !r.player.AffectedByGravity() {
		t.Fatal("gravity should resume after the hook")
	}
}

func TestCeilingBumpStopsAscent(t *testing.T) {
	r := newRig(t)

	// ceiling bottom at y=520, 48px above the player's head
	ceiling := physics.NewBody(500, 496, 0, geom.NewAABB(0, 0, 400, 48))
	r.world.AddObject(ceiling, "tiles")

	r.in.Tap(input.Jump)
	r.step()

	minY := r.player.Position().Y
	for i := 0; i < 60; i++ {
		r.step()
		if y := r.player.Position().Y; y < minY {
			minY = y
		}
	}

	// an unobstructed jump would peak near y=449
	if minY < 540 {
		t.Fatalf("player rose to %v despite the ceiling", minY)
	}
}

func TestBuffExpiry(t *testing.T) {
	r := newRig(t)

	r.player.AddBuff(BuffSpeed, 100)
	if !r.player.HasBuff(BuffSpeed) {
		t.Fatal("buff should be active immediately")
	}

	r.stepFor(150)
	if r.player.HasBuff(BuffSpeed) {
		t.Fatal("buff should expire after its duration")
	}
}

func TestSpeedBuffRaisesTarget(t *testing.T) {
	r := newRig(t)

	r.player.AddBuff(BuffSpeed, 10000)
	r.in.Hold(input.Right)
	r.stepFor(600)

	want := r.player.Tuning().WalkSpeed * 1.5
	if vx := r.player.Velocity().X; vx != want {
		t.Fatalf("buffed walk speed = %v, want %v", vx, want)
	}
}
