package player

// State is the single discrete behavior/animation state active on a frame.
type State int

const (
	Idle State = iota
	Walking
	Running
	Jumping
	Falling
	Dashing
	Landing
	Sliding
	Attacking
	Hooking
)

var stateNames = [...]string{
	"idle", "walking", "running", "jumping", "falling",
	"dashing", "landing", "sliding", "attacking", "hooking",
}

func (s State) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return "unknown"
	}
	return stateNames[s]
}

// Context is the secondary movement classification layered on a State to
// pick among sprites and physics tunings for the same discrete state.
type Context int

const (
	CtxNormal Context = iota
	CtxRunning
	CtxDashing
	CtxCrouching
	CtxSliding
)

var contextNames = [...]string{"normal", "running", "dashing", "crouching", "sliding"}

func (c Context) String() string {
	if c < 0 || int(c) >= len(contextNames) {
		return "unknown"
	}
	return contextNames[c]
}

// Snapshot is everything the state derivation reads: flags, timers, and
// velocity. It carries no references, so Derive is pure and testable.
type Snapshot struct {
	Now float64

	OnGround    bool
	Sliding     bool
	Dashing     bool
	Turning     bool
	Attacking   bool
	Hooking     bool
	Crouching   bool
	GravityDash bool

	Landing         bool
	LandedAt        float64
	AttackStartedAt float64

	VelX, VelY float64

	IdleThreshold float64
	RunThreshold  float64
	LandingLock   float64
	AttackWindow  float64

	PrevState   State
	PrevContext Context
}

// Derive maps one frame's continuous physics data and discrete flags to the
// player's State and Context. Rules are evaluated in priority order; the
// first match wins.
func Derive(s Snapshot) (State, Context) {
	// 1. sliding outranks everything
	if s.Sliding {
		return Sliding, CtxSliding
	}

	// 2. dashing; once airborne and falling the dash shows as a fall unless
	// a gravity dash cancels gravity outright
	if s.Dashing {
		if !s.OnGround && s.VelY > 0 && !s.GravityDash {
			return Falling, CtxDashing
		}
		return Dashing, CtxDashing
	}

	// 3. a turn is a sub-animation of running, not its own gameplay state
	if s.Turning {
		return Running, CtxRunning
	}

	// 4. attacking holds only inside its window
	if s.Attacking && s.Now-s.AttackStartedAt < s.AttackWindow {
		return Attacking, s.PrevContext
	}

	// 5.
	if s.Hooking {
		return Hooking, s.PrevContext
	}

	// 6. landing locks the state until the lock elapses
	if s.Landing {
		if s.Now-s.LandedAt < s.LandingLock {
			return Landing, landingContext(s)
		}
		// exiting the lock while crouched goes to idle rather than walking
		if s.PrevState == Landing && s.Crouching {
			return Idle, CtxCrouching
		}
	}

	if s.OnGround {
		return groundState(s)
	}
	return airState(s)
}

func landingContext(s Snapshot) Context {
	if s.Crouching {
		return CtxCrouching
	}
	if abs(s.VelX) > s.RunThreshold {
		return CtxRunning
	}
	return CtxNormal
}

func groundState(s Snapshot) (State, Context) {
	speed := abs(s.VelX)
	ctx := CtxNormal
	if s.Crouching {
		ctx = CtxCrouching
	}

	switch {
	case speed < s.IdleThreshold:
		return Idle, ctx
	case speed > s.RunThreshold:
		if ctx == CtxNormal {
			ctx = CtxRunning
		}
		return Running, ctx
	default:
		return Walking, ctx
	}
}

// airState preserves whatever context was active before leaving the ground.
func airState(s Snapshot) (State, Context) {
	if s.VelY < 0 {
		return Jumping, s.PrevContext
	}
	return Falling, s.PrevContext
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
