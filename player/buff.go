package player

// BuffKind identifies one temporary effect. Kinds with a multiplier scale a
// quantity; the rest gate behavior on or off.
type BuffKind int

const (
	BuffSpeed BuffKind = iota
	BuffJumpHeight
	BuffDoubleJump
	BuffGravityDash
	BuffFireImmunity
	BuffPoisonImmunity
)

var buffNames = [...]string{
	"speed", "jump_height", "double_jump", "gravity_dash",
	"fire_immunity", "poison_immunity",
}

func (k BuffKind) String() string {
	if k < 0 || int(k) >= len(buffNames) {
		return "unknown"
	}
	return buffNames[k]
}

// BuffKindByName resolves a kind from its string form, for scripts and
// pickups defined in data files.
func BuffKindByName(name string) (BuffKind, bool) {
	for i, n := range buffNames {
		if n == name {
			return BuffKind(i), true
		}
	}
	return 0, false
}

// multiplier returns the fixed scale factor for a kind. Gating kinds stay
// at 1.
func (k BuffKind) multiplier() float64 {
	switch k {
	case BuffSpeed:
		return 1.5
	case BuffJumpHeight:
		return 1.3
	default:
		return 1.0
	}
}

// Buff is one active effect.
type Buff struct {
	Multiplier float64
	Remaining  float64 // ms
}

// buffComponent tracks active effects. At most one effect per kind;
// re-adding a kind replaces the previous effect.
type buffComponent struct {
	active map[BuffKind]*Buff
}

func newBuffComponent() *buffComponent {
	return &buffComponent{active: make(map[BuffKind]*Buff)}
}

// add starts (or restarts) an effect lasting durationMs.
func (b *buffComponent) add(kind BuffKind, durationMs float64) {
	if b == nil || durationMs <= 0 {
		return
	}
	b.active[kind] = &Buff{Multiplier: kind.multiplier(), Remaining: durationMs}
}

func (b *buffComponent) update(p *Player, dtMs float64) {
	if b == nil {
		return
	}
	for kind, buff := range b.active {
		buff.Remaining -= dtMs
		if buff.Remaining <= 0 {
			delete(b.active, kind)
		}
	}
}

// has reports whether kind is active.
func (b *buffComponent) has(kind BuffKind) bool {
	if b == nil {
		return false
	}
	_, ok := b.active[kind]
	return ok
}

// factor returns the active multiplier for kind, or 1 when inactive.
func (b *buffComponent) factor(kind BuffKind) float64 {
	if b == nil {
		return 1
	}
	if buff, ok := b.active[kind]; ok {
		return buff.Multiplier
	}
	return 1
}
