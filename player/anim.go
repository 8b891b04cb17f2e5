package player

import (
	"fmt"

	"github.com/hollowmoor/driftblade/sprite"
)

// animComponent owns the player's visible sprite. Animation keys are built
// from the current state and context ("running", "jumping_dashing"); attack
// stages get their own keys so each combo hit restarts its clip. A nil
// library leaves the player sprite-less but otherwise fully functional.
type animComponent struct {
	lib     *sprite.Library
	current sprite.Sprite
	key     string
}

func newAnimComponent(lib *sprite.Library) *animComponent {
	return &animComponent{lib: lib}
}

func (a *animComponent) update(p *Player, dtMs float64) {
	if a.current != nil {
		a.current.Update(dtMs)
	}
}

// stateChanged re-selects the sprite after a state or context transition.
// When the specific state_context clip does not exist the bare state clip
// serves for every context.
func (a *animComponent) stateChanged(p *Player) {
	if p.state == Attacking {
		a.playAttack(p)
		return
	}
	key := p.state.String()
	if p.context != CtxNormal {
		full := key + "_" + p.context.String()
		if a.lib != nil && a.lib.Has(full) {
			key = full
		}
	}
	a.play(key)
}

// playAttack always restarts the clip so chained combo stages each play
// from their first frame.
func (a *animComponent) playAttack(p *Player) {
	a.key = ""
	a.play(fmt.Sprintf("attack_%d", p.combo))
}

func (a *animComponent) play(key string) {
	if a.lib == nil {
		a.current = nil
		a.key = key
		return
	}
	if key == a.key && a.current != nil {
		return
	}
	a.key = key
	a.current = a.lib.New(key)
}
