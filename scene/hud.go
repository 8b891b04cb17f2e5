package scene

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"

	"github.com/hollowmoor/driftblade/player"
)

// drawHUD renders the health and mana bars, plus a state readout when
// debug is on.
func drawHUD(screen *ebiten.Image, p *player.Player, debug bool) {
	t := p.Tuning()

	drawBar(screen, 16, 16, 180, 12, p.Health()/t.MaxHealth, colornames.Crimson)
	drawBar(screen, 16, 34, 180, 12, p.Mana()/t.MaxMana, colornames.Royalblue)

	if !debug {
		return
	}

	vel := p.Velocity()
	pos := p.Position()
	lines := fmt.Sprintf(
		"state: %s/%s\npos: %.0f, %.0f\nvel: %.0f, %.0f\nground: %v  jumps: %d  combo: %d\ntps: %.0f",
		p.State(), p.Context(),
		pos.X, pos.Y,
		vel.X, vel.Y,
		p.OnGround(), p.JumpCount(), p.Combo(),
		ebiten.ActualTPS(),
	)
	ebitenutil.DebugPrintAt(screen, lines, 16, 56)
}

func drawBar(screen *ebiten.Image, x, y, w, h float32, frac float64, col color.Color) {
	if frac < 0 {
		frac = 0
	}
	if frac > 1 {
		frac = 1
	}
	vector.StrokeRect(screen, x, y, w, h, 1, colornames.Gainsboro, false)
	vector.DrawFilledRect(screen, x+1, y+1, (w-2)*float32(frac), h-2, col, false)
}
