package sprite

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
)

// Def describes one row of a sprite sheet.
type Def struct {
	Row        int
	ColStart   int
	FrameCount int
	FrameW     int
	FrameH     int
	FPS        float64
	Loop       bool
}

// Animation plays one sheet row. The sheet may be nil: timing still
// advances and Done still fires, only Image returns nil. A sprite-less
// game keeps working, it just renders placeholders.
type Animation struct {
	sheet *ebiten.Image
	def   Def

	frame   int
	elapsed float64
	playing bool
}

// NewAnimation creates an animation over sheet (which may be nil).
func NewAnimation(sheet *ebiten.Image, def Def) *Animation {
	if def.FrameCount < 1 {
		def.FrameCount = 1
	}
	if def.FPS <= 0 {
		def.FPS = 10
	}
	return &Animation{sheet: sheet, def: def, playing: true}
}

func (a *Animation) Update(dtMs float64) {
	if a == nil || !a.playing || dtMs <= 0 {
		return
	}
	frameMs := 1000.0 / a.def.FPS
	a.elapsed += dtMs
	for a.elapsed >= frameMs {
		a.elapsed -= frameMs
		a.frame++
		if a.frame >= a.def.FrameCount {
			if a.def.Loop {
				a.frame = 0
			} else {
				a.frame = a.def.FrameCount - 1
				a.playing = false
				a.elapsed = 0
				return
			}
		}
	}
}

func (a *Animation) Reset() {
	if a == nil {
		return
	}
	a.frame = 0
	a.elapsed = 0
	a.playing = true
}

func (a *Animation) Done() bool {
	if a == nil {
		return false
	}
	return !a.def.Loop && !a.playing
}

func (a *Animation) Frame() int {
	if a == nil {
		return 0
	}
	return a.frame
}

func (a *Animation) Image() *ebiten.Image {
	if a == nil || a.sheet == nil {
		return nil
	}
	x := (a.def.ColStart + a.frame) * a.def.FrameW
	y := a.def.Row * a.def.FrameH
	rect := image.Rect(x, y, x+a.def.FrameW, y+a.def.FrameH)
	return a.sheet.SubImage(rect).(*ebiten.Image)
}

func (a *Animation) Size() (int, int) {
	if a == nil {
		return 0, 0
	}
	return a.def.FrameW, a.def.FrameH
}
