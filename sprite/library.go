package sprite

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

// Library resolves symbolic animation names to playable sprites. Unknown
// names fall back to a looping placeholder and log a warning once, so a
// missing sheet never crashes a frame.
type Library struct {
	sheet  *ebiten.Image
	defs   map[string]Def
	warned map[string]bool
}

// NewLibrary creates a library over a shared sprite sheet. A nil sheet is
// allowed; every sprite then plays without art.
func NewLibrary(sheet *ebiten.Image) *Library {
	return &Library{
		sheet:  sheet,
		defs:   make(map[string]Def),
		warned: make(map[string]bool),
	}
}

// Register adds or replaces a named animation definition.
func (l *Library) Register(name string, def Def) {
	if l == nil || name == "" {
		return
	}
	l.defs[name] = def
}

// Has reports whether name has a registered definition.
func (l *Library) Has(name string) bool {
	if l == nil {
		return false
	}
	_, ok := l.defs[name]
	return ok
}

// New returns a fresh sprite instance for name. Unregistered names yield a
// placeholder.
func (l *Library) New(name string) Sprite {
	if l == nil {
		return NewAnimation(nil, Def{FrameCount: 1, FPS: 1, Loop: true})
	}
	def, ok := l.defs[name]
	if !ok {
		if !l.warned[name] {
			l.warned[name] = true
			log.Printf("sprite: no animation registered for %q, using placeholder", name)
		}
		return NewAnimation(nil, Def{FrameCount: 4, FrameW: 32, FrameH: 64, FPS: 8, Loop: true})
	}
	return NewAnimation(l.sheet, def)
}
