// Package audio is the fire-and-forget sound channel. Gameplay code emits
// effect names on discrete events and never consumes a return value.
package audio

// Player plays named sound effects.
type Player interface {
	// PlayEffect starts the named effect. Unknown names are ignored.
	PlayEffect(name string)
	// SetVolume sets the effect volume in [0,1].
	SetVolume(v float64)
	// Volume returns the current effect volume.
	Volume() float64
}

// Nop is a Player that does nothing. Used in tests and headless runs.
type Nop struct{}

func (Nop) PlayEffect(string)  {}
func (Nop) SetVolume(float64)  {}
func (Nop) Volume() float64    { return 0 }
