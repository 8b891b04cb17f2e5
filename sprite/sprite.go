// Package sprite provides the animation surface the gameplay core talks to.
// The core requests sprites by symbolic name and only ever calls Update,
// Reset, and Done; it never sees file paths or image decoding.
package sprite

import "github.com/hajimehoshi/ebiten/v2"

// Sprite is one playable animation instance.
type Sprite interface {
	// Update advances the animation by dtMs milliseconds.
	Update(dtMs float64)
	// Reset rewinds to the first frame and resumes playback.
	Reset()
	// Done reports whether a non-looping animation has finished.
	Done() bool
	// Frame returns the current frame index.
	Frame() int
	// Image returns the current frame image, or nil when the sprite has no
	// backing art. Callers must tolerate nil and render a placeholder.
	Image() *ebiten.Image
	// Size returns the frame dimensions in pixels.
	Size() (w, h int)
}
