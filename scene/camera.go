package scene

import (
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Camera follows a world-space target with exponential smoothing, clamps
// its view to the world, and layers a decaying shake on top.
type Camera struct {
	X, Y float64

	screenW, screenH float64
	smooth           float64
	worldW, worldH   float64

	shake        *gween.Tween
	shakeElapsed float64
	offX, offY   float64
}

func NewCamera(screenW, screenH int) *Camera {
	return &Camera{
		screenW: float64(screenW),
		screenH: float64(screenH),
		smooth:  0.15,
	}
}

// SetWorldBounds sets the world pixel size the view clamps against. Zero
// leaves that axis unbounded.
func (c *Camera) SetWorldBounds(w, h float64) {
	c.worldW = w
	c.worldH = h
}

// SnapTo centers the camera instantly, for spawns and level changes.
func (c *Camera) SnapTo(x, y float64) {
	c.X = x
	c.Y = y
	c.clamp()
}

// Shake kicks off a shake that eases out over durationSec.
func (c *Camera) Shake(intensity float64, durationSec float64) {
	c.shake = gween.New(float32(intensity), 0, float32(durationSec), ease.OutQuad)
	c.shakeElapsed = 0
}

// Update advances the follow and shake by dtMs toward the target.
func (c *Camera) Update(targetX, targetY, dtMs float64) {
	c.X += (targetX - c.X) * c.smooth
	c.Y += (targetY - c.Y) * c.smooth
	c.clamp()

	c.offX, c.offY = 0, 0
	if c.shake != nil {
		amp, done := c.shake.Update(float32(dtMs / 1000))
		if done {
			c.shake = nil
			return
		}
		c.shakeElapsed += dtMs
		c.offX = float64(amp) * math.Sin(c.shakeElapsed*0.09)
		c.offY = float64(amp) * math.Cos(c.shakeElapsed*0.127)
	}
}

// ViewTopLeft returns the world coordinate of the screen's top-left pixel,
// shake included.
func (c *Camera) ViewTopLeft() (float64, float64) {
	return c.X - c.screenW/2 + c.offX, c.Y - c.screenH/2 + c.offY
}

func (c *Camera) clamp() {
	if c.worldW > c.screenW {
		c.X = clampf(c.X, c.screenW/2, c.worldW-c.screenW/2)
	}
	if c.worldH > c.screenH {
		c.Y = clampf(c.Y, c.screenH/2, c.worldH-c.screenH/2)
	}
}

func clampf(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
