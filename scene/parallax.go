package scene

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// Parallax draws backdrop layers that scroll at a fraction of the camera
// speed, tiled horizontally. Layers whose art is missing are skipped.
type Parallax struct {
	layers []parallaxLayer
}

type parallaxLayer struct {
	img    *ebiten.Image
	factor float64
}

func NewParallax() *Parallax {
	return &Parallax{}
}

// Add appends a layer; call back-to-front. Nil images are dropped.
func (p *Parallax) Add(img *ebiten.Image, factor float64) {
	if img == nil {
		return
	}
	p.layers = append(p.layers, parallaxLayer{img: img, factor: factor})
}

func (p *Parallax) Draw(screen *ebiten.Image, camX, camY float64) {
	sw := float64(screen.Bounds().Dx())
	for _, l := range p.layers {
		w := float64(l.img.Bounds().Dx())
		if w <= 0 {
			continue
		}
		off := math.Mod(-camX*l.factor, w)
		if off > 0 {
			off -= w
		}
		for x := off; x < sw; x += w {
			op := &ebiten.DrawImageOptions{}
			op.GeoM.Translate(x, 0)
			screen.DrawImage(l.img, op)
		}
	}
}
