package scene

import (
	"image/color"
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"

	"github.com/hollowmoor/driftblade/level"
	"github.com/hollowmoor/driftblade/physics"
	"github.com/hollowmoor/driftblade/player"
)

// tileRenderer draws the level's tile layers with one flat-colored tile
// image per layer, culled to the visible window.
type tileRenderer struct {
	lvl  *level.Level
	imgs []*ebiten.Image
}

func newTileRenderer(lvl *level.Level) *tileRenderer {
	r := &tileRenderer{lvl: lvl}
	for i := range lvl.Layers {
		col := colornames.Slategray
		if i < len(lvl.LayerMeta) {
			if c, ok := parseHexColor(lvl.LayerMeta[i].Color); ok {
				col = c
			}
		}
		img := ebiten.NewImage(lvl.TileSize, lvl.TileSize)
		img.Fill(col)
		r.imgs = append(r.imgs, img)
	}
	return r
}

func (r *tileRenderer) Draw(screen *ebiten.Image, camX, camY float64) {
	ts := r.lvl.TileSize
	x0 := int(camX) / ts
	y0 := int(camY) / ts
	x1 := x0 + screen.Bounds().Dx()/ts + 2
	y1 := y0 + screen.Bounds().Dy()/ts + 2

	for li, layer := range r.lvl.Layers {
		img := r.imgs[li]
		for y := max(y0, 0); y < min(y1, r.lvl.Height); y++ {
			for x := max(x0, 0); x < min(x1, r.lvl.Width); x++ {
				if layer[y*r.lvl.Width+x] == 0 {
					continue
				}
				op := &ebiten.DrawImageOptions{}
				op.GeoM.Translate(float64(x*ts)-camX, float64(y*ts)-camY)
				screen.DrawImage(img, op)
			}
		}
	}
}

// DrawBody fills a physics body's bounds, used for moving platforms.
func (r *tileRenderer) DrawBody(screen *ebiten.Image, b *physics.Body, camX, camY float64) {
	sh := b.Shape()
	if sh == nil {
		return
	}
	bounds := sh.Bounds()
	vector.DrawFilledRect(screen,
		float32(bounds.X-camX), float32(bounds.Y-camY),
		float32(bounds.Width), float32(bounds.Height),
		colornames.Burlywood, false)
}

// drawPlayer renders the current sprite frame, mirrored by facing. Without
// art the body is drawn as a flat rectangle so gameplay stays visible.
func drawPlayer(screen *ebiten.Image, p *player.Player, camX, camY float64) {
	pos := p.Position()

	spr := p.Sprite()
	if spr != nil {
		if img := spr.Image(); img != nil {
			w, h := spr.Size()
			op := &ebiten.DrawImageOptions{}
			if !p.FacingRight() {
				op.GeoM.Scale(-1, 1)
				op.GeoM.Translate(float64(w), 0)
			}
			op.GeoM.Translate(pos.X-float64(w)/2-camX, pos.Y-float64(h)/2-camY)
			screen.DrawImage(img, op)
			return
		}
	}

	if sh := p.Shape(); sh != nil {
		bounds := sh.Bounds()
		vector.DrawFilledRect(screen,
			float32(bounds.X-camX), float32(bounds.Y-camY),
			float32(bounds.Width), float32(bounds.Height),
			colornames.Lightsteelblue, false)
	}
}

func parseHexColor(s string) (color.RGBA, bool) {
	if len(s) != 7 || s[0] != '#' {
		return color.RGBA{}, false
	}
	v, err := strconv.ParseUint(s[1:], 16, 32)
	if err != nil {
		return color.RGBA{}, false
	}
	return color.RGBA{
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
		A: 0xff,
	}, true
}
