package level

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/hollowmoor/driftblade/geom"
)

// DefaultTileSize is used when a level file does not declare its own.
const DefaultTileSize = 32

// Level is a tile map stored as JSON. Each layer is a flat row-major array
// of length Width*Height; layer 0 draws first. Only layers whose meta marks
// them as physical contribute collision geometry.
type Level struct {
	Name   string `json:"name,omitempty"`
	Width  int    `json:"width"`
	Height int    `json:"height"`

	TileSize int `json:"tile_size,omitempty"`

	Layers    [][]int     `json:"layers,omitempty"`
	LayerMeta []LayerMeta `json:"layer_meta,omitempty"`

	// player spawn in tile coordinates
	SpawnX int `json:"spawn_x,omitempty"`
	SpawnY int `json:"spawn_y,omitempty"`

	// background layers for parallax rendering, back to front
	Backgrounds []Background `json:"backgrounds,omitempty"`

	// platforms that travel between two points, in pixels
	Movers []Mover `json:"movers,omitempty"`
}

// Mover is a platform that oscillates from its origin to origin+offset and
// back over Period seconds.
type Mover struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	DX     float64 `json:"dx"`
	DY     float64 `json:"dy"`
	Period float64 `json:"period"`
}

// LayerMeta holds per-layer metadata.
type LayerMeta struct {
	HasPhysics bool   `json:"has_physics"`
	Color      string `json:"color"`
}

// Background references a backdrop image with its parallax factor. A factor
// of 0 pins the image to the camera; 1 scrolls with the world.
type Background struct {
	Path     string  `json:"path"`
	Parallax float64 `json:"parallax,omitempty"`
}

// Load reads a level from a JSON file on disk.
func Load(path string) (*Level, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read level %s: %w", path, err)
	}
	lvl, err := decode(b)
	if err != nil {
		return nil, fmt.Errorf("parse level %s: %w", path, err)
	}
	return lvl, nil
}

// LoadFS reads a level JSON from an fs.FS such as the embedded levels.
func LoadFS(fsys fs.FS, path string) (*Level, error) {
	clean := strings.TrimPrefix(filepath.ToSlash(path), "levels/")
	b, err := fs.ReadFile(fsys, clean)
	if err != nil {
		return nil, fmt.Errorf("read level %s: %w", path, err)
	}
	lvl, err := decode(b)
	if err != nil {
		return nil, fmt.Errorf("parse level %s: %w", path, err)
	}
	return lvl, nil
}

func decode(b []byte) (*Level, error) {
	var lvl Level
	if err := json.Unmarshal(b, &lvl); err != nil {
		return nil, err
	}

	if lvl.Width <= 0 || lvl.Height <= 0 {
		return nil, fmt.Errorf("invalid level dimensions: %dx%d", lvl.Width, lvl.Height)
	}
	if lvl.TileSize <= 0 {
		lvl.TileSize = DefaultTileSize
	}
	for i, layer := range lvl.Layers {
		if len(layer) != lvl.Width*lvl.Height {
			return nil, fmt.Errorf("layer %d has %d cells, want %d", i, len(layer), lvl.Width*lvl.Height)
		}
	}

	// backfill meta so every layer has one; extra layers default to physical
	for len(lvl.LayerMeta) < len(lvl.Layers) {
		lvl.LayerMeta = append(lvl.LayerMeta, LayerMeta{HasPhysics: true})
	}
	return &lvl, nil
}

// PixelSize returns the level dimensions in pixels.
func (l *Level) PixelSize() (float64, float64) {
	return float64(l.Width * l.TileSize), float64(l.Height * l.TileSize)
}

// SpawnPosition returns the player spawn as a pixel center.
func (l *Level) SpawnPosition() (float64, float64) {
	ts := float64(l.TileSize)
	return float64(l.SpawnX)*ts + ts/2, float64(l.SpawnY)*ts + ts/2
}

// SolidAt reports whether any physical layer has a tile at the given tile
// coordinate. Out-of-range coordinates are solid so nothing escapes the map.
func (l *Level) SolidAt(x, y int) bool {
	if x < 0 || y < 0 || x >= l.Width || y >= l.Height {
		return true
	}
	for i, layer := range l.Layers {
		if i < len(l.LayerMeta) && !l.LayerMeta[i].HasPhysics {
			continue
		}
		if layer[y*l.Width+x] != 0 {
			return true
		}
	}
	return false
}

// Platforms merges solid cells into as few rectangles as possible: greedy
// horizontal runs per row, then equal-span runs stacked across rows. Fewer
// static bodies keeps the pair scan cheap.
func (l *Level) Platforms() []geom.AABB {
	type run struct {
		x, w int // in tiles
		y, h int
	}

	solid := func(x, y int) bool {
		if x < 0 || y < 0 || x >= l.Width || y >= l.Height {
			return false
		}
		return l.SolidAt(x, y)
	}

	var runs []run
	open := map[[2]int]int{} // (x,w) of a run still growing -> index into runs
	for y := 0; y < l.Height; y++ {
		next := map[[2]int]int{}
		for x := 0; x < l.Width; {
			if !solid(x, y) {
				x++
				continue
			}
			start := x
			for x < l.Width && solid(x, y) {
				x++
			}
			span := [2]int{start, x - start}
			if i, ok := open[span]; ok {
				runs[i].h++
				next[span] = i
				continue
			}
			runs = append(runs, run{x: start, w: x - start, y: y, h: 1})
			next[span] = len(runs) - 1
		}
		open = next
	}

	ts := float64(l.TileSize)
	boxes := make([]geom.AABB, 0, len(runs))
	for _, r := range runs {
		boxes = append(boxes, geom.AABB{
			X:      float64(r.x) * ts,
			Y:      float64(r.y) * ts,
			Width:  float64(r.w) * ts,
			Height: float64(r.h) * ts,
		})
	}
	return boxes
}
