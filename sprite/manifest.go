package sprite

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"gopkg.in/yaml.v3"
)

// Manifest describes a sprite sheet and its named animations in YAML, so
// art can be re-cut without touching code.
type Manifest struct {
	Sheet  string `yaml:"sheet"`
	FrameW int    `yaml:"frame_w"`
	FrameH int    `yaml:"frame_h"`

	Animations map[string]ManifestAnim `yaml:"animations"`
}

// ManifestAnim is one animation strip. FrameW/FrameH override the sheet
// defaults when set.
type ManifestAnim struct {
	Row    int     `yaml:"row"`
	Col    int     `yaml:"col"`
	Frames int     `yaml:"frames"`
	FPS    float64 `yaml:"fps"`
	Loop   bool    `yaml:"loop"`
	FrameW int     `yaml:"frame_w"`
	FrameH int     `yaml:"frame_h"`
}

// ParseManifest decodes a YAML manifest.
func ParseManifest(b []byte) (Manifest, error) {
	var m Manifest
	if err := yaml.Unmarshal(b, &m); err != nil {
		return Manifest{}, fmt.Errorf("parse sprite manifest: %w", err)
	}
	return m, nil
}

// BuildLibrary turns a manifest into a Library over the given sheet. The
// sheet may be nil when the art is unavailable.
func BuildLibrary(sheet *ebiten.Image, m Manifest) *Library {
	lib := NewLibrary(sheet)
	for name, a := range m.Animations {
		def := Def{
			Row:        a.Row,
			ColStart:   a.Col,
			FrameCount: a.Frames,
			FrameW:     a.FrameW,
			FrameH:     a.FrameH,
			FPS:        a.FPS,
			Loop:       a.Loop,
		}
		if def.FrameW == 0 {
			def.FrameW = m.FrameW
		}
		if def.FrameH == 0 {
			def.FrameH = m.FrameH
		}
		if def.FrameCount <= 0 {
			def.FrameCount = 1
		}
		if def.FPS <= 0 {
			def.FPS = 8
		}
		lib.Register(name, def)
	}
	return lib
}
