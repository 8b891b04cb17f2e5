package audio

import (
	"bytes"
	"log"

	ebiaudio "github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
)

const sampleRate = 44100

// Bank is the ebiten-backed Player. Effects are wav files resolved through
// a loader callback, decoded once, and cached. A failed load logs a warning
// once and the effect stays silent; a frame never fails over missing audio.
type Bank struct {
	ctx     *ebiaudio.Context
	load    func(name string) ([]byte, error)
	players map[string]*ebiaudio.Player
	missing map[string]bool
	volume  float64
}

// NewBank creates a bank over a loader that maps effect names to wav bytes.
func NewBank(load func(name string) ([]byte, error)) *Bank {
	ctx := ebiaudio.CurrentContext()
	if ctx == nil {
		ctx = ebiaudio.NewContext(sampleRate)
	}
	return &Bank{
		ctx:     ctx,
		load:    load,
		players: make(map[string]*ebiaudio.Player),
		missing: make(map[string]bool),
		volume:  1,
	}
}

func (b *Bank) PlayEffect(name string) {
	if b == nil || name == "" {
		return
	}
	p := b.player(name)
	if p == nil {
		return
	}
	if p.IsPlaying() {
		return
	}
	p.SetVolume(b.volume)
	if err := p.Rewind(); err != nil {
		return
	}
	p.Play()
}

func (b *Bank) SetVolume(v float64) {
	if b == nil {
		return
	}
	if v < 0 {
		v = 0
	}
	if v > 1 {
		v = 1
	}
	b.volume = v
}

func (b *Bank) Volume() float64 {
	if b == nil {
		return 0
	}
	return b.volume
}

func (b *Bank) player(name string) *ebiaudio.Player {
	if p, ok := b.players[name]; ok {
		return p
	}
	if b.missing[name] || b.load == nil {
		return nil
	}

	data, err := b.load(name)
	if err != nil {
		b.missing[name] = true
		log.Printf("audio: load %s: %v", name, err)
		return nil
	}
	stream, err := wav.DecodeWithSampleRate(b.ctx.SampleRate(), bytes.NewReader(data))
	if err != nil {
		b.missing[name] = true
		log.Printf("audio: decode %s: %v", name, err)
		return nil
	}
	p, err := b.ctx.NewPlayer(stream)
	if err != nil {
		b.missing[name] = true
		log.Printf("audio: player %s: %v", name, err)
		return nil
	}
	b.players[name] = p
	return p
}
