package assets

import (
	"bytes"
	"embed"
	"image"
	_ "image/png"
	"io/fs"
	"log"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/hollowmoor/driftblade/sprite"
)

//go:embed all:data
var dataFS embed.FS

var (
	mu     sync.Mutex
	images = map[string]*ebiten.Image{}

	warnMu sync.Mutex
	warned = map[string]bool{}
)

// Bytes returns an embedded file's contents. Missing files log a warning
// once and return false rather than failing the caller.
func Bytes(path string) ([]byte, bool) {
	b, err := dataFS.ReadFile("data/" + path)
	if err != nil {
		warnOnce(path, "read", err)
		return nil, false
	}
	return b, true
}

// Image decodes and caches an embedded PNG. A missing or undecodable file
// returns false; the caller is expected to carry on without art.
func Image(path string) (*ebiten.Image, bool) {
	mu.Lock()
	defer mu.Unlock()

	if img, ok := images[path]; ok {
		return img, img != nil
	}

	b, err := dataFS.ReadFile("data/" + path)
	if err != nil {
		warnOnce(path, "read", err)
		images[path] = nil
		return nil, false
	}
	decoded, _, err := image.Decode(bytes.NewReader(b))
	if err != nil {
		warnOnce(path, "decode", err)
		images[path] = nil
		return nil, false
	}

	img := ebiten.NewImageFromImage(decoded)
	images[path] = img
	return img, true
}

// Levels exposes the embedded level files.
func Levels() fs.FS {
	sub, err := fs.Sub(dataFS, "data/levels")
	if err != nil {
		return dataFS
	}
	return sub
}

// PlayerLibrary builds the player animation library from the embedded
// manifest. Both the manifest and the sheet are optional; the game runs
// sprite-less without either.
func PlayerLibrary() *sprite.Library {
	b, ok := Bytes("sprites.yaml")
	if !ok {
		return sprite.NewLibrary(nil)
	}
	m, err := sprite.ParseManifest(b)
	if err != nil {
		log.Printf("assets: sprites.yaml: %v", err)
		return sprite.NewLibrary(nil)
	}
	var sheet *ebiten.Image
	if m.Sheet != "" {
		sheet, _ = Image(m.Sheet)
	}
	return sprite.BuildLibrary(sheet, m)
}

// Sound returns an embedded sound file's bytes, for the audio bank loader.
func Sound(name string) ([]byte, bool) {
	return Bytes("sounds/" + name + ".wav")
}

func warnOnce(path, op string, err error) {
	warnMu.Lock()
	defer warnMu.Unlock()
	if warned[path] {
		return
	}
	warned[path] = true
	log.Printf("assets: %s %s: %v", op, path, err)
}
