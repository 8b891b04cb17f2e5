package scene

import (
	"fmt"
	"io/fs"
	"log"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/hollowmoor/driftblade/assets"
	"github.com/hollowmoor/driftblade/audio"
	"github.com/hollowmoor/driftblade/clock"
	"github.com/hollowmoor/driftblade/config"
	"github.com/hollowmoor/driftblade/geom"
	"github.com/hollowmoor/driftblade/input"
	"github.com/hollowmoor/driftblade/level"
	"github.com/hollowmoor/driftblade/physics"
	"github.com/hollowmoor/driftblade/player"
)

// frameMs is the fixed simulation step; ebiten ticks Update at 60Hz.
const frameMs = 1000.0 / 60

// hardLandingSpeed is the downward speed past which touchdown shakes the
// camera.
const hardLandingSpeed = 900.0

// Options configure a gameplay scene.
type Options struct {
	LevelName  string
	TuningPath string
	Debug      bool
	ScreenW    int
	ScreenH    int
}

// Gameplay owns one running level: the physics world, the player, level
// geometry, camera, and the overlay UIs.
type Gameplay struct {
	opts Options

	clk     *clock.Clock
	world   *physics.System
	plr     *player.Player
	lvl     *level.Level
	keys    *input.Keyboard
	watcher *config.Watcher

	platforms []*Platform
	movers    []*MovingPlatform

	cam      *Camera
	parallax *Parallax
	console  *Console
	pauseUI  *ebitenui.UI
	tiles    *tileRenderer

	paused bool
	quit   bool
}

// NewGameplay loads the named level from the embedded set and builds the
// world around it.
func NewGameplay(opts Options) (*Gameplay, error) {
	if opts.ScreenW <= 0 {
		opts.ScreenW = 1280
	}
	if opts.ScreenH <= 0 {
		opts.ScreenH = 720
	}
	if opts.LevelName == "" {
		opts.LevelName = "plains"
	}

	tuning, err := config.Load(opts.TuningPath)
	if err != nil {
		log.Printf("config: %v", err)
	}

	lvl, err := level.LoadFS(assets.Levels(), opts.LevelName+".json")
	if err != nil {
		return nil, fmt.Errorf("load level %s: %w", opts.LevelName, err)
	}

	worldW, worldH := lvl.PixelSize()
	world := physics.NewSystem(worldW, worldH)
	world.SetGravity(geom.Vec2{Y: tuning.GravityY})
	world.IgnoreLayerPair(tilesLayer, tilesLayer)

	clk := clock.New()
	keys := input.NewKeyboard()
	bank := audio.NewBank(func(name string) ([]byte, error) {
		b, ok := assets.Sound(name)
		if !ok {
			return nil, fs.ErrNotExist
		}
		return b, nil
	})

	sx, sy := lvl.SpawnPosition()
	plr := player.New(sx, sy, tuning, clk, keys, bank, assets.PlayerLibrary())
	world.AddObject(plr, "player")

	g := &Gameplay{
		opts:  opts,
		clk:   clk,
		world: world,
		plr:   plr,
		lvl:   lvl,
		keys:  keys,
	}

	for _, box := range lvl.Platforms() {
		pf := newPlatform(box)
		g.platforms = append(g.platforms, pf)
		world.AddObject(pf, tilesLayer)
	}
	for _, m := range lvl.Movers {
		mp := newMovingPlatform(m)
		g.movers = append(g.movers, mp)
		world.AddObject(mp, tilesLayer)
	}

	g.cam = NewCamera(opts.ScreenW, opts.ScreenH)
	g.cam.SetWorldBounds(worldW, worldH)
	g.cam.SnapTo(sx, sy)

	g.parallax = NewParallax()
	for _, bg := range lvl.Backgrounds {
		img, _ := assets.Image(bg.Path)
		g.parallax.Add(img, bg.Parallax)
	}

	g.console = newConsole(plr, g.cam)
	g.pauseUI = newPauseUI(
		func() { g.paused = false },
		func() { g.quit = true },
	)
	g.tiles = newTileRenderer(lvl)

	if w, err := config.NewWatcher(opts.TuningPath); err == nil {
		g.watcher = w
	} else {
		log.Printf("config: watch %s: %v", opts.TuningPath, err)
	}

	return g, nil
}

// Update runs one fixed simulation frame.
func (g *Gameplay) Update() error {
	if g.quit {
		g.Close()
		return ebiten.Termination
	}

	if g.keys.JustPressed(input.Pause) {
		g.paused = !g.paused
	}
	if g.paused {
		g.pauseUI.Update()
		return nil
	}

	if g.keys.JustPressed(input.Console) {
		g.console.Toggle()
	}
	if g.console.Open() {
		// the world freezes while the console has the keyboard
		g.console.Update()
		return nil
	}

	g.adoptTuning()

	g.clk.Advance(frameMs)
	for _, m := range g.movers {
		m.Update(frameMs)
	}

	wasAirborne := !g.plr.OnGround()
	fallSpeed := g.plr.Velocity().Y

	g.plr.BeginPhysics()
	g.world.Update(frameMs)
	g.plr.Update(frameMs)

	if wasAirborne && g.plr.OnGround() && fallSpeed > hardLandingSpeed {
		g.cam.Shake(6, 0.35)
	}

	pos := g.plr.Position()
	g.cam.Update(pos.X, pos.Y, frameMs)
	return nil
}

// adoptTuning swaps in a hot-reloaded tuning file at the frame boundary.
func (g *Gameplay) adoptTuning() {
	if g.watcher == nil {
		return
	}
	select {
	case err := <-g.watcher.Errors:
		log.Printf("config: %v", err)
	default:
	}
	if t := g.watcher.Pending(); t != nil {
		g.plr.SetTuning(*t)
		g.world.SetGravity(geom.Vec2{Y: t.GravityY})
		log.Printf("config: reloaded %s", g.opts.TuningPath)
	}
}

func (g *Gameplay) Draw(screen *ebiten.Image) {
	camX, camY := g.cam.ViewTopLeft()

	g.parallax.Draw(screen, camX, camY)
	g.tiles.Draw(screen, camX, camY)
	for _, m := range g.movers {
		g.tiles.DrawBody(screen, m.Body, camX, camY)
	}
	drawPlayer(screen, g.plr, camX, camY)
	drawHUD(screen, g.plr, g.opts.Debug)

	g.console.Draw(screen)
	if g.paused {
		g.pauseUI.Draw(screen)
	}
}

func (g *Gameplay) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.opts.ScreenW, g.opts.ScreenH
}

// Close releases the config watcher.
func (g *Gameplay) Close() {
	if g.watcher != nil {
		_ = g.watcher.Close()
		g.watcher = nil
	}
}
