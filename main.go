package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/hollowmoor/driftblade/scene"
)

func main() {
	debug := flag.Bool("debug", false, "show the debug overlay")
	levelName := flag.String("level", "plains", "embedded level name")
	tuningPath := flag.String("tuning", "tuning.yaml", "tuning file to load and watch")
	flag.Parse()

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(1280, 720)
	ebiten.SetWindowTitle("driftblade")

	g, err := scene.NewGameplay(scene.Options{
		LevelName:  *levelName,
		TuningPath: *tuningPath,
		Debug:      *debug,
		ScreenW:    1280,
		ScreenH:    720,
	})
	if err != nil {
		log.Fatal(err)
	}
	defer g.Close()

	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
