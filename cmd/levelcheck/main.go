// Command levelcheck validates level JSON files and reports their collision
// geometry, so broken maps fail here instead of at game start.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/hollowmoor/driftblade/level"
)

func main() {
	verbose := flag.Bool("v", false, "print every merged platform rect")
	flag.Parse()

	if flag.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "usage: levelcheck [-v] <level.json> ...")
		os.Exit(2)
	}

	failed := false
	for _, path := range flag.Args() {
		lvl, err := level.Load(path)
		if err != nil {
			log.Printf("%s: %v", path, err)
			failed = true
			continue
		}

		boxes := lvl.Platforms()
		w, h := lvl.PixelSize()
		sx, sy := lvl.SpawnPosition()
		fmt.Printf("%s: %dx%d tiles (%.0fx%.0f px), %d layers, %d platforms, %d movers, spawn %.0f,%.0f\n",
			path, lvl.Width, lvl.Height, w, h, len(lvl.Layers), len(boxes), len(lvl.Movers), sx, sy)

		if lvl.SolidAt(lvl.SpawnX, lvl.SpawnY) {
			log.Printf("%s: spawn tile %d,%d is inside solid geometry", path, lvl.SpawnX, lvl.SpawnY)
			failed = true
		}
		if *verbose {
			for _, b := range boxes {
				fmt.Printf("  %.0f,%.0f %gx%g\n", b.X, b.Y, b.Width, b.Height)
			}
		}
	}
	if failed {
		os.Exit(1)
	}
}
