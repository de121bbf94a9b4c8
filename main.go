package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/bossarena/prefabs"
)

func main() {
	bossName := flag.String("boss", "", "boss prefab in prefabs/bosses (basename, .yaml optional)")
	seed := flag.Uint64("seed", 0, "random seed (0 picks one from the clock)")
	debug := flag.Bool("debug", false, "draw hitboxes and boss state")
	watch := flag.Bool("watch", false, "reload prefabs from disk when they change")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	flag.Parse()

	spec, err := prefabs.LoadArenaSpec()
	if err != nil {
		log.Fatal(err)
	}
	if *bossName == "" {
		*bossName = spec.DefaultBoss
	}

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(int(spec.Width), int(spec.Height))
	ebiten.SetWindowTitle("bossarena")
	ebiten.SetTPS(spec.TickRate)

	game, err := NewGame(spec, *bossName, *seed, *debug, *watch)
	if err != nil {
		log.Fatal(err)
	}
	defer game.Close()

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
