package main

import (
	"fmt"
	"image/color"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/bossarena/arena"
	"github.com/milk9111/bossarena/boss"
	"github.com/milk9111/bossarena/prefabs"
	"golang.org/x/image/colornames"
)

type Game struct {
	spec   prefabs.ArenaSpec
	arena  *arena.Arena
	loop   *arena.Loop
	input  *Input
	frames int
	last   time.Time

	bosses    []string
	bossIndex int
	bossColor color.RGBA

	watcher *prefabs.Watcher
	debug   bool
	paused  bool
}

func NewGame(spec prefabs.ArenaSpec, bossName string, seed uint64, debug, watch bool) (*Game, error) {
	a, err := arena.New(spec, arena.WithRand(boss.NewRand(seed)))
	if err != nil {
		return nil, err
	}

	g := &Game{
		spec:   spec,
		arena:  a,
		input:  NewInput(),
		bosses: prefabs.BossNames(),
		debug:  debug,
	}
	g.loop = arena.NewLoop(spec.TickRate, spec.MaxFrameTime, g.step)

	for i, name := range g.bosses {
		if name == bossName {
			g.bossIndex = i
		}
	}
	if err := g.start(bossName); err != nil {
		return nil, err
	}

	if watch {
		w, err := prefabs.NewWatcher("prefabs", "prefabs/bosses", "prefabs/scripts")
		if err != nil {
			log.Printf("prefabs: watch disabled: %v", err)
		} else {
			g.watcher = w
		}
	}
	return g, nil
}

func (g *Game) Close() {
	if g.watcher != nil {
		_ = g.watcher.Close()
	}
}

func (g *Game) start(name string) error {
	if err := g.arena.StartBoss(name); err != nil {
		return err
	}
	g.bossColor = colornames.Mediumpurple
	if spec, err := prefabs.LoadBossSpec(name); err == nil {
		g.bossColor = spec.Color.Or(g.bossColor)
	}
	g.last = time.Time{}
	return nil
}

func (g *Game) Update() error {
	g.frames++
	g.input.Update()
	g.pollWatcher()

	if g.input.ToggleHUD {
		g.debug = !g.debug
	}
	if g.input.Pause {
		g.paused = !g.paused
		g.last = time.Time{}
	}
	if g.input.Restart || g.input.NextBoss {
		if g.input.NextBoss && len(g.bosses) > 0 {
			g.bossIndex = (g.bossIndex + 1) % len(g.bosses)
		}
		if err := g.start(g.currentBoss()); err != nil {
			log.Printf("arena: %v", err)
		}
	}

	now := time.Now()
	if g.last.IsZero() {
		g.last = now
		return nil
	}
	frame := now.Sub(g.last).Seconds()
	g.last = now
	if g.paused || g.arena.Outcome() != arena.OutcomeFighting {
		return nil
	}
	g.loop.Advance(frame)
	return nil
}

// step runs one fixed simulation tick with this frame's input.
func (g *Game) step(dt float64) {
	g.arena.MovePlayer(g.input.MoveX, g.input.MoveY, dt)
	if g.input.Fire {
		pos := g.arena.Player().Position()
		g.arena.FirePlayer(g.input.AimAngle(pos.X, pos.Y))
	}
	g.arena.Tick(dt)
}

func (g *Game) currentBoss() string {
	if len(g.bosses) == 0 {
		return g.spec.DefaultBoss
	}
	return g.bosses[g.bossIndex]
}

// pollWatcher applies prefab edits. Boss specs and scripts are read again at
// the next room start; the minion table is swapped in immediately.
func (g *Game) pollWatcher() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case change, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			g.applyChange(change)
		case err, ok := <-g.watcher.Errors:
			if ok {
				log.Printf("prefabs: watch: %v", err)
			}
		default:
			return
		}
	}
}

func (g *Game) applyChange(change prefabs.Change) {
	log.Printf("prefabs: reloaded %s", change.Path)

	if name, ok := change.Boss(); ok {
		if _, err := prefabs.LoadBossConfig(name); err != nil {
			log.Printf("prefabs: %s: %v (previous config stays live)", name, err)
			return
		}
		g.bosses = prefabs.BossNames()
		return
	}

	switch change.Kind {
	case prefabs.ChangeSpec:
		if err := g.arena.ReloadMinions(); err != nil {
			log.Printf("prefabs: %v (previous minions stay live)", err)
		}
	case prefabs.ChangeScript:
		if _, err := prefabs.LoadBossConfig(g.currentBoss()); err != nil {
			log.Printf("prefabs: %s: %v", change.Path, err)
		}
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	drawArena(screen, g.arena, g.bossColor, g.debug)
	drawHUD(screen, g.arena, g.paused, g.debug)
	if g.debug {
		drawDebug(screen, g.arena, fmt.Sprintf("FPS: %.1f  TPS: %.1f  frames: %d", ebiten.ActualFPS(), ebiten.ActualTPS(), g.frames))
	}
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return g.spec.Width, g.spec.Height
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}
