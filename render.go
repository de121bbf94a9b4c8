package main

import (
	"fmt"
	"image/color"
	"math"
	"sort"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/bossarena/arena"
	"github.com/milk9111/bossarena/boss"
	"github.com/milk9111/bossarena/common"
	"github.com/milk9111/bossarena/ecs"
	"github.com/milk9111/bossarena/ecs/component"
	"github.com/milk9111/bossarena/ecs/system"
	"github.com/milk9111/bossarena/hazard"
	"golang.org/x/image/colornames"
)

var backgroundColor = color.RGBA{R: 24, G: 24, B: 32, A: 255}

// fade scales a premultiplied color by alpha.
func fade(c color.RGBA, alpha float64) color.RGBA {
	alpha = common.Clamp(alpha, 0, 1)
	return color.RGBA{
		R: uint8(float64(c.R) * alpha),
		G: uint8(float64(c.G) * alpha),
		B: uint8(float64(c.B) * alpha),
		A: uint8(float64(c.A) * alpha),
	}
}

func fillRect(screen *ebiten.Image, r common.Rect, c color.Color) {
	vector.FillRect(screen, float32(r.X), float32(r.Y), float32(r.Width), float32(r.Height), c, false)
}

func strokeRect(screen *ebiten.Image, r common.Rect, width float32, c color.Color) {
	vector.StrokeRect(screen, float32(r.X), float32(r.Y), float32(r.Width), float32(r.Height), width, c, false)
}

func line(screen *ebiten.Image, a, b cp.Vector, width float32, c color.Color) {
	vector.StrokeLine(screen, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), width, c, true)
}

func drawArena(screen *ebiten.Image, a *arena.Arena, bossColor color.RGBA, debug bool) {
	screen.Fill(backgroundColor)
	strokeRect(screen, a.Bounds(), 2, colornames.Dimgray)

	for _, h := range a.Hazards() {
		drawHazard(screen, h)
	}
	drawMinions(screen, a, debug)
	drawProjectiles(screen, a.World())
	if b := a.Boss(); b != nil && b.Active() {
		drawBoss(screen, b, bossColor, debug)
	}
	drawPlayer(screen, a, debug)
}

func drawHazard(screen *ebiten.Image, h hazard.Hazard) {
	base := h.Core()
	c := base.Color
	switch h := h.(type) {
	case *hazard.BeamSweep:
		if h.Warning() {
			line(screen, h.Pos, h.End(), 2, fade(c, 0.5))
			return
		}
		line(screen, h.Pos, h.End(), float32(h.Width), fade(c, 0.8))
		line(screen, h.Pos, h.End(), float32(h.Width/4), colornames.White)
	case *hazard.Shockwave:
		r := h.CurrentRadius - h.RingThickness/2
		if r > 0 {
			vector.StrokeCircle(screen, float32(h.Pos.X), float32(h.Pos.Y), float32(r), float32(h.RingThickness), fade(c, 0.7), true)
		}
	case *hazard.LingeringZone:
		if h.Warning() {
			vector.StrokeCircle(screen, float32(h.Pos.X), float32(h.Pos.Y), float32(h.Radius), 2, fade(c, 0.6), true)
			return
		}
		vector.FillCircle(screen, float32(h.Pos.X), float32(h.Pos.Y), float32(h.Radius), fade(c, 0.35), true)
	case *hazard.TargetReticle:
		p := 0.0
		if h.Delay > 0 {
			p = common.Clamp(h.Elapsed/h.Delay, 0, 1)
		}
		vector.StrokeCircle(screen, float32(h.Pos.X), float32(h.Pos.Y), float32(h.Radius), 2, c, true)
		vector.FillCircle(screen, float32(h.Pos.X), float32(h.Pos.Y), float32(h.Radius*p), fade(c, 0.3), true)
		arm := cp.Vector{X: h.Radius + 6}
		line(screen, h.Pos.Sub(arm), h.Pos.Add(arm), 1, c)
		arm = cp.Vector{Y: h.Radius + 6}
		line(screen, h.Pos.Sub(arm), h.Pos.Add(arm), 1, c)
	case *hazard.Explosion:
		vector.FillCircle(screen, float32(h.Pos.X), float32(h.Pos.Y), float32(h.CurrentRadius), fade(c, 1-h.Progress()*0.7), true)
	case *hazard.ReflectiveBarrier:
		corners := h.Corners()
		for i := range corners {
			line(screen, corners[i], corners[(i+1)%len(corners)], 3, c)
		}
	}
}

func drawMinions(screen *ebiten.Image, a *arena.Arena, debug bool) {
	w := a.World()
	ecs.ForEach(w, component.MinionComponent.Kind(), func(e ecs.Entity, m *component.Minion) {
		r, ok := system.Bounds(w, e)
		if !ok {
			return
		}
		c := colornames.Gray
		if spec, ok := a.MinionSpec(m.Kind); ok {
			c = spec.Color.Or(c)
		}
		fillRect(screen, r, c)
		if h, ok := ecs.Get(w, e, component.HealthComponent.Kind()); ok && h.Max > 0 {
			bar := common.Rect{X: r.X, Y: r.Y - 6, Width: r.Width * float64(h.Current) / float64(h.Max), Height: 3}
			fillRect(screen, bar, colornames.Limegreen)
		}
		if debug {
			ebitenutil.DebugPrintAt(screen, m.Kind, int(r.X), int(r.Y+r.Height+2))
		}
	})
}

func drawProjectiles(screen *ebiten.Image, w *ecs.World) {
	ecs.ForEach2(w, component.ProjectileComponent.Kind(), component.TransformComponent.Kind(), func(_ ecs.Entity, p *component.Projectile, t *component.Transform) {
		c := colornames.Tomato
		if p.PlayerOwned {
			c = colornames.Lightskyblue
		}
		vector.FillCircle(screen, float32(t.X), float32(t.Y), 4, c, true)
	})
}

func drawBoss(screen *ebiten.Image, b *boss.Boss, c color.RGBA, debug bool) {
	switch flash, _ := b.Flash(); flash {
	case boss.FlashHit:
		c = colornames.Red
	case boss.FlashPhase:
		c = colornames.White
	}
	for _, body := range b.Bodies() {
		fillRect(screen, body.Bounds, c)
		if body.Invulnerable {
			strokeRect(screen, body.Bounds, 3, colornames.Gold)
		}
		if debug {
			strokeRect(screen, body.Bounds, 1, colornames.Lime)
		}
	}

	r := b.Bounds()
	if tell, ok := b.Telegraph(); ok {
		ebitenutil.DebugPrintAt(screen, tell+"!", int(r.X), int(r.Y-18))
	}
	if debug {
		label := b.State().String()
		if attack, ok := b.CurrentAttack(); ok {
			label += " " + attack.Name
		}
		ebitenutil.DebugPrintAt(screen, label, int(r.X), int(r.Y+r.Height+2))
	}
}

func drawPlayer(screen *ebiten.Image, a *arena.Arena, debug bool) {
	p := a.Player()
	if !p.Alive() {
		return
	}
	// Blink through i-frames.
	if p.Invulnerable() && int(math.Floor(a.Elapsed()*10))%2 == 0 {
		return
	}
	fillRect(screen, p.Bounds(), colornames.Crimson)
	if debug {
		strokeRect(screen, p.Bounds(), 1, colornames.Lime)
	}
}

func drawHUD(screen *ebiten.Image, a *arena.Arena, paused, debug bool) {
	p := a.Player()
	hp, maxHP := p.Health()
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("HP %d/%d   SCORE %d", hp, maxHP, p.Score()), 10, 10)

	if b := a.Boss(); b != nil {
		width := a.Bounds().Width * 0.5
		x := (a.Bounds().Width - width) / 2
		fillRect(screen, common.Rect{X: x, Y: 12, Width: width, Height: 10}, colornames.Darkslategray)
		fillRect(screen, common.Rect{X: x, Y: 12, Width: width * b.HealthPercent(), Height: 10}, colornames.Firebrick)
		label := fmt.Sprintf("%s  phase %d", b.Name(), b.Phase())
		if debug {
			label += fmt.Sprintf("  %s  %d hp", b.State(), b.Health())
		}
		ebitenutil.DebugPrintAt(screen, label, int(x), 26)
	}

	msg := ""
	switch {
	case a.Outcome() == arena.OutcomeWon:
		msg = "VICTORY  (N: next boss, R: rematch)"
	case a.Outcome() == arena.OutcomeLost:
		msg = "DEFEATED  (R: retry)"
	case paused:
		msg = "PAUSED"
	}
	if msg != "" {
		ebitenutil.DebugPrintAt(screen, msg, int(a.Bounds().Width/2)-len(msg)*3, int(a.Bounds().Height/2))
	}
}

func drawDebug(screen *ebiten.Image, a *arena.Arena, text string) {
	stats := ecs.Stats(a.World())
	names := make([]string, 0, len(stats))
	for name := range stats {
		names = append(names, name)
	}
	sort.Strings(names)
	parts := make([]string, 0, len(names)+1)
	parts = append(parts, fmt.Sprintf("hazards:%d", len(a.Hazards())))
	for _, name := range names {
		parts = append(parts, fmt.Sprintf("%s:%d", name, stats[name]))
	}
	ebitenutil.DebugPrintAt(screen, strings.Join(parts, " "), 10, screen.Bounds().Dy()-36)
	ebitenutil.DebugPrintAt(screen, text, 10, screen.Bounds().Dy()-20)
}
