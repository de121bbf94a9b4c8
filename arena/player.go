package arena

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/bossarena/common"
	"github.com/milk9111/bossarena/ecs"
	"github.com/milk9111/bossarena/ecs/component"
)

// Player is a read-only view of the player entity. It is the boss.Target the
// arena hands to the boss every tick.
type Player struct {
	w *ecs.World
	e ecs.Entity
}

func (p Player) Position() cp.Vector {
	t, ok := ecs.Get(p.w, p.e, component.TransformComponent.Kind())
	if !ok {
		return cp.Vector{}
	}
	return cp.Vector{X: t.X, Y: t.Y}
}

func (p Player) Bounds() common.Rect {
	t, ok := ecs.Get(p.w, p.e, component.TransformComponent.Kind())
	if !ok {
		return common.Rect{}
	}
	s, ok := ecs.Get(p.w, p.e, component.SizeComponent.Kind())
	if !ok {
		return common.Rect{X: t.X, Y: t.Y}
	}
	return common.RectAround(t.X, t.Y, s.Width, s.Height)
}

// Health returns the current and maximum health.
func (p Player) Health() (int, int) {
	h, ok := ecs.Get(p.w, p.e, component.HealthComponent.Kind())
	if !ok {
		return 0, 0
	}
	return h.Current, h.Max
}

func (p Player) Alive() bool {
	cur, _ := p.Health()
	return cur > 0
}

func (p Player) Invulnerable() bool {
	return ecs.Has(p.w, p.e, component.InvulnerableComponent.Kind())
}

func (p Player) Score() int {
	s, ok := ecs.Get(p.w, p.e, component.ScoreComponent.Kind())
	if !ok {
		return 0
	}
	return s.Points
}

func (a *Arena) Player() Player {
	return Player{w: a.world, e: a.player}
}

func (a *Arena) spawnPlayer(score int) {
	e := ecs.CreateEntity(a.world)
	_ = ecs.Add(a.world, e, component.PlayerTagComponent.Kind(), &component.PlayerTag{})
	_ = ecs.Add(a.world, e, component.TransformComponent.Kind(), &component.Transform{
		X: a.bounds.X + a.bounds.Width/2,
		Y: a.bounds.Y + a.bounds.Height*0.8,
	})
	_ = ecs.Add(a.world, e, component.SizeComponent.Kind(), &component.Size{Width: a.spec.PlayerSize, Height: a.spec.PlayerSize})
	_ = ecs.Add(a.world, e, component.HealthComponent.Kind(), &component.Health{Current: a.spec.PlayerHealth, Max: a.spec.PlayerHealth})
	_ = ecs.Add(a.world, e, component.ScoreComponent.Kind(), &component.Score{Points: score})
	a.player = e
}

// MovePlayer moves the player along (dx, dy) at the configured speed. The
// direction is normalized so diagonals are not faster.
func (a *Arena) MovePlayer(dx, dy, dt float64) {
	if !a.Player().Alive() {
		return
	}
	t, ok := ecs.Get(a.world, a.player, component.TransformComponent.Kind())
	if !ok {
		return
	}
	dir := cp.Vector{X: dx, Y: dy}
	if dir.Length() > 1 {
		dir = dir.Normalize()
	}
	pos := cp.Vector{X: t.X, Y: t.Y}.Add(dir.Mult(a.spec.PlayerSpeed * dt))
	size := a.spec.PlayerSize
	c := common.RectAround(pos.X, pos.Y, size, size).Clamp(a.bounds).Center()
	t.X, t.Y = c.X, c.Y
}

// SetPlayerPosition teleports the player, clamped to the arena.
func (a *Arena) SetPlayerPosition(x, y float64) {
	t, ok := ecs.Get(a.world, a.player, component.TransformComponent.Kind())
	if !ok {
		return
	}
	size := a.spec.PlayerSize
	c := common.RectAround(x, y, size, size).Clamp(a.bounds).Center()
	t.X, t.Y = c.X, c.Y
}

// damagePlayer applies a hit unless the player is dead or inside i-frames.
func (a *Arena) damagePlayer(amount int) bool {
	if amount <= 0 || a.Player().Invulnerable() {
		return false
	}
	h, ok := ecs.Get(a.world, a.player, component.HealthComponent.Kind())
	if !ok || h.Current <= 0 {
		return false
	}
	h.Current -= amount
	if h.Current < 0 {
		h.Current = 0
	}
	_ = ecs.Add(a.world, a.player, component.InvulnerableComponent.Kind(), &component.Invulnerable{Remaining: a.spec.PlayerInvulnerability})
	if h.Current == 0 && a.outcome == OutcomeFighting {
		a.outcome = OutcomeLost
	}
	return true
}

func (a *Arena) addScore(points int) {
	if s, ok := ecs.Get(a.world, a.player, component.ScoreComponent.Kind()); ok {
		s.Points += points
	}
}
