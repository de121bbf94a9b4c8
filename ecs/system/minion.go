package system

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/bossarena/common"
	"github.com/milk9111/bossarena/ecs"
	"github.com/milk9111/bossarena/ecs/component"
)

// keepAwayDistance is how close a ranged minion lets the player get before it
// backs off.
const keepAwayDistance = 150.0

// MinionSystem steers minions toward the player and fires for ranged kinds.
// Melee minions close in and rely on contact damage.
type MinionSystem struct {
	dt     float64
	bounds common.Rect
}

func NewMinionSystem(dt float64, bounds common.Rect) *MinionSystem {
	return &MinionSystem{dt: dt, bounds: bounds}
}

func (s *MinionSystem) SetDT(dt float64) { s.dt = dt }

func (s *MinionSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	playerEnt, ok := ecs.First(w, component.PlayerTagComponent.Kind())
	if !ok {
		return
	}
	pt, ok := ecs.Get(w, playerEnt, component.TransformComponent.Kind())
	if !ok {
		return
	}
	player := cp.Vector{X: pt.X, Y: pt.Y}

	ecs.ForEach3(w,
		component.MinionComponent.Kind(),
		component.TransformComponent.Kind(),
		component.SizeComponent.Kind(),
		func(e ecs.Entity, m *component.Minion, t *component.Transform, size *component.Size) {
			m.Tick(s.dt)

			pos := cp.Vector{X: t.X, Y: t.Y}
			dist := pos.Distance(player)

			speed := m.Speed
			ranged := m.AttackRange > 0
			switch {
			case ranged && dist <= m.AttackRange && dist < keepAwayDistance:
				speed = -m.Speed * 0.5
			case ranged && dist <= m.AttackRange:
				speed = 0
			}
			if speed != 0 && dist > 0 {
				step := player.Sub(pos).Normalize().Mult(speed * s.dt)
				if speed > 0 && step.Length() > dist {
					step = player.Sub(pos)
				}
				pos = pos.Add(step)
				r := common.RectAround(pos.X, pos.Y, size.Width, size.Height).Clamp(s.bounds)
				t.X, t.Y = r.Center().X, r.Center().Y
			}

			if ranged && dist <= m.AttackRange && m.TryFire() {
				SpawnProjectile(w, ProjectileSpec{
					X:      t.X,
					Y:      t.Y,
					Angle:  common.AngleTo(pos, player),
					Speed:  m.ProjectileSpeed,
					Damage: m.Damage,
					Kind:   m.ProjectileKind,
				})
			}
		})
}
