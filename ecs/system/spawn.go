package system

import (
	"math"

	"github.com/milk9111/bossarena/common"
	"github.com/milk9111/bossarena/ecs"
	"github.com/milk9111/bossarena/ecs/component"
)

const (
	ProjectileSize     = 8.0
	projectileLifetime = 10.0
)

// ProjectileSpec describes a projectile to instantiate.
type ProjectileSpec struct {
	X           float64
	Y           float64
	Angle       float64
	Speed       float64
	Damage      int
	Kind        string
	PlayerOwned bool
}

// SpawnProjectile creates a live projectile entity.
func SpawnProjectile(w *ecs.World, spec ProjectileSpec) ecs.Entity {
	e := ecs.CreateEntity(w)
	_ = ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{X: spec.X, Y: spec.Y})
	_ = ecs.Add(w, e, component.VelocityComponent.Kind(), &component.Velocity{
		X: math.Cos(spec.Angle) * spec.Speed,
		Y: math.Sin(spec.Angle) * spec.Speed,
	})
	_ = ecs.Add(w, e, component.SizeComponent.Kind(), &component.Size{Width: ProjectileSize, Height: ProjectileSize})
	_ = ecs.Add(w, e, component.ProjectileComponent.Kind(), &component.Projectile{
		Kind:        spec.Kind,
		Damage:      spec.Damage,
		PlayerOwned: spec.PlayerOwned,
	})
	_ = ecs.Add(w, e, component.TTLComponent.Kind(), &component.TTL{Remaining: projectileLifetime})
	return e
}

// Bounds returns the AABB of an entity with a Transform and Size.
func Bounds(w *ecs.World, e ecs.Entity) (common.Rect, bool) {
	t, ok := ecs.Get(w, e, component.TransformComponent.Kind())
	if !ok {
		return common.Rect{}, false
	}
	s, ok := ecs.Get(w, e, component.SizeComponent.Kind())
	if !ok {
		return common.Rect{}, false
	}
	return common.RectAround(t.X, t.Y, s.Width, s.Height), true
}
