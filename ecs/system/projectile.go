package system

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/bossarena/common"
	"github.com/milk9111/bossarena/ecs"
	"github.com/milk9111/bossarena/ecs/component"
)

// outOfBoundsMargin is how far past the arena edge a projectile may travel
// before it is removed.
const outOfBoundsMargin = 50.0

// ProjectileSystem integrates projectile velocity and culls projectiles that
// leave the arena.
type ProjectileSystem struct {
	dt     float64
	bounds common.Rect
}

func NewProjectileSystem(dt float64, bounds common.Rect) *ProjectileSystem {
	return &ProjectileSystem{dt: dt, bounds: bounds}
}

// SetDT changes the step used by the next Update.
func (s *ProjectileSystem) SetDT(dt float64) { s.dt = dt }

func (s *ProjectileSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	ecs.ForEach3(w,
		component.ProjectileComponent.Kind(),
		component.TransformComponent.Kind(),
		component.VelocityComponent.Kind(),
		func(e ecs.Entity, _ *component.Projectile, t *component.Transform, v *component.Velocity) {
			t.X += v.X * s.dt
			t.Y += v.Y * s.dt
			if !s.bounds.Contains(cp.Vector{X: t.X, Y: t.Y}, outOfBoundsMargin) {
				ecs.DestroyEntity(w, e)
			}
		})
}
