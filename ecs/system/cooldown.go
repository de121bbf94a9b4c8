package system

import (
	"github.com/milk9111/bossarena/ecs"
	"github.com/milk9111/bossarena/ecs/component"
)

// CooldownSystem counts cooldowns down and removes them once they expire.
type CooldownSystem struct {
	dt float64
}

func NewCooldownSystem(dt float64) *CooldownSystem {
	return &CooldownSystem{dt: dt}
}

func (s *CooldownSystem) SetDT(dt float64) { s.dt = dt }

func (s *CooldownSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	ecs.ForEach(w, component.CooldownComponent.Kind(), func(e ecs.Entity, cd *component.Cooldown) {
		if cd == nil {
			return
		}
		cd.Remaining -= s.dt
		if cd.Remaining <= 0 {
			_ = ecs.Remove(w, e, component.CooldownComponent.Kind())
		}
	})
}
