package system

import (
	"github.com/milk9111/bossarena/ecs"
	"github.com/milk9111/bossarena/ecs/component"
)

// InvulnerableSystem counts i-frames down and removes the component once
// they run out.
type InvulnerableSystem struct {
	dt float64
}

func NewInvulnerableSystem(dt float64) *InvulnerableSystem {
	return &InvulnerableSystem{dt: dt}
}

func (s *InvulnerableSystem) SetDT(dt float64) { s.dt = dt }

func (s *InvulnerableSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	ecs.ForEach(w, component.InvulnerableComponent.Kind(), func(e ecs.Entity, inv *component.Invulnerable) {
		inv.Remaining -= s.dt
		if inv.Remaining <= 0 {
			ecs.Remove(w, e, component.InvulnerableComponent.Kind())
		}
	})
}
