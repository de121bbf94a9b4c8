package system

import (
	"github.com/milk9111/bossarena/ecs"
	"github.com/milk9111/bossarena/ecs/component"
)

// TTLSystem counts TTL components down and destroys entities when they expire.
type TTLSystem struct {
	dt float64
}

func NewTTLSystem(dt float64) *TTLSystem {
	return &TTLSystem{dt: dt}
}

func (s *TTLSystem) SetDT(dt float64) { s.dt = dt }

func (s *TTLSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	ecs.ForEach(w, component.TTLComponent.Kind(), func(e ecs.Entity, ttl *component.TTL) {
		ttl.Remaining -= s.dt
		if ttl.Remaining <= 0 {
			ecs.DestroyEntity(w, e)
		}
	})
}
