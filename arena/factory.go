package arena

import (
	"github.com/milk9111/bossarena/boss"
	"github.com/milk9111/bossarena/hazard"
)

var _ boss.HazardSpawner = (*Arena)(nil)

// add registers a hazard with the room. It is updated from the tick it was
// created in until it deactivates or the room resets.
func (a *Arena) add(h hazard.Hazard) {
	a.hazards = append(a.hazards, h)
}

func (a *Arena) SpawnBeamSweep(anchor hazard.Anchor, startAngle, endAngle, length, width float64, damage int, duration float64) *hazard.BeamSweep {
	h := hazard.NewBeamSweep(anchor, startAngle, endAngle, length, width, damage, duration)
	a.add(h)
	return h
}

func (a *Arena) SpawnShockwave(x, y, maxRadius, ringThickness, speed float64, damage int, opts ...hazard.Option) *hazard.Shockwave {
	h := hazard.NewShockwave(x, y, maxRadius, ringThickness, speed, damage, opts...)
	a.add(h)
	return h
}

func (a *Arena) SpawnLingeringZone(x, y, radius float64, damage int, duration, interval float64, opts ...hazard.Option) *hazard.LingeringZone {
	h := hazard.NewLingeringZone(x, y, radius, damage, duration, interval, opts...)
	a.add(h)
	return h
}

// SpawnTargetReticle places a reticle whose explode event becomes an
// Explosion through the world event queue.
func (a *Arena) SpawnTargetReticle(x, y, radius, delay float64, blast hazard.Blast) *hazard.TargetReticle {
	h := hazard.NewTargetReticle(x, y, radius, delay, blast)
	a.add(h)
	return h
}

func (a *Arena) SpawnExplosion(x, y, radius float64, damage int, duration float64, opts ...hazard.Option) *hazard.Explosion {
	h := hazard.NewExplosion(x, y, radius, damage, duration, opts...)
	a.add(h)
	return h
}

func (a *Arena) SpawnReflectiveBarrier(anchor hazard.Anchor, angle, width, length, offset float64, damage int, duration float64) *hazard.ReflectiveBarrier {
	h := hazard.NewReflectiveBarrier(anchor, angle, width, length, offset, damage, duration)
	a.add(h)
	return h
}
