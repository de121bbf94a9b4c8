package boss

import "github.com/milk9111/bossarena/hazard"

// HazardSpawner creates hazards whose lifetime the caller owns. Beams and
// barriers take an anchor so they can follow the boss.
type HazardSpawner interface {
	SpawnBeamSweep(anchor hazard.Anchor, startAngle, endAngle, length, width float64, damage int, duration float64) *hazard.BeamSweep
	SpawnShockwave(x, y, maxRadius, ringThickness, speed float64, damage int, opts ...hazard.Option) *hazard.Shockwave
	SpawnLingeringZone(x, y, radius float64, damage int, duration, interval float64, opts ...hazard.Option) *hazard.LingeringZone
	SpawnTargetReticle(x, y, radius, delay float64, blast hazard.Blast) *hazard.TargetReticle
	SpawnExplosion(x, y, radius float64, damage int, duration float64, opts ...hazard.Option) *hazard.Explosion
	SpawnReflectiveBarrier(anchor hazard.Anchor, angle, width, length, offset float64, damage int, duration float64) *hazard.ReflectiveBarrier
}

// detachedSpawner builds hazards nobody updates. It keeps attacks safe to run
// on a boss that has not been placed in an arena.
type detachedSpawner struct{}

func (detachedSpawner) SpawnBeamSweep(anchor hazard.Anchor, startAngle, endAngle, length, width float64, damage int, duration float64) *hazard.BeamSweep {
	return hazard.NewBeamSweep(anchor, startAngle, endAngle, length, width, damage, duration)
}

func (detachedSpawner) SpawnShockwave(x, y, maxRadius, ringThickness, speed float64, damage int, opts ...hazard.Option) *hazard.Shockwave {
	return hazard.NewShockwave(x, y, maxRadius, ringThickness, speed, damage, opts...)
}

func (detachedSpawner) SpawnLingeringZone(x, y, radius float64, damage int, duration, interval float64, opts ...hazard.Option) *hazard.LingeringZone {
	return hazard.NewLingeringZone(x, y, radius, damage, duration, interval, opts...)
}

func (detachedSpawner) SpawnTargetReticle(x, y, radius, delay float64, blast hazard.Blast) *hazard.TargetReticle {
	return hazard.NewTargetReticle(x, y, radius, delay, blast)
}

func (detachedSpawner) SpawnExplosion(x, y, radius float64, damage int, duration float64, opts ...hazard.Option) *hazard.Explosion {
	return hazard.NewExplosion(x, y, radius, damage, duration, opts...)
}

func (detachedSpawner) SpawnReflectiveBarrier(anchor hazard.Anchor, angle, width, length, offset float64, damage int, duration float64) *hazard.ReflectiveBarrier {
	return hazard.NewReflectiveBarrier(anchor, angle, width, length, offset, damage, duration)
}
