package hazard

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/bossarena/common"
	"golang.org/x/image/colornames"
)

const (
	DefaultZoneInterval = 0.5
	DefaultZoneWarning  = 0.5
)

// LingeringZone is a filled disc that hurts periodically after a grace period.
// Its total duration is the active duration plus the warning.
type LingeringZone struct {
	Base
	Radius          float64
	DamageInterval  float64
	WarningDuration float64

	lastDamageTime float64
	hasDamaged     bool
}

func NewLingeringZone(x, y, radius float64, damage int, duration, interval float64, opts ...Option) *LingeringZone {
	if interval <= 0 {
		interval = DefaultZoneInterval
	}
	return &LingeringZone{
		Base:            newBase(cp.Vector{X: x, Y: y}, damage, duration+DefaultZoneWarning, colornames.Orangered, opts),
		Radius:          radius,
		DamageInterval:  interval,
		WarningDuration: DefaultZoneWarning,
	}
}

// SetWarning changes the grace period, keeping the active duration intact.
func (z *LingeringZone) SetWarning(warning float64) {
	if warning < 0 {
		warning = 0
	}
	z.Duration += warning - z.WarningDuration
	z.WarningDuration = warning
}

func (z *LingeringZone) Kind() Kind { return KindLingeringZone }

func (z *LingeringZone) Update(dt float64) {
	z.advance(dt)
}

func (z *LingeringZone) Warning() bool {
	return z.Elapsed < z.WarningDuration
}

func (z *LingeringZone) CheckCollision(player common.Rect) bool {
	if !z.active || z.Warning() {
		return false
	}
	return circleHits(z.Pos, z.Radius, player)
}

// CanDealDamage rate-limits hits to one per DamageInterval of elapsed time.
// A true result is consumed, so poll it only after CheckCollision passes.
func (z *LingeringZone) CanDealDamage() bool {
	if !z.active || z.Warning() {
		return false
	}
	if z.hasDamaged && z.Elapsed-z.lastDamageTime < z.DamageInterval {
		return false
	}
	z.hasDamaged = true
	z.lastDamageTime = z.Elapsed
	return true
}
