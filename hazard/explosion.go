package hazard

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/bossarena/common"
	"golang.org/x/image/colornames"
)

const (
	DefaultExplosionDuration = 0.4
	explosionRampProgress    = 0.3
)

// Explosion grows to MaxRadius over the first 30% of its life, then holds. It
// damages at most once.
type Explosion struct {
	Base
	MaxRadius     float64
	CurrentRadius float64

	hasDamaged bool
}

func NewExplosion(x, y, radius float64, damage int, duration float64, opts ...Option) *Explosion {
	if duration <= 0 {
		duration = DefaultExplosionDuration
	}
	return &Explosion{
		Base:      newBase(cp.Vector{X: x, Y: y}, damage, duration, colornames.Darkorange, opts),
		MaxRadius: radius,
	}
}

func (e *Explosion) Kind() Kind { return KindExplosion }

func (e *Explosion) Update(dt float64) {
	if !e.active {
		return
	}
	e.advance(dt)
	p := e.Progress()
	if p < explosionRampProgress {
		e.CurrentRadius = e.MaxRadius * p / explosionRampProgress
		return
	}
	e.CurrentRadius = e.MaxRadius
}

func (e *Explosion) HasDamaged() bool { return e.hasDamaged }

func (e *Explosion) CheckCollision(player common.Rect) bool {
	if !e.active || e.hasDamaged {
		return false
	}
	if !circleHits(e.Pos, e.CurrentRadius, player) {
		return false
	}
	e.hasDamaged = true
	return true
}
