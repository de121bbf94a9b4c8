// Package hazard implements the transient boss attack effects: beams, rings,
// damage zones, delayed strikes and reflective barriers. Every hazard derives
// its geometry from elapsed time over an explicit duration.
package hazard

import (
	"image/color"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/bossarena/common"
)

type Kind int

const (
	KindBeamSweep Kind = iota
	KindShockwave
	KindLingeringZone
	KindTargetReticle
	KindExplosion
	KindReflectiveBarrier
)

func (k Kind) String() string {
	switch k {
	case KindBeamSweep:
		return "beam_sweep"
	case KindShockwave:
		return "shockwave"
	case KindLingeringZone:
		return "lingering_zone"
	case KindTargetReticle:
		return "target_reticle"
	case KindExplosion:
		return "explosion"
	case KindReflectiveBarrier:
		return "reflective_barrier"
	default:
		return "unknown"
	}
}

// Hazard is the contract the arena drives once per tick.
type Hazard interface {
	Update(dt float64)
	// CheckCollision tests the player's bounds against the hazard geometry.
	CheckCollision(player common.Rect) bool
	Active() bool
	Deactivate()
	Kind() Kind
	Core() *Base
}

// Anchor is anything a hazard can follow, usually the boss.
type Anchor interface {
	Position() cp.Vector
}

// Point is a fixed Anchor.
type Point cp.Vector

func (p Point) Position() cp.Vector { return cp.Vector(p) }

// Base holds the lifecycle shared by every hazard.
type Base struct {
	Pos      cp.Vector
	Damage   int
	Duration float64
	Elapsed  float64
	Color    color.RGBA

	active bool
}

// Option customises a hazard at construction.
type Option func(*Base)

func WithColor(c color.RGBA) Option {
	return func(b *Base) { b.Color = c }
}

func newBase(pos cp.Vector, damage int, duration float64, c color.RGBA, opts []Option) Base {
	b := Base{Pos: pos, Damage: damage, Duration: duration, Color: c, active: true}
	for _, opt := range opts {
		if opt != nil {
			opt(&b)
		}
	}
	return b
}

func (b *Base) Core() *Base { return b }

func (b *Base) Active() bool { return b.active }

func (b *Base) Deactivate() { b.active = false }

// Progress is Elapsed/Duration clamped to [0, 1]. A hazard with no duration
// is always complete.
func (b *Base) Progress() float64 {
	if b.Duration <= 0 {
		return 1
	}
	return cp.Clamp01(b.Elapsed / b.Duration)
}

// advance moves the clock and retires the hazard once its duration is spent.
// It reports whether the hazard is still live.
func (b *Base) advance(dt float64) bool {
	if !b.active {
		return false
	}
	b.Elapsed += dt
	if b.Elapsed >= b.Duration {
		b.active = false
	}
	return b.active
}

// EventKind tags deferred hazard events.
type EventKind string

const EventExplode EventKind = "explode"

// Event is emitted by a hazard instead of calling back into the arena.
type Event struct {
	Kind     EventKind
	X        float64
	Y        float64
	Radius   float64
	Damage   int
	Duration float64
}

// EventSource is implemented by hazards that emit deferred events.
type EventSource interface {
	DrainEvents() []Event
}

// circleHits tests a circle against the player's bounding circle.
func circleHits(center cp.Vector, radius float64, player common.Rect) bool {
	if radius <= 0 {
		return false
	}
	return center.Distance(player.Center()) < radius+player.Radius()
}
