package hazard

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/bossarena/common"
	"golang.org/x/image/colornames"
)

// Blast describes the explosion a reticle requests when it fires.
type Blast struct {
	Radius   float64
	Damage   int
	Duration float64
}

// TargetReticle marks a spot and, after Delay, emits a single explode event.
// It never deals damage itself.
type TargetReticle struct {
	Base
	Radius float64
	Delay  float64
	Blast  Blast

	fired  bool
	events []Event
}

func NewTargetReticle(x, y, radius, delay float64, blast Blast, opts ...Option) *TargetReticle {
	return &TargetReticle{
		Base:   newBase(cp.Vector{X: x, Y: y}, 0, delay, colornames.Red, opts),
		Radius: radius,
		Delay:  delay,
		Blast:  blast,
	}
}

func (r *TargetReticle) Kind() Kind { return KindTargetReticle }

func (r *TargetReticle) Update(dt float64) {
	if !r.active {
		return
	}
	r.Elapsed += dt
	if r.fired || r.Elapsed < r.Delay {
		return
	}
	r.fired = true
	r.active = false
	r.events = append(r.events, Event{
		Kind:     EventExplode,
		X:        r.Pos.X,
		Y:        r.Pos.Y,
		Radius:   r.Blast.Radius,
		Damage:   r.Blast.Damage,
		Duration: r.Blast.Duration,
	})
}

// Fired reports whether the reticle has emitted its explosion.
func (r *TargetReticle) Fired() bool { return r.fired }

func (r *TargetReticle) CheckCollision(common.Rect) bool { return false }

func (r *TargetReticle) DrainEvents() []Event {
	out := r.events
	r.events = nil
	return out
}
