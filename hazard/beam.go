package hazard

import (
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/bossarena/common"
	"golang.org/x/image/colornames"
)

// beamWarningProgress is the share of a sweep spent as a harmless telegraph.
const beamWarningProgress = 0.2

// BeamSweep is a beam rooted at its anchor whose angle moves linearly from
// StartAngle to EndAngle over its duration.
type BeamSweep struct {
	Base
	Anchor       Anchor
	StartAngle   float64
	EndAngle     float64
	CurrentAngle float64
	Length       float64
	Width        float64
}

func NewBeamSweep(anchor Anchor, startAngle, endAngle, length, width float64, damage int, duration float64, opts ...Option) *BeamSweep {
	var origin cp.Vector
	if anchor != nil {
		origin = anchor.Position()
	}
	return &BeamSweep{
		Base:         newBase(origin, damage, duration, colornames.Red, opts),
		Anchor:       anchor,
		StartAngle:   startAngle,
		EndAngle:     endAngle,
		CurrentAngle: startAngle,
		Length:       length,
		Width:        width,
	}
}

func (b *BeamSweep) Kind() Kind { return KindBeamSweep }

func (b *BeamSweep) Update(dt float64) {
	if !b.active {
		return
	}
	b.advance(dt)
	if b.Anchor != nil {
		b.Pos = b.Anchor.Position()
	}
	b.CurrentAngle = common.Lerp(b.StartAngle, b.EndAngle, b.Progress())
}

// Aim replaces the sweep range without restarting the clock.
func (b *BeamSweep) Aim(startAngle, endAngle float64) {
	b.StartAngle = startAngle
	b.EndAngle = endAngle
	b.CurrentAngle = common.Lerp(startAngle, endAngle, b.Progress())
}

// Lock pins the beam at a single angle.
func (b *BeamSweep) Lock(angle float64) {
	b.Aim(angle, angle)
}

// Warning reports whether the beam is still telegraphing.
func (b *BeamSweep) Warning() bool {
	return b.Progress() < beamWarningProgress
}

// End returns the tip of the beam.
func (b *BeamSweep) End() cp.Vector {
	return b.Pos.Add(cp.ForAngle(b.CurrentAngle).Mult(b.Length))
}

func (b *BeamSweep) CheckCollision(player common.Rect) bool {
	if !b.active || b.Warning() || b.Length <= 0 || b.Width <= 0 {
		return false
	}
	target := player.Center()
	dist := b.Pos.Distance(target)
	if dist > b.Length {
		return false
	}
	if dist == 0 {
		return true
	}
	tolerance := math.Atan2(b.Width/2, dist)
	deviation := math.Abs(common.AngleDiff(common.AngleTo(b.Pos, target), b.CurrentAngle))
	return deviation <= tolerance
}
