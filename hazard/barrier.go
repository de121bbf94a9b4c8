package hazard

import (
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/bossarena/common"
	"golang.org/x/image/colornames"
)

// reflectTolerance widens the reflection reach past the barrier's extent.
const reflectTolerance = 10.0

// Reflectable is the slice of a projectile a barrier needs.
type Reflectable interface {
	ID() uint64
	Position() cp.Vector
	Velocity() cp.Vector
	SetVelocity(v cp.Vector)
	PlayerOwned() bool
	SetPlayerOwned(owned bool)
}

// ReflectiveBarrier is a rotated slab held Offset pixels in front of its
// anchor along Angle. It bounces player shots back at the player.
type ReflectiveBarrier struct {
	Base
	Anchor Anchor
	Origin cp.Vector
	Angle  float64
	Width  float64
	Length float64
	Offset float64

	reflected map[uint64]struct{}
}

func NewReflectiveBarrier(anchor Anchor, angle, width, length, offset float64, damage int, duration float64, opts ...Option) *ReflectiveBarrier {
	var origin cp.Vector
	if anchor != nil {
		origin = anchor.Position()
	}
	b := &ReflectiveBarrier{
		Base:      newBase(origin, damage, duration, colornames.Lightsteelblue, opts),
		Anchor:    anchor,
		Origin:    origin,
		Angle:     angle,
		Width:     width,
		Length:    length,
		Offset:    offset,
		reflected: make(map[uint64]struct{}),
	}
	b.place()
	return b
}

func (b *ReflectiveBarrier) Kind() Kind { return KindReflectiveBarrier }

func (b *ReflectiveBarrier) place() {
	b.Pos = b.Origin.Add(cp.ForAngle(b.Angle).Mult(b.Offset))
}

func (b *ReflectiveBarrier) Update(dt float64) {
	if !b.active {
		return
	}
	b.advance(dt)
	if b.Anchor != nil {
		b.Origin = b.Anchor.Position()
	}
	b.place()
}

// SetAngle re-aims the barrier around its origin.
func (b *ReflectiveBarrier) SetAngle(angle float64) {
	b.Angle = angle
	b.place()
}

// Extent is half the barrier's longest side.
func (b *ReflectiveBarrier) Extent() float64 {
	return math.Max(b.Length, b.Width) / 2
}

// Corners returns the slab outline for drawing.
func (b *ReflectiveBarrier) Corners() [4]cp.Vector {
	along := cp.ForAngle(b.Angle).Mult(b.Width / 2)
	across := cp.ForAngle(b.Angle + math.Pi/2).Mult(b.Length / 2)
	return [4]cp.Vector{
		b.Pos.Add(across).Sub(along),
		b.Pos.Sub(across).Sub(along),
		b.Pos.Sub(across).Add(along),
		b.Pos.Add(across).Add(along),
	}
}

func (b *ReflectiveBarrier) CheckCollision(player common.Rect) bool {
	if !b.active || b.Length <= 0 || b.Width <= 0 {
		return false
	}
	return circleHits(b.Pos, b.Extent(), player)
}

// Reflect bounces a player-owned projectile in front of the barrier. Each
// projectile is reflected at most once per barrier.
func (b *ReflectiveBarrier) Reflect(p Reflectable) bool {
	if !b.active || p == nil || !p.PlayerOwned() || b.Extent() <= 0 {
		return false
	}
	if _, seen := b.reflected[p.ID()]; seen {
		return false
	}
	pos := p.Position()
	if b.Pos.Distance(pos) > b.Extent()+reflectTolerance {
		return false
	}
	if math.Abs(common.AngleDiff(common.AngleTo(b.Pos, pos), b.Angle)) > math.Pi/2 {
		return false
	}
	b.reflected[p.ID()] = struct{}{}
	p.SetVelocity(p.Velocity().Neg())
	p.SetPlayerOwned(false)
	return true
}
