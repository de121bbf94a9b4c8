package hazard

import (
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/bossarena/common"
	"golang.org/x/image/colornames"
)

// Shockwave is an expanding ring. Only the band
// [CurrentRadius-RingThickness, CurrentRadius] hurts; both the inside and the
// outside of the ring are safe.
type Shockwave struct {
	Base
	MaxRadius     float64
	RingThickness float64
	Speed         float64
	CurrentRadius float64
}

// NewShockwave derives the duration from MaxRadius/Speed. A ring that cannot
// expand is born inactive.
func NewShockwave(x, y, maxRadius, ringThickness, speed float64, damage int, opts ...Option) *Shockwave {
	duration := 0.0
	if speed > 0 && maxRadius > 0 {
		duration = maxRadius / speed
	}
	s := &Shockwave{
		Base:          newBase(cp.Vector{X: x, Y: y}, damage, duration, colornames.Orange, opts),
		MaxRadius:     maxRadius,
		RingThickness: ringThickness,
		Speed:         speed,
	}
	if duration <= 0 {
		s.active = false
	}
	return s
}

func (s *Shockwave) Kind() Kind { return KindShockwave }

func (s *Shockwave) Update(dt float64) {
	if !s.active {
		return
	}
	s.advance(dt)
	s.CurrentRadius = math.Min(s.MaxRadius, s.Speed*s.Elapsed)
}

// InnerRadius is the safe hole inside the ring.
func (s *Shockwave) InnerRadius() float64 {
	return math.Max(0, s.CurrentRadius-s.RingThickness)
}

func (s *Shockwave) CheckCollision(player common.Rect) bool {
	if !s.active || s.CurrentRadius <= 0 || s.RingThickness <= 0 {
		return false
	}
	dist := s.Pos.Distance(player.Center())
	pr := player.Radius()
	return dist+pr >= s.InnerRadius() && dist-pr <= s.CurrentRadius
}
