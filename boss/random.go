package boss

import (
	"math/rand/v2"
	"time"

	"github.com/jakecoffman/cp"
)

// Rand is the randomness a boss consumes. *rand.Rand satisfies it.
type Rand interface {
	Float64() float64
	IntN(n int) int
}

// NewRand returns a PCG source. A zero seed draws one from the clock.
func NewRand(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Jitter returns a value in [-spread/2, spread/2).
func (b *Boss) Jitter(spread float64) float64 {
	return (b.rng.Float64() - 0.5) * spread
}

// RandRange returns a value in [lo, hi).
func (b *Boss) RandRange(lo, hi float64) float64 {
	return lo + b.rng.Float64()*(hi-lo)
}

// EdgePoint returns a point inset from one arena edge (0 top, 1 right,
// 2 bottom, 3 left). along is the 0..1 position on the edge, which keeps a
// 50px margin from the corners.
func (b *Boss) EdgePoint(edge int, inset, along float64) cp.Vector {
	r := b.bounds
	x := r.X + 50 + along*(r.Width-100)
	y := r.Y + 50 + along*(r.Height-100)
	switch edge % 4 {
	case 0:
		return cp.Vector{X: x, Y: r.Y + inset}
	case 1:
		return cp.Vector{X: r.X + r.Width - inset, Y: y}
	case 2:
		return cp.Vector{X: x, Y: r.Y + r.Height - inset}
	default:
		return cp.Vector{X: r.X + inset, Y: y}
	}
}

// RandomEdgePoint picks a random edge and a random point along it.
func (b *Boss) RandomEdgePoint(inset float64) cp.Vector {
	return b.EdgePoint(b.rng.IntN(4), inset, b.rng.Float64())
}
