package boss

import (
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/bossarena/common"
)

// ProjectileRequest asks the arena to spawn a hostile projectile.
type ProjectileRequest struct {
	X      float64
	Y      float64
	Angle  float64
	Speed  float64
	Damage int
	Kind   string
}

// MinionRequest asks the arena to spawn an ordinary enemy.
type MinionRequest struct {
	Kind string
	X    float64
	Y    float64
}

// timeEpsilon absorbs the drift of an attack clock built by summing dt.
const timeEpsilon = 1e-9

// Bucket returns how many whole intervals fit in t.
func Bucket(t, interval float64) int {
	if interval <= 0 {
		return 0
	}
	return int(math.Floor(t/interval + timeEpsilon))
}

// Every reports whether a periodic event with the given interval falls inside
// the tick that advanced the attack clock from t-dt to t.
func Every(t, dt, interval float64) bool {
	if interval <= 0 || dt <= 0 {
		return false
	}
	return Bucket(t, interval) > Bucket(t-dt, interval)
}

// Crossed reports whether mark was passed during the tick ending at t.
func Crossed(t, dt, mark float64) bool {
	return t >= mark-timeEpsilon && t-dt < mark-timeEpsilon
}

// firstTick reports whether t is the first tick of an attack.
func firstTick(t, dt float64) bool {
	return t-dt <= timeEpsilon
}

// SpawnProjectile queues a projectile at an offset from the boss.
func (b *Boss) SpawnProjectile(offsetX, offsetY, angle, speed float64, damage int, kind string) {
	b.FireFrom(b.pos.Add(cp.Vector{X: offsetX, Y: offsetY}), angle, speed, damage, kind)
}

// FireFrom queues a projectile from an arbitrary origin.
func (b *Boss) FireFrom(origin cp.Vector, angle, speed float64, damage int, kind string) {
	b.projectileRequests = append(b.projectileRequests, ProjectileRequest{
		X:      origin.X,
		Y:      origin.Y,
		Angle:  angle,
		Speed:  speed,
		Damage: damage,
		Kind:   kind,
	})
}

func (b *Boss) FireAtPlayer(p Target, speed float64, damage int, kind string) {
	b.FireFrom(b.pos, common.AngleTo(b.pos, p.Position()), speed, damage, kind)
}

func (b *Boss) FireSpreadAtPlayer(p Target, count int, spread, speed float64, damage int, kind string) {
	b.FireSpreadFrom(b.pos, p.Position(), count, spread, speed, damage, kind)
}

// FireSpreadFrom fans count shots evenly across spread radians, centered on
// the heading from origin to target.
func (b *Boss) FireSpreadFrom(origin, target cp.Vector, count int, spread, speed float64, damage int, kind string) {
	if count <= 0 {
		return
	}
	base := common.AngleTo(origin, target)
	if count == 1 {
		b.FireFrom(origin, base, speed, damage, kind)
		return
	}
	step := spread / float64(count-1)
	for i := 0; i < count; i++ {
		b.FireFrom(origin, base-spread/2+step*float64(i), speed, damage, kind)
	}
}

// FireCircularBurst fires count shots evenly around the boss.
func (b *Boss) FireCircularBurst(count int, speed float64, damage int, kind string, startAngle float64) {
	if count <= 0 {
		return
	}
	step := 2 * math.Pi / float64(count)
	for i := 0; i < count; i++ {
		b.FireFrom(b.pos, startAngle+step*float64(i), speed, damage, kind)
	}
}

func (b *Boss) SpawnMinion(kind string, x, y float64) {
	b.minionRequests = append(b.minionRequests, MinionRequest{Kind: kind, X: x, Y: y})
}

// ProjectileRequests returns this tick's projectile requests without
// consuming them.
func (b *Boss) ProjectileRequests() []ProjectileRequest { return b.projectileRequests }

func (b *Boss) MinionRequests() []MinionRequest { return b.minionRequests }

// DrainProjectileRequests hands this tick's projectile requests to the caller
// and empties the buffer.
func (b *Boss) DrainProjectileRequests() []ProjectileRequest {
	out := b.projectileRequests
	b.projectileRequests = nil
	return out
}

func (b *Boss) DrainMinionRequests() []MinionRequest {
	out := b.minionRequests
	b.minionRequests = nil
	return out
}
