package boss

import (
	"math"

	"github.com/jakecoffman/cp"
	"golang.org/x/image/colornames"

	"github.com/milk9111/bossarena/common"
	"github.com/milk9111/bossarena/hazard"
)

const (
	executiveOrderWarning = 0.8
	airStrikeRadius       = 40.0
)

var presidentBehavior = behavior{
	config:   presidentConfig,
	newState: func(*Boss) AttackState { return &PresidentState{} },
	// Slow ellipse around the arena center.
	move: func(b *Boss, _ Target, dt float64) {
		t := b.clock
		c := b.bounds.Center()
		target := cp.Vector{X: c.X + math.Cos(t*0.3)*150, Y: c.Y + math.Sin(t*0.3)*90}
		b.MoveToward(target, b.cfg.Speed, dt)
	},
	// A barrier never outlives the veto that raised it.
	update: func(b *Boss, _ float64) {
		if b.state == StateAttacking {
			return
		}
		st := presidentState(b)
		if st.Barrier != nil {
			st.Barrier.Deactivate()
			st.Barrier = nil
		}
	},
}

func presidentConfig() Config {
	return Config{
		Kind:          KindPresident,
		Name:          "President Maxwell",
		MaxHealth:     1000,
		Speed:         70,
		ContactDamage: 25,
		ScoreValue:    10000,
		Width:         48,
		Height:        48,
		IdleDuration:  1.0,
		IdleByPhase:   map[Phase]float64{Phase3: 0.8, Phase4: 0.5},
		Attacks: []Attack{
			{
				Name:     "Executive Order",
				WindUp:   1.5,
				Duration: 3.0,
				Cooldown: 3.0,
				MinPhase: Phase1,
				Tell:     "sign",
				OnWindUp: executiveOrderWindUp,
				Execute:  executiveOrder,
			},
			{
				Name:     "Veto",
				WindUp:   0.8,
				Duration: 3.0,
				Cooldown: 2.5,
				MinPhase: Phase1,
				Tell:     "raise_hand",
				OnWindUp: func(b *Boss, p Target) {
					st := presidentState(b)
					st.Barrier = nil
					st.VetoAngle = common.AngleTo(b.pos, p.Position())
				},
				Execute: veto,
			},
			{
				Name:     "Press Conference",
				WindUp:   1.0,
				Duration: 0.5,
				Cooldown: 5.0,
				MinPhase: Phase1,
				Tell:     "announce",
				OnWindUp: func(b *Boss, _ Target) { presidentState(b).DronesSpawned = false },
				Execute:  pressConference,
			},
			{
				Name:     "Air Strike",
				WindUp:   1.5,
				Duration: 3.0,
				Cooldown: 3.5,
				MinPhase: Phase2,
				Tell:     "command",
				OnWindUp: airStrikeWindUp,
				Execute:  airStrike,
			},
			{
				Name:     "State of Emergency",
				WindUp:   2.0,
				Duration: 4.0,
				Cooldown: 4.0,
				MinPhase: Phase3,
				Tell:     "emergency",
				Execute:  stateOfEmergency,
			},
			{
				Name:     "Final Authority",
				WindUp:   2.5,
				Duration: 5.0,
				Cooldown: 5.0,
				MinPhase: Phase4,
				Tell:     "ultimate",
				OnWindUp: func(b *Boss, _ Target) { presidentState(b).Beams = nil },
				Execute:  finalAuthority,
			},
		},
	}
}

func presidentState(b *Boss) *PresidentState {
	st, ok := b.attackState.(*PresidentState)
	if !ok {
		st = &PresidentState{}
		b.attackState = st
	}
	return st
}

func executiveOrderWindUp(b *Boss, _ Target) {
	st := presidentState(b)
	count := 3
	if b.currentPhase >= Phase3 {
		count = 4
	}
	size := 150.0
	if b.currentPhase >= Phase4 {
		size = 200
	}
	r := b.bounds
	st.Zones = nil
	st.ZoneRadius = size / 2
	st.ZoneCenters = st.ZoneCenters[:0]
	for i := 0; i < count; i++ {
		st.ZoneCenters = append(st.ZoneCenters, cp.Vector{
			X: r.X + r.Width/float64(count+1)*float64(i+1) + b.Jitter(100),
			Y: r.Y + r.Height/2 + b.Jitter(200),
		})
	}
}

// executiveOrder lays the wind-up zones down at once. They telegraph for
// 0.8s and then burn for the rest of the attack.
func executiveOrder(b *Boss, _ Target, dt, t float64) {
	if !firstTick(t, dt) {
		return
	}
	st := presidentState(b)
	duration := 3.0
	if b.current != nil {
		duration = b.current.Duration
	}
	active := math.Max(duration-executiveOrderWarning, 0)
	for _, c := range st.ZoneCenters {
		z := b.hazards.SpawnLingeringZone(c.X, c.Y, st.ZoneRadius, 20, active, hazard.DefaultZoneInterval,
			hazard.WithColor(colornames.Darkred))
		z.SetWarning(executiveOrderWarning)
		st.Zones = append(st.Zones, z)
	}
}

// veto raises a barrier that slowly turns toward the player, with shots down
// its facing three times a second.
func veto(b *Boss, p Target, dt, t float64) {
	st := presidentState(b)
	diff := common.AngleDiff(common.AngleTo(b.pos, p.Position()), st.VetoAngle)
	st.VetoAngle = common.NormalizeAngle(st.VetoAngle + diff*0.5*dt)

	if firstTick(t, dt) {
		duration := 3.0
		if b.current != nil {
			duration = b.current.Duration
		}
		st.Barrier = b.hazards.SpawnReflectiveBarrier(b, st.VetoAngle, 16, 120, 50, 15, duration)
	}
	if st.Barrier != nil {
		st.Barrier.SetAngle(st.VetoAngle)
	}
	if Every(t, dt, 1.0/3) {
		b.SpawnProjectile(0, 0, st.VetoAngle, 280, 12, "legislation")
	}
}

func pressConference(b *Boss, _ Target, _, _ float64) {
	st := presidentState(b)
	if st.DronesSpawned {
		return
	}
	st.DronesSpawned = true

	count := 2
	if b.currentPhase >= Phase2 {
		count = 3
	}
	if b.currentPhase >= Phase4 {
		count = 4
	}
	for i := 0; i < count; i++ {
		angle := float64(i) / float64(count) * 2 * math.Pi
		pos := clampInset(b.pos.Add(cp.ForAngle(angle).Mult(150)), b.bounds, 50)
		b.SpawnMinion("camera_drone", pos.X, pos.Y)
	}
}

// airStrikeWindUp plans the strikes: two near the player and the rest
// scattered, each a little later than the last.
func airStrikeWindUp(b *Boss, p Target) {
	st := presidentState(b)
	count := 4
	if b.currentPhase >= Phase3 {
		count = 6
	}
	if b.currentPhase >= Phase4 {
		count = 8
	}
	delay := 1.2
	if b.currentPhase >= Phase4 {
		delay = 0.8
	}
	r := b.bounds
	target := p.Position()
	st.Reticles = nil
	st.ReticleSpots = st.ReticleSpots[:0]
	for i := 0; i < count; i++ {
		var pos cp.Vector
		if i < 2 {
			pos = cp.Vector{X: target.X + b.Jitter(100), Y: target.Y + b.Jitter(100)}
		} else {
			pos = cp.Vector{X: b.RandRange(r.X+100, r.X+r.Width-100), Y: b.RandRange(r.Y+100, r.Y+r.Height-100)}
		}
		st.ReticleSpots = append(st.ReticleSpots, ReticleSpot{Pos: pos, Delay: delay + float64(i)*0.2})
	}
}

func airStrike(b *Boss, _ Target, dt, t float64) {
	if !firstTick(t, dt) {
		return
	}
	st := presidentState(b)
	blast := hazard.Blast{Radius: airStrikeRadius, Damage: 25, Duration: hazard.DefaultExplosionDuration}
	for _, spot := range st.ReticleSpots {
		st.Reticles = append(st.Reticles, b.hazards.SpawnTargetReticle(spot.Pos.X, spot.Pos.Y, airStrikeRadius, spot.Delay, blast))
	}
}

// stateOfEmergency runs three stages: rotating bursts, aimed triples, then
// dense bursts.
func stateOfEmergency(b *Boss, p Target, dt, t float64) {
	switch {
	case t < 1.5:
		if Every(t, dt, 0.5) {
			b.FireCircularBurst(16, 200, 12, "legislation", t)
		}
	case t < 3.0:
		if Every(t, dt, 0.2) {
			b.FireSpreadAtPlayer(p, 3, 0.4, 350, 15, "legislation")
		}
	default:
		if Every(t, dt, 1.0/3) {
			b.FireCircularBurst(24, 250, 15, "executive_order", t*2)
		}
	}
}

// finalAuthority spins twin beams through the whole attack while firing at
// the player and calling in agents every two seconds.
func finalAuthority(b *Boss, p Target, dt, t float64) {
	st := presidentState(b)
	if firstTick(t, dt) {
		duration := 5.0
		if b.current != nil {
			duration = b.current.Duration
		}
		sweep := 1.5 * duration
		for i := 0; i < 2; i++ {
			start := float64(i) * math.Pi
			st.Beams = append(st.Beams, b.hazards.SpawnBeamSweep(b, start, start+sweep, 350, 20, 12, duration))
		}
	}
	if Every(t, dt, 0.25) {
		b.FireAtPlayer(p, 400, 18, "legislation")
	}
	if Every(t, dt, 2) {
		pos := b.RandomEdgePoint(30)
		b.SpawnMinion("secret_service", pos.X, pos.Y)
	}
}
