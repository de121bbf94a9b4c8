package boss

import (
	"math"

	"github.com/jakecoffman/cp"
	"golang.org/x/image/colornames"

	"github.com/milk9111/bossarena/common"
	"github.com/milk9111/bossarena/hazard"
)

var vicePresidentBehavior = behavior{
	config:   vicePresidentConfig,
	newState: func(*Boss) AttackState { return &VicePresidentState{} },
	// Figure eight around the arena center.
	move: func(b *Boss, _ Target, dt float64) {
		t := b.clock
		c := b.bounds.Center()
		target := cp.Vector{X: c.X + math.Sin(t*0.7)*200, Y: c.Y + math.Sin(t*1.4)*150}
		b.MoveToward(target, b.cfg.Speed, dt)
	},
}

func vicePresidentConfig() Config {
	return Config{
		Kind:          KindVicePresident,
		Name:          "Vice President Hartley",
		MaxHealth:     650,
		Speed:         90,
		ContactDamage: 18,
		ScoreValue:    6500,
		Width:         48,
		Height:        48,
		IdleDuration:  1.3,
		Attacks: []Attack{
			{
				Name:     "Tie-Breaker Beam",
				WindUp:   1.0,
				Duration: 2.0,
				Cooldown: 2.0,
				MinPhase: Phase1,
				Tell:     "charge",
				OnWindUp: aimAtPlayer,
				Execute:  tieBreakerBeam,
			},
			{
				Name:     "Secret Service Summon",
				WindUp:   0.8,
				Duration: 0.5,
				Cooldown: 4.0,
				MinPhase: Phase1,
				Tell:     "signal",
				OnWindUp: func(b *Boss, _ Target) { vpState(b).Summoned = false },
				Execute:  secretServiceSummon,
			},
			{
				Name:     "Debate",
				WindUp:   1.2,
				Duration: 1.5,
				Cooldown: 3.5,
				MinPhase: Phase1,
				Tell:     "speech",
				OnWindUp: func(b *Boss, _ Target) { vpState(b).Pulse = nil },
				Execute:  debate,
			},
			{
				Name:     "Executive Influence",
				WindUp:   0.6,
				Duration: 2.0,
				Cooldown: 1.5,
				MinPhase: Phase2,
				Tell:     "gesture",
				Execute:  executiveInfluence,
			},
			{
				Name:     "Casting Vote",
				WindUp:   1.5,
				Duration: 0.3,
				Cooldown: 2.5,
				MinPhase: Phase3,
				Tell:     "decisive",
				OnWindUp: aimAtPlayer,
				Execute:  castingVote,
			},
		},
	}
}

func vpState(b *Boss) *VicePresidentState {
	st, ok := b.attackState.(*VicePresidentState)
	if !ok {
		st = &VicePresidentState{}
		b.attackState = st
	}
	return st
}

// aimAtPlayer records the heading to the player at wind-up.
func aimAtPlayer(b *Boss, p Target) {
	st := vpState(b)
	st.Beam = nil
	st.BeamAngle = common.AngleTo(b.pos, p.Position())
}

// tieBreakerBeam holds a beam on the wind-up heading. From phase 2 it creeps
// toward the player after half a second.
func tieBreakerBeam(b *Boss, p Target, dt, t float64) {
	st := vpState(b)
	if firstTick(t, dt) {
		duration := 2.0
		if b.current != nil {
			duration = b.current.Duration
		}
		st.Beam = b.hazards.SpawnBeamSweep(b, st.BeamAngle, st.BeamAngle, 400, 20, 18, duration)
	}
	if b.currentPhase < Phase2 || t <= 0.5 {
		return
	}
	speed := 1.0
	if b.currentPhase >= Phase4 {
		speed = 1.5
	}
	diff := common.AngleDiff(common.AngleTo(b.pos, p.Position()), st.BeamAngle)
	st.BeamAngle = common.NormalizeAngle(st.BeamAngle + diff*speed*dt)
	if st.Beam != nil {
		st.Beam.Lock(st.BeamAngle)
	}
}

// secretServiceSummon rings the player with agents.
func secretServiceSummon(b *Boss, p Target, _, _ float64) {
	st := vpState(b)
	if st.Summoned {
		return
	}
	st.Summoned = true

	count := 2
	if b.currentPhase >= Phase2 {
		count = 3
	}
	if b.currentPhase >= Phase4 {
		count = 4
	}
	center := p.Position()
	for i := 0; i < count; i++ {
		angle := float64(i) / float64(count) * 2 * math.Pi
		pos := clampInset(center.Add(cp.ForAngle(angle).Mult(200)), b.bounds, 50)
		b.SpawnMinion("secret_service", pos.X, pos.Y)
	}
}

func debate(b *Boss, _ Target, dt, t float64) {
	if !firstTick(t, dt) {
		return
	}
	maxRadius := 300.0
	if b.currentPhase >= Phase3 {
		maxRadius = 400
	}
	speed := 250.0
	if b.currentPhase >= Phase4 {
		speed = 300
	}
	vpState(b).Pulse = b.hazards.SpawnShockwave(b.pos.X, b.pos.Y, maxRadius, 24, speed, 5,
		hazard.WithColor(colornames.Mediumpurple))
}

func executiveInfluence(b *Boss, p Target, dt, t float64) {
	if !Every(t, dt, 0.3) {
		return
	}
	count := 3
	if b.currentPhase >= Phase3 {
		count = 5
	}
	spread := 0.6
	if b.currentPhase >= Phase4 {
		spread = 0.8
	}
	b.FireSpreadAtPlayer(p, count, spread, 300, 12, "legislation")
}

func castingVote(b *Boss, _ Target, dt, t float64) {
	if !firstTick(t, dt) {
		return
	}
	st := vpState(b)
	duration := 0.3
	if b.current != nil {
		duration = b.current.Duration
	}
	st.Beam = b.hazards.SpawnBeamSweep(b, st.BeamAngle, st.BeamAngle, 500, 30, 25, duration)
}

// clampInset keeps p at least inset pixels inside r.
func clampInset(p cp.Vector, r common.Rect, inset float64) cp.Vector {
	return cp.Vector{
		X: common.Clamp(p.X, r.X+inset, r.X+r.Width-inset),
		Y: common.Clamp(p.Y, r.Y+inset, r.Y+r.Height-inset),
	}
}
