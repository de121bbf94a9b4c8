package boss

import (
	"math"

	"github.com/jakecoffman/cp"
	"golang.org/x/image/colornames"

	"github.com/milk9111/bossarena/hazard"
)

// podiumShieldFactor scales damage taken while the podium shield is up.
const podiumShieldFactor = 0.25

var speakerBehavior = behavior{
	config:   speakerConfig,
	newState: func(*Boss) AttackState { return &SpeakerState{} },
	move: func(b *Boss, _ Target, dt float64) {
		t := b.clock
		r := b.bounds
		target := cp.Vector{
			X: r.X + r.Width/2 + math.Sin(t*0.5)*100,
			Y: r.Y + r.Height*0.25 + math.Cos(t*0.4)*50,
		}
		b.MoveToward(target, b.cfg.Speed, dt)
	},
	update: func(b *Boss, _ float64) {
		if b.state != StateAttacking {
			speakerState(b).Shielded = false
		}
	},
	adjustDamage: func(b *Boss, _ int, amount int) (int, bool) {
		if speakerState(b).Shielded {
			return int(math.Floor(float64(amount) * podiumShieldFactor)), true
		}
		return amount, true
	},
}

func speakerConfig() Config {
	return Config{
		Kind:          KindSpeaker,
		Name:          "Speaker Morrison",
		MaxHealth:     700,
		Speed:         60,
		ContactDamage: 20,
		ScoreValue:    7000,
		Width:         48,
		Height:        48,
		IdleDuration:  1.5,
		Attacks: []Attack{
			{
				Name:     "Gavel Slam",
				WindUp:   1.0,
				Duration: 1.5,
				Cooldown: 2.0,
				MinPhase: Phase1,
				Tell:     "raise_gavel",
				OnWindUp: func(b *Boss, p Target) {
					st := speakerState(b)
					st.SlamTarget = p.Position()
					st.Slam = nil
				},
				Execute: gavelSlam,
			},
			{
				Name:     "Call Vote",
				WindUp:   1.2,
				Duration: 0.5,
				Cooldown: 4.0,
				MinPhase: Phase1,
				Tell:     "point",
				OnWindUp: func(b *Boss, _ Target) { speakerState(b).VoteCalled = false },
				Execute:  callVote,
			},
			{
				Name:     "Podium Shield",
				WindUp:   0.5,
				Duration: 3.0,
				Cooldown: 2.5,
				MinPhase: Phase1,
				Tell:     "hide",
				OnWindUp: func(b *Boss, _ Target) { speakerState(b).Shielded = true },
				Execute:  podiumShield,
			},
			{
				Name:     "Point of Order",
				WindUp:   0.4,
				Duration: 2.0,
				Cooldown: 1.5,
				MinPhase: Phase2,
				Tell:     "point",
				Execute: func(b *Boss, p Target, dt, t float64) {
					if Every(t, dt, 0.15) {
						b.FireAtPlayer(p, 380, 12, "legislation")
					}
				},
			},
			{
				Name:     "Ruling from the Chair",
				WindUp:   1.5,
				Duration: 2.5,
				Cooldown: 3.0,
				MinPhase: Phase3,
				Tell:     "ruling",
				OnWindUp: func(b *Boss, _ Target) { speakerState(b).Ruling = nil },
				Execute:  rulingFromTheChair,
			},
		},
	}
}

func speakerState(b *Boss) *SpeakerState {
	st, ok := b.attackState.(*SpeakerState)
	if !ok {
		st = &SpeakerState{}
		b.attackState = st
	}
	return st
}

// gavelSlam drops a shockwave where the player stood at wind-up, 0.3s in.
func gavelSlam(b *Boss, _ Target, dt, t float64) {
	if !Crossed(t, dt, 0.3) {
		return
	}
	maxRadius := 250.0
	if b.currentPhase >= Phase3 {
		maxRadius = 350
	}
	speed := 250.0
	if b.currentPhase >= Phase2 {
		speed = 300
	}
	st := speakerState(b)
	st.Slam = b.hazards.SpawnShockwave(st.SlamTarget.X, st.SlamTarget.Y, maxRadius, 30, speed, 15,
		hazard.WithColor(colornames.Goldenrod))
}

func callVote(b *Boss, _ Target, _, _ float64) {
	st := speakerState(b)
	if st.VoteCalled {
		return
	}
	st.VoteCalled = true

	interns, bureaucrats := 3, 1
	switch b.currentPhase {
	case Phase2:
		interns, bureaucrats = 4, 2
	case Phase3:
		interns, bureaucrats = 5, 2
	case Phase4:
		interns, bureaucrats = 6, 3
	}
	for i := 0; i < interns; i++ {
		p := b.EdgePoint(i, 30, b.rng.Float64())
		b.SpawnMinion("intern", p.X, p.Y)
	}
	r := b.bounds
	for i := 0; i < bureaucrats; i++ {
		x := r.X + 50
		if i%2 == 1 {
			x = r.X + r.Width - 50
		}
		b.SpawnMinion("bureaucrat", x, r.Y+r.Height/2+b.Jitter(200))
	}
}

// podiumShield fires small arcs from behind the podium while damage is
// reduced.
func podiumShield(b *Boss, p Target, dt, t float64) {
	speakerState(b).Shielded = true

	interval := 0.4
	if b.currentPhase >= Phase3 {
		interval = 0.3
	}
	if !Every(t, dt, interval) {
		return
	}
	count := 2
	if b.currentPhase >= Phase2 {
		count = 3
	}
	origin := b.pos.Add(cp.Vector{Y: -20})
	b.FireSpreadFrom(origin, p.Position(), count, 0.3, 280, 10, "legislation")
}

// rulingFromTheChair fires up to five rotating bursts, half a second apart.
// The first is joined by a shockwave from the chair.
func rulingFromTheChair(b *Boss, _ Target, dt, t float64) {
	if !Every(t, dt, 0.5) {
		return
	}
	wave := Bucket(t, 0.5)
	if wave > 5 {
		return
	}
	b.FireCircularBurst(16+int(b.currentPhase)*2, 200, 12, "gavel_shockwave", float64(wave)*0.2)
	if wave == 1 {
		speakerState(b).Ruling = b.hazards.SpawnShockwave(b.pos.X, b.pos.Y, 300, 25, 200, 12,
			hazard.WithColor(colornames.Goldenrod))
	}
}
