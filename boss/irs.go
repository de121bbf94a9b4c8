package boss

import (
	"math"

	"github.com/jakecoffman/cp"
)

var irsBehavior = behavior{
	config:   irsConfig,
	newState: func(*Boss) AttackState { return &IRSState{BeamCount: 1, BeamSpeed: math.Pi / 3, PapersPerWave: 12} },
	move: func(b *Boss, _ Target, dt float64) {
		t := b.clock
		c := b.bounds.Center()
		target := cp.Vector{
			X: c.X + math.Sin(t/2)*150,
			Y: b.bounds.Y + b.bounds.Height/3 + math.Cos(t/2.5)*100,
		}
		b.MoveToward(target, b.cfg.Speed, dt)
	},
}

func irsConfig() Config {
	return Config{
		Kind:          KindIRSCommissioner,
		Name:          "IRS Commissioner Pemberton",
		MaxHealth:     500,
		Speed:         80,
		ContactDamage: 20,
		ScoreValue:    5000,
		Width:         48,
		Height:        48,
		IdleDuration:  1.5,
		IdleByPhase:   map[Phase]float64{Phase3: 1.0, Phase4: 0.8},
		Attacks: []Attack{
			{
				Name:     "Audit Beam Sweep",
				WindUp:   0.8,
				Duration: 3.0,
				Cooldown: 1.5,
				MinPhase: Phase1,
				Tell:     "raise_arm",
				OnWindUp: auditBeamWindUp,
				Execute:  auditBeamSweep,
			},
			{
				Name:     "Summon Agents",
				WindUp:   1.0,
				Duration: 0.5,
				Cooldown: 3.0,
				MinPhase: Phase1,
				Tell:     "raise_hand",
				Execute:  summonAgents,
			},
			{
				Name:     "Paper Storm",
				WindUp:   1.2,
				Duration: 2.0,
				Cooldown: 2.0,
				MinPhase: Phase1,
				Tell:     "charge_up",
				OnWindUp: paperStormWindUp,
				Execute:  paperStorm,
			},
			{
				Name:     "Targeted Audit",
				WindUp:   0.5,
				Duration: 1.5,
				Cooldown: 1.0,
				MinPhase: Phase2,
				Tell:     "point",
				Execute:  targetedAudit,
			},
		},
	}
}

func irsState(b *Boss) *IRSState {
	st, ok := b.attackState.(*IRSState)
	if !ok {
		st = &IRSState{}
		b.attackState = st
	}
	return st
}

func auditBeamWindUp(b *Boss, _ Target) {
	st := irsState(b)
	st.Beams = nil
	st.BeamCount = 1
	if b.currentPhase >= Phase3 {
		st.BeamCount = 2
	}
	switch {
	case b.currentPhase >= Phase4:
		st.BeamSpeed = math.Pi / 2
	case b.currentPhase >= Phase2:
		st.BeamSpeed = math.Pi / 2.5
	default:
		st.BeamSpeed = math.Pi / 3
	}
}

// auditBeamSweep sweeps one beam (two, opposed, from phase 3) clockwise from
// straight up for the whole attack.
func auditBeamSweep(b *Boss, _ Target, dt, t float64) {
	if !firstTick(t, dt) {
		return
	}
	st := irsState(b)
	duration := 3.0
	if b.current != nil {
		duration = b.current.Duration
	}
	start := -math.Pi / 2
	for i := 0; i < st.BeamCount; i++ {
		offset := float64(i) * math.Pi
		beam := b.hazards.SpawnBeamSweep(b, start+offset, start+offset+st.BeamSpeed*duration, 300, 24, 15, duration)
		st.Beams = append(st.Beams, beam)
	}
}

func summonAgents(b *Boss, _ Target, dt, t float64) {
	if !firstTick(t, dt) {
		return
	}
	count := 2
	if b.currentPhase >= Phase2 {
		count = 3
	}
	if b.currentPhase >= Phase4 {
		count = 4
	}
	for i := 0; i < count; i++ {
		p := b.RandomEdgePoint(30)
		b.SpawnMinion("irs_agent", p.X, p.Y)
	}
	if b.currentPhase >= Phase3 {
		c := b.bounds.Center()
		b.SpawnMinion("bureaucrat", c.X+b.Jitter(200), b.bounds.Y+30)
	}
}

func paperStormWindUp(b *Boss, _ Target) {
	st := irsState(b)
	st.PapersPerWave = 12
	if b.currentPhase >= Phase3 {
		st.PapersPerWave = 16
	}
}

// paperStorm fires circular waves, each offset by half a gap from the last.
func paperStorm(b *Boss, _ Target, dt, t float64) {
	interval := 0.5
	if b.currentPhase >= Phase2 {
		interval = 0.4
	}
	if !Every(t, dt, interval) {
		return
	}
	st := irsState(b)
	wave := Bucket(t, interval)
	start := float64(wave%2) * (math.Pi / float64(st.PapersPerWave))
	b.FireCircularBurst(st.PapersPerWave, 200+float64(b.currentPhase)*20, 10, "paper_storm", start)
}

func targetedAudit(b *Boss, p Target, dt, t float64) {
	if Every(t, dt, 0.2) {
		b.FireAtPlayer(p, 350, 12, "audit_beam")
	}
}
