package boss

import (
	"math"

	"github.com/jakecoffman/cp"
)

var senatorBehavior = behavior{
	config:   senatorConfig,
	newState: func(b *Boss) AttackState { return newSenatorState(b) },
	move:     senatorMove,
	update:   senatorUpdate,
	adjustDamage: func(b *Boss, i, amount int) (int, bool) {
		st := senatorState(b)
		switch i {
		case 0:
			return amount, !st.Filibustering(SenatorNavy)
		case 1:
			return amount, !st.Second.Invincible
		}
		return 0, false
	},
	invulnerable: func(b *Boss) bool {
		return senatorState(b).Filibustering(SenatorNavy)
	},
	extraBodies: func(b *Boss) []Body {
		second := senatorState(b).Second
		return []Body{{
			Bounds:       second.Bounds(),
			Invulnerable: second.Invincible || b.state == StateTransitioning,
		}}
	},
}

func senatorConfig() Config {
	return Config{
		Kind:          KindSenatorPair,
		Name:          "Senators Thornwood & Caldwell",
		MaxHealth:     600,
		Speed:         100,
		ContactDamage: 15,
		ScoreValue:    6000,
		Width:         48,
		Height:        48,
		IdleDuration:  1.2,
		Attacks: []Attack{
			{
				Name:     "Coordinated Fire",
				WindUp:   0.6,
				Duration: 2.0,
				Cooldown: 1.5,
				MinPhase: Phase1,
				Tell:     "aim",
				Execute:  coordinatedFire,
			},
			{
				Name:     "Filibuster",
				WindUp:   1.0,
				Duration: 4.0,
				Cooldown: 3.0,
				MinPhase: Phase1,
				Tell:     "stance",
				OnWindUp: filibusterWindUp,
				Execute:  filibuster,
			},
			{
				Name:     "Legislative Barrage",
				WindUp:   0.5,
				Duration: 3.0,
				Cooldown: 2.0,
				MinPhase: Phase2,
				Tell:     "ready",
				Execute:  legislativeBarrage,
			},
			{
				Name:     "Bipartisan Assault",
				WindUp:   0.8,
				Duration: 2.5,
				Cooldown: 2.5,
				MinPhase: Phase3,
				Tell:     "charge",
				Execute:  bipartisanAssault,
			},
		},
	}
}

// newSenatorState places the partner mirrored across the arena's vertical
// center line.
func newSenatorState(b *Boss) *SenatorState {
	r := b.bounds
	return &SenatorState{Second: &Combatant{
		Pos:    cp.Vector{X: 2*r.X + r.Width - b.pos.X, Y: b.pos.Y},
		Width:  b.cfg.Width,
		Height: b.cfg.Height,
	}}
}

func senatorState(b *Boss) *SenatorState {
	st, ok := b.attackState.(*SenatorState)
	if !ok || st.Second == nil {
		st = newSenatorState(b)
		b.attackState = st
	}
	return st
}

// SecondCombatant returns the partner body of a paired boss.
func (b *Boss) SecondCombatant() (*Combatant, bool) {
	st, ok := b.attackState.(*SenatorState)
	if !ok || st.Second == nil {
		return nil, false
	}
	return st.Second, true
}

// senatorMove keeps the pair on opposite halves of the arena, drifting in
// mirrored loops.
func senatorMove(b *Boss, _ Target, dt float64) {
	t := b.clock
	r := b.bounds
	midY := r.Y + r.Height/2

	left := cp.Vector{
		X: r.X + r.Width*0.25 + math.Sin(t*0.8)*80,
		Y: midY + math.Cos(t*0.6)*120,
	}
	b.MoveToward(left, b.cfg.Speed, dt)

	second := senatorState(b).Second
	right := cp.Vector{
		X: r.X + r.Width*0.75 + math.Sin(t*0.8+math.Pi)*80,
		Y: midY + math.Cos(t*0.6+math.Pi)*120,
	}
	second.Pos = stepToward(second.Pos, right, b.cfg.Speed, dt, second.Width, second.Height, r)
}

func senatorUpdate(b *Boss, _ float64) {
	if b.state == StateAttacking {
		return
	}
	st := senatorState(b)
	st.Filibuster = SenatorNone
	st.FilibusterZone = nil
	st.Second.Invincible = false
}

// shooters returns the main body and partner positions.
func shooters(b *Boss) (cp.Vector, cp.Vector) {
	return b.pos, senatorState(b).Second.Pos
}

func coordinatedFire(b *Boss, p Target, dt, t float64) {
	interval := 0.3
	if b.currentPhase >= Phase3 {
		interval = 0.2
	}
	if !Every(t, dt, interval) {
		return
	}
	main, second := shooters(b)
	b.FireSpreadFrom(main, p.Position(), 1, 0, 300, 12, "legislation")
	b.FireSpreadFrom(second, p.Position(), 1, 0, 300, 12, "legislation")
}

func filibusterWindUp(b *Boss, _ Target) {
	st := senatorState(b)
	st.FilibusterZone = nil
	if b.rng.Float64() > 0.5 {
		st.Filibuster = SenatorNavy
		st.Second.Invincible = false
	} else {
		st.Filibuster = SenatorCharcoal
		st.Second.Invincible = true
	}
}

// filibuster shields one senator behind a damage zone while the other fires
// rapidly at the player.
func filibuster(b *Boss, p Target, dt, t float64) {
	st := senatorState(b)
	main, second := shooters(b)
	speaker, attacker := main, second
	if st.Filibuster == SenatorCharcoal {
		speaker, attacker = second, main
	}

	if firstTick(t, dt) {
		st.FilibusterZone = b.hazards.SpawnLingeringZone(speaker.X, speaker.Y, 70, 8, 3.5, 0.5)
	}

	interval := 0.2
	if b.currentPhase >= Phase3 {
		interval = 0.15
	}
	if Every(t, dt, interval) {
		angle := p.Position().Sub(attacker).ToAngle() + b.Jitter(0.3)
		b.FireFrom(attacker, angle, 350, 10, "legislation")
	}
}

// legislativeBarrage alternates shooters on a 0.1s beat with a sine wobble.
func legislativeBarrage(b *Boss, p Target, dt, t float64) {
	if !Every(t, dt, 0.1) {
		return
	}
	shot := Bucket(t, 0.1)
	main, second := shooters(b)
	origin := second
	if shot%2 == 0 {
		origin = main
	}
	base := p.Position().Sub(origin).ToAngle()
	wave := math.Sin(t*8) * 0.4
	b.FireFrom(origin, base+wave, 280, 8, "legislation")
	if b.currentPhase >= Phase3 {
		b.FireFrom(origin, base-wave, 280, 8, "legislation")
	}
}

func bipartisanAssault(b *Boss, p Target, dt, t float64) {
	if !Every(t, dt, 0.4) {
		return
	}
	count := 3
	if b.currentPhase >= Phase4 {
		count = 5
	}
	main, second := shooters(b)
	b.FireSpreadFrom(main, p.Position(), count, 0.5, 250, 10, "legislation")
	b.FireSpreadFrom(second, p.Position(), count, 0.5, 250, 10, "legislation")
}
