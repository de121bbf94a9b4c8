package boss

import (
	"math"
	"testing"

	"github.com/jakecoffman/cp"
)

func newKind(t *testing.T, kind Kind, phase Phase) (*Boss, *recordingSpawner) {
	t.Helper()
	cfg, err := DefaultConfig(kind)
	if err != nil {
		t.Fatalf("DefaultConfig(%s): %v", kind, err)
	}
	spawner := &recordingSpawner{}
	b := mustNew(t, cfg, WithHazards(spawner))
	b.currentPhase = phase
	b.previousPhase = phase
	return b, spawner
}

func findAttack(t *testing.T, b *Boss, name string) *Attack {
	t.Helper()
	for i := range b.cfg.Attacks {
		if b.cfg.Attacks[i].Name == name {
			return &b.cfg.Attacks[i]
		}
	}
	t.Fatalf("%s has no attack %q", b.Kind(), name)
	return nil
}

// runAttack winds an attack up and executes it for its whole duration,
// collecting every request along the way.
func runAttack(t *testing.T, b *Boss, name string, p Target) ([]ProjectileRequest, []MinionRequest) {
	t.Helper()
	a := findAttack(t, b, name)
	b.current = a
	b.state = StateAttacking
	if a.OnWindUp != nil {
		a.OnWindUp(b, p)
	}
	var shots []ProjectileRequest
	var minions []MinionRequest
	for at := tick; at <= a.Duration+1e-9; at += tick {
		b.projectileRequests = nil
		b.minionRequests = nil
		a.Execute(b, p, tick, at)
		shots = append(shots, b.DrainProjectileRequests()...)
		minions = append(minions, b.DrainMinionRequests()...)
	}
	return shots, minions
}

func TestEveryAttackRunsInEveryPhase(t *testing.T) {
	p := &fakePlayer{pos: cp.Vector{X: 640, Y: 600}}
	for _, kind := range Kinds() {
		for phase := Phase1; phase <= Phase4; phase++ {
			b, _ := newKind(t, kind, phase)
			for _, a := range b.cfg.Attacks {
				if a.MinPhase > phase {
					continue
				}
				runAttack(t, b, a.Name, p)
			}
		}
	}
}

func TestIRSAuditBeamSweep(t *testing.T) {
	tests := []struct {
		name      string
		phase     Phase
		wantBeams int
		wantSpeed float64
	}{
		{"phase_1_single", Phase1, 1, math.Pi / 3},
		{"phase_2_faster", Phase2, 1, math.Pi / 2.5},
		{"phase_3_twin", Phase3, 2, math.Pi / 2.5},
		{"phase_4_fastest", Phase4, 2, math.Pi / 2},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b, spawner := newKind(t, KindIRSCommissioner, tc.phase)
			runAttack(t, b, "Audit Beam Sweep", &fakePlayer{})
			if len(spawner.beams) != tc.wantBeams {
				t.Fatalf("beams = %d, want %d", len(spawner.beams), tc.wantBeams)
			}
			beam := spawner.beams[0]
			if beam.StartAngle != -math.Pi/2 {
				t.Errorf("start = %v, want straight up", beam.StartAngle)
			}
			if got := beam.EndAngle - beam.StartAngle; math.Abs(got-tc.wantSpeed*3) > 1e-9 {
				t.Errorf("sweep = %v, want %v", got, tc.wantSpeed*3)
			}
			if beam.Length != 300 || beam.Damage != 15 {
				t.Errorf("beam = %+v", beam)
			}
			if tc.wantBeams == 2 && math.Abs(spawner.beams[1].StartAngle-math.Pi/2) > 1e-9 {
				t.Errorf("second beam start = %v, want opposite", spawner.beams[1].StartAngle)
			}
		})
	}
}

func TestIRSPaperStormWaves(t *testing.T) {
	b, _ := newKind(t, KindIRSCommissioner, Phase1)
	shots, _ := runAttack(t, b, "Paper Storm", &fakePlayer{})
	// Waves at 0.5, 1.0, 1.5 and 2.0 seconds of 12 papers each.
	if len(shots) != 48 {
		t.Fatalf("papers = %d, want 48", len(shots))
	}
	if shots[0].Speed != 220 || shots[0].Kind != "paper_storm" {
		t.Fatalf("paper = %+v", shots[0])
	}
	// Odd waves are rotated by half a gap.
	if math.Abs(shots[0].Angle-math.Pi/12) > 1e-9 || math.Abs(shots[12].Angle) > 1e-9 {
		t.Fatalf("wave offsets = %v, %v", shots[0].Angle, shots[12].Angle)
	}
}

func TestIRSSummonAgents(t *testing.T) {
	tests := []struct {
		phase      Phase
		agents     int
		bureaucrat bool
	}{
		{Phase1, 2, false},
		{Phase2, 3, false},
		{Phase3, 3, true},
		{Phase4, 4, true},
	}

	for _, tc := range tests {
		b, _ := newKind(t, KindIRSCommissioner, tc.phase)
		_, minions := runAttack(t, b, "Summon Agents", &fakePlayer{})
		agents, bureaucrats := 0, 0
		for _, m := range minions {
			switch m.Kind {
			case "irs_agent":
				agents++
				if m.X < 0 || m.X > 1280 || m.Y < 0 || m.Y > 720 {
					t.Errorf("agent outside the arena: %+v", m)
				}
			case "bureaucrat":
				bureaucrats++
			}
		}
		if agents != tc.agents || (bureaucrats == 1) != tc.bureaucrat {
			t.Errorf("phase %d: agents=%d bureaucrats=%d", tc.phase, agents, bureaucrats)
		}
	}
}

func TestSenatorSecondCombatant(t *testing.T) {
	cfg, _ := DefaultConfig(KindSenatorPair)
	b, err := New(cfg, 320, 200, WithRand(NewRand(1)))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	second, ok := b.SecondCombatant()
	if !ok {
		t.Fatalf("senator pair has no second combatant")
	}
	if second.Pos.X != 960 || second.Pos.Y != 200 {
		t.Fatalf("second at %v, want mirrored", second.Pos)
	}
	if len(b.Bodies()) != 2 {
		t.Fatalf("bodies = %d, want 2", len(b.Bodies()))
	}

	irs, _ := newKind(t, KindIRSCommissioner, Phase1)
	if _, ok := irs.SecondCombatant(); ok {
		t.Fatalf("IRS should not have a second combatant")
	}
}

func TestSenatorFilibusterShieldsOneBody(t *testing.T) {
	p := &fakePlayer{pos: cp.Vector{X: 640, Y: 600}}
	for _, who := range []Senator{SenatorNavy, SenatorCharcoal} {
		b, spawner := newKind(t, KindSenatorPair, Phase1)
		a := findAttack(t, b, "Filibuster")
		b.current = a
		b.state = StateAttacking
		a.OnWindUp(b, p)
		st := b.AttackState().(*SenatorState)
		// Force the side under test.
		st.Filibuster = who
		st.Second.Invincible = who == SenatorCharcoal
		a.Execute(b, p, tick, tick)

		if len(spawner.zones) != 1 {
			t.Fatalf("zones = %d, want 1", len(spawner.zones))
		}
		bodies := b.Bodies()
		if bodies[0].Invulnerable != (who == SenatorNavy) || bodies[1].Invulnerable != (who == SenatorCharcoal) {
			t.Fatalf("%d: bodies = %+v", who, bodies)
		}

		before := b.Health()
		blocked := 0
		if who == SenatorCharcoal {
			blocked = 1
		}
		b.TakeDamageOn(blocked, 50)
		if b.Health() != before {
			t.Fatalf("filibustering senator took damage")
		}
		b.TakeDamageOn(1-blocked, 50)
		if b.Health() != before-50 {
			t.Fatalf("exposed senator took no damage")
		}

		b.state = StateRecovering
		b.Update(tick)
		if st.Filibuster != SenatorNone || st.Second.Invincible {
			t.Fatalf("filibuster not cleared outside the attack")
		}
	}
}

func TestSenatorBarrageAlternatesShooters(t *testing.T) {
	b, _ := newKind(t, KindSenatorPair, Phase2)
	second, _ := b.SecondCombatant()
	second.Pos = cp.Vector{X: 960, Y: 360}
	shots, _ := runAttack(t, b, "Legislative Barrage", &fakePlayer{pos: cp.Vector{X: 640, Y: 600}})
	if len(shots) != 30 {
		t.Fatalf("shots = %d, want 30", len(shots))
	}
	if shots[0].X != 960 || shots[1].X != 640 {
		t.Fatalf("consecutive shots from the same senator: %+v %+v", shots[0], shots[1])
	}
}

func TestSpeakerGavelSlamTargetsWindUpPosition(t *testing.T) {
	b, spawner := newKind(t, KindSpeaker, Phase1)
	p := &fakePlayer{pos: cp.Vector{X: 300, Y: 500}}
	a := findAttack(t, b, "Gavel Slam")
	b.current = a
	a.OnWindUp(b, p)
	p.pos = cp.Vector{X: 900, Y: 100}

	for at := tick; at <= a.Duration; at += tick {
		a.Execute(b, p, tick, at)
		if at < 0.3-1e-9 && len(spawner.shockwaves) > 0 {
			t.Fatalf("slam before 0.3s at %v", at)
		}
	}
	if len(spawner.shockwaves) != 1 {
		t.Fatalf("shockwaves = %d, want 1", len(spawner.shockwaves))
	}
	s := spawner.shockwaves[0]
	if s.Pos != (cp.Vector{X: 300, Y: 500}) || s.MaxRadius != 250 || s.RingThickness != 30 {
		t.Fatalf("shockwave = %+v", s)
	}
}

func TestSpeakerPodiumShieldReducesDamage(t *testing.T) {
	b, _ := newKind(t, KindSpeaker, Phase1)
	p := &fakePlayer{pos: cp.Vector{X: 640, Y: 600}}
	a := findAttack(t, b, "Podium Shield")
	b.current = a
	b.state = StateAttacking
	a.OnWindUp(b, p)

	b.TakeDamage(100)
	if b.Health() != 700-25 {
		t.Fatalf("health = %d, want 675", b.Health())
	}
	b.TakeDamage(3)
	if b.Health() != 675 {
		t.Fatalf("floored shield damage should be 0, health = %d", b.Health())
	}

	b.state = StateRecovering
	b.Update(tick)
	b.TakeDamage(100)
	if b.Health() != 575 {
		t.Fatalf("shield still up after the attack, health = %d", b.Health())
	}
}

func TestSpeakerCallVoteCounts(t *testing.T) {
	want := map[Phase][2]int{Phase1: {3, 1}, Phase2: {4, 2}, Phase3: {5, 2}, Phase4: {6, 3}}
	for phase, counts := range want {
		b, _ := newKind(t, KindSpeaker, phase)
		_, minions := runAttack(t, b, "Call Vote", &fakePlayer{})
		got := [2]int{}
		for _, m := range minions {
			switch m.Kind {
			case "intern":
				got[0]++
			case "bureaucrat":
				got[1]++
			}
		}
		if got != counts {
			t.Errorf("phase %d: got %v, want %v", phase, got, counts)
		}
	}
}

func TestVicePresidentTieBreakerTracksFromPhase2(t *testing.T) {
	tests := []struct {
		phase Phase
		moves bool
	}{
		{Phase1, false},
		{Phase2, true},
	}

	for _, tc := range tests {
		b, spawner := newKind(t, KindVicePresident, tc.phase)
		p := &fakePlayer{pos: cp.Vector{X: 640, Y: 600}}
		a := findAttack(t, b, "Tie-Breaker Beam")
		b.current = a
		a.OnWindUp(b, p)
		start := b.AttackState().(*VicePresidentState).BeamAngle

		p.pos = cp.Vector{X: 1200, Y: 200}
		for at := tick; at <= a.Duration; at += tick {
			a.Execute(b, p, tick, at)
		}
		if len(spawner.beams) != 1 {
			t.Fatalf("beams = %d", len(spawner.beams))
		}
		end := b.AttackState().(*VicePresidentState).BeamAngle
		if moved := end != start; moved != tc.moves {
			t.Errorf("phase %d: beam moved = %v, want %v", tc.phase, moved, tc.moves)
		}
		if spawner.beams[0].StartAngle != end {
			t.Errorf("beam not locked to the tracked angle")
		}
	}
}

func TestVicePresidentSummonRingsPlayer(t *testing.T) {
	b, _ := newKind(t, KindVicePresident, Phase2)
	p := &fakePlayer{pos: cp.Vector{X: 640, Y: 360}}
	_, minions := runAttack(t, b, "Secret Service Summon", p)
	if len(minions) != 3 {
		t.Fatalf("minions = %d, want 3", len(minions))
	}
	for _, m := range minions {
		d := cp.Vector{X: m.X, Y: m.Y}.Distance(p.pos)
		if math.Abs(d-200) > 1e-6 || m.Kind != "secret_service" {
			t.Errorf("minion %+v at distance %v", m, d)
		}
	}
}

func TestPresidentExecutiveOrderZones(t *testing.T) {
	b, spawner := newKind(t, KindPresident, Phase3)
	runAttack(t, b, "Executive Order", &fakePlayer{})
	if len(spawner.zones) != 4 {
		t.Fatalf("zones = %d, want 4", len(spawner.zones))
	}
	z := spawner.zones[0]
	if z.WarningDuration != 0.8 || z.Radius != 75 || z.Damage != 20 {
		t.Fatalf("zone = %+v", z)
	}
	if math.Abs(z.Duration-3.0) > 1e-9 {
		t.Fatalf("zone lives %v, want the attack's 3s", z.Duration)
	}
}

func TestPresidentVetoBarrier(t *testing.T) {
	b, spawner := newKind(t, KindPresident, Phase1)
	p := &fakePlayer{pos: cp.Vector{X: 640, Y: 600}}
	shots, _ := runAttack(t, b, "Veto", p)
	if len(spawner.barriers) != 1 {
		t.Fatalf("barriers = %d, want 1", len(spawner.barriers))
	}
	if len(shots) != 9 {
		t.Fatalf("shots = %d, want 9", len(shots))
	}
	if spawner.barriers[0].Angle != b.AttackState().(*PresidentState).VetoAngle {
		t.Fatalf("barrier angle not following the veto angle")
	}

	b.state = StateRecovering
	b.Update(tick)
	if spawner.barriers[0].Active() {
		t.Fatalf("barrier outlived the veto")
	}
}

func TestPresidentAirStrikeReticles(t *testing.T) {
	tests := []struct {
		phase Phase
		count int
		delay float64
	}{
		{Phase2, 4, 1.2},
		{Phase3, 6, 1.2},
		{Phase4, 8, 0.8},
	}

	for _, tc := range tests {
		b, spawner := newKind(t, KindPresident, tc.phase)
		runAttack(t, b, "Air Strike", &fakePlayer{pos: cp.Vector{X: 640, Y: 360}})
		if len(spawner.reticles) != tc.count {
			t.Fatalf("phase %d: reticles = %d, want %d", tc.phase, len(spawner.reticles), tc.count)
		}
		for i, r := range spawner.reticles {
			if want := tc.delay + float64(i)*0.2; math.Abs(r.Delay-want) > 1e-9 {
				t.Errorf("reticle %d delay = %v, want %v", i, r.Delay, want)
			}
		}
	}
}

func TestPresidentPressConferenceDrones(t *testing.T) {
	b, _ := newKind(t, KindPresident, Phase4)
	_, minions := runAttack(t, b, "Press Conference", &fakePlayer{})
	if len(minions) != 4 {
		t.Fatalf("drones = %d, want 4", len(minions))
	}
	for _, m := range minions {
		if m.Kind != "camera_drone" {
			t.Errorf("minion kind = %q", m.Kind)
		}
	}
}

func TestPresidentFinalAuthority(t *testing.T) {
	b, spawner := newKind(t, KindPresident, Phase4)
	shots, minions := runAttack(t, b, "Final Authority", &fakePlayer{pos: cp.Vector{X: 640, Y: 600}})
	if len(spawner.beams) != 2 {
		t.Fatalf("beams = %d, want 2", len(spawner.beams))
	}
	if len(shots) != 20 {
		t.Errorf("shots = %d, want 20", len(shots))
	}
	if len(minions) != 2 {
		t.Errorf("minions = %d, want 2", len(minions))
	}
}
