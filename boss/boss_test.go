package boss

import (
	"errors"
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/bossarena/common"
	"github.com/milk9111/bossarena/hazard"
)

const tick = 1.0 / 60

type fakePlayer struct {
	pos cp.Vector
}

func (p *fakePlayer) Position() cp.Vector { return p.pos }

func (p *fakePlayer) Bounds() common.Rect { return common.RectAround(p.pos.X, p.pos.Y, 28, 28) }

// recordingSpawner builds real hazards and remembers them.
type recordingSpawner struct {
	beams      []*hazard.BeamSweep
	shockwaves []*hazard.Shockwave
	zones      []*hazard.LingeringZone
	reticles   []*hazard.TargetReticle
	explosions []*hazard.Explosion
	barriers   []*hazard.ReflectiveBarrier
}

func (r *recordingSpawner) SpawnBeamSweep(anchor hazard.Anchor, startAngle, endAngle, length, width float64, damage int, duration float64) *hazard.BeamSweep {
	h := hazard.NewBeamSweep(anchor, startAngle, endAngle, length, width, damage, duration)
	r.beams = append(r.beams, h)
	return h
}

func (r *recordingSpawner) SpawnShockwave(x, y, maxRadius, ringThickness, speed float64, damage int, opts ...hazard.Option) *hazard.Shockwave {
	h := hazard.NewShockwave(x, y, maxRadius, ringThickness, speed, damage, opts...)
	r.shockwaves = append(r.shockwaves, h)
	return h
}

func (r *recordingSpawner) SpawnLingeringZone(x, y, radius float64, damage int, duration, interval float64, opts ...hazard.Option) *hazard.LingeringZone {
	h := hazard.NewLingeringZone(x, y, radius, damage, duration, interval, opts...)
	r.zones = append(r.zones, h)
	return h
}

func (r *recordingSpawner) SpawnTargetReticle(x, y, radius, delay float64, blast hazard.Blast) *hazard.TargetReticle {
	h := hazard.NewTargetReticle(x, y, radius, delay, blast)
	r.reticles = append(r.reticles, h)
	return h
}

func (r *recordingSpawner) SpawnExplosion(x, y, radius float64, damage int, duration float64, opts ...hazard.Option) *hazard.Explosion {
	h := hazard.NewExplosion(x, y, radius, damage, duration, opts...)
	r.explosions = append(r.explosions, h)
	return h
}

func (r *recordingSpawner) SpawnReflectiveBarrier(anchor hazard.Anchor, angle, width, length, offset float64, damage int, duration float64) *hazard.ReflectiveBarrier {
	h := hazard.NewReflectiveBarrier(anchor, angle, width, length, offset, damage, duration)
	r.barriers = append(r.barriers, h)
	return h
}

func noop(*Boss, Target, float64, float64) {}

// testConfig is an IRS-kind boss with quick, inert attacks.
func testConfig(attacks ...Attack) Config {
	return Config{
		Kind:         KindIRSCommissioner,
		Name:         "Test",
		MaxHealth:    500,
		Speed:        80,
		Width:        48,
		Height:       48,
		IdleDuration: 0.1,
		Attacks:      attacks,
	}
}

func quickAttack(name string, minPhase Phase) Attack {
	return Attack{Name: name, Duration: 0.1, Cooldown: 0.1, MinPhase: minPhase, Execute: noop}
}

func mustNew(t *testing.T, cfg Config, opts ...Option) *Boss {
	t.Helper()
	opts = append([]Option{WithRand(NewRand(42))}, opts...)
	b, err := New(cfg, 640, 200, opts...)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return b
}

func TestPhaseFor(t *testing.T) {
	tests := []struct {
		name   string
		health int
		want   Phase
	}{
		{"full", 500, Phase1},
		{"ratio_0.8", 400, Phase1},
		{"just_above_0.75", 376, Phase1},
		{"exactly_0.75", 375, Phase2},
		{"ratio_0.6", 300, Phase2},
		{"exactly_0.5", 250, Phase3},
		{"exactly_0.25", 125, Phase4},
		{"ratio_0.2", 100, Phase4},
		{"dead", 0, Phase4},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := PhaseFor(float64(tc.health) / 500); got != tc.want {
				t.Errorf("PhaseFor(%d/500) = %d, want %d", tc.health, got, tc.want)
			}
		})
	}
}

func TestPhaseJustChangedLatchesForOneTick(t *testing.T) {
	b := mustNew(t, testConfig(quickAttack("a", Phase1)))

	b.TakeDamage(124) // 376 left, still phase 1
	b.Update(tick)
	if b.PhaseJustChanged() {
		t.Fatalf("phase changed above the 0.75 boundary")
	}

	b.TakeDamage(1) // 375
	b.Update(tick)
	if !b.PhaseJustChanged() {
		t.Fatalf("expected phaseJustChanged on the crossing tick")
	}
	if b.Phase() != Phase2 || b.PreviousPhase() != Phase1 {
		t.Fatalf("phase = %d (prev %d), want 2 (prev 1)", b.Phase(), b.PreviousPhase())
	}

	for i := 0; i < 5; i++ {
		b.Update(tick)
		if b.PhaseJustChanged() {
			t.Fatalf("phaseJustChanged still set %d ticks later", i+1)
		}
	}
}

func TestTakeDamageClampsAndDefeatsOnce(t *testing.T) {
	b := mustNew(t, testConfig(quickAttack("a", Phase1)))

	if !b.TakeDamage(600) {
		t.Fatalf("expected defeat")
	}
	if b.Health() != 0 {
		t.Fatalf("health = %d, want 0", b.Health())
	}
	if b.Active() {
		t.Fatalf("defeated boss still active")
	}
	if b.TakeDamage(600) {
		t.Fatalf("defeat reported twice")
	}
	if b.Health() != 0 {
		t.Fatalf("health changed after defeat: %d", b.Health())
	}
}

func TestTakeDamageFlashesRed(t *testing.T) {
	b := mustNew(t, testConfig(quickAttack("a", Phase1)))
	b.TakeDamage(10)
	if kind, left := b.Flash(); kind != FlashHit || left <= 0 {
		t.Fatalf("flash = %v %v, want hit flash", kind, left)
	}
	for i := 0; i < 10; i++ {
		b.Update(tick)
	}
	if kind, _ := b.Flash(); kind != FlashNone {
		t.Fatalf("hit flash did not expire")
	}
}

// attackSequence runs the state machine and records each attack as it starts.
func attackSequence(b *Boss, p Target, seconds float64) []string {
	var seq []string
	inAttack := false
	for elapsed := 0.0; elapsed < seconds; elapsed += tick {
		b.Update(tick)
		b.UpdateAI(tick, p)
		a, ok := b.CurrentAttack()
		if ok && !inAttack {
			seq = append(seq, a.Name)
		}
		inAttack = ok
	}
	return seq
}

func TestSelectionNeverRepeats(t *testing.T) {
	b := mustNew(t, testConfig(quickAttack("a", Phase1), quickAttack("b", Phase1), quickAttack("c", Phase1)))
	p := &fakePlayer{pos: cp.Vector{X: 640, Y: 500}}

	seq := attackSequence(b, p, 30)
	if len(seq) < 20 {
		t.Fatalf("only %d attacks in 30s", len(seq))
	}
	seen := map[string]bool{}
	for i, name := range seq {
		seen[name] = true
		if i > 0 && seq[i-1] == name {
			t.Fatalf("attack %q repeated at %d: %v", name, i, seq)
		}
	}
	if len(seen) != 3 {
		t.Errorf("expected all three attacks to be used, saw %v", seen)
	}
}

func TestSelectionRespectsMinPhase(t *testing.T) {
	tests := []struct {
		name   string
		health int
		want   map[string]bool
	}{
		{"phase_1_repeats_only_choice", 500, map[string]bool{"early": true}},
		{"phase_2_alternates", 300, map[string]bool{"early": true, "late": true}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b := mustNew(t, testConfig(quickAttack("early", Phase1), quickAttack("late", Phase2)))
			b.health = tc.health
			b.currentPhase = PhaseFor(b.HealthPercent())
			b.previousPhase = b.currentPhase
			seq := attackSequence(b, &fakePlayer{}, 5)
			if len(seq) == 0 {
				t.Fatalf("no attacks")
			}
			for _, name := range seq {
				if !tc.want[name] {
					t.Fatalf("unexpected attack %q in %v", name, seq)
				}
			}
		})
	}
}

func TestNoEligibleAttackStaysIdle(t *testing.T) {
	b := mustNew(t, testConfig(quickAttack("finale", Phase4)))
	p := &fakePlayer{}
	for i := 0; i < 300; i++ {
		b.Update(tick)
		b.UpdateAI(tick, p)
		if b.State() != StateIdle {
			t.Fatalf("state = %s, want idle", b.State())
		}
	}
}

func TestStateMachineCycle(t *testing.T) {
	atk := Attack{Name: "a", Duration: 0.5, Cooldown: 0.5, MinPhase: Phase1, Execute: noop}
	b := mustNew(t, testConfig(atk))
	p := &fakePlayer{}

	step := func(n int) {
		for i := 0; i < n; i++ {
			b.Update(tick)
			b.UpdateAI(tick, p)
		}
	}

	step(3)
	if b.State() != StateIdle {
		t.Fatalf("state = %s, want idle", b.State())
	}
	step(4) // idle is 0.1s
	if b.State() != StateAttacking {
		t.Fatalf("state = %s, want attacking", b.State())
	}
	step(31)
	if b.State() != StateRecovering {
		t.Fatalf("state = %s, want recovering", b.State())
	}
	step(31)
	if b.State() != StateIdle {
		t.Fatalf("state = %s, want idle", b.State())
	}
	if _, ok := b.CurrentAttack(); ok {
		t.Fatalf("current attack not cleared after recovery")
	}
}

func TestPhaseChangeInterruptsAttack(t *testing.T) {
	atk := Attack{Name: "long", Duration: 5, Cooldown: 1, MinPhase: Phase1, Execute: noop}
	cfg := testConfig(atk, quickAttack("other", Phase1))
	cfg.IdleDuration = 1
	cfg.IdleByPhase = map[Phase]float64{Phase2: 0.6}
	b := mustNew(t, cfg)
	p := &fakePlayer{}

	for b.State() != StateAttacking {
		b.Update(tick)
		b.UpdateAI(tick, p)
	}

	b.TakeDamage(200)
	b.Update(tick)
	b.UpdateAI(tick, p)

	if b.State() != StateTransitioning {
		t.Fatalf("state = %s, want transitioning", b.State())
	}
	if !b.IsInvulnerable() {
		t.Fatalf("transitioning boss should be invulnerable")
	}
	if _, ok := b.CurrentAttack(); ok {
		t.Fatalf("attack survived the phase change")
	}
	if kind, _ := b.Flash(); kind != FlashPhase {
		t.Fatalf("flash = %v, want phase flash", kind)
	}
	if b.IdleDuration() != 0.6 {
		t.Fatalf("idle = %v, want 0.6", b.IdleDuration())
	}

	for i := 0; i < 30; i++ {
		b.Update(tick)
		b.UpdateAI(tick, p)
	}
	if b.State() != StateIdle {
		t.Fatalf("state = %s after transition, want idle", b.State())
	}
	if b.stateTimer > 0.3+1e-9 {
		t.Fatalf("re-arm timer = %v, want at most half the idle", b.stateTimer)
	}
}

func TestRequestBuffersClearEachTick(t *testing.T) {
	shoot := Attack{
		Name:     "shoot",
		Duration: 10,
		MinPhase: Phase1,
		Execute: func(b *Boss, p Target, dt, t float64) {
			b.FireAtPlayer(p, 100, 1, "test")
			b.SpawnMinion("intern", 1, 2)
		},
	}
	b := mustNew(t, testConfig(shoot))
	p := &fakePlayer{pos: cp.Vector{X: 640, Y: 600}}
	for b.State() != StateAttacking {
		b.Update(tick)
		b.UpdateAI(tick, p)
	}

	b.UpdateAI(tick, p)
	b.UpdateAI(tick, p)
	if n := len(b.ProjectileRequests()); n != 1 {
		t.Fatalf("projectile requests = %d, want 1", n)
	}
	reqs := b.DrainProjectileRequests()
	if len(reqs) != 1 || reqs[0].Kind != "test" {
		t.Fatalf("drained %+v", reqs)
	}
	if len(b.ProjectileRequests()) != 0 {
		t.Fatalf("drain left requests behind")
	}
	if m := b.DrainMinionRequests(); len(m) != 1 || m[0].Kind != "intern" {
		t.Fatalf("minion requests = %+v", m)
	}

	b.TakeDamage(1000)
	b.UpdateAI(tick, p)
	if len(b.ProjectileRequests()) != 0 || len(b.MinionRequests()) != 0 {
		t.Fatalf("defeated boss produced requests")
	}
}

func TestEveryBucketsVariableFrames(t *testing.T) {
	frames := []float64{0.016, 0.033, 0.007, 0.05, 0.1, 0.02}
	fired := 0
	elapsed := 0.0
	for i := 0; elapsed < 2; i++ {
		dt := frames[i%len(frames)]
		elapsed += dt
		if elapsed > 2 {
			break
		}
		if Every(elapsed, dt, 0.2) {
			fired++
		}
	}
	if fired != 10 && fired != 9 {
		t.Fatalf("fired %d times in 2s at 0.2s interval", fired)
	}
}

func TestMoveTowardDeadZoneAndClamp(t *testing.T) {
	b := mustNew(t, testConfig(quickAttack("a", Phase1)))

	b.SetPosition(cp.Vector{X: 100, Y: 100})
	b.MoveToward(cp.Vector{X: 103, Y: 100}, 100, 1)
	if got := b.Position(); got != (cp.Vector{X: 100, Y: 100}) {
		t.Fatalf("moved inside dead zone: %v", got)
	}

	b.MoveToward(cp.Vector{X: -500, Y: 100}, 1000, 1)
	if got := b.Position(); got.X != 24 {
		t.Fatalf("x = %v, want clamped to 24", got.X)
	}
}

func TestNewRejectsBadConfig(t *testing.T) {
	cfg := testConfig(quickAttack("a", Phase1))
	cfg.Kind = "mayor"
	if _, err := New(cfg, 0, 0); !errors.Is(err, ErrUnknownKind) {
		t.Fatalf("err = %v, want ErrUnknownKind", err)
	}
	if _, err := New(testConfig(), 0, 0); !errors.Is(err, ErrNoAttacks) {
		t.Fatalf("err = %v, want ErrNoAttacks", err)
	}
}

func TestConfigTune(t *testing.T) {
	cfg, err := DefaultConfig(KindIRSCommissioner)
	if err != nil {
		t.Fatalf("DefaultConfig: %v", err)
	}
	dur := 4.0
	p3 := Phase3
	tuned, err := cfg.Tune(map[string]AttackTuning{
		"Paper Storm":    {Duration: &dur, MinPhase: &p3},
		"Targeted Audit": {Disabled: true},
	})
	if err != nil {
		t.Fatalf("Tune: %v", err)
	}
	if len(tuned.Attacks) != len(cfg.Attacks)-1 {
		t.Fatalf("attacks = %d, want %d", len(tuned.Attacks), len(cfg.Attacks)-1)
	}
	for _, a := range tuned.Attacks {
		if a.Name == "Paper Storm" && (a.Duration != 4 || a.MinPhase != Phase3) {
			t.Errorf("Paper Storm not tuned: %+v", a)
		}
	}
	if _, err := cfg.Tune(map[string]AttackTuning{"Nope": {}}); !errors.Is(err, ErrUnknownAttack) {
		t.Fatalf("err = %v, want ErrUnknownAttack", err)
	}
}

func TestIdleForPhase(t *testing.T) {
	cfg, _ := DefaultConfig(KindPresident)
	want := map[Phase]float64{Phase1: 1.0, Phase2: 1.0, Phase3: 0.8, Phase4: 0.5}
	for p, w := range want {
		if got := cfg.IdleFor(p); got != w {
			t.Errorf("IdleFor(%d) = %v, want %v", p, got, w)
		}
	}
}

func TestKindsAreSortedAndBuildable(t *testing.T) {
	kinds := Kinds()
	if len(kinds) != 5 {
		t.Fatalf("kinds = %v", kinds)
	}
	for i, k := range kinds {
		if i > 0 && kinds[i-1] >= k {
			t.Fatalf("kinds not sorted: %v", kinds)
		}
		cfg, err := DefaultConfig(k)
		if err != nil {
			t.Fatalf("DefaultConfig(%s): %v", k, err)
		}
		b := mustNew(t, cfg)
		if b.AttackState() == nil || b.AttackState().Kind() != k {
			t.Fatalf("%s: attack state %T", k, b.AttackState())
		}
	}
}

func TestTelegraphCoversWindUp(t *testing.T) {
	a := quickAttack("glow", Phase1)
	a.WindUp, a.Duration, a.Tell = 0.2, 0.5, "glow"
	b := mustNew(t, testConfig(a))
	p := &fakePlayer{pos: cp.Vector{X: 640, Y: 600}}

	for i := 0; i < 60 && b.State() != StateAttacking; i++ {
		b.Update(tick)
		b.UpdateAI(tick, p)
	}
	if tell, ok := b.Telegraph(); !ok || tell != "glow" {
		t.Fatalf("Telegraph() = %q %v at attack start", tell, ok)
	}
	for i := 0; i < 18; i++ {
		b.Update(tick)
		b.UpdateAI(tick, p)
	}
	if _, ok := b.Telegraph(); ok {
		t.Errorf("telegraph still showing after the wind-up")
	}
}
