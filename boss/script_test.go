package boss

import (
	"strings"
	"testing"

	"github.com/jakecoffman/cp"
)

const countingScript = `
execute := func(engine, state, t, dt, phase) {
	if is_undefined(state.count) {
		state.count = 0
	}
	state.count += 1
	engine.burst(state.count, 100, 5, "scripted", 0)
	if engine.every(0.5) {
		engine.summon("intern", 10, 20)
	}
	if phase >= 2 {
		engine.shockwave(engine.boss_x, engine.boss_y, 100, 20, 200, 7)
	}
}
`

func scriptedBoss(t *testing.T, src string) (*Boss, *recordingSpawner, Attack) {
	t.Helper()
	s, err := CompileScript("counting", []byte(src))
	if err != nil {
		t.Fatalf("CompileScript: %v", err)
	}
	atk := ScriptedAttack(s, "Counting", 0.5, 1, 1, Phase1)
	spawner := &recordingSpawner{}
	b := mustNew(t, testConfig(atk), WithHazards(spawner))
	return b, spawner, atk
}

func TestScriptedAttackStatePersistsUntilWindUp(t *testing.T) {
	b, _, atk := scriptedBoss(t, countingScript)
	p := &fakePlayer{pos: cp.Vector{X: 100, Y: 100}}

	atk.OnWindUp(b, p)
	for i, want := range []int{1, 2, 3} {
		b.projectileRequests = nil
		atk.Execute(b, p, tick, float64(i+1)*tick)
		if got := len(b.ProjectileRequests()); got != want {
			t.Fatalf("tick %d: shots = %d, want %d", i, got, want)
		}
	}

	atk.OnWindUp(b, p)
	b.projectileRequests = nil
	atk.Execute(b, p, tick, tick)
	if got := len(b.ProjectileRequests()); got != 1 {
		t.Fatalf("state not reset at wind-up, shots = %d", got)
	}
}

func TestScriptedAttackEngineCalls(t *testing.T) {
	b, spawner, atk := scriptedBoss(t, countingScript)
	p := &fakePlayer{pos: cp.Vector{X: 100, Y: 100}}
	b.currentPhase = Phase2

	atk.OnWindUp(b, p)
	atk.Execute(b, p, 0.1, 0.5)

	minions := b.MinionRequests()
	if len(minions) != 1 || minions[0].Kind != "intern" || minions[0].X != 10 || minions[0].Y != 20 {
		t.Fatalf("minions = %+v", minions)
	}
	if len(spawner.shockwaves) != 1 || spawner.shockwaves[0].Damage != 7 {
		t.Fatalf("shockwaves = %+v", spawner.shockwaves)
	}
	if got := b.ProjectileRequests()[0].Kind; got != "scripted" {
		t.Fatalf("projectile kind = %q", got)
	}
}

func TestScriptedAttackDrivenByStateMachine(t *testing.T) {
	b, _, _ := scriptedBoss(t, countingScript)
	p := &fakePlayer{}
	shots := 0
	for i := 0; i < 120; i++ {
		b.Update(tick)
		b.UpdateAI(tick, p)
		shots += len(b.DrainProjectileRequests())
	}
	if shots == 0 {
		t.Fatalf("scripted attack never fired")
	}
}

func TestCompileScriptErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"missing_execute", `x := 1`},
		{"syntax", `execute := func(engine, state, t, dt, phase) {`},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := CompileScript(tc.name, []byte(tc.src))
			if err == nil {
				t.Fatalf("expected compile error")
			}
			if !strings.Contains(err.Error(), tc.name) {
				t.Errorf("error %q does not name the script", err)
			}
		})
	}
}

func TestScriptRuntimeErrorSkipsTick(t *testing.T) {
	src := `
execute := func(engine, state, t, dt, phase) {
	engine.burst(4, 100, 5, "scripted", 0)
	engine.boss_x()
}
`
	b, _, atk := scriptedBoss(t, src)
	p := &fakePlayer{}
	atk.OnWindUp(b, p)
	atk.Execute(b, p, tick, tick)
	atk.Execute(b, p, tick, 2*tick)
	// The failing line comes after the burst, so earlier effects stand.
	if got := len(b.ProjectileRequests()); got != 8 {
		t.Fatalf("shots = %d, want 8", got)
	}
}
