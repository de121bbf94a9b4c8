package boss

import (
	"fmt"
	"log"
	"strings"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/jakecoffman/cp"

	"github.com/milk9111/bossarena/common"
	"github.com/milk9111/bossarena/hazard"
)

// Scripts define `execute := func(engine, state, t, dt, phase) { ... }`.
// state is a map private to one boss that is emptied at every wind-up.
const attackDispatchScript = `
if __run {
	execute(__engine, __state, __t, __dt, __phase)
}
`

// Script is a compiled attack body shared by every boss using it.
type Script struct {
	name     string
	compiled *tengo.Compiled
	states   map[uint64]*tengo.Map
	lastErr  string
}

// CompileScript compiles src once. name is only used in log lines.
func CompileScript(name string, src []byte) (*Script, error) {
	full := string(src) + "\n" + attackDispatchScript
	script := tengo.NewScript([]byte(full))
	_ = script.Add("__run", false)
	_ = script.Add("__engine", map[string]any{})
	_ = script.Add("__state", map[string]any{})
	_ = script.Add("__t", 0.0)
	_ = script.Add("__dt", 0.0)
	_ = script.Add("__phase", 1)

	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("boss: compile script %s: %w", name, err)
	}
	return &Script{
		name:     name,
		compiled: compiled,
		states:   map[uint64]*tengo.Map{},
	}, nil
}

func (s *Script) Name() string { return s.name }

// ScriptedAttack wraps s in an attack definition.
func ScriptedAttack(s *Script, name string, windUp, duration, cooldown float64, minPhase Phase) Attack {
	return Attack{
		Name:     name,
		WindUp:   windUp,
		Duration: duration,
		Cooldown: cooldown,
		MinPhase: minPhase,
		Tell:     "scripted",
		OnWindUp: func(b *Boss, _ Target) { s.reset(b) },
		Execute:  s.execute,
	}
}

func (s *Script) reset(b *Boss) {
	s.states[b.id] = &tengo.Map{Value: map[string]tengo.Object{}}
}

func (s *Script) state(b *Boss) *tengo.Map {
	st, ok := s.states[b.id]
	if !ok {
		st = &tengo.Map{Value: map[string]tengo.Object{}}
		s.states[b.id] = st
	}
	return st
}

// execute runs one tick of the script. Errors are logged and the tick is
// skipped.
func (s *Script) execute(b *Boss, p Target, dt, t float64) {
	if err := s.run(b, p, dt, t); err != nil {
		if msg := err.Error(); msg != s.lastErr {
			s.lastErr = msg
			log.Printf("boss: script %s: %v", s.name, err)
		}
	}
}

func (s *Script) run(b *Boss, p Target, dt, t float64) error {
	if s == nil || s.compiled == nil {
		return fmt.Errorf("nil script")
	}
	if err := s.compiled.Set("__run", true); err != nil {
		return err
	}
	if err := s.compiled.Set("__engine", buildAttackEngine(b, p, dt, t)); err != nil {
		return err
	}
	if err := s.compiled.Set("__state", s.state(b)); err != nil {
		return err
	}
	if err := s.compiled.Set("__t", t); err != nil {
		return err
	}
	if err := s.compiled.Set("__dt", dt); err != nil {
		return err
	}
	if err := s.compiled.Set("__phase", int(b.currentPhase)); err != nil {
		return err
	}
	return s.compiled.Run()
}

func buildAttackEngine(b *Boss, p Target, dt, t float64) *tengo.ImmutableMap {
	pos := b.pos
	target := pos
	if p != nil {
		target = p.Position()
	}

	values := map[string]tengo.Object{
		"boss_x":   &tengo.Float{Value: pos.X},
		"boss_y":   &tengo.Float{Value: pos.Y},
		"player_x": &tengo.Float{Value: target.X},
		"player_y": &tengo.Float{Value: target.Y},
		"arena_w":  &tengo.Float{Value: b.bounds.Width},
		"arena_h":  &tengo.Float{Value: b.bounds.Height},
	}

	values["fire"] = &tengo.UserFunction{Name: "fire", Value: func(args ...tengo.Object) (tengo.Object, error) {
		if len(args) < 4 {
			return nil, tengo.ErrWrongNumArguments
		}
		x, y, angle, speed := floatArg(args, 0, pos.X), floatArg(args, 1, pos.Y), floatArg(args, 2, 0), floatArg(args, 3, 0)
		b.FireFrom(cp.Vector{X: x, Y: y}, angle, speed, intArg(args, 4, 10), stringArg(args, 5, "scripted"))
		return tengo.TrueValue, nil
	}}

	values["fire_at_player"] = &tengo.UserFunction{Name: "fire_at_player", Value: func(args ...tengo.Object) (tengo.Object, error) {
		if p == nil || len(args) < 1 {
			return tengo.FalseValue, nil
		}
		b.FireAtPlayer(p, floatArg(args, 0, 300), intArg(args, 1, 10), stringArg(args, 2, "scripted"))
		return tengo.TrueValue, nil
	}}

	values["spread"] = &tengo.UserFunction{Name: "spread", Value: func(args ...tengo.Object) (tengo.Object, error) {
		if p == nil || len(args) < 3 {
			return tengo.FalseValue, nil
		}
		b.FireSpreadAtPlayer(p, intArg(args, 0, 3), floatArg(args, 1, 0.5), floatArg(args, 2, 300),
			intArg(args, 3, 10), stringArg(args, 4, "scripted"))
		return tengo.TrueValue, nil
	}}

	values["burst"] = &tengo.UserFunction{Name: "burst", Value: func(args ...tengo.Object) (tengo.Object, error) {
		if len(args) < 2 {
			return nil, tengo.ErrWrongNumArguments
		}
		b.FireCircularBurst(intArg(args, 0, 12), floatArg(args, 1, 200), intArg(args, 2, 10),
			stringArg(args, 3, "scripted"), floatArg(args, 4, 0))
		return tengo.TrueValue, nil
	}}

	values["summon"] = &tengo.UserFunction{Name: "summon", Value: func(args ...tengo.Object) (tengo.Object, error) {
		kind := strings.TrimSpace(stringArg(args, 0, ""))
		if kind == "" {
			return tengo.FalseValue, nil
		}
		at := b.RandomEdgePoint(30)
		b.SpawnMinion(kind, floatArg(args, 1, at.X), floatArg(args, 2, at.Y))
		return tengo.TrueValue, nil
	}}

	values["shockwave"] = &tengo.UserFunction{Name: "shockwave", Value: func(args ...tengo.Object) (tengo.Object, error) {
		b.hazards.SpawnShockwave(floatArg(args, 0, pos.X), floatArg(args, 1, pos.Y), floatArg(args, 2, 250),
			floatArg(args, 3, 30), floatArg(args, 4, 250), intArg(args, 5, 10))
		return tengo.TrueValue, nil
	}}

	values["zone"] = &tengo.UserFunction{Name: "zone", Value: func(args ...tengo.Object) (tengo.Object, error) {
		b.hazards.SpawnLingeringZone(floatArg(args, 0, target.X), floatArg(args, 1, target.Y), floatArg(args, 2, 60),
			intArg(args, 3, 10), floatArg(args, 4, 2), floatArg(args, 5, hazard.DefaultZoneInterval))
		return tengo.TrueValue, nil
	}}

	values["reticle"] = &tengo.UserFunction{Name: "reticle", Value: func(args ...tengo.Object) (tengo.Object, error) {
		radius := floatArg(args, 2, 40)
		blast := hazard.Blast{Radius: radius, Damage: intArg(args, 4, 20), Duration: hazard.DefaultExplosionDuration}
		b.hazards.SpawnTargetReticle(floatArg(args, 0, target.X), floatArg(args, 1, target.Y), radius, floatArg(args, 3, 1), blast)
		return tengo.TrueValue, nil
	}}

	values["explosion"] = &tengo.UserFunction{Name: "explosion", Value: func(args ...tengo.Object) (tengo.Object, error) {
		b.hazards.SpawnExplosion(floatArg(args, 0, target.X), floatArg(args, 1, target.Y), floatArg(args, 2, 40),
			intArg(args, 3, 20), floatArg(args, 4, hazard.DefaultExplosionDuration))
		return tengo.TrueValue, nil
	}}

	values["beam"] = &tengo.UserFunction{Name: "beam", Value: func(args ...tengo.Object) (tengo.Object, error) {
		if len(args) < 2 {
			return nil, tengo.ErrWrongNumArguments
		}
		b.hazards.SpawnBeamSweep(b, floatArg(args, 0, 0), floatArg(args, 1, 0), floatArg(args, 2, 300),
			floatArg(args, 3, 20), intArg(args, 4, 10), floatArg(args, 5, 2))
		return tengo.TrueValue, nil
	}}

	values["every"] = &tengo.UserFunction{Name: "every", Value: func(args ...tengo.Object) (tengo.Object, error) {
		if Every(t, dt, floatArg(args, 0, 0)) {
			return tengo.TrueValue, nil
		}
		return tengo.FalseValue, nil
	}}

	values["rand"] = &tengo.UserFunction{Name: "rand", Value: func(args ...tengo.Object) (tengo.Object, error) {
		return &tengo.Float{Value: b.RandRange(floatArg(args, 0, 0), floatArg(args, 1, 1))}, nil
	}}

	values["angle_to_player"] = &tengo.UserFunction{Name: "angle_to_player", Value: func(args ...tengo.Object) (tengo.Object, error) {
		return &tengo.Float{Value: common.AngleTo(pos, target)}, nil
	}}

	return &tengo.ImmutableMap{Value: values}
}

func floatArg(args []tengo.Object, i int, def float64) float64 {
	if i >= len(args) {
		return def
	}
	if v, ok := tengo.ToFloat64(args[i]); ok {
		return v
	}
	return def
}

func intArg(args []tengo.Object, i int, def int) int {
	if i >= len(args) {
		return def
	}
	if v, ok := tengo.ToInt(args[i]); ok {
		return v
	}
	return def
}

func stringArg(args []tengo.Object, i int, def string) string {
	if i >= len(args) {
		return def
	}
	if s, ok := args[i].(*tengo.String); ok {
		return s.Value
	}
	return def
}
