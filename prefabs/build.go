package prefabs

import (
	"fmt"

	"github.com/milk9111/bossarena/boss"
)

// Config builds the boss configuration described by the spec: the kind's
// defaults, the spec's overrides, then any scripted attacks.
func (s *BossSpec) Config() (boss.Config, error) {
	cfg, err := boss.DefaultConfig(boss.Kind(s.Kind))
	if err != nil {
		return boss.Config{}, fmt.Errorf("prefabs: boss %s: %w", s.Name, err)
	}

	if s.DisplayName != "" {
		cfg.Name = s.DisplayName
	}
	if s.MaxHealth > 0 {
		cfg.MaxHealth = s.MaxHealth
	}
	if s.Speed > 0 {
		cfg.Speed = s.Speed
	}
	if s.ContactDamage > 0 {
		cfg.ContactDamage = s.ContactDamage
	}
	if s.ScoreValue > 0 {
		cfg.ScoreValue = s.ScoreValue
	}
	if s.Width > 0 {
		cfg.Width = s.Width
	}
	if s.Height > 0 {
		cfg.Height = s.Height
	}
	if s.IdleDuration > 0 {
		cfg.IdleDuration = s.IdleDuration
	}
	if len(s.IdleByPhase) > 0 {
		idle := make(map[boss.Phase]float64, len(s.IdleByPhase))
		for p, v := range s.IdleByPhase {
			if p < int(boss.Phase1) || p > int(boss.Phase4) {
				return boss.Config{}, fmt.Errorf("prefabs: boss %s: idle_by_phase: bad phase %d", s.Name, p)
			}
			idle[boss.Phase(p)] = v
		}
		cfg.IdleByPhase = idle
	}

	if len(s.Attacks) > 0 {
		tunings := make(map[string]boss.AttackTuning, len(s.Attacks))
		for name, o := range s.Attacks {
			t := boss.AttackTuning{
				WindUp:   o.WindUp,
				Duration: o.Duration,
				Cooldown: o.Cooldown,
				Disabled: o.Disabled,
			}
			if o.MinPhase != nil {
				p := boss.Phase(*o.MinPhase)
				t.MinPhase = &p
			}
			tunings[name] = t
		}
		cfg, err = cfg.Tune(tunings)
		if err != nil {
			return boss.Config{}, fmt.Errorf("prefabs: boss %s: %w", s.Name, err)
		}
	}

	for _, sa := range s.Scripted {
		src, err := LoadScript(sa.Script)
		if err != nil {
			return boss.Config{}, fmt.Errorf("prefabs: boss %s: attack %q: %w", s.Name, sa.Name, err)
		}
		script, err := boss.CompileScript(sa.Script, src)
		if err != nil {
			return boss.Config{}, fmt.Errorf("prefabs: boss %s: attack %q: %w", s.Name, sa.Name, err)
		}
		minPhase := boss.Phase(sa.MinPhase)
		if minPhase < boss.Phase1 {
			minPhase = boss.Phase1
		}
		cfg.Attacks = append(cfg.Attacks, boss.ScriptedAttack(script, sa.Name, sa.WindUp, sa.Duration, sa.Cooldown, minPhase))
	}

	if err := cfg.Validate(); err != nil {
		return boss.Config{}, fmt.Errorf("prefabs: boss %s: %w", s.Name, err)
	}
	return cfg, nil
}

// LoadBossConfig loads and builds the named boss prefab.
func LoadBossConfig(name string) (boss.Config, error) {
	spec, err := LoadBossSpec(name)
	if err != nil {
		return boss.Config{}, err
	}
	return spec.Config()
}
