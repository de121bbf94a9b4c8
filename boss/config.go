package boss

import (
	"errors"
	"fmt"
	"sort"
)

type Kind string

const (
	KindIRSCommissioner Kind = "irs_commissioner"
	KindSenatorPair     Kind = "senator_pair"
	KindSpeaker         Kind = "speaker"
	KindVicePresident   Kind = "vice_president"
	KindPresident       Kind = "president"
)

var (
	ErrUnknownKind   = errors.New("boss: unknown kind")
	ErrUnknownAttack = errors.New("boss: unknown attack")
	ErrNoAttacks     = errors.New("boss: no attacks")
)

// Config is the immutable description of one boss.
type Config struct {
	Kind          Kind
	Name          string
	MaxHealth     int
	Speed         float64
	ContactDamage int
	ScoreValue    int
	Width         float64
	Height        float64
	IdleDuration  float64
	// IdleByPhase shortens the idle pause as the fight escalates. The entry
	// with the highest phase not above the current one wins.
	IdleByPhase map[Phase]float64
	Attacks     []Attack
}

// IdleFor returns the idle pause used in phase p.
func (c Config) IdleFor(p Phase) float64 {
	idle := c.IdleDuration
	best := Phase(0)
	for phase, v := range c.IdleByPhase {
		if phase <= p && phase > best {
			best = phase
			idle = v
		}
	}
	return idle
}

func (c Config) Validate() error {
	if _, ok := behaviors[c.Kind]; !ok {
		return fmt.Errorf("%w: %q", ErrUnknownKind, c.Kind)
	}
	if c.MaxHealth <= 0 {
		return fmt.Errorf("boss: %s: max health must be positive", c.Kind)
	}
	if len(c.Attacks) == 0 {
		return fmt.Errorf("%w: %s", ErrNoAttacks, c.Kind)
	}
	for _, a := range c.Attacks {
		if a.Execute == nil {
			return fmt.Errorf("boss: %s: attack %q has no execute func", c.Kind, a.Name)
		}
	}
	return nil
}

// AttackTuning overrides the timing of one attack. Nil fields keep the default.
type AttackTuning struct {
	WindUp   *float64
	Duration *float64
	Cooldown *float64
	MinPhase *Phase
	Disabled bool
}

// Tune returns a copy of c with the tunings applied.
func (c Config) Tune(tunings map[string]AttackTuning) (Config, error) {
	byName := make(map[string]int, len(c.Attacks))
	for i, a := range c.Attacks {
		byName[a.Name] = i
	}
	for name := range tunings {
		if _, ok := byName[name]; !ok {
			return Config{}, fmt.Errorf("%w: %s has no %q", ErrUnknownAttack, c.Kind, name)
		}
	}

	attacks := make([]Attack, 0, len(c.Attacks))
	for _, a := range c.Attacks {
		t, ok := tunings[a.Name]
		if !ok {
			attacks = append(attacks, a)
			continue
		}
		if t.Disabled {
			continue
		}
		if t.WindUp != nil {
			a.WindUp = *t.WindUp
		}
		if t.Duration != nil {
			a.Duration = *t.Duration
		}
		if t.Cooldown != nil {
			a.Cooldown = *t.Cooldown
		}
		if t.MinPhase != nil {
			a.MinPhase = *t.MinPhase
		}
		attacks = append(attacks, a)
	}
	c.Attacks = attacks
	return c, nil
}

// DefaultConfig returns the built-in tuning for kind.
func DefaultConfig(kind Kind) (Config, error) {
	b, ok := behaviors[kind]
	if !ok {
		return Config{}, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
	return b.config(), nil
}

// Kinds lists every registered boss kind in a stable order.
func Kinds() []Kind {
	kinds := make([]Kind, 0, len(behaviors))
	for k := range behaviors {
		kinds = append(kinds, k)
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })
	return kinds
}
