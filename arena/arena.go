// Package arena owns one boss room: the ECS world holding the player,
// projectiles and minions, the live hazards, and the per-tick order in which
// the boss, the world and the hazards are stepped and collided.
package arena

import (
	"fmt"
	"log"

	"github.com/milk9111/bossarena/boss"
	"github.com/milk9111/bossarena/common"
	"github.com/milk9111/bossarena/ecs"
	"github.com/milk9111/bossarena/ecs/system"
	"github.com/milk9111/bossarena/hazard"
	"github.com/milk9111/bossarena/prefabs"
)

type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeFighting
	OutcomeWon
	OutcomeLost
)

func (o Outcome) String() string {
	switch o {
	case OutcomeFighting:
		return "fighting"
	case OutcomeWon:
		return "won"
	case OutcomeLost:
		return "lost"
	default:
		return "none"
	}
}

// stepper is a system whose step follows the arena's dt.
type stepper interface {
	ecs.System
	SetDT(dt float64)
}

type Arena struct {
	spec    prefabs.ArenaSpec
	bounds  common.Rect
	world   *ecs.World
	player  ecs.Entity
	boss    *boss.Boss
	hazards []hazard.Hazard

	minions  map[string]prefabs.MinionSpec
	rng      boss.Rand
	loadBoss func(name string) (boss.Config, error)

	systems  *ecs.Scheduler
	steppers []stepper
	elapsed  float64
	outcome  Outcome
}

type Option func(*Arena)

// WithMinions replaces the minion table loaded from prefabs.
func WithMinions(minions map[string]prefabs.MinionSpec) Option {
	return func(a *Arena) { a.minions = minions }
}

// WithRand shares one random source between the arena and its bosses.
func WithRand(r boss.Rand) Option {
	return func(a *Arena) { a.rng = r }
}

// WithBossLoader changes how StartBoss resolves a boss name.
func WithBossLoader(fn func(name string) (boss.Config, error)) Option {
	return func(a *Arena) { a.loadBoss = fn }
}

func New(spec prefabs.ArenaSpec, opts ...Option) (*Arena, error) {
	spec = spec.WithDefaults()
	a := &Arena{
		spec:     spec,
		bounds:   common.Rect{Width: spec.Width, Height: spec.Height},
		world:    ecs.NewWorld(),
		loadBoss: prefabs.LoadBossConfig,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(a)
		}
	}
	if a.rng == nil {
		a.rng = boss.NewRand(0)
	}
	if a.minions == nil {
		minions, err := prefabs.LoadMinionSpecs()
		if err != nil {
			return nil, fmt.Errorf("arena: %w", err)
		}
		a.minions = minions
	}

	dt := 1.0 / float64(spec.TickRate)
	a.steppers = []stepper{
		system.NewMinionSystem(dt, a.bounds),
		system.NewProjectileSystem(dt, a.bounds),
		system.NewTTLSystem(dt),
		system.NewInvulnerableSystem(dt),
		system.NewCooldownSystem(dt),
	}
	a.systems = ecs.NewScheduler()
	for _, s := range a.steppers {
		a.systems.Add(s)
	}

	a.spawnPlayer(0)
	return a, nil
}

// StartBoss resets the room and brings in the named boss prefab.
func (a *Arena) StartBoss(name string) error {
	cfg, err := a.loadBoss(name)
	if err != nil {
		return fmt.Errorf("arena: start %s: %w", name, err)
	}
	return a.StartConfig(cfg)
}

// StartConfig resets the room and brings in a boss built from cfg.
func (a *Arena) StartConfig(cfg boss.Config) error {
	a.Reset()
	b, err := boss.New(cfg, a.bounds.X+a.bounds.Width/2, a.bounds.Y+a.bounds.Height*0.25,
		boss.WithRand(a.rng),
		boss.WithBounds(a.bounds),
		boss.WithHazards(a),
	)
	if err != nil {
		return fmt.Errorf("arena: start %s: %w", cfg.Kind, err)
	}
	a.boss = b
	a.outcome = OutcomeFighting
	log.Printf("arena: %s enters with %d hp", b.Name(), b.Health())
	return nil
}

// Reset clears every hazard, projectile and minion and restores the player.
// The score carries over.
func (a *Arena) Reset() {
	score := a.Player().Score()
	a.world.Clear()
	for _, h := range a.hazards {
		h.Deactivate()
	}
	a.hazards = nil
	a.boss = nil
	a.elapsed = 0
	a.outcome = OutcomeNone
	a.spawnPlayer(score)
}

// Tick advances the room by dt: boss, requests, entities, hazards, deferred
// events, collisions and cleanup, in that order.
func (a *Arena) Tick(dt float64) {
	if dt <= 0 {
		return
	}
	a.elapsed += dt

	if b := a.boss; b != nil && b.Active() {
		b.Update(dt)
		b.UpdateAI(dt, a.Player())
		a.spawnRequests(b)
	}

	for _, s := range a.steppers {
		s.SetDT(dt)
	}
	a.systems.Update(a.world)

	a.updateHazards(dt)
	a.drainEvents()
	a.resolveCollisions()
	a.cleanup()
}

func (a *Arena) updateHazards(dt float64) {
	for _, h := range a.hazards {
		h.Update(dt)
		src, ok := h.(hazard.EventSource)
		if !ok {
			continue
		}
		for _, evt := range src.DrainEvents() {
			a.world.Events().Push(ecs.Event{Type: string(evt.Kind), Data: evt})
		}
	}
}

func (a *Arena) drainEvents() {
	for _, evt := range a.world.Events().Drain() {
		switch evt.Type {
		case string(hazard.EventExplode):
			e, ok := evt.Data.(hazard.Event)
			if !ok {
				continue
			}
			a.SpawnExplosion(e.X, e.Y, e.Radius, e.Damage, e.Duration)
		default:
			log.Printf("arena: unhandled event %q", evt.Type)
		}
	}
}

// cleanup drops hazards that finished this tick.
func (a *Arena) cleanup() {
	live := a.hazards[:0]
	for _, h := range a.hazards {
		if h.Active() {
			live = append(live, h)
		}
	}
	for i := len(live); i < len(a.hazards); i++ {
		a.hazards[i] = nil
	}
	a.hazards = live
}

func (a *Arena) onBossDefeated(b *boss.Boss) {
	a.addScore(b.Config().ScoreValue)
	for _, h := range a.hazards {
		h.Deactivate()
	}
	a.outcome = OutcomeWon
	log.Printf("arena: %s defeated after %.1fs", b.Name(), a.elapsed)
}

// ReloadMinions re-reads the minion table, keeping the old one on failure.
func (a *Arena) ReloadMinions() error {
	minions, err := prefabs.LoadMinionSpecs()
	if err != nil {
		return fmt.Errorf("arena: reload minions: %w", err)
	}
	a.minions = minions
	return nil
}

func (a *Arena) Boss() *boss.Boss { return a.boss }

func (a *Arena) World() *ecs.World { return a.world }

func (a *Arena) Hazards() []hazard.Hazard { return a.hazards }

func (a *Arena) Bounds() common.Rect { return a.bounds }

func (a *Arena) Spec() prefabs.ArenaSpec { return a.spec }

func (a *Arena) Outcome() Outcome { return a.outcome }

// Elapsed is the simulated time since the room started.
func (a *Arena) Elapsed() float64 { return a.elapsed }
