// Package boss implements the boss combat engine: a phase-aware state machine
// that picks attacks from a per-kind table, and the attack tables themselves.
// Bosses never touch the world directly. They queue projectile and minion
// requests and create hazards through a HazardSpawner.
package boss

import (
	"fmt"
	"sync/atomic"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/bossarena/common"
)

const (
	transitionDuration = 0.5
	phaseFlashDuration = 0.3
	hitFlashDuration   = 0.1
	// arrivalDistance is how close MoveToward gets before it stops.
	arrivalDistance = 5.0
)

var nextID atomic.Uint64

// Body is one damageable footprint of a boss.
type Body struct {
	Bounds       common.Rect
	Invulnerable bool
}

type Boss struct {
	id       uint64
	cfg      Config
	behavior behavior

	pos    cp.Vector
	health int
	active bool

	currentPhase       Phase
	previousPhase      Phase
	phaseJustChanged   bool
	phaseChangePending bool

	state        State
	stateTimer   float64
	idleDuration float64

	current       *Attack
	lastAttack    string
	attackTimer   float64
	attackTime    float64
	recoveryTimer float64

	projectileRequests []ProjectileRequest
	minionRequests     []MinionRequest

	attackState AttackState
	flash       FlashKind
	flashTimer  float64
	clock       float64

	rng     Rand
	bounds  common.Rect
	hazards HazardSpawner
}

type Option func(*Boss)

// WithRand injects the random source used for attack choice and spawn jitter.
func WithRand(r Rand) Option {
	return func(b *Boss) {
		if r != nil {
			b.rng = r
		}
	}
}

// WithBounds sets the arena rectangle movement is clamped to.
func WithBounds(r common.Rect) Option {
	return func(b *Boss) { b.bounds = r }
}

// WithHazards sets the factory attacks use to create hazards.
func WithHazards(h HazardSpawner) Option {
	return func(b *Boss) {
		if h != nil {
			b.hazards = h
		}
	}
}

// New creates a boss at (x, y) in phase 1, idle.
func New(cfg Config, x, y float64, opts ...Option) (*Boss, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cfg.Attacks = append([]Attack(nil), cfg.Attacks...)

	b := &Boss{
		id:            nextID.Add(1),
		cfg:           cfg,
		behavior:      behaviors[cfg.Kind],
		pos:           cp.Vector{X: x, Y: y},
		health:        cfg.MaxHealth,
		active:        true,
		currentPhase:  Phase1,
		previousPhase: Phase1,
		state:         StateIdle,
		idleDuration:  cfg.IdleFor(Phase1),
		bounds:        common.Rect{Width: 1280, Height: 720},
		hazards:       detachedSpawner{},
	}
	for _, opt := range opts {
		if opt != nil {
			opt(b)
		}
	}
	if b.rng == nil {
		b.rng = NewRand(0)
	}
	b.stateTimer = b.idleDuration
	b.attackState = b.behavior.newState(b)
	return b, nil
}

// Update recomputes the phase and counts visual timers down. Call it before
// UpdateAI each tick.
func (b *Boss) Update(dt float64) {
	b.clock += dt

	if b.flashTimer > 0 {
		b.flashTimer -= dt
		if b.flashTimer <= 0 {
			b.flashTimer = 0
			b.flash = FlashNone
		}
	}

	phase := PhaseFor(b.HealthPercent())
	b.phaseJustChanged = phase != b.currentPhase
	if b.phaseJustChanged {
		b.previousPhase = b.currentPhase
		b.currentPhase = phase
		b.phaseChangePending = true
	}

	if b.behavior.update != nil {
		b.behavior.update(b, dt)
	}
}

// UpdateAI clears last tick's requests and steps the state machine.
func (b *Boss) UpdateAI(dt float64, p Target) {
	b.projectileRequests = nil
	b.minionRequests = nil
	if !b.active {
		return
	}

	if b.phaseChangePending {
		b.phaseChangePending = false
		b.enterTransition()
	}

	switch b.state {
	case StateIdle:
		b.stateTimer -= dt
		b.move(p, dt)
		if b.stateTimer <= 0 {
			b.startAttack(p)
		}
	case StateAttacking:
		b.attackTimer -= dt
		b.attackTime += dt
		if b.current != nil && b.current.Execute != nil {
			b.current.Execute(b, p, dt, b.attackTime)
		}
		if b.attackTimer <= 0 {
			b.state = StateRecovering
			b.recoveryTimer = 0
			if b.current != nil {
				b.recoveryTimer = b.current.Cooldown
			}
		}
	case StateRecovering:
		b.recoveryTimer -= dt
		b.move(p, dt)
		if b.recoveryTimer <= 0 {
			b.finishAttack()
			b.state = StateIdle
			b.stateTimer = b.idleDuration
		}
	case StateTransitioning:
		b.stateTimer -= dt
		if b.stateTimer <= 0 {
			b.state = StateIdle
			b.stateTimer = b.idleDuration * 0.5
		}
	}
}

// enterTransition abandons any running attack and pauses the boss.
func (b *Boss) enterTransition() {
	b.finishAttack()
	b.idleDuration = b.cfg.IdleFor(b.currentPhase)
	if b.behavior.phaseChanged != nil {
		b.behavior.phaseChanged(b, b.previousPhase, b.currentPhase)
	}
	b.state = StateTransitioning
	b.stateTimer = transitionDuration
	b.flash = FlashPhase
	b.flashTimer = phaseFlashDuration
}

func (b *Boss) finishAttack() {
	if b.current != nil {
		b.lastAttack = b.current.Name
	}
	b.current = nil
	b.attackTimer = 0
	b.attackTime = 0
	b.recoveryTimer = 0
}

func (b *Boss) startAttack(p Target) {
	attack, ok := b.selectAttack()
	if !ok {
		b.stateTimer = b.idleDuration
		return
	}
	b.current = attack
	b.state = StateAttacking
	b.attackTimer = attack.Duration
	b.attackTime = 0
	if attack.OnWindUp != nil {
		attack.OnWindUp(b, p)
	}
}

// selectAttack picks uniformly among eligible attacks, never repeating the
// previous one when there is a choice.
func (b *Boss) selectAttack() (*Attack, bool) {
	candidates := eligible(b.cfg.Attacks, b.currentPhase, b.lastAttack)
	if len(candidates) == 0 {
		return nil, false
	}
	return &b.cfg.Attacks[candidates[b.rng.IntN(len(candidates))]], true
}

func (b *Boss) move(p Target, dt float64) {
	if b.behavior.move != nil {
		b.behavior.move(b, p, dt)
		return
	}
	center := b.bounds.Center()
	b.MoveToward(center, b.cfg.Speed*0.5, dt)
}

// MoveToward steps toward target and keeps the boss footprint inside the
// arena.
func (b *Boss) MoveToward(target cp.Vector, speed, dt float64) {
	b.pos = stepToward(b.pos, target, speed, dt, b.cfg.Width, b.cfg.Height, b.bounds)
}

func stepToward(pos, target cp.Vector, speed, dt, width, height float64, bounds common.Rect) cp.Vector {
	if pos.Distance(target) < arrivalDistance {
		return pos
	}
	pos = pos.Add(target.Sub(pos).Normalize().Mult(speed * dt))
	return common.RectAround(pos.X, pos.Y, width, height).Clamp(bounds).Center()
}

// TakeDamage applies damage to the primary body. It reports true exactly once,
// on the hit that defeats the boss.
func (b *Boss) TakeDamage(amount int) bool {
	return b.TakeDamageOn(0, amount)
}

// TakeDamageOn applies damage through body index i. Kind rules may reduce or
// block it. Damage on a defeated boss is ignored.
func (b *Boss) TakeDamageOn(i int, amount int) bool {
	if !b.active || amount < 0 {
		return false
	}
	if b.behavior.adjustDamage != nil {
		var ok bool
		amount, ok = b.behavior.adjustDamage(b, i, amount)
		if !ok {
			return false
		}
	}

	b.health -= amount
	b.flash = FlashHit
	b.flashTimer = hitFlashDuration
	if b.health <= 0 {
		b.health = 0
		b.active = false
		return true
	}
	return false
}

// Bodies lists every damageable footprint. Index 0 is the boss itself.
func (b *Boss) Bodies() []Body {
	bodies := []Body{{Bounds: b.Bounds(), Invulnerable: b.IsInvulnerable()}}
	if b.behavior.extraBodies != nil {
		bodies = append(bodies, b.behavior.extraBodies(b)...)
	}
	return bodies
}

func (b *Boss) ID() uint64 { return b.id }

func (b *Boss) Kind() Kind { return b.cfg.Kind }

func (b *Boss) Config() Config { return b.cfg }

func (b *Boss) Name() string { return b.cfg.Name }

func (b *Boss) Health() int { return b.health }

func (b *Boss) HealthPercent() float64 {
	if b.cfg.MaxHealth <= 0 {
		return 0
	}
	return float64(b.health) / float64(b.cfg.MaxHealth)
}

func (b *Boss) Phase() Phase { return b.currentPhase }

func (b *Boss) PreviousPhase() Phase { return b.previousPhase }

// PhaseJustChanged is true only for the tick in which a threshold was crossed.
func (b *Boss) PhaseJustChanged() bool { return b.phaseJustChanged }

func (b *Boss) State() State { return b.state }

func (b *Boss) Active() bool { return b.active }

// IsInvulnerable reports whether damage to the primary body should be
// skipped: during a phase transition or while a kind rule shields it.
func (b *Boss) IsInvulnerable() bool {
	if b.state == StateTransitioning {
		return true
	}
	if b.behavior.invulnerable != nil {
		return b.behavior.invulnerable(b)
	}
	return false
}

func (b *Boss) Position() cp.Vector { return b.pos }

func (b *Boss) SetPosition(p cp.Vector) { b.pos = p }

func (b *Boss) Bounds() common.Rect {
	return common.RectAround(b.pos.X, b.pos.Y, b.cfg.Width, b.cfg.Height)
}

func (b *Boss) ArenaBounds() common.Rect { return b.bounds }

// CurrentAttack returns the running attack, if any.
func (b *Boss) CurrentAttack() (Attack, bool) {
	if b.current == nil {
		return Attack{}, false
	}
	return *b.current, true
}

func (b *Boss) AttackState() AttackState { return b.attackState }

// Telegraph returns the current attack's tell while the attack is still
// inside its wind-up window.
func (b *Boss) Telegraph() (string, bool) {
	if b.state != StateAttacking || b.current == nil || b.attackTime >= b.current.WindUp {
		return "", false
	}
	return b.current.Tell, b.current.Tell != ""
}

func (b *Boss) Hazards() HazardSpawner { return b.hazards }

// Flash returns the active flash and its remaining time.
func (b *Boss) Flash() (FlashKind, float64) { return b.flash, b.flashTimer }

// Clock is the boss's simulation time, used to drive movement patterns.
func (b *Boss) Clock() float64 { return b.clock }

func (b *Boss) IdleDuration() float64 { return b.idleDuration }

func (b *Boss) String() string {
	return fmt.Sprintf("%s#%d(%d/%d %s p%d)", b.cfg.Kind, b.id, b.health, b.cfg.MaxHealth, b.state, b.currentPhase)
}
