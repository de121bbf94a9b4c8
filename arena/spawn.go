package arena

import (
	"log"

	"github.com/milk9111/bossarena/boss"
	"github.com/milk9111/bossarena/ecs"
	"github.com/milk9111/bossarena/ecs/component"
	"github.com/milk9111/bossarena/ecs/system"
	"github.com/milk9111/bossarena/prefabs"
)

// spawnRequests drains both of the boss's request buffers into live
// entities.
func (a *Arena) spawnRequests(b *boss.Boss) {
	for _, req := range b.DrainProjectileRequests() {
		system.SpawnProjectile(a.world, system.ProjectileSpec{
			X:      req.X,
			Y:      req.Y,
			Angle:  req.Angle,
			Speed:  req.Speed,
			Damage: req.Damage,
			Kind:   req.Kind,
		})
	}
	for _, req := range b.DrainMinionRequests() {
		a.SpawnMinion(req.Kind, req.X, req.Y)
	}
}

// SpawnMinion creates a minion from the minion table. Unknown kinds are
// logged and skipped.
func (a *Arena) SpawnMinion(kind string, x, y float64) (ecs.Entity, bool) {
	spec, ok := a.minions[kind]
	if !ok {
		log.Printf("arena: unknown minion kind %q, spawn skipped", kind)
		return 0, false
	}

	e := ecs.CreateEntity(a.world)
	_ = ecs.Add(a.world, e, component.TransformComponent.Kind(), &component.Transform{X: x, Y: y})
	_ = ecs.Add(a.world, e, component.SizeComponent.Kind(), &component.Size{Width: spec.Width, Height: spec.Height})
	_ = ecs.Add(a.world, e, component.HealthComponent.Kind(), &component.Health{Current: spec.Health, Max: spec.Health})
	_ = ecs.Add(a.world, e, component.MinionComponent.Kind(), &component.Minion{
		Kind:            spec.Kind,
		Speed:           spec.Speed,
		Damage:          spec.Damage,
		ScoreValue:      spec.ScoreValue,
		AttackRange:     spec.AttackRange,
		AttackCooldown:  spec.AttackCooldown,
		ProjectileSpeed: spec.ProjectileSpeed,
		ProjectileKind:  spec.ProjectileKind,
	})
	if spec.ContactDamage > 0 {
		_ = ecs.Add(a.world, e, component.ContactDamageComponent.Kind(), &component.ContactDamage{Amount: spec.ContactDamage})
	}
	return e, true
}

// SpawnPlayerProjectile fires a player-owned shot from (x, y).
func (a *Arena) SpawnPlayerProjectile(x, y, angle float64) ecs.Entity {
	return system.SpawnProjectile(a.world, system.ProjectileSpec{
		X:           x,
		Y:           y,
		Angle:       angle,
		Speed:       a.spec.PlayerShotSpeed,
		Damage:      a.spec.PlayerShotDamage,
		Kind:        "player_shot",
		PlayerOwned: true,
	})
}

// FirePlayer shoots from the player toward angle unless the weapon is still
// cooling down.
func (a *Arena) FirePlayer(angle float64) bool {
	p := a.Player()
	if !p.Alive() || ecs.Has(a.world, a.player, component.CooldownComponent.Kind()) {
		return false
	}
	pos := p.Position()
	a.SpawnPlayerProjectile(pos.X, pos.Y, angle)
	_ = ecs.Add(a.world, a.player, component.CooldownComponent.Kind(), &component.Cooldown{Remaining: a.spec.PlayerFireInterval})
	return true
}

// MinionSpec returns the table entry for kind.
func (a *Arena) MinionSpec(kind string) (prefabs.MinionSpec, bool) {
	spec, ok := a.minions[kind]
	return spec, ok
}
