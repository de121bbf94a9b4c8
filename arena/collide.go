package arena

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/bossarena/common"
	"github.com/milk9111/bossarena/ecs"
	"github.com/milk9111/bossarena/ecs/component"
	"github.com/milk9111/bossarena/ecs/system"
	"github.com/milk9111/bossarena/hazard"
)

// projectileRef lets a barrier reflect a projectile entity.
type projectileRef struct {
	w *ecs.World
	e ecs.Entity
}

var _ hazard.Reflectable = projectileRef{}

func (r projectileRef) ID() uint64 { return uint64(r.e) }

func (r projectileRef) Position() cp.Vector {
	t, ok := ecs.Get(r.w, r.e, component.TransformComponent.Kind())
	if !ok {
		return cp.Vector{}
	}
	return cp.Vector{X: t.X, Y: t.Y}
}

func (r projectileRef) Velocity() cp.Vector {
	v, ok := ecs.Get(r.w, r.e, component.VelocityComponent.Kind())
	if !ok {
		return cp.Vector{}
	}
	return cp.Vector{X: v.X, Y: v.Y}
}

func (r projectileRef) SetVelocity(vel cp.Vector) {
	if v, ok := ecs.Get(r.w, r.e, component.VelocityComponent.Kind()); ok {
		v.X, v.Y = vel.X, vel.Y
	}
}

func (r projectileRef) PlayerOwned() bool {
	p, ok := ecs.Get(r.w, r.e, component.ProjectileComponent.Kind())
	return ok && p.PlayerOwned
}

func (r projectileRef) SetPlayerOwned(owned bool) {
	if p, ok := ecs.Get(r.w, r.e, component.ProjectileComponent.Kind()); ok {
		p.PlayerOwned = owned
	}
}

// resolveCollisions runs projectiles against barriers, the boss and minions,
// then contact and hazard damage against the player.
func (a *Arena) resolveCollisions() {
	barriers := a.barriers()

	ecs.ForEach(a.world, component.ProjectileComponent.Kind(), func(e ecs.Entity, p *component.Projectile) {
		r, ok := system.Bounds(a.world, e)
		if !ok {
			return
		}
		if !p.PlayerOwned {
			if r.Intersects(a.Player().Bounds()) {
				a.damagePlayer(p.Damage)
				ecs.DestroyEntity(a.world, e)
			}
			return
		}
		ref := projectileRef{w: a.world, e: e}
		for _, b := range barriers {
			if b.Reflect(ref) {
				return
			}
		}
		if a.hitBoss(r, p.Damage) || a.hitMinion(r, p.Damage) {
			ecs.DestroyEntity(a.world, e)
		}
	})

	a.contactDamage()
	a.hazardDamage()
}

func (a *Arena) barriers() []*hazard.ReflectiveBarrier {
	var out []*hazard.ReflectiveBarrier
	for _, h := range a.hazards {
		if b, ok := h.(*hazard.ReflectiveBarrier); ok && b.Active() {
			out = append(out, b)
		}
	}
	return out
}

// hitBoss applies a player shot to the first boss body it overlaps. A shielded
// body still absorbs the shot.
func (a *Arena) hitBoss(r common.Rect, damage int) bool {
	b := a.boss
	if b == nil || !b.Active() {
		return false
	}
	for i, body := range b.Bodies() {
		if !r.Intersects(body.Bounds) {
			continue
		}
		if !body.Invulnerable && b.TakeDamageOn(i, damage) {
			a.onBossDefeated(b)
		}
		return true
	}
	return false
}

func (a *Arena) hitMinion(r common.Rect, damage int) bool {
	hit := false
	ecs.ForEach2(a.world, component.MinionComponent.Kind(), component.HealthComponent.Kind(), func(e ecs.Entity, m *component.Minion, h *component.Health) {
		if hit {
			return
		}
		mr, ok := system.Bounds(a.world, e)
		if !ok || !r.Intersects(mr) {
			return
		}
		hit = true
		h.Current -= damage
		if h.Current <= 0 {
			a.addScore(m.ScoreValue)
			ecs.DestroyEntity(a.world, e)
		}
	})
	return hit
}

func (a *Arena) contactDamage() {
	player := a.Player()
	if player.Invulnerable() || !player.Alive() {
		return
	}
	pb := player.Bounds()

	if b := a.boss; b != nil && b.Active() {
		for _, body := range b.Bodies() {
			if pb.Intersects(body.Bounds) && a.damagePlayer(b.Config().ContactDamage) {
				return
			}
		}
	}

	hit := false
	ecs.ForEach(a.world, component.ContactDamageComponent.Kind(), func(e ecs.Entity, c *component.ContactDamage) {
		if hit {
			return
		}
		r, ok := system.Bounds(a.world, e)
		if ok && pb.Intersects(r) {
			hit = a.damagePlayer(c.Amount)
		}
	})
}

// hazardDamage tests live hazards against the player. Hazards are skipped
// entirely during i-frames so one-shot latches are not spent on a miss.
func (a *Arena) hazardDamage() {
	player := a.Player()
	pb := player.Bounds()
	for _, h := range a.hazards {
		if player.Invulnerable() || !player.Alive() {
			return
		}
		if !h.Active() || !h.CheckCollision(pb) {
			continue
		}
		if z, ok := h.(*hazard.LingeringZone); ok && !z.CanDealDamage() {
			continue
		}
		a.damagePlayer(h.Core().Damage)
	}
}
