package component

// Projectile is a moving damage source. PlayerOwned projectiles hurt the boss
// and minions; all others hurt the player. A reflected projectile flips this.
type Projectile struct {
	Kind        string
	Damage      int
	PlayerOwned bool
}

var ProjectileComponent = NewComponent[Projectile]()
