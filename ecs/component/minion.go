package component

// Minion is an ordinary enemy spawned on a boss's request.
type Minion struct {
	Kind            string
	Speed           float64
	Damage          int
	ScoreValue      int
	AttackRange     float64
	AttackCooldown  float64
	ProjectileSpeed float64
	ProjectileKind  string

	cooldown float64
}

// Tick counts the attack cooldown down.
func (m *Minion) Tick(dt float64) {
	if m != nil && m.cooldown > 0 {
		m.cooldown -= dt
	}
}

// TryFire reports whether a ranged minion may shoot now and re-arms its
// cooldown when it does.
func (m *Minion) TryFire() bool {
	if m == nil || m.AttackRange <= 0 || m.AttackCooldown <= 0 || m.cooldown > 0 {
		return false
	}
	m.cooldown = m.AttackCooldown
	return true
}

var MinionComponent = NewComponent[Minion]()
