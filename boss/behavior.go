package boss

// behavior is the per-kind strategy table. Nil hooks fall back to the generic
// boss behaviour.
type behavior struct {
	config   func() Config
	newState func(b *Boss) AttackState
	move     func(b *Boss, p Target, dt float64)
	// update runs every tick from Update, after the phase recompute.
	update func(b *Boss, dt float64)
	// phaseChanged runs when a transition starts.
	phaseChanged func(b *Boss, from, to Phase)
	// adjustDamage may reduce damage dealt through body i, or block it.
	adjustDamage func(b *Boss, i, amount int) (int, bool)
	invulnerable func(b *Boss) bool
	extraBodies  func(b *Boss) []Body
}

var behaviors map[Kind]behavior

func init() {
	behaviors = map[Kind]behavior{
		KindIRSCommissioner: irsBehavior,
		KindSenatorPair:     senatorBehavior,
		KindSpeaker:         speakerBehavior,
		KindVicePresident:   vicePresidentBehavior,
		KindPresident:       presidentBehavior,
	}
}
