package boss

type Phase int

const (
	Phase1 Phase = iota + 1
	Phase2
	Phase3
	Phase4
)

// PhaseFor maps a health ratio to a phase. Boundaries belong to the lower
// phase: exactly 0.75 is phase 2.
func PhaseFor(ratio float64) Phase {
	switch {
	case ratio > 0.75:
		return Phase1
	case ratio > 0.5:
		return Phase2
	case ratio > 0.25:
		return Phase3
	default:
		return Phase4
	}
}

type State int

const (
	StateIdle State = iota
	StateAttacking
	StateRecovering
	StateTransitioning
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateAttacking:
		return "attacking"
	case StateRecovering:
		return "recovering"
	case StateTransitioning:
		return "transitioning"
	default:
		return "unknown"
	}
}

// FlashKind is the visual flash a renderer should show.
type FlashKind int

const (
	FlashNone FlashKind = iota
	FlashHit
	FlashPhase
)
