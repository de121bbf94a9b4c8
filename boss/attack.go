package boss

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/bossarena/common"
)

// Target is everything a boss may know about the player.
type Target interface {
	Position() cp.Vector
	Bounds() common.Rect
}

// ExecuteFunc runs every tick while its attack is active. t is the time since
// the attack started, including this tick's dt.
type ExecuteFunc func(b *Boss, p Target, dt, t float64)

// WindUpFunc runs once when the attack is chosen. It resets attack-local state
// and captures aim.
type WindUpFunc func(b *Boss, p Target)

// Attack is a definition shared by every boss of a kind.
type Attack struct {
	Name     string
	WindUp   float64
	Duration float64
	Cooldown float64
	MinPhase Phase
	// Tell names the telegraph animation a renderer may play during WindUp.
	Tell     string
	OnWindUp WindUpFunc
	Execute  ExecuteFunc
}

// eligible filters attacks by phase and drops the previous attack when another
// choice remains.
func eligible(attacks []Attack, phase Phase, last string) []int {
	var out []int
	for i := range attacks {
		if attacks[i].MinPhase <= phase {
			out = append(out, i)
		}
	}
	if len(out) <= 1 || last == "" {
		return out
	}
	filtered := out[:0:0]
	for _, i := range out {
		if attacks[i].Name != last {
			filtered = append(filtered, i)
		}
	}
	if len(filtered) == 0 {
		return out
	}
	return filtered
}
