package component

// Cooldown blocks an action until Remaining seconds have passed. The system
// removes it at zero, so its presence alone means "not ready".
type Cooldown struct {
	Remaining float64
}

var CooldownComponent = NewComponent[Cooldown]()
