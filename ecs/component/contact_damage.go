package component

// ContactDamage is applied to the player on AABB overlap.
type ContactDamage struct {
	Amount int
}

var ContactDamageComponent = NewComponent[ContactDamage]()
