package component

// Size is the AABB footprint centered on the Transform.
type Size struct {
	Width  float64
	Height float64
}

var SizeComponent = NewComponent[Size]()
