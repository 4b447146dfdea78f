package geometry

// Scale converts between world units and a uniformly scaled render space.
// A Scale of 0.01 draws 100 world units as one render unit.
type Scale float64

// ToRender converts a world-space point into render space
func (s Scale) ToRender(v Vector3) Vector3 {
	return v.Mul(float64(s))
}

// ToWorld converts a render-space point back into world space
func (s Scale) ToWorld(v Vector3) Vector3 {
	return v.Mul(1 / float64(s))
}

// WorldRay converts a render-space picking ray into world space.
// Uniform scaling keeps the direction, so only the origin moves.
func (s Scale) WorldRay(origin, direction Vector3) Ray {
	return Ray{Origin: s.ToWorld(origin), Direction: direction.Normalize()}
}
