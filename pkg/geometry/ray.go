package geometry

import "math"

// Ray is a half-line starting at Origin. Direction does not need to be normalized,
// but distances returned by the intersection helpers are in units of Direction.
type Ray struct {
	Origin    Vector3
	Direction Vector3
}

// At returns the point at parameter t along the ray
func (r Ray) At(t float64) Vector3 {
	return r.Origin.Add(r.Direction.Mul(t))
}

// Plane is the set of points p with Normal·p + Constant = 0.
type Plane struct {
	Normal   Vector3
	Constant float64
}

// NewPlaneFromNormalAndPoint builds the plane with the given normal passing through point.
func NewPlaneFromNormalAndPoint(normal, point Vector3) Plane {
	n := normal.Normalize()
	return Plane{Normal: n, Constant: -point.Dot(n)}
}

// NewHorizontalPlane returns the plane y = height.
func NewHorizontalPlane(height float64) Plane {
	return NewPlaneFromNormalAndPoint(Up, Vector3{Y: height})
}

// DistanceToPoint returns the signed distance from the plane to p
func (p Plane) DistanceToPoint(point Vector3) float64 {
	return p.Normal.Dot(point) + p.Constant
}

// IntersectPlane returns the point where the ray meets the plane.
// A ray parallel to the plane only hits when its origin lies on the plane;
// hits behind the origin are reported as misses.
func (r Ray) IntersectPlane(p Plane) (Vector3, bool) {
	denom := p.Normal.Dot(r.Direction)
	if denom == 0 {
		if p.DistanceToPoint(r.Origin) == 0 {
			return r.Origin, true
		}
		return Vector3{}, false
	}

	t := -(r.Origin.Dot(p.Normal) + p.Constant) / denom
	if t < 0 {
		return Vector3{}, false
	}
	return r.At(t), true
}

// IntersectBox runs a slab test against b and returns the ray parameter of the
// first surface hit at or in front of the origin.
func (r Ray) IntersectBox(b Box) (float64, bool) {
	lo, hi := b.Min(), b.Max()
	tmin := math.Inf(-1)
	tmax := math.Inf(1)

	origin := [3]float64{r.Origin.X, r.Origin.Y, r.Origin.Z}
	dir := [3]float64{r.Direction.X, r.Direction.Y, r.Direction.Z}
	boxMin := [3]float64{lo.X, lo.Y, lo.Z}
	boxMax := [3]float64{hi.X, hi.Y, hi.Z}

	for axis := 0; axis < 3; axis++ {
		if dir[axis] == 0 {
			if origin[axis] < boxMin[axis] || origin[axis] > boxMax[axis] {
				return 0, false
			}
			continue
		}
		inv := 1 / dir[axis]
		t1 := (boxMin[axis] - origin[axis]) * inv
		t2 := (boxMax[axis] - origin[axis]) * inv
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		tmin = math.Max(tmin, t1)
		tmax = math.Min(tmax, t2)
		if tmin > tmax {
			return 0, false
		}
	}

	if tmax < 0 {
		return 0, false
	}
	if tmin >= 0 {
		return tmin, true
	}
	// Origin is inside the box.
	return tmax, true
}
