package core

const (
	// Epsilon is the minimum accepted ray parameter; roots at or below it are
	// treated as self-intersections and discarded.
	Epsilon = 1e-6

	// SurfaceBias is how far along its own direction a spawned ray (shadow,
	// reflected or refracted) starts from the surface it leaves.
	SurfaceBias = 1e-4
)

// Ray represents a ray with an origin and direction
type Ray struct {
	Origin    Vec3
	Direction Vec3
}

// NewRay creates a new ray with a unit direction. A zero direction is kept
// as-is and marks a degenerate ray that intersects nothing.
func NewRay(origin, direction Vec3) Ray {
	if !direction.IsZero() {
		direction = direction.Normalize()
	}
	return Ray{Origin: origin, Direction: direction}
}

// NewOffsetRay creates a ray that leaves point along direction, starting
// SurfaceBias away from it.
func NewOffsetRay(point, direction Vec3) Ray {
	r := NewRay(point, direction)
	r.Origin = point.Add(r.Direction.Multiply(SurfaceBias))
	return r
}

// At returns the point at parameter t along the ray
func (r Ray) At(t float64) Vec3 {
	return r.Origin.Add(r.Direction.Multiply(t))
}

// IsDegenerate reports whether the ray has no direction
func (r Ray) IsDegenerate() bool {
	return r.Direction.IsZero()
}

// IsOutside reports whether a ray travelling along direction approaches the
// surface from the side the normal points to, i.e. the angle between the
// normal and the incident direction exceeds 90 degrees.
func IsOutside(normal, direction Vec3) bool {
	return normal.Dot(direction) < 0
}
