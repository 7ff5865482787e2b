package raytrace

import (
	gomath "math"

	"github.com/Faultbox/spheretrace/internal/scene"
	"github.com/Faultbox/spheretrace/pkg/math"
)

// degenerateEpsilon bounds |direction|^2 below which a ray has no usable direction.
const degenerateEpsilon = 1e-12

// IntersectRaySphere returns the parameters t at which origin + t*direction
// meets the sphere surface, as (+sqrt branch, -sqrt branch). The two values
// are not sorted. A miss, or a ray with a zero-length direction, yields
// (+Inf, +Inf).
func IntersectRaySphere(origin, direction math.Vec3, s scene.Sphere) (t1, t2 float64) {
	r := float64(s.Radius)
	co := origin.Sub(s.Center)

	a := direction.Dot(direction)
	if a < degenerateEpsilon {
		return gomath.Inf(1), gomath.Inf(1)
	}
	b := 2 * co.Dot(direction)
	c := co.Dot(co) - r*r

	discriminant := b*b - 4*a*c
	if discriminant < 0 {
		return gomath.Inf(1), gomath.Inf(1)
	}

	sq := gomath.Sqrt(discriminant)
	t1 = (-b + sq) / (2 * a)
	t2 = (-b - sq) / (2 * a)
	return t1, t2
}
