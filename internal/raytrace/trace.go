package raytrace

import (
	gomath "math"

	"github.com/Faultbox/spheretrace/internal/scene"
	"github.com/Faultbox/spheretrace/pkg/math"
	"github.com/Faultbox/spheretrace/pkg/rgb"
)

// TraceRay returns the color seen along origin + t*direction for t in
// (tMin, tMax), or background when nothing is hit.
func TraceRay(s *scene.Scene, origin, direction math.Vec3, tMin, tMax float64, background rgb.Color) rgb.Color {
	c, _ := traceRay(s, origin, direction, tMin, tMax, background)
	return c
}

func traceRay(s *scene.Scene, origin, direction math.Vec3, tMin, tMax float64, background rgb.Color) (rgb.Color, bool) {
	sphere, t, ok := closestIntersection(s, origin, direction, tMin, tMax)
	if !ok {
		return background, false
	}

	point := origin.Add(direction.Scale(t))
	normal := point.Sub(sphere.Center).Normalize()
	light := ComputeLighting(s, point, normal, direction.Neg(), sphere.Shininess)
	return sphere.Color.Scale(light), true
}

// closestIntersection finds the nearest sphere hit with t strictly inside
// (tMin, tMax). On equal t the sphere listed first wins.
func closestIntersection(s *scene.Scene, origin, direction math.Vec3, tMin, tMax float64) (*scene.Sphere, float64, bool) {
	closestT := gomath.Inf(1)
	var closest *scene.Sphere

	for i := range s.Objects {
		t1, t2 := IntersectRaySphere(origin, direction, s.Objects[i])
		for _, t := range [2]float64{t1, t2} {
			if t > tMin && t < tMax && t < closestT {
				closestT = t
				closest = &s.Objects[i]
			}
		}
	}

	return closest, closestT, closest != nil
}
