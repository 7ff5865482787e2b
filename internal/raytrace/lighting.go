package raytrace

import (
	"fmt"
	gomath "math"

	"github.com/Faultbox/spheretrace/internal/scene"
	"github.com/Faultbox/spheretrace/pkg/math"
)

// ComputeLighting returns how much light reaches point, summed over every
// light in the scene. normal must be a unit vector. view points from the
// surface back towards the viewer and need not be normalized. A nil
// shininess disables the specular term.
//
// Occlusion is not tested: every light reaches every point.
func ComputeLighting(s *scene.Scene, point, normal, view math.Vec3, shininess *int) float64 {
	illumination := 0.0

	for _, light := range s.Lights {
		var toLight math.Vec3

		switch light.Kind {
		case scene.Ambient:
			illumination += light.Intensity
			continue
		case scene.Point:
			toLight = light.Position.Sub(point).Normalize()
		case scene.Directional:
			toLight = light.Direction.Normalize()
		default:
			panic(fmt.Sprintf("raytrace: unhandled light kind %v", light.Kind))
		}

		// Diffuse
		nDotL := normal.Dot(toLight)
		illumination += light.Intensity * gomath.Max(0, nDotL)

		// Specular
		if shininess != nil {
			reflection := normal.Scale(2 * nDotL).Sub(toLight)
			rDotV := gomath.Max(0, reflection.Dot(view.Normalize()))
			illumination += light.Intensity * gomath.Pow(rDotV, float64(*shininess))
		}
	}

	return illumination
}
