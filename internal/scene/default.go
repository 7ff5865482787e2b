package scene

import (
	"github.com/Faultbox/spheretrace/pkg/math"
	"github.com/Faultbox/spheretrace/pkg/rgb"
)

// Default returns the built-in demo scene: three small spheres resting above
// a huge yellow sphere acting as the floor, lit by ambient, point and
// directional lights.
func Default() *Scene {
	return &Scene{
		Objects: []Sphere{
			{Center: math.Vec3{X: 0, Y: -1, Z: 3}, Radius: 1, Color: rgb.Red, Shininess: Specular(500)},
			{Center: math.Vec3{X: 2, Y: 0, Z: 4}, Radius: 1, Color: rgb.Blue, Shininess: Specular(500)},
			{Center: math.Vec3{X: -2, Y: 0, Z: 4}, Radius: 1, Color: rgb.Green, Shininess: Specular(10)},
			{Center: math.Vec3{X: 0, Y: -5001, Z: 0}, Radius: 5000, Color: rgb.Color{R: 255, G: 255, B: 0}, Shininess: Specular(1000)},
		},
		Lights: []Light{
			NewAmbient(0.2),
			NewPoint(math.Vec3{X: 2, Y: 1, Z: 0}, 0.6),
			NewDirectional(math.Vec3{X: 1, Y: 4, Z: 4}, 0.2),
		},
	}
}
