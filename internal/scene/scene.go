// Package scene holds the immutable description of what gets rendered:
// spheres, light sources and the scene that owns them.
package scene

import (
	"fmt"

	"github.com/Faultbox/spheretrace/pkg/math"
	"github.com/Faultbox/spheretrace/pkg/rgb"
)

// Sphere is a spherical primitive.
type Sphere struct {
	Center math.Vec3
	Radius uint32
	Color  rgb.Color

	// Shininess is the specular exponent. Nil means the surface is matte.
	Shininess *int
}

// Specular returns a shininess exponent suitable for Sphere.Shininess.
func Specular(exponent int) *int {
	return &exponent
}

// LightKind selects which fields of a Light are meaningful.
type LightKind int

const (
	// Ambient illuminates every point uniformly.
	Ambient LightKind = iota
	// Point emits from Light.Position in all directions.
	Point
	// Directional arrives along Light.Direction everywhere in the scene.
	Directional
)

// String returns the name used in scene files.
func (k LightKind) String() string {
	switch k {
	case Ambient:
		return "ambient"
	case Point:
		return "point"
	case Directional:
		return "directional"
	default:
		return fmt.Sprintf("LightKind(%d)", int(k))
	}
}

// ParseLightKind is the inverse of LightKind.String.
func ParseLightKind(s string) (LightKind, error) {
	switch s {
	case "ambient":
		return Ambient, nil
	case "point":
		return Point, nil
	case "directional":
		return Directional, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownLightKind, s)
	}
}

// Light is a light source.
type Light struct {
	Kind      LightKind
	Position  math.Vec3 // Point only
	Direction math.Vec3 // Directional only, need not be normalized
	Intensity float64
}

// NewAmbient creates an ambient light.
func NewAmbient(intensity float64) Light {
	return Light{Kind: Ambient, Intensity: intensity}
}

// NewPoint creates a point light at position.
func NewPoint(position math.Vec3, intensity float64) Light {
	return Light{Kind: Point, Position: position, Intensity: intensity}
}

// NewDirectional creates a directional light.
func NewDirectional(direction math.Vec3, intensity float64) Light {
	return Light{Kind: Directional, Direction: direction, Intensity: intensity}
}

// Scene contains all objects and lights to be rendered.
// It is built once and only read while rendering.
type Scene struct {
	Objects []Sphere
	Lights  []Light
}
