// Package raytrace renders a scene of spheres by casting one ray per pixel
// from a fixed camera at the origin looking down +Z.
package raytrace

import (
	"github.com/Faultbox/spheretrace/internal/canvas"
	"github.com/Faultbox/spheretrace/pkg/math"
)

// Viewport is the virtual window the camera looks through.
type Viewport struct {
	Width    float64
	Height   float64
	Distance float64 // from the camera along +Z
}

// DefaultViewport is a 1x1 window one unit in front of the camera.
var DefaultViewport = Viewport{Width: 1, Height: 1, Distance: 1}

// CanvasToViewport maps the centered canvas pixel (x, y) to the direction of
// the ray that passes through it. The result is not normalized.
func CanvasToViewport(x, y int, c *canvas.Canvas, vp Viewport) math.Vec3 {
	return math.Vec3{
		X: float64(x) * vp.Width / float64(c.Width()),
		Y: float64(y) * vp.Height / float64(c.Height()),
		Z: vp.Distance,
	}
}
