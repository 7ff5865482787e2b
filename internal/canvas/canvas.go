// Package canvas provides the pixel grid the tracer draws into.
//
// Pixels are addressed in centered coordinates: (0, 0) is the middle of the
// image, x grows to the right and y grows upwards. Valid coordinates are
// x in [-W/2, W/2) and y in [-H/2, H/2).
package canvas

import (
	"fmt"
	"image"

	"github.com/Faultbox/spheretrace/pkg/rgb"
)

// Canvas is a width x height RGB pixel buffer.
type Canvas struct {
	img *image.RGBA
}

// New creates a canvas with the given resolution. All pixels start black.
func New(width, height int) *Canvas {
	if width <= 0 || height <= 0 {
		panic(fmt.Sprintf("canvas: invalid size %dx%d", width, height))
	}
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for i := 3; i < len(img.Pix); i += 4 {
		img.Pix[i] = 0xff
	}
	return &Canvas{img: img}
}

// Width returns the horizontal resolution.
func (c *Canvas) Width() int {
	return c.img.Rect.Dx()
}

// Height returns the vertical resolution.
func (c *Canvas) Height() int {
	return c.img.Rect.Dy()
}

// Bounds returns the valid centered coordinate range as [minX, maxX) and
// [minY, maxY). For even sizes this is [-W/2, W/2) x [-H/2, H/2); odd sizes
// get the extra column on the right and the extra row at the bottom.
func (c *Canvas) Bounds() (minX, maxX, minY, maxY int) {
	w, h := c.Width(), c.Height()
	return -w / 2, w - w/2, h/2 - h, h / 2
}

// BufferCoords translates centered coordinates to buffer coordinates,
// where (0, 0) is the top-left pixel.
func (c *Canvas) BufferCoords(x, y int) (bx, by int) {
	return c.Width()/2 + x, c.Height()/2 - (y + 1)
}

// PutPixel sets the pixel at centered coordinates (x, y).
// Writing outside the canvas panics.
//
// Concurrent calls are safe as long as they target different pixels.
func (c *Canvas) PutPixel(x, y int, col rgb.Color) {
	bx, by := c.BufferCoords(x, y)
	if bx < 0 || bx >= c.Width() || by < 0 || by >= c.Height() {
		panic(fmt.Sprintf("canvas: pixel (%d, %d) out of range for %dx%d canvas", x, y, c.Width(), c.Height()))
	}
	i := c.img.PixOffset(bx, by)
	p := c.img.Pix[i : i+4 : i+4]
	p[0] = col.R
	p[1] = col.G
	p[2] = col.B
	p[3] = 0xff
}

// At returns the pixel at centered coordinates (x, y).
func (c *Canvas) At(x, y int) rgb.Color {
	bx, by := c.BufferCoords(x, y)
	p := c.img.RGBAAt(bx, by)
	return rgb.Color{R: p.R, G: p.G, B: p.B}
}

// Image returns the underlying image for encoding. The canvas must not be
// written to afterwards.
func (c *Canvas) Image() *image.RGBA {
	return c.img
}
