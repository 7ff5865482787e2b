// Package preview shows a finished render in an SDL2 window.
package preview

import (
	"errors"
	"fmt"
	"image"
	"runtime"

	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"
)

func init() {
	// SDL video calls must be made from the main thread
	runtime.LockOSThread()
}

// ErrNoImage is returned when there is nothing to show.
var ErrNoImage = errors.New("preview: empty image")

// Show opens a window displaying img and blocks until the user closes it or
// presses Escape.
func Show(img *image.RGBA, title string, log *zap.Logger) error {
	if img == nil || img.Rect.Empty() {
		return ErrNoImage
	}
	if log == nil {
		log = zap.NewNop()
	}

	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_EVENTS); err != nil {
		return fmt.Errorf("SDL_Init failed: %w", err)
	}
	defer sdl.Quit()

	w, h := img.Rect.Dx(), img.Rect.Dy()
	window, err := sdl.CreateWindow(
		title,
		sdl.WINDOWPOS_CENTERED,
		sdl.WINDOWPOS_CENTERED,
		int32(w),
		int32(h),
		sdl.WINDOW_SHOWN,
	)
	if err != nil {
		return fmt.Errorf("SDL_CreateWindow failed: %w", err)
	}
	defer window.Destroy()

	log.Info("preview window opened", zap.String("title", title), zap.Int("width", w), zap.Int("height", h))

	if err := draw(window, img); err != nil {
		return err
	}

	for {
		for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
			switch e := event.(type) {
			case *sdl.QuitEvent:
				log.Info("preview window closed")
				return nil

			case *sdl.KeyboardEvent:
				if e.State == sdl.PRESSED && e.Keysym.Sym == sdl.K_ESCAPE {
					log.Info("preview window closed")
					return nil
				}

			case *sdl.WindowEvent:
				if e.Event == sdl.WINDOWEVENT_EXPOSED {
					if err := draw(window, img); err != nil {
						return err
					}
				}
			}
		}
		sdl.Delay(16)
	}
}

// draw copies img onto the window surface.
func draw(window *sdl.Window, img *image.RGBA) error {
	surface, err := window.GetSurface()
	if err != nil {
		return fmt.Errorf("SDL_GetWindowSurface failed: %w", err)
	}

	if err := surface.Lock(); err != nil {
		return fmt.Errorf("SDL_LockSurface failed: %w", err)
	}
	b := img.Rect
	for y := b.Min.Y; y < b.Max.Y && y-b.Min.Y < int(surface.H); y++ {
		for x := b.Min.X; x < b.Max.X && x-b.Min.X < int(surface.W); x++ {
			surface.Set(x-b.Min.X, y-b.Min.Y, img.RGBAAt(x, y))
		}
	}
	surface.Unlock()

	return window.UpdateSurface()
}
