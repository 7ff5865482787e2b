package scene

import (
	"errors"
	"fmt"
	"math"
)

// Validation errors.
var (
	ErrInvalidRadius    = errors.New("radius must be positive")
	ErrInvalidIntensity = errors.New("intensity must be a non-negative finite number")
	ErrZeroDirection    = errors.New("directional light needs a non-zero direction")
	ErrNonFinite        = errors.New("vector components must be finite")
	ErrInvalidColor     = errors.New("invalid color")
	ErrUnknownLightKind = errors.New("unknown light kind")
	ErrBadVector        = errors.New("vector needs exactly 3 components")
)

// Validate checks the preconditions the tracer relies on and reports every
// violation found.
func Validate(s *Scene) error {
	var errs []error

	for i, sp := range s.Objects {
		if sp.Radius == 0 {
			errs = append(errs, fmt.Errorf("objects[%d]: %w", i, ErrInvalidRadius))
		}
		if !sp.Center.IsFinite() {
			errs = append(errs, fmt.Errorf("objects[%d].center: %w", i, ErrNonFinite))
		}
	}

	for i, l := range s.Lights {
		if l.Intensity < 0 || math.IsNaN(l.Intensity) || math.IsInf(l.Intensity, 0) {
			errs = append(errs, fmt.Errorf("lights[%d]: %w", i, ErrInvalidIntensity))
		}
		switch l.Kind {
		case Ambient:
		case Point:
			if !l.Position.IsFinite() {
				errs = append(errs, fmt.Errorf("lights[%d].position: %w", i, ErrNonFinite))
			}
		case Directional:
			if !l.Direction.IsFinite() {
				errs = append(errs, fmt.Errorf("lights[%d].direction: %w", i, ErrNonFinite))
			} else if l.Direction.IsZero() {
				errs = append(errs, fmt.Errorf("lights[%d]: %w", i, ErrZeroDirection))
			}
		default:
			errs = append(errs, fmt.Errorf("lights[%d]: %w: %v", i, ErrUnknownLightKind, l.Kind))
		}
	}

	return errors.Join(errs...)
}
