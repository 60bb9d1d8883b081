package kinetic

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrNilParticle is returned when a nil particle is subscribed.
	ErrNilParticle = errors.New("kinetic: nil particle")
	// ErrInvalidMass is returned for a mass that is not strictly positive and finite.
	ErrInvalidMass = errors.New("kinetic: mass must be positive")
	// ErrInvalidDamping is returned for a negative or NaN damping.
	ErrInvalidDamping = errors.New("kinetic: damping must not be negative")
	// ErrUnknownShape is returned by a detector that does not recognize a
	// particle's shape kind.
	ErrUnknownShape = errors.New("kinetic: unknown shape")
)

// CollisionError reports a pair that was skipped during a tick.
type CollisionError struct {
	A, B *Particle
	Err  error
}

func (e *CollisionError) Error() string {
	return fmt.Sprintf("kinetic: pair (%p, %p) skipped: %v", e.A, e.B, e.Err)
}

func (e *CollisionError) Unwrap() error {
	return e.Err
}

func validMass(mass float64) bool {
	return mass > 0 && !math.IsInf(mass, 1)
}

func massError(mass float64) error {
	return fmt.Errorf("%w: got %v", ErrInvalidMass, mass)
}
