package kinetic

import (
	"math"

	"github.com/setanarut/vec"
)

const (
	// InelasticThreshold is the elasticity magnitude below which an impact is
	// resolved as non-elastic.
	InelasticThreshold float64 = 0.01

	// DampingDivisor scales Particle.Damping into the per tick velocity loss.
	DampingDivisor float64 = 15

	// ImpactRetention is the fraction of velocity kept after any elastic impact.
	ImpactRetention float64 = 0.8

	// FloorSnapDistance is the distance to the floor below which a particle is
	// snapped onto it.
	FloorSnapDistance float64 = 0.2

	// ImmovableMassRatio is the mass ratio above which the second particle of an
	// elastic impact does not move.
	ImmovableMassRatio float64 = 10

	// FloorMass is the mass of the implicit floor particle.
	FloorMass float64 = 99999

	// equalMassEpsilon is the tolerance for the pure velocity transfer case.
	equalMassEpsilon float64 = 0.01
)

// zero vector
var zero = vec.Vec2{}

func isZero(v vec.Vec2) bool {
	return v == zero
}

// mirrorX reflects the horizontal component (angle in = angle out).
func mirrorX(v vec.Vec2) vec.Vec2 {
	if math.Abs(v.X) > 0 {
		return vec.Vec2{X: -v.X, Y: v.Y}
	}
	return v
}

// dampAxis moves c toward zero by amount without crossing zero.
func dampAxis(c, amount float64) float64 {
	if c > 0 {
		return math.Max(c-amount, 0)
	}
	return math.Min(c+amount, 0)
}

// lengthSq returns the squared magnitude of v.
func lengthSq(v vec.Vec2) float64 {
	return v.X*v.X + v.Y*v.Y
}

func clamp(f, min, max float64) float64 {
	return math.Min(math.Max(f, min), max)
}

func isInelastic(e float64) bool {
	return math.Abs(e) < InelasticThreshold
}
