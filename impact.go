package kinetic

import (
	"math"

	"github.com/setanarut/vec"
)

// impactBody is the part of a particle the impact formulas read.
type impactBody struct {
	velocity   vec.Vec2
	mass       float64
	elasticity float64
}

func bodyOf(p *Particle) impactBody {
	return impactBody{p.velocity, p.mass, p.Elasticity}
}

// floorBody is the implicit immovable object a particle bounces off at the
// lower bound.
var floorBody = impactBody{velocity: zero, mass: FloorMass, elasticity: 1}

// KineticEnergy returns m*|v|²/2 of the particle.
func KineticEnergy(p *Particle) float64 {
	return kineticEnergy(p.mass, p.velocity)
}

func kineticEnergy(mass float64, v vec.Vec2) float64 {
	return mass * lengthSq(v) / 2
}

// VelocityOfFall returns the vertical velocity gained under gravity during
// elapsedMs milliseconds (v = g*t).
func VelocityOfFall(gravity, elapsedMs float64) float64 {
	return gravity * (elapsedMs / 1000)
}

// Damp moves each component of v toward zero by damping/DampingDivisor. A
// component never changes sign. Negative or NaN damping leaves v unchanged.
func Damp(v vec.Vec2, damping float64) vec.Vec2 {
	if !(damping > 0) {
		return v
	}
	amount := damping / DampingDivisor
	return vec.Vec2{X: dampAxis(v.X, amount), Y: dampAxis(v.Y, amount)}
}

// dampOnImpact removes the flat energy loss of an elastic impact.
func dampOnImpact(v vec.Vec2) vec.Vec2 {
	return v.Scale(ImpactRetention)
}

// ElasticImpact returns the velocities of p1 and p2 after an elastic impact.
// The particles are not modified.
func ElasticImpact(p1, p2 *Particle) (u1, u2 vec.Vec2) {
	return elasticImpact(bodyOf(p1), bodyOf(p2))
}

// elasticImpact solves
//
//	u1 = (m1*v1 + m2*(2*v2 − v1)) / (m1 + m2)
//	u2 = (m2*v2 + m1*(2*v1 − v2)) / (m1 + m2)
//
// per axis after mirroring the horizontal components (angle in = angle out).
func elasticImpact(b1, b2 impactBody) (vec.Vec2, vec.Vec2) {
	v1 := mirrorX(b1.velocity)
	v2 := mirrorX(b2.velocity)

	// b2 is too heavy to move, only reflect b1.
	if b2.mass/b1.mass > ImmovableMassRatio {
		return dampOnImpact(v1).Neg().Scale(b1.elasticity), v2
	}

	elasticity := math.Min(b1.elasticity, b2.elasticity)

	// Equal masses and b2 at rest: b1 hands over its whole velocity.
	if isZero(v2) && math.Abs(b1.mass-b2.mass) < equalMassEpsilon {
		return zero, v1
	}

	msum := b1.mass + b2.mass
	u1 := v1.Scale(b1.mass).Add(v2.Scale(2).Sub(v1).Scale(b2.mass)).Scale(1 / msum)
	u2 := v2.Scale(b2.mass).Add(v1.Scale(2).Sub(v2).Scale(b1.mass)).Scale(1 / msum)
	return dampOnImpact(u1.Scale(elasticity)), dampOnImpact(u2.Scale(elasticity))
}

// NonElasticImpact returns the common velocity of p1 and p2 after a
// non-elastic impact, using the same formula as a Provider with the given
// momentumConserving setting.
func NonElasticImpact(p1, p2 *Particle, momentumConserving bool) vec.Vec2 {
	return nonElasticImpact(bodyOf(p1), bodyOf(p2), momentumConserving)
}

// nonElasticImpact returns
//
//	v = m1*v1 + m2*v2/(m1 + m2)
//
// which only divides the second term by the mass sum, or the momentum
// conserving (m1*v1 + m2*v2)/(m1 + m2) when momentumConserving is set.
func nonElasticImpact(b1, b2 impactBody, momentumConserving bool) vec.Vec2 {
	msum := b1.mass + b2.mass
	if momentumConserving {
		return b1.velocity.Scale(b1.mass).Add(b2.velocity.Scale(b2.mass)).Scale(1 / msum)
	}
	return b1.velocity.Scale(b1.mass).Add(b2.velocity.Scale(b2.mass / msum))
}
