package kinetic

import (
	"fmt"

	"github.com/setanarut/vec"
)

// Particle is a point mass simulated by a Provider.
//
// Position and velocity are in world units and world units per tick. A
// particle never references the provider that simulates it.
type Particle struct {
	// UserData is an object that this particle is associated with.
	//
	// You can use this get a reference to your game object from within callbacks.
	UserData any

	// Shape used by the collision detector. Nil is allowed but ShapeDetector
	// reports it as an unknown shape.
	Shape Shape

	// Damping is the velocity bled off each tick, divided by DampingDivisor.
	// It must not be negative; Subscribe rejects such particles.
	Damping float64
	// Elasticity in the 0-1 range. Values below InelasticThreshold are inelastic.
	Elasticity float64
	// Gravity reports whether the provider's gravity affects this particle.
	Gravity bool

	OnPenetration PenetrationFunc
	OnRecoil      RecoilFunc

	position vec.Vec2
	velocity vec.Vec2
	mass     float64
}

// NewParticle initializes a particle with the given mass and shape.
//
// The mass must be strictly positive and finite; it divides the impact formulas.
func NewParticle(mass float64, shape Shape) (*Particle, error) {
	if !validMass(mass) {
		return nil, massError(mass)
	}
	return &Particle{
		Shape:   shape,
		Gravity: true,
		mass:    mass,
	}, nil
}

// String returns a short description of the particle.
func (p *Particle) String() string {
	return fmt.Sprint("Particle ", shapeName(p.Shape), " at ", p.position, ", velocity ", p.velocity)
}

// Mass returns mass of the particle
func (p *Particle) Mass() float64 {
	return p.mass
}

// SetMass sets mass of the particle. The particle is unchanged if mass is not
// strictly positive and finite.
func (p *Particle) SetMass(mass float64) error {
	if !validMass(mass) {
		return massError(mass)
	}
	p.mass = mass
	return nil
}

// Position returns the position of the particle.
func (p *Particle) Position() vec.Vec2 {
	return p.position
}

// SetPosition sets the position of the particle.
func (p *Particle) SetPosition(position vec.Vec2) {
	p.position = position
}

// Velocity returns the velocity of the particle.
func (p *Particle) Velocity() vec.Vec2 {
	return p.velocity
}

// SetVelocity sets the velocity of the particle.
func (p *Particle) SetVelocity(velocity vec.Vec2) {
	p.velocity = velocity
}

// BB returns the bounding box of the particle's shape at its current position.
// A particle without shape has a degenerate box at its position.
func (p *Particle) BB() BB {
	if p.Shape == nil {
		return NewBBForExtents(p.position, 0, 0)
	}
	return p.Shape.BB(p.position)
}

func (p *Particle) inelastic() bool {
	return isInelastic(p.Elasticity)
}
