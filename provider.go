package kinetic

import (
	"errors"
	"fmt"
	"log"
	"math"
	"slices"

	"github.com/setanarut/vec"
)

// Gravitation is the default gravity constant.
const Gravitation float64 = 9.81

// Provider simulates its subscribed particles one tick per Update call.
//
// A Provider is not safe for concurrent use. Subscribe and Unsubscribe calls
// made while Update runs (from an event handler) are applied at the end of
// the tick.
type Provider struct {
	UserData any

	// EnableGravity turns the global gravity on. Only particles with
	// Particle.Gravity set are affected.
	EnableGravity bool

	// Gravity is the acceleration added to the Y velocity per second.
	// Defaults to Gravitation.
	Gravity float64

	// LowerBound is the floor Y coordinate. Particles reaching it are clamped
	// and bounce or stop depending on their elasticity. Defaults to 468.
	LowerBound float64
	// UpperBound is the ceiling Y coordinate. Defaults to -99999.
	UpperBound float64
	// BoundLeft is the magnitude of the left X bound: X <= -BoundLeft is
	// clamped to +BoundLeft. Defaults to 99999.
	BoundLeft float64
	// BoundRight is the right X bound. Defaults to 99999.
	BoundRight float64

	// MomentumConserving selects (m1*v1 + m2*v2)/(m1+m2) for non-elastic
	// impacts instead of the default m1*v1 + m2*v2/(m1+m2).
	MomentumConserving bool

	// Logger receives skipped pair reports. Nil means log.Default().
	Logger *log.Logger

	detector   Detector
	particles  []*Particle
	before     []vec.Vec2 // positions before integration, parallel to particles
	references *ReferenceTracker
	ticks      uint64
	locked     bool
	pending    []pendingChange
}

type pendingChange struct {
	particle  *Particle
	subscribe bool
}

// NewProvider allocates and initializes a Provider. A nil detector selects
// ShapeDetector.
func NewProvider(detector Detector) *Provider {
	if detector == nil {
		detector = ShapeDetector{}
	}
	return &Provider{
		Gravity:    Gravitation,
		LowerBound: 468,
		UpperBound: -99999,
		BoundLeft:  99999,
		BoundRight: 99999,
		detector:   detector,
		particles:  []*Particle{},
		references: NewReferenceTracker(),
	}
}

// Detector returns the collision detector.
func (pr *Provider) Detector() Detector {
	return pr.detector
}

// SetDetector replaces the collision detector. A nil detector selects ShapeDetector.
func (pr *Provider) SetDetector(detector Detector) {
	if detector == nil {
		detector = ShapeDetector{}
	}
	pr.detector = detector
}

// Bounds returns the playable area as a BB, with the left bound negated.
func (pr *Provider) Bounds() BB {
	return NewBB(-pr.BoundLeft, pr.UpperBound, pr.BoundRight, pr.LowerBound)
}

// Subscribe adds p to the simulation. Subscribing a particle twice has no effect.
// Particles with an invalid mass or a negative damping are rejected.
func (pr *Provider) Subscribe(p *Particle) error {
	if p == nil {
		return ErrNilParticle
	}
	if !validMass(p.mass) {
		return massError(p.mass)
	}
	if !(p.Damping >= 0) {
		return fmt.Errorf("%w: got %v", ErrInvalidDamping, p.Damping)
	}
	if pr.locked {
		pr.pending = append(pr.pending, pendingChange{p, true})
		return nil
	}
	pr.subscribe(p)
	return nil
}

// Unsubscribe removes p from the simulation. It is a no-op if p is not subscribed.
func (pr *Provider) Unsubscribe(p *Particle) {
	if p == nil {
		return
	}
	if pr.locked {
		pr.pending = append(pr.pending, pendingChange{p, false})
		return
	}
	pr.unsubscribe(p)
}

func (pr *Provider) subscribe(p *Particle) {
	if pr.Contains(p) {
		return
	}
	pr.particles = append(pr.particles, p)
}

func (pr *Provider) unsubscribe(p *Particle) {
	if i := slices.Index(pr.particles, p); i >= 0 {
		pr.particles = slices.Delete(pr.particles, i, i+1)
	}
}

// Contains returns true if p is subscribed.
func (pr *Provider) Contains(p *Particle) bool {
	return slices.Contains(pr.particles, p)
}

// Count returns the number of subscribed particles.
func (pr *Provider) Count() int {
	return len(pr.particles)
}

// Each calls f for each subscribed particle in registration order.
func (pr *Provider) Each(f func(p *Particle)) {
	for _, p := range pr.particles {
		f(p)
	}
}

// Ticks returns the number of finished Update calls.
func (pr *Provider) Ticks() uint64 {
	return pr.ticks
}

// IsLocked returns true from inside an event handler.
func (pr *Provider) IsLocked() bool {
	return pr.locked
}

// SetVelocity sets the velocity of the particle.
func (pr *Provider) SetVelocity(p *Particle, velocity vec.Vec2) {
	p.velocity = velocity
}

// AddVelocity adds delta to the velocity of the particle.
func (pr *Provider) AddVelocity(p *Particle, delta vec.Vec2) {
	p.velocity = p.velocity.Add(delta)
}

// Damped returns the velocity p would have after this provider's damping step.
func (pr *Provider) Damped(p *Particle) vec.Vec2 {
	return Damp(p.velocity, p.Damping)
}

// Update advances the simulation by one tick. elapsedMs is the time since the
// previous tick in milliseconds and only scales gravity.
//
// Pairs the detector could not test are skipped and reported in the returned
// error as *CollisionError values; the rest of the tick still runs.
func (pr *Provider) Update(elapsedMs float64) error {
	pr.lock()

	pr.before = pr.before[:0]
	for _, p := range pr.particles {
		pr.before = append(pr.before, pr.integrate(p, elapsedMs))
	}

	errs := pr.resolveCollisions()

	pr.references.ClearReferences()
	pr.ticks++
	pr.unlock()

	return errors.Join(errs...)
}

// integrate applies gravity, damping and the world bounds to p and returns
// its position before the update.
func (pr *Provider) integrate(p *Particle, elapsedMs float64) vec.Vec2 {
	if pr.EnableGravity && p.Gravity {
		p.velocity.Y += VelocityOfFall(pr.Gravity, elapsedMs)
	}

	before := p.position

	p.velocity = Damp(p.velocity, p.Damping)

	pos := p.position.Add(p.velocity)

	if pos.Y >= pr.LowerBound {
		pos.Y = pr.LowerBound
		pr.floorImpact(p)
	}
	if pos.Y <= pr.UpperBound {
		pos.Y = pr.UpperBound
	}
	// Crossing the left bound puts the particle on the positive side.
	if pos.X <= -pr.BoundLeft {
		pos.X = pr.BoundLeft
	}
	if pos.X >= pr.BoundRight {
		pos.X = pr.BoundRight
	}

	if pr.LowerBound-pos.Y < FloorSnapDistance {
		pos.Y = pr.LowerBound
	}
	p.position = pos
	return before
}

func (pr *Provider) floorImpact(p *Particle) {
	if p.inelastic() {
		energy := KineticEnergy(p)
		p.velocity = zero
		p.penetrate(PenetrationParams{
			InnerEnergy:       energy,
			InvolvedParticles: []*Particle{p},
		})
		return
	}
	u, _ := elasticImpact(bodyOf(p), floorBody)
	p.velocity = u
	p.recoil(RecoilParams{InvolvedParticles: []*Particle{p}})
}

func (pr *Provider) resolveCollisions() []error {
	var errs []error
	for i, a := range pr.particles {
		for j, b := range pr.particles {
			if i == j || pr.references.IsProcessed(a, b) {
				continue
			}

			hit, err := pr.detector.Intersects(a, b)
			if err != nil {
				// Mark the pair so (b, a) is not reported again this tick.
				pr.references.AddReference(CollisionReference{a, b})
				cerr := &CollisionError{A: a, B: b, Err: err}
				pr.logger().Println(cerr)
				errs = append(errs, cerr)
				continue
			}
			if !hit {
				continue
			}

			pr.references.AddReference(CollisionReference{a, b})
			pr.resolve(a, b)

			// Position correction happens on the next tick with the new velocity.
			a.position = pr.before[i]
			b.position = pr.before[j]
		}
	}
	return errs
}

func (pr *Provider) resolve(a, b *Particle) {
	if a.inelastic() && b.inelastic() {
		energyBefore := math.Abs(KineticEnergy(a) + KineticEnergy(b))
		v := nonElasticImpact(bodyOf(a), bodyOf(b), pr.MomentumConserving)
		params := PenetrationParams{
			InvolvedParticles: []*Particle{a, b},
			InnerEnergy:       math.Abs(energyBefore - kineticEnergy(a.mass, v)),
		}
		a.velocity = v
		b.velocity = v
		a.penetrate(params)
		b.penetrate(params)
		return
	}

	u1, u2 := elasticImpact(bodyOf(a), bodyOf(b))
	params := RecoilParams{InvolvedParticles: []*Particle{a, b}}
	a.velocity = u1
	b.velocity = u2
	a.recoil(params)
	b.recoil(params)
}

func (pr *Provider) lock() {
	pr.locked = true
}

// unlock applies the subscriptions queued during the tick.
func (pr *Provider) unlock() {
	pr.locked = false
	for i, change := range pr.pending {
		if change.subscribe {
			pr.subscribe(change.particle)
		} else {
			pr.unsubscribe(change.particle)
		}
		pr.pending[i] = pendingChange{}
	}
	pr.pending = pr.pending[:0]
}

func (pr *Provider) logger() *log.Logger {
	if pr.Logger != nil {
		return pr.Logger
	}
	return log.Default()
}
