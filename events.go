package kinetic

// PenetrationParams is passed to a particle's penetration handler after a
// non-elastic impact.
type PenetrationParams struct {
	// InnerEnergy is the kinetic energy dissipated by the impact.
	InnerEnergy float64
	// InvolvedParticles lists the particles taking part in the impact. A floor
	// impact lists only the particle itself.
	InvolvedParticles []*Particle
}

// RecoilParams is passed to a particle's recoil handler after an elastic impact.
type RecoilParams struct {
	InvolvedParticles []*Particle
}

// PenetrationFunc is the non-elastic impact callback type.
//
// It is called synchronously from Provider.Update. Subscribe and Unsubscribe
// calls made from inside the callback are applied once the tick is finished.
type PenetrationFunc func(p *Particle, params PenetrationParams)

// RecoilFunc is the elastic impact callback type.
type RecoilFunc func(p *Particle, params RecoilParams)

func (p *Particle) penetrate(params PenetrationParams) {
	if p.OnPenetration != nil {
		p.OnPenetration(p, params)
	}
}

func (p *Particle) recoil(params RecoilParams) {
	if p.OnRecoil != nil {
		p.OnRecoil(p, params)
	}
}
