package kinetic

import "github.com/setanarut/vec"

// 16 bytes
type FColor struct {
	R, G, B, A float32
}

// Drawer renders particles. Implementations live outside the library.
type Drawer interface {
	DrawCircle(pos vec.Vec2, radius float64, fill FColor, data any)
	DrawBox(bb BB, fill FColor, data any)
	DrawDot(pos vec.Vec2, fill FColor, data any)

	ParticleColor(p *Particle, data any) FColor
	Data() any
}

// DrawParticle draws p with the drawer implementation. Particles with a nil
// or unknown shape are drawn as dots.
func DrawParticle(p *Particle, drawer Drawer) {
	data := drawer.Data()
	fill := drawer.ParticleColor(p, data)

	switch shape := p.Shape.(type) {
	case *Circle:
		drawer.DrawCircle(shape.Center(p.position), shape.Radius, fill, data)
	case *Box:
		drawer.DrawBox(shape.BB(p.position), fill, data)
	default:
		drawer.DrawDot(p.position, fill, data)
	}
}

// DrawProvider draws all particles of the provider in registration order.
func DrawProvider(pr *Provider, drawer Drawer) {
	pr.Each(func(p *Particle) {
		DrawParticle(p, drawer)
	})
}
