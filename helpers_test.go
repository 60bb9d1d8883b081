package kinetic_test

import (
	"io"
	"log"
	"math"
	"testing"

	"github.com/setanarut/kinetic"
	"github.com/setanarut/vec"
)

const tolerance = 1e-9

func near(a, b float64) bool {
	return math.Abs(a-b) < tolerance
}

func nearVec(a, b vec.Vec2) bool {
	return near(a.X, b.X) && near(a.Y, b.Y)
}

// newBall returns a circle particle with the given mass, radius, position and velocity.
func newBall(t *testing.T, mass, radius float64, pos, vel vec.Vec2) *kinetic.Particle {
	t.Helper()
	p, err := kinetic.NewParticle(mass, kinetic.NewCircle(radius))
	if err != nil {
		t.Fatalf("NewParticle: %v", err)
	}
	p.SetPosition(pos)
	p.SetVelocity(vel)
	return p
}

func quietProvider() *kinetic.Provider {
	pr := kinetic.NewProvider(nil)
	pr.Logger = log.New(io.Discard, "", 0)
	return pr
}
