package kinetic

import (
	"fmt"
)

// Detector decides whether two particles overlap at their current positions.
//
// An error means the pair could not be tested; the provider skips it for the
// current tick and keeps simulating.
type Detector interface {
	Intersects(a, b *Particle) (bool, error)
}

// DetectorFunc adapts an ordinary function to the Detector interface.
type DetectorFunc func(a, b *Particle) (bool, error)

// Intersects calls f(a, b).
func (f DetectorFunc) Intersects(a, b *Particle) (bool, error) {
	return f(a, b)
}

// ShapeDetector tests *Circle and *Box shapes against each other.
type ShapeDetector struct{}

type collisionFunc func(a, b *Particle) bool

// builtinCollisionFuncs is indexed by order(a) + order(b)*shapeTypeNum with
// order(a) <= order(b).
var builtinCollisionFuncs = [shapeTypeNum * shapeTypeNum]collisionFunc{
	circleToCircle,
	nil,
	circleToBox,
	boxToBox,
}

// Intersects reports whether the shapes of a and b overlap.
func (ShapeDetector) Intersects(a, b *Particle) (bool, error) {
	oa, ob := shapeOrder(a.Shape), shapeOrder(b.Shape)
	if oa < 0 {
		return false, fmt.Errorf("%w: %s", ErrUnknownShape, shapeName(a.Shape))
	}
	if ob < 0 {
		return false, fmt.Errorf("%w: %s", ErrUnknownShape, shapeName(b.Shape))
	}

	// Make sure the shape types are in order.
	if oa > ob {
		a, b = b, a
		oa, ob = ob, oa
	}
	return builtinCollisionFuncs[oa+ob*shapeTypeNum](a, b), nil
}

func circleToCircle(a, b *Particle) bool {
	c1 := a.Shape.(*Circle)
	c2 := b.Shape.(*Circle)

	mindist := c1.Radius + c2.Radius
	delta := c2.Center(b.position).Sub(c1.Center(a.position))
	return lengthSq(delta) < mindist*mindist
}

func circleToBox(a, b *Particle) bool {
	circle := a.Shape.(*Circle)
	bb := b.Shape.BB(b.position)

	center := circle.Center(a.position)
	closest := bb.ClampVect(center)
	return lengthSq(center.Sub(closest)) < circle.Radius*circle.Radius
}

func boxToBox(a, b *Particle) bool {
	return a.Shape.BB(a.position).Intersects(b.Shape.BB(b.position))
}
