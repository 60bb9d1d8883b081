package kinetic

import (
	"math"

	"github.com/setanarut/vec"
)

// Circle is a round shape of the given radius.
type Circle struct {
	Radius float64
	// Offset of the circle center from the particle position.
	Offset vec.Vec2
}

// NewCircle returns a circle centered on the particle position.
func NewCircle(radius float64) *Circle {
	return &Circle{Radius: radius}
}

// Center returns the world center of the circle placed at pos.
func (c *Circle) Center(pos vec.Vec2) vec.Vec2 {
	return pos.Add(c.Offset)
}

// BB returns the bounds of the circle with the particle at pos.
func (c *Circle) BB(pos vec.Vec2) BB {
	return NewBBForCircle(c.Center(pos), c.Radius)
}

// Area returns the area of the circle.
func (c *Circle) Area() float64 {
	return math.Pi * c.Radius * c.Radius
}
