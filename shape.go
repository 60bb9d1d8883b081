package kinetic

import (
	"fmt"

	"github.com/setanarut/vec"
)

// Shape is the collision outline of a particle, expressed relative to the
// particle's position.
//
// ShapeDetector only knows *Circle and *Box. Other implementations are valid
// values but are reported as ErrUnknownShape unless a custom Detector handles
// them.
type Shape interface {
	// BB returns the bounding box of the shape placed at pos.
	BB(pos vec.Vec2) BB
}

const (
	shapeCircle = iota
	shapeBox
	shapeTypeNum
)

// shapeOrder returns the dispatch index of s, or -1 for unknown kinds.
func shapeOrder(s Shape) int {
	switch s.(type) {
	case *Circle:
		return shapeCircle
	case *Box:
		return shapeBox
	default:
		return -1
	}
}

func shapeName(s Shape) string {
	if s == nil {
		return "<nil>"
	}
	return fmt.Sprintf("%T", s)
}
