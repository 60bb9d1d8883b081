package kinetic

import "github.com/setanarut/vec"

// Box is an axis-aligned rectangle centered on the particle position plus Offset.
type Box struct {
	Width, Height float64
	Offset        vec.Vec2
}

// NewBox returns a box centered on the particle position.
func NewBox(width, height float64) *Box {
	return &Box{Width: width, Height: height}
}

// BB returns the box bounds with the particle at pos.
func (b *Box) BB(pos vec.Vec2) BB {
	return NewBBForExtents(pos, b.Width/2, b.Height/2).Offset(b.Offset)
}
