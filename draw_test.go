package kinetic_test

import (
	"testing"

	"github.com/setanarut/kinetic"
	"github.com/setanarut/vec"
)

type countingDrawer struct {
	circles, boxes, dots int
}

func (d *countingDrawer) DrawCircle(vec.Vec2, float64, kinetic.FColor, any) { d.circles++ }
func (d *countingDrawer) DrawBox(kinetic.BB, kinetic.FColor, any)           { d.boxes++ }
func (d *countingDrawer) DrawDot(vec.Vec2, kinetic.FColor, any)             { d.dots++ }
func (d *countingDrawer) ParticleColor(*kinetic.Particle, any) kinetic.FColor {
	return kinetic.FColor{R: 1, A: 1}
}
func (d *countingDrawer) Data() any { return nil }

func TestDrawProvider(t *testing.T) {
	pr := quietProvider()
	pr.Subscribe(place(t, kinetic.NewCircle(1), vec.Vec2{}))
	pr.Subscribe(place(t, kinetic.NewCircle(2), vec.Vec2{X: 10}))
	pr.Subscribe(place(t, kinetic.NewBox(1, 1), vec.Vec2{X: 20}))
	pr.Subscribe(place(t, hexagon{}, vec.Vec2{X: 30}))

	var d countingDrawer
	kinetic.DrawProvider(pr, &d)
	if d.circles != 2 || d.boxes != 1 || d.dots != 1 {
		t.Errorf("got %+v", d)
	}
}
