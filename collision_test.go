package kinetic_test

import (
	"errors"
	"testing"

	"github.com/setanarut/kinetic"
	"github.com/setanarut/vec"
)

func place(t *testing.T, shape kinetic.Shape, pos vec.Vec2) *kinetic.Particle {
	t.Helper()
	p, err := kinetic.NewParticle(1, shape)
	if err != nil {
		t.Fatal(err)
	}
	p.SetPosition(pos)
	return p
}

func TestShapeDetector(t *testing.T) {
	tests := []struct {
		name string
		a, b *kinetic.Particle
		want bool
	}{
		{"circles overlap", place(t, kinetic.NewCircle(1), vec.Vec2{}), place(t, kinetic.NewCircle(1), vec.Vec2{X: 1.5}), true},
		{"circles apart", place(t, kinetic.NewCircle(1), vec.Vec2{}), place(t, kinetic.NewCircle(1), vec.Vec2{X: 2.5}), false},
		{"circles touching", place(t, kinetic.NewCircle(1), vec.Vec2{}), place(t, kinetic.NewCircle(1), vec.Vec2{X: 2}), false},
		{"boxes overlap", place(t, kinetic.NewBox(2, 2), vec.Vec2{}), place(t, kinetic.NewBox(2, 2), vec.Vec2{X: 1, Y: 1}), true},
		{"boxes apart", place(t, kinetic.NewBox(2, 2), vec.Vec2{}), place(t, kinetic.NewBox(2, 2), vec.Vec2{Y: 3}), false},
		{"circle in box", place(t, kinetic.NewCircle(1), vec.Vec2{}), place(t, kinetic.NewBox(4, 4), vec.Vec2{}), true},
		{"box near circle", place(t, kinetic.NewBox(2, 2), vec.Vec2{X: 1.5}), place(t, kinetic.NewCircle(1), vec.Vec2{}), true},
		// Box corner at (1, 1) is sqrt(2) away from the circle center.
		{"box corner outside circle", place(t, kinetic.NewBox(2, 2), vec.Vec2{X: 2, Y: 2}), place(t, kinetic.NewCircle(1.2), vec.Vec2{}), false},
		{"box offset", place(t, &kinetic.Box{Width: 2, Height: 2, Offset: vec.Vec2{Y: -5}}, vec.Vec2{}), place(t, kinetic.NewCircle(1), vec.Vec2{Y: -5}), true},
		{"circle offset", place(t, &kinetic.Circle{Radius: 1, Offset: vec.Vec2{X: 5}}, vec.Vec2{}), place(t, kinetic.NewCircle(1), vec.Vec2{X: 5}), true},
	}

	var d kinetic.ShapeDetector
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := d.Intersects(tt.a, tt.b)
			if err != nil {
				t.Fatal(err)
			}
			if got != tt.want {
				t.Errorf("got %v want %v", got, tt.want)
			}
			if rev, _ := d.Intersects(tt.b, tt.a); rev != got {
				t.Error("Intersects should be symmetric")
			}
		})
	}
}

func TestShapeDetectorUnknownShape(t *testing.T) {
	var d kinetic.ShapeDetector
	circle := place(t, kinetic.NewCircle(1), vec.Vec2{})
	for _, odd := range []*kinetic.Particle{place(t, hexagon{}, vec.Vec2{}), place(t, nil, vec.Vec2{})} {
		if _, err := d.Intersects(circle, odd); !errors.Is(err, kinetic.ErrUnknownShape) {
			t.Errorf("got %v want ErrUnknownShape", err)
		}
		if _, err := d.Intersects(odd, circle); !errors.Is(err, kinetic.ErrUnknownShape) {
			t.Errorf("got %v want ErrUnknownShape", err)
		}
	}
}
