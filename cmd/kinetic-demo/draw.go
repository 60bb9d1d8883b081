package main

import (
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/setanarut/kinetic"
	"github.com/setanarut/vec"
)

// termDrawer renders particles as terminal cells, one world unit per cell.
type termDrawer struct {
	screen tcell.Screen
}

func newTermDrawer(screen tcell.Screen) *termDrawer {
	return &termDrawer{screen: screen}
}

func (t *termDrawer) DrawCircle(pos vec.Vec2, radius float64, fill kinetic.FColor, _ any) {
	style := tcell.StyleDefault.Foreground(toColor(fill))
	if radius < 1 {
		t.set(pos.X, pos.Y, 'o', style)
		return
	}
	bb := kinetic.NewBBForCircle(pos, radius)
	for y := math.Floor(bb.B); y <= bb.T; y++ {
		for x := math.Floor(bb.L); x <= bb.R; x++ {
			dx, dy := x-pos.X, y-pos.Y
			if dx*dx+dy*dy <= radius*radius {
				t.set(x, y, '●', style)
			}
		}
	}
}

func (t *termDrawer) DrawBox(bb kinetic.BB, fill kinetic.FColor, _ any) {
	style := tcell.StyleDefault.Foreground(toColor(fill))
	for y := math.Round(bb.B); y <= math.Round(bb.T); y++ {
		for x := math.Round(bb.L); x <= math.Round(bb.R); x++ {
			t.set(x, y, '#', style)
		}
	}
}

func (t *termDrawer) DrawDot(pos vec.Vec2, fill kinetic.FColor, _ any) {
	t.set(pos.X, pos.Y, '.', tcell.StyleDefault.Foreground(toColor(fill)))
}

// ParticleColor fades from blue to red with speed.
func (t *termDrawer) ParticleColor(p *kinetic.Particle, _ any) kinetic.FColor {
	speed := float32(math.Min(p.Velocity().Mag()/2, 1))
	return kinetic.FColor{R: speed, G: 0.3, B: 1 - speed, A: 1}
}

func (t *termDrawer) Data() any {
	return nil
}

func (t *termDrawer) text(x, y int, s string, style tcell.Style) {
	for _, r := range s {
		t.screen.SetContent(x, y, r, nil, style)
		x++
	}
}

func (t *termDrawer) set(x, y float64, r rune, style tcell.Style) {
	cx, cy := int(math.Round(x)), int(math.Round(y))
	w, h := t.screen.Size()
	if cx < 0 || cy < 0 || cx >= w || cy >= h {
		return
	}
	t.screen.SetContent(cx, cy, r, nil, style)
}

func toColor(c kinetic.FColor) tcell.Color {
	return tcell.NewRGBColor(int32(c.R*255), int32(c.G*255), int32(c.B*255))
}
