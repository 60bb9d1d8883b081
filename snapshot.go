package kinetic

import (
	"errors"
	"io"

	"github.com/setanarut/vec"
	"github.com/vmihailenco/msgpack/v5"
)

// ParticleState is the render-relevant state of one particle.
type ParticleState struct {
	Index int     `msgpack:"i"`
	X     float64 `msgpack:"x"`
	Y     float64 `msgpack:"y"`
	VX    float64 `msgpack:"vx"`
	VY    float64 `msgpack:"vy"`
	Mass  float64 `msgpack:"m"`
}

// Position returns the state position as a vector.
func (s ParticleState) Position() vec.Vec2 {
	return vec.Vec2{X: s.X, Y: s.Y}
}

// Velocity returns the state velocity as a vector.
func (s ParticleState) Velocity() vec.Vec2 {
	return vec.Vec2{X: s.VX, Y: s.VY}
}

// Snapshot is the state of every subscribed particle after a tick.
type Snapshot struct {
	Tick      uint64          `msgpack:"t"`
	Particles []ParticleState `msgpack:"p"`
}

// Snapshot copies the current particle states, indexed by registration order.
func (pr *Provider) Snapshot() Snapshot {
	s := Snapshot{
		Tick:      pr.ticks,
		Particles: make([]ParticleState, 0, len(pr.particles)),
	}
	for i, p := range pr.particles {
		s.Particles = append(s.Particles, ParticleState{
			Index: i,
			X:     p.position.X,
			Y:     p.position.Y,
			VX:    p.velocity.X,
			VY:    p.velocity.Y,
			Mass:  p.mass,
		})
	}
	return s
}

// Recorder streams msgpack encoded snapshots to a writer.
type Recorder struct {
	enc    *msgpack.Encoder
	frames int
}

// NewRecorder returns a Recorder writing to w.
func NewRecorder(w io.Writer) *Recorder {
	return &Recorder{enc: msgpack.NewEncoder(w)}
}

// Record appends s to the stream.
func (r *Recorder) Record(s Snapshot) error {
	if err := r.enc.Encode(&s); err != nil {
		return err
	}
	r.frames++
	return nil
}

// Frames returns the number of recorded snapshots.
func (r *Recorder) Frames() int {
	return r.frames
}

// ReadSnapshots decodes a stream written by Recorder until EOF.
func ReadSnapshots(r io.Reader) ([]Snapshot, error) {
	dec := msgpack.NewDecoder(r)
	var frames []Snapshot
	for {
		var s Snapshot
		err := dec.Decode(&s)
		if errors.Is(err, io.EOF) {
			return frames, nil
		}
		if err != nil {
			return frames, err
		}
		frames = append(frames, s)
	}
}
