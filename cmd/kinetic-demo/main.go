package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/setanarut/kinetic"
	"github.com/setanarut/vec"
)

const (
	logDir      = "logs"
	logFileName = "kinetic-demo.log"
)

var (
	countFlag      = flag.Int("n", 12, "number of particles")
	gravityFlag    = flag.Float64("g", 2, "gravity in cells per second squared")
	elasticityFlag = flag.Float64("elasticity", 0.7, "particle elasticity, 0 for sticky particles")
	dampingFlag    = flag.Float64("damping", 0.05, "particle damping")
	fpsFlag        = flag.Int("fps", 60, "ticks per second")
	recordFlag     = flag.String("record", "", "write msgpack snapshots to this file")
	soundFlag      = flag.Bool("sound", false, "play a click on every bounce")
	momentumFlag   = flag.Bool("momentum", false, "use momentum conserving non-elastic impacts")
	debugFlag      = flag.Bool("debug", false, "write logs to "+filepath.Join(logDir, logFileName))
)

type Demo struct {
	screen   tcell.Screen
	provider *kinetic.Provider
	loop     *kinetic.Loop
	drawer   *termDrawer
	audio    *audio
	recorder *kinetic.Recorder

	bounces int
}

func main() {
	flag.Parse()

	logFile := setupLogging(*debugFlag)
	if logFile != nil {
		defer logFile.Close()
	}

	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// setupLogging discards log output unless debug is set, in which case it
// appends to logs/kinetic-demo.log. The returned file must be closed by the caller.
func setupLogging(debug bool) *os.File {
	if !debug {
		log.SetOutput(io.Discard)
		return nil
	}
	if err := os.MkdirAll(logDir, 0o755); err != nil {
		log.SetOutput(io.Discard)
		return nil
	}
	f, err := os.OpenFile(filepath.Join(logDir, logFileName), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		log.SetOutput(io.Discard)
		return nil
	}
	log.SetOutput(f)
	return f
}

func run() error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	d := NewDemo(screen)

	if *soundFlag {
		a, err := newAudio()
		if err != nil {
			// Non-fatal, the demo runs without sound
			log.Printf("Audio initialization failed: %v", err)
		} else {
			d.audio = a
			defer a.close()
		}
	}

	if *recordFlag != "" {
		f, err := os.Create(*recordFlag)
		if err != nil {
			return err
		}
		defer f.Close()
		d.recorder = kinetic.NewRecorder(f)
		d.loop.OnTick = d.recorder.Record
	}

	d.spawn(*countFlag, rand.New(rand.NewSource(time.Now().UnixNano())))
	d.loop.Interval = time.Second / time.Duration(max(*fpsFlag, 1))
	d.run()

	if d.recorder != nil {
		log.Printf("recorded %d frames to %s", d.recorder.Frames(), *recordFlag)
	}
	return nil
}

// NewDemo builds a provider sized to the screen.
func NewDemo(screen tcell.Screen) *Demo {
	provider := kinetic.NewProvider(nil)
	provider.EnableGravity = true
	provider.Gravity = *gravityFlag
	provider.MomentumConserving = *momentumFlag
	provider.Logger = log.Default()

	d := &Demo{
		screen:   screen,
		provider: provider,
		drawer:   newTermDrawer(screen),
	}
	d.loop = &kinetic.Loop{
		Provider: provider,
		Clock:    kinetic.SystemClock{},
		OnError: func(err error) {
			log.Printf("tick %d: %v", provider.Ticks(), err)
		},
	}
	d.resize()
	return d
}

// resize maps the world bounds onto the terminal cells. A left bound of zero
// clamps X at the left edge.
func (d *Demo) resize() {
	w, h := d.screen.Size()
	d.provider.BoundLeft = 0
	d.provider.BoundRight = float64(w - 1)
	d.provider.UpperBound = 0
	d.provider.LowerBound = float64(h - 1)
}

// pollEvents forwards screen events to ch until the screen is finalized.
func pollEvents(screen tcell.Screen, ch chan<- tcell.Event) {
	for {
		ev := screen.PollEvent()
		if ev == nil {
			return
		}
		ch <- ev
	}
}

func (d *Demo) spawn(n int, rng *rand.Rand) {
	bounds := d.provider.Bounds()
	for range n {
		shape := kinetic.NewCircle(0.5 + rng.Float64())
		p, err := kinetic.NewParticle(shape.Area(), shape)
		if err != nil {
			log.Printf("spawn: %v", err)
			continue
		}
		p.Elasticity = *elasticityFlag
		p.Damping = *dampingFlag
		p.SetPosition(vec.Vec2{
			X: bounds.L + rng.Float64()*bounds.Width(),
			Y: bounds.B + rng.Float64()*bounds.Height()/2,
		})
		p.SetVelocity(vec.Vec2{X: rng.Float64()*2 - 1, Y: rng.Float64() - 0.5})
		p.OnRecoil = d.onRecoil
		if err := d.provider.Subscribe(p); err != nil {
			log.Printf("spawn: %v", err)
		}
	}
}

func (d *Demo) onRecoil(p *kinetic.Particle, params kinetic.RecoilParams) {
	d.bounces++
	// A pair reports the bounce on both particles, click once.
	if d.audio != nil && params.InvolvedParticles[0] == p {
		d.audio.click()
	}
}

func (d *Demo) handleInput(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
			(ev.Key() == tcell.KeyRune && ev.Rune() == 'q') {
			return false
		}
		if ev.Key() == tcell.KeyRune {
			switch ev.Rune() {
			case ' ':
				d.provider.Each(func(p *kinetic.Particle) {
					d.provider.AddVelocity(p, vec.Vec2{Y: -2})
				})
			case 'g':
				d.provider.EnableGravity = !d.provider.EnableGravity
			}
		}
	case *tcell.EventResize:
		d.screen.Sync()
		d.resize()
	}
	return true
}

func (d *Demo) run() {
	ticker := time.NewTicker(d.loop.Interval)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go pollEvents(d.screen, eventChan)

	for {
		select {
		case ev := <-eventChan:
			if !d.handleInput(ev) {
				return
			}
		case <-ticker.C:
			if err := d.loop.Step(); err != nil {
				log.Printf("step: %v", err)
				return
			}
			d.draw()
		}
	}
}

func (d *Demo) draw() {
	d.screen.Clear()
	kinetic.DrawProvider(d.provider, d.drawer)
	status := fmt.Sprintf(" tick %d  particles %d  bounces %d  gravity %v  [space] kick [g] gravity [q] quit ",
		d.provider.Ticks(), d.provider.Count(), d.bounces, d.provider.EnableGravity)
	d.drawer.text(0, 0, status, tcell.StyleDefault.Reverse(true))
	d.screen.Show()
}
