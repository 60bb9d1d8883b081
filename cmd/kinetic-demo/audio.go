package main

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate    = beep.SampleRate(44100)
	clickHz       = 880
	clickDuration = 30 * time.Millisecond
)

type audio struct {
	lastClick time.Time
}

func newAudio() (*audio, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return nil, err
	}
	return &audio{}, nil
}

// click plays a short sine tone, at most once per click duration.
func (a *audio) click() {
	now := time.Now()
	if now.Sub(a.lastClick) < clickDuration {
		return
	}
	a.lastClick = now

	sine, err := generators.SineTone(sampleRate, clickHz)
	if err != nil {
		return
	}
	speaker.Play(beep.Take(sampleRate.N(clickDuration), sine))
}

func (a *audio) close() {
	speaker.Close()
}
