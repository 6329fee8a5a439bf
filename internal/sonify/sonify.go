// Package sonify gives the splitting magnitude an audible cue: a short
// fading sine blip whose pitch rises with the splitting energy.
package sonify

import (
	"fmt"
	"sync"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/generators"
	"github.com/faiface/beep/speaker"

	"crystalviz/internal/logutil"
)

const (
	sampleRate   = beep.SampleRate(44100)
	toneDuration = 300 * time.Millisecond

	freqBase = 220.0
	freqGain = 440.0
	freqMax  = 1760.0
)

// Player plays one blip at a time. Safe for use from the game loop;
// speaker setup happens lazily on the first blip.
type Player struct {
	mu      sync.Mutex
	enabled bool
	ready   bool
}

func NewPlayer(enabled bool) *Player {
	return &Player{enabled: enabled}
}

// Toggle flips sonification on or off and reports the new state.
func (p *Player) Toggle() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.enabled = !p.enabled
	return p.enabled
}

func (p *Player) Enabled() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.enabled
}

// PlaySplitting sounds the blip for a splitting value. Errors are
// logged, not returned: audio is a courtesy, never a reason to stop
// the render loop.
func (p *Player) PlaySplitting(splitting float64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.enabled {
		return
	}
	if err := p.initLocked(); err != nil {
		logutil.Warnf("sonify: speaker unavailable: %v", err)
		p.enabled = false
		return
	}

	freq := freqBase + splitting*freqGain
	if freq > freqMax {
		freq = freqMax
	}
	tone, err := generators.SinTone(sampleRate, int(freq))
	if err != nil {
		logutil.Warnf("sonify: tone at %.0f Hz: %v", freq, err)
		return
	}

	n := sampleRate.N(toneDuration)
	speaker.Clear()
	speaker.Play(newFadeOut(beep.Take(n, tone), n))
	logutil.Debugf("sonify: blip %.0f Hz for splitting %.3f", freq, splitting)
}

func (p *Player) initLocked() error {
	if p.ready {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/20)); err != nil {
		return fmt.Errorf("init: %w", err)
	}
	p.ready = true
	return nil
}
