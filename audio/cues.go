// Package audio plays short tone cues for crawler events. Audio is a
// collaborator: initialization failure disables cues without affecting
// the core.
package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// tone is a fixed-duration sine oscillator.
type tone struct {
	freq     float64
	phase    float64
	duration int
	position int
}

func newTone(freq float64, d time.Duration) beep.Streamer {
	return &tone{freq: freq, duration: sampleRate.N(d)}
}

func (o *tone) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, false
		}
		val := math.Sin(2*math.Pi*o.phase) * 0.4
		samples[i][0] = val
		samples[i][1] = val
		o.phase += o.freq / float64(sampleRate)
		if o.phase >= 1.0 {
			o.phase -= 1.0
		}
		o.position++
	}
	return len(samples), true
}

func (o *tone) Err() error { return nil }

// Player owns the speaker. A zero Player stays silent.
type Player struct {
	enabled bool
}

// NewPlayer initializes the speaker. On error the returned Player is
// valid but silent; the caller decides whether to report the error.
func NewPlayer() (*Player, error) {
	err := speaker.Init(sampleRate, sampleRate.N(time.Second/10))
	if err != nil {
		return &Player{}, err
	}
	return &Player{enabled: true}, nil
}

func (p *Player) Close() {
	if p.enabled {
		speaker.Close()
		p.enabled = false
	}
}

func (p *Player) play(freq float64, d time.Duration) {
	if !p.enabled {
		return
	}
	speaker.Play(newTone(freq, d))
}

// Backtrack marks the start of a retrace burst with a low blip.
func (p *Player) Backtrack() { p.play(330, 30*time.Millisecond) }

// Complete chimes when a traversal finishes and a new maze begins.
func (p *Player) Complete() { p.play(880, 120*time.Millisecond) }
