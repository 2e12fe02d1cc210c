package audio

import (
	"fmt"
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
)

const sampleRate = beep.SampleRate(44100)

// Sound identifies one of the game's cues.
type Sound int

const (
	SoundEat Sound = iota
	SoundDie
	SoundWin
)

func (s Sound) String() string {
	switch s {
	case SoundEat:
		return "eat"
	case SoundDie:
		return "die"
	case SoundWin:
		return "win"
	}
	return fmt.Sprintf("sound(%d)", int(s))
}

type note struct {
	freq float64
	dur  time.Duration
}

var cues = map[Sound][]note{
	SoundEat: {{880, 50 * time.Millisecond}},
	SoundDie: {{392, 120 * time.Millisecond}, {262, 120 * time.Millisecond}, {196, 220 * time.Millisecond}},
	SoundWin: {{523.25, 90 * time.Millisecond}, {659.25, 90 * time.Millisecond}, {783.99, 90 * time.Millisecond}, {1046.5, 200 * time.Millisecond}},
}

// Duration reports how long the cue plays.
func Duration(s Sound) time.Duration {
	var d time.Duration
	for _, n := range cues[s] {
		d += n.dur
	}
	return d
}

// Effect builds a fresh streamer for the cue at the given volume in [0, 1].
func Effect(s Sound, volume float64) (beep.Streamer, error) {
	notes, ok := cues[s]
	if !ok {
		return nil, fmt.Errorf("audio: unknown %v", s)
	}
	parts := make([]beep.Streamer, 0, len(notes))
	for _, n := range notes {
		tone, err := generators.SineTone(sampleRate, n.freq)
		if err != nil {
			return nil, fmt.Errorf("audio: %v tone %.1fHz: %w", s, n.freq, err)
		}
		parts = append(parts, beep.Take(sampleRate.N(n.dur), tone))
	}
	return withVolume(beep.Seq(parts...), volume), nil
}

// math.Log2(0) is -Inf so zero volume is expressed as Silent.
func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(math.Min(vol, 1))}
}
