package audio

import (
	"testing"
	"time"
)

func drain(t *testing.T, s Sound, volume float64) (count int, peak float64) {
	t.Helper()
	streamer, err := Effect(s, volume)
	if err != nil {
		t.Fatalf("Effect(%v): %v", s, err)
	}
	buf := make([][2]float64, 512)
	for {
		n, ok := streamer.Stream(buf)
		for i := 0; i < n; i++ {
			for _, v := range buf[i] {
				if v < -1 || v > 1 {
					t.Fatalf("%v sample %d out of range: %f", s, count+i, v)
				}
				if v > peak {
					peak = v
				}
				if -v > peak {
					peak = -v
				}
			}
		}
		count += n
		if !ok || n == 0 {
			break
		}
	}
	return count, peak
}

func TestEffectLengthMatchesDuration(t *testing.T) {
	for _, s := range []Sound{SoundEat, SoundDie, SoundWin} {
		count, peak := drain(t, s, 1)
		want := 0
		for _, n := range cues[s] {
			want += sampleRate.N(n.dur)
		}
		if count != want {
			t.Fatalf("%v streamed %d samples, want %d", s, count, want)
		}
		if peak < 0.5 {
			t.Fatalf("%v peak %.3f, expected an audible tone", s, peak)
		}
	}
}

func TestEffectVolume(t *testing.T) {
	_, loud := drain(t, SoundEat, 1)
	_, quiet := drain(t, SoundEat, 0.25)
	if quiet >= loud*0.5 {
		t.Fatalf("quarter volume peak %.3f not below half of full %.3f", quiet, loud)
	}
	_, silent := drain(t, SoundEat, 0)
	if silent != 0 {
		t.Fatalf("muted cue produced peak %.3f", silent)
	}
}

func TestDuration(t *testing.T) {
	if got := Duration(SoundEat); got != 50*time.Millisecond {
		t.Fatalf("eat duration %v", got)
	}
	if got := Duration(SoundDie); got != 460*time.Millisecond {
		t.Fatalf("die duration %v", got)
	}
}

func TestUnknownSound(t *testing.T) {
	if _, err := Effect(Sound(42), 1); err == nil {
		t.Fatalf("expected error for unknown sound")
	}
}

func TestPlayBeforeInitialize(t *testing.T) {
	sm := NewSoundManager(1)
	if err := sm.Play(SoundEat); err != nil {
		t.Fatalf("Play before Initialize: %v", err)
	}
	sm.Close()
}
