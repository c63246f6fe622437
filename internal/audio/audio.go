package audio

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/generators"
	"github.com/gopxl/beep/v2/speaker"
)

const (
	sampleRate = beep.SampleRate(44100)
	volume     = 0.2
)

// Waveform selects the tone shape
type Waveform int

const (
	Sine Waveform = iota
	Square
	Triangle
	Sawtooth
)

func (w Waveform) String() string {
	switch w {
	case Sine:
		return "sine"
	case Square:
		return "square"
	case Triangle:
		return "triangle"
	case Sawtooth:
		return "sawtooth"
	}
	return "unknown"
}

// Sink plays short tones. Calls never block and never fail.
type Sink interface {
	PlayTone(freq float64, duration time.Duration, w Waveform)
	Close()
}

// Nop is a silent sink
type Nop struct{}

func (Nop) PlayTone(float64, time.Duration, Waveform) {}
func (Nop) Close()                                    {}

// Speaker plays tones through the system audio device
type Speaker struct {
	mu     sync.Mutex
	closed bool
}

// NewSpeaker initializes the audio device. On error the caller should fall
// back to Nop; the game works without sound.
func NewSpeaker() (*Speaker, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/30)); err != nil {
		return nil, err
	}
	return &Speaker{}, nil
}

// PlayTone queues a tone on the mixer and returns immediately
func (s *Speaker) PlayTone(freq float64, duration time.Duration, w Waveform) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed || freq <= 0 || duration <= 0 {
		return
	}
	if st := Tone(freq, duration, w); st != nil {
		speaker.Play(st)
	}
}

// Close shuts down the audio system
func (s *Speaker) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.closed {
		speaker.Close()
		s.closed = true
	}
}

// Tone builds a finite streamer for the given waveform
func Tone(freq float64, duration time.Duration, w Waveform) beep.Streamer {
	n := sampleRate.N(duration)
	if w == Sine {
		sine, err := generators.SineTone(sampleRate, freq)
		if err != nil {
			return nil
		}
		return beep.Take(n, scaled(sine))
	}
	return periodic(freq, n, shapes[w])
}

// shapes map a phase in [0, 1) to an amplitude in [-1, 1]
var shapes = map[Waveform]func(phase float64) float64{
	Square: func(p float64) float64 {
		if p < 0.5 {
			return 1
		}
		return -1
	},
	Triangle: func(p float64) float64 {
		return 1 - 4*math.Abs(p-0.5)
	},
	Sawtooth: func(p float64) float64 {
		return 2*p - 1
	},
}

// periodic generates numSamples of a waveform described by shape
func periodic(freq float64, numSamples int, shape func(float64) float64) beep.Streamer {
	if shape == nil {
		shape = shapes[Square]
	}
	phase := 0.0
	phaseStep := freq / float64(sampleRate)

	return beep.StreamerFunc(func(samples [][2]float64) (n int, ok bool) {
		for i := range samples {
			if numSamples <= 0 {
				return i, i > 0
			}
			val := shape(phase) * volume
			samples[i][0] = val
			samples[i][1] = val
			phase = math.Mod(phase+phaseStep, 1.0)
			numSamples--
		}
		return len(samples), true
	})
}

// scaled lowers a full-scale generator to the sink volume
func scaled(s beep.Streamer) beep.Streamer {
	return beep.StreamerFunc(func(samples [][2]float64) (n int, ok bool) {
		n, ok = s.Stream(samples)
		for i := 0; i < n; i++ {
			samples[i][0] *= volume
			samples[i][1] *= volume
		}
		return n, ok
	})
}
