package audio

import (
	"math"

	"github.com/gopxl/beep"
)

// ChimeGenerator sweeps a sine from one frequency to another with an exponential fade
type ChimeGenerator struct {
	sr       beep.SampleRate
	from, to float64
	phase    float64
	pos      int
}

// NewChimeGenerator creates a chime sweeping over roughly a quarter second
func NewChimeGenerator(sr beep.SampleRate, from, to float64) *ChimeGenerator {
	return &ChimeGenerator{sr: sr, from: from, to: to}
}

func (g *ChimeGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		sweep := math.Min(t/0.25, 1)
		freq := g.from + (g.to-g.from)*sweep
		g.phase += freq / float64(g.sr)
		if g.phase >= 1 {
			g.phase -= 1
		}

		sample := 0.25 * math.Exp(-t*10) * math.Sin(2*math.Pi*g.phase)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *ChimeGenerator) Err() error {
	return nil
}

// BuzzGenerator generates a low-pitch buzz sound
type BuzzGenerator struct {
	sr   beep.SampleRate
	freq float64
	pos  int
}

// NewBuzzGenerator creates a buzz sound generator
func NewBuzzGenerator(sr beep.SampleRate, freq float64) *BuzzGenerator {
	return &BuzzGenerator{
		sr:   sr,
		freq: freq,
	}
}

func (g *BuzzGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		// Fundamental plus two harmonics
		sample := 0.0
		sample += 0.3 * math.Sin(2*math.Pi*g.freq*t)
		sample += 0.15 * math.Sin(2*math.Pi*g.freq*2*t)
		sample += 0.075 * math.Sin(2*math.Pi*g.freq*3*t)

		// 20ms fade in
		envelope := math.Min(t/0.02, 1.0)
		sample *= envelope * 0.2

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *BuzzGenerator) Err() error {
	return nil
}

// DecayGenerator generates a crackling noise burst
type DecayGenerator struct {
	sr   beep.SampleRate
	pos  int
	seed int64
}

// NewDecayGenerator creates a decay sound generator; the seed fixes the noise sequence
func NewDecayGenerator(sr beep.SampleRate, seed int64) *DecayGenerator {
	return &DecayGenerator{
		sr:   sr,
		seed: seed,
	}
}

func (g *DecayGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		// Quick attack, slower decay
		envelope := math.Exp(-t * 8)

		g.seed = (g.seed*1103515245 + 12345) & 0x7fffffff
		noise := float64(g.seed)/float64(0x7fffffff)*2 - 1

		rumble := 0.3 * math.Sin(2*math.Pi*80*t)

		sample := envelope * (0.25*noise + rumble)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *DecayGenerator) Err() error {
	return nil
}
