package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/lixenwraith/slapper/constants"
	"github.com/lixenwraith/slapper/core"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates raw audio waves
type oscillator struct {
	freq     float64
	sweep    float64 // Hz per second, negative drops pitch
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a new oscillator for wave generation
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return NewSweep(freq, 0, duration, wave, rate)
}

// NewSweep creates an oscillator whose frequency moves by sweep Hz per second, floored at 20Hz
func NewSweep(freq, sweep float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		sweep:    sweep,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = rand.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		freq := o.freq + o.sweep*float64(o.position)/float64(o.rate)
		if freq < 20 {
			freq = 20
		}
		o.phase += freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies attack/release shaping to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	sustainSamples int
	totalSamples   int
}

// NewEnvelope creates an attack/sustain/release envelope
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	sus := total - att - rel
	if sus < 0 {
		sus = 0
	}

	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		sustainSamples: sus,
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		releaseStart := e.attackSamples + e.sustainSamples
		if e.position >= releaseStart && e.releaseSamples > 0 {
			vol = float64(e.totalSamples-e.position) / float64(e.releaseSamples)
			if vol < 0 {
				vol = 0
			}
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume wraps s with linear gain vol; math.Log2(0) is -Inf so zero maps to silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// CreateSlapSound generates a sharp crack: filtered noise burst over a falling low thump
func CreateSlapSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	crack := NewOscillator(0, constants.SlapSoundDuration, WaveNoise, rate)
	crackShaped := NewEnvelope(crack, constants.SlapSoundDuration, constants.SlapSoundAttack, constants.SlapSoundRelease, rate)

	thump := NewSweep(220, -900, constants.SlapSoundDuration, WaveSine, rate)
	thumpShaped := NewEnvelope(thump, constants.SlapSoundDuration, constants.SlapSoundAttack, constants.SlapSoundRelease, rate)

	mixed := beep.Mix(
		newVolume(crackShaped, 0.6),
		newVolume(thumpShaped, 0.5),
	)

	vol := cfg.EffectVolumes[core.SoundSlap] * cfg.MasterVolume
	return newVolume(mixed, vol)
}

// CreateBiteSound generates a two-step square chomp
func CreateBiteSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	n1 := NewOscillator(180, constants.BiteSoundNote1Duration, WaveSquare, rate)
	n1Shaped := NewEnvelope(n1, constants.BiteSoundNote1Duration, constants.BiteSoundAttack, constants.BiteSoundNote1Release, rate)

	n2 := NewSweep(140, -300, constants.BiteSoundNote2Duration, WaveSquare, rate)
	n2Shaped := NewEnvelope(n2, constants.BiteSoundNote2Duration, constants.BiteSoundAttack, constants.BiteSoundNote2Release, rate)

	sequence := beep.Seq(n1Shaped, n2Shaped)

	vol := cfg.EffectVolumes[core.SoundBite] * cfg.MasterVolume * 0.5
	return newVolume(sequence, vol)
}

// CreateSplatSound generates a wet thud: saw sweep plunging under noise
func CreateSplatSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	body := NewSweep(160, -400, constants.SplatSoundDuration, WaveSaw, rate)
	bodyShaped := NewEnvelope(body, constants.SplatSoundDuration, constants.SplatSoundAttack, constants.SplatSoundRelease, rate)

	squish := NewOscillator(0, constants.SplatSoundDuration, WaveNoise, rate)
	squishShaped := NewEnvelope(squish, constants.SplatSoundDuration, constants.SplatSoundAttack, constants.SplatSoundRelease/2, rate)

	mixed := beep.Mix(
		newVolume(bodyShaped, 0.5),
		newVolume(squishShaped, 0.35),
	)

	vol := cfg.EffectVolumes[core.SoundSplat] * cfg.MasterVolume
	return newVolume(mixed, vol)
}

// CreateLoveSound generates a soft bell for character selection
func CreateLoveSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	// Fundamental (A5)
	fund := NewOscillator(880.0, constants.LoveSoundDuration, WaveSine, rate)
	fundShaped := NewEnvelope(fund, constants.LoveSoundDuration, constants.LoveSoundAttack, constants.LoveSoundFundamentalRelease, rate)

	// Harmonic (Octave up)
	over := NewOscillator(1760.0, constants.LoveSoundDuration, WaveSine, rate)
	overShaped := NewEnvelope(over, constants.LoveSoundDuration, constants.LoveSoundAttack, constants.LoveSoundOvertoneRelease, rate)

	mixed := beep.Mix(
		newVolume(fundShaped, 0.7),
		newVolume(overShaped, 0.3),
	)

	vol := cfg.EffectVolumes[core.SoundLove] * cfg.MasterVolume
	return newVolume(mixed, vol)
}

// GetSoundEffect returns the streamer for st, nil when st is unknown
func GetSoundEffect(st core.SoundType, cfg *AudioConfig) beep.Streamer {
	switch st {
	case core.SoundSlap:
		return CreateSlapSound(cfg)
	case core.SoundBite:
		return CreateBiteSound(cfg)
	case core.SoundSplat:
		return CreateSplatSound(cfg)
	case core.SoundLove:
		return CreateLoveSound(cfg)
	default:
		return nil
	}
}
