package audio

import (
	"github.com/lixenwraith/slapper/constants"
	"github.com/lixenwraith/slapper/core"
)

// AudioConfig holds playback settings
type AudioConfig struct {
	Enabled       bool
	MasterVolume  float64
	EffectVolumes [core.SoundTypeCount]float64
	SampleRate    int
}

// DefaultAudioConfig returns the stock settings
func DefaultAudioConfig() *AudioConfig {
	return &AudioConfig{
		Enabled:      true,
		MasterVolume: constants.DefaultMasterVolume,
		EffectVolumes: [core.SoundTypeCount]float64{
			core.SoundSlap:  1.0,
			core.SoundBite:  0.8,
			core.SoundSplat: 0.9,
			core.SoundLove:  0.5,
		},
		SampleRate: constants.AudioSampleRate,
	}
}

// Clamp forces volumes into 0.0-1.0 and a positive sample rate
func (c *AudioConfig) Clamp() {
	c.MasterVolume = clamp01(c.MasterVolume)
	for i := range c.EffectVolumes {
		c.EffectVolumes[i] = clamp01(c.EffectVolumes[i])
	}
	if c.SampleRate <= 0 {
		c.SampleRate = constants.AudioSampleRate
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
