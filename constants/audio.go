package constants

import "time"

// Audio Output
const (
	// AudioSampleRate is the speaker sample rate
	AudioSampleRate = 44100

	// AudioBufferDuration is the speaker buffer length, trades latency for underrun safety
	AudioBufferDuration = 100 * time.Millisecond

	// DefaultMasterVolume is the master gain applied to every cue (0.0-1.0)
	DefaultMasterVolume = 0.7
)

// Slap Sound Timing
const (
	SlapSoundDuration = 120 * time.Millisecond
	SlapSoundAttack   = 2 * time.Millisecond
	SlapSoundRelease  = 90 * time.Millisecond
)

// Bite Sound Timing
const (
	BiteSoundNote1Duration = 60 * time.Millisecond
	BiteSoundNote2Duration = 140 * time.Millisecond
	BiteSoundAttack        = 3 * time.Millisecond
	BiteSoundNote1Release  = 30 * time.Millisecond
	BiteSoundNote2Release  = 110 * time.Millisecond
)

// Splat Sound Timing
const (
	SplatSoundDuration = 350 * time.Millisecond
	SplatSoundAttack   = 10 * time.Millisecond
	SplatSoundRelease  = 280 * time.Millisecond
)

// Love Sound Timing
const (
	LoveSoundDuration           = 600 * time.Millisecond
	LoveSoundAttack             = 5 * time.Millisecond
	LoveSoundFundamentalRelease = 550 * time.Millisecond
	LoveSoundOvertoneRelease    = 200 * time.Millisecond
)
