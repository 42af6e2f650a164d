package core

// SoundType identifies one of the fixed audio cues
type SoundType int

const (
	SoundSlap  SoundType = iota // Open-palm crack, default mode
	SoundBite                   // Two-step chomp, aggressive mode
	SoundSplat                  // Wet thud, messy mode
	SoundLove                   // Chime on character selection
	SoundTypeCount
)

var soundNames = [SoundTypeCount]string{"slap", "bite", "splat", "love"}

// String returns the cue id used in config and logs
func (s SoundType) String() string {
	if s < 0 || s >= SoundTypeCount {
		return "unknown"
	}
	return soundNames[s]
}

// Valid reports whether s names a known cue
func (s SoundType) Valid() bool {
	return s >= 0 && s < SoundTypeCount
}
