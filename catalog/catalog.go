// Package catalog holds the static mode and character enumerations.
// Entries are immutable after process start; lookups never fail and fall back to the first entry.
package catalog

import (
	"time"

	"github.com/lixenwraith/slapper/constants"
	"github.com/lixenwraith/slapper/core"
)

// ModeID identifies a mode variant
type ModeID int

const (
	ModeSlap  ModeID = iota // Default slap-like mode
	ModeBite                // Aggressive mode
	ModeSplat               // Messy mode
)

// Mode is a named variant controlling timing constants, sound cue and visual theme of an action
type Mode struct {
	ID                ModeID
	Name              string
	Icon              rune
	AnimationDuration time.Duration
	ParticleCount     int
	SoundCue          core.SoundType
}

// Character is a slappable catalog entry
type Character struct {
	ID          int
	ImageRef    string // Asset key resolved by the renderer
	DisplayName string
	TargetName  string // Name used in the counter line and action label
}

var modes = []Mode{
	{
		ID:                ModeSlap,
		Name:              "Slap",
		Icon:              '✋',
		AnimationDuration: constants.SlapAnimationDuration,
		ParticleCount:     constants.SlapParticleCount,
		SoundCue:          core.SoundSlap,
	},
	{
		ID:                ModeBite,
		Name:              "Bite",
		Icon:              '🦷',
		AnimationDuration: constants.BiteAnimationDuration,
		ParticleCount:     constants.BiteParticleCount,
		SoundCue:          core.SoundBite,
	},
	{
		ID:                ModeSplat,
		Name:              "Splat",
		Icon:              '🍅',
		AnimationDuration: constants.SplatAnimationDuration,
		ParticleCount:     constants.SplatParticleCount,
		SoundCue:          core.SoundSplat,
	},
}

var characters = []Character{
	{ID: 1, ImageRef: "1.png", DisplayName: "Sudan çıkmış", TargetName: "Aytek"},
	{ID: 2, ImageRef: "2.png", DisplayName: "Zirzop", TargetName: "Aytek"},
	{ID: 3, ImageRef: "3.png", DisplayName: "Mert'i tokatla", TargetName: "Mert"},
}

// Modes returns a copy of the mode catalog in display order
func Modes() []Mode {
	out := make([]Mode, len(modes))
	copy(out, modes)
	return out
}

// Characters returns a copy of the character catalog in display order
func Characters() []Character {
	out := make([]Character, len(characters))
	copy(out, characters)
	return out
}

// DefaultMode returns the first catalog mode
func DefaultMode() Mode {
	return modes[0]
}

// DefaultCharacter returns the first catalog character
func DefaultCharacter() Character {
	return characters[0]
}

// ModeByID returns the mode with the given id, or the default mode and false when unknown
func ModeByID(id ModeID) (Mode, bool) {
	for _, m := range modes {
		if m.ID == id {
			return m, true
		}
	}
	return modes[0], false
}

// ModeByName looks up a mode by case-sensitive name, used by config
func ModeByName(name string) (Mode, bool) {
	for _, m := range modes {
		if m.Name == name {
			return m, true
		}
	}
	return modes[0], false
}

// CharacterByID returns the character with the given id, or the default character and false when unknown
func CharacterByID(id int) (Character, bool) {
	for _, c := range characters {
		if c.ID == id {
			return c, true
		}
	}
	return characters[0], false
}

// NextMode returns the mode following id in catalog order, wrapping around
func NextMode(id ModeID) Mode {
	for i, m := range modes {
		if m.ID == id {
			return modes[(i+1)%len(modes)]
		}
	}
	return modes[0]
}
