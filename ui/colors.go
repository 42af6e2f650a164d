package ui

import "github.com/gdamore/tcell/v2"

// RGB palette
var (
	RgbBackground   = tcell.NewRGBColor(250, 250, 250) // Page white
	RgbBannerBg     = tcell.NewRGBColor(0, 0, 0)       // Black marquee strip
	RgbBannerText   = tcell.NewRGBColor(255, 255, 255) // White
	RgbTitle        = tcell.NewRGBColor(30, 64, 175)   // Dark blue headline
	RgbText         = tcell.NewRGBColor(20, 20, 20)    // Body text
	RgbSelectedRing = tcell.NewRGBColor(30, 58, 138)   // Selection ring
	RgbButtonBg     = tcell.NewRGBColor(59, 130, 246)  // Slap button
	RgbButtonText   = tcell.NewRGBColor(255, 255, 255) // Button label
	RgbArt          = tcell.NewRGBColor(60, 60, 60)    // Idle portrait
	RgbArtHit       = tcell.NewRGBColor(220, 38, 38)   // Portrait during animation
	RgbCombo        = tcell.NewRGBColor(234, 88, 12)   // Combo multiplier
	RgbStatusBg     = tcell.NewRGBColor(229, 231, 235) // Status line
	RgbAudioMuted   = tcell.NewRGBColor(255, 0, 0)     // Bright red when muted
	RgbAudioUnmuted = tcell.NewRGBColor(0, 255, 0)     // Bright green when unmuted
)

// modeParticleColor gives each mode its own particle tint
var modeParticleColor = map[string]tcell.Color{
	"Slap":  tcell.NewRGBColor(250, 204, 21),
	"Bite":  tcell.NewRGBColor(255, 255, 255),
	"Splat": tcell.NewRGBColor(185, 28, 28),
}
