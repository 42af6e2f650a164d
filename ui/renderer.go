// Package ui draws the slapper screen with tcell and maps terminal input onto session actions.
package ui

import (
	"fmt"
	"math"

	"github.com/dustin/go-humanize"
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/lixenwraith/slapper/catalog"
	"github.com/lixenwraith/slapper/countdown"
	"github.com/lixenwraith/slapper/game"
)

const (
	bannerPrefix = "AYTEK'in Hayatımızdan çıkmasına son: "
	titleSuffix  = " Hayatımızdan Çıksın!"
	promptText   = "Bugün Hangi Ayteki Tokatlamak İstersin?"
	helpText     = "space/enter slap  1-3 pick  tab/m mode  s mute  q quit"

	bannerHeight  = 3
	pickerGap     = 4
	shakeOffset   = 2
	marqueeFrames = 4 // Frames per marquee column
)

// HitKind classifies what a screen cell belongs to
type HitKind int

const (
	HitNone HitKind = iota
	HitSlap         // Portrait or action button
	HitCharacter    // Character picker entry
)

// Hit is the result of a hit test
type Hit struct {
	Kind        HitKind
	CharacterID int
}

type hitBox struct {
	x0, y0, x1, y1 int // Inclusive
	hit            Hit
}

// View is everything drawn in one frame
type View struct {
	Session   game.Snapshot
	Countdown countdown.Remaining
	Muted     bool
	NoAudio   bool // Speaker failed to open, cues are dropped
}

// Renderer draws frames onto a tcell screen.
// Not safe for concurrent use, it is driven from the main loop only.
type Renderer struct {
	screen tcell.Screen
	mono   bool
	upper  cases.Caser
	frame  int
	hits   []hitBox
}

// NewRenderer creates a renderer, mono drops all colors and keeps attributes
func NewRenderer(screen tcell.Screen, mono bool) *Renderer {
	return &Renderer{
		screen: screen,
		mono:   mono,
		upper:  cases.Upper(language.Turkish),
	}
}

// Advance moves the marquee and particle phase by one frame
func (r *Renderer) Advance() {
	r.frame++
}

// Draw renders a full frame and shows it
func (r *Renderer) Draw(v View) {
	r.screen.Clear()
	r.hits = r.hits[:0]

	width, height := r.screen.Size()
	base := r.style(RgbText, RgbBackground)
	r.fill(0, 0, width, height, base)

	r.drawBanner(width, v.Countdown)

	y := bannerHeight + 1
	r.drawTitle(width, y, v.Session)
	y += 2
	r.centered(width, y, promptText, base)
	y += 2
	r.drawPicker(width, y, v.Session)
	y += 2
	y = r.drawPortrait(width, y, v.Session)
	y++
	r.drawButton(width, y, v.Session)
	y += 2
	if v.Session.ComboCount > 1 {
		r.centered(width, y, fmt.Sprintf("x%d COMBO", v.Session.ComboCount), r.style(RgbCombo, RgbBackground).Bold(true))
	}
	y++
	line := fmt.Sprintf("Bugüne kadar %s %s kere tokatlandı!", v.Session.Character.TargetName, humanize.Comma(v.Session.LifetimeCount))
	r.centered(width, y, line, base)

	r.drawStatus(width, height-1, v)
	r.screen.Show()
}

// HitTest returns what was drawn at x, y in the last frame
func (r *Renderer) HitTest(x, y int) Hit {
	for _, b := range r.hits {
		if x >= b.x0 && x <= b.x1 && y >= b.y0 && y <= b.y1 {
			return b.hit
		}
	}
	return Hit{Kind: HitNone}
}

func (r *Renderer) drawBanner(width int, rem countdown.Remaining) {
	style := r.style(RgbBannerText, RgbBannerBg)
	r.fill(0, 0, width, bannerHeight, style)

	text := bannerPrefix + countdown.Format(rem)
	textWidth := runewidth.StringWidth(text)
	cycle := width + textWidth
	if cycle <= 0 {
		return
	}

	// Frame zero starts centered, then scrolls left and wraps around
	x := (width-textWidth)/2 - (r.frame/marqueeFrames)%cycle
	for x < -textWidth {
		x += cycle
	}
	r.text(x, bannerHeight/2, text, style)
}

func (r *Renderer) drawTitle(width, y int, s game.Snapshot) {
	name := r.upper.String(s.Character.TargetName)
	total := runewidth.StringWidth(name) + runewidth.StringWidth(titleSuffix)
	x := max((width-total)/2, 0)

	x = r.text(x, y, name, r.style(RgbTitle, RgbBackground).Bold(true))
	r.text(x, y, titleSuffix, r.style(RgbText, RgbBackground))
}

func (r *Renderer) drawPicker(width, y int, s game.Snapshot) {
	chars := catalog.Characters()
	labels := make([]string, 0, len(chars))
	total := 0
	for _, c := range chars {
		label := fmt.Sprintf("[%d] %s", c.ID, c.DisplayName)
		labels = append(labels, label)
		total += runewidth.StringWidth(label)
	}
	total += pickerGap * (len(labels) - 1)

	x := max((width-total)/2, 0)
	for i, c := range chars {
		style := r.style(RgbText, RgbBackground)
		if c.ID == s.Character.ID {
			style = r.style(RgbButtonText, RgbSelectedRing).Bold(true).Reverse(r.mono)
		}
		end := r.text(x, y, labels[i], style)
		r.hits = append(r.hits, hitBox{x0: x, y0: y, x1: end - 1, y1: y, hit: Hit{Kind: HitCharacter, CharacterID: c.ID}})
		x = end + pickerGap
	}
}

// drawPortrait draws the selected character with shake and particles while animating, returns the next free row
func (r *Renderer) drawPortrait(width, y int, s game.Snapshot) int {
	art := Portrait(s.Character.ImageRef)
	artWidth := 0
	for _, line := range art {
		artWidth = max(artWidth, runewidth.StringWidth(line))
	}

	x := max((width-artWidth)/2, 0)
	style := r.style(RgbArt, RgbBackground)
	if s.AnimationActive {
		style = r.style(RgbArtHit, RgbBackground).Bold(true)
		if r.frame%2 == 0 {
			x += shakeOffset
		} else {
			x -= shakeOffset
		}
	}

	for i, line := range art {
		r.text(x, y+i, line, style)
	}
	r.hits = append(r.hits, hitBox{x0: x, y0: y, x1: x + artWidth - 1, y1: y + len(art) - 1, hit: Hit{Kind: HitSlap}})

	if s.AnimationActive {
		r.drawParticles(x+artWidth/2, y+len(art)/2, artWidth/2+3, len(art)/2+1, s)
	}
	return y + len(art)
}

// drawParticles spreads the mode icon on an ellipse around cx, cy that rotates with the frame
func (r *Renderer) drawParticles(cx, cy, rx, ry int, s game.Snapshot) {
	count := s.Mode.ParticleCount
	if count <= 0 {
		return
	}
	color, ok := modeParticleColor[s.Mode.Name]
	if !ok {
		color = RgbCombo
	}
	style := r.style(color, RgbBackground)

	phase := float64(r.frame) * 0.3
	for i := 0; i < count; i++ {
		angle := 2*math.Pi*float64(i)/float64(count) + phase
		px := cx + int(math.Round(math.Cos(angle)*float64(rx)))
		py := cy + int(math.Round(math.Sin(angle)*float64(ry)))
		r.screen.SetContent(px, py, s.Mode.Icon, nil, style)
	}
}

func (r *Renderer) drawButton(width, y int, s game.Snapshot) {
	label := fmt.Sprintf("[ %s'i Tokat Manyağı Yap! ]", s.Character.TargetName)
	x := max((width-runewidth.StringWidth(label))/2, 0)
	end := r.text(x, y, label, r.style(RgbButtonText, RgbButtonBg).Bold(true))
	r.hits = append(r.hits, hitBox{x0: x, y0: y, x1: end - 1, y1: y, hit: Hit{Kind: HitSlap}})
}

func (r *Renderer) drawStatus(width, y int, v View) {
	base := r.style(RgbText, RgbStatusBg)
	r.fill(0, y, width, 1, base)

	audioText, audioBg := " AUDIO ", RgbAudioUnmuted
	switch {
	case v.Muted:
		audioText, audioBg = " MUTED ", RgbAudioMuted
	case v.NoAudio:
		audioText, audioBg = " NO AUDIO ", RgbAudioMuted
	}
	x := r.text(0, y, audioText, r.style(tcell.ColorBlack, audioBg))

	mode := fmt.Sprintf(" %s %c ", v.Session.Mode.Name, v.Session.Mode.Icon)
	x = r.text(x, y, mode, base.Bold(true))

	if v.Session.BestCombo > 1 {
		x = r.text(x, y, fmt.Sprintf(" BEST x%d ", v.Session.BestCombo), base)
	}

	helpX := width - runewidth.StringWidth(helpText) - 1
	if helpX > x {
		r.text(helpX, y, helpText, base)
	}
}

// text draws s starting at x, clipping at the screen edges, and returns the column after it
func (r *Renderer) text(x, y int, s string, style tcell.Style) int {
	width, height := r.screen.Size()
	if y < 0 || y >= height {
		return x + runewidth.StringWidth(s)
	}
	for _, ch := range s {
		w := runewidth.RuneWidth(ch)
		if w == 0 {
			continue
		}
		if x >= 0 && x+w <= width {
			r.screen.SetContent(x, y, ch, nil, style)
		}
		x += w
	}
	return x
}

func (r *Renderer) centered(width, y int, s string, style tcell.Style) {
	r.text(max((width-runewidth.StringWidth(s))/2, 0), y, s, style)
}

func (r *Renderer) fill(x0, y0, w, h int, style tcell.Style) {
	for y := y0; y < y0+h; y++ {
		for x := x0; x < x0+w; x++ {
			r.screen.SetContent(x, y, ' ', nil, style)
		}
	}
}

func (r *Renderer) style(fg, bg tcell.Color) tcell.Style {
	if r.mono {
		return tcell.StyleDefault
	}
	return tcell.StyleDefault.Foreground(fg).Background(bg)
}
