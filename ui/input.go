package ui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/slapper/catalog"
	"github.com/lixenwraith/slapper/game"
)

// Actions is the session surface driven by input
type Actions interface {
	PerformAction() game.Snapshot
	SelectCharacter(id int) catalog.Character
	CycleMode() catalog.Mode
}

// Muter toggles audio output and reports the new on state
type Muter interface {
	ToggleMute() bool
}

// HitTester resolves mouse coordinates against the last drawn frame
type HitTester interface {
	HitTest(x, y int) Hit
}

// InputHandler processes user input events
type InputHandler struct {
	actions Actions
	muter   Muter
	hits    HitTester

	// OnResize is called on terminal resize when set
	OnResize func()

	lastButtons tcell.ButtonMask
}

// NewInputHandler creates a new input handler, muter may be nil
func NewInputHandler(actions Actions, muter Muter, hits HitTester) *InputHandler {
	return &InputHandler{
		actions: actions,
		muter:   muter,
		hits:    hits,
	}
}

// HandleEvent processes a tcell event and returns false if the program should exit
func (h *InputHandler) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return h.handleKeyEvent(ev)
	case *tcell.EventMouse:
		h.handleMouseEvent(ev)
	case *tcell.EventResize:
		if h.OnResize != nil {
			h.OnResize()
		}
	}
	return true
}

// handleKeyEvent processes keyboard events
func (h *InputHandler) handleKeyEvent(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyCtrlC, tcell.KeyEscape:
		return false
	case tcell.KeyEnter:
		h.actions.PerformAction()
		return true
	case tcell.KeyTab:
		h.actions.CycleMode()
		return true
	case tcell.KeyRune:
	default:
		return true
	}

	switch r := ev.Rune(); r {
	case 'q', 'Q':
		return false
	case ' ':
		h.actions.PerformAction()
	case 'm', 'M':
		h.actions.CycleMode()
	case 's', 'S':
		if h.muter != nil {
			h.muter.ToggleMute()
		}
	default:
		if r >= '1' && r <= '9' {
			id := int(r - '0')
			if _, ok := catalog.CharacterByID(id); ok {
				h.actions.SelectCharacter(id)
			}
		}
	}
	return true
}

// handleMouseEvent reacts to primary button presses only, drags and releases are ignored
func (h *InputHandler) handleMouseEvent(ev *tcell.EventMouse) {
	buttons := ev.Buttons()
	pressed := buttons&tcell.Button1 != 0 && h.lastButtons&tcell.Button1 == 0
	h.lastButtons = buttons
	if !pressed || h.hits == nil {
		return
	}

	x, y := ev.Position()
	switch hit := h.hits.HitTest(x, y); hit.Kind {
	case HitSlap:
		h.actions.PerformAction()
	case HitCharacter:
		h.actions.SelectCharacter(hit.CharacterID)
	}
}
