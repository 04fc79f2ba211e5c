package thumbstick

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// InputMode selects which Ebitengine devices an EbitenInput reads.
type InputMode uint8

const (
	ModeAuto  InputMode = iota // touches and the left mouse button
	ModeTouch                  // touches only, also for remote-testing a touch build on desktop
	ModeMouse                  // left mouse button only
)

// EbitenInput is an InputSource that polls Ebitengine touch and mouse state.
// Call Pointers from the game's Update, once per tick.
type EbitenInput struct {
	Mode InputMode
	// ViewportHeight is used to flip Ebitengine's top-left origin.
	ViewportHeight float64

	mouse MouseTracker

	touchIDs    []ebiten.TouchID
	pressedIDs  []ebiten.TouchID
	releasedIDs []ebiten.TouchID
	held        []touchSample
	released    []touchSample
	out         []Pointer
}

// NewEbitenInput returns an EbitenInput sized for cfg's viewport.
func NewEbitenInput(cfg Config, mode InputMode) *EbitenInput {
	return &EbitenInput{Mode: mode, ViewportHeight: cfg.ViewportHeight}
}

// Pointers implements InputSource.
func (e *EbitenInput) Pointers() []Pointer {
	e.out = e.out[:0]
	if e.Mode != ModeMouse {
		e.pollTouches()
		e.out = appendTouchPointers(e.out, e.held, e.released)
	}
	if e.Mode != ModeTouch {
		x, y := ebiten.CursorPosition()
		down := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
		if p, ok := e.mouse.Record(down, flipY(float64(x), float64(y), e.ViewportHeight)); ok {
			e.out = append(e.out, p)
		}
	}
	return e.out
}

func (e *EbitenInput) pollTouches() {
	e.touchIDs = ebiten.AppendTouchIDs(e.touchIDs[:0])
	e.pressedIDs = inpututil.AppendJustPressedTouchIDs(e.pressedIDs[:0])
	e.releasedIDs = inpututil.AppendJustReleasedTouchIDs(e.releasedIDs[:0])

	e.held = appendTouchSamples(e.held[:0], e.touchIDs, e.pressedIDs, ebiten.TouchPosition, e.ViewportHeight)
	e.released = appendTouchSamples(e.released[:0], e.releasedIDs, nil, inpututil.TouchPositionInPreviousTick, e.ViewportHeight)
}
