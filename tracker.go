package thumbstick

// DecisionKind is what a PointerTracker decided for one tick.
type DecisionKind uint8

const (
	DecisionNone      DecisionKind = iota // nothing to do this tick
	DecisionEngage                        // a began pointer hit the widget
	DecisionMove                          // the tracked pointer is still down
	DecisionDisengage                     // the tracked pointer let go or vanished
)

// Decision is the result of PointerTracker.Poll.
type Decision struct {
	Kind DecisionKind
	// Pointer is the engaging or tracked pointer record. For a dropped pointer
	// only ID is set.
	Pointer Pointer
	// Hit is the local hit point (DecisionEngage only).
	Hit Vec2
	// Reason is set for DecisionDisengage.
	Reason DisengageReason
}

// PointerTracker owns the identity of the one pointer a stick follows.
// The zero value is an idle tracker.
type PointerTracker struct {
	state TrackingState
	id    PointerID
}

// NewPointerTracker returns an idle tracker.
func NewPointerTracker() PointerTracker {
	return PointerTracker{state: StateIdle, id: NoPointer}
}

// State returns the current tracking state.
func (t *PointerTracker) State() TrackingState { return t.state }

// ID returns the tracked pointer, or NoPointer while idle.
func (t *PointerTracker) ID() PointerID {
	if t.state == StateIdle {
		return NoPointer
	}
	return t.id
}

// Reset forces the tracker back to idle.
func (t *PointerTracker) Reset() {
	t.state = StateIdle
	t.id = NoPointer
}

// Poll runs one tick of the tracking state machine.
//
// While idle, probe is called for each began pointer in order and the first
// hit engages. While active, probe is never called: the tracked pointer is
// matched by ID, not by its index in pointers.
func (t *PointerTracker) Poll(pointers []Pointer, probe func(screen Vec2) (Vec2, bool)) Decision {
	if t.state == StateIdle {
		for _, p := range pointers {
			if p.Phase != PhaseBegan {
				continue
			}
			if hit, ok := probe(p.Screen); ok {
				t.state = StateActive
				t.id = p.ID
				return Decision{Kind: DecisionEngage, Pointer: p, Hit: hit}
			}
		}
		return Decision{}
	}

	tracked := -1
	for i := range pointers {
		p := &pointers[i]
		if p.ID != t.id {
			continue
		}
		switch p.Phase {
		case PhaseEnded:
			return t.disengage(*p, ReasonReleased)
		case PhaseCancelled:
			return t.disengage(*p, ReasonCancelled)
		}
		if tracked < 0 {
			tracked = i
		}
	}

	if tracked < 0 {
		return t.disengage(Pointer{ID: t.id}, ReasonDropped)
	}
	return Decision{Kind: DecisionMove, Pointer: pointers[tracked]}
}

func (t *PointerTracker) disengage(p Pointer, reason DisengageReason) Decision {
	t.Reset()
	return Decision{Kind: DecisionDisengage, Pointer: p, Reason: reason}
}

// MouseTracker synthesizes pointer records for a single mouse button.
type MouseTracker struct {
	down bool
}

// Record converts the current button state into a MousePointer record:
// a press is PhaseBegan, a hold is PhaseMoved, and a release is PhaseEnded at
// the given position. ok is false while the button stays up.
func (m *MouseTracker) Record(down bool, pos Vec2) (p Pointer, ok bool) {
	wasDown := m.down
	m.down = down
	switch {
	case down && !wasDown:
		return Pointer{ID: MousePointer, Phase: PhaseBegan, Screen: pos}, true
	case down && wasDown:
		return Pointer{ID: MousePointer, Phase: PhaseMoved, Screen: pos}, true
	case !down && wasDown:
		return Pointer{ID: MousePointer, Phase: PhaseEnded, Screen: pos}, true
	}
	return Pointer{}, false
}

// Down reports whether the button was held at the last Record call.
func (m *MouseTracker) Down() bool { return m.down }
