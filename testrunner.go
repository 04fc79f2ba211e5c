package thumbstick

import (
	"encoding/json"
	"fmt"
	"slices"
)

// testStep represents a single action in a test script.
type testStep struct {
	Action  string  `json:"action"`
	Pointer int     `json:"pointer,omitempty"`
	X       float64 `json:"x,omitempty"`
	Y       float64 `json:"y,omitempty"`
	FromX   float64 `json:"fromX,omitempty"`
	FromY   float64 `json:"fromY,omitempty"`
	ToX     float64 `json:"toX,omitempty"`
	ToY     float64 `json:"toY,omitempty"`
	Frames  int     `json:"frames,omitempty"`
}

// testScript is the top-level JSON structure for a test script.
type testScript struct {
	Steps []testStep `json:"steps"`
}

var knownActions = map[string]bool{
	"press": true, "move": true, "release": true, "cancel": true,
	"tap": true, "drag": true, "wait": true, "drop": true, "reset": true,
}

// TestRunner plays a scripted pointer session into a Stick one frame at a
// time and records every event it fires. Pointers pressed by the script stay
// held across "wait" frames until released, cancelled, or dropped.
type TestRunner struct {
	steps  []testStep
	cursor int
	done   bool
	input  SyntheticInput
	held   []Pointer
	events []Event
}

// LoadTestScript parses a JSON test script:
//
//	{"steps": [
//		{"action": "press", "x": 100, "y": 100},
//		{"action": "drag", "fromX": 100, "fromY": 100, "toX": 300, "toY": 100, "frames": 10},
//		{"action": "wait", "frames": 3}
//	]}
func LoadTestScript(jsonData []byte) (*TestRunner, error) {
	var script testScript
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("parse test script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse test script: no steps")
	}
	for i, st := range script.Steps {
		if !knownActions[st.Action] {
			return nil, fmt.Errorf("parse test script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &TestRunner{steps: script.Steps}, nil
}

// Done reports whether all steps have been played and their frames consumed.
func (r *TestRunner) Done() bool {
	return r.done
}

// Events returns every event recorded so far.
func (r *TestRunner) Events() []Event {
	return r.events
}

// Step advances the script by one frame, ticking s once.
func (r *TestRunner) Step(s *Stick) []Event {
	if r.done {
		return nil
	}
	r.advance(s)
	evs := s.Update(r.input.Pointers())
	r.events = append(r.events, evs...)
	if r.cursor >= len(r.steps) && r.input.Pending() == 0 {
		r.done = true
	}
	return evs
}

// Run steps until the script is done and returns all recorded events.
func (r *TestRunner) Run(s *Stick) []Event {
	for !r.done {
		r.Step(s)
	}
	return r.events
}

// advance queues the next step's frames once the previous ones drained.
func (r *TestRunner) advance(s *Stick) {
	if r.input.Pending() > 0 {
		return
	}
	for r.cursor < len(r.steps) {
		st := r.steps[r.cursor]
		r.cursor++
		id := PointerID(st.Pointer)

		switch st.Action {
		case "press":
			r.inject(Pointer{ID: id, Phase: PhaseBegan, Screen: Vec2{st.X, st.Y}})
		case "move":
			r.inject(Pointer{ID: id, Phase: PhaseMoved, Screen: Vec2{st.X, st.Y}})
		case "release":
			r.inject(Pointer{ID: id, Phase: PhaseEnded, Screen: Vec2{st.X, st.Y}})
		case "cancel":
			r.inject(Pointer{ID: id, Phase: PhaseCancelled, Screen: Vec2{st.X, st.Y}})
		case "tap":
			r.inject(Pointer{ID: id, Phase: PhaseBegan, Screen: Vec2{st.X, st.Y}})
			r.inject(Pointer{ID: id, Phase: PhaseEnded, Screen: Vec2{st.X, st.Y}})
		case "drag":
			r.drag(id, Vec2{st.FromX, st.FromY}, Vec2{st.ToX, st.ToY}, st.Frames)
		case "wait":
			frames := max(st.Frames, 1)
			for i := 0; i < frames; i++ {
				r.input.InjectFrame(r.held...)
			}
		case "drop":
			r.unhold(id)
			continue
		case "reset":
			r.events = append(r.events, s.Reset()...)
			continue
		}
		return
	}
}

// inject queues a frame holding p plus every other pointer the script is
// still holding, then updates the held set from p's phase.
func (r *TestRunner) inject(p Pointer) {
	frame := make([]Pointer, 0, len(r.held)+1)
	for _, h := range r.held {
		if h.ID != p.ID {
			frame = append(frame, h)
		}
	}
	r.input.InjectFrame(append(frame, p)...)

	switch p.Phase {
	case PhaseEnded, PhaseCancelled:
		r.unhold(p.ID)
	default:
		r.unhold(p.ID)
		r.held = append(r.held, Pointer{ID: p.ID, Phase: PhaseMoved, Screen: p.Screen})
	}
}

// drag mirrors SyntheticInput.InjectDrag while keeping other pointers held.
func (r *TestRunner) drag(id PointerID, from, to Vec2, frames int) {
	if frames < 2 {
		frames = 2
	}
	r.inject(Pointer{ID: id, Phase: PhaseBegan, Screen: from})
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps+1)
		r.inject(Pointer{ID: id, Phase: PhaseMoved, Screen: from.Add(to.Sub(from).Scale(t))})
	}
	r.inject(Pointer{ID: id, Phase: PhaseEnded, Screen: to})
}

func (r *TestRunner) unhold(id PointerID) {
	r.held = slices.DeleteFunc(r.held, func(p Pointer) bool { return p.ID == id })
}
