package thumbstick

// EngageContext is passed to OnEngage callbacks.
type EngageContext struct {
	Stick     *Stick
	PointerID PointerID
	Screen    Vec2
	// Anchor is the local point the pointer touched. The base is centered on
	// it until the stick disengages.
	Anchor Vec2
}

// MoveContext is passed to OnMove callbacks.
type MoveContext struct {
	Stick     *Stick
	PointerID PointerID
	Screen    Vec2
	// Knob is the clamped knob position in local space.
	Knob Vec2
	// Direction has magnitude in [0, 1]; 1 means the knob is on the rim.
	Direction Vec2
}

// DisengageContext is passed to OnDisengage callbacks.
type DisengageContext struct {
	Stick     *Stick
	PointerID PointerID
	Reason    DisengageReason
}

// Event is the flat record of one notification. Update returns the tick's
// events in firing order and forwards each to the EventSink.
type Event struct {
	Type      EventType
	PointerID PointerID
	Screen    Vec2
	Anchor    Vec2 // EventEngage
	Knob      Vec2 // EventMove
	Direction Vec2 // EventMove
	Reason    DisengageReason
}

// EventSink receives every event a Stick fires, after the callbacks.
// The ecs package bridges it into a Donburi world.
type EventSink interface {
	EmitEvent(event Event)
}

// --- Handler registry ---

type engageHandler struct {
	id uint32
	fn func(EngageContext)
}

type moveHandler struct {
	id uint32
	fn func(MoveContext)
}

type disengageHandler struct {
	id uint32
	fn func(DisengageContext)
}

type handlerRegistry struct {
	engage    []engageHandler
	move      []moveHandler
	disengage []disengageHandler
	nextID    uint32
}

// CallbackHandle allows removing a registered callback.
type CallbackHandle struct {
	id    uint32
	reg   *handlerRegistry
	event EventType
}

// Remove unregisters this callback so it no longer fires.
// Removing twice, or removing a zero handle, is a no-op.
func (h CallbackHandle) Remove() {
	if h.reg == nil {
		return
	}
	switch h.event {
	case EventEngage:
		h.reg.engage = removeHandler(h.reg.engage, h.id, func(e engageHandler) uint32 { return e.id })
	case EventMove:
		h.reg.move = removeHandler(h.reg.move, h.id, func(e moveHandler) uint32 { return e.id })
	case EventDisengage:
		h.reg.disengage = removeHandler(h.reg.disengage, h.id, func(e disengageHandler) uint32 { return e.id })
	}
}

// removeHandler returns s without the handler id. The result never shares
// s's backing array, so a dispatch loop already ranging over s is unaffected.
func removeHandler[T any](s []T, id uint32, idOf func(T) uint32) []T {
	for i := range s {
		if idOf(s[i]) == id {
			return append(s[:i:i], s[i+1:]...)
		}
	}
	return s
}

// OnEngage registers a callback fired once when a pointer grabs the stick.
func (s *Stick) OnEngage(fn func(EngageContext)) CallbackHandle {
	s.handlers.nextID++
	id := s.handlers.nextID
	s.handlers.engage = append(s.handlers.engage, engageHandler{id: id, fn: fn})
	return CallbackHandle{id: id, reg: &s.handlers, event: EventEngage}
}

// OnMove registers a callback fired every tick the stick is held, even when
// the direction did not change.
func (s *Stick) OnMove(fn func(MoveContext)) CallbackHandle {
	s.handlers.nextID++
	id := s.handlers.nextID
	s.handlers.move = append(s.handlers.move, moveHandler{id: id, fn: fn})
	return CallbackHandle{id: id, reg: &s.handlers, event: EventMove}
}

// OnDisengage registers a callback fired once when the stick returns to idle.
func (s *Stick) OnDisengage(fn func(DisengageContext)) CallbackHandle {
	s.handlers.nextID++
	id := s.handlers.nextID
	s.handlers.disengage = append(s.handlers.disengage, disengageHandler{id: id, fn: fn})
	return CallbackHandle{id: id, reg: &s.handlers, event: EventDisengage}
}

// SetEventSink sets the optional sink every event is forwarded to.
func (s *Stick) SetEventSink(sink EventSink) {
	s.sink = sink
}

// --- Event dispatch ---

func (s *Stick) fireEngage(p Pointer, anchor Vec2) {
	ctx := EngageContext{Stick: s, PointerID: p.ID, Screen: p.Screen, Anchor: anchor}
	for _, h := range s.handlers.engage {
		h.fn(ctx)
	}
	s.emit(Event{Type: EventEngage, PointerID: p.ID, Screen: p.Screen, Anchor: anchor})
}

func (s *Stick) fireMove(p Pointer, knob, dir Vec2) {
	ctx := MoveContext{Stick: s, PointerID: p.ID, Screen: p.Screen, Knob: knob, Direction: dir}
	for _, h := range s.handlers.move {
		h.fn(ctx)
	}
	s.emit(Event{Type: EventMove, PointerID: p.ID, Screen: p.Screen, Knob: knob, Direction: dir})
}

func (s *Stick) fireDisengage(p Pointer, reason DisengageReason) {
	ctx := DisengageContext{Stick: s, PointerID: p.ID, Reason: reason}
	for _, h := range s.handlers.disengage {
		h.fn(ctx)
	}
	s.emit(Event{Type: EventDisengage, PointerID: p.ID, Screen: p.Screen, Reason: reason})
}

func (s *Stick) emit(e Event) {
	s.events = append(s.events, e)
	if s.sink != nil {
		s.sink.EmitEvent(e)
	}
}
