package thumbstick

import (
	"fmt"

	"go.uber.org/zap"
)

// Stick is a virtual joystick: a knob dragged inside a circular base by one
// pointer at a time. Drive it with Update once per frame.
type Stick struct {
	cfg     Config
	mapper  Mapper
	hit     HitTester
	tracker PointerTracker

	anchor    Vec2
	base      Vec2
	knob      Vec2
	direction Vec2

	handlers handlerRegistry
	sink     EventSink
	logger   *zap.Logger
	events   []Event

	// dispatching is set while callbacks run. Update is ignored and Reset is
	// deferred to the end of the tick until it clears.
	dispatching  bool
	resetPending bool
}

// New validates cfg and returns an idle Stick that hit-tests with hit.
// An invalid cfg is returned as an error wrapping ErrInvalidConfig.
func New(cfg Config, hit HitTester) (*Stick, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("new stick: %w", err)
	}
	if hit == nil {
		return nil, fmt.Errorf("new stick: nil hit tester")
	}
	return &Stick{
		cfg:     cfg,
		mapper:  NewMapper(cfg),
		hit:     hit,
		tracker: NewPointerTracker(),
		logger:  zap.NewNop(),
		events:  make([]Event, 0, 2),
	}, nil
}

// Update runs one tick against the current pointer snapshot and fires the
// resulting callbacks. The returned slice is reused by the next call.
//
// Calling Update from inside a callback does nothing and returns nil.
func (s *Stick) Update(pointers []Pointer) []Event {
	if s.dispatching {
		return nil
	}
	s.events = s.events[:0]
	s.step(pointers)
	if s.resetPending {
		s.release(ReasonReset)
		s.resetPending = false
	}
	return s.events
}

func (s *Stick) step(pointers []Pointer) {
	s.dispatching = true
	defer func() { s.dispatching = false }()

	d := s.tracker.Poll(pointers, s.probe)
	switch d.Kind {
	case DecisionEngage:
		s.anchor = d.Hit
		s.base = d.Hit
		s.knob = d.Hit
		s.direction = Vec2{}
		s.logger.Debug("stick engaged",
			zap.Int("pointer", int(d.Pointer.ID)),
			zap.Float64("anchorX", d.Hit.X),
			zap.Float64("anchorY", d.Hit.Y))
		s.fireEngage(d.Pointer, d.Hit)
	case DecisionMove:
		local := s.mapper.ToLocal(d.Pointer.Screen)
		s.knob, s.direction = Clamp(local, s.anchor, s.cfg.BaseRadius)
		s.fireMove(d.Pointer, s.knob, s.direction)
	case DecisionDisengage:
		s.disengage(d.Pointer, d.Reason)
	}
}

// UpdateFrom polls src and runs Update with its snapshot.
func (s *Stick) UpdateFrom(src InputSource) []Event {
	return s.Update(src.Pointers())
}

// Reset releases the tracked pointer, if any, firing a disengage with
// ReasonReset. Use it when the widget is hidden mid-drag.
//
// Called from inside a callback, Reset returns nil and the release happens
// once the current tick's callbacks finish; its disengage is then part of
// the slice that Update returns.
func (s *Stick) Reset() []Event {
	if s.dispatching {
		s.resetPending = true
		return nil
	}
	s.events = s.events[:0]
	s.release(ReasonReset)
	s.resetPending = false
	return s.events
}

// release disengages the tracked pointer, if any, outside of Poll.
func (s *Stick) release(reason DisengageReason) {
	if s.tracker.State() != StateActive {
		return
	}
	s.dispatching = true
	defer func() { s.dispatching = false }()

	id := s.tracker.ID()
	s.tracker.Reset()
	s.disengage(Pointer{ID: id}, reason)
}

func (s *Stick) probe(screen Vec2) (Vec2, bool) {
	return s.hit.HitTest(screen, s.cfg.MaxProbeDistance())
}

func (s *Stick) disengage(p Pointer, reason DisengageReason) {
	s.anchor = Vec2{}
	s.base = Vec2{}
	s.knob = Vec2{}
	s.direction = Vec2{}
	if reason == ReasonDropped {
		s.logger.Warn("tracked pointer vanished without release",
			zap.Int("pointer", int(p.ID)))
	} else {
		s.logger.Debug("stick disengaged",
			zap.Int("pointer", int(p.ID)),
			zap.Stringer("reason", reason))
	}
	s.fireDisengage(p, reason)
}

// SetLogger sets the logger used for engage/disengage tracing and the
// dropped-pointer warning. A nil logger disables logging.
func (s *Stick) SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	s.logger = l
}

// Config returns the configuration the stick was built with.
func (s *Stick) Config() Config { return s.cfg }

// Mapper returns the stick's screen-to-local mapper.
func (s *Stick) Mapper() Mapper { return s.mapper }

// State returns the tracking state.
func (s *Stick) State() TrackingState { return s.tracker.State() }

// PointerID returns the tracked pointer, or NoPointer while idle.
func (s *Stick) PointerID() PointerID { return s.tracker.ID() }

// Knob returns the knob position in local space.
func (s *Stick) Knob() Vec2 { return s.knob }

// Base returns the base position in local space. It sits on the engage point
// while active and at the origin while idle.
func (s *Stick) Base() Vec2 { return s.base }

// Direction returns the last emitted direction, or zero while idle.
func (s *Stick) Direction() Vec2 { return s.direction }
