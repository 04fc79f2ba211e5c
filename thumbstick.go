package thumbstick

import "math"

// Vec2 is a 2D vector used for screen positions, local positions, and
// directions throughout the API.
type Vec2 struct {
	X, Y float64
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }

// Scale returns v * k.
func (v Vec2) Scale(k float64) Vec2 { return Vec2{v.X * k, v.Y * k} }

// LenSq returns the squared length of v.
func (v Vec2) LenSq() float64 { return v.X*v.X + v.Y*v.Y }

// Len returns the length of v.
func (v Vec2) Len() float64 { return math.Sqrt(v.LenSq()) }

// Normalize returns the unit vector in the direction of v.
// The zero vector normalizes to the zero vector.
func (v Vec2) Normalize() Vec2 {
	l := v.Len()
	if l == 0 {
		return Vec2{}
	}
	return Vec2{v.X / l, v.Y / l}
}

// isFinite reports whether both components are neither NaN nor infinite.
func (v Vec2) isFinite() bool {
	return isFinite(v.X) && isFinite(v.Y)
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// PointerID identifies a platform pointer: the mouse or a single finger.
type PointerID int

const (
	// NoPointer is the sentinel identity used while no pointer is tracked.
	NoPointer PointerID = -1
	// MousePointer is the synthetic identity assigned to mouse input.
	MousePointer PointerID = 0
)

// Phase is the lifecycle stage of a pointer within one tick.
type Phase uint8

const (
	PhaseBegan     Phase = iota // pointer touched down this tick
	PhaseMoved                  // pointer is held (moved or not)
	PhaseEnded                  // pointer lifted this tick
	PhaseCancelled              // platform cancelled the pointer this tick
)

// String returns the lower-case phase name.
func (p Phase) String() string {
	switch p {
	case PhaseBegan:
		return "began"
	case PhaseMoved:
		return "moved"
	case PhaseEnded:
		return "ended"
	case PhaseCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// Pointer is one pointer record of an input snapshot. Screen is measured in
// pixels from the bottom-left corner of the viewport, with Y increasing upward.
type Pointer struct {
	ID     PointerID
	Phase  Phase
	Screen Vec2
}

// TrackingState is the state of a Stick's pointer tracking.
type TrackingState uint8

const (
	StateIdle   TrackingState = iota // no pointer tracked
	StateActive                      // a pointer is dragging the knob
)

// String returns "idle" or "active".
func (s TrackingState) String() string {
	if s == StateActive {
		return "active"
	}
	return "idle"
}

// EventType identifies a kind of joystick event.
type EventType uint8

const (
	EventEngage    EventType = iota // fires when a pointer grabs the stick
	EventMove                       // fires each tick while the stick is held
	EventDisengage                  // fires when the tracked pointer lets go
)

// String returns the lower-case event name.
func (e EventType) String() string {
	switch e {
	case EventEngage:
		return "engage"
	case EventMove:
		return "move"
	case EventDisengage:
		return "disengage"
	default:
		return "unknown"
	}
}

// DisengageReason tells why the stick went back to idle.
type DisengageReason uint8

const (
	ReasonNone      DisengageReason = iota // not a disengage
	ReasonReleased                         // tracked pointer reported PhaseEnded
	ReasonCancelled                        // tracked pointer reported PhaseCancelled
	ReasonDropped                          // tracked pointer vanished from the snapshot
	ReasonReset                            // host called Stick.Reset
)

// String returns the lower-case reason name.
func (r DisengageReason) String() string {
	switch r {
	case ReasonReleased:
		return "released"
	case ReasonCancelled:
		return "cancelled"
	case ReasonDropped:
		return "dropped"
	case ReasonReset:
		return "reset"
	default:
		return "none"
	}
}

// Snap selects the viewport corner a joystick is placed in.
type Snap uint8

const (
	SnapLeftBottom Snap = iota // default
	SnapLeftTop
	SnapRightBottom
	SnapRightTop
)

// String returns the snap name used in layout files.
func (s Snap) String() string {
	switch s {
	case SnapLeftTop:
		return "leftTop"
	case SnapRightBottom:
		return "rightBottom"
	case SnapRightTop:
		return "rightTop"
	default:
		return "leftBottom"
	}
}

// ParseSnap converts a layout-file snap name into a Snap.
func ParseSnap(name string) (Snap, bool) {
	switch name {
	case "leftBottom", "":
		return SnapLeftBottom, true
	case "leftTop":
		return SnapLeftTop, true
	case "rightBottom":
		return SnapRightBottom, true
	case "rightTop":
		return SnapRightTop, true
	}
	return SnapLeftBottom, false
}
