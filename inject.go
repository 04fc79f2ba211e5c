package thumbstick

// InputSource supplies one pointer snapshot per frame.
type InputSource interface {
	Pointers() []Pointer
}

// SyntheticInput is an InputSource fed with injected frames. Each call to
// Pointers consumes one queued frame; an empty queue yields an empty snapshot.
// Use it to drive a Stick from tests, replays, or automation.
type SyntheticInput struct {
	queue [][]Pointer
	cur   []Pointer
}

// InjectFrame queues one frame holding exactly the given pointer records.
func (in *SyntheticInput) InjectFrame(pointers ...Pointer) {
	frame := make([]Pointer, len(pointers))
	copy(frame, pointers)
	in.queue = append(in.queue, frame)
}

// InjectPress queues a frame where pointer id touches down at (x, y).
func (in *SyntheticInput) InjectPress(id PointerID, x, y float64) {
	in.InjectFrame(Pointer{ID: id, Phase: PhaseBegan, Screen: Vec2{x, y}})
}

// InjectMove queues a frame where pointer id is held at (x, y).
func (in *SyntheticInput) InjectMove(id PointerID, x, y float64) {
	in.InjectFrame(Pointer{ID: id, Phase: PhaseMoved, Screen: Vec2{x, y}})
}

// InjectRelease queues a frame where pointer id lifts at (x, y).
func (in *SyntheticInput) InjectRelease(id PointerID, x, y float64) {
	in.InjectFrame(Pointer{ID: id, Phase: PhaseEnded, Screen: Vec2{x, y}})
}

// InjectCancel queues a frame where the platform cancels pointer id.
func (in *SyntheticInput) InjectCancel(id PointerID, x, y float64) {
	in.InjectFrame(Pointer{ID: id, Phase: PhaseCancelled, Screen: Vec2{x, y}})
}

// InjectIdle queues frames with no pointers at all.
func (in *SyntheticInput) InjectIdle(frames int) {
	for i := 0; i < frames; i++ {
		in.queue = append(in.queue, nil)
	}
}

// InjectTap queues a press followed by a release at the same position.
// Consumes two frames.
func (in *SyntheticInput) InjectTap(id PointerID, x, y float64) {
	in.InjectPress(id, x, y)
	in.InjectRelease(id, x, y)
}

// InjectDrag queues a full drag: press at (fromX, fromY), linearly
// interpolated moves over frames-2 intermediate frames, and release at
// (toX, toY). Minimum frames is 2 (press + release).
func (in *SyntheticInput) InjectDrag(id PointerID, fromX, fromY, toX, toY float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	in.InjectPress(id, fromX, fromY)
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps+1)
		in.InjectMove(id, fromX+(toX-fromX)*t, fromY+(toY-fromY)*t)
	}
	in.InjectRelease(id, toX, toY)
}

// Pending returns the number of queued frames.
func (in *SyntheticInput) Pending() int { return len(in.queue) }

// Pointers pops the next queued frame. The returned slice is valid until the
// next call.
func (in *SyntheticInput) Pointers() []Pointer {
	if len(in.queue) == 0 {
		return nil
	}
	in.cur = append(in.cur[:0], in.queue[0]...)
	copy(in.queue, in.queue[1:])
	in.queue[len(in.queue)-1] = nil
	in.queue = in.queue[:len(in.queue)-1]
	return in.cur
}
