package thumbstick

import "slices"

// touchSample is one platform touch gathered by a host adapter.
type touchSample struct {
	id          PointerID
	screen      Vec2
	justPressed bool
}

// touchPointerID maps a platform touch id to a PointerID. Touch ids are
// shifted by one so they never collide with MousePointer.
func touchPointerID(tid int) PointerID {
	return PointerID(tid + 1)
}

// flipY converts a top-left-origin screen point to the bottom-left origin
// Pointer records use.
func flipY(x, y, viewportH float64) Vec2 {
	return Vec2{x, viewportH - y}
}

// appendTouchPointers appends the records for one frame of touches: held
// touches are PhaseBegan on their first frame and PhaseMoved afterwards;
// released touches are PhaseEnded at their last known position.
func appendTouchPointers(dst []Pointer, held, released []touchSample) []Pointer {
	for _, t := range held {
		phase := PhaseMoved
		if t.justPressed {
			phase = PhaseBegan
		}
		dst = append(dst, Pointer{ID: t.id, Phase: phase, Screen: t.screen})
	}
	for _, t := range released {
		dst = append(dst, Pointer{ID: t.id, Phase: PhaseEnded, Screen: t.screen})
	}
	return dst
}

// appendTouchSamples appends one sample per touch in ids, reading its
// top-left-origin position from pos. Touches also listed in pressed are
// marked justPressed.
func appendTouchSamples[T ~int](dst []touchSample, ids, pressed []T, pos func(T) (int, int), viewportH float64) []touchSample {
	for _, tid := range ids {
		x, y := pos(tid)
		dst = append(dst, touchSample{
			id:          touchPointerID(int(tid)),
			screen:      flipY(float64(x), float64(y), viewportH),
			justPressed: slices.Contains(pressed, tid),
		})
	}
	return dst
}
