package thumbstick

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// returnAnim holds the tweens easing the displayed knob back to center.
type returnAnim struct {
	tweenX *gween.Tween
	tweenY *gween.Tween
	doneX  bool
	doneY  bool
}

// KnobAnimator smooths what a renderer draws for the knob. While the stick is
// held it follows the knob exactly; after a disengage it eases from the last
// drawn position back to the origin. The Stick's own knob still snaps to the
// origin immediately; this only affects drawing.
type KnobAnimator struct {
	// Duration is the return time in seconds. 0 snaps back instantly.
	Duration float32
	// Ease is the return curve. nil means ease.OutBack.
	Ease ease.TweenFunc

	pos  Vec2
	anim *returnAnim

	engage    CallbackHandle
	disengage CallbackHandle
}

// NewKnobAnimator attaches an animator to s.
func NewKnobAnimator(s *Stick, duration float32, easeFn ease.TweenFunc) *KnobAnimator {
	a := &KnobAnimator{Duration: duration, Ease: easeFn}
	a.engage = s.OnEngage(func(EngageContext) { a.anim = nil })
	a.disengage = s.OnDisengage(func(DisengageContext) { a.startReturn() })
	return a
}

// Detach unregisters the animator's callbacks.
func (a *KnobAnimator) Detach() {
	a.engage.Remove()
	a.disengage.Remove()
}

func (a *KnobAnimator) startReturn() {
	if a.Duration <= 0 || a.pos == (Vec2{}) {
		a.pos = Vec2{}
		a.anim = nil
		return
	}
	fn := a.Ease
	if fn == nil {
		fn = ease.OutBack
	}
	a.anim = &returnAnim{
		tweenX: gween.New(float32(a.pos.X), 0, a.Duration, fn),
		tweenY: gween.New(float32(a.pos.Y), 0, a.Duration, fn),
	}
}

// Update advances the animation by dt seconds. Call it after Stick.Update.
func (a *KnobAnimator) Update(s *Stick, dt float32) {
	if s.State() == StateActive {
		a.pos = s.Knob()
		a.anim = nil
		return
	}
	if a.anim == nil {
		return
	}
	if !a.anim.doneX {
		v, done := a.anim.tweenX.Update(dt)
		a.pos.X = float64(v)
		a.anim.doneX = done
	}
	if !a.anim.doneY {
		v, done := a.anim.tweenY.Update(dt)
		a.pos.Y = float64(v)
		a.anim.doneY = done
	}
	if a.anim.doneX && a.anim.doneY {
		a.pos = Vec2{}
		a.anim = nil
	}
}

// Position returns where the knob should be drawn, in local space.
func (a *KnobAnimator) Position() Vec2 { return a.pos }

// Animating reports whether a return animation is in progress.
func (a *KnobAnimator) Animating() bool { return a.anim != nil }
