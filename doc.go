// Package thumbstick is an on-screen virtual joystick for [Ebitengine] games.
//
// A [Stick] tracks one pointer (a finger or the mouse) that touched its
// interactive region, keeps the knob inside a circular base, and reports a
// direction whose magnitude runs from 0 at the center to 1 at the rim.
//
// # Quick start
//
// Resolve a [Layout] for the screen once, build the stick, and feed it a
// pointer snapshot every tick:
//
//	layout := thumbstick.Layout{Snap: thumbstick.SnapLeftBottom, BaseSpriteHeight: 256}
//	cfg, err := layout.Config(640, 480)
//	if err != nil { ... }
//	stick, err := thumbstick.New(cfg, thumbstick.NewRegionHitTester(cfg, layout.RegionShape(cfg)))
//	if err != nil { ... }
//	input := thumbstick.NewEbitenInput(cfg, thumbstick.ModeAuto)
//
//	stick.OnMove(func(ctx thumbstick.MoveContext) {
//		player.Velocity = ctx.Direction.Scale(speed)
//	})
//
//	func (g *Game) Update() error { g.stick.UpdateFrom(g.input); return nil }
//
// # Pointer records
//
// Hosts that do their own polling pass [Pointer] records to [Stick.Update].
// Screen positions use a bottom-left origin with Y up. A tracked pointer that
// disappears from the snapshot without PhaseEnded or PhaseCancelled is
// treated as released, with [ReasonDropped] and a warning on the logger set by
// [Stick.SetLogger].
//
// # Events
//
// [Stick.OnEngage], [Stick.OnMove], and [Stick.OnDisengage] register
// synchronous callbacks. [Stick.Update] also returns the tick's [Event]s, and
// an [EventSink] (see the ecs submodule for [Donburi]) receives each of them.
//
// [Ebitengine]: https://ebitengine.org
// [Donburi]: https://github.com/yohamta/donburi
package thumbstick
