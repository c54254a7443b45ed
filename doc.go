// Package dragbox is a pointer-driven box selection and drag-move core for
// [Ebitengine].
//
// Dragbox turns raw pointer events into selection, drag-move, and marquee
// (rubber-band) gestures over a flat set of rectangular boxes, with live
// collision feedback while dragging and a frame-clocked selection indicator.
// The rendering of box content stays with the caller: boxes hand the core a
// rect provider, and the core hands back per-box render views.
//
// # Quick start
//
// Create a [Surface], register boxes, and let [Run] host the loop:
//
//	surface := dragbox.NewSurface(dragbox.SurfaceOptions{
//		Draggable: true,
//		Marquee:   true,
//	})
//	surface.Register("a", func() (dragbox.Rect, bool) {
//		return dragbox.Rect{X: ax, Y: ay, Width: 60, Height: 60}, true
//	})
//	dragbox.Run(surface, dragbox.RunConfig{
//		Title: "Boxes", Width: 640, Height: 480,
//		Draw: func(screen *ebiten.Image) {
//			surface.EachBox(func(v dragbox.BoxView) { /* paint */ })
//		},
//	})
//
// For full control, implement [ebiten.Game] yourself and call
// [Surface.Update] once per tick.
//
// # Architecture
//
// Pointer samples enter through [Surface.Update], are classified by
// hit-testing against the [Registry], and leave as [Action] values folded
// into the surface's [State] by a pure reducer. An ordered stage pipeline
// wraps every dispatch: collision recomputation against the gesture's rect
// snapshot, responder notification, and post-drag rect republishing. Stages
// run synchronously and depth-first, so responder callbacks and collision
// results always reflect a fully-applied state.
//
// The rect snapshot is captured once, at gesture start, and never
// re-measured mid-drag — geometry changes during a drag are purely additive
// offsets, which keeps collision math free of layout feedback loops.
//
// # Collaborators
//
// [Responder] receives per-box cumulative move offsets; [Indicator] polls
// the selected box's rectangle each frame for outline rendering (with a
// [gween]-driven pulse); [LoadLayout] reads YAML box arrangements;
// [ScriptRunner] replays JSON gesture scripts through the synthetic input
// queue; the ecs subpackage bridges interaction events to [Donburi].
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
// [Donburi]: https://github.com/yohamta/donburi
package dragbox
