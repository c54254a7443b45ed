package dragbox

import "testing"

// drainInjected consumes queued synthetic events until the queue is empty.
func drainInjected(s *Surface) {
	for s.processInjected(0) {
	}
}

func TestInjectClick(t *testing.T) {
	s := NewSurface(SurfaceOptions{})
	registerStatic(t, s, "0", Rect{X: 0, Y: 0, Width: 100, Height: 100})

	s.InjectClick(50, 50)
	if len(s.injectQueue) != 2 {
		t.Fatalf("queue len = %d, want 2", len(s.injectQueue))
	}
	drainInjected(s)

	if got := s.State().Selected; !idsEqual(got, []BoxID{"0"}) {
		t.Errorf("Selected = %v, want [0]", got)
	}
}

func TestInjectDrag_FrameCount(t *testing.T) {
	s := NewSurface(SurfaceOptions{Draggable: true})

	s.InjectDrag(0, 0, 100, 0, 5)
	// Press, frames-2 interpolated moves, release.
	if len(s.injectQueue) != 5 {
		t.Fatalf("queue len = %d, want 5", len(s.injectQueue))
	}
	if s.injectQueue[0] != (syntheticPointerEvent{x: 0, y: 0, pressed: true}) {
		t.Errorf("first event = %+v", s.injectQueue[0])
	}
	last := s.injectQueue[4]
	if last.pressed || last.x != 100 {
		t.Errorf("last event = %+v", last)
	}
	// Interpolated positions are strictly increasing toward the target.
	prev := 0.0
	for _, evt := range s.injectQueue[1:4] {
		if !evt.pressed || evt.x <= prev || evt.x >= 100 {
			t.Errorf("intermediate event = %+v", evt)
		}
		prev = evt.x
	}
}

func TestInjectDrag_MinimumFrames(t *testing.T) {
	s := NewSurface(SurfaceOptions{Draggable: true})
	s.InjectDrag(0, 0, 100, 0, 0)
	if len(s.injectQueue) != 2 {
		t.Errorf("queue len = %d, want 2 (press + release)", len(s.injectQueue))
	}
}

func TestInjectDrag_MovesBox(t *testing.T) {
	var finalDX float64
	moved := false
	s := NewSurface(SurfaceOptions{
		Draggable: true,
		Responder: Responder{OnMoveEnd: func(id BoxID, dx, dy float64) {
			moved = true
			finalDX = dx
		}},
	})
	registerStatic(t, s, "0", Rect{X: 0, Y: 0, Width: 100, Height: 100})

	s.InjectDrag(50, 50, 150, 50, 6)
	drainInjected(s)

	if !moved {
		t.Fatal("drag should have completed")
	}
	if finalDX != 100 {
		t.Errorf("final dx = %v, want 100", finalDX)
	}
	if s.State().Drag != nil {
		t.Error("drag state should be cleared after release")
	}
}

func TestProcessInjected_OnePerCall(t *testing.T) {
	s := NewSurface(SurfaceOptions{})
	registerStatic(t, s, "0", Rect{X: 0, Y: 0, Width: 100, Height: 100})

	s.InjectClick(50, 50)
	if !s.processInjected(0) {
		t.Fatal("expected an event to be consumed")
	}
	if len(s.injectQueue) != 1 {
		t.Errorf("queue len = %d, want 1 (one event per tick)", len(s.injectQueue))
	}
	if !s.processInjected(0) {
		t.Fatal("expected the release to be consumed")
	}
	if s.processInjected(0) {
		t.Error("empty queue should report no consumption")
	}
}
