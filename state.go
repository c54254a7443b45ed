package dragbox

// DragState describes an in-progress drag gesture. DX and DY are the
// cumulative pointer displacement since drag start, always relative to each
// dragged box's position at drag start, never to its last reported position.
type DragState struct {
	IDs    []BoxID
	DX, DY float64
}

func (d *DragState) contains(id BoxID) bool {
	for _, v := range d.IDs {
		if v == id {
			return true
		}
	}
	return false
}

// State is the authoritative interaction model for one surface. One instance
// exists per surface, created at setup and living for the surface's lifetime.
// Invariants maintained by the reducer:
//
//   - Drag.IDs is always a subset of Selected.
//   - Colliding is a subset of Drag.IDs while dragging, empty otherwise.
//   - RectSnapshot is captured once per gesture and never re-measured
//     mid-drag; geometry changes during a drag are purely additive offsets.
type State struct {
	// Selected holds the selection in insertion (click) order.
	Selected []BoxID

	// Drag is nil while no drag gesture is in progress.
	Drag *DragState

	// RectSnapshot maps ids to their rectangles at gesture start. Valid only
	// while a drag or marquee gesture is active; stale once it ends.
	RectSnapshot map[BoxID]Rect

	// Colliding holds the dragged boxes currently overlapping any other
	// snapshotted box.
	Colliding map[BoxID]struct{}
}

// IsSelected reports whether id is in the selection.
func (s State) IsSelected(id BoxID) bool {
	for _, v := range s.Selected {
		if v == id {
			return true
		}
	}
	return false
}

// IsColliding reports whether id is in the colliding set.
func (s State) IsColliding(id BoxID) bool {
	_, ok := s.Colliding[id]
	return ok
}
