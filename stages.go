package dragbox

// CollisionStage recomputes pairwise overlap after MoveStart and Move.
// Each dragged box's snapshotted rect, offset by the current cumulative
// displacement, is tested against every other snapshotted rect; dragged boxes
// overlapping anything are published via a nested SetCollisions dispatch.
//
// The pass is O(n²) over the snapshot. Acceptable because n is expected to
// be small (tens, not thousands); this is a known scaling limit.
func CollisionStage(st *Store, prev State, a Action) {
	switch a.(type) {
	case MoveStart, Move:
	default:
		return
	}
	s := st.State()
	if s.Drag == nil {
		return
	}

	var hit []BoxID
	for _, id := range s.Drag.IDs {
		rect, ok := s.RectSnapshot[id]
		if !ok {
			continue
		}
		for otherID, other := range s.RectSnapshot {
			if otherID == id {
				continue
			}
			if rect.Overlaps(other, s.Drag.DX, s.Drag.DY) {
				hit = append(hit, id)
				break
			}
		}
	}
	st.Dispatch(SetCollisions{IDs: hit})
}

// ResponderStage notifies the external responder callbacks. OnMove fires on
// Move after the collision stage has run; OnMoveEnd fires on MoveEnd reading
// the pre-transition drag state, so the final cumulative offset is still
// readable after the reducer has cleared it. A MoveEnd with no prior drag
// never invokes the responder.
func ResponderStage(r Responder) Stage {
	return func(st *Store, prev State, a Action) {
		switch a.(type) {
		case Move:
			s := st.State()
			if s.Drag == nil || r.OnMove == nil {
				return
			}
			for _, id := range s.Drag.IDs {
				r.OnMove(id, s.Drag.DX, s.Drag.DY)
			}
		case MoveEnd:
			if prev.Drag == nil || r.OnMoveEnd == nil {
				return
			}
			for _, id := range prev.Drag.IDs {
				r.OnMoveEnd(id, prev.Drag.DX, prev.Drag.DY)
			}
		}
	}
}

// RepublishStage re-measures all registry rects after a completed drag, since
// the boxes have now actually relocated in the caller's own coordinate model,
// and publishes the fresh snapshot for subsequent marquee and collision
// passes. A MoveEnd that ended no drag republishes nothing, keeping stray
// releases bit-for-bit no-ops.
func RepublishStage(registry *Registry) Stage {
	return func(st *Store, prev State, a Action) {
		if _, ok := a.(MoveEnd); !ok {
			return
		}
		if prev.Drag == nil {
			return
		}
		st.Dispatch(SetRectSnapshot{Rects: registry.SnapshotRects()})
	}
}
