package dragbox

// reduce is the pure transition function: (state, action) → new state.
// All transitions are total; structurally invalid actions return the state
// unchanged, because discarding a stray device event must never corrupt
// state. The input state is never mutated — changed fields are copied.
func reduce(s State, a Action) State {
	switch a := a.(type) {
	case Select:
		return reduceSelect(s, a)
	case MoveStart:
		return reduceMoveStart(s, a)
	case Move:
		return reduceMove(s, a)
	case MoveEnd:
		return reduceMoveEnd(s)
	case SetCollisions:
		return reduceSetCollisions(s, a)
	case SetRectSnapshot:
		out := s
		out.RectSnapshot = a.Rects
		return out
	}
	return s
}

// reduceSelect folds ids into the selection. The base set is the current
// selection when Additive is set, or when ids is non-empty and already
// entirely selected (re-selecting the same full set rebuilds it identically
// instead of clearing); otherwise the base is empty. Ids not already present
// are appended in order, preserving click order.
func reduceSelect(s State, a Select) State {
	alreadyAll := len(a.IDs) > 0
	for _, id := range a.IDs {
		if !s.IsSelected(id) {
			alreadyAll = false
			break
		}
	}

	next := make([]BoxID, 0, len(s.Selected)+len(a.IDs))
	if a.Additive || alreadyAll {
		next = append(next, s.Selected...)
	}
	for _, id := range a.IDs {
		if !containsID(next, id) {
			next = append(next, id)
		}
	}

	out := s
	out.Selected = next
	return out
}

// reduceMoveStart enters the dragging mode. The action is ignored when ids is
// empty, when a drag is already in progress, or when any id is not currently
// selected (a box cannot be mid-drag without being selected).
func reduceMoveStart(s State, a MoveStart) State {
	if len(a.IDs) == 0 || s.Drag != nil {
		return s
	}
	for _, id := range a.IDs {
		if !s.IsSelected(id) {
			return s
		}
	}

	out := s
	out.Drag = &DragState{IDs: append([]BoxID(nil), a.IDs...)}
	out.Colliding = nil
	if a.Snapshot != nil {
		out.RectSnapshot = a.Snapshot
	}
	return out
}

func reduceMove(s State, a Move) State {
	if s.Drag == nil {
		return s
	}
	out := s
	d := *s.Drag
	d.DX = a.DX
	d.DY = a.DY
	out.Drag = &d
	return out
}

func reduceMoveEnd(s State) State {
	if s.Drag == nil {
		return s
	}
	out := s
	out.Drag = nil
	out.Colliding = nil
	out.RectSnapshot = nil
	return out
}

func reduceSetCollisions(s State, a SetCollisions) State {
	if s.Drag == nil {
		return s
	}
	out := s
	if len(a.IDs) == 0 {
		out.Colliding = nil
		return out
	}
	set := make(map[BoxID]struct{}, len(a.IDs))
	for _, id := range a.IDs {
		set[id] = struct{}{}
	}
	out.Colliding = set
	return out
}

func containsID(ids []BoxID, id BoxID) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
