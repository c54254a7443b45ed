package dragbox

// Action is the closed set of interaction state transitions. Every field
// change to a surface's State goes through exactly one Action dispatched on
// its Store; no other component mutates state directly. The reducer matches
// exhaustively over the concrete types below.
type Action interface {
	isAction()
}

// Select replaces or extends the selection. When Additive is false and IDs is
// a non-empty set already entirely selected, the selection is rebuilt from
// the current set rather than cleared first — selecting the exact same set
// again is idempotent. Select with empty IDs and Additive false clears the
// selection.
type Select struct {
	IDs      []BoxID
	Additive bool
}

// MoveStart begins a drag over IDs with the registry snapshot captured at
// press time attached atomically, so collision math never sees a missing
// baseline. IDs must be non-empty, fully selected, and fully registered;
// otherwise the action is ignored.
type MoveStart struct {
	IDs      []BoxID
	Snapshot map[BoxID]Rect
}

// Move updates the in-progress drag to the given absolute cumulative offset
// relative to the drag origin. Ignored while no drag is active.
type Move struct {
	DX, DY float64
}

// MoveEnd ends the in-progress drag unconditionally. Ignored (bit-for-bit
// no-op) while no drag is active.
type MoveEnd struct{}

// SetCollisions replaces the colliding set. Ignored while no drag is active,
// so a stale collision result arriving after drag end is discarded.
type SetCollisions struct {
	IDs []BoxID
}

// SetRectSnapshot replaces the cached rectangle snapshot. Used by the marquee
// interpreter at gesture start and by the republish stage after a drag.
type SetRectSnapshot struct {
	Rects map[BoxID]Rect
}

func (Select) isAction()          {}
func (MoveStart) isAction()       {}
func (Move) isAction()            {}
func (MoveEnd) isAction()         {}
func (SetCollisions) isAction()   {}
func (SetRectSnapshot) isAction() {}
