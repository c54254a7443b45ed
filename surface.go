package dragbox

// SurfaceOptions selects which pointer interpreters a surface runs and wires
// its external collaborators. The zero value is a click-to-select surface
// with no drag, marquee, or empty-space clearing.
type SurfaceOptions struct {
	// Draggable enables the drag-move interpreter.
	Draggable bool

	// Marquee enables the rubber-band range-selection interpreter for
	// presses on empty space.
	Marquee bool

	// ClearOnEmptyPress makes a press on empty space clear the selection.
	// Only for single-select variants: surfaces with marquee support leave
	// empty-space presses to the marquee logic, so the selection is not lost
	// right before a marquee drag starts.
	ClearOnEmptyPress bool

	// Responder receives per-box move and move-end notifications.
	Responder Responder
}

// surfacePhase is the interpreter gesture mode: Idle ⇄ Dragging or
// Idle ⇄ Marquee, never nested.
type surfacePhase uint8

const (
	phaseIdle surfacePhase = iota
	phaseDragging
	phaseMarquee
)

// Surface owns the registry, store, and pointer interpreters for one
// interaction surface. Surfaces are fully isolated from each other.
//
// Raw device events enter through Update (or the Inject* methods), are
// classified by hit-testing against the registry, and leave as actions
// dispatched on the store. The stage pipeline then recomputes collisions,
// snapshots rectangles, and notifies the responder, all synchronously on the
// dispatching goroutine.
type Surface struct {
	registry *Registry
	store    *Store
	opts     SurfaceOptions
	sink     EventSink

	phase            surfacePhase
	originX, originY float64
	marquee          Rect

	down         bool
	lastX, lastY float64

	injectQueue []syntheticPointerEvent
}

// NewSurface creates a surface with its own registry, store, and the fixed
// stage pipeline: collision recompute, responder notification, rect
// republish, event sink.
func NewSurface(opts SurfaceOptions) *Surface {
	s := &Surface{
		registry: NewRegistry(),
		opts:     opts,
	}
	s.store = NewStore(s.registry,
		CollisionStage,
		ResponderStage(opts.Responder),
		RepublishStage(s.registry),
		s.sinkStage,
	)
	return s
}

// Registry returns the surface's box registry.
func (s *Surface) Registry() *Registry {
	return s.registry
}

// Store returns the surface's store. Useful for dispatching actions directly
// or enabling debug logging.
func (s *Surface) Store() *Store {
	return s.store
}

// State returns the current interaction state.
func (s *Surface) State() State {
	return s.store.State()
}

// Register adds a box to the surface. rectOf supplies the box's current
// on-screen rectangle on demand; the surface never computes geometry itself.
func (s *Surface) Register(id BoxID, rectOf RectProvider) error {
	return s.registry.Register(Entry{ID: id, RectOf: rectOf})
}

// Unregister removes a box. Safe to call during an active drag: the gesture's
// snapshot is a copy taken at drag start, immune to registry changes.
func (s *Surface) Unregister(id BoxID) {
	s.registry.Unregister(id)
}

// SetEventSink forwards interaction events to an external sink (see the ecs
// subpackage). Pass nil to disable.
func (s *Surface) SetEventSink(sink EventSink) {
	s.sink = sink
}

// MarqueeRect returns the current marquee rectangle while a marquee gesture
// is active, for rendering the rubber band.
func (s *Surface) MarqueeRect() (Rect, bool) {
	if s.phase != phaseMarquee {
		return Rect{}, false
	}
	return s.marquee, true
}

// EachBox calls fn once per registered box with its render view: identity,
// selection and collision flags, the cumulative drag offset (zero unless the
// box is mid-drag), and the current measured rectangle. The caller paints
// using Offset added to its own stored coordinates.
func (s *Surface) EachBox(fn func(BoxView)) {
	st := s.store.State()
	for _, e := range s.registry.Entries() {
		rect, measured := Rect{}, false
		if e.RectOf != nil {
			rect, measured = e.RectOf()
		}
		view := BoxView{
			ID:        e.ID,
			Selected:  st.IsSelected(e.ID),
			Colliding: st.IsColliding(e.ID),
			Rect:      rect,
			Measured:  measured,
		}
		if st.Drag != nil && st.Drag.contains(e.ID) {
			view.Offset = Vec2{X: st.Drag.DX, Y: st.Drag.DY}
		}
		fn(view)
	}
}

// --- Pointer interpreters ---

// processPointer runs the interpreters for one pointer sample. Press and
// release edges are detected against the previous sample; held-down samples
// with a position change feed the active gesture. A release at a new position
// feeds that final move before ending the gesture, so the release point
// counts toward the final offset.
func (s *Surface) processPointer(x, y float64, pressed bool, mods KeyModifiers) {
	switch {
	case pressed && !s.down:
		s.down = true
		s.pressAt(x, y, mods)
	case !pressed && s.down:
		if x != s.lastX || y != s.lastY {
			s.moveTo(x, y)
		}
		s.down = false
		s.releaseAt()
	case pressed && s.down:
		if x != s.lastX || y != s.lastY {
			s.moveTo(x, y)
		}
	}
	s.lastX, s.lastY = x, y
}

// pressAt classifies a press edge. A hit box is selected (additively under
// Shift) and, on draggable surfaces, starts a drag of the whole current
// selection with the registry snapshot captured synchronously before the
// MoveStart takes effect. An empty-space press starts a marquee, or clears
// the selection on single-select surfaces. Presses while a gesture is
// already active are ignored — no nested gestures.
func (s *Surface) pressAt(x, y float64, mods KeyModifiers) {
	if hit, ok := s.hitTest(x, y); ok {
		s.store.Dispatch(Select{IDs: []BoxID{hit}, Additive: mods&ModShift != 0})
		if s.opts.Draggable && s.phase == phaseIdle {
			snapshot := s.registry.SnapshotRects()
			selection := append([]BoxID(nil), s.store.State().Selected...)
			s.store.Dispatch(MoveStart{IDs: selection, Snapshot: snapshot})
			if s.store.State().Drag != nil {
				s.phase = phaseDragging
				s.originX, s.originY = x, y
			}
		}
		return
	}

	if s.opts.Marquee && s.phase == phaseIdle {
		s.phase = phaseMarquee
		s.originX, s.originY = x, y
		s.marquee = Rect{X: x, Y: y}
		s.store.Dispatch(SetRectSnapshot{Rects: s.registry.SnapshotRects()})
		return
	}
	if s.opts.ClearOnEmptyPress {
		s.store.Dispatch(Select{})
	}
}

// moveTo feeds a held-down position change into the active gesture.
func (s *Surface) moveTo(x, y float64) {
	switch s.phase {
	case phaseDragging:
		s.store.Dispatch(Move{DX: x - s.originX, DY: y - s.originY})
	case phaseMarquee:
		s.marquee = rectFromPoints(s.originX, s.originY, x, y)
		// Replace the selection wholesale each move, so the final selection
		// always equals the boxes intersecting the final marquee rect.
		s.store.Dispatch(Select{IDs: s.marqueeMatches()})
	}
}

// releaseAt ends the active gesture. A release with no prior gesture
// dispatches nothing. Marquee needs no closing action: each move already
// committed the selection.
func (s *Surface) releaseAt() {
	if s.phase == phaseDragging {
		s.store.Dispatch(MoveEnd{})
	}
	s.phase = phaseIdle
}

// hitTest returns the topmost box at (x, y). Later registrations sit above
// earlier ones, matching paint order, so the walk runs backward.
func (s *Surface) hitTest(x, y float64) (BoxID, bool) {
	entries := s.registry.Entries()
	for i := len(entries) - 1; i >= 0; i-- {
		if entries[i].RectOf == nil {
			continue
		}
		rect, ok := entries[i].RectOf()
		if !ok {
			continue
		}
		if rect.Contains(x, y) {
			return entries[i].ID, true
		}
	}
	return "", false
}

// marqueeMatches tests the marquee rectangle against the snapshot taken at
// marquee start — never against live geometry — in registry order.
func (s *Surface) marqueeMatches() []BoxID {
	snapshot := s.store.State().RectSnapshot
	var ids []BoxID
	for _, e := range s.registry.Entries() {
		rect, ok := snapshot[e.ID]
		if !ok {
			continue
		}
		if rect.Overlaps(s.marquee, 0, 0) {
			ids = append(ids, e.ID)
		}
	}
	return ids
}

// rectFromPoints builds the axis-aligned rectangle spanned by two corners.
func rectFromPoints(x0, y0, x1, y1 float64) Rect {
	if x1 < x0 {
		x0, x1 = x1, x0
	}
	if y1 < y0 {
		y0, y1 = y1, y0
	}
	return Rect{X: x0, Y: y0, Width: x1 - x0, Height: y1 - y0}
}

// --- Event sink stage ---

// sinkStage forwards interaction transitions to the surface's event sink.
// Runs last in the pipeline so events always reflect fully-applied state.
func (s *Surface) sinkStage(st *Store, prev State, a Action) {
	if s.sink == nil {
		return
	}
	cur := st.State()
	switch act := a.(type) {
	case Select:
		s.sink.EmitEvent(InteractionEvent{Type: EventSelect, IDs: cur.Selected})
	case MoveStart:
		if prev.Drag == nil && cur.Drag != nil {
			s.sink.EmitEvent(InteractionEvent{Type: EventMoveStart, IDs: cur.Drag.IDs})
		}
	case Move:
		if cur.Drag != nil {
			s.sink.EmitEvent(InteractionEvent{
				Type: EventMove, IDs: cur.Drag.IDs,
				DX: cur.Drag.DX, DY: cur.Drag.DY,
			})
		}
	case MoveEnd:
		if prev.Drag != nil {
			s.sink.EmitEvent(InteractionEvent{
				Type: EventMoveEnd, IDs: prev.Drag.IDs,
				DX: prev.Drag.DX, DY: prev.Drag.DY,
			})
		}
	case SetCollisions:
		if cur.Drag != nil {
			s.sink.EmitEvent(InteractionEvent{Type: EventCollision, IDs: act.IDs})
		}
	}
}
