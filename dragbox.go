package dragbox

// BoxID identifies a registered box. IDs are caller-supplied, opaque strings,
// unique among currently registered boxes. Identity equality is the only
// relationship boxes participate in.
type BoxID string

// Vec2 is a 2D vector used for positions and offsets throughout the API.
type Vec2 struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward. All boxes on a surface share one
// coordinate space.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Overlaps reports whether r, translated by (offsetX, offsetY), intersects
// other with non-zero area. Half-open interval semantics: rectangles that
// merely share an edge do not overlap.
func (r Rect) Overlaps(other Rect, offsetX, offsetY float64) bool {
	return r.X+offsetX < other.X+other.Width &&
		r.X+offsetX+r.Width > other.X &&
		r.Y+offsetY < other.Y+other.Height &&
		r.Y+offsetY+r.Height > other.Y
}

// Translated returns r shifted by (dx, dy).
func (r Rect) Translated(dx, dy float64) Rect {
	return Rect{X: r.X + dx, Y: r.Y + dy, Width: r.Width, Height: r.Height}
}

// EventType identifies a kind of interaction event.
type EventType uint8

const (
	EventSelect    EventType = iota // fires when the selection set is replaced or extended
	EventMoveStart                  // fires when a drag gesture begins
	EventMove                       // fires on each incremental drag move
	EventMoveEnd                    // fires when a drag gesture ends
	EventCollision                  // fires when the colliding set is recomputed during a drag
)

// InteractionEvent carries interaction data for external consumers (see the
// ecs subpackage for a Donburi adapter). DX and DY are cumulative offsets
// since drag start and are only meaningful for move events.
type InteractionEvent struct {
	Type EventType
	IDs  []BoxID
	DX   float64
	DY   float64
}

// EventSink receives interaction events. Set one on a Surface via
// SetEventSink to forward transitions to an external system.
type EventSink interface {
	EmitEvent(event InteractionEvent)
}

// Responder is the optional external callback pair notified of drag motion.
// Both callbacks receive cumulative offsets relative to each box's position
// at drag start, never incremental deltas, and are invoked once per dragged
// box per event.
type Responder struct {
	OnMove    func(id BoxID, dx, dy float64)
	OnMoveEnd func(id BoxID, dx, dy float64)
}

// KeyModifiers is a bitmask of keyboard modifier keys.
// Values can be combined with bitwise OR (e.g. ModShift | ModCtrl).
type KeyModifiers uint8

const (
	ModShift KeyModifiers = 1 << iota // Shift key
	ModCtrl                           // Control key
	ModAlt                            // Alt / Option key
	ModMeta                           // Meta / Command / Windows key
)

// BoxView is the per-box rendering contract. The core hands one view per
// registered box to the caller's render function; the caller positions and
// paints using Offset as a relative displacement added to its own stored
// coordinates. The core never mutates caller-owned position data.
type BoxView struct {
	ID        BoxID
	Selected  bool
	Colliding bool
	Offset    Vec2 // cumulative drag displacement; zero unless this box is mid-drag
	Rect      Rect // current measured rectangle (zero value when Measured is false)
	Measured  bool
}
