package dragbox

import (
	"errors"
	"fmt"
)

// ErrDuplicateID is returned by Registry.Register when the id is already live.
var ErrDuplicateID = errors.New("dragbox: duplicate box id")

// RectProvider reports a box's current on-screen rectangle. The second return
// value is false while the box is temporarily unmeasurable (not rendered);
// callers skip such boxes rather than failing. Providers are called on
// demand — the registry never caches geometry.
type RectProvider func() (Rect, bool)

// Entry associates a box identity with its rect provider. Entries are created
// and destroyed by the box's own lifecycle: registered on mount, unregistered
// on unmount.
type Entry struct {
	ID     BoxID
	RectOf RectProvider
}

// Registry tracks the live set of box entries for one interaction surface.
// Iteration order is stable between mutations (registration order), but is
// otherwise unspecified after removals; rely on it only for iteration
// completeness and paint-order hit testing, never for geometry.
type Registry struct {
	entries []Entry
	index   map[BoxID]int
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{index: make(map[BoxID]int)}
}

// Register adds an entry. Re-registration with a live id is a caller error
// and fails with ErrDuplicateID.
func (r *Registry) Register(e Entry) error {
	if _, ok := r.index[e.ID]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicateID, e.ID)
	}
	r.index[e.ID] = len(r.entries)
	r.entries = append(r.entries, e)
	return nil
}

// Unregister removes the entry for id. It is a no-op when the id is absent,
// because unmount ordering during teardown is not guaranteed.
func (r *Registry) Unregister(id BoxID) {
	i, ok := r.index[id]
	if !ok {
		return
	}
	copy(r.entries[i:], r.entries[i+1:])
	r.entries[len(r.entries)-1] = Entry{}
	r.entries = r.entries[:len(r.entries)-1]
	delete(r.index, id)
	for j := i; j < len(r.entries); j++ {
		r.index[r.entries[j].ID] = j
	}
}

// Contains reports whether id is currently registered.
func (r *Registry) Contains(id BoxID) bool {
	_, ok := r.index[id]
	return ok
}

// Lookup returns the entry for id.
func (r *Registry) Lookup(id BoxID) (Entry, bool) {
	i, ok := r.index[id]
	if !ok {
		return Entry{}, false
	}
	return r.entries[i], true
}

// Len returns the number of registered entries.
func (r *Registry) Len() int {
	return len(r.entries)
}

// Entries returns the registry's entries in iteration order. The returned
// slice MUST NOT be mutated.
func (r *Registry) Entries() []Entry {
	return r.entries
}

// SnapshotRects measures every registered box and returns a point-in-time
// copy of its rectangle, keyed by id. Boxes whose provider currently reports
// unmeasurable are skipped. The returned map is a copy, immune to later
// registry changes.
func (r *Registry) SnapshotRects() map[BoxID]Rect {
	rects := make(map[BoxID]Rect, len(r.entries))
	for _, e := range r.entries {
		if e.RectOf == nil {
			continue
		}
		if rect, ok := e.RectOf(); ok {
			rects[e.ID] = rect
		}
	}
	return rects
}
