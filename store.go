package dragbox

// Stage is a side-effecting step run synchronously after the reducer applies
// an action. Stages receive the pre-transition state alongside the action and
// read the post-transition state from the store. A stage that needs to
// dispatch a follow-up action does so before returning, and that nested
// dispatch fully completes — including its own stages — before control
// returns to the original caller: strictly depth-first, never queued.
type Stage func(st *Store, prev State, a Action)

// Store owns the interaction state for one surface and runs the stage
// pipeline around every dispatched action. It is an explicitly constructed,
// explicitly owned handle; multiple surfaces are fully isolated, sharing
// nothing. Single-threaded: all transitions and stage effects run to
// completion on the event-handling goroutine before the next device event is
// processed.
type Store struct {
	state    State
	registry *Registry
	stages   []Stage
	debug    bool
}

// NewStore creates a store bound to a registry (used to validate MoveStart
// ids) with the given ordered stage pipeline.
func NewStore(registry *Registry, stages ...Stage) *Store {
	return &Store{registry: registry, stages: stages}
}

// State returns the current interaction state. The returned value shares its
// slices and maps with the store and MUST NOT be mutated.
func (st *Store) State() State {
	return st.state
}

// Dispatch applies a through the reducer, then runs each stage in order.
// Invalid actions (MoveStart with unregistered ids) are silently dropped:
// event-sourced misuse is a graceful no-op, never an error.
func (st *Store) Dispatch(a Action) {
	if !st.validate(a) {
		return
	}
	prev := st.state
	st.state = reduce(st.state, a)
	if st.debug {
		debugLogAction(a, st.state)
	}
	for _, stage := range st.stages {
		stage(st, prev, a)
	}
}

// validate drops MoveStart actions naming ids not present in the registry.
// Everything else is total and handled by the reducer itself.
func (st *Store) validate(a Action) bool {
	ms, ok := a.(MoveStart)
	if !ok || st.registry == nil {
		return true
	}
	for _, id := range ms.IDs {
		if !st.registry.Contains(id) {
			return false
		}
	}
	return true
}

// SetDebugMode enables logging of every dispatched action and the resulting
// state to stderr.
func (st *Store) SetDebugMode(enabled bool) {
	st.debug = enabled
}
