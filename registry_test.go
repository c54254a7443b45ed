package dragbox

import (
	"errors"
	"testing"
)

func staticRect(r Rect) RectProvider {
	return func() (Rect, bool) { return r, true }
}

func absentRect() RectProvider {
	return func() (Rect, bool) { return Rect{}, false }
}

func TestRegistryRegister(t *testing.T) {
	reg := NewRegistry()
	if err := reg.Register(Entry{ID: "a", RectOf: staticRect(Rect{Width: 10, Height: 10})}); err != nil {
		t.Fatalf("Register: %v", err)
	}
	if !reg.Contains("a") {
		t.Error("registry should contain a")
	}
	if reg.Len() != 1 {
		t.Errorf("Len = %d, want 1", reg.Len())
	}
}

func TestRegistryRegister_Duplicate(t *testing.T) {
	reg := NewRegistry()
	if err := reg.Register(Entry{ID: "a"}); err != nil {
		t.Fatal(err)
	}
	err := reg.Register(Entry{ID: "a"})
	if err == nil {
		t.Fatal("expected error for duplicate id")
	}
	if !errors.Is(err, ErrDuplicateID) {
		t.Errorf("error should wrap ErrDuplicateID, got %v", err)
	}
}

func TestRegistryUnregister_Idempotent(t *testing.T) {
	reg := NewRegistry()
	if err := reg.Register(Entry{ID: "a"}); err != nil {
		t.Fatal(err)
	}
	reg.Unregister("a")
	if reg.Contains("a") {
		t.Error("a should be gone")
	}
	// Second removal and removal of a never-registered id are no-ops.
	reg.Unregister("a")
	reg.Unregister("ghost")
	if reg.Len() != 0 {
		t.Errorf("Len = %d, want 0", reg.Len())
	}
}

func TestRegistryReregisterAfterUnregister(t *testing.T) {
	reg := NewRegistry()
	if err := reg.Register(Entry{ID: "a"}); err != nil {
		t.Fatal(err)
	}
	reg.Unregister("a")
	if err := reg.Register(Entry{ID: "a"}); err != nil {
		t.Errorf("re-register after unregister should succeed, got %v", err)
	}
}

func TestRegistryEntries_Order(t *testing.T) {
	reg := NewRegistry()
	for _, id := range []BoxID{"a", "b", "c", "d"} {
		if err := reg.Register(Entry{ID: id}); err != nil {
			t.Fatal(err)
		}
	}
	reg.Unregister("b")

	var got []BoxID
	for _, e := range reg.Entries() {
		got = append(got, e.ID)
	}
	want := []BoxID{"a", "c", "d"}
	if len(got) != len(want) {
		t.Fatalf("entries = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("entries = %v, want %v", got, want)
		}
	}

	// Lookup still resolves correctly after the splice.
	for _, id := range want {
		if e, ok := reg.Lookup(id); !ok || e.ID != id {
			t.Errorf("Lookup(%q) = %v, %v", id, e.ID, ok)
		}
	}
}

func TestRegistrySnapshotRects(t *testing.T) {
	reg := NewRegistry()
	if err := reg.Register(Entry{ID: "a", RectOf: staticRect(Rect{X: 1, Y: 2, Width: 3, Height: 4})}); err != nil {
		t.Fatal(err)
	}
	if err := reg.Register(Entry{ID: "b", RectOf: absentRect()}); err != nil {
		t.Fatal(err)
	}
	if err := reg.Register(Entry{ID: "c", RectOf: nil}); err != nil {
		t.Fatal(err)
	}

	snap := reg.SnapshotRects()
	if len(snap) != 1 {
		t.Fatalf("snapshot has %d entries, want 1 (unmeasurable skipped)", len(snap))
	}
	if snap["a"] != (Rect{X: 1, Y: 2, Width: 3, Height: 4}) {
		t.Errorf("snapshot[a] = %+v", snap["a"])
	}
}

func TestRegistrySnapshotRects_IsCopy(t *testing.T) {
	x := 0.0
	reg := NewRegistry()
	if err := reg.Register(Entry{ID: "a", RectOf: func() (Rect, bool) {
		return Rect{X: x, Width: 10, Height: 10}, true
	}}); err != nil {
		t.Fatal(err)
	}

	snap := reg.SnapshotRects()
	x = 500
	reg.Unregister("a")

	// The snapshot is immune to later provider and registry changes.
	if snap["a"].X != 0 {
		t.Errorf("snapshot[a].X = %v, want 0", snap["a"].X)
	}
	if len(snap) != 1 {
		t.Errorf("snapshot len = %d, want 1", len(snap))
	}
}
