package dragbox

import "testing"

// --- Rect tests ---

func TestRectContains(t *testing.T) {
	r := Rect{X: 10, Y: 20, Width: 100, Height: 50}

	tests := []struct {
		name string
		x, y float64
		want bool
	}{
		{"inside", 50, 40, true},
		{"top-left corner", 10, 20, true},
		{"bottom-right corner", 110, 70, true},
		{"outside left", 5, 40, false},
		{"outside right", 115, 40, false},
		{"outside top", 50, 15, false},
		{"outside bottom", 50, 75, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Contains(tt.x, tt.y); got != tt.want {
				t.Errorf("Rect.Contains(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestRectOverlaps(t *testing.T) {
	a := Rect{X: 0, Y: 0, Width: 100, Height: 100}

	tests := []struct {
		name             string
		other            Rect
		offsetX, offsetY float64
		want             bool
	}{
		{"full overlap", Rect{X: 0, Y: 0, Width: 100, Height: 100}, 0, 0, true},
		{"partial overlap", Rect{X: 50, Y: 50, Width: 100, Height: 100}, 0, 0, true},
		{"disjoint", Rect{X: 200, Y: 0, Width: 100, Height: 100}, 0, 0, false},
		{"shared edge is not overlap", Rect{X: 100, Y: 0, Width: 100, Height: 100}, 0, 0, false},
		{"shared corner is not overlap", Rect{X: 100, Y: 100, Width: 50, Height: 50}, 0, 0, false},
		{"offset into overlap", Rect{X: 200, Y: 0, Width: 100, Height: 100}, 150, 0, true},
		{"offset exactly to edge", Rect{X: 200, Y: 0, Width: 100, Height: 100}, 100, 0, false},
		{"offset past", Rect{X: 200, Y: 0, Width: 100, Height: 100}, 300, 0, false},
		{"negative offset", Rect{X: -150, Y: 0, Width: 100, Height: 100}, -100, 0, true},
		{"vertical offset", Rect{X: 0, Y: 200, Width: 100, Height: 100}, 0, 150, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := a.Overlaps(tt.other, tt.offsetX, tt.offsetY); got != tt.want {
				t.Errorf("Overlaps(%+v, %v, %v) = %v, want %v",
					tt.other, tt.offsetX, tt.offsetY, got, tt.want)
			}
		})
	}
}

func TestRectOverlaps_Symmetric(t *testing.T) {
	a := Rect{X: 0, Y: 0, Width: 100, Height: 100}
	b := Rect{X: 60, Y: 60, Width: 100, Height: 100}
	if a.Overlaps(b, 0, 0) != b.Overlaps(a, 0, 0) {
		t.Error("zero-offset overlap should be symmetric")
	}
}

func TestRectTranslated(t *testing.T) {
	r := Rect{X: 10, Y: 20, Width: 30, Height: 40}
	got := r.Translated(5, -5)
	want := Rect{X: 15, Y: 15, Width: 30, Height: 40}
	if got != want {
		t.Errorf("Translated = %+v, want %+v", got, want)
	}
}
