package dragbox

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

const (
	indicatorPulseMin      = 0.35
	indicatorPulseMax      = 1.0
	indicatorPulseDuration = 0.6 // seconds, one direction
)

// Indicator is the frame-clocked poller behind the visual selection outline.
// On each host-driven tick it re-reads the target box's rect provider and
// republishes the resulting rectangle; while the box is unmounted (provider
// reports unmeasurable) it holds the last published rectangle rather than
// erroring, recoverable on the next tick. Reading is side-effect-free and
// runs independently of the reducer.
//
// The outline alpha pulses between indicatorPulseMin and indicatorPulseMax so
// the indicator stays visible over any box color.
type Indicator struct {
	registry *Registry

	target    BoxID
	hasTarget bool

	rect    Rect
	hasRect bool

	pulse  *gween.Tween
	rising bool
	alpha  float64

	// OnRect, when set, receives the republished rectangle each tick.
	OnRect func(Rect)
}

// NewIndicator creates an indicator polling the given registry.
func NewIndicator(registry *Registry) *Indicator {
	return &Indicator{
		registry: registry,
		pulse:    gween.New(indicatorPulseMax, indicatorPulseMin, indicatorPulseDuration, ease.InOutQuad),
		alpha:    indicatorPulseMax,
	}
}

// SetTarget points the indicator at a box. The previous published rectangle
// is dropped so the outline never flashes at a stale location.
func (in *Indicator) SetTarget(id BoxID) {
	if in.hasTarget && in.target == id {
		return
	}
	in.target = id
	in.hasTarget = true
	in.hasRect = false
}

// ClearTarget detaches the indicator.
func (in *Indicator) ClearTarget() {
	in.hasTarget = false
	in.hasRect = false
}

// Target returns the current target box.
func (in *Indicator) Target() (BoxID, bool) {
	return in.target, in.hasTarget
}

// Tick advances the pulse and re-reads the target's rectangle. dt is in
// seconds; call once per frame from the host clock.
func (in *Indicator) Tick(dt float32) {
	value, finished := in.pulse.Update(dt)
	in.alpha = float64(value)
	if finished {
		if in.rising {
			in.pulse = gween.New(indicatorPulseMax, indicatorPulseMin, indicatorPulseDuration, ease.InOutQuad)
		} else {
			in.pulse = gween.New(indicatorPulseMin, indicatorPulseMax, indicatorPulseDuration, ease.InOutQuad)
		}
		in.rising = !in.rising
	}

	if !in.hasTarget {
		return
	}
	if e, ok := in.registry.Lookup(in.target); ok && e.RectOf != nil {
		if rect, measured := e.RectOf(); measured {
			in.rect = rect
			in.hasRect = true
		}
	}
	if in.hasRect && in.OnRect != nil {
		in.OnRect(in.rect)
	}
}

// Rect returns the last published rectangle, if any.
func (in *Indicator) Rect() (Rect, bool) {
	return in.rect, in.hasRect
}

// Alpha returns the current pulse alpha in [indicatorPulseMin, indicatorPulseMax].
func (in *Indicator) Alpha() float64 {
	return in.alpha
}
