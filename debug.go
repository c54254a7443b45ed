package dragbox

import (
	"fmt"
	"os"
)

// debugLogAction prints one dispatched action and the post-transition state
// to stderr. Only called when the store's debug mode is enabled.
func debugLogAction(a Action, next State) {
	drag := "-"
	if next.Drag != nil {
		drag = fmt.Sprintf("%v@(%g,%g)", next.Drag.IDs, next.Drag.DX, next.Drag.DY)
	}
	_, _ = fmt.Fprintf(os.Stderr,
		"[dragbox] %s | selected: %v | drag: %s | colliding: %d\n",
		actionName(a), next.Selected, drag, len(next.Colliding))
}

// actionName returns a short tag for an action, for logs.
func actionName(a Action) string {
	switch a.(type) {
	case Select:
		return "select"
	case MoveStart:
		return "move-start"
	case Move:
		return "move"
	case MoveEnd:
		return "move-end"
	case SetCollisions:
		return "set-collisions"
	case SetRectSnapshot:
		return "set-rect-snapshot"
	default:
		return "unknown"
	}
}
