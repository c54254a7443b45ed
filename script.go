package dragbox

import (
	"encoding/json"
	"fmt"
)

// scriptStep represents a single action in a gesture script.
type scriptStep struct {
	Action string  `json:"action"`
	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	FromX  float64 `json:"fromX,omitempty"`
	FromY  float64 `json:"fromY,omitempty"`
	ToX    float64 `json:"toX,omitempty"`
	ToY    float64 `json:"toY,omitempty"`
	Frames int     `json:"frames,omitempty"`
}

// gestureScript is the top-level JSON structure for a gesture script.
type gestureScript struct {
	Steps []scriptStep `json:"steps"`
}

// ScriptRunner sequences injected pointer gestures across ticks for
// automated demos and reproduction of interaction bugs. Call Step once per
// frame before Surface.Update; each step waits for the inject queue to drain
// before feeding the next gesture.
//
// Supported actions: "press", "move", "release", "click" (x/y), "drag"
// (fromX/fromY/toX/toY/frames), and "wait" (frames).
type ScriptRunner struct {
	steps     []scriptStep
	cursor    int
	waitCount int
	done      bool
}

// LoadScript parses a JSON gesture script.
func LoadScript(jsonData []byte) (*ScriptRunner, error) {
	var script gestureScript
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("dragbox: parse gesture script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("dragbox: parse gesture script: no steps")
	}
	for i, step := range script.Steps {
		switch step.Action {
		case "press", "move", "release", "click", "drag", "wait":
		default:
			return nil, fmt.Errorf("dragbox: parse gesture script: step %d has unknown action %q", i, step.Action)
		}
	}
	return &ScriptRunner{steps: script.Steps}, nil
}

// Done reports whether all steps have been executed.
func (r *ScriptRunner) Done() bool {
	return r.done
}

// Step advances the runner by one frame, feeding the surface's inject queue.
func (r *ScriptRunner) Step(s *Surface) {
	if r.done {
		return
	}
	if r.waitCount > 0 {
		r.waitCount--
		return
	}
	if len(s.injectQueue) > 0 {
		return
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	step := r.steps[r.cursor]
	r.cursor++
	switch step.Action {
	case "press":
		s.InjectPress(step.X, step.Y)
	case "move":
		s.InjectMove(step.X, step.Y)
	case "release":
		s.InjectRelease(step.X, step.Y)
	case "click":
		s.InjectClick(step.X, step.Y)
	case "drag":
		s.InjectDrag(step.FromX, step.FromY, step.ToX, step.ToY, step.Frames)
	case "wait":
		r.waitCount = step.Frames
	}
}
