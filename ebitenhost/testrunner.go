package ebitenhost

import (
	"encoding/json"
	"fmt"

	"github.com/phanxgames/heartbutton"
)

// testStep represents a single action in a test script.
//
//	{"action": "click"}                          click the button center
//	{"action": "click", "x": 10, "y": 10}        click a screen point
//	{"action": "set", "checked": true}           SetChecked without animation
//	{"action": "set", "checked": true, "animate": true}
//	{"action": "wait", "frames": 30}
//	{"action": "expect", "checked": true, "phase": "idle"}
//	{"action": "screenshot", "label": "after-toggle"}
type testStep struct {
	Action  string   `json:"action"`
	Label   string   `json:"label,omitempty"`
	X       *float64 `json:"x,omitempty"`
	Y       *float64 `json:"y,omitempty"`
	Frames  int      `json:"frames,omitempty"`
	Checked *bool    `json:"checked,omitempty"`
	Animate bool     `json:"animate,omitempty"`
	Phase   string   `json:"phase,omitempty"`
}

// testScript is the top-level JSON structure for a test script.
type testScript struct {
	Steps []testStep `json:"steps"`
}

// TestRunner sequences injected input, state changes, expectations and
// screenshots across frames. Attach to a Host via SetTestRunner.
type TestRunner struct {
	steps     []testStep
	cursor    int
	waitCount int
	done      bool
	failures  []string
}

// LoadTestScript parses a JSON test script.
func LoadTestScript(jsonData []byte) (*TestRunner, error) {
	var script testScript
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("parse test script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse test script: no steps")
	}
	for i, st := range script.Steps {
		switch st.Action {
		case "screenshot", "click", "wait", "expect":
		case "set":
			if st.Checked == nil {
				return nil, fmt.Errorf("parse test script: step %d: set needs \"checked\"", i)
			}
		default:
			return nil, fmt.Errorf("parse test script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &TestRunner{steps: script.Steps}, nil
}

// SetTestRunner attaches a TestRunner. Its step method runs at the start of
// every Update, before input is processed.
func (h *Host) SetTestRunner(runner *TestRunner) {
	h.testRunner = runner
}

// Done reports whether all steps have been executed.
func (r *TestRunner) Done() bool {
	return r.done
}

// Failures lists the expectations that did not hold.
func (r *TestRunner) Failures() []string {
	return r.failures
}

// step advances the test runner by one frame.
func (r *TestRunner) step(h *Host) {
	if r.done {
		return
	}
	// Wait for pending injections to drain before advancing.
	if len(h.injectQueue) > 0 {
		return
	}
	if r.waitCount > 0 {
		r.waitCount--
		return
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	r.cursor++

	b := h.button
	switch st.Action {
	case "screenshot":
		h.Screenshot(st.Label)
	case "click":
		if st.X != nil && st.Y != nil {
			h.InjectClick(*st.X, *st.Y)
		} else {
			h.InjectButtonClick()
		}
	case "set":
		b.SetChecked(*st.Checked, st.Animate)
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	case "expect":
		r.expect(r.cursor-1, st, b)
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 && len(h.injectQueue) == 0 {
		r.done = true
	}
}

func (r *TestRunner) expect(index int, st testStep, b *heartbutton.Button) {
	if st.Checked != nil && b.Checked() != *st.Checked {
		r.fail(index, "checked = %v, want %v", b.Checked(), *st.Checked)
	}
	if st.Phase != "" && b.Phase().String() != st.Phase {
		r.fail(index, "phase = %v, want %s", b.Phase(), st.Phase)
	}
}

func (r *TestRunner) fail(index int, format string, args ...any) {
	msg := fmt.Sprintf("step %d: ", index) + fmt.Sprintf(format, args...)
	r.failures = append(r.failures, msg)
	heartbutton.Logger().Warn("ebitenhost: expectation failed", "detail", msg)
}
