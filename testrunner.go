package favebutton

import (
	"encoding/json"
	"fmt"
)

// testStep is a single action in a test script.
type testStep struct {
	Action   string  `json:"action"`
	Label    string  `json:"label,omitempty"`
	X        float64 `json:"x,omitempty"`
	Y        float64 `json:"y,omitempty"`
	Frames   int     `json:"frames,omitempty"`
	Selected bool    `json:"selected,omitempty"`
	Animated bool    `json:"animated,omitempty"`
}

// testScript is the top-level JSON structure for a test script.
type testScript struct {
	Steps []testStep `json:"steps"`
}

// TestRunner sequences injected input and button actions across frames
// for automated testing. Attach it to a Scene with SetTestRunner.
//
// Supported actions:
//
//	{"action": "click", "x": 100, "y": 100}
//	{"action": "wait", "frames": 30}
//	{"action": "toggle", "label": "heart"}
//	{"action": "select", "label": "heart", "selected": true, "animated": true}
//	{"action": "screenshot", "label": "after-select"}
//
// For toggle and select, label names the button's node.
type TestRunner struct {
	steps     []testStep
	cursor    int
	waitCount int
	done      bool
}

// LoadTestScript parses a JSON test script and returns a TestRunner ready
// to be attached to a Scene via SetTestRunner.
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
		case "click", "wait", "screenshot":
		case "toggle", "select":
			if st.Label == "" {
				return nil, fmt.Errorf("parse test script: step %d: %s needs a label", i, st.Action)
			}
		default:
			return nil, fmt.Errorf("parse test script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &TestRunner{steps: script.Steps}, nil
}

// SetTestRunner attaches a TestRunner to the scene. The runner advances
// once per frame, before input is processed.
func (s *Scene) SetTestRunner(runner *TestRunner) {
	s.testRunner = runner
}

// Done reports whether all steps in the test script have been executed.
func (r *TestRunner) Done() bool {
	return r.done
}

// step advances the test runner by one frame.
func (r *TestRunner) step(s *Scene) {
	if r.done {
		return
	}
	// Wait for pending injections to drain before advancing.
	if len(s.injectQueue) > 0 {
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

	switch st.Action {
	case "screenshot":
		s.Screenshot(st.Label)
	case "click":
		s.InjectClick(st.X, st.Y)
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	case "toggle":
		if b := s.findButton(st.Label); b != nil {
			b.Toggle()
		}
	case "select":
		if b := s.findButton(st.Label); b != nil {
			b.SetSelected(st.Selected, st.Animated)
		}
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 && len(s.injectQueue) == 0 {
		r.done = true
	}
}

// findButton returns the button whose node is named name, or nil.
func (s *Scene) findButton(name string) *Button {
	n := s.root.Find(name)
	if n == nil {
		logger.Warn("test script: no node", "label", name)
		return nil
	}
	b, ok := n.UserData.(*Button)
	if !ok {
		logger.Warn("test script: node is not a button", "label", name)
		return nil
	}
	return b
}
