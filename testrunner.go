package scrubline

import (
	"encoding/json"
	"errors"
	"fmt"
)

// testStep is one entry of a JSON test script. Which fields matter depends
// on Action:
//
//	screenshot  label
//	scroll      dy, frames (spread over frames, default 1)
//	scrollTo    y
//	pointer     x, y
//	drag        fromX, fromY, toX, toY, frames (minimum 2)
//	resize      width, height
//	wait        frames
type testStep struct {
	Action string  `json:"action"`
	Label  string  `json:"label,omitempty"`
	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	DY     float64 `json:"dy,omitempty"`
	Width  float64 `json:"width,omitempty"`
	Height float64 `json:"height,omitempty"`
	FromX  float64 `json:"fromX,omitempty"`
	FromY  float64 `json:"fromY,omitempty"`
	ToX    float64 `json:"toX,omitempty"`
	ToY    float64 `json:"toY,omitempty"`
	Frames int     `json:"frames,omitempty"`
}

// check rejects steps the runner could not replay.
func (st testStep) check() error {
	switch st.Action {
	case "screenshot", "scroll", "scrollTo", "pointer", "drag":
		return nil
	case "resize":
		if st.Width <= 0 || st.Height <= 0 {
			return fmt.Errorf("resize needs a positive size, got %gx%g", st.Width, st.Height)
		}
		return nil
	case "wait":
		if st.Frames < 0 {
			return errors.New("wait frames must not be negative")
		}
		return nil
	}
	return fmt.Errorf("unknown action %q", st.Action)
}

// run queues the step's input on s and returns how many extra frames the
// runner should idle afterwards.
func (st testStep) run(s *Scene) int {
	switch st.Action {
	case "screenshot":
		s.Screenshot(st.Label)
	case "scroll":
		s.InjectSwipe(st.DY, st.Frames)
	case "scrollTo":
		s.InjectScrollTo(st.Y)
	case "pointer":
		s.InjectPointerMove(st.X, st.Y)
	case "drag":
		s.InjectDrag(st.FromX, st.FromY, st.ToX, st.ToY, st.Frames)
	case "resize":
		s.InjectResize(st.Width, st.Height)
	case "wait":
		// The frame that starts the wait counts as the first.
		return max(st.Frames-1, 0)
	}
	return 0
}

// TestRunner replays a scripted sequence of scroll, pointer and resize input
// and screenshots, one step per frame once the previous step's injected
// events have drained. Attach it with Scene.SetTestRunner.
type TestRunner struct {
	steps []testStep
	next  int
	idle  int
	done  bool
}

// LoadTestScript parses a script of the form {"steps": [...]}.
func LoadTestScript(jsonData []byte) (*TestRunner, error) {
	var script struct {
		Steps []testStep `json:"steps"`
	}
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("parse test script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, errors.New("parse test script: no steps")
	}
	for i, st := range script.Steps {
		if err := st.check(); err != nil {
			return nil, fmt.Errorf("parse test script: step %d: %w", i, err)
		}
	}
	return &TestRunner{steps: script.Steps}, nil
}

// SetTestRunner attaches runner; it advances at the start of every Update.
func (s *Scene) SetTestRunner(runner *TestRunner) {
	s.testRunner = runner
}

// Done reports whether every step has run and its input has been consumed.
func (r *TestRunner) Done() bool {
	return r.done
}

func (r *TestRunner) step(s *Scene) {
	if r.done || len(s.injectQueue) > 0 {
		return
	}
	if r.idle > 0 {
		r.idle--
		return
	}
	if r.next == len(r.steps) {
		r.done = true
		return
	}
	r.idle = r.steps[r.next].run(s)
	r.next++
	if r.next == len(r.steps) && r.idle == 0 && len(s.injectQueue) == 0 {
		r.done = true
	}
}
