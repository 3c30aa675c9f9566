package moveone

import (
	"encoding/json"
	"fmt"
)

// mouseStep represents a single action in a mouse script.
type mouseStep struct {
	Action string  `json:"action"` // "press", "release", "move", "wait"
	Button string  `json:"button,omitempty"`
	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	Frames int     `json:"frames,omitempty"`
}

// mouseScript is the top-level JSON structure for a mouse script.
type mouseScript struct {
	Steps []mouseStep `json:"steps"`
}

// ScriptedMouse is a MouseSource that replays a scripted sequence of
// press/release/move/wait actions, one script step per frame (waits span
// several). Tests call Step before each Game.Update to advance it.
type ScriptedMouse struct {
	steps     []mouseStep
	cursor    int
	waitCount int

	x, y float64
	down [3]bool
}

// LoadMouseScript parses a JSON mouse script.
func LoadMouseScript(jsonData []byte) (*ScriptedMouse, error) {
	var script mouseScript
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("parse mouse script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse mouse script: no steps")
	}
	return &ScriptedMouse{steps: script.Steps}, nil
}

// CursorPosition returns the scripted cursor position.
func (m *ScriptedMouse) CursorPosition() (float64, float64) {
	return m.x, m.y
}

// IsButtonPressed reports the scripted button state.
func (m *ScriptedMouse) IsButtonPressed(b MouseButton) bool {
	if int(b) >= len(m.down) {
		return false
	}
	return m.down[b]
}

// Done reports whether all steps have been executed.
func (m *ScriptedMouse) Done() bool {
	return m.cursor >= len(m.steps) && m.waitCount == 0
}

// Step advances the script by one frame.
func (m *ScriptedMouse) Step() {
	if m.waitCount > 0 {
		m.waitCount--
		return
	}
	if m.cursor >= len(m.steps) {
		return
	}

	st := m.steps[m.cursor]
	m.cursor++

	switch st.Action {
	case "press":
		m.x, m.y = st.X, st.Y
		m.down[buttonFromName(st.Button)] = true
	case "release":
		if st.X != 0 || st.Y != 0 {
			m.x, m.y = st.X, st.Y
		}
		m.down[buttonFromName(st.Button)] = false
	case "move":
		m.x, m.y = st.X, st.Y
	case "wait":
		if st.Frames > 1 {
			m.waitCount = st.Frames - 1 // this frame counts as one
		}
	}
}

// buttonFromName maps a script button name to a MouseButton. Unknown names
// fall back to the left button.
func buttonFromName(name string) MouseButton {
	switch name {
	case "right":
		return MouseButtonRight
	case "middle":
		return MouseButtonMiddle
	default:
		return MouseButtonLeft
	}
}
