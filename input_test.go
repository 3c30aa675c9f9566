package moveone

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
)

func TestMouseDownIsOneFrameSnapshot(t *testing.T) {
	g, m := newTestGame(t, `{"steps": [
		{"action": "press", "button": "left", "x": 40, "y": 50},
		{"action": "wait", "frames": 2},
		{"action": "release", "button": "left"}
	]}`)

	runFrames(t, g, m, 1) // press frame
	left, ok := LeftMouseEntry(g.World())
	require.True(t, ok)
	require.True(t, left.HasComponent(MouseDown))
	require.Equal(t, Vec2{X: 40, Y: 50}, MouseDown.Get(left).Vec2)
	require.True(t, left.HasComponent(MousePos))

	runFrames(t, g, m, 1) // held frame
	require.False(t, left.HasComponent(MouseDown), "down snapshot must not outlive its frame")
	require.True(t, left.HasComponent(MousePos))

	runFrames(t, g, m, 2) // held, then release frame
	require.True(t, left.HasComponent(MouseUp))
	require.False(t, left.HasComponent(MousePos))

	runFrames(t, g, m, 1)
	require.False(t, left.HasComponent(MouseUp), "up snapshot must not outlive its frame")
}

func TestMousePosFollowsDrag(t *testing.T) {
	g, m := newTestGame(t, `{"steps": [
		{"action": "press", "button": "right", "x": 10, "y": 10},
		{"action": "move", "x": 30, "y": 60},
		{"action": "release", "button": "right"}
	]}`)

	runFrames(t, g, m, 1)
	right, ok := RightMouseEntry(g.World())
	require.True(t, ok)
	require.Equal(t, Vec2{X: 10, Y: 10}, MousePos.Get(right).Vec2)

	runFrames(t, g, m, 1)
	require.Equal(t, Vec2{X: 30, Y: 60}, MousePos.Get(right).Vec2)
}

func TestMouseEdgeEventsPublished(t *testing.T) {
	g, m := newTestGame(t, `{"steps": [
		{"action": "press", "button": "middle", "x": 5, "y": 6},
		{"action": "release", "button": "middle"}
	]}`)

	var got []MouseEvent
	MouseEventType.Subscribe(g.World(), func(_ donburi.World, ev MouseEvent) {
		got = append(got, ev)
	})

	runFrames(t, g, m, 2)

	require.Len(t, got, 2)
	require.Equal(t, MouseEvent{Kind: MousePressed, Button: MouseButtonMiddle, Pos: Vec2{X: 5, Y: 6}}, got[0])
	require.Equal(t, MouseReleased, got[1].Kind)
}

func TestHeldButtonEmitsSingleEdge(t *testing.T) {
	g, m := newTestGame(t, `{"steps": [
		{"action": "press", "button": "left", "x": 1, "y": 1},
		{"action": "wait", "frames": 5},
		{"action": "release", "button": "left"}
	]}`)

	presses := 0
	MouseEventType.Subscribe(g.World(), func(_ donburi.World, ev MouseEvent) {
		if ev.Kind == MousePressed {
			presses++
		}
	})

	runFrames(t, g, m, 7)
	require.Equal(t, 1, presses)
}
