package moveone

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/filter"
)

// MouseSource abstracts mouse polling so tests can inject scripted input.
// The zero implementation is EbitenMouse, which reads the real cursor.
type MouseSource interface {
	CursorPosition() (x, y float64)
	IsButtonPressed(b MouseButton) bool
}

// EbitenMouse polls the live Ebitengine cursor and buttons.
type EbitenMouse struct{}

// CursorPosition returns the current cursor position in screen coordinates.
func (EbitenMouse) CursorPosition() (float64, float64) {
	x, y := ebiten.CursorPosition()
	return float64(x), float64(y)
}

// IsButtonPressed reports whether the given button is currently held.
func (EbitenMouse) IsButtonPressed(b MouseButton) bool {
	switch b {
	case MouseButtonLeft:
		return ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	case MouseButtonRight:
		return ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight)
	case MouseButtonMiddle:
		return ebiten.IsMouseButtonPressed(ebiten.MouseButtonMiddle)
	default:
		return false
	}
}

// pollButtons is the set of buttons the input system tracks.
var pollButtons = [...]MouseButton{MouseButtonLeft, MouseButtonRight, MouseButtonMiddle}

// InputSystem polls the mouse once per update and maintains the two input
// singleton entities: MouseDown on a press edge, MousePos while held,
// MouseUp on a release edge. Edges are also published as MouseEvents for
// the reactive systems.
//
// Snapshots never outlive their frame: stale MouseDown/MouseUp components
// are dropped at the start of the next poll.
type InputSystem struct {
	mouse MouseSource
	held  [len(pollButtons)]bool

	left  donburi.Entity
	right donburi.Entity
}

// NewInputSystem creates the input system and its two singleton entities
// in the world. Middle-button edges are published as events only; the
// input singletons cover left and right.
func NewInputSystem(w donburi.World, mouse MouseSource) *InputSystem {
	s := &InputSystem{mouse: mouse}
	s.left = w.Create(LeftMouse)
	s.right = w.Create(RightMouse)
	return s
}

// entryFor returns the singleton entry carrying snapshots for a button,
// or nil for buttons without one.
func (s *InputSystem) entryFor(w donburi.World, b MouseButton) *donburi.Entry {
	switch b {
	case MouseButtonLeft:
		return w.Entry(s.left)
	case MouseButtonRight:
		return w.Entry(s.right)
	default:
		return nil
	}
}

// Update runs the per-frame poll. Registered right after cleanup so every
// later system sees this frame's snapshots.
func (s *InputSystem) Update(e *ecs.ECS) {
	x, y := s.mouse.CursorPosition()
	pos := Vec2{X: x, Y: y}

	for i, b := range pollButtons {
		pressed := s.mouse.IsButtonPressed(b)
		entry := s.entryFor(e.World, b)

		if entry != nil {
			// Drop last frame's edge snapshots.
			if entry.HasComponent(MouseDown) {
				entry.RemoveComponent(MouseDown)
			}
			if entry.HasComponent(MouseUp) {
				entry.RemoveComponent(MouseUp)
			}
		}

		switch {
		case pressed && !s.held[i]:
			if entry != nil {
				addOrSet(entry, MouseDown, MouseSnapshot{pos})
				addOrSet(entry, MousePos, MouseSnapshot{pos})
			}
			MouseEventType.Publish(e.World, MouseEvent{Kind: MousePressed, Button: b, Pos: pos})
		case pressed:
			if entry != nil {
				addOrSet(entry, MousePos, MouseSnapshot{pos})
			}
		case !pressed && s.held[i]:
			if entry != nil {
				addOrSet(entry, MouseUp, MouseSnapshot{pos})
				entry.RemoveComponent(MousePos)
			}
			MouseEventType.Publish(e.World, MouseEvent{Kind: MouseReleased, Button: b, Pos: pos})
		}
		s.held[i] = pressed
	}
}

// addOrSet replaces the component value, adding the component first if the
// entity does not yet carry it.
func addOrSet(entry *donburi.Entry, c *donburi.ComponentType[MouseSnapshot], v MouseSnapshot) {
	if !entry.HasComponent(c) {
		entry.AddComponent(c)
	}
	c.SetValue(entry, v)
}

var (
	leftMouseQuery  = donburi.NewQuery(filter.Contains(LeftMouse))
	rightMouseQuery = donburi.NewQuery(filter.Contains(RightMouse))
)

// LeftMouseEntry returns the left-mouse input singleton.
func LeftMouseEntry(w donburi.World) (*donburi.Entry, bool) {
	return leftMouseQuery.First(w)
}

// RightMouseEntry returns the right-mouse input singleton.
func RightMouseEntry(w donburi.World) (*donburi.Entry, bool) {
	return rightMouseQuery.First(w)
}
