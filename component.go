package moveone

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// --- Simulation components ---

// PositionData is an entity's world location.
type PositionData struct {
	Vec2
}

// DirectionData is an entity's facing angle in degrees, measured from +X
// toward +Y (screen-down).
type DirectionData struct {
	Degrees float64
}

// SpriteData selects the entity's visual by sprite bank name.
type SpriteData struct {
	Name string
}

// ViewData links an entity to its render node. The node is owned by the
// Stage; the component is a handle only.
type ViewData struct {
	NodeID uint32
}

// MoveData is an active movement order. Removed when the entity arrives.
type MoveData struct {
	Target Vec2
}

// IdentityData is a short unique id attached to spawned movers, used for
// log correlation only.
type IdentityData struct {
	ID string
}

var (
	Position  = donburi.NewComponentType[PositionData]()
	Direction = donburi.NewComponentType[DirectionData]()
	Sprite    = donburi.NewComponentType[SpriteData]()
	View      = donburi.NewComponentType[ViewData]()
	Move      = donburi.NewComponentType[MoveData]()
	Identity  = donburi.NewComponentType[IdentityData]()

	// Mover marks an entity as eligible for movement orders.
	Mover = donburi.NewTag()

	// MoveComplete is a one-frame pulse added when a move order finishes.
	// It is cleared at the start of the next update.
	MoveComplete = donburi.NewTag()
)

// --- Input components ---

// MouseSnapshot is a per-frame cursor position snapshot. MouseDown and
// MouseUp appear only on the edge frame; MousePos is refreshed while the
// button is held.
type MouseSnapshot struct {
	Vec2
}

var (
	MouseDown = donburi.NewComponentType[MouseSnapshot]()
	MousePos  = donburi.NewComponentType[MouseSnapshot]()
	MouseUp   = donburi.NewComponentType[MouseSnapshot]()

	// LeftMouse and RightMouse tag the two unique input entities.
	LeftMouse  = donburi.NewTag()
	RightMouse = donburi.NewTag()
)

// --- Event bridge ---

// MouseEventKind distinguishes press and release events.
type MouseEventKind uint8

const (
	MousePressed MouseEventKind = iota
	MouseReleased
)

// MouseEvent is published on button edges. Reactive systems subscribe to
// MouseEventType instead of polling the input singletons.
type MouseEvent struct {
	Kind   MouseEventKind
	Button MouseButton
	Pos    Vec2
}

// MouseEventType is the Donburi event type for mouse edges. Events are
// queued on publish and delivered during the dispatch step of the update
// pipeline.
var MouseEventType = events.NewEventType[MouseEvent]()
