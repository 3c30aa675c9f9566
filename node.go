package moveone

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// nodeIDCounter is a plain counter (no atomic — the stage is single-threaded).
var nodeIDCounter uint32

func nextNodeID() uint32 {
	nodeIDCounter++
	return nodeIDCounter
}

// Node is a render object on the Stage. A single flat struct is used for all
// nodes to avoid interface dispatch on the hot path. Nodes carry no game
// logic; the view systems mirror component state onto them.
type Node struct {
	// Identity
	ID   uint32
	Name string

	// Transform
	X, Y     float64
	ScaleX   float64
	ScaleY   float64
	Rotation float64 // radians
	PivotX   float64
	PivotY   float64

	// Appearance
	Alpha   float64
	Visible bool
	Color   Color
	ZIndex  int

	// Sprite lookup key into the SpriteBank. Empty for custom-image nodes.
	SpriteName string

	// customImage, when non-nil, is drawn instead of the bank sprite.
	customImage *ebiten.Image

	// OnUpdate, when set, runs once per frame with the frame delta in
	// seconds. Used by overlay widgets such as the FPS counter.
	OnUpdate func(dt float64)

	disposed bool
}

// NewNode creates a visible node with identity transform and white tint.
func NewNode(name string) *Node {
	return &Node{
		ID:      nextNodeID(),
		Name:    name,
		ScaleX:  1,
		ScaleY:  1,
		Alpha:   1,
		Visible: true,
		Color:   ColorWhite,
	}
}

// SetCustomImage attaches a caller-owned image drawn in place of a bank
// sprite.
func (n *Node) SetCustomImage(img *ebiten.Image) {
	n.customImage = img
}

// SetPosition sets the node's X and Y.
func (n *Node) SetPosition(x, y float64) {
	n.X = x
	n.Y = y
}

// SetRotation sets the node's rotation in radians.
func (n *Node) SetRotation(r float64) {
	n.Rotation = r
}

// SetScale sets the node's ScaleX and ScaleY.
func (n *Node) SetScale(sx, sy float64) {
	n.ScaleX = sx
	n.ScaleY = sy
}

// Dispose marks the node dead. The stage drops disposed nodes on its next
// update; holding a *Node after Dispose is safe but draws nothing.
func (n *Node) Dispose() {
	n.disposed = true
}

// IsDisposed reports whether Dispose has been called.
func (n *Node) IsDisposed() bool {
	return n.disposed
}

// Stage owns the flat list of render nodes. There is no hierarchy: the
// demo's views are independent sprites, so parent transforms would be
// dead weight.
type Stage struct {
	ClearColor Color

	nodes   []*Node
	drawBuf []*Node // z-sorted scratch, reused across frames
}

// NewStage creates an empty stage with a dark clear color.
func NewStage() *Stage {
	return &Stage{
		ClearColor: Color{R: 0.06, G: 0.06, B: 0.09, A: 1},
	}
}

// Add puts a node on the stage.
func (s *Stage) Add(n *Node) {
	s.nodes = append(s.nodes, n)
}

// Len returns the number of live nodes.
func (s *Stage) Len() int {
	return len(s.nodes)
}

// Find returns the node with the given ID, or nil.
func (s *Stage) Find(id uint32) *Node {
	for _, n := range s.nodes {
		if n.ID == id {
			return n
		}
	}
	return nil
}

// Update drops disposed nodes and runs per-node update hooks.
func (s *Stage) Update(dt float64) {
	live := s.nodes[:0]
	for _, n := range s.nodes {
		if n.disposed {
			continue
		}
		live = append(live, n)
		if n.OnUpdate != nil {
			n.OnUpdate(dt)
		}
	}
	// Clear trailing slots so dropped nodes can be collected.
	for i := len(live); i < len(s.nodes); i++ {
		s.nodes[i] = nil
	}
	s.nodes = live
}
