package moveone

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
)

const spawnOneScript = `{"steps": [
	{"action": "press", "button": "right", "x": 100, "y": 200},
	{"action": "release", "button": "right"}
]}`

// firstMover returns the only mover in the world, failing if there are
// zero or several.
func firstMover(t *testing.T, w donburi.World) *donburi.Entry {
	t.Helper()
	var entries []*donburi.Entry
	placedMoverQuery.Each(w, func(e *donburi.Entry) { entries = append(entries, e) })
	require.Len(t, entries, 1)
	return entries[0]
}

func TestRightClickSpawnsMover(t *testing.T) {
	g, m := newTestGame(t, spawnOneScript)
	runFrames(t, g, m, 2)

	require.Equal(t, 1, g.MoverCount())
	mover := firstMover(t, g.World())

	require.Equal(t, Vec2{X: 100, Y: 200}, Position.Get(mover).Vec2)

	deg := Direction.Get(mover).Degrees
	require.GreaterOrEqual(t, deg, 0.0)
	require.Less(t, deg, 360.0)

	require.Contains(t, DefaultConfig().Mover.Sprites, Sprite.Get(mover).Name)
	require.Len(t, Identity.Get(mover).ID, 8)
	require.False(t, mover.HasComponent(Move), "fresh mover has no order")
}

func TestSpawnBindsViewSameFrame(t *testing.T) {
	g, m := newTestGame(t, spawnOneScript)
	runFrames(t, g, m, 1)

	mover := firstMover(t, g.World())
	require.True(t, mover.HasComponent(View))

	node := g.Views().NodeFor(mover.Entity())
	require.NotNil(t, node)
	require.Equal(t, View.Get(mover).NodeID, node.ID)
	require.Equal(t, Sprite.Get(mover).Name, node.SpriteName)
	require.Equal(t, 100.0, node.X)
	require.Equal(t, 200.0, node.Y)
	require.Less(t, node.ScaleX, 1.0, "spawn pop starts small")
}

func TestSpawnPopSettlesAtFullScale(t *testing.T) {
	g, m := newTestGame(t, spawnOneScript)
	runFrames(t, g, m, 2)

	// Well past the pop duration (0.25 s at 60 TPS).
	runFrames(t, g, m, 60)

	mover := firstMover(t, g.World())
	node := g.Views().NodeFor(mover.Entity())
	require.NotNil(t, node)
	require.InDelta(t, 1.0, node.ScaleX, 1e-6)
	require.InDelta(t, 1.0, node.ScaleY, 1e-6)
}

func TestEachRightClickSpawns(t *testing.T) {
	g, m := newTestGame(t, `{"steps": [
		{"action": "press", "button": "right", "x": 10, "y": 10},
		{"action": "release", "button": "right"},
		{"action": "press", "button": "right", "x": 20, "y": 20},
		{"action": "release", "button": "right"},
		{"action": "press", "button": "right", "x": 30, "y": 30},
		{"action": "release", "button": "right"}
	]}`)
	runFrames(t, g, m, 6)

	require.Equal(t, 3, g.MoverCount())
	require.Equal(t, 3, g.Stage().Len())
}
