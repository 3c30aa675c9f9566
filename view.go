package moveone

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/kamstrup/intmap"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/filter"
	"go.uber.org/zap"
)

var (
	// viewlessQuery matches entities that need a render node.
	viewlessQuery = donburi.NewQuery(filter.And(
		filter.Contains(Position, Sprite),
		filter.Not(filter.Contains(View)),
	))

	// viewedQuery matches entities whose node mirrors component state.
	viewedQuery = donburi.NewQuery(filter.Contains(Position, Sprite, View))
)

// ViewSystem binds sprite entities to stage nodes and mirrors component
// state onto them every update: Position to node coordinates, Direction
// (degrees) to node rotation (radians), Sprite to the bank lookup key.
// Nodes of removed entities are disposed. New nodes play a scale-pop
// spawn tween.
//
// The node registry is the only entity-to-render link; components never
// hold node pointers, only the node id.
type ViewSystem struct {
	stage *Stage
	bank  *SpriteBank
	cfg   Config
	log   *zap.Logger

	nodes  *intmap.Map[uint64, *Node]
	bound  []donburi.Entity
	tweens []*TweenGroup
	buf    []*donburi.Entry
}

// NewViewSystem creates the view binding/mirroring system for a stage.
func NewViewSystem(stage *Stage, bank *SpriteBank, cfg Config, log *zap.Logger) *ViewSystem {
	return &ViewSystem{
		stage: stage,
		bank:  bank,
		cfg:   cfg,
		log:   log,
		nodes: intmap.New[uint64, *Node](64),
	}
}

// NodeFor returns the render node bound to an entity, or nil.
func (s *ViewSystem) NodeFor(ent donburi.Entity) *Node {
	n, ok := s.nodes.Get(uint64(ent))
	if !ok {
		return nil
	}
	return n
}

// Update runs bind, mirror, teardown, and tween passes, in that order.
func (s *ViewSystem) Update(e *ecs.ECS) {
	s.bind(e.World)
	s.mirror(e.World)
	s.teardown(e.World)

	dt := float32(1.0 / float64(ebiten.TPS()))
	live := s.tweens[:0]
	for _, tw := range s.tweens {
		tw.Update(dt)
		if !tw.Done {
			live = append(live, tw)
		}
	}
	s.tweens = live
}

// bind creates a node for every sprite entity that lacks one.
func (s *ViewSystem) bind(w donburi.World) {
	s.buf = s.buf[:0]
	viewlessQuery.Each(w, func(entry *donburi.Entry) {
		s.buf = append(s.buf, entry)
	})

	half := float64(s.bank.Size()) / 2
	for _, entry := range s.buf {
		sprite := Sprite.Get(entry)
		pos := Position.Get(entry)

		node := NewNode(sprite.Name)
		node.SpriteName = sprite.Name
		node.PivotX = half
		node.PivotY = half
		node.SetPosition(pos.X, pos.Y)
		s.stage.Add(node)

		// Spawn pop: grow from nothing with a slight overshoot.
		if s.cfg.Mover.PopDuration > 0 {
			node.SetScale(0, 0)
			s.tweens = append(s.tweens,
				TweenScale(node, 1, 1, float32(s.cfg.Mover.PopDuration), ease.OutBack))
		}

		entry.AddComponent(View)
		View.SetValue(entry, ViewData{NodeID: node.ID})
		s.nodes.Put(uint64(entry.Entity()), node)
		s.bound = append(s.bound, entry.Entity())

		s.log.Debug("view bound",
			zap.String("sprite", sprite.Name),
			zap.Uint32("node", node.ID),
		)
	}
}

// mirror copies component state onto bound nodes.
func (s *ViewSystem) mirror(w donburi.World) {
	viewedQuery.Each(w, func(entry *donburi.Entry) {
		node, ok := s.nodes.Get(uint64(entry.Entity()))
		if !ok {
			return
		}

		pos := Position.Get(entry)
		node.SetPosition(pos.X, pos.Y)

		if entry.HasComponent(Direction) {
			node.SetRotation(Direction.Get(entry).Degrees * math.Pi / 180)
		}

		// Sprite swaps are rare but legal; the bank resolves any name.
		if name := Sprite.Get(entry).Name; name != node.SpriteName {
			node.SpriteName = name
		}
	})
}

// teardown disposes nodes whose entity no longer exists.
func (s *ViewSystem) teardown(w donburi.World) {
	live := s.bound[:0]
	for _, ent := range s.bound {
		if w.Valid(ent) {
			live = append(live, ent)
			continue
		}
		if node, ok := s.nodes.Get(uint64(ent)); ok {
			node.Dispose()
			s.nodes.Del(uint64(ent))
			s.log.Debug("view unbound", zap.Uint32("node", node.ID))
		}
	}
	s.bound = live
}
