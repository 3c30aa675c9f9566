package moveone

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/filter"
	"go.uber.org/zap"
)

var (
	movingQuery    = donburi.NewQuery(filter.Contains(Position, Direction, Move))
	completedQuery = donburi.NewQuery(filter.Contains(MoveComplete))
)

// MoveSystem advances every entity with an active order toward its target
// at the configured speed. Facing follows the target. On arriving within
// the arrive distance the order is removed and a MoveComplete pulse added.
//
// The step is clamped to the remaining distance, so the distance to the
// target decreases monotonically and the entity never overshoots.
type MoveSystem struct {
	cfg Config
	log *zap.Logger
	buf []*donburi.Entry
}

// NewMoveSystem returns a movement integrator using cfg's speed and
// arrive distance.
func NewMoveSystem(cfg Config, log *zap.Logger) *MoveSystem {
	return &MoveSystem{cfg: cfg, log: log}
}

// Update runs one fixed-timestep movement integration pass.
func (s *MoveSystem) Update(e *ecs.ECS) {
	dt := 1.0 / float64(ebiten.TPS())
	speed := s.cfg.Mover.Speed * dt

	// Collect first: arrival mutates the entity's component set.
	s.buf = s.buf[:0]
	movingQuery.Each(e.World, func(entry *donburi.Entry) {
		s.buf = append(s.buf, entry)
	})

	for _, entry := range s.buf {
		pos := Position.Get(entry)
		target := Move.Get(entry).Target

		delta := target.Sub(pos.Vec2)
		dist := delta.Len()
		if dist > 0 {
			Direction.SetValue(entry, DirectionData{Degrees: delta.AngleDegrees()})
			step := speed
			if step > dist {
				step = dist
			}
			pos.Vec2 = pos.Vec2.Add(delta.Norm().Scale(step))
			dist -= step
		}

		if dist <= s.cfg.Mover.ArriveDistance {
			entry.RemoveComponent(Move)
			entry.AddComponent(MoveComplete)
			s.log.Debug("move complete", zap.String("mover", moverID(entry)))
		}
	}
}

// CleanupSystem clears MoveComplete pulses. It runs first in the pipeline,
// so a pulse added by MoveSystem stays observable for exactly one full
// update before it is removed.
type CleanupSystem struct {
	buf []*donburi.Entry
}

// NewCleanupSystem returns the pulse-clearing system.
func NewCleanupSystem() *CleanupSystem {
	return &CleanupSystem{}
}

// Update removes every MoveComplete added during the previous update.
func (s *CleanupSystem) Update(e *ecs.ECS) {
	s.buf = s.buf[:0]
	completedQuery.Each(e.World, func(entry *donburi.Entry) {
		s.buf = append(s.buf, entry)
	})
	for _, entry := range s.buf {
		entry.RemoveComponent(MoveComplete)
	}
}
