package moveone

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"
	"go.uber.org/zap"
)

// placedMoverQuery matches movers that exist in the world with a position.
var placedMoverQuery = donburi.NewQuery(filter.Contains(Mover, Position))

// DestroySystem removes movers: on a middle-button press the mover nearest
// to the click point is despawned, provided it lies within the configured
// despawn radius. Its render node is torn down by the view system on the
// same update.
type DestroySystem struct {
	cfg Config
	log *zap.Logger
}

// NewDestroySystem subscribes a despawn handler to mouse events on w.
func NewDestroySystem(w donburi.World, cfg Config, log *zap.Logger) *DestroySystem {
	s := &DestroySystem{cfg: cfg, log: log}
	MouseEventType.Subscribe(w, s.onMouse)
	return s
}

func (s *DestroySystem) onMouse(w donburi.World, ev MouseEvent) {
	if ev.Kind != MousePressed || ev.Button != MouseButtonMiddle {
		return
	}

	var nearest *donburi.Entry
	best := s.cfg.Mover.DespawnRadius
	placedMoverQuery.Each(w, func(entry *donburi.Entry) {
		d := Position.Get(entry).DistanceTo(ev.Pos)
		if d <= best {
			nearest = entry
			best = d
		}
	})
	if nearest == nil {
		return
	}

	s.log.Debug("mover despawned",
		zap.String("mover", moverID(nearest)),
		zap.Float64("distance", best),
	)
	w.Remove(nearest.Entity())
}
