package moveone

import (
	"math/rand/v2"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"
	"go.uber.org/zap"
)

// idleMoverQuery matches movers with no active order. An entity with a
// Move component never matches, so it can never receive a second order.
var idleMoverQuery = donburi.NewQuery(filter.And(
	filter.Contains(Mover),
	filter.Not(filter.Contains(Move)),
))

// CommandSystem hands out movement orders: on every left-button press a
// uniformly random idle mover is sent to the click point. With no idle
// mover the press is silently ignored.
type CommandSystem struct {
	log *zap.Logger
	rng *rand.Rand
	buf []*donburi.Entry
}

// NewCommandSystem subscribes a command handler to mouse events on w.
func NewCommandSystem(w donburi.World, log *zap.Logger, rng *rand.Rand) *CommandSystem {
	s := &CommandSystem{log: log, rng: rng}
	MouseEventType.Subscribe(w, s.onMouse)
	return s
}

func (s *CommandSystem) onMouse(w donburi.World, ev MouseEvent) {
	if ev.Kind != MousePressed || ev.Button != MouseButtonLeft {
		return
	}

	s.buf = s.buf[:0]
	idleMoverQuery.Each(w, func(entry *donburi.Entry) {
		s.buf = append(s.buf, entry)
	})
	if len(s.buf) == 0 {
		return
	}

	entry := s.buf[s.rng.IntN(len(s.buf))]
	entry.AddComponent(Move)
	Move.SetValue(entry, MoveData{Target: ev.Pos})

	s.log.Debug("move ordered",
		zap.String("mover", moverID(entry)),
		zap.Float64("x", ev.Pos.X),
		zap.Float64("y", ev.Pos.Y),
	)
}

// moverID returns the entity's identity id, or "" if it has none.
func moverID(entry *donburi.Entry) string {
	if !entry.HasComponent(Identity) {
		return ""
	}
	return Identity.Get(entry).ID
}
