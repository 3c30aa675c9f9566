package moveone

import (
	"math/rand/v2"

	"github.com/google/uuid"
	"github.com/yohamta/donburi"
	"go.uber.org/zap"
)

// shortID returns an 8-character id for log correlation.
func shortID() string {
	return uuid.NewString()[:8]
}

// SpawnSystem creates a mover on every right-button press: position at the
// click point, random facing, a sprite picked from the configured set.
type SpawnSystem struct {
	cfg Config
	log *zap.Logger
	rng *rand.Rand
}

// NewSpawnSystem subscribes a spawn handler to mouse events on w.
func NewSpawnSystem(w donburi.World, cfg Config, log *zap.Logger, rng *rand.Rand) *SpawnSystem {
	s := &SpawnSystem{cfg: cfg, log: log, rng: rng}
	MouseEventType.Subscribe(w, s.onMouse)
	return s
}

func (s *SpawnSystem) onMouse(w donburi.World, ev MouseEvent) {
	if ev.Kind != MousePressed || ev.Button != MouseButtonRight {
		return
	}

	sprites := s.cfg.Mover.Sprites
	name := sprites[s.rng.IntN(len(sprites))]
	id := shortID()

	entry := w.Entry(w.Create(Position, Direction, Sprite, Identity, Mover))
	Position.SetValue(entry, PositionData{ev.Pos})
	Direction.SetValue(entry, DirectionData{Degrees: s.rng.Float64() * 360})
	Sprite.SetValue(entry, SpriteData{Name: name})
	Identity.SetValue(entry, IdentityData{ID: id})

	s.log.Debug("mover spawned",
		zap.String("mover", id),
		zap.String("sprite", name),
		zap.Float64("x", ev.Pos.X),
		zap.Float64("y", ev.Pos.Y),
	)
}
