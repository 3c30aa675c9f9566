package moveone

import (
	"fmt"
	"math/rand/v2"

	"github.com/google/uuid"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/events"
	"go.uber.org/zap"
)

// Game wires the ECS pipeline to the Ebitengine loop. Update order per
// frame: clear last frame's pulses, poll input, dispatch mouse events to
// the reactive systems, integrate movement, mirror state onto the stage.
// Draw renders the stage.
//
// Everything is single-threaded and driven by the host loop; systems
// mutate the world only inside their own update slot.
type Game struct {
	cfg   Config
	log   *zap.Logger
	world donburi.World

	pipeline *ecs.ECS
	stage    *Stage
	bank     *SpriteBank
	views    *ViewSystem

	session string
}

type options struct {
	logger *zap.Logger
	mouse  MouseSource
	rng    *rand.Rand
}

// Option customizes a Game.
type Option func(*options)

// WithLogger sets the logger. The default is zap.NewNop().
func WithLogger(l *zap.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithMouse sets the mouse source. The default polls the live cursor;
// tests pass a ScriptedMouse.
func WithMouse(m MouseSource) Option {
	return func(o *options) { o.mouse = m }
}

// WithRand sets the random source used for spawn facing, sprite choice,
// and mover selection. The default is seeded from the OS.
func WithRand(r *rand.Rand) Option {
	return func(o *options) { o.rng = r }
}

// NewGame validates cfg and builds the world, stage, and system pipeline.
func NewGame(cfg Config, opts ...Option) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("new game: %w", err)
	}

	o := options{
		logger: zap.NewNop(),
		mouse:  EbitenMouse{},
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.rng == nil {
		o.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	session := uuid.NewString()
	log := o.logger.With(zap.String("session", session))

	world := donburi.NewWorld()
	stage := NewStage()
	bank := NewSpriteBank(cfg.Mover.SpriteSize)

	input := NewInputSystem(world, o.mouse)
	NewSpawnSystem(world, cfg, log, o.rng)
	NewCommandSystem(world, log, o.rng)
	NewDestroySystem(world, cfg, log)
	views := NewViewSystem(stage, bank, cfg, log)

	g := &Game{
		cfg:      cfg,
		log:      log,
		world:    world,
		pipeline: ecs.NewECS(world),
		stage:    stage,
		bank:     bank,
		views:    views,
		session:  session,
	}

	g.pipeline.
		AddSystem(NewCleanupSystem().Update).
		AddSystem(input.Update).
		AddSystem(dispatchMouseEvents).
		AddSystem(NewMoveSystem(cfg, log).Update).
		AddSystem(views.Update)
	g.pipeline.AddRenderer(ecs.LayerDefault, g.drawStage)

	log.Info("game created",
		zap.Int("width", cfg.Window.Width),
		zap.Int("height", cfg.Window.Height),
		zap.Float64("speed", cfg.Mover.Speed),
		zap.Strings("sprites", cfg.Mover.Sprites),
	)
	return g, nil
}

// dispatchMouseEvents delivers this frame's published mouse edges to the
// subscribed reactive systems.
func dispatchMouseEvents(e *ecs.ECS) {
	events.ProcessAllEvents(e.World)
}

// Update runs one simulation frame.
func (g *Game) Update() error {
	g.pipeline.Update()
	g.stage.Update(1.0 / float64(ebiten.TPS()))
	return nil
}

// Draw renders the stage.
func (g *Game) Draw(screen *ebiten.Image) {
	g.pipeline.Draw(screen)
}

func (g *Game) drawStage(_ *ecs.ECS, screen *ebiten.Image) {
	g.stage.Draw(screen, g.bank)
}

// Layout reports the fixed logical screen size.
func (g *Game) Layout(_, _ int) (int, int) {
	return g.cfg.Window.Width, g.cfg.Window.Height
}

// World exposes the ECS world, mainly for tests and tools.
func (g *Game) World() donburi.World {
	return g.world
}

// Stage exposes the render stage.
func (g *Game) Stage() *Stage {
	return g.stage
}

// Views exposes the view system, mainly for tests and tools.
func (g *Game) Views() *ViewSystem {
	return g.views
}

// Session returns the unique id this game instance logs under.
func (g *Game) Session() string {
	return g.session
}

// MoverCount returns the number of live movers.
func (g *Game) MoverCount() int {
	count := 0
	placedMoverQuery.Each(g.world, func(*donburi.Entry) { count++ })
	return count
}

// EnableOverlay adds the FPS/mover-count widget to the stage. Call before
// the game loop starts; the widget allocates a GPU image.
func (g *Game) EnableOverlay() {
	g.stage.Add(NewFPSWidget(g.MoverCount))
}

// Run creates a window and runs the game until the host loop exits.
func Run(cfg Config, opts ...Option) error {
	g, err := NewGame(cfg, opts...)
	if err != nil {
		return err
	}
	g.EnableOverlay()

	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	if err := ebiten.RunGame(g); err != nil {
		return fmt.Errorf("run game: %w", err)
	}
	return nil
}
