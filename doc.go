// Package moveone is a click-to-command sprite demo wiring [Ebitengine]
// input and rendering into a [Donburi] ECS world.
//
// Right-click spawns a mover at the cursor with a random facing. Left-click
// sends a random idle mover walking to the click point. Middle-click
// despawns the nearest mover. Simulation state lives entirely in plain
// Donburi components; a small retained stage mirrors that state onto
// screen every frame.
//
// # Quick start
//
//	if err := moveone.Run(moveone.DefaultConfig()); err != nil {
//		log.Fatal(err)
//	}
//
// For full control, build a [Game] yourself and hand it to Ebitengine:
//
//	g, err := moveone.NewGame(cfg, moveone.WithLogger(logger))
//	...
//	err = ebiten.RunGame(g)
//
// # Pipeline
//
// Each update runs, in order: pulse cleanup, input polling, mouse event
// dispatch (spawn/command/despawn react here), movement integration, and
// view mirroring. Draw renders the stage's nodes z-sorted. Everything is
// single-threaded and driven by the host loop.
//
// Input can be replaced with a [ScriptedMouse] for deterministic,
// headless frame-by-frame tests; see the package tests for the idiom.
//
// [Ebitengine]: https://ebitengine.org
// [Donburi]: https://github.com/yohamta/donburi
package moveone
