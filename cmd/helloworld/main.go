package main

import (
	"flag"
	"image/color"
	"log/slog"
	"math/rand/v2"
	"os"

	"github.com/jakecoffman/cp/v2"
	"github.com/oliverbestmann/willengine/ecs"
	"github.com/oliverbestmann/willengine/engine"
	"github.com/oliverbestmann/willengine/physics"
	"github.com/pkg/profile"
)

// Player marks the entity steered by the keyboard.
type Player struct{}

const playerSpeed = 2.0

func main() {
	width := flag.Int("width", 800, "window width")
	height := flag.Int("height", 600, "window height")
	fullscreen := flag.Bool("fullscreen", false, "start in fullscreen mode")
	boxes := flag.Int("boxes", 8, "number of bouncing boxes")
	profiling := flag.String("profile", "", "write a cpu or mem profile")
	verbose := flag.Bool("verbose", false, "enable debug logging")
	flag.Parse()

	if *verbose {
		slog.SetLogLoggerLevel(slog.LevelDebug)
	}

	switch *profiling {
	case "cpu":
		defer profile.Start(profile.CPUProfile).Stop()
	case "mem":
		defer profile.Start(profile.MemProfile).Stop()
	}

	e := engine.New()

	e.Startup(engine.Config{
		WindowWidth:    *width,
		WindowHeight:   *height,
		WindowName:     "hello",
		Fullscreen:     *fullscreen,
		TicksPerSecond: 60,
	})

	setupScene(e, *boxes)

	if err := e.Run(update); err != nil {
		slog.Error("Game loop failed", slog.Any("err", err))
		os.Exit(1)
	}
}

func setupScene(e *engine.Engine, boxes int) {
	player := e.Spawn("Player",
		cp.Vector{},
		cp.Vector{},
		cp.Vector{X: 12, Y: 12},
		color.RGBA{R: 0x4c, G: 0xaf, B: 0x50, A: 0xff},
	)

	ecs.Insert(e.ECS, player, Player{})

	bounds := e.WorldBounds()

	for range boxes {
		position := cp.Vector{
			X: bounds.L + rand.Float64()*(bounds.R-bounds.L),
			Y: bounds.B + rand.Float64()*(bounds.T-bounds.B),
		}

		velocity := cp.Vector{
			X: rand.Float64()*4 - 2,
			Y: rand.Float64()*4 - 2,
		}

		size := rand.Float64()*10 + 4

		e.Spawn("Box", position, velocity, cp.Vector{X: size, Y: size}, color.RGBA{
			R: uint8(rand.IntN(200) + 55),
			G: uint8(rand.IntN(200) + 55),
			B: uint8(rand.IntN(200) + 55),
			A: 0xff,
		})
	}
}

func update(e *engine.Engine) {
	if e.KeyIsPressed(engine.KeyEscape) {
		e.Shutdown()
		return
	}

	ecs.ForEach2[Player, physics.Rigidbody](e.ECS, func(player ecs.EntityId) {
		steerPlayer(e, player)
	})

	// boxes stopped by a wall get a new push
	ecs.ForEach2[physics.Rigidbody, engine.Name](e.ECS, func(entityId ecs.EntityId) {
		if ecs.Has[Player](e.ECS, entityId) {
			return
		}

		rb := ecs.Get[physics.Rigidbody](e.ECS, entityId)
		if rb.Velocity.X == 0 {
			rb.Velocity.X = rand.Float64()*4 - 2
		}

		if rb.Velocity.Y == 0 {
			rb.Velocity.Y = rand.Float64()*4 - 2
		}
	})
}

// steerDirection combines arrow keys and WASD into a movement direction.
func steerDirection(pressed func(engine.Key) bool) cp.Vector {
	var direction cp.Vector

	if pressed(engine.KeyArrowLeft) || pressed(engine.KeyA) {
		direction.X -= 1
	}

	if pressed(engine.KeyArrowRight) || pressed(engine.KeyD) {
		direction.X += 1
	}

	if pressed(engine.KeyArrowUp) || pressed(engine.KeyW) {
		direction.Y += 1
	}

	if pressed(engine.KeyArrowDown) || pressed(engine.KeyS) {
		direction.Y -= 1
	}

	return direction
}

func steerPlayer(e *engine.Engine, player ecs.EntityId) {
	direction := steerDirection(e.KeyIsPressed)

	if e.KeyIsPressed(engine.KeySpace) {
		direction = direction.Mult(2)
	}

	ecs.Get[physics.Rigidbody](e.ECS, player).Velocity = direction.Mult(playerSpeed)

	// touching a box removes it
	ecs.ForEach2[physics.BoxCollider, engine.Name](e.ECS, func(other ecs.EntityId) {
		if other == player || !physics.Overlapping(e.ECS, player, other) {
			return
		}

		slog.Info("Box collected",
			slog.Any("entity", other),
			slog.String("name", ecs.Get[engine.Name](e.ECS, other).String()),
		)

		e.ECS.Destroy(other)
	})
}
