package engine

import (
	"errors"
	"fmt"
	"image/color"
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/jakecoffman/cp/v2"
	"github.com/oliverbestmann/willengine/camera"
	"github.com/oliverbestmann/willengine/ecs"
	"github.com/oliverbestmann/willengine/physics"
)

var background = color.RGBA{R: 0x20, G: 0x20, B: 0x28, A: 0xff}

// UpdateFunc is called once per tick, before the physics step.
type UpdateFunc func(e *Engine)

// Engine owns the entity world and drives it from the ebiten game loop.
type Engine struct {
	ECS *ecs.World

	config  Config
	bounds  cp.BB
	update  UpdateFunc
	running bool

	time  Time
	stats Stats

	path vector.Path
}

// New creates an engine with an empty world.
func New(opts ...ecs.Option) *Engine {
	return &Engine{
		ECS:    ecs.NewWorld(opts...),
		config: DefaultConfig(),
	}
}

// Startup applies the configuration. Call it before spawning entities that
// depend on WorldBounds.
func (e *Engine) Startup(config Config) {
	e.config = config.withDefaults()
	e.bounds = physics.WorldBounds(e.config.WindowWidth, e.config.WindowHeight)
	e.running = true

	slog.Info("Engine started",
		slog.String("window", e.config.WindowName),
		slog.Int("width", e.config.WindowWidth),
		slog.Int("height", e.config.WindowHeight),
		slog.Int("tps", e.config.TicksPerSecond),
	)
}

// Run opens the window and runs the game loop until Shutdown is called
// or the window is closed.
func (e *Engine) Run(update UpdateFunc) error {
	if !e.running {
		e.Startup(e.config)
	}

	e.update = update

	ebiten.SetWindowTitle(e.config.WindowName)
	ebiten.SetWindowSize(e.config.WindowWidth, e.config.WindowHeight)
	ebiten.SetFullscreen(e.config.Fullscreen)
	ebiten.SetTPS(e.config.TicksPerSecond)

	var options ebiten.RunGameOptions
	options.SingleThread = true

	err := ebiten.RunGameWithOptions(e, &options)
	if err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("run game loop: %w", err)
	}

	slog.Info("Engine stopped",
		slog.Uint64("ticks", e.time.Ticks),
		slog.Duration("updateAvg", e.stats.Update.Mean()),
		slog.Duration("drawAvg", e.stats.Draw.Mean()),
	)

	return nil
}

// Shutdown stops the game loop after the current tick.
func (e *Engine) Shutdown() {
	e.running = false
}

func (e *Engine) Running() bool {
	return e.running
}

func (e *Engine) Config() Config {
	return e.config
}

// WorldBounds returns the visible part of the world.
func (e *Engine) WorldBounds() cp.BB {
	return e.bounds
}

func (e *Engine) Time() Time {
	return e.time
}

func (e *Engine) Stats() Stats {
	return e.stats
}

// Tick runs one fixed step: the update callback followed by the physics step.
// It is called by the game loop, but can be called directly to drive the
// simulation without a window.
func (e *Engine) Tick() {
	defer e.stats.Measure(PhaseUpdate)()

	e.time.advance(e.config.TicksPerSecond)

	if e.update != nil {
		e.update(e)
	}

	if !e.running {
		return
	}

	physics.Step(e.ECS, e.bounds)
}

// Update implements ebiten.Game.
func (e *Engine) Update() error {
	if !e.running {
		return ebiten.Termination
	}

	e.Tick()

	return nil
}

// Draw implements ebiten.Game.
func (e *Engine) Draw(screen *ebiten.Image) {
	defer e.stats.Measure(PhaseDraw)()

	screen.Fill(background)

	for _, rect := range e.spriteRects(e.Projection()) {
		e.path.Reset()
		e.path.MoveTo(rect.X, rect.Y)
		e.path.LineTo(rect.X+rect.Width, rect.Y)
		e.path.LineTo(rect.X+rect.Width, rect.Y+rect.Height)
		e.path.LineTo(rect.X, rect.Y+rect.Height)
		e.path.Close()

		dpo := &vector.DrawPathOptions{AntiAlias: true}
		dpo.ColorScale.ScaleWithColor(rect.Color)
		vector.FillPath(screen, &e.path, &vector.FillOptions{}, dpo)
	}
}

// spriteRect is a sprite projected onto the screen.
type spriteRect struct {
	Entity        ecs.EntityId
	X, Y          float32
	Width, Height float32
	Color         color.RGBA
}

// spriteRects projects all sprites with a transform. Sprites are returned in
// ascending entity order, so entities created later are drawn on top.
func (e *Engine) spriteRects(projection camera.Projection) []spriteRect {
	entities := ecs.Matching[Sprite](e.ECS, ecs.ComponentTypeOf[physics.Transform]())

	rects := make([]spriteRect, 0, entities.GetCardinality())

	iter := entities.Iterator()
	for iter.HasNext() {
		entityId := ecs.EntityId(iter.Next())

		sprite := ecs.Get[Sprite](e.ECS, entityId)
		transform := ecs.Get[physics.Transform](e.ECS, entityId)

		scaleX, scaleY := transform.ScaleX, transform.ScaleY
		if scaleX == 0 && scaleY == 0 {
			scaleX, scaleY = 1, 1
		}

		size := cp.Vector{X: sprite.Width * scaleX, Y: sprite.Height * scaleY}
		topLeft := cp.Vector{X: transform.X - size.X/2, Y: transform.Y + size.Y/2}

		x, y := projection.ToScreen(topLeft)
		w, h := projection.SizeToScreen(size)

		rects = append(rects, spriteRect{
			Entity: entityId,
			X:      float32(x),
			Y:      float32(y),
			Width:  float32(w),
			Height: float32(h),
			Color:  sprite.Color,
		})
	}

	return rects
}

// Layout implements ebiten.Game.
func (e *Engine) Layout(outsideWidth, outsideHeight int) (int, int) {
	return e.config.WindowWidth, e.config.WindowHeight
}

// Projection maps the world bounds onto the window.
func (e *Engine) Projection() camera.Projection {
	return camera.Projection{
		World:        e.bounds,
		ScreenWidth:  e.config.WindowWidth,
		ScreenHeight: e.config.WindowHeight,
	}
}

// Spawn creates a named entity with a sprite and a moving box collider.
func (e *Engine) Spawn(name string, position, velocity cp.Vector, size cp.Vector, tint color.RGBA) ecs.EntityId {
	entityId := e.ECS.Create()

	ecs.Insert(e.ECS, entityId, Name(name))
	ecs.Insert(e.ECS, entityId, physics.Transform{X: position.X, Y: position.Y, ScaleX: 1, ScaleY: 1})
	ecs.Insert(e.ECS, entityId, physics.Rigidbody{Position: position, Velocity: velocity})
	ecs.Insert(e.ECS, entityId, physics.BoxCollider{HalfExtents: size.Mult(0.5)})
	ecs.Insert(e.ECS, entityId, Sprite{Color: tint, Width: size.X, Height: size.Y})

	return entityId
}
