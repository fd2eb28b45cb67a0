package engine

import "github.com/hajimehoshi/ebiten/v2"

type Key = ebiten.Key

const (
	KeyA          = ebiten.KeyA
	KeyD          = ebiten.KeyD
	KeyS          = ebiten.KeyS
	KeyW          = ebiten.KeyW
	KeyArrowLeft  = ebiten.KeyArrowLeft
	KeyArrowRight = ebiten.KeyArrowRight
	KeyArrowUp    = ebiten.KeyArrowUp
	KeyArrowDown  = ebiten.KeyArrowDown
	KeySpace      = ebiten.KeySpace
	KeyEscape     = ebiten.KeyEscape
)

// KeyIsPressed reports whether the key is currently held down.
func (e *Engine) KeyIsPressed(key Key) bool {
	return ebiten.IsKeyPressed(key)
}
