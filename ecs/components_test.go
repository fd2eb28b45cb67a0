package ecs

type Position struct {
	X, Y float64
}

type Velocity struct {
	X, Y float64
}

type Health struct {
	Value int
}

// Player is a marker component
type Player struct{}
