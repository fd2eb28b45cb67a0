package main

import (
	"testing"

	"github.com/jakecoffman/cp/v2"
	"github.com/oliverbestmann/willengine/engine"
	"github.com/stretchr/testify/require"
)

func pressing(keys ...engine.Key) func(engine.Key) bool {
	return func(key engine.Key) bool {
		for _, pressed := range keys {
			if pressed == key {
				return true
			}
		}

		return false
	}
}

func TestSteerDirection(t *testing.T) {
	require.Equal(t, cp.Vector{}, steerDirection(pressing()))
	require.Equal(t, cp.Vector{X: -1}, steerDirection(pressing(engine.KeyArrowLeft)))
	require.Equal(t, cp.Vector{X: -1}, steerDirection(pressing(engine.KeyA)))
	require.Equal(t, cp.Vector{X: 1, Y: 1}, steerDirection(pressing(engine.KeyD, engine.KeyW)))
	require.Equal(t, cp.Vector{Y: -1}, steerDirection(pressing(engine.KeyS)))

	// opposite keys cancel out, the same axis from both key sets counts once
	require.Equal(t, cp.Vector{}, steerDirection(pressing(engine.KeyA, engine.KeyArrowRight)))
	require.Equal(t, cp.Vector{X: -1}, steerDirection(pressing(engine.KeyA, engine.KeyArrowLeft)))
}
