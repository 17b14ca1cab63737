package main

import (
	"context"
	"github.com/janpfeifer/mazeGo/internal/generator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"math"
	"testing"
)

func TestGenerateMazes(t *testing.T) {
	config := generator.Config{Width: 6, Height: 5, Seed: 100}
	mazes, err := generateMazes(context.Background(), config, 4)
	require.NoError(t, err)
	require.Len(t, mazes, 4)
	for idx, g := range mazes {
		require.NotNil(t, g)
		want, _, err := config.WithSeed(100 + uint64(idx)).Generate()
		require.NoError(t, err)
		assert.Equal(t, want.Render(), g.Render(), "maze #%d", idx)
	}

	_, err = generateMazes(context.Background(), generator.Config{Width: 3, Height: 3, StartRow: 3, Seed: 1}, 2)
	assert.Error(t, err)
}

func TestGenerateMazesInterrupted(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	mazes, err := generateMazes(ctx, generator.Config{Width: 3, Height: 3, Seed: 1}, 3)
	require.NoError(t, err)
	for _, g := range mazes {
		assert.Nil(t, g)
	}
}

func TestFlagDefaults(t *testing.T) {
	defaultConfig := generator.DefaultConfig()
	assert.Equal(t, defaultConfig.Width, *flagWidth)
	assert.Equal(t, defaultConfig.Height, *flagHeight)
	assert.Equal(t, defaultConfig.StartCol, *flagStartCol)
	assert.Equal(t, defaultConfig.StartRow, *flagStartRow)
	assert.Equal(t, defaultConfig.Seed, *flagSeed)
}

func TestGenerateMazesSeedWrap(t *testing.T) {
	// The batch crosses MaxUint64: every maze still gets a fixed, reproducible seed.
	config := generator.Config{Width: 4, Height: 4, Seed: math.MaxUint64 - 1}
	mazes, err := generateMazes(context.Background(), config, 4)
	require.NoError(t, err)
	for idx, g := range mazes {
		seed := config.ForIndex(idx).Seed
		require.NotZero(t, seed)
		want, _, err := config.WithSeed(seed).Generate()
		require.NoError(t, err)
		assert.Equal(t, want.Render(), g.Render(), "maze #%d, seed=%d", idx, seed)
	}
}
