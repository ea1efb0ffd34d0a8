package leveldata

import (
	"testing"

	"github.com/openarena/tankarena/assets"
	"github.com/openarena/tankarena/maze"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadClassicArena(t *testing.T) {
	arena, err := LoadArena(assets.LevelFS(), "levels/classic.tmx")
	require.NoError(t, err)

	assert.Equal(t, 8, arena.Width)
	assert.Equal(t, 6, arena.Height)

	// Cell (1, 0) carries a right wall: vertical segment at lattice x=2.
	assert.True(t, arena.VerticalWall(2, 0))
	assert.True(t, arena.VerticalWall(2, 1))
	assert.True(t, arena.VerticalWall(2, 2))
	assert.False(t, arena.VerticalWall(2, 3))

	// Cells (3, 1) and (4, 1) carry bottom walls: horizontal segments at
	// lattice y=2.
	assert.True(t, arena.HorizontalWall(3, 2))
	assert.True(t, arena.HorizontalWall(4, 2))
	assert.False(t, arena.HorizontalWall(2, 2))

	// Cells (2, 4) and (3, 4) carry top walls: horizontal segments at y=4.
	assert.True(t, arena.HorizontalWall(2, 4))
	assert.True(t, arena.HorizontalWall(3, 4))
}

func TestLoadArenaBordersClosed(t *testing.T) {
	arena, err := LoadArena(assets.LevelFS(), "levels/classic.tmx")
	require.NoError(t, err)

	for x := 0; x < arena.Width; x++ {
		assert.True(t, arena.HorizontalWall(x, 0))
		assert.True(t, arena.HorizontalWall(x, arena.Height))
	}
	for y := 0; y < arena.Height; y++ {
		assert.True(t, arena.VerticalWall(0, y))
		assert.True(t, arena.VerticalWall(arena.Width, y))
	}
}

func TestArenaSatisfiesLayout(t *testing.T) {
	arena, err := LoadArena(assets.LevelFS(), "levels/classic.tmx")
	require.NoError(t, err)

	mesh := maze.BuildMesh(arena)
	assert.Equal(t, 8, mesh.Width)
	assert.Equal(t, 6, mesh.Height)
	require.NotEmpty(t, mesh.Indices)
	for _, idx := range mesh.Indices {
		require.Less(t, int(idx), len(mesh.Vertices))
	}
}

func TestLoadArenaMissingLayer(t *testing.T) {
	_, err := LoadArena(assets.LevelFS(), "levels/nope.tmx")
	assert.Error(t, err)
}
