package maze

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateSizeLimits(t *testing.T) {
	for seed := int64(1); seed <= 200; seed++ {
		m := Generate(Config{Seed: seed})
		assert.GreaterOrEqual(t, m.Width, MinWidth)
		assert.LessOrEqual(t, m.Width, MaxWidth)
		assert.GreaterOrEqual(t, m.Height, MinHeight)
		assert.LessOrEqual(t, m.Height, MaxHeight)
	}
}

func TestGenerateDeterministicForSeed(t *testing.T) {
	a := Generate(Config{Seed: 42})
	b := Generate(Config{Seed: 42})

	require.Equal(t, a.Width, b.Width)
	require.Equal(t, a.Height, b.Height)
	for y := 0; y <= a.Height; y++ {
		for x := 0; x < a.Width; x++ {
			assert.Equal(t, a.HorizontalWall(x, y), b.HorizontalWall(x, y))
		}
	}
	for y := 0; y < a.Height; y++ {
		for x := 0; x <= a.Width; x++ {
			assert.Equal(t, a.VerticalWall(x, y), b.VerticalWall(x, y))
		}
	}
}

func TestGenerateExplicitSize(t *testing.T) {
	m := Generate(Config{Width: 7, Height: 5, Seed: 1})
	assert.Equal(t, 7, m.Width)
	assert.Equal(t, 5, m.Height)
}

func TestBordersAlwaysClosed(t *testing.T) {
	m := Generate(Config{Seed: 7})
	for x := 0; x < m.Width; x++ {
		assert.True(t, m.HorizontalWall(x, 0), "top border x=%d", x)
		assert.True(t, m.HorizontalWall(x, m.Height), "bottom border x=%d", x)
	}
	for y := 0; y < m.Height; y++ {
		assert.True(t, m.VerticalWall(0, y), "left border y=%d", y)
		assert.True(t, m.VerticalWall(m.Width, y), "right border y=%d", y)
	}
}

// fixedLayout is a 2x2 arena with only the border closed.
type fixedLayout struct{}

func (fixedLayout) Size() (int, int) { return 2, 2 }
func (fixedLayout) HorizontalWall(x, y int) bool {
	return y == 0 || y == 2
}
func (fixedLayout) VerticalWall(x, y int) bool {
	return x == 0 || x == 2
}

func TestBuildMeshFixedLayout(t *testing.T) {
	mesh := BuildMesh(fixedLayout{})

	// 4 vertices per lattice point on a 3x3 lattice.
	require.Len(t, mesh.Vertices, 4*9)

	// 8 border segments, two triangles each.
	assert.Len(t, mesh.Indices, 8*2*3)
	assert.Equal(t, 2, mesh.Width)
	assert.Equal(t, 2, mesh.Height)

	for _, idx := range mesh.Indices {
		assert.Less(t, int(idx), len(mesh.Vertices))
	}
}

func TestBuildMeshVertexPlacement(t *testing.T) {
	mesh := BuildMesh(fixedLayout{})

	// First lattice point (0,0): corners offset by the half thickness.
	assert.InDelta(t, -1.0/16.0, mesh.Vertices[0][0], 1e-7)
	assert.InDelta(t, -1.0/16.0, mesh.Vertices[0][1], 1e-7)
	assert.InDelta(t, 1.0/16.0, mesh.Vertices[3][0], 1e-7)
	assert.InDelta(t, 1.0/16.0, mesh.Vertices[3][1], 1e-7)
}

func TestBuildMeshGeneratedMazeDoesNotPanic(t *testing.T) {
	for seed := int64(1); seed <= 50; seed++ {
		mesh := BuildMesh(Generate(Config{Seed: seed}))
		require.NotEmpty(t, mesh.Indices)
		for _, idx := range mesh.Indices {
			require.Less(t, int(idx), len(mesh.Vertices))
		}
	}
}

func TestSpawnPoints(t *testing.T) {
	m := Generate(Config{Width: 5, Height: 4, Seed: 3})
	rng := rand.New(rand.NewSource(3))

	points := m.SpawnPoints(4, rng)
	require.Len(t, points, 4)

	seen := map[[2]float64]bool{}
	for _, p := range points {
		assert.False(t, seen[p], "duplicate spawn %v", p)
		seen[p] = true
		// Cell centers, inside the arena.
		assert.Greater(t, p[0], 0.0)
		assert.Less(t, p[0], 5.0)
		assert.Greater(t, p[1], 0.0)
		assert.Less(t, p[1], 4.0)
	}

	// Asking for more spawns than cells caps at the cell count.
	all := m.SpawnPoints(100, rng)
	assert.Len(t, all, 20)
}
