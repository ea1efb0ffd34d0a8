package maze

import (
	"math/rand"
	"time"
)

// WallSide is the single wall a cell contributes to the maze.
type WallSide uint8

const (
	SideTop WallSide = iota
	SideRight
	SideBottom
	SideLeft
)

// Size limits for randomly generated arenas, in cells.
const (
	MinWidth  = 4
	MaxWidth  = 12
	MinHeight = 4
	MaxHeight = 10
)

// Config controls generation. Zero dimensions pick random sizes within the
// classic limits; Seed 0 seeds from the clock.
type Config struct {
	Width, Height int
	Seed          int64
}

// Maze is a grid of cells where every cell carries exactly one wall side.
// Together with the enforced outer border this produces the classic
// dead-end-heavy arena layout.
type Maze struct {
	Width, Height int
	cells         [][]WallSide // [y][x]
}

// Generate creates a new random arena.
func Generate(cfg Config) *Maze {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	w := cfg.Width
	if w <= 0 {
		w = MinWidth + rng.Intn(MaxWidth-MinWidth+1)
	}
	h := cfg.Height
	if h <= 0 {
		h = MinHeight + rng.Intn(MaxHeight-MinHeight+1)
	}

	cells := make([][]WallSide, h)
	for y := range cells {
		row := make([]WallSide, w)
		for x := range row {
			row[x] = WallSide(rng.Intn(4))
		}
		cells[y] = row
	}

	return &Maze{Width: w, Height: h, cells: cells}
}

// Size returns the arena dimensions in cells.
func (m *Maze) Size() (int, int) {
	return m.Width, m.Height
}

// HorizontalWall reports whether the lattice segment from (x, y) to
// (x+1, y) is a wall, for x in [0, Width) and y in [0, Height]. The top
// and bottom borders are always closed.
func (m *Maze) HorizontalWall(x, y int) bool {
	if y == 0 || y == m.Height {
		return true
	}
	return m.cells[y-1][x] == SideBottom || m.cells[y][x] == SideTop
}

// VerticalWall reports whether the segment from (x, y) to (x, y+1) is a
// wall, for x in [0, Width] and y in [0, Height). The left and right
// borders are always closed.
func (m *Maze) VerticalWall(x, y int) bool {
	if x == 0 || x == m.Width {
		return true
	}
	return m.cells[y][x-1] == SideRight || m.cells[y][x] == SideLeft
}

// SpawnPoints returns up to n distinct cell centers in random order,
// suitable as tank spawn positions.
func (m *Maze) SpawnPoints(n int, rng *rand.Rand) [][2]float64 {
	return SpawnPoints(m, n, rng)
}

// SpawnPoints picks up to n distinct cell centers of any arena layout in
// random order.
func SpawnPoints(l Layout, n int, rng *rand.Rand) [][2]float64 {
	w, h := l.Size()
	total := w * h
	if n > total {
		n = total
	}
	order := rng.Perm(total)

	points := make([][2]float64, 0, n)
	for _, idx := range order[:n] {
		x, y := idx%w, idx/w
		points = append(points, [2]float64{float64(x) + 0.5, float64(y) + 0.5})
	}
	return points
}
