package maze

// Layout describes wall segments on a cell lattice. Implemented by Maze for
// random arenas and by the preset loader for Tiled maps.
type Layout interface {
	// Size returns the arena dimensions in cells.
	Size() (w, h int)
	// HorizontalWall reports a wall from lattice point (x, y) to (x+1, y),
	// x in [0, w), y in [0, h].
	HorizontalWall(x, y int) bool
	// VerticalWall reports a wall from (x, y) to (x, y+1),
	// x in [0, w], y in [0, h).
	VerticalWall(x, y int) bool
}

// Mesh is renderable wall geometry: 2D positions in maze coordinates plus
// index triplets forming triangles.
type Mesh struct {
	Vertices      [][2]float32
	Indices       []uint32
	Width, Height int
}

// Wall quads overhang each lattice point by this much on every side, so
// adjoining segments meet without gaps.
const halfThickness = 1.0 / 16.0

// BuildMesh triangulates the wall segments of a layout. Four vertices are
// emitted per lattice point; each wall segment reuses the corner vertices
// of the points it connects, spanning the joint overhang.
func BuildMesh(l Layout) Mesh {
	w, h := l.Size()

	// 4 vertices around every lattice point, (w+1) x (h+1) points.
	vertices := make([][2]float32, 0, 4*(w+1)*(h+1))
	for y := 0; y <= h; y++ {
		for x := 0; x <= w; x++ {
			fx, fy := float32(x), float32(y)
			vertices = append(vertices,
				[2]float32{fx - halfThickness, fy - halfThickness},
				[2]float32{fx + halfThickness, fy - halfThickness},
				[2]float32{fx - halfThickness, fy + halfThickness},
				[2]float32{fx + halfThickness, fy + halfThickness},
			)
		}
	}

	base := func(x, y int) uint32 {
		return uint32(4 * (x + y*(w+1)))
	}

	var indices []uint32
	for y := 0; y <= h; y++ {
		for x := 0; x <= w; x++ {
			if x < w && l.HorizontalWall(x, y) {
				p, n := base(x, y), base(x+1, y)
				indices = append(indices, p+0, n+3, n+1)
				indices = append(indices, p+0, p+2, n+3)
			}
			if y < h && l.VerticalWall(x, y) {
				p, n := base(x, y), base(x, y+1)
				indices = append(indices, p+0, n+3, p+1)
				indices = append(indices, p+0, n+2, n+3)
			}
		}
	}

	return Mesh{Vertices: vertices, Indices: indices, Width: w, Height: h}
}
