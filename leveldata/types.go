// Package leveldata parses preset arenas from Tiled TMX maps. It has no
// dependencies on ebitengine or donburi — pure data only.
package leveldata

// Wall-side bitmask encoded in the tile ID: a tile's local ID is the mask
// of walls its cell carries.
const (
	MaskTop    = 1 << 0
	MaskRight  = 1 << 1
	MaskBottom = 1 << 2
	MaskLeft   = 1 << 3
)

// Arena is a preset wall layout. It satisfies maze.Layout, so the same
// mesh builder renders preset and random arenas alike.
type Arena struct {
	Width, Height int
	Name          string
	masks         [][]uint8 // [y][x]
}

// Size returns the arena dimensions in cells.
func (a *Arena) Size() (int, int) {
	return a.Width, a.Height
}

// HorizontalWall reports a wall segment from lattice point (x, y) to
// (x+1, y). The outer border is always closed.
func (a *Arena) HorizontalWall(x, y int) bool {
	if y == 0 || y == a.Height {
		return true
	}
	return a.masks[y-1][x]&MaskBottom != 0 || a.masks[y][x]&MaskTop != 0
}

// VerticalWall reports a wall segment from (x, y) to (x, y+1). The outer
// border is always closed.
func (a *Arena) VerticalWall(x, y int) bool {
	if x == 0 || x == a.Width {
		return true
	}
	return a.masks[y][x-1]&MaskRight != 0 || a.masks[y][x]&MaskLeft != 0
}
