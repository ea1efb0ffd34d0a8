package leveldata

import (
	"fmt"
	"io/fs"

	"github.com/lafriks/go-tiled"
)

const wallLayerName = "walls"

// LoadArena parses a TMX file into an arena layout. It takes an fs.FS so
// callers can pass embed.FS or os.DirFS. The map must carry a tile layer
// named "walls" whose tile IDs are wall-side bitmasks (see MaskTop etc.);
// empty tiles mean an open cell.
func LoadArena(fsys fs.FS, tmxPath string) (*Arena, error) {
	m, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	var layer *tiled.Layer
	for _, l := range m.Layers {
		if l.Name == wallLayerName {
			layer = l
			break
		}
	}
	if layer == nil {
		return nil, fmt.Errorf("TMX %s: no %q tile layer", tmxPath, wallLayerName)
	}

	arena := &Arena{
		Width:  m.Width,
		Height: m.Height,
		Name:   tmxPath,
		masks:  make([][]uint8, m.Height),
	}
	for y := 0; y < m.Height; y++ {
		row := make([]uint8, m.Width)
		for x := 0; x < m.Width; x++ {
			tile := layer.Tiles[y*m.Width+x]
			if tile.IsNil() {
				continue
			}
			if tile.ID > MaskTop|MaskRight|MaskBottom|MaskLeft {
				return nil, fmt.Errorf("TMX %s: tile ID %d at (%d, %d) is not a wall mask",
					tmxPath, tile.ID, x, y)
			}
			row[x] = uint8(tile.ID)
		}
		arena.masks[y] = row
	}
	return arena, nil
}
