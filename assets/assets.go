package assets

import (
	"embed"
	"io/fs"
	"path/filepath"
	"sort"
)

//go:embed all:levels
var levelFS embed.FS

// LevelFS returns the embedded preset arena files.
func LevelFS() fs.FS {
	return levelFS
}

// ListLevels returns the embedded TMX paths, sorted.
func ListLevels() ([]string, error) {
	entries, err := levelFS.ReadDir("levels")
	if err != nil {
		return nil, err
	}
	var paths []string
	for _, e := range entries {
		if filepath.Ext(e.Name()) == ".tmx" {
			paths = append(paths, filepath.Join("levels", e.Name()))
		}
	}
	sort.Strings(paths)
	return paths, nil
}
