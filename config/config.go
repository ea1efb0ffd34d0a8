package config

import (
	"image/color"

	"github.com/yohamta/donburi/ecs"
)

// Default is the ECS layer all entities and renderers live on.
var Default = ecs.LayerDefault

// Config contains general game configuration values
type Config struct {
	Width  int
	Height int
	Title  string
}

// C is the global game configuration
var C *Config

// TankConfig contains tank geometry in maze-cell units
type TankConfig struct {
	// Half extents of the hull quad
	HalfWidth  float64
	HalfHeight float64
}

// Tank is the global tank configuration
var Tank TankConfig

// ArenaConfig contains arena session configuration
type ArenaConfig struct {
	MaxPlayers int
	TickRate   int
}

// Arena is the global arena configuration
var Arena ArenaConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Black        = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	WallGray     = color.RGBA{R: 60, G: 60, B: 68, A: 255}
	Red          = color.RGBA{R: 214, G: 64, B: 52, A: 255}
	Green        = color.RGBA{R: 62, G: 168, B: 80, A: 255}
	Blue         = color.RGBA{R: 58, G: 112, B: 214, A: 255}
	Orange       = color.RGBA{R: 232, G: 154, B: 40, A: 255}
	LightBlue    = color.RGBA{R: 100, G: 180, B: 255, A: 255} // Selected menu items
	DarkBlue     = color.RGBA{R: 60, G: 100, B: 160, A: 255}  // Unselected menu items
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
	HUDText      = color.RGBA{R: 40, G: 40, B: 44, A: 255}
)

// PlayerColors are the tank tints, by join order.
var PlayerColors = []color.RGBA{Red, Green, Blue, Orange}

func init() {
	C = &Config{
		Width:  1038,
		Height: 720,
		Title:  "Tank Arena",
	}

	Tank = TankConfig{
		HalfWidth:  0.2,
		HalfHeight: 0.25,
	}

	Arena = ArenaConfig{
		MaxPlayers: 4,
		TickRate:   90,
	}
}
