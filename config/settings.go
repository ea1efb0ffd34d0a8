package config

// Resolution represents a display resolution option
type Resolution struct {
	Width  int
	Height int
	Label  string
}

// ArenaSize represents a maze size option. Zero dimensions mean a random
// size each round.
type ArenaSize struct {
	Width  int
	Height int
	Label  string
}

// SettingsMenuConfig contains settings screen configuration
type SettingsMenuConfig struct {
	Resolutions            []Resolution
	DefaultResolutionIndex int
	ArenaSizes             []ArenaSize
	DefaultArenaSizeIndex  int
}

// SettingsMenu is the global settings menu configuration
var SettingsMenu SettingsMenuConfig

func init() {
	SettingsMenu = SettingsMenuConfig{
		Resolutions: []Resolution{
			{Width: 1038, Height: 720, Label: "1038 x 720"},
			{Width: 1280, Height: 720, Label: "1280 x 720"},
			{Width: 1600, Height: 900, Label: "1600 x 900"},
			{Width: 1920, Height: 1080, Label: "1920 x 1080"},
		},
		DefaultResolutionIndex: 0,
		ArenaSizes: []ArenaSize{
			{Width: 0, Height: 0, Label: "Random"},
			{Width: 6, Height: 4, Label: "Small"},
			{Width: 9, Height: 7, Label: "Medium"},
			{Width: 12, Height: 10, Label: "Large"},
		},
		DefaultArenaSizeIndex: 0,
	}
}
