package systems

import (
	"github.com/openarena/tankarena/components"
	cfg "github.com/openarena/tankarena/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// UpdateSettingsHotkeys closes the panel on the back action so keyboard
// players are not forced onto the mouse.
func UpdateSettingsHotkeys(e *ecs.ECS) {
	if !IsSettingsOpen(e) {
		return
	}
	input := getOrCreateInput(e)
	if GetAction(input, cfg.ActionMenuBack).JustPressed {
		CloseSettings(e)
	}
}

// IsSettingsOpen reports whether the settings panel eats input this frame.
func IsSettingsOpen(e *ecs.ECS) bool {
	return GetOrCreateSettings(e).Open
}

// OpenSettings shows the settings panel.
func OpenSettings(e *ecs.ECS) {
	GetOrCreateSettings(e).Open = true
}

// CloseSettings hides the panel, applies the chosen values and persists
// them.
func CloseSettings(e *ecs.ECS) {
	s := GetOrCreateSettings(e)
	s.Open = false
	ApplySettings(s)
	SaveCurrentSettings(s)
}

// ApplySettings pushes the settings state to the window and audio layers.
func ApplySettings(s *components.SettingsData) {
	ebiten.SetFullscreen(s.Fullscreen)
	if !s.Fullscreen && s.ResolutionIndex < len(cfg.SettingsMenu.Resolutions) {
		res := cfg.SettingsMenu.Resolutions[s.ResolutionIndex]
		ebiten.SetWindowSize(res.Width, res.Height)
	}
	SetMuted(s.Muted)
}

// ArenaSizeFor resolves the configured arena size option. The zero option
// means a random size each round, decided by the maze generator.
func ArenaSizeFor(s *components.SettingsData) cfg.ArenaSize {
	if s.ArenaSizeIndex < len(cfg.SettingsMenu.ArenaSizes) {
		return cfg.SettingsMenu.ArenaSizes[s.ArenaSizeIndex]
	}
	return cfg.SettingsMenu.ArenaSizes[0]
}
