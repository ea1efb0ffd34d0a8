package systems

import (
	cfg "github.com/openarena/tankarena/config"
	"github.com/yohamta/donburi/ecs"
)

// NewRoundRequested reports whether the player asked for a fresh maze this
// frame. The arena scene polls this and swaps itself out.
func NewRoundRequested(e *ecs.ECS) bool {
	if IsSettingsOpen(e) {
		return false
	}
	input := getOrCreateInput(e)
	return GetAction(input, cfg.ActionNewRound).JustPressed
}

// UpdateWindowControls handles the global window shortcuts.
func UpdateWindowControls(e *ecs.ECS) {
	input := getOrCreateInput(e)
	if GetAction(input, cfg.ActionToggleFullscreen).JustPressed {
		s := GetOrCreateSettings(e)
		s.Fullscreen = !s.Fullscreen
		ApplySettings(s)
		SaveCurrentSettings(s)
	}
}
