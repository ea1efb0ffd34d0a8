package components

import "github.com/yohamta/donburi"

// SettingsData is the live settings state, shared between the settings
// panel and the systems that apply it. Persisted via the persistence
// system when the panel closes.
type SettingsData struct {
	Open bool // settings panel visible

	Fullscreen      bool
	Muted           bool
	ResolutionIndex int
	ArenaSizeIndex  int
	UsePresetArena  bool
}

var Settings = donburi.NewComponentType[SettingsData]()

// PauseData tracks whether gameplay is paused.
type PauseData struct {
	Paused bool
}

var Pause = donburi.NewComponentType[PauseData]()

// DebugData toggles the diagnostic overlay.
type DebugData struct {
	Enabled bool
}

var Debug = donburi.NewComponentType[DebugData]()
