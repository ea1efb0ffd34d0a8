package systems

import (
	"encoding/json"
	"log"

	"github.com/openarena/tankarena/components"
	cfg "github.com/openarena/tankarena/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/quasilyte/gdata"
)

// SavedSettings represents the settings data stored on disk
type SavedSettings struct {
	Muted           bool `json:"muted"`
	Fullscreen      bool `json:"fullscreen"`
	ResolutionIndex int  `json:"resolutionIndex"`
	ArenaSizeIndex  int  `json:"arenaSizeIndex"`
	UsePresetArena  bool `json:"usePresetArena"`
}

var gdataManager *gdata.Manager
var gdataInitialized bool

// InitPersistence initializes the gdata manager for settings storage
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: "tankarena",
	})
	if err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
		return err
	}
	gdataManager = m
	gdataInitialized = true
	return nil
}

// LoadSettings loads settings from disk
func LoadSettings() (*SavedSettings, error) {
	if !gdataInitialized || gdataManager == nil {
		return nil, nil
	}

	data, err := gdataManager.LoadItem("settings")
	if err != nil {
		log.Printf("Warning: Could not load settings: %v", err)
		return nil, nil
	}
	if data == nil {
		// No saved settings yet, use defaults
		return nil, nil
	}

	var settings SavedSettings
	if err := json.Unmarshal(data, &settings); err != nil {
		log.Printf("Warning: Could not parse saved settings: %v", err)
		return nil, err
	}

	return &settings, nil
}

// SaveSettings saves settings to disk
func SaveSettings(s *SavedSettings) error {
	if !gdataInitialized || gdataManager == nil {
		return nil
	}

	data, err := json.Marshal(s)
	if err != nil {
		log.Printf("Warning: Could not serialize settings: %v", err)
		return err
	}

	if err := gdataManager.SaveItem("settings", data); err != nil {
		log.Printf("Warning: Could not save settings: %v", err)
		return err
	}
	return nil
}

// SaveCurrentSettings saves the live settings state
func SaveCurrentSettings(s *components.SettingsData) {
	saved := &SavedSettings{
		Muted:           s.Muted,
		Fullscreen:      s.Fullscreen,
		ResolutionIndex: s.ResolutionIndex,
		ArenaSizeIndex:  s.ArenaSizeIndex,
		UsePresetArena:  s.UsePresetArena,
	}
	_ = SaveSettings(saved)
}

// RestoreSettings copies loaded settings into the live state and applies
// the window-level ones. Called once when a scene first configures.
func RestoreSettings(s *components.SettingsData, saved *SavedSettings) {
	if saved == nil {
		return
	}
	s.Muted = saved.Muted
	s.Fullscreen = saved.Fullscreen
	s.ResolutionIndex = saved.ResolutionIndex
	s.ArenaSizeIndex = saved.ArenaSizeIndex
	s.UsePresetArena = saved.UsePresetArena
	ApplySettings(s)
}

// ApplySavedSettingsGlobal applies window-level settings before any scene
// exists.
func ApplySavedSettingsGlobal(saved *SavedSettings) {
	if saved == nil {
		return
	}
	ebiten.SetFullscreen(saved.Fullscreen)
	if !saved.Fullscreen && saved.ResolutionIndex < len(cfg.SettingsMenu.Resolutions) {
		res := cfg.SettingsMenu.Resolutions[saved.ResolutionIndex]
		ebiten.SetWindowSize(res.Width, res.Height)
	}
	SetMuted(saved.Muted)
}
