package systems

import (
	"github.com/openarena/tankarena/archetypes"
	"github.com/openarena/tankarena/components"
	cfg "github.com/openarena/tankarena/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Singleton accessors. Each returns the per-world instance of a state
// component, creating it on first use so systems never have to care about
// spawn order.

func getOrCreateInput(e *ecs.ECS) *components.InputData {
	entry, ok := components.Input.First(e.World)
	if !ok {
		entry = archetypes.Input.Spawn(e)
	}
	return components.Input.Get(entry)
}

// GetOrCreateMenu returns the singleton main menu state.
func GetOrCreateMenu(e *ecs.ECS) *components.MenuData {
	entry, ok := components.Menu.First(e.World)
	if !ok {
		entry = archetypes.Menu.Spawn(e)
		menu := components.Menu.Get(entry)
		menu.Options = []components.MainMenuOption{
			components.MainMenuStart,
			components.MainMenuSettings,
			components.MainMenuExit,
		}
		return menu
	}
	return components.Menu.Get(entry)
}

// settingsEntry spawns the settings singleton with defaults on first use.
// Pause and Debug live on the same entity, so all three accessors share it.
func settingsEntry(e *ecs.ECS) *donburi.Entry {
	entry, ok := components.Settings.First(e.World)
	if !ok {
		entry = archetypes.Settings.Spawn(e)
		s := components.Settings.Get(entry)
		s.ResolutionIndex = cfg.SettingsMenu.DefaultResolutionIndex
		s.ArenaSizeIndex = cfg.SettingsMenu.DefaultArenaSizeIndex
	}
	return entry
}

// GetOrCreateSettings returns the singleton settings state.
func GetOrCreateSettings(e *ecs.ECS) *components.SettingsData {
	return components.Settings.Get(settingsEntry(e))
}

// GetOrCreatePause returns the singleton pause state.
func GetOrCreatePause(e *ecs.ECS) *components.PauseData {
	return components.Pause.Get(settingsEntry(e))
}

// GetOrCreateDebug returns the singleton debug overlay state.
func GetOrCreateDebug(e *ecs.ECS) *components.DebugData {
	return components.Debug.Get(settingsEntry(e))
}
