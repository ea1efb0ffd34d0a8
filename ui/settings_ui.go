package ui

import (
	"bytes"
	"image/color"

	"github.com/openarena/tankarena/components"
	cfg "github.com/openarena/tankarena/config"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// SettingsUI holds the ebitenui interface for the settings panel
type SettingsUI struct {
	UI       *ebitenui.UI
	Settings *components.SettingsData

	// Callbacks
	OnClose func()

	// Widget references for updates
	fullscreenButton *widget.Button
	muteButton       *widget.Button
	resolutionButton *widget.Button
	arenaSizeButton  *widget.Button
	presetButton     *widget.Button

	titleFace  text.Face
	normalFace text.Face
}

// NewSettingsUI creates the settings panel bound to the live settings state.
func NewSettingsUI(settings *components.SettingsData, onClose func()) *SettingsUI {
	sui := &SettingsUI{
		Settings: settings,
		OnClose:  onClose,
	}

	sui.loadFonts()
	sui.buildUI()

	return sui
}

func (sui *SettingsUI) loadFonts() {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		panic(err)
	}

	sui.titleFace = &text.GoTextFace{
		Source: fontSource,
		Size:   22,
	}
	sui.normalFace = &text.GoTextFace{
		Source: fontSource,
		Size:   14,
	}
}

func (sui *SettingsUI) buildUI() {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(color.RGBA{20, 20, 30, 240})),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(16)),
			widget.RowLayoutOpts.Spacing(8),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	titleLabel := widget.NewLabel(
		widget.LabelOpts.Text("SETTINGS", &sui.titleFace, &widget.LabelColor{
			Idle: color.RGBA{255, 255, 255, 255},
		}),
	)
	panel.AddChild(titleLabel)

	sui.fullscreenButton = sui.toggleRow(panel, "Fullscreen", sui.fullscreenLabel, func() {
		sui.Settings.Fullscreen = !sui.Settings.Fullscreen
	})
	sui.muteButton = sui.toggleRow(panel, "Sound", sui.muteLabel, func() {
		sui.Settings.Muted = !sui.Settings.Muted
	})
	sui.resolutionButton = sui.toggleRow(panel, "Resolution", sui.resolutionLabel, func() {
		sui.Settings.ResolutionIndex = (sui.Settings.ResolutionIndex + 1) % len(cfg.SettingsMenu.Resolutions)
	})
	sui.arenaSizeButton = sui.toggleRow(panel, "Arena size", sui.arenaSizeLabel, func() {
		sui.Settings.ArenaSizeIndex = (sui.Settings.ArenaSizeIndex + 1) % len(cfg.SettingsMenu.ArenaSizes)
	})
	sui.presetButton = sui.toggleRow(panel, "Arena walls", sui.presetLabel, func() {
		sui.Settings.UsePresetArena = !sui.Settings.UsePresetArena
	})

	backButton := widget.NewButton(
		widget.ButtonOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(120, 28),
		),
		widget.ButtonOpts.Image(sui.buttonImage()),
		widget.ButtonOpts.Text("Back", &sui.normalFace, &widget.ButtonTextColor{
			Idle:    color.RGBA{255, 255, 255, 255},
			Hover:   color.RGBA{255, 255, 200, 255},
			Pressed: color.RGBA{200, 200, 200, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			if sui.OnClose != nil {
				sui.OnClose()
			}
		}),
	)
	panel.AddChild(backButton)

	rootContainer.AddChild(panel)

	sui.UI = &ebitenui.UI{
		Container: rootContainer,
	}
}

// toggleRow adds one "label: value" row where clicking the value cycles it.
func (sui *SettingsUI) toggleRow(panel *widget.Container, label string, value func() string, onClick func()) *widget.Button {
	padding := widget.Insets{Top: 2, Bottom: 2, Left: 4, Right: 4}
	row := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Padding(&padding),
			widget.RowLayoutOpts.Spacing(8),
		)),
	)

	rowLabel := widget.NewLabel(
		widget.LabelOpts.Text(label, &sui.normalFace, &widget.LabelColor{
			Idle: color.RGBA{180, 180, 180, 255},
		}),
	)
	row.AddChild(rowLabel)

	button := widget.NewButton(
		widget.ButtonOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(140, 24),
		),
		widget.ButtonOpts.Image(sui.buttonImage()),
		widget.ButtonOpts.Text(value(), &sui.normalFace, &widget.ButtonTextColor{
			Idle:    color.RGBA{255, 255, 255, 255},
			Hover:   color.RGBA{255, 255, 200, 255},
			Pressed: color.RGBA{200, 200, 200, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			onClick()
			sui.UpdateUI()
		}),
	)
	row.AddChild(button)

	panel.AddChild(row)
	return button
}

func (sui *SettingsUI) buttonImage() *widget.ButtonImage {
	idle := image.NewNineSliceColor(color.RGBA{60, 60, 80, 255})
	hover := image.NewNineSliceColor(color.RGBA{80, 80, 100, 255})
	pressed := image.NewNineSliceColor(color.RGBA{40, 40, 60, 255})
	disabled := image.NewNineSliceColor(color.RGBA{40, 40, 40, 255})

	return &widget.ButtonImage{
		Idle:     idle,
		Hover:    hover,
		Pressed:  pressed,
		Disabled: disabled,
	}
}

// UpdateUI refreshes the value labels from the settings state.
func (sui *SettingsUI) UpdateUI() {
	sui.fullscreenButton.Text().Label = sui.fullscreenLabel()
	sui.muteButton.Text().Label = sui.muteLabel()
	sui.resolutionButton.Text().Label = sui.resolutionLabel()
	sui.arenaSizeButton.Text().Label = sui.arenaSizeLabel()
	sui.presetButton.Text().Label = sui.presetLabel()
}

func (sui *SettingsUI) fullscreenLabel() string {
	if sui.Settings.Fullscreen {
		return "On"
	}
	return "Off"
}

func (sui *SettingsUI) muteLabel() string {
	if sui.Settings.Muted {
		return "Muted"
	}
	return "On"
}

func (sui *SettingsUI) resolutionLabel() string {
	idx := sui.Settings.ResolutionIndex
	if idx >= len(cfg.SettingsMenu.Resolutions) {
		idx = 0
	}
	return cfg.SettingsMenu.Resolutions[idx].Label
}

func (sui *SettingsUI) arenaSizeLabel() string {
	idx := sui.Settings.ArenaSizeIndex
	if idx >= len(cfg.SettingsMenu.ArenaSizes) {
		idx = 0
	}
	return cfg.SettingsMenu.ArenaSizes[idx].Label
}

func (sui *SettingsUI) presetLabel() string {
	if sui.Settings.UsePresetArena {
		return "Classic"
	}
	return "Random"
}
