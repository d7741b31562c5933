// Package panels provides UI panels for the application.
package panels

import (
	"sitepin/internal/app"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
)

// SidePanel provides the main side panel with tabbed sections.
type SidePanel struct {
	state     *app.State
	container *container.AppTabs

	plansPanel  *PlansPanel
	photosPanel *PhotosPanel
}

// NewSidePanel creates a new side panel.
func NewSidePanel(state *app.State) *SidePanel {
	sp := &SidePanel{
		state: state,
	}

	sp.plansPanel = NewPlansPanel(state)
	sp.photosPanel = NewPhotosPanel(state)

	sp.container = container.NewAppTabs(
		container.NewTabItem("Plans", sp.plansPanel.Container()),
		container.NewTabItem("Photos", sp.photosPanel.Container()),
	)

	return sp
}

// Container returns the panel container.
func (sp *SidePanel) Container() fyne.CanvasObject {
	return sp.container
}

// Plans returns the plans tab.
func (sp *SidePanel) Plans() *PlansPanel {
	return sp.plansPanel
}

// Photos returns the photos tab.
func (sp *SidePanel) Photos() *PhotosPanel {
	return sp.photosPanel
}

// SetWindow sets the parent window for dialogs.
func (sp *SidePanel) SetWindow(w fyne.Window) {
	sp.plansPanel.SetWindow(w)
	sp.photosPanel.SetWindow(w)
}
