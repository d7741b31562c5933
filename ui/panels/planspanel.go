package panels

import (
	"fmt"

	"sitepin/internal/app"
	"sitepin/internal/model"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"
)

// PlansPanel lists the project's plans and manages the active one.
// Switching the active plan and deleting plans are destructive store
// operations, so the panel only raises callbacks; the orchestrator
// owns confirmation and persistence.
type PlansPanel struct {
	state     *app.State
	window    fyne.Window
	container fyne.CanvasObject

	list        *widget.List
	statusLabel *widget.Label

	selectedID string

	onAddPlan    func(path string)
	onSetActive  func(planID string)
	onDeletePlan func(planID string)
}

// NewPlansPanel creates a new plans panel.
func NewPlansPanel(state *app.State) *PlansPanel {
	pp := &PlansPanel{
		state: state,
	}

	pp.statusLabel = widget.NewLabel("")
	pp.statusLabel.Wrapping = fyne.TextWrapWord

	pp.list = widget.NewList(
		func() int {
			return len(state.Plans)
		},
		func() fyne.CanvasObject {
			return widget.NewLabel("Plan")
		},
		func(id widget.ListItemID, obj fyne.CanvasObject) {
			if id >= len(state.Plans) {
				return
			}
			plan := state.Plans[id]
			label := plan.Name
			if plan.IsActive {
				label = "● " + label
			} else {
				label = "   " + label
			}
			obj.(*widget.Label).SetText(label)
		},
	)
	pp.list.OnSelected = func(id widget.ListItemID) {
		if id < len(state.Plans) {
			pp.selectedID = state.Plans[id].ID
		}
	}
	pp.list.OnUnselected = func(widget.ListItemID) {
		pp.selectedID = ""
	}

	addBtn := widget.NewButton("Add Plan...", func() {
		pp.showAddPlanDialog()
	})

	activateBtn := widget.NewButton("Set Active", func() {
		plan, ok := pp.selectedPlan()
		if !ok {
			pp.statusLabel.SetText("Select a plan first")
			return
		}
		if plan.IsActive {
			pp.statusLabel.SetText(plan.Name + " is already active")
			return
		}
		if pp.onSetActive != nil {
			pp.onSetActive(plan.ID)
		}
	})
	activateBtn.Importance = widget.HighImportance

	deleteBtn := widget.NewButton("Delete", func() {
		plan, ok := pp.selectedPlan()
		if !ok {
			pp.statusLabel.SetText("Select a plan first")
			return
		}
		if pp.onDeletePlan != nil {
			pp.onDeletePlan(plan.ID)
		}
	})
	deleteBtn.Importance = widget.DangerImportance

	pp.container = container.NewBorder(
		container.NewVBox(
			addBtn,
			container.NewHBox(activateBtn, deleteBtn),
		),
		pp.statusLabel,
		nil, nil,
		pp.list,
	)

	state.On(app.EventPlansChanged, func(interface{}) {
		pp.list.Refresh()
	})
	state.On(app.EventActivePlanChanged, func(interface{}) {
		pp.list.Refresh()
	})

	return pp
}

// Container returns the panel container.
func (pp *PlansPanel) Container() fyne.CanvasObject {
	return pp.container
}

// SetWindow sets the parent window for dialogs.
func (pp *PlansPanel) SetWindow(w fyne.Window) {
	pp.window = w
}

// SetStatus shows a short message under the plan list.
func (pp *PlansPanel) SetStatus(text string) {
	pp.statusLabel.SetText(text)
}

// OnAddPlan registers the callback fired with the chosen image path.
func (pp *PlansPanel) OnAddPlan(cb func(path string)) {
	pp.onAddPlan = cb
}

// OnSetActive registers the callback fired when the user asks to make
// a plan active.
func (pp *PlansPanel) OnSetActive(cb func(planID string)) {
	pp.onSetActive = cb
}

// OnDeletePlan registers the callback fired when the user asks to
// delete a plan.
func (pp *PlansPanel) OnDeletePlan(cb func(planID string)) {
	pp.onDeletePlan = cb
}

func (pp *PlansPanel) selectedPlan() (model.Plan, bool) {
	if pp.selectedID == "" {
		return model.Plan{}, false
	}
	return pp.state.PlanByID(pp.selectedID)
}

func (pp *PlansPanel) showAddPlanDialog() {
	if pp.window == nil {
		return
	}
	fd := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil {
			dialog.ShowError(err, pp.window)
			return
		}
		if reader == nil {
			return
		}
		reader.Close()
		if pp.onAddPlan != nil {
			pp.onAddPlan(reader.URI().Path())
		}
	}, pp.window)
	fd.SetFilter(storage.NewExtensionFileFilter([]string{".png", ".jpg", ".jpeg", ".tiff", ".tif", ".bmp"}))
	fd.Show()
}

// PlanCountText summarizes the plan list for the status bar.
func PlanCountText(plans []model.Plan) string {
	active := ""
	for _, p := range plans {
		if p.IsActive {
			active = p.Name
		}
	}
	if active == "" {
		return fmt.Sprintf("%d plans, none active", len(plans))
	}
	return fmt.Sprintf("%d plans, active: %s", len(plans), active)
}
