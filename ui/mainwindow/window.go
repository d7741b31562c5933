// Package mainwindow provides the main application window.
package mainwindow

import (
	"context"
	"errors"
	"fmt"
	"log"
	"path/filepath"
	"time"

	"sitepin/internal/app"
	"sitepin/internal/autoplace"
	"sitepin/internal/config"
	"sitepin/internal/imaging"
	"sitepin/internal/model"
	"sitepin/internal/session"
	"sitepin/internal/store"
	"sitepin/internal/version"
	"sitepin/pkg/geometry"
	"sitepin/ui/dialogs"
	"sitepin/ui/panels"
	"sitepin/ui/prefs"
	"sitepin/ui/viewer"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/google/uuid"
)

// MainWindow is the primary application window: it owns the edit
// session and routes between the viewer, the side panel, and the store.
type MainWindow struct {
	fyne.Window
	app     fyne.App
	state   *app.State
	store   store.Store
	session *session.Session
	gen     *autoplace.Generator
	prefs   *prefs.Prefs
	timeout time.Duration

	viewer    *viewer.PlanViewer
	sidePanel *panels.SidePanel
	statusBar *widget.Label
	zoomLabel *widget.Label

	editBtn      *widget.Button
	saveBtn      *widget.Button
	cancelBtn    *widget.Button
	clickToPlace *widget.Check

	// In-flight guards: one save and one plan switch at a time.
	saving    bool
	switching bool
}

// New creates the main window.
func New(fyneApp fyne.App, state *app.State, st store.Store, cfg *config.Config, p *prefs.Prefs) *MainWindow {
	win := fyneApp.NewWindow("SitePin")

	mw := &MainWindow{
		Window:  win,
		app:     fyneApp,
		state:   state,
		store:   st,
		session: session.New(),
		gen:     autoplace.New(),
		prefs:   p,
		timeout: time.Duration(cfg.StoreTimeoutSeconds) * time.Second,
	}

	mw.setupUI()
	mw.setupMenus()
	mw.setupEventHandlers()
	mw.restoreWindowSize()

	return mw
}

// setupUI creates the main UI layout.
func (mw *MainWindow) setupUI() {
	mw.viewer = viewer.NewPlanViewer()
	mw.sidePanel = panels.NewSidePanel(mw.state)
	mw.sidePanel.SetWindow(mw.Window)
	mw.statusBar = widget.NewLabel("Ready")
	mw.zoomLabel = widget.NewLabel("100%")

	mw.wireSidePanel()
	mw.wireViewer()

	toolbar := mw.createToolbar()

	viewerArea := container.NewBorder(
		toolbar,
		nil, nil, nil,
		mw.viewer,
	)

	split := container.NewHSplit(
		mw.sidePanel.Container(),
		viewerArea,
	)
	split.SetOffset(0.25)

	content := container.NewBorder(
		nil,
		container.NewPadded(mw.statusBar),
		nil, nil,
		split,
	)

	mw.SetContent(content)

	// Files dropped on the window become photos; dropped over the plan
	// they are pinned at the drop point as well.
	mw.SetOnDropped(mw.onFileDropped)

	// Dirty-state guard: closing with unsaved pin edits needs a
	// confirmation.
	mw.SetCloseIntercept(func() {
		if mw.session.Active() && mw.session.Dirty() {
			dialog.ShowConfirm("Unsaved Changes",
				"You have unsaved pin changes. Discard them and quit?",
				func(confirmed bool) {
					if confirmed {
						mw.Close()
					}
				}, mw.Window)
			return
		}
		mw.Close()
	})
}

// createToolbar creates the toolbar with edit-session and zoom
// controls.
func (mw *MainWindow) createToolbar() fyne.CanvasObject {
	mw.editBtn = widget.NewButton("Move Pins", mw.onStartEdit)
	mw.editBtn.Importance = widget.HighImportance

	mw.saveBtn = widget.NewButton("Save Pins", mw.onSaveEdit)
	mw.saveBtn.Importance = widget.HighImportance
	mw.saveBtn.Hide()

	mw.cancelBtn = widget.NewButton("Cancel", mw.onCancelEdit)
	mw.cancelBtn.Hide()

	mw.clickToPlace = widget.NewCheck("Click to place", func(enabled bool) {
		mw.viewer.SetClickToPlace(enabled)
		mw.prefs.SetBool(prefs.KeyClickToPlace, enabled)
		_ = mw.prefs.Save()
	})
	mw.clickToPlace.SetChecked(mw.prefs.Bool(prefs.KeyClickToPlace, true))
	mw.clickToPlace.Hide()

	zoomOutBtn := widget.NewButton("-", mw.viewer.ZoomOut)
	zoomInBtn := widget.NewButton("+", mw.viewer.ZoomIn)
	resetBtn := widget.NewButton("Fit", mw.viewer.ResetView)

	return container.NewHBox(
		mw.editBtn,
		mw.saveBtn,
		mw.cancelBtn,
		mw.clickToPlace,
		widget.NewSeparator(),
		widget.NewLabel("Zoom:"),
		zoomOutBtn,
		mw.zoomLabel,
		zoomInBtn,
		resetBtn,
	)
}

// setupMenus creates the application menus.
func (mw *MainWindow) setupMenus() {
	fileMenu := fyne.NewMenu("File",
		fyne.NewMenuItem("Reload Project", func() { go mw.LoadProject() }),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Quit", func() { mw.app.Quit() }),
	)

	viewMenu := fyne.NewMenu("View",
		fyne.NewMenuItem("Zoom In", mw.viewer.ZoomIn),
		fyne.NewMenuItem("Zoom Out", mw.viewer.ZoomOut),
		fyne.NewMenuItem("Fit to Window", mw.viewer.ResetView),
	)

	toolsMenu := fyne.NewMenu("Tools",
		fyne.NewMenuItem("Suggest Positions for Geotagged Photos", mw.onSuggestPositions),
	)

	helpMenu := fyne.NewMenu("Help",
		fyne.NewMenuItem("About", mw.onAbout),
	)

	mw.SetMainMenu(fyne.NewMainMenu(fileMenu, viewMenu, toolsMenu, helpMenu))
}

func (mw *MainWindow) wireSidePanel() {
	plansPanel := mw.sidePanel.Plans()
	plansPanel.OnAddPlan(mw.onAddPlan)
	plansPanel.OnSetActive(mw.onSetActivePlan)
	plansPanel.OnDeletePlan(mw.onDeletePlan)

	photosPanel := mw.sidePanel.Photos()
	photosPanel.OnAddPhoto(mw.onAddPhoto)
	photosPanel.OnPlaceRequest(mw.onPlaceRequest)
	photosPanel.OnFilterChange(func(filter string) {
		mw.prefs.SetString(prefs.KeyPhotoFilter, filter)
		_ = mw.prefs.Save()
	})
	if filter := mw.prefs.String(prefs.KeyPhotoFilter); filter != "" {
		photosPanel.SetFilter(filter)
	}
}

func (mw *MainWindow) wireViewer() {
	mw.viewer.OnMovePin(func(photoID string, pos geometry.PercentPoint) {
		mw.stagePosition(photoID, pos, model.MethodManual)
	})
	mw.viewer.OnPlacePhoto(func(photoID string, pos geometry.PercentPoint) {
		mw.stagePosition(photoID, pos, model.MethodManual)
		mw.updateStatus("Placed - drag to adjust, Save Pins to keep")
	})
	mw.viewer.OnDropPhoto(mw.onDropPhoto)
	mw.viewer.OnOpenPin(mw.onOpenPin)
	mw.viewer.OnZoomChange(func(zoom float64) {
		mw.zoomLabel.SetText(fmt.Sprintf("%.0f%%", zoom*100))
	})
}

// setupEventHandlers registers for application events.
func (mw *MainWindow) setupEventHandlers() {
	mw.state.On(app.EventActivePlanChanged, func(interface{}) {
		mw.showActivePlan()
	})

	mw.state.On(app.EventPlacementsChanged, func(interface{}) {
		if !mw.session.Active() {
			mw.syncViewerPins()
		}
	})

	mw.state.On(app.EventSelectionChanged, func(data interface{}) {
		photoID, _ := data.(string)
		mw.viewer.SetSelected(photoID)
	})
}

// LoadProject pulls the project, plans, photos, and placements from the
// store and populates local state. The first project is used; an empty
// database gets one created.
func (mw *MainWindow) LoadProject() {
	ctx, cancel := mw.storeCtx()
	defer cancel()

	projects, err := mw.store.ListProjects(ctx)
	if err != nil {
		mw.fail("Loading projects", err)
		return
	}

	var project model.Project
	if len(projects) > 0 {
		project = projects[0]
	} else {
		project, err = mw.store.CreateProject(ctx, "New Site")
		if err != nil {
			mw.fail("Creating project", err)
			return
		}
	}
	mw.state.SetProject(project)
	mw.SetTitle("SitePin - " + project.Name)

	mw.reloadPlans(ctx, project.ID)
	mw.reloadPhotos(ctx, project.ID)
	mw.reloadPlacements(ctx, project.ID)
	mw.showActivePlan()
	mw.updateStatus(panels.PlanCountText(mw.state.Plans))
}

func (mw *MainWindow) reloadPlans(ctx context.Context, projectID string) {
	plans, err := mw.store.ListPlans(ctx, projectID)
	if err != nil {
		mw.fail("Loading plans", err)
		return
	}
	mw.state.SetPlans(plans)
}

func (mw *MainWindow) reloadPhotos(ctx context.Context, projectID string) {
	photos, err := mw.store.ListPhotos(ctx, projectID)
	if err != nil {
		mw.fail("Loading photos", err)
		return
	}
	mw.state.SetPhotos(photos)
}

func (mw *MainWindow) reloadPlacements(ctx context.Context, projectID string) {
	placements, err := mw.store.ListPlacements(ctx, projectID)
	if err != nil {
		mw.fail("Loading placements", err)
		return
	}
	mw.state.SetPlacements(placements)
}

// showActivePlan loads the active plan's image into the viewer.
func (mw *MainWindow) showActivePlan() {
	plan, ok := mw.state.ActivePlan()
	if !ok {
		mw.viewer.SetPlan(model.Plan{}, nil)
		mw.updateStatus("No active plan - add one under Plans")
		return
	}

	img, err := imaging.Load(plan.ImageURL)
	if err != nil {
		log.Printf("plan image %s: %v", plan.ImageURL, err)
		mw.viewer.SetPlan(plan, nil)
	} else {
		mw.viewer.SetPlan(plan, img)
	}
	mw.syncViewerPins()
	mw.updateStatus("Plan: " + plan.Name)
}

// syncViewerPins renders the active plan's pins: the session draft
// while editing, the committed placements otherwise.
func (mw *MainWindow) syncViewerPins() {
	plan, ok := mw.state.ActivePlan()
	if !ok {
		mw.viewer.SetPlacements(nil)
		return
	}

	var placements []model.Placement
	if mw.session.Active() {
		placements = mw.session.Placements()
	} else {
		placements = mw.state.SnapshotPlacements()
	}

	onPlan := placements[:0]
	for _, p := range placements {
		if p.PlanID == plan.ID {
			onPlan = append(onPlan, p)
		}
	}
	mw.viewer.SetPlacements(onPlan)
}

// Edit session

func (mw *MainWindow) onStartEdit() {
	if _, ok := mw.state.ActivePlan(); !ok {
		mw.updateStatus("Add a plan before editing pins")
		return
	}
	mw.session.Start(mw.state.SnapshotPlacements())
	mw.viewer.SetEditing(true)
	mw.setEditControls(true)
	mw.syncViewerPins()
	mw.state.Emit(app.EventEditModeChanged, true)
	mw.updateStatus("Edit mode: drag pins, or select a photo and click the plan")
}

func (mw *MainWindow) onCancelEdit() {
	if !mw.session.Active() {
		return
	}
	if mw.session.Dirty() {
		dialog.ShowConfirm("Discard Changes",
			"You have unsaved pin changes. Discard them?",
			func(confirmed bool) {
				if confirmed {
					mw.closeEdit()
					mw.updateStatus("Changes discarded")
				}
			}, mw.Window)
		return
	}
	mw.closeEdit()
	mw.updateStatus("Edit mode closed")
}

func (mw *MainWindow) closeEdit() {
	mw.session.Cancel()
	mw.viewer.SetEditing(false)
	mw.setEditControls(false)
	mw.syncViewerPins()
	mw.state.Emit(app.EventEditModeChanged, false)
}

func (mw *MainWindow) onSaveEdit() {
	if !mw.session.Active() || mw.saving {
		return
	}
	diff := mw.session.Diff()
	if len(diff) == 0 {
		mw.closeEdit()
		mw.updateStatus("No changes to save")
		return
	}

	mw.saving = true
	mw.saveBtn.Disable()
	mw.updateStatus(fmt.Sprintf("Saving %d placement(s)...", len(diff)))

	go func() {
		defer func() {
			mw.saving = false
			mw.saveBtn.Enable()
		}()

		ctx, cancel := mw.storeCtx()
		defer cancel()

		// Each changed placement is its own upsert; one failing does
		// not roll back or block the others.
		failed := 0
		for _, p := range diff {
			canonical, err := mw.store.UpsertPlacement(ctx, p.PhotoID, p.PlanID, p.X, p.Y, p.Method)
			if err != nil {
				log.Printf("saving placement for photo %s: %v", p.PhotoID, err)
				failed++
				continue
			}
			mw.state.ApplyPlacement(canonical)
		}
		if failed > 0 {
			// The session stays open; re-saving retries everything,
			// and upserts are idempotent per photo.
			mw.fail("Saving placements", fmt.Errorf("%d of %d placements not saved", failed, len(diff)))
			return
		}

		mw.session.Finish()
		mw.viewer.SetEditing(false)
		mw.setEditControls(false)
		mw.syncViewerPins()
		mw.state.Emit(app.EventEditModeChanged, false)
		mw.updateStatus(fmt.Sprintf("Saved %d placement(s)", len(diff)))
	}()
}

func (mw *MainWindow) setEditControls(editing bool) {
	if editing {
		mw.editBtn.Hide()
		mw.saveBtn.Show()
		mw.cancelBtn.Show()
		mw.clickToPlace.Show()
	} else {
		mw.editBtn.Show()
		mw.saveBtn.Hide()
		mw.cancelBtn.Hide()
		mw.clickToPlace.Hide()
	}
	mw.sidePanel.Photos().SetPlaceEnabled(editing)
}

// stagePosition records a pin position in the session draft and
// re-renders. Every committed position is already percent-normalized
// by the viewer.
func (mw *MainWindow) stagePosition(photoID string, pos geometry.PercentPoint, method model.PlacementMethod) {
	plan, ok := mw.state.ActivePlan()
	if !ok || !mw.session.Active() {
		return
	}
	mw.session.SetPosition(photoID, plan.ID, pos.X, pos.Y, method)
	mw.syncViewerPins()
	if mw.session.Dirty() {
		mw.updateStatus("Unsaved pin changes")
	}
}

// onDropPhoto handles drag-and-drop from the photo list. Unlike the
// staged gestures it writes straight through to the store; an open
// session's draft is mirrored afterwards so the two paths agree on
// what is rendered.
func (mw *MainWindow) onDropPhoto(photoID string, pos geometry.PercentPoint) {
	plan, ok := mw.state.ActivePlan()
	if !ok {
		return
	}

	go func() {
		ctx, cancel := mw.storeCtx()
		defer cancel()

		canonical, err := mw.store.UpsertPlacement(ctx, photoID, plan.ID, pos.X, pos.Y, model.MethodManual)
		if err != nil {
			mw.fail("Placing dropped photo", err)
			return
		}
		mw.state.ApplyPlacement(canonical)
		if mw.session.Active() {
			mw.session.SetPosition(photoID, plan.ID, pos.X, pos.Y, model.MethodManual)
			mw.syncViewerPins()
		}
		mw.updateStatus("Photo placed")
	}()
}

func (mw *MainWindow) onPlaceRequest(photoID string) {
	if !mw.session.Active() {
		mw.updateStatus("Open edit mode (Move Pins) first")
		return
	}
	if _, placed := mw.session.Placement(photoID); placed {
		mw.updateStatus("Photo is already placed - drag its pin instead")
		return
	}
	if !mw.viewer.ArmPlacement(photoID) {
		if mw.viewer.Zoom() != 1.0 {
			mw.updateStatus("Click-to-place needs 100% zoom - hit Fit first")
		} else {
			mw.updateStatus("Enable \"Click to place\" to place by clicking")
		}
		return
	}
	mw.updateStatus("Click the plan to place the photo")
}

// onSuggestPositions stages generated positions for unplaced geotagged
// photos. Suggestions are draft placements like any other edit.
func (mw *MainWindow) onSuggestPositions() {
	if !mw.session.Active() {
		mw.updateStatus("Open edit mode (Move Pins) first")
		return
	}
	plan, ok := mw.state.ActivePlan()
	if !ok {
		return
	}

	suggested := 0
	for _, photo := range mw.state.Photos {
		if !photo.HasLocation() {
			continue
		}
		if _, placed := mw.session.Placement(photo.ID); placed {
			continue
		}
		pos := mw.gen.Generate(float64(plan.Width), float64(plan.Height), autoplace.DefaultMargin)
		mw.session.SetPosition(photo.ID, plan.ID, pos.X, pos.Y, model.MethodGPSSuggested)
		suggested++
	}

	mw.syncViewerPins()
	if suggested == 0 {
		mw.updateStatus("No unplaced geotagged photos")
	} else {
		mw.updateStatus(fmt.Sprintf("Suggested positions for %d photo(s) - adjust and save", suggested))
	}
}

// Pin detail

func (mw *MainWindow) onOpenPin(photoID string) {
	photo, ok := mw.state.PhotoByID(photoID)
	if !ok {
		mw.viewer.DoneViewing()
		return
	}
	placement, ok := mw.state.PlacementFor(photoID)
	if !ok {
		mw.viewer.DoneViewing()
		return
	}

	dlg := dialogs.NewPhotoDetailDialog(photo, placement, mw.Window)
	dlg.OnUnpin(mw.onUnpin)
	dlg.OnClose(mw.viewer.DoneViewing)
	dlg.Show()
}

func (mw *MainWindow) onUnpin(photoID string) {
	go func() {
		ctx, cancel := mw.storeCtx()
		defer cancel()

		if err := mw.store.DeletePlacement(ctx, photoID); err != nil {
			mw.fail("Unpinning photo", err)
			return
		}
		mw.state.RemovePlacement(photoID)
		mw.updateStatus("Photo unpinned")
	}()
}

// Plans

func (mw *MainWindow) onAddPlan(path string) {
	size := imaging.NaturalSize(path)
	if !size.Known() {
		dialog.ShowError(fmt.Errorf("cannot read plan image %s", filepath.Base(path)), mw.Window)
		return
	}

	plan := model.Plan{
		ID:        uuid.NewString(),
		ProjectID: mw.state.Project.ID,
		Name:      filepath.Base(path),
		ImageURL:  path,
		Width:     int(size.Width),
		Height:    int(size.Height),
	}

	go func() {
		ctx, cancel := mw.storeCtx()
		defer cancel()

		created, err := mw.store.CreatePlan(ctx, plan)
		if err != nil {
			mw.fail("Adding plan", err)
			return
		}
		mw.reloadPlans(ctx, mw.state.Project.ID)
		if created.IsActive {
			mw.showActivePlan()
		}
		mw.sidePanel.Plans().SetStatus("Added " + created.Name)
	}()
}

// onSetActivePlan runs the optimistic plan switch: the local flags flip
// immediately, the store call follows, and a failure reverts. The
// store's cascade delete of the old plan's pins is mirrored locally on
// success - and on CascadeError too, since the switch itself stands.
func (mw *MainWindow) onSetActivePlan(planID string) {
	if mw.switching {
		return
	}
	if mw.session.Active() {
		mw.updateStatus("Finish the edit session before switching plans")
		return
	}

	dialog.ShowConfirm("Switch Active Plan",
		"Switching removes all pins from the current active plan. Continue?",
		func(confirmed bool) {
			if !confirmed {
				return
			}
			mw.switching = true

			cmd := app.NewPlanSwitch(mw.state, planID)
			cmd.Apply()

			go func() {
				defer func() { mw.switching = false }()

				ctx, cancel := mw.storeCtx()
				defer cancel()

				err := mw.store.SetActivePlan(ctx, mw.state.Project.ID, planID)
				var cascadeErr *store.CascadeError
				switch {
				case err == nil:
					cmd.InvalidatePrevPlacements()
					mw.updateStatus(panels.PlanCountText(mw.state.Plans))
				case errors.As(err, &cascadeErr):
					// The switch committed; only the cleanup of the old
					// plan's pins failed. Stale rows remain until the
					// next successful switch or delete.
					cmd.InvalidatePrevPlacements()
					log.Printf("plan switch cascade: %v", err)
					dialog.ShowError(fmt.Errorf("plan switched, but old pins could not be cleared: %w", cascadeErr.Err), mw.Window)
				default:
					cmd.Revert()
					mw.fail("Switching plan", err)
				}
			}()
		}, mw.Window)
}

func (mw *MainWindow) onDeletePlan(planID string) {
	plan, ok := mw.state.PlanByID(planID)
	if !ok {
		return
	}
	dialog.ShowConfirm("Delete Plan",
		fmt.Sprintf("Delete %s and its pins?", plan.Name),
		func(confirmed bool) {
			if !confirmed {
				return
			}
			go func() {
				ctx, cancel := mw.storeCtx()
				defer cancel()

				err := mw.store.DeletePlan(ctx, planID)
				switch {
				case errors.Is(err, store.ErrPlanActive):
					mw.sidePanel.Plans().SetStatus("Make another plan active first")
				case errors.Is(err, store.ErrLastPlan):
					mw.sidePanel.Plans().SetStatus("A project needs at least one plan")
				case err != nil:
					mw.fail("Deleting plan", err)
				default:
					mw.reloadPlans(ctx, mw.state.Project.ID)
					mw.reloadPlacements(ctx, mw.state.Project.ID)
					mw.sidePanel.Plans().SetStatus("Deleted " + plan.Name)
				}
			}()
		}, mw.Window)
}

// Photos

func (mw *MainWindow) onAddPhoto(path string) {
	photo := model.Photo{
		ID:        uuid.NewString(),
		ProjectID: mw.state.Project.ID,
		ImageURL:  path,
	}

	go func() {
		ctx, cancel := mw.storeCtx()
		defer cancel()

		if _, err := mw.store.CreatePhoto(ctx, photo); err != nil {
			mw.fail("Adding photo", err)
			return
		}
		mw.reloadPhotos(ctx, mw.state.Project.ID)
		mw.sidePanel.Photos().SetStatus("Added " + filepath.Base(path))
	}()
}

// onFileDropped imports image files dropped onto the window. A drop
// over the plan image also pins the new photo at the drop point (the
// un-staged drag-and-drop path).
func (mw *MainWindow) onFileDropped(pos fyne.Position, uris []fyne.URI) {
	if mw.state.Project.ID == "" || len(uris) == 0 {
		return
	}

	viewerOrigin := fyne.CurrentApp().Driver().AbsolutePositionForObject(mw.viewer)
	local := fyne.NewPos(pos.X-viewerOrigin.X, pos.Y-viewerOrigin.Y)

	go func() {
		ctx, cancel := mw.storeCtx()
		defer cancel()

		for _, uri := range uris {
			path := uri.Path()
			if !imaging.NaturalSize(path).Known() {
				log.Printf("dropped file %s: not a readable image", path)
				continue
			}
			created, err := mw.store.CreatePhoto(ctx, model.Photo{
				ID:        uuid.NewString(),
				ProjectID: mw.state.Project.ID,
				ImageURL:  path,
			})
			if err != nil {
				mw.fail("Importing dropped photo", err)
				return
			}
			mw.viewer.DropAt(created.ID, local)
		}
		mw.reloadPhotos(ctx, mw.state.Project.ID)
	}()
}

// Plumbing

func (mw *MainWindow) storeCtx() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), mw.timeout)
}

func (mw *MainWindow) updateStatus(text string) {
	mw.statusBar.SetText(text)
}

// fail logs an error and surfaces it in a dialog and the status bar.
func (mw *MainWindow) fail(action string, err error) {
	log.Printf("%s: %v", action, err)
	mw.updateStatus(fmt.Sprintf("%s failed: %v", action, err))
	dialog.ShowError(fmt.Errorf("%s: %w", action, err), mw.Window)
}

func (mw *MainWindow) restoreWindowSize() {
	w := float32(mw.prefs.Float(prefs.KeyWindowWidth, 1280))
	h := float32(mw.prefs.Float(prefs.KeyWindowHeight, 800))
	mw.Resize(fyne.NewSize(w, h))

	mw.SetOnClosed(func() {
		size := mw.Canvas().Size()
		mw.prefs.SetFloat(prefs.KeyWindowWidth, float64(size.Width))
		mw.prefs.SetFloat(prefs.KeyWindowHeight, float64(size.Height))
		_ = mw.prefs.Save()
	})
}

func (mw *MainWindow) onAbout() {
	dialog.ShowInformation("About SitePin",
		fmt.Sprintf("SitePin v%s\n\n"+
			"Pin construction photos to floor plans.\n\n"+
			"Built: %s\n"+
			"Commit: %s",
			version.Version, version.BuildTime, version.GitCommit),
		mw.Window)
}
