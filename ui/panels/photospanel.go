package panels

import (
	"fmt"
	"image"
	"path/filepath"
	"sync"

	"sitepin/internal/app"
	"sitepin/internal/imaging"
	"sitepin/internal/model"

	"fyne.io/fyne/v2"
	fynecanvas "fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"
)

const thumbnailSize = 48

// Photo list filters.
const (
	FilterAll      = "All"
	FilterUnplaced = "Unplaced"
	FilterPlaced   = "Placed"
)

// PhotosPanel lists the project's photos with placement status. The
// selection is shared with the viewer through app.State.
type PhotosPanel struct {
	state     *app.State
	window    fyne.Window
	container fyne.CanvasObject

	list        *widget.List
	filterGroup *widget.RadioGroup
	placeBtn    *widget.Button
	statusLabel *widget.Label

	filtered []model.Photo

	thumbMu sync.Mutex
	thumbs  map[string]image.Image

	onAddPhoto     func(path string)
	onPlaceRequest func(photoID string)
	onFilterChange func(filter string)
}

// NewPhotosPanel creates a new photos panel.
func NewPhotosPanel(state *app.State) *PhotosPanel {
	pp := &PhotosPanel{
		state:  state,
		thumbs: make(map[string]image.Image),
	}

	pp.statusLabel = widget.NewLabel("")
	pp.statusLabel.Wrapping = fyne.TextWrapWord

	pp.filterGroup = widget.NewRadioGroup(
		[]string{FilterAll, FilterUnplaced, FilterPlaced},
		func(string) {
			pp.refilter()
			if pp.onFilterChange != nil {
				pp.onFilterChange(pp.filterGroup.Selected)
			}
		},
	)
	pp.filterGroup.Horizontal = true
	pp.filterGroup.SetSelected(FilterAll)

	pp.list = widget.NewList(
		func() int {
			return len(pp.filtered)
		},
		func() fyne.CanvasObject {
			thumb := &fynecanvas.Image{FillMode: fynecanvas.ImageFillContain}
			thumb.SetMinSize(fyne.NewSize(thumbnailSize, thumbnailSize))
			name := widget.NewLabel("photo")
			name.TextStyle = fyne.TextStyle{Bold: true}
			status := widget.NewLabel("")
			return container.NewBorder(nil, nil, thumb, nil,
				container.NewVBox(name, status))
		},
		func(id widget.ListItemID, obj fyne.CanvasObject) {
			if id >= len(pp.filtered) {
				return
			}
			photo := pp.filtered[id]
			// Border container object order: edges first, center last.
			row := obj.(*fyne.Container)
			thumb := row.Objects[0].(*fynecanvas.Image)
			labels := row.Objects[1].(*fyne.Container)
			labels.Objects[0].(*widget.Label).SetText(photoDisplayName(photo))
			labels.Objects[1].(*widget.Label).SetText(pp.photoStatus(photo))

			if img := pp.thumbnail(photo); img != nil {
				thumb.Image = img
				thumb.Refresh()
			}
		},
	)
	pp.list.OnSelected = func(id widget.ListItemID) {
		if id < len(pp.filtered) {
			state.SetSelectedPhoto(pp.filtered[id].ID)
		}
	}
	pp.list.OnUnselected = func(widget.ListItemID) {
		state.SetSelectedPhoto("")
	}

	addBtn := widget.NewButton("Add Photo...", func() {
		pp.showAddPhotoDialog()
	})

	pp.placeBtn = widget.NewButton("Place on Plan", func() {
		photoID := pp.state.SelectedPhotoID
		if photoID == "" {
			pp.statusLabel.SetText("Select a photo first")
			return
		}
		if pp.onPlaceRequest != nil {
			pp.onPlaceRequest(photoID)
		}
	})
	pp.placeBtn.Disable()

	pp.container = container.NewBorder(
		container.NewVBox(addBtn, pp.filterGroup),
		container.NewVBox(pp.placeBtn, pp.statusLabel),
		nil, nil,
		pp.list,
	)

	state.On(app.EventPhotosChanged, func(interface{}) {
		pp.refilter()
	})
	state.On(app.EventPlacementsChanged, func(interface{}) {
		pp.refilter()
	})
	state.On(app.EventSelectionChanged, func(data interface{}) {
		pp.syncSelection(data)
	})

	pp.refilter()
	return pp
}

// Container returns the panel container.
func (pp *PhotosPanel) Container() fyne.CanvasObject {
	return pp.container
}

// SetWindow sets the parent window for dialogs.
func (pp *PhotosPanel) SetWindow(w fyne.Window) {
	pp.window = w
}

// SetStatus shows a short message under the photo list.
func (pp *PhotosPanel) SetStatus(text string) {
	pp.statusLabel.SetText(text)
}

// SetFilter selects a list filter programmatically.
func (pp *PhotosPanel) SetFilter(filter string) {
	pp.filterGroup.SetSelected(filter)
}

// SetPlaceEnabled toggles the "Place on Plan" button; placement is
// only available during an edit session.
func (pp *PhotosPanel) SetPlaceEnabled(enabled bool) {
	if enabled {
		pp.placeBtn.Enable()
	} else {
		pp.placeBtn.Disable()
	}
}

// OnAddPhoto registers the callback fired with the chosen image path.
func (pp *PhotosPanel) OnAddPhoto(cb func(path string)) {
	pp.onAddPhoto = cb
}

// OnPlaceRequest registers the callback fired when the user asks to
// place the selected photo.
func (pp *PhotosPanel) OnPlaceRequest(cb func(photoID string)) {
	pp.onPlaceRequest = cb
}

// OnFilterChange registers the callback fired when the filter changes.
func (pp *PhotosPanel) OnFilterChange(cb func(filter string)) {
	pp.onFilterChange = cb
}

func (pp *PhotosPanel) refilter() {
	filter := FilterAll
	if pp.filterGroup != nil {
		filter = pp.filterGroup.Selected
	}

	var filtered []model.Photo
	for _, photo := range pp.state.Photos {
		_, placed := pp.state.PlacementFor(photo.ID)
		switch filter {
		case FilterUnplaced:
			if placed {
				continue
			}
		case FilterPlaced:
			if !placed {
				continue
			}
		}
		filtered = append(filtered, photo)
	}
	pp.filtered = filtered
	if pp.list != nil {
		pp.list.Refresh()
	}
}

func (pp *PhotosPanel) syncSelection(data interface{}) {
	photoID, _ := data.(string)
	if photoID == "" {
		pp.list.UnselectAll()
		return
	}
	for i, photo := range pp.filtered {
		if photo.ID == photoID {
			pp.list.Select(i)
			return
		}
	}
}

func (pp *PhotosPanel) photoStatus(photo model.Photo) string {
	status := "Unplaced"
	if placement, ok := pp.state.PlacementFor(photo.ID); ok {
		switch placement.Method {
		case model.MethodGPSSuggested:
			status = "Placed (GPS suggested)"
		case model.MethodGPSExact:
			status = "Placed (GPS)"
		default:
			status = "Placed"
		}
	}
	if photo.HasLocation() {
		status += " · geotagged"
	}
	return status
}

// thumbnail returns a cached thumbnail, kicking off a background load
// on a miss.
func (pp *PhotosPanel) thumbnail(photo model.Photo) image.Image {
	pp.thumbMu.Lock()
	img, ok := pp.thumbs[photo.ID]
	pp.thumbMu.Unlock()
	if ok {
		return img
	}

	go func() {
		full, err := imaging.Load(photo.ImageURL)
		if err != nil {
			return
		}
		thumb := imaging.Thumbnail(full, thumbnailSize*2)
		pp.thumbMu.Lock()
		pp.thumbs[photo.ID] = thumb
		pp.thumbMu.Unlock()
		pp.list.Refresh()
	}()
	return nil
}

func (pp *PhotosPanel) showAddPhotoDialog() {
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
		if pp.onAddPhoto != nil {
			pp.onAddPhoto(reader.URI().Path())
		}
	}, pp.window)
	fd.SetFilter(storage.NewExtensionFileFilter([]string{".png", ".jpg", ".jpeg", ".tiff", ".tif"}))
	fd.Show()
}

func photoDisplayName(photo model.Photo) string {
	name := filepath.Base(photo.ImageURL)
	if photo.CapturedAt != nil {
		return fmt.Sprintf("%s (%s)", name, photo.CapturedAt.Format("2006-01-02 15:04"))
	}
	return name
}
