// Package dialogs provides application dialogs.
package dialogs

import (
	"fmt"
	"image"
	"image/color"

	"sitepin/internal/imaging"
	"sitepin/internal/model"
	"sitepin/pkg/geometry"

	"fyne.io/fyne/v2"
	fynecanvas "fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
)

const detailMaxDim = 640

var detectionBoxColor = color.NRGBA{R: 0xE6, G: 0x7E, B: 0x22, A: 0xFF}

// PhotoDetailDialog shows a pinned photo: the image with its detection
// boxes, capture metadata, and an unpin action.
type PhotoDetailDialog struct {
	photo     model.Photo
	placement model.Placement
	window    fyne.Window

	onUnpin func(photoID string)
	onClose func()
}

// NewPhotoDetailDialog creates a photo detail dialog for a placed
// photo.
func NewPhotoDetailDialog(photo model.Photo, placement model.Placement, window fyne.Window) *PhotoDetailDialog {
	return &PhotoDetailDialog{
		photo:     photo,
		placement: placement,
		window:    window,
	}
}

// OnUnpin registers the callback fired when the user confirms removing
// the placement.
func (d *PhotoDetailDialog) OnUnpin(cb func(photoID string)) {
	d.onUnpin = cb
}

// OnClose registers the callback fired when the dialog is dismissed.
func (d *PhotoDetailDialog) OnClose(cb func()) {
	d.onClose = cb
}

// Show displays the dialog.
func (d *PhotoDetailDialog) Show() {
	content := container.NewVBox(
		d.createImageView(),
		d.createMetadata(),
	)

	dlg := dialog.NewCustomWithoutButtons("Photo", content, d.window)

	closeBtn := widget.NewButton("Close", func() {
		dlg.Hide()
	})

	unpinBtn := widget.NewButton("Unpin", func() {
		dialog.ShowConfirm("Unpin Photo",
			"Remove this photo's pin from the plan?",
			func(confirmed bool) {
				if !confirmed {
					return
				}
				if d.onUnpin != nil {
					d.onUnpin(d.photo.ID)
				}
				dlg.Hide()
			}, d.window)
	})
	unpinBtn.Importance = widget.DangerImportance

	buttons := container.NewHBox(unpinBtn, closeBtn)
	dlg = dialog.NewCustomWithoutButtons("Photo",
		container.NewBorder(nil, buttons, nil, nil, content), d.window)
	if d.onClose != nil {
		dlg.SetOnClosed(d.onClose)
	}
	dlg.Show()
}

// createImageView renders the photo with detection box outlines. Boxes
// are normalized to fractional units first; a pixel box whose natural
// image size is unknown cannot be scaled and is hidden rather than
// drawn mis-scaled.
func (d *PhotoDetailDialog) createImageView() fyne.CanvasObject {
	img, err := imaging.Load(d.photo.ImageURL)
	if err != nil {
		return widget.NewLabel(fmt.Sprintf("Image unavailable: %v", err))
	}

	natural := geometry.NewSize(
		float64(img.Bounds().Dx()),
		float64(img.Bounds().Dy()),
	)
	shown := imaging.Thumbnail(img, detailMaxDim)
	shownW := float32(shown.Bounds().Dx())
	shownH := float32(shown.Bounds().Dy())

	photoImg := fynecanvas.NewImageFromImage(shown)
	photoImg.FillMode = fynecanvas.ImageFillStretch
	photoImg.Resize(fyne.NewSize(shownW, shownH))
	photoImg.SetMinSize(fyne.NewSize(shownW, shownH))

	objects := []fyne.CanvasObject{photoImg}
	for _, det := range d.photo.Detections {
		rect, ok := detectionOutlineRect(det, natural, shown.Bounds())
		if !ok {
			continue
		}
		outline := fynecanvas.NewRectangle(color.Transparent)
		outline.StrokeColor = detectionBoxColor
		outline.StrokeWidth = 2
		outline.Move(fyne.NewPos(float32(rect.X), float32(rect.Y)))
		outline.Resize(fyne.NewSize(float32(rect.Width), float32(rect.Height)))
		objects = append(objects, outline)
	}

	view := container.NewWithoutLayout(objects...)
	view.Resize(fyne.NewSize(shownW, shownH))
	return view
}

func (d *PhotoDetailDialog) createMetadata() fyne.CanvasObject {
	lines := container.NewVBox()

	if d.photo.CapturedAt != nil {
		lines.Add(widget.NewLabel("Captured: " + d.photo.CapturedAt.Format("2006-01-02 15:04")))
	}
	if d.photo.HasLocation() {
		lines.Add(widget.NewLabel(fmt.Sprintf("Location: %.6f, %.6f",
			*d.photo.Latitude, *d.photo.Longitude)))
	}
	lines.Add(widget.NewLabel(fmt.Sprintf("Pinned at %.1f%%, %.1f%% (%s)",
		d.placement.X, d.placement.Y, methodText(d.placement.Method))))
	if len(d.photo.Detections) > 0 {
		labels := ""
		for i, det := range d.photo.Detections {
			if i > 0 {
				labels += ", "
			}
			labels += det.Label
		}
		lines.Add(widget.NewLabel("Detected: " + labels))
	}

	return lines
}

func methodText(m model.PlacementMethod) string {
	switch m {
	case model.MethodGPSSuggested:
		return "GPS suggested"
	case model.MethodGPSExact:
		return "GPS exact"
	default:
		return "placed manually"
	}
}

// detectionOutlineRect computes where a detection box lands on the
// scaled-down image shown in the dialog.
func detectionOutlineRect(det model.Detection, natural geometry.Size, shown image.Rectangle) (geometry.Rect, bool) {
	box, ok := geometry.NormalizeBox(det.Box, natural)
	if !ok {
		return geometry.Rect{}, false
	}
	w := float64(shown.Dx())
	h := float64(shown.Dy())
	return geometry.NewRect(box.X*w, box.Y*h, box.Width*w, box.Height*h), true
}
