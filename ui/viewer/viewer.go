package viewer

import (
	"image"
	"image/color"

	"sitepin/internal/model"
	"sitepin/pkg/geometry"

	"fyne.io/fyne/v2"
	fynecanvas "fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// PlanViewer displays the active floor plan with its placement pins.
// It owns the viewport transform and the gesture arbitration; every
// committed position that leaves the widget is a PercentPoint, so
// callers never see pixels, zoom, or pan.
//
// Pointer-moves during a pan or pin drag mutate the retained canvas
// nodes directly; the percent conversion happens once, at gesture end.
type PlanViewer struct {
	widget.BaseWidget

	viewport *Viewport
	gestures *Interaction

	plan     model.Plan
	hasPlan  bool
	backdrop *fynecanvas.Rectangle
	planImg  *fynecanvas.Image
	content  *fyne.Container
	pins     map[string]*PinMarker
	selected string

	viewSize fyne.Size // widget size from the last layout pass

	onMovePin    func(photoID string, pos geometry.PercentPoint)
	onPlacePhoto func(photoID string, pos geometry.PercentPoint)
	onDropPhoto  func(photoID string, pos geometry.PercentPoint)
	onOpenPin    func(photoID string)
	onZoomChange func(zoom float64)
}

var _ fyne.Draggable = (*PlanViewer)(nil)
var _ fyne.Tappable = (*PlanViewer)(nil)
var _ fyne.Scrollable = (*PlanViewer)(nil)

// NewPlanViewer creates an empty viewer. Call SetPlan to show a plan.
func NewPlanViewer() *PlanViewer {
	v := &PlanViewer{
		viewport: NewViewport(),
		gestures: NewInteraction(),
		backdrop: fynecanvas.NewRectangle(color.NRGBA{R: 0x26, G: 0x2B, B: 0x33, A: 0xFF}),
		planImg:  fynecanvas.NewImageFromImage(image.NewRGBA(image.Rect(0, 0, 1, 1))),
		pins:     map[string]*PinMarker{},
	}
	v.planImg.FillMode = fynecanvas.ImageFillStretch
	v.planImg.Hide()
	v.content = container.NewWithoutLayout(v.planImg)
	v.ExtendBaseWidget(v)
	return v
}

// OnMovePin registers the callback fired when a pin drag commits.
func (v *PlanViewer) OnMovePin(cb func(photoID string, pos geometry.PercentPoint)) {
	v.onMovePin = cb
}

// OnPlacePhoto registers the callback fired when an armed
// click-to-place resolves inside the plan.
func (v *PlanViewer) OnPlacePhoto(cb func(photoID string, pos geometry.PercentPoint)) {
	v.onPlacePhoto = cb
}

// OnDropPhoto registers the callback fired when a photo is dropped
// onto the plan from the photo list.
func (v *PlanViewer) OnDropPhoto(cb func(photoID string, pos geometry.PercentPoint)) {
	v.onDropPhoto = cb
}

// OnOpenPin registers the callback fired when a pin is tapped outside
// edit mode. Call DoneViewing when the detail view closes.
func (v *PlanViewer) OnOpenPin(cb func(photoID string)) {
	v.onOpenPin = cb
}

// OnZoomChange registers the callback fired after the zoom factor
// changes.
func (v *PlanViewer) OnZoomChange(cb func(zoom float64)) {
	v.onZoomChange = cb
}

// SetPlan switches the displayed plan and resets the viewport. A nil
// image clears the viewer (plan record without a readable image).
func (v *PlanViewer) SetPlan(plan model.Plan, img image.Image) {
	v.plan = plan
	v.hasPlan = img != nil
	if img != nil {
		v.planImg.Image = img
		v.planImg.Show()
	} else {
		v.planImg.Hide()
	}
	v.viewport.Reset()
	v.gestures.SetZoom(v.viewport.Zoom())
	v.relayout()
	v.Refresh()
	if v.onZoomChange != nil {
		v.onZoomChange(v.viewport.Zoom())
	}
}

// SetPlacements replaces the rendered pins. The caller passes either
// the committed placements or, during an edit session, the draft.
func (v *PlanViewer) SetPlacements(placements []model.Placement) {
	objects := []fyne.CanvasObject{v.planImg}
	pins := make(map[string]*PinMarker, len(placements))
	for _, pl := range placements {
		if existing, ok := v.pins[pl.PhotoID]; ok {
			existing.setPercent(pl.X, pl.Y)
			existing.SetMethod(pl.Method)
			pins[pl.PhotoID] = existing
		} else {
			pins[pl.PhotoID] = newPinMarker(v, pl)
		}
		objects = append(objects, pins[pl.PhotoID])
	}
	v.pins = pins
	v.content.Objects = objects
	if p, ok := v.pins[v.selected]; ok {
		p.SetSelected(true)
	}
	v.relayout()
	v.content.Refresh()
}

// SetSelected highlights the pin for the given photo, clearing any
// previous highlight. An empty ID clears the selection.
func (v *PlanViewer) SetSelected(photoID string) {
	if prev, ok := v.pins[v.selected]; ok {
		prev.SetSelected(false)
	}
	v.selected = photoID
	if p, ok := v.pins[photoID]; ok {
		p.SetSelected(true)
	}
}

// SetEditing opens or closes the pin edit session on the gesture
// machine.
func (v *PlanViewer) SetEditing(editing bool) {
	v.gestures.SetEditing(editing)
}

// SetClickToPlace toggles the click-to-place feature.
func (v *PlanViewer) SetClickToPlace(enabled bool) {
	v.gestures.SetClickToPlace(enabled)
}

// ArmPlacement arms click-to-place for an unplaced photo. Returns
// false when the gesture machine refuses (no edit session, zoomed in,
// or click-to-place disabled).
func (v *PlanViewer) ArmPlacement(photoID string) bool {
	return v.gestures.ArmPlacement(photoID)
}

// Disarm cancels a pending click-to-place.
func (v *PlanViewer) Disarm() {
	v.gestures.Disarm()
}

// DoneViewing tells the gesture machine the pin detail view closed.
func (v *PlanViewer) DoneViewing() {
	v.gestures.DoneViewing()
}

// ZoomIn steps the zoom up around the viewport center.
func (v *PlanViewer) ZoomIn() {
	v.changeZoom(v.viewport.ZoomIn())
}

// ZoomOut steps the zoom down.
func (v *PlanViewer) ZoomOut() {
	v.changeZoom(v.viewport.ZoomOut())
}

// ResetView returns to 1x zoom with the plan centered.
func (v *PlanViewer) ResetView() {
	v.viewport.Reset()
	v.changeZoom(true)
}

// Zoom returns the current zoom factor.
func (v *PlanViewer) Zoom() float64 {
	return v.viewport.Zoom()
}

func (v *PlanViewer) changeZoom(changed bool) {
	if !changed {
		return
	}
	v.gestures.SetZoom(v.viewport.Zoom())
	v.relayout()
	v.content.Refresh()
	if v.onZoomChange != nil {
		v.onZoomChange(v.viewport.Zoom())
	}
}

// DropAt places a photo dropped from the photo list at a
// viewer-relative position. Drag-and-drop bypasses the gesture state
// machine entirely; only the plan bounds are respected - drops outside
// the plan image are ignored.
func (v *PlanViewer) DropAt(photoID string, pos fyne.Position) {
	if v.onDropPhoto == nil {
		return
	}
	rect := v.renderedRect()
	local := v.toContentPoint(pos)
	if rect.Empty() || !rect.Contains(local) {
		return
	}
	v.onDropPhoto(photoID, geometry.ToPercent(local, rect))
}

// Dragged pans the canvas. Pin drags never arrive here; the marker
// widgets capture those.
func (v *PlanViewer) Dragged(ev *fyne.DragEvent) {
	if v.gestures.State() == GestureIdle {
		if !v.gestures.BeginPan() {
			return
		}
		v.viewport.BeginPan()
	}
	if v.gestures.State() != GesturePanning {
		return
	}
	v.viewport.DragBy(float64(ev.Dragged.DX), float64(ev.Dragged.DY))
	v.content.Move(v.contentOrigin())
	fynecanvas.Refresh(v.content)
}

// DragEnd commits a pan gesture.
func (v *PlanViewer) DragEnd() {
	if v.gestures.State() != GesturePanning {
		return
	}
	v.viewport.CommitPan()
	v.gestures.EndPan()
}

// Tapped resolves an armed click-to-place. Clicks outside the plan
// image, or with nothing armed, do nothing.
func (v *PlanViewer) Tapped(ev *fyne.PointEvent) {
	if v.gestures.State() != GesturePlacing {
		return
	}
	rect := v.renderedRect()
	local := v.toContentPoint(ev.Position)
	if rect.Empty() || !rect.Contains(local) {
		return
	}
	photoID, ok := v.gestures.ResolvePlacement()
	if !ok {
		return
	}
	if v.onPlacePhoto != nil {
		v.onPlacePhoto(photoID, geometry.ToPercent(local, rect))
	}
}

// Scrolled zooms with the mouse wheel.
func (v *PlanViewer) Scrolled(ev *fyne.ScrollEvent) {
	if ev.Scrolled.DY > 0 {
		v.ZoomIn()
	} else if ev.Scrolled.DY < 0 {
		v.ZoomOut()
	}
}

// pinDragged routes a drag that started on a pin. Outside an edit
// session pins are inert, so the drag pans the canvas instead. Inside
// one, the pin captures the gesture, taking over from any pan the same
// pointer-down started.
func (v *PlanViewer) pinDragged(p *PinMarker, ev *fyne.DragEvent) {
	if !v.gestures.Editing() {
		v.Dragged(ev)
		return
	}
	if v.gestures.State() != GestureDraggingPin || v.gestures.PhotoID() != p.photoID {
		if !v.gestures.BeginPinDrag(p.photoID) {
			return
		}
	}
	p.Move(p.Position().AddXY(ev.Dragged.DX, ev.Dragged.DY))
	fynecanvas.Refresh(p)
}

// pinDragEnded commits a pin drag: the marker center is normalized
// against the rendered plan rect, which also clamps a release outside
// the plan back onto its edge.
func (v *PlanViewer) pinDragEnded(p *PinMarker) {
	if !v.gestures.Editing() {
		v.DragEnd()
		return
	}
	photoID, ok := v.gestures.EndPinDrag()
	if !ok {
		return
	}
	rect := v.renderedRect()
	if rect.Empty() {
		return
	}
	center := geometry.NewPoint2D(
		float64(p.Position().X)+float64(PinDiameter)/2,
		float64(p.Position().Y)+float64(PinDiameter)/2,
	)
	pos := geometry.ToPercent(center, rect)
	p.setPercent(pos.X, pos.Y)
	v.positionPin(p, rect)
	fynecanvas.Refresh(p)
	if v.onMovePin != nil {
		v.onMovePin(photoID, pos)
	}
}

func (v *PlanViewer) pinTapped(p *PinMarker) {
	if v.gestures.Editing() {
		return
	}
	if !v.gestures.ViewPin(p.photoID) {
		return
	}
	if v.onOpenPin != nil {
		v.onOpenPin(p.photoID)
	} else {
		v.gestures.DoneViewing()
	}
}

// renderedRect is the plan image's current bounds in content
// coordinates: the fit-to-viewport size scaled by the zoom factor.
func (v *PlanViewer) renderedRect() geometry.Rect {
	pw := float64(v.plan.Width)
	ph := float64(v.plan.Height)
	if !v.hasPlan || pw <= 0 || ph <= 0 {
		return geometry.Rect{}
	}
	vw := float64(v.viewSize.Width)
	vh := float64(v.viewSize.Height)
	if vw <= 0 || vh <= 0 {
		return geometry.Rect{}
	}
	scale := vw / pw
	if s := vh / ph; s < scale {
		scale = s
	}
	scale *= v.viewport.Zoom()
	return geometry.NewRect(0, 0, pw*scale, ph*scale)
}

// contentOrigin positions the content node: plan centered in the
// viewport, then offset by the pan.
func (v *PlanViewer) contentOrigin() fyne.Position {
	rect := v.renderedRect()
	pan := v.viewport.Pan()
	return fyne.NewPos(
		float32((float64(v.viewSize.Width)-rect.Width)/2+pan.X),
		float32((float64(v.viewSize.Height)-rect.Height)/2+pan.Y),
	)
}

func (v *PlanViewer) toContentPoint(pos fyne.Position) geometry.Point2D {
	origin := v.content.Position()
	return geometry.NewPoint2D(float64(pos.X-origin.X), float64(pos.Y-origin.Y))
}

func (v *PlanViewer) positionPin(p *PinMarker, rect geometry.Rect) {
	px := geometry.ToPixels(geometry.NewPercentPoint(p.x, p.y), rect)
	p.Resize(fyne.NewSize(PinDiameter, PinDiameter))
	p.Move(fyne.NewPos(
		float32(px.X)-PinDiameter/2,
		float32(px.Y)-PinDiameter/2,
	))
}

func (v *PlanViewer) relayout() {
	rect := v.renderedRect()
	v.planImg.Move(fyne.NewPos(0, 0))
	v.planImg.Resize(fyne.NewSize(float32(rect.Width), float32(rect.Height)))
	for _, p := range v.pins {
		v.positionPin(p, rect)
	}
	v.content.Resize(fyne.NewSize(float32(rect.Width), float32(rect.Height)))
	v.content.Move(v.contentOrigin())
}

// CreateRenderer implements fyne.Widget.
func (v *PlanViewer) CreateRenderer() fyne.WidgetRenderer {
	return &planViewerRenderer{viewer: v}
}

type planViewerRenderer struct {
	viewer *PlanViewer
}

func (r *planViewerRenderer) Layout(size fyne.Size) {
	r.viewer.viewSize = size
	r.viewer.backdrop.Resize(size)
	r.viewer.relayout()
}

func (r *planViewerRenderer) MinSize() fyne.Size {
	return fyne.NewSize(480, 360)
}

func (r *planViewerRenderer) Refresh() {
	fynecanvas.Refresh(r.viewer.backdrop)
	r.viewer.content.Refresh()
}

func (r *planViewerRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.viewer.backdrop, r.viewer.content}
}

func (r *planViewerRenderer) Destroy() {}
