package viewer

import (
	"image/color"

	"sitepin/internal/model"

	"fyne.io/fyne/v2"
	fynecanvas "fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"
)

// PinDiameter is the rendered size of a pin marker in screen pixels.
// Markers keep their size regardless of zoom.
const PinDiameter float32 = 16

// Placement provenance is color-coded on the marker.
var (
	manualPinColor       = color.NRGBA{R: 0x1E, G: 0x88, B: 0xE5, A: 0xFF} // blue
	gpsSuggestedPinColor = color.NRGBA{R: 0xFB, G: 0x8C, B: 0x00, A: 0xFF} // orange
	gpsExactPinColor     = color.NRGBA{R: 0x43, G: 0xA0, B: 0x47, A: 0xFF} // green

	pinStrokeColor         = color.NRGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
	pinSelectedStrokeColor = color.NRGBA{R: 0xFF, G: 0xD5, B: 0x00, A: 0xFF}
)

// MethodColor returns the marker color for a placement method.
func MethodColor(method model.PlacementMethod) color.Color {
	switch method {
	case model.MethodGPSSuggested:
		return gpsSuggestedPinColor
	case model.MethodGPSExact:
		return gpsExactPinColor
	default:
		return manualPinColor
	}
}

// pinOwner receives the pointer events a marker captures. The viewer
// implements it and routes them through the gesture state machine.
type pinOwner interface {
	pinDragged(p *PinMarker, ev *fyne.DragEvent)
	pinDragEnded(p *PinMarker)
	pinTapped(p *PinMarker)
}

// PinMarker renders one placement on the plan and captures drag and
// tap gestures for it. Its committed position is percent coordinates;
// during a drag only the retained visual node moves.
type PinMarker struct {
	widget.BaseWidget

	photoID  string
	method   model.PlacementMethod
	x, y     float64 // committed percent position
	selected bool

	circle *fynecanvas.Circle
	owner  pinOwner
}

var _ fyne.Draggable = (*PinMarker)(nil)
var _ fyne.Tappable = (*PinMarker)(nil)

func newPinMarker(owner pinOwner, placement model.Placement) *PinMarker {
	p := &PinMarker{
		photoID: placement.PhotoID,
		method:  placement.Method,
		x:       placement.X,
		y:       placement.Y,
		owner:   owner,
	}
	p.circle = &fynecanvas.Circle{
		FillColor:   MethodColor(placement.Method),
		StrokeColor: pinStrokeColor,
		StrokeWidth: 1,
	}
	p.ExtendBaseWidget(p)
	return p
}

// PhotoID returns the photo this marker pins.
func (p *PinMarker) PhotoID() string {
	return p.photoID
}

// Percent returns the committed percent position.
func (p *PinMarker) Percent() (x, y float64) {
	return p.x, p.y
}

func (p *PinMarker) setPercent(x, y float64) {
	p.x = x
	p.y = y
}

// SetMethod updates the provenance color.
func (p *PinMarker) SetMethod(method model.PlacementMethod) {
	p.method = method
	p.circle.FillColor = MethodColor(method)
	p.Refresh()
}

// SetSelected toggles the selection highlight.
func (p *PinMarker) SetSelected(selected bool) {
	if p.selected == selected {
		return
	}
	p.selected = selected
	if selected {
		p.circle.StrokeColor = pinSelectedStrokeColor
		p.circle.StrokeWidth = 3
	} else {
		p.circle.StrokeColor = pinStrokeColor
		p.circle.StrokeWidth = 1
	}
	p.Refresh()
}

// Dragged forwards the drag to the viewer; pin capture wins over
// canvas panning there.
func (p *PinMarker) Dragged(ev *fyne.DragEvent) {
	p.owner.pinDragged(p, ev)
}

// DragEnd commits the drag.
func (p *PinMarker) DragEnd() {
	p.owner.pinDragEnded(p)
}

// Tapped opens the pin detail (outside edit mode).
func (p *PinMarker) Tapped(_ *fyne.PointEvent) {
	p.owner.pinTapped(p)
}

// CreateRenderer implements fyne.Widget.
func (p *PinMarker) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(p.circle)
}

// MinSize keeps the marker hit target at its rendered size.
func (p *PinMarker) MinSize() fyne.Size {
	return fyne.NewSize(PinDiameter, PinDiameter)
}
