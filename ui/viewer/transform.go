package viewer

import (
	"sitepin/pkg/geometry"
)

const (
	// MinZoom is 1x: the plan fitted to the viewport.
	MinZoom = 1.0
	// MaxZoom bounds the stepped zoom.
	MaxZoom = 4.0
	zoomStep = 1.25
)

// Viewport owns the presentational transform of the plan image: a
// stepped zoom factor and a pan offset. The transform never enters the
// stored percent coordinates - it only decides where the plan is drawn.
//
// Panning is a two-tier gesture: BeginPan/DragBy mutate a live offset
// that the viewer applies straight to the retained content node on
// every pointer-move, and CommitPan folds the live offset into the
// committed pan once at gesture end.
type Viewport struct {
	zoom    float64
	pan     geometry.Point2D // committed offset
	livePan geometry.Point2D // transient offset during a pan gesture
	panning bool
}

// NewViewport returns a viewport at 1x zoom with no pan.
func NewViewport() *Viewport {
	return &Viewport{zoom: MinZoom}
}

// Zoom returns the current zoom factor.
func (v *Viewport) Zoom() float64 {
	return v.zoom
}

// ZoomIn steps the zoom up. Returns true if the zoom changed.
func (v *Viewport) ZoomIn() bool {
	return v.setZoom(v.zoom * zoomStep)
}

// ZoomOut steps the zoom down. Returns true if the zoom changed.
func (v *Viewport) ZoomOut() bool {
	return v.setZoom(v.zoom / zoomStep)
}

func (v *Viewport) setZoom(zoom float64) bool {
	if zoom < MinZoom {
		zoom = MinZoom
	}
	if zoom > MaxZoom {
		zoom = MaxZoom
	}
	if zoom == v.zoom {
		return false
	}
	v.zoom = zoom
	return true
}

// Reset returns to 1x zoom and zero pan.
func (v *Viewport) Reset() {
	v.zoom = MinZoom
	v.pan = geometry.Point2D{}
	v.livePan = geometry.Point2D{}
	v.panning = false
}

// Pan returns the offset to draw at: the live offset during a pan
// gesture, the committed offset otherwise.
func (v *Viewport) Pan() geometry.Point2D {
	if v.panning {
		return v.livePan
	}
	return v.pan
}

// BeginPan starts a pan gesture from the committed offset.
func (v *Viewport) BeginPan() {
	v.livePan = v.pan
	v.panning = true
}

// DragBy accumulates a pointer-move delta into the live offset.
func (v *Viewport) DragBy(dx, dy float64) {
	if !v.panning {
		return
	}
	v.livePan.X += dx
	v.livePan.Y += dy
}

// CommitPan ends the gesture, making the live offset the committed pan.
func (v *Viewport) CommitPan() {
	if !v.panning {
		return
	}
	v.pan = v.livePan
	v.panning = false
}
