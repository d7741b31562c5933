// Package viewer provides the floor-plan viewer widget: pan/zoom
// viewport, pin markers, and the gesture state machine that keeps
// panning, pin dragging, and click-to-place mutually exclusive.
package viewer

// GestureState identifies what the pointer is currently doing.
type GestureState int

const (
	// GestureIdle means no gesture is in progress.
	GestureIdle GestureState = iota
	// GesturePanning means the canvas is being click-dragged.
	GesturePanning
	// GestureDraggingPin means an existing pin is being dragged.
	GestureDraggingPin
	// GesturePlacing means click-to-place is armed for an unplaced photo.
	GesturePlacing
	// GestureViewingPin means a placed pin's detail is open.
	GestureViewingPin
)

func (s GestureState) String() string {
	switch s {
	case GestureIdle:
		return "idle"
	case GesturePanning:
		return "panning"
	case GestureDraggingPin:
		return "dragging-pin"
	case GesturePlacing:
		return "placing"
	case GestureViewingPin:
		return "viewing-pin"
	default:
		return "unknown"
	}
}

// Interaction arbitrates pointer gestures over the plan. All methods
// that begin a gesture return whether the transition is allowed;
// disallowed gestures are silent no-ops, not errors. Pin capture wins
// over canvas panning, and click-to-place is only available at 1x zoom
// while an edit session is open.
type Interaction struct {
	state        GestureState
	photoID      string // pin being dragged, photo armed, or pin being viewed
	editing      bool
	clickToPlace bool
	zoom         float64
}

// NewInteraction returns an idle interaction at 1x zoom with
// click-to-place enabled.
func NewInteraction() *Interaction {
	return &Interaction{state: GestureIdle, clickToPlace: true, zoom: 1.0}
}

// State returns the current gesture state.
func (i *Interaction) State() GestureState {
	return i.state
}

// PhotoID returns the photo the current gesture concerns, if any.
func (i *Interaction) PhotoID() string {
	return i.photoID
}

// Editing reports whether an edit session is open.
func (i *Interaction) Editing() bool {
	return i.editing
}

// SetEditing opens or closes edit mode. Closing cancels any pin drag
// or armed placement in flight.
func (i *Interaction) SetEditing(editing bool) {
	i.editing = editing
	if !editing && (i.state == GestureDraggingPin || i.state == GesturePlacing) {
		i.reset()
	}
}

// SetClickToPlace toggles the click-to-place feature for the current
// edit session. Disabling disarms a pending placement.
func (i *Interaction) SetClickToPlace(enabled bool) {
	i.clickToPlace = enabled
	if !enabled && i.state == GesturePlacing {
		i.reset()
	}
}

// SetZoom records the viewport zoom. Placement-by-click is disabled
// above 1x zoom to avoid ambiguous targeting, so zooming disarms a
// pending placement.
func (i *Interaction) SetZoom(zoom float64) {
	i.zoom = zoom
	if zoom != 1.0 && i.state == GesturePlacing {
		i.reset()
	}
}

// BeginPan starts a canvas pan. Allowed only from idle: a pin drag in
// progress or an armed placement blocks panning.
func (i *Interaction) BeginPan() bool {
	if i.state != GestureIdle {
		return false
	}
	i.state = GesturePanning
	return true
}

// EndPan finishes a pan gesture.
func (i *Interaction) EndPan() {
	if i.state == GesturePanning {
		i.reset()
	}
}

// BeginPinDrag starts dragging an existing pin. Requires an open edit
// session. Pin capture takes precedence over panning: a pan that
// started on the same pointer-down is cancelled.
func (i *Interaction) BeginPinDrag(photoID string) bool {
	if !i.editing {
		return false
	}
	if i.state != GestureIdle && i.state != GesturePanning {
		return false
	}
	i.state = GestureDraggingPin
	i.photoID = photoID
	return true
}

// EndPinDrag finishes a pin drag and returns the dragged photo ID.
func (i *Interaction) EndPinDrag() (string, bool) {
	if i.state != GestureDraggingPin {
		return "", false
	}
	photoID := i.photoID
	i.reset()
	return photoID, true
}

// ArmPlacement arms click-to-place for an unplaced photo. Requires an
// open edit session with click-to-place enabled, 1x zoom, and no other
// gesture in progress.
func (i *Interaction) ArmPlacement(photoID string) bool {
	if !i.editing || !i.clickToPlace || i.zoom != 1.0 {
		return false
	}
	if i.state != GestureIdle && i.state != GesturePlacing {
		return false
	}
	i.state = GesturePlacing
	i.photoID = photoID
	return true
}

// ResolvePlacement consumes an armed placement on a click inside the
// plan, returning the photo to place.
func (i *Interaction) ResolvePlacement() (string, bool) {
	if i.state != GesturePlacing {
		return "", false
	}
	photoID := i.photoID
	i.reset()
	return photoID, true
}

// Disarm cancels an armed placement without placing.
func (i *Interaction) Disarm() {
	if i.state == GesturePlacing {
		i.reset()
	}
}

// ViewPin opens a placed pin's detail. Only available outside edit
// mode (in edit mode a pointer-down on a pin starts a drag instead).
func (i *Interaction) ViewPin(photoID string) bool {
	if i.editing || i.state != GestureIdle {
		return false
	}
	i.state = GestureViewingPin
	i.photoID = photoID
	return true
}

// DoneViewing closes the pin detail.
func (i *Interaction) DoneViewing() {
	if i.state == GestureViewingPin {
		i.reset()
	}
}

func (i *Interaction) reset() {
	i.state = GestureIdle
	i.photoID = ""
}
