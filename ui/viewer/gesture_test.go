package viewer

import "testing"

func TestPanOnlyFromIdle(t *testing.T) {
	i := NewInteraction()

	if !i.BeginPan() {
		t.Fatal("Pan from idle should be allowed")
	}
	if i.State() != GesturePanning {
		t.Fatalf("State = %v, want panning", i.State())
	}
	if i.BeginPan() {
		t.Fatal("Pan must not restart while panning")
	}
	i.EndPan()
	if i.State() != GestureIdle {
		t.Fatalf("State after EndPan = %v, want idle", i.State())
	}
}

func TestPinDragRequiresEditSession(t *testing.T) {
	i := NewInteraction()

	if i.BeginPinDrag("photo-1") {
		t.Fatal("Pin drag without an edit session must be refused")
	}

	i.SetEditing(true)
	if !i.BeginPinDrag("photo-1") {
		t.Fatal("Pin drag in an edit session should be allowed")
	}
	if i.PhotoID() != "photo-1" {
		t.Fatalf("PhotoID = %q, want photo-1", i.PhotoID())
	}

	id, ok := i.EndPinDrag()
	if !ok || id != "photo-1" {
		t.Fatalf("EndPinDrag = (%q, %v), want (photo-1, true)", id, ok)
	}
	if i.State() != GestureIdle {
		t.Fatalf("State after drag = %v, want idle", i.State())
	}
}

func TestPinCaptureWinsOverPan(t *testing.T) {
	i := NewInteraction()
	i.SetEditing(true)

	// Pointer-down on a pin can race the canvas pan; the pin wins
	// and the pan is cancelled.
	if !i.BeginPan() {
		t.Fatal("Setup: pan should start")
	}
	if !i.BeginPinDrag("photo-1") {
		t.Fatal("Pin drag must take over from an in-progress pan")
	}
	if i.State() != GestureDraggingPin {
		t.Fatalf("State = %v, want dragging-pin", i.State())
	}

	// The superseded pan's end must not clobber the drag.
	i.EndPan()
	if i.State() != GestureDraggingPin {
		t.Fatalf("EndPan broke an active pin drag: state = %v", i.State())
	}
}

func TestPanBlockedDuringPinDrag(t *testing.T) {
	i := NewInteraction()
	i.SetEditing(true)
	i.BeginPinDrag("photo-1")

	if i.BeginPan() {
		t.Fatal("Panning during a pin drag must be refused")
	}
}

func TestArmPlacementPreconditions(t *testing.T) {
	i := NewInteraction()

	if i.ArmPlacement("photo-1") {
		t.Fatal("Placement without an edit session must be refused")
	}

	i.SetEditing(true)
	i.SetZoom(1.25)
	if i.ArmPlacement("photo-1") {
		t.Fatal("Placement above 1x zoom must be refused")
	}

	i.SetZoom(1.0)
	i.SetClickToPlace(false)
	if i.ArmPlacement("photo-1") {
		t.Fatal("Placement with click-to-place disabled must be refused")
	}

	i.SetClickToPlace(true)
	if !i.ArmPlacement("photo-1") {
		t.Fatal("Placement at 1x zoom in an edit session should arm")
	}
	if i.State() != GesturePlacing {
		t.Fatalf("State = %v, want placing", i.State())
	}
}

func TestZoomDisarmsPlacement(t *testing.T) {
	i := NewInteraction()
	i.SetEditing(true)
	i.ArmPlacement("photo-1")

	i.SetZoom(1.25)
	if i.State() != GestureIdle {
		t.Fatalf("Zooming should disarm placement, state = %v", i.State())
	}
	if _, ok := i.ResolvePlacement(); ok {
		t.Fatal("Disarmed placement must not resolve")
	}
}

func TestResolvePlacement(t *testing.T) {
	i := NewInteraction()
	i.SetEditing(true)
	i.ArmPlacement("photo-7")

	id, ok := i.ResolvePlacement()
	if !ok || id != "photo-7" {
		t.Fatalf("ResolvePlacement = (%q, %v), want (photo-7, true)", id, ok)
	}
	if i.State() != GestureIdle {
		t.Fatalf("State after resolve = %v, want idle", i.State())
	}
}

func TestRearmingSwitchesTargetPhoto(t *testing.T) {
	i := NewInteraction()
	i.SetEditing(true)
	i.ArmPlacement("photo-1")

	if !i.ArmPlacement("photo-2") {
		t.Fatal("Selecting another unplaced photo should re-arm")
	}
	id, _ := i.ResolvePlacement()
	if id != "photo-2" {
		t.Fatalf("Resolved photo = %q, want photo-2", id)
	}
}

func TestPanBlockedWhilePlacing(t *testing.T) {
	i := NewInteraction()
	i.SetEditing(true)
	i.ArmPlacement("photo-1")

	if i.BeginPan() {
		t.Fatal("Panning while placing must be refused")
	}
}

func TestClosingEditSessionCancelsGestures(t *testing.T) {
	i := NewInteraction()
	i.SetEditing(true)
	i.BeginPinDrag("photo-1")

	i.SetEditing(false)
	if i.State() != GestureIdle {
		t.Fatalf("Closing the session should cancel the drag, state = %v", i.State())
	}
	if _, ok := i.EndPinDrag(); ok {
		t.Fatal("Cancelled drag must not produce a commit")
	}
}

func TestViewPinOnlyOutsideEditMode(t *testing.T) {
	i := NewInteraction()
	i.SetEditing(true)
	if i.ViewPin("photo-1") {
		t.Fatal("Pin detail must not open in edit mode")
	}

	i.SetEditing(false)
	if !i.ViewPin("photo-1") {
		t.Fatal("Pin detail should open outside edit mode")
	}
	if i.State() != GestureViewingPin {
		t.Fatalf("State = %v, want viewing-pin", i.State())
	}

	i.DoneViewing()
	if i.State() != GestureIdle {
		t.Fatalf("State after DoneViewing = %v, want idle", i.State())
	}
}
