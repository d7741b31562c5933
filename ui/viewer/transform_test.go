package viewer

import (
	"testing"

	"sitepin/pkg/geometry"
)

func TestZoomClampsToRange(t *testing.T) {
	v := NewViewport()

	if v.ZoomOut() {
		t.Fatal("Zooming out below 1x should be a no-op")
	}
	if v.Zoom() != MinZoom {
		t.Fatalf("Zoom = %v, want %v", v.Zoom(), MinZoom)
	}

	for i := 0; i < 50; i++ {
		v.ZoomIn()
	}
	if v.Zoom() != MaxZoom {
		t.Fatalf("Zoom = %v, want clamped to %v", v.Zoom(), MaxZoom)
	}
	if v.ZoomIn() {
		t.Fatal("Zooming in at the cap should be a no-op")
	}
}

func TestZoomSteps(t *testing.T) {
	v := NewViewport()
	if !v.ZoomIn() {
		t.Fatal("First zoom-in should change the zoom")
	}
	if v.Zoom() != 1.25 {
		t.Fatalf("Zoom after one step = %v, want 1.25", v.Zoom())
	}
	if !v.ZoomOut() {
		t.Fatal("Zoom-out from 1.25 should change the zoom")
	}
	if v.Zoom() != MinZoom {
		t.Fatalf("Zoom = %v, want %v", v.Zoom(), MinZoom)
	}
}

func TestPanGestureTwoTier(t *testing.T) {
	v := NewViewport()

	v.BeginPan()
	v.DragBy(10, 5)
	v.DragBy(-3, 2)

	// Live offset moves with the pointer...
	if got := v.Pan(); got != geometry.NewPoint2D(7, 7) {
		t.Fatalf("Live pan = %+v, want (7, 7)", got)
	}

	v.CommitPan()
	if got := v.Pan(); got != geometry.NewPoint2D(7, 7) {
		t.Fatalf("Committed pan = %+v, want (7, 7)", got)
	}

	// ...and a second gesture builds on the committed offset.
	v.BeginPan()
	v.DragBy(3, 3)
	v.CommitPan()
	if got := v.Pan(); got != geometry.NewPoint2D(10, 10) {
		t.Fatalf("Pan after second gesture = %+v, want (10, 10)", got)
	}
}

func TestDragIgnoredOutsideGesture(t *testing.T) {
	v := NewViewport()
	v.DragBy(100, 100)
	if got := v.Pan(); got != (geometry.Point2D{}) {
		t.Fatalf("DragBy outside a gesture moved the pan: %+v", got)
	}
}

func TestReset(t *testing.T) {
	v := NewViewport()
	v.ZoomIn()
	v.BeginPan()
	v.DragBy(40, 40)
	v.CommitPan()

	v.Reset()

	if v.Zoom() != MinZoom || v.Pan() != (geometry.Point2D{}) {
		t.Fatalf("Reset left zoom=%v pan=%+v", v.Zoom(), v.Pan())
	}
}

func TestTransformIndependentOfStoredCoordinates(t *testing.T) {
	// Zoom and pan change where the plan is drawn, which changes the
	// rendered rect - but a pointer over the same plan feature still
	// normalizes to the same percentages.
	base := geometry.NewRect(0, 0, 1000, 800)
	feature := geometry.NewPoint2D(250, 200) // 25%, 25%

	want := geometry.ToPercent(feature, base)

	// Zoomed 2x and panned by (30, -10): the rect and the pointer
	// position move together.
	zoomed := geometry.NewRect(30, -10, 2000, 1600)
	moved := geometry.NewPoint2D(30+250*2, -10+200*2)

	got := geometry.ToPercent(moved, zoomed)
	if got != want {
		t.Fatalf("Percent under transform = %+v, want %+v", got, want)
	}
}
