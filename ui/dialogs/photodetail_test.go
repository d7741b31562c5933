package dialogs

import (
	"image"
	"testing"

	"sitepin/internal/model"
	"sitepin/pkg/geometry"

	"github.com/google/go-cmp/cmp"
)

func TestDetectionOutlineScalesFractionalBox(t *testing.T) {
	det := model.Detection{
		Label: "outlet",
		Box:   geometry.BoundingBox{X: 0.25, Y: 0.5, Width: 0.1, Height: 0.2},
	}
	natural := geometry.NewSize(4000, 3000)
	shown := image.Rect(0, 0, 400, 300)

	rect, ok := detectionOutlineRect(det, natural, shown)
	if !ok {
		t.Fatal("Fractional box should always be displayable")
	}
	want := geometry.NewRect(100, 150, 40, 60)
	if diff := cmp.Diff(want, rect); diff != "" {
		t.Errorf("Outline rect mismatch (-want +got):\n%s", diff)
	}
}

func TestDetectionOutlineScalesPixelBox(t *testing.T) {
	det := model.Detection{
		Label: "pipe",
		Box:   geometry.BoundingBox{X: 1000, Y: 750, Width: 400, Height: 300},
	}
	natural := geometry.NewSize(4000, 3000)
	shown := image.Rect(0, 0, 400, 300)

	rect, ok := detectionOutlineRect(det, natural, shown)
	if !ok {
		t.Fatal("Pixel box with known natural size should be displayable")
	}
	want := geometry.NewRect(100, 75, 40, 30)
	if diff := cmp.Diff(want, rect); diff != "" {
		t.Errorf("Outline rect mismatch (-want +got):\n%s", diff)
	}
}

func TestDetectionOutlineHiddenWithoutNaturalSize(t *testing.T) {
	det := model.Detection{
		Label: "pipe",
		Box:   geometry.BoundingBox{X: 1000, Y: 750, Width: 400, Height: 300},
	}
	shown := image.Rect(0, 0, 400, 300)

	// A pixel box can't be scaled without the source resolution; it
	// must be hidden, never drawn mis-scaled.
	if _, ok := detectionOutlineRect(det, geometry.Size{}, shown); ok {
		t.Fatal("Pixel box without natural size must be hidden")
	}
}
