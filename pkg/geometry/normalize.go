package geometry

// PercentPoint is a position expressed as percentages (0-100) of a
// reference rectangle. Percent coordinates are independent of zoom,
// pan, and image resolution.
type PercentPoint struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// NewPercentPoint creates a new PercentPoint.
func NewPercentPoint(x, y float64) PercentPoint {
	return PercentPoint{X: x, Y: y}
}

// Clamp returns the point limited to the [0,100] range on both axes.
func (p PercentPoint) Clamp() PercentPoint {
	return PercentPoint{X: clamp(p.X, 0, 100), Y: clamp(p.Y, 0, 100)}
}

// ToPercent converts a pointer position to percentages of the given
// rendered rectangle, clamped to [0,100]. The rectangle is the image's
// post-layout bounds, not its natural resolution, which keeps the
// result independent of viewport state. A degenerate rect yields the
// rect's origin mapped to (0,0).
func ToPercent(p Point2D, rect Rect) PercentPoint {
	if rect.Empty() {
		return PercentPoint{}
	}
	return PercentPoint{
		X: clamp((p.X-rect.X)/rect.Width*100, 0, 100),
		Y: clamp((p.Y-rect.Y)/rect.Height*100, 0, 100),
	}
}

// ToPixels converts a percent position back to a pixel position within
// the given rectangle. Inverse of ToPercent for in-bounds points.
func ToPixels(pp PercentPoint, rect Rect) Point2D {
	return Point2D{
		X: rect.X + pp.X/100*rect.Width,
		Y: rect.Y + pp.Y/100*rect.Height,
	}
}

// BoundingBox is an axis-aligned box, either in pixels or in
// fractional [0,1] units of some natural image size.
type BoundingBox struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// BoxUnit classifies the units a BoundingBox is expressed in.
type BoxUnit int

const (
	// BoxUnitFraction means all components are already in [0,1].
	BoxUnitFraction BoxUnit = iota
	// BoxUnitPixel means at least one component exceeds 1.
	BoxUnitPixel
)

// ClassifyBoxUnit detects a box's units by magnitude: any component
// greater than 1 means pixels, otherwise fractional. Pixel boxes whose
// every component is at most 1px are indistinguishable from fractional
// boxes and will be classified as fractional; callers must treat this
// as a known limitation of the heuristic, not correct for it.
func ClassifyBoxUnit(b BoundingBox) BoxUnit {
	if b.X > 1 || b.Y > 1 || b.Width > 1 || b.Height > 1 {
		return BoxUnitPixel
	}
	return BoxUnitFraction
}

// NormalizeBox converts a box to fractional [0,1] units of the given
// natural image size. Fractional boxes are returned unchanged. Pixel
// boxes are divided by the natural size; if the natural size is not
// yet known the box cannot be scaled and ok is false - the caller must
// hide it rather than render it mis-scaled.
func NormalizeBox(b BoundingBox, natural Size) (BoundingBox, bool) {
	if ClassifyBoxUnit(b) == BoxUnitFraction {
		return b, true
	}
	if !natural.Known() {
		return BoundingBox{}, false
	}
	return BoundingBox{
		X:      b.X / natural.Width,
		Y:      b.Y / natural.Height,
		Width:  b.Width / natural.Width,
		Height: b.Height / natural.Height,
	}, true
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
