// Package model defines the project, plan, photo, and placement records
// shared by the store and the UI.
package model

import (
	"time"

	"sitepin/pkg/geometry"
)

// Project groups plans and photos for one construction site.
type Project struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// Plan is a floor-level reference image that photos are pinned against.
// At most one plan per project is active at any time; the store
// enforces this on writes.
type Plan struct {
	ID        string    `json:"id"`
	ProjectID string    `json:"project_id"`
	Name      string    `json:"name"`
	ImageURL  string    `json:"image_url"`
	Width     int       `json:"width"`  // Pixel width of the plan image
	Height    int       `json:"height"` // Pixel height of the plan image
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

// Photo is an uploaded site image, optionally geotagged.
type Photo struct {
	ID         string      `json:"id"`
	ProjectID  string      `json:"project_id"`
	ImageURL   string      `json:"image_url"`
	Latitude   *float64    `json:"latitude,omitempty"`
	Longitude  *float64    `json:"longitude,omitempty"`
	CapturedAt *time.Time  `json:"captured_at,omitempty"`
	CreatedAt  time.Time   `json:"created_at"`
	Detections []Detection `json:"detections,omitempty"`
}

// HasLocation returns true if the photo carries a geotag.
func (p Photo) HasLocation() bool {
	return p.Latitude != nil && p.Longitude != nil
}

// Detection is a bounding box reported by the upstream photo analysis
// service. Boxes may arrive in pixel or fractional units; see
// geometry.NormalizeBox.
type Detection struct {
	Label string               `json:"label"`
	Box   geometry.BoundingBox `json:"box"`
}

// PlacementMethod records how a placement's position was produced.
type PlacementMethod string

const (
	MethodManual       PlacementMethod = "manual"
	MethodGPSSuggested PlacementMethod = "gps_suggested"
	MethodGPSExact     PlacementMethod = "gps_exact"
)

// GPSDerived returns true for placements produced from a geotag rather
// than a user gesture.
func (m PlacementMethod) GPSDerived() bool {
	return m == MethodGPSSuggested || m == MethodGPSExact
}

// Placement pins exactly one photo to a position on a plan. X and Y
// are percentages (0-100) of the plan's rendered bounds, independent
// of zoom, pan, and resolution. A photo has at most one placement;
// placing it again overwrites.
type Placement struct {
	ID        string          `json:"id"`
	PhotoID   string          `json:"photo_id"`
	PlanID    string          `json:"plan_id"`
	X         float64         `json:"x"`
	Y         float64         `json:"y"`
	Method    PlacementMethod `json:"method"`
	CreatedAt time.Time       `json:"created_at"`
}

// SamePosition compares the fields the edit session diffs on: plan and
// percent coordinates. Method and timestamps do not participate.
func (p Placement) SamePosition(other Placement) bool {
	return p.PlanID == other.PlanID && p.X == other.X && p.Y == other.Y
}
