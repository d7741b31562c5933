// Package store provides the SQLite-backed persistence layer for
// projects, plans, photos, and placements.
package store

import (
	"context"
	"errors"
	"fmt"

	"sitepin/internal/model"
)

var (
	// ErrNotFound is returned when a record does not exist.
	ErrNotFound = errors.New("not found")

	// ErrLastPlan is returned when deleting a project's only plan.
	ErrLastPlan = errors.New("cannot delete the only plan of a project")

	// ErrPlanActive is returned when deleting the active plan; another
	// plan must be made active first.
	ErrPlanActive = errors.New("cannot delete the active plan")

	// ErrBadPosition is returned for placement coordinates outside
	// [0,100] or not finite. Callers clamp before persisting; the
	// store refuses rather than repairs.
	ErrBadPosition = errors.New("placement position outside [0,100]")
)

// CascadeError reports that an active-plan switch committed but the
// cascade delete of the previous plan's placements failed. The switch
// stands; callers surface the inconsistency instead of rolling back.
type CascadeError struct {
	PrevPlanID string
	Err        error
}

func (e *CascadeError) Error() string {
	return fmt.Sprintf("active plan switched, but clearing placements of plan %s failed: %v", e.PrevPlanID, e.Err)
}

func (e *CascadeError) Unwrap() error {
	return e.Err
}

// Store is the persistence contract the UI depends on. Every mutation
// is an independent call; there is no cross-call transaction.
type Store interface {
	CreateProject(ctx context.Context, name string) (model.Project, error)
	ListProjects(ctx context.Context) ([]model.Project, error)

	// CreatePlan stores a new plan. The first plan of a project is
	// made active automatically.
	CreatePlan(ctx context.Context, plan model.Plan) (model.Plan, error)
	ListPlans(ctx context.Context, projectID string) ([]model.Plan, error)

	// DeletePlan removes a plan and its placements. It refuses the
	// project's only plan (ErrLastPlan) and the active plan
	// (ErrPlanActive).
	DeletePlan(ctx context.Context, planID string) error

	// SetActivePlan makes planID the project's active plan and then
	// deletes every placement referencing the previously active plan.
	// If the cascade delete fails after the switch has committed, the
	// returned error is a *CascadeError and the switch stands.
	SetActivePlan(ctx context.Context, projectID, planID string) error

	CreatePhoto(ctx context.Context, photo model.Photo) (model.Photo, error)
	ListPhotos(ctx context.Context, projectID string) ([]model.Photo, error)

	// DeletePhotos removes photos and cascades their placements.
	DeletePhotos(ctx context.Context, photoIDs []string) error

	// UpsertPlacement creates or replaces the placement for a photo
	// and returns the canonical record. A photo never has more than
	// one placement.
	UpsertPlacement(ctx context.Context, photoID, planID string, x, y float64, method model.PlacementMethod) (model.Placement, error)

	// DeletePlacement unpins a photo. Deleting a photo with no
	// placement is not an error.
	DeletePlacement(ctx context.Context, photoID string) error

	// ListPlacements returns all placements on any of the project's
	// plans.
	ListPlacements(ctx context.Context, projectID string) ([]model.Placement, error)

	Close() error
}
