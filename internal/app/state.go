// Package app provides application state, events, and lifecycle helpers.
package app

import (
	"sync"

	"sitepin/internal/model"
)

// State holds the committed project data the UI renders from. It is
// the single writer for the committed collections: the viewer and the
// side list only read, and edit sessions stage their changes in a
// separate draft (internal/session) until saved.
type State struct {
	mu sync.RWMutex

	// Current project
	Project model.Project

	// Committed collections, loaded from the store
	Plans      []model.Plan
	Photos     []model.Photo
	Placements []model.Placement

	// Selection shared between the side list and the viewer
	SelectedPhotoID string

	// Event listeners
	listeners map[EventType][]EventListener
}

// EventType identifies different application events.
type EventType int

const (
	EventProjectLoaded EventType = iota
	EventPlansChanged
	EventPhotosChanged
	EventPlacementsChanged
	EventActivePlanChanged
	EventSelectionChanged
	EventEditModeChanged
)

// EventListener is called when an event occurs.
type EventListener func(data interface{})

// NewState creates a new application state.
func NewState() *State {
	return &State{
		listeners: make(map[EventType][]EventListener),
	}
}

// On registers an event listener for the specified event type.
func (s *State) On(event EventType, listener EventListener) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners[event] = append(s.listeners[event], listener)
}

// Emit triggers all listeners for the specified event type.
func (s *State) Emit(event EventType, data interface{}) {
	s.mu.RLock()
	listeners := s.listeners[event]
	s.mu.RUnlock()

	for _, listener := range listeners {
		listener(data)
	}
}

// SetProject stores the loaded project and emits EventProjectLoaded.
func (s *State) SetProject(p model.Project) {
	s.mu.Lock()
	s.Project = p
	s.mu.Unlock()
	s.Emit(EventProjectLoaded, p)
}

// SetPlans replaces the committed plan list.
func (s *State) SetPlans(plans []model.Plan) {
	s.mu.Lock()
	s.Plans = plans
	s.mu.Unlock()
	s.Emit(EventPlansChanged, plans)
}

// SetPhotos replaces the committed photo list.
func (s *State) SetPhotos(photos []model.Photo) {
	s.mu.Lock()
	s.Photos = photos
	s.mu.Unlock()
	s.Emit(EventPhotosChanged, photos)
}

// SetPlacements replaces the committed placement list.
func (s *State) SetPlacements(placements []model.Placement) {
	s.mu.Lock()
	s.Placements = placements
	s.mu.Unlock()
	s.Emit(EventPlacementsChanged, placements)
}

// ApplyPlacement merges one canonical placement record returned by the
// store into the committed list.
func (s *State) ApplyPlacement(p model.Placement) {
	s.mu.Lock()
	replaced := false
	for i := range s.Placements {
		if s.Placements[i].PhotoID == p.PhotoID {
			s.Placements[i] = p
			replaced = true
			break
		}
	}
	if !replaced {
		s.Placements = append(s.Placements, p)
	}
	s.mu.Unlock()
	s.Emit(EventPlacementsChanged, nil)
}

// RemovePlacement drops a photo's placement from the committed list.
func (s *State) RemovePlacement(photoID string) {
	s.mu.Lock()
	for i := range s.Placements {
		if s.Placements[i].PhotoID == photoID {
			s.Placements = append(s.Placements[:i], s.Placements[i+1:]...)
			break
		}
	}
	s.mu.Unlock()
	s.Emit(EventPlacementsChanged, nil)
}

// PlacementFor returns the committed placement for a photo.
func (s *State) PlacementFor(photoID string) (model.Placement, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.Placements {
		if p.PhotoID == photoID {
			return p, true
		}
	}
	return model.Placement{}, false
}

// SnapshotPlacements returns a copy of the committed placements,
// suitable for seeding an edit session.
func (s *State) SnapshotPlacements() []model.Placement {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Placement, len(s.Placements))
	copy(out, s.Placements)
	return out
}

// ActivePlan returns the project's active plan, if any.
func (s *State) ActivePlan() (model.Plan, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.Plans {
		if p.IsActive {
			return p, true
		}
	}
	return model.Plan{}, false
}

// PlanByID looks up a plan.
func (s *State) PlanByID(id string) (model.Plan, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.Plans {
		if p.ID == id {
			return p, true
		}
	}
	return model.Plan{}, false
}

// PhotoByID looks up a photo.
func (s *State) PhotoByID(id string) (model.Photo, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.Photos {
		if p.ID == id {
			return p, true
		}
	}
	return model.Photo{}, false
}

// SetSelectedPhoto updates the shared selection and emits
// EventSelectionChanged with the photo ID ("" clears the selection).
func (s *State) SetSelectedPhoto(photoID string) {
	s.mu.Lock()
	changed := s.SelectedPhotoID != photoID
	s.SelectedPhotoID = photoID
	s.mu.Unlock()
	if changed {
		s.Emit(EventSelectionChanged, photoID)
	}
}
