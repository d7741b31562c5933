// Package session implements the staged "move pins" editing mode: a
// draft copy of the committed placements that is mutated locally and
// either diffed into persistence calls or discarded.
package session

import (
	"sort"

	"sitepin/internal/model"
)

// Session is a staging area for placement edits. While a session is
// active all placement reads for the viewer come from the draft, so
// upstream refreshes cannot clobber in-progress edits. The draft is a
// session-scoped copy; nothing outside the session observes it until
// the caller persists the diff.
type Session struct {
	active   bool
	baseline map[string]model.Placement // by photo ID, snapshot at Start
	draft    map[string]model.Placement // by photo ID
}

// New returns an inactive session.
func New() *Session {
	return &Session{}
}

// Active reports whether an edit session is open.
func (s *Session) Active() bool {
	return s.active
}

// Start snapshots the committed placements and opens the session.
// Starting an already-active session re-snapshots, dropping any draft.
func (s *Session) Start(placements []model.Placement) {
	s.baseline = make(map[string]model.Placement, len(placements))
	s.draft = make(map[string]model.Placement, len(placements))
	for _, p := range placements {
		s.baseline[p.PhotoID] = p
		s.draft[p.PhotoID] = p
	}
	s.active = true
}

// SetPosition records a draft position for a photo. An existing draft
// entry keeps its identity; a photo placed for the first time gets a
// draft-only entry the repository will assign an ID to on save.
func (s *Session) SetPosition(photoID, planID string, x, y float64, method model.PlacementMethod) {
	if !s.active {
		return
	}
	p, ok := s.draft[photoID]
	if !ok {
		p = model.Placement{PhotoID: photoID}
	}
	p.PlanID = planID
	p.X = x
	p.Y = y
	p.Method = method
	s.draft[photoID] = p
}

// Placement returns the draft placement for a photo.
func (s *Session) Placement(photoID string) (model.Placement, bool) {
	p, ok := s.draft[photoID]
	return p, ok
}

// Placements returns the draft placements, ordered by photo ID for
// stable rendering.
func (s *Session) Placements() []model.Placement {
	out := make([]model.Placement, 0, len(s.draft))
	for _, p := range s.draft {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].PhotoID < out[j].PhotoID })
	return out
}

// Dirty reports whether the draft differs from the baseline.
func (s *Session) Dirty() bool {
	return len(s.Diff()) > 0
}

// Diff returns the draft entries whose position (plan, x, y) changed
// against the baseline snapshot. Each returned entry is persisted with
// its own upsert call; there is no transaction across them.
func (s *Session) Diff() []model.Placement {
	var changed []model.Placement
	for photoID, p := range s.draft {
		base, existed := s.baseline[photoID]
		if !existed || !p.SamePosition(base) {
			changed = append(changed, p)
		}
	}
	sort.Slice(changed, func(i, j int) bool { return changed[i].PhotoID < changed[j].PhotoID })
	return changed
}

// Cancel discards the draft and closes the session. Confirmation of
// discarding a dirty draft is the caller's job.
func (s *Session) Cancel() {
	s.active = false
	s.baseline = nil
	s.draft = nil
}

// Finish closes the session after its diff has been persisted.
func (s *Session) Finish() {
	s.Cancel()
}
