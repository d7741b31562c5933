package session

import (
	"testing"

	"sitepin/internal/model"

	"github.com/google/go-cmp/cmp"
)

func committed() []model.Placement {
	return []model.Placement{
		{ID: "pl-1", PhotoID: "photo-a", PlanID: "plan-1", X: 10, Y: 20, Method: model.MethodManual},
		{ID: "pl-2", PhotoID: "photo-b", PlanID: "plan-1", X: 30, Y: 40, Method: model.MethodGPSSuggested},
		{ID: "pl-3", PhotoID: "photo-c", PlanID: "plan-1", X: 50, Y: 60, Method: model.MethodManual},
	}
}

func TestStartSnapshotsCommittedState(t *testing.T) {
	s := New()
	s.Start(committed())

	if !s.Active() {
		t.Fatal("Session should be active after Start")
	}
	if s.Dirty() {
		t.Fatal("Fresh session must not be dirty")
	}
	if diff := cmp.Diff(committed(), s.Placements()); diff != "" {
		t.Fatalf("Draft should mirror the snapshot (-want +got):\n%s", diff)
	}
}

func TestDiffReportsOnlyChangedPositions(t *testing.T) {
	s := New()
	s.Start(committed())

	s.SetPosition("photo-a", "plan-1", 15, 25, model.MethodManual)
	// Same position rewritten: not a diff.
	s.SetPosition("photo-b", "plan-1", 30, 40, model.MethodGPSSuggested)

	diff := s.Diff()
	if len(diff) != 1 {
		t.Fatalf("Expected one changed entry, got %d: %+v", len(diff), diff)
	}
	if diff[0].PhotoID != "photo-a" || diff[0].X != 15 || diff[0].Y != 25 {
		t.Fatalf("Unexpected diff entry: %+v", diff[0])
	}
	if diff[0].ID != "pl-1" {
		t.Fatalf("Existing placement must keep its identity, got %q", diff[0].ID)
	}
}

func TestFirstPlacementOfUnplacedPhotoDiffs(t *testing.T) {
	s := New()
	s.Start(committed())

	s.SetPosition("photo-new", "plan-1", 70, 80, model.MethodManual)

	diff := s.Diff()
	if len(diff) != 1 {
		t.Fatalf("Expected one changed entry, got %d", len(diff))
	}
	if diff[0].PhotoID != "photo-new" || diff[0].ID != "" {
		t.Fatalf("New placement should be draft-only with no ID yet: %+v", diff[0])
	}
}

func TestCancelLeavesCommittedDataUntouched(t *testing.T) {
	before := committed()
	s := New()
	s.Start(before)

	s.SetPosition("photo-a", "plan-1", 1, 2, model.MethodManual)
	s.SetPosition("photo-b", "plan-1", 3, 4, model.MethodManual)
	s.SetPosition("photo-c", "plan-1", 5, 6, model.MethodManual)
	if !s.Dirty() {
		t.Fatal("Session should be dirty after three mutations")
	}

	s.Cancel()

	if s.Active() {
		t.Fatal("Session should be inactive after Cancel")
	}
	if diff := cmp.Diff(committed(), before); diff != "" {
		t.Fatalf("Committed snapshot mutated by the session (-want +got):\n%s", diff)
	}
}

func TestDraftIsIsolatedFromCallerSlice(t *testing.T) {
	source := committed()
	s := New()
	s.Start(source)

	s.SetPosition("photo-a", "plan-1", 99, 99, model.MethodManual)

	if source[0].X != 10 || source[0].Y != 20 {
		t.Fatalf("Draft mutation leaked into the caller's data: %+v", source[0])
	}
}

func TestSetPositionIgnoredWhenInactive(t *testing.T) {
	s := New()
	s.SetPosition("photo-a", "plan-1", 10, 10, model.MethodManual)
	if s.Dirty() {
		t.Fatal("Inactive session must ignore mutations")
	}
}

func TestDirtyClearsAfterRevertingToBaseline(t *testing.T) {
	s := New()
	s.Start(committed())

	s.SetPosition("photo-a", "plan-1", 77, 77, model.MethodManual)
	if !s.Dirty() {
		t.Fatal("Expected dirty after move")
	}

	s.SetPosition("photo-a", "plan-1", 10, 20, model.MethodManual)
	if s.Dirty() {
		t.Fatal("Moving a pin back to its baseline position should clear the diff")
	}
}
