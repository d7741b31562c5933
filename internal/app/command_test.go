package app

import (
	"testing"

	"sitepin/internal/model"
)

func switchFixture() *State {
	s := NewState()
	s.Plans = []model.Plan{
		{ID: "plan-a", ProjectID: "proj", IsActive: true},
		{ID: "plan-b", ProjectID: "proj"},
	}
	s.Placements = []model.Placement{
		{ID: "pl-1", PhotoID: "photo-1", PlanID: "plan-a", X: 10, Y: 10},
		{ID: "pl-2", PhotoID: "photo-2", PlanID: "plan-a", X: 20, Y: 20},
	}
	return s
}

func activeID(s *State) string {
	p, ok := s.ActivePlan()
	if !ok {
		return ""
	}
	return p.ID
}

func TestPlanSwitchApply(t *testing.T) {
	s := switchFixture()
	cmd := NewPlanSwitch(s, "plan-b")

	cmd.Apply()

	if activeID(s) != "plan-b" {
		t.Fatalf("Active plan after Apply = %q, want plan-b", activeID(s))
	}
	if cmd.PrevPlanID() != "plan-a" {
		t.Fatalf("PrevPlanID = %q, want plan-a", cmd.PrevPlanID())
	}
	// Placements are untouched until the store call succeeds.
	if len(s.Placements) != 2 {
		t.Fatalf("Apply must not touch placements, got %d", len(s.Placements))
	}
}

func TestPlanSwitchRevert(t *testing.T) {
	s := switchFixture()
	cmd := NewPlanSwitch(s, "plan-b")

	cmd.Apply()
	cmd.Revert()

	if activeID(s) != "plan-a" {
		t.Fatalf("Active plan after Revert = %q, want plan-a", activeID(s))
	}
	if len(s.Placements) != 2 {
		t.Fatalf("Revert must leave placements alone, got %d", len(s.Placements))
	}
}

func TestPlanSwitchRevertWithoutApplyIsNoop(t *testing.T) {
	s := switchFixture()
	cmd := NewPlanSwitch(s, "plan-b")

	cmd.Revert()

	if activeID(s) != "plan-a" {
		t.Fatalf("Revert before Apply changed state: active = %q", activeID(s))
	}
}

func TestPlanSwitchInvalidatePrevPlacements(t *testing.T) {
	s := switchFixture()
	s.Placements = append(s.Placements, model.Placement{
		ID: "pl-3", PhotoID: "photo-3", PlanID: "plan-b", X: 5, Y: 5,
	})
	cmd := NewPlanSwitch(s, "plan-b")

	cmd.Apply()
	cmd.InvalidatePrevPlacements()

	if len(s.Placements) != 1 || s.Placements[0].PlanID != "plan-b" {
		t.Fatalf("Expected only plan-b placements to survive, got %+v", s.Placements)
	}
}

func TestPlanSwitchToSamePlanKeepsPlacements(t *testing.T) {
	s := switchFixture()
	cmd := NewPlanSwitch(s, "plan-a")

	cmd.Apply()
	cmd.InvalidatePrevPlacements()

	if len(s.Placements) != 2 {
		t.Fatalf("Re-activating the active plan must not invalidate, got %d placements", len(s.Placements))
	}
}
