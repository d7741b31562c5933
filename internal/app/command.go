package app

// PlanSwitch is the optimistic active-plan change. Apply flips the
// local flags before the store call so the UI tracks immediately;
// Revert undoes the flip if the call fails. If the call succeeds,
// InvalidatePrevPlacements mirrors the store's cascade delete locally.
type PlanSwitch struct {
	state   *State
	planID  string
	prevID  string
	applied bool
}

// NewPlanSwitch prepares a switch to the given plan.
func NewPlanSwitch(state *State, planID string) *PlanSwitch {
	return &PlanSwitch{state: state, planID: planID}
}

// PrevPlanID returns the plan that was active before Apply.
func (c *PlanSwitch) PrevPlanID() string {
	return c.prevID
}

// Apply flips the active flags in local state and records the previous
// active plan. Applying twice is a no-op.
func (c *PlanSwitch) Apply() {
	if c.applied {
		return
	}
	c.state.mu.Lock()
	for i := range c.state.Plans {
		if c.state.Plans[i].IsActive {
			c.prevID = c.state.Plans[i].ID
		}
		c.state.Plans[i].IsActive = c.state.Plans[i].ID == c.planID
	}
	c.applied = true
	c.state.mu.Unlock()
	c.state.Emit(EventActivePlanChanged, c.planID)
}

// Revert restores the previous active plan. Only valid after Apply.
func (c *PlanSwitch) Revert() {
	if !c.applied {
		return
	}
	c.state.mu.Lock()
	for i := range c.state.Plans {
		c.state.Plans[i].IsActive = c.state.Plans[i].ID == c.prevID
	}
	c.applied = false
	c.state.mu.Unlock()
	c.state.Emit(EventActivePlanChanged, c.prevID)
}

// InvalidatePrevPlacements removes placements referencing the
// previously active plan from local state, mirroring the store's
// cascade delete after a successful switch.
func (c *PlanSwitch) InvalidatePrevPlacements() {
	if c.prevID == "" || c.prevID == c.planID {
		return
	}
	c.state.mu.Lock()
	kept := c.state.Placements[:0]
	for _, p := range c.state.Placements {
		if p.PlanID != c.prevID {
			kept = append(kept, p)
		}
	}
	c.state.Placements = kept
	c.state.mu.Unlock()
	c.state.Emit(EventPlacementsChanged, nil)
}
