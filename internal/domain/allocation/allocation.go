// Package allocation aggregates an employee's allocations into a total
// workload percentage and a risk tier.
package allocation

import "github.com/okian/teamboard/internal/domain/model"

// Risk tier thresholds on the total allocation percentage.
const (
	MediumThreshold   = 60
	HighThreshold     = 85
	CriticalThreshold = 100
)

// Total sums the allocation percentages. Every allocation counts regardless
// of its date window, and the result is not capped at 100.
func Total(allocs []model.Allocation) int {
	total := 0
	for _, a := range allocs {
		total += a.Percent
	}
	return total
}

// Tier classifies a total allocation.
func Tier(total int) model.RiskTier {
	switch {
	case total >= CriticalThreshold:
		return model.RiskCritical
	case total >= HighThreshold:
		return model.RiskHigh
	case total >= MediumThreshold:
		return model.RiskMedium
	default:
		return model.RiskLow
	}
}

// Apply recomputes the derived TotalAllocation and Risk fields of e. It must
// run after every change to e.Allocations.
func Apply(e *model.Employee) {
	e.TotalAllocation = Total(e.Allocations)
	e.Risk = Tier(e.TotalAllocation)
}

// Add appends an allocation and recomputes the derived fields.
func Add(e *model.Employee, a model.Allocation) {
	a.EmployeeID = e.ID
	e.Allocations = append(e.Allocations, a)
	Apply(e)
}

// Remove drops every allocation for which match returns true and recomputes
// the derived fields. It returns the number of allocations removed.
func Remove(e *model.Employee, match func(model.Allocation) bool) int {
	kept := e.Allocations[:0:0]
	removed := 0
	for _, a := range e.Allocations {
		if match(a) {
			removed++
			continue
		}
		kept = append(kept, a)
	}
	e.Allocations = kept
	Apply(e)
	return removed
}

// ForProject matches allocations on one project.
func ForProject(projectID int) func(model.Allocation) bool {
	return func(a model.Allocation) bool { return a.ProjectID == projectID }
}

// ActiveOn returns the allocations whose window contains day. A zero bound
// is open. The result is for display only and never feeds Total.
func ActiveOn(allocs []model.Allocation, day model.Date) []model.Allocation {
	out := []model.Allocation{}
	for _, a := range allocs {
		if !a.StartDate.IsZero() && day.Before(a.StartDate) {
			continue
		}
		if !a.EndDate.IsZero() && day.After(a.EndDate) {
			continue
		}
		out = append(out, a)
	}
	return out
}
