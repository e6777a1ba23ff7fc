// Package testutil provides common utility functions for testing.
package testutil

import (
	"github.com/iwvelando/rehab-plan/internal/plan"
	"github.com/iwvelando/rehab-plan/pkg/allocation"
)

// FindPlan finds a plan by case name in the results slice.
// Returns a pointer to the plan if found, nil otherwise.
func FindPlan(results []plan.Plan, name string) *plan.Plan {
	for i := range results {
		if results[i].Name == name {
			return &results[i]
		}
	}
	return nil
}

// CreditorPaid sums what the schedule pays one creditor.
func CreditorPaid(schedule []allocation.ScheduleRow, creditorID string) int64 {
	var total int64
	for _, row := range schedule {
		total += row.Payment(creditorID)
	}
	return total
}

// SchedulePaid sums every payment of the schedule.
func SchedulePaid(schedule []allocation.ScheduleRow) int64 {
	var total int64
	for _, row := range schedule {
		total += row.Paid()
	}
	return total
}
