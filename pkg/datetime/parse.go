// Package datetime provides month arithmetic for repayment rounds.
package datetime

import (
	"fmt"
	"time"

	"github.com/iwvelando/rehab-plan/pkg/constants"
)

const (
	// DateTimeLayout is the month format used for plan start dates and round
	// labels.
	DateTimeLayout = constants.DateTimeLayout
)

// NextMonth returns the month following the given time, formatted with
// DateTimeLayout. The day of month is ignored.
func NextMonth(now time.Time) string {
	first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	return first.AddDate(0, 1, 0).Format(DateTimeLayout)
}

// RoundMonths returns the month label of every round, round 1 falling on
// startMonth.
func RoundMonths(startMonth string, rounds int) ([]string, error) {
	if rounds <= 0 {
		return nil, nil
	}
	start, err := time.Parse(DateTimeLayout, startMonth)
	if err != nil {
		return nil, fmt.Errorf("invalid start month %q: %w", startMonth, err)
	}
	months := make([]string, rounds)
	for i := range months {
		months[i] = start.AddDate(0, i, 0).Format(DateTimeLayout)
	}
	return months, nil
}
