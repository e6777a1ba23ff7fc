// Package presentvalue discounts a repayment schedule to its present value
// for comparison with the debtor's liquidation value.
package presentvalue

import (
	"github.com/iwvelando/rehab-plan/pkg/allocation"
	"github.com/iwvelando/rehab-plan/pkg/constants"
	"github.com/iwvelando/rehab-plan/pkg/mathutil"
)

// Breakdown shows how a present value was assembled.
type Breakdown struct {
	// SavingRounds is the number of leading rounds counted at face value.
	SavingRounds int   `json:"savingRounds"`
	SavingAmount int64 `json:"savingAmount"`
	// MonthlyAmount is the per-round budget discounted over the input
	// period.
	MonthlyAmount int64 `json:"monthlyAmount"`
	// Coefficient is L(rounds) - L(SavingRounds).
	Coefficient  string `json:"coefficient"`
	InputAmount  int64  `json:"inputAmount"`
	PresentValue int64  `json:"presentValue"`
}

// SavingRounds returns the length of the saving period: round 1 alone with a
// reserve fund, otherwise the first three rounds or the whole schedule if it
// is shorter.
func SavingRounds(rounds int, hasReserve bool) int {
	if rounds <= 0 {
		return 0
	}
	if hasReserve {
		return 1
	}
	return min(constants.SavingPeriodRounds, rounds)
}

// Calculate returns the present value of the schedule together with its
// parts. monthlyIncome is the unadjusted monthly income; with a reserve fund
// the adjusted monthly income is discounted instead.
func Calculate(schedule []allocation.ScheduleRow, rounds int, hasReserve bool, reserveAmount int64, monthlyIncome int64) Breakdown {
	saving := SavingRounds(rounds, hasReserve)

	var savingAmount int64
	for _, row := range schedule {
		if row.Round >= 1 && row.Round <= saving {
			savingAmount += row.Paid()
		}
	}

	monthly := mathutil.NonNegative(monthlyIncome)
	if hasReserve {
		monthly = allocation.AdjustedMonthlyIncome(monthlyIncome, rounds, reserveAmount)
	}

	factor := Coefficient(rounds).Sub(Coefficient(saving))
	var input int64
	if rounds > saving {
		input = mathutil.FloorProduct(monthly, factor)
	}

	return Breakdown{
		SavingRounds:  saving,
		SavingAmount:  savingAmount,
		MonthlyAmount: monthly,
		Coefficient:   factor.StringFixed(4),
		InputAmount:   input,
		PresentValue:  savingAmount + input,
	}
}

// Compute returns the present value of the schedule.
func Compute(schedule []allocation.ScheduleRow, rounds int, hasReserve bool, reserveAmount int64, monthlyIncome int64) int64 {
	return Calculate(schedule, rounds, hasReserve, reserveAmount, monthlyIncome).PresentValue
}
