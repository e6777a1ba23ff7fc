package allocation

import (
	"github.com/iwvelando/rehab-plan/pkg/mathutil"
	"go.uber.org/zap"
)

// RoundingPolicy names how a per-round amount derived by division is rounded.
type RoundingPolicy int

const (
	// RoundingNone means no per-round amount is derived by division.
	RoundingNone RoundingPolicy = iota
	// RoundingCeiling rounds the adjusted monthly income up so the rounds
	// after the reserve are never under-funded.
	RoundingCeiling
)

// AdjustedMonthlyIncome spreads the total income left after the reserve fund
// over the rounds following round 1:
//
//	ceil((monthlyIncome*rounds - reserve) / (rounds-1))
//
// It is 0 when there is no round after the first, and never negative.
func AdjustedMonthlyIncome(monthlyIncome int64, rounds int, reserveAmount int64) int64 {
	if rounds <= 1 {
		return 0
	}
	totalIncome := mathutil.NonNegative(monthlyIncome) * int64(rounds)
	adjustedTotal := totalIncome - mathutil.NonNegative(reserveAmount)
	return mathutil.NonNegative(mathutil.CeilDiv(adjustedTotal, int64(rounds-1)))
}

// AllocateWithReserve pays reserveAmount out in round 1 and the adjusted
// monthly income in rounds 2..rounds. Each round serves the preferential
// tier first, exactly like Allocate, but shares are weighted by every
// creditor's current balance rather than its original target amount.
func (a *Allocator) AllocateWithReserve(creditors []Creditor, monthlyIncome int64, rounds int, reserveAmount int64) Result {
	reserve := mathutil.NonNegative(reserveAmount)
	adjusted := AdjustedMonthlyIncome(monthlyIncome, rounds, reserve)

	a.logger.Debug("computed adjusted monthly income",
		zap.String("op", "allocation.AllocateWithReserve"),
		zap.Int64("monthlyIncome", monthlyIncome),
		zap.Int("rounds", rounds),
		zap.Int64("reserve", reserve),
		zap.Int64("adjustedMonthly", adjusted),
	)

	l := newLedger(creditors)
	schedule := make([]ScheduleRow, 0, max(rounds, 0))
	for round := 1; round <= rounds; round++ {
		budget := adjusted
		if round == 1 {
			budget = reserve
		}

		payments := make(map[string]int64)
		l.allocateTiered(WeightCurrentBalance, budget, payments)

		row := newRow(round, budget, payments)
		a.logUnallocated("allocation.AllocateWithReserve", row)
		schedule = append(schedule, row)
	}

	return Result{
		Variant:  VariantReserve,
		Schedule: schedule,
		Totals:   Totals(creditors, schedule),
		Policy: Policy{
			Weighting: WeightCurrentBalance,
			Remainder: RemainderExactLast,
			Rounding:  RoundingCeiling,
		},
		RoundIncome: adjusted,
		Reserve:     reserve,
	}
}
