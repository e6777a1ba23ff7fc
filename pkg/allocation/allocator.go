package allocation

import (
	"github.com/iwvelando/rehab-plan/pkg/mathutil"
	"go.uber.org/zap"
)

// preferentialState tracks whether the preferential tier still has to be
// served before ordinary creditors.
type preferentialState int

const (
	preferentialPending preferentialState = iota
	preferentialSettled
)

// Allocator builds repayment schedules.
type Allocator struct {
	logger *zap.Logger
}

// NewAllocator creates a new allocator instance
func NewAllocator(logger *zap.Logger) *Allocator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Allocator{logger: logger}
}

// Allocate distributes monthlyIncome over the creditors in each of the given
// rounds. Preferential creditors are served first; once their whole balance
// fits into a round they are paid off and ordinary creditors share the rest.
//
// Shares are weighted by each creditor's original target amount.
// OPEN QUESTION: AllocateWithReserve weights by current balance instead. Both
// bases stay as they are until the product owner confirms which one applies.
func (a *Allocator) Allocate(creditors []Creditor, monthlyIncome int64, rounds int) Result {
	income := mathutil.NonNegative(monthlyIncome)
	l := newLedger(creditors)

	state := preferentialPending
	if len(l.preferential) == 0 {
		state = preferentialSettled
	}

	schedule := make([]ScheduleRow, 0, max(rounds, 0))
	for round := 1; round <= rounds; round++ {
		payments := make(map[string]int64)

		if state == preferentialPending {
			if l.allocateTiered(WeightOriginalDebt, income, payments) {
				state = preferentialSettled
				a.logger.Debug("preferential creditors settled",
					zap.String("op", "allocation.Allocate"),
					zap.Int("round", round),
				)
			}
		} else {
			l.payOrdinary(WeightOriginalDebt, income, payments)
		}

		row := newRow(round, income, payments)
		a.logUnallocated("allocation.Allocate", row)
		schedule = append(schedule, row)
	}

	return Result{
		Variant:  VariantStandard,
		Schedule: schedule,
		Totals:   Totals(creditors, schedule),
		Policy: Policy{
			Weighting: WeightOriginalDebt,
			Remainder: RemainderExactLast,
			Rounding:  RoundingNone,
		},
		RoundIncome: income,
	}
}

func (a *Allocator) logUnallocated(op string, row ScheduleRow) {
	if row.Unallocated > 0 {
		a.logger.Debug("round budget exceeds what eligible creditors are owed",
			zap.String("op", op),
			zap.Int("round", row.Round),
			zap.Int64("total", row.Total),
			zap.Int64("unallocated", row.Unallocated),
		)
	}
}

// Allocate builds a standard schedule without logging.
func Allocate(creditors []Creditor, monthlyIncome int64, rounds int) Result {
	return NewAllocator(nil).Allocate(creditors, monthlyIncome, rounds)
}

// AllocateWithReserve builds a reserve-fund schedule without logging.
func AllocateWithReserve(creditors []Creditor, monthlyIncome int64, rounds int, reserveAmount int64) Result {
	return NewAllocator(nil).AllocateWithReserve(creditors, monthlyIncome, rounds, reserveAmount)
}
