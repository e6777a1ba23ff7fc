package allocation

import (
	"github.com/iwvelando/rehab-plan/pkg/mathutil"
)

// ScheduleRow holds the payments of one repayment round.
type ScheduleRow struct {
	Round int `json:"round"`
	// Payments maps creditor ID to the amount paid this round. Creditors
	// paid nothing are absent.
	Payments map[string]int64 `json:"payments"`
	// Total is the budget of the round.
	Total int64 `json:"total"`
	// Unallocated is the part of Total no eligible creditor could take
	// because every one of them was capped at its remaining balance.
	Unallocated int64 `json:"unallocated"`
}

// Payment returns the amount paid to a creditor in this round.
func (r ScheduleRow) Payment(creditorID string) int64 {
	return r.Payments[creditorID]
}

// Paid returns the sum of the round's payments.
func (r ScheduleRow) Paid() int64 {
	var total int64
	for _, amount := range r.Payments {
		total += amount
	}
	return total
}

func newRow(round int, total int64, payments map[string]int64) ScheduleRow {
	row := ScheduleRow{Round: round, Payments: payments, Total: total}
	row.Unallocated = mathutil.NonNegative(total - row.Paid())
	return row
}

// CreditorTotal summarises what one creditor receives over the whole plan.
type CreditorTotal struct {
	CreditorID     string  `json:"creditorId"`
	CreditorNumber string  `json:"creditorNumber"`
	CreditorName   string  `json:"creditorName"`
	Secured        bool    `json:"secured"`
	TotalDebt      int64   `json:"totalDebt"`
	TotalPayment   int64   `json:"totalPayment"`
	RepaymentRate  float64 `json:"repaymentRate"` // percent
}

// Policy records the rounding and weighting rules a schedule was built with.
type Policy struct {
	Weighting WeightBasis
	Remainder RemainderPolicy
	Rounding  RoundingPolicy
}

// Variant identifies the allocator that produced a Result.
type Variant int

const (
	// VariantStandard funds every round with the monthly income.
	VariantStandard Variant = iota
	// VariantReserve pays a reserve fund in round 1 and an adjusted monthly
	// income afterwards.
	VariantReserve
)

func (v Variant) String() string {
	if v == VariantReserve {
		return "reserve"
	}
	return "standard"
}

// Result is the outcome of one allocation call.
type Result struct {
	Variant  Variant
	Schedule []ScheduleRow
	Totals   []CreditorTotal
	Policy   Policy
	// RoundIncome is the budget of every round funded by monthly income;
	// for the reserve variant this is the adjusted monthly income.
	RoundIncome int64
	// Reserve is the lump amount paid out in round 1, or 0.
	Reserve int64
}

// HasReserve reports whether round 1 distributed a reserve fund.
func (r Result) HasReserve() bool {
	return r.Variant == VariantReserve
}

// Total returns the CreditorTotal of a creditor and whether it exists.
func (r Result) Total(creditorID string) (CreditorTotal, bool) {
	for _, t := range r.Totals {
		if t.CreditorID == creditorID {
			return t, true
		}
	}
	return CreditorTotal{}, false
}

// Totals recomputes every creditor's totals from the schedule, in creditor
// order. Payments are always summed from the rows so the per-creditor view
// can never drift from the schedule.
func Totals(creditors []Creditor, schedule []ScheduleRow) []CreditorTotal {
	totals := make([]CreditorTotal, 0, len(creditors))
	for _, c := range creditors {
		var paid int64
		for _, row := range schedule {
			paid += row.Payment(c.ID)
		}
		debt := c.TargetAmount()
		totals = append(totals, CreditorTotal{
			CreditorID:     c.ID,
			CreditorNumber: c.Number,
			CreditorName:   c.Name,
			Secured:        c.IsSecured,
			TotalDebt:      debt,
			TotalPayment:   paid,
			RepaymentRate:  mathutil.CalculatePercentage(paid, debt),
		})
	}
	return totals
}
