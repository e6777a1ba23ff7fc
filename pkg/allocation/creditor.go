// Package allocation implements the repayment-allocation engine: it spreads a
// debtor's repayment budget over individual rehabilitation creditors round by
// round, honouring statutory priority and pro-rata division within a tier.
package allocation

import (
	"github.com/iwvelando/rehab-plan/pkg/mathutil"
)

// Creditor is one independent claim taking part in the repayment schedule.
// Subrogated claims must already be flattened into their own rows.
type Creditor struct {
	ID                string `json:"id"`
	Number            string `json:"number"`
	Name              string `json:"name"`
	Principal         int64  `json:"principal"`
	IsPreferential    bool   `json:"isPreferential"`
	IsSecured         bool   `json:"isSecured"`
	UnrepayableAmount int64  `json:"unrepayableAmount,omitempty"` // not recoverable from collateral
}

// TargetAmount is the amount of the claim payable from the repayment fund:
// the unrepayable portion for secured claims and the principal otherwise.
func (c Creditor) TargetAmount() int64 {
	if c.IsSecured {
		return mathutil.NonNegative(c.UnrepayableAmount)
	}
	return mathutil.NonNegative(c.Principal)
}

// ledger holds the running balances of a single allocation call.
type ledger struct {
	creditors    []Creditor
	target       map[string]int64
	balance      map[string]int64
	preferential []Creditor
	ordinary     []Creditor
}

// newLedger freezes every creditor's target amount, opens its balance and
// splits the creditors into the preferential and ordinary tiers. Creditors
// with nothing to repay join neither tier.
func newLedger(creditors []Creditor) *ledger {
	l := &ledger{
		creditors: creditors,
		target:    make(map[string]int64, len(creditors)),
		balance:   make(map[string]int64, len(creditors)),
	}
	for _, c := range creditors {
		amount := c.TargetAmount()
		l.target[c.ID] = amount
		l.balance[c.ID] = amount
		if amount <= 0 {
			continue
		}
		if c.IsPreferential {
			l.preferential = append(l.preferential, c)
		} else {
			l.ordinary = append(l.ordinary, c)
		}
	}
	return l
}

// active returns the members of group that still have a positive balance,
// preserving order.
func (l *ledger) active(group []Creditor) []Creditor {
	var result []Creditor
	for _, c := range group {
		if l.balance[c.ID] > 0 {
			result = append(result, c)
		}
	}
	return result
}

// outstanding sums the remaining balances of group.
func (l *ledger) outstanding(group []Creditor) int64 {
	var total int64
	for _, c := range group {
		total += l.balance[c.ID]
	}
	return total
}

// payInFull settles every creditor of group and returns the amount paid.
func (l *ledger) payInFull(group []Creditor, payments map[string]int64) int64 {
	var paid int64
	for _, c := range group {
		amount := l.balance[c.ID]
		if amount <= 0 {
			continue
		}
		payments[c.ID] += amount
		l.balance[c.ID] = 0
		paid += amount
	}
	return paid
}
