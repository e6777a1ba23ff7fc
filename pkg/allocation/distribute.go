package allocation

import (
	"github.com/iwvelando/rehab-plan/pkg/mathutil"
)

// WeightBasis selects the quantity a pro-rata split is proportional to.
type WeightBasis int

const (
	// WeightOriginalDebt weights creditors by their frozen target amount.
	WeightOriginalDebt WeightBasis = iota
	// WeightCurrentBalance weights creditors by what they are still owed.
	WeightCurrentBalance
)

func (b WeightBasis) String() string {
	switch b {
	case WeightOriginalDebt:
		return "original-debt"
	case WeightCurrentBalance:
		return "current-balance"
	default:
		return "unknown"
	}
}

// RemainderPolicy names how floor-rounding residue of a pro-rata split is
// settled.
type RemainderPolicy int

const (
	// RemainderExactLast floors every share but the last and hands the last
	// creditor in list order whatever is left, so the split sums to the
	// distributed amount.
	RemainderExactLast RemainderPolicy = iota
)

func (l *ledger) weight(c Creditor, basis WeightBasis) int64 {
	if basis == WeightOriginalDebt {
		return l.target[c.ID]
	}
	return l.balance[c.ID]
}

// distribute splits amount pro-rata over targets in list order, records the
// payments and decrements balances. No payment exceeds the creditor's
// remaining balance. Whatever a cap holds back is split again over the
// targets still owed something, so nothing is left unpaid while any of them
// has a balance. It returns the amount actually paid.
func (l *ledger) distribute(targets []Creditor, basis WeightBasis, payments map[string]int64, amount int64) int64 {
	var paid int64
	for amount > paid {
		live := l.active(targets)
		if len(live) == 0 {
			break
		}
		n := l.split(live, basis, payments, amount-paid)
		if n == 0 {
			break
		}
		paid += n
	}
	return paid
}

// split is one pro-rata pass of distribute. Every pass either pays the whole
// amount or settles at least one target, so distribute makes at most
// len(targets) passes.
func (l *ledger) split(targets []Creditor, basis WeightBasis, payments map[string]int64, amount int64) int64 {
	if amount <= 0 || len(targets) == 0 {
		return 0
	}

	weights := make([]int64, len(targets))
	var totalWeight int64
	for i, c := range targets {
		weights[i] = l.weight(c, basis)
		totalWeight += weights[i]
	}
	if totalWeight <= 0 {
		return 0
	}

	var assigned, paid int64
	for i, c := range targets {
		var share int64
		if i == len(targets)-1 {
			share = amount - assigned
		} else {
			share = mathutil.ProRataFloor(weights[i], totalWeight, amount)
		}
		assigned += share

		share = mathutil.NonNegative(mathutil.Min(share, l.balance[c.ID]))
		if share == 0 {
			continue
		}
		payments[c.ID] += share
		l.balance[c.ID] -= share
		paid += share
	}
	return paid
}

// payOrdinary gives amount to the ordinary tier, settling it outright when
// its whole balance fits.
func (l *ledger) payOrdinary(basis WeightBasis, amount int64, payments map[string]int64) {
	ordinary := l.active(l.ordinary)
	if len(ordinary) == 0 || amount <= 0 {
		return
	}
	if l.outstanding(ordinary) <= amount {
		l.payInFull(ordinary, payments)
		return
	}
	l.distribute(ordinary, basis, payments, amount)
}

// allocateTiered spends amount on the preferential tier first. When the whole
// preferential balance fits, it is paid off and the rest goes to ordinary
// creditors; otherwise the preferential tier absorbs everything. With no
// preferential balance left, ordinary creditors share the amount. It reports
// whether the preferential tier is fully settled at the end of the round.
func (l *ledger) allocateTiered(basis WeightBasis, amount int64, payments map[string]int64) bool {
	preferential := l.active(l.preferential)
	if len(preferential) == 0 {
		l.payOrdinary(basis, amount, payments)
		return true
	}

	if l.outstanding(preferential) <= amount {
		amount -= l.payInFull(preferential, payments)
		l.payOrdinary(basis, amount, payments)
		return true
	}

	l.distribute(preferential, basis, payments, amount)
	return false
}
