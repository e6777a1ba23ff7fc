package allocation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistributeLastGetsRemainder(t *testing.T) {
	creditors := []Creditor{
		{ID: "a", Principal: 1_000_000},
		{ID: "b", Principal: 1_000_000},
		{ID: "c", Principal: 1_000_000},
	}
	l := newLedger(creditors)
	payments := make(map[string]int64)

	paid := l.distribute(l.ordinary, WeightOriginalDebt, payments, 100)

	assert.Equal(t, int64(100), paid)
	assert.Equal(t, int64(33), payments["a"])
	assert.Equal(t, int64(33), payments["b"])
	assert.Equal(t, int64(34), payments["c"])
	assert.Equal(t, int64(1_000_000-34), l.balance["c"])
}

func TestDistributeOrderIsPartOfTheContract(t *testing.T) {
	forward := []Creditor{{ID: "a", Principal: 1}, {ID: "b", Principal: 2}}
	backward := []Creditor{{ID: "b", Principal: 2}, {ID: "a", Principal: 1}}

	p1 := make(map[string]int64)
	l1 := newLedger(forward)
	l1.distribute(l1.ordinary, WeightOriginalDebt, p1, 10)

	p2 := make(map[string]int64)
	l2 := newLedger(backward)
	l2.distribute(l2.ordinary, WeightOriginalDebt, p2, 10)

	// forward: a=floor(10/3)=3, b=7; backward: b=floor(20/3)=6, a=4
	assert.Equal(t, map[string]int64{"a": 3, "b": 7}, p1)
	assert.Equal(t, map[string]int64{"a": 4, "b": 6}, p2)
}

func TestDistributeCapsAtBalance(t *testing.T) {
	l := newLedger([]Creditor{
		{ID: "a", Principal: 100},
		{ID: "b", Principal: 100},
	})
	payments := make(map[string]int64)

	paid := l.distribute(l.ordinary, WeightOriginalDebt, payments, 1_000)

	assert.Equal(t, int64(200), paid)
	assert.Equal(t, int64(100), payments["a"])
	assert.Equal(t, int64(100), payments["b"])
	assert.Zero(t, l.balance["a"])
	assert.Zero(t, l.balance["b"])

	row := newRow(1, 1_000, payments)
	assert.Equal(t, int64(800), row.Unallocated)
}

func TestDistributeRedistributesCappedShare(t *testing.T) {
	// weights 10:10 split 5 as 2/3; b then only owes 1 of its 3
	l := newLedger([]Creditor{
		{ID: "a", Principal: 10},
		{ID: "b", Principal: 10},
	})
	l.balance["a"] = 4
	l.balance["b"] = 1
	payments := make(map[string]int64)

	paid := l.distribute(l.ordinary, WeightOriginalDebt, payments, 5)

	assert.Equal(t, int64(5), paid)
	assert.Equal(t, map[string]int64{"a": 4, "b": 1}, payments)
	assert.Zero(t, l.balance["a"])
	assert.Zero(t, l.balance["b"])
}

func TestDistributeCappedShareGoesToOthers(t *testing.T) {
	l := newLedger([]Creditor{
		{ID: "a", Principal: 100},
		{ID: "b", Principal: 100},
		{ID: "c", Principal: 100},
	})
	l.balance["c"] = 5
	payments := make(map[string]int64)

	paid := l.distribute(l.ordinary, WeightOriginalDebt, payments, 90)

	// c is capped at 5; the other 25 of its share is split between a and b
	assert.Equal(t, int64(90), paid)
	assert.Equal(t, int64(5), payments["c"])
	assert.Equal(t, int64(85), payments["a"]+payments["b"])
	assert.Equal(t, int64(42), payments["a"])
	assert.Equal(t, int64(43), payments["b"])
}

func TestPayOrdinarySettlesTierThatFits(t *testing.T) {
	l := newLedger([]Creditor{
		{ID: "a", Principal: 30},
		{ID: "b", Principal: 70},
	})
	l.balance["a"] = 3
	l.balance["b"] = 4
	payments := make(map[string]int64)

	l.payOrdinary(WeightOriginalDebt, 7, payments)

	assert.Equal(t, map[string]int64{"a": 3, "b": 4}, payments)
	assert.Zero(t, l.outstanding(l.ordinary))
}

func TestDistributeNoOp(t *testing.T) {
	tests := []struct {
		name      string
		creditors []Creditor
		amount    int64
	}{
		{name: "zero amount", creditors: []Creditor{{ID: "a", Principal: 10}}, amount: 0},
		{name: "negative amount", creditors: []Creditor{{ID: "a", Principal: 10}}, amount: -5},
		{name: "no targets", creditors: nil, amount: 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := newLedger(tt.creditors)
			payments := make(map[string]int64)
			assert.Zero(t, l.distribute(l.ordinary, WeightOriginalDebt, payments, tt.amount))
			assert.Empty(t, payments)
		})
	}
}

func TestDistributeZeroTotalWeight(t *testing.T) {
	l := newLedger([]Creditor{{ID: "a", Principal: 10}})
	l.balance["a"] = 0
	payments := make(map[string]int64)

	// current-balance weights sum to zero
	assert.Zero(t, l.distribute([]Creditor{{ID: "a"}}, WeightCurrentBalance, payments, 100))
	assert.Empty(t, payments)
}

func TestDistributeWeightBases(t *testing.T) {
	l := newLedger([]Creditor{
		{ID: "a", Principal: 1_000},
		{ID: "b", Principal: 1_000},
	})
	l.balance["a"] = 250

	original := make(map[string]int64)
	l.distribute(l.active(l.ordinary), WeightOriginalDebt, original, 100)
	assert.Equal(t, int64(50), original["a"])
	assert.Equal(t, int64(50), original["b"])

	l.balance["a"] = 250
	l.balance["b"] = 750
	current := make(map[string]int64)
	l.distribute(l.active(l.ordinary), WeightCurrentBalance, current, 100)
	assert.Equal(t, int64(25), current["a"])
	assert.Equal(t, int64(75), current["b"])
}

func TestNewLedgerExcludesZeroTargets(t *testing.T) {
	l := newLedger([]Creditor{
		{ID: "p", Principal: 500, IsPreferential: true},
		{ID: "zero", Principal: 0},
		{ID: "secured", Principal: 9_000, IsSecured: true, UnrepayableAmount: 0},
		{ID: "o", Principal: 700},
		{ID: "neg", Principal: -10, IsPreferential: true},
	})

	assert.Len(t, l.preferential, 1)
	assert.Equal(t, "p", l.preferential[0].ID)
	assert.Len(t, l.ordinary, 1)
	assert.Equal(t, "o", l.ordinary[0].ID)
	assert.Zero(t, l.target["secured"])
}

func TestWeightBasisString(t *testing.T) {
	assert.Equal(t, "original-debt", WeightOriginalDebt.String())
	assert.Equal(t, "current-balance", WeightCurrentBalance.String())
	assert.Equal(t, "unknown", WeightBasis(9).String())
}
