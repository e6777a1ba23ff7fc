// Package mathutil provides whole-won arithmetic helpers.
package mathutil

import (
	"math"

	"github.com/iwvelando/rehab-plan/pkg/constants"
	"github.com/shopspring/decimal"
)

// ToWon coerces a raw monetary input into a whole, non-negative won amount.
// NaN, infinities and negative values become 0; fractions are floored.
func ToWon(val float64) int64 {
	if math.IsNaN(val) || math.IsInf(val, 0) || val <= 0 {
		return 0
	}
	if val >= math.MaxInt64 {
		return math.MaxInt64
	}
	return int64(math.Floor(val))
}

// NonNegative clamps negative amounts to 0.
func NonNegative(val int64) int64 {
	if val < 0 {
		return 0
	}
	return val
}

// Min returns the minimum of two amounts
func Min(a, b int64) int64 {
	if a < b {
		return a
	}
	return b
}

// ProRataFloor returns floor(weight / totalWeight * amount) computed exactly.
// It returns 0 when totalWeight is not positive.
func ProRataFloor(weight, totalWeight, amount int64) int64 {
	if totalWeight <= 0 || weight <= 0 || amount <= 0 {
		return 0
	}
	num := decimal.NewFromInt(weight).Mul(decimal.NewFromInt(amount))
	q, _ := num.QuoRem(decimal.NewFromInt(totalWeight), 0)
	return q.IntPart()
}

// CeilDiv returns ceil(a / b) for b > 0. It returns 0 for b <= 0.
func CeilDiv(a, b int64) int64 {
	if b <= 0 {
		return 0
	}
	q := a / b
	if a%b != 0 && (a > 0) == (b > 0) {
		q++
	}
	return q
}

// CalculatePercentage calculates what percentage value is of total
func CalculatePercentage(value, total int64) float64 {
	if total == 0 {
		return 0
	}
	rate := decimal.NewFromInt(value).
		Mul(decimal.NewFromFloat(constants.PercentageMultiplier)).
		Div(decimal.NewFromInt(total))
	return rate.InexactFloat64()
}

// FloorProduct returns floor(amount * factor) where factor is a decimal
// coefficient.
func FloorProduct(amount int64, factor decimal.Decimal) int64 {
	return decimal.NewFromInt(amount).Mul(factor).Floor().IntPart()
}
