package validation

import (
	"fmt"

	"github.com/iwvelando/rehab-plan/pkg/constants"
	"github.com/iwvelando/rehab-plan/pkg/format"
)

// ValidateRepaymentCount checks the repayment period against the lengths the
// court accepts.
func ValidateRepaymentCount(caseName string, count int) string {
	if count < 1 || count > constants.MaxRepaymentCount {
		return fmt.Sprintf("Case '%s' repayment count %d is outside 1..%d",
			caseName, count, constants.MaxRepaymentCount)
	}
	if count != constants.DefaultRepaymentCount {
		return fmt.Sprintf("Case '%s' repayment count %d differs from the standard %d months",
			caseName, count, constants.DefaultRepaymentCount)
	}
	return ""
}

// ValidateReserve checks that the reserve fund does not consume the whole
// plan's income, which would leave nothing for rounds after the first.
func ValidateReserve(caseName string, monthlyIncome int64, count int, reserve int64) string {
	if reserve <= 0 || count <= 1 {
		return ""
	}
	totalIncome := monthlyIncome * int64(count)
	if reserve >= totalIncome {
		return fmt.Sprintf("Case '%s' reserve fund (%s) covers the total income (%s) - rounds 2 to %d pay nothing",
			caseName, format.WonWithUnit(reserve), format.WonWithUnit(totalIncome), count)
	}
	return ""
}

// ValidatePresentValue checks the liquidation value guarantee: creditors must
// receive at least what a bankruptcy liquidation would give them.
func ValidatePresentValue(caseName string, presentValue, liquidationValue int64) string {
	if liquidationValue > 0 && presentValue < liquidationValue {
		return fmt.Sprintf("Case '%s' present value (%s) is below the liquidation value (%s)",
			caseName, format.WonWithUnit(presentValue), format.WonWithUnit(liquidationValue))
	}
	return ""
}

// CaseValidator collects the warnings of a single case.
type CaseValidator struct {
	Name           string
	MonthlyIncome  int64
	RepaymentCount int
	Reserve        int64
	Creditors      []CreditorConfig
}

// CreditorConfig is the part of a flattened creditor the validator looks at.
type CreditorConfig struct {
	ID     string
	Number string
	Target int64
}

// ValidateAll validates the case and returns warnings
func (cv *CaseValidator) ValidateAll() []string {
	var warnings []string

	if w := ValidateRepaymentCount(cv.Name, cv.RepaymentCount); w != "" {
		warnings = append(warnings, w)
	}

	if cv.MonthlyIncome <= 0 {
		warnings = append(warnings, fmt.Sprintf("Case '%s' has no monthly available income", cv.Name))
	}

	if w := ValidateReserve(cv.Name, cv.MonthlyIncome, cv.RepaymentCount, cv.Reserve); w != "" {
		warnings = append(warnings, w)
	}

	seen := make(map[string]bool, len(cv.Creditors))
	var payable int
	for _, c := range cv.Creditors {
		if c.ID == "" {
			warnings = append(warnings, fmt.Sprintf("Case '%s' creditor %s has no id", cv.Name, c.Number))
		} else if seen[c.ID] {
			warnings = append(warnings, fmt.Sprintf("Case '%s' creditor id '%s' is used more than once", cv.Name, c.ID))
		}
		seen[c.ID] = true
		if c.Target > 0 {
			payable++
		}
	}
	if payable == 0 {
		warnings = append(warnings, fmt.Sprintf("Case '%s' has no creditor with an amount to repay", cv.Name))
	}

	return warnings
}
