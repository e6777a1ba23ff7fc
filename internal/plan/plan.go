// Package plan defines the data structures of a computed repayment plan and
// includes functions for computing the plans of every case in a
// configuration.
package plan

import (
	"fmt"
	"time"

	"github.com/iwvelando/rehab-plan/internal/config"
	"github.com/iwvelando/rehab-plan/pkg/allocation"
	"github.com/iwvelando/rehab-plan/pkg/datetime"
	"github.com/iwvelando/rehab-plan/pkg/flatten"
	"github.com/iwvelando/rehab-plan/pkg/mathutil"
	"github.com/iwvelando/rehab-plan/pkg/phases"
	"github.com/iwvelando/rehab-plan/pkg/presentvalue"
	"github.com/iwvelando/rehab-plan/pkg/validation"
	"go.uber.org/zap"
)

// Plan holds everything computed for one case.
type Plan struct {
	Name    string `json:"name"`
	Debtor  string `json:"debtor,omitempty"`
	Variant string `json:"variant"`

	Rounds int `json:"rounds"`
	// Months holds the YYYY-MM label of every round.
	Months []string `json:"months"`

	MonthlyIncome int64 `json:"monthlyIncome"`
	// RoundIncome is the budget of every income-funded round; it differs
	// from MonthlyIncome when a reserve fund is paid out in round 1.
	RoundIncome int64 `json:"roundIncome"`
	Reserve     int64 `json:"reserve"`

	Creditors []allocation.Creditor      `json:"creditors"`
	Schedule  []allocation.ScheduleRow   `json:"schedule"`
	Totals    []allocation.CreditorTotal `json:"totals"`
	Phases    []phases.Phase             `json:"phases"`
	Summary   phases.Summary             `json:"summary"`
	Secured   SecuredTable               `json:"secured"`

	PresentValue     presentvalue.Breakdown `json:"presentValue"`
	LiquidationValue int64                  `json:"liquidationValue"`
	// LiquidationMargin is PresentValue minus LiquidationValue.
	LiquidationMargin int64 `json:"liquidationMargin"`

	Warnings []string `json:"warnings,omitempty"`
}

// HasReserve reports whether the plan pays a reserve fund in round 1.
func (p Plan) HasReserve() bool {
	return p.Variant == allocation.VariantReserve.String()
}

// GetPlans computes the plans of all active cases.
func GetPlans(logger *zap.Logger, conf config.Configuration) ([]Plan, error) {
	return GetPlansWithFixedTime(logger, conf, time.Now())
}

// GetPlansWithFixedTime computes the plans of all active cases using now as
// the processing time for cases without a start month.
func GetPlansWithFixedTime(logger *zap.Logger, conf config.Configuration, now time.Time) ([]Plan, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	allocator := allocation.NewAllocator(logger)
	var results []Plan
	for _, c := range conf.Cases {
		if !c.Active {
			logger.Debug(fmt.Sprintf("skipping case %s because it is inactive", c.Name),
				zap.String("op", "plan.GetPlans"),
			)
			continue
		}

		result, err := computePlan(allocator, c, now)
		if err != nil {
			return results, fmt.Errorf("case %s: %w", c.Name, err)
		}

		logger.Debug("computed plan",
			zap.String("op", "plan.GetPlans"),
			zap.String("case", result.Name),
			zap.String("variant", result.Variant),
			zap.Int("creditors", len(result.Creditors)),
			zap.Int("rounds", result.Rounds),
			zap.Int64("presentValue", result.PresentValue.PresentValue),
			zap.Int("warnings", len(result.Warnings)),
		)
		results = append(results, result)
	}

	return results, nil
}

func computePlan(allocator *allocation.Allocator, c config.Case, now time.Time) (Plan, error) {
	params := c.Plan
	if err := params.ValidateRounds(); err != nil {
		return Plan{}, err
	}
	rounds := params.Rounds()

	startMonth := params.StartDate
	if startMonth == "" {
		startMonth = datetime.NextMonth(now)
	}
	months, err := datetime.RoundMonths(startMonth, rounds)
	if err != nil {
		return Plan{}, err
	}

	creditors := flatten.Creditors(c.Creditors)
	income := params.MonthlyIncome()
	reserve := params.Reserve()

	var result allocation.Result
	if reserve > 0 {
		result = allocator.AllocateWithReserve(creditors, income, rounds, reserve)
	} else {
		result = allocator.Allocate(creditors, income, rounds)
	}

	pv := presentvalue.Calculate(result.Schedule, rounds, result.HasReserve(), reserve, income)
	liquidation := params.Liquidation()

	p := Plan{
		Name:              c.Name,
		Debtor:            c.Debtor.Name,
		Variant:           result.Variant.String(),
		Rounds:            rounds,
		Months:            months,
		MonthlyIncome:     income,
		RoundIncome:       result.RoundIncome,
		Reserve:           result.Reserve,
		Creditors:         creditors,
		Schedule:          result.Schedule,
		Totals:            result.Totals,
		Phases:            phases.Group(result.Schedule, creditors, result.HasReserve()),
		Summary:           phases.Totals(result.Schedule, creditors),
		Secured:           securedTable(c.Creditors),
		PresentValue:      pv,
		LiquidationValue:  liquidation,
		LiquidationMargin: pv.PresentValue - liquidation,
	}
	p.Warnings = warnings(p, params.RepaymentCount)
	return p, nil
}

func warnings(p Plan, configuredCount int) []string {
	count := configuredCount
	if count == 0 {
		count = p.Rounds
	}
	validator := validation.CaseValidator{
		Name:           p.Name,
		MonthlyIncome:  p.MonthlyIncome,
		RepaymentCount: count,
		Reserve:        p.Reserve,
	}
	for _, c := range p.Creditors {
		validator.Creditors = append(validator.Creditors, validation.CreditorConfig{
			ID:     c.ID,
			Number: c.Number,
			Target: c.TargetAmount(),
		})
	}

	result := validator.ValidateAll()
	if w := validation.ValidatePresentValue(p.Name, p.PresentValue.PresentValue, p.LiquidationValue); w != "" {
		result = append(result, w)
	}
	return result
}

// SecuredTable lists the secured claims of a case with their collateral
// split.
type SecuredTable struct {
	Rows  []SecuredRow `json:"rows,omitempty"`
	Total SecuredRow   `json:"total"`
}

// SecuredRow is one secured claim. In the total row only amounts are set.
type SecuredRow struct {
	Number                      string `json:"number,omitempty"`
	Name                        string `json:"name,omitempty"`
	Principal                   int64  `json:"principal"`
	Interest                    int64  `json:"interest"`
	ExpectedRepaymentAmount     int64  `json:"expectedRepaymentAmount"`
	UnrepayableAmount           int64  `json:"unrepayableAmount"`
	SecuredRehabilitationAmount int64  `json:"securedRehabilitationAmount"`
	MaxAmount                   int64  `json:"maxAmount,omitempty"`
	CollateralObject            string `json:"collateralObject,omitempty"`
}

func securedTable(records []flatten.CreditorRecord) SecuredTable {
	var table SecuredTable
	for _, r := range records {
		data, ok := r.Secured()
		if !ok {
			continue
		}
		row := SecuredRow{
			Number:                      r.Number,
			Name:                        r.Name,
			Principal:                   mathutil.ToWon(r.Principal),
			Interest:                    mathutil.ToWon(r.Interest),
			ExpectedRepaymentAmount:     mathutil.ToWon(data.ExpectedRepaymentAmount),
			UnrepayableAmount:           mathutil.ToWon(data.UnrepayableAmount),
			SecuredRehabilitationAmount: mathutil.ToWon(data.SecuredRehabilitationAmount),
			MaxAmount:                   mathutil.ToWon(data.MaxAmount),
			CollateralObject:            data.CollateralObject,
		}
		table.Rows = append(table.Rows, row)

		table.Total.Principal += row.Principal
		table.Total.Interest += row.Interest
		table.Total.ExpectedRepaymentAmount += row.ExpectedRepaymentAmount
		table.Total.UnrepayableAmount += row.UnrepayableAmount
		table.Total.SecuredRehabilitationAmount += row.SecuredRehabilitationAmount
	}
	return table
}
