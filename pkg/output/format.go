// Package output provides utilities for formatting and displaying repayment
// plans.
package output

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/iwvelando/rehab-plan/internal/plan"
	"github.com/iwvelando/rehab-plan/pkg/format"
	"github.com/iwvelando/rehab-plan/pkg/phases"
)

// PrettyFormat outputs a human-readable rather than machine-readable plan.
func PrettyFormat(results []plan.Plan) {
	WritePretty(os.Stdout, results)
}

// WritePretty writes the human-readable plans to w.
func WritePretty(w io.Writer, results []plan.Plan) {
	for i, result := range results {
		writePlan(w, result)
		if i < len(results)-1 {
			fmt.Fprintf(w, "\n")
		}
	}
}

func writePlan(w io.Writer, p plan.Plan) {
	fmt.Fprintf(w, "--- Repayment plan for case %s ---\n", p.Name)
	fmt.Fprintf(w, "Variant: %s | Rounds: %d | Monthly income: %s\n",
		p.Variant, p.Rounds, format.WonWithUnit(p.MonthlyIncome))
	if p.HasReserve() {
		fmt.Fprintf(w, "Reserve fund (round 1): %s | Adjusted monthly income: %s\n",
			format.WonWithUnit(p.Reserve), format.WonWithUnit(p.RoundIncome))
	}

	fmt.Fprintf(w, "\nRound | Month   | Total | Unallocated | Payments\n")
	fmt.Fprintf(w, "_____ | _______ | _____ | ___________ | ________\n")
	for i, row := range p.Schedule {
		month := ""
		if i < len(p.Months) {
			month = p.Months[i]
		}
		payments := make([]string, 0, len(p.Creditors))
		for _, c := range p.Creditors {
			if amount := row.Payment(c.ID); amount > 0 {
				payments = append(payments, fmt.Sprintf("%s=%s", c.Number, format.Won(amount)))
			}
		}
		fmt.Fprintf(w, "%5d | %-7s | %s | %s | %s\n",
			row.Round, month, format.Won(row.Total), format.Won(row.Unallocated), strings.Join(payments, ", "))
	}

	for _, ph := range p.Phases {
		fmt.Fprintf(w, "\nRounds %d-%d (%s)\n", ph.StartRound, ph.EndRound, ph.Kind)
		writeLines(w, ph.Lines, ph.Sums)
	}

	fmt.Fprintf(w, "\nTotal over %d rounds\n", p.Summary.Rounds)
	writeLines(w, p.Summary.Lines, p.Summary.Sums)

	fmt.Fprintf(w, "\nNumber | Creditor | Debt | Repaid | Rate\n")
	for _, t := range p.Totals {
		fmt.Fprintf(w, "%s | %s | %s | %s | %s\n",
			t.CreditorNumber, t.CreditorName, format.Won(t.TotalDebt), format.Won(t.TotalPayment), format.Rate(t.RepaymentRate))
	}

	if len(p.Secured.Rows) > 0 {
		fmt.Fprintf(w, "\nSecured claims\n")
		fmt.Fprintf(w, "Number | Creditor | Principal | Interest | Expected recovery | Unrepayable | Secured rehabilitation\n")
		for _, s := range p.Secured.Rows {
			fmt.Fprintf(w, "%s | %s | %s | %s | %s | %s | %s\n",
				s.Number, s.Name, format.Won(s.Principal), format.Won(s.Interest),
				format.Won(s.ExpectedRepaymentAmount), format.Won(s.UnrepayableAmount), format.Won(s.SecuredRehabilitationAmount))
		}
		total := p.Secured.Total
		fmt.Fprintf(w, "Total | | %s | %s | %s | %s | %s\n",
			format.Won(total.Principal), format.Won(total.Interest),
			format.Won(total.ExpectedRepaymentAmount), format.Won(total.UnrepayableAmount), format.Won(total.SecuredRehabilitationAmount))
	}

	pv := p.PresentValue
	fmt.Fprintf(w, "\nPresent value: %s (saving %d rounds %s + input %s at coefficient %s)\n",
		format.WonWithUnit(pv.PresentValue), pv.SavingRounds, format.Won(pv.SavingAmount), format.Won(pv.InputAmount), pv.Coefficient)
	fmt.Fprintf(w, "Liquidation value: %s | Margin: %s\n",
		format.WonWithUnit(p.LiquidationValue), format.WonWithUnit(p.LiquidationMargin))

	for _, warning := range p.Warnings {
		fmt.Fprintf(w, "Warning: %s\n", warning)
	}
}

func writeLines(w io.Writer, lines []phases.Line, sums phases.Sums) {
	fmt.Fprintf(w, "Number | Creditor | Confirmed debt | Unconfirmed debt | Monthly | Total\n")
	for _, l := range lines {
		fmt.Fprintf(w, "%s | %s | %s | %s | %s | %s\n",
			l.Number, l.Name, format.Won(l.ConfirmedDebt), format.Won(l.UnconfirmedDebt),
			format.Won(l.MonthlyPayment), format.Won(l.TotalPayment))
	}
	fmt.Fprintf(w, "Sum | | %s | %s | %s | %s\n",
		format.Won(sums.ConfirmedDebt), format.Won(sums.UnconfirmedDebt),
		format.Won(sums.MonthlyPayment), format.Won(sums.TotalPayment))
}

// CsvFormat outputs in comma-separated value format.
func CsvFormat(results []plan.Plan) error {
	return WriteCSV(os.Stdout, results)
}

// CsvString returns the CSV output as a string.
func CsvString(results []plan.Plan) string {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, results); err != nil {
		return ""
	}
	return buf.String()
}

// WriteCSV writes one record per case, round and paid creditor.
func WriteCSV(w io.Writer, results []plan.Plan) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"case", "round", "month", "creditor id", "creditor number", "creditor name", "payment"}); err != nil {
		return err
	}
	for _, p := range results {
		for i, row := range p.Schedule {
			month := ""
			if i < len(p.Months) {
				month = p.Months[i]
			}
			for _, c := range p.Creditors {
				amount := row.Payment(c.ID)
				if amount <= 0 {
					continue
				}
				record := []string{p.Name, strconv.Itoa(row.Round), month, c.ID, c.Number, c.Name, strconv.FormatInt(amount, 10)}
				if err := cw.Write(record); err != nil {
					return err
				}
			}
		}
	}
	cw.Flush()
	return cw.Error()
}
