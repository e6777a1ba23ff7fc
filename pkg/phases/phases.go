// Package phases groups a repayment schedule into the contiguous round ranges
// printed as separate tables of a repayment plan, and builds the grand total
// table over the whole plan.
package phases

import (
	"fmt"

	"github.com/iwvelando/rehab-plan/pkg/allocation"
)

// Kind classifies a phase by which tiers are paid in it.
type Kind int

const (
	// KindReserve is round 1 of a plan with a reserve fund.
	KindReserve Kind = iota
	// KindPreferentialOnly pays only preferential creditors.
	KindPreferentialOnly
	// KindMixed pays both tiers, typically the round the preferential
	// tier is settled in.
	KindMixed
	// KindOrdinaryOnly pays only ordinary creditors.
	KindOrdinaryOnly
)

func (k Kind) String() string {
	switch k {
	case KindReserve:
		return "reserve"
	case KindPreferentialOnly:
		return "preferential-only"
	case KindMixed:
		return "mixed"
	case KindOrdinaryOnly:
		return "ordinary-only"
	default:
		return "unknown"
	}
}

// MarshalText renders the kind by name.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText parses a kind name produced by MarshalText.
func (k *Kind) UnmarshalText(text []byte) error {
	for _, candidate := range []Kind{KindReserve, KindPreferentialOnly, KindMixed, KindOrdinaryOnly} {
		if candidate.String() == string(text) {
			*k = candidate
			return nil
		}
	}
	return fmt.Errorf("unknown phase kind %q", text)
}

// Line is one creditor's row in a phase table. Secured claims are reported
// as unconfirmed, everything else as confirmed.
type Line struct {
	CreditorID      string `json:"creditorId"`
	Number          string `json:"number"`
	Name            string `json:"name"`
	Secured         bool   `json:"secured"`
	ConfirmedDebt   int64  `json:"confirmedDebt"`
	UnconfirmedDebt int64  `json:"unconfirmedDebt"`
	MonthlyPayment  int64  `json:"monthlyPayment"` // floor(TotalPayment / rounds)
	TotalPayment    int64  `json:"totalPayment"`
}

// Debt returns the creditor's claim regardless of its column.
func (l Line) Debt() int64 {
	return l.ConfirmedDebt + l.UnconfirmedDebt
}

// Sums holds the footer of a phase table.
type Sums struct {
	ConfirmedDebt      int64 `json:"confirmedDebt"`
	UnconfirmedDebt    int64 `json:"unconfirmedDebt"`
	TotalDebt          int64 `json:"totalDebt"`
	ConfirmedMonthly   int64 `json:"confirmedMonthly"`
	UnconfirmedMonthly int64 `json:"unconfirmedMonthly"`
	MonthlyPayment     int64 `json:"monthlyPayment"`
	ConfirmedPayment   int64 `json:"confirmedPayment"`
	UnconfirmedPayment int64 `json:"unconfirmedPayment"`
	TotalPayment       int64 `json:"totalPayment"`
}

// Phase is a contiguous range of rounds rendered as one table.
type Phase struct {
	Kind       Kind   `json:"kind"`
	StartRound int    `json:"startRound"`
	EndRound   int    `json:"endRound"`
	Lines      []Line `json:"lines"`
	Sums       Sums   `json:"sums"`
}

// Rounds returns the number of rounds covered by the phase.
func (p Phase) Rounds() int {
	return p.EndRound - p.StartRound + 1
}

// Summary is the grand total table over the entire schedule.
type Summary struct {
	Rounds int    `json:"rounds"`
	Lines  []Line `json:"lines"`
	Sums   Sums   `json:"sums"`
}

// Group splits the schedule into phases. With a reserve fund round 1 forms
// its own phase listing every creditor. The remaining rounds are classified
// by the tiers they pay and contiguous rounds of the same class are merged.
// A round that pays nobody joins the phase before it, or the one after it at
// the start of the range. Without any preferential creditor the range is a
// single ordinary-only phase.
func Group(schedule []allocation.ScheduleRow, creditors []allocation.Creditor, hasReserve bool) []Phase {
	if len(schedule) == 0 {
		return nil
	}

	var result []Phase
	rows := schedule
	if hasReserve {
		result = append(result, newPhase(KindReserve, rows[:1], creditors))
		rows = rows[1:]
	}
	if len(rows) == 0 {
		return result
	}

	if !hasPreferential(creditors) {
		return append(result, newPhase(KindOrdinaryOnly, rows, shownCreditors(KindOrdinaryOnly, creditors)))
	}

	for _, r := range classify(rows, creditors) {
		result = append(result, newPhase(r.kind, rows[r.start:r.end], shownCreditors(r.kind, creditors)))
	}
	return result
}

// Totals builds the grand total table: every creditor with its payments
// summed over the whole schedule.
func Totals(schedule []allocation.ScheduleRow, creditors []allocation.Creditor) Summary {
	lines, sums := tabulate(schedule, creditors)
	return Summary{Rounds: len(schedule), Lines: lines, Sums: sums}
}

type run struct {
	kind       Kind
	start, end int // row indexes, end exclusive
}

// classify returns the contiguous runs of rows. Empty rounds extend the
// current run; leading empty rounds are absorbed by the first run.
func classify(rows []allocation.ScheduleRow, creditors []allocation.Creditor) []run {
	preferential := make(map[string]bool, len(creditors))
	for _, c := range creditors {
		preferential[c.ID] = c.IsPreferential
	}

	var runs []run
	leading := 0
	for i, row := range rows {
		kind, paid := kindOf(row, preferential)
		switch {
		case !paid && len(runs) == 0:
			leading++
		case !paid:
			runs[len(runs)-1].end = i + 1
		case len(runs) > 0 && runs[len(runs)-1].kind == kind:
			runs[len(runs)-1].end = i + 1
		default:
			start := i
			if len(runs) == 0 {
				start = i - leading
			}
			runs = append(runs, run{kind: kind, start: start, end: i + 1})
		}
	}

	if len(runs) == 0 {
		// nothing was paid anywhere in the range
		runs = append(runs, run{kind: KindOrdinaryOnly, start: 0, end: len(rows)})
	}
	return runs
}

func kindOf(row allocation.ScheduleRow, preferential map[string]bool) (Kind, bool) {
	var pref, ord bool
	for id, amount := range row.Payments {
		if amount <= 0 {
			continue
		}
		if preferential[id] {
			pref = true
		} else {
			ord = true
		}
	}
	switch {
	case pref && ord:
		return KindMixed, true
	case pref:
		return KindPreferentialOnly, true
	case ord:
		return KindOrdinaryOnly, true
	default:
		return KindOrdinaryOnly, false
	}
}

func hasPreferential(creditors []allocation.Creditor) bool {
	for _, c := range creditors {
		if c.IsPreferential {
			return true
		}
	}
	return false
}

func shownCreditors(kind Kind, creditors []allocation.Creditor) []allocation.Creditor {
	if kind == KindReserve || kind == KindMixed {
		return creditors
	}
	var shown []allocation.Creditor
	for _, c := range creditors {
		if c.IsPreferential == (kind == KindPreferentialOnly) {
			shown = append(shown, c)
		}
	}
	return shown
}

func newPhase(kind Kind, rows []allocation.ScheduleRow, creditors []allocation.Creditor) Phase {
	lines, sums := tabulate(rows, creditors)
	return Phase{
		Kind:       kind,
		StartRound: rows[0].Round,
		EndRound:   rows[len(rows)-1].Round,
		Lines:      lines,
		Sums:       sums,
	}
}

func tabulate(rows []allocation.ScheduleRow, creditors []allocation.Creditor) ([]Line, Sums) {
	count := int64(len(rows))
	lines := make([]Line, 0, len(creditors))
	var sums Sums

	for _, c := range creditors {
		line := Line{
			CreditorID: c.ID,
			Number:     c.Number,
			Name:       c.Name,
			Secured:    c.IsSecured,
		}
		for _, row := range rows {
			line.TotalPayment += row.Payment(c.ID)
		}
		line.MonthlyPayment = monthly(line.TotalPayment, count)

		if c.IsSecured {
			line.UnconfirmedDebt = c.TargetAmount()
			sums.UnconfirmedDebt += line.UnconfirmedDebt
			sums.UnconfirmedPayment += line.TotalPayment
		} else {
			line.ConfirmedDebt = c.TargetAmount()
			sums.ConfirmedDebt += line.ConfirmedDebt
			sums.ConfirmedPayment += line.TotalPayment
		}
		lines = append(lines, line)
	}

	sums.TotalDebt = sums.ConfirmedDebt + sums.UnconfirmedDebt
	sums.TotalPayment = sums.ConfirmedPayment + sums.UnconfirmedPayment
	sums.ConfirmedMonthly = monthly(sums.ConfirmedPayment, count)
	sums.UnconfirmedMonthly = monthly(sums.UnconfirmedPayment, count)
	sums.MonthlyPayment = monthly(sums.TotalPayment, count)
	return lines, sums
}

func monthly(total, rounds int64) int64 {
	if rounds <= 0 {
		return 0
	}
	return total / rounds
}
