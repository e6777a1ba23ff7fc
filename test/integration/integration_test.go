package integration

import (
	"bytes"
	"encoding/csv"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/iwvelando/rehab-plan/internal/config"
	"github.com/iwvelando/rehab-plan/internal/plan"
	"github.com/iwvelando/rehab-plan/pkg/output"
	"github.com/iwvelando/rehab-plan/pkg/testutil"
	"go.uber.org/zap"
)

const fixturePath = "../test_case.yaml"

var fixedTime = time.Date(2025, time.November, 14, 0, 0, 0, 0, time.UTC)

// loadPlans runs the fixture through the same steps as the CLI.
func loadPlans(t *testing.T) []plan.Plan {
	t.Helper()

	conf, err := config.LoadConfiguration(fixturePath)
	if err != nil {
		t.Fatalf("LoadConfiguration() error = %v", err)
	}
	if err := conf.ValidateConfiguration(); err != nil {
		t.Fatalf("ValidateConfiguration() error = %v", err)
	}

	results, err := plan.GetPlansWithFixedTime(zap.NewNop(), *conf, fixedTime)
	if err != nil {
		t.Fatalf("GetPlans() error = %v", err)
	}
	return results
}

// TestMainIntegrationBaseline checks the key figures of every fixture case.
func TestMainIntegrationBaseline(t *testing.T) {
	results := loadPlans(t)

	expectedCases := []string{"ordinary only", "priority first", "reserve fund"}
	if len(results) != len(expectedCases) {
		t.Fatalf("Expected %d cases, got %d", len(expectedCases), len(results))
	}
	for i, expected := range expectedCases {
		if results[i].Name != expected {
			t.Errorf("Expected case %s, got %s", expected, results[i].Name)
		}
	}

	baselineChecks := []struct {
		caseName     string
		creditorID   string
		expectedPaid int64
	}{
		{"ordinary only", "bank", 1800000},
		{"ordinary only", "card", 1200000},
		{"priority first", "tax", 1500000},
		{"priority first", "lender", 3500000},
		{"reserve fund", "card", 1333333},
		{"reserve fund", "card-sub1", 666668},
	}

	for _, check := range baselineChecks {
		p := testutil.FindPlan(results, check.caseName)
		if p == nil {
			t.Errorf("Case %s not found", check.caseName)
			continue
		}
		if got := testutil.CreditorPaid(p.Schedule, check.creditorID); got != check.expectedPaid {
			t.Errorf("Case %s creditor %s: expected %d paid, got %d", check.caseName, check.creditorID, check.expectedPaid, got)
		}
	}
}

// TestScheduleConservesBudget verifies that no round pays more than its
// budget and that every won of it is either paid or reported unallocated.
func TestScheduleConservesBudget(t *testing.T) {
	for _, p := range loadPlans(t) {
		for _, row := range p.Schedule {
			if row.Paid()+row.Unallocated != row.Total {
				t.Errorf("Case %s round %d: paid %d + unallocated %d != total %d",
					p.Name, row.Round, row.Paid(), row.Unallocated, row.Total)
			}
			for id, amount := range row.Payments {
				if amount < 0 {
					t.Errorf("Case %s round %d: negative payment %d to %s", p.Name, row.Round, amount, id)
				}
			}
		}
		for _, total := range p.Totals {
			if total.TotalPayment > total.TotalDebt {
				t.Errorf("Case %s creditor %s: paid %d exceeds debt %d",
					p.Name, total.CreditorID, total.TotalPayment, total.TotalDebt)
			}
		}
		if got := testutil.SchedulePaid(p.Schedule); got != p.Summary.Sums.TotalPayment {
			t.Errorf("Case %s: schedule paid %d != summary %d", p.Name, got, p.Summary.Sums.TotalPayment)
		}
	}
}

// TestCSVOutputFormat parses the CSV output back and sums the payments.
func TestCSVOutputFormat(t *testing.T) {
	results := loadPlans(t)

	var buf bytes.Buffer
	if err := output.WriteCSV(&buf, results); err != nil {
		t.Fatalf("WriteCSV() error = %v", err)
	}

	records, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("failed to parse CSV output: %v", err)
	}
	if len(records) < 2 {
		t.Fatalf("Expected header and data rows, got %d records", len(records))
	}

	header := records[0]
	if header[0] != "case" || header[len(header)-1] != "payment" {
		t.Errorf("Unexpected CSV header: %v", header)
	}

	sums := make(map[string]int64)
	for _, record := range records[1:] {
		if len(record) != len(header) {
			t.Fatalf("Row has %d fields, header has %d", len(record), len(header))
		}
		amount, err := strconv.ParseInt(record[len(record)-1], 10, 64)
		if err != nil {
			t.Fatalf("invalid payment %q: %v", record[len(record)-1], err)
		}
		sums[record[0]] += amount
	}

	for _, p := range results {
		if sums[p.Name] != testutil.SchedulePaid(p.Schedule) {
			t.Errorf("Case %s: CSV sum %d != schedule paid %d", p.Name, sums[p.Name], testutil.SchedulePaid(p.Schedule))
		}
	}
}

// TestPrettyOutputFormat checks the human-readable report of every case.
func TestPrettyOutputFormat(t *testing.T) {
	results := loadPlans(t)

	var buf bytes.Buffer
	output.WritePretty(&buf, results)
	got := buf.String()

	for _, p := range results {
		if !strings.Contains(got, p.Name) {
			t.Errorf("Pretty output missing case %s", p.Name)
		}
	}
	for _, want := range []string{"Secured claims", "Tax Office", "Guarantee Fund"} {
		if !strings.Contains(got, want) {
			t.Errorf("Pretty output missing %q", want)
		}
	}
}

// TestConfigurationValidation runs case files that must be rejected.
func TestConfigurationValidation(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{
			name:    "no cases",
			content: "logging:\n  level: info\n",
			wantErr: "no cases",
		},
		{
			name:    "duplicate names",
			content: "cases:\n  - name: a\n    active: true\n  - name: a\n    active: true\n",
			wantErr: "more than once",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conf, err := config.LoadConfigurationFromReader(strings.NewReader(tt.content))
			if err != nil {
				t.Fatalf("LoadConfigurationFromReader() error = %v", err)
			}
			err = conf.ValidateConfiguration()
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("expected error containing %q, got %v", tt.wantErr, err)
			}
		})
	}
}
