package flatten

import (
	"math"
	"testing"

	"github.com/iwvelando/rehab-plan/pkg/allocation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreditors(t *testing.T) {
	records := []CreditorRecord{
		{ID: "c1", Number: "1", Name: "Bank", Principal: 10_000_000.75},
		{
			ID: "c2", Number: "2", Name: "Card", Principal: 5_000_000, IsPreferential: true,
			IsSubrogated: true,
			Subrogations: []SubrogationRecord{
				{Name: "Guarantor", Principal: 1_000_000},
				{ID: "g2", Number: "2-A", Name: "Insurer", Principal: 2_000_000.4},
			},
		},
		{
			ID: "c3", Number: "3", Name: "Lender", Principal: 50_000_000,
			IsSecured:   true,
			SecuredData: &SecuredData{UnrepayableAmount: 7_500_000, ExpectedRepaymentAmount: 42_500_000},
		},
	}

	got := Creditors(records)

	want := []allocation.Creditor{
		{ID: "c1", Number: "1", Name: "Bank", Principal: 10_000_000},
		{ID: "c2", Number: "2", Name: "Card", Principal: 5_000_000, IsPreferential: true},
		{ID: "c2-sub1", Number: "2-1", Name: "Guarantor", Principal: 1_000_000, IsPreferential: true},
		{ID: "g2", Number: "2-A", Name: "Insurer", Principal: 2_000_000, IsPreferential: true},
		{ID: "c3", Number: "3", Name: "Lender", Principal: 50_000_000, IsSecured: true, UnrepayableAmount: 7_500_000},
	}
	assert.Equal(t, want, got)
	assert.Equal(t, int64(7_500_000), got[4].TargetAmount())
}

func TestCreditorsCoercesAmounts(t *testing.T) {
	tests := []struct {
		name      string
		principal float64
		want      int64
	}{
		{name: "NaN", principal: math.NaN(), want: 0},
		{name: "positive infinity", principal: math.Inf(1), want: 0},
		{name: "negative infinity", principal: math.Inf(-1), want: 0},
		{name: "negative", principal: -100, want: 0},
		{name: "fraction", principal: 999.99, want: 999},
		{name: "whole", principal: 1_234_567, want: 1_234_567},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Creditors([]CreditorRecord{{ID: "c", Principal: tt.principal}})
			require.Len(t, got, 1)
			assert.Equal(t, tt.want, got[0].Principal)
		})
	}
}

func TestCreditorsSecuredWithoutData(t *testing.T) {
	got := Creditors([]CreditorRecord{
		{ID: "flagged", Principal: 1_000, IsSecured: true},
		{ID: "unflagged", Principal: 2_000, SecuredData: &SecuredData{UnrepayableAmount: 10}},
	})

	require.Len(t, got, 2)
	assert.False(t, got[0].IsSecured)
	assert.Equal(t, int64(1_000), got[0].TargetAmount())
	assert.False(t, got[1].IsSecured)
	assert.Equal(t, int64(2_000), got[1].TargetAmount())
}

func TestCreditorsSubrogationToggle(t *testing.T) {
	got := Creditors([]CreditorRecord{
		{
			ID: "c", Number: "7", Principal: 1_000,
			IsSecured:    true,
			SecuredData:  &SecuredData{UnrepayableAmount: 400},
			Subrogations: []SubrogationRecord{{Principal: 500}},
		},
	})
	require.Len(t, got, 1, "subrogations are ignored unless the record is marked subrogated")

	got = Creditors([]CreditorRecord{
		{
			ID: "c", Number: "7", Principal: 1_000,
			IsSecured:    true,
			SecuredData:  &SecuredData{UnrepayableAmount: 400},
			IsSubrogated: true,
			Subrogations: []SubrogationRecord{{Principal: math.NaN()}},
		},
	})
	require.Len(t, got, 2)
	assert.False(t, got[1].IsSecured)
	assert.Zero(t, got[1].Principal)
	assert.Equal(t, "c-sub1", got[1].ID)
	assert.Equal(t, "7-1", got[1].Number)
}

func TestCreditorsEmpty(t *testing.T) {
	assert.Empty(t, Creditors(nil))
}
