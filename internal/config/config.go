// Package config defines the data structures of a case file and includes
// functions for loading and checking it.
package config

import (
	"fmt"
	"io"

	"github.com/iwvelando/rehab-plan/pkg/constants"
	"github.com/iwvelando/rehab-plan/pkg/flatten"
	"github.com/iwvelando/rehab-plan/pkg/mathutil"
	"github.com/spf13/viper"
)

// DateTimeLayout is the format of the plan start month and of the round
// month labels.
const DateTimeLayout = constants.DateTimeLayout

// Configuration holds all cases of a case file.
type Configuration struct {
	Cases   []Case
	Logging LoggingConfig `yaml:"logging,omitempty"`
	Output  OutputConfig  `yaml:"output,omitempty"`
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `yaml:"level,omitempty"`      // debug, info, warn, error
	Format     string `yaml:"format,omitempty"`     // json, console
	OutputFile string `yaml:"outputFile,omitempty"` // optional file output
}

// OutputConfig holds output format configuration options
type OutputConfig struct {
	Format string `yaml:"format,omitempty"` // pretty, csv
}

// Case is one personal rehabilitation case.
type Case struct {
	Name      string
	Active    bool
	Debtor    Debtor
	Creditors []flatten.CreditorRecord
	Plan      PlanParameters
}

// Debtor identifies the applicant.
type Debtor struct {
	Name  string
	Court string
}

// PlanParameters holds the income side of a repayment plan. Amounts are in
// won.
type PlanParameters struct {
	StartDate                    string // YYYY-MM; defaults to the month after processing
	RepaymentCount               int    // defaults to 36
	MonthlyAverageIncome         float64
	MonthlyAverageLivingCost     float64
	MonthlyTrusteeFee            float64
	OtherEstateClaims            float64
	MonthlyActualAvailableIncome float64 // derived from the items above when 0
	SeizedReservesAmount         float64
	LiquidationValue             float64
}

// LoadConfiguration takes a file path as input and loads the YAML-formatted
// configuration there.
func LoadConfiguration(configPath string) (*Configuration, error) {
	v := viper.New()
	v.SetConfigFile(configPath)
	v.AutomaticEnv()

	v.SetConfigType("yml")

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file, %s", err)
	}

	return decode(v)
}

// LoadConfigurationFromReader loads a YAML-formatted configuration from r.
func LoadConfigurationFromReader(r io.Reader) (*Configuration, error) {
	v := viper.New()
	v.SetConfigType("yml")

	if err := v.ReadConfig(r); err != nil {
		return nil, fmt.Errorf("error reading config data, %s", err)
	}

	return decode(v)
}

func decode(v *viper.Viper) (*Configuration, error) {
	var configuration Configuration
	if err := v.Unmarshal(&configuration); err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %s", err)
	}
	return &configuration, nil
}

// Rounds returns the number of rounds of the plan.
func (p PlanParameters) Rounds() int {
	if p.RepaymentCount <= 0 {
		return constants.DefaultRepaymentCount
	}
	return p.RepaymentCount
}

// ValidateRounds rejects repayment counts above the longest period the court
// accepts. Counts of 0 or less fall back to the default.
func (p PlanParameters) ValidateRounds() error {
	if p.RepaymentCount > constants.MaxRepaymentCount {
		return fmt.Errorf("repayment count %d exceeds the maximum of %d",
			p.RepaymentCount, constants.MaxRepaymentCount)
	}
	return nil
}

// MonthlyIncome returns the monthly actual available income in whole won.
// When it is not given it is derived as average income minus living cost,
// trustee fee and other estate claims, and never negative.
func (p PlanParameters) MonthlyIncome() int64 {
	if given := mathutil.ToWon(p.MonthlyActualAvailableIncome); given > 0 {
		return given
	}
	available := mathutil.ToWon(p.MonthlyAverageIncome) - mathutil.ToWon(p.MonthlyAverageLivingCost)
	return mathutil.NonNegative(available - mathutil.ToWon(p.MonthlyTrusteeFee) - mathutil.ToWon(p.OtherEstateClaims))
}

// Reserve returns the seized reserve fund in whole won.
func (p PlanParameters) Reserve() int64 {
	return mathutil.ToWon(p.SeizedReservesAmount)
}

// Liquidation returns the liquidation value in whole won.
func (p PlanParameters) Liquidation() int64 {
	return mathutil.ToWon(p.LiquidationValue)
}

// ValidateConfiguration performs structural validation of the configuration.
// Case-level warnings are produced by the plan service.
func (c *Configuration) ValidateConfiguration() error {
	if len(c.Cases) == 0 {
		return fmt.Errorf("configuration has no cases")
	}
	names := make(map[string]bool, len(c.Cases))
	for i, cs := range c.Cases {
		if cs.Name == "" {
			return fmt.Errorf("case %d has no name", i+1)
		}
		if names[cs.Name] {
			return fmt.Errorf("case name %q is used more than once", cs.Name)
		}
		names[cs.Name] = true
		if err := cs.Plan.ValidateRounds(); err != nil {
			return fmt.Errorf("case %q: %w", cs.Name, err)
		}
	}
	return nil
}
