// Package constants provides shared constants for the rehab-plan application.
package constants

// DateTimeLayout is the format used for the plan start month and for the
// per-round month labels.
const DateTimeLayout = "2006-01"

// Plan constants
const (
	// MonthsPerYear is the number of months in a year
	MonthsPerYear = 12

	// DefaultRepaymentCount is the ordinary repayment period in months
	DefaultRepaymentCount = 36

	// MaxRepaymentCount is the longest repayment period the court accepts
	MaxRepaymentCount = 60

	// SavingPeriodRounds is the length of the undiscounted saving block used
	// by the present value calculation when there is no reserve fund
	SavingPeriodRounds = 3

	// LeibnizAnnualRate is the statutory annual discount rate
	LeibnizAnnualRate = 0.05

	// PercentageMultiplier is used for percentage conversions
	PercentageMultiplier = 100.0
)

// Output format constants
const (
	// OutputFormatPretty is the human-readable output format
	OutputFormatPretty = "pretty"

	// OutputFormatCSV is the CSV output format
	OutputFormatCSV = "csv"
)

// Configuration file constants
const (
	// DefaultConfigFile is the default case file name
	DefaultConfigFile = "case.yaml"

	// ExampleConfigFile is the example case file name
	ExampleConfigFile = "case.yaml.example"

	// DefaultServerConfigFile is the default server configuration file name
	DefaultServerConfigFile = "server-config.yaml"
)

// Server configuration defaults
const (
	// DefaultServerAddress is the default HTTP listen address
	DefaultServerAddress = ":8080"

	// DefaultMaxUploadSizeBytes is the default maximum upload size for YAML case files (256 KB)
	DefaultMaxUploadSizeBytes int64 = 256 * 1024

	// ServerAddressEnv overrides the configured listen address
	ServerAddressEnv = "REHAB_PLAN_ADDRESS"

	// RequestIDHeader carries the per-request identifier
	RequestIDHeader = "X-Request-ID"
)
