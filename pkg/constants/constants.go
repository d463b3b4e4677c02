// Package constants provides shared constants for the ratecard application.
package constants

// Compensation policy constants
const (
	// ExperienceStepPerYear is the base-salary uplift applied per year of experience
	ExperienceStepPerYear = 0.1

	// OverheadMultiplier is the CTC overhead factor covering benefits and taxes
	OverheadMultiplier = 1.3

	// ReferencePerUSD is the fixed reference-currency-to-USD divisor (83 INR = 1 USD)
	ReferencePerUSD = 83.0

	// ClientMarkup is the markup applied over the break-even hourly rate
	ClientMarkup = 1.75

	// StandardWorkdayHours is the assumed length of a working day
	StandardWorkdayHours = 8

	// MonthsPerYear is the number of months in a year
	MonthsPerYear = 12

	// DecimalPrecision is the precision for rate rounding (2 decimal places)
	DecimalPrecision = 100

	// PercentageMultiplier is used for percentage conversions
	PercentageMultiplier = 100.0
)

// Input defaults, substituted when a raw field is absent or malformed
const (
	DefaultExperienceYears     = 1.5
	DefaultTargetMarginPercent = 35.0
	DefaultBillableHoursPerDay = 4.0
	DefaultAnnualWorkdays      = 236
)

// Input domains; out-of-range values are clamped to the nearest bound
const (
	MinExperienceYears = 0.0
	MaxExperienceYears = 20.0

	MinTargetMarginPercent = 0.0
	MaxTargetMarginPercent = 100.0

	MinBillableHoursPerDay = 1.0
	MaxBillableHoursPerDay = 12.0

	MinAnnualWorkdays = 200
	MaxAnnualWorkdays = 300
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
	// DefaultConfigFile is the default configuration file name
	DefaultConfigFile = "config.yaml"

	// DefaultServerConfigFile is the default server configuration file name
	DefaultServerConfigFile = "server-config.yaml"
)

// Server configuration defaults
const (
	// DefaultServerAddress is the default HTTP listen address for the API
	DefaultServerAddress = ":8080"

	// DefaultMaxBodySizeBytes is the default maximum request body size (256 KB)
	DefaultMaxBodySizeBytes int64 = 256 * 1024
)

// Validation constants
const (
	// RateTolerance is the tolerance for two-decimal rate comparisons
	RateTolerance = 0.01

	// CurrencyTolerance is the tolerance for whole-currency comparisons
	CurrencyTolerance = 0.5
)
