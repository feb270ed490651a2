// Package constants provides shared constants for the finance-calculators application.
package constants

// Unit conversion constants
const (
	// MonthsPerYear is the number of months in a year
	MonthsPerYear = 12

	// PercentageMultiplier is used for percentage conversions
	PercentageMultiplier = 100.0

	// ManwonUnit is the number of won in one 만원, the unit salary forms are entered in
	ManwonUnit = 10000.0
)

// Dividend constants
const (
	// DividendTaxRate is the withholding rate on dividends (14% income tax + 1.4% local tax)
	DividendTaxRate = 0.154
)

// Stock trade defaults, expressed in percent as entered on the form
const (
	// DefaultStockFeeRatePct is the brokerage fee applied to each leg
	DefaultStockFeeRatePct = 0.015

	// DefaultStockTaxRatePct is the securities transaction tax applied to the sell leg
	DefaultStockTaxRatePct = 0.23
)

// Period limits
const (
	// MaxCompoundPeriods bounds the number of rows a compound calculation produces
	MaxCompoundPeriods = 1200

	// MaxLoanTermYears bounds the loan term
	MaxLoanTermYears = 50
)

// Payroll constants (2025)
const (
	// MealTaxFreeCapMonthly is the monthly ceiling of the tax-free meal allowance
	MealTaxFreeCapMonthly = 200000.0

	// NationalPensionRate is the employee share of the national pension
	NationalPensionRate = 0.045

	// NationalPensionCapMonthly caps the monthly pension contribution
	NationalPensionCapMonthly = 5530000.0

	// HealthInsuranceRate is the employee share of health insurance
	HealthInsuranceRate = 0.03545

	// LongTermCareRate is applied to the health insurance premium
	LongTermCareRate = 0.1281

	// EmploymentInsuranceRate is the employee share of employment insurance
	EmploymentInsuranceRate = 0.009

	// DependentDeduction is the basic deduction per dependent
	DependentDeduction = 1500000.0

	// LocalIncomeTaxRate is applied to the income tax
	LocalIncomeTaxRate = 0.1
)

// Salary form defaults in 만원
const (
	DefaultNonTaxableManwon     = 20.0
	DefaultMealAllowanceManwon  = 20.0
	DefaultNightAllowanceManwon = 0.0
	DefaultBonusManwon          = 0.0
	DefaultPensionManwon        = 0.0
)

// ValidationMessage is the single user-facing message for rejected input.
const ValidationMessage = "입력값을 확인해주세요."

// Output format constants
const (
	// OutputFormatPretty is the human-readable output format
	OutputFormatPretty = "pretty"

	// OutputFormatCSV is the CSV output format
	OutputFormatCSV = "csv"

	// OutputFormatJSON prints the view as indented JSON
	OutputFormatJSON = "json"
)

// Configuration file constants
const (
	// DefaultConfigFile is the default configuration file name
	DefaultConfigFile = "config.yaml"

	// EnvPrefix prefixes environment overrides of configuration keys
	EnvPrefix = "CALC"
)

// Server configuration defaults
const (
	// DefaultServerAddress is the default HTTP listen address
	DefaultServerAddress = ":8080"

	// DefaultReadTimeoutSeconds is the default HTTP read timeout
	DefaultReadTimeoutSeconds = 15

	// DefaultWriteTimeoutSeconds is the default HTTP write timeout
	DefaultWriteTimeoutSeconds = 15

	// DefaultShutdownTimeoutSeconds is how long in-flight requests get on shutdown
	DefaultShutdownTimeoutSeconds = 10

	// DefaultMaxFormSizeBytes caps POSTed form bodies (64 KB)
	DefaultMaxFormSizeBytes int64 = 64 * 1024
)

// Ad widget defaults
const (
	DefaultAdTemplate = "carousel"
	DefaultAdWidth    = 260
	DefaultAdHeight   = 300
)
