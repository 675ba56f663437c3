// Package constants provides shared constants for the home-budget application.
package constants

// Financial constants
const (
	// MonthsPerYear is the number of months in a year
	MonthsPerYear = 12

	// DecimalPrecision is the precision for currency rounding (2 decimal places)
	DecimalPrecision = 100

	// PercentageMultiplier is used for percentage conversions
	PercentageMultiplier = 100.0

	// CurrencyTolerance is the tolerance for currency comparisons (1 cent)
	CurrencyTolerance = 0.01
)

// Amortization simulation constants
const (
	// MaxSimulationMonths caps amortization simulations at 50 years. A
	// result reporting exactly this many months signals possible
	// non-convergence (payment does not cover interest).
	MaxSimulationMonths = 600

	// PayoffEpsilon is the remaining balance below which a loan counts as
	// paid off; it prevents infinite floating-point tail iterations.
	PayoffEpsilon = 0.01
)

// Spending insight constants
const (
	// CoffeeMinCount is the minimum number of matching transactions
	// before coffee spend is reported as a pattern
	CoffeeMinCount = 3

	// DeliveryMinCount is the minimum number of matching transactions
	// before food-delivery spend is reported as a pattern
	DeliveryMinCount = 2

	// RestaurantMinCount is the minimum number of matching transactions
	// before restaurant spend is reported as a pattern
	RestaurantMinCount = 2

	// CoffeeSavingFraction is the assumed avoidable share of coffee spend
	CoffeeSavingFraction = 0.70

	// DeliverySavingFraction is the assumed avoidable share of delivery spend
	DeliverySavingFraction = 0.60

	// RestaurantSavingFraction is the assumed avoidable share of restaurant spend
	RestaurantSavingFraction = 0.50

	// LargePurchaseThreshold flags any single expense above this amount
	LargePurchaseThreshold = 300.0

	// AIConfidenceThreshold is the minimum confidence for an AI-suggested
	// category to take precedence over the mapped category
	AIConfidenceThreshold = 0.5

	// CategoryBreakdownLimit is the number of top categories reported
	CategoryBreakdownLimit = 6
)

// Baby step constants
const (
	// StarterEmergencyFundTarget is the fixed target for the first step
	StarterEmergencyFundTarget = 1000.0

	// FullEmergencyFundMonths is the expense coverage target for the full
	// emergency fund step
	FullEmergencyFundMonths = 6
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

	// DefaultRateLimitRequests is the default per-client request budget
	DefaultRateLimitRequests = 30

	// DefaultRateLimitWindowSeconds is the default refill window for the
	// request budget
	DefaultRateLimitWindowSeconds = 60

	// DefaultCacheTTLSeconds is the default insights-cache entry lifetime
	DefaultCacheTTLSeconds = 300
)

// Validation constants
const (
	// MaxAnnualInterestRate is the highest annual rate accepted as sane input
	MaxAnnualInterestRate = 1000.0
)
