package constants

const (
	AppName = "octopus"

	// MinorUnitDigits is the number of fractional digits in a major unit (cents).
	MinorUnitDigits = 2

	MaxAccountLen   = 64
	DefaultCurrency = "USD"
	DefaultLogLevel = "warn"

	// MemoryDatabase keeps the journal in process memory.
	MemoryDatabase = ":memory:"

	DefaultHistoryLimit = 50
	DateTimeFormat      = "2006-01-02 15:04:05"
)
