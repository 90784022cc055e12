package constants

// Common string constants used throughout the codebase
const (
	// Log levels
	ErrorLevel = "error"

	// Environments
	ProdEnvironment = "prod"

	// Delivery frequencies
	FrequencyWeekly   = "weekly"
	FrequencyBiWeekly = "bi-weekly"

	// Billing periods
	BillingPeriodWeek = "week"

	// Fulfillment
	DefaultDeliveryOffsetDays = 3 // lazily created selections default to Thursday of the week

	// Box customization limits (enforced by the HTTP validation layer)
	MaxItemQuantityPerLine = 10
)
