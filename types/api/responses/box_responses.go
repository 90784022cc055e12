package responses

import (
	"time"

	"github.com/google/uuid"
)

// ConfigurationResponse describes one week's box configuration.
type ConfigurationResponse struct {
	ID           uuid.UUID `json:"id"`
	WeekStarting string    `json:"week_starting"`
	WeekDisplay  string    `json:"week_display"`
}

// SelectionResponse describes a customer's selection state for one delivery.
type SelectionResponse struct {
	ID              uuid.UUID  `json:"id"`
	DeliveryDate    string     `json:"delivery_date"`
	TokensAllocated int32      `json:"tokens_allocated"`
	TokensUsed      int32      `json:"tokens_used"`
	TokensRemaining int32      `json:"tokens_remaining"`
	IsCustomized    bool       `json:"is_customized"`
	IsLocked        bool       `json:"is_locked"`
	IsEditable      bool       `json:"is_editable"`
	CustomizedAt    *time.Time `json:"customized_at,omitempty"`
}

// CatalogItemResponse is one catalog entry with derived availability figures.
type CatalogItemResponse struct {
	ID                uuid.UUID `json:"id"`
	Name              string    `json:"name"`
	Description       string    `json:"description,omitempty"`
	TokenValue        int32     `json:"token_value"`
	Unit              string    `json:"unit,omitempty"`
	IsFeatured        bool      `json:"is_featured"`
	IsAvailable       bool      `json:"is_available"`
	QuantityAvailable *int32    `json:"quantity_available"`
	QuantityAllocated int32     `json:"quantity_allocated"`
	RemainingQuantity *int32    `json:"remaining_quantity"`
	AllocationPercent float64   `json:"allocation_percent"`
}

// PlanResponse is the plan summary shown alongside the catalog.
type PlanResponse struct {
	ID      uuid.UUID `json:"id"`
	Name    string    `json:"name"`
	BoxSize string    `json:"box_size"`
}

// AvailableItemsResponse is the full weekly catalog payload for one subscription.
type AvailableItemsResponse struct {
	Configuration ConfigurationResponse `json:"configuration"`
	Selection     SelectionResponse     `json:"selection"`
	Items         []CatalogItemResponse `json:"items"`
	Plan          PlanResponse          `json:"plan"`
}

// SelectedItemResponse is one chosen line in a customer's box.
type SelectedItemResponse struct {
	ID                  uuid.UUID `json:"id"`
	ConfigurationItemID uuid.UUID `json:"configuration_item_id"`
	Name                string    `json:"name"`
	Quantity            int32     `json:"quantity"`
	TokenValue          int32     `json:"token_value"`
	TokensUsed          int32     `json:"tokens_used"`
	Unit                string    `json:"unit,omitempty"`
}

// CustomerBoxResponse is a selection together with its chosen items.
type CustomerBoxResponse struct {
	Selection SelectionResponse      `json:"selection"`
	Items     []SelectedItemResponse `json:"items"`
}

// UpdateCustomerBoxResult reports the token position after a selection write.
// IsOverBudget is informational; an over-budget selection still commits.
type UpdateCustomerBoxResult struct {
	TokensUsed      int32 `json:"tokens_used"`
	TokensRemaining int32 `json:"tokens_remaining"`
	IsOverBudget    bool  `json:"is_over_budget"`
}

// TokenBalanceResponse is the current token position for a subscription's
// upcoming selection.
type TokenBalanceResponse struct {
	TokensAllocated int32  `json:"tokens_allocated"`
	TokensUsed      int32  `json:"tokens_used"`
	TokensRemaining int32  `json:"tokens_remaining"`
	PlanName        string `json:"plan_name"`
}

// AllocationSummary aggregates capacity utilisation across a configuration.
type AllocationSummary struct {
	TotalItems         int64   `json:"total_items"`
	TotalAvailable     int64   `json:"total_available"`
	TotalAllocated     int64   `json:"total_allocated"`
	UtilizationPercent float64 `json:"utilization_percent"`
}
