package params

import (
	"time"

	"github.com/google/uuid"
)

// BoxItemInput is a single requested line in a customer's box selection.
// Quantity is validated (positive, capped) by the HTTP layer before it
// reaches the service.
type BoxItemInput struct {
	ConfigurationItemID uuid.UUID `json:"configuration_item_id"`
	Quantity            int32     `json:"quantity"`
}

// UpdateCustomerBoxParams carries a full replacement of a selection's items.
type UpdateCustomerBoxParams struct {
	SubscriptionRef string
	SelectionID     uuid.UUID
	Items           []BoxItemInput
}

// ResetCustomerBoxParams identifies the selection to reset to its default contents.
type ResetCustomerBoxParams struct {
	SubscriptionRef string
	SelectionID     uuid.UUID
}

// GetAvailableItemsParams requests the weekly catalog for a subscription.
// Week defaults to the start of the current week when nil.
type GetAvailableItemsParams struct {
	SubscriptionRef string
	Week            *time.Time
}

// GetCustomerBoxParams fetches a selection; when SelectionID is nil the most
// recent unlocked upcoming selection is returned.
type GetCustomerBoxParams struct {
	SubscriptionRef string
	SelectionID     *uuid.UUID
}

// GetOrCreateSelectionParams identifies the unique selection triple and the
// defaults applied on lazy creation.
type GetOrCreateSelectionParams struct {
	SubscriptionID     uuid.UUID
	BoxConfigurationID uuid.UUID
	DeliveryDate       time.Time
	DefaultTokens      int32
}
