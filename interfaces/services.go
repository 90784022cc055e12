package interfaces

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/soilsync/vegbox-api/db"
	"github.com/soilsync/vegbox-api/types/api/params"
	"github.com/soilsync/vegbox-api/types/api/responses"
)

// BoxCatalogReader is the read side of weekly box customization consumed by
// the customer-facing HTTP layer.
type BoxCatalogReader interface {
	GetAvailableItems(ctx context.Context, arg params.GetAvailableItemsParams) (*responses.AvailableItemsResponse, error)
	AllocationSummary(ctx context.Context, configurationID uuid.UUID) (*responses.AllocationSummary, error)
}

// BoxCustomizationService is the write side of weekly box customization.
type BoxCustomizationService interface {
	GetCustomerBox(ctx context.Context, arg params.GetCustomerBoxParams) (*responses.CustomerBoxResponse, error)
	UpdateSelection(ctx context.Context, arg params.UpdateCustomerBoxParams) (*responses.UpdateCustomerBoxResult, error)
	ResetToDefault(ctx context.Context, arg params.ResetCustomerBoxParams) error
	GetTokenBalance(ctx context.Context, subscriptionRef string) (*responses.TokenBalanceResponse, error)
}

// BillingLifecycleService is the contract consumed by the billing scheduler job.
type BillingLifecycleService interface {
	RecordFailedPayment(ctx context.Context, arg params.RecordFailedPaymentParams) (*db.Subscription, error)
	ResetRetryTracking(ctx context.Context, arg params.ResetRetryTrackingParams) (*db.Subscription, error)
	ListReadyForRetry(ctx context.Context) ([]db.Subscription, error)
	SuspendExpiredGracePeriods(ctx context.Context) (int, error)
}

// DeliveryScheduleManager is the contract consumed by subscription management.
type DeliveryScheduleManager interface {
	Recalculate(ctx context.Context, subscription db.Subscription) (*time.Time, error)
	PauseUntil(ctx context.Context, subscriptionID uuid.UUID, until time.Time) (*db.Subscription, error)
	Resume(ctx context.Context, subscriptionID uuid.UUID) (*db.Subscription, error)
	RecordDelivery(ctx context.Context, subscriptionID uuid.UUID, date time.Time) (*db.Subscription, error)
}

// PaymentProcessor charges a subscription through the external payment
// gateway. Gateway wire formats live entirely behind this interface.
type PaymentProcessor interface {
	ChargeSubscription(ctx context.Context, subscription db.Subscription) (*ChargeResult, error)
}

// ChargeResult is the gateway-neutral outcome of one charge attempt.
type ChargeResult struct {
	EventID      uuid.UUID
	Success      bool
	ErrorMessage string
}
