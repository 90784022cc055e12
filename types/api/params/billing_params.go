package params

import "github.com/google/uuid"

// RecordFailedPaymentParams records one failed charge attempt against a
// subscription. EventID is the billing event's idempotency key; redelivery
// of the same event is a no-op.
type RecordFailedPaymentParams struct {
	SubscriptionID uuid.UUID
	EventID        uuid.UUID
	ErrorMessage   string
}

// ResetRetryTrackingParams clears retry state after a successful charge.
type ResetRetryTrackingParams struct {
	SubscriptionID uuid.UUID
	EventID        uuid.UUID
}
