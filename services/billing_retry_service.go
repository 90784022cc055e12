package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/soilsync/vegbox-api/db"
	"github.com/soilsync/vegbox-api/helpers"
	"github.com/soilsync/vegbox-api/interfaces"
	"github.com/soilsync/vegbox-api/types/api/params"
)

// BillingRetryConfig controls payment-failure backoff and the grace window.
// A config is injected per instance so tests and environments can override
// the schedule without touching process-wide state.
type BillingRetryConfig struct {
	// MaxRetryAttempts is the failure count at which a subscription is put on hold.
	MaxRetryAttempts int32
	// RetryDelaysDays indexes retry delay by failure count; the last entry
	// repeats for attempts beyond the list length.
	RetryDelaysDays []int
	// GracePeriodDays is the window opened by the first failure. Once set it
	// is never extended by later failures.
	GracePeriodDays int
}

// DefaultBillingRetryConfig returns the production retry schedule.
func DefaultBillingRetryConfig() BillingRetryConfig {
	return BillingRetryConfig{
		MaxRetryAttempts: 3,
		RetryDelaysDays:  []int{2, 4, 6},
		GracePeriodDays:  7,
	}
}

// BillingRetryService tracks payment failures, computes retry and grace
// deadlines, and transitions subscription billing status.
type BillingRetryService struct {
	queries db.Querier
	logger  *zap.Logger
	config  BillingRetryConfig
}

var _ interfaces.BillingLifecycleService = (*BillingRetryService)(nil)

// NewBillingRetryService creates a new billing retry service
func NewBillingRetryService(queries db.Querier, logger *zap.Logger, config BillingRetryConfig) *BillingRetryService {
	if len(config.RetryDelaysDays) == 0 {
		config = DefaultBillingRetryConfig()
	}
	return &BillingRetryService{
		queries: queries,
		logger:  logger,
		config:  config,
	}
}

// retryDelayDays returns the delay for the given (post-increment) failure count.
func (s *BillingRetryService) retryDelayDays(failedPaymentCount int32) int {
	idx := int(failedPaymentCount)
	if idx > len(s.config.RetryDelaysDays)-1 {
		idx = len(s.config.RetryDelaysDays) - 1
	}
	return s.config.RetryDelaysDays[idx]
}

// RecordFailedPayment records one failed charge attempt. Duplicate delivery
// of the same billing event (matched on EventID) leaves the subscription
// untouched. The status only flips to on-hold once the failure count reaches
// the retry ceiling; the grace window is opened by the first failure and
// never moved afterwards.
func (s *BillingRetryService) RecordFailedPayment(ctx context.Context, arg params.RecordFailedPaymentParams) (*db.Subscription, error) {
	subscription, err := s.queries.GetSubscription(ctx, arg.SubscriptionID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrSubscriptionNotFound
		}
		return nil, fmt.Errorf("failed to get subscription: %w", err)
	}

	if subscription.LastPaymentEventID.Valid && uuid.UUID(subscription.LastPaymentEventID.Bytes) == arg.EventID {
		s.logger.Info("duplicate payment failure event, skipping",
			zap.String("subscription_id", arg.SubscriptionID.String()),
			zap.String("event_id", arg.EventID.String()))
		return &subscription, nil
	}

	now := time.Now()
	newCount := subscription.FailedPaymentCount + 1
	nextRetryAt := now.AddDate(0, 0, s.retryDelayDays(newCount))

	newStatus := subscription.Status
	if newCount >= s.config.MaxRetryAttempts {
		newStatus = db.SubscriptionStatusOnHold
	}

	// The grace deadline paired with grace_period_ends_at's COALESCE: the
	// value below only lands when no grace window is open yet.
	graceEnd := now.AddDate(0, 0, s.config.GracePeriodDays)

	updated, err := s.queries.RecordSubscriptionPaymentFailure(ctx, db.RecordSubscriptionPaymentFailureParams{
		ID:                   arg.SubscriptionID,
		FailedPaymentCount:   newCount,
		LastPaymentAttemptAt: helpers.TimeToNullableTimestamptz(now),
		LastPaymentError:     helpers.StringToNullableText(arg.ErrorMessage),
		NextRetryAt:          helpers.TimeToNullableTimestamptz(nextRetryAt),
		GracePeriodEndsAt:    helpers.TimeToNullableTimestamptz(graceEnd),
		Status:               newStatus,
		LastPaymentEventID:   helpers.UUIDToNullableUUID(arg.EventID),
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// The event-id guard filtered the row: another worker already
			// applied this event between our read and write.
			s.logger.Info("payment failure event already applied",
				zap.String("subscription_id", arg.SubscriptionID.String()),
				zap.String("event_id", arg.EventID.String()))
			return &subscription, nil
		}
		return nil, fmt.Errorf("failed to record payment failure: %w", err)
	}

	s.logger.Warn("recorded failed payment",
		zap.String("subscription_id", arg.SubscriptionID.String()),
		zap.Int32("failed_payment_count", updated.FailedPaymentCount),
		zap.Time("next_retry_at", nextRetryAt),
		zap.String("status", string(updated.Status)),
		zap.String("error", arg.ErrorMessage))

	return &updated, nil
}

// ResetRetryTracking clears all retry state after a successful charge and
// reactivates the subscription. Safe to call repeatedly.
func (s *BillingRetryService) ResetRetryTracking(ctx context.Context, arg params.ResetRetryTrackingParams) (*db.Subscription, error) {
	updated, err := s.queries.ResetSubscriptionRetryTracking(ctx, db.ResetSubscriptionRetryTrackingParams{
		ID:                   arg.SubscriptionID,
		LastPaymentAttemptAt: helpers.TimeToNullableTimestamptz(time.Now()),
		LastPaymentEventID:   helpers.UUIDToNullableUUID(arg.EventID),
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// Duplicate success event; fetch current state for the caller.
			current, getErr := s.queries.GetSubscription(ctx, arg.SubscriptionID)
			if getErr != nil {
				if errors.Is(getErr, pgx.ErrNoRows) {
					return nil, ErrSubscriptionNotFound
				}
				return nil, fmt.Errorf("failed to get subscription: %w", getErr)
			}
			return &current, nil
		}
		return nil, fmt.Errorf("failed to reset retry tracking: %w", err)
	}

	s.logger.Info("reset retry tracking",
		zap.String("subscription_id", arg.SubscriptionID.String()))

	return &updated, nil
}

// IsReadyForRetry reports whether a retry is due as of now. Retry timing and
// the grace window are independent axes; neither implies the other.
func (s *BillingRetryService) IsReadyForRetry(subscription db.Subscription, now time.Time) bool {
	return subscription.NextRetryAt.Valid && subscription.NextRetryAt.Time.Before(now)
}

// HasExceededMaxRetries reports whether the failure count reached the ceiling.
func (s *BillingRetryService) HasExceededMaxRetries(subscription db.Subscription) bool {
	return subscription.FailedPaymentCount >= s.config.MaxRetryAttempts
}

// IsInGracePeriod reports whether an open grace window extends past now.
func (s *BillingRetryService) IsInGracePeriod(subscription db.Subscription, now time.Time) bool {
	return subscription.GracePeriodEndsAt.Valid && subscription.GracePeriodEndsAt.Time.After(now)
}

// IsGracePeriodExpired reports whether a grace window was opened and has passed.
func (s *BillingRetryService) IsGracePeriodExpired(subscription db.Subscription, now time.Time) bool {
	return subscription.GracePeriodEndsAt.Valid && !subscription.GracePeriodEndsAt.Time.After(now)
}

// ListReadyForRetry returns non-canceled subscriptions whose retry deadline
// has passed and whose failure count is still below the ceiling.
func (s *BillingRetryService) ListReadyForRetry(ctx context.Context) ([]db.Subscription, error) {
	subscriptions, err := s.queries.ListSubscriptionsReadyForRetry(ctx, db.ListSubscriptionsReadyForRetryParams{
		NextRetryAt:        helpers.TimeToNullableTimestamptz(time.Now()),
		FailedPaymentCount: s.config.MaxRetryAttempts,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list subscriptions ready for retry: %w", err)
	}
	return subscriptions, nil
}

// SuspendExpiredGracePeriods puts every subscription with an expired grace
// window on hold and returns the number of subscriptions transitioned.
func (s *BillingRetryService) SuspendExpiredGracePeriods(ctx context.Context) (int, error) {
	expired, err := s.queries.ListSubscriptionsWithExpiredGracePeriod(ctx, helpers.TimeToNullableTimestamptz(time.Now()))
	if err != nil {
		return 0, fmt.Errorf("failed to list expired grace periods: %w", err)
	}

	suspended := 0
	for _, subscription := range expired {
		if subscription.Status != db.SubscriptionStatusActive {
			continue
		}
		if _, err := s.queries.UpdateSubscriptionStatus(ctx, db.UpdateSubscriptionStatusParams{
			ID:     subscription.ID,
			Status: db.SubscriptionStatusOnHold,
		}); err != nil {
			s.logger.Error("failed to suspend subscription with expired grace period",
				zap.String("subscription_id", subscription.ID.String()),
				zap.Error(err))
			continue
		}
		suspended++
		s.logger.Warn("suspended subscription after grace period expiry",
			zap.String("subscription_id", subscription.ID.String()),
			zap.Time("grace_period_ended_at", subscription.GracePeriodEndsAt.Time))
	}

	return suspended, nil
}
