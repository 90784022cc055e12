package services

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/soilsync/vegbox-api/db"
	"github.com/soilsync/vegbox-api/helpers"
	"github.com/soilsync/vegbox-api/interfaces"
	"github.com/soilsync/vegbox-api/types/api/params"
	"github.com/soilsync/vegbox-api/types/api/responses"
)

// BillingWorker runs the scheduled billing maintenance: retrying failed
// payments, suspending subscriptions whose grace period lapsed, locking
// selections past their cutoff, and auditing the allocation ledger.
type BillingWorker struct {
	queries      db.Querier
	pool         *pgxpool.Pool
	retryService interfaces.BillingLifecycleService
	processor    interfaces.PaymentProcessor
	ledger       *AllocationLedger
	logger       *zap.Logger
}

// NewBillingWorker creates a new billing worker
func NewBillingWorker(queries db.Querier, pool *pgxpool.Pool, retryService interfaces.BillingLifecycleService, processor interfaces.PaymentProcessor, ledger *AllocationLedger, logger *zap.Logger) *BillingWorker {
	return &BillingWorker{
		queries:      queries,
		pool:         pool,
		retryService: retryService,
		processor:    processor,
		ledger:       ledger,
		logger:       logger,
	}
}

// ProcessDueRetries charges every subscription whose retry deadline has
// passed and records the outcome through the retry state machine. A failure
// on one subscription does not stop the others.
func (w *BillingWorker) ProcessDueRetries(ctx context.Context) (*responses.ProcessRetriesResult, error) {
	subscriptions, err := w.retryService.ListReadyForRetry(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list retry candidates: %w", err)
	}

	result := &responses.ProcessRetriesResult{ProcessedCount: len(subscriptions)}
	if len(subscriptions) == 0 {
		return result, nil
	}

	w.logger.Info("processing payment retries", zap.Int("count", len(subscriptions)))

	for _, subscription := range subscriptions {
		if subscription.Status == db.SubscriptionStatusCanceled || subscription.CanceledAt.Valid {
			result.SkippedCount++
			continue
		}

		if err := w.retrySubscription(ctx, subscription); err != nil {
			w.logger.Error("failed to process payment retry",
				zap.String("subscription_id", subscription.ID.String()),
				zap.Error(err))
			result.FailedCount++
			continue
		}
		result.SuccessfulCount++
	}

	w.logger.Info("completed payment retry run",
		zap.Int("processed", result.ProcessedCount),
		zap.Int("succeeded", result.SuccessfulCount),
		zap.Int("failed", result.FailedCount),
		zap.Int("skipped", result.SkippedCount))

	return result, nil
}

// retrySubscription charges one subscription and records the outcome.
func (w *BillingWorker) retrySubscription(ctx context.Context, subscription db.Subscription) error {
	charge, err := w.processor.ChargeSubscription(ctx, subscription)
	if err != nil {
		return fmt.Errorf("charge attempt failed: %w", err)
	}

	if charge.Success {
		if _, err := w.retryService.ResetRetryTracking(ctx, params.ResetRetryTrackingParams{
			SubscriptionID: subscription.ID,
			EventID:        charge.EventID,
		}); err != nil {
			return fmt.Errorf("failed to reset retry tracking: %w", err)
		}
		return nil
	}

	if _, err := w.retryService.RecordFailedPayment(ctx, params.RecordFailedPaymentParams{
		SubscriptionID: subscription.ID,
		EventID:        charge.EventID,
		ErrorMessage:   charge.ErrorMessage,
	}); err != nil {
		return fmt.Errorf("failed to record payment failure: %w", err)
	}
	return nil
}

// SuspendLapsedSubscriptions puts subscriptions with an expired grace period on hold.
func (w *BillingWorker) SuspendLapsedSubscriptions(ctx context.Context) (int, error) {
	return w.retryService.SuspendExpiredGracePeriods(ctx)
}

// LockSelectionsPastCutoff locks customer selections whose delivery date is
// within the cutoff window, closing them to further edits.
func (w *BillingWorker) LockSelectionsPastCutoff(ctx context.Context, cutoff time.Time) (int64, error) {
	locked, err := w.queries.LockCustomerBoxSelectionsDueBefore(ctx, helpers.TimeToNullableDate(cutoff))
	if err != nil {
		return 0, fmt.Errorf("failed to lock selections: %w", err)
	}
	if locked > 0 {
		w.logger.Info("locked box selections past cutoff",
			zap.Int64("count", locked),
			zap.Time("cutoff", cutoff))
	}
	return locked, nil
}

// AuditAllocations recomputes the allocation counters for every active
// configuration of the given week, repairing any drift between the stored
// counters and the underlying selections.
func (w *BillingWorker) AuditAllocations(ctx context.Context, weekStart time.Time) (int, error) {
	var audited int
	err := helpers.WithTransaction(ctx, w.pool, func(tx pgx.Tx) error {
		var auditErr error
		audited, auditErr = w.AuditAllocationsTx(ctx, db.New(tx), weekStart)
		return auditErr
	})
	if err != nil {
		return 0, err
	}
	return audited, nil
}

// AuditAllocationsTx runs the audit against the supplied queries. The repair
// holds each configuration's items locked until the caller's transaction
// ends, so the transaction should stay short.
func (w *BillingWorker) AuditAllocationsTx(ctx context.Context, q db.Querier, weekStart time.Time) (int, error) {
	configurations, err := q.ListActiveBoxConfigurationsForWeek(ctx, helpers.TimeToNullableDate(weekStart))
	if err != nil {
		return 0, fmt.Errorf("failed to list configurations for audit: %w", err)
	}

	audited := 0
	for _, configuration := range configurations {
		if err := w.ledger.Recompute(ctx, q, configuration.ID); err != nil {
			return audited, fmt.Errorf("failed to audit configuration %s: %w", configuration.ID, err)
		}
		audited++
	}
	return audited, nil
}
