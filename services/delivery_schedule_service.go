package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"go.uber.org/zap"

	"github.com/soilsync/vegbox-api/constants"
	"github.com/soilsync/vegbox-api/db"
	"github.com/soilsync/vegbox-api/helpers"
	"github.com/soilsync/vegbox-api/interfaces"
)

// DeliveryScheduleService computes and persists a subscription's next
// delivery date from its weekday preference, pause state and plan frequency.
type DeliveryScheduleService struct {
	queries db.Querier
	logger  *zap.Logger
}

var _ interfaces.DeliveryScheduleManager = (*DeliveryScheduleService)(nil)

// NewDeliveryScheduleService creates a new delivery schedule service
func NewDeliveryScheduleService(queries db.Querier, logger *zap.Logger) *DeliveryScheduleService {
	return &DeliveryScheduleService{
		queries: queries,
		logger:  logger,
	}
}

// NextDeliveryDate computes the next delivery date for a subscription as of
// the given reference time. Returns nil when the subscription is paused past
// the reference time, or when delivery day or plan frequency is not
// configured (misconfiguration clears the schedule rather than erroring).
func (s *DeliveryScheduleService) NextDeliveryDate(subscription db.Subscription, plan *db.VegboxPlan, from time.Time) *time.Time {
	if subscription.PauseUntil.Valid && subscription.PauseUntil.Time.After(from) {
		return nil
	}

	if !subscription.DeliveryDay.Valid || plan == nil {
		return nil
	}

	deliveryDay, err := helpers.ParseWeekday(subscription.DeliveryDay.String)
	if err != nil {
		s.logger.Warn("subscription has an unrecognised delivery day",
			zap.String("subscription_id", subscription.ID.String()),
			zap.String("delivery_day", subscription.DeliveryDay.String))
		return nil
	}

	// Earliest date >= today matching the delivery weekday; today counts.
	candidate := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
	for candidate.Weekday() != deliveryDay {
		candidate = candidate.AddDate(0, 0, 1)
	}

	if plan.DeliveryFrequency == constants.FrequencyBiWeekly && subscription.StartsAt.Valid {
		weeksSinceStart := helpers.WeeksBetween(subscription.StartsAt.Time, candidate)
		if weeksSinceStart%2 != 0 {
			candidate = candidate.AddDate(0, 0, 7)
		}
	}

	return &candidate
}

// Recalculate recomputes and persists the subscription's next delivery date.
// Returns the new date, or nil when the schedule was cleared.
func (s *DeliveryScheduleService) Recalculate(ctx context.Context, subscription db.Subscription) (*time.Time, error) {
	var plan *db.VegboxPlan
	p, err := s.queries.GetVegboxPlan(ctx, subscription.PlanID)
	if err == nil {
		plan = &p
	}

	next := s.NextDeliveryDate(subscription, plan, time.Now())

	nextDate := pgtype.Date{}
	if next != nil {
		nextDate = helpers.TimeToNullableDate(*next)
	}

	if _, err := s.queries.UpdateSubscriptionNextDeliveryDate(ctx, db.UpdateSubscriptionNextDeliveryDateParams{
		ID:               subscription.ID,
		NextDeliveryDate: nextDate,
	}); err != nil {
		return nil, fmt.Errorf("failed to update next delivery date: %w", err)
	}

	if next == nil {
		s.logger.Info("cleared next delivery date",
			zap.String("subscription_id", subscription.ID.String()),
			zap.Bool("paused", subscription.PauseUntil.Valid))
	}

	return next, nil
}

// PauseUntil pauses deliveries until the given date and recalculates the schedule.
func (s *DeliveryScheduleService) PauseUntil(ctx context.Context, subscriptionID uuid.UUID, until time.Time) (*db.Subscription, error) {
	subscription, err := s.queries.UpdateSubscriptionPauseUntil(ctx, db.UpdateSubscriptionPauseUntilParams{
		ID:         subscriptionID,
		PauseUntil: helpers.TimeToNullableTimestamptz(until),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to pause subscription: %w", err)
	}

	if _, err := s.Recalculate(ctx, subscription); err != nil {
		return nil, err
	}

	s.logger.Info("paused subscription",
		zap.String("subscription_id", subscriptionID.String()),
		zap.Time("pause_until", until))

	return &subscription, nil
}

// Resume clears the pause and recalculates the schedule.
func (s *DeliveryScheduleService) Resume(ctx context.Context, subscriptionID uuid.UUID) (*db.Subscription, error) {
	subscription, err := s.queries.UpdateSubscriptionPauseUntil(ctx, db.UpdateSubscriptionPauseUntilParams{
		ID:         subscriptionID,
		PauseUntil: pgtype.Timestamptz{},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to resume subscription: %w", err)
	}

	if _, err := s.Recalculate(ctx, subscription); err != nil {
		return nil, err
	}

	s.logger.Info("resumed subscription",
		zap.String("subscription_id", subscriptionID.String()))

	return &subscription, nil
}

// RecordDelivery increments the delivery counter and recalculates the schedule.
func (s *DeliveryScheduleService) RecordDelivery(ctx context.Context, subscriptionID uuid.UUID, date time.Time) (*db.Subscription, error) {
	subscription, err := s.queries.IncrementSubscriptionDeliveries(ctx, subscriptionID)
	if err != nil {
		return nil, fmt.Errorf("failed to record delivery: %w", err)
	}

	if _, err := s.Recalculate(ctx, subscription); err != nil {
		return nil, err
	}

	s.logger.Info("recorded delivery",
		zap.String("subscription_id", subscriptionID.String()),
		zap.Time("delivered_at", date),
		zap.Int32("total_deliveries", subscription.TotalDeliveries))

	return &subscription, nil
}
