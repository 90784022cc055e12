package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"github.com/soilsync/vegbox-api/db"
	"github.com/soilsync/vegbox-api/helpers"
	"github.com/soilsync/vegbox-api/mocks"
	"github.com/soilsync/vegbox-api/services"
	"github.com/soilsync/vegbox-api/types/api/params"
)

const errMsgDatabaseError = "database error"

func newRetryService(querier db.Querier) *services.BillingRetryService {
	return services.NewBillingRetryService(querier, zap.NewNop(), services.DefaultBillingRetryConfig())
}

func TestBillingRetryService_RecordFailedPayment(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQuerier := mocks.NewMockQuerier(ctrl)
	service := newRetryService(mockQuerier)
	ctx := context.Background()

	subscriptionID := uuid.New()
	eventID := uuid.New()

	activeSubscription := db.Subscription{
		ID:                 subscriptionID,
		Status:             db.SubscriptionStatusActive,
		FailedPaymentCount: 0,
	}

	tests := []struct {
		name        string
		setupMocks  func()
		wantErr     error
		wantCount   int32
		wantStatus  db.SubscriptionStatus
	}{
		{
			name: "first failure schedules retry and keeps subscription active",
			setupMocks: func() {
				mockQuerier.EXPECT().GetSubscription(ctx, subscriptionID).Return(activeSubscription, nil)
				mockQuerier.EXPECT().RecordSubscriptionPaymentFailure(ctx, gomock.Any()).DoAndReturn(
					func(_ context.Context, arg db.RecordSubscriptionPaymentFailureParams) (db.Subscription, error) {
						assert.Equal(t, int32(1), arg.FailedPaymentCount)
						assert.Equal(t, db.SubscriptionStatusActive, arg.Status)
						require.True(t, arg.NextRetryAt.Valid)
						// second entry of the delay schedule applies to the first failure
						assert.WithinDuration(t, time.Now().AddDate(0, 0, 4), arg.NextRetryAt.Time, time.Minute)
						require.True(t, arg.GracePeriodEndsAt.Valid)
						assert.WithinDuration(t, time.Now().AddDate(0, 0, 7), arg.GracePeriodEndsAt.Time, time.Minute)

						updated := activeSubscription
						updated.FailedPaymentCount = arg.FailedPaymentCount
						updated.Status = arg.Status
						return updated, nil
					})
			},
			wantCount:  1,
			wantStatus: db.SubscriptionStatusActive,
		},
		{
			name: "third failure puts subscription on hold with the longest delay",
			setupMocks: func() {
				twiceFailed := activeSubscription
				twiceFailed.FailedPaymentCount = 2
				mockQuerier.EXPECT().GetSubscription(ctx, subscriptionID).Return(twiceFailed, nil)
				mockQuerier.EXPECT().RecordSubscriptionPaymentFailure(ctx, gomock.Any()).DoAndReturn(
					func(_ context.Context, arg db.RecordSubscriptionPaymentFailureParams) (db.Subscription, error) {
						assert.Equal(t, int32(3), arg.FailedPaymentCount)
						assert.Equal(t, db.SubscriptionStatusOnHold, arg.Status)
						assert.WithinDuration(t, time.Now().AddDate(0, 0, 6), arg.NextRetryAt.Time, time.Minute)

						updated := twiceFailed
						updated.FailedPaymentCount = arg.FailedPaymentCount
						updated.Status = arg.Status
						return updated, nil
					})
			},
			wantCount:  3,
			wantStatus: db.SubscriptionStatusOnHold,
		},
		{
			name: "same event delivered twice leaves subscription untouched",
			setupMocks: func() {
				alreadyApplied := activeSubscription
				alreadyApplied.FailedPaymentCount = 1
				alreadyApplied.LastPaymentEventID = helpers.UUIDToNullableUUID(eventID)
				mockQuerier.EXPECT().GetSubscription(ctx, subscriptionID).Return(alreadyApplied, nil)
			},
			wantCount:  1,
			wantStatus: db.SubscriptionStatusActive,
		},
		{
			name: "concurrent duplicate filtered by the event guard",
			setupMocks: func() {
				mockQuerier.EXPECT().GetSubscription(ctx, subscriptionID).Return(activeSubscription, nil)
				mockQuerier.EXPECT().RecordSubscriptionPaymentFailure(ctx, gomock.Any()).Return(db.Subscription{}, pgx.ErrNoRows)
			},
			wantCount:  0,
			wantStatus: db.SubscriptionStatusActive,
		},
		{
			name: "subscription not found",
			setupMocks: func() {
				mockQuerier.EXPECT().GetSubscription(ctx, subscriptionID).Return(db.Subscription{}, pgx.ErrNoRows)
			},
			wantErr: services.ErrSubscriptionNotFound,
		},
		{
			name: "database error recording failure",
			setupMocks: func() {
				mockQuerier.EXPECT().GetSubscription(ctx, subscriptionID).Return(activeSubscription, nil)
				mockQuerier.EXPECT().RecordSubscriptionPaymentFailure(ctx, gomock.Any()).Return(db.Subscription{}, errors.New(errMsgDatabaseError))
			},
			wantErr: errors.New("failed to record payment failure: " + errMsgDatabaseError),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMocks()

			updated, err := service.RecordFailedPayment(ctx, params.RecordFailedPaymentParams{
				SubscriptionID: subscriptionID,
				EventID:        eventID,
				ErrorMessage:   "card_declined",
			})

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr.Error())
				return
			}
			require.NoError(t, err)
			require.NotNil(t, updated)
			assert.Equal(t, tt.wantCount, updated.FailedPaymentCount)
			assert.Equal(t, tt.wantStatus, updated.Status)
		})
	}
}

func TestBillingRetryService_ResetRetryTracking(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQuerier := mocks.NewMockQuerier(ctrl)
	service := newRetryService(mockQuerier)
	ctx := context.Background()

	subscriptionID := uuid.New()
	eventID := uuid.New()

	reactivated := db.Subscription{
		ID:     subscriptionID,
		Status: db.SubscriptionStatusActive,
	}

	t.Run("clears retry state after a successful charge", func(t *testing.T) {
		mockQuerier.EXPECT().ResetSubscriptionRetryTracking(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, arg db.ResetSubscriptionRetryTrackingParams) (db.Subscription, error) {
				assert.Equal(t, subscriptionID, arg.ID)
				assert.Equal(t, helpers.UUIDToNullableUUID(eventID), arg.LastPaymentEventID)
				return reactivated, nil
			})

		updated, err := service.ResetRetryTracking(ctx, params.ResetRetryTrackingParams{
			SubscriptionID: subscriptionID,
			EventID:        eventID,
		})
		require.NoError(t, err)
		assert.Equal(t, db.SubscriptionStatusActive, updated.Status)
	})

	t.Run("duplicate success event returns current state", func(t *testing.T) {
		mockQuerier.EXPECT().ResetSubscriptionRetryTracking(ctx, gomock.Any()).Return(db.Subscription{}, pgx.ErrNoRows)
		mockQuerier.EXPECT().GetSubscription(ctx, subscriptionID).Return(reactivated, nil)

		updated, err := service.ResetRetryTracking(ctx, params.ResetRetryTrackingParams{
			SubscriptionID: subscriptionID,
			EventID:        eventID,
		})
		require.NoError(t, err)
		assert.Equal(t, subscriptionID, updated.ID)
	})

	t.Run("database error", func(t *testing.T) {
		mockQuerier.EXPECT().ResetSubscriptionRetryTracking(ctx, gomock.Any()).Return(db.Subscription{}, errors.New(errMsgDatabaseError))

		_, err := service.ResetRetryTracking(ctx, params.ResetRetryTrackingParams{
			SubscriptionID: subscriptionID,
			EventID:        eventID,
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to reset retry tracking")
	})
}

func TestBillingRetryService_Predicates(t *testing.T) {
	service := newRetryService(nil)
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	pastRetry := db.Subscription{NextRetryAt: pgtype.Timestamptz{Time: now.Add(-time.Hour), Valid: true}}
	futureRetry := db.Subscription{NextRetryAt: pgtype.Timestamptz{Time: now.Add(time.Hour), Valid: true}}

	assert.True(t, service.IsReadyForRetry(pastRetry, now))
	assert.False(t, service.IsReadyForRetry(futureRetry, now))
	assert.False(t, service.IsReadyForRetry(db.Subscription{}, now), "no retry scheduled")

	openGrace := db.Subscription{GracePeriodEndsAt: pgtype.Timestamptz{Time: now.Add(48 * time.Hour), Valid: true}}
	closedGrace := db.Subscription{GracePeriodEndsAt: pgtype.Timestamptz{Time: now.Add(-time.Hour), Valid: true}}

	assert.True(t, service.IsInGracePeriod(openGrace, now))
	assert.False(t, service.IsInGracePeriod(closedGrace, now))
	assert.False(t, service.IsInGracePeriod(db.Subscription{}, now), "no grace window opened")

	assert.True(t, service.IsGracePeriodExpired(closedGrace, now))
	assert.False(t, service.IsGracePeriodExpired(openGrace, now))
	assert.False(t, service.IsGracePeriodExpired(db.Subscription{}, now))

	assert.True(t, service.HasExceededMaxRetries(db.Subscription{FailedPaymentCount: 3}))
	assert.False(t, service.HasExceededMaxRetries(db.Subscription{FailedPaymentCount: 2}))
}

func TestBillingRetryService_SuspendExpiredGracePeriods(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQuerier := mocks.NewMockQuerier(ctrl)
	service := newRetryService(mockQuerier)
	ctx := context.Background()

	active := db.Subscription{
		ID:                uuid.New(),
		Status:            db.SubscriptionStatusActive,
		GracePeriodEndsAt: pgtype.Timestamptz{Time: time.Now().Add(-time.Hour), Valid: true},
	}
	alreadyOnHold := db.Subscription{
		ID:     uuid.New(),
		Status: db.SubscriptionStatusOnHold,
	}
	failing := db.Subscription{
		ID:                uuid.New(),
		Status:            db.SubscriptionStatusActive,
		GracePeriodEndsAt: pgtype.Timestamptz{Time: time.Now().Add(-time.Hour), Valid: true},
	}

	mockQuerier.EXPECT().ListSubscriptionsWithExpiredGracePeriod(ctx, gomock.Any()).
		Return([]db.Subscription{active, alreadyOnHold, failing}, nil)
	mockQuerier.EXPECT().UpdateSubscriptionStatus(ctx, db.UpdateSubscriptionStatusParams{
		ID:     active.ID,
		Status: db.SubscriptionStatusOnHold,
	}).Return(active, nil)
	mockQuerier.EXPECT().UpdateSubscriptionStatus(ctx, db.UpdateSubscriptionStatusParams{
		ID:     failing.ID,
		Status: db.SubscriptionStatusOnHold,
	}).Return(db.Subscription{}, errors.New(errMsgDatabaseError))

	suspended, err := service.SuspendExpiredGracePeriods(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, suspended, "non-active rows are skipped and failures do not count")
}
