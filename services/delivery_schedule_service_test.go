package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"github.com/soilsync/vegbox-api/constants"
	"github.com/soilsync/vegbox-api/db"
	"github.com/soilsync/vegbox-api/helpers"
	"github.com/soilsync/vegbox-api/mocks"
	"github.com/soilsync/vegbox-api/services"
)

func TestDeliveryScheduleService_NextDeliveryDate(t *testing.T) {
	service := services.NewDeliveryScheduleService(nil, zap.NewNop())

	// Monday 2025-06-09
	from := time.Date(2025, 6, 9, 10, 30, 0, 0, time.UTC)

	weeklyPlan := &db.VegboxPlan{DeliveryFrequency: constants.FrequencyWeekly}
	biWeeklyPlan := &db.VegboxPlan{DeliveryFrequency: constants.FrequencyBiWeekly}

	subscription := func(day string) db.Subscription {
		return db.Subscription{
			ID:          uuid.New(),
			DeliveryDay: pgtype.Text{String: day, Valid: true},
		}
	}

	t.Run("weekly delivery lands on the next matching weekday", func(t *testing.T) {
		next := service.NextDeliveryDate(subscription("thursday"), weeklyPlan, from)
		require.NotNil(t, next)
		assert.Equal(t, time.Date(2025, 6, 12, 0, 0, 0, 0, time.UTC), *next)
	})

	t.Run("today counts when the weekday matches", func(t *testing.T) {
		next := service.NextDeliveryDate(subscription("monday"), weeklyPlan, from)
		require.NotNil(t, next)
		assert.Equal(t, time.Date(2025, 6, 9, 0, 0, 0, 0, time.UTC), *next)
	})

	t.Run("bi-weekly skips off weeks based on the start date", func(t *testing.T) {
		sub := subscription("thursday")
		// started Monday 2025-06-02, so the week of June 9 is week 1 (off week)
		sub.StartsAt = pgtype.Timestamptz{Time: time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC), Valid: true}

		next := service.NextDeliveryDate(sub, biWeeklyPlan, from)
		require.NotNil(t, next)
		assert.Equal(t, time.Date(2025, 6, 19, 0, 0, 0, 0, time.UTC), *next)
	})

	t.Run("bi-weekly delivers on even weeks since start", func(t *testing.T) {
		sub := subscription("thursday")
		sub.StartsAt = pgtype.Timestamptz{Time: time.Date(2025, 5, 26, 0, 0, 0, 0, time.UTC), Valid: true}

		next := service.NextDeliveryDate(sub, biWeeklyPlan, from)
		require.NotNil(t, next)
		assert.Equal(t, time.Date(2025, 6, 12, 0, 0, 0, 0, time.UTC), *next)
	})

	t.Run("paused subscription has no next delivery", func(t *testing.T) {
		sub := subscription("thursday")
		sub.PauseUntil = pgtype.Timestamptz{Time: from.AddDate(0, 0, 14), Valid: true}

		assert.Nil(t, service.NextDeliveryDate(sub, weeklyPlan, from))
	})

	t.Run("expired pause no longer blocks scheduling", func(t *testing.T) {
		sub := subscription("thursday")
		sub.PauseUntil = pgtype.Timestamptz{Time: from.AddDate(0, 0, -1), Valid: true}

		next := service.NextDeliveryDate(sub, weeklyPlan, from)
		require.NotNil(t, next)
		assert.Equal(t, time.Date(2025, 6, 12, 0, 0, 0, 0, time.UTC), *next)
	})

	t.Run("missing delivery day clears the schedule", func(t *testing.T) {
		assert.Nil(t, service.NextDeliveryDate(db.Subscription{ID: uuid.New()}, weeklyPlan, from))
	})

	t.Run("unknown weekday clears the schedule", func(t *testing.T) {
		assert.Nil(t, service.NextDeliveryDate(subscription("someday"), weeklyPlan, from))
	})

	t.Run("missing plan clears the schedule", func(t *testing.T) {
		assert.Nil(t, service.NextDeliveryDate(subscription("thursday"), nil, from))
	})
}

func TestDeliveryScheduleService_Recalculate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQuerier := mocks.NewMockQuerier(ctrl)
	service := services.NewDeliveryScheduleService(mockQuerier, zap.NewNop())
	ctx := context.Background()

	planID := uuid.New()
	subscription := db.Subscription{
		ID:          uuid.New(),
		PlanID:      planID,
		DeliveryDay: pgtype.Text{String: "friday", Valid: true},
	}

	t.Run("persists the computed date", func(t *testing.T) {
		mockQuerier.EXPECT().GetVegboxPlan(ctx, planID).Return(db.VegboxPlan{
			ID:                planID,
			DeliveryFrequency: constants.FrequencyWeekly,
		}, nil)
		mockQuerier.EXPECT().UpdateSubscriptionNextDeliveryDate(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, arg db.UpdateSubscriptionNextDeliveryDateParams) (db.Subscription, error) {
				assert.Equal(t, subscription.ID, arg.ID)
				require.True(t, arg.NextDeliveryDate.Valid)
				assert.Equal(t, time.Friday, arg.NextDeliveryDate.Time.Weekday())
				return subscription, nil
			})

		next, err := service.Recalculate(ctx, subscription)
		require.NoError(t, err)
		require.NotNil(t, next)
	})

	t.Run("clears the stored date for a paused subscription", func(t *testing.T) {
		paused := subscription
		paused.PauseUntil = pgtype.Timestamptz{Time: time.Now().AddDate(0, 1, 0), Valid: true}

		mockQuerier.EXPECT().GetVegboxPlan(ctx, planID).Return(db.VegboxPlan{
			ID:                planID,
			DeliveryFrequency: constants.FrequencyWeekly,
		}, nil)
		mockQuerier.EXPECT().UpdateSubscriptionNextDeliveryDate(ctx, db.UpdateSubscriptionNextDeliveryDateParams{
			ID:               paused.ID,
			NextDeliveryDate: pgtype.Date{},
		}).Return(paused, nil)

		next, err := service.Recalculate(ctx, paused)
		require.NoError(t, err)
		assert.Nil(t, next)
	})

	t.Run("update failure surfaces", func(t *testing.T) {
		mockQuerier.EXPECT().GetVegboxPlan(ctx, planID).Return(db.VegboxPlan{ID: planID}, nil)
		mockQuerier.EXPECT().UpdateSubscriptionNextDeliveryDate(ctx, gomock.Any()).
			Return(db.Subscription{}, errors.New(errMsgDatabaseError))

		_, err := service.Recalculate(ctx, subscription)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to update next delivery date")
	})
}

func TestDeliveryScheduleService_PauseAndResume(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQuerier := mocks.NewMockQuerier(ctrl)
	service := services.NewDeliveryScheduleService(mockQuerier, zap.NewNop())
	ctx := context.Background()

	planID := uuid.New()
	subscriptionID := uuid.New()
	until := time.Now().AddDate(0, 0, 21)

	paused := db.Subscription{
		ID:          subscriptionID,
		PlanID:      planID,
		DeliveryDay: pgtype.Text{String: "friday", Valid: true},
		PauseUntil:  helpers.TimeToNullableTimestamptz(until),
	}

	t.Run("pause stores the date and clears the schedule", func(t *testing.T) {
		mockQuerier.EXPECT().UpdateSubscriptionPauseUntil(ctx, db.UpdateSubscriptionPauseUntilParams{
			ID:         subscriptionID,
			PauseUntil: helpers.TimeToNullableTimestamptz(until),
		}).Return(paused, nil)
		mockQuerier.EXPECT().GetVegboxPlan(ctx, planID).Return(db.VegboxPlan{
			ID:                planID,
			DeliveryFrequency: constants.FrequencyWeekly,
		}, nil)
		mockQuerier.EXPECT().UpdateSubscriptionNextDeliveryDate(ctx, db.UpdateSubscriptionNextDeliveryDateParams{
			ID:               subscriptionID,
			NextDeliveryDate: pgtype.Date{},
		}).Return(paused, nil)

		updated, err := service.PauseUntil(ctx, subscriptionID, until)
		require.NoError(t, err)
		assert.True(t, updated.PauseUntil.Valid)
	})

	t.Run("resume clears the pause and reschedules", func(t *testing.T) {
		resumed := paused
		resumed.PauseUntil = pgtype.Timestamptz{}

		mockQuerier.EXPECT().UpdateSubscriptionPauseUntil(ctx, db.UpdateSubscriptionPauseUntilParams{
			ID:         subscriptionID,
			PauseUntil: pgtype.Timestamptz{},
		}).Return(resumed, nil)
		mockQuerier.EXPECT().GetVegboxPlan(ctx, planID).Return(db.VegboxPlan{
			ID:                planID,
			DeliveryFrequency: constants.FrequencyWeekly,
		}, nil)
		mockQuerier.EXPECT().UpdateSubscriptionNextDeliveryDate(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, arg db.UpdateSubscriptionNextDeliveryDateParams) (db.Subscription, error) {
				assert.True(t, arg.NextDeliveryDate.Valid)
				return resumed, nil
			})

		updated, err := service.Resume(ctx, subscriptionID)
		require.NoError(t, err)
		assert.False(t, updated.PauseUntil.Valid)
	})
}

func TestDeliveryScheduleService_RecordDelivery(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQuerier := mocks.NewMockQuerier(ctrl)
	service := services.NewDeliveryScheduleService(mockQuerier, zap.NewNop())
	ctx := context.Background()

	planID := uuid.New()
	subscriptionID := uuid.New()
	delivered := db.Subscription{
		ID:              subscriptionID,
		PlanID:          planID,
		DeliveryDay:     pgtype.Text{String: "friday", Valid: true},
		TotalDeliveries: 5,
	}

	mockQuerier.EXPECT().IncrementSubscriptionDeliveries(ctx, subscriptionID).Return(delivered, nil)
	mockQuerier.EXPECT().GetVegboxPlan(ctx, planID).Return(db.VegboxPlan{
		ID:                planID,
		DeliveryFrequency: constants.FrequencyWeekly,
	}, nil)
	mockQuerier.EXPECT().UpdateSubscriptionNextDeliveryDate(ctx, gomock.Any()).Return(delivered, nil)

	updated, err := service.RecordDelivery(ctx, subscriptionID, time.Now())
	require.NoError(t, err)
	assert.Equal(t, int32(5), updated.TotalDeliveries)
}
