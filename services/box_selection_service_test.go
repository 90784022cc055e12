package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
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

func newSelectionService() *services.BoxSelectionService {
	return services.NewBoxSelectionService(nil, nil, services.NewAllocationLedger(zap.NewNop()), zap.NewNop())
}

func TestBoxSelectionService_UpdateSelectionTx(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQuerier := mocks.NewMockQuerier(ctrl)
	service := newSelectionService()
	ctx := context.Background()

	subscriptionID := uuid.New()
	configurationID := uuid.New()
	selectionID := uuid.New()

	subscription := db.Subscription{ID: subscriptionID, Status: db.SubscriptionStatusActive}

	selection := db.CustomerBoxSelection{
		ID:                 selectionID,
		SubscriptionID:     subscriptionID,
		BoxConfigurationID: configurationID,
		TokensAllocated:    10,
	}

	carrots := db.BoxConfigurationItem{
		ID:                 uuid.New(),
		BoxConfigurationID: configurationID,
		ItemName:           "Carrots",
		TokenValue:         3,
	}

	expectLookup := func(sel db.CustomerBoxSelection) {
		mockQuerier.EXPECT().GetSubscription(ctx, subscriptionID).Return(subscription, nil)
		mockQuerier.EXPECT().GetCustomerBoxSelectionForSubscription(ctx, db.GetCustomerBoxSelectionForSubscriptionParams{
			ID:             selectionID,
			SubscriptionID: subscriptionID,
		}).Return(sel, nil)
	}

	t.Run("replaces items and charges unit token values", func(t *testing.T) {
		expectLookup(selection)

		previousItem := db.CustomerBoxItem{
			ID:                     uuid.New(),
			CustomerBoxSelectionID: selectionID,
			BoxConfigurationItemID: uuid.New(),
			Quantity:               1,
		}
		mockQuerier.EXPECT().ListCustomerBoxItems(ctx, selectionID).Return([]db.CustomerBoxItem{previousItem}, nil)
		mockQuerier.EXPECT().DeleteCustomerBoxItems(ctx, selectionID).Return(nil)

		mockQuerier.EXPECT().GetBoxConfigurationItem(ctx, carrots.ID).Return(carrots, nil)
		mockQuerier.EXPECT().CreateCustomerBoxItem(ctx, db.CreateCustomerBoxItemParams{
			CustomerBoxSelectionID: selectionID,
			BoxConfigurationItemID: carrots.ID,
			Quantity:               2,
			TokensUsed:             3,
		}).Return(db.CustomerBoxItem{}, nil)

		mockQuerier.EXPECT().UpdateCustomerBoxSelectionTokens(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, arg db.UpdateCustomerBoxSelectionTokensParams) (db.CustomerBoxSelection, error) {
				assert.Equal(t, selectionID, arg.ID)
				assert.Equal(t, int32(6), arg.TokensUsed)
				assert.True(t, arg.IsCustomized)
				updated := selection
				updated.TokensUsed = arg.TokensUsed
				updated.IsCustomized = true
				return updated, nil
			})

		// the dropped line releases its unit, the new line reserves two
		mockQuerier.EXPECT().ReleaseBoxConfigurationItemQuantity(ctx, db.ReleaseBoxConfigurationItemQuantityParams{
			ID:       previousItem.BoxConfigurationItemID,
			Quantity: 1,
		}).Return(db.BoxConfigurationItem{}, nil)
		mockQuerier.EXPECT().ReserveBoxConfigurationItemQuantity(ctx, db.ReserveBoxConfigurationItemQuantityParams{
			ID:       carrots.ID,
			Quantity: 2,
		}).Return(carrots, nil)

		result, err := service.UpdateSelectionTx(ctx, mockQuerier, params.UpdateCustomerBoxParams{
			SubscriptionRef: subscriptionID.String(),
			SelectionID:     selectionID,
			Items:           []params.BoxItemInput{{ConfigurationItemID: carrots.ID, Quantity: 2}},
		})
		require.NoError(t, err)
		assert.Equal(t, int32(6), result.TokensUsed)
		assert.Equal(t, int32(4), result.TokensRemaining)
		assert.False(t, result.IsOverBudget)
	})

	t.Run("over-budget selection commits with the flag set", func(t *testing.T) {
		small := selection
		small.TokensAllocated = 5

		expectLookup(small)
		mockQuerier.EXPECT().ListCustomerBoxItems(ctx, selectionID).Return(nil, nil)
		mockQuerier.EXPECT().DeleteCustomerBoxItems(ctx, selectionID).Return(nil)
		mockQuerier.EXPECT().GetBoxConfigurationItem(ctx, carrots.ID).Return(carrots, nil)
		mockQuerier.EXPECT().CreateCustomerBoxItem(ctx, gomock.Any()).Return(db.CustomerBoxItem{}, nil)
		mockQuerier.EXPECT().UpdateCustomerBoxSelectionTokens(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, arg db.UpdateCustomerBoxSelectionTokensParams) (db.CustomerBoxSelection, error) {
				updated := small
				updated.TokensUsed = arg.TokensUsed
				return updated, nil
			})
		mockQuerier.EXPECT().ReserveBoxConfigurationItemQuantity(ctx, gomock.Any()).Return(carrots, nil)

		result, err := service.UpdateSelectionTx(ctx, mockQuerier, params.UpdateCustomerBoxParams{
			SubscriptionRef: subscriptionID.String(),
			SelectionID:     selectionID,
			Items:           []params.BoxItemInput{{ConfigurationItemID: carrots.ID, Quantity: 2}},
		})
		require.NoError(t, err)
		assert.Equal(t, int32(6), result.TokensUsed)
		assert.Equal(t, int32(-1), result.TokensRemaining)
		assert.True(t, result.IsOverBudget)
	})

	t.Run("locked selection rejects edits before touching items", func(t *testing.T) {
		locked := selection
		locked.IsLocked = true
		expectLookup(locked)

		_, err := service.UpdateSelectionTx(ctx, mockQuerier, params.UpdateCustomerBoxParams{
			SubscriptionRef: subscriptionID.String(),
			SelectionID:     selectionID,
			Items:           []params.BoxItemInput{{ConfigurationItemID: carrots.ID, Quantity: 1}},
		})
		assert.ErrorIs(t, err, services.ErrSelectionLocked)
	})

	t.Run("item from another configuration is rejected", func(t *testing.T) {
		foreign := carrots
		foreign.ID = uuid.New()
		foreign.BoxConfigurationID = uuid.New()

		expectLookup(selection)
		mockQuerier.EXPECT().ListCustomerBoxItems(ctx, selectionID).Return(nil, nil)
		mockQuerier.EXPECT().DeleteCustomerBoxItems(ctx, selectionID).Return(nil)
		mockQuerier.EXPECT().GetBoxConfigurationItem(ctx, foreign.ID).Return(foreign, nil)

		_, err := service.UpdateSelectionTx(ctx, mockQuerier, params.UpdateCustomerBoxParams{
			SubscriptionRef: subscriptionID.String(),
			SelectionID:     selectionID,
			Items:           []params.BoxItemInput{{ConfigurationItemID: foreign.ID, Quantity: 1}},
		})
		assert.ErrorIs(t, err, services.ErrConfigurationItemNotFound)
	})

	t.Run("reservation past capacity rolls the update back", func(t *testing.T) {
		expectLookup(selection)
		mockQuerier.EXPECT().ListCustomerBoxItems(ctx, selectionID).Return(nil, nil)
		mockQuerier.EXPECT().DeleteCustomerBoxItems(ctx, selectionID).Return(nil)
		mockQuerier.EXPECT().GetBoxConfigurationItem(ctx, carrots.ID).Return(carrots, nil)
		mockQuerier.EXPECT().CreateCustomerBoxItem(ctx, gomock.Any()).Return(db.CustomerBoxItem{}, nil)
		mockQuerier.EXPECT().UpdateCustomerBoxSelectionTokens(ctx, gomock.Any()).Return(selection, nil)
		mockQuerier.EXPECT().ReserveBoxConfigurationItemQuantity(ctx, gomock.Any()).
			Return(db.BoxConfigurationItem{}, pgx.ErrNoRows)

		_, err := service.UpdateSelectionTx(ctx, mockQuerier, params.UpdateCustomerBoxParams{
			SubscriptionRef: subscriptionID.String(),
			SelectionID:     selectionID,
			Items:           []params.BoxItemInput{{ConfigurationItemID: carrots.ID, Quantity: 4}},
		})
		assert.ErrorIs(t, err, services.ErrInsufficientQuantity)
	})

	t.Run("unknown subscription", func(t *testing.T) {
		missing := uuid.New()
		mockQuerier.EXPECT().GetSubscription(ctx, missing).Return(db.Subscription{}, pgx.ErrNoRows)

		_, err := service.UpdateSelectionTx(ctx, mockQuerier, params.UpdateCustomerBoxParams{
			SubscriptionRef: missing.String(),
			SelectionID:     selectionID,
		})
		assert.ErrorIs(t, err, services.ErrSubscriptionNotFound)
	})
}

func TestBoxSelectionService_ResetToDefaultTx(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQuerier := mocks.NewMockQuerier(ctrl)
	service := newSelectionService()
	ctx := context.Background()

	subscriptionID := uuid.New()
	selectionID := uuid.New()
	subscription := db.Subscription{ID: subscriptionID}
	selection := db.CustomerBoxSelection{
		ID:             selectionID,
		SubscriptionID: subscriptionID,
	}

	t.Run("releases reservations and zeroes the selection", func(t *testing.T) {
		itemID := uuid.New()

		mockQuerier.EXPECT().GetSubscription(ctx, subscriptionID).Return(subscription, nil)
		mockQuerier.EXPECT().GetCustomerBoxSelectionForSubscription(ctx, gomock.Any()).Return(selection, nil)
		mockQuerier.EXPECT().ListCustomerBoxItems(ctx, selectionID).Return([]db.CustomerBoxItem{
			{BoxConfigurationItemID: itemID, Quantity: 2},
		}, nil)
		mockQuerier.EXPECT().DeleteCustomerBoxItems(ctx, selectionID).Return(nil)
		mockQuerier.EXPECT().ResetCustomerBoxSelection(ctx, selectionID).Return(selection, nil)
		mockQuerier.EXPECT().ReleaseBoxConfigurationItemQuantity(ctx, db.ReleaseBoxConfigurationItemQuantityParams{
			ID:       itemID,
			Quantity: 2,
		}).Return(db.BoxConfigurationItem{}, nil)

		require.NoError(t, service.ResetToDefaultTx(ctx, mockQuerier, params.ResetCustomerBoxParams{
			SubscriptionRef: subscriptionID.String(),
			SelectionID:     selectionID,
		}))
	})

	t.Run("resetting an already-default selection is a no-op on the ledger", func(t *testing.T) {
		mockQuerier.EXPECT().GetSubscription(ctx, subscriptionID).Return(subscription, nil)
		mockQuerier.EXPECT().GetCustomerBoxSelectionForSubscription(ctx, gomock.Any()).Return(selection, nil)
		mockQuerier.EXPECT().ListCustomerBoxItems(ctx, selectionID).Return(nil, nil)
		mockQuerier.EXPECT().DeleteCustomerBoxItems(ctx, selectionID).Return(nil)
		mockQuerier.EXPECT().ResetCustomerBoxSelection(ctx, selectionID).Return(selection, nil)

		require.NoError(t, service.ResetToDefaultTx(ctx, mockQuerier, params.ResetCustomerBoxParams{
			SubscriptionRef: subscriptionID.String(),
			SelectionID:     selectionID,
		}))
	})

	t.Run("locked selection cannot be reset", func(t *testing.T) {
		locked := selection
		locked.IsLocked = true

		mockQuerier.EXPECT().GetSubscription(ctx, subscriptionID).Return(subscription, nil)
		mockQuerier.EXPECT().GetCustomerBoxSelectionForSubscription(ctx, gomock.Any()).Return(locked, nil)

		err := service.ResetToDefaultTx(ctx, mockQuerier, params.ResetCustomerBoxParams{
			SubscriptionRef: subscriptionID.String(),
			SelectionID:     selectionID,
		})
		assert.ErrorIs(t, err, services.ErrSelectionLocked)
	})
}

func TestBoxSelectionService_GetOrCreateSelection(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQuerier := mocks.NewMockQuerier(ctrl)
	service := newSelectionService()
	ctx := context.Background()

	subscriptionID := uuid.New()
	configurationID := uuid.New()
	deliveryDate := time.Date(2025, 6, 12, 0, 0, 0, 0, time.UTC)

	arg := params.GetOrCreateSelectionParams{
		SubscriptionID:     subscriptionID,
		BoxConfigurationID: configurationID,
		DeliveryDate:       deliveryDate,
		DefaultTokens:      10,
	}

	tripleParams := db.GetCustomerBoxSelectionByTripleParams{
		SubscriptionID:     subscriptionID,
		BoxConfigurationID: configurationID,
		DeliveryDate:       helpers.TimeToNullableDate(deliveryDate),
	}

	existing := db.CustomerBoxSelection{
		ID:              uuid.New(),
		SubscriptionID:  subscriptionID,
		TokensAllocated: 10,
	}

	t.Run("returns the existing selection", func(t *testing.T) {
		mockQuerier.EXPECT().GetCustomerBoxSelectionByTriple(ctx, tripleParams).Return(existing, nil)

		selection, err := service.GetOrCreateSelection(ctx, mockQuerier, arg)
		require.NoError(t, err)
		assert.Equal(t, existing.ID, selection.ID)
	})

	t.Run("creates the selection with the default token budget", func(t *testing.T) {
		mockQuerier.EXPECT().GetCustomerBoxSelectionByTriple(ctx, tripleParams).Return(db.CustomerBoxSelection{}, pgx.ErrNoRows)
		mockQuerier.EXPECT().CreateCustomerBoxSelection(ctx, db.CreateCustomerBoxSelectionParams{
			SubscriptionID:     subscriptionID,
			BoxConfigurationID: configurationID,
			DeliveryDate:       helpers.TimeToNullableDate(deliveryDate),
			TokensAllocated:    10,
		}).Return(existing, nil)

		selection, err := service.GetOrCreateSelection(ctx, mockQuerier, arg)
		require.NoError(t, err)
		assert.Equal(t, int32(10), selection.TokensAllocated)
	})

	t.Run("a concurrent create wins and its row is returned", func(t *testing.T) {
		mockQuerier.EXPECT().GetCustomerBoxSelectionByTriple(ctx, tripleParams).Return(db.CustomerBoxSelection{}, pgx.ErrNoRows)
		mockQuerier.EXPECT().CreateCustomerBoxSelection(ctx, gomock.Any()).
			Return(db.CustomerBoxSelection{}, &pgconn.PgError{Code: "23505"})
		mockQuerier.EXPECT().GetCustomerBoxSelectionByTriple(ctx, tripleParams).Return(existing, nil)

		selection, err := service.GetOrCreateSelection(ctx, mockQuerier, arg)
		require.NoError(t, err)
		assert.Equal(t, existing.ID, selection.ID)
	})
}

func TestBoxSelectionService_GetTokenBalance(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQuerier := mocks.NewMockQuerier(ctrl)
	service := services.NewBoxSelectionService(nil, mockQuerier, services.NewAllocationLedger(zap.NewNop()), zap.NewNop())
	ctx := context.Background()

	subscriptionID := uuid.New()
	planID := uuid.New()
	subscription := db.Subscription{ID: subscriptionID, PlanID: planID}

	t.Run("reports the current token position", func(t *testing.T) {
		mockQuerier.EXPECT().GetSubscription(ctx, subscriptionID).Return(subscription, nil)
		mockQuerier.EXPECT().GetLatestUpcomingCustomerBoxSelection(ctx, gomock.Any()).Return(db.CustomerBoxSelection{
			TokensAllocated: 10,
			TokensUsed:      6,
		}, nil)
		mockQuerier.EXPECT().GetVegboxPlan(ctx, planID).Return(db.VegboxPlan{Name: "Family Box"}, nil)

		balance, err := service.GetTokenBalance(ctx, subscriptionID.String())
		require.NoError(t, err)
		assert.Equal(t, int32(4), balance.TokensRemaining)
		assert.Equal(t, "Family Box", balance.PlanName)
	})

	t.Run("over-spent balance is floored at zero", func(t *testing.T) {
		mockQuerier.EXPECT().GetSubscription(ctx, subscriptionID).Return(subscription, nil)
		mockQuerier.EXPECT().GetLatestUpcomingCustomerBoxSelection(ctx, gomock.Any()).Return(db.CustomerBoxSelection{
			TokensAllocated: 10,
			TokensUsed:      12,
		}, nil)
		mockQuerier.EXPECT().GetVegboxPlan(ctx, planID).Return(db.VegboxPlan{Name: "Family Box"}, nil)

		balance, err := service.GetTokenBalance(ctx, subscriptionID.String())
		require.NoError(t, err)
		assert.Equal(t, int32(0), balance.TokensRemaining)
	})

	t.Run("no upcoming selection", func(t *testing.T) {
		mockQuerier.EXPECT().GetSubscription(ctx, subscriptionID).Return(subscription, nil)
		mockQuerier.EXPECT().GetLatestUpcomingCustomerBoxSelection(ctx, gomock.Any()).
			Return(db.CustomerBoxSelection{}, pgx.ErrNoRows)

		_, err := service.GetTokenBalance(ctx, subscriptionID.String())
		assert.ErrorIs(t, err, services.ErrSelectionNotFound)
	})
}
