package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/soilsync/vegbox-api/db"
	"github.com/soilsync/vegbox-api/helpers"
	"github.com/soilsync/vegbox-api/interfaces"
	"github.com/soilsync/vegbox-api/types/api/params"
	"github.com/soilsync/vegbox-api/types/api/responses"
)

// BoxSelectionService owns a customer's per-week token budget and chosen
// items, and orchestrates validated writes through the allocation ledger.
// Item replacement, token recomputation and ledger updates commit or roll
// back as one transaction.
type BoxSelectionService struct {
	pool    *pgxpool.Pool
	queries db.Querier
	ledger  *AllocationLedger
	logger  *zap.Logger
}

var _ interfaces.BoxCustomizationService = (*BoxSelectionService)(nil)

// NewBoxSelectionService creates a new box selection service
func NewBoxSelectionService(pool *pgxpool.Pool, queries db.Querier, ledger *AllocationLedger, logger *zap.Logger) *BoxSelectionService {
	return &BoxSelectionService{
		pool:    pool,
		queries: queries,
		ledger:  ledger,
		logger:  logger,
	}
}

// GetOrCreateSelection returns the selection identified by the
// (subscription, configuration, delivery date) triple, creating it with the
// configuration's default token budget on first access.
func (s *BoxSelectionService) GetOrCreateSelection(ctx context.Context, qtx db.Querier, arg params.GetOrCreateSelectionParams) (db.CustomerBoxSelection, error) {
	deliveryDate := helpers.TimeToNullableDate(arg.DeliveryDate)

	selection, err := qtx.GetCustomerBoxSelectionByTriple(ctx, db.GetCustomerBoxSelectionByTripleParams{
		SubscriptionID:     arg.SubscriptionID,
		BoxConfigurationID: arg.BoxConfigurationID,
		DeliveryDate:       deliveryDate,
	})
	if err == nil {
		return selection, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return db.CustomerBoxSelection{}, fmt.Errorf("failed to look up box selection: %w", err)
	}

	created, err := qtx.CreateCustomerBoxSelection(ctx, db.CreateCustomerBoxSelectionParams{
		SubscriptionID:     arg.SubscriptionID,
		BoxConfigurationID: arg.BoxConfigurationID,
		DeliveryDate:       deliveryDate,
		TokensAllocated:    arg.DefaultTokens,
	})
	if err != nil {
		// A concurrent first access may have created the row; fall back to it.
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			return qtx.GetCustomerBoxSelectionByTriple(ctx, db.GetCustomerBoxSelectionByTripleParams{
				SubscriptionID:     arg.SubscriptionID,
				BoxConfigurationID: arg.BoxConfigurationID,
				DeliveryDate:       deliveryDate,
			})
		}
		return db.CustomerBoxSelection{}, fmt.Errorf("failed to create box selection: %w", err)
	}

	s.logger.Info("created box selection",
		zap.String("subscription_id", arg.SubscriptionID.String()),
		zap.String("configuration_id", arg.BoxConfigurationID.String()),
		zap.Time("delivery_date", arg.DeliveryDate),
		zap.Int32("tokens_allocated", arg.DefaultTokens))

	return created, nil
}

// UpdateSelection atomically replaces a selection's items and settles the
// allocation ledger. Over-budget selections commit; the flag in the result
// is informational.
func (s *BoxSelectionService) UpdateSelection(ctx context.Context, arg params.UpdateCustomerBoxParams) (*responses.UpdateCustomerBoxResult, error) {
	var result *responses.UpdateCustomerBoxResult
	err := helpers.WithTransactionRetry(ctx, s.pool, 3, func(tx pgx.Tx) error {
		r, err := s.UpdateSelectionTx(ctx, db.New(tx), arg)
		if err != nil {
			return err
		}
		result = r
		return nil
	})
	if err != nil {
		// Surface the domain error without the transaction wrapper.
		for _, domainErr := range []error{ErrSelectionLocked, ErrSelectionNotFound, ErrSubscriptionNotFound, ErrConfigurationItemNotFound, ErrInsufficientQuantity} {
			if errors.Is(err, domainErr) {
				return nil, err
			}
		}
		s.logger.Error("failed to update box selection",
			zap.String("selection_id", arg.SelectionID.String()),
			zap.String("subscription_ref", arg.SubscriptionRef),
			zap.Error(err))
		return nil, err
	}
	return result, nil
}

// UpdateSelectionTx is the transaction-scoped body of UpdateSelection.
func (s *BoxSelectionService) UpdateSelectionTx(ctx context.Context, qtx db.Querier, arg params.UpdateCustomerBoxParams) (*responses.UpdateCustomerBoxResult, error) {
	subscription, err := helpers.ResolveSubscriptionRef(ctx, qtx, arg.SubscriptionRef)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrSubscriptionNotFound
		}
		return nil, fmt.Errorf("failed to resolve subscription: %w", err)
	}

	selection, err := qtx.GetCustomerBoxSelectionForSubscription(ctx, db.GetCustomerBoxSelectionForSubscriptionParams{
		ID:             arg.SelectionID,
		SubscriptionID: subscription.ID,
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrSelectionNotFound
		}
		return nil, fmt.Errorf("failed to get box selection: %w", err)
	}

	if selection.IsLocked {
		return nil, ErrSelectionLocked
	}

	// Existing lines release their reservations; new lines claim theirs.
	deltas := make(map[uuid.UUID]int32)
	existing, err := qtx.ListCustomerBoxItems(ctx, selection.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list existing box items: %w", err)
	}
	for _, item := range existing {
		deltas[item.BoxConfigurationItemID] -= item.Quantity
	}

	if err := qtx.DeleteCustomerBoxItems(ctx, selection.ID); err != nil {
		return nil, fmt.Errorf("failed to delete existing box items: %w", err)
	}

	var totalTokens int32
	for _, line := range arg.Items {
		configItem, err := qtx.GetBoxConfigurationItem(ctx, line.ConfigurationItemID)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return nil, fmt.Errorf("item %s: %w", line.ConfigurationItemID, ErrConfigurationItemNotFound)
			}
			return nil, fmt.Errorf("failed to get configuration item: %w", err)
		}
		if configItem.BoxConfigurationID != selection.BoxConfigurationID {
			return nil, fmt.Errorf("item %s belongs to another configuration: %w", line.ConfigurationItemID, ErrConfigurationItemNotFound)
		}

		if _, err := qtx.CreateCustomerBoxItem(ctx, db.CreateCustomerBoxItemParams{
			CustomerBoxSelectionID: selection.ID,
			BoxConfigurationItemID: configItem.ID,
			Quantity:               line.Quantity,
			TokensUsed:             configItem.TokenValue, // unit value snapshot
		}); err != nil {
			return nil, fmt.Errorf("failed to create box item: %w", err)
		}

		totalTokens += configItem.TokenValue * line.Quantity
		deltas[configItem.ID] += line.Quantity
	}

	updated, err := qtx.UpdateCustomerBoxSelectionTokens(ctx, db.UpdateCustomerBoxSelectionTokensParams{
		ID:           selection.ID,
		TokensUsed:   totalTokens,
		IsCustomized: true,
		CustomizedAt: helpers.TimeToNullableTimestamptz(time.Now()),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to update selection tokens: %w", err)
	}

	if err := s.ledger.Apply(ctx, qtx, deltas); err != nil {
		return nil, err
	}

	s.logger.Info("updated box selection",
		zap.String("selection_id", selection.ID.String()),
		zap.String("subscription_id", subscription.ID.String()),
		zap.Int("item_lines", len(arg.Items)),
		zap.Int32("tokens_used", totalTokens))

	return &responses.UpdateCustomerBoxResult{
		TokensUsed:      totalTokens,
		TokensRemaining: updated.TokensAllocated - totalTokens,
		IsOverBudget:    totalTokens > updated.TokensAllocated,
	}, nil
}

// ResetToDefault removes every customisation from a selection and releases
// its ledger reservations. Calling it on an already-default selection is a
// harmless no-op that yields the same zeroed state.
func (s *BoxSelectionService) ResetToDefault(ctx context.Context, arg params.ResetCustomerBoxParams) error {
	err := helpers.WithTransactionRetry(ctx, s.pool, 3, func(tx pgx.Tx) error {
		return s.ResetToDefaultTx(ctx, db.New(tx), arg)
	})
	if err != nil {
		for _, domainErr := range []error{ErrSelectionLocked, ErrSelectionNotFound, ErrSubscriptionNotFound} {
			if errors.Is(err, domainErr) {
				return err
			}
		}
		s.logger.Error("failed to reset box selection",
			zap.String("selection_id", arg.SelectionID.String()),
			zap.String("subscription_ref", arg.SubscriptionRef),
			zap.Error(err))
	}
	return err
}

// ResetToDefaultTx is the transaction-scoped body of ResetToDefault.
func (s *BoxSelectionService) ResetToDefaultTx(ctx context.Context, qtx db.Querier, arg params.ResetCustomerBoxParams) error {
	subscription, err := helpers.ResolveSubscriptionRef(ctx, qtx, arg.SubscriptionRef)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrSubscriptionNotFound
		}
		return fmt.Errorf("failed to resolve subscription: %w", err)
	}

	selection, err := qtx.GetCustomerBoxSelectionForSubscription(ctx, db.GetCustomerBoxSelectionForSubscriptionParams{
		ID:             arg.SelectionID,
		SubscriptionID: subscription.ID,
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrSelectionNotFound
		}
		return fmt.Errorf("failed to get box selection: %w", err)
	}

	if selection.IsLocked {
		return ErrSelectionLocked
	}

	deltas := make(map[uuid.UUID]int32)
	existing, err := qtx.ListCustomerBoxItems(ctx, selection.ID)
	if err != nil {
		return fmt.Errorf("failed to list existing box items: %w", err)
	}
	for _, item := range existing {
		deltas[item.BoxConfigurationItemID] -= item.Quantity
	}

	if err := qtx.DeleteCustomerBoxItems(ctx, selection.ID); err != nil {
		return fmt.Errorf("failed to delete box items: %w", err)
	}

	if _, err := qtx.ResetCustomerBoxSelection(ctx, selection.ID); err != nil {
		return fmt.Errorf("failed to reset selection: %w", err)
	}

	if err := s.ledger.Apply(ctx, qtx, deltas); err != nil {
		return err
	}

	s.logger.Info("reset box selection to default",
		zap.String("selection_id", selection.ID.String()),
		zap.String("subscription_id", subscription.ID.String()),
		zap.Int("released_lines", len(existing)))

	return nil
}

// GetCustomerBox returns a selection and its chosen items. Without an
// explicit selection id, the most recent unlocked upcoming selection is used.
func (s *BoxSelectionService) GetCustomerBox(ctx context.Context, arg params.GetCustomerBoxParams) (*responses.CustomerBoxResponse, error) {
	subscription, err := helpers.ResolveSubscriptionRef(ctx, s.queries, arg.SubscriptionRef)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrSubscriptionNotFound
		}
		return nil, fmt.Errorf("failed to resolve subscription: %w", err)
	}

	var selection db.CustomerBoxSelection
	if arg.SelectionID != nil {
		selection, err = s.queries.GetCustomerBoxSelectionForSubscription(ctx, db.GetCustomerBoxSelectionForSubscriptionParams{
			ID:             *arg.SelectionID,
			SubscriptionID: subscription.ID,
		})
	} else {
		selection, err = s.queries.GetLatestUpcomingCustomerBoxSelection(ctx, db.GetLatestUpcomingCustomerBoxSelectionParams{
			SubscriptionID: subscription.ID,
			DeliveryDate:   helpers.TimeToNullableDate(time.Now()),
		})
	}
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrSelectionNotFound
		}
		return nil, fmt.Errorf("failed to get box selection: %w", err)
	}

	rows, err := s.queries.ListCustomerBoxItemsWithDetails(ctx, selection.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list box items: %w", err)
	}

	items := make([]responses.SelectedItemResponse, 0, len(rows))
	for _, row := range rows {
		items = append(items, responses.SelectedItemResponse{
			ID:                  row.ID,
			ConfigurationItemID: row.BoxConfigurationItemID,
			Name:                row.ItemName,
			Quantity:            row.Quantity,
			TokenValue:          row.TokenValue,
			TokensUsed:          row.TokensUsed,
			Unit:                row.Unit.String,
		})
	}

	return &responses.CustomerBoxResponse{
		Selection: NewSelectionResponse(selection),
		Items:     items,
	}, nil
}

// GetTokenBalance returns the token position of the subscription's most
// recent unlocked upcoming selection.
func (s *BoxSelectionService) GetTokenBalance(ctx context.Context, subscriptionRef string) (*responses.TokenBalanceResponse, error) {
	subscription, err := helpers.ResolveSubscriptionRef(ctx, s.queries, subscriptionRef)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrSubscriptionNotFound
		}
		return nil, fmt.Errorf("failed to resolve subscription: %w", err)
	}

	selection, err := s.queries.GetLatestUpcomingCustomerBoxSelection(ctx, db.GetLatestUpcomingCustomerBoxSelectionParams{
		SubscriptionID: subscription.ID,
		DeliveryDate:   helpers.TimeToNullableDate(time.Now()),
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrSelectionNotFound
		}
		return nil, fmt.Errorf("failed to get box selection: %w", err)
	}

	plan, err := s.queries.GetVegboxPlan(ctx, subscription.PlanID)
	if err != nil {
		return nil, fmt.Errorf("failed to get plan: %w", err)
	}

	remaining := selection.TokensAllocated - selection.TokensUsed
	if remaining < 0 {
		remaining = 0
	}

	return &responses.TokenBalanceResponse{
		TokensAllocated: selection.TokensAllocated,
		TokensUsed:      selection.TokensUsed,
		TokensRemaining: remaining,
		PlanName:        plan.Name,
	}, nil
}

// NewSelectionResponse converts a selection row to its API representation.
func NewSelectionResponse(selection db.CustomerBoxSelection) responses.SelectionResponse {
	remaining := selection.TokensAllocated - selection.TokensUsed
	if remaining < 0 {
		remaining = 0
	}

	resp := responses.SelectionResponse{
		ID:              selection.ID,
		TokensAllocated: selection.TokensAllocated,
		TokensUsed:      selection.TokensUsed,
		TokensRemaining: remaining,
		IsCustomized:    selection.IsCustomized,
		IsLocked:        selection.IsLocked,
		IsEditable:      !selection.IsLocked && selection.DeliveryDate.Valid && selection.DeliveryDate.Time.After(time.Now()),
	}
	if selection.DeliveryDate.Valid {
		resp.DeliveryDate = selection.DeliveryDate.Time.Format("2006-01-02")
	}
	if selection.CustomizedAt.Valid {
		t := selection.CustomizedAt.Time
		resp.CustomizedAt = &t
	}
	return resp
}
