package services

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/soilsync/vegbox-api/constants"
	"github.com/soilsync/vegbox-api/db"
	"github.com/soilsync/vegbox-api/helpers"
	"github.com/soilsync/vegbox-api/interfaces"
	"github.com/soilsync/vegbox-api/types/api/params"
	"github.com/soilsync/vegbox-api/types/api/responses"
)

// BoxCatalogService is the read model over one plan's weekly item menu:
// items, per-item capacity, and derived availability figures.
type BoxCatalogService struct {
	queries          db.Querier
	selectionService *BoxSelectionService
	logger           *zap.Logger
}

var _ interfaces.BoxCatalogReader = (*BoxCatalogService)(nil)

// NewBoxCatalogService creates a new box catalog service
func NewBoxCatalogService(queries db.Querier, selectionService *BoxSelectionService, logger *zap.Logger) *BoxCatalogService {
	return &BoxCatalogService{
		queries:          queries,
		selectionService: selectionService,
		logger:           logger,
	}
}

// IsAvailable reports whether an item can still be selected. Items without a
// capacity limit are always available.
func IsAvailable(item db.BoxConfigurationItem) bool {
	if !item.QuantityAvailable.Valid {
		return true
	}
	return item.QuantityAllocated < item.QuantityAvailable.Int32
}

// RemainingQuantity returns how many units are left, or nil for unlimited items.
func RemainingQuantity(item db.BoxConfigurationItem) *int32 {
	if !item.QuantityAvailable.Valid {
		return nil
	}
	remaining := item.QuantityAvailable.Int32 - item.QuantityAllocated
	if remaining < 0 {
		remaining = 0
	}
	return &remaining
}

// AllocationPercent returns the claimed share of an item's capacity, rounded
// to one decimal place. Unlimited or zero-capacity items report 0.
func AllocationPercent(item db.BoxConfigurationItem) float64 {
	if !item.QuantityAvailable.Valid || item.QuantityAvailable.Int32 == 0 {
		return 0
	}
	percent := float64(item.QuantityAllocated) / float64(item.QuantityAvailable.Int32) * 100
	return math.Round(percent*10) / 10
}

// ListAvailable returns a configuration's selectable items in presentation
// order: sort_order ascending, ties broken alphabetically by item name.
func (s *BoxCatalogService) ListAvailable(ctx context.Context, configurationID uuid.UUID) ([]db.BoxConfigurationItem, error) {
	items, err := s.queries.ListAvailableBoxConfigurationItems(ctx, configurationID)
	if err != nil {
		return nil, fmt.Errorf("failed to list available items: %w", err)
	}
	return items, nil
}

// GetAvailableItems resolves the active configuration for the subscription's
// plan and week, lazily creates the customer's selection, and returns the
// catalog with derived availability figures.
func (s *BoxCatalogService) GetAvailableItems(ctx context.Context, arg params.GetAvailableItemsParams) (*responses.AvailableItemsResponse, error) {
	subscription, err := helpers.ResolveSubscriptionRef(ctx, s.queries, arg.SubscriptionRef)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrSubscriptionNotFound
		}
		return nil, fmt.Errorf("failed to resolve subscription: %w", err)
	}

	weekStart := helpers.StartOfWeek(time.Now())
	if arg.Week != nil {
		weekStart = helpers.StartOfWeek(*arg.Week)
	}

	configuration, err := s.queries.GetActiveBoxConfigurationForWeek(ctx, db.GetActiveBoxConfigurationForWeekParams{
		PlanID:       subscription.PlanID,
		WeekStarting: helpers.TimeToNullableDate(weekStart),
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("plan %s week %s: %w",
				subscription.PlanID, weekStart.Format("2006-01-02"), ErrNoActiveConfiguration)
		}
		return nil, fmt.Errorf("failed to get box configuration: %w", err)
	}

	plan, err := s.queries.GetVegboxPlan(ctx, subscription.PlanID)
	if err != nil {
		return nil, fmt.Errorf("failed to get plan: %w", err)
	}

	// Selections without a scheduled delivery default to mid-week.
	deliveryDate := weekStart.AddDate(0, 0, constants.DefaultDeliveryOffsetDays)
	if subscription.NextDeliveryDate.Valid {
		deliveryDate = subscription.NextDeliveryDate.Time
	}

	selection, err := s.selectionService.GetOrCreateSelection(ctx, s.queries, params.GetOrCreateSelectionParams{
		SubscriptionID:     subscription.ID,
		BoxConfigurationID: configuration.ID,
		DeliveryDate:       deliveryDate,
		DefaultTokens:      configuration.DefaultTokens,
	})
	if err != nil {
		return nil, err
	}

	items, err := s.ListAvailable(ctx, configuration.ID)
	if err != nil {
		return nil, err
	}

	catalogItems := make([]responses.CatalogItemResponse, 0, len(items))
	for _, item := range items {
		entry := responses.CatalogItemResponse{
			ID:                item.ID,
			Name:              item.ItemName,
			Description:       item.Description.String,
			TokenValue:        item.TokenValue,
			Unit:              item.Unit.String,
			IsFeatured:        item.IsFeatured,
			IsAvailable:       IsAvailable(item),
			QuantityAllocated: item.QuantityAllocated,
			RemainingQuantity: RemainingQuantity(item),
			AllocationPercent: AllocationPercent(item),
		}
		if item.QuantityAvailable.Valid {
			available := item.QuantityAvailable.Int32
			entry.QuantityAvailable = &available
		}
		catalogItems = append(catalogItems, entry)
	}

	return &responses.AvailableItemsResponse{
		Configuration: responses.ConfigurationResponse{
			ID:           configuration.ID,
			WeekStarting: configuration.WeekStarting.Time.Format("2006-01-02"),
			WeekDisplay:  "Week of " + configuration.WeekStarting.Time.Format("02 Jan 2006"),
		},
		Selection: NewSelectionResponse(selection),
		Items:     catalogItems,
		Plan: responses.PlanResponse{
			ID:      plan.ID,
			Name:    plan.Name,
			BoxSize: plan.BoxSize,
		},
	}, nil
}

// AllocationSummary aggregates capacity utilisation across a configuration's items.
func (s *BoxCatalogService) AllocationSummary(ctx context.Context, configurationID uuid.UUID) (*responses.AllocationSummary, error) {
	row, err := s.queries.GetBoxConfigurationAllocationSummary(ctx, configurationID)
	if err != nil {
		return nil, fmt.Errorf("failed to get allocation summary: %w", err)
	}

	summary := &responses.AllocationSummary{
		TotalItems:     row.TotalItems,
		TotalAvailable: row.TotalAvailable,
		TotalAllocated: row.TotalAllocated,
	}
	if row.TotalAvailable > 0 {
		percent := float64(row.TotalAllocated) / float64(row.TotalAvailable) * 100
		summary.UtilizationPercent = math.Round(percent*10) / 10
	}
	return summary, nil
}
