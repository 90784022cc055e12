package services

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/soilsync/vegbox-api/db"
)

// AllocationLedger maintains the invariant that each catalog item's allocated
// quantity never exceeds its available quantity, across all customer
// selections. Writes go through atomic per-item increments rather than a
// read-aggregate-then-overwrite, so two concurrent selections contending for
// the same item cannot both commit past capacity.
type AllocationLedger struct {
	logger *zap.Logger
}

// NewAllocationLedger creates a new allocation ledger
func NewAllocationLedger(logger *zap.Logger) *AllocationLedger {
	return &AllocationLedger{logger: logger}
}

// Apply applies a set of per-item quantity deltas within the caller's
// transaction. Items are processed in a stable id order so concurrent
// transactions acquire row locks in the same sequence. A positive delta that
// would exceed an item's capacity fails with ErrInsufficientQuantity and the
// caller's transaction must roll back.
func (l *AllocationLedger) Apply(ctx context.Context, qtx db.Querier, deltas map[uuid.UUID]int32) error {
	ids := make([]uuid.UUID, 0, len(deltas))
	for id, delta := range deltas {
		if delta == 0 {
			continue
		}
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		return bytes.Compare(ids[i][:], ids[j][:]) < 0
	})

	for _, id := range ids {
		delta := deltas[id]
		if delta > 0 {
			if _, err := qtx.ReserveBoxConfigurationItemQuantity(ctx, db.ReserveBoxConfigurationItemQuantityParams{
				ID:       id,
				Quantity: delta,
			}); err != nil {
				if errors.Is(err, pgx.ErrNoRows) {
					// The conditional update matched nothing: either the item
					// vanished or the reservation would exceed capacity.
					return fmt.Errorf("configuration item %s: %w", id, ErrInsufficientQuantity)
				}
				return fmt.Errorf("failed to reserve quantity for item %s: %w", id, err)
			}
		} else {
			if _, err := qtx.ReleaseBoxConfigurationItemQuantity(ctx, db.ReleaseBoxConfigurationItemQuantityParams{
				ID:       id,
				Quantity: -delta,
			}); err != nil {
				if errors.Is(err, pgx.ErrNoRows) {
					return fmt.Errorf("configuration item %s: %w", id, ErrConfigurationItemNotFound)
				}
				return fmt.Errorf("failed to release quantity for item %s: %w", id, err)
			}
		}
	}

	return nil
}

// Recompute rebuilds quantity_allocated for every item in a configuration
// from the customer box item rows that reference it. This is the repair and
// audit path; routine writes go through Apply. The caller's transaction holds
// the items locked for the duration so a concurrent Apply cannot interleave.
func (l *AllocationLedger) Recompute(ctx context.Context, qtx db.Querier, configurationID uuid.UUID) error {
	items, err := qtx.ListBoxConfigurationItemsForUpdate(ctx, configurationID)
	if err != nil {
		return fmt.Errorf("failed to lock configuration items: %w", err)
	}

	for _, item := range items {
		allocated, err := qtx.SumAllocatedQuantityForConfigurationItem(ctx, item.ID)
		if err != nil {
			return fmt.Errorf("failed to sum allocation for item %s: %w", item.ID, err)
		}

		if int64(item.QuantityAllocated) == allocated {
			continue
		}

		l.logger.Warn("allocation drift detected, repairing",
			zap.String("configuration_id", configurationID.String()),
			zap.String("item_id", item.ID.String()),
			zap.Int32("stored", item.QuantityAllocated),
			zap.Int64("actual", allocated))

		if err := qtx.UpdateBoxConfigurationItemAllocation(ctx, db.UpdateBoxConfigurationItemAllocationParams{
			ID:                item.ID,
			QuantityAllocated: int32(allocated),
		}); err != nil {
			return fmt.Errorf("failed to update allocation for item %s: %w", item.ID, err)
		}
	}

	return nil
}
