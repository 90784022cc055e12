package helpers

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/soilsync/vegbox-api/db"
)

// ResolveSubscriptionRef looks up a subscription by either its internal UUID
// or the external (WooCommerce) subscription id carried by migrated customers.
func ResolveSubscriptionRef(ctx context.Context, queries db.Querier, ref string) (db.Subscription, error) {
	if id, err := uuid.Parse(ref); err == nil {
		return queries.GetSubscription(ctx, id)
	}
	return queries.GetSubscriptionByExternalID(ctx, pgtype.Text{String: ref, Valid: true})
}
