package payments_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/soilsync/vegbox-api/client/payments"
	"github.com/soilsync/vegbox-api/db"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *payments.Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return payments.NewClient(payments.Config{BaseURL: server.URL, APIKey: "test-key"}, zap.NewNop())
}

func TestClient_ChargeSubscription(t *testing.T) {
	subscription := db.Subscription{
		ID:            uuid.New(),
		ExternalID:    pgtype.Text{String: "wc-4821", Valid: true},
		CustomerEmail: pgtype.Text{String: "jo@example.com", Valid: true},
	}

	t.Run("successful charge", func(t *testing.T) {
		eventID := uuid.New()
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/v1/charges", r.URL.Path)
			assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

			var body map[string]any
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, subscription.ID.String(), body["subscription_id"])
			assert.Equal(t, "wc-4821", body["external_id"])
			assert.Equal(t, "jo@example.com", body["customer_email"])

			json.NewEncoder(w).Encode(map[string]string{
				"event_id": eventID.String(),
				"status":   "succeeded",
			})
		})

		result, err := client.ChargeSubscription(context.Background(), subscription)
		require.NoError(t, err)
		assert.True(t, result.Success)
		assert.Equal(t, eventID, result.EventID)
	})

	t.Run("decline comes back as an unsuccessful result", func(t *testing.T) {
		eventID := uuid.New()
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusPaymentRequired)
			json.NewEncoder(w).Encode(map[string]string{
				"event_id": eventID.String(),
				"status":   "declined",
				"error":    "card_declined",
			})
		})

		result, err := client.ChargeSubscription(context.Background(), subscription)
		require.NoError(t, err)
		assert.False(t, result.Success)
		assert.Equal(t, eventID, result.EventID)
		assert.Equal(t, "card_declined", result.ErrorMessage)
	})

	t.Run("gateway fault surfaces as an error", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
		})

		_, err := client.ChargeSubscription(context.Background(), subscription)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "charge request failed")
	})

	t.Run("invalid event id from the gateway", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			json.NewEncoder(w).Encode(map[string]string{
				"event_id": "not-a-uuid",
				"status":   "succeeded",
			})
		})

		_, err := client.ChargeSubscription(context.Background(), subscription)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid event id")
	})
}
