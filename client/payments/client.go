package payments

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	httpclient "github.com/soilsync/vegbox-api/client/http"
	"github.com/soilsync/vegbox-api/db"
	"github.com/soilsync/vegbox-api/interfaces"
)

// Client charges subscriptions through the payment gateway's REST API. A
// declined card comes back as a successful ChargeSubscription call with
// Success=false; only transport and gateway faults surface as errors.
type Client struct {
	http   *httpclient.HTTPClient
	logger *zap.Logger
}

// Config holds the gateway connection settings
type Config struct {
	BaseURL string
	APIKey  string
}

// NewClient creates a new payment gateway client
func NewClient(config Config, logger *zap.Logger) *Client {
	return &Client{
		http: httpclient.NewHTTPClient(
			httpclient.WithBaseURL(config.BaseURL),
			httpclient.WithDefaultHeader("Authorization", "Bearer "+config.APIKey),
			httpclient.WithLogger(logger),
		),
		logger: logger,
	}
}

var _ interfaces.PaymentProcessor = (*Client)(nil)

type chargeRequest struct {
	SubscriptionID string `json:"subscription_id"`
	ExternalID     string `json:"external_id,omitempty"`
	CustomerEmail  string `json:"customer_email"`
	// IdempotencyKey dedupes the charge on the gateway side.
	IdempotencyKey string `json:"idempotency_key"`
}

type chargeResponse struct {
	EventID string `json:"event_id"`
	Status  string `json:"status"`
	Error   string `json:"error,omitempty"`
}

// ChargeSubscription submits one charge attempt for the subscription's
// current billing period.
func (c *Client) ChargeSubscription(ctx context.Context, subscription db.Subscription) (*interfaces.ChargeResult, error) {
	req := chargeRequest{
		SubscriptionID: subscription.ID.String(),
		CustomerEmail:  subscription.CustomerEmail.String,
		IdempotencyKey: fmt.Sprintf("retry-%s-%d", subscription.ID, subscription.FailedPaymentCount),
	}
	if subscription.ExternalID.Valid {
		req.ExternalID = subscription.ExternalID.String
	}

	resp, err := c.http.Post(ctx, "/v1/charges", req)
	if err != nil {
		var httpErr *httpclient.HTTPError
		if errors.As(err, &httpErr) && httpErr.StatusCode == 402 {
			// 402 carries a decline payload rather than a fault
			var declined chargeResponse
			if decodeErr := json.Unmarshal([]byte(httpErr.Body), &declined); decodeErr != nil {
				return nil, fmt.Errorf("failed to decode decline response: %w", decodeErr)
			}
			return c.toResult(subscription.ID, declined)
		}
		return nil, fmt.Errorf("charge request failed: %w", err)
	}

	var charged chargeResponse
	if err := c.http.ProcessJSONResponse(resp, &charged); err != nil {
		return nil, fmt.Errorf("failed to decode charge response: %w", err)
	}
	return c.toResult(subscription.ID, charged)
}

func (c *Client) toResult(subscriptionID uuid.UUID, resp chargeResponse) (*interfaces.ChargeResult, error) {
	eventID, err := uuid.Parse(resp.EventID)
	if err != nil {
		return nil, fmt.Errorf("gateway returned invalid event id %q: %w", resp.EventID, err)
	}

	result := &interfaces.ChargeResult{
		EventID:      eventID,
		Success:      resp.Status == "succeeded",
		ErrorMessage: resp.Error,
	}

	if !result.Success {
		c.logger.Info("charge declined",
			zap.String("subscription_id", subscriptionID.String()),
			zap.String("event_id", resp.EventID),
			zap.String("reason", resp.Error))
	}

	return result, nil
}
