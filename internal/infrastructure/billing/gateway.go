package billing

import (
	"context"
	"encoding/json"
	"errors"
)

// Webhook event types the storefront reacts to.
const (
	EventPaymentIntentSucceeded = "payment_intent.succeeded"
	EventPaymentIntentFailed    = "payment_intent.payment_failed"
)

// ErrSignatureVerification is returned when a webhook payload fails
// signature verification.
var ErrSignatureVerification = errors.New("billing: webhook signature verification failed")

// ErrMalformedPayload is returned when a webhook payload cannot be
// decoded. Callers use it to tell bad deliveries from internal errors.
var ErrMalformedPayload = errors.New("billing: malformed webhook payload")

// CreatePaymentIntentInput describes the charge to authorize. Amounts
// are integer cents; fractional cents never reach the gateway.
type CreatePaymentIntentInput struct {
	AmountCents int64
	Currency    string
	Metadata    map[string]string
}

// PaymentIntent is the provider-side authorization handle. ClientSecret
// is handed to the frontend to confirm the payment.
type PaymentIntent struct {
	ID           string
	ClientSecret string
	AmountCents  int64
	Status       string
}

// WebhookEvent is a provider notification after signature handling.
type WebhookEvent struct {
	ID              string
	Type            string
	PaymentIntentID string
	Raw             json.RawMessage
}

// PaymentGateway abstracts the payment provider. The production
// implementation talks to Stripe; a stub serves development and tests.
type PaymentGateway interface {
	// CreatePaymentIntent authorizes a charge and returns the intent.
	CreatePaymentIntent(ctx context.Context, input CreatePaymentIntentInput) (*PaymentIntent, error)

	// ParseWebhook verifies (when a webhook secret is configured) and
	// decodes a raw webhook payload.
	ParseWebhook(payload []byte, signature string) (*WebhookEvent, error)
}

// eventEnvelope is the minimal shape shared by provider webhook payloads.
type eventEnvelope struct {
	ID   string `json:"id"`
	Type string `json:"type"`
	Data struct {
		Object struct {
			ID string `json:"id"`
		} `json:"object"`
	} `json:"data"`
}

// decodeEvent parses a webhook payload into a WebhookEvent without
// signature checking.
func decodeEvent(payload []byte) (*WebhookEvent, error) {
	var env eventEnvelope
	if err := json.Unmarshal(payload, &env); err != nil {
		return nil, ErrMalformedPayload
	}
	return &WebhookEvent{
		ID:              env.ID,
		Type:            env.Type,
		PaymentIntentID: env.Data.Object.ID,
		Raw:             json.RawMessage(payload),
	}, nil
}
