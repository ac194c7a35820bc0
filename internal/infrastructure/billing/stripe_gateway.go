package billing

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/nexashop/backend/internal/infrastructure/config"
	"github.com/stripe/stripe-go/v81"
	"github.com/stripe/stripe-go/v81/paymentintent"
	"github.com/stripe/stripe-go/v81/webhook"
	"go.uber.org/zap"
)

// StripeGateway implements PaymentGateway against the Stripe API
type StripeGateway struct {
	cfg    config.StripeConfig
	logger *zap.Logger
}

// NewStripeGateway creates a Stripe gateway and sets the global API key
func NewStripeGateway(cfg config.StripeConfig, logger *zap.Logger) (*StripeGateway, error) {
	if cfg.SecretKey == "" {
		return nil, fmt.Errorf("stripe: secret key is required")
	}
	stripe.Key = cfg.SecretKey

	return &StripeGateway{
		cfg:    cfg,
		logger: logger,
	}, nil
}

// CreatePaymentIntent authorizes a charge with Stripe
func (g *StripeGateway) CreatePaymentIntent(ctx context.Context, input CreatePaymentIntentInput) (*PaymentIntent, error) {
	currency := input.Currency
	if currency == "" {
		currency = g.cfg.Currency
	}

	g.logger.Debug("Creating payment intent",
		zap.Int64("amount_cents", input.AmountCents),
		zap.String("currency", currency))

	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(input.AmountCents),
		Currency: stripe.String(currency),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}
	params.Context = ctx
	if len(input.Metadata) > 0 {
		params.Metadata = input.Metadata
	}

	intent, err := paymentintent.New(params)
	if err != nil {
		g.logger.Error("Failed to create payment intent",
			zap.Int64("amount_cents", input.AmountCents),
			zap.Error(err))
		return nil, fmt.Errorf("stripe: failed to create payment intent: %w", err)
	}

	g.logger.Info("Created payment intent",
		zap.String("payment_intent_id", intent.ID),
		zap.Int64("amount_cents", input.AmountCents))

	return &PaymentIntent{
		ID:           intent.ID,
		ClientSecret: intent.ClientSecret,
		AmountCents:  intent.Amount,
		Status:       string(intent.Status),
	}, nil
}

// ParseWebhook verifies the Stripe-Signature header when a webhook
// secret is configured; without one the payload is trusted as-is
// (development mode).
func (g *StripeGateway) ParseWebhook(payload []byte, signature string) (*WebhookEvent, error) {
	if g.cfg.WebhookSecret == "" {
		g.logger.Warn("Webhook signature verification disabled; trusting payload")
		return decodeEvent(payload)
	}

	event, err := webhook.ConstructEvent(payload, signature, g.cfg.WebhookSecret)
	if err != nil {
		g.logger.Warn("Webhook signature verification failed", zap.Error(err))
		return nil, ErrSignatureVerification
	}

	var object struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(event.Data.Raw, &object); err != nil {
		return nil, fmt.Errorf("%w: event object: %v", ErrMalformedPayload, err)
	}

	return &WebhookEvent{
		ID:              event.ID,
		Type:            string(event.Type),
		PaymentIntentID: object.ID,
		Raw:             event.Data.Raw,
	}, nil
}

var _ PaymentGateway = (*StripeGateway)(nil)
