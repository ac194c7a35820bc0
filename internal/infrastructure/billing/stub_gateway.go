package billing

import (
	"context"
	"fmt"
	"sync/atomic"

	"go.uber.org/zap"
)

// StubGateway is an offline PaymentGateway for development and tests.
// Intents are fabricated locally and webhooks are trusted without
// signature verification.
type StubGateway struct {
	logger  *zap.Logger
	counter atomic.Int64
}

var _ PaymentGateway = (*StubGateway)(nil)

func NewStubGateway(logger *zap.Logger) *StubGateway {
	return &StubGateway{logger: logger}
}

func (g *StubGateway) CreatePaymentIntent(_ context.Context, input CreatePaymentIntentInput) (*PaymentIntent, error) {
	if input.AmountCents <= 0 {
		return nil, fmt.Errorf("billing: amount must be positive, got %d", input.AmountCents)
	}

	n := g.counter.Add(1)
	id := fmt.Sprintf("pi_stub_%06d", n)

	g.logger.Debug("Created stub payment intent",
		zap.String("payment_intent_id", id),
		zap.Int64("amount_cents", input.AmountCents))

	return &PaymentIntent{
		ID:           id,
		ClientSecret: id + "_secret",
		AmountCents:  input.AmountCents,
		Status:       "requires_payment_method",
	}, nil
}

func (g *StubGateway) ParseWebhook(payload []byte, _ string) (*WebhookEvent, error) {
	return decodeEvent(payload)
}
