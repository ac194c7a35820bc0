package billing

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestDecodeEvent(t *testing.T) {
	payload := []byte(`{
		"id": "evt_123",
		"type": "payment_intent.succeeded",
		"data": {"object": {"id": "pi_abc", "amount": 29990}}
	}`)

	event, err := decodeEvent(payload)
	require.NoError(t, err)
	assert.Equal(t, "evt_123", event.ID)
	assert.Equal(t, EventPaymentIntentSucceeded, event.Type)
	assert.Equal(t, "pi_abc", event.PaymentIntentID)
	assert.JSONEq(t, string(payload), string(event.Raw))
}

func TestDecodeEventMalformed(t *testing.T) {
	_, err := decodeEvent([]byte("not json"))
	assert.ErrorIs(t, err, ErrMalformedPayload)
}

func TestStubGatewayCreatePaymentIntent(t *testing.T) {
	gateway := NewStubGateway(zap.NewNop())

	first, err := gateway.CreatePaymentIntent(context.Background(), CreatePaymentIntentInput{AmountCents: 29990})
	require.NoError(t, err)
	assert.Equal(t, "pi_stub_000001", first.ID)
	assert.Equal(t, "pi_stub_000001_secret", first.ClientSecret)
	assert.Equal(t, int64(29990), first.AmountCents)

	second, err := gateway.CreatePaymentIntent(context.Background(), CreatePaymentIntentInput{AmountCents: 500})
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID)
}

func TestStubGatewayRejectsNonPositiveAmount(t *testing.T) {
	gateway := NewStubGateway(zap.NewNop())

	_, err := gateway.CreatePaymentIntent(context.Background(), CreatePaymentIntentInput{AmountCents: 0})
	assert.Error(t, err)
}

func TestStubGatewayParseWebhookTrustsPayload(t *testing.T) {
	gateway := NewStubGateway(zap.NewNop())

	event, err := gateway.ParseWebhook([]byte(`{"id":"evt_1","type":"payment_intent.payment_failed","data":{"object":{"id":"pi_x"}}}`), "")
	require.NoError(t, err)
	assert.Equal(t, EventPaymentIntentFailed, event.Type)
	assert.Equal(t, "pi_x", event.PaymentIntentID)
}
