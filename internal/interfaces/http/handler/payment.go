package handler

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	paymentapp "github.com/nexashop/backend/internal/application/payment"
	"github.com/nexashop/backend/internal/infrastructure/billing"
	"github.com/nexashop/backend/internal/interfaces/http/dto"
	"github.com/nexashop/backend/internal/interfaces/http/middleware"
)

// Stripe webhook payloads are small; cap reads to keep the endpoint cheap.
const maxWebhookPayloadSize = 65536

// PaymentHandler serves payment intent creation.
type PaymentHandler struct {
	BaseHandler
	payments *paymentapp.PaymentService
}

// NewPaymentHandler creates a PaymentHandler.
func NewPaymentHandler(payments *paymentapp.PaymentService) *PaymentHandler {
	return &PaymentHandler{payments: payments}
}

// CreateIntent handles POST /api/create-payment-intent. The amount is
// computed server-side from catalog prices.
func (h *PaymentHandler) CreateIntent(c *gin.Context) {
	var req paymentapp.CreateIntentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	result, err := h.payments.CreateIntent(c.Request.Context(), middleware.GetUserID(c), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, result)
}

// WebhookHandler receives payment provider events. It is called by the
// provider and carries no bearer token.
type WebhookHandler struct {
	BaseHandler
	webhooks *paymentapp.WebhookService
}

// NewWebhookHandler creates a WebhookHandler.
func NewWebhookHandler(webhooks *paymentapp.WebhookService) *WebhookHandler {
	return &WebhookHandler{webhooks: webhooks}
}

// Handle handles POST /api/webhook. The raw body is required for
// signature verification; when no webhook secret is configured the
// payload is trusted as-is.
func (h *WebhookHandler) Handle(c *gin.Context) {
	payload, err := io.ReadAll(io.LimitReader(c.Request.Body, maxWebhookPayloadSize+1))
	if err != nil {
		h.BadRequest(c, "Failed to read request body")
		return
	}
	if len(payload) > maxWebhookPayloadSize {
		h.Error(c, http.StatusRequestEntityTooLarge, dto.ErrCodeBadRequest, "Payload too large")
		return
	}

	result, err := h.webhooks.Handle(c.Request.Context(), payload, c.GetHeader("Stripe-Signature"))
	if err != nil {
		switch {
		case errors.Is(err, billing.ErrSignatureVerification):
			h.Unauthorized(c, "Webhook signature verification failed")
		case errors.Is(err, billing.ErrMalformedPayload):
			h.BadRequest(c, "Invalid webhook payload")
		default:
			h.HandleError(c, err)
		}
		return
	}

	h.Success(c, gin.H{
		"received":      true,
		"eventType":     result.EventType,
		"ordersUpdated": result.OrdersUpdated,
	})
}
