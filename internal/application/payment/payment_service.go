// Package payment drives checkout against the payment gateway and
// applies webhook outcomes to orders.
package payment

import (
	"context"
	"fmt"

	"github.com/nexashop/backend/internal/domain/catalog"
	"github.com/nexashop/backend/internal/domain/ordering"
	"github.com/nexashop/backend/internal/infrastructure/billing"
	"go.uber.org/zap"
)

// PaymentService creates payment intents from live product prices
type PaymentService struct {
	gateway     billing.PaymentGateway
	productRepo catalog.ProductRepository
	currency    string
	logger      *zap.Logger
}

// NewPaymentService creates a new PaymentService
func NewPaymentService(
	gateway billing.PaymentGateway,
	productRepo catalog.ProductRepository,
	currency string,
	logger *zap.Logger,
) *PaymentService {
	return &PaymentService{
		gateway:     gateway,
		productRepo: productRepo,
		currency:    currency,
		logger:      logger,
	}
}

// CreateIntent computes the charge amount server-side from current
// product prices and authorizes it with the gateway. An unknown
// product aborts the checkout before anything is charged.
func (s *PaymentService) CreateIntent(ctx context.Context, userID int64, req CreateIntentRequest) (*CreateIntentResponse, error) {
	s.logger.Debug("Checkout started",
		zap.Int64("user_id", userID),
		zap.String("state", string(CheckoutStateDraft)),
		zap.Int("lines", len(req.Items)))

	var amountCents int64
	for _, item := range req.Items {
		product, err := s.productRepo.FindByID(ctx, item.ProductID)
		if err != nil {
			return nil, err
		}
		amountCents += product.PriceCents() * int64(item.Quantity)
	}

	s.logger.Debug("Checkout priced",
		zap.Int64("user_id", userID),
		zap.String("state", string(CheckoutStateAuthorizing)),
		zap.Int64("amount_cents", amountCents))

	intent, err := s.gateway.CreatePaymentIntent(ctx, billing.CreatePaymentIntentInput{
		AmountCents: amountCents,
		Currency:    s.currency,
		Metadata: map[string]string{
			"user_id": fmt.Sprintf("%d", userID),
		},
	})
	if err != nil {
		s.logger.Error("Checkout failed",
			zap.Int64("user_id", userID),
			zap.Int64("amount_cents", amountCents),
			zap.String("state", string(CheckoutStateFailed)),
			zap.Error(err))
		return nil, err
	}

	s.logger.Info("Payment intent created",
		zap.Int64("user_id", userID),
		zap.String("payment_intent_id", intent.ID),
		zap.Int64("amount_cents", amountCents))

	return &CreateIntentResponse{
		ClientSecret:    intent.ClientSecret,
		PaymentIntentID: intent.ID,
		AmountCents:     amountCents,
		State:           CheckoutStateConfirmed,
	}, nil
}

// WebhookService applies gateway notifications to orders
type WebhookService struct {
	gateway   billing.PaymentGateway
	orderRepo ordering.OrderRepository
	logger    *zap.Logger
}

// NewWebhookService creates a new WebhookService
func NewWebhookService(gateway billing.PaymentGateway, orderRepo ordering.OrderRepository, logger *zap.Logger) *WebhookService {
	return &WebhookService{
		gateway:   gateway,
		orderRepo: orderRepo,
		logger:    logger,
	}
}

// Handle verifies and applies one webhook delivery. A successful
// payment intent moves every matching pending order to processing.
func (s *WebhookService) Handle(ctx context.Context, payload []byte, signature string) (*WebhookResult, error) {
	event, err := s.gateway.ParseWebhook(payload, signature)
	if err != nil {
		return nil, err
	}

	result := &WebhookResult{EventType: event.Type}

	switch event.Type {
	case billing.EventPaymentIntentSucceeded:
		updated, err := s.markOrdersProcessing(ctx, event.PaymentIntentID)
		if err != nil {
			return nil, err
		}
		result.OrdersUpdated = updated

	case billing.EventPaymentIntentFailed:
		s.logger.Warn("Payment failed",
			zap.String("payment_intent_id", event.PaymentIntentID))

	default:
		s.logger.Debug("Ignoring webhook event", zap.String("type", event.Type))
	}

	return result, nil
}

func (s *WebhookService) markOrdersProcessing(ctx context.Context, paymentIntentID string) (int, error) {
	if paymentIntentID == "" {
		return 0, nil
	}

	orders, err := s.orderRepo.FindByPaymentID(ctx, paymentIntentID)
	if err != nil {
		return 0, err
	}

	updated := 0
	for i := range orders {
		order := &orders[i]
		if order.Status != ordering.OrderStatusPending {
			continue
		}
		if err := order.SetStatus(ordering.OrderStatusProcessing); err != nil {
			return updated, err
		}
		if err := s.orderRepo.Update(ctx, order); err != nil {
			return updated, err
		}
		updated++
	}

	if updated > 0 {
		s.logger.Info("Orders moved to processing",
			zap.String("payment_intent_id", paymentIntentID),
			zap.Int("count", updated))
	}
	return updated, nil
}
