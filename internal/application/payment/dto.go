package payment

// CheckoutState tracks a checkout attempt through the gateway call.
type CheckoutState string

const (
	CheckoutStateDraft       CheckoutState = "draft"
	CheckoutStateAuthorizing CheckoutState = "authorizing"
	CheckoutStateConfirmed   CheckoutState = "confirmed"
	CheckoutStateFailed      CheckoutState = "failed"
)

// IntentLineRequest is one (product, quantity) pair to charge for
type IntentLineRequest struct {
	ProductID int64 `json:"productId" binding:"required,min=1"`
	Quantity  int   `json:"quantity" binding:"required,min=1"`
}

// CreateIntentRequest lists the products being paid for
type CreateIntentRequest struct {
	Items []IntentLineRequest `json:"items" binding:"required,min=1,dive"`
}

// CreateIntentResponse carries the client secret the frontend needs to
// confirm the payment.
type CreateIntentResponse struct {
	ClientSecret    string        `json:"clientSecret"`
	PaymentIntentID string        `json:"paymentIntentId"`
	AmountCents     int64         `json:"amountCents"`
	State           CheckoutState `json:"state"`
}

// WebhookResult reports what a webhook delivery did
type WebhookResult struct {
	EventType     string `json:"eventType"`
	OrdersUpdated int    `json:"ordersUpdated"`
}
