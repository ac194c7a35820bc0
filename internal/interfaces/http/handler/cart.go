package handler

import (
	"github.com/gin-gonic/gin"

	cartapp "github.com/nexashop/backend/internal/application/cart"
)

// CartTokenHeader carries the opaque cart token. A token is issued on the
// first cart write and echoed back on every cart response.
const CartTokenHeader = "X-Cart-Token"

// CartHandler serves the token-addressed shopping cart.
type CartHandler struct {
	BaseHandler
	carts *cartapp.CartService
}

// NewCartHandler creates a CartHandler.
func NewCartHandler(carts *cartapp.CartService) *CartHandler {
	return &CartHandler{carts: carts}
}

func (h *CartHandler) respond(c *gin.Context, cart *cartapp.CartResponse) {
	c.Header(CartTokenHeader, cart.Token)
	h.Success(c, cart)
}

// Get handles GET /api/cart. An absent or unknown token yields an empty cart.
func (h *CartHandler) Get(c *gin.Context) {
	cart, err := h.carts.Get(c.Request.Context(), c.GetHeader(CartTokenHeader))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.respond(c, cart)
}

// AddItem handles POST /api/cart/items. Adding an existing product merges
// quantities into one line.
func (h *CartHandler) AddItem(c *gin.Context) {
	var req cartapp.AddItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	cart, err := h.carts.AddItem(c.Request.Context(), c.GetHeader(CartTokenHeader), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.respond(c, cart)
}

// SetQuantity handles PUT /api/cart/items/:productId. A quantity of zero
// or less removes the line.
func (h *CartHandler) SetQuantity(c *gin.Context) {
	productID, ok := parseIDParam(c, "productId")
	if !ok {
		h.BadRequest(c, "Invalid product ID")
		return
	}

	var req cartapp.SetQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	cart, err := h.carts.SetQuantity(c.Request.Context(), c.GetHeader(CartTokenHeader), productID, req.Quantity)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.respond(c, cart)
}

// RemoveItem handles DELETE /api/cart/items/:productId.
func (h *CartHandler) RemoveItem(c *gin.Context) {
	productID, ok := parseIDParam(c, "productId")
	if !ok {
		h.BadRequest(c, "Invalid product ID")
		return
	}

	cart, err := h.carts.RemoveItem(c.Request.Context(), c.GetHeader(CartTokenHeader), productID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.respond(c, cart)
}

// Clear handles DELETE /api/cart.
func (h *CartHandler) Clear(c *gin.Context) {
	if err := h.carts.Clear(c.Request.Context(), c.GetHeader(CartTokenHeader)); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}
