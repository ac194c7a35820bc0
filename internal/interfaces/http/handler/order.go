package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	orderingapp "github.com/nexashop/backend/internal/application/ordering"
	"github.com/nexashop/backend/internal/infrastructure/receipt"
	"github.com/nexashop/backend/internal/interfaces/http/middleware"
)

// OrderHandler serves order creation, listing and status management.
type OrderHandler struct {
	BaseHandler
	orders      *orderingapp.OrderService
	pdfRenderer receipt.PDFRenderer
}

// NewOrderHandler creates an OrderHandler.
func NewOrderHandler(orders *orderingapp.OrderService, pdfRenderer receipt.PDFRenderer) *OrderHandler {
	return &OrderHandler{orders: orders, pdfRenderer: pdfRenderer}
}

// Create handles POST /api/orders. Unit prices are captured from the
// catalog at creation time.
func (h *OrderHandler) Create(c *gin.Context) {
	var req orderingapp.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	order, err := h.orders.Create(c.Request.Context(), middleware.GetUserID(c), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, order)
}

// List handles GET /api/orders. Admins see every order, customers only
// their own.
func (h *OrderHandler) List(c *gin.Context) {
	orders, err := h.orders.List(c.Request.Context(), middleware.GetUserID(c), middleware.IsAdmin(c))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.BaseHandler.List(c, orders, len(orders))
}

// Get handles GET /api/orders/:id, embedding order items.
func (h *OrderHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid order ID")
		return
	}

	order, err := h.orders.Get(c.Request.Context(), id, middleware.GetUserID(c), middleware.IsAdmin(c))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, order)
}

// UpdateStatus handles PUT /api/orders/:id/status (admin). Any known
// status value is accepted, including moves backwards in the workflow.
func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid order ID")
		return
	}

	var req orderingapp.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	order, err := h.orders.UpdateStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, order)
}

// Receipt handles GET /api/orders/:id/receipt. The default format is
// HTML; ?format=pdf returns a rendered PDF when enabled.
func (h *OrderHandler) Receipt(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid order ID")
		return
	}

	data, err := h.orders.Receipt(c.Request.Context(), id, middleware.GetUserID(c), middleware.IsAdmin(c))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	html, err := receipt.RenderHTML(*data)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	if c.Query("format") != "pdf" {
		c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(html))
		return
	}

	pdf, err := h.pdfRenderer.RenderPDF(c.Request.Context(), html)
	if err != nil {
		if errors.Is(err, receipt.ErrPDFDisabled) {
			h.BadRequest(c, "PDF rendering is disabled")
			return
		}
		h.HandleError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=receipt-%d.pdf", id))
	c.Data(http.StatusOK, "application/pdf", pdf)
}
