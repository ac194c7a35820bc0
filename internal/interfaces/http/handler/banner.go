package handler

import (
	"github.com/gin-gonic/gin"

	catalogapp "github.com/nexashop/backend/internal/application/catalog"
)

// BannerHandler serves storefront banners.
type BannerHandler struct {
	BaseHandler
	banners *catalogapp.BannerService
}

// NewBannerHandler creates a BannerHandler.
func NewBannerHandler(banners *catalogapp.BannerService) *BannerHandler {
	return &BannerHandler{banners: banners}
}

// ListActive handles GET /api/banners. Only active banners are returned,
// ordered by their sort order.
func (h *BannerHandler) ListActive(c *gin.Context) {
	banners, err := h.banners.ListActive(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.BaseHandler.List(c, banners, len(banners))
}

// ListAll handles GET /api/admin/banners (admin), including inactive banners.
func (h *BannerHandler) ListAll(c *gin.Context) {
	banners, err := h.banners.ListAll(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.BaseHandler.List(c, banners, len(banners))
}

// Create handles POST /api/banners (admin).
func (h *BannerHandler) Create(c *gin.Context) {
	var req catalogapp.CreateBannerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	banner, err := h.banners.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, banner)
}

// Update handles PUT /api/banners/:id (admin).
func (h *BannerHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid banner ID")
		return
	}

	var req catalogapp.UpdateBannerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	banner, err := h.banners.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, banner)
}

// Delete handles DELETE /api/banners/:id (admin).
func (h *BannerHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid banner ID")
		return
	}

	if err := h.banners.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}
