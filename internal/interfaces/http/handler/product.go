package handler

import (
	"io"
	"strconv"

	"github.com/gin-gonic/gin"

	catalogapp "github.com/nexashop/backend/internal/application/catalog"
)

// ProductHandler serves public product reads and admin product management.
type ProductHandler struct {
	BaseHandler
	products *catalogapp.ProductService
	images   *catalogapp.ImageService
}

// NewProductHandler creates a ProductHandler.
func NewProductHandler(products *catalogapp.ProductService, images *catalogapp.ImageService) *ProductHandler {
	return &ProductHandler{products: products, images: images}
}

// List handles GET /api/products with optional category, featured and new filters.
func (h *ProductHandler) List(c *gin.Context) {
	var filter catalogapp.ProductListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BindingError(c, err)
		return
	}

	products, err := h.products.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.BaseHandler.List(c, products, len(products))
}

// Get handles GET /api/products/:id. A non-numeric identifier is treated
// as a slug lookup.
func (h *ProductHandler) Get(c *gin.Context) {
	param := c.Param("id")
	if id, err := strconv.ParseInt(param, 10, 64); err == nil {
		product, err := h.products.GetByID(c.Request.Context(), id)
		if err != nil {
			h.HandleError(c, err)
			return
		}
		h.Success(c, product)
		return
	}

	product, err := h.products.GetBySlug(c.Request.Context(), param)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, product)
}

// Create handles POST /api/products (admin).
func (h *ProductHandler) Create(c *gin.Context) {
	var req catalogapp.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	product, err := h.products.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, product)
}

// Update handles PUT /api/products/:id (admin). Absent fields keep their
// current values.
func (h *ProductHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid product ID")
		return
	}

	var req catalogapp.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	product, err := h.products.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, product)
}

// Delete handles DELETE /api/products/:id (admin).
func (h *ProductHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid product ID")
		return
	}

	if err := h.products.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// UploadImage handles POST /api/products/:id/image (admin, multipart form
// with an "image" file field).
func (h *ProductHandler) UploadImage(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid product ID")
		return
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		h.BadRequest(c, "Missing image file")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		h.BadRequest(c, "Failed to read image file")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		h.BadRequest(c, "Failed to read image file")
		return
	}

	contentType := fileHeader.Header.Get("Content-Type")
	result, err := h.images.UploadProductImage(c.Request.Context(), id, fileHeader.Filename, contentType, data)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, result)
}
