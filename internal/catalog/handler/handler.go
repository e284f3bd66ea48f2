package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"papergenius_backend/internal/catalog/service"
	"papergenius_backend/internal/catalog/transport"
	"papergenius_backend/platform/httpkit"
	"papergenius_backend/platform/validator"
)

const (
	msgInvalidRequest   = "invalid request"
	msgValidationFailed = "validation failed"
	msgInvalidID        = "invalid item id"

	maxImageSizeBytes = 10 << 20
)

// Handler handles HTTP requests for the catalog.
type Handler struct {
	svc *service.Service
	val *validator.Validator
}

// New creates a new catalog handler.
func New(svc *service.Service, val *validator.Validator) *Handler {
	return &Handler{svc: svc, val: val}
}

// ListItems retrieves all shop items.
// GET /api/v1/catalog/items
func (h *Handler) ListItems(c *gin.Context) {
	result, err := h.svc.ListItems(c.Request.Context())
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, result)
}

// GetItem retrieves a single item for the product detail page.
// GET /api/v1/catalog/items/:id
func (h *Handler) GetItem(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidID, nil)
		return
	}

	result, err := h.svc.GetItem(c.Request.Context(), id)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, result)
}

// CreateItem creates a new catalog item.
// POST /api/v1/admin/catalog/items
func (h *Handler) CreateItem(c *gin.Context) {
	var req transport.CreateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgValidationFailed, err.Error())
		return
	}

	result, err := h.svc.CreateItem(c.Request.Context(), req)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.JSON(c, http.StatusCreated, result)
}

// UpdateItem updates an existing catalog item.
// PUT /api/v1/admin/catalog/items/:id
func (h *Handler) UpdateItem(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidID, nil)
		return
	}

	var req transport.UpdateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgValidationFailed, err.Error())
		return
	}

	result, err := h.svc.UpdateItem(c.Request.Context(), id, req)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, result)
}

// DeleteItem deletes a catalog item.
// DELETE /api/v1/admin/catalog/items/:id
func (h *Handler) DeleteItem(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidID, nil)
		return
	}

	if httpkit.HandleError(c, h.svc.DeleteItem(c.Request.Context(), id)) {
		return
	}
	c.Status(http.StatusNoContent)
}

// UploadImage accepts a multipart cover image and returns its stored URL.
// POST /api/v1/admin/catalog/images
func (h *Handler) UploadImage(c *gin.Context) {
	file, err := c.FormFile("img_file")
	if err != nil {
		httpkit.Error(c, http.StatusBadRequest, "image file is required", nil)
		return
	}
	if file.Size > maxImageSizeBytes {
		httpkit.Error(c, http.StatusBadRequest, "image too large", nil)
		return
	}

	src, err := file.Open()
	if err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}
	defer src.Close()

	result, err := h.svc.UploadImage(
		c.Request.Context(),
		file.Filename,
		file.Header.Get("Content-Type"),
		src,
		file.Size,
	)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.JSON(c, http.StatusCreated, result)
}
