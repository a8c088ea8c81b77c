package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"book-management/internal/domains/book"
	"book-management/internal/shared/fault"
	"book-management/internal/shared/response"
)

// Handler exposes the book catalog over HTTP.
type Handler struct {
	service    book.Service
	translator *response.Translator
}

func NewHandler(service book.Service, translator *response.Translator) *Handler {
	return &Handler{service: service, translator: translator}
}

// RegisterRoutes mounts the book endpoints on rg, normally /books.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("", h.Create)
	rg.PUT("/:id", h.Update)
	rg.DELETE("/:id", h.Delete)
	rg.GET("/list", h.List)
	rg.GET("/title", h.GetByTitle)
}

// Create - POST /books
// Responds with the stored record including its assigned id.
func (h *Handler) Create(c *gin.Context) {
	var req book.BookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.translator.WriteError(c, fault.ErrMalformedBody)
		return
	}

	result, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		h.translator.WriteError(c, err)
		return
	}

	c.JSON(http.StatusCreated, result)
}

// Update - PUT /books/:id
// Responds with the updated record.
func (h *Handler) Update(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}

	var req book.BookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.translator.WriteError(c, fault.ErrMalformedBody)
		return
	}

	result, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		h.translator.WriteError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// Delete - DELETE /books/:id
func (h *Handler) Delete(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		h.translator.WriteError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// List - GET /books/list?page=0&size=10
func (h *Handler) List(c *gin.Context) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "0"))
	if err != nil {
		h.translator.WriteError(c, fault.ErrBadPage)
		return
	}
	size, err := strconv.Atoi(c.DefaultQuery("size", "10"))
	if err != nil {
		h.translator.WriteError(c, fault.ErrBadPage)
		return
	}

	result, err := h.service.List(c.Request.Context(), page, size)
	if err != nil {
		h.translator.WriteError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetByTitle - GET /books/title?title=Notes
func (h *Handler) GetByTitle(c *gin.Context) {
	title, ok := c.GetQuery("title")
	if !ok {
		h.translator.WriteError(c, fault.ErrMalformedBody)
		return
	}

	result, err := h.service.GetByTitle(c.Request.Context(), title)
	if err != nil {
		h.translator.WriteError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *Handler) pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		h.translator.WriteError(c, fault.ErrMalformedBody)
		return 0, false
	}
	return id, true
}
