package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"book-management/internal/domains/author"
	"book-management/internal/shared/fault"
	"book-management/internal/shared/response"
)

// Handler exposes the author catalog over HTTP.
type Handler struct {
	service    author.Service
	translator *response.Translator
}

func NewHandler(service author.Service, translator *response.Translator) *Handler {
	return &Handler{service: service, translator: translator}
}

// RegisterRoutes mounts the author endpoints on rg, normally /authors.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("", h.List)
	rg.GET("/search", h.Search)
	rg.GET("/:id", h.Get)
	rg.POST("", h.Create)
	rg.PUT("/:id", h.Update)
	rg.DELETE("/:id", h.Delete)
}

// List - GET /authors?page=0&size=10
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

// Search - GET /authors/search?q=keyword
func (h *Handler) Search(c *gin.Context) {
	keyword, ok := c.GetQuery("q")
	if !ok {
		h.translator.WriteError(c, fault.ErrMalformedBody)
		return
	}

	results, err := h.service.Search(c.Request.Context(), keyword)
	if err != nil {
		h.translator.WriteError(c, err)
		return
	}

	c.JSON(http.StatusOK, results)
}

// Get - GET /authors/:id
func (h *Handler) Get(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}

	result, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		h.translator.WriteError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// Create - POST /authors
// Responds with the bare id of the new author.
func (h *Handler) Create(c *gin.Context) {
	var req author.AuthorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.translator.WriteError(c, fault.ErrMalformedBody)
		return
	}

	id, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		h.translator.WriteError(c, err)
		return
	}

	c.JSON(http.StatusCreated, id)
}

// Update - PUT /authors/:id
// Responds with a localized confirmation message.
func (h *Handler) Update(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}

	var req author.AuthorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.translator.WriteError(c, fault.ErrMalformedBody)
		return
	}

	if _, err := h.service.Update(c.Request.Context(), id, req); err != nil {
		h.translator.WriteError(c, err)
		return
	}

	locale := c.GetString("locale")
	c.JSON(http.StatusOK, h.translator.Text(locale, author.KeyUpdateSuccess, strconv.FormatInt(id, 10)))
}

// Delete - DELETE /authors/:id
// Responds with a localized confirmation message.
func (h *Handler) Delete(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		h.translator.WriteError(c, err)
		return
	}

	locale := c.GetString("locale")
	c.JSON(http.StatusOK, h.translator.Text(locale, author.KeyDeleteSuccess, strconv.FormatInt(id, 10)))
}

func (h *Handler) pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		h.translator.WriteError(c, fault.ErrMalformedBody)
		return 0, false
	}
	return id, true
}
