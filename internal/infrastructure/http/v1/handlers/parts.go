package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"dealerdesk/internal/domain/parts"
	"dealerdesk/internal/infrastructure/http/v1/dto"
)

// PartsHandler handles HTTP requests for parts.
type PartsHandler struct {
	*BaseHandler
	service *parts.Service
}

// NewPartsHandler creates a new parts handler.
func NewPartsHandler(base *BaseHandler, service *parts.Service) *PartsHandler {
	return &PartsHandler{
		BaseHandler: base,
		service:     service,
	}
}

// List handles GET /parts.
func (h *PartsHandler) List(c *gin.Context) {
	records, err := h.service.ListParts(c.Request.Context())
	if err != nil {
		h.Error(c, err)
		return
	}
	if records == nil {
		records = []parts.PartRecord{}
	}

	c.JSON(http.StatusOK, records)
}

// Detail handles GET /parts/:id.
func (h *PartsHandler) Detail(c *gin.Context) {
	partID, ok := h.ParseIDParam(c, "id")
	if !ok {
		return
	}

	record, err := h.service.GetPartByID(c.Request.Context(), partID)
	if err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, record)
}

// Insert handles POST /parts.
func (h *PartsHandler) Insert(c *gin.Context) {
	var req dto.InsertPartRequest
	if !h.BindJSON(c, &req) {
		return
	}

	partID, err := h.service.InsertPart(c.Request.Context(), req.ToInput())
	if err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.IDResponse{ID: partID})
}
