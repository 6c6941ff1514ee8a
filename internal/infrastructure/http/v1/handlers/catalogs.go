package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"dealerdesk/internal/domain/catalogs"
)

// CatalogsHandler serves dimension lookups and filter options.
type CatalogsHandler struct {
	*BaseHandler
	service *catalogs.Service
}

// NewCatalogsHandler creates a new catalogs handler.
func NewCatalogsHandler(base *BaseHandler, service *catalogs.Service) *CatalogsHandler {
	return &CatalogsHandler{
		BaseHandler: base,
		service:     service,
	}
}

// FilterOptions handles GET /filter-options: every dropdown value set for
// the listing page in one payload.
func (h *CatalogsHandler) FilterOptions(c *gin.Context) {
	options, err := h.service.FilterOptions(c.Request.Context())
	if err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, options)
}

// Manufacturers handles GET /manufacturers.
func (h *CatalogsHandler) Manufacturers(c *gin.Context) {
	rows, err := h.service.Manufacturers(c.Request.Context())
	if err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, rows)
}

// VehicleTypes handles GET /vehicle-types.
func (h *CatalogsHandler) VehicleTypes(c *gin.Context) {
	rows, err := h.service.VehicleTypes(c.Request.Context())
	if err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, rows)
}

// Colors handles GET /colors.
func (h *CatalogsHandler) Colors(c *gin.Context) {
	rows, err := h.service.Colors(c.Request.Context())
	if err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, rows)
}
