package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"dealerdesk/internal/domain/reports"
)

// ReportsHandler handles HTTP requests for reports.
type ReportsHandler struct {
	*BaseHandler
	service *reports.Service
}

// NewReportsHandler creates a new reports handler.
func NewReportsHandler(base *BaseHandler, service *reports.Service) *ReportsHandler {
	return &ReportsHandler{
		BaseHandler: base,
		service:     service,
	}
}

// SalesProductivity handles GET /reports/sales-productivity.
func (h *ReportsHandler) SalesProductivity(c *gin.Context) {
	rows, err := h.service.SalesProductivity(c.Request.Context())
	if err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, rows)
}

// SellerHistory handles GET /reports/seller-history.
func (h *ReportsHandler) SellerHistory(c *gin.Context) {
	rows, err := h.service.SellerHistory(c.Request.Context())
	if err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, rows)
}

// PartStatistics handles GET /reports/part-statistics.
func (h *ReportsHandler) PartStatistics(c *gin.Context) {
	rows, err := h.service.PartStatistics(c.Request.Context())
	if err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, rows)
}
