package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"dealerdesk/internal/domain/inventory"
	"dealerdesk/internal/infrastructure/http/v1/dto"
	"dealerdesk/internal/infrastructure/http/v1/middleware"
)

// VehiclesHandler handles HTTP requests for the vehicle inventory.
type VehiclesHandler struct {
	*BaseHandler
	service *inventory.Service
}

// NewVehiclesHandler creates a new vehicles handler.
func NewVehiclesHandler(base *BaseHandler, service *inventory.Service) *VehiclesHandler {
	return &VehiclesHandler{
		BaseHandler: base,
		service:     service,
	}
}

// List handles GET /vehicles.
// Filter values that fail to parse are dropped, never rejected.
func (h *VehiclesHandler) List(c *gin.Context) {
	ctx := c.Request.Context()

	var query dto.ListVehiclesQuery
	_ = c.ShouldBindQuery(&query)

	filter := inventory.NormalizeFilter(query.Raw())
	role := middleware.RoleFromContext(c)

	records, err := h.service.ListVehicles(ctx, filter, role)
	if err != nil {
		h.Error(c, err)
		return
	}
	if records == nil {
		records = []inventory.VehicleRecord{}
	}

	c.JSON(http.StatusOK, records)
}

// Detail handles GET /vehicles/:id. Visibility does not apply here: sold and
// parts-pending vehicles are returned too.
func (h *VehiclesHandler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	vehicleID, ok := h.ParseIDParam(c, "id")
	if !ok {
		return
	}

	record, err := h.service.GetVehicleDetail(ctx, vehicleID)
	if err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, record)
}

// Sell handles POST /vehicles: insert the vehicle, then optionally record
// the purchase transaction. The response reports which phases succeeded.
func (h *VehiclesHandler) Sell(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.SellVehicleRequest
	if !h.BindJSON(c, &req) {
		return
	}

	result, err := h.service.SellVehicle(ctx, req.ToInput())
	if err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, result)
}
