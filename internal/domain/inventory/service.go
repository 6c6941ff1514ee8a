package inventory

import (
	"context"

	"dealerdesk/internal/core/apperror"
	"dealerdesk/pkg/logger"
)

// Service provides the inventory operations exposed to callers. It is
// stateless; the actor's role arrives as an explicit parameter on every
// call and the visibility mode is re-derived each time.
type Service struct {
	repo Repository
}

// NewService creates a new inventory service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// ListVehicles returns the enriched vehicle listing visible to the given
// role, with the validated filter applied. The derived sales price is filled
// on every returned row.
func (s *Service) ListVehicles(ctx context.Context, filter ListFilter, role ActorRole) ([]VehicleRecord, error) {
	mode := VisibilityFor(role)

	records, err := s.repo.List(ctx, filter, mode)
	if err != nil {
		return nil, err
	}

	for i := range records {
		records[i].enrich()
	}
	return records, nil
}

// GetVehicleDetail returns one enriched vehicle row by id. The detail view
// ignores visibility: sold and parts-pending vehicles are still returned.
// A missing id surfaces as apperror.CodeNotFound, never as an
// infrastructure error.
func (s *Service) GetVehicleDetail(ctx context.Context, vehicleID int64) (*VehicleRecord, error) {
	record, err := s.repo.GetByID(ctx, vehicleID)
	if err != nil {
		return nil, err
	}
	record.enrich()
	return record, nil
}

// InsertVehicle creates a vehicle row with minimal validation. VIN
// uniqueness is not checked here; duplicates pass through.
func (s *Service) InsertVehicle(ctx context.Context, input VehicleInput) (int64, error) {
	if input.ModelName == "" {
		return 0, apperror.NewValidation("model name is required").
			WithDetail("field", "modelName")
	}
	return s.repo.Insert(ctx, input)
}

// SellVehicle runs the two-phase write: insert the vehicle, then record the
// purchase transaction when a price is supplied. The phases are not atomic.
// A phase-two failure leaves the vehicle in place and is reported in the
// result, not returned as an error.
func (s *Service) SellVehicle(ctx context.Context, input SellInput) (SellResult, error) {
	var result SellResult

	vehicleID, err := s.InsertVehicle(ctx, input.Vehicle)
	if err != nil {
		return result, err
	}
	result.VehicleID = vehicleID

	if input.Price == nil {
		return result, nil
	}
	result.PurchaseRequested = true

	condition := input.Condition
	if condition == "" {
		condition = "Good"
	}

	purchase := PurchaseInput{
		VehicleID:        vehicleID,
		UserID:           input.UserID,
		CustomerID:       input.CustomerID,
		PurchasePrice:    *input.Price,
		VehicleCondition: condition,
	}
	if err := s.repo.InsertPurchase(ctx, purchase); err != nil {
		logger.Warn(ctx, "vehicle inserted but purchase record failed",
			"vehicle_id", vehicleID,
			"error", err,
		)
		result.PurchaseError = apperror.NewPartialWrite("purchase transaction not recorded", err).Error()
		return result, nil
	}

	result.PurchaseRecorded = true
	return result, nil
}
