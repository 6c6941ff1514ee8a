package inventory

import "strconv"

// ListFilter is a validated set of listing filters. A nil field means the
// filter is absent; absence is a first-class state distinct from matching
// nothing.
type ListFilter struct {
	ManufacturerID *int64
	VehicleTypeID  *int64
	ModelYear      *int
	FuelType       *string
	ColorID        *int64
	ColorName      *string
}

// IsZero reports whether no filter is set.
func (f ListFilter) IsZero() bool {
	return f.ManufacturerID == nil &&
		f.VehicleTypeID == nil &&
		f.ModelYear == nil &&
		f.FuelType == nil &&
		f.ColorID == nil &&
		f.ColorName == nil
}

// Raw query parameter keys accepted by NormalizeFilter.
const (
	ParamManufacturerID = "manufacturer_id"
	ParamVehicleTypeID  = "vehicle_type_id"
	ParamModelYear      = "model_year"
	ParamFuelType       = "fuel_type"
	ParamColorID        = "color_id"
	ParamColorName      = "color_name"
)

// NormalizeFilter turns raw, possibly-invalid query parameters into a
// validated ListFilter. Values that are absent, empty, or fail to parse as
// their target type are silently dropped; normalization never errors.
// ColorID takes precedence over ColorName when both parse.
func NormalizeFilter(raw map[string]string) ListFilter {
	var f ListFilter

	if v, ok := parseInt64(raw[ParamManufacturerID]); ok {
		f.ManufacturerID = &v
	}
	if v, ok := parseInt64(raw[ParamVehicleTypeID]); ok {
		f.VehicleTypeID = &v
	}
	if v, ok := parseInt(raw[ParamModelYear]); ok {
		f.ModelYear = &v
	}
	if s := raw[ParamFuelType]; s != "" {
		f.FuelType = &s
	}
	if v, ok := parseInt64(raw[ParamColorID]); ok {
		f.ColorID = &v
	} else if s := raw[ParamColorName]; s != "" {
		f.ColorName = &s
	}

	return f
}

func parseInt64(s string) (int64, bool) {
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

func parseInt(s string) (int, bool) {
	if s == "" {
		return 0, false
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return v, true
}
