package inventory

import "testing"

func TestNormalizeFilter(t *testing.T) {
	tests := []struct {
		name string
		raw  map[string]string
		want func(t *testing.T, f ListFilter)
	}{
		{
			name: "empty input yields zero filter",
			raw:  map[string]string{},
			want: func(t *testing.T, f ListFilter) {
				if !f.IsZero() {
					t.Errorf("expected zero filter, got %+v", f)
				}
			},
		},
		{
			name: "nil input yields zero filter",
			raw:  nil,
			want: func(t *testing.T, f ListFilter) {
				if !f.IsZero() {
					t.Errorf("expected zero filter, got %+v", f)
				}
			},
		},
		{
			name: "valid numeric values parse",
			raw: map[string]string{
				ParamManufacturerID: "3",
				ParamVehicleTypeID:  "7",
				ParamModelYear:      "2021",
			},
			want: func(t *testing.T, f ListFilter) {
				if f.ManufacturerID == nil || *f.ManufacturerID != 3 {
					t.Errorf("ManufacturerID = %v, want 3", f.ManufacturerID)
				}
				if f.VehicleTypeID == nil || *f.VehicleTypeID != 7 {
					t.Errorf("VehicleTypeID = %v, want 7", f.VehicleTypeID)
				}
				if f.ModelYear == nil || *f.ModelYear != 2021 {
					t.Errorf("ModelYear = %v, want 2021", f.ModelYear)
				}
			},
		},
		{
			name: "unparseable ints are dropped silently",
			raw: map[string]string{
				ParamManufacturerID: "abc",
				ParamVehicleTypeID:  "1.5",
				ParamModelYear:      "twenty",
			},
			want: func(t *testing.T, f ListFilter) {
				if !f.IsZero() {
					t.Errorf("expected all invalid values dropped, got %+v", f)
				}
			},
		},
		{
			name: "empty strings are dropped",
			raw: map[string]string{
				ParamFuelType:  "",
				ParamColorName: "",
			},
			want: func(t *testing.T, f ListFilter) {
				if !f.IsZero() {
					t.Errorf("expected empty strings dropped, got %+v", f)
				}
			},
		},
		{
			name: "string filters pass through",
			raw: map[string]string{
				ParamFuelType:  "Diesel",
				ParamColorName: "Red",
			},
			want: func(t *testing.T, f ListFilter) {
				if f.FuelType == nil || *f.FuelType != "Diesel" {
					t.Errorf("FuelType = %v, want Diesel", f.FuelType)
				}
				if f.ColorName == nil || *f.ColorName != "Red" {
					t.Errorf("ColorName = %v, want Red", f.ColorName)
				}
			},
		},
		{
			name: "color id wins over color name",
			raw: map[string]string{
				ParamColorID:   "4",
				ParamColorName: "Red",
			},
			want: func(t *testing.T, f ListFilter) {
				if f.ColorID == nil || *f.ColorID != 4 {
					t.Errorf("ColorID = %v, want 4", f.ColorID)
				}
				if f.ColorName != nil {
					t.Errorf("ColorName = %v, want nil when ColorID set", *f.ColorName)
				}
			},
		},
		{
			name: "invalid color id falls back to color name",
			raw: map[string]string{
				ParamColorID:   "not-a-number",
				ParamColorName: "Blue",
			},
			want: func(t *testing.T, f ListFilter) {
				if f.ColorID != nil {
					t.Errorf("ColorID = %v, want nil", *f.ColorID)
				}
				if f.ColorName == nil || *f.ColorName != "Blue" {
					t.Errorf("ColorName = %v, want Blue", f.ColorName)
				}
			},
		},
		{
			name: "mixed valid and invalid keeps only valid",
			raw: map[string]string{
				ParamManufacturerID: "12",
				ParamModelYear:      "oops",
				ParamFuelType:       "Gas",
			},
			want: func(t *testing.T, f ListFilter) {
				if f.ManufacturerID == nil || *f.ManufacturerID != 12 {
					t.Errorf("ManufacturerID = %v, want 12", f.ManufacturerID)
				}
				if f.ModelYear != nil {
					t.Errorf("ModelYear = %v, want nil", *f.ModelYear)
				}
				if f.FuelType == nil || *f.FuelType != "Gas" {
					t.Errorf("FuelType = %v, want Gas", f.FuelType)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.want(t, NormalizeFilter(tt.raw))
		})
	}
}

func TestListFilter_IsZero(t *testing.T) {
	if !(ListFilter{}).IsZero() {
		t.Error("empty ListFilter should be zero")
	}

	year := 2020
	if (ListFilter{ModelYear: &year}).IsZero() {
		t.Error("filter with ModelYear should not be zero")
	}

	name := "Red"
	if (ListFilter{ColorName: &name}).IsZero() {
		t.Error("filter with ColorName should not be zero")
	}
}
