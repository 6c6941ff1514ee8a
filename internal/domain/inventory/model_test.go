package inventory

import "testing"

func floatPtr(f float64) *float64 { return &f }

func TestSalesPrice(t *testing.T) {
	tests := []struct {
		name          string
		purchasePrice *float64
		partsCost     float64
		want          *float64
	}{
		{
			name:          "purchase plus parts",
			purchasePrice: floatPtr(10000),
			partsCost:     120,
			want:          floatPtr(14144.00), // 1.4*10000 + 1.2*120
		},
		{
			name:          "no purchase price means no sales price",
			purchasePrice: nil,
			partsCost:     500,
			want:          nil,
		},
		{
			name:          "zero parts cost",
			purchasePrice: floatPtr(5000),
			partsCost:     0,
			want:          floatPtr(7000.00),
		},
		{
			name:          "rounds half away from zero at two decimals",
			purchasePrice: floatPtr(100.01),
			partsCost:     10.01,
			want:          floatPtr(152.03), // 140.014 + 12.012 = 152.026
		},
		{
			name:          "zero purchase price still defined",
			purchasePrice: floatPtr(0),
			partsCost:     50,
			want:          floatPtr(60.00),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SalesPrice(tt.purchasePrice, tt.partsCost)
			if tt.want == nil {
				if got != nil {
					t.Fatalf("SalesPrice = %v, want nil", *got)
				}
				return
			}
			if got == nil {
				t.Fatalf("SalesPrice = nil, want %v", *tt.want)
			}
			if *got != *tt.want {
				t.Errorf("SalesPrice = %v, want %v", *got, *tt.want)
			}
		})
	}
}

func TestVehicleRecord_Enrich(t *testing.T) {
	rec := VehicleRecord{PurchasePrice: floatPtr(10000), PartsCost: 120}
	rec.enrich()
	if rec.SalesPrice == nil || *rec.SalesPrice != 14144.00 {
		t.Errorf("SalesPrice = %v, want 14144.00", rec.SalesPrice)
	}

	rec = VehicleRecord{PartsCost: 999}
	rec.enrich()
	if rec.SalesPrice != nil {
		t.Errorf("SalesPrice = %v, want nil without purchase price", *rec.SalesPrice)
	}
}

func TestSellResult_PartialWrite(t *testing.T) {
	tests := []struct {
		name   string
		result SellResult
		want   bool
	}{
		{"no purchase requested", SellResult{VehicleID: 1}, false},
		{"purchase recorded", SellResult{VehicleID: 1, PurchaseRequested: true, PurchaseRecorded: true}, false},
		{"purchase failed", SellResult{VehicleID: 1, PurchaseRequested: true, PurchaseError: "boom"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.result.PartialWrite(); got != tt.want {
				t.Errorf("PartialWrite() = %v, want %v", got, tt.want)
			}
		})
	}
}
