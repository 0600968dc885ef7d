package domain

import "testing"

func intPtr(v int) *int { return &v }

func int64Ptr(v int64) *int64 { return &v }

func strPtr(v string) *string { return &v }

func sampleProperty() Property {
	return Property{
		ID:           "p1",
		Title:        "Detached Duplex",
		Price:        125000000,
		Location:     "Thomas Estate, Ajah, Lagos",
		PropertyType: PropertyTypeResidential,
		Bedrooms:     intPtr(4),
		Bathrooms:    intPtr(5),
	}
}

func TestFiltersIsEmpty(t *testing.T) {
	if !(PropertyFilters{}).IsEmpty() {
		t.Fatalf("expected zero-value filters to be empty")
	}
	if (PropertyFilters{Bedrooms: intPtr(0)}).IsEmpty() {
		t.Fatalf("filters with Bedrooms=0 must not be treated as empty")
	}
}

func TestFiltersMatches(t *testing.T) {
	tests := []struct {
		name    string
		filters PropertyFilters
		want    bool
	}{
		{"empty filters match everything", PropertyFilters{}, true},
		{"property type exact match", PropertyFilters{PropertyType: strPtr(PropertyTypeResidential)}, true},
		{"property type mismatch", PropertyFilters{PropertyType: strPtr(PropertyTypeCommercial)}, false},
		{"location substring lowercase", PropertyFilters{Location: strPtr("ajah")}, true},
		{"location substring uppercase", PropertyFilters{Location: strPtr("AJAH")}, true},
		{"location substring absent", PropertyFilters{Location: strPtr("ikoyi")}, false},
		{"min price below", PropertyFilters{MinPrice: int64Ptr(100000000)}, true},
		{"min price boundary inclusive", PropertyFilters{MinPrice: int64Ptr(125000000)}, true},
		{"min price above", PropertyFilters{MinPrice: int64Ptr(125000001)}, false},
		{"max price boundary inclusive", PropertyFilters{MaxPrice: int64Ptr(125000000)}, true},
		{"max price below", PropertyFilters{MaxPrice: int64Ptr(124999999)}, false},
		{"bedrooms exact", PropertyFilters{Bedrooms: intPtr(4)}, true},
		{"bedrooms mismatch", PropertyFilters{Bedrooms: intPtr(3)}, false},
		{"bathrooms exact", PropertyFilters{Bathrooms: intPtr(5)}, true},
		{"bathrooms mismatch", PropertyFilters{Bathrooms: intPtr(4)}, false},
		{
			"all criteria combined",
			PropertyFilters{
				PropertyType: strPtr(PropertyTypeResidential),
				Location:     strPtr("Ajah"),
				MinPrice:     int64Ptr(100000000),
				MaxPrice:     int64Ptr(200000000),
				Bedrooms:     intPtr(4),
				Bathrooms:    intPtr(5),
			},
			true,
		},
		{
			"one failing criterion rejects",
			PropertyFilters{Location: strPtr("Ajah"), MaxPrice: int64Ptr(100000000)},
			false,
		},
	}

	p := sampleProperty()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.filters.Matches(p); got != tt.want {
				t.Fatalf("Matches() = %v, want %v", got, tt.want)
			}
		})
	}
}

// Объект без числа спален никогда не проходит заданный критерий спален,
// даже нулевой.
func TestFiltersMatchesNilBedrooms(t *testing.T) {
	p := Property{
		ID:           "land1",
		Title:        "Commercial Plot",
		Price:        30000000,
		Location:     "Epe, Lagos",
		PropertyType: PropertyTypeLand,
	}

	if (PropertyFilters{Bedrooms: intPtr(0)}).Matches(p) {
		t.Fatalf("property without bedrooms must not match bedrooms=0")
	}
	if (PropertyFilters{Bathrooms: intPtr(2)}).Matches(p) {
		t.Fatalf("property without bathrooms must not match bathrooms=2")
	}
	if !(PropertyFilters{}).Matches(p) {
		t.Fatalf("empty filters must match property without bedrooms")
	}
}
