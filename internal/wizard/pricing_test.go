package wizard_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"potteryloop/internal/wizard"
)

func intPtr(v int) *int {
	return &v
}

func TestEffectiveGroupSize(t *testing.T) {
	tests := []struct {
		name  string
		size  int
		exact *int
		want  int
	}{
		{name: "plain size", size: 12, exact: nil, want: 12},
		{name: "overflow without exact", size: 40, exact: nil, want: 40},
		{name: "overflow with exact", size: 40, exact: intPtr(55), want: 55},
		{name: "exact ignored below overflow", size: 20, exact: intPtr(55), want: 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, wizard.EffectiveGroupSize(tt.size, tt.exact))
		})
	}
}

func TestCalculatePricing_SmallGroupBands(t *testing.T) {
	// Pottery Wheel classes: $45 base at the studio, not glazing-exempt.
	tests := []struct {
		size          int
		wantPerPerson float64
	}{
		{size: 1, wantPerPerson: 90},
		{size: 3, wantPerPerson: 90},
		{size: 4, wantPerPerson: 67.5},
		{size: 5, wantPerPerson: 67.5},
		{size: 6, wantPerPerson: 60},
		{size: 7, wantPerPerson: 51.43},
		{size: 8, wantPerPerson: 45},
		{size: 15, wantPerPerson: 45},
	}

	for _, tt := range tests {
		est := wizard.CalculatePricing("Pottery Wheel classes", wizard.VenueStudio, tt.size, nil)

		assert.Equal(t, tt.wantPerPerson, est.PerPerson, "size %d", tt.size)
		assert.Equal(t, tt.size, est.EffectiveGroupSize)
	}
}

func TestCalculatePricing_Scenarios(t *testing.T) {
	t.Run("group of five at the studio", func(t *testing.T) {
		est := wizard.CalculatePricing("Pottery Wheel classes", wizard.VenueStudio, 5, nil)

		assert.Equal(t, 67.5, est.PerPerson)
		assert.Equal(t, 337.5, est.Total)
		assert.Equal(t, "Ready in ~3 weeks (single color glazing)", est.ReadinessNote)
	})

	t.Run("group of ten pays base price", func(t *testing.T) {
		est := wizard.CalculatePricing("Pottery Wheel classes", wizard.VenueStudio, 10, nil)

		assert.Equal(t, 45.0, est.PerPerson)
		assert.Equal(t, 450.0, est.Total)
	})

	t.Run("overflow sentinel resolves to exact size", func(t *testing.T) {
		est := wizard.CalculatePricing("Handbuilding workshops", wizard.VenueStudio, 40, intPtr(52))

		assert.Equal(t, 45.0, est.PerPerson)
		assert.Equal(t, 52, est.EffectiveGroupSize)
		assert.Equal(t, 2340.0, est.Total)
	})
}

func TestCalculatePricing_GlazingExempt(t *testing.T) {
	// Glazing-type workshops price flat regardless of group size.
	for _, size := range []int{1, 4, 6, 7, 12} {
		est := wizard.CalculatePricing("Custom mug glazing workshop", wizard.VenueStudio, size, nil)

		assert.Equal(t, 35.0, est.PerPerson, "size %d", size)
	}

	onSite := wizard.CalculatePricing("Custom candle making workshops", wizard.VenueOnSite, 3, nil)
	assert.Equal(t, 45.0, onSite.PerPerson)
	assert.Equal(t, 135.0, onSite.Total)
}

func TestCalculatePricing_UnpricedCombination(t *testing.T) {
	// No On-site price exists for the wheel; the result is zero, not an error.
	est := wizard.CalculatePricing("Pottery Wheel classes", wizard.VenueOnSite, 10, nil)

	assert.Equal(t, 0.0, est.PerPerson)
	assert.Equal(t, 0.0, est.Total)

	empty := wizard.CalculatePricing("", wizard.VenueStudio, 10, nil)
	assert.Equal(t, 0.0, empty.PerPerson)
}
