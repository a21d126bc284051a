package wizard

import "math"

// Estimate is one workshop's pricing breakdown at submission time.
type Estimate struct {
	Workshop           string  `json:"workshop"`
	PerPerson          float64 `json:"perPerson"`
	Total              float64 `json:"total"`
	ReadinessNote      string  `json:"readinessNote"`
	EffectiveGroupSize int     `json:"effectiveGroupSize"`
}

// CalculatePricing prices one workshop for a group. Unknown workshop/venue
// combinations price at zero rather than failing; the selection UI keeps
// unpriced combinations out of reach.
func CalculatePricing(workshop string, venue Venue, groupSize int, exactGroupSize *int) Estimate {
	if workshop == "" || venue == "" {
		return Estimate{Workshop: workshop}
	}

	basePrice := Pricing[workshop][venue]
	effectiveSize := EffectiveGroupSize(groupSize, exactGroupSize)

	perPerson := basePrice
	if _, exempt := glazingExempt[workshop]; !exempt {
		perPerson = basePrice * smallGroupMultiplier(effectiveSize)
	}

	return Estimate{
		Workshop:           workshop,
		PerPerson:          roundCents(perPerson),
		Total:              roundCents(perPerson * float64(effectiveSize)),
		ReadinessNote:      ReadinessNotes[workshop],
		EffectiveGroupSize: effectiveSize,
	}
}

// smallGroupMultiplier is the stepped surcharge for non-glazing workshops.
// Groups of 8 or more pay the base price.
func smallGroupMultiplier(effectiveSize int) float64 {
	switch {
	case effectiveSize >= 1 && effectiveSize <= 3:
		return 2.0
	case effectiveSize >= 4 && effectiveSize <= 5:
		return 1.5
	case effectiveSize == 6:
		return 1.333333
	case effectiveSize == 7:
		return 1.142857
	default:
		return 1.0
	}
}

func roundCents(amount float64) float64 {
	return math.Round(amount*100) / 100
}
