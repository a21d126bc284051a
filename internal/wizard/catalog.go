package wizard

import "math"

type Venue string

const (
	VenueStudio Venue = "Studio"
	VenueOnSite Venue = "On-site"
)

// OnSiteMinimumSize is the smallest effective group the studio will travel for.
const OnSiteMinimumSize = 10

// GroupSizeOverflow is the slider's "40 or more" sentinel; an exact size
// refines it.
const GroupSizeOverflow = 40

// UnlimitedSize marks a workshop with no upper group bound.
const UnlimitedSize = math.MaxInt

// EventTypes are the selectable occasion categories.
var EventTypes = []string{"Corporate", "Birthday", "Bridal Party", "Other Gathering"}

// Constraint is the static booking rule for one workshop.
type Constraint struct {
	MinSize int
	MaxSize int
	Venues  []Venue
}

// Constraints holds the per-workshop group size and venue rules.
var Constraints = map[string]Constraint{
	"Pottery Wheel classes":                 {MinSize: 1, MaxSize: 15, Venues: []Venue{VenueStudio}},
	"Handbuilding workshops":                {MinSize: 1, MaxSize: 30, Venues: []Venue{VenueStudio}},
	"Custom mug glazing workshop":           {MinSize: 1, MaxSize: UnlimitedSize, Venues: []Venue{VenueStudio, VenueOnSite}},
	"Custom candle making workshops":        {MinSize: 1, MaxSize: UnlimitedSize, Venues: []Venue{VenueStudio, VenueOnSite}},
	"Custom magnet making workshops":        {MinSize: 1, MaxSize: 20, Venues: []Venue{VenueStudio}},
	"Custom Glazing trinket tray workshops": {MinSize: 1, MaxSize: UnlimitedSize, Venues: []Venue{VenueStudio, VenueOnSite}},
}

// Pricing is the base per-person price for each workshop and venue pair.
var Pricing = map[string]map[Venue]float64{
	"Pottery Wheel classes":                 {VenueStudio: 45},
	"Handbuilding workshops":                {VenueStudio: 45},
	"Custom mug glazing workshop":           {VenueStudio: 35, VenueOnSite: 40},
	"Custom candle making workshops":        {VenueStudio: 40, VenueOnSite: 45},
	"Custom magnet making workshops":        {VenueStudio: 45},
	"Custom Glazing trinket tray workshops": {VenueStudio: 35, VenueOnSite: 40},
}

// ReadinessNotes tells guests when their pieces are ready to take home.
var ReadinessNotes = map[string]string{
	"Pottery Wheel classes":                 "Ready in ~3 weeks (single color glazing)",
	"Handbuilding workshops":                "Ready in ~3 weeks (single color glazing)",
	"Custom mug glazing workshop":           "Ready in ~2 weeks",
	"Custom candle making workshops":        "Take home same day (or curing guidance)",
	"Custom magnet making workshops":        "Glazed during session (set of 4 tiny fridge magnets)",
	"Custom Glazing trinket tray workshops": "Ready in ~2 weeks",
}

// glazingExempt lists the workshops that never carry the small-group
// surcharge.
var glazingExempt = map[string]struct{}{
	"Custom mug glazing workshop":           {},
	"Custom candle making workshops":        {},
	"Custom Glazing trinket tray workshops": {},
}

// EffectiveGroupSize resolves the overflow sentinel: the exact size counts
// only when the slider sits at 40.
func EffectiveGroupSize(groupSize int, exactGroupSize *int) int {
	if groupSize == GroupSizeOverflow && exactGroupSize != nil && *exactGroupSize > 0 {
		return *exactGroupSize
	}

	return groupSize
}

// WorkshopAllowed reports whether the workshop accepts the given effective
// group size at the given venue.
func WorkshopAllowed(workshop string, effectiveSize int, venue Venue) bool {
	rules, ok := Constraints[workshop]
	if !ok {
		return false
	}

	if effectiveSize < rules.MinSize || effectiveSize > rules.MaxSize {
		return false
	}

	return venueAllowed(rules, venue)
}

func venueAllowed(rules Constraint, venue Venue) bool {
	for _, v := range rules.Venues {
		if v == venue {
			return true
		}
	}

	return false
}
