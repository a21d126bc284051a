package wizard

// Step identifies one screen of the booking flow.
type Step string

const (
	StepEventType Step = "eventType"
	StepGroupSize Step = "groupSize"
	StepVenue     Step = "venue"
	StepWorkshop  Step = "workshop"
	StepDates     Step = "dates"
	StepContact   Step = "contact"
	StepReview    Step = "review"
)

// Steps is the wizard's ordered screen sequence.
var Steps = []Step{
	StepEventType,
	StepGroupSize,
	StepVenue,
	StepWorkshop,
	StepDates,
	StepContact,
	StepReview,
}

const defaultGroupSize = 8

// Contact is the guest's reachability block.
type Contact struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email"`
	Notes string `json:"notes"`
}

// FlexibleDates is an "around this date" preference. Flexibility is a day
// count window (or "exact") kept as a note for staff.
type FlexibleDates struct {
	Start       string `json:"start"`
	Flexibility string `json:"flexibility"`
	Notes       string `json:"notes"`
}

// Draft accumulates the guest's choices across the wizard. It mirrors the
// payload the booking endpoint eventually receives, minus the estimates
// derived at submission time.
type Draft struct {
	EventTypes     []string       `json:"eventTypes"`
	GroupSize      int            `json:"groupSize"`
	ExactGroupSize *int           `json:"exactGroupSize,omitempty"`
	Venue          Venue          `json:"venue"`
	Workshops      []string       `json:"workshops"`
	Dates          []string       `json:"dates"`
	FlexibleDates  *FlexibleDates `json:"flexibleDates,omitempty"`
	Timeslots      []string       `json:"timeslots"`
	SpecificTime   string         `json:"specificTime"`
	Contact        Contact        `json:"contact"`
	Agreement      bool           `json:"agreement"`
}

// DefaultDraft is the state of a freshly opened wizard.
func DefaultDraft() Draft {
	return Draft{
		EventTypes: []string{},
		GroupSize:  defaultGroupSize,
		Workshops:  []string{},
		Dates:      []string{},
		Timeslots:  []string{},
	}
}

// EffectiveSize resolves the draft's overflow sentinel to a headcount.
func (d *Draft) EffectiveSize() int {
	return EffectiveGroupSize(d.GroupSize, d.ExactGroupSize)
}
