package model

const (
	EntityName = "booking"
	IDPrefix   = "BK"

	FieldBookingID = "bookingId"
)

// Submission is one stored booking request: the generated id, receive
// timestamp, and status wrapped around the wizard payload verbatim.
type Submission struct {
	BookingID string `dynamodbav:"bookingId" json:"bookingId"`
	Timestamp string `dynamodbav:"timestamp" json:"timestamp"`
	Status    string `dynamodbav:"status" json:"status"`

	EventTypes        []string            `dynamodbav:"eventTypes" json:"eventTypes"`
	GroupSize         int                 `dynamodbav:"groupSize" json:"groupSize"`
	ExactGroupSize    *int                `dynamodbav:"exactGroupSize,omitempty" json:"exactGroupSize,omitempty"`
	Venue             string              `dynamodbav:"venue" json:"venue"`
	Workshops         []string            `dynamodbav:"workshops" json:"workshops"`
	Dates             []string            `dynamodbav:"dates" json:"dates"`
	FlexibleDates     *FlexibleDates      `dynamodbav:"flexibleDates,omitempty" json:"flexibleDates,omitempty"`
	Timeslots         []string            `dynamodbav:"timeslots,omitempty" json:"timeslots,omitempty"`
	SpecificTime      string              `dynamodbav:"specificTime,omitempty" json:"specificTime,omitempty"`
	Contact           Contact             `dynamodbav:"contact" json:"contact"`
	Agreement         bool                `dynamodbav:"agreement" json:"agreement"`
	WorkshopEstimates []WorkshopEstimate  `dynamodbav:"workshopEstimates,omitempty" json:"workshopEstimates,omitempty"`
	TotalEstimate     float64             `dynamodbav:"totalEstimate" json:"totalEstimate"`
	SubmittedAt       string              `dynamodbav:"submittedAt,omitempty" json:"submittedAt,omitempty"`
}

type Contact struct {
	Name  string `dynamodbav:"name" json:"name"`
	Phone string `dynamodbav:"phone" json:"phone"`
	Email string `dynamodbav:"email" json:"email"`
	Notes string `dynamodbav:"notes,omitempty" json:"notes,omitempty"`
}

// FlexibleDates carries the "around this date" preference. Flexibility is a
// signed day-count window kept as a note for staff, never checked against a
// calendar.
type FlexibleDates struct {
	Start       string `dynamodbav:"start,omitempty" json:"start,omitempty"`
	Flexibility string `dynamodbav:"flexibility,omitempty" json:"flexibility,omitempty"`
	Notes       string `dynamodbav:"notes,omitempty" json:"notes,omitempty"`
}

type WorkshopEstimate struct {
	Workshop           string  `dynamodbav:"workshop" json:"workshop"`
	PerPerson          float64 `dynamodbav:"perPerson" json:"perPerson"`
	Total              float64 `dynamodbav:"total" json:"total"`
	ReadinessNote      string  `dynamodbav:"readinessNote,omitempty" json:"readinessNote,omitempty"`
	EffectiveGroupSize int     `dynamodbav:"effectiveGroupSize,omitempty" json:"effectiveGroupSize,omitempty"`
}
