package dto

import (
	"time"

	"potteryloop/internal/domains/booking/model"
	"potteryloop/shared"
	"potteryloop/shared/constant"
)

// CreateBookingRequest is the wizard's aggregate payload. Everything beyond
// the contact block is optional at the boundary and defaults to its zero
// value; the wizard has already run its own per-step validation.
type CreateBookingRequest struct {
	EventTypes        []string                  `json:"eventTypes"        validate:"required,min=1"`
	GroupSize         int                       `json:"groupSize"         validate:"required,min=1,max=40"`
	ExactGroupSize    *int                      `json:"exactGroupSize"    validate:"omitempty,min=40"`
	Venue             string                    `json:"venue"             validate:"omitempty,oneof=Studio On-site"`
	Workshops         []string                  `json:"workshops"         validate:"required,min=1"`
	Dates             []string                  `json:"dates"             validate:"omitempty"`
	FlexibleDates     *FlexibleDatesRequest     `json:"flexibleDates"     validate:"omitempty"`
	Timeslots         []string                  `json:"timeslots"         validate:"omitempty"`
	SpecificTime      string                    `json:"specificTime"      validate:"omitempty"`
	Contact           ContactRequest            `json:"contact"           validate:"required"`
	Agreement         bool                      `json:"agreement"         validate:"omitempty"`
	WorkshopEstimates []WorkshopEstimateRequest `json:"workshopEstimates" validate:"omitempty"`
	TotalEstimate     float64                   `json:"totalEstimate"     validate:"omitempty"`
	SubmittedAt       string                    `json:"submittedAt"       validate:"omitempty"`
}

type ContactRequest struct {
	Name  string `json:"name"  validate:"required,max=100"`
	Phone string `json:"phone" validate:"required,phone,max=30"`
	Email string `json:"email" validate:"required,email,max=100"`
	Notes string `json:"notes" validate:"omitempty,max=2000"`
}

type FlexibleDatesRequest struct {
	Start       string `json:"start"       validate:"omitempty"`
	Flexibility string `json:"flexibility" validate:"omitempty,oneof=exact 1 2 3 7 14"`
	Notes       string `json:"notes"       validate:"omitempty,max=2000"`
}

type WorkshopEstimateRequest struct {
	Workshop           string  `json:"workshop"`
	PerPerson          float64 `json:"perPerson"`
	Total              float64 `json:"total"`
	ReadinessNote      string  `json:"readinessNote"`
	EffectiveGroupSize int     `json:"effectiveGroupSize"`
}

func (c *CreateBookingRequest) ToModel() model.Submission {
	estimates := make([]model.WorkshopEstimate, len(c.WorkshopEstimates))
	for i, est := range c.WorkshopEstimates {
		estimates[i] = model.WorkshopEstimate{
			Workshop:           est.Workshop,
			PerPerson:          est.PerPerson,
			Total:              est.Total,
			ReadinessNote:      est.ReadinessNote,
			EffectiveGroupSize: est.EffectiveGroupSize,
		}
	}

	var flexible *model.FlexibleDates
	if c.FlexibleDates != nil {
		flexible = &model.FlexibleDates{
			Start:       c.FlexibleDates.Start,
			Flexibility: c.FlexibleDates.Flexibility,
			Notes:       c.FlexibleDates.Notes,
		}
	}

	return model.Submission{
		BookingID: shared.SubmissionID(model.IDPrefix),
		Timestamp: time.Now().UTC().Format(constant.DateFormat),
		Status:    constant.SubmissionStatusPending,

		EventTypes:        c.EventTypes,
		GroupSize:         c.GroupSize,
		ExactGroupSize:    c.ExactGroupSize,
		Venue:             c.Venue,
		Workshops:         c.Workshops,
		Dates:             c.Dates,
		FlexibleDates:     flexible,
		Timeslots:         c.Timeslots,
		SpecificTime:      c.SpecificTime,
		Contact: model.Contact{
			Name:  c.Contact.Name,
			Phone: c.Contact.Phone,
			Email: c.Contact.Email,
			Notes: c.Contact.Notes,
		},
		Agreement:         c.Agreement,
		WorkshopEstimates: estimates,
		TotalEstimate:     c.TotalEstimate,
		SubmittedAt:       c.SubmittedAt,
	}
}

// CreateBookingResponse is the flat success envelope the site expects.
type CreateBookingResponse struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	BookingID string `json:"bookingId"`
}
