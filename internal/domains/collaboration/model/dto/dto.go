package dto

import (
	"time"

	"potteryloop/internal/domains/collaboration/model"
	"potteryloop/shared"
	"potteryloop/shared/constant"
)

type CreateInquiryRequest struct {
	Name               string            `json:"name"               validate:"required,max=100"`
	Email              string            `json:"email"              validate:"required,email,max=100"`
	Phone              string            `json:"phone"              validate:"required,phone,max=30"`
	PhoneCountry       string            `json:"phoneCountry"       validate:"omitempty,max=10"`
	Organization       string            `json:"organization"       validate:"omitempty,max=200"`
	SocialMedia        map[string]string `json:"socialMedia"        validate:"omitempty"`
	CommunityGoals     string            `json:"communityGoals"     validate:"omitempty,max=5000"`
	EventVision        string            `json:"eventVision"        validate:"omitempty,max=5000"`
	EventType          string            `json:"eventType"          validate:"omitempty,max=200"`
	ExpectedAttendance string            `json:"expectedAttendance" validate:"omitempty,max=100"`
	SubmittedAt        string            `json:"submittedAt"        validate:"omitempty"`
}

func (c *CreateInquiryRequest) ToModel() model.Inquiry {
	return model.Inquiry{
		CollaborationID: shared.SubmissionID(model.IDPrefix),
		Timestamp:       time.Now().UTC().Format(constant.DateFormat),
		Status:          constant.SubmissionStatusPending,

		Name:               c.Name,
		Email:              c.Email,
		Phone:              c.Phone,
		PhoneCountry:       c.PhoneCountry,
		Organization:       c.Organization,
		SocialMedia:        c.SocialMedia,
		CommunityGoals:     c.CommunityGoals,
		EventVision:        c.EventVision,
		EventType:          c.EventType,
		ExpectedAttendance: c.ExpectedAttendance,
		SubmittedAt:        c.SubmittedAt,
	}
}

type CreateInquiryResponse struct {
	Success         bool   `json:"success"`
	Message         string `json:"message"`
	CollaborationID string `json:"collaborationId"`
}
