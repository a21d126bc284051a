package dto

import (
	"time"

	"potteryloop/internal/domains/instructor/model"
	"potteryloop/shared"
	"potteryloop/shared/constant"
)

type CreateApplicationRequest struct {
	Name                  string `json:"name"                  validate:"required,max=100"`
	Email                 string `json:"email"                 validate:"required,email,max=100"`
	Phone                 string `json:"phone"                 validate:"required,phone,max=30"`
	PhoneCountry          string `json:"phoneCountry"          validate:"omitempty,max=10"`
	Experience            string `json:"experience"            validate:"omitempty,max=200"`
	ExperienceDescription string `json:"experienceDescription" validate:"omitempty,max=5000"`
	HowFoundOut           string `json:"howFoundOut"           validate:"omitempty,max=500"`
	AwarePartTime         bool   `json:"awarePartTime"         validate:"omitempty"`
	StartDate             string `json:"startDate"             validate:"omitempty,max=100"`
	SubmittedAt           string `json:"submittedAt"           validate:"omitempty"`
}

func (c *CreateApplicationRequest) ToModel() model.Application {
	return model.Application{
		ApplicationID: shared.SubmissionID(model.IDPrefix),
		Timestamp:     time.Now().UTC().Format(constant.DateFormat),
		Status:        constant.SubmissionStatusPending,

		Name:                  c.Name,
		Email:                 c.Email,
		Phone:                 c.Phone,
		PhoneCountry:          c.PhoneCountry,
		Experience:            c.Experience,
		ExperienceDescription: c.ExperienceDescription,
		HowFoundOut:           c.HowFoundOut,
		AwarePartTime:         c.AwarePartTime,
		StartDate:             c.StartDate,
		SubmittedAt:           c.SubmittedAt,
	}
}

type CreateApplicationResponse struct {
	Success       bool   `json:"success"`
	Message       string `json:"message"`
	ApplicationID string `json:"applicationId"`
}
