package dto

import (
	"time"

	"potteryloop/internal/domains/openstudio/model"
	"potteryloop/shared"
	"potteryloop/shared/constant"
)

type CreateWaitlistRequest struct {
	Email      string `json:"email"      validate:"required,email,max=100"`
	CourseDate string `json:"courseDate" validate:"omitempty,max=100"`
}

func (c *CreateWaitlistRequest) ToModel() model.WaitlistRequest {
	return model.WaitlistRequest{
		WaitlistID: shared.SubmissionID(model.IDPrefix),
		Timestamp:  time.Now().UTC().Format(constant.DateFormat),
		Status:     constant.SubmissionStatusPending,

		Email:      c.Email,
		CourseDate: c.CourseDate,
	}
}

type CreateWaitlistResponse struct {
	Success    bool   `json:"success"`
	Message    string `json:"message"`
	WaitlistID string `json:"waitlistId"`
}
