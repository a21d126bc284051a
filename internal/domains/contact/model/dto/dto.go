package dto

import (
	"time"

	"potteryloop/internal/domains/contact/model"
	"potteryloop/shared"
	"potteryloop/shared/constant"
)

type CreateMessageRequest struct {
	Name        string `json:"name"        validate:"required,max=100"`
	Email       string `json:"email"       validate:"required,email,max=100"`
	Message     string `json:"message"     validate:"required,max=5000"`
	SubmittedAt string `json:"submittedAt" validate:"omitempty"`
}

func (c *CreateMessageRequest) ToModel() model.Message {
	return model.Message{
		MessageID: shared.SubmissionID(model.IDPrefix),
		Timestamp: time.Now().UTC().Format(constant.DateFormat),
		Status:    constant.SubmissionStatusNew,

		Name:        c.Name,
		Email:       c.Email,
		Message:     c.Message,
		SubmittedAt: c.SubmittedAt,
	}
}

type CreateMessageResponse struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	MessageID string `json:"messageId"`
}
