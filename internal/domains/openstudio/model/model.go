package model

const (
	EntityName = "waitlist request"
	IDPrefix   = "OS"

	FieldWaitlistID = "waitlistId"
)

type WaitlistRequest struct {
	WaitlistID string `dynamodbav:"waitlistId" json:"waitlistId"`
	Timestamp  string `dynamodbav:"timestamp" json:"timestamp"`
	Status     string `dynamodbav:"status" json:"status"`

	Email      string `dynamodbav:"email" json:"email"`
	CourseDate string `dynamodbav:"courseDate" json:"courseDate"`
}
