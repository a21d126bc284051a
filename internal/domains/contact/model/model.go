package model

const (
	EntityName = "contact message"
	IDPrefix   = "MSG"

	FieldMessageID = "messageId"
)

type Message struct {
	MessageID string `dynamodbav:"messageId" json:"messageId"`
	Timestamp string `dynamodbav:"timestamp" json:"timestamp"`
	Status    string `dynamodbav:"status" json:"status"`

	Name        string `dynamodbav:"name" json:"name"`
	Email       string `dynamodbav:"email" json:"email"`
	Message     string `dynamodbav:"message" json:"message"`
	SubmittedAt string `dynamodbav:"submittedAt,omitempty" json:"submittedAt,omitempty"`
}
