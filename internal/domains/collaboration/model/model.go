package model

const (
	EntityName = "collaboration inquiry"
	IDPrefix   = "COLLAB"

	FieldCollaborationID = "collaborationId"
)

type Inquiry struct {
	CollaborationID string `dynamodbav:"collaborationId" json:"collaborationId"`
	Timestamp       string `dynamodbav:"timestamp" json:"timestamp"`
	Status          string `dynamodbav:"status" json:"status"`

	Name               string            `dynamodbav:"name" json:"name"`
	Email              string            `dynamodbav:"email" json:"email"`
	Phone              string            `dynamodbav:"phone" json:"phone"`
	PhoneCountry       string            `dynamodbav:"phoneCountry,omitempty" json:"phoneCountry,omitempty"`
	Organization       string            `dynamodbav:"organization,omitempty" json:"organization,omitempty"`
	SocialMedia        map[string]string `dynamodbav:"socialMedia,omitempty" json:"socialMedia,omitempty"`
	CommunityGoals     string            `dynamodbav:"communityGoals,omitempty" json:"communityGoals,omitempty"`
	EventVision        string            `dynamodbav:"eventVision,omitempty" json:"eventVision,omitempty"`
	EventType          string            `dynamodbav:"eventType,omitempty" json:"eventType,omitempty"`
	ExpectedAttendance string            `dynamodbav:"expectedAttendance,omitempty" json:"expectedAttendance,omitempty"`
	SubmittedAt        string            `dynamodbav:"submittedAt,omitempty" json:"submittedAt,omitempty"`
}
