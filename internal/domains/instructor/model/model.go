package model

const (
	EntityName = "instructor application"
	IDPrefix   = "INST"

	FieldApplicationID = "applicationId"
)

type Application struct {
	ApplicationID string `dynamodbav:"applicationId" json:"applicationId"`
	Timestamp     string `dynamodbav:"timestamp" json:"timestamp"`
	Status        string `dynamodbav:"status" json:"status"`

	Name                  string `dynamodbav:"name" json:"name"`
	Email                 string `dynamodbav:"email" json:"email"`
	Phone                 string `dynamodbav:"phone" json:"phone"`
	PhoneCountry          string `dynamodbav:"phoneCountry,omitempty" json:"phoneCountry,omitempty"`
	Experience            string `dynamodbav:"experience,omitempty" json:"experience,omitempty"`
	ExperienceDescription string `dynamodbav:"experienceDescription,omitempty" json:"experienceDescription,omitempty"`
	HowFoundOut           string `dynamodbav:"howFoundOut,omitempty" json:"howFoundOut,omitempty"`
	AwarePartTime         bool   `dynamodbav:"awarePartTime" json:"awarePartTime"`
	StartDate             string `dynamodbav:"startDate,omitempty" json:"startDate,omitempty"`
	SubmittedAt           string `dynamodbav:"submittedAt,omitempty" json:"submittedAt,omitempty"`
}
