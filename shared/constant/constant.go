package constant

import (
	"time"
)

const (
	SubmissionStatusPending = "pending"
	SubmissionStatusNew     = "new"
)

const (
	FieldID        = "id"
	FieldEmail     = "email"
	FieldTimestamp = "timestamp"
	FieldStatus    = "status"
	FieldEmailSent = "emailSent"
)

const (
	RequestParamID = "id"
)

const (
	DateFormat     = time.RFC3339
	DayFormat      = "2006-01-02"
	DisplayFormat  = "January 2, 2006 at 3:04 PM"
	RecentListSize = 20
)

const (
	EmailSenderCreate      = "create@potterychicago.com"
	EmailSenderCreateCased = "Create@potterychicago.com"
	EmailSenderPromo       = "The Pottery Loop <create@potterychicago.com>"
	EmailRecipientStudio   = "PotteryChicago@gmail.com"
)

const (
	OtelServiceScopeName    = "service"
	OtelRepositoryScopeName = "repository"
	OtelHandlerScopeName    = "handler"
	OtelMailerScopeName     = "mailer"
	OtelStoreScopeName      = "store"
)

const (
	RequestHeaderContentType = "Content-Type"
	RequestHeaderRateLimit   = "X-RateLimit-Limit"
	RequestHeaderRemaining   = "X-RateLimit-Remaining"
	RequestHeaderWindow      = "X-RateLimit-Window"
)

const (
	ContentTypeJSON = "application/json"
)

const (
	ResponseErrorPrepareShutdown      = "SERVER PREPARING TO SHUT DOWN"
	ResponseErrorUnhealthy            = "SERVER UNHEALTHY"
	ResponseErrorRequestLimitExceeded = "REQUEST LIMIT EXCEEDED"
)

const (
	ServerEnvDevelopment = "development"
	ServerEnvProduction  = "production"
)

const (
	Asterix = "*"
	Empty   = ""
	NotSet  = "N/A"
)
