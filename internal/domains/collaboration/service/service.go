package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"sort"
	"strings"
	textTemplate "text/template"

	"potteryloop/infras/otel"
	"potteryloop/infras/ses"
	"potteryloop/internal/domains/collaboration/model"
	"potteryloop/internal/domains/collaboration/model/dto"
	"potteryloop/internal/domains/collaboration/repository"
	"potteryloop/shared"
	"potteryloop/shared/constant"
	"potteryloop/shared/timezone"

	"github.com/rs/zerolog/log"
)

const inquiryHTMLTemplate = `<h2>New Collaboration Inquiry</h2>
<p><strong>Inquiry ID:</strong> {{.InquiryID}}</p>
<h3>Contact Information</h3>
<p><strong>Name:</strong> {{.Name}}<br>
<strong>Email:</strong> {{.Email}}<br>
<strong>Phone:</strong> {{.Phone}}<br>
<strong>Organization/Group:</strong> {{.Organization}}</p>
{{- if .SocialMedia}}
<h3>Social Media &amp; Online Presence</h3>
{{- range .SocialMedia}}
<p><strong>{{.Platform}}:</strong> {{.Handle}}</p>
{{- end}}
{{- end}}
<h3>Event Details</h3>
<p><strong>Community Goals:</strong> {{.CommunityGoals}}<br>
<strong>Event Vision:</strong> {{.EventVision}}<br>
<strong>Event Type:</strong> {{.EventType}}{{if .ExpectedAttendance}}<br>
<strong>Expected Attendance:</strong> {{.ExpectedAttendance}}{{end}}</p>
<p><strong>Submitted At:</strong> {{.SubmittedAt}}</p>`

const inquiryTextTemplate = `New Collaboration Inquiry
Inquiry ID: {{.InquiryID}}

CONTACT INFORMATION
Name: {{.Name}}
Email: {{.Email}}
Phone: {{.Phone}}
Organization/Group: {{.Organization}}
{{- if .SocialMedia}}

SOCIAL MEDIA & ONLINE PRESENCE
{{- range .SocialMedia}}
  {{.Platform}}: {{.Handle}}
{{- end}}
{{- end}}

EVENT DETAILS
Community Goals: {{.CommunityGoals}}
Event Vision: {{.EventVision}}
Event Type: {{.EventType}}
{{- if .ExpectedAttendance}}
Expected Attendance: {{.ExpectedAttendance}}
{{- end}}

Submitted At: {{.SubmittedAt}}`

var (
	inquiryHTML = template.Must(template.New("inquiryHTML").Parse(inquiryHTMLTemplate))
	inquiryText = textTemplate.Must(textTemplate.New("inquiryText").Parse(inquiryTextTemplate))
)

type socialMediaLine struct {
	Platform string
	Handle   string
}

type inquiryEmailView struct {
	InquiryID          string
	Name               string
	Email              string
	Phone              string
	Organization       string
	SocialMedia        []socialMediaLine
	CommunityGoals     string
	EventVision        string
	EventType          string
	ExpectedAttendance string
	SubmittedAt        string
}

type Collaboration interface {
	Create(ctx context.Context, req dto.CreateInquiryRequest) (dto.CreateInquiryResponse, error)
	List(ctx context.Context) ([]model.Inquiry, error)
}

type serviceImpl struct {
	repo   repository.Collaboration
	mailer ses.Mailer
	otel   otel.Otel
}

func New(repo repository.Collaboration, mailer ses.Mailer, otel otel.Otel) Collaboration {
	return &serviceImpl{
		repo:   repo,
		mailer: mailer,
		otel:   otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateInquiryRequest) (res dto.CreateInquiryResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	inquiry := req.ToModel()

	if err = s.repo.Insert(ctx, inquiry); err != nil {
		log.Error().Err(err).Msg("failed to store collaboration inquiry")

		return res, fmt.Errorf("failed to store collaboration inquiry: %w", err)
	}

	if err = s.notify(ctx, inquiry); err != nil {
		log.Error().Err(err).Str("collaborationId", inquiry.CollaborationID).Msg("failed to send collaboration notification")

		return res, fmt.Errorf("failed to send collaboration notification: %w", err)
	}

	scope.AddEvent("Collaboration inquiry stored and notification sent: " + inquiry.CollaborationID)

	return dto.CreateInquiryResponse{
		Success:         true,
		Message:         "Collaboration inquiry submitted successfully",
		CollaborationID: inquiry.CollaborationID,
	}, nil
}

func (s *serviceImpl) List(ctx context.Context) (inquiries []model.Inquiry, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".List")
	defer scope.End()
	defer scope.TraceIfError(err)

	inquiries, err = s.repo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list collaboration inquiries: %w", err)
	}

	return inquiries, nil
}

func (s *serviceImpl) notify(ctx context.Context, inquiry model.Inquiry) error {
	view := inquiryEmailView{
		InquiryID:          inquiry.CollaborationID,
		Name:               shared.FirstNonEmpty(inquiry.Name, constant.NotSet),
		Email:              shared.FirstNonEmpty(inquiry.Email, constant.NotSet),
		Phone:              shared.FirstNonEmpty(inquiry.PhoneCountry, "+1") + " " + shared.FirstNonEmpty(inquiry.Phone, constant.NotSet),
		Organization:       shared.FirstNonEmpty(inquiry.Organization, constant.NotSet),
		SocialMedia:        socialMediaLines(inquiry.SocialMedia),
		CommunityGoals:     shared.FirstNonEmpty(inquiry.CommunityGoals, constant.NotSet),
		EventVision:        shared.FirstNonEmpty(inquiry.EventVision, constant.NotSet),
		EventType:          shared.FirstNonEmpty(inquiry.EventType, constant.NotSet),
		ExpectedAttendance: inquiry.ExpectedAttendance,
		SubmittedAt:        timezone.FormatStamp(shared.FirstNonEmpty(inquiry.SubmittedAt, inquiry.Timestamp), constant.DisplayFormat),
	}

	var htmlBuf, textBuf bytes.Buffer

	if err := inquiryHTML.Execute(&htmlBuf, view); err != nil {
		return fmt.Errorf("failed to render collaboration email html: %w", err)
	}

	if err := inquiryText.Execute(&textBuf, view); err != nil {
		return fmt.Errorf("failed to render collaboration email text: %w", err)
	}

	return s.mailer.Send(ctx, ses.Message{
		From:    constant.EmailSenderCreate,
		To:      constant.EmailRecipientStudio,
		Subject: "New Collaboration Inquiry: " + shared.FirstNonEmpty(inquiry.Organization, inquiry.Name, "Unknown"),
		HTML:    htmlBuf.String(),
		Text:    textBuf.String(),
	})
}

// socialMediaLines keeps only filled-in handles, capitalized and in a stable
// order for the rendered body.
func socialMediaLines(socialMedia map[string]string) []socialMediaLine {
	lines := make([]socialMediaLine, 0, len(socialMedia))

	for platform, handle := range socialMedia {
		if strings.TrimSpace(handle) == "" {
			continue
		}

		lines = append(lines, socialMediaLine{
			Platform: capitalize(platform),
			Handle:   handle,
		})
	}

	sort.Slice(lines, func(i, j int) bool {
		return lines[i].Platform < lines[j].Platform
	})

	return lines
}

func capitalize(word string) string {
	if word == "" {
		return word
	}

	return strings.ToUpper(word[:1]) + word[1:]
}
