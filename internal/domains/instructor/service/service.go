package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	textTemplate "text/template"

	"potteryloop/infras/otel"
	"potteryloop/infras/ses"
	"potteryloop/internal/domains/instructor/model"
	"potteryloop/internal/domains/instructor/model/dto"
	"potteryloop/internal/domains/instructor/repository"
	"potteryloop/shared"
	"potteryloop/shared/constant"
	"potteryloop/shared/timezone"

	"github.com/rs/zerolog/log"
)

const applicationHTMLTemplate = `<h2>New Instructor Application</h2>
<p><strong>Application ID:</strong> {{.ApplicationID}}</p>
<h3>Contact Information</h3>
<p><strong>Name:</strong> {{.Name}}<br>
<strong>Email:</strong> {{.Email}}<br>
<strong>Phone:</strong> {{.Phone}}</p>
<h3>Experience</h3>
<p><strong>Experience Level:</strong> {{.Experience}}<br>
<strong>Description:</strong> {{.ExperienceDescription}}</p>
<h3>Position Details</h3>
<p><strong>How Found Out:</strong> {{.HowFoundOut}}<br>
<strong>Aware of Part-Time Status:</strong> {{.AwarePartTime}}<br>
<strong>Available Start Date:</strong> {{.StartDate}}</p>
<p><strong>Submitted At:</strong> {{.SubmittedAt}}</p>`

const applicationTextTemplate = `New Instructor Application
Application ID: {{.ApplicationID}}

CONTACT INFORMATION
Name: {{.Name}}
Email: {{.Email}}
Phone: {{.Phone}}

EXPERIENCE
Experience Level: {{.Experience}}
Description: {{.ExperienceDescription}}

POSITION DETAILS
How Found Out: {{.HowFoundOut}}
Aware of Part-Time Status: {{.AwarePartTime}}
Available Start Date: {{.StartDate}}

Submitted At: {{.SubmittedAt}}`

var (
	applicationHTML = template.Must(template.New("applicationHTML").Parse(applicationHTMLTemplate))
	applicationText = textTemplate.Must(textTemplate.New("applicationText").Parse(applicationTextTemplate))
)

type applicationEmailView struct {
	ApplicationID         string
	Name                  string
	Email                 string
	Phone                 string
	Experience            string
	ExperienceDescription string
	HowFoundOut           string
	AwarePartTime         string
	StartDate             string
	SubmittedAt           string
}

type Instructor interface {
	Create(ctx context.Context, req dto.CreateApplicationRequest) (dto.CreateApplicationResponse, error)
	List(ctx context.Context) ([]model.Application, error)
}

type serviceImpl struct {
	repo   repository.Instructor
	mailer ses.Mailer
	otel   otel.Otel
}

func New(repo repository.Instructor, mailer ses.Mailer, otel otel.Otel) Instructor {
	return &serviceImpl{
		repo:   repo,
		mailer: mailer,
		otel:   otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateApplicationRequest) (res dto.CreateApplicationResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	application := req.ToModel()

	if err = s.repo.Insert(ctx, application); err != nil {
		log.Error().Err(err).Msg("failed to store instructor application")

		return res, fmt.Errorf("failed to store instructor application: %w", err)
	}

	if err = s.notify(ctx, application); err != nil {
		log.Error().Err(err).Str("applicationId", application.ApplicationID).Msg("failed to send application notification")

		return res, fmt.Errorf("failed to send application notification: %w", err)
	}

	scope.AddEvent("Instructor application stored and notification sent: " + application.ApplicationID)

	return dto.CreateApplicationResponse{
		Success:       true,
		Message:       "Application submitted successfully",
		ApplicationID: application.ApplicationID,
	}, nil
}

func (s *serviceImpl) List(ctx context.Context) (applications []model.Application, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".List")
	defer scope.End()
	defer scope.TraceIfError(err)

	applications, err = s.repo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list instructor applications: %w", err)
	}

	return applications, nil
}

func (s *serviceImpl) notify(ctx context.Context, application model.Application) error {
	awarePartTime := "No"
	if application.AwarePartTime {
		awarePartTime = "Yes"
	}

	view := applicationEmailView{
		ApplicationID:         application.ApplicationID,
		Name:                  shared.FirstNonEmpty(application.Name, constant.NotSet),
		Email:                 shared.FirstNonEmpty(application.Email, constant.NotSet),
		Phone:                 shared.FirstNonEmpty(application.PhoneCountry, "+1") + " " + shared.FirstNonEmpty(application.Phone, constant.NotSet),
		Experience:            shared.FirstNonEmpty(application.Experience, constant.NotSet),
		ExperienceDescription: shared.FirstNonEmpty(application.ExperienceDescription, constant.NotSet),
		HowFoundOut:           shared.FirstNonEmpty(application.HowFoundOut, constant.NotSet),
		AwarePartTime:         awarePartTime,
		StartDate:             shared.FirstNonEmpty(application.StartDate, constant.NotSet),
		SubmittedAt:           timezone.FormatStamp(shared.FirstNonEmpty(application.SubmittedAt, application.Timestamp), constant.DisplayFormat),
	}

	var htmlBuf, textBuf bytes.Buffer

	if err := applicationHTML.Execute(&htmlBuf, view); err != nil {
		return fmt.Errorf("failed to render application email html: %w", err)
	}

	if err := applicationText.Execute(&textBuf, view); err != nil {
		return fmt.Errorf("failed to render application email text: %w", err)
	}

	return s.mailer.Send(ctx, ses.Message{
		From:    constant.EmailSenderCreateCased,
		To:      constant.EmailRecipientStudio,
		Subject: "New Instructor Application: " + shared.FirstNonEmpty(application.Name, "Unknown"),
		HTML:    htmlBuf.String(),
		Text:    textBuf.String(),
	})
}
