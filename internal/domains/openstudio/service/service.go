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
	"potteryloop/internal/domains/openstudio/model"
	"potteryloop/internal/domains/openstudio/model/dto"
	"potteryloop/internal/domains/openstudio/repository"
	"potteryloop/shared"
	"potteryloop/shared/constant"
	"potteryloop/shared/timezone"

	"github.com/rs/zerolog/log"
)

const waitlistHTMLTemplate = `<h2>New Open Studio Waitlist Request</h2>
<p><strong>Waitlist ID:</strong> {{.WaitlistID}}</p>
<p><strong>Email:</strong> {{.Email}}<br>
<strong>Course Date:</strong> {{.CourseDate}}</p>
<p><strong>Submitted At:</strong> {{.SubmittedAt}}</p>`

const waitlistTextTemplate = `New Open Studio Waitlist Request
Waitlist ID: {{.WaitlistID}}

Email: {{.Email}}
Course Date: {{.CourseDate}}

Submitted At: {{.SubmittedAt}}`

var (
	waitlistHTML = template.Must(template.New("waitlistHTML").Parse(waitlistHTMLTemplate))
	waitlistText = textTemplate.Must(textTemplate.New("waitlistText").Parse(waitlistTextTemplate))
)

type waitlistEmailView struct {
	WaitlistID  string
	Email       string
	CourseDate  string
	SubmittedAt string
}

type OpenStudio interface {
	Create(ctx context.Context, req dto.CreateWaitlistRequest) (dto.CreateWaitlistResponse, error)
	List(ctx context.Context) ([]model.WaitlistRequest, error)
}

type serviceImpl struct {
	repo   repository.OpenStudio
	mailer ses.Mailer
	otel   otel.Otel
}

func New(repo repository.OpenStudio, mailer ses.Mailer, otel otel.Otel) OpenStudio {
	return &serviceImpl{
		repo:   repo,
		mailer: mailer,
		otel:   otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateWaitlistRequest) (res dto.CreateWaitlistResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	request := req.ToModel()

	if err = s.repo.Insert(ctx, request); err != nil {
		log.Error().Err(err).Msg("failed to store waitlist request")

		return res, fmt.Errorf("failed to store waitlist request: %w", err)
	}

	if err = s.notify(ctx, request); err != nil {
		log.Error().Err(err).Str("waitlistId", request.WaitlistID).Msg("failed to send waitlist notification")

		return res, fmt.Errorf("failed to send waitlist notification: %w", err)
	}

	scope.AddEvent("Waitlist request stored and notification sent: " + request.WaitlistID)

	return dto.CreateWaitlistResponse{
		Success:    true,
		Message:    "Waitlist request submitted successfully",
		WaitlistID: request.WaitlistID,
	}, nil
}

func (s *serviceImpl) List(ctx context.Context) (requests []model.WaitlistRequest, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".List")
	defer scope.End()
	defer scope.TraceIfError(err)

	requests, err = s.repo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list waitlist requests: %w", err)
	}

	return requests, nil
}

func (s *serviceImpl) notify(ctx context.Context, request model.WaitlistRequest) error {
	view := waitlistEmailView{
		WaitlistID:  request.WaitlistID,
		Email:       shared.FirstNonEmpty(request.Email, constant.NotSet),
		CourseDate:  shared.FirstNonEmpty(request.CourseDate, constant.NotSet),
		SubmittedAt: timezone.FormatStamp(request.Timestamp, constant.DisplayFormat),
	}

	var htmlBuf, textBuf bytes.Buffer

	if err := waitlistHTML.Execute(&htmlBuf, view); err != nil {
		return fmt.Errorf("failed to render waitlist email html: %w", err)
	}

	if err := waitlistText.Execute(&textBuf, view); err != nil {
		return fmt.Errorf("failed to render waitlist email text: %w", err)
	}

	return s.mailer.Send(ctx, ses.Message{
		From:    constant.EmailSenderCreateCased,
		To:      constant.EmailRecipientStudio,
		Subject: "New Open Studio Waitlist Request: " + shared.FirstNonEmpty(request.Email, "Unknown"),
		HTML:    htmlBuf.String(),
		Text:    textBuf.String(),
	})
}
