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
	"potteryloop/internal/domains/contact/model"
	"potteryloop/internal/domains/contact/model/dto"
	"potteryloop/internal/domains/contact/repository"
	"potteryloop/shared"
	"potteryloop/shared/constant"
	"potteryloop/shared/timezone"

	"github.com/rs/zerolog/log"
)

const contactHTMLTemplate = `<h2>New Contact Message</h2>
<p><strong>Message ID:</strong> {{.MessageID}}</p>
<h3>Contact Information</h3>
<p><strong>Name:</strong> {{.Name}}<br>
<strong>Email:</strong> {{.Email}}</p>
<h3>Message</h3>
<p>{{.Body}}</p>
<p><strong>Submitted At:</strong> {{.SubmittedAt}}</p>`

const contactTextTemplate = `New Contact Message
Message ID: {{.MessageID}}

CONTACT INFORMATION
Name: {{.Name}}
Email: {{.Email}}

MESSAGE
{{.Body}}

Submitted At: {{.SubmittedAt}}`

var (
	contactHTML = template.Must(template.New("contactHTML").Parse(contactHTMLTemplate))
	contactText = textTemplate.Must(textTemplate.New("contactText").Parse(contactTextTemplate))
)

type contactEmailView struct {
	MessageID   string
	Name        string
	Email       string
	Body        string
	SubmittedAt string
}

type Contact interface {
	Create(ctx context.Context, req dto.CreateMessageRequest) (dto.CreateMessageResponse, error)
	List(ctx context.Context) ([]model.Message, error)
}

type serviceImpl struct {
	repo   repository.Contact
	mailer ses.Mailer
	otel   otel.Otel
}

func New(repo repository.Contact, mailer ses.Mailer, otel otel.Otel) Contact {
	return &serviceImpl{
		repo:   repo,
		mailer: mailer,
		otel:   otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateMessageRequest) (res dto.CreateMessageResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	message := req.ToModel()

	if err = s.repo.Insert(ctx, message); err != nil {
		log.Error().Err(err).Msg("failed to store contact message")

		return res, fmt.Errorf("failed to store contact message: %w", err)
	}

	if err = s.notify(ctx, message); err != nil {
		log.Error().Err(err).Str("messageId", message.MessageID).Msg("failed to send contact notification")

		return res, fmt.Errorf("failed to send contact notification: %w", err)
	}

	scope.AddEvent("Contact message stored and notification sent: " + message.MessageID)

	return dto.CreateMessageResponse{
		Success:   true,
		Message:   "Message sent successfully",
		MessageID: message.MessageID,
	}, nil
}

func (s *serviceImpl) List(ctx context.Context) (messages []model.Message, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".List")
	defer scope.End()
	defer scope.TraceIfError(err)

	messages, err = s.repo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list contact messages: %w", err)
	}

	return messages, nil
}

func (s *serviceImpl) notify(ctx context.Context, message model.Message) error {
	view := contactEmailView{
		MessageID:   message.MessageID,
		Name:        shared.FirstNonEmpty(message.Name, constant.NotSet),
		Email:       shared.FirstNonEmpty(message.Email, constant.NotSet),
		Body:        shared.FirstNonEmpty(message.Message, constant.NotSet),
		SubmittedAt: timezone.FormatStamp(shared.FirstNonEmpty(message.SubmittedAt, message.Timestamp), constant.DisplayFormat),
	}

	var htmlBuf, textBuf bytes.Buffer

	if err := contactHTML.Execute(&htmlBuf, view); err != nil {
		return fmt.Errorf("failed to render contact email html: %w", err)
	}

	if err := contactText.Execute(&textBuf, view); err != nil {
		return fmt.Errorf("failed to render contact email text: %w", err)
	}

	return s.mailer.Send(ctx, ses.Message{
		From:    constant.EmailSenderCreate,
		To:      constant.EmailRecipientStudio,
		Subject: "New Contact Message from " + shared.FirstNonEmpty(message.Name, "Unknown"),
		HTML:    htmlBuf.String(),
		Text:    textBuf.String(),
	})
}
