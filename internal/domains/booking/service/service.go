package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"potteryloop/config"
	"potteryloop/infras/otel"
	"potteryloop/infras/ses"
	"potteryloop/internal/domains/booking/model"
	"potteryloop/internal/domains/booking/model/dto"
	"potteryloop/internal/domains/booking/repository"
	"potteryloop/shared/constant"
	"potteryloop/shared/failure"

	"github.com/rs/zerolog/log"
)

type Booking interface {
	Create(ctx context.Context, req dto.CreateBookingRequest) (dto.CreateBookingResponse, error)
	Recent(ctx context.Context) ([]model.Submission, error)
	List(ctx context.Context) ([]model.Submission, error)
	Resend(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo   repository.Booking
	mailer ses.Mailer
	cfg    *config.Config
	otel   otel.Otel
}

func New(repo repository.Booking, mailer ses.Mailer, cfg *config.Config, otel otel.Otel) Booking {
	return &serviceImpl{
		repo:   repo,
		mailer: mailer,
		cfg:    cfg,
		otel:   otel,
	}
}

// Create stores the submission first and emails the studio second. The two
// steps are not atomic; a stored record whose notification failed is picked
// up later by the admin resend tooling.
func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBookingRequest) (res dto.CreateBookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	submission := req.ToModel()

	if err = s.repo.Insert(ctx, submission); err != nil {
		log.Error().Err(err).Msg("failed to store booking")

		return res, fmt.Errorf("failed to store booking: %w", err)
	}

	if err = s.notify(ctx, submission); err != nil {
		log.Error().Err(err).Str("bookingId", submission.BookingID).Msg("failed to send booking notification")

		return res, fmt.Errorf("failed to send booking notification: %w", err)
	}

	scope.AddEvent("Booking stored and notification sent: " + submission.BookingID)

	return dto.CreateBookingResponse{
		Success:   true,
		Message:   "Booking submitted successfully",
		BookingID: submission.BookingID,
	}, nil
}

// Recent returns the newest submissions first, capped for terminal output.
func (s *serviceImpl) Recent(ctx context.Context) (submissions []model.Submission, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Recent")
	defer scope.End()
	defer scope.TraceIfError(err)

	submissions, err = s.repo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}

	sort.Slice(submissions, func(i, j int) bool {
		return submissions[i].Timestamp > submissions[j].Timestamp
	})

	if len(submissions) > constant.RecentListSize {
		submissions = submissions[:constant.RecentListSize]
	}

	return submissions, nil
}

func (s *serviceImpl) List(ctx context.Context) (submissions []model.Submission, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".List")
	defer scope.End()
	defer scope.TraceIfError(err)

	submissions, err = s.repo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}

	return submissions, nil
}

// Resend re-sends the studio notification for one stored submission.
func (s *serviceImpl) Resend(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Resend")
	defer scope.End()
	defer scope.TraceIfError(err)

	submission, found, err := s.repo.Get(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to load booking: %w", err)
	}

	if !found {
		return failure.NotFound("booking not found") // nolint:wrapcheck
	}

	if err = s.notify(ctx, submission); err != nil {
		return fmt.Errorf("failed to resend booking notification: %w", err)
	}

	return nil
}

func (s *serviceImpl) notify(ctx context.Context, submission model.Submission) error {
	html, text, err := renderEmail(submission)
	if err != nil {
		return err
	}

	return s.mailer.Send(ctx, ses.Message{
		From:    constant.EmailSenderCreate,
		To:      constant.EmailRecipientStudio,
		Subject: "New Booking Request: " + submission.Contact.Name + " - " + strings.Join(submission.EventTypes, ", "),
		HTML:    html,
		Text:    text,
	})
}
