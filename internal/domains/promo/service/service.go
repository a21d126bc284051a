package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"math/rand/v2"
	"regexp"
	"strings"
	textTemplate "text/template"
	"time"

	"potteryloop/config"
	"potteryloop/infras/otel"
	"potteryloop/infras/ses"
	"potteryloop/internal/domains/promo/model"
	"potteryloop/internal/domains/promo/model/dto"
	"potteryloop/internal/domains/promo/repository"
	"potteryloop/shared"
	"potteryloop/shared/constant"
	"potteryloop/shared/failure"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// emailPattern mirrors the check the game form runs client side: one @, no
// whitespace, and a dotted domain.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

const offerHTMLTemplate = `<p>Hi {{.Name}},</p>
<p>Your discount code for your pottery class booking:</p>
<p><strong>{{.Label}}</strong></p>
<p>Code: <strong>{{.Code}}</strong></p>
<p>Booking link: {{.Link}}</p>
<p>Valid for 24 hours.</p>
<p>Happy holidays!</p>
<p>The Pottery Loop</p>`

const offerTextTemplate = `Hi {{.Name}},

Your discount code for your pottery class booking:

{{.Label}}

Code: {{.Code}}

Booking link: {{.Link}}

Valid for 24 hours.

Happy holidays!

The Pottery Loop`

var (
	offerHTML = template.Must(template.New("offerHTML").Parse(offerHTMLTemplate))
	offerText = textTemplate.Must(textTemplate.New("offerText").Parse(offerTextTemplate))
)

type offerEmailView struct {
	Name  string
	Label string
	Code  string
	Link  string
}

type Promo interface {
	Spin(ctx context.Context, req dto.SpinRequest) (dto.SpinResponse, error)
	List(ctx context.Context) ([]model.GamePlay, error)
}

type serviceImpl struct {
	repo   repository.Promo
	mailer ses.Mailer
	cfg    *config.Config
	otel   otel.Otel
}

func New(repo repository.Promo, mailer ses.Mailer, cfg *config.Config, otel otel.Otel) Promo {
	return &serviceImpl{
		repo:   repo,
		mailer: mailer,
		cfg:    cfg,
		otel:   otel,
	}
}

// Spin runs one wheel play: validate the entry, replay a prior offer when the
// same address already got one, otherwise draw a random offer, store it, and
// email it to the player. The duplicate check is best-effort; a failing email
// index downgrades to "no prior play" instead of rejecting the spin.
func (s *serviceImpl) Spin(ctx context.Context, req dto.SpinRequest) (res dto.SpinResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Spin")
	defer scope.End()
	defer scope.TraceIfError(err)

	name := strings.TrimSpace(req.Name)
	email := strings.TrimSpace(req.Email)

	if name == "" {
		return res, failure.NameRequired
	}

	if email == "" {
		return res, failure.EmailRequired
	}

	if !emailPattern.MatchString(email) {
		return res, failure.InvalidEmail
	}

	if !req.Consent {
		return res, failure.ConsentRequired
	}

	existing, found, lookupErr := s.repo.FindByEmail(ctx, email)
	if lookupErr != nil {
		log.Warn().Err(lookupErr).Msg("email index check skipped")
	}

	if found && existing.EmailSent {
		scope.AddEvent("Replaying prior offer for " + email)

		return dto.SpinResponse{
			Success:     true,
			OfferLabel:  existing.Label,
			Code:        existing.Code,
			Link:        s.replayLink(existing),
			AlreadySent: true,
		}, nil
	}

	offer := model.Offers[rand.IntN(len(model.Offers))]

	play := model.GamePlay{
		ID:        uuid.NewString(),
		Name:      name,
		Email:     email,
		Consent:   true,
		Label:     offer.Label,
		Code:      offer.Code,
		Link:      offer.Link,
		CreatedAt: time.Now().UTC().Format(constant.DateFormat),
		EmailSent: true,
	}

	if err = s.repo.Insert(ctx, play); err != nil {
		log.Error().Err(err).Msg("failed to store game play")

		return res, fmt.Errorf("failed to store game play: %w", err)
	}

	if err = s.sendOffer(ctx, play); err != nil {
		log.Error().Err(err).Str("email", email).Msg("failed to send offer email")

		return res, fmt.Errorf("failed to send offer email: %w", err)
	}

	scope.AddEvent("Offer " + offer.Code + " issued")

	return dto.SpinResponse{
		Success:    true,
		OfferLabel: offer.Label,
		Code:       offer.Code,
		Link:       shared.FirstNonEmpty(offer.Link, s.cfg.Email.BookingsURL),
	}, nil
}

func (s *serviceImpl) List(ctx context.Context) (plays []model.GamePlay, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".List")
	defer scope.End()
	defer scope.TraceIfError(err)

	plays, err = s.repo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list game plays: %w", err)
	}

	return plays, nil
}

// replayLink prefers the catalog's current link over the stored one, so a
// moved booking page does not strand returning players.
func (s *serviceImpl) replayLink(play model.GamePlay) string {
	if offer, ok := model.OfferByCode(play.Code); ok {
		return offer.Link
	}

	return shared.FirstNonEmpty(play.Link, s.cfg.Email.BookingsURL)
}

func (s *serviceImpl) sendOffer(ctx context.Context, play model.GamePlay) error {
	view := offerEmailView{
		Name:  play.Name,
		Label: play.Label,
		Code:  play.Code,
		Link:  shared.FirstNonEmpty(play.Link, s.cfg.Email.BookingsURL),
	}

	var htmlBuf, textBuf bytes.Buffer

	if err := offerHTML.Execute(&htmlBuf, view); err != nil {
		return fmt.Errorf("failed to render offer email html: %w", err)
	}

	if err := offerText.Execute(&textBuf, view); err != nil {
		return fmt.Errorf("failed to render offer email text: %w", err)
	}

	return s.mailer.Send(ctx, ses.Message{
		From:    constant.EmailSenderPromo,
		To:      play.Email,
		Subject: "Your Booking Code: " + play.Code,
		HTML:    htmlBuf.String(),
		Text:    textBuf.String(),
	})
}
