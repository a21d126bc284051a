package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"potteryloop/config"
	"potteryloop/infras/otel/mocks"
	"potteryloop/infras/ses"
	sesMocks "potteryloop/infras/ses/mocks"
	promoMocks "potteryloop/internal/domains/promo/mocks"
	"potteryloop/internal/domains/promo/model"
	"potteryloop/internal/domains/promo/model/dto"
	"potteryloop/internal/domains/promo/service"
)

func newService(t *testing.T) (service.Promo, *promoMocks.MockPromo, *sesMocks.MockMailer) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockRepo := promoMocks.NewMockPromo(ctrl)
	mockMailer := sesMocks.NewMockMailer(ctrl)

	cfg := &config.Config{}
	cfg.Email.BookingsURL = "https://ThePotteryLoop.com"

	return service.New(mockRepo, mockMailer, cfg, mocks.NewOtel()), mockRepo, mockMailer
}

func TestPromoService_Spin_Validation(t *testing.T) {
	svc, _, _ := newService(t)

	tests := []struct {
		name    string
		req     dto.SpinRequest
		wantMsg string
	}{
		{
			name:    "missing name",
			req:     dto.SpinRequest{Email: "kiln@example.com", Consent: true},
			wantMsg: "Name is required",
		},
		{
			name:    "blank name",
			req:     dto.SpinRequest{Name: "   ", Email: "kiln@example.com", Consent: true},
			wantMsg: "Name is required",
		},
		{
			name:    "missing email",
			req:     dto.SpinRequest{Name: "Robin", Consent: true},
			wantMsg: "Email is required",
		},
		{
			name:    "malformed email",
			req:     dto.SpinRequest{Name: "Robin", Email: "not-an-email", Consent: true},
			wantMsg: "Invalid email address",
		},
		{
			name:    "missing consent",
			req:     dto.SpinRequest{Name: "Robin", Email: "kiln@example.com"},
			wantMsg: "Consent is required to participate",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Spin(context.Background(), tt.req)

			require.Error(t, err)
			assert.Equal(t, tt.wantMsg, err.Error())
		})
	}
}

func TestPromoService_Spin_NewPlayer(t *testing.T) {
	svc, mockRepo, mockMailer := newService(t)

	mockRepo.EXPECT().
		FindByEmail(gomock.Any(), "kiln@example.com").
		Return(model.GamePlay{}, false, nil)

	var stored model.GamePlay

	mockRepo.EXPECT().
		Insert(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, play model.GamePlay) error {
			stored = play

			return nil
		})

	mockMailer.EXPECT().
		Send(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, msg ses.Message) error {
			assert.Equal(t, "The Pottery Loop <create@potterychicago.com>", msg.From)
			assert.Equal(t, "kiln@example.com", msg.To)
			assert.Equal(t, "Your Booking Code: "+stored.Code, msg.Subject)
			assert.Contains(t, msg.Text, stored.Label)

			return nil
		})

	res, err := svc.Spin(context.Background(), dto.SpinRequest{
		Name:    "  Robin Vance  ",
		Email:   "kiln@example.com",
		Consent: true,
	})

	require.NoError(t, err)
	assert.True(t, res.Success)
	assert.False(t, res.AlreadySent)

	offer, ok := model.OfferByCode(res.Code)
	require.True(t, ok, "issued code must come from the catalog")
	assert.Equal(t, offer.Label, res.OfferLabel)
	assert.Equal(t, offer.Link, res.Link)

	assert.Equal(t, "Robin Vance", stored.Name)
	assert.Equal(t, "kiln@example.com", stored.Email)
	assert.True(t, stored.Consent)
	assert.True(t, stored.EmailSent)
	assert.NotEmpty(t, stored.ID)
}

func TestPromoService_Spin_AlreadySent(t *testing.T) {
	svc, mockRepo, _ := newService(t)

	mockRepo.EXPECT().
		FindByEmail(gomock.Any(), "kiln@example.com").
		Return(model.GamePlay{
			ID:        "7b0c3f4e-9be1-4a0f-8a54-1f2a6d9d2c11",
			Email:     "kiln@example.com",
			Label:     "Get $10 off a Wheel Throwing class",
			Code:      "WHEEL10",
			Link:      "https://old.example.com/wheel",
			EmailSent: true,
		}, true, nil)

	res, err := svc.Spin(context.Background(), dto.SpinRequest{
		Name:    "Robin",
		Email:   "kiln@example.com",
		Consent: true,
	})

	require.NoError(t, err)
	assert.True(t, res.Success)
	assert.True(t, res.AlreadySent)
	assert.Equal(t, "WHEEL10", res.Code)
	assert.Equal(t, "Get $10 off a Wheel Throwing class", res.OfferLabel)
	assert.Equal(t, "https://www.thepotteryloop.com/service-page/intro-pottery-wheel-class", res.Link)
}

func TestPromoService_Spin_LookupFailureIsBestEffort(t *testing.T) {
	svc, mockRepo, mockMailer := newService(t)

	mockRepo.EXPECT().
		FindByEmail(gomock.Any(), "kiln@example.com").
		Return(model.GamePlay{}, false, errors.New("index not found"))

	mockRepo.EXPECT().
		Insert(gomock.Any(), gomock.Any()).
		Return(nil)

	mockMailer.EXPECT().
		Send(gomock.Any(), gomock.Any()).
		Return(nil)

	res, err := svc.Spin(context.Background(), dto.SpinRequest{
		Name:    "Robin",
		Email:   "kiln@example.com",
		Consent: true,
	})

	require.NoError(t, err)
	assert.True(t, res.Success)
	assert.False(t, res.AlreadySent)
}

func TestPromoService_Spin_StoreFailure(t *testing.T) {
	svc, mockRepo, _ := newService(t)

	mockRepo.EXPECT().
		FindByEmail(gomock.Any(), "kiln@example.com").
		Return(model.GamePlay{}, false, nil)

	mockRepo.EXPECT().
		Insert(gomock.Any(), gomock.Any()).
		Return(errors.New("table unavailable"))

	_, err := svc.Spin(context.Background(), dto.SpinRequest{
		Name:    "Robin",
		Email:   "kiln@example.com",
		Consent: true,
	})

	assert.Error(t, err)
}
