package service_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"potteryloop/config"
	"potteryloop/infras/otel/mocks"
	"potteryloop/infras/ses"
	sesMocks "potteryloop/infras/ses/mocks"
	bookingMocks "potteryloop/internal/domains/booking/mocks"
	"potteryloop/internal/domains/booking/model"
	"potteryloop/internal/domains/booking/model/dto"
	"potteryloop/internal/domains/booking/service"
)

func validRequest() dto.CreateBookingRequest {
	return dto.CreateBookingRequest{
		EventTypes: []string{"Birthday"},
		GroupSize:  5,
		Venue:      "Studio",
		Workshops:  []string{"Pottery Wheel classes"},
		Dates:      []string{"2026-09-12"},
		Contact: dto.ContactRequest{
			Name:  "Jordan Myles",
			Phone: "312-555-0117",
			Email: "jordan@example.com",
		},
		Agreement: true,
		WorkshopEstimates: []dto.WorkshopEstimateRequest{
			{Workshop: "Pottery Wheel classes", PerPerson: 67.5, Total: 337.5, EffectiveGroupSize: 5},
		},
		TotalEstimate: 337.5,
	}
}

func TestBookingService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := bookingMocks.NewMockBooking(ctrl)
	mockMailer := sesMocks.NewMockMailer(ctrl)
	mockOtel := mocks.NewOtel()

	svc := service.New(mockRepo, mockMailer, &config.Config{}, mockOtel)

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
	}{
		{
			name: "stores submission and sends notification",
			setupMock: func() {
				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, submission model.Submission) error {
						assert.True(t, strings.HasPrefix(submission.BookingID, "BK-"))
						assert.Equal(t, "pending", submission.Status)
						assert.Equal(t, 337.5, submission.TotalEstimate)

						return nil
					})

				mockMailer.EXPECT().
					Send(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, msg ses.Message) error {
						assert.Equal(t, "create@potterychicago.com", msg.From)
						assert.Equal(t, "PotteryChicago@gmail.com", msg.To)
						assert.Equal(t, "New Booking Request: Jordan Myles - Birthday", msg.Subject)
						assert.Contains(t, msg.Text, "$67.5 per person")
						assert.Contains(t, msg.HTML, "Jordan Myles")

						return nil
					})
			},
		},
		{
			name: "store error fails the submission",
			setupMock: func() {
				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(errors.New("table unavailable"))
			},
			wantErr: true,
		},
		{
			name: "email error fails the submission after the record is stored",
			setupMock: func() {
				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(nil)

				mockMailer.EXPECT().
					Send(gomock.Any(), gomock.Any()).
					Return(errors.New("ses throttled"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := svc.Create(context.Background(), validRequest())

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			require.NoError(t, err)
			assert.True(t, res.Success)
			assert.Equal(t, "Booking submitted successfully", res.Message)
			assert.True(t, strings.HasPrefix(res.BookingID, "BK-"))
		})
	}
}

func TestBookingService_Recent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := bookingMocks.NewMockBooking(ctrl)
	mockMailer := sesMocks.NewMockMailer(ctrl)
	mockOtel := mocks.NewOtel()

	svc := service.New(mockRepo, mockMailer, &config.Config{}, mockOtel)

	stored := []model.Submission{
		{BookingID: "BK-1", Timestamp: "2026-08-01T10:00:00Z"},
		{BookingID: "BK-3", Timestamp: "2026-08-20T10:00:00Z"},
		{BookingID: "BK-2", Timestamp: "2026-08-10T10:00:00Z"},
	}

	mockRepo.EXPECT().
		GetAll(gomock.Any()).
		Return(stored, nil)

	recent, err := svc.Recent(context.Background())

	require.NoError(t, err)
	require.Len(t, recent, 3)
	assert.Equal(t, "BK-3", recent[0].BookingID)
	assert.Equal(t, "BK-2", recent[1].BookingID)
	assert.Equal(t, "BK-1", recent[2].BookingID)
}

func TestBookingService_Resend(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := bookingMocks.NewMockBooking(ctrl)
	mockMailer := sesMocks.NewMockMailer(ctrl)
	mockOtel := mocks.NewOtel()

	svc := service.New(mockRepo, mockMailer, &config.Config{}, mockOtel)

	t.Run("resends stored submission", func(t *testing.T) {
		submission := model.Submission{
			BookingID:  "BK-1756300000000-abc123def",
			Timestamp:  "2026-08-27T15:00:00Z",
			EventTypes: []string{"Team Building"},
			Contact:    model.Contact{Name: "Casey Bloom", Email: "casey@example.com"},
		}

		mockRepo.EXPECT().
			Get(gomock.Any(), submission.BookingID).
			Return(submission, true, nil)

		mockMailer.EXPECT().
			Send(gomock.Any(), gomock.Any()).
			Return(nil)

		assert.NoError(t, svc.Resend(context.Background(), submission.BookingID))
	})

	t.Run("unknown id", func(t *testing.T) {
		mockRepo.EXPECT().
			Get(gomock.Any(), "BK-missing").
			Return(model.Submission{}, false, nil)

		assert.Error(t, svc.Resend(context.Background(), "BK-missing"))
	})
}
