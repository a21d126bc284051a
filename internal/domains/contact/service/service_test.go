package service_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"potteryloop/infras/otel/mocks"
	"potteryloop/infras/ses"
	sesMocks "potteryloop/infras/ses/mocks"
	contactMocks "potteryloop/internal/domains/contact/mocks"
	"potteryloop/internal/domains/contact/model"
	"potteryloop/internal/domains/contact/model/dto"
	"potteryloop/internal/domains/contact/service"
)

func TestContactService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := contactMocks.NewMockContact(ctrl)
	mockMailer := sesMocks.NewMockMailer(ctrl)
	mockOtel := mocks.NewOtel()

	svc := service.New(mockRepo, mockMailer, mockOtel)

	req := dto.CreateMessageRequest{
		Name:    "Riley Santos",
		Email:   "riley@example.com",
		Message: "Do you host private glazing nights?",
	}

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
	}{
		{
			name: "stores message and sends notification",
			setupMock: func() {
				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, message model.Message) error {
						assert.True(t, strings.HasPrefix(message.MessageID, "MSG-"))
						assert.Equal(t, "new", message.Status)
						assert.Equal(t, req.Message, message.Message)

						return nil
					})

				mockMailer.EXPECT().
					Send(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, msg ses.Message) error {
						assert.Equal(t, "create@potterychicago.com", msg.From)
						assert.Equal(t, "PotteryChicago@gmail.com", msg.To)
						assert.Equal(t, "New Contact Message from Riley Santos", msg.Subject)
						assert.Contains(t, msg.Text, "Do you host private glazing nights?")

						return nil
					})
			},
		},
		{
			name: "store error fails the request",
			setupMock: func() {
				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(errors.New("table unavailable"))
			},
			wantErr: true,
		},
		{
			name: "email error fails the request after the record is stored",
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

			res, err := svc.Create(context.Background(), req)

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			require.NoError(t, err)
			assert.True(t, res.Success)
			assert.Equal(t, "Message sent successfully", res.Message)
			assert.True(t, strings.HasPrefix(res.MessageID, "MSG-"))
		})
	}
}

func TestContactService_Create_AnonymousSubject(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := contactMocks.NewMockContact(ctrl)
	mockMailer := sesMocks.NewMockMailer(ctrl)
	mockOtel := mocks.NewOtel()

	svc := service.New(mockRepo, mockMailer, mockOtel)

	mockRepo.EXPECT().
		Insert(gomock.Any(), gomock.Any()).
		Return(nil)

	mockMailer.EXPECT().
		Send(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, msg ses.Message) error {
			assert.Equal(t, "New Contact Message from Unknown", msg.Subject)

			return nil
		})

	_, err := svc.Create(context.Background(), dto.CreateMessageRequest{
		Email:   "riley@example.com",
		Message: "hello",
	})

	require.NoError(t, err)
}

func TestContactService_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := contactMocks.NewMockContact(ctrl)
	mockMailer := sesMocks.NewMockMailer(ctrl)
	mockOtel := mocks.NewOtel()

	svc := service.New(mockRepo, mockMailer, mockOtel)

	stored := []model.Message{
		{MessageID: "MSG-1", Name: "A"},
		{MessageID: "MSG-2", Name: "B"},
	}

	mockRepo.EXPECT().
		GetAll(gomock.Any()).
		Return(stored, nil)

	messages, err := svc.List(context.Background())

	require.NoError(t, err)
	assert.Equal(t, stored, messages)
}
