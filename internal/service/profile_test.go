package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	backendMocks "medportal/internal/backend/mocks"
	"medportal/internal/model"
)

func TestProfileService_UpdatePersonal(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name       string
		profile    model.PersonalProfile
		setupMocks func(api *backendMocks.MockClient)
		wantVErr   string
	}{
		{
			name:    "happy path",
			profile: model.PersonalProfile{FirstName: "Ana", LastName: "Reyes", City: "Quito"},
			setupMocks: func(api *backendMocks.MockClient) {
				api.On("UpdatePersonalProfile", ctx, model.PersonalProfile{FirstName: "Ana", LastName: "Reyes", City: "Quito"}).Return(nil)
			},
		},
		{
			name:     "first name required",
			profile:  model.PersonalProfile{FirstName: "  ", LastName: "Reyes"},
			wantVErr: "first name is required",
		},
		{
			name:     "last name required",
			profile:  model.PersonalProfile{FirstName: "Ana"},
			wantVErr: "last name is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := new(backendMocks.MockClient)
			if tt.setupMocks != nil {
				tt.setupMocks(api)
			}
			svc := NewProfileService(api)

			err := svc.UpdatePersonal(ctx, tt.profile)

			if tt.wantVErr != "" {
				var vErr *ValidationError
				assert.ErrorAs(t, err, &vErr)
				assert.Equal(t, tt.wantVErr, vErr.Reason)
				api.AssertNotCalled(t, "UpdatePersonalProfile", mock.Anything, mock.Anything)
				return
			}
			assert.NoError(t, err)
			api.AssertExpectations(t)
		})
	}
}

func TestProfileService_UpdateNotification(t *testing.T) {
	ctx := context.Background()

	t.Run("forwards the toggle", func(t *testing.T) {
		api := new(backendMocks.MockClient)
		svc := NewProfileService(api)
		api.On("UpdateNotificationSetting", ctx, model.NotificationSetting{Setting: "email_reminders", Enabled: true}).Return(nil)

		assert.NoError(t, svc.UpdateNotification(ctx, "email_reminders", true))
		api.AssertExpectations(t)
	})

	t.Run("setting name required", func(t *testing.T) {
		api := new(backendMocks.MockClient)
		svc := NewProfileService(api)

		err := svc.UpdateNotification(ctx, "", false)

		var vErr *ValidationError
		assert.ErrorAs(t, err, &vErr)
		api.AssertNotCalled(t, "UpdateNotificationSetting", mock.Anything, mock.Anything)
	})
}

func TestProfileService_LinkTelegram(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name       string
		telegramID string
		wantID     string
		wantVErr   bool
	}{
		{name: "digits only", telegramID: "123456789", wantID: "123456789"},
		{name: "surrounding whitespace is trimmed", telegramID: " 42 ", wantID: "42"},
		{name: "empty id unlinks", telegramID: "", wantID: ""},
		{name: "letters rejected", telegramID: "12ab34", wantVErr: true},
		{name: "negative rejected", telegramID: "-42", wantVErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := new(backendMocks.MockClient)
			svc := NewProfileService(api)

			if tt.wantVErr {
				_, err := svc.LinkTelegram(ctx, tt.telegramID)
				var vErr *ValidationError
				assert.ErrorAs(t, err, &vErr)
				api.AssertNotCalled(t, "LinkTelegram", mock.Anything, mock.Anything)
				return
			}

			api.On("LinkTelegram", ctx, tt.wantID).Return(&model.TelegramLink{TelegramID: tt.wantID}, nil)

			link, err := svc.LinkTelegram(ctx, tt.telegramID)

			assert.NoError(t, err)
			assert.Equal(t, tt.wantID, link.TelegramID)
			api.AssertExpectations(t)
		})
	}
}

func TestProfileService_TelegramStatus(t *testing.T) {
	ctx := context.Background()
	api := new(backendMocks.MockClient)
	svc := NewProfileService(api)

	api.On("TelegramStatus", ctx).Return(&model.TelegramStatus{IsLinked: true, TelegramID: "99", ExamsFromBot: 2}, nil)

	status, err := svc.TelegramStatus(ctx)

	assert.NoError(t, err)
	assert.True(t, status.IsLinked)
	assert.Equal(t, 2, status.ExamsFromBot)
	api.AssertExpectations(t)
}
