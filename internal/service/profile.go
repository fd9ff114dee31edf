package service

import (
	"context"
	"strings"

	"medportal/internal/backend"
	"medportal/internal/model"
)

type ProfileService interface {
	UpdatePersonal(ctx context.Context, profile model.PersonalProfile) error
	UpdateNotification(ctx context.Context, setting string, enabled bool) error
	TelegramStatus(ctx context.Context) (*model.TelegramStatus, error)
	// LinkTelegram links the account to telegramID; an empty ID unlinks.
	LinkTelegram(ctx context.Context, telegramID string) (*model.TelegramLink, error)
}

type profileService struct {
	api backend.Client
}

func NewProfileService(api backend.Client) ProfileService {
	return &profileService{api: api}
}

func (s *profileService) UpdatePersonal(ctx context.Context, profile model.PersonalProfile) error {
	if strings.TrimSpace(profile.FirstName) == "" {
		return &ValidationError{Reason: "first name is required"}
	}
	if strings.TrimSpace(profile.LastName) == "" {
		return &ValidationError{Reason: "last name is required"}
	}
	return s.api.UpdatePersonalProfile(ctx, profile)
}

func (s *profileService) UpdateNotification(ctx context.Context, setting string, enabled bool) error {
	if strings.TrimSpace(setting) == "" {
		return &ValidationError{Reason: "setting name is required"}
	}
	return s.api.UpdateNotificationSetting(ctx, model.NotificationSetting{Setting: setting, Enabled: enabled})
}

func (s *profileService) TelegramStatus(ctx context.Context) (*model.TelegramStatus, error) {
	return s.api.TelegramStatus(ctx)
}

func (s *profileService) LinkTelegram(ctx context.Context, telegramID string) (*model.TelegramLink, error) {
	id := strings.TrimSpace(telegramID)
	if !digitsOnly(id) {
		return nil, &ValidationError{Reason: "telegram id must contain only digits"}
	}
	return s.api.LinkTelegram(ctx, id)
}

func digitsOnly(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
