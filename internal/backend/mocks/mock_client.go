package mocks

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"

	"medportal/internal/backend"
	"medportal/internal/model"
)

type MockClient struct {
	mock.Mock
}

func (m *MockClient) Health(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockClient) Consultations(ctx context.Context, patientID string) ([]model.Consultation, error) {
	args := m.Called(ctx, patientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Consultation), args.Error(1)
}

func (m *MockClient) DeleteConsultation(ctx context.Context, patientID, consultationID string) error {
	args := m.Called(ctx, patientID, consultationID)
	return args.Error(0)
}

func (m *MockClient) Medications(ctx context.Context, patientID string) ([]model.Medication, error) {
	args := m.Called(ctx, patientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Medication), args.Error(1)
}

func (m *MockClient) DeleteMedication(ctx context.Context, patientID, medicationID string) error {
	args := m.Called(ctx, patientID, medicationID)
	return args.Error(0)
}

func (m *MockClient) Exams(ctx context.Context, patientID string) ([]model.Exam, error) {
	args := m.Called(ctx, patientID)
	if f, ok := args.Get(0).(func() []model.Exam); ok {
		return f(), args.Error(1)
	}
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Exam), args.Error(1)
}

func (m *MockClient) DeleteExam(ctx context.Context, patientID, examID string) error {
	args := m.Called(ctx, patientID, examID)
	return args.Error(0)
}

func (m *MockClient) UploadExamFile(ctx context.Context, patientID, examID, fileName string, content io.Reader, size int64) (*backend.UploadReceipt, error) {
	args := m.Called(ctx, patientID, examID, fileName, content, size)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*backend.UploadReceipt), args.Error(1)
}

func (m *MockClient) Family(ctx context.Context, patientID string) ([]model.FamilyMember, error) {
	args := m.Called(ctx, patientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.FamilyMember), args.Error(1)
}

func (m *MockClient) DeleteFamilyMember(ctx context.Context, patientID, familyID string) error {
	args := m.Called(ctx, patientID, familyID)
	return args.Error(0)
}

func (m *MockClient) Stats(ctx context.Context, patientID string) (*model.DashboardStats, error) {
	args := m.Called(ctx, patientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.DashboardStats), args.Error(1)
}

func (m *MockClient) TelegramStatus(ctx context.Context) (*model.TelegramStatus, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.TelegramStatus), args.Error(1)
}

func (m *MockClient) LinkTelegram(ctx context.Context, telegramID string) (*model.TelegramLink, error) {
	args := m.Called(ctx, telegramID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.TelegramLink), args.Error(1)
}

func (m *MockClient) UpdatePersonalProfile(ctx context.Context, profile model.PersonalProfile) error {
	args := m.Called(ctx, profile)
	return args.Error(0)
}

func (m *MockClient) UpdateNotificationSetting(ctx context.Context, setting model.NotificationSetting) error {
	args := m.Called(ctx, setting)
	return args.Error(0)
}

func (m *MockClient) FetchText(ctx context.Context, url string) (string, error) {
	args := m.Called(ctx, url)
	return args.String(0), args.Error(1)
}
