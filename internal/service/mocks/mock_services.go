package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"medportal/internal/model"
	"medportal/internal/service"
	"medportal/internal/view"
)

type MockUploadService struct {
	mock.Mock
}

func (m *MockUploadService) SubmitBatch(ctx context.Context, patientID, examID string, files []service.File) (*service.BatchResult, error) {
	args := m.Called(ctx, patientID, examID, files)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.BatchResult), args.Error(1)
}

type MockRecordService struct {
	mock.Mock
}

func (m *MockRecordService) Dashboard(ctx context.Context, patientID string) (*view.Dashboard, error) {
	args := m.Called(ctx, patientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*view.Dashboard), args.Error(1)
}

func (m *MockRecordService) Consultations(ctx context.Context, patientID string) ([]model.Consultation, error) {
	args := m.Called(ctx, patientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Consultation), args.Error(1)
}

func (m *MockRecordService) Medications(ctx context.Context, patientID string) ([]model.Medication, error) {
	args := m.Called(ctx, patientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Medication), args.Error(1)
}

func (m *MockRecordService) Exams(ctx context.Context, patientID string) ([]model.Exam, error) {
	args := m.Called(ctx, patientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Exam), args.Error(1)
}

func (m *MockRecordService) Family(ctx context.Context, patientID string) ([]model.FamilyMember, error) {
	args := m.Called(ctx, patientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.FamilyMember), args.Error(1)
}

func (m *MockRecordService) ExamDetail(ctx context.Context, patientID, examID string) (*view.ExamDetail, error) {
	args := m.Called(ctx, patientID, examID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*view.ExamDetail), args.Error(1)
}

func (m *MockRecordService) ResolvePreview(ctx context.Context, fileURL string) (*service.ResolvedPreview, error) {
	args := m.Called(ctx, fileURL)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ResolvedPreview), args.Error(1)
}

func (m *MockRecordService) DeleteConsultation(ctx context.Context, patientID, consultationID string) (*service.DeletionRefresh, error) {
	args := m.Called(ctx, patientID, consultationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.DeletionRefresh), args.Error(1)
}

func (m *MockRecordService) DeleteMedication(ctx context.Context, patientID, medicationID string) (*service.DeletionRefresh, error) {
	args := m.Called(ctx, patientID, medicationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.DeletionRefresh), args.Error(1)
}

func (m *MockRecordService) DeleteExam(ctx context.Context, patientID, examID string) (*service.DeletionRefresh, error) {
	args := m.Called(ctx, patientID, examID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.DeletionRefresh), args.Error(1)
}

func (m *MockRecordService) DeleteFamilyMember(ctx context.Context, patientID, memberID string) (*service.DeletionRefresh, error) {
	args := m.Called(ctx, patientID, memberID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.DeletionRefresh), args.Error(1)
}

type MockProfileService struct {
	mock.Mock
}

func (m *MockProfileService) UpdatePersonal(ctx context.Context, profile model.PersonalProfile) error {
	args := m.Called(ctx, profile)
	return args.Error(0)
}

func (m *MockProfileService) UpdateNotification(ctx context.Context, setting string, enabled bool) error {
	args := m.Called(ctx, setting, enabled)
	return args.Error(0)
}

func (m *MockProfileService) TelegramStatus(ctx context.Context) (*model.TelegramStatus, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.TelegramStatus), args.Error(1)
}

func (m *MockProfileService) LinkTelegram(ctx context.Context, telegramID string) (*model.TelegramLink, error) {
	args := m.Called(ctx, telegramID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.TelegramLink), args.Error(1)
}
