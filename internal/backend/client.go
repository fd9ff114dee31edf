// Package backend is the portal's access layer to the authoritative
// medical-records REST API. No business logic here, strictly remote data
// operations. The portal never persists any of this data; every view is
// rebuilt from fresh fetches.
package backend

import (
	"context"
	"io"

	"medportal/internal/model"
)

// UploadReceipt is the backend's acknowledgement for one uploaded exam file.
type UploadReceipt struct {
	// FileURL is the stored location of the uploaded file.
	FileURL string
	// AllFileURLs is the exam's full attachment list after the upload, in
	// the backend's comma-delimited format.
	AllFileURLs string
}

// APIError is a backend-reported failure: the transport round trip
// succeeded but the response carried success=false. Message holds the
// backend's error string verbatim, with a generic fallback when absent.
type APIError struct {
	Message string
}

func (e *APIError) Error() string { return e.Message }

// Client defines the remote operations the portal consumes. Implementations
// must not retry on their own; retry policy is owned by the services.
type Client interface {
	// Health checks backend reachability.
	Health(ctx context.Context) error

	Consultations(ctx context.Context, patientID string) ([]model.Consultation, error)
	DeleteConsultation(ctx context.Context, patientID, consultationID string) error

	Medications(ctx context.Context, patientID string) ([]model.Medication, error)
	DeleteMedication(ctx context.Context, patientID, medicationID string) error

	Exams(ctx context.Context, patientID string) ([]model.Exam, error)
	DeleteExam(ctx context.Context, patientID, examID string) error

	// UploadExamFile submits one file as multipart form data (fields:
	// file, exam_id). Callers upload batches strictly one file at a time.
	UploadExamFile(ctx context.Context, patientID, examID, fileName string, content io.Reader, size int64) (*UploadReceipt, error)

	Family(ctx context.Context, patientID string) ([]model.FamilyMember, error)
	DeleteFamilyMember(ctx context.Context, patientID, familyID string) error

	Stats(ctx context.Context, patientID string) (*model.DashboardStats, error)

	TelegramStatus(ctx context.Context) (*model.TelegramStatus, error)
	// LinkTelegram links the account to the given Telegram ID; an empty ID
	// unlinks.
	LinkTelegram(ctx context.Context, telegramID string) (*model.TelegramLink, error)

	UpdatePersonalProfile(ctx context.Context, profile model.PersonalProfile) error
	UpdateNotificationSetting(ctx context.Context, setting model.NotificationSetting) error

	// FetchText retrieves raw text content from an attachment URL. Used
	// only by the fetched-text preview plan.
	FetchText(ctx context.Context, url string) (string, error)
}
