package service

import (
	"context"
	"fmt"

	"medportal/internal/attachment"
	"medportal/internal/backend"
	"medportal/internal/model"
	"medportal/internal/view"
)

// DeletionRefresh is the fresh state returned after a confirmed deletion:
// the re-fetched list the record was removed from plus updated stats. The
// portal holds no authoritative copy, so both always come from the backend.
type DeletionRefresh struct {
	Consultations []model.Consultation  `json:"consultations,omitempty"`
	Medications   []model.Medication    `json:"medications,omitempty"`
	Exams         []model.Exam          `json:"exams,omitempty"`
	Family        []model.FamilyMember  `json:"family,omitempty"`
	Stats         *model.DashboardStats `json:"stats"`
}

// ResolvedPreview is a preview plan plus, for text attachments, the fetched
// content. A failed text fetch is reported inline so the viewer can still
// render the rest of the preview frame.
type ResolvedPreview struct {
	Plan      attachment.Plan `json:"plan"`
	Text      string          `json:"text,omitempty"`
	TextError string          `json:"text_error,omitempty"`
}

type RecordService interface {
	Dashboard(ctx context.Context, patientID string) (*view.Dashboard, error)
	Consultations(ctx context.Context, patientID string) ([]model.Consultation, error)
	Medications(ctx context.Context, patientID string) ([]model.Medication, error)
	Exams(ctx context.Context, patientID string) ([]model.Exam, error)
	Family(ctx context.Context, patientID string) ([]model.FamilyMember, error)
	ExamDetail(ctx context.Context, patientID, examID string) (*view.ExamDetail, error)
	ResolvePreview(ctx context.Context, fileURL string) (*ResolvedPreview, error)
	DeleteConsultation(ctx context.Context, patientID, consultationID string) (*DeletionRefresh, error)
	DeleteMedication(ctx context.Context, patientID, medicationID string) (*DeletionRefresh, error)
	DeleteExam(ctx context.Context, patientID, examID string) (*DeletionRefresh, error)
	DeleteFamilyMember(ctx context.Context, patientID, memberID string) (*DeletionRefresh, error)
}

type recordService struct {
	api backend.Client
}

func NewRecordService(api backend.Client) RecordService {
	return &recordService{api: api}
}

func (s *recordService) Dashboard(ctx context.Context, patientID string) (*view.Dashboard, error) {
	if patientID == "" {
		return nil, ErrIDRequired
	}
	stats, err := s.api.Stats(ctx, patientID)
	if err != nil {
		return nil, err
	}
	consultations, err := s.api.Consultations(ctx, patientID)
	if err != nil {
		return nil, err
	}
	return view.NewDashboard(stats, consultations), nil
}

func (s *recordService) Consultations(ctx context.Context, patientID string) ([]model.Consultation, error) {
	if patientID == "" {
		return nil, ErrIDRequired
	}
	return s.api.Consultations(ctx, patientID)
}

func (s *recordService) Medications(ctx context.Context, patientID string) ([]model.Medication, error) {
	if patientID == "" {
		return nil, ErrIDRequired
	}
	return s.api.Medications(ctx, patientID)
}

func (s *recordService) Exams(ctx context.Context, patientID string) ([]model.Exam, error) {
	if patientID == "" {
		return nil, ErrIDRequired
	}
	return s.api.Exams(ctx, patientID)
}

func (s *recordService) Family(ctx context.Context, patientID string) ([]model.FamilyMember, error) {
	if patientID == "" {
		return nil, ErrIDRequired
	}
	return s.api.Family(ctx, patientID)
}

func (s *recordService) ExamDetail(ctx context.Context, patientID, examID string) (*view.ExamDetail, error) {
	if patientID == "" || examID == "" {
		return nil, ErrIDRequired
	}
	exams, err := s.api.Exams(ctx, patientID)
	if err != nil {
		return nil, err
	}
	for _, e := range exams {
		if e.ID == examID {
			return view.NewExamDetail(e), nil
		}
	}
	return nil, ErrExamNotFound
}

func (s *recordService) ResolvePreview(ctx context.Context, fileURL string) (*ResolvedPreview, error) {
	if fileURL == "" {
		return nil, ErrURLRequired
	}
	plan := attachment.PlanPreview(attachment.Ref{URL: fileURL})
	res := &ResolvedPreview{Plan: plan}
	if plan.Kind == attachment.PlanFetchedText {
		text, err := s.api.FetchText(ctx, fileURL)
		if err != nil {
			res.TextError = err.Error()
		} else {
			res.Text = text
		}
	}
	return res, nil
}

func (s *recordService) DeleteConsultation(ctx context.Context, patientID, consultationID string) (*DeletionRefresh, error) {
	if patientID == "" || consultationID == "" {
		return nil, ErrIDRequired
	}
	if err := s.api.DeleteConsultation(ctx, patientID, consultationID); err != nil {
		return nil, err
	}
	list, stats, err := refetch(ctx, s.api.Consultations, s.api.Stats, patientID)
	if err != nil {
		return nil, err
	}
	return &DeletionRefresh{Consultations: list, Stats: stats}, nil
}

func (s *recordService) DeleteMedication(ctx context.Context, patientID, medicationID string) (*DeletionRefresh, error) {
	if patientID == "" || medicationID == "" {
		return nil, ErrIDRequired
	}
	if err := s.api.DeleteMedication(ctx, patientID, medicationID); err != nil {
		return nil, err
	}
	list, stats, err := refetch(ctx, s.api.Medications, s.api.Stats, patientID)
	if err != nil {
		return nil, err
	}
	return &DeletionRefresh{Medications: list, Stats: stats}, nil
}

func (s *recordService) DeleteExam(ctx context.Context, patientID, examID string) (*DeletionRefresh, error) {
	if patientID == "" || examID == "" {
		return nil, ErrIDRequired
	}
	if err := s.api.DeleteExam(ctx, patientID, examID); err != nil {
		return nil, err
	}
	list, stats, err := refetch(ctx, s.api.Exams, s.api.Stats, patientID)
	if err != nil {
		return nil, err
	}
	return &DeletionRefresh{Exams: list, Stats: stats}, nil
}

func (s *recordService) DeleteFamilyMember(ctx context.Context, patientID, memberID string) (*DeletionRefresh, error) {
	if patientID == "" || memberID == "" {
		return nil, ErrIDRequired
	}
	if err := s.api.DeleteFamilyMember(ctx, patientID, memberID); err != nil {
		return nil, err
	}
	list, stats, err := refetch(ctx, s.api.Family, s.api.Stats, patientID)
	if err != nil {
		return nil, err
	}
	return &DeletionRefresh{Family: list, Stats: stats}, nil
}

// refetch reloads the mutated list alongside the dashboard stats so the
// caller renders a consistent post-deletion snapshot.
func refetch[T any](
	ctx context.Context,
	list func(context.Context, string) ([]T, error),
	stats func(context.Context, string) (*model.DashboardStats, error),
	patientID string,
) ([]T, *model.DashboardStats, error) {
	items, err := list(ctx, patientID)
	if err != nil {
		return nil, nil, fmt.Errorf("refresh after delete: %w", err)
	}
	st, err := stats(ctx, patientID)
	if err != nil {
		return nil, nil, fmt.Errorf("refresh after delete: %w", err)
	}
	return items, st, nil
}
