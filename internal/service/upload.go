package service

import (
	"context"
	"fmt"
	"io"
	"strings"

	"medportal/internal/attachment"
	"medportal/internal/backend"
	"medportal/internal/retry"
)

// allowedUploadExtensions is the set of file types a patient may attach to
// an exam. Anything else voids the whole batch before a single byte is sent.
var allowedUploadExtensions = map[string]struct{}{
	"pdf": {}, "png": {}, "jpg": {}, "jpeg": {}, "gif": {},
	"bmp": {}, "tiff": {}, "dcm": {}, "dicom": {}, "doc": {},
	"docx": {}, "txt": {},
}

// File is one member of an upload batch.
type File struct {
	Name    string
	Size    int64
	Content io.Reader
}

// UploadResult reports the outcome of a single file within a batch.
type UploadResult struct {
	FileName string `json:"file_name"`
	Success  bool   `json:"success"`
	URL      string `json:"url,omitempty"`
	Error    string `json:"error,omitempty"`
}

// BatchResult is the outcome of a whole batch, including the reconciled
// attachment state the caller should render afterwards.
type BatchResult struct {
	Results          []UploadResult    `json:"results"`
	Uploaded         int               `json:"uploaded"`
	Attachments      attachment.Set    `json:"attachments"`
	Counts           attachment.Counts `json:"counts"`
	Reconciled       bool              `json:"reconciled"`
	SelectionCleared bool              `json:"selection_cleared"`
}

type UploadService interface {
	SubmitBatch(ctx context.Context, patientID, examID string, files []File) (*BatchResult, error)
}

type uploadService struct {
	api       backend.Client
	reconcile retry.Policy
	maxBytes  int64
}

func NewUploadService(api backend.Client, reconcile retry.Policy, maxBytes int64) UploadService {
	return &uploadService{api: api, reconcile: reconcile, maxBytes: maxBytes}
}

// SubmitBatch validates every file up front, uploads them strictly in order,
// then polls the backend until the new attachments are visible. Per-file
// upload failures do not stop the batch; a validation failure rejects it
// entirely before any network call.
func (s *uploadService) SubmitBatch(ctx context.Context, patientID, examID string, files []File) (*BatchResult, error) {
	if patientID == "" || examID == "" {
		return nil, ErrIDRequired
	}
	if len(files) == 0 {
		return nil, ErrNoFiles
	}

	for _, f := range files {
		if f.Size > s.maxBytes {
			return nil, &ValidationError{
				FileName: f.Name,
				Reason:   fmt.Sprintf("exceeds the %d byte size limit", s.maxBytes),
			}
		}
		if _, ok := allowedUploadExtensions[fileExt(f.Name)]; !ok {
			return nil, &ValidationError{FileName: f.Name, Reason: "file type is not allowed"}
		}
	}

	baseline, err := s.fetchAttachments(ctx, patientID, examID)
	if err != nil {
		return nil, err
	}

	results := make([]UploadResult, 0, len(files))
	uploaded := 0
	for _, f := range files {
		receipt, err := s.api.UploadExamFile(ctx, patientID, examID, f.Name, f.Content, f.Size)
		if err != nil {
			results = append(results, UploadResult{FileName: f.Name, Error: err.Error()})
			continue
		}
		uploaded++
		results = append(results, UploadResult{FileName: f.Name, Success: true, URL: receipt.FileURL})
	}

	res := &BatchResult{
		Results:          results,
		Uploaded:         uploaded,
		SelectionCleared: true,
	}

	expected := len(baseline) + uploaded
	last := baseline
	done, rerr := s.reconcile.Do(ctx, func(ctx context.Context) (bool, error) {
		set, err := s.fetchAttachments(ctx, patientID, examID)
		if err != nil {
			return false, err
		}
		last = set
		return len(set) >= expected, nil
	})
	if !done {
		fields := map[string]any{
			"patient_id": patientID,
			"exam_id":    examID,
			"expected":   expected,
			"observed":   len(last),
		}
		if rerr != nil {
			fields["error"] = rerr.Error()
		}
		logWarn("attachment_reconciliation_exhausted", fields)
	}

	res.Attachments = last
	res.Counts = attachment.Summarize(last)
	res.Reconciled = done
	return res, nil
}

func (s *uploadService) fetchAttachments(ctx context.Context, patientID, examID string) (attachment.Set, error) {
	exams, err := s.api.Exams(ctx, patientID)
	if err != nil {
		return nil, err
	}
	for _, e := range exams {
		if e.ID == examID {
			return attachment.Parse(e.FileURL), nil
		}
	}
	return nil, ErrExamNotFound
}

func fileExt(name string) string {
	i := strings.LastIndexByte(name, '.')
	if i < 0 || i == len(name)-1 {
		return ""
	}
	return strings.ToLower(name[i+1:])
}
