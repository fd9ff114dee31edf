package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"medportal/internal/model"
)

const fallbackErrorMessage = "backend reported an error"

// httpClient implements Client against the REST backend. Outbound requests
// are traced through otelhttp.
type httpClient struct {
	baseURL string
	http    *http.Client
}

// NewHTTPClient constructs a Client for the given base URL. timeout applies
// per request; a zero timeout falls back to 30s.
func NewHTTPClient(baseURL string, timeout time.Duration) Client {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &httpClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http: &http.Client{
			Timeout:   timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
	}
}

// outcome is the status pair every backend response may carry. Success
// defaults to true for list payloads that omit it.
type outcome struct {
	Success *bool  `json:"success"`
	Error   string `json:"error"`
}

// do issues the request and returns the raw response body. Non-2xx statuses
// and success=false bodies both surface as *APIError preserving the
// backend's error string verbatim; transport failures are wrapped as-is.
func (c *httpClient) do(ctx context.Context, method, path string, body io.Reader, contentType string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read %s %s response: %w", method, path, err)
	}

	var out outcome
	if err := json.Unmarshal(raw, &out); err != nil {
		if resp.StatusCode >= 400 {
			return nil, &APIError{Message: fmt.Sprintf("backend returned status %d", resp.StatusCode)}
		}
		return nil, fmt.Errorf("decode %s %s response: %w", method, path, err)
	}
	if resp.StatusCode >= 400 || (out.Success != nil && !*out.Success) {
		msg := out.Error
		if msg == "" {
			msg = fallbackErrorMessage
		}
		return nil, &APIError{Message: msg}
	}
	return raw, nil
}

// getJSON fetches path and decodes the body into target.
func (c *httpClient) getJSON(ctx context.Context, path string, target any) error {
	raw, err := c.do(ctx, http.MethodGet, path, nil, "")
	if err != nil {
		return err
	}
	if err := json.Unmarshal(raw, target); err != nil {
		return fmt.Errorf("decode %s response: %w", path, err)
	}
	return nil
}

func (c *httpClient) delete(ctx context.Context, path string) error {
	_, err := c.do(ctx, http.MethodDelete, path, nil, "application/json")
	return err
}

func (c *httpClient) sendJSON(ctx context.Context, method, path string, payload any) ([]byte, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("encode %s body: %w", path, err)
	}
	return c.do(ctx, method, path, bytes.NewReader(b), "application/json")
}

func patientPath(patientID string, rest ...string) string {
	parts := []string{"/api/patient", url.PathEscape(patientID)}
	for _, p := range rest {
		parts = append(parts, url.PathEscape(p))
	}
	return strings.Join(parts, "/")
}

func (c *httpClient) Health(ctx context.Context) error {
	_, err := c.do(ctx, http.MethodGet, "/api/health", nil, "")
	return err
}

func (c *httpClient) Consultations(ctx context.Context, patientID string) ([]model.Consultation, error) {
	var body struct {
		Consultations []model.Consultation `json:"consultations"`
	}
	if err := c.getJSON(ctx, patientPath(patientID, "consultations"), &body); err != nil {
		return nil, err
	}
	return body.Consultations, nil
}

func (c *httpClient) DeleteConsultation(ctx context.Context, patientID, consultationID string) error {
	return c.delete(ctx, patientPath(patientID, "consultations", consultationID))
}

func (c *httpClient) Medications(ctx context.Context, patientID string) ([]model.Medication, error) {
	var body struct {
		Medications []model.Medication `json:"medications"`
	}
	if err := c.getJSON(ctx, patientPath(patientID, "medications"), &body); err != nil {
		return nil, err
	}
	return body.Medications, nil
}

func (c *httpClient) DeleteMedication(ctx context.Context, patientID, medicationID string) error {
	return c.delete(ctx, patientPath(patientID, "medications", medicationID))
}

func (c *httpClient) Exams(ctx context.Context, patientID string) ([]model.Exam, error) {
	var body struct {
		Exams []model.Exam `json:"exams"`
	}
	if err := c.getJSON(ctx, patientPath(patientID, "exams"), &body); err != nil {
		return nil, err
	}
	return body.Exams, nil
}

func (c *httpClient) DeleteExam(ctx context.Context, patientID, examID string) error {
	return c.delete(ctx, patientPath(patientID, "exams", examID))
}

func (c *httpClient) UploadExamFile(ctx context.Context, patientID, examID, fileName string, content io.Reader, size int64) (*UploadReceipt, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("file", fileName)
	if err != nil {
		return nil, fmt.Errorf("build multipart body: %w", err)
	}
	if _, err := io.Copy(part, content); err != nil {
		return nil, fmt.Errorf("read %s: %w", fileName, err)
	}
	if err := mw.WriteField("exam_id", examID); err != nil {
		return nil, fmt.Errorf("build multipart body: %w", err)
	}
	if err := mw.Close(); err != nil {
		return nil, fmt.Errorf("build multipart body: %w", err)
	}

	raw, err := c.do(ctx, http.MethodPost, patientPath(patientID, "exams", "upload"), &buf, mw.FormDataContentType())
	if err != nil {
		return nil, err
	}
	var body struct {
		FileURL     string `json:"file_url"`
		AllFileURLs string `json:"all_file_urls"`
	}
	if err := json.Unmarshal(raw, &body); err != nil {
		return nil, fmt.Errorf("decode upload response: %w", err)
	}
	return &UploadReceipt{FileURL: body.FileURL, AllFileURLs: body.AllFileURLs}, nil
}

func (c *httpClient) Family(ctx context.Context, patientID string) ([]model.FamilyMember, error) {
	var body struct {
		Family []model.FamilyMember `json:"family"`
	}
	if err := c.getJSON(ctx, patientPath(patientID, "family"), &body); err != nil {
		return nil, err
	}
	return body.Family, nil
}

func (c *httpClient) DeleteFamilyMember(ctx context.Context, patientID, familyID string) error {
	return c.delete(ctx, patientPath(patientID, "family", familyID))
}

func (c *httpClient) Stats(ctx context.Context, patientID string) (*model.DashboardStats, error) {
	var stats model.DashboardStats
	if err := c.getJSON(ctx, patientPath(patientID, "stats"), &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

func (c *httpClient) TelegramStatus(ctx context.Context) (*model.TelegramStatus, error) {
	var status model.TelegramStatus
	if err := c.getJSON(ctx, "/api/user/telegram-status", &status); err != nil {
		return nil, err
	}
	return &status, nil
}

func (c *httpClient) LinkTelegram(ctx context.Context, telegramID string) (*model.TelegramLink, error) {
	raw, err := c.sendJSON(ctx, http.MethodPost, "/api/user/link-telegram", map[string]string{"telegram_id": telegramID})
	if err != nil {
		return nil, err
	}
	var link model.TelegramLink
	if err := json.Unmarshal(raw, &link); err != nil {
		return nil, fmt.Errorf("decode link-telegram response: %w", err)
	}
	return &link, nil
}

func (c *httpClient) UpdatePersonalProfile(ctx context.Context, profile model.PersonalProfile) error {
	_, err := c.sendJSON(ctx, http.MethodPut, "/api/profile/personal", profile)
	return err
}

func (c *httpClient) UpdateNotificationSetting(ctx context.Context, setting model.NotificationSetting) error {
	_, err := c.sendJSON(ctx, http.MethodPut, "/api/profile/notifications", setting)
	return err
}

// FetchText downloads raw content from an absolute attachment URL. The URL
// comes from the backend's own file_url field, so it is requested as given.
func (c *httpClient) FetchText(ctx context.Context, rawURL string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetch %s: %w", rawURL, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", &APIError{Message: fmt.Sprintf("fetch returned status %d", resp.StatusCode)}
	}
	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", rawURL, err)
	}
	return string(b), nil
}
