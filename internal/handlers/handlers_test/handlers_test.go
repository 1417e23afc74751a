package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/vakilai/legal-doc-api/internal/config"
	"github.com/vakilai/legal-doc-api/internal/domain/docmodel"
	"github.com/vakilai/legal-doc-api/internal/handlers"
	"github.com/vakilai/legal-doc-api/internal/lawyers"
	"github.com/vakilai/legal-doc-api/internal/report"
	"github.com/vakilai/legal-doc-api/pkg/logger_i"
)

// mockService implements analysis.Service
type mockService struct {
	OnProcess   func(ctx context.Context, upload docmodel.Upload) (docmodel.Result, error)
	OnSummarize func(ctx context.Context, text string, languageCode string) (string, error)
	OnChat      func(ctx context.Context, question string, documentText string, history []docmodel.ChatTurn) (string, error)
}

func (m *mockService) ProcessDocument(ctx context.Context, upload docmodel.Upload) (docmodel.Result, error) {
	// the real service always removes the scratch file; mirror that contract
	defer os.Remove(upload.StoredPath)
	if m.OnProcess != nil {
		return m.OnProcess(ctx, upload)
	}
	return docmodel.Result{
		DocumentType:  "Rental Agreement",
		LanguageCode:  "en",
		LanguageName:  "English",
		ExtractedText: "extracted",
		AnalysisText:  "❗ risky clause",
		SummaryText:   "OVERALL RISK: High",
	}, nil
}

func (m *mockService) Summarize(ctx context.Context, text string, languageCode string) (string, error) {
	if m.OnSummarize != nil {
		return m.OnSummarize(ctx, text, languageCode)
	}
	return "a summary", nil
}

func (m *mockService) Chat(ctx context.Context, question string, documentText string, history []docmodel.ChatTurn) (string, error) {
	if m.OnChat != nil {
		return m.OnChat(ctx, question, documentText, history)
	}
	return "an answer", nil
}

var service = &mockService{}

func TestMain(m *testing.M) {
	logger_i.Init()
	handlers.InitHandlers(service, report.NewRenderer(), lawyers.NewDirectory())
	code := m.Run()
	os.RemoveAll("uploads")
	os.Exit(code)
}

func multipartBody(t *testing.T, fieldFile string, filename string, content []byte) (*bytes.Buffer, string) {
	t.Helper()
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	if filename != "" {
		part, err := writer.CreateFormFile(fieldFile, filename)
		if err != nil {
			t.Fatal(err)
		}
		part.Write(content)
	}
	writer.Close()
	return &body, writer.FormDataContentType()
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) (status string, message string) {
	t.Helper()
	var envelope struct {
		Status  string `json:"status"`
		Message string `json:"message"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&envelope); err != nil {
		t.Fatalf("invalid error envelope: %v", err)
	}
	return envelope.Status, envelope.Message
}

func TestProcessDocument_NoFile(t *testing.T) {
	body, contentType := multipartBody(t, "document", "", nil)
	req := httptest.NewRequest(http.MethodPost, "/process-document", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()

	handlers.ProcessDocumentHandler(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d; want 400", rec.Code)
	}
	if status, _ := decodeError(t, rec); status != "error" {
		t.Errorf("envelope status = %q", status)
	}
}

func TestProcessDocument_DisallowedExtension(t *testing.T) {
	called := false
	service.OnProcess = func(ctx context.Context, upload docmodel.Upload) (docmodel.Result, error) {
		called = true
		return docmodel.Result{}, nil
	}
	defer func() { service.OnProcess = nil }()

	body, contentType := multipartBody(t, "document", "malware.exe", []byte("x"))
	req := httptest.NewRequest(http.MethodPost, "/process-document", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()

	handlers.ProcessDocumentHandler(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d; want 400", rec.Code)
	}
	if _, message := decodeError(t, rec); message != "File type not allowed" {
		t.Errorf("message = %q", message)
	}
	if called {
		t.Error("pipeline must not run for a rejected extension")
	}
}

func TestProcessDocument_OversizeRejected(t *testing.T) {
	called := false
	service.OnProcess = func(ctx context.Context, upload docmodel.Upload) (docmodel.Result, error) {
		called = true
		return docmodel.Result{}, nil
	}
	defer func() { service.OnProcess = nil }()

	big := bytes.Repeat([]byte("a"), int(config.MaxUploadBytes)+(2<<20))
	body, contentType := multipartBody(t, "document", "big.pdf", big)
	req := httptest.NewRequest(http.MethodPost, "/process-document", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()

	handlers.ProcessDocumentHandler(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d; want 400", rec.Code)
	}
	if called {
		t.Error("pipeline must not run for an oversize upload")
	}
}

func TestProcessDocument_Success(t *testing.T) {
	body, contentType := multipartBody(t, "document", "lease.pdf", []byte("%PDF-1.4 tiny"))
	req := httptest.NewRequest(http.MethodPost, "/process-document", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()

	handlers.ProcessDocumentHandler(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d; want 200, body: %s", rec.Code, rec.Body.String())
	}

	var response struct {
		Status       string `json:"status"`
		Type         string `json:"type"`
		LanguageCode string `json:"language_code"`
		LanguageName string `json:"language_name"`
		FileName     string `json:"file_name"`
		Message      string `json:"message"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&response); err != nil {
		t.Fatal(err)
	}
	if response.Status != "success" || response.Type != "Rental Agreement" {
		t.Errorf("unexpected response: %+v", response)
	}
	if response.FileName != "lease.pdf" {
		t.Errorf("file_name = %q; want the original name", response.FileName)
	}
	if !strings.Contains(response.Message, "Rental Agreement") || !strings.Contains(response.Message, "English") {
		t.Errorf("message should name type and language: %q", response.Message)
	}
}

func TestProcessDocument_PipelineFailure(t *testing.T) {
	service.OnProcess = func(ctx context.Context, upload docmodel.Upload) (docmodel.Result, error) {
		return docmodel.Result{}, &docmodel.StageError{
			Stage: docmodel.StageDetectingLanguage,
			Err:   &docmodel.ProviderError{Err: errors.New("quota exceeded")},
		}
	}
	defer func() { service.OnProcess = nil }()

	body, contentType := multipartBody(t, "document", "lease.pdf", []byte("%PDF-1.4 tiny"))
	req := httptest.NewRequest(http.MethodPost, "/process-document", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()

	handlers.ProcessDocumentHandler(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d; want 500", rec.Code)
	}
	status, message := decodeError(t, rec)
	if status != "error" || message == "" {
		t.Errorf("envelope = %q %q", status, message)
	}
}

func TestGenerateSummary_Validation(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"missing text", `{"languageCode":"en"}`},
		{"missing languageCode", `{"text":"some document"}`},
		{"empty body", `{}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/generate-summary", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()

			handlers.GenerateSummaryHandler(rec, req)

			if rec.Code != http.StatusBadRequest {
				t.Errorf("status = %d; want 400", rec.Code)
			}
		})
	}
}

func TestGenerateSummary_Success(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/generate-summary",
		strings.NewReader(`{"text":"document body","languageCode":"hi"}`))
	rec := httptest.NewRecorder()

	handlers.GenerateSummaryHandler(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d; want 200", rec.Code)
	}
	var response struct {
		Summary string `json:"summary"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&response); err != nil {
		t.Fatal(err)
	}
	if response.Summary != "a summary" {
		t.Errorf("summary = %q", response.Summary)
	}
}

func TestGeneratePDF_Validation(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/generate-pdf",
		strings.NewReader(`{"analysis":"only analysis"}`))
	rec := httptest.NewRecorder()

	handlers.GeneratePDFHandler(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d; want 400", rec.Code)
	}
}

func TestChatbotQuery(t *testing.T) {
	var gotHistory []docmodel.ChatTurn
	service.OnChat = func(ctx context.Context, question string, documentText string, history []docmodel.ChatTurn) (string, error) {
		gotHistory = history
		if question != "What is the notice period?" {
			t.Errorf("question = %q", question)
		}
		return "30 days.", nil
	}
	defer func() { service.OnChat = nil }()

	req := httptest.NewRequest(http.MethodPost, "/chatbot-query",
		strings.NewReader(`{"question":"What is the notice period?","documentText":"doc","history":[]}`))
	rec := httptest.NewRecorder()

	handlers.ChatbotQueryHandler(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d; want 200", rec.Code)
	}
	var response struct {
		Answer string `json:"answer"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&response); err != nil {
		t.Fatal(err)
	}
	if response.Answer != "30 days." {
		t.Errorf("answer = %q; must be the service reply verbatim", response.Answer)
	}
	if len(gotHistory) != 0 {
		t.Errorf("history should arrive empty, got %v", gotHistory)
	}
}

func TestLawyers_Filtering(t *testing.T) {
	tests := []struct {
		name     string
		query    string
		expected int
	}{
		{"no filters returns the full list", "", 4},
		{"location filter", "?location=delhi", 1},
		{"specialization filter", "?specialization=law", 3},
		{"no match", "?location=chennai", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/lawyers"+tt.query, nil)
			rec := httptest.NewRecorder()

			handlers.LawyersHandler(rec, req)

			if rec.Code != http.StatusOK {
				t.Fatalf("status = %d; want 200", rec.Code)
			}
			var records []lawyers.Record
			if err := json.NewDecoder(rec.Body).Decode(&records); err != nil {
				t.Fatal(err)
			}
			if len(records) != tt.expected {
				t.Errorf("got %d records; want %d", len(records), tt.expected)
			}
		})
	}
}
