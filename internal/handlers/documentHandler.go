package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strings"
	"sync"

	"github.com/vakilai/legal-doc-api/internal/adapter"
	"github.com/vakilai/legal-doc-api/internal/analysis"
	"github.com/vakilai/legal-doc-api/internal/analysis/extract"
	"github.com/vakilai/legal-doc-api/internal/api"
	"github.com/vakilai/legal-doc-api/internal/config"
	"github.com/vakilai/legal-doc-api/internal/lawyers"
	"github.com/vakilai/legal-doc-api/internal/report"
	"github.com/vakilai/legal-doc-api/pkg/logger_i"
)

var (
	handlerInstance *DocumentHandler //private singleton
	once            sync.Once
	logDH           *logger_i.Logger
)

type DocumentHandler struct {
	service   analysis.Service
	renderer  *report.Renderer
	directory *lawyers.Directory
}

func InitHandlers(service analysis.Service, renderer *report.Renderer, directory *lawyers.Directory) {
	once.Do(func() {
		handlerInstance = &DocumentHandler{
			service:   service,
			renderer:  renderer,
			directory: directory,
		}
		logDH = logger_i.NewLogger("DocumentHandler")
		logDH.Info("Starting document handlers")
	})
}

func GetHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	w.WriteHeader(http.StatusOK)
	fmt.Fprint(w, "VakilAI API is running. Upload a document to /process-document.")
}

// ProcessDocumentHandler godoc
// @Summary      Analyze a legal document
// @Description  Accepts a PDF, DOCX or image upload, extracts its text and runs the full AI analysis pipeline.
// @Tags         Documents
// @Accept       multipart/form-data
// @Produce      json
// @Param        document  formData  file  true  "The document to analyze (max 10 MiB)"
// @Success      200  {object}  api.ProcessDocumentResponse
// @Failure      400  {object}  api.ErrorResponse  "No file, oversize upload or disallowed extension"
// @Failure      500  {object}  api.ErrorResponse  "Extraction or AI failure"
// @Router       /process-document [post]
func ProcessDocumentHandler(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, config.MaxUploadBytes+(1<<20))
	if err := r.ParseMultipartForm(config.MaxUploadBytes); err != nil {
		WriteErrorResponse(w, http.StatusBadRequest, "File too large or bad request")
		return
	}

	fileReader, metadata, err := r.FormFile("document")
	if err != nil {
		WriteErrorResponse(w, http.StatusBadRequest, "No file uploaded")
		return
	}
	defer fileReader.Close()

	// Both checks run before anything touches disk or an extraction library.
	if metadata.Size > config.MaxUploadBytes {
		WriteErrorResponse(w, http.StatusBadRequest, "File size exceeds 10MB limit")
		return
	}
	ext := strings.ToLower(filepath.Ext(metadata.Filename))
	if !extract.AllowedExtension(ext) {
		WriteErrorResponse(w, http.StatusBadRequest, "File type not allowed")
		return
	}

	upload, err := saveUpload(fileReader, metadata)
	if err != nil {
		logDH.Error("Could not store upload", "error", err)
		WriteErrorResponse(w, http.StatusInternalServerError, "Storage error")
		return
	}

	result, err := handlerInstance.service.ProcessDocument(r.Context(), upload)
	if err != nil {
		WriteErrorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJsonResponse(w, http.StatusOK, adapter.ToProcessDocumentResponse(result, metadata.Filename))
}

// GenerateSummaryHandler godoc
// @Summary      Regenerate a document summary
// @Tags         Documents
// @Accept       json
// @Produce      json
// @Param        request  body      api.SummaryRequest  true  "Document text and target language code"
// @Success      200  {object}  api.SummaryResponse
// @Failure      400  {object}  api.ErrorResponse  "Missing text or languageCode"
// @Failure      500  {object}  api.ErrorResponse
// @Router       /generate-summary [post]
func GenerateSummaryHandler(w http.ResponseWriter, r *http.Request) {
	var requestData api.SummaryRequest
	if err := decodeBody(r, &requestData); err != nil {
		WriteErrorResponse(w, http.StatusBadRequest, "Bad Request")
		return
	}
	if err := requestData.Validate(); err != nil {
		WriteErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	summary, err := handlerInstance.service.Summarize(r.Context(), requestData.Text, requestData.LanguageCode)
	if err != nil {
		WriteErrorResponse(w, http.StatusInternalServerError, fmt.Sprintf("Failed to generate summary: %v", err))
		return
	}

	writeJsonResponse(w, http.StatusOK, api.SummaryResponse{Summary: summary})
}

// GeneratePDFHandler godoc
// @Summary      Render the analysis report as a PDF
// @Tags         Documents
// @Accept       json
// @Produce      application/pdf
// @Param        request  body  api.GeneratePDFRequest  true  "Analysis and summary text plus optional metadata"
// @Success      200  {file}    binary
// @Failure      400  {object}  api.ErrorResponse  "Missing analysis or summary"
// @Failure      500  {object}  api.ErrorResponse  "Render failure"
// @Router       /generate-pdf [post]
func GeneratePDFHandler(w http.ResponseWriter, r *http.Request) {
	var requestData api.GeneratePDFRequest
	if err := decodeBody(r, &requestData); err != nil {
		WriteErrorResponse(w, http.StatusBadRequest, "Bad Request")
		return
	}
	if err := requestData.Validate(); err != nil {
		WriteErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	var buf bytes.Buffer
	err := handlerInstance.renderer.Render(report.Input{
		Analysis:     requestData.Analysis,
		Summary:      requestData.Summary,
		DocumentType: requestData.DocumentType,
		Language:     requestData.Language,
	}, &buf)
	if err != nil {
		WriteErrorResponse(w, http.StatusInternalServerError, "Failed to generate PDF document")
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="vakilai-legal-analysis.pdf"`)
	w.Header().Set("Content-Length", fmt.Sprintf("%d", buf.Len()))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(buf.Bytes()); err != nil {
		logDH.Error("Error writing PDF response", "error", err)
	}
}

// ChatbotQueryHandler godoc
// @Summary      Ask a follow-up question about an analyzed document
// @Description  History is held fully client-side and replayed on every turn; the server keeps no chat state.
// @Tags         Chat
// @Accept       json
// @Produce      json
// @Param        request  body      api.ChatRequest  true  "Question, document text and prior turns"
// @Success      200  {object}  api.ChatResponse
// @Failure      400  {object}  api.ErrorResponse  "Missing question"
// @Failure      500  {object}  api.ErrorResponse
// @Router       /chatbot-query [post]
func ChatbotQueryHandler(w http.ResponseWriter, r *http.Request) {
	var requestData api.ChatRequest
	if err := decodeBody(r, &requestData); err != nil {
		WriteErrorResponse(w, http.StatusBadRequest, "Bad Request")
		return
	}
	if err := requestData.Validate(); err != nil {
		WriteErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	answer, err := handlerInstance.service.Chat(r.Context(), requestData.Question, requestData.DocumentText, requestData.History)
	if err != nil {
		WriteErrorResponse(w, http.StatusInternalServerError, "Failed to process chatbot query")
		return
	}

	writeJsonResponse(w, http.StatusOK, api.ChatResponse{Answer: answer})
}

func decodeBody(r *http.Request, target interface{}) error {
	defer func(body io.ReadCloser) {
		if err := body.Close(); err != nil {
			logDH.Error("Couldn't close the request body reader", "error", err)
		}
	}(r.Body)
	return json.NewDecoder(r.Body).Decode(target)
}
