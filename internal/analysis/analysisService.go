package analysis

import (
	"context"
	"os"
	"strings"
	"time"

	"github.com/vakilai/legal-doc-api/internal/analysis/llm"
	"github.com/vakilai/legal-doc-api/internal/analysis/prompt"
	"github.com/vakilai/legal-doc-api/internal/domain/docmodel"
	"github.com/vakilai/legal-doc-api/internal/metrics"
	"github.com/vakilai/legal-doc-api/pkg/logger_i"
)

// TextExtractor is stage one: stored file -> plain text.
type TextExtractor interface {
	Extract(ctx context.Context, path string) (string, error)
}

// Service is the pipeline contract the handlers call. Handlers never see the
// extractor or the provider directly.
type Service interface {
	ProcessDocument(ctx context.Context, upload docmodel.Upload) (docmodel.Result, error)
	Summarize(ctx context.Context, text string, languageCode string) (string, error)
	Chat(ctx context.Context, question string, documentText string, history []docmodel.ChatTurn) (string, error)
}

type service struct {
	extractor   TextExtractor
	llmProvider llm.Provider
	logger      *logger_i.Logger
}

// NewService constructor. Dependencies are injected so tests can swap in a
// fake extractor and provider.
func NewService(extractor TextExtractor, provider llm.Provider) Service {
	return &service{
		extractor:   extractor,
		llmProvider: provider,
		logger:      logger_i.NewLogger("Analysis Service"),
	}
}

// ProcessDocument runs the full pipeline strictly in order:
// extract -> detect language -> detect type -> analyze -> summarize.
// Every stage failure aborts the run; no placeholder values are substituted.
// The uploaded file is removed before returning on every path.
func (s *service) ProcessDocument(ctx context.Context, upload docmodel.Upload) (docmodel.Result, error) {
	log := s.logger.With("file", upload.OriginalName)
	start := time.Now()
	defer func() { metrics.CaptureJobMetrics("process_document", time.Since(start)) }()

	// Cleanup runs on success and on every failure path. Best effort, the
	// scratch file must not survive the request.
	defer func() {
		if err := os.Remove(upload.StoredPath); err != nil && !os.IsNotExist(err) {
			log.Error("Error removing uploaded file", "path", upload.StoredPath, "error", err)
		}
	}()

	var result docmodel.Result

	text, err := s.executeExtractionStep(ctx, log, upload)
	if err != nil {
		return result, s.stageError(docmodel.StageExtracting, err)
	}
	if strings.TrimSpace(text) == "" {
		return result, s.stageError(docmodel.StageExtracting, docmodel.ErrEmptyDocument)
	}
	result.ExtractedText = text

	language, err := s.executeLanguageStep(ctx, log, text)
	if err != nil {
		return result, s.stageError(docmodel.StageDetectingLanguage, err)
	}
	result.LanguageCode = language.Code
	result.LanguageName = language.Name

	docType, err := s.executeTypeStep(ctx, log, text)
	if err != nil {
		return result, s.stageError(docmodel.StageDetectingType, err)
	}
	result.DocumentType = docType

	analysisText, err := s.executeAnalysisStep(ctx, log, text, language.Code)
	if err != nil {
		return result, s.stageError(docmodel.StageAnalyzing, err)
	}
	result.AnalysisText = analysisText

	summary, err := s.executeSummaryStep(ctx, log, text, language.Code)
	if err != nil {
		return result, s.stageError(docmodel.StageSummarizing, err)
	}
	result.SummaryText = summary

	log.Info("Pipeline completed", "type", result.DocumentType, "language", result.LanguageName)
	metrics.IncrementDocumentsProcessed("success")
	return result, nil
}

func (s *service) Summarize(ctx context.Context, text string, languageCode string) (string, error) {
	summary, err := s.executeSummaryStep(ctx, s.logger, text, languageCode)
	if err != nil {
		return "", s.stageError(docmodel.StageSummarizing, err)
	}
	return summary, nil
}

func (s *service) Chat(ctx context.Context, question string, documentText string, history []docmodel.ChatTurn) (string, error) {
	start := time.Now()
	defer func() { metrics.CaptureExecutionMetrics("llm_chat", time.Since(start)) }()

	answer, err := s.llmProvider.Generate(ctx, prompt.ForChat(question, documentText, history))
	if err != nil {
		return "", s.stageError(docmodel.StageChat, err)
	}
	return answer, nil
}
