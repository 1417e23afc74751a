package analysis

import (
	"context"
	"time"

	"github.com/vakilai/legal-doc-api/internal/analysis/parse"
	"github.com/vakilai/legal-doc-api/internal/analysis/prompt"
	"github.com/vakilai/legal-doc-api/internal/domain/docmodel"
	"github.com/vakilai/legal-doc-api/internal/metrics"
	"github.com/vakilai/legal-doc-api/pkg/logger_i"
)

func (s *service) stageError(stage docmodel.Stage, err error) error {
	s.logger.Error("Pipeline stage failed", "stage", stage, "error", err)
	metrics.IncrementDocumentsProcessed("error")
	return &docmodel.StageError{Stage: stage, Err: err}
}

func logStage(log *logger_i.Logger, stage docmodel.Stage) {
	log.Debug("ProcessDocument", "stage", stage)
}

func (s *service) executeExtractionStep(ctx context.Context, log *logger_i.Logger, upload docmodel.Upload) (string, error) {
	logStage(log, docmodel.StageExtracting)

	start := time.Now()
	defer func() { metrics.CaptureExecutionMetrics("extraction", time.Since(start)) }()

	return s.extractor.Extract(ctx, upload.StoredPath)
}

func (s *service) executeLanguageStep(ctx context.Context, log *logger_i.Logger, text string) (parse.Language, error) {
	logStage(log, docmodel.StageDetectingLanguage)

	start := time.Now()
	defer func() { metrics.CaptureExecutionMetrics("llm_language_detection", time.Since(start)) }()

	reply, err := s.llmProvider.Generate(ctx, prompt.ForLanguage(text))
	if err != nil {
		return parse.Language{}, err
	}
	language := parse.SplitLanguage(reply)
	log.Debug("Model reply (language)", "code", language.Code, "name", language.Name)
	return language, nil
}

func (s *service) executeTypeStep(ctx context.Context, log *logger_i.Logger, text string) (string, error) {
	logStage(log, docmodel.StageDetectingType)

	start := time.Now()
	defer func() { metrics.CaptureExecutionMetrics("llm_type_detection", time.Since(start)) }()

	reply, err := s.llmProvider.Generate(ctx, prompt.ForDocumentType(text))
	if err != nil {
		return "", err
	}
	docType := parse.DocumentType(reply)
	log.Debug("Model reply (document type)", "type", docType)
	return docType, nil
}

func (s *service) executeAnalysisStep(ctx context.Context, log *logger_i.Logger, text string, languageCode string) (string, error) {
	logStage(log, docmodel.StageAnalyzing)

	start := time.Now()
	defer func() { metrics.CaptureExecutionMetrics("llm_clause_analysis", time.Since(start)) }()

	return s.llmProvider.Generate(ctx, prompt.ForAnalysis(text, languageCode))
}

func (s *service) executeSummaryStep(ctx context.Context, log *logger_i.Logger, text string, languageCode string) (string, error) {
	logStage(log, docmodel.StageSummarizing)

	start := time.Now()
	defer func() { metrics.CaptureExecutionMetrics("llm_summary", time.Since(start)) }()

	return s.llmProvider.Generate(ctx, prompt.ForSummary(text, languageCode))
}
