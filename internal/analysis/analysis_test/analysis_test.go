package analysis_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vakilai/legal-doc-api/internal/analysis"
	"github.com/vakilai/legal-doc-api/internal/domain/docmodel"
	"github.com/vakilai/legal-doc-api/pkg/logger_i"
)

func TestMain(m *testing.M) {
	logger_i.Init()
	os.Exit(m.Run())
}

func tempUpload(t *testing.T) docmodel.Upload {
	t.Helper()
	path := filepath.Join(t.TempDir(), "upload.pdf")
	if err := os.WriteFile(path, []byte("%PDF-1.4 dummy"), 0644); err != nil {
		t.Fatal(err)
	}
	return docmodel.Upload{
		StoredPath:        path,
		OriginalName:      "lease.pdf",
		DeclaredExtension: ".pdf",
		SizeBytes:         14,
	}
}

func TestProcessDocument_Scenarios(t *testing.T) {
	tests := []struct {
		name          string
		setupMocks    func(e *MockExtractor, p *MockProvider)
		expectedStage docmodel.Stage
		wantErr       error
		checkResult   func(t *testing.T, result docmodel.Result)
		wantLLMCalls  int
	}{
		{
			name:       "Success_Full_Flow",
			setupMocks: func(e *MockExtractor, p *MockProvider) {},
			checkResult: func(t *testing.T, result docmodel.Result) {
				if result.LanguageCode != "hi" || result.LanguageName != "Hindi" {
					t.Errorf("language = %q (%q)", result.LanguageCode, result.LanguageName)
				}
				if result.DocumentType != "Rental Agreement" {
					t.Errorf("type = %q", result.DocumentType)
				}
				if !strings.Contains(result.AnalysisText, "❗") {
					t.Errorf("analysis missing danger glyph: %q", result.AnalysisText)
				}
				if result.SummaryText == "" || result.ExtractedText == "" {
					t.Error("summary and text must both be set on success")
				}
			},
			wantLLMCalls: 4,
		},
		{
			name: "Empty_Document_Never_Calls_The_Model",
			setupMocks: func(e *MockExtractor, p *MockProvider) {
				e.OnExtract = func(ctx context.Context, path string) (string, error) {
					return "   \n\t  ", nil
				}
			},
			expectedStage: docmodel.StageExtracting,
			wantErr:       docmodel.ErrEmptyDocument,
			wantLLMCalls:  0,
		},
		{
			name: "Extraction_Failure",
			setupMocks: func(e *MockExtractor, p *MockProvider) {
				e.OnExtract = func(ctx context.Context, path string) (string, error) {
					return "", &docmodel.ExtractionError{Path: path, Err: errors.New("corrupt file")}
				}
			},
			expectedStage: docmodel.StageExtracting,
			wantLLMCalls:  0,
		},
		{
			name: "Provider_Failure_At_Language_Stage_Aborts",
			setupMocks: func(e *MockExtractor, p *MockProvider) {
				p.OnGenerate = func(ctx context.Context, prompt string) (string, error) {
					return "", &docmodel.ProviderError{Err: errors.New("quota exceeded")}
				}
			},
			expectedStage: docmodel.StageDetectingLanguage,
			wantLLMCalls:  1,
		},
		{
			name: "Provider_Failure_At_Summary_Stage_Aborts",
			setupMocks: func(e *MockExtractor, p *MockProvider) {
				p.OnGenerate = func(ctx context.Context, prompt string) (string, error) {
					if strings.Contains(prompt, "generate a concise summary") {
						return "", &docmodel.ProviderError{Err: errors.New("provider down")}
					}
					return "hi (Hindi)", nil
				}
			},
			expectedStage: docmodel.StageSummarizing,
			wantLLMCalls:  4,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mExtract := &MockExtractor{}
			mProvider := &MockProvider{}
			tt.setupMocks(mExtract, mProvider)

			s := analysis.NewService(mExtract, mProvider)
			upload := tempUpload(t)

			result, err := s.ProcessDocument(context.Background(), upload)

			if tt.expectedStage != "" {
				var stageErr *docmodel.StageError
				if !errors.As(err, &stageErr) {
					t.Fatalf("expected StageError, got %v", err)
				}
				if stageErr.Stage != tt.expectedStage {
					t.Errorf("failed stage = %v; want %v", stageErr.Stage, tt.expectedStage)
				}
			} else if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("error = %v; want wrapped %v", err, tt.wantErr)
			}

			if mProvider.Calls != tt.wantLLMCalls {
				t.Errorf("LLM round trips = %d; want %d", mProvider.Calls, tt.wantLLMCalls)
			}

			if tt.checkResult != nil {
				tt.checkResult(t, result)
			}

			// the scratch file must be gone on success and on every failure path
			if _, statErr := os.Stat(upload.StoredPath); !os.IsNotExist(statErr) {
				t.Errorf("uploaded file still exists after pipeline run: %s", upload.StoredPath)
			}
		})
	}
}

func TestProcessDocument_StagesRunInOrder(t *testing.T) {
	mProvider := &MockProvider{}
	s := analysis.NewService(&MockExtractor{}, mProvider)

	if _, err := s.ProcessDocument(context.Background(), tempUpload(t)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(mProvider.Prompts) != 4 {
		t.Fatalf("expected 4 prompts, got %d", len(mProvider.Prompts))
	}
	order := []string{
		"identify its primary language",
		"classify it into one of these types",
		"identify key clauses",
		"generate a concise summary",
	}
	for i, fragment := range order {
		if !strings.Contains(mProvider.Prompts[i], fragment) {
			t.Errorf("prompt %d is not the %q stage:\n%s", i, fragment, mProvider.Prompts[i])
		}
	}
}

func TestChat_ReturnsProviderReplyUnmodified(t *testing.T) {
	mProvider := &MockProvider{
		OnGenerate: func(ctx context.Context, prompt string) (string, error) {
			if !strings.Contains(prompt, "Current question: What is clause 7?") {
				t.Errorf("chat prompt missing the literal question:\n%s", prompt)
			}
			return "Clause 7 covers maintenance.", nil
		},
	}
	s := analysis.NewService(&MockExtractor{}, mProvider)

	answer, err := s.Chat(context.Background(), "What is clause 7?", "document text", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if answer != "Clause 7 covers maintenance." {
		t.Errorf("answer = %q; must be the provider reply verbatim", answer)
	}
}

func TestSummarize_WrapsProviderFailure(t *testing.T) {
	mProvider := &MockProvider{
		OnGenerate: func(ctx context.Context, prompt string) (string, error) {
			return "", &docmodel.ProviderError{Err: errors.New("timeout")}
		},
	}
	s := analysis.NewService(&MockExtractor{}, mProvider)

	_, err := s.Summarize(context.Background(), "text", "en")
	var stageErr *docmodel.StageError
	if !errors.As(err, &stageErr) || stageErr.Stage != docmodel.StageSummarizing {
		t.Fatalf("expected summarizing StageError, got %v", err)
	}
	var providerErr *docmodel.ProviderError
	if !errors.As(err, &providerErr) {
		t.Error("original ProviderError should stay wrapped")
	}
}
