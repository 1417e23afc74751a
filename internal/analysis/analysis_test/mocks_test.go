package analysis_test

import (
	"context"
	"strings"
)

// MockExtractor implements analysis.TextExtractor
type MockExtractor struct {
	OnExtract func(ctx context.Context, path string) (string, error)
}

func (m *MockExtractor) Extract(ctx context.Context, path string) (string, error) {
	if m.OnExtract != nil {
		return m.OnExtract(ctx, path)
	}
	return "default extracted text", nil
}

// MockProvider implements llm.Provider and routes replies by stage, keyed on
// distinctive prompt fragments.
type MockProvider struct {
	Calls      int
	Prompts    []string
	OnGenerate func(ctx context.Context, prompt string) (string, error)
}

func (m *MockProvider) Generate(ctx context.Context, prompt string) (string, error) {
	m.Calls++
	m.Prompts = append(m.Prompts, prompt)
	if m.OnGenerate != nil {
		return m.OnGenerate(ctx, prompt)
	}
	switch {
	case strings.Contains(prompt, "identify its primary language"):
		return "hi (Hindi)", nil
	case strings.Contains(prompt, "classify it into one of these types"):
		return "Rental Agreement", nil
	case strings.Contains(prompt, "identify key clauses"):
		return "❗ Termination without notice period\n✅ Rent clearly stated", nil
	case strings.Contains(prompt, "generate a concise summary"):
		return "OVERALL RISK: High (2 risky clauses)", nil
	default:
		return "mocked llm response", nil
	}
}
