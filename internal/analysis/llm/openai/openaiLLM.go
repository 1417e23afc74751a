package openai

import (
	"context"
	"errors"
	"sync"

	openaisdk "github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/vakilai/legal-doc-api/internal/analysis/llm"
	"github.com/vakilai/legal-doc-api/internal/config"
	"github.com/vakilai/legal-doc-api/internal/customHttpClient"
	"github.com/vakilai/legal-doc-api/internal/domain/docmodel"
	"github.com/vakilai/legal-doc-api/pkg/logger_i"
)

// Alternate provider behind the same llm.Provider contract, selected with
// LLM_PROVIDER=openai.
type llmClient struct {
	client    openaisdk.Client
	modelName string
}

var logger *logger_i.Logger
var openaiClient *llmClient
var once sync.Once

func GetOpenAIClient(apikey string, modelName string) llm.Provider {
	once.Do(func() {
		logger = logger_i.NewLogger("llm_openai")
		c := openaisdk.NewClient(
			option.WithAPIKey(apikey),
			option.WithHTTPClient(customHttpClient.GetPooledClient()),
		)
		openaiClient = &llmClient{client: c, modelName: modelName}
		logger.Info("OpenAI client created", "model", modelName)
	})

	if openaiClient == nil {
		return nil
	}
	return &llmClient{client: openaiClient.client, modelName: openaiClient.modelName}
}

func (c *llmClient) Generate(ctx context.Context, prompt string) (string, error) {
	completion, err := c.client.Chat.Completions.New(ctx, openaisdk.ChatCompletionNewParams{
		Model: c.modelName,
		Messages: []openaisdk.ChatCompletionMessageParamUnion{
			openaisdk.SystemMessage(config.ModelContext),
			openaisdk.UserMessage(prompt),
		},
	})
	if err != nil {
		logger.Error("OpenAI generation failed", "error", err)
		return "", &docmodel.ProviderError{Err: err}
	}
	if len(completion.Choices) == 0 || completion.Choices[0].Message.Content == "" {
		return "", &docmodel.ProviderError{Err: errors.New("empty model reply")}
	}
	return completion.Choices[0].Message.Content, nil
}
