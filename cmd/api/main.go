// @title           VakilAI Legal Document API
// @version         1.0
// @description     Upload a legal document, run AI clause analysis and summarization, search the lawyer directory.
// @termsOfService  http://swagger.io/terms/

// @license.name    Apache 2.0
// @license.url     http://www.apache.org/licenses/LICENSE-2.0.html

// @host      localhost:3000
// @BasePath  /
// @schemes   http https
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/vakilai/legal-doc-api/internal/analysis"
	"github.com/vakilai/legal-doc-api/internal/analysis/extract"
	"github.com/vakilai/legal-doc-api/internal/analysis/llm"
	"github.com/vakilai/legal-doc-api/internal/analysis/llm/gemini"
	"github.com/vakilai/legal-doc-api/internal/analysis/llm/openai"
	"github.com/vakilai/legal-doc-api/internal/config"
	"github.com/vakilai/legal-doc-api/internal/handlers"
	"github.com/vakilai/legal-doc-api/internal/lawyers"
	"github.com/vakilai/legal-doc-api/internal/report"
	"github.com/vakilai/legal-doc-api/internal/server"
	"github.com/vakilai/legal-doc-api/pkg/logger_i"
)

var listenAddr string

func main() {

	logger_i.Init()
	var logger = logger_i.NewLogger("main")

	//config
	flag.StringVar(&listenAddr, "listen-addr", config.ServerListenAddr, "server listen address")
	flag.Parse()

	serviceContext, closeExternalServices := context.WithCancel(context.Background())
	defer closeExternalServices()

	llmProvider := buildProvider(serviceContext, logger)
	if llmProvider == nil {
		logger.Error("LLM provider failed to initialize. Shutting down.", "provider", config.LLMProvider)
		os.Exit(1)
	}

	extractor := extract.NewExtractor()
	analysisService := analysis.NewService(extractor, llmProvider)
	renderer := report.NewRenderer()
	directory := lawyers.NewDirectory()

	handlers.InitHandlers(analysisService, renderer, directory)

	//server handling
	gracefulShutdown := make(chan os.Signal, 1)
	signal.Notify(gracefulShutdown, syscall.SIGINT, syscall.SIGTERM)
	stopExecution := make(chan bool, 1)

	shutdownParams := server.ShutdownParams{
		GracefulShutdown: gracefulShutdown,
		StopExecution:    stopExecution,
		CloseServices:    closeExternalServices,
	}
	go server.ShutDownHandler(shutdownParams)
	go server.CreateServer(listenAddr)

	<-stopExecution
	logger.Info("Server stopped")
}

// The API key comes from the environment; refuse to start without one for
// the selected provider.
func buildProvider(ctx context.Context, logger *logger_i.Logger) llm.Provider {
	switch config.LLMProvider {
	case config.ProviderOpenAI:
		if config.OpenAIAPIKey == "" {
			logger.Error("OPENAI_API_KEY not found in environment variables")
			return nil
		}
		return openai.GetOpenAIClient(config.OpenAIAPIKey, config.OpenAIModelName)
	case config.ProviderGemini:
		if config.GeminiAPIKey == "" {
			logger.Error("GEMINI_API_KEY not found in environment variables")
			return nil
		}
		return gemini.GetGeminiClient(ctx, config.GeminiAPIKey, config.GeminiModelName)
	default:
		logger.Error("Unknown LLM provider", "provider", config.LLMProvider)
		return nil
	}
}
