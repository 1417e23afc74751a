package config

import (
	"log/slog"
	"os"
	"time"
)

const (
	IS_PROD        = false
	LOG_LEVEL_PROD = slog.LevelInfo
	TRACE_ID_KEY   = "traceId"

	RATE_LIMIT_PER_SECOND       = 2
	BURST_RATE_LIMIT_PER_SECOND = 5

	//serverTimeouts
	ReadTimeout            = 5 * time.Second
	WriteTimeout           = 120 * time.Second //AI round trips are slow, the writer must outlive them
	IdleTimeout            = 120 * time.Second
	ShutdownContextTimeout = 10 * time.Second

	//server listening port
	ServerListenAddr = ":3000"

	//uploads
	UploadDirName  = "uploads"
	MaxUploadBytes = 10 << 20 //10 MiB
	PDFPageTimeout = 10 * time.Second

	//prompt text budgets - prefix cuts, cost control only
	PromptTextBudget   = 10000
	LanguageTextBudget = 5000

	//llm
	GeminiModelName          = "gemini-1.5-flash-latest"
	OpenAIModelName          = "gpt-4o-mini"
	ModelTemperature float32 = 0.3
	ModelContext             = "You are VakilAI, a legal assistant specializing in Indian law. Provide accurate, concise analysis with IPC references where applicable."

	//ocr - english plus the indian scripts tesseract ships models for
	TesseractBinary = "tesseract"
	TesseractLangs  = "eng+hin+tam+tel+ben+mar+guj+kan+mal+ori+pan+asm"

	//report rendering
	ReportRenderTimeout = 60 * time.Second

	MaxIdleConns        = 50
	MaxIdleConnsPerHost = 25
	IdleConnTimeout     = 60 * time.Second
)

const (
	ProviderGemini = "gemini"
	ProviderOpenAI = "openai"
)

// Supplied out-of-band; the process refuses to start without the key for the
// selected provider.
var (
	GeminiAPIKey = os.Getenv("GEMINI_API_KEY")
	OpenAIAPIKey = os.Getenv("OPENAI_API_KEY")
	LLMProvider  = providerOrDefault(os.Getenv("LLM_PROVIDER"))
)

func providerOrDefault(p string) string {
	if p == "" {
		return ProviderGemini
	}
	return p
}
