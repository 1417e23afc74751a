package docmodel

import "strings"

type Stage string

// Pipeline stages in execution order. A later stage may assume every
// earlier one completed, the orchestrator aborts on the first failure.
const (
	StageReceived          Stage = "Received"
	StageExtracting        Stage = "Extracting"
	StageDetectingLanguage Stage = "DetectingLanguage"
	StageDetectingType     Stage = "DetectingType"
	StageAnalyzing         Stage = "Analyzing"
	StageSummarizing       Stage = "Summarizing"
	StageCompleted         Stage = "Completed"

	StageChat      Stage = "Chat"
	StageRendering Stage = "Rendering"
)

// Upload describes one stored multipart upload. The file lives only for
// the duration of the pipeline run that consumes it.
type Upload struct {
	StoredPath        string
	OriginalName      string
	DeclaredExtension string
	SizeBytes         int64
}

// Result aggregates everything the pipeline produced for one document.
// Fields are assigned once, in stage order.
type Result struct {
	DocumentType  string
	LanguageCode  string
	LanguageName  string
	ExtractedText string
	AnalysisText  string
	SummaryText   string
}

// ChatTurn is one message of the client-held conversation. The server keeps
// no chat state; the full ordered history is replayed on every turn.
type ChatTurn struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// DocumentType is the closed enumeration the model is asked to pick from.
// The model reply is accepted verbatim at the boundary; this type exists for
// downstream code that wants to branch on it.
type DocumentType string

const (
	TypeRentalAgreement    DocumentType = "Rental Agreement"
	TypeNDA                DocumentType = "NDA (Non-Disclosure Agreement)"
	TypeCourtOrder         DocumentType = "Court Order"
	TypeEmploymentContract DocumentType = "Employment Contract"
	TypeSaleDeed           DocumentType = "Sale Deed"
	TypePowerOfAttorney    DocumentType = "Power of Attorney"
	TypeOtherLegal         DocumentType = "Other Legal Document"
)

var KnownDocumentTypes = []DocumentType{
	TypeRentalAgreement,
	TypeNDA,
	TypeCourtOrder,
	TypeEmploymentContract,
	TypeSaleDeed,
	TypePowerOfAttorney,
	TypeOtherLegal,
}

// ParseDocumentType maps a model reply onto the enumeration, falling back to
// TypeOtherLegal for anything outside the list.
func ParseDocumentType(raw string) DocumentType {
	trimmed := strings.TrimSpace(raw)
	for _, t := range KnownDocumentTypes {
		if strings.EqualFold(trimmed, string(t)) {
			return t
		}
	}
	return TypeOtherLegal
}
