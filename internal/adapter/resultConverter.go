package adapter

import (
	"fmt"

	"github.com/vakilai/legal-doc-api/internal/api"
	"github.com/vakilai/legal-doc-api/internal/domain/docmodel"
)

func ToProcessDocumentResponse(result docmodel.Result, fileName string) api.ProcessDocumentResponse {
	return api.ProcessDocumentResponse{
		Status:       "success",
		Type:         result.DocumentType,
		LanguageCode: result.LanguageCode,
		LanguageName: result.LanguageName,
		Text:         result.ExtractedText,
		Analysis:     result.AnalysisText,
		Summary:      result.SummaryText,
		FileName:     fileName,
		Message: fmt.Sprintf("Document processed and analyzed successfully. Type: %s, Language: %s",
			result.DocumentType, result.LanguageName),
	}
}

func ToErrorResponse(message string) api.ErrorResponse {
	return api.ErrorResponse{
		Status:  "error",
		Message: message,
	}
}
