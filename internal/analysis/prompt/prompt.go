// Package prompt builds the per-stage instructions sent to the model.
// Builders are pure functions; document text is cut to a fixed prefix budget
// before embedding. Output is opaque text for the provider, nothing here
// interprets it.
package prompt

import (
	"fmt"
	"strings"

	"github.com/vakilai/legal-doc-api/internal/config"
	"github.com/vakilai/legal-doc-api/internal/domain/docmodel"
)

// Truncate is a straight prefix cut, no word-boundary adjustment.
func Truncate(text string, limit int) string {
	if limit <= 0 || len(text) <= limit {
		return text
	}
	return text[:limit]
}

func ForDocumentType(text string) string {
	var list strings.Builder
	for _, t := range docmodel.KnownDocumentTypes {
		list.WriteString("- ")
		list.WriteString(string(t))
		list.WriteString("\n")
	}

	return fmt.Sprintf(`Analyze the following legal document text and classify it into one of these types:
%s
Return ONLY the document type name, nothing else.

Document Text:
%s`, list.String(), Truncate(text, config.PromptTextBudget))
}

func ForLanguage(text string) string {
	return fmt.Sprintf(`Analyze the following text and identify its primary language.
Focus on common Indian languages like Hindi, Tamil, Telugu, etc.
Return the language code (e.g., 'en' for English, 'hi' for Hindi, 'ta' for Tamil) and the full language name in parentheses (e.g., 'en (English)').
If unsure, return 'unknown (Unknown)'.

Text:
%s`, Truncate(text, config.LanguageTextBudget))
}

func ForAnalysis(text string, languageCode string) string {
	return fmt.Sprintf(`You are a legal AI assistant. Analyze the following legal document and identify key clauses.
Highlight:
- Risky Clauses (⚠️)
- Safe Clauses (✅)
- Critical Clauses (❗)

Provide explanations in the language corresponding to the language code '%s' (e.g., 'en' for English, 'hi' for Hindi, 'ta' for Tamil).
If the language code is 'unknown', default to English.
Keep the explanations simple and clear.

Document Text:
%s`, languageCode, Truncate(text, config.PromptTextBudget))
}

func ForSummary(text string, languageCode string) string {
	return fmt.Sprintf(`You are a legal AI assistant. Analyze the following legal document and generate a concise summary in the language corresponding to the language code '%s' (e.g., 'en' for English, 'hi' for Hindi, 'ta' for Tamil). If the language code is 'unknown', default to English.

The summary should include:
- Overall Risk: High/Medium/Low (mention the number of risky clauses and unfair terms, if any)
- Key Issues: A bullet list of 3-5 key issues or risky clauses
- Tenant Responsibilities: A short description of responsibilities imposed on the tenant (if applicable)

Format the summary as follows:
OVERALL RISK: [High/Medium/Low] ([X risky clauses, Y unfair terms])
KEY ISSUES:
- [Issue 1]
- [Issue 2]
- [Issue 3]
TENANT RESPONSIBLE FOR: [Description of tenant responsibilities]

Document Text:
%s`, languageCode, Truncate(text, config.PromptTextBudget))
}

// ForChat serialises the full ordered history as "role: content" lines ahead
// of the new question. History lives client-side and is replayed verbatim.
func ForChat(question string, documentText string, history []docmodel.ChatTurn) string {
	var lines []string
	for _, turn := range history {
		lines = append(lines, fmt.Sprintf("%s: %s", turn.Role, turn.Content))
	}

	return fmt.Sprintf(`You are VakilAI, a legal assistant chatbot. The user has uploaded a document with the following content:
%s

Conversation history:
%s

Current question: %s

Provide a concise, helpful answer based on the document content and conversation history.
Focus on legal aspects and be precise with your answers.
If you reference specific clauses, mention their section numbers if available.`,
		Truncate(documentText, config.PromptTextBudget),
		strings.Join(lines, "\n"),
		question)
}
