package api

import (
	"fmt"

	"github.com/vakilai/legal-doc-api/internal/domain/docmodel"
)

type ProcessDocumentResponse struct {
	Status       string `json:"status" example:"success"`
	Type         string `json:"type" example:"Rental Agreement"`
	LanguageCode string `json:"language_code" example:"en"`
	LanguageName string `json:"language_name" example:"English"`
	Text         string `json:"text"`
	Analysis     string `json:"analysis"`
	Summary      string `json:"summary"`
	FileName     string `json:"file_name" example:"lease.pdf"`
	Message      string `json:"message"`
}

type ErrorResponse struct {
	Status  string `json:"status" example:"error"`
	Message string `json:"message" example:"No file uploaded"`
}

// requests---------------------

type SummaryRequest struct {
	Text         string `json:"text" validate:"required"`
	LanguageCode string `json:"languageCode" validate:"required"`
}

func (r SummaryRequest) Validate() error {
	if r.Text == "" || r.LanguageCode == "" {
		return fmt.Errorf("%w: text and languageCode are required", docmodel.ErrMissingFields)
	}
	return nil
}

type SummaryResponse struct {
	Summary string `json:"summary"`
}

type GeneratePDFRequest struct {
	Analysis     string `json:"analysis" validate:"required"`
	Summary      string `json:"summary" validate:"required"`
	DocumentType string `json:"documentType,omitempty"`
	Language     string `json:"language,omitempty"`
}

func (r GeneratePDFRequest) Validate() error {
	if r.Analysis == "" || r.Summary == "" {
		return fmt.Errorf("%w: analysis and summary are required", docmodel.ErrMissingFields)
	}
	return nil
}

type ChatRequest struct {
	Question     string              `json:"question" validate:"required"`
	DocumentText string              `json:"documentText"`
	History      []docmodel.ChatTurn `json:"history"`
}

func (r ChatRequest) Validate() error {
	if r.Question == "" {
		return fmt.Errorf("%w: question is required", docmodel.ErrMissingFields)
	}
	return nil
}

type ChatResponse struct {
	Answer string `json:"answer"`
}
