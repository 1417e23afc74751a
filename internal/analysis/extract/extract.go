// Package extract turns one stored upload into plain text. Dispatch is on
// file extension only; anything outside the allowed set fails before a
// library call. The caller owns deletion of the file.
package extract

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/dslipak/pdf"
	"github.com/lu4p/cat"
	"github.com/vakilai/legal-doc-api/internal/config"
	"github.com/vakilai/legal-doc-api/internal/domain/docmodel"
	"github.com/vakilai/legal-doc-api/pkg/logger_i"
)

type Extractor struct {
	runner Runner
	logger *logger_i.Logger
}

func NewExtractor() *Extractor {
	logger := logger_i.NewLogger("Text Extractor")
	return &Extractor{runner: execRunner{logger: logger}, logger: logger}
}

// NewExtractorWithRunner is the test seam for the OCR binary.
func NewExtractorWithRunner(r Runner) *Extractor {
	return &Extractor{runner: r, logger: logger_i.NewLogger("Text Extractor")}
}

// AllowedExtension reports whether the upload may enter the pipeline at all.
func AllowedExtension(ext string) bool {
	switch strings.ToLower(ext) {
	case ".pdf", ".docx", ".jpg", ".jpeg", ".png":
		return true
	}
	return false
}

// Extract reads the file at path and returns its trimmed plain text.
func (e *Extractor) Extract(ctx context.Context, path string) (string, error) {
	ext := strings.ToLower(filepath.Ext(path))
	e.logger.Debug("extract", "path", path, "ext", ext)

	switch ext {
	case ".pdf":
		return e.extractPDF(path)
	case ".jpg", ".jpeg", ".png":
		return e.extractImage(ctx, path)
	case ".docx":
		return e.extractDocx(path)
	default:
		return "", fmt.Errorf("%w: %s", docmodel.ErrUnsupportedFormat, ext)
	}
}

func (e *Extractor) extractPDF(path string) (string, error) {
	f, err := pdf.Open(path)
	if err != nil {
		e.logger.Error("failed opening of pdf file", "error", err)
		return "", &docmodel.ExtractionError{Path: path, Err: err}
	}

	var text strings.Builder
	numPages := f.NumPage()
	e.logger.Debug("extractPDF", "number of pages", numPages)
	for i := 1; i <= numPages; i++ {
		page := f.Page(i)
		if page.V.IsNull() {
			continue
		}

		content, err := protectExtract(page)
		if err != nil {
			// Log warning but continue with other pages
			e.logger.Error("Error parsing page content", "page", i, "Error", err)
			continue
		}
		text.WriteString(content)
		text.WriteString(" ")
	}
	return strings.TrimSpace(text.String()), nil
}

// cat.File reads a .odt, .docx, .rtf or plaintext file and returns the content
func (e *Extractor) extractDocx(path string) (string, error) {
	text, err := cat.File(path)
	if err != nil {
		e.logger.Error("Error extracting content from doc", "error", err)
		return "", &docmodel.ExtractionError{Path: path, Err: err}
	}
	return strings.TrimSpace(text), nil
}

// tesseract <file> stdout -l eng+hin+...
func (e *Extractor) extractImage(ctx context.Context, path string) (string, error) {
	out, errb, err := e.runner.Run(ctx, config.TesseractBinary, path, "stdout", "-l", config.TesseractLangs)
	if err != nil {
		return "", &docmodel.ExtractionError{Path: path, Err: fmt.Errorf("tesseract: %w (%s)", err, truncateOutput(string(errb), 256))}
	}
	return strings.TrimSpace(string(out)), nil
}

// Some malformed PDFs hang the text decoder, so each page gets a deadline.
func protectExtract(page pdf.Page) (string, error) {
	type result struct {
		content string
		err     error
	}
	resChan := make(chan result, 1)

	go func() {
		content, err := page.GetPlainText(nil)
		resChan <- result{content, err}
	}()
	select {
	case r := <-resChan:
		return r.content, r.err
	case <-time.After(config.PDFPageTimeout):
		return "", errors.New("page extraction timeout")
	}
}
