// Package report renders the analysis report PDF served by /generate-pdf.
// The layout mirrors the browser report: header, document information,
// detailed analysis with per-line risk colors, executive summary, footer.
package report

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/vakilai/legal-doc-api/internal/analysis/parse"
	"github.com/vakilai/legal-doc-api/internal/config"
	"github.com/vakilai/legal-doc-api/internal/domain/docmodel"
	"github.com/vakilai/legal-doc-api/pkg/logger_i"
)

type Input struct {
	Analysis     string
	Summary      string
	DocumentType string
	Language     string
	GeneratedAt  time.Time
}

type Renderer struct {
	logger *logger_i.Logger
	now    func() time.Time
}

func NewRenderer() *Renderer {
	return &Renderer{logger: logger_i.NewLogger("Report Renderer"), now: time.Now}
}

// Render writes the report PDF to w. Rendering is bounded by
// config.ReportRenderTimeout, the only explicit timeout in the system.
func (r *Renderer) Render(in Input, w io.Writer) error {
	if in.GeneratedAt.IsZero() {
		in.GeneratedAt = r.now()
	}

	form, err := json.Marshal(buildForm(in))
	if err != nil {
		return &docmodel.RenderError{Err: err}
	}

	done := make(chan error, 1)
	var buf bytes.Buffer
	go func() {
		done <- api.Create(nil, bytes.NewReader(form), &buf, nil)
	}()

	select {
	case err := <-done:
		if err != nil {
			r.logger.Error("PDF Generation Error", "error", err)
			return &docmodel.RenderError{Err: err}
		}
	case <-time.After(config.ReportRenderTimeout):
		r.logger.Error("PDF Generation Error", "error", "render timeout")
		return &docmodel.RenderError{Err: fmt.Errorf("render exceeded %s", config.ReportRenderTimeout)}
	}

	if _, err := w.Write(buf.Bytes()); err != nil {
		return &docmodel.RenderError{Err: err}
	}
	return nil
}

// pdfcpu declarative create form. Only the pieces this report needs.

type createForm struct {
	Pages map[string]formPage `json:"pages"`
}

type formPage struct {
	Content formContent `json:"content"`
}

type formContent struct {
	Text []textBox `json:"text"`
}

type textBox struct {
	Value     string   `json:"value"`
	Position  [2]int   `json:"position"`
	Font      formFont `json:"font"`
	FillColor string   `json:"fillColor,omitempty"`
	Anchor    string   `json:"anchor,omitempty"`
}

type formFont struct {
	Name string `json:"name"`
	Size int    `json:"size"`
}

// A4 in points, lower-left origin.
const (
	pageTop      = 800
	pageBottom   = 48
	leftMargin   = 48
	lineHeight   = 13
	bodyFontSize = 9
	wrapWidth    = 100
)

var tagColors = map[parse.LineTag]string{
	parse.TagDanger:  "#d64045",
	parse.TagWarning: "#ff9f1c",
	parse.TagSafe:    "#2e933c",
	parse.TagPlain:   "#333333",
}

type line struct {
	text  string
	color string
	size  int
}

func buildForm(in Input) createForm {
	var lines []line

	heading := func(text string, size int) {
		lines = append(lines,
			line{},
			line{text: text, color: "#166088", size: size},
			line{})
	}

	lines = append(lines, line{text: "VakilAI Legal Document Analysis Report", color: "#4a6fa5", size: 18})

	heading("Document Information", 13)
	docType := in.DocumentType
	if docType == "" {
		docType = "Not specified"
	}
	language := in.Language
	if language == "" {
		language = "Not detected"
	}
	lines = append(lines,
		line{text: "Type: " + docType},
		line{text: "Language: " + language},
		line{text: "Generated: " + in.GeneratedAt.Format("02 Jan 2006 15:04")},
	)

	heading("Detailed Analysis", 13)
	for _, tagged := range parse.TagAnalysis(in.Analysis) {
		for _, wrapped := range wrap(tagged.Text, wrapWidth) {
			lines = append(lines, line{text: wrapped, color: tagColors[tagged.Tag]})
		}
	}

	heading("Executive Summary", 13)
	for _, raw := range strings.Split(in.Summary, "\n") {
		for _, wrapped := range wrap(raw, wrapWidth) {
			lines = append(lines, line{text: wrapped})
		}
	}

	lines = append(lines, line{}, line{text: "Generated by VakilAI - AI-Powered Legal Assistant", color: "#666666"})

	return paginate(lines)
}

// paginate lays lines top-down, spilling onto new pages as needed.
func paginate(lines []line) createForm {
	form := createForm{Pages: map[string]formPage{}}

	pageNum := 1
	y := pageTop
	var boxes []textBox

	flush := func() {
		if len(boxes) == 0 {
			// pdfcpu rejects a page with no content
			boxes = append(boxes, textBox{
				Value:    " ",
				Position: [2]int{leftMargin, pageTop},
				Font:     formFont{Name: "Helvetica", Size: bodyFontSize},
			})
		}
		form.Pages[fmt.Sprintf("%d", pageNum)] = formPage{Content: formContent{Text: boxes}}
		pageNum++
		y = pageTop
		boxes = nil
	}

	for _, l := range lines {
		if y < pageBottom {
			flush()
		}
		if l.text == "" {
			y -= lineHeight
			continue
		}
		size := l.size
		if size == 0 {
			size = bodyFontSize
		}
		color := l.color
		if color == "" {
			color = tagColors[parse.TagPlain]
		}
		boxes = append(boxes, textBox{
			Value:     l.text,
			Position:  [2]int{leftMargin, y},
			Font:      formFont{Name: "Helvetica", Size: size},
			FillColor: color,
		})
		y -= lineHeight + (size - bodyFontSize)
	}
	flush()

	return form
}

// wrap splits a line on rune count; prompts and summaries are prose so a
// plain cut at the last space is enough.
func wrap(text string, width int) []string {
	if text == "" {
		return []string{""}
	}
	var out []string
	runes := []rune(text)
	for len(runes) > width {
		cut := width
		for i := width; i > width/2; i-- {
			if runes[i] == ' ' {
				cut = i
				break
			}
		}
		out = append(out, string(runes[:cut]))
		runes = runes[cut:]
		for len(runes) > 0 && runes[0] == ' ' {
			runes = runes[1:]
		}
	}
	out = append(out, string(runes))
	return out
}
