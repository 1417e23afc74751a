// Package parse normalizes free-text model replies into structured fields.
package parse

import "strings"

// Language holds the split "code (Name)" reply. The code is accepted as-is,
// no ISO validation.
type Language struct {
	Code string
	Name string
}

// SplitLanguage splits on the first " (" and strips a trailing ")" from the
// name. A reply without the delimiter is treated as a bare code.
func SplitLanguage(reply string) Language {
	reply = strings.TrimSpace(reply)
	idx := strings.Index(reply, " (")
	if idx < 0 {
		return Language{Code: reply, Name: "Unknown"}
	}
	return Language{
		Code: reply[:idx],
		Name: strings.TrimSuffix(reply[idx+2:], ")"),
	}
}

// DocumentType trims the reply and uses it verbatim. The model may return a
// value outside the known list; the boundary accepts it.
func DocumentType(reply string) string {
	return strings.TrimSpace(reply)
}

type LineTag string

const (
	TagDanger  LineTag = "danger"
	TagWarning LineTag = "warning"
	TagSafe    LineTag = "safe"
	TagPlain   LineTag = "plain"
)

// glyphTable is the enumerated pattern→tag classification, checked in order.
// First match wins, so a line carrying several glyphs is tagged by the most
// severe one.
var glyphTable = []struct {
	glyph string
	tag   LineTag
}{
	{"❗", TagDanger},
	{"⚠️", TagWarning},
	{"✅", TagSafe},
}

// ClassifyLine tags one analysis line by glyph containment.
func ClassifyLine(line string) LineTag {
	for _, entry := range glyphTable {
		if strings.Contains(line, entry.glyph) {
			return entry.tag
		}
	}
	return TagPlain
}

type TaggedLine struct {
	Text string
	Tag  LineTag
}

// TagAnalysis splits the analysis reply into lines and classifies each one.
// Used by the report renderer; the browser does the same split client-side.
func TagAnalysis(analysis string) []TaggedLine {
	var tagged []TaggedLine
	for _, line := range strings.Split(analysis, "\n") {
		tagged = append(tagged, TaggedLine{Text: line, Tag: ClassifyLine(line)})
	}
	return tagged
}
