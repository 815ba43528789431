package domain

import "strings"

// RichTextKind is the kind of a rich text span.
type RichTextKind string

const (
	RichTextText     RichTextKind = "text"
	RichTextMention  RichTextKind = "mention"
	RichTextEquation RichTextKind = "equation"
)

// Color is a text or background color name as used by the document service.
type Color string

const DefaultColor Color = "default"

// Annotations holds the styling applied to a span.
type Annotations struct {
	Bold          bool  `json:"bold"`
	Italic        bool  `json:"italic"`
	Strikethrough bool  `json:"strikethrough"`
	Underline     bool  `json:"underline"`
	Code          bool  `json:"code"`
	Color         Color `json:"color"`
}

// RichText is one annotated run of text.
type RichText struct {
	Kind        RichTextKind `json:"type"`
	PlainText   string       `json:"plain_text"`
	Href        *string      `json:"href"`
	Annotations Annotations  `json:"annotations"`
}

// ExtractPlainText concatenates the plain text of every span in order.
func ExtractPlainText(spans []RichText) string {
	var sb strings.Builder
	for _, s := range spans {
		sb.WriteString(s.PlainText)
	}
	return sb.String()
}
