package transform

import (
	"til_mirror/internal/domain"
	"til_mirror/internal/source/notion"
)

// RichText converts raw spans. The result is never nil.
func RichText(spans []notion.RichText) []domain.RichText {
	out := make([]domain.RichText, 0, len(spans))
	for _, s := range spans {
		out = append(out, richTextSpan(s))
	}
	return out
}

func richTextSpan(s notion.RichText) domain.RichText {
	span := domain.RichText{
		Kind:        richTextKind(s.Type),
		PlainText:   s.PlainText,
		Href:        s.Href,
		Annotations: domain.Annotations{Color: domain.DefaultColor},
	}

	if span.Href == nil && s.Text != nil && s.Text.Link != nil && s.Text.Link.URL != "" {
		href := s.Text.Link.URL
		span.Href = &href
	}

	if a := s.Annotations; a != nil {
		span.Annotations = domain.Annotations{
			Bold:          a.Bold,
			Italic:        a.Italic,
			Strikethrough: a.Strikethrough,
			Underline:     a.Underline,
			Code:          a.Code,
			Color:         color(a.Color),
		}
	}

	return span
}

func richTextKind(t string) domain.RichTextKind {
	switch k := domain.RichTextKind(t); k {
	case domain.RichTextMention, domain.RichTextEquation:
		return k
	default:
		return domain.RichTextText
	}
}

func color(c string) domain.Color {
	if c == "" {
		return domain.DefaultColor
	}
	return domain.Color(c)
}
