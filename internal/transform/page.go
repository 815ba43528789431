package transform

import (
	"encoding/json"
	"fmt"
	"time"

	"til_mirror/internal/domain"
	"til_mirror/internal/source/notion"
)

type titleProperty struct {
	Title []notion.RichText `json:"title"`
}

type richTextProperty struct {
	RichText []notion.RichText `json:"rich_text"`
}

type selectProperty struct {
	Select *notion.SelectOption `json:"select"`
}

type multiSelectProperty struct {
	MultiSelect []notion.SelectOption `json:"multi_select"`
}

type urlProperty struct {
	URL *string `json:"url"`
}

type dateProperty struct {
	Date *notion.DateValue `json:"date"`
}

var dateLayouts = []string{time.RFC3339Nano, "2006-01-02T15:04:05", "2006-01-02"}

// PageTransformer converts raw database records into entries.
type PageTransformer struct {
	keys PropertyKeys
	now  func() time.Time
}

func NewPageTransformer(keys PropertyKeys) *PageTransformer {
	return &PageTransformer{keys: keys.WithDefaults(), now: time.Now}
}

// Keys returns the property names the transformer reads.
func (t *PageTransformer) Keys() PropertyKeys {
	return t.keys
}

// Transform validates a raw page and builds an Entry. A missing title or
// slug, or a status other than Draft/Published, rejects the page. An
// unknown or malformed category becomes the fallback category and a
// missing or malformed date becomes the current time.
func (t *PageTransformer) Transform(page notion.Page) (domain.Entry, error) {
	var (
		title     titleProperty
		slug      richTextProperty
		status    selectProperty
		category  selectProperty
		date      dateProperty
		tags      multiSelectProperty
		reference urlProperty
	)

	props := []struct {
		key string
		dst any
	}{
		{t.keys.Title, &title},
		{t.keys.Slug, &slug},
		{t.keys.Status, &status},
		{t.keys.Tags, &tags},
		{t.keys.Reference, &reference},
	}
	for _, p := range props {
		if err := decodeProperty(page.Properties, p.key, p.dst); err != nil {
			return domain.Entry{}, err
		}
	}

	// Category and date have defaults, so a wrongly shaped value falls back.
	if err := decodeProperty(page.Properties, t.keys.Category, &category); err != nil {
		category = selectProperty{}
	}
	if err := decodeProperty(page.Properties, t.keys.Date, &date); err != nil {
		date = dateProperty{}
	}

	params := domain.EntryParams{
		ID:        page.ID,
		Title:     firstPlainText(title.Title),
		Slug:      firstPlainText(slug.RichText),
		Date:      t.entryDate(date.Date),
		Category:  normalizeCategory(category.Select),
		Tags:      optionNames(tags.MultiSelect),
		Reference: nonEmpty(reference.URL),
	}
	if status.Select != nil {
		params.Status = domain.Status(status.Select.Name)
	}

	return domain.NewEntry(params)
}

func decodeProperty(props map[string]json.RawMessage, key string, dst any) error {
	raw, ok := props[key]
	if !ok || len(raw) == 0 || string(raw) == "null" {
		return nil
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return fmt.Errorf("%w %q: %v", ErrMalformedProperty, key, err)
	}
	return nil
}

func firstPlainText(spans []notion.RichText) string {
	if len(spans) == 0 {
		return ""
	}
	return spans[0].PlainText
}

func normalizeCategory(opt *notion.SelectOption) domain.CategoryID {
	if opt == nil || !domain.IsValidCategoryID(opt.Name) {
		return domain.FallbackCategory
	}
	return domain.CategoryID(opt.Name)
}

func optionNames(opts []notion.SelectOption) []string {
	names := make([]string, 0, len(opts))
	for _, o := range opts {
		names = append(names, o.Name)
	}
	return names
}

func nonEmpty(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	v := *s
	return &v
}

// entryDate parses the date property. Missing or unparseable dates
// become the current time, kept at full precision.
func (t *PageTransformer) entryDate(d *notion.DateValue) time.Time {
	if d != nil && d.Start != "" {
		for _, layout := range dateLayouts {
			if parsed, err := time.Parse(layout, d.Start); err == nil {
				return parsed
			}
		}
	}
	return t.now().UTC()
}
