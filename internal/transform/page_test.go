package transform

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"til_mirror/internal/domain"
	"til_mirror/internal/source/notion"
)

var fixedNow = time.Date(2024, 5, 1, 9, 30, 15, 123, time.FixedZone("KST", 9*60*60))

func newTestTransformer() *PageTransformer {
	tr := NewPageTransformer(PropertyKeys{})
	tr.now = func() time.Time { return fixedNow }
	return tr
}

func page(id string, props map[string]string) notion.Page {
	p := notion.Page{ID: id, Properties: make(map[string]json.RawMessage, len(props))}
	for k, v := range props {
		p.Properties[k] = json.RawMessage(v)
	}
	return p
}

func fullProps() map[string]string {
	return map[string]string{
		"Title":     `{"type":"title","title":[{"plain_text":"Go generics"},{"plain_text":" ignored"}]}`,
		"Slag":      `{"type":"rich_text","rich_text":[{"plain_text":"go-generics"}]}`,
		"Status":    `{"type":"select","select":{"name":"Published"}}`,
		"Category":  `{"type":"select","select":{"name":"Backend"}}`,
		"등록일":       `{"type":"date","date":{"start":"2024-03-01","end":null}}`,
		"Tag":       `{"type":"multi_select","multi_select":[{"name":"go"},{"name":"types"}]}`,
		"Reference": `{"type":"url","url":"https://go.dev/doc/tutorial/generics"}`,
	}
}

func TestTransform_FullRecord(t *testing.T) {
	entry, err := newTestTransformer().Transform(page("p1", fullProps()))
	require.NoError(t, err)

	assert.Equal(t, "p1", entry.ID)
	assert.Equal(t, "Go generics", entry.Title)
	assert.Equal(t, "go-generics", entry.Slug)
	assert.Equal(t, domain.StatusPublished, entry.Status)
	assert.Equal(t, domain.CategoryBackend, entry.Category)
	assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), entry.Date)
	assert.Equal(t, []string{"go", "types"}, entry.Tags)
	require.NotNil(t, entry.Reference)
	assert.Equal(t, "https://go.dev/doc/tutorial/generics", *entry.Reference)
}

func TestTransform_UnknownCategoryFallsBack(t *testing.T) {
	tests := []struct {
		name     string
		category string
	}{
		{"unknown name", `{"type":"select","select":{"name":"Gardening"}}`},
		{"numeric name", `{"type":"select","select":{"name":42}}`},
		{"select is a string", `{"type":"select","select":"AWS"}`},
		{"not an object", `"AWS"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			props := fullProps()
			props["Category"] = tt.category

			entry, err := newTestTransformer().Transform(page("p1", props))
			require.NoError(t, err)
			assert.Equal(t, domain.FallbackCategory, entry.Category)
			assert.Equal(t, "go-generics", entry.Slug)
		})
	}
}

func TestTransform_MissingOptionalFields(t *testing.T) {
	props := fullProps()
	delete(props, "Category")
	delete(props, "등록일")
	delete(props, "Tag")
	props["Reference"] = `{"type":"url","url":null}`

	entry, err := newTestTransformer().Transform(page("p1", props))
	require.NoError(t, err)

	assert.Equal(t, domain.CategoryBackend, entry.Category)
	assert.Equal(t, fixedNow.UTC(), entry.Date)
	assert.NotNil(t, entry.Tags)
	assert.Empty(t, entry.Tags)
	assert.Nil(t, entry.Reference)
}

func TestTransform_DateVariants(t *testing.T) {
	tests := []struct {
		name     string
		property string
		want     time.Time
	}{
		{"date only", `{"type":"date","date":{"start":"2024-03-01"}}`, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)},
		{"timestamp", `{"type":"date","date":{"start":"2024-03-01T10:00:00.000+09:00"}}`, time.Date(2024, 3, 1, 1, 0, 0, 0, time.UTC)},
		{"garbage", `{"type":"date","date":{"start":"yesterday"}}`, fixedNow.UTC()},
		{"empty", `{"type":"date","date":{"start":""}}`, fixedNow.UTC()},
		{"date is a string", `{"type":"date","date":"2024-01-01"}`, fixedNow.UTC()},
		{"numeric start", `{"type":"date","date":{"start":20240101}}`, fixedNow.UTC()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			props := fullProps()
			props["등록일"] = tt.property

			entry, err := newTestTransformer().Transform(page("p1", props))
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(entry.Date), "got %s", entry.Date)
		})
	}
}

func TestTransform_Rejections(t *testing.T) {
	tests := []struct {
		name    string
		id      string
		mutate  func(map[string]string)
		wantErr error
	}{
		{
			name:    "missing id",
			mutate:  func(map[string]string) {},
			wantErr: domain.ErrMissingID,
		},
		{
			name:    "empty title",
			id:      "p1",
			mutate:  func(p map[string]string) { p["Title"] = `{"type":"title","title":[]}` },
			wantErr: domain.ErrMissingTitle,
		},
		{
			name:    "missing slug",
			id:      "p1",
			mutate:  func(p map[string]string) { delete(p, "Slag") },
			wantErr: domain.ErrMissingSlug,
		},
		{
			name:    "archived status",
			id:      "p1",
			mutate:  func(p map[string]string) { p["Status"] = `{"type":"select","select":{"name":"Archived"}}` },
			wantErr: domain.ErrInvalidStatus,
		},
		{
			name:    "no status",
			id:      "p1",
			mutate:  func(p map[string]string) { p["Status"] = `{"type":"select","select":null}` },
			wantErr: domain.ErrInvalidStatus,
		},
		{
			name:    "malformed title",
			id:      "p1",
			mutate:  func(p map[string]string) { p["Title"] = `{"title":"not a list"}` },
			wantErr: ErrMalformedProperty,
		},
		{
			name:    "malformed tags",
			id:      "p1",
			mutate:  func(p map[string]string) { p["Tag"] = `{"type":"multi_select","multi_select":"go"}` },
			wantErr: ErrMalformedProperty,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			props := fullProps()
			tt.mutate(props)

			_, err := newTestTransformer().Transform(page(tt.id, props))
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestTransform_CustomKeys(t *testing.T) {
	tr := NewPageTransformer(PropertyKeys{Slug: "Slug"})
	props := fullProps()
	props["Slug"] = props["Slag"]
	delete(props, "Slag")

	entry, err := tr.Transform(page("p1", props))
	require.NoError(t, err)
	assert.Equal(t, "go-generics", entry.Slug)
	assert.Equal(t, "Title", tr.Keys().Title)
}
