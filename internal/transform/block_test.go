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

func rawBlock(t *testing.T, data string) notion.Block {
	t.Helper()
	var b notion.Block
	require.NoError(t, json.Unmarshal([]byte(data), &b))
	return b
}

func TestTransformBlock_Code(t *testing.T) {
	b, err := TransformBlock(rawBlock(t, `{
		"id": "b1",
		"type": "code",
		"created_time": "2024-03-01T10:00:00.000Z",
		"last_edited_time": "2024-03-02T10:00:00.000Z",
		"code": {"rich_text": [{"type": "text", "plain_text": "x"}], "language": "python"}
	}`))
	require.NoError(t, err)

	assert.Equal(t, domain.BlockCode, b.Type())
	code, ok := b.Content().(domain.Code)
	require.True(t, ok)
	assert.Equal(t, "x", b.PlainText())
	assert.Equal(t, "python", code.Language)
	assert.NotNil(t, code.Caption)
	assert.Empty(t, code.Caption)
	assert.Equal(t, time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC), b.CreatedTime)
	assert.Equal(t, time.Date(2024, 3, 2, 10, 0, 0, 0, time.UTC), b.LastEditedTime)
}

func TestTransformBlock_Defaults(t *testing.T) {
	b, err := TransformBlock(rawBlock(t, `{"id": "b1", "type": "code", "code": {}}`))
	require.NoError(t, err)
	code := b.Content().(domain.Code)
	assert.Equal(t, "plain text", code.Language)
	assert.NotNil(t, code.RichText)

	b, err = TransformBlock(rawBlock(t, `{"id": "b2", "type": "to_do", "to_do": {}}`))
	require.NoError(t, err)
	todo := b.Content().(domain.ToDo)
	assert.False(t, todo.Checked)
	assert.Equal(t, domain.DefaultColor, todo.Color)
	assert.NotNil(t, todo.RichText)

	b, err = TransformBlock(rawBlock(t, `{"id": "b3", "type": "bookmark", "bookmark": {}}`))
	require.NoError(t, err)
	assert.Equal(t, "", b.Content().(domain.Bookmark).URL)
}

func TestTransformBlock_UnknownTypeIsUnsupported(t *testing.T) {
	b, err := TransformBlock(rawBlock(t, `{"id": "b1", "type": "marquee", "marquee": {"speed": 3}}`))
	require.NoError(t, err)

	assert.Equal(t, domain.BlockUnsupported, b.Type())
	assert.Equal(t, "marquee", b.Content().(domain.Unsupported).SourceType)
}

func TestTransformBlock_Divider(t *testing.T) {
	b, err := TransformBlock(rawBlock(t, `{"id": "b1", "type": "divider"}`))
	require.NoError(t, err)
	assert.Equal(t, domain.BlockDivider, b.Type())
}

func TestTransformBlock_Heading(t *testing.T) {
	b, err := TransformBlock(rawBlock(t, `{
		"id": "b1",
		"type": "heading_2",
		"heading_2": {"rich_text": [{"plain_text": "Setup"}], "color": "blue", "is_toggleable": true}
	}`))
	require.NoError(t, err)

	h := b.Content().(domain.Heading2)
	assert.Equal(t, domain.Color("blue"), h.Color)
	assert.True(t, h.IsToggleable)
	assert.True(t, domain.IsTextBlock(b))
}

func TestTransformBlock_Media(t *testing.T) {
	b, err := TransformBlock(rawBlock(t, `{
		"id": "b1",
		"type": "image",
		"image": {
			"type": "file",
			"file": {"url": "https://files.example.com/a.png", "expiry_time": "2024-03-01T11:00:00.000Z"},
			"caption": [{"plain_text": "diagram"}]
		}
	}`))
	require.NoError(t, err)

	img := b.Content().(domain.Image)
	assert.Equal(t, domain.MediaHosted, img.Kind)
	assert.Equal(t, "https://files.example.com/a.png", img.URL)
	require.NotNil(t, img.ExpiryTime)
	assert.Equal(t, time.Date(2024, 3, 1, 11, 0, 0, 0, time.UTC), *img.ExpiryTime)
	assert.Equal(t, "diagram", domain.ExtractPlainText(img.Caption))

	b, err = TransformBlock(rawBlock(t, `{
		"id": "b2",
		"type": "video",
		"video": {"type": "external", "external": {"url": "https://youtu.be/x"}}
	}`))
	require.NoError(t, err)
	vid := b.Content().(domain.Video)
	assert.Equal(t, domain.MediaExternal, vid.Kind)
	assert.Nil(t, vid.ExpiryTime)
}

func TestTransformBlock_Errors(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		wantErr error
	}{
		{"missing payload", `{"id": "b1", "type": "paragraph"}`, ErrMalformedPayload},
		{"bad payload", `{"id": "b1", "type": "paragraph", "paragraph": {"rich_text": "oops"}}`, ErrMalformedPayload},
		{"bad timestamp", `{"id": "b1", "type": "divider", "created_time": "Tuesday"}`, ErrMalformedPayload},
		{"missing id", `{"type": "divider"}`, ErrMissingBlockID},
		{"media without source", `{"id": "b1", "type": "image", "image": {"type": "external"}}`, ErrMissingMedia},
		{"media type mismatch", `{"id": "b1", "type": "image", "image": {"type": "file", "external": {"url": "u"}}}`, ErrMissingMedia},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := TransformBlock(rawBlock(t, tt.data))
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestTransformBlocks_SkipsFailures(t *testing.T) {
	raw := []notion.Block{
		rawBlock(t, `{"id": "b1", "type": "paragraph", "paragraph": {"rich_text": [{"plain_text": "a"}]}}`),
		rawBlock(t, `{"id": "b2", "type": "paragraph"}`),
		rawBlock(t, `{"id": "b3", "type": "divider"}`),
	}

	blocks, errs := TransformBlocks(raw)
	require.Len(t, blocks, 2)
	assert.Equal(t, "b1", blocks[0].ID)
	assert.Equal(t, "b3", blocks[1].ID)
	assert.Len(t, errs, 1)
}

func TestRichText_Conversion(t *testing.T) {
	var spans []notion.RichText
	require.NoError(t, json.Unmarshal([]byte(`[
		{"type": "text", "plain_text": "docs", "text": {"content": "docs", "link": {"url": "https://go.dev"}},
		 "annotations": {"bold": true, "color": "red"}},
		{"type": "mention", "plain_text": "@page"},
		{"type": "template_mention", "plain_text": "?"}
	]`), &spans))

	out := RichText(spans)
	require.Len(t, out, 3)

	require.NotNil(t, out[0].Href)
	assert.Equal(t, "https://go.dev", *out[0].Href)
	assert.True(t, out[0].Annotations.Bold)
	assert.Equal(t, domain.Color("red"), out[0].Annotations.Color)

	assert.Equal(t, domain.RichTextMention, out[1].Kind)
	assert.Equal(t, domain.DefaultColor, out[1].Annotations.Color)
	assert.Equal(t, domain.RichTextText, out[2].Kind)

	assert.NotNil(t, RichText(nil))
}
