package domain

import (
	"encoding/json"
	"time"
)

// BlockType is the discriminant of a content block.
type BlockType string

const (
	BlockParagraph        BlockType = "paragraph"
	BlockHeading1         BlockType = "heading_1"
	BlockHeading2         BlockType = "heading_2"
	BlockHeading3         BlockType = "heading_3"
	BlockBulletedListItem BlockType = "bulleted_list_item"
	BlockNumberedListItem BlockType = "numbered_list_item"
	BlockToDo             BlockType = "to_do"
	BlockToggle           BlockType = "toggle"
	BlockCode             BlockType = "code"
	BlockQuote            BlockType = "quote"
	BlockCallout          BlockType = "callout"
	BlockDivider          BlockType = "divider"
	BlockImage            BlockType = "image"
	BlockVideo            BlockType = "video"
	BlockBookmark         BlockType = "bookmark"
	BlockEmbed            BlockType = "embed"
	BlockUnsupported      BlockType = "unsupported"
)

// Content is the type-specific payload of a block. The set of
// implementations is closed to this package, so a block's type always
// matches its payload.
type Content interface {
	BlockType() BlockType
	sealed()
}

// BlockMeta carries the fields shared by every block variant.
type BlockMeta struct {
	ID             string
	CreatedTime    time.Time
	LastEditedTime time.Time
	HasChildren    bool
	Archived       bool
}

// Block is one typed unit of document body content.
type Block struct {
	BlockMeta
	content Content
}

// NewBlock pairs block metadata with its payload. A nil payload becomes
// an Unsupported block.
func NewBlock(meta BlockMeta, c Content) Block {
	if c == nil {
		c = Unsupported{}
	}
	return Block{BlockMeta: meta, content: c}
}

// Type returns the block discriminant derived from its payload.
func (b Block) Type() BlockType {
	if b.content == nil {
		return BlockUnsupported
	}
	return b.content.BlockType()
}

// Content returns the block payload.
func (b Block) Content() Content {
	if b.content == nil {
		return Unsupported{}
	}
	return b.content
}

// RichText returns the text spans of a text-bearing block, or nil.
func (b Block) RichText() []RichText {
	switch c := b.content.(type) {
	case Paragraph:
		return c.RichText
	case Heading1:
		return c.RichText
	case Heading2:
		return c.RichText
	case Heading3:
		return c.RichText
	case BulletedListItem:
		return c.RichText
	case NumberedListItem:
		return c.RichText
	case ToDo:
		return c.RichText
	case Toggle:
		return c.RichText
	case Quote:
		return c.RichText
	case Callout:
		return c.RichText
	case Code:
		return c.RichText
	}
	return nil
}

// PlainText returns the concatenated text of the block, empty for blocks
// that carry no text.
func (b Block) PlainText() string {
	return ExtractPlainText(b.RichText())
}

// MarshalJSON renders the block with its payload keyed by the type name.
func (b Block) MarshalJSON() ([]byte, error) {
	t := b.Type()
	return json.Marshal(map[string]any{
		"id":               b.ID,
		"created_time":     b.CreatedTime,
		"last_edited_time": b.LastEditedTime,
		"has_children":     b.HasChildren,
		"archived":         b.Archived,
		"type":             t,
		string(t):          b.Content(),
	})
}

// IsTextBlock reports whether the block is a plain text-flow block.
func IsTextBlock(b Block) bool {
	switch b.Type() {
	case BlockParagraph, BlockHeading1, BlockHeading2, BlockHeading3,
		BlockBulletedListItem, BlockNumberedListItem, BlockQuote:
		return true
	}
	return false
}

// TextContent is the payload shared by text blocks.
type TextContent struct {
	RichText []RichText `json:"rich_text"`
	Color    Color      `json:"color"`
}

// HeadingContent is the payload shared by the heading levels.
type HeadingContent struct {
	TextContent
	IsToggleable bool `json:"is_toggleable"`
}

type Paragraph struct{ TextContent }

type Heading1 struct{ HeadingContent }

type Heading2 struct{ HeadingContent }

type Heading3 struct{ HeadingContent }

type BulletedListItem struct{ TextContent }

type NumberedListItem struct{ TextContent }

type Toggle struct{ TextContent }

type Quote struct{ TextContent }

type ToDo struct {
	TextContent
	Checked bool `json:"checked"`
}

type Code struct {
	RichText []RichText `json:"rich_text"`
	Caption  []RichText `json:"caption"`
	Language string     `json:"language"`
}

// Icon decorates a callout. Emoji is set for emoji icons, URL otherwise.
type Icon struct {
	Type  string `json:"type"`
	Emoji string `json:"emoji,omitempty"`
	URL   string `json:"url,omitempty"`
}

type Callout struct {
	TextContent
	Icon *Icon `json:"icon"`
}

type Divider struct{}

// MediaKind says where a media file lives.
type MediaKind string

const (
	MediaExternal MediaKind = "external"
	MediaHosted   MediaKind = "file"
)

// Media is an image or video source. Hosted files carry the expiry of
// their signed URL.
type Media struct {
	Kind       MediaKind  `json:"type"`
	URL        string     `json:"url"`
	ExpiryTime *time.Time `json:"expiry_time,omitempty"`
	Caption    []RichText `json:"caption"`
}

// ExternalMedia builds a media payload pointing at an external URL.
func ExternalMedia(url string, caption []RichText) Media {
	return Media{Kind: MediaExternal, URL: url, Caption: caption}
}

// HostedMedia builds a media payload for a file hosted by the document service.
func HostedMedia(url string, expiry *time.Time, caption []RichText) Media {
	return Media{Kind: MediaHosted, URL: url, ExpiryTime: expiry, Caption: caption}
}

type Image struct{ Media }

type Video struct{ Media }

// LinkContent is the payload of bookmark and embed blocks.
type LinkContent struct {
	URL     string     `json:"url"`
	Caption []RichText `json:"caption"`
}

type Bookmark struct{ LinkContent }

type Embed struct{ LinkContent }

// Unsupported stands in for block types the site does not render.
// SourceType keeps the original type name for the placeholder.
type Unsupported struct {
	SourceType string `json:"source_type"`
}

func (Paragraph) BlockType() BlockType        { return BlockParagraph }
func (Heading1) BlockType() BlockType         { return BlockHeading1 }
func (Heading2) BlockType() BlockType         { return BlockHeading2 }
func (Heading3) BlockType() BlockType         { return BlockHeading3 }
func (BulletedListItem) BlockType() BlockType { return BlockBulletedListItem }
func (NumberedListItem) BlockType() BlockType { return BlockNumberedListItem }
func (ToDo) BlockType() BlockType             { return BlockToDo }
func (Toggle) BlockType() BlockType           { return BlockToggle }
func (Code) BlockType() BlockType             { return BlockCode }
func (Quote) BlockType() BlockType            { return BlockQuote }
func (Callout) BlockType() BlockType          { return BlockCallout }
func (Divider) BlockType() BlockType          { return BlockDivider }
func (Image) BlockType() BlockType            { return BlockImage }
func (Video) BlockType() BlockType            { return BlockVideo }
func (Bookmark) BlockType() BlockType         { return BlockBookmark }
func (Embed) BlockType() BlockType            { return BlockEmbed }
func (Unsupported) BlockType() BlockType      { return BlockUnsupported }

func (Paragraph) sealed()        {}
func (Heading1) sealed()         {}
func (Heading2) sealed()         {}
func (Heading3) sealed()         {}
func (BulletedListItem) sealed() {}
func (NumberedListItem) sealed() {}
func (ToDo) sealed()             {}
func (Toggle) sealed()           {}
func (Code) sealed()             {}
func (Quote) sealed()            {}
func (Callout) sealed()          {}
func (Divider) sealed()          {}
func (Image) sealed()            {}
func (Video) sealed()            {}
func (Bookmark) sealed()         {}
func (Embed) sealed()            {}
func (Unsupported) sealed()      {}
