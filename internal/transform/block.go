package transform

import (
	"encoding/json"
	"fmt"
	"time"

	"til_mirror/internal/domain"
	"til_mirror/internal/source/notion"
)

const defaultCodeLanguage = "plain text"

type fileRef struct {
	URL        string `json:"url"`
	ExpiryTime string `json:"expiry_time"`
}

type iconPayload struct {
	Type     string   `json:"type"`
	Emoji    string   `json:"emoji"`
	External *fileRef `json:"external"`
	File     *fileRef `json:"file"`
}

// blockPayload is the union of the fields read from any supported block
// payload.
type blockPayload struct {
	RichText     []notion.RichText `json:"rich_text"`
	Caption      []notion.RichText `json:"caption"`
	Color        string            `json:"color"`
	IsToggleable bool              `json:"is_toggleable"`
	Checked      bool              `json:"checked"`
	Language     string            `json:"language"`
	URL          string            `json:"url"`
	Icon         *iconPayload      `json:"icon"`
	Type         string            `json:"type"`
	External     *fileRef          `json:"external"`
	File         *fileRef          `json:"file"`
}

func (p blockPayload) text() domain.TextContent {
	return domain.TextContent{RichText: RichText(p.RichText), Color: color(p.Color)}
}

func (p blockPayload) heading() domain.HeadingContent {
	return domain.HeadingContent{TextContent: p.text(), IsToggleable: p.IsToggleable}
}

func (p blockPayload) link() domain.LinkContent {
	return domain.LinkContent{URL: p.URL, Caption: RichText(p.Caption)}
}

// TransformBlock converts one raw block. Unknown types become Unsupported
// blocks that keep the source type name. A known type with a missing or
// malformed payload is an error and the caller drops the block.
func TransformBlock(raw notion.Block) (domain.Block, error) {
	meta, err := blockMeta(raw)
	if err != nil {
		return domain.Block{}, err
	}

	t := domain.BlockType(raw.Type)
	switch t {
	case domain.BlockDivider:
		return domain.NewBlock(meta, domain.Divider{}), nil
	case domain.BlockParagraph, domain.BlockHeading1, domain.BlockHeading2, domain.BlockHeading3,
		domain.BlockBulletedListItem, domain.BlockNumberedListItem, domain.BlockToDo,
		domain.BlockToggle, domain.BlockCode, domain.BlockQuote, domain.BlockCallout,
		domain.BlockImage, domain.BlockVideo, domain.BlockBookmark, domain.BlockEmbed:
	default:
		return domain.NewBlock(meta, domain.Unsupported{SourceType: raw.Type}), nil
	}

	if len(raw.Payload) == 0 || string(raw.Payload) == "null" {
		return domain.Block{}, fmt.Errorf("%w: %s block %s has no payload", ErrMalformedPayload, raw.Type, raw.ID)
	}
	var p blockPayload
	if err := json.Unmarshal(raw.Payload, &p); err != nil {
		return domain.Block{}, fmt.Errorf("%w: %s block %s: %v", ErrMalformedPayload, raw.Type, raw.ID, err)
	}

	content, err := blockContent(t, p)
	if err != nil {
		return domain.Block{}, fmt.Errorf("%s block %s: %w", raw.Type, raw.ID, err)
	}
	return domain.NewBlock(meta, content), nil
}

func blockContent(t domain.BlockType, p blockPayload) (domain.Content, error) {
	switch t {
	case domain.BlockParagraph:
		return domain.Paragraph{TextContent: p.text()}, nil
	case domain.BlockHeading1:
		return domain.Heading1{HeadingContent: p.heading()}, nil
	case domain.BlockHeading2:
		return domain.Heading2{HeadingContent: p.heading()}, nil
	case domain.BlockHeading3:
		return domain.Heading3{HeadingContent: p.heading()}, nil
	case domain.BlockBulletedListItem:
		return domain.BulletedListItem{TextContent: p.text()}, nil
	case domain.BlockNumberedListItem:
		return domain.NumberedListItem{TextContent: p.text()}, nil
	case domain.BlockToDo:
		return domain.ToDo{TextContent: p.text(), Checked: p.Checked}, nil
	case domain.BlockToggle:
		return domain.Toggle{TextContent: p.text()}, nil
	case domain.BlockQuote:
		return domain.Quote{TextContent: p.text()}, nil
	case domain.BlockCallout:
		return domain.Callout{TextContent: p.text(), Icon: calloutIcon(p.Icon)}, nil
	case domain.BlockCode:
		lang := p.Language
		if lang == "" {
			lang = defaultCodeLanguage
		}
		return domain.Code{RichText: RichText(p.RichText), Caption: RichText(p.Caption), Language: lang}, nil
	case domain.BlockImage:
		m, err := media(p)
		if err != nil {
			return nil, err
		}
		return domain.Image{Media: m}, nil
	case domain.BlockVideo:
		m, err := media(p)
		if err != nil {
			return nil, err
		}
		return domain.Video{Media: m}, nil
	case domain.BlockBookmark:
		return domain.Bookmark{LinkContent: p.link()}, nil
	case domain.BlockEmbed:
		return domain.Embed{LinkContent: p.link()}, nil
	}
	return domain.Unsupported{SourceType: string(t)}, nil
}

func blockMeta(raw notion.Block) (domain.BlockMeta, error) {
	if raw.ID == "" {
		return domain.BlockMeta{}, ErrMissingBlockID
	}
	created, err := parseTimestamp(raw.CreatedTime)
	if err != nil {
		return domain.BlockMeta{}, fmt.Errorf("%w: block %s created_time: %v", ErrMalformedPayload, raw.ID, err)
	}
	edited, err := parseTimestamp(raw.LastEditedTime)
	if err != nil {
		return domain.BlockMeta{}, fmt.Errorf("%w: block %s last_edited_time: %v", ErrMalformedPayload, raw.ID, err)
	}
	return domain.BlockMeta{
		ID:             raw.ID,
		CreatedTime:    created,
		LastEditedTime: edited,
		HasChildren:    raw.HasChildren,
		Archived:       raw.Archived,
	}, nil
}

func parseTimestamp(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	return time.Parse(time.RFC3339, s)
}

// media reads the source named by the payload's type field. The source
// object for that type must carry a URL.
func media(p blockPayload) (domain.Media, error) {
	caption := RichText(p.Caption)

	switch domain.MediaKind(p.Type) {
	case domain.MediaExternal:
		if p.External != nil && p.External.URL != "" {
			return domain.ExternalMedia(p.External.URL, caption), nil
		}
	case domain.MediaHosted:
		if p.File != nil && p.File.URL != "" {
			var expiry *time.Time
			if p.File.ExpiryTime != "" {
				t, err := time.Parse(time.RFC3339, p.File.ExpiryTime)
				if err != nil {
					return domain.Media{}, fmt.Errorf("%w: expiry_time: %v", ErrMalformedPayload, err)
				}
				expiry = &t
			}
			return domain.HostedMedia(p.File.URL, expiry, caption), nil
		}
	}

	return domain.Media{}, ErrMissingMedia
}

func calloutIcon(icon *iconPayload) *domain.Icon {
	if icon == nil {
		return nil
	}
	switch {
	case icon.Type == "emoji" && icon.Emoji != "":
		return &domain.Icon{Type: icon.Type, Emoji: icon.Emoji}
	case icon.Type == "external" && icon.External != nil:
		return &domain.Icon{Type: icon.Type, URL: icon.External.URL}
	case icon.Type == "file" && icon.File != nil:
		return &domain.Icon{Type: icon.Type, URL: icon.File.URL}
	}
	return nil
}

// TransformBlocks converts raw blocks in order, skipping any that fail.
// The skipped blocks are returned as errors alongside the kept blocks.
func TransformBlocks(raw []notion.Block) ([]domain.Block, []error) {
	blocks := make([]domain.Block, 0, len(raw))
	var errs []error
	for _, r := range raw {
		b, err := TransformBlock(r)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		blocks = append(blocks, b)
	}
	return blocks, errs
}
