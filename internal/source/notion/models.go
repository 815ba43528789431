package notion

import (
	"encoding/json"
	"fmt"
)

// PageList is the paged response of a database query.
type PageList struct {
	Object     string  `json:"object"`
	Results    []Page  `json:"results"`
	NextCursor *string `json:"next_cursor"`
	HasMore    bool    `json:"has_more"`
}

// BlockList is the paged response of a block children listing.
type BlockList struct {
	Object     string  `json:"object"`
	Results    []Block `json:"results"`
	NextCursor *string `json:"next_cursor"`
	HasMore    bool    `json:"has_more"`
}

// Page is a raw database record. Properties stay undecoded until a
// transformer reads them by name.
type Page struct {
	Object         string                     `json:"object"`
	ID             string                     `json:"id"`
	CreatedTime    string                     `json:"created_time"`
	LastEditedTime string                     `json:"last_edited_time"`
	Archived       bool                       `json:"archived"`
	Properties     map[string]json.RawMessage `json:"properties"`
}

// Block is a raw block record. Payload holds the object stored under the
// key named by Type.
type Block struct {
	Object         string          `json:"object"`
	ID             string          `json:"id"`
	CreatedTime    string          `json:"created_time"`
	LastEditedTime string          `json:"last_edited_time"`
	HasChildren    bool            `json:"has_children"`
	Archived       bool            `json:"archived"`
	Type           string          `json:"type"`
	Payload        json.RawMessage `json:"-"`
}

func (b *Block) UnmarshalJSON(data []byte) error {
	type plain Block
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}
	p.Payload = fields[p.Type]

	*b = Block(p)
	return nil
}

func (b Block) MarshalJSON() ([]byte, error) {
	type plain Block
	base, err := json.Marshal(plain(b))
	if err != nil {
		return nil, err
	}
	if b.Type == "" || len(b.Payload) == 0 {
		return base, nil
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(base, &fields); err != nil {
		return nil, err
	}
	fields[b.Type] = b.Payload
	return json.Marshal(fields)
}

// RichText is a raw rich text span.
type RichText struct {
	Type        string       `json:"type"`
	PlainText   string       `json:"plain_text"`
	Href        *string      `json:"href"`
	Annotations *Annotations `json:"annotations"`
	Text        *TextValue   `json:"text,omitempty"`
}

type TextValue struct {
	Content string `json:"content"`
	Link    *Link  `json:"link"`
}

type Link struct {
	URL string `json:"url"`
}

type Annotations struct {
	Bold          bool   `json:"bold"`
	Italic        bool   `json:"italic"`
	Strikethrough bool   `json:"strikethrough"`
	Underline     bool   `json:"underline"`
	Code          bool   `json:"code"`
	Color         string `json:"color"`
}

// SelectOption is a select or multi-select value.
type SelectOption struct {
	ID    string `json:"id,omitempty"`
	Name  string `json:"name"`
	Color string `json:"color,omitempty"`
}

type DateValue struct {
	Start string  `json:"start"`
	End   *string `json:"end"`
}

// Filter is a database query filter: either a property condition or an
// "and" composition of filters.
type Filter struct {
	And      []Filter       `json:"and,omitempty"`
	Property string         `json:"property,omitempty"`
	Select   *TextCondition `json:"select,omitempty"`
	RichText *TextCondition `json:"rich_text,omitempty"`
}

type TextCondition struct {
	Equals string `json:"equals"`
}

// SelectEquals matches a select property against one option name.
func SelectEquals(property, value string) Filter {
	return Filter{Property: property, Select: &TextCondition{Equals: value}}
}

// RichTextEquals matches a rich text property against a string.
func RichTextEquals(property, value string) Filter {
	return Filter{Property: property, RichText: &TextCondition{Equals: value}}
}

// And composes filters.
func And(filters ...Filter) Filter {
	return Filter{And: filters}
}

type SortDirection string

const (
	Ascending  SortDirection = "ascending"
	Descending SortDirection = "descending"
)

type Sort struct {
	Property  string        `json:"property"`
	Direction SortDirection `json:"direction"`
}

// QueryRequest queries a database. StartCursor is empty for the first page.
type QueryRequest struct {
	DatabaseID  string
	Filter      *Filter
	Sorts       []Sort
	PageSize    int
	StartCursor string
}

// ListBlocksRequest lists the children of a block or page.
type ListBlocksRequest struct {
	BlockID     string
	PageSize    int
	StartCursor string
}

// APIError is the error body returned by the service for non-2xx responses.
type APIError struct {
	Status  int    `json:"status"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("notion api error (%d %s): %s", e.Status, e.Code, e.Message)
}

func (e *APIError) ErrorCode() string    { return e.Code }
func (e *APIError) ErrorMessage() string { return e.Message }

// Retryable reports whether the request may succeed if sent again.
func (e *APIError) Retryable() bool {
	return e.Status == 429 || e.Status >= 500
}
