package domain

import "time"

// Status is the publication state of an entry.
type Status string

const (
	StatusDraft     Status = "Draft"
	StatusPublished Status = "Published"
)

func (s Status) Valid() bool {
	return s == StatusDraft || s == StatusPublished
}

// Entry is one validated learning note.
type Entry struct {
	ID        string     `json:"id"`
	Title     string     `json:"title"`
	Date      time.Time  `json:"date"`
	Category  CategoryID `json:"category"`
	Tags      []string   `json:"tags"`
	Reference *string    `json:"reference"`
	Slug      string     `json:"slug"`
	Status    Status     `json:"status"`
}

// EntryParams holds the extracted fields an Entry is built from.
type EntryParams struct {
	ID        string
	Title     string
	Date      time.Time
	Category  CategoryID
	Tags      []string
	Reference *string
	Slug      string
	Status    Status
}

// NewEntry validates p and builds an Entry. It never returns a partially
// valid entry.
func NewEntry(p EntryParams) (Entry, error) {
	switch {
	case p.ID == "":
		return Entry{}, ErrMissingID
	case p.Title == "":
		return Entry{}, ErrMissingTitle
	case p.Slug == "":
		return Entry{}, ErrMissingSlug
	case !p.Status.Valid():
		return Entry{}, ErrInvalidStatus
	case !IsValidCategoryID(string(p.Category)):
		return Entry{}, ErrInvalidCategory
	}

	tags := make([]string, len(p.Tags))
	copy(tags, p.Tags)

	return Entry{
		ID:        p.ID,
		Title:     p.Title,
		Date:      p.Date,
		Category:  p.Category,
		Tags:      tags,
		Reference: p.Reference,
		Slug:      p.Slug,
		Status:    p.Status,
	}, nil
}

// EntryDetail is an entry together with its document body.
type EntryDetail struct {
	Entry
	Blocks []Block `json:"blocks"`
}

// EntryCardData is the minimal projection used by list views.
type EntryCardData struct {
	ID       string     `json:"id"`
	Title    string     `json:"title"`
	Date     time.Time  `json:"date"`
	Category CategoryID `json:"category"`
	Tags     []string   `json:"tags"`
	Slug     string     `json:"slug"`
}

func ToCardData(e Entry) EntryCardData {
	return EntryCardData{
		ID:       e.ID,
		Title:    e.Title,
		Date:     e.Date,
		Category: e.Category,
		Tags:     e.Tags,
		Slug:     e.Slug,
	}
}

// ListParams selects one page of published entries. An empty Category
// lists every category; an empty Cursor starts at the first page.
type ListParams struct {
	Category CategoryID
	Cursor   string
	PageSize int
}

// Pagination carries the source's continuation state verbatim.
type Pagination struct {
	HasMore    bool    `json:"hasMore"`
	NextCursor *string `json:"nextCursor"`
}

// EntryPage is one page of entries. Items may hold fewer than the
// requested page size when malformed records were dropped.
type EntryPage struct {
	Items      []Entry    `json:"items"`
	Pagination Pagination `json:"pagination"`
}
