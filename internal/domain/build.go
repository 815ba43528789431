package domain

import "time"

// BuildStats summarises one static site build.
type BuildStats struct {
	RunID    string
	Entries  int
	Feeds    int
	Removed  int
	Errors   int
	Duration time.Duration
}

// BuildState is the persisted record of the last completed build.
type BuildState struct {
	ID           int64     `db:"id"`
	Site         string    `db:"site"`
	LastRunID    string    `db:"last_run_id"`
	LastBuiltAt  time.Time `db:"last_built_at"`
	TotalBuilds  int64     `db:"total_builds"`
	EntriesBuilt int64     `db:"entries_built"`
}

// PageRecord is one detail page in the build manifest.
type PageRecord struct {
	EntryID  string     `db:"entry_id"`
	Slug     string     `db:"slug"`
	Title    string     `db:"title"`
	Category CategoryID `db:"category"`
	Date     time.Time  `db:"entry_date"`
	Tags     []string   `db:"-"`
	RunID    string     `db:"run_id"`
	BuiltAt  time.Time  `db:"built_at"`
}

// FeedPage is one numbered page of the home feed or a category feed.
// Category holds the category slug and is empty for the home feed.
type FeedPage struct {
	Category    string          `json:"category,omitempty"`
	Page        int             `json:"page"`
	Items       []EntryCardData `json:"items"`
	HasMore     bool            `json:"has_more"`
	GeneratedAt time.Time       `json:"generated_at"`
}

// SiteBuilt announces a completed build to downstream consumers.
type SiteBuilt struct {
	RunID   string    `json:"run_id"`
	Entries int       `json:"entries"`
	Feeds   int       `json:"feeds"`
	Errors  int       `json:"errors"`
	Slugs   []string  `json:"slugs"`
	Removed []string  `json:"removed"`
	BuiltAt time.Time `json:"built_at"`
}
