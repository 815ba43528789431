package postgres

import (
	"context"
	"sort"
	"strconv"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"til_mirror/internal/domain"
)

// PageStore is the build manifest: one row per published detail page.
type PageStore struct {
	db *sqlx.DB
}

func NewPageStore(db *sqlx.DB) *PageStore {
	return &PageStore{db: db}
}

func (s *PageStore) Upsert(ctx context.Context, page *domain.PageRecord) error {
	exec := GetExecutor(ctx, s.db)

	query := `
		INSERT INTO pages (slug, entry_id, title, category, entry_date, run_id, built_at)
		VALUES (:slug, :entry_id, :title, :category, :entry_date, :run_id, :built_at)
		ON CONFLICT (slug) DO UPDATE SET
			entry_id = EXCLUDED.entry_id,
			title = EXCLUDED.title,
			category = EXCLUDED.category,
			entry_date = EXCLUDED.entry_date,
			run_id = EXCLUDED.run_id,
			built_at = EXCLUDED.built_at`

	if _, err := sqlx.NamedExecContext(ctx, exec, query, page); err != nil {
		return err
	}

	return s.replaceTags(ctx, exec, page.Slug, page.Tags)
}

func (s *PageStore) replaceTags(ctx context.Context, exec sqlx.ExtContext, slug string, tags []string) error {
	if _, err := exec.ExecContext(ctx, "DELETE FROM page_tags WHERE slug = $1", slug); err != nil {
		return err
	}

	if len(tags) == 0 {
		return nil
	}

	var sb strings.Builder
	sb.WriteString("INSERT INTO page_tags (slug, tag, position) VALUES ")
	args := make([]any, 0, len(tags)*2+1)
	args = append(args, slug)

	for i, tag := range tags {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString("($1, $")
		sb.WriteString(strconv.Itoa(len(args) + 1))
		sb.WriteString(", $")
		sb.WriteString(strconv.Itoa(len(args) + 2))
		sb.WriteString(")")
		args = append(args, tag, i)
	}
	sb.WriteString(" ON CONFLICT DO NOTHING")

	_, err := exec.ExecContext(ctx, sb.String(), args...)
	return err
}

// DeleteMissing removes every page whose slug is not in keep and returns
// the removed slugs in sorted order.
func (s *PageStore) DeleteMissing(ctx context.Context, keep []string) ([]string, error) {
	if keep == nil {
		keep = []string{}
	}

	var removed []string
	err := sqlx.SelectContext(ctx, GetExecutor(ctx, s.db), &removed,
		`DELETE FROM pages WHERE NOT (slug = ANY($1)) RETURNING slug`,
		pq.Array(keep),
	)
	if err != nil {
		return nil, err
	}

	sort.Strings(removed)
	return removed, nil
}

// List returns the manifest ordered by entry date, newest first.
func (s *PageStore) List(ctx context.Context) ([]domain.PageRecord, error) {
	query := `
		SELECT slug, entry_id, title, category, entry_date, run_id, built_at
		FROM pages
		ORDER BY entry_date DESC, slug`

	var pages []domain.PageRecord
	if err := sqlx.SelectContext(ctx, GetExecutor(ctx, s.db), &pages, query); err != nil {
		return nil, err
	}
	return pages, nil
}

// TagsBySlug returns a page's tags in their source order.
func (s *PageStore) TagsBySlug(ctx context.Context, slug string) ([]string, error) {
	var tags []string
	err := sqlx.SelectContext(ctx, GetExecutor(ctx, s.db), &tags,
		"SELECT tag FROM page_tags WHERE slug = $1 ORDER BY position", slug)
	return tags, err
}
