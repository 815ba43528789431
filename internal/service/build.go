package service

import (
	"context"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"til_mirror/internal/config"
	"til_mirror/internal/domain"
)

// BuildService renders the site's data snapshots from the query layer and
// keeps a manifest of the detail pages it produced.
type BuildService struct {
	entries   EntryQuerier
	writer    SiteWriter
	pages     PageStore
	state     BuildStateStore
	txManager TransactionManager
	publisher Publisher
	logger    *slog.Logger
	config    config.BuildConfig
}

func NewBuildService(
	entries EntryQuerier,
	writer SiteWriter,
	pages PageStore,
	state BuildStateStore,
	txManager TransactionManager,
	publisher Publisher,
	logger *slog.Logger,
	cfg config.BuildConfig,
) *BuildService {
	if cfg.Concurrency <= 0 {
		cfg.Concurrency = 1
	}
	return &BuildService{
		entries:   entries,
		writer:    writer,
		pages:     pages,
		state:     state,
		txManager: txManager,
		publisher: publisher,
		logger:    logger.With("component", "builder", "site", cfg.Site),
		config:    cfg,
	}
}

// Build runs one full build. Failing to list the home feed aborts the
// build; failures on single feeds or entries are counted in Errors.
func (s *BuildService) Build(ctx context.Context) (*domain.BuildStats, error) {
	startTime := time.Now()
	runID := uuid.NewString()
	logger := s.logger.With("run_id", runID)

	logger.Info("starting build",
		"output_dir", s.config.OutputDir,
		"feed_page_size", s.config.FeedPageSize,
		"concurrency", s.config.Concurrency,
	)

	stats := &domain.BuildStats{RunID: runID}

	listed, feeds, err := s.writeFeed(ctx, domain.Category{}, startTime)
	if err != nil {
		return nil, fmt.Errorf("build home feed: %w", err)
	}
	stats.Feeds += feeds

	for _, category := range domain.Categories() {
		_, feeds, err := s.writeFeed(ctx, category, startTime)
		stats.Feeds += feeds
		if err != nil {
			stats.Errors++
			logger.Error("category feed failed", "category", category.Slug, "error", err)
		}
	}

	if err := s.writer.WriteCategories(domain.Categories()); err != nil {
		stats.Errors++
		logger.Error("write categories failed", "error", err)
	}

	built, failed, err := s.writeDetails(ctx, listed)
	if err != nil {
		return nil, fmt.Errorf("build entries: %w", err)
	}
	stats.Entries = len(built)
	stats.Errors += failed

	slugs := make([]string, len(listed))
	for i, e := range listed {
		slugs[i] = e.Slug
	}

	removed, err := s.recordManifest(ctx, runID, built, slugs)
	if err != nil {
		stats.Duration = time.Since(startTime)
		return stats, fmt.Errorf("record manifest: %w", err)
	}

	for _, slug := range removed {
		if err := s.writer.RemoveEntry(slug); err != nil {
			stats.Errors++
			logger.Error("remove entry failed", "slug", slug, "error", err)
			continue
		}
		stats.Removed++
	}

	if s.publisher != nil {
		event := &domain.SiteBuilt{
			RunID:   runID,
			Entries: stats.Entries,
			Feeds:   stats.Feeds,
			Errors:  stats.Errors,
			Slugs:   slugs,
			Removed: removed,
			BuiltAt: time.Now().UTC(),
		}
		if err := s.publisher.Publish(ctx, event); err != nil {
			stats.Errors++
			logger.Error("publish build event failed", "error", err)
		}
	}

	stats.Duration = time.Since(startTime)

	logger.Info("build completed",
		"entries", stats.Entries,
		"feeds", stats.Feeds,
		"removed", stats.Removed,
		"errors", stats.Errors,
		"duration", stats.Duration,
	)

	return stats, nil
}

// writeFeed pages through one feed and writes a numbered snapshot per
// page. A zero category means the home feed. The returned entries are
// unique by slug in feed order.
func (s *BuildService) writeFeed(ctx context.Context, category domain.Category, now time.Time) ([]domain.Entry, int, error) {
	var (
		entries []domain.Entry
		seen    = make(map[string]struct{})
		cursor  string
		written int
	)

	for page := 1; ; page++ {
		resp, err := s.entries.ListEntries(ctx, domain.ListParams{
			Category: category.ID,
			Cursor:   cursor,
			PageSize: s.config.FeedPageSize,
		})
		if err != nil {
			return nil, written, err
		}

		cards := make([]domain.EntryCardData, 0, len(resp.Items))
		for _, e := range resp.Items {
			cards = append(cards, domain.ToCardData(e))
			if _, ok := seen[e.Slug]; !ok {
				seen[e.Slug] = struct{}{}
				entries = append(entries, e)
			}
		}

		if err := s.writer.WriteFeedPage(&domain.FeedPage{
			Category:    category.Slug,
			Page:        page,
			Items:       cards,
			HasMore:     resp.Pagination.HasMore,
			GeneratedAt: now.UTC(),
		}); err != nil {
			return nil, written, fmt.Errorf("write feed page %d: %w", page, err)
		}
		written++

		next := resp.Pagination.NextCursor
		if !resp.Pagination.HasMore || next == nil || *next == "" {
			break
		}
		cursor = *next
	}

	s.logger.Debug("feed written", "category", category.Slug, "pages", written, "entries", len(entries))

	return entries, written, nil
}

// writeDetails fetches and writes every entry's detail page. Only context
// cancellation fails the whole step.
func (s *BuildService) writeDetails(ctx context.Context, entries []domain.Entry) ([]domain.Entry, int, error) {
	results := make([]*domain.EntryDetail, len(entries))
	var failed atomic.Int64

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.config.Concurrency)

	for i, e := range entries {
		i, e := i, e
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			detail, err := s.entries.GetEntryBySlug(gctx, e.Slug)
			if err != nil {
				failed.Add(1)
				s.logger.Error("fetch entry failed", "slug", e.Slug, "error", err)
				return nil
			}
			if detail == nil {
				s.logger.Warn("entry disappeared during build", "slug", e.Slug)
				return nil
			}

			if err := s.writer.WriteEntry(detail); err != nil {
				failed.Add(1)
				s.logger.Error("write entry failed", "slug", e.Slug, "error", err)
				return nil
			}

			results[i] = detail
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, int(failed.Load()), err
	}

	built := make([]domain.Entry, 0, len(entries))
	for _, d := range results {
		if d != nil {
			built = append(built, d.Entry)
		}
	}

	return built, int(failed.Load()), nil
}

// recordManifest stores the built pages and the build state in one
// transaction and returns the slugs that are no longer listed.
func (s *BuildService) recordManifest(ctx context.Context, runID string, built []domain.Entry, keep []string) ([]string, error) {
	var removed []string
	now := time.Now().UTC()

	err := s.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		for _, e := range built {
			page := &domain.PageRecord{
				EntryID:  e.ID,
				Slug:     e.Slug,
				Title:    e.Title,
				Category: e.Category,
				Date:     e.Date,
				Tags:     e.Tags,
				RunID:    runID,
				BuiltAt:  now,
			}
			if err := s.pages.Upsert(txCtx, page); err != nil {
				return fmt.Errorf("upsert page %s: %w", e.Slug, err)
			}
		}

		var err error
		removed, err = s.pages.DeleteMissing(txCtx, keep)
		if err != nil {
			return fmt.Errorf("delete missing pages: %w", err)
		}

		state, err := s.state.Get(txCtx, s.config.Site)
		if err != nil {
			return fmt.Errorf("get build state: %w", err)
		}

		state.Site = s.config.Site
		state.LastRunID = runID
		state.LastBuiltAt = now
		state.TotalBuilds++
		state.EntriesBuilt += int64(len(built))

		if err := s.state.Update(txCtx, state); err != nil {
			return fmt.Errorf("update build state: %w", err)
		}
		return nil
	})

	return removed, err
}
