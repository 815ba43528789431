package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"til_mirror/internal/apperr"
	"til_mirror/internal/config"
	"til_mirror/internal/domain"
	"til_mirror/internal/source/notion"
	"til_mirror/internal/transform"
)

// ErrMissingCursor is returned when the source reports more block
// children without a cursor to continue from.
var ErrMissingCursor = errors.New("block listing has more results but no next cursor")

// QueryService is the read path over the TIL database. It holds no state
// between calls and never retries or caches; every source failure is
// returned as a classified *apperr.Error.
type QueryService struct {
	source      Source
	databaseID  string
	keys        transform.PropertyKeys
	transformer *transform.PageTransformer
	classifier  apperr.Classifier
	logger      *slog.Logger
	config      config.QueryConfig
}

func NewQueryService(
	source Source,
	databaseID string,
	keys transform.PropertyKeys,
	classifier apperr.Classifier,
	logger *slog.Logger,
	cfg config.QueryConfig,
) *QueryService {
	transformer := transform.NewPageTransformer(keys)
	if cfg.DefaultPageSize <= 0 {
		cfg.DefaultPageSize = 10
	}
	if cfg.BlockPageSize <= 0 || cfg.BlockPageSize > notion.MaxPageSize {
		cfg.BlockPageSize = notion.MaxPageSize
	}
	return &QueryService{
		source:      source,
		databaseID:  databaseID,
		keys:        transformer.Keys(),
		transformer: transformer,
		classifier:  classifier,
		logger:      logger.With("component", "query"),
		config:      cfg,
	}
}

// ListEntries returns one page of published entries, newest first.
// Records that fail validation are dropped, so a page may hold fewer
// items than requested while HasMore is still true.
func (s *QueryService) ListEntries(ctx context.Context, params domain.ListParams) (*domain.EntryPage, error) {
	pageSize := params.PageSize
	if pageSize <= 0 {
		pageSize = s.config.DefaultPageSize
	}
	if pageSize > notion.MaxPageSize {
		return nil, apperr.New(apperr.InvalidRequest,
			fmt.Errorf("page size %d exceeds %d", pageSize, notion.MaxPageSize))
	}
	if params.Category != "" && !domain.IsValidCategoryID(string(params.Category)) {
		return nil, apperr.New(apperr.InvalidRequest,
			fmt.Errorf("unknown category %q", params.Category))
	}

	filter := notion.SelectEquals(s.keys.Status, string(domain.StatusPublished))
	if params.Category != "" {
		filter = notion.And(filter, notion.SelectEquals(s.keys.Category, string(params.Category)))
	}

	resp, err := s.source.QueryDatabase(ctx, notion.QueryRequest{
		DatabaseID:  s.databaseID,
		Filter:      &filter,
		Sorts:       []notion.Sort{{Property: s.keys.Date, Direction: notion.Descending}},
		PageSize:    pageSize,
		StartCursor: params.Cursor,
	})
	if err != nil {
		return nil, s.classify("list entries", err)
	}

	items := make([]domain.Entry, 0, len(resp.Results))
	for _, page := range resp.Results {
		entry, err := s.transformer.Transform(page)
		if err != nil {
			s.logger.Warn("dropping malformed page", "page_id", page.ID, "error", err)
			continue
		}
		if entry.Status != domain.StatusPublished {
			s.logger.Warn("dropping unpublished page", "page_id", page.ID, "status", entry.Status)
			continue
		}
		if params.Category != "" && entry.Category != params.Category {
			s.logger.Warn("dropping page outside category",
				"page_id", page.ID,
				"category", entry.Category,
				"requested", params.Category,
			)
			continue
		}
		items = append(items, entry)
	}

	s.logger.Debug("listed entries",
		"category", params.Category,
		"requested", pageSize,
		"raw", len(resp.Results),
		"items", len(items),
		"has_more", resp.HasMore,
	)

	return &domain.EntryPage{
		Items: items,
		Pagination: domain.Pagination{
			HasMore:    resp.HasMore,
			NextCursor: resp.NextCursor,
		},
	}, nil
}

// ListCategoryEntries lists published entries of the category with the
// given URL slug.
func (s *QueryService) ListCategoryEntries(ctx context.Context, slug, cursor string, pageSize int) (*domain.EntryPage, error) {
	category, ok := domain.CategoryBySlug(slug)
	if !ok {
		return nil, apperr.New(apperr.NotFound, fmt.Errorf("unknown category slug %q", slug))
	}
	return s.ListEntries(ctx, domain.ListParams{
		Category: category.ID,
		Cursor:   cursor,
		PageSize: pageSize,
	})
}

// GetEntryBySlug returns the published entry with the given slug and its
// complete block list, or nil when there is no such entry.
func (s *QueryService) GetEntryBySlug(ctx context.Context, slug string) (*domain.EntryDetail, error) {
	if strings.TrimSpace(slug) == "" {
		return nil, apperr.New(apperr.InvalidRequest, domain.ErrMissingSlug)
	}

	filter := notion.And(
		notion.RichTextEquals(s.keys.Slug, slug),
		notion.SelectEquals(s.keys.Status, string(domain.StatusPublished)),
	)

	resp, err := s.source.QueryDatabase(ctx, notion.QueryRequest{
		DatabaseID: s.databaseID,
		Filter:     &filter,
		PageSize:   1,
	})
	if err != nil {
		return nil, s.classify("get entry", err)
	}
	if len(resp.Results) == 0 {
		return nil, nil
	}

	page := resp.Results[0]
	entry, err := s.transformer.Transform(page)
	if err != nil {
		s.logger.Warn("matched page is malformed", "page_id", page.ID, "slug", slug, "error", err)
		return nil, nil
	}

	blocks, err := s.fetchBlocks(ctx, page.ID)
	if err != nil {
		return nil, err
	}

	return &domain.EntryDetail{Entry: entry, Blocks: blocks}, nil
}

// fetchBlocks follows the continuation cursor until the source reports
// no more children. Each round depends on the previous cursor, so rounds
// run sequentially.
func (s *QueryService) fetchBlocks(ctx context.Context, pageID string) ([]domain.Block, error) {
	var (
		blocks []domain.Block
		cursor string
		round  int
	)

	for {
		round++
		resp, err := s.source.ListBlockChildren(ctx, notion.ListBlocksRequest{
			BlockID:     pageID,
			PageSize:    s.config.BlockPageSize,
			StartCursor: cursor,
		})
		if err != nil {
			return nil, s.classify("list blocks", err)
		}

		converted, errs := transform.TransformBlocks(resp.Results)
		for _, err := range errs {
			s.logger.Warn("dropping malformed block", "page_id", pageID, "error", err)
		}
		blocks = append(blocks, converted...)

		s.logger.Debug("fetched block round",
			"page_id", pageID,
			"round", round,
			"count", len(resp.Results),
			"has_more", resp.HasMore,
		)

		if !resp.HasMore {
			break
		}
		if resp.NextCursor == nil || *resp.NextCursor == "" {
			s.logger.Warn("block listing has more results but no cursor",
				"page_id", pageID,
				"round", round,
				"fetched", len(blocks),
			)
			return nil, apperr.New(apperr.ExternalServiceError, ErrMissingCursor)
		}
		cursor = *resp.NextCursor
	}

	if blocks == nil {
		blocks = []domain.Block{}
	}
	return blocks, nil
}

func (s *QueryService) classify(op string, err error) error {
	classified := s.classifier.Classify(err)
	s.logger.Error(op+" failed", "code", classified.Code, "error", err)
	return classified
}
