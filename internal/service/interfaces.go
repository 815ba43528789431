package service

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"til_mirror/internal/domain"
	"til_mirror/internal/source/notion"
)

type Source interface {
	QueryDatabase(ctx context.Context, req notion.QueryRequest) (*notion.PageList, error)
	ListBlockChildren(ctx context.Context, req notion.ListBlocksRequest) (*notion.BlockList, error)
}

type EntryQuerier interface {
	ListEntries(ctx context.Context, params domain.ListParams) (*domain.EntryPage, error)
	GetEntryBySlug(ctx context.Context, slug string) (*domain.EntryDetail, error)
}

type SiteWriter interface {
	WriteCategories(categories []domain.Category) error
	WriteFeedPage(page *domain.FeedPage) error
	WriteEntry(detail *domain.EntryDetail) error
	RemoveEntry(slug string) error
}

type PageStore interface {
	Upsert(ctx context.Context, page *domain.PageRecord) error
	DeleteMissing(ctx context.Context, keep []string) ([]string, error)
}

type BuildStateStore interface {
	Get(ctx context.Context, site string) (*domain.BuildState, error)
	Update(ctx context.Context, state *domain.BuildState) error
}

type TransactionManager interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type Publisher interface {
	Publish(ctx context.Context, event *domain.SiteBuilt) error
	Close() error
}
