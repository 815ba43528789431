package api

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/gin-gonic/gin"

	"til_mirror/internal/apperr"
	"til_mirror/internal/domain"
)

type entryResponse struct {
	*domain.EntryDetail
	Groups []domain.BlockGroup `json:"groups"`
}

func (s *Server) healthz(c *gin.Context) {
	ok(c, gin.H{"status": "ok"})
}

// GET /api/entries?category=&cursor=&page_size=
func (s *Server) listEntries(c *gin.Context) {
	pageSize, err := pageSizeParam(c)
	if err != nil {
		fail(c, err)
		return
	}

	page, err := s.querier.ListEntries(c.Request.Context(), domain.ListParams{
		Category: domain.CategoryID(c.Query("category")),
		Cursor:   c.Query("cursor"),
		PageSize: pageSize,
	})
	if err != nil {
		s.logger.Warn("list entries failed", "error", err)
		fail(c, err)
		return
	}

	writePage(c, page)
}

// GET /api/categories/:slug/entries
func (s *Server) listCategoryEntries(c *gin.Context) {
	pageSize, err := pageSizeParam(c)
	if err != nil {
		fail(c, err)
		return
	}

	page, err := s.querier.ListCategoryEntries(c.Request.Context(), c.Param("slug"), c.Query("cursor"), pageSize)
	if err != nil {
		s.logger.Warn("list category entries failed", "slug", c.Param("slug"), "error", err)
		fail(c, err)
		return
	}

	writePage(c, page)
}

// GET /api/entries/:slug
func (s *Server) getEntry(c *gin.Context) {
	slug := c.Param("slug")

	detail, err := s.querier.GetEntryBySlug(c.Request.Context(), slug)
	if err != nil {
		level := slog.LevelWarn
		if apperr.IsNotFound(err) {
			level = slog.LevelDebug
		}
		s.logger.Log(c.Request.Context(), level, "get entry failed",
			"slug", slug,
			"code", apperr.CodeOf(err),
			"error", err,
		)
		fail(c, err)
		return
	}
	if detail == nil {
		fail(c, apperr.New(apperr.NotFound, fmt.Errorf("entry %q", slug)))
		return
	}

	ok(c, entryResponse{
		EntryDetail: detail,
		Groups:      domain.GroupBlocks(detail.Blocks),
	})
}

// GET /api/categories
func (s *Server) listCategories(c *gin.Context) {
	ok(c, domain.Categories())
}

func writePage(c *gin.Context, page *domain.EntryPage) {
	cards := make([]domain.EntryCardData, 0, len(page.Items))
	for _, e := range page.Items {
		cards = append(cards, domain.ToCardData(e))
	}

	okWithMeta(c, cards, &Meta{
		HasMore:    page.Pagination.HasMore,
		NextCursor: page.Pagination.NextCursor,
	})
}

func pageSizeParam(c *gin.Context) (int, error) {
	raw := c.Query("page_size")
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0, apperr.New(apperr.InvalidRequest, errors.New("page_size must be a non-negative integer"))
	}
	return n, nil
}
