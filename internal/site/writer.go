// Package site writes the JSON snapshots the static front end is built from.
package site

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"til_mirror/internal/domain"
)

const excerptLength = 160

var ErrUnsafeSlug = errors.New("slug cannot be used as a file name")

// EntrySnapshot is the detail page payload: the entry, its blocks grouped
// for rendering and a short plain text excerpt.
type EntrySnapshot struct {
	domain.Entry
	Excerpt     string              `json:"excerpt"`
	Groups      []domain.BlockGroup `json:"groups"`
	GeneratedAt time.Time           `json:"generated_at"`
}

// Writer stores snapshots under a root directory. Every file is replaced
// atomically so readers never see a partial write.
type Writer struct {
	dir    string
	logger *slog.Logger
	now    func() time.Time
}

func NewWriter(dir string, logger *slog.Logger) *Writer {
	return &Writer{
		dir:    dir,
		logger: logger.With("component", "site", "dir", dir),
		now:    time.Now,
	}
}

func (w *Writer) WriteCategories(categories []domain.Category) error {
	return w.writeJSON("categories.json", categories)
}

// WriteFeedPage writes feed/page-N.json, or category/<slug>/page-N.json
// for a category feed.
func (w *Writer) WriteFeedPage(page *domain.FeedPage) error {
	name := "page-" + strconv.Itoa(page.Page) + ".json"
	if page.Category == "" {
		return w.writeJSON(filepath.Join("feed", name), page)
	}
	if err := checkSlug(page.Category); err != nil {
		return err
	}
	return w.writeJSON(filepath.Join("category", page.Category, name), page)
}

func (w *Writer) WriteEntry(detail *domain.EntryDetail) error {
	if err := checkSlug(detail.Slug); err != nil {
		return err
	}

	snapshot := EntrySnapshot{
		Entry:       detail.Entry,
		Excerpt:     Excerpt(detail.Blocks, excerptLength),
		Groups:      domain.GroupBlocks(detail.Blocks),
		GeneratedAt: w.now().UTC(),
	}
	return w.writeJSON(entryPath(detail.Slug), snapshot)
}

// RemoveEntry deletes a detail snapshot. A missing file is not an error.
func (w *Writer) RemoveEntry(slug string) error {
	if err := checkSlug(slug); err != nil {
		return err
	}
	err := os.Remove(filepath.Join(w.dir, entryPath(slug)))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove entry %s: %w", slug, err)
	}
	w.logger.Debug("removed entry", "slug", slug)
	return nil
}

// Excerpt returns the text of the first text block with content,
// cut to at most n runes.
func Excerpt(blocks []domain.Block, n int) string {
	for _, b := range blocks {
		if !domain.IsTextBlock(b) {
			continue
		}
		text := strings.TrimSpace(b.PlainText())
		if text == "" {
			continue
		}
		if r := []rune(text); len(r) > n {
			return string(r[:n]) + "…"
		}
		return text
	}
	return ""
}

func entryPath(slug string) string {
	return filepath.Join("til", slug+".json")
}

func checkSlug(slug string) error {
	if slug == "" || slug == "." || slug == ".." || strings.ContainsAny(slug, `/\`) {
		return fmt.Errorf("%w: %q", ErrUnsafeSlug, slug)
	}
	return nil
}

func (w *Writer) writeJSON(rel string, v any) error {
	path := filepath.Join(w.dir, rel)
	dir := filepath.Dir(path)

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create dir %s: %w", dir, err)
	}

	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal %s: %w", rel, err)
	}

	tmp, err := os.CreateTemp(dir, ".tmp-*.json")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write %s: %w", rel, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close %s: %w", rel, err)
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("chmod %s: %w", rel, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("rename %s: %w", rel, err)
	}

	w.logger.Debug("wrote snapshot", "path", rel, "bytes", len(data))
	return nil
}
