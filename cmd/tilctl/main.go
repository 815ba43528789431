package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"til_mirror/internal/api"
	"til_mirror/internal/app"
	"til_mirror/internal/apperr"
	"til_mirror/internal/config"
	"til_mirror/internal/domain"
	"til_mirror/internal/scheduler"
	"til_mirror/internal/storage/postgres"
)

var (
	configPath string
	logLevel   string
)

func main() {
	rootCmd := &cobra.Command{
		Use:           "tilctl",
		Short:         "Query and publish the TIL database",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "config.yaml", "path to config file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "override the configured log level")

	rootCmd.AddCommand(listCmd())
	rootCmd.AddCommand(showCmd())
	rootCmd.AddCommand(categoriesCmd())
	rootCmd.AddCommand(buildCmd())
	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(manifestCmd())

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func load() (*config.Config, *slog.Logger, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, nil, err
	}
	level := cfg.LogLevel
	if logLevel != "" {
		level = logLevel
	}
	return cfg, setupLogger(level), nil
}

func setupLogger(level string) *slog.Logger {
	var lvl slog.Level
	switch level {
	case "debug":
		lvl = slog.LevelDebug
	case "info":
		lvl = slog.LevelInfo
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelWarn
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))
}

func listCmd() *cobra.Command {
	var (
		category string
		cursor   string
		pageSize int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List published entries, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := load()
			if err != nil {
				return err
			}
			query := app.NewQueryService(cfg, logger)

			var page *domain.EntryPage
			if category != "" && domain.IsValidCategorySlug(strings.ToLower(category)) {
				page, err = query.ListCategoryEntries(cmd.Context(), strings.ToLower(category), cursor, pageSize)
			} else {
				page, err = query.ListEntries(cmd.Context(), domain.ListParams{
					Category: domain.CategoryID(category),
					Cursor:   cursor,
					PageSize: pageSize,
				})
			}
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "DATE\tCATEGORY\tSLUG\tTITLE")
			for _, e := range page.Items {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", e.Date.Format("2006-01-02"), e.Category, e.Slug, e.Title)
			}
			if err := w.Flush(); err != nil {
				return err
			}

			if page.Pagination.HasMore && page.Pagination.NextCursor != nil {
				fmt.Fprintf(cmd.OutOrStdout(), "\nnext cursor: %s\n", *page.Pagination.NextCursor)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&category, "category", "", "category id (AWS) or slug (aws)")
	cmd.Flags().StringVar(&cursor, "cursor", "", "continuation cursor from a previous page")
	cmd.Flags().IntVar(&pageSize, "page-size", 0, "entries per page (default from config)")
	return cmd
}

func showCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "show <slug>",
		Short: "Show one entry with its content",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := load()
			if err != nil {
				return err
			}

			detail, err := app.NewQueryService(cfg, logger).GetEntryBySlug(cmd.Context(), args[0])
			if err != nil && !apperr.IsNotFound(err) {
				return err
			}
			if detail == nil {
				return fmt.Errorf("entry %q not found", args[0])
			}

			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(detail)
			}

			fmt.Fprintf(out, "%s\n%s · %s\n", detail.Title, detail.Date.Format("2006-01-02"), detail.Category)
			if len(detail.Tags) > 0 {
				fmt.Fprintf(out, "tags: %s\n", strings.Join(detail.Tags, ", "))
			}
			if detail.Reference != nil {
				fmt.Fprintf(out, "ref:  %s\n", *detail.Reference)
			}
			fmt.Fprintln(out)
			printGroups(out, domain.GroupBlocks(detail.Blocks))
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print the entry as JSON")
	return cmd
}

func printGroups(w io.Writer, groups []domain.BlockGroup) {
	for _, g := range groups {
		for i, b := range g.Blocks {
			switch g.Kind {
			case domain.GroupBulleted:
				fmt.Fprintf(w, "  • %s\n", b.PlainText())
			case domain.GroupNumbered:
				fmt.Fprintf(w, "  %d. %s\n", i+1, b.PlainText())
			default:
				printBlock(w, b)
			}
		}
	}
}

func printBlock(w io.Writer, b domain.Block) {
	switch c := b.Content().(type) {
	case domain.Heading1:
		fmt.Fprintf(w, "# %s\n", b.PlainText())
	case domain.Heading2:
		fmt.Fprintf(w, "## %s\n", b.PlainText())
	case domain.Heading3:
		fmt.Fprintf(w, "### %s\n", b.PlainText())
	case domain.Code:
		fmt.Fprintf(w, "```%s\n%s\n```\n", c.Language, b.PlainText())
	case domain.Quote:
		fmt.Fprintf(w, "> %s\n", b.PlainText())
	case domain.ToDo:
		mark := " "
		if c.Checked {
			mark = "x"
		}
		fmt.Fprintf(w, "[%s] %s\n", mark, b.PlainText())
	case domain.Divider:
		fmt.Fprintln(w, "---")
	case domain.Image:
		fmt.Fprintf(w, "[image] %s\n", c.URL)
	case domain.Video:
		fmt.Fprintf(w, "[video] %s\n", c.URL)
	case domain.Bookmark:
		fmt.Fprintf(w, "[bookmark] %s\n", c.URL)
	case domain.Embed:
		fmt.Fprintf(w, "[embed] %s\n", c.URL)
	case domain.Unsupported:
		fmt.Fprintf(w, "[unsupported block: %s]\n", c.SourceType)
	default:
		fmt.Fprintln(w, b.PlainText())
	}
}

func categoriesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List the fixed categories",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tSLUG\tLABEL\tDESCRIPTION")
			for _, c := range domain.Categories() {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", c.ID, c.Slug, c.Label, c.Description)
			}
			return w.Flush()
		},
	}
}

func buildCmd() *cobra.Command {
	var once bool

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Build the site snapshots",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := load()
			if err != nil {
				return err
			}
			ctx := cmd.Context()

			builder, err := app.NewBuilder(ctx, cfg, app.NewQueryService(cfg, logger), logger)
			if err != nil {
				return err
			}
			defer builder.Close()

			if !once {
				return runScheduled(ctx, cfg, builder, logger)
			}

			stats, err := builder.Build(ctx)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "run %s: %d entries, %d feed pages, %d removed, %d errors in %s\n",
				stats.RunID, stats.Entries, stats.Feeds, stats.Removed, stats.Errors, stats.Duration)
			return nil
		},
	}

	cmd.Flags().BoolVar(&once, "once", false, "build once and exit instead of rebuilding on the configured interval")
	return cmd
}

func serveCmd() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the read API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := load()
			if err != nil {
				return err
			}
			if addr == "" {
				addr = cfg.HTTP.Addr
			}

			return api.NewServer(app.NewQueryService(cfg, logger), logger).Run(cmd.Context(), addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from config)")
	return cmd
}

func runScheduled(ctx context.Context, cfg *config.Config, builder *app.Builder, logger *slog.Logger) error {
	sched := scheduler.NewScheduler(builder, cfg.Build.Interval, cfg.Build.Timeout, logger)
	if err := sched.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

func manifestCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "manifest",
		Short: "Show the pages recorded by the last builds",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, err := load()
			if err != nil {
				return err
			}
			ctx := cmd.Context()

			db, err := app.ConnectDB(ctx, cfg)
			if err != nil {
				return err
			}
			defer db.Close()

			state, err := postgres.NewBuildStateStore(db).Get(ctx, cfg.Build.Site)
			if err != nil {
				return fmt.Errorf("get build state: %w", err)
			}

			store := postgres.NewPageStore(db)
			pages, err := store.List(ctx)
			if err != nil {
				return fmt.Errorf("list pages: %w", err)
			}

			out := cmd.OutOrStdout()
			if state.TotalBuilds > 0 {
				fmt.Fprintf(out, "site %s: %d builds, last %s at %s\n\n",
					cfg.Build.Site, state.TotalBuilds, state.LastRunID, state.LastBuiltAt.Format("2006-01-02 15:04:05"))
			}

			w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "DATE\tCATEGORY\tSLUG\tTAGS\tRUN")
			for _, p := range pages {
				tags, err := store.TagsBySlug(ctx, p.Slug)
				if err != nil {
					return fmt.Errorf("tags of %s: %w", p.Slug, err)
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
					p.Date.Format("2006-01-02"), p.Category, p.Slug, strings.Join(tags, ","), p.RunID)
			}
			return w.Flush()
		},
	}
}
