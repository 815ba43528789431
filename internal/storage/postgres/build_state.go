package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"til_mirror/internal/domain"
)

type BuildStateStore struct {
	db *sqlx.DB
}

func NewBuildStateStore(db *sqlx.DB) *BuildStateStore {
	return &BuildStateStore{db: db}
}

func (s *BuildStateStore) Get(ctx context.Context, site string) (*domain.BuildState, error) {
	var state domain.BuildState
	query := `
		SELECT id, site, last_run_id, last_built_at, total_builds, entries_built
		FROM build_state
		WHERE site = $1`

	err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &state, query, site)
	if errors.Is(err, sql.ErrNoRows) {
		// Return empty state for a site that was never built
		return &domain.BuildState{Site: site}, nil
	}
	if err != nil {
		return nil, err
	}
	return &state, nil
}

func (s *BuildStateStore) Update(ctx context.Context, state *domain.BuildState) error {
	query := `
		INSERT INTO build_state (site, last_run_id, last_built_at, total_builds, entries_built)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (site) DO UPDATE SET
			last_run_id = EXCLUDED.last_run_id,
			last_built_at = EXCLUDED.last_built_at,
			total_builds = EXCLUDED.total_builds,
			entries_built = EXCLUDED.entries_built`

	_, err := GetExecutor(ctx, s.db).ExecContext(ctx, query,
		state.Site,
		state.LastRunID,
		state.LastBuiltAt,
		state.TotalBuilds,
		state.EntriesBuilt,
	)
	return err
}
