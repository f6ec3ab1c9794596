package repository

import (
	"context"
	"fmt"

	"github.com/carlossangronio-sudo/eden-garden/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// positionedTable carries the queries shared by every table ordered by a
// position column. table is always a package constant, never user input.
type positionedTable struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
	table  string
}

// selectQuery builds the canonical list query: position ascending, ties broken by id.
func (t positionedTable) selectQuery(columns string, filter model.ListFilter) string {
	where := ""
	if filter.VisibleOnly {
		where = "WHERE is_visible = TRUE"
	}
	return fmt.Sprintf("SELECT %s FROM %s %s ORDER BY position ASC, id ASC", columns, t.table, where)
}

// MaxPosition returns the highest position in use, 0 for an empty table.
func (t positionedTable) MaxPosition(ctx context.Context) (int, error) {
	query := fmt.Sprintf("SELECT COALESCE(MAX(position), 0) FROM %s", t.table)

	var maxPos int
	if err := t.pool.QueryRow(ctx, query).Scan(&maxPos); err != nil {
		t.logger.Error().Err(err).Msg("failed to query max position")
		return 0, fmt.Errorf("failed to query max position of %s: %w", t.table, err)
	}
	return maxPos, nil
}

// Count returns the number of rows in the table.
func (t positionedTable) Count(ctx context.Context) (int, error) {
	query := fmt.Sprintf("SELECT COUNT(*) FROM %s", t.table)

	var count int
	if err := t.pool.QueryRow(ctx, query).Scan(&count); err != nil {
		t.logger.Error().Err(err).Msg("failed to count rows")
		return 0, fmt.Errorf("failed to count %s: %w", t.table, err)
	}
	return count, nil
}

// Delete removes a row by id and reports whether it existed.
func (t positionedTable) Delete(ctx context.Context, id int64) (bool, error) {
	query := fmt.Sprintf("DELETE FROM %s WHERE id = $1", t.table)

	tag, err := t.pool.Exec(ctx, query, id)
	if err != nil {
		t.logger.Error().Err(err).Int64("id", id).Msg("failed to delete row")
		return false, fmt.Errorf("failed to delete from %s: %w", t.table, err)
	}

	deleted := tag.RowsAffected() > 0
	t.logger.Debug().Int64("id", id).Bool("deleted", deleted).Msg("delete executed")
	return deleted, nil
}

// Reorder assigns positions 1..n following ids inside one transaction.
// Ids that match no row are skipped.
func (t positionedTable) Reorder(ctx context.Context, ids []int64) error {
	if len(ids) == 0 {
		return nil
	}

	tx, err := t.pool.Begin(ctx)
	if err != nil {
		t.logger.Error().Err(err).Msg("failed to begin transaction")
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	query := fmt.Sprintf("UPDATE %s SET position = $1, updated_at = NOW() WHERE id = $2", t.table)

	batch := &pgx.Batch{}
	for i, id := range ids {
		batch.Queue(query, i+1, id)
	}

	results := tx.SendBatch(ctx, batch)
	for i := range ids {
		if _, err := results.Exec(); err != nil {
			results.Close()
			t.logger.Error().Err(err).Int64("id", ids[i]).Msg("failed to update position")
			return fmt.Errorf("failed to reorder %s: %w", t.table, err)
		}
	}
	if err := results.Close(); err != nil {
		return fmt.Errorf("failed to reorder %s: %w", t.table, err)
	}

	if err := tx.Commit(ctx); err != nil {
		t.logger.Error().Err(err).Msg("failed to commit reorder")
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	t.logger.Debug().Int("count", len(ids)).Msg("rows reordered")
	return nil
}
