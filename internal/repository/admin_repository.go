package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/carlossangronio-sudo/eden-garden/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

const adminColumns = `id, email, password_hash, created_at, updated_at`

// adminRepository implements the AdminRepository interface using PostgreSQL.
type adminRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewAdminRepository creates a new PostgreSQL-backed admin repository.
func NewAdminRepository(pool *pgxpool.Pool, logger zerolog.Logger) AdminRepository {
	return &adminRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "admin").Logger(),
	}
}

func scanAdmin(row pgx.Row) (*model.AdminAccount, error) {
	var a model.AdminAccount
	if err := row.Scan(&a.ID, &a.Email, &a.PasswordHash, &a.CreatedAt, &a.UpdatedAt); err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *adminRepository) GetByEmail(ctx context.Context, email string) (*model.AdminAccount, error) {
	query := `SELECT ` + adminColumns + ` FROM admin_users WHERE LOWER(email) = LOWER($1)`

	account, err := scanAdmin(r.pool.QueryRow(ctx, query, strings.TrimSpace(email)))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.Debug().Msg("admin not found by email")
			return nil, nil
		}
		r.logger.Error().Err(err).Msg("failed to query admin by email")
		return nil, fmt.Errorf("failed to query admin: %w", err)
	}

	return account, nil
}

func (r *adminRepository) GetByID(ctx context.Context, id int64) (*model.AdminAccount, error) {
	query := `SELECT ` + adminColumns + ` FROM admin_users WHERE id = $1`

	account, err := scanAdmin(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.Debug().Int64("admin_id", id).Msg("admin not found")
			return nil, nil
		}
		r.logger.Error().Err(err).Int64("admin_id", id).Msg("failed to query admin")
		return nil, fmt.Errorf("failed to query admin: %w", err)
	}

	return account, nil
}

// Create stores the email lower-cased.
func (r *adminRepository) Create(ctx context.Context, email, passwordHash string) (*model.AdminAccount, error) {
	query := `
		INSERT INTO admin_users (email, password_hash)
		VALUES (LOWER($1), $2)
		RETURNING ` + adminColumns

	account, err := scanAdmin(r.pool.QueryRow(ctx, query, strings.TrimSpace(email), passwordHash))
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to create admin")
		return nil, fmt.Errorf("failed to create admin: %w", err)
	}

	r.logger.Info().Int64("admin_id", account.ID).Msg("admin created")
	return account, nil
}

func (r *adminRepository) UpdatePassword(ctx context.Context, id int64, passwordHash string) error {
	query := `UPDATE admin_users SET password_hash = $1, updated_at = NOW() WHERE id = $2`

	tag, err := r.pool.Exec(ctx, query, passwordHash, id)
	if err != nil {
		r.logger.Error().Err(err).Int64("admin_id", id).Msg("failed to update password")
		return fmt.Errorf("failed to update password: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrAdminNotFound
	}

	r.logger.Info().Int64("admin_id", id).Msg("admin password updated")
	return nil
}
