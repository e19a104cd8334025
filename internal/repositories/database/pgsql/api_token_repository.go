package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/FranzoniLeo/financial-control/internal/core/domain"
	portsrepo "github.com/FranzoniLeo/financial-control/internal/core/ports/repositories"
	"github.com/FranzoniLeo/financial-control/internal/models"
	"github.com/FranzoniLeo/financial-control/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxAPITokenRepository struct {
	BaseRepository
}

func newPgxAPITokenRepository(pool *pgxpool.Pool) portsrepo.APITokenRepository {
	return &PgxAPITokenRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.APITokenRepository = (*PgxAPITokenRepository)(nil)

const (
	selectAPITokenFields = `token_id, user_id, token_hash, last_used_at, created_at`

	insertAPITokenQuery = `
		INSERT INTO api_tokens (token_id, user_id, token_hash, created_at)
		VALUES ($1, $2, $3, $4)
	`

	findAPITokenByIDQuery = `
		SELECT ` + selectAPITokenFields + `
		FROM api_tokens
		WHERE token_id = $1
	`

	findAPITokenByUserIDQuery = `
		SELECT ` + selectAPITokenFields + `
		FROM api_tokens
		WHERE user_id = $1
	`

	deleteAPITokensByUserIDQuery = `DELETE FROM api_tokens WHERE user_id = $1`

	updateAPITokenLastUsedQuery = `
		UPDATE api_tokens
		SET last_used_at = $2
		WHERE token_id = $1
	`
)

func (r *PgxAPITokenRepository) SaveToken(ctx context.Context, token domain.APIToken) error {
	m := mapping.ToModelAPIToken(token)
	_, err := r.Pool.Exec(ctx, insertAPITokenQuery, m.TokenID, m.UserID, m.TokenHash, m.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to save api token: %w", mapPgError(err))
	}
	return nil
}

func (r *PgxAPITokenRepository) FindTokenByID(ctx context.Context, tokenID string) (*domain.APIToken, error) {
	row := r.Pool.QueryRow(ctx, findAPITokenByIDQuery, tokenID)
	return scanAPIToken(row)
}

func (r *PgxAPITokenRepository) FindTokenByUserID(ctx context.Context, userID string) (*domain.APIToken, error) {
	row := r.Pool.QueryRow(ctx, findAPITokenByUserIDQuery, userID)
	return scanAPIToken(row)
}

func (r *PgxAPITokenRepository) DeleteTokensByUserID(ctx context.Context, userID string) error {
	if _, err := r.Pool.Exec(ctx, deleteAPITokensByUserIDQuery, userID); err != nil {
		return fmt.Errorf("failed to delete api tokens: %w", err)
	}
	return nil
}

func (r *PgxAPITokenRepository) UpdateLastUsed(ctx context.Context, tokenID string, usedAt time.Time) error {
	if _, err := r.Pool.Exec(ctx, updateAPITokenLastUsedQuery, tokenID, usedAt); err != nil {
		return fmt.Errorf("failed to update api token last-used: %w", err)
	}
	return nil
}

func scanAPIToken(row pgx.Row) (*domain.APIToken, error) {
	var m models.APIToken
	err := row.Scan(&m.TokenID, &m.UserID, &m.TokenHash, &m.LastUsedAt, &m.CreatedAt)
	if err != nil {
		return nil, mapPgError(err)
	}
	token := mapping.ToDomainAPIToken(m)
	return &token, nil
}
