package pgsql

import (
	"context"
	"fmt"

	"github.com/FranzoniLeo/financial-control/internal/core/domain"
	portsrepo "github.com/FranzoniLeo/financial-control/internal/core/ports/repositories"
	"github.com/FranzoniLeo/financial-control/internal/models"
	"github.com/FranzoniLeo/financial-control/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxUserRepository struct {
	BaseRepository
}

func newPgxUserRepository(pool *pgxpool.Pool) portsrepo.UserRepository {
	return &PgxUserRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.UserRepository = (*PgxUserRepository)(nil)

const (
	insertUserQuery = `
		INSERT INTO users (user_id, username, name, password_hash, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	findUserByIDQuery = `
		SELECT user_id, username, name, password_hash, created_at, created_by, last_updated_at, last_updated_by
		FROM users
		WHERE user_id = $1 AND deleted_at IS NULL
	`

	findUserByUsernameQuery = `
		SELECT user_id, username, name, password_hash, created_at, created_by, last_updated_at, last_updated_by
		FROM users
		WHERE username = $1 AND deleted_at IS NULL
	`
)

func (r *PgxUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	m := mapping.ToModelUser(user)
	_, err := r.Pool.Exec(ctx, insertUserQuery,
		m.UserID, m.Username, m.Name, m.PasswordHash,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save user: %w", mapPgError(err))
	}
	return nil
}

func (r *PgxUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	row := r.Pool.QueryRow(ctx, findUserByIDQuery, userID)
	return scanUser(row)
}

func (r *PgxUserRepository) FindUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	row := r.Pool.QueryRow(ctx, findUserByUsernameQuery, username)
	return scanUser(row)
}

func scanUser(row pgx.Row) (*domain.User, error) {
	var m models.User
	err := row.Scan(
		&m.UserID, &m.Username, &m.Name, &m.PasswordHash,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	if err != nil {
		return nil, mapPgError(err)
	}
	user := mapping.ToDomainUser(m)
	return &user, nil
}
