package pgsql

import (
	"context"
	"fmt"

	"github.com/FranzoniLeo/financial-control/internal/apperrors"
	"github.com/FranzoniLeo/financial-control/internal/core/domain"
	portsrepo "github.com/FranzoniLeo/financial-control/internal/core/ports/repositories"
	"github.com/FranzoniLeo/financial-control/internal/models"
	"github.com/FranzoniLeo/financial-control/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxWalletRepository struct {
	BaseRepository
}

func newPgxWalletRepository(pool *pgxpool.Pool) portsrepo.WalletRepository {
	return &PgxWalletRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.WalletRepository = (*PgxWalletRepository)(nil)

const (
	selectWalletFields = `wallet_id, user_id, name, created_at, created_by, last_updated_at, last_updated_by`

	insertWalletQuery = `
		INSERT INTO wallets (wallet_id, user_id, name, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	findWalletByIDQuery = `
		SELECT ` + selectWalletFields + `
		FROM wallets
		WHERE wallet_id = $1
	`

	findWalletByUserIDAndNameQuery = `
		SELECT ` + selectWalletFields + `
		FROM wallets
		WHERE user_id = $1 AND name = $2
	`

	listWalletsByUserIDQuery = `
		SELECT ` + selectWalletFields + `
		FROM wallets
		WHERE user_id = $1
		ORDER BY created_at ASC
	`

	updateWalletQuery = `
		UPDATE wallets
		SET name = $2, last_updated_at = $3, last_updated_by = $4
		WHERE wallet_id = $1
	`

	deleteNestedTransactionsQuery = `
		DELETE FROM transactions
		WHERE wallet_id = $1
		   OR investment_id IN (SELECT investment_id FROM investments WHERE wallet_id = $1)
	`
	deleteInvestmentsQuery = `DELETE FROM investments WHERE wallet_id = $1`
	deleteCategoriesQuery  = `DELETE FROM categories WHERE wallet_id = $1`
	deleteWalletQuery      = `DELETE FROM wallets WHERE wallet_id = $1`
)

func (r *PgxWalletRepository) SaveWallet(ctx context.Context, wallet domain.Wallet) error {
	m := mapping.ToModelWallet(wallet)
	_, err := r.Pool.Exec(ctx, insertWalletQuery,
		m.WalletID, m.UserID, m.Name,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save wallet: %w", mapPgError(err))
	}
	return nil
}

func (r *PgxWalletRepository) FindWalletByID(ctx context.Context, walletID string) (*domain.Wallet, error) {
	row := r.Pool.QueryRow(ctx, findWalletByIDQuery, walletID)
	return scanWallet(row)
}

// FindWalletByUserIDAndName does a case-sensitive exact match; Postgres text
// comparison is case-sensitive by default, which is exactly the uniqueness
// rule wallets follow.
func (r *PgxWalletRepository) FindWalletByUserIDAndName(ctx context.Context, userID, name string) (*domain.Wallet, error) {
	row := r.Pool.QueryRow(ctx, findWalletByUserIDAndNameQuery, userID, name)
	return scanWallet(row)
}

func (r *PgxWalletRepository) ListWalletsByUserID(ctx context.Context, userID string) ([]domain.Wallet, error) {
	rows, err := r.Pool.Query(ctx, listWalletsByUserIDQuery, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list wallets: %w", err)
	}
	defer rows.Close()

	var wallets []models.Wallet
	for rows.Next() {
		var m models.Wallet
		if err := rows.Scan(&m.WalletID, &m.UserID, &m.Name, &m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy); err != nil {
			return nil, fmt.Errorf("failed to scan wallet: %w", err)
		}
		wallets = append(wallets, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read wallets: %w", err)
	}
	return mapping.ToDomainWalletSlice(wallets), nil
}

func (r *PgxWalletRepository) UpdateWallet(ctx context.Context, wallet domain.Wallet) error {
	m := mapping.ToModelWallet(wallet)
	tag, err := r.Pool.Exec(ctx, updateWalletQuery, m.WalletID, m.Name, m.LastUpdatedAt, m.LastUpdatedBy)
	if err != nil {
		return fmt.Errorf("failed to update wallet: %w", mapPgError(err))
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteWalletCascade removes the wallet and everything under it in one
// transaction: nested investment transactions, direct transactions,
// investments, categories, then the wallet row itself.
func (r *PgxWalletRepository) DeleteWalletCascade(ctx context.Context, walletID string) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = r.Rollback(ctx, tx) }()

	for _, q := range []string{
		deleteNestedTransactionsQuery,
		deleteInvestmentsQuery,
		deleteCategoriesQuery,
	} {
		if _, err := tx.Exec(ctx, q, walletID); err != nil {
			return fmt.Errorf("failed to cascade delete wallet: %w", err)
		}
	}

	tag, err := tx.Exec(ctx, deleteWalletQuery, walletID)
	if err != nil {
		return fmt.Errorf("failed to delete wallet: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	return r.Commit(ctx, tx)
}

func scanWallet(row pgx.Row) (*domain.Wallet, error) {
	var m models.Wallet
	err := row.Scan(&m.WalletID, &m.UserID, &m.Name, &m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy)
	if err != nil {
		return nil, mapPgError(err)
	}
	wallet := mapping.ToDomainWallet(m)
	return &wallet, nil
}
