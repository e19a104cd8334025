package pgsql

import (
	"context"
	"fmt"

	"github.com/FranzoniLeo/financial-control/internal/apperrors"
	"github.com/FranzoniLeo/financial-control/internal/core/domain"
	portsrepo "github.com/FranzoniLeo/financial-control/internal/core/ports/repositories"
	"github.com/FranzoniLeo/financial-control/internal/models"
	"github.com/FranzoniLeo/financial-control/internal/utils/mapping"
	"github.com/FranzoniLeo/financial-control/internal/utils/pagination"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxTransactionRepository struct {
	BaseRepository
}

func newPgxTransactionRepository(pool *pgxpool.Pool) portsrepo.TransactionRepository {
	return &PgxTransactionRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.TransactionRepository = (*PgxTransactionRepository)(nil)

const (
	selectTransactionFields = `transaction_id, wallet_id, investment_id, amount, type, date, description, created_at, created_by, last_updated_at, last_updated_by`

	insertTransactionQuery = `
		INSERT INTO transactions (transaction_id, wallet_id, investment_id, amount, type, date, description, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`

	findTransactionByIDQuery = `
		SELECT ` + selectTransactionFields + `
		FROM transactions
		WHERE transaction_id = $1
	`

	updateTransactionQuery = `
		UPDATE transactions
		SET amount = $2, type = $3, date = $4, description = $5, last_updated_at = $6, last_updated_by = $7
		WHERE transaction_id = $1
	`

	deleteTransactionQuery = `DELETE FROM transactions WHERE transaction_id = $1`

	listByWalletIDQuery = `
		SELECT ` + selectTransactionFields + `
		FROM transactions
		WHERE wallet_id = $1
		ORDER BY date DESC, created_at DESC
		LIMIT $2
	`

	listByWalletIDAfterTokenQuery = `
		SELECT ` + selectTransactionFields + `
		FROM transactions
		WHERE wallet_id = $1 AND (date, created_at) < ($2, $3)
		ORDER BY date DESC, created_at DESC
		LIMIT $4
	`

	listAllByWalletIDQuery = `
		SELECT ` + selectTransactionFields + `
		FROM transactions
		WHERE wallet_id = $1
		ORDER BY date DESC, created_at DESC
	`

	listByInvestmentIDQuery = `
		SELECT ` + selectTransactionFields + `
		FROM transactions
		WHERE investment_id = $1
		ORDER BY date DESC, created_at DESC
	`

	// The ownership closure: every transaction whose parent chain ends at a
	// wallet the user owns, whether the parent is the wallet itself or one of
	// its investments. COALESCE picks whichever wallet the chain resolves to.
	listByUserIDQuery = `
		SELECT t.transaction_id, t.wallet_id, t.investment_id, t.amount, t.type, t.date, t.description,
		       t.created_at, t.created_by, t.last_updated_at, t.last_updated_by
		FROM transactions t
		LEFT JOIN investments i ON t.investment_id = i.investment_id
		JOIN wallets w ON w.wallet_id = COALESCE(t.wallet_id, i.wallet_id)
		WHERE w.user_id = $1
		ORDER BY t.date DESC, t.created_at DESC
	`
)

func (r *PgxTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) error {
	m := mapping.ToModelTransaction(txn)
	_, err := r.Pool.Exec(ctx, insertTransactionQuery,
		m.TransactionID, nullableID(m.WalletID), nullableID(m.InvestmentID),
		m.Amount, string(m.Type), m.Date, m.Description,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save transaction: %w", mapPgError(err))
	}
	return nil
}

func (r *PgxTransactionRepository) FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	row := r.Pool.QueryRow(ctx, findTransactionByIDQuery, transactionID)
	return scanTransaction(row)
}

func (r *PgxTransactionRepository) UpdateTransaction(ctx context.Context, txn domain.Transaction) error {
	m := mapping.ToModelTransaction(txn)
	tag, err := r.Pool.Exec(ctx, updateTransactionQuery,
		m.TransactionID, m.Amount, string(m.Type), m.Date, m.Description,
		m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update transaction: %w", mapPgError(err))
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxTransactionRepository) DeleteTransaction(ctx context.Context, transactionID string) error {
	tag, err := r.Pool.Exec(ctx, deleteTransactionQuery, transactionID)
	if err != nil {
		return fmt.Errorf("failed to delete transaction: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// ListTransactionsByWalletID pages through a wallet's direct transactions
// newest first. It fetches limit+1 rows to know whether another page exists
// and encodes the boundary of the last returned row as the next token.
func (r *PgxTransactionRepository) ListTransactionsByWalletID(ctx context.Context, walletID string, limit int, nextToken *string) ([]domain.Transaction, *string, error) {
	fetchLimit := limit + 1

	var rows pgx.Rows
	var err error
	if nextToken != nil && *nextToken != "" {
		date, createdAt, tokenErr := pagination.DecodeToken(*nextToken)
		if tokenErr != nil {
			return nil, nil, apperrors.NewValidationError("nextToken", "invalid pagination token")
		}
		rows, err = r.Pool.Query(ctx, listByWalletIDAfterTokenQuery, walletID, date, createdAt, fetchLimit)
	} else {
		rows, err = r.Pool.Query(ctx, listByWalletIDQuery, walletID, fetchLimit)
	}
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	defer rows.Close()

	txns, err := collectTransactions(rows)
	if err != nil {
		return nil, nil, err
	}

	var token *string
	if len(txns) > limit {
		txns = txns[:limit]
		last := txns[len(txns)-1]
		t := pagination.EncodeToken(last.Date, last.CreatedAt)
		token = &t
	}
	return txns, token, nil
}

func (r *PgxTransactionRepository) ListAllTransactionsByWalletID(ctx context.Context, walletID string) ([]domain.Transaction, error) {
	rows, err := r.Pool.Query(ctx, listAllByWalletIDQuery, walletID)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	defer rows.Close()
	return collectTransactions(rows)
}

func (r *PgxTransactionRepository) ListTransactionsByInvestmentID(ctx context.Context, investmentID string) ([]domain.Transaction, error) {
	rows, err := r.Pool.Query(ctx, listByInvestmentIDQuery, investmentID)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	defer rows.Close()
	return collectTransactions(rows)
}

func (r *PgxTransactionRepository) ListTransactionsByUserID(ctx context.Context, userID string) ([]domain.Transaction, error) {
	rows, err := r.Pool.Query(ctx, listByUserIDQuery, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	defer rows.Close()
	return collectTransactions(rows)
}

// nullableID turns an empty ID into a SQL NULL so the exactly-one-parent
// CHECK constraint sees real NULLs.
func nullableID(id string) *string {
	if id == "" {
		return nil
	}
	return &id
}

func scanTransaction(row pgx.Row) (*domain.Transaction, error) {
	var m models.Transaction
	var walletID, investmentID *string
	err := row.Scan(
		&m.TransactionID, &walletID, &investmentID,
		&m.Amount, &m.Type, &m.Date, &m.Description,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	if err != nil {
		return nil, mapPgError(err)
	}
	if walletID != nil {
		m.WalletID = *walletID
	}
	if investmentID != nil {
		m.InvestmentID = *investmentID
	}
	txn := mapping.ToDomainTransaction(m)
	return &txn, nil
}

func collectTransactions(rows pgx.Rows) ([]domain.Transaction, error) {
	var txns []domain.Transaction
	for rows.Next() {
		txn, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", err)
		}
		txns = append(txns, *txn)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read transactions: %w", err)
	}
	return txns, nil
}
