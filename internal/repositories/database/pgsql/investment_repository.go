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

type PgxInvestmentRepository struct {
	BaseRepository
}

func newPgxInvestmentRepository(pool *pgxpool.Pool) portsrepo.InvestmentRepository {
	return &PgxInvestmentRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.InvestmentRepository = (*PgxInvestmentRepository)(nil)

const (
	selectInvestmentFields = `investment_id, wallet_id, category_id, name, created_at, created_by, last_updated_at, last_updated_by`

	insertInvestmentQuery = `
		INSERT INTO investments (investment_id, wallet_id, category_id, name, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	findInvestmentByIDQuery = `
		SELECT ` + selectInvestmentFields + `
		FROM investments
		WHERE investment_id = $1
	`

	listInvestmentsByWalletIDQuery = `
		SELECT ` + selectInvestmentFields + `
		FROM investments
		WHERE wallet_id = $1
		ORDER BY created_at ASC
	`

	selectCategoryFields = `category_id, wallet_id, name, parent_category_id, created_at, created_by, last_updated_at, last_updated_by`

	insertCategoryQuery = `
		INSERT INTO categories (category_id, wallet_id, name, parent_category_id, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	findCategoryByIDQuery = `
		SELECT ` + selectCategoryFields + `
		FROM categories
		WHERE category_id = $1
	`

	listCategoriesByWalletIDQuery = `
		SELECT ` + selectCategoryFields + `
		FROM categories
		WHERE wallet_id = $1
		ORDER BY created_at ASC
	`
)

func (r *PgxInvestmentRepository) SaveInvestment(ctx context.Context, investment domain.Investment) error {
	m := mapping.ToModelInvestment(investment)
	_, err := r.Pool.Exec(ctx, insertInvestmentQuery,
		m.InvestmentID, m.WalletID, m.CategoryID, m.Name,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save investment: %w", mapPgError(err))
	}
	return nil
}

func (r *PgxInvestmentRepository) FindInvestmentByID(ctx context.Context, investmentID string) (*domain.Investment, error) {
	row := r.Pool.QueryRow(ctx, findInvestmentByIDQuery, investmentID)
	return scanInvestment(row)
}

func (r *PgxInvestmentRepository) ListInvestmentsByWalletID(ctx context.Context, walletID string) ([]domain.Investment, error) {
	rows, err := r.Pool.Query(ctx, listInvestmentsByWalletIDQuery, walletID)
	if err != nil {
		return nil, fmt.Errorf("failed to list investments: %w", err)
	}
	defer rows.Close()

	var investments []domain.Investment
	for rows.Next() {
		inv, err := scanInvestment(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan investment: %w", err)
		}
		investments = append(investments, *inv)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read investments: %w", err)
	}
	return investments, nil
}

func (r *PgxInvestmentRepository) SaveCategory(ctx context.Context, category domain.Category) error {
	m := mapping.ToModelCategory(category)
	_, err := r.Pool.Exec(ctx, insertCategoryQuery,
		m.CategoryID, m.WalletID, m.Name, nullableID(m.ParentCategoryID),
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save category: %w", mapPgError(err))
	}
	return nil
}

func (r *PgxInvestmentRepository) FindCategoryByID(ctx context.Context, categoryID string) (*domain.Category, error) {
	row := r.Pool.QueryRow(ctx, findCategoryByIDQuery, categoryID)
	return scanCategory(row)
}

func (r *PgxInvestmentRepository) ListCategoriesByWalletID(ctx context.Context, walletID string) ([]domain.Category, error) {
	rows, err := r.Pool.Query(ctx, listCategoriesByWalletIDQuery, walletID)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	defer rows.Close()

	var categories []domain.Category
	for rows.Next() {
		cat, err := scanCategory(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan category: %w", err)
		}
		categories = append(categories, *cat)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read categories: %w", err)
	}
	return categories, nil
}

func scanInvestment(row pgx.Row) (*domain.Investment, error) {
	var m models.Investment
	err := row.Scan(
		&m.InvestmentID, &m.WalletID, &m.CategoryID, &m.Name,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	if err != nil {
		return nil, mapPgError(err)
	}
	inv := mapping.ToDomainInvestment(m)
	return &inv, nil
}

func scanCategory(row pgx.Row) (*domain.Category, error) {
	var m models.Category
	var parentID *string
	err := row.Scan(
		&m.CategoryID, &m.WalletID, &m.Name, &parentID,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	if err != nil {
		return nil, mapPgError(err)
	}
	if parentID != nil {
		m.ParentCategoryID = *parentID
	}
	cat := mapping.ToDomainCategory(m)
	return &cat, nil
}
