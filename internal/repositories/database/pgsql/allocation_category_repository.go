package pgsql

import (
	"context"

	"github.com/SscSPs/school_fund_ledger/internal/apperrors"
	"github.com/SscSPs/school_fund_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/school_fund_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/school_fund_ledger/internal/models"
	"github.com/SscSPs/school_fund_ledger/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxAllocationCategoryRepository struct {
	BaseRepository
}

func newPgxAllocationCategoryRepository(pool *pgxpool.Pool) portsrepo.AllocationCategoryRepositoryFacade {
	return &PgxAllocationCategoryRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.AllocationCategoryRepositoryFacade = (*PgxAllocationCategoryRepository)(nil)

const categoryColumns = `category_id, name, percentage, sort_order, created_at, created_by, last_updated_at, last_updated_by`

func scanCategory(row pgx.Row) (models.AllocationCategory, error) {
	var m models.AllocationCategory
	err := row.Scan(
		&m.CategoryID,
		&m.Name,
		&m.Percentage,
		&m.SortOrder,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

func (r *PgxAllocationCategoryRepository) ListCategories(ctx context.Context) ([]domain.AllocationCategory, error) {
	rows, err := r.Pool.Query(ctx, `SELECT `+categoryColumns+` FROM allocation_categories ORDER BY sort_order, name;`)
	if err != nil {
		return nil, r.WrapError(err, "failed to query allocation categories")
	}
	defer rows.Close()

	var ms []models.AllocationCategory
	for rows.Next() {
		m, err := scanCategory(rows)
		if err != nil {
			return nil, r.WrapError(err, "failed to scan allocation category")
		}
		ms = append(ms, m)
	}
	if err := rows.Err(); err != nil {
		return nil, r.WrapError(err, "error iterating allocation categories")
	}
	return mapping.ToDomainAllocationCategorySlice(ms), nil
}

func (r *PgxAllocationCategoryRepository) FindCategoryByID(ctx context.Context, categoryID string) (*domain.AllocationCategory, error) {
	m, err := scanCategory(r.Pool.QueryRow(ctx, `SELECT `+categoryColumns+` FROM allocation_categories WHERE category_id = $1;`, categoryID))
	if err != nil {
		return nil, r.WrapError(err, "failed to find allocation category "+categoryID)
	}
	category := mapping.ToDomainAllocationCategory(m)
	return &category, nil
}

func (r *PgxAllocationCategoryRepository) SaveCategory(ctx context.Context, category domain.AllocationCategory) error {
	m := mapping.ToModelAllocationCategory(category)
	query := `INSERT INTO allocation_categories (` + categoryColumns + `) VALUES ($1, $2, $3, $4, $5, $6, $7, $8);`
	_, err := r.Pool.Exec(ctx, query,
		m.CategoryID,
		m.Name,
		m.Percentage,
		m.SortOrder,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return r.WrapError(err, "failed to insert allocation category "+m.Name)
	}
	return nil
}

func (r *PgxAllocationCategoryRepository) UpdateCategory(ctx context.Context, category domain.AllocationCategory) error {
	m := mapping.ToModelAllocationCategory(category)
	query := `
		UPDATE allocation_categories
		SET name = $1, percentage = $2, sort_order = $3, last_updated_at = $4, last_updated_by = $5
		WHERE category_id = $6;`
	cmdTag, err := r.Pool.Exec(ctx, query, m.Name, m.Percentage, m.SortOrder, m.LastUpdatedAt, m.LastUpdatedBy, m.CategoryID)
	if err != nil {
		return r.WrapError(err, "failed to update allocation category "+m.CategoryID)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxAllocationCategoryRepository) DeleteCategory(ctx context.Context, categoryID string) error {
	cmdTag, err := r.Pool.Exec(ctx, `DELETE FROM allocation_categories WHERE category_id = $1;`, categoryID)
	if err != nil {
		return r.WrapError(err, "failed to delete allocation category "+categoryID)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
