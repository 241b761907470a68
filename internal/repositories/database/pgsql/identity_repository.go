package pgsql

import (
	"context"

	"github.com/SscSPs/school_fund_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/school_fund_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/school_fund_ledger/internal/models"
	"github.com/SscSPs/school_fund_ledger/internal/utils/mapping"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxUserRepository struct {
	BaseRepository
}

func newPgxUserRepository(pool *pgxpool.Pool) portsrepo.UserReader {
	return &PgxUserRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.UserReader = (*PgxUserRepository)(nil)

// FindUserByID retrieves a user by their ID.
func (r *PgxUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	query := `SELECT user_id, display_name, role FROM users WHERE user_id = $1 AND deleted_at IS NULL;`
	var m models.User
	err := r.Pool.QueryRow(ctx, query, userID).Scan(&m.UserID, &m.DisplayName, &m.Role)
	if err != nil {
		return nil, r.WrapError(err, "failed to find user "+userID)
	}
	user := mapping.ToDomainUser(m)
	return &user, nil
}

type PgxSchoolYearRepository struct {
	BaseRepository
}

func newPgxSchoolYearRepository(pool *pgxpool.Pool) portsrepo.SchoolYearReader {
	return &PgxSchoolYearRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.SchoolYearReader = (*PgxSchoolYearRepository)(nil)

const schoolYearColumns = `school_year_id, label, start_date, end_date, is_active`

func (r *PgxSchoolYearRepository) findOne(ctx context.Context, query string, args ...any) (*domain.SchoolYear, error) {
	var m models.SchoolYear
	err := r.Pool.QueryRow(ctx, query, args...).Scan(&m.SchoolYearID, &m.Label, &m.StartDate, &m.EndDate, &m.IsActive)
	if err != nil {
		return nil, r.WrapError(err, "failed to find school year")
	}
	sy := mapping.ToDomainSchoolYear(m)
	return &sy, nil
}

// FindActiveSchoolYear returns the active school year, the most recent one if several are flagged.
func (r *PgxSchoolYearRepository) FindActiveSchoolYear(ctx context.Context) (*domain.SchoolYear, error) {
	return r.findOne(ctx, `SELECT `+schoolYearColumns+` FROM school_years WHERE is_active ORDER BY start_date DESC LIMIT 1;`)
}

// FindSchoolYearByID retrieves a school year by its ID.
func (r *PgxSchoolYearRepository) FindSchoolYearByID(ctx context.Context, schoolYearID string) (*domain.SchoolYear, error) {
	return r.findOne(ctx, `SELECT `+schoolYearColumns+` FROM school_years WHERE school_year_id = $1;`, schoolYearID)
}
