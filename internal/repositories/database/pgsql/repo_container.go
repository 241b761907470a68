package pgsql

import (
	portsrepo "github.com/SscSPs/school_fund_ledger/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		LedgerRepo:     newPgxLedgerRepository(dbPool),
		CategoryRepo:   newPgxAllocationCategoryRepository(dbPool),
		UserRepo:       newPgxUserRepository(dbPool),
		SchoolYearRepo: newPgxSchoolYearRepository(dbPool),
	}
}
