package pgsql

import (
	"context"
	"fmt"
	"strings"

	"github.com/SscSPs/school_fund_ledger/internal/apperrors"
	"github.com/SscSPs/school_fund_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/school_fund_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/school_fund_ledger/internal/models"
	"github.com/SscSPs/school_fund_ledger/internal/utils/accounting"
	"github.com/SscSPs/school_fund_ledger/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

const entryColumns = `entry_date, direction, amount, description, category,
	income_kind, expense_kind, fund_source, school_year_id, recorded_by_id, recorded_by_name,
	created_at, created_by, last_updated_at, last_updated_by`

// effectiveSourceSQL derives the fund source of rows recorded before sources were stored.
const effectiveSourceSQL = `COALESCE(fund_source,
	CASE WHEN direction = 'in' THEN
		CASE COALESCE(income_kind, 'tuition') WHEN 'donation' THEN 'donation' WHEN 'other' THEN 'other_income' ELSE 'tuition' END
	ELSE
		CASE COALESCE(expense_kind, 'operational') WHEN 'donation_given' THEN 'donation' WHEN 'other' THEN 'other_income' ELSE 'tuition' END
	END)`

// directionLabelSQL matches domain.Direction.Label so listings can be searched by label.
const directionLabelSQL = `CASE direction WHEN 'in' THEN 'Entrée' WHEN 'out' THEN 'Sortie' ELSE direction END`

const dateLayout = "2006-01-02"

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

type PgxLedgerRepository struct {
	BaseRepository
}

// newPgxLedgerRepository creates a new repository for ledger entries and their deleted history.
func newPgxLedgerRepository(pool *pgxpool.Pool) portsrepo.LedgerRepositoryFacade {
	return &PgxLedgerRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure PgxLedgerRepository implements portsrepo.LedgerRepositoryFacade
var _ portsrepo.LedgerRepositoryFacade = (*PgxLedgerRepository)(nil)

func scanEntry(row pgx.Row, extra ...any) (models.LedgerEntry, error) {
	var m models.LedgerEntry
	dest := append(extra,
		&m.EntryDate,
		&m.Direction,
		&m.Amount,
		&m.Description,
		&m.Category,
		&m.IncomeKind,
		&m.ExpenseKind,
		&m.FundSource,
		&m.SchoolYearID,
		&m.RecordedByID,
		&m.RecordedByName,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	err := row.Scan(dest...)
	return m, err
}

func entryArgs(m models.LedgerEntry) []any {
	return []any{
		m.EntryDate,
		m.Direction,
		m.Amount,
		m.Description,
		m.Category,
		m.IncomeKind,
		m.ExpenseKind,
		m.FundSource,
		m.SchoolYearID,
		m.RecordedByID,
		m.RecordedByName,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	}
}

// whereClause builds the WHERE clause of a filter. Placeholders start at $1.
func whereClause(filter portsrepo.LedgerEntryFilter) (string, []any) {
	var conds []string
	var args []any
	add := func(cond string, arg any) {
		args = append(args, arg)
		conds = append(conds, strings.ReplaceAll(cond, "?", fmt.Sprintf("$%d", len(args))))
	}

	if filter.SchoolYearID != "" {
		add("school_year_id = ?", filter.SchoolYearID)
	}
	if filter.From != nil {
		add("entry_date >= ?::date", filter.From.Format(dateLayout))
	}
	if filter.To != nil {
		add("entry_date <= ?::date", filter.To.Format(dateLayout))
	}
	if filter.Direction != nil {
		add("direction = ?", string(*filter.Direction))
	}
	if filter.Search != "" {
		add("(description ILIKE ? OR category ILIKE ? OR "+directionLabelSQL+" ILIKE ?)", "%"+likeEscaper.Replace(filter.Search)+"%")
	}

	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

// FindEntryByID retrieves an active entry by its ID.
func (r *PgxLedgerRepository) FindEntryByID(ctx context.Context, entryID string) (*domain.LedgerEntry, error) {
	query := `SELECT entry_id, ` + entryColumns + ` FROM ledger_entries WHERE entry_id = $1;`

	var id string
	m, err := scanEntry(r.Pool.QueryRow(ctx, query, entryID), &id)
	if err != nil {
		return nil, r.WrapError(err, "failed to find ledger entry "+entryID)
	}
	m.EntryID = id

	entry := mapping.ToDomainLedgerEntry(m)
	return &entry, nil
}

// FindEntries returns the entries matching the filter, newest first.
func (r *PgxLedgerRepository) FindEntries(ctx context.Context, filter portsrepo.LedgerEntryFilter) ([]domain.LedgerEntry, error) {
	where, args := whereClause(filter)
	query := `SELECT entry_id, ` + entryColumns + ` FROM ledger_entries` + where +
		` ORDER BY entry_date DESC, created_at DESC`
	if filter.Limit > 0 {
		args = append(args, filter.Limit, filter.Offset)
		query += fmt.Sprintf(" LIMIT $%d OFFSET $%d", len(args)-1, len(args))
	}

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, r.WrapError(err, "failed to query ledger entries")
	}
	defer rows.Close()

	entries := make([]domain.LedgerEntry, 0)
	for rows.Next() {
		var id string
		m, err := scanEntry(rows, &id)
		if err != nil {
			return nil, r.WrapError(err, "failed to scan ledger entry")
		}
		m.EntryID = id
		entries = append(entries, mapping.ToDomainLedgerEntry(m))
	}
	if err := rows.Err(); err != nil {
		return nil, r.WrapError(err, "error iterating ledger entries")
	}
	return entries, nil
}

// CountEntries counts the entries matching the filter.
func (r *PgxLedgerRepository) CountEntries(ctx context.Context, filter portsrepo.LedgerEntryFilter) (int, error) {
	where, args := whereClause(filter)
	var count int
	if err := r.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM ledger_entries`+where, args...).Scan(&count); err != nil {
		return 0, r.WrapError(err, "failed to count ledger entries")
	}
	return count, nil
}

// checkBalanceInTx serializes writers of one (school year, fund source) pair and
// rejects an outgoing entry exceeding the balance of the other rows of that pair.
func (r *PgxLedgerRepository) checkBalanceInTx(ctx context.Context, tx pgx.Tx, entry domain.LedgerEntry) error {
	if entry.Direction != domain.DirectionOut {
		return nil
	}
	src := entry.EffectiveFundSource()

	if _, err := tx.Exec(ctx, `SELECT pg_advisory_xact_lock(hashtext($1));`, entry.SchoolYearID+":"+string(src)); err != nil {
		return r.WrapError(err, "failed to lock fund source balance")
	}

	query := `
		SELECT COALESCE(SUM(CASE WHEN direction = 'in' THEN amount ELSE -amount END), 0)
		FROM ledger_entries
		WHERE school_year_id = $1 AND entry_id <> $2 AND ` + effectiveSourceSQL + ` = $3;`
	var available decimal.Decimal
	if err := tx.QueryRow(ctx, query, entry.SchoolYearID, entry.EntryID, string(src)).Scan(&available); err != nil {
		return r.WrapError(err, "failed to compute fund source balance")
	}

	return accounting.CheckAvailable(src, available, entry.Amount)
}

// raisesWithdrawal reports whether an update increases an outgoing amount above
// what is stored. Other updates never reduce a balance, even an overdrawn one.
func raisesWithdrawal(entry domain.LedgerEntry, stored decimal.Decimal) bool {
	return entry.Direction == domain.DirectionOut && entry.Amount.GreaterThan(stored)
}

// SaveEntry inserts an entry. Outgoing entries are re-checked against the balance
// of their fund source inside the same transaction.
func (r *PgxLedgerRepository) SaveEntry(ctx context.Context, entry domain.LedgerEntry) error {
	return r.InTx(ctx, func(tx pgx.Tx) error {
		if err := r.checkBalanceInTx(ctx, tx, entry); err != nil {
			return err
		}

		m := mapping.ToModelLedgerEntry(entry)
		query := `INSERT INTO ledger_entries (entry_id, ` + entryColumns + `)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16);`
		if _, err := tx.Exec(ctx, query, append([]any{m.EntryID}, entryArgs(m)...)...); err != nil {
			return r.WrapError(err, "failed to insert ledger entry "+m.EntryID)
		}
		return nil
	})
}

// UpdateEntry persists the date, amount and description of an entry. The row is
// locked first; only a raised withdrawal is re-checked against its fund source.
func (r *PgxLedgerRepository) UpdateEntry(ctx context.Context, entry domain.LedgerEntry) error {
	return r.InTx(ctx, func(tx pgx.Tx) error {
		var stored decimal.Decimal
		err := tx.QueryRow(ctx, `SELECT amount FROM ledger_entries WHERE entry_id = $1 FOR UPDATE;`, entry.EntryID).Scan(&stored)
		if err != nil {
			return r.WrapError(err, "failed to lock ledger entry "+entry.EntryID)
		}

		if raisesWithdrawal(entry, stored) {
			if err := r.checkBalanceInTx(ctx, tx, entry); err != nil {
				return err
			}
		}

		query := `
			UPDATE ledger_entries
			SET entry_date = $1, amount = $2, description = $3, last_updated_at = $4, last_updated_by = $5
			WHERE entry_id = $6;`
		_, err = tx.Exec(ctx, query,
			entry.Date,
			entry.Amount,
			entry.Description,
			entry.LastUpdatedAt,
			entry.LastUpdatedBy,
			entry.EntryID,
		)
		return r.WrapError(err, "failed to update ledger entry "+entry.EntryID)
	})
}

// MoveEntryToHistory removes an entry from the active table and stores its copy
// in the deleted history in one transaction.
func (r *PgxLedgerRepository) MoveEntryToHistory(ctx context.Context, deleted domain.DeletedLedgerEntry) error {
	return r.InTx(ctx, func(tx pgx.Tx) error {
		cmdTag, err := tx.Exec(ctx, `DELETE FROM ledger_entries WHERE entry_id = $1;`, deleted.OriginalID)
		if err != nil {
			return r.WrapError(err, "failed to delete ledger entry "+deleted.OriginalID)
		}
		if cmdTag.RowsAffected() == 0 {
			return apperrors.ErrNotFound
		}

		m := mapping.ToModelDeletedLedgerEntry(deleted)
		query := `INSERT INTO deleted_ledger_entries (
				deleted_entry_id, original_id, deleted_at, deleted_by_id, deleted_by_name, ` + entryColumns + `)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20);`
		args := append([]any{m.DeletedEntryID, m.OriginalID, m.DeletedAt, m.DeletedByID, m.DeletedByName}, entryArgs(m.Entry)...)
		if _, err := tx.Exec(ctx, query, args...); err != nil {
			return r.WrapError(err, "failed to archive ledger entry "+deleted.OriginalID)
		}
		return nil
	})
}

const deletedColumns = `deleted_entry_id, original_id, deleted_at, deleted_by_id, deleted_by_name, ` + entryColumns

func scanDeleted(row pgx.Row) (models.DeletedLedgerEntry, error) {
	var d models.DeletedLedgerEntry
	entry, err := scanEntry(row, &d.DeletedEntryID, &d.OriginalID, &d.DeletedAt, &d.DeletedByID, &d.DeletedByName)
	if err != nil {
		return d, err
	}
	d.Entry = entry
	return d, nil
}

// ListDeletedEntries returns a page of the deleted history, newest deletion first.
func (r *PgxLedgerRepository) ListDeletedEntries(ctx context.Context, offset, limit int, search string) ([]domain.DeletedLedgerEntry, int, error) {
	where := ""
	var args []any
	if search != "" {
		where = ` WHERE (description ILIKE $1 OR category ILIKE $1 OR ` + directionLabelSQL + ` ILIKE $1)`
		args = append(args, "%"+likeEscaper.Replace(search)+"%")
	}

	var total int
	if err := r.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM deleted_ledger_entries`+where, args...).Scan(&total); err != nil {
		return nil, 0, r.WrapError(err, "failed to count deleted entries")
	}

	args = append(args, limit, offset)
	query := fmt.Sprintf(`SELECT %s FROM deleted_ledger_entries%s ORDER BY deleted_at DESC LIMIT $%d OFFSET $%d`,
		deletedColumns, where, len(args)-1, len(args))
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, r.WrapError(err, "failed to query deleted entries")
	}
	defer rows.Close()

	entries := make([]domain.DeletedLedgerEntry, 0)
	for rows.Next() {
		m, err := scanDeleted(rows)
		if err != nil {
			return nil, 0, r.WrapError(err, "failed to scan deleted entry")
		}
		entries = append(entries, mapping.ToDomainDeletedLedgerEntry(m))
	}
	if err := rows.Err(); err != nil {
		return nil, 0, r.WrapError(err, "error iterating deleted entries")
	}
	return entries, total, nil
}

// FindDeletedEntryByID retrieves a history row by its ID.
func (r *PgxLedgerRepository) FindDeletedEntryByID(ctx context.Context, deletedEntryID string) (*domain.DeletedLedgerEntry, error) {
	query := `SELECT ` + deletedColumns + ` FROM deleted_ledger_entries WHERE deleted_entry_id = $1;`
	return r.findDeleted(ctx, "failed to find deleted entry "+deletedEntryID, query, deletedEntryID)
}

// FindDeletedEntryByOriginalID retrieves the latest history row of an active entry ID.
func (r *PgxLedgerRepository) FindDeletedEntryByOriginalID(ctx context.Context, originalID string) (*domain.DeletedLedgerEntry, error) {
	query := `SELECT ` + deletedColumns + ` FROM deleted_ledger_entries WHERE original_id = $1 ORDER BY deleted_at DESC LIMIT 1;`
	return r.findDeleted(ctx, "failed to find deleted entry of "+originalID, query, originalID)
}

func (r *PgxLedgerRepository) findDeleted(ctx context.Context, message, query string, args ...any) (*domain.DeletedLedgerEntry, error) {
	m, err := scanDeleted(r.Pool.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, r.WrapError(err, message)
	}
	d := mapping.ToDomainDeletedLedgerEntry(m)
	return &d, nil
}

// PurgeDeletedEntry permanently removes a history row.
func (r *PgxLedgerRepository) PurgeDeletedEntry(ctx context.Context, deletedEntryID string) error {
	cmdTag, err := r.Pool.Exec(ctx, `DELETE FROM deleted_ledger_entries WHERE deleted_entry_id = $1;`, deletedEntryID)
	if err != nil {
		return r.WrapError(err, "failed to purge deleted entry "+deletedEntryID)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
