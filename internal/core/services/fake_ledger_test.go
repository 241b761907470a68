package services_test

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/SscSPs/school_fund_ledger/internal/apperrors"
	"github.com/SscSPs/school_fund_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/school_fund_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/school_fund_ledger/internal/utils/accounting"
)

// memLedger is an in-memory LedgerRepositoryFacade that re-checks new and
// raised withdrawals the way the database repository does.
type memLedger struct {
	mu      sync.Mutex
	entries map[string]domain.LedgerEntry
	deleted []domain.DeletedLedgerEntry
}

func newMemLedger() *memLedger {
	return &memLedger{entries: make(map[string]domain.LedgerEntry)}
}

var _ portsrepo.LedgerRepositoryFacade = (*memLedger)(nil)

func (m *memLedger) FindEntryByID(_ context.Context, entryID string) (*domain.LedgerEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.entries[entryID]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &e, nil
}

func (m *memLedger) match(filter portsrepo.LedgerEntryFilter) []domain.LedgerEntry {
	var out []domain.LedgerEntry
	for _, e := range m.entries {
		if filter.SchoolYearID != "" && e.SchoolYearID != filter.SchoolYearID {
			continue
		}
		if filter.From != nil && filter.To != nil && !accounting.InDateRange(e.Date, *filter.From, *filter.To) {
			continue
		}
		if filter.Direction != nil && e.Direction != *filter.Direction {
			continue
		}
		if filter.Search != "" && !strings.Contains(strings.ToLower(e.Description+" "+e.Category), strings.ToLower(filter.Search)) {
			continue
		}
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Date.Equal(out[j].Date) {
			return out[i].Date.After(out[j].Date)
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

func (m *memLedger) FindEntries(_ context.Context, filter portsrepo.LedgerEntryFilter) ([]domain.LedgerEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := m.match(filter)
	if filter.Offset > 0 {
		if filter.Offset >= len(out) {
			return []domain.LedgerEntry{}, nil
		}
		out = out[filter.Offset:]
	}
	if filter.Limit > 0 && filter.Limit < len(out) {
		out = out[:filter.Limit]
	}
	return out, nil
}

func (m *memLedger) CountEntries(_ context.Context, filter portsrepo.LedgerEntryFilter) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.match(filter)), nil
}

func (m *memLedger) recheck(entry domain.LedgerEntry) error {
	if entry.Direction != domain.DirectionOut {
		return nil
	}
	var others []domain.LedgerEntry
	for id, e := range m.entries {
		if id != entry.EntryID && e.SchoolYearID == entry.SchoolYearID {
			others = append(others, e)
		}
	}
	balances := accounting.ComputeBalances(entry.SchoolYearID, others)
	return accounting.ValidateWithdrawal(entry, balances)
}

func (m *memLedger) SaveEntry(_ context.Context, entry domain.LedgerEntry) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.recheck(entry); err != nil {
		return err
	}
	m.entries[entry.EntryID] = entry
	return nil
}

func (m *memLedger) UpdateEntry(_ context.Context, entry domain.LedgerEntry) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	stored, ok := m.entries[entry.EntryID]
	if !ok {
		return apperrors.ErrNotFound
	}
	if entry.Amount.GreaterThan(stored.Amount) {
		if err := m.recheck(entry); err != nil {
			return err
		}
	}
	m.entries[entry.EntryID] = entry
	return nil
}

func (m *memLedger) MoveEntryToHistory(_ context.Context, deleted domain.DeletedLedgerEntry) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.entries[deleted.OriginalID]; !ok {
		return apperrors.ErrNotFound
	}
	delete(m.entries, deleted.OriginalID)
	m.deleted = append([]domain.DeletedLedgerEntry{deleted}, m.deleted...)
	return nil
}

func (m *memLedger) ListDeletedEntries(_ context.Context, offset, limit int, search string) ([]domain.DeletedLedgerEntry, int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []domain.DeletedLedgerEntry
	for _, d := range m.deleted {
		haystack := strings.ToLower(d.Entry.Description + " " + d.Entry.Category + " " + d.Entry.Direction.Label())
		if search == "" || strings.Contains(haystack, strings.ToLower(search)) {
			out = append(out, d)
		}
	}
	total := len(out)
	if offset >= total {
		return []domain.DeletedLedgerEntry{}, total, nil
	}
	out = out[offset:]
	if limit > 0 && limit < len(out) {
		out = out[:limit]
	}
	return out, total, nil
}

func (m *memLedger) FindDeletedEntryByID(_ context.Context, deletedEntryID string) (*domain.DeletedLedgerEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, d := range m.deleted {
		if d.DeletedEntryID == deletedEntryID {
			return &d, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (m *memLedger) FindDeletedEntryByOriginalID(_ context.Context, originalID string) (*domain.DeletedLedgerEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, d := range m.deleted {
		if d.OriginalID == originalID {
			return &d, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (m *memLedger) PurgeDeletedEntry(_ context.Context, deletedEntryID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, d := range m.deleted {
		if d.DeletedEntryID == deletedEntryID {
			m.deleted = append(m.deleted[:i], m.deleted[i+1:]...)
			return nil
		}
	}
	return apperrors.ErrNotFound
}
