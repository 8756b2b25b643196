package store

import (
	"fmt"
	"slices"

	"github.com/hance08/optbank/internal/model"
)

// Ledger is an immutable id -> account mapping. An id may map to nil, which
// keeps a tombstoned key distinct from a key that was never inserted.
type Ledger struct {
	accounts map[model.AccountID]*model.Account
}

func NewLedger(entries ...Entry) (*Ledger, error) {
	accounts := make(map[model.AccountID]*model.Account, len(entries))

	for _, e := range entries {
		if _, exists := accounts[e.ID]; exists {
			return nil, fmt.Errorf("failed to add account %d: %w", e.ID, ErrDuplicateAccount)
		}
		if e.Account != nil && e.Account.ID != e.ID {
			return nil, fmt.Errorf("%w: key %d holds account %d", ErrInvalidEntry, e.ID, e.Account.ID)
		}
		accounts[e.ID] = cloneAccount(e.Account)
	}

	return &Ledger{accounts: accounts}, nil
}

// Get returns the stored account, which is nil for a tombstone, and whether
// the key exists at all. The returned account is a copy.
func (l *Ledger) Get(id model.AccountID) (*model.Account, bool) {
	acc, ok := l.accounts[id]
	return cloneAccount(acc), ok
}

func (l *Ledger) Status(id model.AccountID) EntryStatus {
	acc, ok := l.accounts[id]
	switch {
	case !ok:
		return EntryMissing
	case acc == nil:
		return EntryTombstoned
	default:
		return EntryPresent
	}
}

func (l *Ledger) IDs() []model.AccountID {
	ids := make([]model.AccountID, 0, len(l.accounts))
	for id := range l.accounts {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

func (l *Ledger) Len() int {
	return len(l.accounts)
}

// Entries returns the ledger contents ordered by id.
func (l *Ledger) Entries() []Entry {
	ids := l.IDs()
	entries := make([]Entry, 0, len(ids))
	for _, id := range ids {
		entries = append(entries, Entry{ID: id, Account: cloneAccount(l.accounts[id])})
	}
	return entries
}

func cloneAccount(acc *model.Account) *model.Account {
	if acc == nil {
		return nil
	}
	out := &model.Account{ID: acc.ID}
	if acc.Balance != nil {
		b := *acc.Balance
		if acc.Balance.Amount != nil {
			amount := *acc.Balance.Amount
			b.Amount = &amount
		}
		out.Balance = &b
	}
	return out
}
