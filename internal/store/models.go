package store

import "github.com/hance08/optbank/internal/model"

type EntryStatus int

const (
	EntryMissing EntryStatus = iota
	EntryTombstoned
	EntryPresent
)

func (s EntryStatus) String() string {
	switch s {
	case EntryTombstoned:
		return "tombstoned"
	case EntryPresent:
		return "present"
	default:
		return "missing"
	}
}

// Entry is one key of the ledger. A nil Account is a tombstone.
type Entry struct {
	ID      model.AccountID
	Account *model.Account
}

func AccountEntry(acc *model.Account) Entry {
	return Entry{ID: acc.ID, Account: acc}
}

func TombstoneEntry(id model.AccountID) Entry {
	return Entry{ID: id}
}
