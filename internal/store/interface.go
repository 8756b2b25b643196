package store

// Repository hands out read-only ledger snapshots. The pipeline works on a
// snapshot and never on the repository itself.
type Repository interface {
	Snapshot() (*Ledger, error)
	// Source describes where the snapshot comes from, for display.
	Source() string
}
