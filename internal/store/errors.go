package store

import "errors"

var (
	ErrDuplicateAccount = errors.New("account already exists")
	ErrInvalidEntry     = errors.New("invalid ledger entry")
)
