// Package journal persists per-account transaction logs. Two backends
// are available: a line-oriented text file per account, and a single
// sqlite database. Both rewrite an account's log in full on every save;
// the in-memory log on the account is the source of truth.
package journal

import (
	"fmt"

	"github.com/smabank/bank/account"
)

// Store persists one account's full entry log and reads it back for
// history and statement views.
type Store interface {
	account.Journal

	// Entries returns the persisted log for an account, in insertion
	// order. An account with no persisted log yields an empty slice.
	Entries(accountNo string) ([]account.Entry, error)

	Close() error
}

// Open returns the store selected by typ: "text" with its directory, or
// "sqlite" with its database path.
func Open(typ, dir, dbPath string) (Store, error) {
	switch typ {
	case "text":
		return NewText(dir)
	case "sqlite":
		return NewSQLite(dbPath)
	}
	return nil, fmt.Errorf("unknown journal type %q", typ)
}
