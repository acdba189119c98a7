package journal

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
	"github.com/shopspring/decimal"

	"github.com/smabank/bank/account"
	"github.com/smabank/bank/pkg/id"
)

// SQLite keeps every account's journal in one database. Amounts are
// stored as decimal strings to keep them exact.
type SQLite struct {
	db *sql.DB
}

func NewSQLite(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}

	if _, err := db.Exec(schema); err != nil {
		return nil, err
	}

	return &SQLite{db: db}, nil
}

// Rewrite replaces the account's rows with the full in-memory log, in
// one transaction.
func (j *SQLite) Rewrite(accountNo string, entries []account.Entry) error {
	tx, err := j.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM entries WHERE account_no = ?`, accountNo); err != nil {
		return err
	}
	for i, e := range entries {
		_, err := tx.Exec(`
			INSERT INTO entries (entry_id, account_no, seq, label, amount)
			VALUES (?, ?, ?, ?, ?)`,
			id.New(), accountNo, i, e.Label, e.Amount.String(),
		)
		if err != nil {
			return err
		}
	}
	return tx.Commit()
}

func (j *SQLite) Entries(accountNo string) ([]account.Entry, error) {
	rows, err := j.db.Query(`
		SELECT label, amount
		FROM entries
		WHERE account_no = ?
		ORDER BY seq ASC`, accountNo)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []account.Entry
	for rows.Next() {
		var (
			label  string
			amount string
		)
		if err := rows.Scan(&label, &amount); err != nil {
			return nil, err
		}
		d, err := decimal.NewFromString(amount)
		if err != nil {
			return nil, fmt.Errorf("journal row for %s: %w", accountNo, err)
		}
		out = append(out, account.Entry{Label: label, Amount: d})
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (j *SQLite) Close() error {
	return j.db.Close()
}
