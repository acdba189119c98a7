package journal

import (
	"database/sql"
	"path/filepath"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"

	"github.com/smabank/bank/account"
)

func newTestSQLite(t *testing.T) (*SQLite, string) {
	t.Helper()

	dir := t.TempDir()
	path := filepath.Join(dir, "journal.db")

	j, err := NewSQLite(path)
	assert.NoError(t, err)

	return j, path
}

func TestSQLiteSchemaCreated(t *testing.T) {
	t.Parallel()

	j, path := newTestSQLite(t)
	assert.NoError(t, j.Close())

	db, err := sql.Open("sqlite3", path)
	assert.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	var name string
	err = db.QueryRow(`SELECT name FROM sqlite_master WHERE type='table' AND name='entries'`).Scan(&name)
	assert.NoError(t, err)
	assert.Equal(t, "entries", name)
}

func TestSQLiteRewriteAndEntries(t *testing.T) {
	t.Parallel()

	j, _ := newTestSQLite(t)
	t.Cleanup(func() { _ = j.Close() })

	in := []account.Entry{
		{Label: account.LabelDeposit, Amount: dec("100")},
		{Label: account.LabelWithdrawal, Amount: dec("33.33")},
	}
	assert.NoError(t, j.Rewrite("CH-100", in))

	got, err := j.Entries("CH-100")
	assert.NoError(t, err)
	assert.Len(t, got, 2)
	for i := range in {
		assert.Equal(t, in[i].Label, got[i].Label)
		assert.True(t, in[i].Amount.Equal(got[i].Amount), "entry %d", i)
	}
}

func TestSQLiteRewriteReplacesRows(t *testing.T) {
	t.Parallel()

	j, _ := newTestSQLite(t)
	t.Cleanup(func() { _ = j.Close() })

	assert.NoError(t, j.Rewrite("CH-100", []account.Entry{
		{Label: account.LabelDeposit, Amount: dec("10")},
		{Label: account.LabelDeposit, Amount: dec("20")},
	}))
	assert.NoError(t, j.Rewrite("CH-100", []account.Entry{
		{Label: account.LabelWithdrawal, Amount: dec("5")},
	}))

	got, err := j.Entries("CH-100")
	assert.NoError(t, err)
	assert.Len(t, got, 1)
	assert.Equal(t, account.LabelWithdrawal, got[0].Label)
}

func TestSQLiteAccountsIsolated(t *testing.T) {
	t.Parallel()

	j, _ := newTestSQLite(t)
	t.Cleanup(func() { _ = j.Close() })

	assert.NoError(t, j.Rewrite("CH-100", []account.Entry{{Label: account.LabelDeposit, Amount: dec("10")}}))
	assert.NoError(t, j.Rewrite("SV-200", []account.Entry{{Label: account.LabelDeposit, Amount: dec("99")}}))

	got, err := j.Entries("SV-200")
	assert.NoError(t, err)
	assert.Len(t, got, 1)
	assert.True(t, got[0].Amount.Equal(dec("99")))
}

func TestOpenSelectsBackend(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	j, err := Open("text", dir, "")
	assert.NoError(t, err)
	assert.IsType(t, &Text{}, j)
	assert.NoError(t, j.Close())

	j, err = Open("sqlite", "", filepath.Join(dir, "j.db"))
	assert.NoError(t, err)
	assert.IsType(t, &SQLite{}, j)
	assert.NoError(t, j.Close())

	_, err = Open("csv", dir, "")
	assert.Error(t, err)
}
