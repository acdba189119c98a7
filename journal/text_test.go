package journal

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/smabank/bank/account"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestTextRewriteFormat(t *testing.T) {
	t.Parallel()

	j, err := NewText(t.TempDir())
	assert.NoError(t, err)

	err = j.Rewrite("SV-200", []account.Entry{
		{Label: account.LabelDeposit, Amount: dec("50")},
		{Label: account.LabelInterest, Amount: dec("21")},
	})
	assert.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(j.dir, "SV-200.txt"))
	assert.NoError(t, err)
	assert.Equal(t, "Deposit: 50\nMonthly Interest: 21\n", string(data))
}

func TestTextEntriesRoundTrip(t *testing.T) {
	t.Parallel()

	j, err := NewText(t.TempDir())
	assert.NoError(t, err)

	in := []account.Entry{
		{Label: account.LabelDeposit, Amount: dec("50")},
		{Label: account.LabelWithdrawal, Amount: dec("12.25")},
		{Label: account.LabelPayment, Amount: dec("466.6666666666666667")},
	}
	assert.NoError(t, j.Rewrite("LN-300", in))

	got, err := j.Entries("LN-300")
	assert.NoError(t, err)
	assert.Len(t, got, len(in))
	for i := range in {
		assert.Equal(t, in[i].Label, got[i].Label)
		assert.True(t, in[i].Amount.Equal(got[i].Amount), "entry %d", i)
	}
}

func TestTextRewriteReplacesFile(t *testing.T) {
	t.Parallel()

	j, err := NewText(t.TempDir())
	assert.NoError(t, err)

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

func TestTextEntriesMissingAccount(t *testing.T) {
	t.Parallel()

	j, err := NewText(t.TempDir())
	assert.NoError(t, err)

	got, err := j.Entries("nobody")
	assert.NoError(t, err)
	assert.Empty(t, got)
}

func TestTextEntriesMalformedLine(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	j, err := NewText(dir)
	assert.NoError(t, err)

	assert.NoError(t, os.WriteFile(filepath.Join(dir, "CH-100.txt"), []byte("no separator here\n"), 0o644))

	_, err = j.Entries("CH-100")
	assert.ErrorIs(t, err, account.ErrMalformedRecord)
}
