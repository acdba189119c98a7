package statement

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/tealeg/xlsx"

	"github.com/smabank/bank/account"
	"github.com/smabank/bank/ledger"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func testProfile() ledger.Profile {
	return ledger.Profile{
		Username:  "shussain",
		FirstName: "Shayan",
		LastName:  "Hussain",
		Address:   "12 Mall Road",
		CNIC:      "42101-1234567-1",
	}
}

func TestBuildSetsLoanSummary(t *testing.T) {
	t.Parallel()

	loan := account.NewLoan("LN-300", dec("5000"), dec("0.01"), 12, dec("5000"))
	s := Build(testProfile(), loan, nil)
	assert.NotNil(t, s.Loan)
	assert.Equal(t, 12, s.Loan.Duration)

	sav := account.NewSaving("SV-200", dec("100"), dec("0.02"))
	s = Build(testProfile(), sav, nil)
	assert.Nil(t, s.Loan)
}

func TestWritePDF(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "statement.pdf")

	s := Build(testProfile(), account.NewChecking("CH-100", dec("95"), dec("50"), dec("5"), ""), []account.Entry{
		{Label: account.LabelDeposit, Amount: dec("100")},
		{Label: account.LabelWithdrawal, Amount: dec("5")},
	})
	assert.NoError(t, s.WritePDF(path))

	info, err := os.Stat(path)
	assert.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestWriteXLSX(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "statement.xlsx")

	s := Build(testProfile(), account.NewLoan("LN-300", dec("5000"), dec("0.01"), 12, dec("5000")), []account.Entry{
		{Label: account.LabelPayment, Amount: dec("466.67")},
	})
	assert.NoError(t, s.WriteXLSX(path))

	file, err := xlsx.OpenFile(path)
	assert.NoError(t, err)
	assert.Len(t, file.Sheets, 1)

	sheet := file.Sheets[0]
	// Header pairs (7 with the loan block), table header, one entry row.
	assert.Len(t, sheet.Rows, 9)
	assert.Equal(t, "Holder", sheet.Rows[0].Cells[0].Value)
	last := sheet.Rows[len(sheet.Rows)-1]
	assert.Equal(t, "Monthly Payment", last.Cells[0].Value)
	assert.Equal(t, "466.67", last.Cells[1].Value)
}
