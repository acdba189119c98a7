package ledger

import (
	"bytes"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/smabank/bank/account"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestEncodeCheckingBlock(t *testing.T) {
	t.Parallel()

	a := account.NewChecking("CH-100", dec("250.75"), dec("50"), dec("5"), "42101")

	var buf bytes.Buffer
	assert.NoError(t, Encode(&buf, a))

	want := strings.Join([]string{
		"Account Number: CH-100",
		"Account Type: CheckingAccount",
		"Balance: 250.75",
		"Credit Limit: 50",
		"Overdraft Fee: 5",
		"-----",
		"",
	}, "\n")
	assert.Equal(t, want, buf.String())
}

func TestRoundTripAllVariants(t *testing.T) {
	t.Parallel()

	accounts := []account.Account{
		account.NewChecking("CH-100", dec("250.75"), dec("50"), dec("5"), ""),
		account.NewSaving("SV-200", dec("1000"), dec("0.02")),
		account.NewLoan("LN-300", dec("4533.333"), dec("0.01"), 12, dec("5000")),
	}

	var buf bytes.Buffer
	for _, a := range accounts {
		assert.NoError(t, Encode(&buf, a))
	}

	_, got, err := Decode(&buf)
	assert.NoError(t, err)
	assert.Len(t, got, 3)

	chk, ok := got[0].(*account.CheckingAccount)
	assert.True(t, ok)
	assert.Equal(t, "CH-100", chk.Number())
	assert.True(t, chk.Balance().Equal(dec("250.75")))
	assert.True(t, chk.OverdraftFacility().Equal(dec("50")))
	assert.True(t, chk.OverdraftFee().Equal(dec("5")))

	sav, ok := got[1].(*account.SavingAccount)
	assert.True(t, ok)
	assert.Equal(t, "SV-200", sav.Number())
	assert.True(t, sav.Balance().Equal(dec("1000")))
	assert.True(t, sav.InterestRate().Equal(dec("0.02")))

	loan, ok := got[2].(*account.LoanAccount)
	assert.True(t, ok)
	assert.Equal(t, "LN-300", loan.Number())
	assert.True(t, loan.Balance().Equal(dec("4533.333")))
	assert.True(t, loan.InterestRate().Equal(dec("0.01")))
	assert.Equal(t, 12, loan.Duration())
	assert.True(t, loan.Principal().Equal(dec("5000")))
}

func TestDecodeDropsJournal(t *testing.T) {
	t.Parallel()

	a := account.NewSaving("SV-200", dec("1000"), dec("0.02"))
	assert.NoError(t, a.Deposit(dec("50")))

	var buf bytes.Buffer
	assert.NoError(t, Encode(&buf, a))

	_, got, err := Decode(&buf)
	assert.NoError(t, err)
	assert.Len(t, got, 1)
	// The journal is persisted separately and does not ride along.
	assert.Empty(t, got[0].Entries())
}

func TestProfileRoundTrip(t *testing.T) {
	t.Parallel()

	p := Profile{
		Username:  "shussain",
		FirstName: "Shayan",
		LastName:  "Hussain",
		Address:   "12 Mall Road",
		CNIC:      "42101-1234567-1",
	}

	var buf bytes.Buffer
	assert.NoError(t, EncodeProfile(&buf, p))
	assert.NoError(t, Encode(&buf, account.NewSaving("SV-200", dec("1000"), dec("0.02"))))

	got, accounts, err := Decode(&buf)
	assert.NoError(t, err)
	assert.NotNil(t, got)
	assert.Equal(t, p, *got)
	assert.Len(t, accounts, 1)
}

func TestDecodeUnknownTypeTag(t *testing.T) {
	t.Parallel()

	in := strings.Join([]string{
		"Account Number: X-1",
		"Account Type: PlatinumAccount",
		"Balance: 10",
		"-----",
		"",
	}, "\n")

	_, _, err := Decode(strings.NewReader(in))
	assert.ErrorIs(t, err, account.ErrInvalidAccountType)
}

func TestDecodeFieldCountMismatch(t *testing.T) {
	t.Parallel()

	// A saving block with a stray extra field.
	in := strings.Join([]string{
		"Account Number: SV-200",
		"Account Type: SavingAccount",
		"Balance: 1000",
		"Interest Rate: 0.02",
		"Overdraft Fee: 5",
		"-----",
		"",
	}, "\n")

	_, _, err := Decode(strings.NewReader(in))
	assert.ErrorIs(t, err, account.ErrMalformedRecord)
}

func TestDecodeWrongFieldOrder(t *testing.T) {
	t.Parallel()

	in := strings.Join([]string{
		"Account Type: SavingAccount",
		"Account Number: SV-200",
		"Balance: 1000",
		"Interest Rate: 0.02",
		"-----",
		"",
	}, "\n")

	_, _, err := Decode(strings.NewReader(in))
	assert.ErrorIs(t, err, account.ErrMalformedRecord)
}

func TestDecodeBadDecimal(t *testing.T) {
	t.Parallel()

	in := strings.Join([]string{
		"Account Number: SV-200",
		"Account Type: SavingAccount",
		"Balance: lots",
		"Interest Rate: 0.02",
		"-----",
		"",
	}, "\n")

	_, _, err := Decode(strings.NewReader(in))
	assert.ErrorIs(t, err, account.ErrMalformedRecord)
}

func TestDecodeUnterminatedBlock(t *testing.T) {
	t.Parallel()

	in := strings.Join([]string{
		"Account Number: SV-200",
		"Account Type: SavingAccount",
		"Balance: 1000",
		"Interest Rate: 0.02",
	}, "\n")

	_, _, err := Decode(strings.NewReader(in))
	assert.ErrorIs(t, err, account.ErrMalformedRecord)
}

func TestDecodeEmptyInput(t *testing.T) {
	t.Parallel()

	p, accounts, err := Decode(strings.NewReader(""))
	assert.NoError(t, err)
	assert.Nil(t, p)
	assert.Empty(t, accounts)
}
