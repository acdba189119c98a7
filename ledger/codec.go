// Package ledger implements the customer record codec: the labeled-line
// block format that account state is persisted in. A record file holds an
// optional customer profile block followed by one block per account, each
// terminated by a separator line. Decoding is the strict inverse of
// encoding; any deviation in field order or count is a malformed record.
package ledger

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/smabank/bank/account"
)

const (
	fieldAccountNo = "Account Number"
	fieldType      = "Account Type"
	fieldBalance   = "Balance"
	fieldCredit    = "Credit Limit"
	fieldFee       = "Overdraft Fee"
	fieldRate      = "Interest Rate"
	fieldDuration  = "Loan Duration"
	fieldPrincipal = "Principal Amount"

	fieldUsername  = "Username"
	fieldFirstName = "First Name"
	fieldLastName  = "Last Name"
	fieldAddress   = "Address"
	fieldCNIC      = "CNIC"

	separator = "-----"
)

// Profile is the customer header block of a record file.
type Profile struct {
	Username  string
	FirstName string
	LastName  string
	Address   string
	CNIC      string
}

// EncodeProfile writes the customer header block.
func EncodeProfile(w io.Writer, p Profile) error {
	var b strings.Builder
	fmt.Fprintf(&b, "%s: %s\n", fieldUsername, p.Username)
	fmt.Fprintf(&b, "%s: %s\n", fieldFirstName, p.FirstName)
	fmt.Fprintf(&b, "%s: %s\n", fieldLastName, p.LastName)
	fmt.Fprintf(&b, "%s: %s\n", fieldAddress, p.Address)
	fmt.Fprintf(&b, "%s: %s\n", fieldCNIC, p.CNIC)
	b.WriteString(separator + "\n")
	_, err := io.WriteString(w, b.String())
	return err
}

// Encode writes one account as a labeled-line block: account number, type
// tag, balance, then the variant fields, terminated by the separator.
func Encode(w io.Writer, a account.Account) error {
	var b strings.Builder
	fmt.Fprintf(&b, "%s: %s\n", fieldAccountNo, a.Number())
	fmt.Fprintf(&b, "%s: %s\n", fieldType, a.Kind())
	fmt.Fprintf(&b, "%s: %s\n", fieldBalance, a.Balance())

	switch acc := a.(type) {
	case *account.CheckingAccount:
		fmt.Fprintf(&b, "%s: %s\n", fieldCredit, acc.OverdraftFacility())
		fmt.Fprintf(&b, "%s: %s\n", fieldFee, acc.OverdraftFee())
	case *account.SavingAccount:
		fmt.Fprintf(&b, "%s: %s\n", fieldRate, acc.InterestRate())
	case *account.LoanAccount:
		fmt.Fprintf(&b, "%s: %s\n", fieldRate, acc.InterestRate())
		fmt.Fprintf(&b, "%s: %d\n", fieldDuration, acc.Duration())
		fmt.Fprintf(&b, "%s: %s\n", fieldPrincipal, acc.Principal())
	default:
		return fmt.Errorf("%w: %T", account.ErrInvalidAccountType, a)
	}

	b.WriteString(separator + "\n")
	_, err := io.WriteString(w, b.String())
	return err
}

// Decode reads a whole record file: the profile block, if present, and
// every account block. Accounts come back in file order with empty
// in-memory journals; the transaction journal is persisted separately.
func Decode(r io.Reader) (*Profile, []account.Account, error) {
	sc := bufio.NewScanner(r)

	var (
		profile  *Profile
		accounts []account.Account
		block    []string
	)
	for sc.Scan() {
		line := strings.TrimRight(sc.Text(), "\r")
		if line == separator {
			if len(block) == 0 {
				continue
			}
			if strings.HasPrefix(block[0], fieldUsername+":") {
				p, err := decodeProfile(block)
				if err != nil {
					return nil, nil, err
				}
				profile = p
			} else {
				a, err := decodeAccount(block)
				if err != nil {
					return nil, nil, err
				}
				accounts = append(accounts, a)
			}
			block = block[:0]
			continue
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		block = append(block, line)
	}
	if err := sc.Err(); err != nil {
		return nil, nil, err
	}
	if len(block) > 0 {
		return nil, nil, fmt.Errorf("%w: unterminated block", account.ErrMalformedRecord)
	}
	return profile, accounts, nil
}

func decodeProfile(block []string) (*Profile, error) {
	labels := []string{fieldUsername, fieldFirstName, fieldLastName, fieldAddress, fieldCNIC}
	if len(block) != len(labels) {
		return nil, fmt.Errorf("%w: profile block has %d fields, want %d",
			account.ErrMalformedRecord, len(block), len(labels))
	}
	vals := make([]string, len(labels))
	for i, label := range labels {
		v, err := fieldValue(block[i], label)
		if err != nil {
			return nil, err
		}
		vals[i] = v
	}
	return &Profile{
		Username:  vals[0],
		FirstName: vals[1],
		LastName:  vals[2],
		Address:   vals[3],
		CNIC:      vals[4],
	}, nil
}

func decodeAccount(block []string) (account.Account, error) {
	if len(block) < 3 {
		return nil, fmt.Errorf("%w: account block has %d fields", account.ErrMalformedRecord, len(block))
	}
	number, err := fieldValue(block[0], fieldAccountNo)
	if err != nil {
		return nil, err
	}
	typeTag, err := fieldValue(block[1], fieldType)
	if err != nil {
		return nil, err
	}
	balance, err := decimalField(block[2], fieldBalance)
	if err != nil {
		return nil, err
	}

	rest := block[3:]
	switch account.Kind(typeTag) {
	case account.Checking:
		if len(rest) != 2 {
			return nil, fieldCountErr(typeTag, len(rest), 2)
		}
		credit, err := decimalField(rest[0], fieldCredit)
		if err != nil {
			return nil, err
		}
		fee, err := decimalField(rest[1], fieldFee)
		if err != nil {
			return nil, err
		}
		return account.NewChecking(number, balance, credit, fee, ""), nil

	case account.Saving:
		if len(rest) != 1 {
			return nil, fieldCountErr(typeTag, len(rest), 1)
		}
		rate, err := decimalField(rest[0], fieldRate)
		if err != nil {
			return nil, err
		}
		return account.NewSaving(number, balance, rate), nil

	case account.Loan:
		if len(rest) != 3 {
			return nil, fieldCountErr(typeTag, len(rest), 3)
		}
		rate, err := decimalField(rest[0], fieldRate)
		if err != nil {
			return nil, err
		}
		durStr, err := fieldValue(rest[1], fieldDuration)
		if err != nil {
			return nil, err
		}
		duration, err := strconv.Atoi(durStr)
		if err != nil {
			return nil, fmt.Errorf("%w: %s %q", account.ErrMalformedRecord, fieldDuration, durStr)
		}
		principal, err := decimalField(rest[2], fieldPrincipal)
		if err != nil {
			return nil, err
		}
		return account.NewLoan(number, balance, rate, duration, principal), nil
	}
	return nil, fmt.Errorf("%w: %q", account.ErrInvalidAccountType, typeTag)
}

// fieldValue checks the line carries the expected label and returns the
// trimmed value after the colon.
func fieldValue(line, label string) (string, error) {
	prefix := label + ":"
	if !strings.HasPrefix(line, prefix) {
		return "", fmt.Errorf("%w: want %q field, got %q", account.ErrMalformedRecord, label, line)
	}
	return strings.TrimSpace(line[len(prefix):]), nil
}

func decimalField(line, label string) (decimal.Decimal, error) {
	v, err := fieldValue(line, label)
	if err != nil {
		return decimal.Decimal{}, err
	}
	d, err := decimal.NewFromString(v)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("%w: %s %q", account.ErrMalformedRecord, label, v)
	}
	return d, nil
}

func fieldCountErr(typeTag string, got, want int) error {
	return fmt.Errorf("%w: %s block has %d variant fields, want %d",
		account.ErrMalformedRecord, typeTag, got, want)
}
