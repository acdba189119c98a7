// Package customer holds the per-customer account registry: the customer
// profile, the live account collection, and the load/save orchestration
// against the record codec. Record files live one per customer, keyed by
// the national ID token (CNIC).
package customer

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/shopspring/decimal"

	"github.com/smabank/bank/account"
	"github.com/smabank/bank/ledger"
	"github.com/smabank/bank/pkg/id"
)

// Registry owns one customer's accounts and their persistence.
type Registry struct {
	dir      string
	profile  ledger.Profile
	accounts []account.Account
	journal  account.Journal
}

// New creates a registry backed by record files under dir. The profile
// needs at least the CNIC; the rest can be filled in by Load or
// SetProfile.
func New(dir string, profile ledger.Profile) *Registry {
	return &Registry{dir: dir, profile: profile}
}

// SetJournal attaches the journal store to the registry and to every
// account it currently holds.
func (r *Registry) SetJournal(j account.Journal) {
	r.journal = j
	for _, a := range r.accounts {
		a.SetJournal(j)
	}
}

func (r *Registry) Profile() ledger.Profile { return r.profile }

// SetProfile replaces the customer profile, keeping the CNIC key.
func (r *Registry) SetProfile(p ledger.Profile) {
	p.CNIC = r.profile.CNIC
	r.profile = p
}

// Accounts returns the live account collection in opening order.
func (r *Registry) Accounts() []account.Account {
	out := make([]account.Account, len(r.accounts))
	copy(out, r.accounts)
	return out
}

// Find returns the first account with the given number, or nil. A miss
// is a normal negative result, not an error.
func (r *Registry) Find(accountNo string) account.Account {
	for _, a := range r.accounts {
		if a.Number() == accountNo {
			return a
		}
	}
	return nil
}

// CreateSpec carries the field values gathered by the account-opening
// surface. Fields not used by the chosen variant are ignored.
type CreateSpec struct {
	Number       string // generated when empty
	Balance      decimal.Decimal
	CreditLimit  decimal.Decimal // checking
	OverdraftFee decimal.Decimal // checking
	InterestRate decimal.Decimal // saving, loan
	Duration     int             // loan
	Principal    decimal.Decimal // loan
}

// Create opens a new account of the given kind and appends it to the
// collection. An unrecognized kind fails with ErrInvalidAccountType.
func (r *Registry) Create(kind account.Kind, spec CreateSpec) (account.Account, error) {
	number := spec.Number
	if number == "" {
		number = id.New()
	}

	var a account.Account
	switch kind {
	case account.Checking:
		a = account.NewChecking(number, spec.Balance, spec.CreditLimit, spec.OverdraftFee, r.profile.CNIC)
	case account.Saving:
		a = account.NewSaving(number, spec.Balance, spec.InterestRate)
	case account.Loan:
		a = account.NewLoan(number, spec.Balance, spec.InterestRate, spec.Duration, spec.Principal)
	default:
		return nil, fmt.Errorf("%w: %q", account.ErrInvalidAccountType, kind)
	}

	a.SetJournal(r.journal)
	r.accounts = append(r.accounts, a)
	return a, nil
}

// LoanSummary returns the loan-status read model for the given account.
// A missing account, or one that is not a loan, is ErrAccountNotFound.
func (r *Registry) LoanSummary(accountNo string) (account.LoanSummary, error) {
	loan, ok := r.Find(accountNo).(*account.LoanAccount)
	if !ok {
		return account.LoanSummary{}, account.ErrAccountNotFound
	}
	return loan.Summary(), nil
}

// RecordPath is the customer's record file, keyed by CNIC.
func (r *Registry) RecordPath() string {
	return filepath.Join(r.dir, r.profile.CNIC+".txt")
}

// Load reads the record file and replaces the in-memory collection with
// the decoded accounts. A missing file leaves the registry empty. The
// accounts come back with empty in-memory journals; the persisted
// journal stays readable through the journal store. On a decode error
// the current collection is left untouched.
func (r *Registry) Load() error {
	f, err := os.Open(r.RecordPath())
	if err != nil {
		if os.IsNotExist(err) {
			r.accounts = nil
			return nil
		}
		return err
	}
	defer f.Close()

	profile, accounts, err := ledger.Decode(f)
	if err != nil {
		return fmt.Errorf("load %s: %w", r.RecordPath(), err)
	}

	if profile != nil {
		r.profile = *profile
	}
	for _, a := range accounts {
		a.SetJournal(r.journal)
	}
	r.accounts = accounts
	return nil
}

// Save rewrites the record file in full: profile block first, then every
// account. The write goes through a temp file and rename so a crash
// never leaves a half-written record behind.
func (r *Registry) Save() error {
	if err := os.MkdirAll(r.dir, 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}

	path := r.RecordPath()
	tmp := path + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return err
	}

	if err := ledger.EncodeProfile(f, r.profile); err != nil {
		f.Close()
		return err
	}
	for _, a := range r.accounts {
		if err := ledger.Encode(f, a); err != nil {
			f.Close()
			return err
		}
	}
	if err := f.Close(); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}
