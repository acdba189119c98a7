// Package account defines the bank account variants and the balance
// mutation rules that go with each of them. Balances only change through
// Deposit, Withdraw and the variant accrual operations; every mutation
// appends to the account's transaction journal and pushes the full log
// to the attached journal store.
package account

import (
	"github.com/shopspring/decimal"
)

// Kind identifies an account variant. The values double as the type tag
// written to the customer record file.
type Kind string

const (
	Checking Kind = "CheckingAccount"
	Saving   Kind = "SavingAccount"
	Loan     Kind = "LoanAccount"
)

// ParseKind maps an account-opening selector to a Kind. Both the numeric
// menu selectors ("1", "2", "3") and the full type tags are accepted.
func ParseKind(s string) (Kind, error) {
	switch s {
	case "1", "checking", string(Checking):
		return Checking, nil
	case "2", "saving", string(Saving):
		return Saving, nil
	case "3", "loan", string(Loan):
		return Loan, nil
	}
	return "", ErrInvalidAccountType
}

// Journal entry labels.
const (
	LabelDeposit    = "Deposit"
	LabelWithdrawal = "Withdrawal"
	LabelInterest   = "Monthly Interest"
	LabelPayment    = "Monthly Payment"
)

// Entry is one journal line: the operation label and the amount it moved.
type Entry struct {
	Label  string
	Amount decimal.Decimal
}

// Journal receives the account's full in-memory entry log after every
// balance mutation. Implementations rewrite their backing store in full
// on each call; see the journal package.
type Journal interface {
	Rewrite(accountNo string, entries []Entry) error
}

// Account is the contract shared by all variants. Withdraw is the only
// operation with variant-specific rules.
type Account interface {
	Number() string
	Kind() Kind

	// Balance returns the current balance. Read-only.
	Balance() decimal.Decimal

	// Deposit credits amount and journals the operation. Fails only for
	// non-positive amounts or a journal write error.
	Deposit(amount decimal.Decimal) error

	// Withdraw debits amount under the variant's rule. On failure the
	// balance is left untouched.
	Withdraw(amount decimal.Decimal) error

	// Entries returns a copy of the in-memory journal, in insertion order.
	Entries() []Entry

	// SetJournal attaches the store that receives the log after every
	// mutation. A nil journal disables persistence.
	SetJournal(Journal)
}

// base carries the state common to every variant.
type base struct {
	number  string
	balance decimal.Decimal
	entries []Entry
	journal Journal
}

func (b *base) Number() string { return b.number }

func (b *base) Balance() decimal.Decimal { return b.balance }

func (b *base) Entries() []Entry {
	out := make([]Entry, len(b.entries))
	copy(out, b.entries)
	return out
}

func (b *base) SetJournal(j Journal) { b.journal = j }

// record appends a journal entry and rewrites the persisted log.
func (b *base) record(label string, amount decimal.Decimal) error {
	b.entries = append(b.entries, Entry{Label: label, Amount: amount})
	if b.journal == nil {
		return nil
	}
	return b.journal.Rewrite(b.number, b.entries)
}

func (b *base) Deposit(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return ErrBadAmount
	}
	b.balance = b.balance.Add(amount)
	return b.record(LabelDeposit, amount)
}
