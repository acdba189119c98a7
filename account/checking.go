package account

import "github.com/shopspring/decimal"

// CheckingAccount supports overdraft: withdrawals beyond the balance draw
// the shortfall from a pre-approved credit limit and debit a fixed fee.
// The withdrawal ceiling is TotalBalance = balance + credit limit.
type CheckingAccount struct {
	base
	creditLimit  decimal.Decimal
	overdraftFee decimal.Decimal
	owner        string
}

// NewChecking opens a checking account. owner is the holder's national ID
// token; it is not persisted in the record file.
func NewChecking(number string, balance, creditLimit, overdraftFee decimal.Decimal, owner string) *CheckingAccount {
	return &CheckingAccount{
		base:         base{number: number, balance: balance},
		creditLimit:  creditLimit,
		overdraftFee: overdraftFee,
		owner:        owner,
	}
}

func (a *CheckingAccount) Kind() Kind { return Checking }

// Withdraw debits amount. When the balance covers it, the credit limit is
// untouched. When it does not but balance+credit does, the balance is
// drained, the shortfall comes out of the credit limit, and the overdraft
// fee is debited on top, leaving the balance at -fee. Anything beyond
// TotalBalance fails with ErrInsufficientFunds and changes nothing.
func (a *CheckingAccount) Withdraw(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return ErrBadAmount
	}
	switch {
	case a.balance.GreaterThanOrEqual(amount):
		a.balance = a.balance.Sub(amount)
	case a.TotalBalance().GreaterThanOrEqual(amount):
		shortfall := amount.Sub(a.balance)
		a.creditLimit = a.creditLimit.Sub(shortfall)
		a.balance = a.overdraftFee.Neg()
	default:
		return ErrInsufficientFunds
	}
	return a.record(LabelWithdrawal, amount)
}

// OverdraftFacility returns the remaining credit limit.
func (a *CheckingAccount) OverdraftFacility() decimal.Decimal { return a.creditLimit }

// TotalBalance returns balance plus remaining credit limit.
func (a *CheckingAccount) TotalBalance() decimal.Decimal { return a.balance.Add(a.creditLimit) }

func (a *CheckingAccount) OverdraftFee() decimal.Decimal { return a.overdraftFee }

func (a *CheckingAccount) Owner() string { return a.owner }
