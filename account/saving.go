package account

import "github.com/shopspring/decimal"

// SavingAccount earns monthly interest and never overdrafts.
type SavingAccount struct {
	base
	rate decimal.Decimal
}

// NewSaving opens a saving account. rate is a decimal fraction, e.g. 0.02
// for 2% per month.
func NewSaving(number string, balance, rate decimal.Decimal) *SavingAccount {
	return &SavingAccount{
		base: base{number: number, balance: balance},
		rate: rate,
	}
}

func (a *SavingAccount) Kind() Kind { return Saving }

// Withdraw debits amount, failing with ErrInsufficientFunds when it
// exceeds the balance.
func (a *SavingAccount) Withdraw(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return ErrBadAmount
	}
	if a.balance.LessThan(amount) {
		return ErrInsufficientFunds
	}
	a.balance = a.balance.Sub(amount)
	return a.record(LabelWithdrawal, amount)
}

// MonthlyInterest credits balance*rate and returns the interest amount.
// Each call compounds on the balance left by the previous one.
func (a *SavingAccount) MonthlyInterest() (decimal.Decimal, error) {
	interest := a.balance.Mul(a.rate)
	a.balance = a.balance.Add(interest)
	return interest, a.record(LabelInterest, interest)
}

func (a *SavingAccount) InterestRate() decimal.Decimal { return a.rate }
