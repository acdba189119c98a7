package account

import "github.com/shopspring/decimal"

// LoanAccount tracks outstanding loan exposure. The balance goes down as
// payments accrue and may turn negative; the principal is a fixed
// reference value used by the payment formula, never decremented.
type LoanAccount struct {
	base
	rate      decimal.Decimal
	duration  int
	principal decimal.Decimal
}

// NewLoan opens a loan account. duration is the loan term in months.
func NewLoan(number string, balance, rate decimal.Decimal, duration int, principal decimal.Decimal) *LoanAccount {
	return &LoanAccount{
		base:      base{number: number, balance: balance},
		rate:      rate,
		duration:  duration,
		principal: principal,
	}
}

func (a *LoanAccount) Kind() Kind { return Loan }

// Withdraw always fails with ErrWithdrawalNotAllowed. The attempt is
// journaled and persisted before the error is returned; downstream
// tooling relies on refused withdrawals showing up in the log.
func (a *LoanAccount) Withdraw(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return ErrBadAmount
	}
	if err := a.record(LabelWithdrawal, amount); err != nil {
		return err
	}
	return ErrWithdrawalNotAllowed
}

// MonthlyPayment applies one installment: interest on the current balance
// plus a flat principal/duration slice. The interest base is the balance
// as already decremented by earlier payments. Simple amortization, kept
// bug-for-bug compatible with the ledger this replaces.
func (a *LoanAccount) MonthlyPayment() (decimal.Decimal, error) {
	payment := a.balance.Mul(a.rate).Add(a.principal.Div(decimal.NewFromInt(int64(a.duration))))
	a.balance = a.balance.Sub(payment)
	return payment, a.record(LabelPayment, payment)
}

func (a *LoanAccount) InterestRate() decimal.Decimal { return a.rate }

func (a *LoanAccount) Duration() int { return a.duration }

func (a *LoanAccount) Principal() decimal.Decimal { return a.principal }

// LoanSummary is the read model behind the loan-status view.
type LoanSummary struct {
	AccountNo   string
	Outstanding decimal.Decimal
	Duration    int
	Rate        decimal.Decimal
}

// Summary snapshots the loan for display.
func (a *LoanAccount) Summary() LoanSummary {
	return LoanSummary{
		AccountNo:   a.number,
		Outstanding: a.balance,
		Duration:    a.duration,
		Rate:        a.rate,
	}
}
