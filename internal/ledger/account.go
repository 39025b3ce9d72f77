package ledger

import (
	"github.com/shopspring/decimal"
	"github.com/tirasundara/banking-ledger/internal/domain"
)

var _ domain.Account = (*Account)(nil)

// Account is the default in-memory implementation of domain.Account
type Account struct {
	number   string
	customer domain.Customer
	balance  decimal.Decimal
	log      *domain.TransactionLog
}

// NewAccount creates an empty account owned by customer
func NewAccount(number string, customer domain.Customer) *Account {
	return &Account{
		number:   number,
		customer: customer,
		balance:  decimal.Zero,
		log:      domain.NewTransactionLog(),
	}
}

func (a *Account) Number() string {
	return a.number
}

func (a *Account) Customer() domain.Customer {
	return a.customer
}

func (a *Account) Balance() decimal.Decimal {
	return a.balance
}

func (a *Account) Log() *domain.TransactionLog {
	return a.log
}

// Deposit implements the domain.Account interface
func (a *Account) Deposit(amount decimal.Decimal, description string) error {
	if !amount.IsPositive() {
		return domain.ErrInvalidAmount
	}

	a.balance = a.balance.Add(amount)
	a.log.Record(domain.NewTransactionRecord(domain.KindDeposit, amount, description, "", a.number))
	return nil
}

// Withdraw implements the domain.Account interface
func (a *Account) Withdraw(amount decimal.Decimal, description string) error {
	if !amount.IsPositive() {
		return domain.ErrInvalidAmount
	}
	if amount.GreaterThan(a.balance) {
		return domain.ErrInsufficientFunds
	}

	a.balance = a.balance.Sub(amount)
	a.log.Record(domain.NewTransactionRecord(domain.KindWithdrawal, amount, description, a.number, ""))
	return nil
}

// Statement returns a copy of the account history
func (a *Account) Statement() []domain.TransactionRecord {
	return a.log.Entries()
}
