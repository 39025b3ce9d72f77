package domain

import "github.com/shopspring/decimal"

// Account defines the capabilities the bank and its operations rely on.
// Deposit and Withdraw must validate before mutating anything, so a failed
// call leaves both the balance and the log untouched
type Account interface {
	Number() string
	Customer() Customer
	Balance() decimal.Decimal

	// Deposit adds amount to the balance and records a DEPOSIT entry
	Deposit(amount decimal.Decimal, description string) error

	// Withdraw removes amount from the balance and records a WITHDRAWAL entry
	Withdraw(amount decimal.Decimal, description string) error

	// Log returns the account's own transaction log
	Log() *TransactionLog
}
