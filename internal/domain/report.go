package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// BankReport is a point-in-time view of the bank used for output
type BankReport struct {
	GeneratedAt time.Time         `json:"generated_at"`
	Customers   []CustomerSummary `json:"customers"`
	Statement   *AccountStatement `json:"statement,omitempty"`
	Failures    []string          `json:"failures,omitempty"`
}

// CustomerSummary lists a customer's accounts and their balances
type CustomerSummary struct {
	Customer Customer         `json:"customer"`
	Accounts []AccountSummary `json:"accounts"`
}

// AccountSummary contains the balance of a single account
type AccountSummary struct {
	Number  string          `json:"number"`
	Balance decimal.Decimal `json:"balance"`
}

// AccountStatement contains the full history of one account
type AccountStatement struct {
	Number  string              `json:"number"`
	Balance decimal.Decimal     `json:"balance"`
	Entries []TransactionRecord `json:"entries"`
}
