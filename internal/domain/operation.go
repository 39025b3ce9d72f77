package domain

import "github.com/shopspring/decimal"

// Operation is a unit of work executed against one or more accounts
type Operation interface {
	Execute() error
	Describe() string
}

// OperationType names the operations that can be requested from outside the process
type OperationType string

// Operation types
const (
	OpDeposit    OperationType = "deposit"
	OpWithdrawal OperationType = "withdrawal"
	OpTransfer   OperationType = "transfer"
)

// OperationRequest is an operation addressed by account numbers, before the accounts are resolved
type OperationRequest struct {
	Type        OperationType
	Source      string
	Destination string
	Amount      decimal.Decimal
}

// CustomerSeed describes a customer to register together with their first account
type CustomerSeed struct {
	Name           string
	NationalID     string
	OpeningBalance decimal.Decimal
}
