package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionKind represents the type of a recorded transaction
type TransactionKind string

// Transaction kinds
const (
	KindDeposit    TransactionKind = "DEPOSIT"
	KindWithdrawal TransactionKind = "WITHDRAWAL"
	KindTransfer   TransactionKind = "TRANSFER"
)

// TransactionRecord is a single entry of an account's history.
// Origin and Destination are empty when they do not apply
type TransactionRecord struct {
	ID          uuid.UUID       `json:"id"`
	Timestamp   time.Time       `json:"timestamp"`
	Kind        TransactionKind `json:"kind"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
	Origin      string          `json:"origin,omitempty"`
	Destination string          `json:"destination,omitempty"`
}

// NewTransactionRecord stamps a record with a fresh ID and the current UTC time
func NewTransactionRecord(kind TransactionKind, amount decimal.Decimal, description, origin, destination string) TransactionRecord {
	return TransactionRecord{
		ID:          uuid.New(),
		Timestamp:   time.Now().UTC(),
		Kind:        kind,
		Amount:      amount,
		Description: description,
		Origin:      origin,
		Destination: destination,
	}
}
