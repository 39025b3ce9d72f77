package domain

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// ErrBank matches every domain error below through errors.Is
var ErrBank = errors.New("bank error")

// Domain errors
var (
	ErrInvalidAmount     = newBankError("amount must be positive")
	ErrInsufficientFunds = newBankError("insufficient funds")
	ErrInvalidOperation  = newBankError("source and destination accounts must differ")
	ErrDuplicateCustomer = newBankError("customer already registered")
	ErrUnknownCustomer   = newBankError("customer is not registered")
	ErrAccountNotFound   = newBankError("account not found")
	ErrCustomerNotFound  = newBankError("customer not found")
)

type bankError struct {
	msg string
}

func newBankError(msg string) error {
	return &bankError{msg: msg}
}

func (e *bankError) Error() string {
	return e.msg
}

func (e *bankError) Is(target error) bool {
	return target == ErrBank
}

// TransferError reports a transfer that failed after its source account was debited.
// The debit is not reverted
type TransferError struct {
	Source      string
	Destination string
	Amount      decimal.Decimal
	Stage       string
	Cause       error
}

func (e *TransferError) Error() string {
	return fmt.Sprintf("transfer %s -> %s of %s failed during '%s' after source was debited: %v",
		e.Source, e.Destination, e.Amount, e.Stage, e.Cause)
}

func (e *TransferError) Unwrap() error {
	return e.Cause
}

// IsNotFound reports whether err is a failed account or customer lookup
func IsNotFound(err error) bool {
	return errors.Is(err, ErrAccountNotFound) || errors.Is(err, ErrCustomerNotFound)
}

// IsBankError reports whether err originates from a business rule rather than the environment
func IsBankError(err error) bool {
	return errors.Is(err, ErrBank)
}

// IsPartialTransfer reports whether err left a transfer half applied
func IsPartialTransfer(err error) bool {
	var transferErr *TransferError
	return errors.As(err, &transferErr)
}
