package domain_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/tirasundara/banking-ledger/internal/domain"
)

func TestDomainErrorsAreBankErrors(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"invalid amount", domain.ErrInvalidAmount},
		{"insufficient funds", domain.ErrInsufficientFunds},
		{"invalid operation", domain.ErrInvalidOperation},
		{"duplicate customer", domain.ErrDuplicateCustomer},
		{"unknown customer", domain.ErrUnknownCustomer},
		{"account not found", domain.ErrAccountNotFound},
		{"customer not found", domain.ErrCustomerNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wrapped := fmt.Errorf("context: %w", tt.err)

			if !domain.IsBankError(wrapped) {
				t.Errorf("Expected %v to be a bank error", wrapped)
			}

			if !errors.Is(wrapped, tt.err) {
				t.Errorf("Expected %v to match its own sentinel", wrapped)
			}
		})
	}

	if errors.Is(domain.ErrInvalidAmount, domain.ErrInsufficientFunds) {
		t.Error("Expected distinct sentinels not to match each other")
	}
}

func TestIsNotFound(t *testing.T) {
	if !domain.IsNotFound(fmt.Errorf("finding account 9: %w", domain.ErrAccountNotFound)) {
		t.Error("Expected wrapped ErrAccountNotFound to be not found")
	}

	if !domain.IsNotFound(domain.ErrCustomerNotFound) {
		t.Error("Expected ErrCustomerNotFound to be not found")
	}

	if domain.IsNotFound(domain.ErrInvalidAmount) {
		t.Error("Expected ErrInvalidAmount not to be not found")
	}
}

func TestTransferError(t *testing.T) {
	cause := errors.New("account frozen")
	err := fmt.Errorf("transfer: %w", &domain.TransferError{
		Source:      "1001",
		Destination: "1002",
		Amount:      decimal.NewFromInt(50),
		Stage:       "deposit",
		Cause:       cause,
	})

	if !domain.IsPartialTransfer(err) {
		t.Error("Expected partial transfer to be detected")
	}

	if !errors.Is(err, cause) {
		t.Error("Expected TransferError to unwrap to its cause")
	}

	if domain.IsPartialTransfer(domain.ErrInsufficientFunds) {
		t.Error("Expected plain sentinel not to be a partial transfer")
	}
}
