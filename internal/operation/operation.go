package operation

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/tirasundara/banking-ledger/internal/domain"
)

const transferStageDeposit = "deposit"

// Transfer moves funds between two accounts and records one shared TRANSFER entry in both logs
type Transfer struct {
	Source      domain.Account
	Destination domain.Account
	Amount      decimal.Decimal
}

// NewTransfer creates a new Transfer
func NewTransfer(source, destination domain.Account, amount decimal.Decimal) *Transfer {
	return &Transfer{
		Source:      source,
		Destination: destination,
		Amount:      amount,
	}
}

// Execute implements the domain.Operation interface.
// A withdrawal failure is returned unchanged and leaves both accounts untouched.
// A deposit failure comes back as *domain.TransferError and the source stays debited
func (t *Transfer) Execute() error {
	src, dst := t.Source.Number(), t.Destination.Number()
	if src == dst {
		return domain.ErrInvalidOperation
	}

	if err := t.Source.Withdraw(t.Amount, fmt.Sprintf("Transfer to %s", dst)); err != nil {
		return err
	}

	if err := t.Destination.Deposit(t.Amount, fmt.Sprintf("Transfer from %s", src)); err != nil {
		return &domain.TransferError{
			Source:      src,
			Destination: dst,
			Amount:      t.Amount,
			Stage:       transferStageDeposit,
			Cause:       err,
		}
	}

	record := domain.NewTransactionRecord(domain.KindTransfer, t.Amount, "Transfer", src, dst)
	t.Source.Log().Record(record)
	t.Destination.Log().Record(record)

	return nil
}

func (t *Transfer) Describe() string {
	return fmt.Sprintf("transfer %s from %s to %s", t.Amount.StringFixed(2), t.Source.Number(), t.Destination.Number())
}

// Deposit credits a single account
type Deposit struct {
	Account     domain.Account
	Amount      decimal.Decimal
	Description string
}

// NewDeposit creates a new Deposit
func NewDeposit(account domain.Account, amount decimal.Decimal, description string) *Deposit {
	return &Deposit{
		Account:     account,
		Amount:      amount,
		Description: description,
	}
}

// Execute implements the domain.Operation interface
func (d *Deposit) Execute() error {
	return d.Account.Deposit(d.Amount, d.Description)
}

func (d *Deposit) Describe() string {
	return fmt.Sprintf("deposit %s to %s", d.Amount.StringFixed(2), d.Account.Number())
}

// Withdrawal debits a single account
type Withdrawal struct {
	Account     domain.Account
	Amount      decimal.Decimal
	Description string
}

// NewWithdrawal creates a new Withdrawal
func NewWithdrawal(account domain.Account, amount decimal.Decimal, description string) *Withdrawal {
	return &Withdrawal{
		Account:     account,
		Amount:      amount,
		Description: description,
	}
}

// Execute implements the domain.Operation interface
func (w *Withdrawal) Execute() error {
	return w.Account.Withdraw(w.Amount, w.Description)
}

func (w *Withdrawal) Describe() string {
	return fmt.Sprintf("withdraw %s from %s", w.Amount.StringFixed(2), w.Account.Number())
}
