package ledger_test

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/tirasundara/banking-ledger/internal/domain"
	"github.com/tirasundara/banking-ledger/internal/ledger"
)

var ana = domain.Customer{ID: 1, Name: "Ana", NationalID: "11111111111"}

func funded(t *testing.T, amount string) *ledger.Account {
	t.Helper()

	acc := ledger.NewAccount("1001", ana)
	if err := acc.Deposit(decimal.RequireFromString(amount), "seed"); err != nil {
		t.Fatalf("Unexpected error funding account: %v", err)
	}
	return acc
}

func TestAccount_NewAccount(t *testing.T) {
	acc := ledger.NewAccount("1001", ana)

	if acc.Number() != "1001" {
		t.Errorf("Expected number 1001, got %s", acc.Number())
	}

	if acc.Customer() != ana {
		t.Errorf("Expected customer %+v, got %+v", ana, acc.Customer())
	}

	if !acc.Balance().IsZero() {
		t.Errorf("Expected zero balance, got %s", acc.Balance())
	}

	if acc.Log().Len() != 0 {
		t.Errorf("Expected empty log, got %d entries", acc.Log().Len())
	}
}

func TestAccount_Deposit(t *testing.T) {
	acc := ledger.NewAccount("1001", ana)

	if err := acc.Deposit(decimal.RequireFromString("150.50"), "salary"); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if !acc.Balance().Equal(decimal.RequireFromString("150.50")) {
		t.Errorf("Expected balance 150.50, got %s", acc.Balance())
	}

	entries := acc.Statement()
	if len(entries) != 1 {
		t.Fatalf("Expected 1 entry, got %d", len(entries))
	}

	entry := entries[0]
	if entry.Kind != domain.KindDeposit || entry.Description != "salary" || entry.Destination != "1001" {
		t.Errorf("Unexpected deposit entry: %+v", entry)
	}
}

func TestAccount_DepositThenWithdrawRestoresBalance(t *testing.T) {
	acc := funded(t, "100")
	before := acc.Log().Len()

	amount := decimal.NewFromInt(60)
	if err := acc.Deposit(amount, ""); err != nil {
		t.Fatalf("Unexpected deposit error: %v", err)
	}
	if err := acc.Withdraw(amount, ""); err != nil {
		t.Fatalf("Unexpected withdraw error: %v", err)
	}

	if !acc.Balance().Equal(decimal.NewFromInt(100)) {
		t.Errorf("Expected balance 100, got %s", acc.Balance())
	}

	if got := acc.Log().Len() - before; got != 2 {
		t.Errorf("Expected 2 new entries, got %d", got)
	}

	last := acc.Statement()[acc.Log().Len()-1]
	if last.Kind != domain.KindWithdrawal || last.Origin != "1001" {
		t.Errorf("Unexpected withdrawal entry: %+v", last)
	}
}

func TestAccount_WithdrawInsufficientFunds(t *testing.T) {
	acc := funded(t, "100")

	err := acc.Withdraw(decimal.RequireFromString("100.01"), "")
	if !errors.Is(err, domain.ErrInsufficientFunds) {
		t.Fatalf("Expected ErrInsufficientFunds, got %v", err)
	}

	if !acc.Balance().Equal(decimal.NewFromInt(100)) {
		t.Errorf("Expected balance to stay 100, got %s", acc.Balance())
	}

	if acc.Log().Len() != 1 {
		t.Errorf("Expected log to stay at 1 entry, got %d", acc.Log().Len())
	}
}

func TestAccount_WithdrawWholeBalance(t *testing.T) {
	acc := funded(t, "100")

	if err := acc.Withdraw(decimal.NewFromInt(100), ""); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if !acc.Balance().IsZero() {
		t.Errorf("Expected zero balance, got %s", acc.Balance())
	}
}

func TestAccount_InvalidAmounts(t *testing.T) {
	amounts := []decimal.Decimal{decimal.Zero, decimal.NewFromInt(-1), decimal.RequireFromString("-0.01")}

	for _, amount := range amounts {
		t.Run(amount.String(), func(t *testing.T) {
			acc := funded(t, "100")

			if err := acc.Deposit(amount, ""); !errors.Is(err, domain.ErrInvalidAmount) {
				t.Errorf("Deposit: expected ErrInvalidAmount, got %v", err)
			}

			if err := acc.Withdraw(amount, ""); !errors.Is(err, domain.ErrInvalidAmount) {
				t.Errorf("Withdraw: expected ErrInvalidAmount, got %v", err)
			}

			if !acc.Balance().Equal(decimal.NewFromInt(100)) {
				t.Errorf("Expected balance to stay 100, got %s", acc.Balance())
			}

			if acc.Log().Len() != 1 {
				t.Errorf("Expected log to stay at 1 entry, got %d", acc.Log().Len())
			}
		})
	}
}

func TestAccount_BalanceNeverNegative(t *testing.T) {
	acc := ledger.NewAccount("1001", ana)

	steps := []struct {
		deposit bool
		amount  int64
	}{
		{true, 50}, {false, 20}, {false, 40}, {true, 5}, {false, 35}, {false, 1}, {true, 10},
	}

	for _, step := range steps {
		if step.deposit {
			_ = acc.Deposit(decimal.NewFromInt(step.amount), "")
		} else {
			_ = acc.Withdraw(decimal.NewFromInt(step.amount), "")
		}

		if acc.Balance().IsNegative() {
			t.Fatalf("Balance went negative: %s", acc.Balance())
		}
	}

	net := decimal.Zero
	for _, entry := range acc.Statement() {
		switch entry.Kind {
		case domain.KindDeposit:
			net = net.Add(entry.Amount)
		case domain.KindWithdrawal:
			net = net.Sub(entry.Amount)
		}
	}

	if !net.Equal(acc.Balance()) {
		t.Errorf("Expected balance %s to equal net of the log %s", acc.Balance(), net)
	}
}
