package service

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/tirasundara/banking-ledger/internal/domain"
)

// ToMoney quantizes amount to cents, rounding half to even
func ToMoney(amount decimal.Decimal) decimal.Decimal {
	return amount.RoundBank(moneyPlaces)
}

// ParseMoney parses a decimal string and quantizes it to cents
func ParseMoney(s string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Zero, fmt.Errorf("parsing amount %q: %w", s, domain.ErrInvalidAmount)
	}
	return ToMoney(amount), nil
}
