package service

import (
	"time"

	"github.com/tirasundara/banking-ledger/internal/domain"
)

// Report summarises every customer and account. When statementNumber is set the
// report also carries that account's full history
func (b *Bank) Report(statementNumber string) (domain.BankReport, error) {
	report := domain.BankReport{
		GeneratedAt: time.Now().UTC(),
		Customers:   make([]domain.CustomerSummary, 0, len(b.customerOrder)),
	}

	for _, entry := range b.CustomersWithAccounts() {
		summary := domain.CustomerSummary{
			Customer: entry.Customer,
			Accounts: make([]domain.AccountSummary, 0, len(entry.Accounts)),
		}
		for _, account := range entry.Accounts {
			summary.Accounts = append(summary.Accounts, domain.AccountSummary{
				Number:  account.Number(),
				Balance: account.Balance(),
			})
		}
		report.Customers = append(report.Customers, summary)
	}

	if statementNumber == "" {
		return report, nil
	}

	account, err := b.FindAccount(statementNumber)
	if err != nil {
		return domain.BankReport{}, err
	}

	report.Statement = &domain.AccountStatement{
		Number:  account.Number(),
		Balance: account.Balance(),
		Entries: account.Log().Entries(),
	}

	return report, nil
}
