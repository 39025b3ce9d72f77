package service

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/tirasundara/banking-ledger/internal/domain"
	"github.com/tirasundara/banking-ledger/internal/ledger"
	"github.com/tirasundara/banking-ledger/internal/operation"
)

const (
	firstCustomerID    = 1
	firstAccountNumber = 1001
	moneyPlaces        = 2

	openingBalanceDescription = "Opening balance"
	depositDescription        = "Deposit"
	withdrawalDescription     = "Withdrawal"
)

// ErrFactoryNationalID is returned when a CustomerFactory changes the national id it was given
var ErrFactoryNationalID = errors.New("customer factory changed the national id")

// CustomerFactory builds the customer registered under a freshly allocated id.
// The returned customer must keep the given national id
type CustomerFactory func(id int, name, nationalID string) domain.Customer

// AccountFactory builds an empty account for a registered customer
type AccountFactory func(number string, customer domain.Customer) domain.Account

// DefaultCustomerFactory builds a plain domain.Customer
func DefaultCustomerFactory(id int, name, nationalID string) domain.Customer {
	return domain.Customer{ID: id, Name: name, NationalID: nationalID}
}

// DefaultAccountFactory builds a *ledger.Account
func DefaultAccountFactory(number string, customer domain.Customer) domain.Account {
	return ledger.NewAccount(number, customer)
}

// Option configures a Bank
type Option func(*Bank)

// WithCustomerFactory replaces the customer constructor
func WithCustomerFactory(f CustomerFactory) Option {
	return func(b *Bank) {
		b.newCustomer = f
	}
}

// WithAccountFactory replaces the account constructor
func WithAccountFactory(f AccountFactory) Option {
	return func(b *Bank) {
		b.newAccount = f
	}
}

// WithLogger sets the logger used to report operations
func WithLogger(logger *logrus.Logger) Option {
	return func(b *Bank) {
		b.logger = logger
	}
}

// Bank is the registry and factory for customers and accounts
type Bank struct {
	customers     map[string]domain.Customer
	customerOrder []string
	accounts      map[string]domain.Account
	accountOrder  []string

	nextCustomerID    int
	nextAccountNumber int

	newCustomer CustomerFactory
	newAccount  AccountFactory
	logger      *logrus.Logger
}

// NewBank creates an empty Bank. Without options it builds domain.Customer values and
// *ledger.Account accounts and discards its log output
func NewBank(opts ...Option) *Bank {
	b := &Bank{
		customers:         make(map[string]domain.Customer),
		accounts:          make(map[string]domain.Account),
		nextCustomerID:    firstCustomerID,
		nextAccountNumber: firstAccountNumber,
		newCustomer:       DefaultCustomerFactory,
		newAccount:        DefaultAccountFactory,
	}

	for _, opt := range opts {
		opt(b)
	}

	if b.logger == nil {
		b.logger = logrus.New()
		b.logger.SetOutput(io.Discard)
	}

	return b
}

// CreateCustomer registers a new customer under nationalID
func (b *Bank) CreateCustomer(name, nationalID string) (domain.Customer, error) {
	if _, ok := b.customers[nationalID]; ok {
		b.logger.Warnf("Customer with national id %s already registered", nationalID)
		return domain.Customer{}, fmt.Errorf("creating customer %s: %w", nationalID, domain.ErrDuplicateCustomer)
	}

	customer := b.newCustomer(b.nextCustomerID, name, nationalID)
	if customer.NationalID != nationalID {
		return domain.Customer{}, fmt.Errorf("creating customer %s: %w (got %s)", nationalID, ErrFactoryNationalID, customer.NationalID)
	}
	b.nextCustomerID++

	b.customers[nationalID] = customer
	b.customerOrder = append(b.customerOrder, nationalID)

	b.logger.Infof("Created customer %d (%s)", customer.ID, customer.Name)
	return customer, nil
}

// CreateAccount opens an account for a registered customer. A positive opening balance
// is applied as a deposit so the account history explains the whole balance
func (b *Bank) CreateAccount(customer domain.Customer, openingBalance decimal.Decimal) (domain.Account, error) {
	if openingBalance.IsNegative() {
		return nil, fmt.Errorf("opening account for customer %d: %w", customer.ID, domain.ErrInvalidAmount)
	}

	registered, ok := b.customers[customer.NationalID]
	if !ok || registered != customer {
		b.logger.Warnf("Refusing account for unregistered customer %d", customer.ID)
		return nil, fmt.Errorf("opening account for customer %d: %w", customer.ID, domain.ErrUnknownCustomer)
	}

	// The number is only consumed once the account is fully opened
	number := strconv.Itoa(b.nextAccountNumber)
	account := b.newAccount(number, customer)

	opening := ToMoney(openingBalance)
	if opening.IsPositive() {
		if err := account.Deposit(opening, openingBalanceDescription); err != nil {
			return nil, fmt.Errorf("applying opening balance to account %s: %w", number, err)
		}
	}

	b.nextAccountNumber++
	b.accounts[number] = account
	b.accountOrder = append(b.accountOrder, number)

	b.logger.Infof("Opened account %s for customer %d with balance %s", number, customer.ID, account.Balance().StringFixed(moneyPlaces))
	return account, nil
}

// OpenAccountFor opens an empty account for the customer registered under nationalID
func (b *Bank) OpenAccountFor(nationalID string) (domain.Account, error) {
	customer, err := b.FindCustomer(nationalID)
	if err != nil {
		return nil, err
	}

	return b.CreateAccount(customer, decimal.Zero)
}

// FindAccount returns the account registered under number
func (b *Bank) FindAccount(number string) (domain.Account, error) {
	account, ok := b.accounts[number]
	if !ok {
		return nil, fmt.Errorf("finding account %s: %w", number, domain.ErrAccountNotFound)
	}
	return account, nil
}

// FindCustomer returns the customer registered under nationalID
func (b *Bank) FindCustomer(nationalID string) (domain.Customer, error) {
	customer, ok := b.customers[nationalID]
	if !ok {
		return domain.Customer{}, fmt.Errorf("finding customer %s: %w", nationalID, domain.ErrCustomerNotFound)
	}
	return customer, nil
}

// Deposit credits the account registered under number
func (b *Bank) Deposit(number string, amount decimal.Decimal) error {
	account, err := b.FindAccount(number)
	if err != nil {
		return err
	}

	if err := account.Deposit(ToMoney(amount), depositDescription); err != nil {
		b.logger.WithError(err).Warnf("Deposit to %s rejected", number)
		return fmt.Errorf("depositing to %s: %w", number, err)
	}

	return nil
}

// Withdraw debits the account registered under number
func (b *Bank) Withdraw(number string, amount decimal.Decimal) error {
	account, err := b.FindAccount(number)
	if err != nil {
		return err
	}

	if err := account.Withdraw(ToMoney(amount), withdrawalDescription); err != nil {
		b.logger.WithError(err).Warnf("Withdrawal from %s rejected", number)
		return fmt.Errorf("withdrawing from %s: %w", number, err)
	}

	return nil
}

// Transfer moves amount between two registered accounts
func (b *Bank) Transfer(origin, destination string, amount decimal.Decimal) error {
	op, err := b.NewTransfer(origin, destination, amount)
	if err != nil {
		return err
	}

	if err := op.Execute(); err != nil {
		if domain.IsPartialTransfer(err) {
			b.logger.WithError(err).Errorf("Transfer from %s to %s left the source debited", origin, destination)
		} else {
			b.logger.WithError(err).Warnf("Transfer from %s to %s rejected", origin, destination)
		}
		return fmt.Errorf("transferring from %s to %s: %w", origin, destination, err)
	}

	b.logger.Infof("Transferred %s from %s to %s", op.Amount.StringFixed(moneyPlaces), origin, destination)
	return nil
}

// NewTransfer resolves both accounts and prepares a transfer without executing it
func (b *Bank) NewTransfer(origin, destination string, amount decimal.Decimal) (*operation.Transfer, error) {
	source, err := b.FindAccount(origin)
	if err != nil {
		return nil, err
	}

	target, err := b.FindAccount(destination)
	if err != nil {
		return nil, err
	}

	return operation.NewTransfer(source, target, ToMoney(amount)), nil
}

// Statement returns a copy of the history of the account registered under number
func (b *Bank) Statement(number string) ([]domain.TransactionRecord, error) {
	account, err := b.FindAccount(number)
	if err != nil {
		return nil, err
	}
	return account.Log().Entries(), nil
}

// CustomersWithAccounts lists customers in registration order, each with their accounts in opening order
func (b *Bank) CustomersWithAccounts() []domain.CustomerAccounts {
	byCustomer := make(map[string][]domain.Account)
	for _, number := range b.accountOrder {
		account := b.accounts[number]
		nationalID := account.Customer().NationalID
		byCustomer[nationalID] = append(byCustomer[nationalID], account)
	}

	out := make([]domain.CustomerAccounts, 0, len(b.customerOrder))
	for _, nationalID := range b.customerOrder {
		out = append(out, domain.CustomerAccounts{
			Customer: b.customers[nationalID],
			Accounts: byCustomer[nationalID],
		})
	}

	return out
}

// CustomerCount returns the number of registered customers
func (b *Bank) CustomerCount() int {
	return len(b.customers)
}

// AccountCount returns the number of opened accounts
func (b *Bank) AccountCount() int {
	return len(b.accounts)
}

// AccountNumbers returns every account number in opening order
func (b *Bank) AccountNumbers() []string {
	out := make([]string, len(b.accountOrder))
	copy(out, b.accountOrder)
	return out
}
