package service

import (
	"errors"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
	"github.com/tirasundara/banking-ledger/internal/domain"
	"github.com/tirasundara/banking-ledger/internal/operation"
)

// ErrUnsupportedOperation is returned for operation requests of an unknown type
var ErrUnsupportedOperation = errors.New("unsupported operation type")

// ScenarioService seeds a bank from a customer source, replays an operation source against it
// and reports the outcome
type ScenarioService struct {
	bank          *Bank
	customerRepo  domain.CustomerSeedRepository
	operationRepo domain.OperationRepository
	runner        *operation.Runner
	logger        *logrus.Logger
}

// NewScenarioService creates a new ScenarioService
func NewScenarioService(
	bank *Bank,
	customerRepo domain.CustomerSeedRepository,
	operationRepo domain.OperationRepository,
	runner *operation.Runner,
	logger *logrus.Logger,
) *ScenarioService {
	if logger == nil {
		logger = logrus.New()
		logger.SetOutput(io.Discard)
	}

	return &ScenarioService{
		bank:          bank,
		customerRepo:  customerRepo,
		operationRepo: operationRepo,
		runner:        runner,
		logger:        logger,
	}
}

// Run seeds the bank, executes every operation and builds a report.
// With an empty statementNumber the statement of the first opened account is included.
// Operation failures are listed in the report and returned; the report is valid either way
func (s *ScenarioService) Run(statementNumber string) (domain.BankReport, error) {
	seeds, err := s.customerRepo.GetCustomerSeeds()
	if err != nil {
		return domain.BankReport{}, fmt.Errorf("fetching customers: %w", err)
	}

	if err := s.Seed(seeds); err != nil {
		return domain.BankReport{}, err
	}

	requests, err := s.operationRepo.GetOperations()
	if err != nil {
		return domain.BankReport{}, fmt.Errorf("fetching operations: %w", err)
	}

	ops := make([]domain.Operation, 0, len(requests))
	for _, req := range requests {
		ops = append(ops, s.Resolve(req))
	}

	s.logger.Infof("Replaying %d operations against %d accounts", len(ops), s.bank.AccountCount())
	result, runErr := s.runner.Run(ops...)

	if statementNumber == "" {
		if numbers := s.bank.AccountNumbers(); len(numbers) > 0 {
			statementNumber = numbers[0]
		}
	}

	report, err := s.bank.Report(statementNumber)
	if err != nil {
		return domain.BankReport{}, fmt.Errorf("building report: %w", err)
	}

	for _, failure := range result.Failures {
		report.Failures = append(report.Failures, fmt.Sprintf("%s: %v", failure.Operation, failure.Err))
	}

	return report, runErr
}

// Seed registers each customer and opens one account per seed, in order
func (s *ScenarioService) Seed(seeds []domain.CustomerSeed) error {
	for _, seed := range seeds {
		customer, err := s.bank.CreateCustomer(seed.Name, seed.NationalID)
		if err != nil {
			return fmt.Errorf("seeding customers: %w", err)
		}

		if _, err := s.bank.CreateAccount(customer, seed.OpeningBalance); err != nil {
			return fmt.Errorf("seeding accounts: %w", err)
		}
	}
	return nil
}

// Resolve turns a request into an executable operation. Requests that cannot be resolved
// become operations that fail with the resolution error, so the runner reports them in order
func (s *ScenarioService) Resolve(req domain.OperationRequest) domain.Operation {
	amount := ToMoney(req.Amount)

	switch req.Type {
	case domain.OpDeposit:
		account, err := s.bank.FindAccount(req.Destination)
		if err != nil {
			return unresolved(req, err)
		}
		return operation.NewDeposit(account, amount, depositDescription)

	case domain.OpWithdrawal:
		account, err := s.bank.FindAccount(req.Source)
		if err != nil {
			return unresolved(req, err)
		}
		return operation.NewWithdrawal(account, amount, withdrawalDescription)

	case domain.OpTransfer:
		transfer, err := s.bank.NewTransfer(req.Source, req.Destination, amount)
		if err != nil {
			return unresolved(req, err)
		}
		return transfer

	default:
		return unresolved(req, fmt.Errorf("%w: %q", ErrUnsupportedOperation, req.Type))
	}
}

type unresolvedOperation struct {
	req domain.OperationRequest
	err error
}

func unresolved(req domain.OperationRequest, err error) domain.Operation {
	return &unresolvedOperation{req: req, err: err}
}

func (u *unresolvedOperation) Execute() error {
	return u.err
}

func (u *unresolvedOperation) Describe() string {
	return fmt.Sprintf("%s %s (source %q, destination %q)", u.req.Type, u.req.Amount.StringFixed(moneyPlaces), u.req.Source, u.req.Destination)
}
